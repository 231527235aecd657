// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package a2a

import (
	"context"
	"log/slog"
)

// AppendArtifactToTask folds an artifact update event into a task snapshot.
//
// A new artifact ID is added to the task's artifact list. When the event
// carries an already-known artifact ID, the append flag decides whether the
// new parts extend the existing artifact or replace it wholesale. An append
// chunk for an artifact the task has never seen is dropped.
func AppendArtifactToTask(ctx context.Context, task *Task, event *TaskArtifactUpdateEvent) error {
	if task == nil {
		return &MissingFieldError{Field: "task"}
	}
	if err := event.Validate(); err != nil {
		return err
	}

	logger := slog.Default()

	if task.Artifacts == nil {
		task.Artifacts = []*Artifact{}
	}

	incoming := event.Artifact
	artifactID := incoming.ArtifactID
	appendParts := event.Append != nil && *event.Append

	existingIndex := -1
	for i, artifact := range task.Artifacts {
		if artifact.ArtifactID == artifactID {
			existingIndex = i
			break
		}
	}

	switch {
	case !appendParts && existingIndex == -1:
		logger.InfoContext(ctx, "adding new artifact to task", slog.String("artifact_id", artifactID), slog.String("task_id", task.ID))
		task.Artifacts = append(task.Artifacts, incoming)
	case !appendParts:
		logger.InfoContext(ctx, "replacing artifact in task", slog.String("artifact_id", artifactID), slog.String("task_id", task.ID))
		task.Artifacts[existingIndex] = incoming
	case existingIndex != -1:
		logger.InfoContext(ctx, "appending parts to artifact", slog.String("artifact_id", artifactID), slog.String("task_id", task.ID))
		task.Artifacts[existingIndex].Parts = append(task.Artifacts[existingIndex].Parts, incoming.Parts...)
	default:
		logger.InfoContext(ctx, "ignoring append chunk for unknown artifact", slog.String("artifact_id", artifactID), slog.String("task_id", task.ID))
	}

	return nil
}

// ApplyStatusUpdate folds a status update event into a task snapshot. The
// event must refer to the task, and the task's previous status message, if
// any, is moved into history.
func ApplyStatusUpdate(ctx context.Context, task *Task, event *TaskStatusUpdateEvent) error {
	if task == nil {
		return &MissingFieldError{Field: "task"}
	}
	if err := event.Validate(); err != nil {
		return err
	}
	if event.TaskID != task.ID {
		return &ValidationError{Field: "taskId", Constraint: "event does not refer to this task"}
	}

	if task.Status.Message != nil {
		task.History = append(task.History, task.Status.Message)
	}
	task.Status = event.Status

	slog.Default().InfoContext(ctx, "task status updated", slog.String("task_id", task.ID), slog.String("state", task.Status.State.String()))
	return nil
}
