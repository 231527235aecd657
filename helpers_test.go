// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package a2a

import (
	"context"
	"testing"
)

func testTaskWithArtifact(t *testing.T) *Task {
	t.Helper()
	return &Task{
		Artifacts: []*Artifact{{
			ArtifactID: "artifact-001",
			Parts:      PartList{NewTextPart("first chunk")},
		}},
		ContextID: "ctx-001",
		ID:        "task-001",
		Status:    TaskStatus{State: TaskStateWorking},
	}
}

func artifactEvent(artifactID string, appendParts bool, text string) *TaskArtifactUpdateEvent {
	event := &TaskArtifactUpdateEvent{
		Artifact: &Artifact{
			ArtifactID: artifactID,
			Parts:      PartList{NewTextPart(text)},
		},
		ContextID: "ctx-001",
		TaskID:    "task-001",
	}
	if appendParts {
		event.Append = boolPtr(true)
	}
	return event
}

func TestAppendArtifactToTask(t *testing.T) {
	ctx := context.Background()

	t.Run("adds new artifact", func(t *testing.T) {
		task := testTaskWithArtifact(t)
		if err := AppendArtifactToTask(ctx, task, artifactEvent("artifact-002", false, "other")); err != nil {
			t.Fatalf("AppendArtifactToTask() error = %v", err)
		}
		if len(task.Artifacts) != 2 {
			t.Errorf("len(Artifacts) = %d, want 2", len(task.Artifacts))
		}
	})

	t.Run("replaces existing artifact", func(t *testing.T) {
		task := testTaskWithArtifact(t)
		if err := AppendArtifactToTask(ctx, task, artifactEvent("artifact-001", false, "replacement")); err != nil {
			t.Fatalf("AppendArtifactToTask() error = %v", err)
		}
		if len(task.Artifacts) != 1 {
			t.Fatalf("len(Artifacts) = %d, want 1", len(task.Artifacts))
		}
		if len(task.Artifacts[0].Parts) != 1 {
			t.Errorf("len(Parts) = %d, want 1", len(task.Artifacts[0].Parts))
		}
	})

	t.Run("appends parts to existing artifact", func(t *testing.T) {
		task := testTaskWithArtifact(t)
		if err := AppendArtifactToTask(ctx, task, artifactEvent("artifact-001", true, "second chunk")); err != nil {
			t.Fatalf("AppendArtifactToTask() error = %v", err)
		}
		if len(task.Artifacts) != 1 {
			t.Fatalf("len(Artifacts) = %d, want 1", len(task.Artifacts))
		}
		if len(task.Artifacts[0].Parts) != 2 {
			t.Errorf("len(Parts) = %d, want 2", len(task.Artifacts[0].Parts))
		}
	})

	t.Run("ignores append chunk for unknown artifact", func(t *testing.T) {
		task := testTaskWithArtifact(t)
		if err := AppendArtifactToTask(ctx, task, artifactEvent("artifact-999", true, "orphan")); err != nil {
			t.Fatalf("AppendArtifactToTask() error = %v", err)
		}
		if len(task.Artifacts) != 1 {
			t.Errorf("len(Artifacts) = %d, want 1", len(task.Artifacts))
		}
	})

	t.Run("rejects nil task", func(t *testing.T) {
		if err := AppendArtifactToTask(ctx, nil, artifactEvent("artifact-001", false, "x")); err == nil {
			t.Error("AppendArtifactToTask(nil task) expected error, got nil")
		}
	})
}

func TestApplyStatusUpdate(t *testing.T) {
	ctx := context.Background()

	task := testTaskWithArtifact(t)
	task.Status.Message = &Message{
		MessageID: "msg-prior",
		Parts:     PartList{NewTextPart("still working")},
		Role:      RoleAgent,
	}

	event := &TaskStatusUpdateEvent{
		ContextID: "ctx-001",
		Final:     true,
		Status:    TaskStatus{State: TaskStateCompleted, Timestamp: "2026-02-01T00:00:00Z"},
		TaskID:    "task-001",
	}
	if err := ApplyStatusUpdate(ctx, task, event); err != nil {
		t.Fatalf("ApplyStatusUpdate() error = %v", err)
	}

	if task.Status.State != TaskStateCompleted {
		t.Errorf("Status.State = %s, want completed", task.Status.State)
	}
	if len(task.History) != 1 || task.History[0].MessageID != "msg-prior" {
		t.Error("ApplyStatusUpdate() did not move the prior status message into history")
	}

	// An event for a different task is refused.
	other := &TaskStatusUpdateEvent{
		ContextID: "ctx-001",
		Status:    TaskStatus{State: TaskStateWorking},
		TaskID:    "task-999",
	}
	if err := ApplyStatusUpdate(ctx, task, other); err == nil {
		t.Error("ApplyStatusUpdate() for mismatched task expected error, got nil")
	}
}
