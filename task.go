// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package a2a

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// TaskStatus is a TaskState with an optional accompanying message and
// timestamp.
type TaskStatus struct {
	// Message optionally clarifies the status, e.g. the question an
	// input-required state is waiting on.
	Message *Message `json:"message,omitzero"`

	// State is the lifecycle state.
	State TaskState `json:"state"`

	// Timestamp is an optional RFC 3339 time at which the status was recorded.
	Timestamp string `json:"timestamp,omitzero"`
}

// Validate ensures the TaskStatus is valid.
func (s *TaskStatus) Validate() error {
	if s.State == "" {
		return &MissingFieldError{Field: "state"}
	}
	if err := s.State.Validate(); err != nil {
		return err
	}
	if s.Timestamp != "" {
		if _, err := time.Parse(time.RFC3339, s.Timestamp); err != nil {
			return &ValidationError{Field: "timestamp", Constraint: fmt.Sprintf("must be RFC 3339: %v", err)}
		}
	}
	if s.Message != nil {
		if err := s.Message.Validate(); err != nil {
			return fmt.Errorf("status message is invalid: %w", err)
		}
	}
	return nil
}

// NewTaskStatus creates a TaskStatus for the given state stamped with the
// current UTC time.
func NewTaskStatus(state TaskState) (TaskStatus, error) {
	if err := state.Validate(); err != nil {
		return TaskStatus{}, err
	}
	return TaskStatus{
		State:     state,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}, nil
}

// Task is the primary unit of work in the A2A protocol. A task is created in
// a non-terminal state and mutated only through status-update events; it
// never regresses out of a terminal state.
type Task struct {
	// Artifacts optionally lists the artifacts produced by the task.
	Artifacts []*Artifact `json:"artifacts,omitzero"`

	// ContextID groups related tasks and messages.
	ContextID string `json:"contextId"`

	// History optionally holds the ordered message history for the task.
	History []*Message `json:"history,omitzero"`

	// ID is the unique task identifier.
	ID string `json:"id"`

	// Metadata is an optional open metadata map.
	Metadata map[string]any `json:"metadata,omitzero"`

	// Status is the current task status.
	Status TaskStatus `json:"status"`
}

// Validate ensures the Task snapshot is intrinsically consistent: required
// identifiers present, status well formed, artifact IDs unique within the
// task and every history message valid.
func (t *Task) Validate() error {
	if t.ID == "" {
		return &MissingFieldError{Field: "id"}
	}
	if t.ContextID == "" {
		return &MissingFieldError{Field: "contextId"}
	}
	if err := t.Status.Validate(); err != nil {
		return fmt.Errorf("task status is invalid: %w", err)
	}

	seen := make(map[string]bool, len(t.Artifacts))
	for i, artifact := range t.Artifacts {
		if artifact == nil {
			return &ValidationError{Field: "artifacts", Constraint: fmt.Sprintf("artifact at index %d cannot be nil", i)}
		}
		if err := artifact.Validate(); err != nil {
			return fmt.Errorf("artifact at index %d is invalid: %w", i, err)
		}
		if seen[artifact.ArtifactID] {
			return &ValidationError{Field: "artifacts", Constraint: fmt.Sprintf("duplicate artifactId %q", artifact.ArtifactID)}
		}
		seen[artifact.ArtifactID] = true
	}

	for i, message := range t.History {
		if message == nil {
			return &ValidationError{Field: "history", Constraint: fmt.Sprintf("message at index %d cannot be nil", i)}
		}
		if err := message.Validate(); err != nil {
			return fmt.Errorf("history message at index %d is invalid: %w", i, err)
		}
	}

	return nil
}

// NewTask creates a Task in the "submitted" state from an initial request
// message. Task and context IDs are taken from the message when present and
// generated otherwise; the created task records the request message as the
// first history entry.
func NewTask(request *Message) (*Task, error) {
	if request == nil {
		return nil, &ValidationError{Field: "history", Constraint: "request message cannot be nil"}
	}
	if err := request.Validate(); err != nil {
		return nil, fmt.Errorf("invalid request message: %w", err)
	}

	taskID := request.TaskID
	if taskID == "" {
		taskID = uuid.NewString()
	}
	contextID := request.ContextID
	if contextID == "" {
		contextID = uuid.NewString()
	}

	return &Task{
		ContextID: contextID,
		History:   []*Message{request},
		ID:        taskID,
		Status:    TaskStatus{State: TaskStateSubmitted},
	}, nil
}

// CompletedTask creates a Task in the "completed" state carrying the
// artifacts produced by the work, plus an optional message history. It is
// used to construct the final representation of a task once an agent
// finishes.
func CompletedTask(taskID, contextID string, artifacts []*Artifact, history []*Message) (*Task, error) {
	if taskID == "" {
		return nil, &ValidationError{Field: "id", Constraint: "must not be empty"}
	}
	if contextID == "" {
		return nil, &ValidationError{Field: "contextId", Constraint: "must not be empty"}
	}

	task := &Task{
		Artifacts: artifacts,
		ContextID: contextID,
		History:   history,
		ID:        taskID,
		Status:    TaskStatus{State: TaskStateCompleted},
	}
	if err := task.Validate(); err != nil {
		return nil, err
	}
	return task, nil
}

// eventType marks Task as a member of the Event stream union.
func (t *Task) eventType() string { return "task" }
