// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package a2a

import (
	"errors"
	"testing"
	"time"
)

func TestTaskStateValidate(t *testing.T) {
	tests := map[string]struct {
		state   TaskState
		wantErr bool
	}{
		"submitted":      {state: TaskStateSubmitted},
		"working":        {state: TaskStateWorking},
		"completed":      {state: TaskStateCompleted},
		"failed":         {state: TaskStateFailed},
		"canceled":       {state: TaskStateCanceled},
		"input-required": {state: TaskStateInputRequired},
		"rejected":       {state: TaskStateRejected},
		"auth-required":  {state: TaskStateAuthRequired},
		"unknown":        {state: TaskStateUnknown},
		"bogus state":    {state: TaskState("bogus-state"), wantErr: true},
		"empty state":    {state: TaskState(""), wantErr: true},
		"wrong case":     {state: TaskState("Submitted"), wantErr: true},
		"underscored":    {state: TaskState("input_required"), wantErr: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			err := tt.state.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("TaskState.Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				var stateErr *InvalidStateError
				if !errors.As(err, &stateErr) {
					t.Errorf("TaskState.Validate() error = %T, want InvalidStateError", err)
				}
			}
		})
	}
}

func TestTaskStatePredicates(t *testing.T) {
	terminal := []TaskState{TaskStateCompleted, TaskStateFailed, TaskStateCanceled, TaskStateRejected}
	for _, state := range terminal {
		if !state.IsTerminal() {
			t.Errorf("IsTerminal(%s) = false, want true", state)
		}
		if state.IsInterruptible() {
			t.Errorf("IsInterruptible(%s) = true, want false", state)
		}
	}

	interruptible := []TaskState{TaskStateInputRequired, TaskStateAuthRequired}
	for _, state := range interruptible {
		if state.IsTerminal() {
			t.Errorf("IsTerminal(%s) = true, want false", state)
		}
		if !state.IsInterruptible() {
			t.Errorf("IsInterruptible(%s) = false, want true", state)
		}
	}

	for _, state := range []TaskState{TaskStateSubmitted, TaskStateWorking, TaskStateUnknown} {
		if state.IsTerminal() || state.IsInterruptible() {
			t.Errorf("state %s should be neither terminal nor interruptible", state)
		}
	}
}

func TestNewTask(t *testing.T) {
	request, err := NewUserTextMessage("analyze this dataset", "", "")
	if err != nil {
		t.Fatalf("NewUserTextMessage() error = %v", err)
	}

	task, err := NewTask(request)
	if err != nil {
		t.Fatalf("NewTask() error = %v", err)
	}

	if task.ID == "" {
		t.Error("NewTask() generated no task ID")
	}
	if task.ContextID == "" {
		t.Error("NewTask() generated no context ID")
	}
	if task.Status.State != TaskStateSubmitted {
		t.Errorf("NewTask() state = %s, want submitted", task.Status.State)
	}
	if len(task.History) != 1 || task.History[0] != request {
		t.Error("NewTask() did not record the request as first history entry")
	}
}

func TestNewTaskKeepsMessageIDs(t *testing.T) {
	request, err := NewUserTextMessage("hello", "ctx-from-msg", "task-from-msg")
	if err != nil {
		t.Fatalf("NewUserTextMessage() error = %v", err)
	}

	task, err := NewTask(request)
	if err != nil {
		t.Fatalf("NewTask() error = %v", err)
	}
	if task.ID != "task-from-msg" {
		t.Errorf("NewTask() ID = %q, want task-from-msg", task.ID)
	}
	if task.ContextID != "ctx-from-msg" {
		t.Errorf("NewTask() ContextID = %q, want ctx-from-msg", task.ContextID)
	}
}

func TestNewTaskNilRequest(t *testing.T) {
	if _, err := NewTask(nil); err == nil {
		t.Error("NewTask(nil) expected error, got nil")
	}
}

func TestCompletedTask(t *testing.T) {
	artifact, err := NewTextArtifact("report", "all good", "")
	if err != nil {
		t.Fatalf("NewTextArtifact() error = %v", err)
	}

	task, err := CompletedTask("task-001", "ctx-001", []*Artifact{artifact}, nil)
	if err != nil {
		t.Fatalf("CompletedTask() error = %v", err)
	}
	if task.Status.State != TaskStateCompleted {
		t.Errorf("CompletedTask() state = %s, want completed", task.Status.State)
	}
	if len(task.Artifacts) != 1 {
		t.Errorf("CompletedTask() artifacts = %d, want 1", len(task.Artifacts))
	}

	if _, err := CompletedTask("", "ctx-001", nil, nil); err == nil {
		t.Error("CompletedTask() with empty task ID expected error, got nil")
	}
}

func TestTaskValidateDuplicateArtifacts(t *testing.T) {
	task := &Task{
		Artifacts: []*Artifact{
			{ArtifactID: "artifact-001", Parts: PartList{NewTextPart("a")}},
			{ArtifactID: "artifact-001", Parts: PartList{NewTextPart("b")}},
		},
		ContextID: "ctx-001",
		ID:        "task-001",
		Status:    TaskStatus{State: TaskStateCompleted},
	}

	err := task.Validate()
	var validationErr *ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("Task.Validate() error = %v, want ValidationError", err)
	}
	if validationErr.Field != "artifacts" {
		t.Errorf("ValidationError.Field = %q, want artifacts", validationErr.Field)
	}
}

func TestTaskStatusTimestamp(t *testing.T) {
	tests := map[string]struct {
		status  TaskStatus
		wantErr bool
	}{
		"no timestamp": {
			status: TaskStatus{State: TaskStateWorking},
		},
		"valid timestamp": {
			status: TaskStatus{State: TaskStateWorking, Timestamp: "2026-01-15T10:30:00Z"},
		},
		"malformed timestamp": {
			status:  TaskStatus{State: TaskStateWorking, Timestamp: "yesterday"},
			wantErr: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			err := tt.status.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("TaskStatus.Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestNewTaskStatus(t *testing.T) {
	status, err := NewTaskStatus(TaskStateWorking)
	if err != nil {
		t.Fatalf("NewTaskStatus() error = %v", err)
	}
	if status.State != TaskStateWorking {
		t.Errorf("NewTaskStatus() state = %s, want working", status.State)
	}
	if _, err := time.Parse(time.RFC3339, status.Timestamp); err != nil {
		t.Errorf("NewTaskStatus() timestamp %q is not RFC 3339: %v", status.Timestamp, err)
	}

	if _, err := NewTaskStatus(TaskState("nope")); err == nil {
		t.Error("NewTaskStatus() with invalid state expected error, got nil")
	}
}
