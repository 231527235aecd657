// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package a2a

import (
	"errors"
	"testing"
)

func TestValidateTask(t *testing.T) {
	tests := map[string]struct {
		task    *Task
		wantErr bool
	}{
		"nil task": {
			task:    nil,
			wantErr: true,
		},
		"valid submitted task": {
			task: &Task{
				ContextID: "ctx-001",
				ID:        "task-001",
				Status:    TaskStatus{State: TaskStateSubmitted},
			},
		},
		"interruptible state with clarifying message": {
			task: &Task{
				ContextID: "ctx-001",
				ID:        "task-001",
				Status: TaskStatus{
					Message: &Message{
						MessageID: "msg-001",
						Parts:     PartList{NewTextPart("which year?")},
						Role:      RoleAgent,
					},
					State: TaskStateInputRequired,
				},
			},
		},
		"undefined state": {
			task: &Task{
				ContextID: "ctx-001",
				ID:        "task-001",
				Status:    TaskStatus{State: TaskState("paused")},
			},
			wantErr: true,
		},
		"invalid history message": {
			task: &Task{
				ContextID: "ctx-001",
				History:   []*Message{{Role: RoleUser}},
				ID:        "task-001",
				Status:    TaskStatus{State: TaskStateWorking},
			},
			wantErr: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			err := ValidateTask(tt.task)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateTask() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestCheckStatusUpdate(t *testing.T) {
	if err := CheckStatusUpdate(nil); err == nil {
		t.Error("CheckStatusUpdate(nil) expected error, got nil")
	}

	event := &TaskStatusUpdateEvent{
		ContextID: "ctx-001",
		Final:     true,
		Status:    TaskStatus{State: TaskStateAuthRequired},
		TaskID:    "task-001",
	}
	err := CheckStatusUpdate(event)
	var mismatchErr *FinalFlagMismatchError
	if !errors.As(err, &mismatchErr) {
		t.Fatalf("CheckStatusUpdate() error = %v, want FinalFlagMismatchError", err)
	}

	event.Status.State = TaskStateCanceled
	if err := CheckStatusUpdate(event); err != nil {
		t.Errorf("CheckStatusUpdate() error = %v", err)
	}
}
