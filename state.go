// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package a2a

// State consistency checking for the task lifecycle.
//
// The checker is stateless per call: it validates a single snapshot, not a
// transition. Transition legality, such as a submitted task moving through
// working and interruptible states before settling in a terminal one, is
// asserted by the owning orchestration layer, which builds on the
// TaskState.IsTerminal and TaskState.IsInterruptible predicates this package
// supplies.

// ValidateTask checks that a Task snapshot is intrinsically consistent with
// the task lifecycle: the status state is a defined value, artifact IDs are
// unique within the task, and the status and history messages are well
// formed. An interruptible state may carry a clarifying status message;
// other states are not required to.
func ValidateTask(task *Task) error {
	if task == nil {
		return &ValidationError{Field: "task", Constraint: "must not be nil"}
	}
	return task.Validate()
}

// CheckStatusUpdate checks that a status-update event is consistent with the
// lifecycle: an event marked final must carry a terminal status state.
func CheckStatusUpdate(event *TaskStatusUpdateEvent) error {
	if event == nil {
		return &ValidationError{Field: "event", Constraint: "must not be nil"}
	}
	return event.Validate()
}
