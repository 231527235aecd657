// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package a2a

import (
	"fmt"
	"maps"
	"slices"

	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"
)

// Event is the union of records an agent emits while working on a task: a
// full Task snapshot, a direct Message, or one of the two incremental update
// events. Events are append-only stream elements, never mutated after
// emission.
//
// The union carries no wrapper keys and no explicit tag; DecodeEvent
// resolves the variant from the shape of the object.
type Event interface {
	A2A
	eventType() string
}

// TaskStatusUpdateEvent notifies that a task's status changed.
type TaskStatusUpdateEvent struct {
	// ContextID is the context the task is associated with.
	ContextID string `json:"contextId"`

	// Final marks the last event for the task. A true value is only legal
	// together with a terminal status state.
	Final bool `json:"final"`

	// Metadata is an optional open metadata map.
	Metadata map[string]any `json:"metadata,omitzero"`

	// Status is the new task status.
	Status TaskStatus `json:"status"`

	// TaskID identifies the task whose status changed.
	TaskID string `json:"taskId"`
}

// Validate ensures the event is valid, including that a set final flag
// coincides with a terminal status state.
func (e *TaskStatusUpdateEvent) Validate() error {
	if e.TaskID == "" {
		return &MissingFieldError{Field: "taskId"}
	}
	if e.ContextID == "" {
		return &MissingFieldError{Field: "contextId"}
	}
	if err := e.Status.Validate(); err != nil {
		return fmt.Errorf("event status is invalid: %w", err)
	}
	if e.Final && !e.Status.State.IsTerminal() {
		return &FinalFlagMismatchError{State: e.Status.State}
	}
	return nil
}

func (e *TaskStatusUpdateEvent) eventType() string { return "status-update" }

// TaskArtifactUpdateEvent notifies that an artifact was produced or extended.
type TaskArtifactUpdateEvent struct {
	// Append indicates the artifact's parts concatenate onto a previously
	// emitted artifact with the same ID rather than replacing it.
	Append *bool `json:"append,omitzero"`

	// Artifact is the produced artifact or chunk.
	Artifact *Artifact `json:"artifact"`

	// ContextID is the context the task is associated with.
	ContextID string `json:"contextId"`

	// LastChunk indicates no more chunks for this artifact will follow.
	LastChunk *bool `json:"lastChunk,omitzero"`

	// Metadata is an optional open metadata map.
	Metadata map[string]any `json:"metadata,omitzero"`

	// TaskID identifies the task that produced the artifact.
	TaskID string `json:"taskId"`
}

// Validate ensures the event is valid.
func (e *TaskArtifactUpdateEvent) Validate() error {
	if e.TaskID == "" {
		return &MissingFieldError{Field: "taskId"}
	}
	if e.ContextID == "" {
		return &MissingFieldError{Field: "contextId"}
	}
	if e.Artifact == nil {
		return &MissingFieldError{Field: "artifact"}
	}
	if err := e.Artifact.Validate(); err != nil {
		return fmt.Errorf("event artifact is invalid: %w", err)
	}
	return nil
}

func (e *TaskArtifactUpdateEvent) eventType() string { return "artifact-update" }

// DecodeEvent resolves and decodes a stream element into its concrete Event
// variant. The union has no wire tag; the variant is determined by field
// presence: an "artifact" key marks an artifact update, "final" (or "status"
// together with "taskId") a status update, "role" a message, and "id" with
// "status" a task snapshot. Any other shape fails with a ShapeConflictError.
func DecodeEvent(data []byte) (Event, error) {
	var members map[string]jsontext.Value
	if err := json.Unmarshal(data, &members); err != nil {
		return nil, &TypeMismatchError{Field: "", Expected: "object", Actual: jsontext.Value(data).Kind().String()}
	}

	has := func(key string) bool {
		_, ok := members[key]
		return ok
	}

	var event Event
	switch {
	case has("artifact"):
		event = new(TaskArtifactUpdateEvent)
	case has("final"), has("status") && has("taskId"):
		event = new(TaskStatusUpdateEvent)
	case has("role"):
		event = new(Message)
	case has("status") && has("id"):
		event = new(Task)
	default:
		return nil, &ShapeConflictError{
			Family: "Event",
			Keys:   slices.Sorted(maps.Keys(members)),
		}
	}

	if err := Decode(data, event); err != nil {
		return nil, err
	}
	return event, nil
}
