// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

// Package a2a implements the canonical wire format for the Agent-to-Agent
// (A2A) protocol data model.
//
// The package defines the message, task, artifact and agent-card entities of
// the protocol together with a deterministic JSON codec: object keys are
// emitted in ascending order, absent optional fields are omitted entirely
// (never emitted as null), and enum values use their declared hyphenated
// lowercase wire strings. Two conforming implementations encoding the same
// logical entity produce byte-identical documents.
//
// All entities are immutable once constructed and every operation is a pure
// function from value to value or error, so encode and decode calls may run
// concurrently without coordination.
package a2a

import "fmt"

// Version is the A2A protocol version implemented by this package.
const Version = "0.3.0"

// TaskState represents the lifecycle state of a Task.
type TaskState string

const (
	// TaskStateSubmitted indicates the task has been received but not yet started.
	TaskStateSubmitted TaskState = "submitted"

	// TaskStateWorking indicates the task is actively being processed.
	TaskStateWorking TaskState = "working"

	// TaskStateCompleted indicates the task completed successfully.
	TaskStateCompleted TaskState = "completed"

	// TaskStateFailed indicates the task failed.
	TaskStateFailed TaskState = "failed"

	// TaskStateCanceled indicates the task was canceled.
	TaskStateCanceled TaskState = "canceled"

	// TaskStateInputRequired indicates the task needs additional input from the user.
	TaskStateInputRequired TaskState = "input-required"

	// TaskStateRejected indicates the task was rejected by the agent.
	TaskStateRejected TaskState = "rejected"

	// TaskStateAuthRequired indicates the task needs authentication before it can proceed.
	TaskStateAuthRequired TaskState = "auth-required"

	// TaskStateUnknown is a forward-compatibility state for readers that
	// encounter a task produced by a newer protocol revision.
	TaskStateUnknown TaskState = "unknown"
)

// taskStates is the static table of recognized task states. Read-only after
// process start.
var taskStates = map[TaskState]bool{
	TaskStateSubmitted:     true,
	TaskStateWorking:       true,
	TaskStateCompleted:     true,
	TaskStateFailed:        true,
	TaskStateCanceled:      true,
	TaskStateInputRequired: true,
	TaskStateRejected:      true,
	TaskStateAuthRequired:  true,
	TaskStateUnknown:       true,
}

// Validate ensures the TaskState is one of the defined wire values.
func (s TaskState) Validate() error {
	if !taskStates[s] {
		return &InvalidStateError{Value: string(s)}
	}
	return nil
}

// IsTerminal reports whether no further status updates are legal for the state.
func (s TaskState) IsTerminal() bool {
	switch s {
	case TaskStateCompleted, TaskStateFailed, TaskStateCanceled, TaskStateRejected:
		return true
	default:
		return false
	}
}

// IsInterruptible reports whether the state pauses task progress pending
// external input. Interruptible states legally carry a clarifying status
// message.
func (s TaskState) IsInterruptible() bool {
	return s == TaskStateInputRequired || s == TaskStateAuthRequired
}

// String returns the wire string of the state.
func (s TaskState) String() string {
	return string(s)
}

// Role represents the role of a message sender.
type Role string

// Role constants for message senders.
const (
	RoleUser  Role = "user"
	RoleAgent Role = "agent"
)

// Validate ensures the Role is a defined wire value.
func (r Role) Validate() error {
	if r != RoleUser && r != RoleAgent {
		return &ValidationError{Field: "role", Constraint: fmt.Sprintf("must be %q or %q, got %q", RoleUser, RoleAgent, r)}
	}
	return nil
}

// APIKeyLocation represents the location of an API key in HTTP requests.
type APIKeyLocation string

// Valid locations for API keys.
const (
	APIKeyLocationQuery  APIKeyLocation = "query"
	APIKeyLocationHeader APIKeyLocation = "header"
	APIKeyLocationCookie APIKeyLocation = "cookie"
)

// Validate ensures the APIKeyLocation is a defined wire value.
func (l APIKeyLocation) Validate() error {
	switch l {
	case APIKeyLocationQuery, APIKeyLocationHeader, APIKeyLocationCookie:
		return nil
	default:
		return &ValidationError{Field: "in", Constraint: fmt.Sprintf("must be query, header or cookie, got %q", l)}
	}
}

// Part kind discriminators.
const (
	KindText = "text"
	KindFile = "file"
	KindData = "data"
)

// Transport protocol identifiers for agent interfaces.
const (
	TransportJSONRPC  = "JSONRPC"
	TransportGRPC     = "GRPC"
	TransportHTTPJSON = "HTTP+JSON"
)

// transports is the static table of recognized transport identifiers.
var transports = map[string]bool{
	TransportJSONRPC:  true,
	TransportGRPC:     true,
	TransportHTTPJSON: true,
}

// A2A is implemented by every entity in the data model. Validate reports the
// first constraint violation; a nil error means the entity is structurally
// sound and safe to encode.
type A2A interface {
	Validate() error
}
