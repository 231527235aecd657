// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package a2a

import (
	"strings"

	"github.com/google/uuid"
)

// Message is a single message exchanged between user and agent. Messages are
// immutable wire records: they are created by a sender and never mutated
// afterwards.
type Message struct {
	// ContextID is the optional context the message is associated with.
	ContextID string `json:"contextId,omitzero"`

	// Extensions is an optional ordered list of extension URIs active for
	// this message.
	Extensions []string `json:"extensions,omitzero"`

	// MessageID is the identifier created by the message sender.
	MessageID string `json:"messageId"`

	// Metadata is an optional open metadata map.
	Metadata map[string]any `json:"metadata,omitzero"`

	// Parts is the ordered message content. May be empty.
	Parts PartList `json:"parts"`

	// ReferenceTaskIDs optionally lists prior tasks referenced as context.
	ReferenceTaskIDs []string `json:"referenceTaskIds,omitzero"`

	// Role identifies the message sender.
	Role Role `json:"role"`

	// TaskID is the optional task the message is related to.
	TaskID string `json:"taskId,omitzero"`
}

// Validate ensures the Message is valid.
func (m *Message) Validate() error {
	if m.MessageID == "" {
		return &MissingFieldError{Field: "messageId"}
	}
	if err := m.Role.Validate(); err != nil {
		return err
	}
	return m.Parts.Validate()
}

// NewMessage creates a message with the given role and parts, generating a
// fresh message ID. The parts are validated eagerly; no half-valid message is
// ever returned.
func NewMessage(role Role, parts []Part) (*Message, error) {
	m := &Message{
		MessageID: uuid.NewString(),
		Parts:     parts,
		Role:      role,
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}

// NewUserTextMessage creates a user message containing a single TextPart.
// contextID and taskID may be empty.
func NewUserTextMessage(text, contextID, taskID string) (*Message, error) {
	return newTextMessage(RoleUser, text, contextID, taskID)
}

// NewAgentTextMessage creates an agent message containing a single TextPart.
// contextID and taskID may be empty.
func NewAgentTextMessage(text, contextID, taskID string) (*Message, error) {
	return newTextMessage(RoleAgent, text, contextID, taskID)
}

func newTextMessage(role Role, text, contextID, taskID string) (*Message, error) {
	if text == "" {
		return nil, &ValidationError{Field: "text", Constraint: "must not be empty"}
	}

	m, err := NewMessage(role, []Part{NewTextPart(text)})
	if err != nil {
		return nil, err
	}
	m.ContextID = contextID
	m.TaskID = taskID
	return m, nil
}

// GetTextParts extracts the text content from all TextParts in a part list.
func GetTextParts(parts []Part) []string {
	var texts []string
	for _, part := range parts {
		if tp, ok := part.(*TextPart); ok {
			texts = append(texts, tp.Text)
		}
	}
	return texts
}

// GetMessageText extracts and joins all text content from a message's parts.
// Returns "" if the message has no text parts.
func GetMessageText(m *Message, delimiter string) string {
	if m == nil {
		return ""
	}
	return strings.Join(GetTextParts(m.Parts), delimiter)
}

// eventType marks Message as a member of the Event stream union.
func (m *Message) eventType() string { return "message" }
