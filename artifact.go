// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package a2a

import (
	"fmt"

	"github.com/google/uuid"
)

// Artifact is a generated output of a task. Artifacts are produced
// incrementally or atomically by task execution and are referenced, never
// owned, by history entries and events.
type Artifact struct {
	// ArtifactID is unique within the owning task.
	ArtifactID string `json:"artifactId"`

	// Description is an optional human-readable description.
	Description string `json:"description,omitzero"`

	// Extensions is an optional ordered list of extension URIs.
	Extensions []string `json:"extensions,omitzero"`

	// Metadata is an optional open metadata map.
	Metadata map[string]any `json:"metadata,omitzero"`

	// Name is an optional human-readable name.
	Name string `json:"name,omitzero"`

	// Parts is the ordered artifact content. May be empty.
	Parts PartList `json:"parts"`
}

// Validate ensures the Artifact is valid.
func (a *Artifact) Validate() error {
	if a.ArtifactID == "" {
		return &MissingFieldError{Field: "artifactId"}
	}
	return a.Parts.Validate()
}

// NewArtifact creates an Artifact from a list of parts, a name and an
// optional description, generating a fresh artifact ID. The parts are
// validated eagerly.
func NewArtifact(parts []Part, name, description string) (*Artifact, error) {
	a := &Artifact{
		ArtifactID:  uuid.NewString(),
		Description: description,
		Name:        name,
		Parts:       parts,
	}
	if err := a.Validate(); err != nil {
		return nil, err
	}
	return a, nil
}

// NewTextArtifact creates an Artifact containing a single TextPart.
func NewTextArtifact(name, text, description string) (*Artifact, error) {
	if text == "" {
		return nil, &ValidationError{Field: "text", Constraint: "must not be empty"}
	}
	return NewArtifact([]Part{NewTextPart(text)}, name, description)
}

// NewDataArtifact creates an Artifact containing a single DataPart.
func NewDataArtifact(name string, data any, description string) (*Artifact, error) {
	if data == nil {
		return nil, &ValidationError{Field: "data", Constraint: "must not be nil"}
	}
	return NewArtifact([]Part{NewDataPart(data)}, name, description)
}

// NewFileArtifact creates an Artifact containing a single FilePart.
func NewFileArtifact(name string, file File, description string) (*Artifact, error) {
	if file == nil {
		return nil, &ValidationError{Field: "file", Constraint: "must not be nil"}
	}
	if err := file.Validate(); err != nil {
		return nil, fmt.Errorf("file content is invalid: %w", err)
	}
	return NewArtifact([]Part{NewFilePart(file)}, name, description)
}
