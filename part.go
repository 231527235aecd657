// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package a2a

import (
	"fmt"

	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"
)

// Part is a single content segment of a message or artifact. It is a
// discriminated union over TextPart, FilePart and DataPart, tagged on the
// wire by the "kind" field.
type Part interface {
	A2A

	// GetKind returns the wire discriminator of the part.
	GetKind() string

	// GetMetadata returns the optional open metadata map of the part.
	GetMetadata() map[string]any
}

// TextPart is a plain UTF-8 text segment.
type TextPart struct {
	// Kind is always "text".
	Kind string `json:"kind"`

	// Metadata is an optional open metadata map.
	Metadata map[string]any `json:"metadata,omitzero"`

	// Text is the text content.
	Text string `json:"text"`
}

// GetKind returns the part kind.
func (p *TextPart) GetKind() string { return p.Kind }

// GetMetadata returns the part metadata.
func (p *TextPart) GetMetadata() map[string]any { return p.Metadata }

// Validate ensures the TextPart is valid.
func (p *TextPart) Validate() error {
	if p.Kind != KindText {
		return &ValidationError{Field: "kind", Constraint: fmt.Sprintf("must be %q, got %q", KindText, p.Kind)}
	}
	if p.Text == "" {
		return &MissingFieldError{Field: "text"}
	}
	return nil
}

// FilePart is a file segment carrying a File content union.
type FilePart struct {
	// File is the file content, either inline bytes or a URI reference.
	File File `json:"file"`

	// Kind is always "file".
	Kind string `json:"kind"`

	// Metadata is an optional open metadata map.
	Metadata map[string]any `json:"metadata,omitzero"`
}

// GetKind returns the part kind.
func (p *FilePart) GetKind() string { return p.Kind }

// GetMetadata returns the part metadata.
func (p *FilePart) GetMetadata() map[string]any { return p.Metadata }

// Validate ensures the FilePart is valid.
func (p *FilePart) Validate() error {
	if p.Kind != KindFile {
		return &ValidationError{Field: "kind", Constraint: fmt.Sprintf("must be %q, got %q", KindFile, p.Kind)}
	}
	if p.File == nil {
		return &MissingFieldError{Field: "file"}
	}
	return p.File.Validate()
}

// UnmarshalJSON implements [json.Unmarshaler]. The File union has no wire
// tag, so the variant is resolved from the key set of the "file" object.
func (p *FilePart) UnmarshalJSON(data []byte) error {
	var shadow struct {
		File     jsontext.Value `json:"file"`
		Kind     string         `json:"kind"`
		Metadata map[string]any `json:"metadata"`
	}
	if err := json.Unmarshal(data, &shadow); err != nil {
		return fmt.Errorf("unmarshal file part: %w", err)
	}
	if len(shadow.File) == 0 {
		return &MissingFieldError{Field: "file"}
	}

	file, err := resolveFile(shadow.File)
	if err != nil {
		return err
	}

	p.File = file
	p.Kind = shadow.Kind
	p.Metadata = shadow.Metadata
	return nil
}

// DataPart is a structured data segment carrying an arbitrary JSON value.
// The value is preserved opaquely through encode and decode; nested objects
// are still subject to canonical key ordering on output.
type DataPart struct {
	// Data is the arbitrary JSON payload: object, array or scalar.
	Data any `json:"data"`

	// Kind is always "data".
	Kind string `json:"kind"`

	// Metadata is an optional open metadata map.
	Metadata map[string]any `json:"metadata,omitzero"`
}

// GetKind returns the part kind.
func (p *DataPart) GetKind() string { return p.Kind }

// GetMetadata returns the part metadata.
func (p *DataPart) GetMetadata() map[string]any { return p.Metadata }

// Validate ensures the DataPart is valid.
func (p *DataPart) Validate() error {
	if p.Kind != KindData {
		return &ValidationError{Field: "kind", Constraint: fmt.Sprintf("must be %q, got %q", KindData, p.Kind)}
	}
	if p.Data == nil {
		return &MissingFieldError{Field: "data"}
	}
	return nil
}

// NewTextPart creates a TextPart.
func NewTextPart(text string) *TextPart {
	return &TextPart{Kind: KindText, Text: text}
}

// NewFilePart creates a FilePart from a resolved File variant.
func NewFilePart(file File) *FilePart {
	return &FilePart{Kind: KindFile, File: file}
}

// NewDataPart creates a DataPart.
func NewDataPart(data any) *DataPart {
	return &DataPart{Kind: KindData, Data: data}
}

// decodePart resolves the Part union from a raw JSON object by its "kind"
// tag. An unrecognized tag fails with an UnknownVariantError.
func decodePart(data jsontext.Value) (Part, error) {
	var tag struct {
		Kind string `json:"kind"`
	}
	if err := json.Unmarshal(data, &tag); err != nil {
		return nil, &TypeMismatchError{Field: "parts", Expected: "object", Actual: data.Kind().String()}
	}

	switch tag.Kind {
	case KindText:
		var p TextPart
		if err := json.Unmarshal(data, &p); err != nil {
			return nil, fmt.Errorf("unmarshal text part: %w", err)
		}
		return &p, nil

	case KindFile:
		var p FilePart
		if err := json.Unmarshal(data, &p); err != nil {
			return nil, fmt.Errorf("unmarshal file part: %w", err)
		}
		return &p, nil

	case KindData:
		var p DataPart
		if err := json.Unmarshal(data, &p); err != nil {
			return nil, fmt.Errorf("unmarshal data part: %w", err)
		}
		return &p, nil

	default:
		return nil, &UnknownVariantError{Family: "Part", Tag: tag.Kind}
	}
}

// PartList is an ordered sequence of parts. It exists so part unions nested
// in messages and artifacts resolve during unmarshaling; marshaling uses the
// concrete variant types directly.
type PartList []Part

// UnmarshalJSON implements [json.Unmarshaler].
func (l *PartList) UnmarshalJSON(data []byte) error {
	var raws []jsontext.Value
	if err := json.Unmarshal(data, &raws); err != nil {
		return fmt.Errorf("unmarshal parts: %w", err)
	}

	parts := make(PartList, 0, len(raws))
	for _, raw := range raws {
		part, err := decodePart(raw)
		if err != nil {
			return err
		}
		parts = append(parts, part)
	}

	*l = parts
	return nil
}

// Validate ensures every part in the list is valid.
func (l PartList) Validate() error {
	for i, part := range l {
		if part == nil {
			return &ValidationError{Field: "parts", Constraint: fmt.Sprintf("part at index %d cannot be nil", i)}
		}
		if err := part.Validate(); err != nil {
			return fmt.Errorf("part at index %d is invalid: %w", i, err)
		}
	}
	return nil
}
