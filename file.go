// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package a2a

import (
	"encoding/base64"
	"fmt"
	"maps"
	"net/url"
	"slices"

	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"
)

// File is the content of a file part: exactly one of the two variants
// FileWithBytes or FileWithURI, never both. The union carries no explicit
// tag on the wire; it is discriminated by which of the mutually exclusive
// "bytes" and "uri" keys is present.
type File interface {
	A2A

	// GetBytes returns the base64 payload for byte-backed files, "" otherwise.
	GetBytes() string

	// GetURI returns the URI for URI-backed files, "" otherwise.
	GetURI() string

	// GetMimeType returns the optional MIME type of the file.
	GetMimeType() string

	// GetName returns the optional file name.
	GetName() string
}

// FileWithBytes is the File variant where "bytes" is present and "uri" is absent.
type FileWithBytes struct {
	// Bytes is the standard base64 encoding of the file content.
	Bytes string `json:"bytes"`

	// MimeType is the optional MIME type of the file.
	MimeType string `json:"mimeType,omitzero"`

	// Name is the optional file name.
	Name string `json:"name,omitzero"`
}

// GetBytes returns the base64 payload.
func (f FileWithBytes) GetBytes() string { return f.Bytes }

// GetURI returns "" for byte-backed files.
func (f FileWithBytes) GetURI() string { return "" }

// GetMimeType returns the optional MIME type.
func (f FileWithBytes) GetMimeType() string { return f.MimeType }

// GetName returns the optional file name.
func (f FileWithBytes) GetName() string { return f.Name }

// Validate ensures the FileWithBytes is valid.
func (f FileWithBytes) Validate() error {
	if f.Bytes == "" {
		return &MissingFieldError{Field: "bytes"}
	}
	if _, err := base64.StdEncoding.DecodeString(f.Bytes); err != nil {
		return &ValidationError{Field: "bytes", Constraint: fmt.Sprintf("must be standard base64: %v", err)}
	}
	return nil
}

// FileWithURI is the File variant where "uri" is present and "bytes" is absent.
type FileWithURI struct {
	// MimeType is the optional MIME type of the file.
	MimeType string `json:"mimeType,omitzero"`

	// Name is the optional file name.
	Name string `json:"name,omitzero"`

	// URI locates the file content.
	URI string `json:"uri"`
}

// GetBytes returns "" for URI-backed files.
func (f FileWithURI) GetBytes() string { return "" }

// GetURI returns the file URI.
func (f FileWithURI) GetURI() string { return f.URI }

// GetMimeType returns the optional MIME type.
func (f FileWithURI) GetMimeType() string { return f.MimeType }

// GetName returns the optional file name.
func (f FileWithURI) GetName() string { return f.Name }

// Validate ensures the FileWithURI is valid.
func (f FileWithURI) Validate() error {
	if f.URI == "" {
		return &MissingFieldError{Field: "uri"}
	}
	if _, err := url.Parse(f.URI); err != nil {
		return &ValidationError{Field: "uri", Constraint: fmt.Sprintf("must be a valid URI: %v", err)}
	}
	return nil
}

// resolveFile resolves the File union from a decoded JSON object. Resolution
// is pure: the input is never mutated and never retried. An object carrying
// both "bytes" and "uri", or neither, fails with a ShapeConflictError naming
// the family and the object's key set.
func resolveFile(data jsontext.Value) (File, error) {
	var members map[string]jsontext.Value
	if err := json.Unmarshal(data, &members); err != nil {
		return nil, &TypeMismatchError{Field: "file", Expected: "object", Actual: data.Kind().String()}
	}

	_, hasBytes := members["bytes"]
	_, hasURI := members["uri"]

	switch {
	case hasBytes && hasURI, !hasBytes && !hasURI:
		return nil, &ShapeConflictError{
			Family: "FileContent",
			Keys:   slices.Sorted(maps.Keys(members)),
		}

	case hasBytes:
		var f FileWithBytes
		if err := json.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("unmarshal FileWithBytes: %w", err)
		}
		return f, nil

	default:
		var f FileWithURI
		if err := json.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("unmarshal FileWithURI: %w", err)
		}
		return f, nil
	}
}
