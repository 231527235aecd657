// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package a2a

import (
	"bytes"
	"errors"
	"fmt"
	"sort"

	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"
)

// Encode marshals v into its canonical wire form: compact JSON with every
// object's members sorted by key in ascending byte order and absent optional
// fields omitted rather than emitted as null. Encoding the same value always
// produces the same bytes.
//
// If v implements [A2A] it is validated first, so invalid values are never
// serialized.
func Encode(v any) ([]byte, error) {
	if a, ok := v.(A2A); ok {
		if err := a.Validate(); err != nil {
			return nil, err
		}
	}

	data, err := json.Marshal(v, json.Deterministic(true))
	if err != nil {
		return nil, fmt.Errorf("marshal %T: %w", v, err)
	}

	return canonicalize(data)
}

// Decode unmarshals canonical or non-canonical wire bytes into v, then
// validates the result when v implements [A2A]. Unrecognized object keys are
// ignored for forward compatibility.
func Decode(data []byte, v any) error {
	if err := json.Unmarshal(data, v); err != nil {
		return decodeError(err)
	}
	if a, ok := v.(A2A); ok {
		return a.Validate()
	}
	return nil
}

// DecodeTask decodes and validates a Task.
func DecodeTask(data []byte) (*Task, error) {
	task := new(Task)
	if err := Decode(data, task); err != nil {
		return nil, err
	}
	return task, nil
}

// DecodeMessage decodes and validates a Message.
func DecodeMessage(data []byte) (*Message, error) {
	msg := new(Message)
	if err := Decode(data, msg); err != nil {
		return nil, err
	}
	return msg, nil
}

// DecodeArtifact decodes and validates an Artifact.
func DecodeArtifact(data []byte) (*Artifact, error) {
	artifact := new(Artifact)
	if err := Decode(data, artifact); err != nil {
		return nil, err
	}
	return artifact, nil
}

// DecodeAgentCard decodes and validates an AgentCard.
func DecodeAgentCard(data []byte) (*AgentCard, error) {
	card := new(AgentCard)
	if err := Decode(data, card); err != nil {
		return nil, err
	}
	return card, nil
}

// decodeError maps unmarshal failures onto this package's error types.
// Errors raised by this package's own UnmarshalJSON methods pass through
// unchanged; structural mismatches become TypeMismatchErrors.
func decodeError(err error) error {
	var shapeErr *ShapeConflictError
	if errors.As(err, &shapeErr) {
		return shapeErr
	}
	var variantErr *UnknownVariantError
	if errors.As(err, &variantErr) {
		return variantErr
	}
	var missingErr *MissingFieldError
	if errors.As(err, &missingErr) {
		return missingErr
	}
	var mismatchErr *TypeMismatchError
	if errors.As(err, &mismatchErr) {
		return mismatchErr
	}
	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		return validationErr
	}
	var stateErr *InvalidStateError
	if errors.As(err, &stateErr) {
		return stateErr
	}

	var semErr *json.SemanticError
	if errors.As(err, &semErr) {
		expected := "unknown"
		if semErr.GoType != nil {
			expected = semErr.GoType.String()
		}
		actual := "unknown"
		if semErr.JSONKind != 0 {
			actual = semErr.JSONKind.String()
		}
		return &TypeMismatchError{
			Field:    string(semErr.JSONPointer),
			Expected: expected,
			Actual:   actual,
		}
	}

	return err
}

// canonicalize rewrites compact JSON so that every object's members appear in
// ascending byte order of their keys, recursively. Array order and all scalar
// values are preserved verbatim.
func canonicalize(data []byte) ([]byte, error) {
	dec := jsontext.NewDecoder(bytes.NewReader(data))
	out, err := canonicalValue(dec)
	if err != nil {
		return nil, fmt.Errorf("canonicalize: %w", err)
	}
	return out, nil
}

func canonicalValue(dec *jsontext.Decoder) ([]byte, error) {
	switch dec.PeekKind() {
	case '{':
		return canonicalObject(dec)
	case '[':
		return canonicalArray(dec)
	default:
		val, err := dec.ReadValue()
		if err != nil {
			return nil, err
		}
		return bytes.Clone(val), nil
	}
}

func canonicalObject(dec *jsontext.Decoder) ([]byte, error) {
	if _, err := dec.ReadToken(); err != nil {
		return nil, err
	}

	type member struct {
		name  string
		value []byte
	}
	var members []member
	for dec.PeekKind() != '}' {
		tok, err := dec.ReadToken()
		if err != nil {
			return nil, err
		}
		name := tok.String()
		value, err := canonicalValue(dec)
		if err != nil {
			return nil, err
		}
		members = append(members, member{name: name, value: value})
	}
	if _, err := dec.ReadToken(); err != nil {
		return nil, err
	}

	sort.Slice(members, func(i, j int) bool { return members[i].name < members[j].name })

	out := []byte{'{'}
	for i, m := range members {
		if i > 0 {
			out = append(out, ',')
		}
		quoted, err := jsontext.AppendQuote(nil, m.name)
		if err != nil {
			return nil, err
		}
		out = append(out, quoted...)
		out = append(out, ':')
		out = append(out, m.value...)
	}
	return append(out, '}'), nil
}

func canonicalArray(dec *jsontext.Decoder) ([]byte, error) {
	if _, err := dec.ReadToken(); err != nil {
		return nil, err
	}

	out := []byte{'['}
	first := true
	for dec.PeekKind() != ']' {
		elem, err := canonicalValue(dec)
		if err != nil {
			return nil, err
		}
		if !first {
			out = append(out, ',')
		}
		first = false
		out = append(out, elem...)
	}
	if _, err := dec.ReadToken(); err != nil {
		return nil, err
	}
	return append(out, ']'), nil
}
