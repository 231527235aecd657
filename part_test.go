// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package a2a

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestTextPartValidate(t *testing.T) {
	tests := map[string]struct {
		part    TextPart
		wantErr bool
	}{
		"valid text part": {
			part:    TextPart{Kind: "text", Text: "Hello, World!"},
			wantErr: false,
		},
		"valid text part with metadata": {
			part: TextPart{
				Kind:     "text",
				Text:     "Hello, World!",
				Metadata: map[string]any{"author": "test"},
			},
			wantErr: false,
		},
		"wrong kind": {
			part:    TextPart{Kind: "data", Text: "Hello, World!"},
			wantErr: true,
		},
		"empty text": {
			part:    TextPart{Kind: "text"},
			wantErr: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			err := tt.part.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("TextPart.Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestDataPartValidate(t *testing.T) {
	tests := map[string]struct {
		part    DataPart
		wantErr bool
	}{
		"valid data part": {
			part:    DataPart{Kind: "data", Data: map[string]any{"key": "value"}},
			wantErr: false,
		},
		"scalar payload": {
			part:    DataPart{Kind: "data", Data: "just a string"},
			wantErr: false,
		},
		"nil data": {
			part:    DataPart{Kind: "data"},
			wantErr: true,
		},
		"wrong kind": {
			part:    DataPart{Kind: "text", Data: map[string]any{}},
			wantErr: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			err := tt.part.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("DataPart.Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestPartListKindDispatch(t *testing.T) {
	data := []byte(`{"messageId":"msg-001","parts":[` +
		`{"kind":"text","text":"hello"},` +
		`{"file":{"bytes":"aGVsbG8=","name":"hello.txt"},"kind":"file"},` +
		`{"data":{"answer":42},"kind":"data"}` +
		`],"role":"user"}`)

	msg, err := DecodeMessage(data)
	if err != nil {
		t.Fatalf("DecodeMessage() error = %v", err)
	}
	if len(msg.Parts) != 3 {
		t.Fatalf("len(Parts) = %d, want 3", len(msg.Parts))
	}

	text, ok := msg.Parts[0].(*TextPart)
	if !ok {
		t.Fatalf("Parts[0] = %T, want *TextPart", msg.Parts[0])
	}
	if text.Text != "hello" {
		t.Errorf("TextPart.Text = %q, want hello", text.Text)
	}

	file, ok := msg.Parts[1].(*FilePart)
	if !ok {
		t.Fatalf("Parts[1] = %T, want *FilePart", msg.Parts[1])
	}
	wantFile := FileWithBytes{Bytes: "aGVsbG8=", Name: "hello.txt"}
	if diff := cmp.Diff(File(wantFile), file.File); diff != "" {
		t.Errorf("FilePart.File mismatch (-want +got):\n%s", diff)
	}

	if _, ok := msg.Parts[2].(*DataPart); !ok {
		t.Fatalf("Parts[2] = %T, want *DataPart", msg.Parts[2])
	}
}

func TestPartListUnknownKind(t *testing.T) {
	data := []byte(`{"messageId":"msg-001","parts":[{"kind":"video","url":"v.mp4"}],"role":"user"}`)

	_, err := DecodeMessage(data)
	var variantErr *UnknownVariantError
	if !errors.As(err, &variantErr) {
		t.Fatalf("DecodeMessage() error = %v, want UnknownVariantError", err)
	}
	if variantErr.Family != "Part" {
		t.Errorf("UnknownVariantError.Family = %q, want Part", variantErr.Family)
	}
	if variantErr.Tag != "video" {
		t.Errorf("UnknownVariantError.Tag = %q, want video", variantErr.Tag)
	}
}
