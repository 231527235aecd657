// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package a2a

import (
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/lestrrat-go/jwx/v3/jwa"
	"github.com/lestrrat-go/jwx/v3/jws"
)

// SignAgentCard signs card with key and returns the detached JWS signature.
// The signing payload is the canonical encoding of the card with its
// signatures field cleared, so signatures never cover each other and any
// party can reproduce the payload from the card alone.
func SignAgentCard(card *AgentCard, alg jwa.SignatureAlgorithm, key any) (*AgentCardSignature, error) {
	payload, err := cardSigningPayload(card)
	if err != nil {
		return nil, err
	}

	compact, err := jws.Sign(payload, jws.WithKey(alg, key))
	if err != nil {
		return nil, fmt.Errorf("sign agent card: %w", err)
	}

	parts := strings.Split(string(compact), ".")
	if len(parts) != 3 {
		return nil, fmt.Errorf("sign agent card: unexpected JWS serialization")
	}

	return &AgentCardSignature{
		Protected: parts[0],
		Signature: parts[2],
	}, nil
}

// VerifyAgentCardSignature verifies that sig is a valid signature over card
// by the holder of key. The payload is reconstructed the same way
// [SignAgentCard] builds it.
func VerifyAgentCardSignature(card *AgentCard, sig *AgentCardSignature, alg jwa.SignatureAlgorithm, key any) error {
	if sig == nil {
		return &MissingFieldError{Field: "signature"}
	}
	if err := sig.Validate(); err != nil {
		return err
	}

	payload, err := cardSigningPayload(card)
	if err != nil {
		return err
	}

	compact := sig.Protected + "." + base64.RawURLEncoding.EncodeToString(payload) + "." + sig.Signature
	if _, err := jws.Verify([]byte(compact), jws.WithKey(alg, key)); err != nil {
		return fmt.Errorf("verify agent card signature: %w", err)
	}
	return nil
}

// cardSigningPayload returns the canonical bytes a card signature covers.
func cardSigningPayload(card *AgentCard) ([]byte, error) {
	if card == nil {
		return nil, &MissingFieldError{Field: "card"}
	}

	unsigned := *card
	unsigned.Signatures = nil
	return Encode(&unsigned)
}
