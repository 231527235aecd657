// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package a2a

const (
	// AgentCardWellKnownPath is the well-known HTTP path where agents publish
	// their card.
	AgentCardWellKnownPath = "/.well-known/agent.json"

	// ExtendedAgentCardPath is the HTTP path where agents serve the extended
	// card to authenticated callers.
	ExtendedAgentCardPath = "/agent/authenticatedExtendedCard"
)
