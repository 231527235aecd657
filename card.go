// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package a2a

import "fmt"

// AgentCard is the self-describing manifest an agent publishes so that other
// agents can discover its skills, transports and security requirements.
type AgentCard struct {
	// AdditionalInterfaces lists supplementary transport endpoints beyond the
	// preferred one.
	AdditionalInterfaces []AgentInterface `json:"additionalInterfaces,omitzero"`

	// Capabilities declares the optional protocol features the agent supports.
	Capabilities AgentCapabilities `json:"capabilities"`

	// DefaultInputModes lists the media types accepted as input across all
	// skills unless a skill overrides them.
	DefaultInputModes []string `json:"defaultInputModes"`

	// DefaultOutputModes lists the media types produced as output across all
	// skills unless a skill overrides them.
	DefaultOutputModes []string `json:"defaultOutputModes"`

	// Description is a human-readable description of the agent.
	Description string `json:"description"`

	// DocumentationURL is an optional URL to the agent's documentation.
	DocumentationURL string `json:"documentationUrl,omitzero"`

	// IconURL is an optional URL to an icon for the agent.
	IconURL string `json:"iconUrl,omitzero"`

	// Name is the human-readable name of the agent.
	Name string `json:"name"`

	// PreferredTransport is the transport protocol of the main endpoint URL.
	PreferredTransport string `json:"preferredTransport,omitzero"`

	// ProtocolVersion is the protocol version this card conforms to.
	ProtocolVersion string `json:"protocolVersion,omitzero"`

	// Provider identifies the organization behind the agent.
	Provider *AgentProvider `json:"provider,omitzero"`

	// Security lists the alternative security requirement sets; satisfying
	// any one set authorizes a request.
	Security []SecurityRequirement `json:"security,omitzero"`

	// SecuritySchemes declares the security schemes referenced by Security.
	SecuritySchemes SecuritySchemeMap `json:"securitySchemes,omitzero"`

	// Signatures holds detached JWS signatures protecting the card contents.
	Signatures []AgentCardSignature `json:"signatures,omitzero"`

	// Skills lists the distinct capabilities the agent offers.
	Skills []AgentSkill `json:"skills"`

	// SupportsAuthenticatedExtendedCard reports whether the agent serves an
	// extended card to authenticated callers.
	SupportsAuthenticatedExtendedCard *bool `json:"supportsAuthenticatedExtendedCard,omitzero"`

	// URL is the main endpoint URL of the agent.
	URL string `json:"url"`

	// Version is the agent's own version string.
	Version string `json:"version"`
}

var _ A2A = (*AgentCard)(nil)

// Validate ensures the AgentCard is valid.
func (c *AgentCard) Validate() error {
	if c.Name == "" {
		return &MissingFieldError{Field: "name"}
	}
	if c.Description == "" {
		return &MissingFieldError{Field: "description"}
	}
	if c.Version == "" {
		return &MissingFieldError{Field: "version"}
	}
	if err := validateURL("url", c.URL); err != nil {
		return err
	}
	if c.PreferredTransport != "" && !transports[c.PreferredTransport] {
		return &ValidationError{Field: "preferredTransport", Constraint: fmt.Sprintf("unknown transport %q", c.PreferredTransport)}
	}
	for i, iface := range c.AdditionalInterfaces {
		if err := iface.Validate(); err != nil {
			return fmt.Errorf("additionalInterfaces[%d] is invalid: %w", i, err)
		}
	}
	if err := c.Capabilities.Validate(); err != nil {
		return fmt.Errorf("capabilities are invalid: %w", err)
	}
	if c.Provider != nil {
		if err := c.Provider.Validate(); err != nil {
			return fmt.Errorf("provider is invalid: %w", err)
		}
	}
	if err := c.SecuritySchemes.Validate(); err != nil {
		return err
	}
	for i, req := range c.Security {
		for name := range req {
			if _, ok := c.SecuritySchemes[name]; !ok {
				return &ValidationError{Field: "security", Constraint: fmt.Sprintf("requirement %d references undeclared scheme %q", i, name)}
			}
		}
	}
	for i, skill := range c.Skills {
		if err := skill.Validate(); err != nil {
			return fmt.Errorf("skills[%d] is invalid: %w", i, err)
		}
	}
	for i, sig := range c.Signatures {
		if err := sig.Validate(); err != nil {
			return fmt.Errorf("signatures[%d] is invalid: %w", i, err)
		}
	}
	return nil
}

// AgentInterface declares one transport endpoint of an agent.
type AgentInterface struct {
	// ProtocolVersion is the optional protocol version served at this
	// endpoint when it differs from the card's.
	ProtocolVersion string `json:"protocolVersion,omitzero"`

	// Tenant is an optional tenant qualifier for multi-tenant deployments.
	Tenant string `json:"tenant,omitzero"`

	// Transport names the transport protocol spoken at URL.
	Transport string `json:"transport"`

	// URL is the endpoint URL.
	URL string `json:"url"`
}

// Validate ensures the AgentInterface is valid.
func (i *AgentInterface) Validate() error {
	if i.Transport == "" {
		return &MissingFieldError{Field: "transport"}
	}
	if !transports[i.Transport] {
		return &ValidationError{Field: "transport", Constraint: fmt.Sprintf("unknown transport %q", i.Transport)}
	}
	return validateURL("url", i.URL)
}

// AgentCapabilities declares the optional protocol features an agent supports.
type AgentCapabilities struct {
	// Extensions lists the protocol extensions the agent supports.
	Extensions []AgentExtension `json:"extensions,omitzero"`

	// PushNotifications reports whether the agent can deliver push
	// notifications.
	PushNotifications *bool `json:"pushNotifications,omitzero"`

	// StateTransitionHistory reports whether the agent records a task state
	// transition history.
	StateTransitionHistory *bool `json:"stateTransitionHistory,omitzero"`

	// Streaming reports whether the agent supports streaming responses.
	Streaming *bool `json:"streaming,omitzero"`
}

// Validate ensures the AgentCapabilities are valid.
func (c *AgentCapabilities) Validate() error {
	for i, ext := range c.Extensions {
		if err := ext.Validate(); err != nil {
			return fmt.Errorf("extensions[%d] is invalid: %w", i, err)
		}
	}
	return nil
}

// AgentExtension declares one protocol extension supported by an agent.
type AgentExtension struct {
	// Description explains how the agent uses the extension.
	Description string `json:"description,omitzero"`

	// Params holds extension-specific configuration.
	Params map[string]any `json:"params,omitzero"`

	// Required reports whether clients must understand the extension to
	// interact with the agent.
	Required *bool `json:"required,omitzero"`

	// URI identifies the extension.
	URI string `json:"uri"`
}

// Validate ensures the AgentExtension is valid.
func (e *AgentExtension) Validate() error {
	if e.URI == "" {
		return &MissingFieldError{Field: "uri"}
	}
	return nil
}

// AgentSkill describes one distinct capability an agent offers.
type AgentSkill struct {
	// Description is a human-readable description of the skill.
	Description string `json:"description"`

	// Examples lists example prompts or interactions for the skill.
	Examples []string `json:"examples,omitzero"`

	// ID uniquely identifies the skill within the agent.
	ID string `json:"id"`

	// InputModes overrides the card's default input media types.
	InputModes []string `json:"inputModes,omitzero"`

	// Name is the human-readable name of the skill.
	Name string `json:"name"`

	// OutputModes overrides the card's default output media types.
	OutputModes []string `json:"outputModes,omitzero"`

	// Security lists security requirement sets specific to this skill.
	Security []SecurityRequirement `json:"security,omitzero"`

	// Tags categorizes the skill.
	Tags []string `json:"tags"`
}

// Validate ensures the AgentSkill is valid.
func (s *AgentSkill) Validate() error {
	if s.ID == "" {
		return &MissingFieldError{Field: "id"}
	}
	if s.Name == "" {
		return &MissingFieldError{Field: "name"}
	}
	if s.Description == "" {
		return &MissingFieldError{Field: "description"}
	}
	return nil
}

// AgentProvider identifies the organization providing an agent.
type AgentProvider struct {
	// Organization is the provider's name.
	Organization string `json:"organization"`

	// URL is the provider's website URL.
	URL string `json:"url"`
}

// Validate ensures the AgentProvider is valid.
func (p *AgentProvider) Validate() error {
	if p.Organization == "" {
		return &MissingFieldError{Field: "organization"}
	}
	return validateURL("url", p.URL)
}

// AgentCardSignature is a detached JWS signature over an agent card, split
// into its compact-serialization segments.
type AgentCardSignature struct {
	// Header holds the optional unprotected JWS header.
	Header map[string]any `json:"header,omitzero"`

	// Protected is the base64url-encoded protected JWS header.
	Protected string `json:"protected"`

	// Signature is the base64url-encoded JWS signature.
	Signature string `json:"signature"`
}

// Validate ensures the AgentCardSignature is valid.
func (s *AgentCardSignature) Validate() error {
	if s.Protected == "" {
		return &MissingFieldError{Field: "protected"}
	}
	if s.Signature == "" {
		return &MissingFieldError{Field: "signature"}
	}
	return nil
}
