// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package a2a

import (
	"fmt"
	"net/url"

	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"
)

// Security scheme type tags.
const (
	SecuritySchemeTypeAPIKey        = "apiKey"
	SecuritySchemeTypeHTTP          = "http"
	SecuritySchemeTypeOAuth2        = "oauth2"
	SecuritySchemeTypeOpenIDConnect = "openIdConnect"
	SecuritySchemeTypeMutualTLS     = "mutualTLS"
)

// SecurityScheme is a discriminated union of security scheme descriptors,
// tagged on the wire by the "type" field. Schemes are immutable descriptive
// metadata; they are never instantiated as live credentials and this package
// never performs authentication.
type SecurityScheme interface {
	A2A

	// GetType returns the wire discriminator of the scheme.
	GetType() string

	// GetDescription returns the optional scheme description.
	GetDescription() string
}

// APIKeySecurityScheme describes API key authentication.
type APIKeySecurityScheme struct {
	// Description is an optional description of the scheme.
	Description string `json:"description,omitzero"`

	// In is the location of the API key: query, header or cookie.
	In APIKeyLocation `json:"in"`

	// Name is the header, query or cookie parameter name.
	Name string `json:"name"`

	// Type is always "apiKey".
	Type string `json:"type"`
}

// GetType returns the scheme type tag.
func (s *APIKeySecurityScheme) GetType() string { return s.Type }

// GetDescription returns the scheme description.
func (s *APIKeySecurityScheme) GetDescription() string { return s.Description }

// Validate ensures the APIKeySecurityScheme is valid.
func (s *APIKeySecurityScheme) Validate() error {
	if s.Type != SecuritySchemeTypeAPIKey {
		return &ValidationError{Field: "type", Constraint: fmt.Sprintf("must be %q, got %q", SecuritySchemeTypeAPIKey, s.Type)}
	}
	if s.Name == "" {
		return &MissingFieldError{Field: "name"}
	}
	return s.In.Validate()
}

// HTTPAuthSecurityScheme describes HTTP authentication (Bearer, Basic, ...).
type HTTPAuthSecurityScheme struct {
	// BearerFormat is an optional hint identifying how the bearer token is
	// formatted, for documentation purposes.
	BearerFormat string `json:"bearerFormat,omitzero"`

	// Description is an optional description of the scheme.
	Description string `json:"description,omitzero"`

	// Scheme is the HTTP authentication scheme name per RFC 7235.
	Scheme string `json:"scheme"`

	// Type is always "http".
	Type string `json:"type"`
}

// GetType returns the scheme type tag.
func (s *HTTPAuthSecurityScheme) GetType() string { return s.Type }

// GetDescription returns the scheme description.
func (s *HTTPAuthSecurityScheme) GetDescription() string { return s.Description }

// Validate ensures the HTTPAuthSecurityScheme is valid.
func (s *HTTPAuthSecurityScheme) Validate() error {
	if s.Type != SecuritySchemeTypeHTTP {
		return &ValidationError{Field: "type", Constraint: fmt.Sprintf("must be %q, got %q", SecuritySchemeTypeHTTP, s.Type)}
	}
	if s.Scheme == "" {
		return &MissingFieldError{Field: "scheme"}
	}
	return nil
}

// OAuth2SecurityScheme describes OAuth 2.0 authentication.
type OAuth2SecurityScheme struct {
	// Description is an optional description of the scheme.
	Description string `json:"description,omitzero"`

	// Flows holds the supported OAuth flow configurations.
	Flows *OAuthFlows `json:"flows"`

	// OAuth2MetadataURL is an optional URL for OAuth 2.0 metadata discovery.
	OAuth2MetadataURL string `json:"oauth2MetadataUrl,omitzero"`

	// Type is always "oauth2".
	Type string `json:"type"`
}

// GetType returns the scheme type tag.
func (s *OAuth2SecurityScheme) GetType() string { return s.Type }

// GetDescription returns the scheme description.
func (s *OAuth2SecurityScheme) GetDescription() string { return s.Description }

// Validate ensures the OAuth2SecurityScheme is valid.
func (s *OAuth2SecurityScheme) Validate() error {
	if s.Type != SecuritySchemeTypeOAuth2 {
		return &ValidationError{Field: "type", Constraint: fmt.Sprintf("must be %q, got %q", SecuritySchemeTypeOAuth2, s.Type)}
	}
	if s.Flows == nil {
		return &MissingFieldError{Field: "flows"}
	}
	return s.Flows.Validate()
}

// OpenIDConnectSecurityScheme describes OpenID Connect authentication.
type OpenIDConnectSecurityScheme struct {
	// Description is an optional description of the scheme.
	Description string `json:"description,omitzero"`

	// OpenIDConnectURL is the well-known discovery URL for the provider
	// metadata.
	OpenIDConnectURL string `json:"openIdConnectUrl"`

	// Type is always "openIdConnect".
	Type string `json:"type"`
}

// GetType returns the scheme type tag.
func (s *OpenIDConnectSecurityScheme) GetType() string { return s.Type }

// GetDescription returns the scheme description.
func (s *OpenIDConnectSecurityScheme) GetDescription() string { return s.Description }

// Validate ensures the OpenIDConnectSecurityScheme is valid.
func (s *OpenIDConnectSecurityScheme) Validate() error {
	if s.Type != SecuritySchemeTypeOpenIDConnect {
		return &ValidationError{Field: "type", Constraint: fmt.Sprintf("must be %q, got %q", SecuritySchemeTypeOpenIDConnect, s.Type)}
	}
	return validateURL("openIdConnectUrl", s.OpenIDConnectURL)
}

// MutualTLSSecurityScheme describes mutual TLS authentication.
type MutualTLSSecurityScheme struct {
	// Description is an optional description of the scheme.
	Description string `json:"description,omitzero"`

	// Type is always "mutualTLS".
	Type string `json:"type"`
}

// GetType returns the scheme type tag.
func (s *MutualTLSSecurityScheme) GetType() string { return s.Type }

// GetDescription returns the scheme description.
func (s *MutualTLSSecurityScheme) GetDescription() string { return s.Description }

// Validate ensures the MutualTLSSecurityScheme is valid.
func (s *MutualTLSSecurityScheme) Validate() error {
	if s.Type != SecuritySchemeTypeMutualTLS {
		return &ValidationError{Field: "type", Constraint: fmt.Sprintf("must be %q, got %q", SecuritySchemeTypeMutualTLS, s.Type)}
	}
	return nil
}

// OAuthFlows aggregates the OAuth flow configurations supported by a scheme.
// Zero or more flows may be configured.
type OAuthFlows struct {
	// AuthorizationCode configures the OAuth Authorization Code flow.
	AuthorizationCode *AuthorizationCodeOAuthFlow `json:"authorizationCode,omitzero"`

	// ClientCredentials configures the OAuth Client Credentials flow.
	ClientCredentials *ClientCredentialsOAuthFlow `json:"clientCredentials,omitzero"`

	// Implicit configures the OAuth Implicit flow.
	Implicit *ImplicitOAuthFlow `json:"implicit,omitzero"`

	// Password configures the OAuth Resource Owner Password flow.
	Password *PasswordOAuthFlow `json:"password,omitzero"`
}

// Validate ensures every configured flow is valid.
func (f *OAuthFlows) Validate() error {
	if f.AuthorizationCode != nil {
		if err := f.AuthorizationCode.Validate(); err != nil {
			return fmt.Errorf("authorizationCode flow is invalid: %w", err)
		}
	}
	if f.ClientCredentials != nil {
		if err := f.ClientCredentials.Validate(); err != nil {
			return fmt.Errorf("clientCredentials flow is invalid: %w", err)
		}
	}
	if f.Implicit != nil {
		if err := f.Implicit.Validate(); err != nil {
			return fmt.Errorf("implicit flow is invalid: %w", err)
		}
	}
	if f.Password != nil {
		if err := f.Password.Validate(); err != nil {
			return fmt.Errorf("password flow is invalid: %w", err)
		}
	}
	return nil
}

// AuthorizationCodeOAuthFlow configures the OAuth Authorization Code flow.
type AuthorizationCodeOAuthFlow struct {
	// AuthorizationURL is the authorization endpoint URL.
	AuthorizationURL string `json:"authorizationUrl"`

	// RefreshURL is the optional token refresh endpoint URL.
	RefreshURL string `json:"refreshUrl,omitzero"`

	// Scopes maps available scope names to short descriptions. May be empty.
	Scopes map[string]string `json:"scopes"`

	// TokenURL is the token endpoint URL.
	TokenURL string `json:"tokenUrl"`
}

// Validate ensures the flow is valid.
func (f *AuthorizationCodeOAuthFlow) Validate() error {
	if err := validateURL("authorizationUrl", f.AuthorizationURL); err != nil {
		return err
	}
	return validateURL("tokenUrl", f.TokenURL)
}

// ClientCredentialsOAuthFlow configures the OAuth Client Credentials flow.
type ClientCredentialsOAuthFlow struct {
	// RefreshURL is the optional token refresh endpoint URL.
	RefreshURL string `json:"refreshUrl,omitzero"`

	// Scopes maps available scope names to short descriptions. May be empty.
	Scopes map[string]string `json:"scopes"`

	// TokenURL is the token endpoint URL.
	TokenURL string `json:"tokenUrl"`
}

// Validate ensures the flow is valid.
func (f *ClientCredentialsOAuthFlow) Validate() error {
	return validateURL("tokenUrl", f.TokenURL)
}

// ImplicitOAuthFlow configures the OAuth Implicit flow.
type ImplicitOAuthFlow struct {
	// AuthorizationURL is the authorization endpoint URL.
	AuthorizationURL string `json:"authorizationUrl"`

	// RefreshURL is the optional token refresh endpoint URL.
	RefreshURL string `json:"refreshUrl,omitzero"`

	// Scopes maps available scope names to short descriptions. May be empty.
	Scopes map[string]string `json:"scopes"`
}

// Validate ensures the flow is valid.
func (f *ImplicitOAuthFlow) Validate() error {
	return validateURL("authorizationUrl", f.AuthorizationURL)
}

// PasswordOAuthFlow configures the OAuth Resource Owner Password flow.
type PasswordOAuthFlow struct {
	// RefreshURL is the optional token refresh endpoint URL.
	RefreshURL string `json:"refreshUrl,omitzero"`

	// Scopes maps available scope names to short descriptions. May be empty.
	Scopes map[string]string `json:"scopes"`

	// TokenURL is the token endpoint URL.
	TokenURL string `json:"tokenUrl"`
}

// Validate ensures the flow is valid.
func (f *PasswordOAuthFlow) Validate() error {
	return validateURL("tokenUrl", f.TokenURL)
}

// SecurityRequirement maps scheme names to the scopes required of them.
type SecurityRequirement map[string][]string

// SecuritySchemeMap maps scheme names to scheme descriptors, resolving the
// SecurityScheme union during unmarshaling.
type SecuritySchemeMap map[string]SecurityScheme

// UnmarshalJSON implements [json.Unmarshaler].
func (m *SecuritySchemeMap) UnmarshalJSON(data []byte) error {
	var raws map[string]jsontext.Value
	if err := json.Unmarshal(data, &raws); err != nil {
		return fmt.Errorf("unmarshal security schemes: %w", err)
	}

	schemes := make(SecuritySchemeMap, len(raws))
	for name, raw := range raws {
		scheme, err := DecodeSecurityScheme(raw)
		if err != nil {
			return fmt.Errorf("security scheme %q: %w", name, err)
		}
		schemes[name] = scheme
	}

	*m = schemes
	return nil
}

// Validate ensures every scheme in the map is valid.
func (m SecuritySchemeMap) Validate() error {
	for name, scheme := range m {
		if scheme == nil {
			return &ValidationError{Field: "securitySchemes", Constraint: fmt.Sprintf("scheme %q cannot be nil", name)}
		}
		if err := scheme.Validate(); err != nil {
			return fmt.Errorf("security scheme %q is invalid: %w", name, err)
		}
	}
	return nil
}

// DecodeSecurityScheme resolves and decodes the SecurityScheme union from a
// JSON object by its "type" tag. An unrecognized tag fails with an
// UnknownVariantError.
func DecodeSecurityScheme(data []byte) (SecurityScheme, error) {
	var tag struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(data, &tag); err != nil {
		return nil, &TypeMismatchError{Field: "", Expected: "object", Actual: jsontext.Value(data).Kind().String()}
	}

	var scheme SecurityScheme
	switch tag.Type {
	case SecuritySchemeTypeAPIKey:
		scheme = new(APIKeySecurityScheme)
	case SecuritySchemeTypeHTTP:
		scheme = new(HTTPAuthSecurityScheme)
	case SecuritySchemeTypeOAuth2:
		scheme = new(OAuth2SecurityScheme)
	case SecuritySchemeTypeOpenIDConnect:
		scheme = new(OpenIDConnectSecurityScheme)
	case SecuritySchemeTypeMutualTLS:
		scheme = new(MutualTLSSecurityScheme)
	default:
		return nil, &UnknownVariantError{Family: "SecurityScheme", Tag: tag.Type}
	}

	if err := Decode(data, scheme); err != nil {
		return nil, err
	}
	return scheme, nil
}

// validateURL checks that value is a non-empty URL with a scheme and host.
func validateURL(field, value string) error {
	if value == "" {
		return &MissingFieldError{Field: field}
	}
	u, err := url.Parse(value)
	if err != nil {
		return &ValidationError{Field: field, Constraint: fmt.Sprintf("must be a valid URL: %v", err)}
	}
	if u.Scheme == "" {
		return &ValidationError{Field: field, Constraint: "must be an absolute URL"}
	}
	return nil
}
