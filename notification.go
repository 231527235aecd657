// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package a2a

import "fmt"

// PushNotificationConfig configures where and how an agent delivers
// asynchronous task updates via push notifications.
type PushNotificationConfig struct {
	// Authentication describes how the agent authenticates to URL.
	Authentication *PushNotificationAuthenticationInfo `json:"authentication,omitzero"`

	// ID identifies this configuration so a client can manage several.
	ID string `json:"id,omitzero"`

	// Token is an opaque bearer value the agent echoes back in notification
	// requests so the receiver can correlate them.
	Token string `json:"token,omitzero"`

	// URL is the endpoint the agent POSTs notifications to.
	URL string `json:"url"`
}

// Validate ensures the PushNotificationConfig is valid.
func (c *PushNotificationConfig) Validate() error {
	if err := validateURL("url", c.URL); err != nil {
		return err
	}
	if c.Authentication != nil {
		if err := c.Authentication.Validate(); err != nil {
			return fmt.Errorf("authentication is invalid: %w", err)
		}
	}
	return nil
}

// PushNotificationAuthenticationInfo describes the authentication an agent
// uses when delivering push notifications.
type PushNotificationAuthenticationInfo struct {
	// Credentials holds optional scheme-specific credential material.
	Credentials string `json:"credentials,omitzero"`

	// Schemes lists the supported authentication scheme names.
	Schemes []string `json:"schemes"`
}

// Validate ensures the PushNotificationAuthenticationInfo is valid.
func (i *PushNotificationAuthenticationInfo) Validate() error {
	if len(i.Schemes) == 0 {
		return &MissingFieldError{Field: "schemes"}
	}
	return nil
}

// TaskPushNotificationConfig binds a push notification configuration to a
// task.
type TaskPushNotificationConfig struct {
	// ID identifies the binding.
	ID string `json:"id,omitzero"`

	// PushNotificationConfig is the configuration bound to the task.
	PushNotificationConfig PushNotificationConfig `json:"pushNotificationConfig"`

	// TaskID is the ID of the task being configured.
	TaskID string `json:"taskId"`

	// Tenant is an optional tenant qualifier.
	Tenant string `json:"tenant,omitzero"`
}

// Validate ensures the TaskPushNotificationConfig is valid.
func (c *TaskPushNotificationConfig) Validate() error {
	if c.TaskID == "" {
		return &MissingFieldError{Field: "taskId"}
	}
	return c.PushNotificationConfig.Validate()
}
