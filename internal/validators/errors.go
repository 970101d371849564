// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"errors"
	"fmt"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")
)

// Kinds of [ConfigError]. Match them with errors.Is.
var (
	ErrUnsupportedCapability = errors.New("unsupported capability")
	ErrDuplicateCapability   = errors.New("duplicate capability")
	ErrInvalidEndpoint       = errors.New("invalid endpoint")
	ErrMissingField          = errors.New("missing required field")
	ErrNotInitialized        = errors.New("service config is not initialized")
)

// Client record errors.
var (
	ErrEmptyClientID      = errors.New("client_id is required")
	ErrEmptyClientName    = errors.New("client_name is required")
	ErrNoRedirectURIs     = errors.New("at least one redirect_uri is required")
	ErrInvalidRedirectURI = errors.New("redirect_uri must be an absolute URI")
	ErrDuplicateClientID  = errors.New("duplicate client_id")
)

// Account record errors.
var (
	ErrEmptyAccountID        = errors.New("account_id is required")
	ErrDuplicateAccountID    = errors.New("duplicate account_id")
	ErrMultiplePrimaryEmails = errors.New("more than one primary email")
	ErrMultiplePrimaryPhones = errors.New("more than one primary phone")
	ErrInvalidBirthdate      = errors.New("birthdate must be an ISO-8601 date")
	ErrInvalidZoneinfo       = errors.New("zoneinfo must be an IANA time zone")
	ErrEmptyPhoneNumber      = errors.New("phone_number is required")
	ErrEmptyEmailAddress     = errors.New("email address is required")
)

// Errors shared by both record types.
var (
	ErrInvalidEmail = errors.New("invalid email address")
	ErrInvalidURI   = errors.New("invalid absolute URI")
	ErrInvalidValue = errors.New("invalid value")
)

// ConfigError reports why a discovery document was rejected. Kind is one of
// ErrUnsupportedCapability, ErrDuplicateCapability, ErrInvalidEndpoint,
// ErrMissingField or ErrNotInitialized.
type ConfigError struct {
	Kind  error
	Field string
	Value string
}

func (e *ConfigError) Error() string {
	switch {
	case e.Value != "":
		return fmt.Sprintf("%s: %s contains %q", e.Kind, e.Field, e.Value)
	case e.Field != "":
		return fmt.Sprintf("%s: %s", e.Kind, e.Field)
	default:
		return e.Kind.Error()
	}
}

func (e *ConfigError) Unwrap() error {
	return e.Kind
}

// UnsupportedCapability builds a ConfigError for an unrecognized token.
func UnsupportedCapability(field, value string) *ConfigError {
	return &ConfigError{Kind: ErrUnsupportedCapability, Field: field, Value: value}
}

// InvalidEndpoint builds a ConfigError for a missing or malformed endpoint.
func InvalidEndpoint(name string) *ConfigError {
	return &ConfigError{Kind: ErrInvalidEndpoint, Field: name}
}

// NotInitialized builds the ConfigError returned when no seed has run.
func NotInitialized() *ConfigError {
	return &ConfigError{Kind: ErrNotInitialized}
}
