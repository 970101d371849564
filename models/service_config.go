// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "slices"

// InteractionStartMode is a way the authorization server can start an
// interaction with the resource owner.
type InteractionStartMode string

const (
	InteractionStartRedirect InteractionStartMode = "redirect"
	InteractionStartApp      InteractionStartMode = "app"
	InteractionStartUserCode InteractionStartMode = "user_code"
)

// InteractionFinishMethod is a way the authorization server can signal the
// client instance that an interaction has finished.
type InteractionFinishMethod string

const (
	InteractionFinishRedirect InteractionFinishMethod = "redirect"
	InteractionFinishPush     InteractionFinishMethod = "push"
)

// KeyProof is a key proofing method a client instance may use to bind
// requests to its key.
type KeyProof string

const (
	KeyProofHTTPSig KeyProof = "httpsig"
	KeyProofMTLS    KeyProof = "mtls"
	KeyProofJWSD    KeyProof = "jwsd"
	KeyProofJWS     KeyProof = "jws"
)

// SubjectFormat is a subject identifier format the server can return.
type SubjectFormat string

const (
	SubjectFormatAccount     SubjectFormat = "account"
	SubjectFormatAliases     SubjectFormat = "aliases"
	SubjectFormatDID         SubjectFormat = "did"
	SubjectFormatEmail       SubjectFormat = "email"
	SubjectFormatIssSub      SubjectFormat = "iss_sub"
	SubjectFormatOpaque      SubjectFormat = "opaque"
	SubjectFormatPhoneNumber SubjectFormat = "phone_number"
)

// AssertionFormat is an identity assertion format the server accepts.
type AssertionFormat string

const (
	AssertionOIDC  AssertionFormat = "oidc"
	AssertionSAML2 AssertionFormat = "saml2"
)

// TokenFormat is an access token format the server can issue.
type TokenFormat string

const (
	TokenFormatJWT    TokenFormat = "jwt"
	TokenFormatPaseto TokenFormat = "paseto"
)

// Endpoint names used when reporting endpoint errors.
const (
	EndpointGrantRequest         = "grant_request"
	EndpointIntrospection        = "introspection"
	EndpointResourceRegistration = "resource_registration"
)

// Capability field names as they appear in the discovery document.
const (
	FieldInteractionStartModes    = "interaction_start_modes_supported"
	FieldInteractionFinishMethods = "interaction_finish_methods_supported"
	FieldKeyProofs                = "key_proofs_supported"
	FieldSubjectFormats           = "subject_formats_supported"
	FieldAssertions               = "assertions_supported"
	FieldTokenFormats             = "token_formats_supported"
)

// ServiceEndpoints holds the absolute URLs of the authorization server
// endpoints advertised to clients.
type ServiceEndpoints struct {
	GrantRequest         string `json:"grant_request_endpoint" yaml:"grant_request_endpoint"`
	Introspection        string `json:"introspection_endpoint" yaml:"introspection_endpoint"`
	ResourceRegistration string `json:"resource_registration_endpoint" yaml:"resource_registration_endpoint"`
}

// ByName returns the endpoint URLs keyed by their short name, in the fixed
// order grant_request, introspection, resource_registration.
func (e ServiceEndpoints) ByName() [][2]string {
	return [][2]string{
		{EndpointGrantRequest, e.GrantRequest},
		{EndpointIntrospection, e.Introspection},
		{EndpointResourceRegistration, e.ResourceRegistration},
	}
}

// ServiceConfig is the capability-discovery document of the GNAP
// authorization server. It is stored as a singleton in the
// "service_config" collection and is read-only at runtime.
type ServiceConfig struct {
	ServiceEndpoints                  ServiceEndpoints          `json:"service_endpoints" yaml:"service_endpoints"`
	InteractionStartModesSupported    []InteractionStartMode    `json:"interaction_start_modes_supported" yaml:"interaction_start_modes_supported"`
	InteractionFinishMethodsSupported []InteractionFinishMethod `json:"interaction_finish_methods_supported" yaml:"interaction_finish_methods_supported"`
	KeyProofsSupported                []KeyProof                `json:"key_proofs_supported" yaml:"key_proofs_supported"`
	SubjectFormatsSupported           []SubjectFormat           `json:"subject_formats_supported" yaml:"subject_formats_supported"`
	AssertionsSupported               []AssertionFormat         `json:"assertions_supported" yaml:"assertions_supported"`
	TokenFormatsSupported             []TokenFormat             `json:"token_formats_supported" yaml:"token_formats_supported"`
}

// Clone returns a deep copy of the document.
func (c ServiceConfig) Clone() ServiceConfig {
	return ServiceConfig{
		ServiceEndpoints:                  c.ServiceEndpoints,
		InteractionStartModesSupported:    slices.Clone(c.InteractionStartModesSupported),
		InteractionFinishMethodsSupported: slices.Clone(c.InteractionFinishMethodsSupported),
		KeyProofsSupported:                slices.Clone(c.KeyProofsSupported),
		SubjectFormatsSupported:           slices.Clone(c.SubjectFormatsSupported),
		AssertionsSupported:               slices.Clone(c.AssertionsSupported),
		TokenFormatsSupported:             slices.Clone(c.TokenFormatsSupported),
	}
}

// CollectionName returns the name of the store collection holding the
// singleton document.
func (c ServiceConfig) CollectionName() string {
	return "service_config"
}
