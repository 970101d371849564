// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Client is a registered GNAP client instance.
//
// ClientID, ClientName and RedirectURIs come from the seed data. The optional
// registration metadata is kept so that seed files can carry the same
// fields the authorization server accepts on dynamic registration.
type Client struct {
	// ClientID is the opaque, unique identifier of the client
	// (UUID-shaped in practice).
	ClientID string `json:"client_id" yaml:"client_id" validate:"required"`

	// ClientName is the human-readable display name.
	ClientName string `json:"client_name" yaml:"client_name" validate:"required"`

	// RedirectURIs is the ordered list of absolute URIs the server may
	// redirect the resource owner back to. Must not be empty.
	RedirectURIs []string `json:"redirect_uris" yaml:"redirect_uris" validate:"required,min=1,dive,required,abs_uri"`

	Contacts  []string `json:"contacts,omitempty" yaml:"contacts,omitempty" validate:"omitempty,dive,email"`
	ClientURI string   `json:"client_uri,omitempty" yaml:"client_uri,omitempty" validate:"omitempty,abs_uri"`
	LogoURI   string   `json:"logo_uri,omitempty" yaml:"logo_uri,omitempty" validate:"omitempty,abs_uri"`
	PolicyURI string   `json:"policy_uri,omitempty" yaml:"policy_uri,omitempty" validate:"omitempty,abs_uri"`
	TosURI    string   `json:"tos_uri,omitempty" yaml:"tos_uri,omitempty" validate:"omitempty,abs_uri"`
	JwksURI   string   `json:"jwks_uri,omitempty" yaml:"jwks_uri,omitempty" validate:"omitempty,abs_uri"`
}

// CollectionName returns the name of the store collection holding clients.
func (c Client) CollectionName() string {
	return "clients"
}
