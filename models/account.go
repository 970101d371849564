// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Account is a resource owner profile. Field names follow the OpenID
// Connect standard claims so the authorization server can release them as
// subject information without translation.
type Account struct {
	// AccountID is the opaque, unique identifier of the account.
	AccountID string `json:"account_id" yaml:"account_id" validate:"required"`

	Name              string `json:"name,omitempty" yaml:"name,omitempty"`
	GivenName         string `json:"given_name,omitempty" yaml:"given_name,omitempty"`
	FamilyName        string `json:"family_name,omitempty" yaml:"family_name,omitempty"`
	MiddleName        string `json:"middle_name,omitempty" yaml:"middle_name,omitempty"`
	Nickname          string `json:"nickname,omitempty" yaml:"nickname,omitempty"`
	PreferredUsername string `json:"preferred_username,omitempty" yaml:"preferred_username,omitempty"`

	// Birthdate is an ISO-8601 calendar date (YYYY-MM-DD).
	Birthdate string `json:"birthdate,omitempty" yaml:"birthdate,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Gender    string `json:"gender,omitempty" yaml:"gender,omitempty"`
	Locale    string `json:"locale,omitempty" yaml:"locale,omitempty"`
	// Zoneinfo is an IANA time zone name, e.g. "Europe/Berlin".
	Zoneinfo string `json:"zoneinfo,omitempty" yaml:"zoneinfo,omitempty" validate:"omitempty,zoneinfo"`

	Picture string `json:"picture,omitempty" yaml:"picture,omitempty" validate:"omitempty,abs_uri"`
	Profile string `json:"profile,omitempty" yaml:"profile,omitempty" validate:"omitempty,abs_uri"`
	Website string `json:"website,omitempty" yaml:"website,omitempty" validate:"omitempty,abs_uri"`

	TaxID string `json:"tax_id,omitempty" yaml:"tax_id,omitempty"`

	Address []Address      `json:"address,omitempty" yaml:"address,omitempty" validate:"dive"`
	Email   []EmailAddress `json:"email,omitempty" yaml:"email,omitempty" validate:"dive"`
	Phone   []PhoneNumber  `json:"phone,omitempty" yaml:"phone,omitempty" validate:"dive"`
}

// Address is a postal address of an account.
type Address struct {
	Country       string `json:"country,omitempty" yaml:"country,omitempty"`
	Formatted     string `json:"formatted,omitempty" yaml:"formatted,omitempty"`
	Locality      string `json:"locality,omitempty" yaml:"locality,omitempty"`
	PostalCode    string `json:"postal_code,omitempty" yaml:"postal_code,omitempty"`
	Region        string `json:"region,omitempty" yaml:"region,omitempty"`
	StreetAddress string `json:"street_address,omitempty" yaml:"street_address,omitempty"`
}

// EmailAddress is an email address of an account with its verification
// status. At most one address of an account may be primary.
type EmailAddress struct {
	Address  string `json:"address" yaml:"address" validate:"required,email"`
	Verified bool   `json:"verified" yaml:"verified"`
	Primary  bool   `json:"primary" yaml:"primary"`
}

// PhoneNumber is a phone number of an account with its verification
// status. At most one number of an account may be primary.
type PhoneNumber struct {
	PhoneNumber string `json:"phone_number" yaml:"phone_number" validate:"required"`
	Verified    bool   `json:"verified" yaml:"verified"`
	Primary     bool   `json:"primary" yaml:"primary"`
}

// PrimaryEmails returns how many email addresses are flagged primary.
func (a Account) PrimaryEmails() int {
	n := 0
	for _, e := range a.Email {
		if e.Primary {
			n++
		}
	}
	return n
}

// PrimaryPhones returns how many phone numbers are flagged primary.
func (a Account) PrimaryPhones() int {
	n := 0
	for _, p := range a.Phone {
		if p.Primary {
			n++
		}
	}
	return n
}

// CollectionName returns the name of the store collection holding accounts.
func (a Account) CollectionName() string {
	return "accounts"
}
