// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"reflect"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/go-playground/validator/v10"

	"github.com/MKhiriev/gnap-bootstrap/models"
)

// Field name constants used to scope record validation.
const (
	// FieldStructure targets the struct-tag rules of a record
	// (required ids, URI and date formats, email syntax).
	FieldStructure = "structure"

	// FieldPrimaryEmail enforces that at most one email is primary.
	FieldPrimaryEmail = "primary_email"

	// FieldPrimaryPhone enforces that at most one phone number is primary.
	FieldPrimaryPhone = "primary_phone"
)

// SeedValidator implements [Validator] for the discovery document, client
// records and account records. Record structure is described with
// go-playground/validator struct tags on the model types; the rules that
// span several fields or records are checked here.
type SeedValidator struct {
	validate *validator.Validate
}

// NewSeedValidator constructs a SeedValidator with the custom tags used by
// the models ("abs_uri", "zoneinfo") registered.
func NewSeedValidator() *SeedValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	mustRegister(v, "abs_uri", func(fl validator.FieldLevel) bool {
		return isAbsoluteURI(fl.Field().String())
	})
	mustRegister(v, "zoneinfo", func(fl validator.FieldLevel) bool {
		_, err := time.LoadLocation(fl.Field().String())
		return err == nil
	})

	return &SeedValidator{validate: v}
}

// mustRegister panics when tag cannot be registered, so a bad tag fails at
// construction instead of on the first Struct call.
func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("validators: registering %q: %v", tag, err))
	}
}

// Validate dispatches on the dynamic type of obj. Both value and pointer
// forms of models.ServiceConfig, models.Client and models.Account are
// accepted; anything else yields ErrUnsupportedType.
func (v *SeedValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.ServiceConfig:
		return v.validateServiceConfig(ctx, value, fields...)
	case *models.ServiceConfig:
		return v.validateServiceConfig(ctx, *value, fields...)

	case models.Client:
		return v.validateClient(ctx, value, fields...)
	case *models.Client:
		return v.validateClient(ctx, *value, fields...)

	case models.Account:
		return v.validateAccount(ctx, value, fields...)
	case *models.Account:
		return v.validateAccount(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

// ValidateClients validates every client and checks client_id uniqueness
// within the batch. All violations are returned joined, each prefixed with
// the record index.
func (v *SeedValidator) ValidateClients(ctx context.Context, clients []models.Client) error {
	var errs []error
	seen := make(map[string]int, len(clients))

	for i, c := range clients {
		if err := v.validateClient(ctx, c); err != nil {
			errs = append(errs, fmt.Errorf("clients[%d]: %w", i, err))
		}
		if c.ClientID == "" {
			continue
		}
		if first, ok := seen[c.ClientID]; ok {
			errs = append(errs, fmt.Errorf("clients[%d]: %w %q (first used by clients[%d])", i, ErrDuplicateClientID, c.ClientID, first))
			continue
		}
		seen[c.ClientID] = i
	}

	return errors.Join(errs...)
}

// ValidateAccounts validates every account and checks account_id uniqueness
// within the batch.
func (v *SeedValidator) ValidateAccounts(ctx context.Context, accounts []models.Account) error {
	var errs []error
	seen := make(map[string]int, len(accounts))

	for i, a := range accounts {
		if err := v.validateAccount(ctx, a); err != nil {
			errs = append(errs, fmt.Errorf("accounts[%d]: %w", i, err))
		}
		if a.AccountID == "" {
			continue
		}
		if first, ok := seen[a.AccountID]; ok {
			errs = append(errs, fmt.Errorf("accounts[%d]: %w %q (first used by accounts[%d])", i, ErrDuplicateAccountID, a.AccountID, first))
			continue
		}
		seen[a.AccountID] = i
	}

	return errors.Join(errs...)
}

func (v *SeedValidator) validateClient(_ context.Context, client models.Client, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldStructure}
	}

	for _, f := range fields {
		switch f {
		case FieldStructure:
			if err := v.structErrors(client, clientFieldError); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *SeedValidator) validateAccount(_ context.Context, account models.Account, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldStructure, FieldPrimaryEmail, FieldPrimaryPhone}
	}

	var errs []error
	for _, f := range fields {
		switch f {
		case FieldStructure:
			if err := v.structErrors(account, accountFieldError); err != nil {
				errs = append(errs, err)
			}
		case FieldPrimaryEmail:
			if account.PrimaryEmails() > 1 {
				errs = append(errs, ErrMultiplePrimaryEmails)
			}
		case FieldPrimaryPhone:
			if account.PrimaryPhones() > 1 {
				errs = append(errs, ErrMultiplePrimaryPhones)
			}
		default:
			return ErrUnknownField
		}
	}

	return errors.Join(errs...)
}

// structErrors runs the struct-tag rules and maps every failing field to
// one of the package sentinels through toSentinel.
func (v *SeedValidator) structErrors(obj any, toSentinel func(validator.FieldError) error) error {
	err := v.validate.Struct(obj)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	errs := make([]error, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		errs = append(errs, fmt.Errorf("%w: %s", toSentinel(fe), fieldPath(fe)))
	}
	return errors.Join(errs...)
}

func clientFieldError(fe validator.FieldError) error {
	field := fe.StructField()
	switch {
	case field == "ClientID":
		return ErrEmptyClientID
	case field == "ClientName":
		return ErrEmptyClientName
	case field == "RedirectURIs":
		return ErrNoRedirectURIs
	case strings.HasPrefix(field, "RedirectURIs["):
		return ErrInvalidRedirectURI
	case fe.Tag() == "email":
		return ErrInvalidEmail
	case fe.Tag() == "abs_uri":
		return ErrInvalidURI
	default:
		return ErrInvalidValue
	}
}

func accountFieldError(fe validator.FieldError) error {
	switch fe.StructField() {
	case "AccountID":
		return ErrEmptyAccountID
	case "Birthdate":
		return ErrInvalidBirthdate
	case "Zoneinfo":
		return ErrInvalidZoneinfo
	case "PhoneNumber":
		return ErrEmptyPhoneNumber
	case "Address":
		if fe.Tag() == "required" {
			return ErrEmptyEmailAddress
		}
		return ErrInvalidEmail
	}

	if fe.Tag() == "abs_uri" {
		return ErrInvalidURI
	}
	return ErrInvalidValue
}

// fieldPath strips the root type name from the namespace so that errors read
// "redirect_uris[0]" rather than "Client.redirect_uris[0]".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

// isAbsoluteURI accepts any URI with a scheme and a non-empty remainder, so
// custom-scheme redirect URIs of native apps are allowed.
func isAbsoluteURI(raw string) bool {
	if raw == "" || strings.TrimSpace(raw) != raw {
		return false
	}
	u, err := url.Parse(raw)
	if err != nil || !u.IsAbs() {
		return false
	}
	if u.Scheme == "http" || u.Scheme == "https" {
		return u.Hostname() != ""
	}
	return u.Host != "" || u.Opaque != "" || u.Path != ""
}
