// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"encoding/json"
	"net/url"
	"strings"

	"github.com/MKhiriev/gnap-bootstrap/models"
)

// FieldServiceEndpoints scopes config validation to the endpoint URLs. The
// capability fields are scoped with the models.Field* constants.
const FieldServiceEndpoints = "service_endpoints"

var configFields = []string{
	FieldServiceEndpoints,
	models.FieldInteractionStartModes,
	models.FieldInteractionFinishMethods,
	models.FieldKeyProofs,
	models.FieldSubjectFormats,
	models.FieldAssertions,
	models.FieldTokenFormats,
}

var (
	allowedStartModes = []models.InteractionStartMode{
		models.InteractionStartRedirect,
		models.InteractionStartApp,
		models.InteractionStartUserCode,
	}
	allowedFinishMethods = []models.InteractionFinishMethod{
		models.InteractionFinishRedirect,
		models.InteractionFinishPush,
	}
	allowedKeyProofs = []models.KeyProof{
		models.KeyProofHTTPSig,
		models.KeyProofMTLS,
		models.KeyProofJWSD,
		models.KeyProofJWS,
	}
	allowedSubjectFormats = []models.SubjectFormat{
		models.SubjectFormatAccount,
		models.SubjectFormatAliases,
		models.SubjectFormatDID,
		models.SubjectFormatEmail,
		models.SubjectFormatIssSub,
		models.SubjectFormatOpaque,
		models.SubjectFormatPhoneNumber,
	}
	allowedAssertions = []models.AssertionFormat{
		models.AssertionOIDC,
		models.AssertionSAML2,
	}
	allowedTokenFormats = []models.TokenFormat{
		models.TokenFormatJWT,
		models.TokenFormatPaseto,
	}
)

// ValidConfig is a discovery document that passed [ValidateConfig]. It can
// only be obtained through validation and never changes afterwards.
type ValidConfig struct {
	cfg models.ServiceConfig
}

// Config returns a copy of the validated document.
func (v ValidConfig) Config() models.ServiceConfig {
	return v.cfg.Clone()
}

// MarshalJSON encodes the underlying document.
func (v ValidConfig) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.cfg)
}

// ValidateConfig checks every invariant of the discovery document: the
// three endpoints first, then the capability sets in document order.
// It returns the first violation as a [*ConfigError].
func ValidateConfig(cfg models.ServiceConfig) (ValidConfig, error) {
	if err := validateConfigFields(cfg, configFields...); err != nil {
		return ValidConfig{}, err
	}
	return ValidConfig{cfg: cfg.Clone()}, nil
}

func validateConfigFields(cfg models.ServiceConfig, fields ...string) error {
	if len(fields) == 0 {
		fields = configFields
	}

	for _, f := range fields {
		var err error
		switch f {
		case FieldServiceEndpoints:
			err = validateEndpoints(cfg.ServiceEndpoints)
		case models.FieldInteractionStartModes:
			err = validateSet(f, cfg.InteractionStartModesSupported, allowedStartModes)
		case models.FieldInteractionFinishMethods:
			err = validateSet(f, cfg.InteractionFinishMethodsSupported, allowedFinishMethods)
		case models.FieldKeyProofs:
			err = validateSet(f, cfg.KeyProofsSupported, allowedKeyProofs)
		case models.FieldSubjectFormats:
			err = validateSet(f, cfg.SubjectFormatsSupported, allowedSubjectFormats)
		case models.FieldAssertions:
			err = validateSet(f, cfg.AssertionsSupported, allowedAssertions)
		case models.FieldTokenFormats:
			err = validateSet(f, cfg.TokenFormatsSupported, allowedTokenFormats)
		default:
			return ErrUnknownField
		}
		if err != nil {
			return err
		}
	}

	return nil
}

func validateEndpoints(endpoints models.ServiceEndpoints) error {
	for _, e := range endpoints.ByName() {
		if !isHTTPEndpoint(e[1]) {
			return InvalidEndpoint(e[0])
		}
	}
	return nil
}

// isHTTPEndpoint reports whether raw is an absolute http or https URL with a
// host. "localhost::8000/gnap/tx" parses with scheme "localhost" and
// "https//localhost:8000/gnap/tx" parses as a relative path; both fail.
func isHTTPEndpoint(raw string) bool {
	if strings.TrimSpace(raw) != raw || raw == "" {
		return false
	}
	u, err := url.Parse(raw)
	if err != nil || !u.IsAbs() {
		return false
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return false
	}
	return u.Host != "" && u.Hostname() != ""
}

// validateSet checks that values is a non-empty set drawn from allowed.
func validateSet[T ~string](field string, values []T, allowed []T) error {
	if len(values) == 0 {
		return &ConfigError{Kind: ErrMissingField, Field: field}
	}

	seen := make(map[T]struct{}, len(values))
	for _, v := range values {
		if !isAllowed(v, allowed) {
			return UnsupportedCapability(field, string(v))
		}
		if _, ok := seen[v]; ok {
			return &ConfigError{Kind: ErrDuplicateCapability, Field: field, Value: string(v)}
		}
		seen[v] = struct{}{}
	}

	return nil
}

func isAllowed[T comparable](v T, allowed []T) bool {
	for _, a := range allowed {
		if v == a {
			return true
		}
	}
	return false
}

func (v *SeedValidator) validateServiceConfig(_ context.Context, cfg models.ServiceConfig, fields ...string) error {
	return validateConfigFields(cfg, fields...)
}
