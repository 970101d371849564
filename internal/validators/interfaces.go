// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators enforces the structural invariants of the bootstrap
// data before anything is written to the backing store.
//
// Core concepts:
//   - Validator: generic interface to validate a single document or record,
//     with optional field-level scoping.
//   - ValidateConfig: pure validation of the discovery document, producing
//     an immutable [ValidConfig] or a typed [*ConfigError].
//   - SeedValidator.ValidateClients / ValidateAccounts: batch validation
//     including uniqueness of ids within the batch. Every violation is
//     reported, joined with errors.Join.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
