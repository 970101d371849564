// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package seed reads the static bootstrap definitions (discovery document,
// client registrations, account profiles) from JSON or YAML files.
//
// The format is chosen by file extension: ".json" is decoded with
// encoding/json, ".yaml" and ".yml" with gopkg.in/yaml.v3. Both decoders
// reject unknown keys so a misspelled field fails loudly instead of being
// silently dropped.
//
// A discovery document may also be given in the legacy split form: an array
// of partial documents, each carrying a subset of the fields. The parts are
// merged in order (the first non-empty value of a field wins) and the result
// is validated exactly like a unified document.
package seed
