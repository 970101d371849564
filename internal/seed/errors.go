// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package seed

import "errors"

var (
	// ErrUnsupportedFormat is returned for a file extension other than
	// .json, .yaml or .yml.
	ErrUnsupportedFormat = errors.New("unsupported seed file format")

	// ErrEmptyPath is returned when a seed file path is not configured.
	ErrEmptyPath = errors.New("seed file path is empty")

	// ErrReadingFile wraps I/O failures while reading a seed file.
	ErrReadingFile = errors.New("error reading seed file")

	// ErrDecoding wraps syntax and schema errors of a seed file.
	ErrDecoding = errors.New("error decoding seed file")

	// ErrEmptyLegacyConfig is returned for a legacy config array without parts.
	ErrEmptyLegacyConfig = errors.New("legacy config array has no documents")
)
