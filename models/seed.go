// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Seed is everything one bootstrap run writes to the backing store.
type Seed struct {
	Config   ServiceConfig
	Clients  []Client
	Accounts []Account
}

// SaveMode selects how the store treats documents whose key already exists.
type SaveMode int

const (
	// SaveInsert fails the whole run with a duplicate-key error when the
	// singleton or any client/account id already exists.
	SaveInsert SaveMode = iota

	// SaveUpsert replaces existing documents. The singleton keeps a version
	// counter that is incremented on every replacement.
	SaveUpsert
)

// String returns the lowercase mode name used in logs and metrics.
func (m SaveMode) String() string {
	switch m {
	case SaveUpsert:
		return "upsert"
	default:
		return "insert"
	}
}

// SaveResult describes what a successful save wrote.
type SaveResult struct {
	ConfigVersion int64
	Clients       int
	Accounts      int
}

// LoadReport is returned by a successful bootstrap run.
type LoadReport struct {
	RunID         string
	Mode          SaveMode
	DryRun        bool
	ConfigVersion int64
	Clients       int
	Accounts      int
	Duration      time.Duration
}
