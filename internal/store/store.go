// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store persists the bootstrap documents of the authorization
// service in PostgreSQL, SQLite or process memory, selected by store URI.
package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/gnap-bootstrap/internal/config"
	"github.com/MKhiriev/gnap-bootstrap/internal/logger"
)

// NewDocumentStore connects the [DocumentStore] addressed by cfg.URI:
//
//	postgres://... | postgresql://...   PostgreSQL
//	sqlite:///path/to/file.db | sqlite::memory:   SQLite
//	memory://                           in-process store
//
// Connecting and migrating are bounded by cfg.Timeout. Callers own the
// returned store and must Close it.
func NewDocumentStore(ctx context.Context, cfg config.Storage, log *logger.Logger) (DocumentStore, error) {
	scheme, _, ok := strings.Cut(cfg.URI, ":")
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedStoreURI, cfg.URI)
	}

	if cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
	}

	var (
		db  *DB
		err error
	)

	switch strings.ToLower(scheme) {
	case "memory":
		log.Debug().Msg("using in-memory document store")
		return NewMemoryStore(), nil
	case "postgres", "postgresql":
		db, err = NewConnectPostgres(ctx, cfg.URI, log)
	case "sqlite":
		db, err = NewConnectSQLite(ctx, sqlitePath(cfg.URI), log)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedStoreURI, cfg.URI)
	}
	if err != nil {
		return nil, err
	}

	if cfg.AutoMigrate {
		if err := db.Migrate(); err != nil {
			log.Err(err).Str("func", "NewDocumentStore").Msg("error applying migrations")
			_ = db.Close()
			return nil, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
		}
	}

	return NewSQLDocumentStore(db, log), nil
}

func sqlitePath(uri string) string {
	if path, ok := strings.CutPrefix(uri, "sqlite://"); ok {
		return path
	}
	return strings.TrimPrefix(uri, "sqlite:")
}
