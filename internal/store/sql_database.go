package store

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"net"

	"github.com/MKhiriev/gnap-bootstrap/internal/logger"
	"github.com/MKhiriev/gnap-bootstrap/migrations"
	sq "github.com/Masterminds/squirrel"
)

// SQL dialects understood by the store and by the migrations package.
const (
	DialectPostgres = "postgres"
	DialectSQLite   = "sqlite3"
)

type DB struct {
	*sql.DB
	dialect            string
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}

// builder returns a squirrel statement builder with the placeholder format
// of the connected dialect.
func (db *DB) builder() sq.StatementBuilderType {
	if db.dialect == DialectPostgres {
		return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	}
	return sq.StatementBuilder.PlaceholderFormat(sq.Question)
}

// classify turns a driver error raised while writing the document
// collection/id into a store error.
func (db *DB) classify(err error, collection, id string) error {
	switch {
	case db.unavailable(err):
		return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	case db.errorClassificator != nil && db.errorClassificator.Classify(err) == Conflict:
		return &DuplicateKeyError{Collection: collection, ID: id}
	default:
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
}

func (db *DB) unavailable(err error) bool {
	if isUnavailable(err) {
		return true
	}
	return db.errorClassificator != nil && db.errorClassificator.Classify(err) == Retryable
}

// isUnavailable reports whether err means the database could not be reached
// or stopped answering.
func isUnavailable(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) ||
		errors.Is(err, driver.ErrBadConn) ||
		errors.Is(err, sql.ErrConnDone) {
		return true
	}

	var netErr net.Error
	return errors.As(err, &netErr)
}
