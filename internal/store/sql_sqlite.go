package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/MKhiriev/gnap-bootstrap/internal/logger"
	"github.com/mattn/go-sqlite3"
)

const sqliteInMemory = ":memory:"

// NewConnectSQLite opens the SQLite database at path (":memory:" for a
// throwaway database) and pings it. Parent directories of a file database
// are created on demand.
func NewConnectSQLite(ctx context.Context, path string, log *logger.Logger) (*DB, error) {
	fail := func(msg string, err error) (*DB, error) {
		log.Err(err).Str("func", "NewConnectSQLite").Str("path", path).Msg(msg)
		return nil, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	if path != sqliteInMemory {
		if err := ensureDir(path); err != nil {
			return fail("error preparing database directory", err)
		}
	}

	conn, err := sql.Open("sqlite3", path)
	if err != nil {
		return fail("error opening database", err)
	}
	// single writer; ":memory:" also lives in exactly one connection
	conn.SetMaxOpenConns(1)

	if err = conn.PingContext(ctx); err != nil {
		_ = conn.Close()
		return fail("error pinging database", err)
	}
	log.Debug().Str("func", "NewConnectSQLite").Str("path", path).Msg("sqlite database ready")

	return &DB{
		DB:                 conn,
		dialect:            DialectSQLite,
		logger:             log,
		errorClassificator: NewSQLiteErrorClassifier(),
	}, nil
}

// ensureDir creates the directory holding dbFile. The driver creates the
// file itself on first open.
func ensureDir(dbFile string) error {
	dir := filepath.Dir(dbFile)
	if dir == "." {
		return nil
	}
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("creating %s: %w", dir, err)
	}
	return nil
}

// SQLiteErrorClassifier implements [ErrorClassificator] for SQLite.
type SQLiteErrorClassifier struct{}

// NewSQLiteErrorClassifier constructs a [SQLiteErrorClassifier].
func NewSQLiteErrorClassifier() *SQLiteErrorClassifier {
	return &SQLiteErrorClassifier{}
}

// Classify maps unique and primary key constraint failures to [Conflict],
// busy/locked/cannot-open conditions to [Retryable] and everything else to
// [NonRetryable].
func (c *SQLiteErrorClassifier) Classify(err error) ErrorClassification {
	var sqliteErr sqlite3.Error
	if !errors.As(err, &sqliteErr) {
		return NonRetryable
	}

	switch sqliteErr.ExtendedCode {
	case sqlite3.ErrConstraintUnique, sqlite3.ErrConstraintPrimaryKey:
		return Conflict
	}

	switch sqliteErr.Code {
	case sqlite3.ErrBusy, sqlite3.ErrLocked, sqlite3.ErrCantOpen:
		return Retryable
	}

	return NonRetryable
}
