package store

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by store methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrDuplicateKey is returned in insert mode when a document with the
	// same key already exists. It is wrapped by [DuplicateKeyError].
	ErrDuplicateKey = errors.New("duplicate key")

	// ErrStoreUnavailable is returned when the store cannot be reached or
	// stops responding within the configured timeout.
	ErrStoreUnavailable = errors.New("store unavailable")

	// ErrConfigNotFound is returned when no service configuration was seeded.
	ErrConfigNotFound = errors.New("service config was not found")

	// ErrClientNotFound is returned when no client has the requested id.
	ErrClientNotFound = errors.New("client was not found")

	// ErrAccountNotFound is returned when no account has the requested id.
	ErrAccountNotFound = errors.New("account was not found")

	// ErrUnsupportedStoreURI is returned for store URIs with an unknown scheme.
	ErrUnsupportedStoreURI = errors.New("unsupported store uri")

	// ErrStoreClosed is returned by the in-memory store after Close.
	ErrStoreClosed = errors.New("store is closed")
)

// Low-level database operation errors. These are wrapped by store methods
// when a SQL-level operation fails before any domain logic can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrScanningRow is returned when scanning a result row fails.
	ErrScanningRow = errors.New("failed to scan document row")

	// ErrEncodingDocument is returned when a document cannot be encoded or
	// decoded as JSON.
	ErrEncodingDocument = errors.New("failed to encode document")
)

// DuplicateKeyError identifies the document that collided with an existing
// one during an insert-mode seed.
type DuplicateKeyError struct {
	Collection string
	ID         string
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("%s: %s %q already exists", ErrDuplicateKey, e.Collection, e.ID)
}

func (e *DuplicateKeyError) Unwrap() error {
	return ErrDuplicateKey
}
