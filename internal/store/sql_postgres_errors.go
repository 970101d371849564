package store

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrorClassification tells the store whether a failed statement collided
// with an existing document, hit a transient condition, or failed for good.
type ErrorClassification int

const (
	// NonRetryable is the default for anything not recognised below.
	NonRetryable ErrorClassification = iota

	// Retryable marks transient conditions. The store reports them as
	// [ErrStoreUnavailable].
	Retryable

	// Conflict marks a unique or primary key violation. The store reports
	// it as a [DuplicateKeyError].
	Conflict
)

// PostgresErrorClassifier implements [ErrorClassificator] for PostgreSQL.
type PostgresErrorClassifier struct{}

func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify maps connection setup failures and SQLSTATE classes to an
// [ErrorClassification]:
//
//	23505                                  Conflict
//	class 08 connection exception          Retryable
//	class 40 transaction rollback          Retryable
//	class 53 insufficient resources        Retryable
//	class 57 operator intervention         Retryable
func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	var connectErr *pgconn.ConnectError
	if errors.As(err, &connectErr) {
		return Retryable
	}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return NonRetryable
	}

	switch code := pgErr.Code; {
	case code == pgerrcode.UniqueViolation:
		return Conflict
	case pgerrcode.IsConnectionException(code),
		pgerrcode.IsTransactionRollback(code),
		pgerrcode.IsInsufficientResources(code),
		pgerrcode.IsOperatorIntervention(code):
		return Retryable
	default:
		return NonRetryable
	}
}
