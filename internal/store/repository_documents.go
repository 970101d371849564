package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/MKhiriev/gnap-bootstrap/internal/logger"
	"github.com/MKhiriev/gnap-bootstrap/models"
)

// sqlDocumentStore is the SQL-backed implementation of [DocumentStore].
// Each document is stored as JSON in the doc column of its collection table
// (jsonb on PostgreSQL, TEXT on SQLite).
type sqlDocumentStore struct {
	*DB
	logger *logger.Logger
}

// NewSQLDocumentStore constructs a [DocumentStore] backed by db.
func NewSQLDocumentStore(db *DB, logger *logger.Logger) DocumentStore {
	logger.Debug().Str("dialect", db.dialect).Msg("creating sql document store")
	return &sqlDocumentStore{
		DB:     db,
		logger: logger,
	}
}

// SaveSeed writes the service configuration, then every client, then every
// account inside one transaction. The transaction is rolled back (via
// defer) when any write fails, so a failed seed leaves the store untouched.
func (s *sqlDocumentStore) SaveSeed(ctx context.Context, seed models.Seed, opts SaveOptions) (models.SaveResult, error) {
	log := logger.FromContext(ctx)

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).
			Str("func", "sqlDocumentStore.SaveSeed").
			Msg("failed to begin transaction")
		return models.SaveResult{}, s.txError(ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	version, err := s.saveServiceConfig(ctx, tx, seed.Config, opts)
	if err != nil {
		return models.SaveResult{}, err
	}

	for idx, client := range seed.Clients {
		if err := s.saveDocument(ctx, tx, clientsTable, clientKeyColumn, client.ClientID, client, opts); err != nil {
			log.Err(err).
				Str("func", "sqlDocumentStore.SaveSeed").
				Int("iteration", idx+1).
				Str("client_id", client.ClientID).
				Msg("failed to save client")
			return models.SaveResult{}, err
		}
	}

	for idx, account := range seed.Accounts {
		if err := s.saveDocument(ctx, tx, accountsTable, accountKeyColumn, account.AccountID, account, opts); err != nil {
			log.Err(err).
				Str("func", "sqlDocumentStore.SaveSeed").
				Int("iteration", idx+1).
				Str("account_id", account.AccountID).
				Msg("failed to save account")
			return models.SaveResult{}, err
		}
	}

	if commitErr := tx.Commit(); commitErr != nil {
		log.Err(commitErr).
			Str("func", "sqlDocumentStore.SaveSeed").
			Msg("failed to commit transaction")
		return models.SaveResult{}, s.txError(ErrCommitingTransaction, commitErr)
	}

	log.Info().
		Str("func", "sqlDocumentStore.SaveSeed").
		Str("mode", opts.Mode.String()).
		Int64("config_version", version).
		Int("clients", len(seed.Clients)).
		Int("accounts", len(seed.Accounts)).
		Msg("seed committed")

	return models.SaveResult{
		ConfigVersion: version,
		Clients:       len(seed.Clients),
		Accounts:      len(seed.Accounts),
	}, nil
}

func (s *sqlDocumentStore) saveServiceConfig(ctx context.Context, tx *sql.Tx, cfg models.ServiceConfig, opts SaveOptions) (int64, error) {
	log := logger.FromContext(ctx)

	doc, err := json.Marshal(cfg)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrEncodingDocument, err)
	}

	query, args, err := s.buildSaveServiceConfigQuery(doc, opts.RunID, opts.Mode)
	if err != nil {
		log.Err(err).Str("func", "sqlDocumentStore.saveServiceConfig").Msg("failed to create query")
		return 0, err
	}

	var version int64
	if err := tx.QueryRowContext(ctx, query, args...).Scan(&version); err != nil {
		log.Err(err).
			Str("func", "sqlDocumentStore.saveServiceConfig").
			Str("mode", opts.Mode.String()).
			Msg("failed to save service config")
		return 0, s.classify(err, serviceConfigTable, strconv.Itoa(serviceConfigID))
	}

	return version, nil
}

func (s *sqlDocumentStore) saveDocument(ctx context.Context, tx *sql.Tx, table, keyColumn, key string, document any, opts SaveOptions) error {
	doc, err := json.Marshal(document)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncodingDocument, err)
	}

	query, args, err := s.buildSaveDocumentQuery(table, keyColumn, key, doc, opts.RunID, opts.Mode)
	if err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return s.classify(err, table, key)
	}

	return nil
}

// GetServiceConfig returns the seeded service configuration or
// [ErrConfigNotFound].
func (s *sqlDocumentStore) GetServiceConfig(ctx context.Context) (models.ServiceConfig, error) {
	return getDocument[models.ServiceConfig](ctx, s.DB, serviceConfigTable, "id", serviceConfigID, ErrConfigNotFound)
}

// GetClient returns the client registered under clientID or
// [ErrClientNotFound].
func (s *sqlDocumentStore) GetClient(ctx context.Context, clientID string) (models.Client, error) {
	return getDocument[models.Client](ctx, s.DB, clientsTable, clientKeyColumn, clientID, ErrClientNotFound)
}

// GetAccount returns the account stored under accountID or
// [ErrAccountNotFound].
func (s *sqlDocumentStore) GetAccount(ctx context.Context, accountID string) (models.Account, error) {
	return getDocument[models.Account](ctx, s.DB, accountsTable, accountKeyColumn, accountID, ErrAccountNotFound)
}

func (s *sqlDocumentStore) Ping(ctx context.Context) error {
	if err := s.DB.PingContext(ctx); err != nil {
		return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}
	return nil
}

func (s *sqlDocumentStore) Close() error {
	return s.DB.Close()
}

// txError wraps a transaction control failure, marking it unavailable when
// the connection is gone.
func (s *sqlDocumentStore) txError(sentinel, err error) error {
	if s.unavailable(err) {
		return fmt.Errorf("%w: %w: %w", ErrStoreUnavailable, sentinel, err)
	}
	return fmt.Errorf("%w: %w", sentinel, err)
}

func getDocument[T any](ctx context.Context, db *DB, table, keyColumn string, key any, notFound error) (T, error) {
	log := logger.FromContext(ctx)
	var document T

	query, args, err := db.buildGetDocumentQuery(table, keyColumn, key)
	if err != nil {
		return document, err
	}

	var doc []byte
	if err := db.QueryRowContext(ctx, query, args...).Scan(&doc); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return document, notFound
		}
		log.Err(err).
			Str("func", "getDocument").
			Str("table", table).
			Msg("failed to read document")
		if db.unavailable(err) {
			return document, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
		}
		return document, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	if err := json.Unmarshal(doc, &document); err != nil {
		return document, fmt.Errorf("%w: %s: %w", ErrEncodingDocument, table, err)
	}

	return document, nil
}
