package store

import (
	"fmt"

	"github.com/MKhiriev/gnap-bootstrap/models"
	sq "github.com/Masterminds/squirrel"
)

const (
	serviceConfigTable = "service_config"
	clientsTable       = "clients"
	accountsTable      = "accounts"

	clientKeyColumn  = "client_id"
	accountKeyColumn = "account_id"

	// the service configuration is a singleton row
	serviceConfigID = 1

	insertServiceConfigSuffix = `RETURNING version`
	upsertServiceConfigSuffix = `ON CONFLICT (id) DO UPDATE SET
		version = service_config.version + 1,
		seed_run_id = excluded.seed_run_id,
		doc = excluded.doc,
		updated_at = CURRENT_TIMESTAMP
		RETURNING version`

	upsertDocumentSuffix = `ON CONFLICT (%s) DO UPDATE SET
		seed_run_id = excluded.seed_run_id,
		doc = excluded.doc,
		updated_at = CURRENT_TIMESTAMP`
)

// buildSaveServiceConfigQuery builds the singleton INSERT returning the
// stored version. In upsert mode an existing row is replaced and its version
// incremented.
func (db *DB) buildSaveServiceConfigQuery(doc []byte, runID string, mode models.SaveMode) (string, []any, error) {
	suffix := insertServiceConfigSuffix
	if mode == models.SaveUpsert {
		suffix = upsertServiceConfigSuffix
	}

	query, args, err := db.builder().
		Insert(serviceConfigTable).
		Columns("id", "version", "seed_run_id", "doc").
		Values(serviceConfigID, 1, runID, string(doc)).
		Suffix(suffix).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildSaveDocumentQuery builds the INSERT of one client or account
// document keyed by keyColumn.
func (db *DB) buildSaveDocumentQuery(table, keyColumn, key string, doc []byte, runID string, mode models.SaveMode) (string, []any, error) {
	builder := db.builder().
		Insert(table).
		Columns(keyColumn, "seed_run_id", "doc").
		Values(key, runID, string(doc))

	if mode == models.SaveUpsert {
		builder = builder.Suffix(fmt.Sprintf(upsertDocumentSuffix, keyColumn))
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildGetDocumentQuery builds the SELECT of a single document by key.
func (db *DB) buildGetDocumentQuery(table, keyColumn string, key any) (string, []any, error) {
	query, args, err := db.builder().
		Select("doc").
		From(table).
		Where(sq.Eq{keyColumn: key}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}
