package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/gnap-bootstrap/models"
	"github.com/jackc/pgerrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const runID = "0192d3a4-6b7e-7c3d-9f00-5a1b2c3d4e5f"

func expectSeedWrites(mock sqlmock.Sqlmock, seed models.Seed, version int64) {
	mock.ExpectQuery(`INSERT INTO service_config \(id,version,seed_run_id,doc\) VALUES \(\$1,\$2,\$3,\$4\) RETURNING version`).
		WithArgs(1, 1, runID, sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"version"}).AddRow(version))
	for _, c := range seed.Clients {
		mock.ExpectExec(`INSERT INTO clients \(client_id,seed_run_id,doc\)`).
			WithArgs(c.ClientID, runID, sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(0, 1))
	}
	for _, a := range seed.Accounts {
		mock.ExpectExec(`INSERT INTO accounts \(account_id,seed_run_id,doc\)`).
			WithArgs(a.AccountID, runID, sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(0, 1))
	}
}

func TestSaveSeed_InsertSuccess(t *testing.T) {
	s, mock := newTestSQLStore(t)
	seed := testSeed()

	mock.ExpectBegin()
	expectSeedWrites(mock, seed, 1)
	mock.ExpectCommit()

	res, err := s.SaveSeed(context.Background(), seed, SaveOptions{Mode: models.SaveInsert, RunID: runID})
	require.NoError(t, err)
	assert.Equal(t, models.SaveResult{ConfigVersion: 1, Clients: 1, Accounts: 1}, res)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveSeed_UpsertIncrementsVersion(t *testing.T) {
	s, mock := newTestSQLStore(t)
	seed := testSeed()

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO service_config .* ON CONFLICT \(id\) DO UPDATE SET`).
		WithArgs(1, 1, runID, sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"version"}).AddRow(3))
	mock.ExpectExec(`INSERT INTO clients .* ON CONFLICT \(client_id\) DO UPDATE SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`INSERT INTO accounts .* ON CONFLICT \(account_id\) DO UPDATE SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	res, err := s.SaveSeed(context.Background(), seed, SaveOptions{Mode: models.SaveUpsert, RunID: runID})
	require.NoError(t, err)
	assert.Equal(t, int64(3), res.ConfigVersion)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveSeed_ConfigDocumentIsJSON(t *testing.T) {
	s, mock := newTestSQLStore(t)
	seed := testSeed()
	seed.Clients, seed.Accounts = nil, nil

	want, err := json.Marshal(seed.Config)
	require.NoError(t, err)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO service_config`).
		WithArgs(1, 1, runID, string(want)).
		WillReturnRows(sqlmock.NewRows([]string{"version"}).AddRow(1))
	mock.ExpectCommit()

	_, err = s.SaveSeed(context.Background(), seed, SaveOptions{RunID: runID})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveSeed_DuplicateConfig(t *testing.T) {
	s, mock := newTestSQLStore(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO service_config`).
		WillReturnError(pgError(pgerrcode.UniqueViolation))
	mock.ExpectRollback()

	_, err := s.SaveSeed(context.Background(), testSeed(), SaveOptions{RunID: runID})
	require.ErrorIs(t, err, ErrDuplicateKey)

	var dupErr *DuplicateKeyError
	require.True(t, errors.As(err, &dupErr))
	assert.Equal(t, "service_config", dupErr.Collection)
	assert.Equal(t, "1", dupErr.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveSeed_DuplicateClientRollsBack(t *testing.T) {
	s, mock := newTestSQLStore(t)
	seed := testSeed()

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO service_config`).
		WillReturnRows(sqlmock.NewRows([]string{"version"}).AddRow(1))
	mock.ExpectExec(`INSERT INTO clients`).
		WillReturnError(pgError(pgerrcode.UniqueViolation))
	mock.ExpectRollback()

	_, err := s.SaveSeed(context.Background(), seed, SaveOptions{RunID: runID})

	var dupErr *DuplicateKeyError
	require.True(t, errors.As(err, &dupErr))
	assert.Equal(t, "clients", dupErr.Collection)
	assert.Equal(t, seed.Clients[0].ClientID, dupErr.ID)
	assert.EqualError(t, err, `duplicate key: clients "7e057b0c-17e8-4ab4-9260-2b33f32b2cce" already exists`)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveSeed_DuplicateAccount(t *testing.T) {
	s, mock := newTestSQLStore(t)
	seed := testSeed()

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO service_config`).
		WillReturnRows(sqlmock.NewRows([]string{"version"}).AddRow(1))
	mock.ExpectExec(`INSERT INTO clients`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`INSERT INTO accounts`).
		WillReturnError(pgError(pgerrcode.UniqueViolation))
	mock.ExpectRollback()

	_, err := s.SaveSeed(context.Background(), seed, SaveOptions{RunID: runID})

	var dupErr *DuplicateKeyError
	require.True(t, errors.As(err, &dupErr))
	assert.Equal(t, "accounts", dupErr.Collection)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveSeed_BeginUnavailable(t *testing.T) {
	s, mock := newTestSQLStore(t)

	mock.ExpectBegin().WillReturnError(pgError(pgerrcode.ConnectionFailure))

	_, err := s.SaveSeed(context.Background(), testSeed(), SaveOptions{RunID: runID})
	assert.ErrorIs(t, err, ErrStoreUnavailable)
	assert.ErrorIs(t, err, ErrBeginningTransaction)
}

func TestSaveSeed_ConnectionLostMidway(t *testing.T) {
	s, mock := newTestSQLStore(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO service_config`).
		WillReturnError(context.DeadlineExceeded)
	mock.ExpectRollback()

	_, err := s.SaveSeed(context.Background(), testSeed(), SaveOptions{RunID: runID})
	assert.ErrorIs(t, err, ErrStoreUnavailable)
	assert.NotErrorIs(t, err, ErrDuplicateKey)
}

func TestSaveSeed_OtherErrorIsNotClassified(t *testing.T) {
	s, mock := newTestSQLStore(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO service_config`).
		WillReturnError(pgError(pgerrcode.UndefinedTable))
	mock.ExpectRollback()

	_, err := s.SaveSeed(context.Background(), testSeed(), SaveOptions{RunID: runID})
	assert.ErrorIs(t, err, ErrExecutingQuery)
	assert.NotErrorIs(t, err, ErrStoreUnavailable)
	assert.NotErrorIs(t, err, ErrDuplicateKey)
}

func TestSaveSeed_CommitError(t *testing.T) {
	s, mock := newTestSQLStore(t)
	seed := testSeed()

	mock.ExpectBegin()
	expectSeedWrites(mock, seed, 1)
	mock.ExpectCommit().WillReturnError(errors.New("commit failed"))

	_, err := s.SaveSeed(context.Background(), seed, SaveOptions{RunID: runID})
	assert.ErrorIs(t, err, ErrCommitingTransaction)
}

func TestGetServiceConfig(t *testing.T) {
	s, mock := newTestSQLStore(t)
	want := testSeed().Config
	doc, err := json.Marshal(want)
	require.NoError(t, err)

	mock.ExpectQuery(`SELECT doc FROM service_config WHERE id = \$1`).
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows([]string{"doc"}).AddRow(doc))

	got, err := s.GetServiceConfig(context.Background())
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestGetServiceConfig_NotFound(t *testing.T) {
	s, mock := newTestSQLStore(t)

	mock.ExpectQuery(`SELECT doc FROM service_config`).
		WillReturnError(sql.ErrNoRows)

	_, err := s.GetServiceConfig(context.Background())
	assert.ErrorIs(t, err, ErrConfigNotFound)
}

func TestGetServiceConfig_Unavailable(t *testing.T) {
	s, mock := newTestSQLStore(t)

	mock.ExpectQuery(`SELECT doc FROM service_config`).
		WillReturnError(pgError(pgerrcode.CannotConnectNow))

	_, err := s.GetServiceConfig(context.Background())
	assert.ErrorIs(t, err, ErrStoreUnavailable)
}

func TestGetServiceConfig_CorruptDocument(t *testing.T) {
	s, mock := newTestSQLStore(t)

	mock.ExpectQuery(`SELECT doc FROM service_config`).
		WillReturnRows(sqlmock.NewRows([]string{"doc"}).AddRow([]byte(`{"service_endpoints":`)))

	_, err := s.GetServiceConfig(context.Background())
	assert.ErrorIs(t, err, ErrEncodingDocument)
}

func TestGetClient(t *testing.T) {
	s, mock := newTestSQLStore(t)
	want := testSeed().Clients[0]
	doc, err := json.Marshal(want)
	require.NoError(t, err)

	mock.ExpectQuery(`SELECT doc FROM clients WHERE client_id = \$1`).
		WithArgs(want.ClientID).
		WillReturnRows(sqlmock.NewRows([]string{"doc"}).AddRow(doc))

	got, err := s.GetClient(context.Background(), want.ClientID)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestGetClient_NotFound(t *testing.T) {
	s, mock := newTestSQLStore(t)

	mock.ExpectQuery(`SELECT doc FROM clients`).
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{"doc"}))

	_, err := s.GetClient(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrClientNotFound)
}

func TestGetAccount(t *testing.T) {
	s, mock := newTestSQLStore(t)
	want := testSeed().Accounts[0]
	doc, err := json.Marshal(want)
	require.NoError(t, err)

	mock.ExpectQuery(`SELECT doc FROM accounts WHERE account_id = \$1`).
		WithArgs(want.AccountID).
		WillReturnRows(sqlmock.NewRows([]string{"doc"}).AddRow(doc))

	got, err := s.GetAccount(context.Background(), want.AccountID)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestGetAccount_NotFound(t *testing.T) {
	s, mock := newTestSQLStore(t)

	mock.ExpectQuery(`SELECT doc FROM accounts`).
		WillReturnRows(sqlmock.NewRows([]string{"doc"}))

	_, err := s.GetAccount(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrAccountNotFound)
}

func TestPing(t *testing.T) {
	conn, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer conn.Close()
	s := &sqlDocumentStore{DB: &DB{DB: conn, dialect: DialectPostgres}}

	mock.ExpectPing()
	assert.NoError(t, s.Ping(context.Background()))

	mock.ExpectPing().WillReturnError(errors.New("connection refused"))
	assert.ErrorIs(t, s.Ping(context.Background()), ErrStoreUnavailable)
}
