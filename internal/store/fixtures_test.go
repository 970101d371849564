package store

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/gnap-bootstrap/internal/logger"
	"github.com/MKhiriev/gnap-bootstrap/models"
	"github.com/jackc/pgx/v5/pgconn"
)

func testSeed() models.Seed {
	return models.Seed{
		Config: models.ServiceConfig{
			ServiceEndpoints: models.ServiceEndpoints{
				GrantRequest:         "https://localhost:8000/gnap/tx",
				Introspection:        "https://localhost:8000/gnap/introspect",
				ResourceRegistration: "https://localhost:8000/gnap/resource",
			},
			InteractionStartModesSupported:    []models.InteractionStartMode{models.InteractionStartRedirect, models.InteractionStartApp},
			InteractionFinishMethodsSupported: []models.InteractionFinishMethod{models.InteractionFinishRedirect},
			KeyProofsSupported:                []models.KeyProof{models.KeyProofHTTPSig},
			SubjectFormatsSupported:           []models.SubjectFormat{models.SubjectFormatIssSub},
			AssertionsSupported:               []models.AssertionFormat{models.AssertionOIDC},
			TokenFormatsSupported:             []models.TokenFormat{models.TokenFormatJWT},
		},
		Clients: []models.Client{
			{
				ClientID:     "7e057b0c-17e8-4ab4-9260-2b33f32b2cce",
				ClientName:   "Test Client",
				RedirectURIs: []string{"https://localhost:3000/callback"},
			},
		},
		Accounts: []models.Account{
			{
				AccountID: "0d8a5c82-5f26-4a4b-9a9c-9ab2a5e0b1f0",
				GivenName: "Alice",
				Email:     []models.EmailAddress{{Address: "alice@example.com", Verified: true, Primary: true}},
			},
		},
	}
}

func newTestPostgresDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()
	conn, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	return &DB{
		DB:                 conn,
		dialect:            DialectPostgres,
		errorClassificator: NewPostgresErrorClassifier(),
		logger:             logger.Nop(),
	}, mock
}

func newTestSQLStore(t *testing.T) (*sqlDocumentStore, sqlmock.Sqlmock) {
	t.Helper()
	db, mock := newTestPostgresDB(t)
	return &sqlDocumentStore{DB: db, logger: logger.Nop()}, mock
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}
