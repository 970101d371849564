package store

import (
	"context"

	"github.com/MKhiriev/gnap-bootstrap/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// DocumentStore persists the bootstrap documents of the authorization
// service: the singleton service configuration, client registrations and
// account profiles.
type DocumentStore interface {
	// SaveSeed writes the whole seed in a single transaction, in the order
	// service_config, clients, accounts. Nothing is persisted when any write
	// fails.
	SaveSeed(ctx context.Context, seed models.Seed, opts SaveOptions) (models.SaveResult, error)

	GetServiceConfig(ctx context.Context) (models.ServiceConfig, error)
	GetClient(ctx context.Context, clientID string) (models.Client, error)
	GetAccount(ctx context.Context, accountID string) (models.Account, error)

	// Ping checks that the store is reachable.
	Ping(ctx context.Context) error
	Close() error
}

// ErrorClassificator maps driver errors to an [ErrorClassification].
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// SaveOptions controls how [DocumentStore.SaveSeed] treats existing documents.
type SaveOptions struct {
	Mode  models.SaveMode
	RunID string
}
