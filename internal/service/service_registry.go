package service

import (
	"context"

	"github.com/MKhiriev/gnap-bootstrap/internal/logger"
	"github.com/MKhiriev/gnap-bootstrap/internal/store"
	"github.com/MKhiriev/gnap-bootstrap/models"
)

type registryService struct {
	store  store.DocumentStore
	logger *logger.Logger
}

// NewRegistryService returns a RegistryService backed by documentStore.
// Lookups of unknown ids return store.ErrClientNotFound or
// store.ErrAccountNotFound.
func NewRegistryService(documentStore store.DocumentStore, log *logger.Logger) RegistryService {
	return &registryService{store: documentStore, logger: log}
}

func (r *registryService) GetClient(ctx context.Context, clientID string) (models.Client, error) {
	client, err := r.store.GetClient(ctx, clientID)
	if err != nil {
		r.logger.Debug().Err(err).Str("client_id", clientID).Msg("client lookup failed")
		return models.Client{}, err
	}
	return client, nil
}

func (r *registryService) GetAccount(ctx context.Context, accountID string) (models.Account, error) {
	account, err := r.store.GetAccount(ctx, accountID)
	if err != nil {
		r.logger.Debug().Err(err).Str("account_id", accountID).Msg("account lookup failed")
		return models.Account{}, err
	}
	return account, nil
}
