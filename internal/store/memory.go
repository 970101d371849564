package store

import (
	"context"
	"encoding/json"
	"fmt"
	"maps"
	"strconv"
	"sync"

	"github.com/MKhiriev/gnap-bootstrap/models"
)

// memoryStore is an in-process [DocumentStore]. Documents are kept JSON
// encoded so callers never share memory with the store. A seed is applied to
// a staged copy of the collections and swapped in only when every write
// succeeded.
type memoryStore struct {
	mu     sync.RWMutex
	closed bool
	state  memoryState
}

type memoryState struct {
	config        []byte
	configVersion int64
	clients       map[string][]byte
	accounts      map[string][]byte
}

// NewMemoryStore returns an empty in-memory [DocumentStore].
func NewMemoryStore() DocumentStore {
	return &memoryStore{
		state: memoryState{
			clients:  make(map[string][]byte),
			accounts: make(map[string][]byte),
		},
	}
}

func (m *memoryStore) SaveSeed(ctx context.Context, seed models.Seed, opts SaveOptions) (models.SaveResult, error) {
	if err := ctx.Err(); err != nil {
		return models.SaveResult{}, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return models.SaveResult{}, fmt.Errorf("%w: %w", ErrStoreUnavailable, ErrStoreClosed)
	}

	staged := memoryState{
		config:        m.state.config,
		configVersion: m.state.configVersion,
		clients:       maps.Clone(m.state.clients),
		accounts:      maps.Clone(m.state.accounts),
	}

	if staged.config != nil && opts.Mode != models.SaveUpsert {
		return models.SaveResult{}, &DuplicateKeyError{Collection: serviceConfigTable, ID: strconv.Itoa(serviceConfigID)}
	}
	doc, err := json.Marshal(seed.Config)
	if err != nil {
		return models.SaveResult{}, fmt.Errorf("%w: %w", ErrEncodingDocument, err)
	}
	staged.config = doc
	staged.configVersion++

	for _, client := range seed.Clients {
		if err := stageDocument(staged.clients, clientsTable, client.ClientID, client, opts.Mode); err != nil {
			return models.SaveResult{}, err
		}
	}

	for _, account := range seed.Accounts {
		if err := stageDocument(staged.accounts, accountsTable, account.AccountID, account, opts.Mode); err != nil {
			return models.SaveResult{}, err
		}
	}

	m.state = staged

	return models.SaveResult{
		ConfigVersion: staged.configVersion,
		Clients:       len(seed.Clients),
		Accounts:      len(seed.Accounts),
	}, nil
}

func stageDocument(collection map[string][]byte, table, key string, document any, mode models.SaveMode) error {
	if _, exists := collection[key]; exists && mode != models.SaveUpsert {
		return &DuplicateKeyError{Collection: table, ID: key}
	}

	doc, err := json.Marshal(document)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncodingDocument, err)
	}
	collection[key] = doc

	return nil
}

func (m *memoryStore) GetServiceConfig(ctx context.Context) (models.ServiceConfig, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.closed {
		return models.ServiceConfig{}, fmt.Errorf("%w: %w", ErrStoreUnavailable, ErrStoreClosed)
	}
	if m.state.config == nil {
		return models.ServiceConfig{}, ErrConfigNotFound
	}

	return decodeDocument[models.ServiceConfig](m.state.config)
}

func (m *memoryStore) GetClient(ctx context.Context, clientID string) (models.Client, error) {
	return lookupDocument[models.Client](m, clientID, ErrClientNotFound, func(s memoryState) map[string][]byte { return s.clients })
}

func (m *memoryStore) GetAccount(ctx context.Context, accountID string) (models.Account, error) {
	return lookupDocument[models.Account](m, accountID, ErrAccountNotFound, func(s memoryState) map[string][]byte { return s.accounts })
}

func lookupDocument[T any](m *memoryStore, key string, notFound error, collection func(memoryState) map[string][]byte) (T, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var document T
	if m.closed {
		return document, fmt.Errorf("%w: %w", ErrStoreUnavailable, ErrStoreClosed)
	}

	doc, ok := collection(m.state)[key]
	if !ok {
		return document, notFound
	}

	return decodeDocument[T](doc)
}

func decodeDocument[T any](doc []byte) (T, error) {
	var document T
	if err := json.Unmarshal(doc, &document); err != nil {
		return document, fmt.Errorf("%w: %w", ErrEncodingDocument, err)
	}
	return document, nil
}

func (m *memoryStore) Ping(ctx context.Context) error {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.closed {
		return fmt.Errorf("%w: %w", ErrStoreUnavailable, ErrStoreClosed)
	}
	return nil
}

func (m *memoryStore) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.closed = true
	return nil
}
