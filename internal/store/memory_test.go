package store

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/MKhiriev/gnap-bootstrap/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	seed := testSeed()

	res, err := s.SaveSeed(ctx, seed, SaveOptions{RunID: runID})
	require.NoError(t, err)
	assert.Equal(t, models.SaveResult{ConfigVersion: 1, Clients: 1, Accounts: 1}, res)

	cfg, err := s.GetServiceConfig(ctx)
	require.NoError(t, err)
	assert.Equal(t, seed.Config, cfg)

	client, err := s.GetClient(ctx, seed.Clients[0].ClientID)
	require.NoError(t, err)
	assert.Equal(t, seed.Clients[0], client)

	account, err := s.GetAccount(ctx, seed.Accounts[0].AccountID)
	require.NoError(t, err)
	assert.Equal(t, seed.Accounts[0], account)
}

func TestMemoryStore_EmptyStore(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	_, err := s.GetServiceConfig(ctx)
	assert.ErrorIs(t, err, ErrConfigNotFound)

	_, err = s.GetClient(ctx, "nope")
	assert.ErrorIs(t, err, ErrClientNotFound)

	_, err = s.GetAccount(ctx, "nope")
	assert.ErrorIs(t, err, ErrAccountNotFound)
}

func TestMemoryStore_InsertTwiceFailsOnConfig(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	_, err := s.SaveSeed(ctx, testSeed(), SaveOptions{RunID: runID})
	require.NoError(t, err)

	_, err = s.SaveSeed(ctx, testSeed(), SaveOptions{RunID: runID})
	var dupErr *DuplicateKeyError
	require.True(t, errors.As(err, &dupErr))
	assert.Equal(t, "service_config", dupErr.Collection)
}

// TestMemoryStore_FailedSeedLeavesNoTrace verifies that a seed failing on
// its last account does not leave its config or clients behind.
func TestMemoryStore_FailedSeedLeavesNoTrace(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	seed := testSeed()
	seed.Accounts = append(seed.Accounts, seed.Accounts[0])

	_, err := s.SaveSeed(ctx, seed, SaveOptions{RunID: runID})
	require.ErrorIs(t, err, ErrDuplicateKey)

	_, err = s.GetServiceConfig(ctx)
	assert.ErrorIs(t, err, ErrConfigNotFound)
	_, err = s.GetClient(ctx, seed.Clients[0].ClientID)
	assert.ErrorIs(t, err, ErrClientNotFound)
}

func TestMemoryStore_UpsertReplacesAndBumpsVersion(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	seed := testSeed()

	_, err := s.SaveSeed(ctx, seed, SaveOptions{Mode: models.SaveUpsert, RunID: runID})
	require.NoError(t, err)

	seed.Clients[0].ClientName = "Renamed"
	seed.Config.TokenFormatsSupported = []models.TokenFormat{models.TokenFormatPaseto}

	res, err := s.SaveSeed(ctx, seed, SaveOptions{Mode: models.SaveUpsert, RunID: runID})
	require.NoError(t, err)
	assert.Equal(t, int64(2), res.ConfigVersion)

	client, err := s.GetClient(ctx, seed.Clients[0].ClientID)
	require.NoError(t, err)
	assert.Equal(t, "Renamed", client.ClientName)

	cfg, err := s.GetServiceConfig(ctx)
	require.NoError(t, err)
	assert.Equal(t, []models.TokenFormat{models.TokenFormatPaseto}, cfg.TokenFormatsSupported)
}

func TestMemoryStore_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	seed := testSeed()

	_, err := s.SaveSeed(ctx, seed, SaveOptions{RunID: runID})
	require.NoError(t, err)

	seed.Config.KeyProofsSupported[0] = models.KeyProofMTLS

	cfg, err := s.GetServiceConfig(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.KeyProofHTTPSig, cfg.KeyProofsSupported[0])
}

func TestMemoryStore_Closed(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	require.NoError(t, s.Ping(ctx))
	require.NoError(t, s.Close())

	assert.ErrorIs(t, s.Ping(ctx), ErrStoreUnavailable)
	_, err := s.SaveSeed(ctx, testSeed(), SaveOptions{})
	assert.ErrorIs(t, err, ErrStoreUnavailable)
	_, err = s.GetClient(ctx, "c")
	assert.ErrorIs(t, err, ErrStoreClosed)
}

func TestMemoryStore_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewMemoryStore().SaveSeed(ctx, testSeed(), SaveOptions{})
	assert.ErrorIs(t, err, ErrStoreUnavailable)
}

func TestMemoryStore_ConcurrentReaders(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	_, err := s.SaveSeed(ctx, testSeed(), SaveOptions{})
	require.NoError(t, err)

	var wg sync.WaitGroup
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			cfg, err := s.GetServiceConfig(ctx)
			assert.NoError(t, err)
			assert.NotEmpty(t, cfg.ServiceEndpoints.GrantRequest)
		}()
	}
	wg.Wait()
}
