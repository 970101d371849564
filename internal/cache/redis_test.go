package cache

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/gnap-bootstrap/internal/config"
	"github.com/MKhiriev/gnap-bootstrap/internal/logger"
	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedis_SetGetDelete(t *testing.T) {
	ctx := context.Background()
	srv := miniredis.RunT(t)

	c := NewRedis(srv.Addr(), 0, time.Hour)
	defer c.Close()

	_, err := c.Get(ctx, KeyServiceConfig)
	assert.ErrorIs(t, err, ErrCacheMiss)

	require.NoError(t, c.Set(ctx, KeyServiceConfig, []byte(`{"a":1}`), 0))
	assert.Equal(t, time.Hour, srv.TTL(KeyServiceConfig))

	got, err := c.Get(ctx, KeyServiceConfig)
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"a":1}`), got)

	require.NoError(t, c.Delete(ctx, KeyServiceConfig))
	assert.False(t, srv.Exists(KeyServiceConfig))
}

func TestRedis_Expiry(t *testing.T) {
	ctx := context.Background()
	srv := miniredis.RunT(t)
	c := NewRedis(srv.Addr(), 0, time.Hour)
	defer c.Close()

	require.NoError(t, c.Set(ctx, "k", []byte("v"), time.Minute))
	srv.FastForward(2 * time.Minute)

	_, err := c.Get(ctx, "k")
	assert.ErrorIs(t, err, ErrCacheMiss)
}

func TestRedis_ServerDown(t *testing.T) {
	ctx := context.Background()
	srv := miniredis.RunT(t)
	c := NewRedis(srv.Addr(), 0, time.Hour)
	defer c.Close()
	srv.Close()

	_, err := c.Get(ctx, "k")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrCacheMiss)
	assert.Error(t, c.Ping(ctx))
}

func TestNew_Redis(t *testing.T) {
	srv := miniredis.RunT(t)

	c, err := New(context.Background(), config.Cache{RedisAddr: srv.Addr(), TTL: time.Minute}, logger.Nop())
	require.NoError(t, err)
	defer c.Close()

	_, ok := c.(*Redis)
	assert.True(t, ok)
}

func TestNew_RedisUnreachable(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	c, err := New(ctx, config.Cache{RedisAddr: "127.0.0.1:1"}, logger.Nop())
	assert.Nil(t, c)
	assert.Error(t, err)
}
