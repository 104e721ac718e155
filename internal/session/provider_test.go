package session

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureIsIdempotent(t *testing.T) {
	store, err := NewStore(StoreTypeMemory)
	require.NoError(t, err)
	p := NewProvider(store)
	ctx := context.Background()

	// no identity on the first request mints one
	first, err := p.Ensure(ctx, "")
	require.NoError(t, err)
	require.NotEmpty(t, first)
	_, err = uuid.Parse(first)
	require.NoError(t, err)

	// presenting the minted identity keeps it stable
	again, err := p.Ensure(ctx, first)
	require.NoError(t, err)
	assert.Equal(t, first, again)

	third, err := p.Ensure(ctx, again)
	require.NoError(t, err)
	assert.Equal(t, first, third)
}

func TestEnsureReissuesUnknownIdentity(t *testing.T) {
	store, err := NewStore(StoreTypeMemory)
	require.NoError(t, err)
	p := NewProvider(store)
	ctx := context.Background()

	fresh, err := p.Ensure(ctx, "not-something-we-issued")
	require.NoError(t, err)
	assert.NotEqual(t, "not-something-we-issued", fresh)

	known, err := p.Known(ctx, fresh)
	require.NoError(t, err)
	assert.True(t, known)
}

type brokenStore struct{}

func (brokenStore) Add(context.Context, string) error       { return errors.New("store down") }
func (brokenStore) Has(context.Context, string) (bool, error) { return false, errors.New("store down") }

func TestEnsureNeverFails(t *testing.T) {
	p := NewProvider(brokenStore{})
	ctx := context.Background()

	// minting survives a dead store via the in-memory fallback
	id, err := p.Ensure(ctx, "")
	require.NoError(t, err)
	require.NotEmpty(t, id)

	known, err := p.Known(ctx, id)
	require.NoError(t, err)
	assert.True(t, known)
}

func TestNewStore(t *testing.T) {
	_, err := NewStore(StoreTypeMemory)
	assert.NoError(t, err)

	_, err = NewStore(StoreTypeRedis)
	assert.ErrorIs(t, err, ErrInvalidConfig)

	_, err = NewStore(StoreTypeRedis, WithRedisClient(redis.NewClient(&redis.Options{})))
	assert.NoError(t, err)

	_, err = NewStore(StoreType("etcd"))
	assert.ErrorIs(t, err, ErrInvalidStoreType)
}
