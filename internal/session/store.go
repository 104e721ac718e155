package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

var (
	ErrInvalidStoreType = errors.New("unknown session store type")
	ErrInvalidConfig    = errors.New("invalid session store config")
)

// Store persists the set of known anonymous session identifiers.
type Store interface {
	// Add records the identifier as known.
	Add(ctx context.Context, id string) error

	// Has reports whether the identifier has been recorded.
	Has(ctx context.Context, id string) (bool, error)
}

// StoreType represents the type of session store.
type StoreType string

const (
	StoreTypeMemory StoreType = "memory"
	StoreTypeRedis  StoreType = "redis"
)

type storeConfig struct {
	redisClient *redis.Client
	redisTTL    time.Duration
}

// StoreOption configures NewStore.
type StoreOption func(*storeConfig)

func WithRedisClient(client *redis.Client) StoreOption {
	return func(c *storeConfig) {
		c.redisClient = client
	}
}

func WithRedisTTL(ttl time.Duration) StoreOption {
	return func(c *storeConfig) {
		c.redisTTL = ttl
	}
}

// NewStore creates a session store of the given type.
// Supports "memory" and "redis" driver types.
// For Redis, requires WithRedisClient option.
func NewStore(storeType StoreType, opts ...StoreOption) (Store, error) {
	config := &storeConfig{}
	for _, opt := range opts {
		opt(config)
	}

	switch storeType {
	case StoreTypeMemory:
		return &memoryStore{
			ids: make(map[string]struct{}),
		}, nil

	case StoreTypeRedis:
		if config.redisClient == nil {
			return nil, ErrInvalidConfig
		}
		ttl := config.redisTTL
		if ttl <= 0 {
			ttl = 365 * 24 * time.Hour
		}
		return &redisStore{
			client: config.redisClient,
			ttl:    ttl,
		}, nil

	default:
		return nil, ErrInvalidStoreType
	}
}

// memoryStore keeps identifiers in a map, for tests and for the
// storage-unavailable fallback.
type memoryStore struct {
	mu  sync.RWMutex
	ids map[string]struct{}
}

func (s *memoryStore) Add(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.ids[id] = struct{}{}
	return nil
}

func (s *memoryStore) Has(ctx context.Context, id string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.ids[id]
	return ok, nil
}

// redisStore keeps identifiers in Redis. The TTL is refreshed on every
// read so an active browser never loses its identity.
type redisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func (s *redisStore) key(id string) string {
	return "session:id:" + id
}

func (s *redisStore) Add(ctx context.Context, id string) error {
	return s.client.Set(ctx, s.key(id), 1, s.ttl).Err()
}

func (s *redisStore) Has(ctx context.Context, id string) (bool, error) {
	n, err := s.client.Exists(ctx, s.key(id)).Result()
	if err != nil {
		return false, err
	}
	if n > 0 {
		// refresh TTL on read
		_ = s.client.Expire(ctx, s.key(id), s.ttl).Err()
	}
	return n > 0, nil
}
