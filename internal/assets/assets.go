package assets

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// Placeholder is the image reference substituted when no upload is supplied.
const Placeholder = "/placeholder.svg?height=200&width=200"

// ErrAssetNotFound is returned when a stored blob cannot be resolved.
var ErrAssetNotFound = errors.New("asset not found")

// Store persists uploaded image payloads and hands back a retrievable
// reference. Implementations only deal in opaque bytes; the catalog store
// never inspects image content.
type Store interface {
	Put(ctx context.Context, data []byte) (string, error)
	Get(ctx context.Context, id string) ([]byte, error)
}

// URI converts a stored asset id into the reference recorded on entities.
func URI(id string) string {
	return "/assets/" + id
}

// MemoryStore keeps blobs in process memory. It is the default backend and
// the one used by tests.
type MemoryStore struct {
	mu    sync.RWMutex
	blobs map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{blobs: make(map[string][]byte)}
}

func (s *MemoryStore) Put(ctx context.Context, data []byte) (string, error) {
	id := uuid.New().String()

	s.mu.Lock()
	defer s.mu.Unlock()

	stored := make([]byte, len(data))
	copy(stored, data)
	s.blobs[id] = stored
	return id, nil
}

func (s *MemoryStore) Get(ctx context.Context, id string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, ok := s.blobs[id]
	if !ok {
		return nil, ErrAssetNotFound
	}
	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}

// RedisStore keeps blobs in Redis so uploads survive process restarts and
// can be served by multiple admin instances.
type RedisStore struct {
	client *redis.Client
	prefix string
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client, prefix: "asset"}
}

func (s *RedisStore) key(id string) string {
	return fmt.Sprintf("%s:%s", s.prefix, id)
}

func (s *RedisStore) Put(ctx context.Context, data []byte) (string, error) {
	id := uuid.New().String()
	if err := s.client.Set(ctx, s.key(id), data, 0).Err(); err != nil {
		return "", fmt.Errorf("failed to store asset: %w", err)
	}
	return id, nil
}

func (s *RedisStore) Get(ctx context.Context, id string) ([]byte, error) {
	data, err := s.client.Get(ctx, s.key(id)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrAssetNotFound
		}
		return nil, fmt.Errorf("failed to load asset: %w", err)
	}
	return data, nil
}
