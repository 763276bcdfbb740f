package assets

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_PutGetRoundtrip(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	id, err := s.Put(ctx, []byte("image-bytes"))
	require.NoError(t, err)
	require.NotEmpty(t, id)

	data, err := s.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, []byte("image-bytes"), data)
}

func TestMemoryStore_CopiesData(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	payload := []byte("original")
	id, err := s.Put(ctx, payload)
	require.NoError(t, err)

	// Mutating the caller's slice must not reach the stored blob.
	payload[0] = 'X'

	data, err := s.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, []byte("original"), data)

	// Mutating a returned slice must not affect later reads either.
	data[0] = 'Y'
	again, err := s.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, []byte("original"), again)
}

func TestMemoryStore_GetUnknownID(t *testing.T) {
	s := NewMemoryStore()

	_, err := s.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrAssetNotFound)
}

func TestURI(t *testing.T) {
	assert.Equal(t, "/assets/abc", URI("abc"))
}

func TestRedisStore_PutGetRoundtrip(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()

	s := NewRedisStore(client)
	ctx := context.Background()

	id, err := s.Put(ctx, []byte("image-bytes"))
	require.NoError(t, err)

	data, err := s.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, []byte("image-bytes"), data)
}

func TestRedisStore_GetUnknownID(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()

	s := NewRedisStore(client)

	_, err = s.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrAssetNotFound)
}
