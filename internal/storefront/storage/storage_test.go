package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func exerciseStore(t *testing.T, s Store) {
	t.Helper()
	ctx := context.Background()

	_, ok, err := s.Get(ctx, KeyCart)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Set(ctx, KeyCart, `[{"id":1,"quantity":2}]`))
	require.NoError(t, s.Set(ctx, KeyToken, "tok"))

	v, ok, err := s.Get(ctx, KeyCart)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `[{"id":1,"quantity":2}]`, v)

	require.NoError(t, s.Delete(ctx, KeyToken))
	_, ok, err = s.Get(ctx, KeyToken)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Delete(ctx, "missing"))
}

func TestMemoryStore(t *testing.T) {
	exerciseStore(t, NewMemoryStore())
}

func TestFileStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "state.json")
	exerciseStore(t, NewFileStore(path))

	reopened := NewFileStore(path)
	v, ok, err := reopened.Get(context.Background(), KeyCart)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `[{"id":1,"quantity":2}]`, v)
}

func TestFileStoreCorruptFileIsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	require.NoError(t, os.WriteFile(path, []byte("{broken"), 0o600))

	s := NewFileStore(path)
	_, ok, err := s.Get(context.Background(), KeyCart)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Set(context.Background(), KeyWishlist, "[1]"))
	v, _, err := s.Get(context.Background(), KeyWishlist)
	require.NoError(t, err)
	assert.Equal(t, "[1]", v)
}

func TestRedisStore(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	exerciseStore(t, NewRedisStore(client, "storefront:"))
	assert.True(t, mr.Exists("storefront:cart"))
}

func TestRedisStoreUnavailable(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr(), MaxRetries: -1})
	t.Cleanup(func() { client.Close() })
	mr.Close()

	_, _, err := NewRedisStore(client, "p:").Get(context.Background(), KeyCart)
	assert.Error(t, err)
}
