package sessionstore_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/helpdeskhq/helpdesk-go/pkg/sessionstore"
)

// All implementations must satisfy the same contract, so the behavioral
// tests run once per backend.
func storesUnderTest(t *testing.T) map[string]sessionstore.Store {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return map[string]sessionstore.Store{
		"memory": sessionstore.NewMemoryStore(),
		"file":   sessionstore.NewFileStore(filepath.Join(t.TempDir(), "session.json")),
		"redis":  sessionstore.NewRedisStore(client, 0),
	}
}

func TestStore_SetGetDelete(t *testing.T) {
	t.Parallel()

	for name, store := range storesUnderTest(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			_, err := store.Get(ctx, "token")
			assert.ErrorIs(t, err, sessionstore.ErrKeyNotFound)

			require.NoError(t, store.Set(ctx, "token", "abc"))
			require.NoError(t, store.Set(ctx, "expires_at", "1735689600000"))

			value, err := store.Get(ctx, "token")
			require.NoError(t, err)
			assert.Equal(t, "abc", value)

			require.NoError(t, store.Set(ctx, "token", "def"))
			value, err = store.Get(ctx, "token")
			require.NoError(t, err)
			assert.Equal(t, "def", value)

			require.NoError(t, store.Delete(ctx, "token"))
			_, err = store.Get(ctx, "token")
			assert.ErrorIs(t, err, sessionstore.ErrKeyNotFound)

			// Deleting a missing key is a no-op.
			require.NoError(t, store.Delete(ctx, "token"))

			// Other keys are untouched.
			value, err = store.Get(ctx, "expires_at")
			require.NoError(t, err)
			assert.Equal(t, "1735689600000", value)
		})
	}
}

func TestFileStore_SurvivesReopen(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "session.json")

	first := sessionstore.NewFileStore(path)
	require.NoError(t, first.Set(ctx, "token", "abc"))

	second := sessionstore.NewFileStore(path)
	value, err := second.Get(ctx, "token")
	require.NoError(t, err)
	assert.Equal(t, "abc", value)
}

func TestFileStore_OwnerOnlyPermissions(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "session.json")
	store := sessionstore.NewFileStore(path)
	require.NoError(t, store.Set(context.Background(), "token", "secret"))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestFileStore_CorruptDocumentStartsFresh(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	store := sessionstore.NewFileStore(path)
	_, err := store.Get(ctx, "token")
	assert.ErrorIs(t, err, sessionstore.ErrKeyNotFound)

	require.NoError(t, store.Set(ctx, "token", "abc"))
	value, err := store.Get(ctx, "token")
	require.NoError(t, err)
	assert.Equal(t, "abc", value)
}

func TestRedisStore_TTLExpiresValues(t *testing.T) {
	t.Parallel()

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	store := sessionstore.NewRedisStore(client, time.Minute)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "token", "abc"))
	mr.FastForward(2 * time.Minute)

	_, err = store.Get(ctx, "token")
	assert.ErrorIs(t, err, sessionstore.ErrKeyNotFound)
}
