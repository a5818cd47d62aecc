package kvstore

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/wedsync-venue-api/internal/config"
)

func TestStores(t *testing.T) {
	ctx := context.Background()

	sqliteStore, err := NewSQLiteStore(ctx, filepath.Join(t.TempDir(), "nested", "offline.db"))
	require.NoError(t, err)
	t.Cleanup(func() { sqliteStore.Close() })

	stores := map[string]Store{
		"memória": NewMemoryStore(),
		"sqlite":  sqliteStore,
	}

	for name, store := range stores {
		t.Run(name, func(t *testing.T) {
			_, found, err := store.Get(ctx, "offline_incidents_v1")
			require.NoError(t, err)
			assert.False(t, found, "chave inexistente não deve ser encontrada")

			require.NoError(t, store.Set(ctx, "offline_incidents_v1", []byte(`[{"id":"a"}]`)))
			require.NoError(t, store.Set(ctx, "offline_incidents_v2", []byte(`[]`)))
			require.NoError(t, store.Set(ctx, "other_key", []byte(`x`)))

			// Sobrescrita da mesma chave
			require.NoError(t, store.Set(ctx, "offline_incidents_v1", []byte(`[{"id":"b"}]`)))

			value, found, err := store.Get(ctx, "offline_incidents_v1")
			require.NoError(t, err)
			assert.True(t, found)
			assert.Equal(t, `[{"id":"b"}]`, string(value))

			keys, err := store.Keys(ctx, "offline_incidents_")
			require.NoError(t, err)
			assert.Equal(t, []string{"offline_incidents_v1", "offline_incidents_v2"}, keys)

			require.NoError(t, store.Delete(ctx, "offline_incidents_v1"))
			_, found, err = store.Get(ctx, "offline_incidents_v1")
			require.NoError(t, err)
			assert.False(t, found)

			// Remover chave inexistente não é erro
			assert.NoError(t, store.Delete(ctx, "offline_incidents_v1"))
		})
	}
}

func TestSQLiteStore_ReopenKeepsData(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "offline.db")

	store, err := NewSQLiteStore(ctx, path)
	require.NoError(t, err)
	require.NoError(t, store.Set(ctx, "offline_incidents_v1", []byte(`[1,2,3]`)))
	require.NoError(t, store.Close())

	reopened, err := NewSQLiteStore(ctx, path)
	require.NoError(t, err)
	defer reopened.Close()

	value, found, err := reopened.Get(ctx, "offline_incidents_v1")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, `[1,2,3]`, string(value))
}

func TestMemoryStore_ValuesAreCopied(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	original := []byte("abc")
	require.NoError(t, store.Set(ctx, "k", original))
	original[0] = 'x'

	value, _, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "abc", string(value))
}

func TestOpen(t *testing.T) {
	ctx := context.Background()

	store, err := Open(ctx, config.LocalStore{Driver: "memory"})
	require.NoError(t, err)
	assert.IsType(t, &MemoryStore{}, store)

	_, err = Open(ctx, config.LocalStore{Driver: "leveldb"})
	assert.Error(t, err)
}
