package file

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/bnema/partners-cli/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreRejectsInvalidKeys(t *testing.T) {
	t.Parallel()

	store := NewStore(t.TempDir())
	testCases := []struct {
		name    string
		key     string
		wantErr string
	}{
		{name: "empty", key: "", wantErr: "kv key is empty"},
		{name: "whitespace", key: "   ", wantErr: "kv key is empty"},
		{name: "absolute", key: "/absolute/path", wantErr: "invalid kv key"},
		{name: "traversal", key: "../escape", wantErr: "invalid kv key"},
		{name: "deep traversal", key: "../../session", wantErr: "invalid kv key"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := store.Put(context.Background(), tc.key, "value")
			require.Error(t, err)
			assert.ErrorContains(t, err, tc.wantErr)
		})
	}
}

func TestStorePutGetRoundTripAndPermissions(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	store := NewStore(root)
	key := "partners/session"
	want := "version = 1\nsession_id = 's-1'\n"

	require.NoError(t, store.Put(context.Background(), key, want))

	got, err := store.Get(context.Background(), key)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	info, err := os.Stat(filepath.Join(root, key))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(entryFileMode), info.Mode().Perm())
}

func TestStorePutOverwritesWithoutLeavingTempFiles(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	store := NewStore(root)
	key := "partners/session"

	require.NoError(t, store.Put(context.Background(), key, "first"))
	require.NoError(t, store.Put(context.Background(), key, "second"))

	got, err := store.Get(context.Background(), key)
	require.NoError(t, err)
	assert.Equal(t, "second", got)

	entries, err := os.ReadDir(filepath.Join(root, "partners"))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "session", entries[0].Name())
}

func TestStoreGetMissingKeyReturnsKeyNotFound(t *testing.T) {
	t.Parallel()

	store := NewStore(t.TempDir())

	_, err := store.Get(context.Background(), "partners/session")
	require.ErrorIs(t, err, domain.ErrKeyNotFound)
}

func TestStoreDeleteIsIdempotentWhenEntryMissing(t *testing.T) {
	t.Parallel()

	store := NewStore(t.TempDir())
	key := "partners/session"

	require.NoError(t, store.Delete(context.Background(), key))
	require.NoError(t, store.Delete(context.Background(), key))
}

func TestStoreHonorsCanceledContext(t *testing.T) {
	t.Parallel()

	store := NewStore(t.TempDir())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.ErrorIs(t, store.Put(ctx, "partners/session", "x"), context.Canceled)
	_, err := store.Get(ctx, "partners/session")
	require.ErrorIs(t, err, context.Canceled)
}

func TestStoresSharingRootSerializeWrites(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	first := NewStore(root)
	second := NewStore(root)
	require.Same(t, first.mu, second.mu)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		store := first
		if i%2 == 1 {
			store = second
		}
		go func() {
			defer wg.Done()
			assert.NoError(t, store.Put(context.Background(), "partners/session", "value"))
		}()
	}
	wg.Wait()

	got, err := first.Get(context.Background(), "partners/session")
	require.NoError(t, err)
	assert.Equal(t, "value", got)
}
