package file

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStorePutGetDeleteRoundTrip(t *testing.T) {
	store := NewStore(t.TempDir())
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "snapfeed/session", `{"access":"a","refresh":"r"}`))

	value, err := store.Get(ctx, "snapfeed/session")
	require.NoError(t, err)
	assert.Equal(t, `{"access":"a","refresh":"r"}`, value)

	require.NoError(t, store.Delete(ctx, "snapfeed/session"))

	_, err = store.Get(ctx, "snapfeed/session")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestStoreDeleteMissingSecretIsIdempotent(t *testing.T) {
	store := NewStore(t.TempDir())

	require.NoError(t, store.Delete(context.Background(), "snapfeed/session"))
}

func TestStoreWritesPrivateFileModes(t *testing.T) {
	root := t.TempDir()
	store := NewStore(root)

	require.NoError(t, store.Put(context.Background(), "snapfeed/session", "value"))

	info, err := os.Stat(filepath.Join(root, "snapfeed", "session"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestStoreRejectsEscapingKeys(t *testing.T) {
	store := NewStore(t.TempDir())
	ctx := context.Background()

	for _, key := range []string{"", "  ", "../outside", "/etc/passwd", "."} {
		require.Error(t, store.Put(ctx, key, "value"), "key %q must be rejected", key)
	}
}

func TestStoreHonorsCancelledContext(t *testing.T) {
	store := NewStore(t.TempDir())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := store.Get(ctx, "snapfeed/session")
	require.ErrorIs(t, err, context.Canceled)
}
