package device

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIDIsStableAcrossCalls(t *testing.T) {
	path := filepath.Join(t.TempDir(), "device-id")

	first, err := ID(path)
	require.NoError(t, err)
	_, err = uuid.Parse(first)
	require.NoError(t, err)

	second, err := ID(path)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestIDRegeneratesCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "device-id")
	require.NoError(t, os.WriteFile(path, []byte("not a uuid\n"), 0o600))

	id, err := ID(path)
	require.NoError(t, err)
	_, err = uuid.Parse(id)
	require.NoError(t, err)
}

func TestIDCreatesParentDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "device-id")

	_, err := ID(path)
	require.NoError(t, err)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}
