package identity

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadGeneratesAndPersistsUserID(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mingle", "identity.json")

	first, err := NewStore(path).Load()
	require.NoError(t, err)
	_, err = uuid.Parse(first.UserID)
	require.NoError(t, err)
	assert.Empty(t, first.MyProfileID)

	again, err := NewStore(path).Load()
	require.NoError(t, err)
	assert.Equal(t, first.UserID, again.UserID)
}

func TestSetProfileID(t *testing.T) {
	path := filepath.Join(t.TempDir(), "identity.json")
	s := NewStore(path)

	updated, err := s.SetProfileID("p1")
	require.NoError(t, err)
	assert.Equal(t, "p1", updated.MyProfileID)

	reloaded, err := NewStore(path).Load()
	require.NoError(t, err)
	assert.Equal(t, updated, reloaded)
}

func TestCorruptFileIsAnError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "identity.json")
	require.NoError(t, os.WriteFile(path, []byte("{oops"), 0o600))

	_, err := NewStore(path).Load()
	assert.Error(t, err)
}
