package sqlite

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wordplay/internal/ports"
)

func openTestStore(t *testing.T) (*Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "nested", "bank.db")
	s, err := Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s, path
}

func TestStore_LoadMissing(t *testing.T) {
	s, _ := openTestStore(t)

	data, err := s.Load(ports.CollectionQuestions)
	require.NoError(t, err)
	assert.Nil(t, data)

	updated, err := s.UpdatedAt(ports.CollectionQuestions)
	require.NoError(t, err)
	assert.True(t, updated.IsZero())
}

func TestStore_SaveAndReload(t *testing.T) {
	s, path := openTestStore(t)

	err := s.Save(map[ports.Collection][]byte{
		ports.CollectionFolders:   []byte(`[{"id":"f1"}]`),
		ports.CollectionQuestions: []byte(`[]`),
	})
	require.NoError(t, err)

	err = s.Save(map[ports.Collection][]byte{
		ports.CollectionFolders: []byte(`[{"id":"f2"}]`),
	})
	require.NoError(t, err)
	require.NoError(t, s.Close())

	reopened, err := Open(path)
	require.NoError(t, err)
	defer reopened.Close()

	folders, err := reopened.Load(ports.CollectionFolders)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":"f2"}]`, string(folders))

	questions, err := reopened.Load(ports.CollectionQuestions)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(questions))

	updated, err := reopened.UpdatedAt(ports.CollectionFolders)
	require.NoError(t, err)
	assert.False(t, updated.IsZero())
}

func TestStore_RejectsNewerSchema(t *testing.T) {
	s, path := openTestStore(t)
	_, err := s.db.Exec(`UPDATE meta SET value = '99' WHERE key = 'schema_version'`)
	require.NoError(t, err)
	require.NoError(t, s.Close())

	_, err = Open(path)
	assert.ErrorContains(t, err, "unsupported schema version")
}

func TestDefaultPath(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "/tmp/xdg")
	assert.Equal(t, filepath.Join("/tmp/xdg", "wordplay", "bank.db"), DefaultPath())
}
