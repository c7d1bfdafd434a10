package app

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wordplay/internal/config"
	"wordplay/internal/logging"
)

func TestOpen_PersistsAcrossReopen(t *testing.T) {
	for _, driver := range []string{config.DriverSQLite, config.DriverFile} {
		t.Run(driver, func(t *testing.T) {
			cfg := &config.Config{Store: config.StoreConfig{
				Driver: driver,
				Path:   filepath.Join(t.TempDir(), "bank."+driver),
			}}

			a, err := Open(cfg, logging.Discard())
			require.NoError(t, err)
			leaf, err := a.Bank.ResolveOrCreate("A/B")
			require.NoError(t, err)
			require.NoError(t, a.Close())

			reopened, err := Open(cfg, logging.Discard())
			require.NoError(t, err)
			defer reopened.Close()

			again, err := reopened.Bank.ResolveOrCreate("A/B")
			require.NoError(t, err)
			assert.Equal(t, leaf.ID, again.ID)

			folders, err := reopened.Bank.ListFolders()
			require.NoError(t, err)
			assert.Len(t, folders, 2)
		})
	}
}

func TestOpenStore_UnknownDriver(t *testing.T) {
	_, err := OpenStore("postgres", "")
	assert.ErrorContains(t, err, "unknown store driver")
}

func TestLastModified(t *testing.T) {
	for _, driver := range []string{config.DriverSQLite, config.DriverFile, config.DriverMemory} {
		t.Run(driver, func(t *testing.T) {
			cfg := &config.Config{Store: config.StoreConfig{
				Driver: driver,
				Path:   filepath.Join(t.TempDir(), "bank."+driver),
			}}
			a, err := Open(cfg, logging.Discard())
			require.NoError(t, err)
			defer a.Close()

			before, err := a.LastModified()
			require.NoError(t, err)
			assert.True(t, before.IsZero(), "nothing saved yet")

			_, err = a.Bank.ResolveOrCreate("A")
			require.NoError(t, err)

			after, err := a.LastModified()
			require.NoError(t, err)
			if driver == config.DriverMemory {
				assert.True(t, after.IsZero(), "memory store does not track writes")
				return
			}
			assert.WithinDuration(t, time.Now(), after, time.Minute)
		})
	}
}
