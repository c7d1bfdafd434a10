// Package app wires configuration, logging and storage into a ready bank.
package app

import (
	"fmt"
	"log/slog"
	"time"

	"wordplay/internal/adapters/filesystem"
	"wordplay/internal/adapters/memory"
	"wordplay/internal/adapters/sqlite"
	"wordplay/internal/bank"
	"wordplay/internal/config"
	"wordplay/internal/ports"
)

// App holds the opened store and the bank built on it
type App struct {
	Config *config.Config
	Logger *slog.Logger
	Store  ports.Store
	Bank   *bank.Bank
}

// Open creates the store selected by cfg and a bank over it
func Open(cfg *config.Config, logger *slog.Logger) (*App, error) {
	store, err := OpenStore(cfg.Store.Driver, cfg.StorePath())
	if err != nil {
		return nil, err
	}

	logger.Debug("store opened", "driver", cfg.Store.Driver, "path", cfg.StorePath())

	return &App{
		Config: cfg,
		Logger: logger,
		Store:  store,
		Bank:   bank.New(store, bank.WithLogger(logger)),
	}, nil
}

// OpenStore opens a ports.Store for a driver name
func OpenStore(driver, path string) (ports.Store, error) {
	switch driver {
	case config.DriverSQLite:
		store, err := sqlite.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open sqlite store: %w", err)
		}
		return store, nil
	case config.DriverFile:
		return filesystem.NewStore(path), nil
	case config.DriverMemory:
		return memory.NewStore(), nil
	default:
		return nil, fmt.Errorf("unknown store driver %q", driver)
	}
}

// LastModified returns the latest write time over both collections. It is
// zero when the store does not track writes or nothing was saved yet.
func (a *App) LastModified() (time.Time, error) {
	ts, ok := a.Store.(ports.Timestamped)
	if !ok {
		return time.Time{}, nil
	}
	var latest time.Time
	for _, c := range []ports.Collection{ports.CollectionFolders, ports.CollectionQuestions} {
		t, err := ts.UpdatedAt(c)
		if err != nil {
			return time.Time{}, fmt.Errorf("failed to read %s timestamp: %w", c, err)
		}
		if t.After(latest) {
			latest = t
		}
	}
	return latest, nil
}

// Close releases the store
func (a *App) Close() error {
	if a.Store == nil {
		return nil
	}
	return a.Store.Close()
}
