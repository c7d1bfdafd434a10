package config

import (
	"os"
	"path/filepath"
	"testing"
)

// chdir moves into a fresh directory so no stray .env or wordplay.yaml is read
func chdir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	return dir
}

func TestLoad_Defaults(t *testing.T) {
	chdir(t)
	t.Setenv("WORDPLAY_CONFIG", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Store.Driver != DriverSQLite {
		t.Errorf("expected sqlite driver, got %q", cfg.Store.Driver)
	}
	if cfg.Log.Level != "warn" || cfg.Log.Format != "text" {
		t.Errorf("unexpected log defaults %+v", cfg.Log)
	}
}

func TestLoad_YAMLAndEnvOverride(t *testing.T) {
	dir := chdir(t)
	path := filepath.Join(dir, "custom.yaml")
	content := "store:\n  driver: file\n  path: /tmp/bank.json\nlog:\n  level: debug\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("WORDPLAY_CONFIG", path)
	t.Setenv("WORDPLAY_LOG_FORMAT", "json")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Store.Driver != DriverFile || cfg.StorePath() != "/tmp/bank.json" {
		t.Errorf("unexpected store config %+v", cfg.Store)
	}
	if cfg.Log.Level != "debug" || cfg.Log.Format != "json" {
		t.Errorf("unexpected log config %+v", cfg.Log)
	}
}

func TestLoad_DotEnv(t *testing.T) {
	dir := chdir(t)
	t.Setenv("WORDPLAY_CONFIG", "")
	// registered so the variable set by .env is cleared after the test
	t.Setenv("WORDPLAY_STORE_DRIVER", "")
	os.Unsetenv("WORDPLAY_STORE_DRIVER")

	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("WORDPLAY_STORE_DRIVER=memory\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Store.Driver != DriverMemory {
		t.Errorf("expected memory driver from .env, got %q", cfg.Store.Driver)
	}
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	chdir(t)
	t.Setenv("WORDPLAY_CONFIG", "/does/not/exist.yaml")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for missing explicit config file")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"valid", Config{Store: StoreConfig{Driver: "file"}, Log: LogConfig{Level: "info", Format: "json"}}, false},
		{"unknown driver", Config{Store: StoreConfig{Driver: "postgres"}, Log: LogConfig{Level: "info", Format: "text"}}, true},
		{"missing driver", Config{Log: LogConfig{Level: "info", Format: "text"}}, true},
		{"unknown level", Config{Store: StoreConfig{Driver: "sqlite"}, Log: LogConfig{Level: "loud", Format: "text"}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestStorePath_Defaults(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "/data")

	sqlite := Config{Store: StoreConfig{Driver: DriverSQLite}}
	if got := sqlite.StorePath(); got != filepath.Join("/data", "wordplay", "bank.db") {
		t.Errorf("unexpected sqlite path %q", got)
	}
	file := Config{Store: StoreConfig{Driver: DriverFile}}
	if got := file.StorePath(); got != filepath.Join("/data", "wordplay", "bank.json") {
		t.Errorf("unexpected file path %q", got)
	}
}
