package filesystem

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"wordplay/internal/ports"
)

func setupTestStore(t *testing.T) (*Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data", "wordplay.json")
	return NewStore(path), path
}

func TestLoad_MissingFile(t *testing.T) {
	s, _ := setupTestStore(t)

	data, err := s.Load(ports.CollectionFolders)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if data != nil {
		t.Errorf("expected nil for missing collection, got %q", data)
	}
}

func TestSave_RoundTripsCollections(t *testing.T) {
	s, path := setupTestStore(t)

	err := s.Save(map[ports.Collection][]byte{
		ports.CollectionFolders:   []byte(`[{"id":"f1","name":"Animals"}]`),
		ports.CollectionQuestions: []byte(`[]`),
	})
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	// a second save only touches the folders
	if err := s.Save(map[ports.Collection][]byte{
		ports.CollectionFolders: []byte(`[]`),
	}); err != nil {
		t.Fatalf("second Save failed: %v", err)
	}

	reopened := NewStore(path)
	folders, err := reopened.Load(ports.CollectionFolders)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if string(folders) != "[]" {
		t.Errorf("expected folders to be replaced, got %s", folders)
	}

	questions, err := reopened.Load(ports.CollectionQuestions)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if string(questions) != "[]" {
		t.Errorf("expected questions to survive, got %s", questions)
	}
}

func TestSave_LeavesNoTempFiles(t *testing.T) {
	s, path := setupTestStore(t)

	for range 3 {
		if err := s.Save(map[ports.Collection][]byte{ports.CollectionQuestions: []byte(`[]`)}); err != nil {
			t.Fatalf("Save failed: %v", err)
		}
	}

	entries, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		t.Fatalf("ReadDir failed: %v", err)
	}
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), ".tmp") {
			t.Errorf("temp file left behind: %s", e.Name())
		}
	}
}

func TestSave_RejectsInvalidJSON(t *testing.T) {
	s, path := setupTestStore(t)

	err := s.Save(map[ports.Collection][]byte{ports.CollectionQuestions: []byte(`{oops`)})
	if err == nil {
		t.Fatal("expected error for invalid JSON")
	}
	if _, statErr := os.Stat(path); !os.IsNotExist(statErr) {
		t.Errorf("store file should not exist after a rejected save")
	}
}

func TestLoad_CorruptFile(t *testing.T) {
	s, path := setupTestStore(t)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("not json"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := s.Load(ports.CollectionQuestions); err == nil {
		t.Fatal("expected parse error for corrupt store file")
	}
}
