package editor

import (
	"errors"
	"os"
	"testing"

	"wordplay/internal/application/importer"
	"wordplay/internal/domain"
)

func TestFindEditor(t *testing.T) {
	tests := []struct {
		name  string
		env   map[string]string
		found string
		want  string
	}{
		{name: "EDITOR wins", env: map[string]string{"EDITOR": "hx", "VISUAL": "code"}, want: "hx"},
		{name: "VISUAL fallback", env: map[string]string{"VISUAL": "code"}, want: "code"},
		{name: "path lookup", found: "vi", want: "/usr/bin/vi"},
		{name: "nothing", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := &Opener{
				getenv: func(k string) string { return tt.env[k] },
				lookPath: func(name string) (string, error) {
					if name == tt.found {
						return "/usr/bin/" + name, nil
					}
					return "", errors.New("not found")
				},
			}
			if got := o.findEditor(); got != tt.want {
				t.Errorf("findEditor() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCommandWithoutEditor(t *testing.T) {
	o := &Opener{
		getenv:   func(string) string { return "" },
		lookPath: func(string) (string, error) { return "", errors.New("not found") },
	}
	if _, err := o.Command("x.yaml"); err == nil {
		t.Error("expected an error when no editor is available")
	}
}

func TestQuestionFileRoundTrip(t *testing.T) {
	q := domain.Question{
		ID:          "q1",
		Type:        domain.TypeSpelling,
		Sentence:    "apple",
		Translation: "mela",
		Word:        "apple",
		Meaning:     "mela",
		Distractors: []string{"pera", "uva", "kiwi"},
	}

	f, err := WriteQuestionFile(q)
	if err != nil {
		t.Fatalf("WriteQuestionFile() error = %v", err)
	}
	defer f.Remove()

	record, err := f.Read()
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if _, ok := record["phonetic"]; ok {
		t.Error("empty fields should be left out")
	}

	parsed, err := importer.Parse(0, record)
	if err != nil {
		t.Fatalf("edited record no longer parses: %v", err)
	}
	if parsed.Draft.Word != "apple" || len(parsed.Draft.Distractors) != 3 {
		t.Errorf("round trip lost fields: %+v", parsed.Draft)
	}

	if err := f.Remove(); err != nil {
		t.Fatalf("Remove() error = %v", err)
	}
	if _, err := os.Stat(f.Path); !os.IsNotExist(err) {
		t.Error("temp file should be gone")
	}
}

func TestReadRejectsInvalidYAML(t *testing.T) {
	path := t.TempDir() + "/bad.yaml"
	if err := os.WriteFile(path, []byte("type: [unclosed"), 0o644); err != nil {
		t.Fatal(err)
	}
	f := &QuestionFile{Path: path}
	if _, err := f.Read(); err == nil {
		t.Error("expected a YAML error")
	}
}
