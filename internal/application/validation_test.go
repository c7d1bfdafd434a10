package application

import (
	"errors"
	"strings"
	"testing"
)

func TestValidateRequired(t *testing.T) {
	tests := []struct {
		name      string
		fieldName string
		value     string
		wantErr   bool
		wantMsg   string
	}{
		{
			name:      "valid value",
			fieldName: "name",
			value:     "Animals",
			wantErr:   false,
		},
		{
			name:      "empty string",
			fieldName: "name",
			value:     "",
			wantErr:   true,
			wantMsg:   "name is required",
		},
		{
			name:      "whitespace only",
			fieldName: "folderID",
			value:     "   ",
			wantErr:   true,
			wantMsg:   "folder ID is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRequired(tt.fieldName, tt.value)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateRequired() error = %v, wantErr %v", err, tt.wantErr)
			}

			if err != nil {
				var valErr *ValidationError
				if !errors.As(err, &valErr) {
					t.Fatalf("expected ValidationError, got %T", err)
				}
				if valErr.Field != tt.fieldName {
					t.Errorf("expected field %s, got %s", tt.fieldName, valErr.Field)
				}
				if !strings.Contains(valErr.Message, tt.wantMsg) {
					t.Errorf("expected message %q, got %q", tt.wantMsg, valErr.Message)
				}
			}
		})
	}
}

func TestValidateQuestionType(t *testing.T) {
	tests := []struct {
		name       string
		value      string
		allowEmpty bool
		wantErr    bool
	}{
		{"known type", "fill-in-blank", false, false},
		{"unknown type", "essay", false, true},
		{"empty rejected", "", false, true},
		{"empty allowed", "", true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateQuestionType("type", tt.value, tt.allowEmpty)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateQuestionType(%q) error = %v, wantErr %v", tt.value, err, tt.wantErr)
			}
		})
	}
}

func TestValidateColor(t *testing.T) {
	for _, c := range []string{"", "blue", "indigo"} {
		if err := ValidateColor("color", c); err != nil {
			t.Errorf("ValidateColor(%q) unexpected error: %v", c, err)
		}
	}
	if err := ValidateColor("color", "magenta"); err == nil {
		t.Error("expected error for colour outside the palette")
	}
}

func TestMoveError(t *testing.T) {
	err := &MoveError{SourceID: "a", DestID: "", Reason: "cycle", Err: ErrCycle}

	if !errors.Is(err, ErrCycle) {
		t.Error("MoveError should unwrap to ErrCycle")
	}
	if got := err.Error(); got != "cannot move a to root: cycle" {
		t.Errorf("unexpected message %q", got)
	}
}
