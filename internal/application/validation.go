package application

import (
	"fmt"
	"slices"
	"strings"

	"wordplay/internal/domain"
)

// ValidateRequired checks if a string field is non-empty (after trimming whitespace).
// Returns a ValidationError if the field is empty.
func ValidateRequired(fieldName, value string) error {
	if strings.TrimSpace(value) == "" {
		return &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("%s is required", formatFieldName(fieldName)),
		}
	}
	return nil
}

// formatFieldName converts camelCase field names to space-separated words
// for more readable error messages (e.g., "folderID" -> "folder ID")
func formatFieldName(fieldName string) string {
	replacements := map[string]string{
		"folderID":   "folder ID",
		"questionID": "question ID",
		"parentID":   "parent ID",
		"folderPath": "folder path",
	}

	if formatted, ok := replacements[fieldName]; ok {
		return formatted
	}
	return fieldName
}

// ValidateQuestionType checks that value names a known question type.
// An empty value is accepted when allowEmpty is set (an unchanged type).
func ValidateQuestionType(fieldName, value string, allowEmpty bool) error {
	if value == "" && allowEmpty {
		return nil
	}
	if _, err := domain.ParseQuestionType(value); err != nil {
		names := make([]string, 0, len(domain.QuestionTypes))
		for _, t := range domain.QuestionTypes {
			names = append(names, string(t))
		}
		return &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("unknown question type %q (expected one of %s)", value, strings.Join(names, ", ")),
		}
	}
	return nil
}

// ValidateColor checks that a folder colour is empty (palette default) or a palette entry
func ValidateColor(fieldName, value string) error {
	if value == "" || slices.Contains(domain.Palette, value) {
		return nil
	}
	return &ValidationError{
		Field:   fieldName,
		Message: fmt.Sprintf("unknown colour %q (expected one of %s)", value, strings.Join(domain.Palette, ", ")),
	}
}

// ValidateDifferent rejects an operation whose two ids must not match
func ValidateDifferent(fieldName, a, b, message string) error {
	if a != "" && a == b {
		return &ValidationError{Field: fieldName, Message: message}
	}
	return nil
}
