// Package importer validates bulk question documents, previews their effect
// on the folder tree and commits them to a question bank.
package importer

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Record is one untyped entry of an import document
type Record map[string]any

// Format is the encoding of an import document
type Format string

const (
	FormatAuto Format = ""
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ErrNotAList is returned when a document's top level is not a list
var ErrNotAList = errors.New("import document must be a list of records")

// FormatFromPath guesses the document format from a file extension
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatAuto
	}
}

// Decode parses an import document into records. FormatAuto treats a
// document starting with '[' as JSON and anything else as YAML.
func Decode(data []byte, format Format) ([]Record, error) {
	if format == FormatAuto {
		format = FormatYAML
		if trimmed := bytes.TrimSpace(data); len(trimmed) > 0 && trimmed[0] == '[' {
			format = FormatJSON
		}
	}

	var doc any
	switch format {
	case FormatJSON:
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("failed to parse JSON document: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("failed to parse YAML document: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported document format %q", format)
	}

	items, ok := doc.([]any)
	if !ok {
		return nil, ErrNotAList
	}

	records := make([]Record, 0, len(items))
	for _, item := range items {
		// non-object entries become empty records and fail validation later
		records = append(records, toRecord(item))
	}
	return records, nil
}

func toRecord(item any) Record {
	switch m := item.(type) {
	case map[string]any:
		return Record(m)
	case map[any]any:
		r := make(Record, len(m))
		for k, v := range m {
			if key, ok := k.(string); ok {
				r[key] = v
			}
		}
		return r
	default:
		return Record{}
	}
}

// text returns a field when it is a non-empty string
func (r Record) text(key string) (string, bool) {
	s, ok := r[key].(string)
	if !ok || s == "" {
		return "", false
	}
	return s, true
}

// list returns a field when it is a list whose entries are all strings
func (r Record) list(key string) ([]string, bool) {
	items, ok := r[key].([]any)
	if !ok {
		return nil, false
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		s, ok := item.(string)
		if !ok {
			return nil, false
		}
		out = append(out, s)
	}
	return out, true
}

// boolOr returns a boolean field, or def when absent or not a boolean
func (r Record) boolOr(key string, def bool) bool {
	if b, ok := r[key].(bool); ok {
		return b
	}
	return def
}
