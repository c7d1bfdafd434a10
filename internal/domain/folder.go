package domain

import (
	"strings"
	"time"
)

// PathSeparator splits folder paths supplied by users and import documents
const PathSeparator = "/"

// DisplaySeparator joins folder names when rendering a path for display
const DisplaySeparator = " / "

// Folder is one node of the classification tree
type Folder struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Color     string `json:"color"`
	ParentID  string `json:"parentId,omitempty"`
	CreatedAt int64  `json:"createdAt"`
}

// IsRoot returns true if the folder sits at the top level
func (f *Folder) IsRoot() bool {
	return f.ParentID == ""
}

// Created returns the creation time (CreatedAt is Unix milliseconds)
func (f *Folder) Created() time.Time {
	return time.UnixMilli(f.CreatedAt)
}

// FolderPatch is a partial folder update. A non-nil ParentID pointing at ""
// moves the folder to the root level.
type FolderPatch struct {
	Name     *string
	Color    *string
	ParentID *string
}

// Palette is the fixed set of folder colours, in assignment order
var Palette = []string{
	"blue",
	"green",
	"purple",
	"pink",
	"yellow",
	"orange",
	"red",
	"indigo",
}

// PaletteColor picks the default colour for the n-th folder
func PaletteColor(n int) string {
	if n < 0 {
		n = -n
	}
	return Palette[n%len(Palette)]
}

// SplitPath splits a "/"-delimited path into trimmed, non-empty segments
func SplitPath(path string) []string {
	raw := strings.Split(path, PathSeparator)
	segments := make([]string, 0, len(raw))
	for _, s := range raw {
		s = strings.TrimSpace(s)
		if s != "" {
			segments = append(segments, s)
		}
	}
	return segments
}

// JoinPath is the inverse of SplitPath for already-clean segments
func JoinPath(segments []string) string {
	return strings.Join(segments, PathSeparator)
}

// PathPrefixes returns every prefix of the path, shortest first.
// "A/B/C" yields ["A", "A/B", "A/B/C"].
func PathPrefixes(path string) []string {
	segments := SplitPath(path)
	prefixes := make([]string, 0, len(segments))
	for i := range segments {
		prefixes = append(prefixes, JoinPath(segments[:i+1]))
	}
	return prefixes
}
