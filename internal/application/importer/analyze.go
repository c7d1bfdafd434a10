package importer

import (
	"fmt"
	"slices"
	"strings"

	"wordplay/internal/domain"
)

// Preview is the dry-run outcome of an import. Nothing is written.
type Preview struct {
	Total   int
	Valid   int
	Invalid int

	// Prefix paths of every valid record's folderName, split by whether
	// the folder already exists. Both are deduplicated and sorted.
	NewFolders      []string
	ExistingFolders []string

	Issues []*RecordError
}

// Analyze classifies records against the current folder tree without
// mutating anything. Each prefix of a folderName ("A", "A/B", "A/B/C") is
// checked with the same (name, parent) matching that ResolveOrCreate uses.
func Analyze(records []Record, folders domain.Folders) *Preview {
	valid, issues := ParseAll(records)

	preview := &Preview{
		Total:   len(records),
		Valid:   len(valid),
		Invalid: len(issues),
		Issues:  issues,
	}

	newPaths := make(map[string]bool)
	existingPaths := make(map[string]bool)
	for _, p := range valid {
		if p.FolderPath == "" {
			continue
		}
		for _, prefix := range domain.PathPrefixes(p.FolderPath) {
			if folders.PathExists(prefix) {
				existingPaths[prefix] = true
			} else {
				newPaths[prefix] = true
			}
		}
	}
	preview.NewFolders = sortedKeys(newPaths)
	preview.ExistingFolders = sortedKeys(existingPaths)
	return preview
}

func sortedKeys(set map[string]bool) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// Summary renders the preview for people
func (p *Preview) Summary() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d records: %d valid, %d invalid\n", p.Total, p.Valid, p.Invalid)
	if len(p.NewFolders) > 0 {
		fmt.Fprintf(&b, "New folders (%d):\n", len(p.NewFolders))
		for _, path := range p.NewFolders {
			fmt.Fprintf(&b, "  + %s\n", path)
		}
	}
	if len(p.ExistingFolders) > 0 {
		fmt.Fprintf(&b, "Existing folders (%d):\n", len(p.ExistingFolders))
		for _, path := range p.ExistingFolders {
			fmt.Fprintf(&b, "  = %s\n", path)
		}
	}
	for _, issue := range p.Issues {
		fmt.Fprintf(&b, "  ! %s\n", issue)
	}
	return b.String()
}
