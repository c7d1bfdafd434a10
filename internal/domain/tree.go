package domain

import "strings"

// Folders is the flat folder collection with tree navigation helpers.
// Order is significant: it is the persisted order and the order children
// are visited in.
type Folders []Folder

// Find returns the folder with the given id
func (fs Folders) Find(id string) (*Folder, bool) {
	for i := range fs {
		if fs[i].ID == id {
			return &fs[i], true
		}
	}
	return nil, false
}

// ChildrenOf returns the direct children of parentID; "" selects the root level
func (fs Folders) ChildrenOf(parentID string) []Folder {
	var children []Folder
	for _, f := range fs {
		if f.ParentID == parentID {
			children = append(children, f)
		}
	}
	return children
}

// FindChild looks up a folder by its (name, parentID) key
func (fs Folders) FindChild(parentID, name string) (*Folder, bool) {
	for i := range fs {
		if fs[i].ParentID == parentID && fs[i].Name == name {
			return &fs[i], true
		}
	}
	return nil, false
}

// PathOf renders the root-first display path of a folder. A missing
// ancestor truncates the path at that point.
func (fs Folders) PathOf(id string) string {
	return strings.Join(fs.ancestry(id), DisplaySeparator)
}

// SlashPathOf renders the same path in import form ("A/B/C")
func (fs Folders) SlashPathOf(id string) string {
	return JoinPath(fs.ancestry(id))
}

func (fs Folders) ancestry(id string) []string {
	var names []string
	seen := make(map[string]bool)
	for current := id; current != "" && !seen[current]; {
		seen[current] = true
		f, ok := fs.Find(current)
		if !ok {
			break
		}
		names = append(names, f.Name)
		current = f.ParentID
	}
	for i, j := 0, len(names)-1; i < j; i, j = i+1, j-1 {
		names[i], names[j] = names[j], names[i]
	}
	return names
}

// Closure returns id followed by all of its transitive descendants, in pre-order
func (fs Folders) Closure(id string) []string {
	var ids []string
	seen := make(map[string]bool)
	var walk func(string)
	walk = func(current string) {
		if seen[current] {
			return
		}
		seen[current] = true
		ids = append(ids, current)
		for _, child := range fs.ChildrenOf(current) {
			walk(child.ID)
		}
	}
	walk(id)
	return ids
}

// IsWithin reports whether id is ancestorID or one of its descendants
func (fs Folders) IsWithin(id, ancestorID string) bool {
	for _, member := range fs.Closure(ancestorID) {
		if member == id {
			return true
		}
	}
	return false
}

// Walk follows path segments down from the root using the (name, parentID)
// key. It returns the deepest matched folder and how many segments matched.
func (fs Folders) Walk(segments []string) (*Folder, int) {
	var (
		leaf     *Folder
		parentID string
	)
	for i, name := range segments {
		f, ok := fs.FindChild(parentID, name)
		if !ok {
			return leaf, i
		}
		leaf = f
		parentID = f.ID
	}
	return leaf, len(segments)
}

// PathExists reports whether every level of path already exists
func (fs Folders) PathExists(path string) bool {
	segments := SplitPath(path)
	if len(segments) == 0 {
		return false
	}
	_, matched := fs.Walk(segments)
	return matched == len(segments)
}
