package domain

import (
	"slices"
	"testing"
)

// sampleFolders builds:
//
//	A
//	├── B
//	│   └── C
//	└── D
//	E
func sampleFolders() Folders {
	return Folders{
		{ID: "a", Name: "A"},
		{ID: "b", Name: "B", ParentID: "a"},
		{ID: "c", Name: "C", ParentID: "b"},
		{ID: "d", Name: "D", ParentID: "a"},
		{ID: "e", Name: "E"},
	}
}

func TestSplitPath(t *testing.T) {
	tests := []struct {
		name string
		path string
		want []string
	}{
		{name: "single", path: "Animals", want: []string{"Animals"}},
		{name: "nested", path: "Words/Animals", want: []string{"Words", "Animals"}},
		{name: "trims and drops empties", path: " /Words// Animals / ", want: []string{"Words", "Animals"}},
		{name: "only separators", path: "///", want: []string{}},
		{name: "empty", path: "", want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitPath(tt.path)
			if !slices.Equal(got, tt.want) {
				t.Errorf("SplitPath(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestPathPrefixes(t *testing.T) {
	got := PathPrefixes("A / B/C")
	want := []string{"A", "A/B", "A/B/C"}
	if !slices.Equal(got, want) {
		t.Errorf("PathPrefixes = %v, want %v", got, want)
	}
}

func TestFolders_PathOf(t *testing.T) {
	fs := sampleFolders()

	if got := fs.PathOf("c"); got != "A / B / C" {
		t.Errorf("PathOf(c) = %q", got)
	}
	if got := fs.SlashPathOf("c"); got != "A/B/C" {
		t.Errorf("SlashPathOf(c) = %q", got)
	}
	if got := fs.PathOf("missing"); got != "" {
		t.Errorf("PathOf(missing) = %q, want empty", got)
	}

	t.Run("dangling ancestor truncates", func(t *testing.T) {
		orphaned := Folders{
			{ID: "x", Name: "X", ParentID: "gone"},
			{ID: "y", Name: "Y", ParentID: "x"},
		}
		if got := orphaned.PathOf("y"); got != "X / Y" {
			t.Errorf("PathOf(y) = %q, want %q", got, "X / Y")
		}
	})
}

func TestFolders_ChildrenOf(t *testing.T) {
	fs := sampleFolders()

	roots := fs.ChildrenOf("")
	if len(roots) != 2 || roots[0].ID != "a" || roots[1].ID != "e" {
		t.Errorf("unexpected roots: %v", roots)
	}
	children := fs.ChildrenOf("a")
	if len(children) != 2 || children[0].ID != "b" || children[1].ID != "d" {
		t.Errorf("unexpected children of a: %v", children)
	}
	if len(fs.ChildrenOf("c")) != 0 {
		t.Error("c should be a leaf")
	}
}

func TestFolders_Closure(t *testing.T) {
	fs := sampleFolders()

	got := fs.Closure("a")
	want := []string{"a", "b", "c", "d"}
	if !slices.Equal(got, want) {
		t.Errorf("Closure(a) = %v, want %v", got, want)
	}

	if !fs.IsWithin("c", "a") {
		t.Error("c should be within a")
	}
	if fs.IsWithin("e", "a") {
		t.Error("e should not be within a")
	}
}

func TestFolders_Walk(t *testing.T) {
	fs := sampleFolders()

	leaf, matched := fs.Walk([]string{"A", "B", "Z"})
	if matched != 2 || leaf == nil || leaf.ID != "b" {
		t.Errorf("Walk(A/B/Z) = %v, %d", leaf, matched)
	}

	if !fs.PathExists("A/B/C") {
		t.Error("A/B/C should exist")
	}
	if fs.PathExists("B") {
		t.Error("B is not a root folder")
	}
	if fs.PathExists("") {
		t.Error("empty path should not exist")
	}
}

func TestBuildTree(t *testing.T) {
	fs := sampleFolders()
	questions := []Question{
		{ID: "q1", FolderID: "c", Sentence: "one"},
		{ID: "q2", FolderID: "a", Sentence: "two"},
		{ID: "q3", Sentence: "three"},
		{ID: "q4", FolderID: "d", Sentence: "four"},
	}

	root := BuildTree(fs, questions)

	if root.Total != 4 {
		t.Errorf("expected root total 4, got %d", root.Total)
	}

	a := root.Find("a")
	if a == nil {
		t.Fatal("folder a missing from tree")
	}
	if a.Total != 3 {
		t.Errorf("expected a total 3, got %d", a.Total)
	}
	if a.Children[0].Kind != NodeQuestion || a.Children[0].ID != "q2" {
		t.Errorf("expected a's own question first, got %+v", a.Children[0])
	}

	last := root.Children[len(root.Children)-1]
	if last.ID != "q3" {
		t.Errorf("expected unfiled question under root, got %+v", last)
	}
	if a.Depth() != 1 || root.Find("c").Depth() != 3 {
		t.Error("unexpected depths")
	}
}

func TestTreeNode_Flatten(t *testing.T) {
	root := BuildTree(sampleFolders(), []Question{{ID: "q1", FolderID: "a"}})

	if got := len(root.Flatten()); got != 3 {
		t.Errorf("collapsed tree should show root + 2 folders, got %d", got)
	}

	root.Find("a").Expand()
	// root, a, q1, b, d, e
	if got := len(root.Flatten()); got != 6 {
		t.Errorf("expanded a should show 6 nodes, got %d", got)
	}

	root.Find("a").Toggle()
	if got := len(root.Flatten()); got != 3 {
		t.Errorf("toggled a should collapse back, got %d", got)
	}
}
