package domain

// NodeKind tells what a TreeNode stands for
type NodeKind int

const (
	NodeRoot NodeKind = iota
	NodeFolder
	NodeQuestion
)

func (k NodeKind) String() string {
	switch k {
	case NodeRoot:
		return "Root"
	case NodeFolder:
		return "Folder"
	case NodeQuestion:
		return "Question"
	default:
		return "Unknown"
	}
}

// TreeNode represents a node in the bank tree for navigation
type TreeNode struct {
	Kind       NodeKind
	ID         string
	Name       string
	Color      string
	Total      int // questions in this subtree
	Question   *Question
	Children   []*TreeNode
	IsExpanded bool
	Parent     *TreeNode
}

// BuildTree assembles the whole bank: folders in persisted order, each
// folder's own questions before its child folders, unfiled questions
// directly under the root.
func BuildTree(folders Folders, questions []Question) *TreeNode {
	byFolder := make(map[string][]Question)
	for _, q := range questions {
		byFolder[q.FolderID] = append(byFolder[q.FolderID], q)
	}

	root := &TreeNode{Kind: NodeRoot, Name: "Question Bank", IsExpanded: true}
	var attach func(parent *TreeNode, folderID string, seen map[string]bool) int
	attach = func(parent *TreeNode, folderID string, seen map[string]bool) int {
		total := 0
		for _, child := range folders.ChildrenOf(folderID) {
			if seen[child.ID] {
				continue
			}
			seen[child.ID] = true
			node := &TreeNode{
				Kind:   NodeFolder,
				ID:     child.ID,
				Name:   child.Name,
				Color:  child.Color,
				Parent: parent,
			}
			for i := range byFolder[child.ID] {
				q := byFolder[child.ID][i]
				node.Children = append(node.Children, questionNode(&q, node))
			}
			node.Total = len(byFolder[child.ID]) + attach(node, child.ID, seen)
			parent.Children = append(parent.Children, node)
			total += node.Total
		}
		return total
	}
	root.Total = attach(root, "", make(map[string]bool))

	for i := range byFolder[""] {
		q := byFolder[""][i]
		root.Children = append(root.Children, questionNode(&q, root))
	}
	root.Total += len(byFolder[""])
	return root
}

func questionNode(q *Question, parent *TreeNode) *TreeNode {
	return &TreeNode{
		Kind:     NodeQuestion,
		ID:       q.ID,
		Name:     q.Sentence,
		Question: q,
		Parent:   parent,
	}
}

// Flatten returns all visible nodes in the tree (for list rendering)
func (n *TreeNode) Flatten() []*TreeNode {
	var result []*TreeNode
	n.flattenRecursive(&result)
	return result
}

func (n *TreeNode) flattenRecursive(result *[]*TreeNode) {
	*result = append(*result, n)
	if n.IsExpanded {
		for _, child := range n.Children {
			child.flattenRecursive(result)
		}
	}
}

// Depth returns the depth of this node in the tree
func (n *TreeNode) Depth() int {
	depth := 0
	current := n.Parent
	for current != nil {
		depth++
		current = current.Parent
	}
	return depth
}

// Find returns the node with the given id in this subtree
func (n *TreeNode) Find(id string) *TreeNode {
	if n.ID == id && n.Kind != NodeRoot {
		return n
	}
	for _, child := range n.Children {
		if found := child.Find(id); found != nil {
			return found
		}
	}
	return nil
}

// Toggle expands or collapses the node
func (n *TreeNode) Toggle() {
	n.IsExpanded = !n.IsExpanded
}

// Expand sets the node as expanded
func (n *TreeNode) Expand() {
	n.IsExpanded = true
}

// Collapse sets the node as collapsed
func (n *TreeNode) Collapse() {
	n.IsExpanded = false
}
