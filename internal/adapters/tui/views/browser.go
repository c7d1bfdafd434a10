package views

import (
	"context"
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"wordplay/internal/application/commands"
	"wordplay/internal/domain"
	"wordplay/internal/ports"
)

// BrowserKeyMap defines key bindings for the browser view
type BrowserKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Left     key.Binding
	Right    key.Binding
	Enter    key.Binding
	Play     key.Binding
	PlayAll  key.Binding
	New      key.Binding
	NewRoot  key.Binding
	Rename   key.Binding
	Move     key.Binding
	Delete   key.Binding
	Edit     key.Binding
	CopyPath key.Binding
	Search   key.Binding
	Help     key.Binding
	Quit     key.Binding
}

var BrowserKeys = BrowserKeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	PageUp: key.NewBinding(
		key.WithKeys("pgup", "ctrl+u"),
		key.WithHelp("pgup", "page up"),
	),
	PageDown: key.NewBinding(
		key.WithKeys("pgdown", "ctrl+d"),
		key.WithHelp("pgdn", "page down"),
	),
	Left: key.NewBinding(
		key.WithKeys("h", "left"),
		key.WithHelp("h/←", "collapse"),
	),
	Right: key.NewBinding(
		key.WithKeys("l", "right"),
		key.WithHelp("l/→", "expand"),
	),
	Enter: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "toggle/play"),
	),
	Play: key.NewBinding(
		key.WithKeys("p"),
		key.WithHelp("p", "play"),
	),
	PlayAll: key.NewBinding(
		key.WithKeys("P"),
		key.WithHelp("P", "play all"),
	),
	New: key.NewBinding(
		key.WithKeys("n"),
		key.WithHelp("n", "new folder"),
	),
	NewRoot: key.NewBinding(
		key.WithKeys("N"),
		key.WithHelp("N", "new root folder"),
	),
	Rename: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "rename"),
	),
	Move: key.NewBinding(
		key.WithKeys("m"),
		key.WithHelp("m", "move"),
	),
	Delete: key.NewBinding(
		key.WithKeys("d"),
		key.WithHelp("d", "delete"),
	),
	Edit: key.NewBinding(
		key.WithKeys("e"),
		key.WithHelp("e", "edit"),
	),
	CopyPath: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "copy path"),
	),
	Search: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "search"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// chrome is the number of lines around the tree (title, status, help)
const chrome = 8

// BrowserModel is the model for the tree browser view
type BrowserModel struct {
	ViewState
	bank      ports.QuestionBank
	root      *domain.TreeNode
	flatNodes []*domain.TreeNode
	pager     *Paginator

	// expansion survives reloads; selectID is focused after the next one
	expanded map[string]bool
	selectID string

	copyPath func(string) error
}

// NewBrowserModel creates a new browser model
func NewBrowserModel(bank ports.QuestionBank) *BrowserModel {
	return &BrowserModel{
		bank:     bank,
		pager:    NewPaginator(20),
		expanded: make(map[string]bool),
		copyPath: clipboard.WriteAll,
	}
}

// Init initializes the browser
func (m *BrowserModel) Init() tea.Cmd {
	return m.loadTree
}

func (m *BrowserModel) loadTree() tea.Msg {
	root, err := m.bank.BuildTree()
	if err != nil {
		return ActionErrMsg{err}
	}
	return treeLoadedMsg{root}
}

type treeLoadedMsg struct {
	root *domain.TreeNode
}

// Update handles messages for the browser
func (m *BrowserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case treeLoadedMsg:
		m.setRoot(msg.root)
		return m, nil

	case ActionErrMsg:
		m.SetMessage(msg.Err.Error(), true)
		return m, nil

	case tea.KeyMsg:
		m.ClearMessage()
		return m, m.handleKey(msg)
	}

	return m, nil
}

func (m *BrowserModel) handleKey(msg tea.KeyMsg) tea.Cmd {
	node := m.SelectedNode()

	switch {
	case key.Matches(msg, BrowserKeys.Quit):
		return tea.Quit

	case key.Matches(msg, BrowserKeys.Up):
		m.pager.CursorUp()

	case key.Matches(msg, BrowserKeys.Down):
		m.pager.CursorDown()

	case key.Matches(msg, BrowserKeys.PageUp):
		m.pager.PrevPage()

	case key.Matches(msg, BrowserKeys.PageDown):
		m.pager.NextPage()

	case key.Matches(msg, BrowserKeys.Left):
		if node == nil {
			return nil
		}
		if node.Kind == domain.NodeFolder && node.IsExpanded {
			m.setExpanded(node, false)
		} else if node.Parent != nil && node.Parent.Kind != domain.NodeRoot {
			m.focus(node.Parent)
		}

	case key.Matches(msg, BrowserKeys.Right):
		if node != nil && node.Kind == domain.NodeFolder && !node.IsExpanded {
			m.setExpanded(node, true)
		}

	case key.Matches(msg, BrowserKeys.Enter):
		if node == nil {
			return nil
		}
		if node.Kind == domain.NodeQuestion {
			return m.play(node)
		}
		m.setExpanded(node, !node.IsExpanded)

	case key.Matches(msg, BrowserKeys.Play):
		if node != nil {
			return m.play(node)
		}

	case key.Matches(msg, BrowserKeys.PlayAll):
		if m.root != nil {
			return m.play(m.root)
		}

	case key.Matches(msg, BrowserKeys.New):
		parentID := ""
		if folder := enclosingFolder(node); folder != nil {
			parentID = folder.ID
		}
		return switchTo(SwitchToFolderFormMsg{ParentID: parentID})

	case key.Matches(msg, BrowserKeys.NewRoot):
		return switchTo(SwitchToFolderFormMsg{})

	case key.Matches(msg, BrowserKeys.Rename):
		if node != nil && node.Kind == domain.NodeFolder {
			return switchTo(SwitchToFolderFormMsg{Target: node})
		}

	case key.Matches(msg, BrowserKeys.Move):
		if node != nil && node.Kind == domain.NodeFolder {
			return switchTo(SwitchToMoveMsg{Source: node})
		}

	case key.Matches(msg, BrowserKeys.Delete):
		if node != nil {
			return switchTo(SwitchToDeleteMsg{Target: node})
		}

	case key.Matches(msg, BrowserKeys.Edit):
		if node != nil && node.Kind == domain.NodeQuestion {
			return switchTo(EditQuestionMsg{QuestionID: node.ID})
		}

	case key.Matches(msg, BrowserKeys.CopyPath):
		if node == nil {
			return nil
		}
		path := SlashPath(enclosingFolder(node))
		if path == "" {
			m.SetMessage("Unfiled questions have no folder path", true)
			return nil
		}
		if err := m.copyPath(path); err != nil {
			m.SetMessage(fmt.Sprintf("Copy failed: %v", err), true)
			return nil
		}
		m.SetMessage(fmt.Sprintf("Copied %s", path), false)

	case key.Matches(msg, BrowserKeys.Search):
		return switchTo(SwitchToSearchMsg{})

	case key.Matches(msg, BrowserKeys.Help):
		return switchTo(SwitchToHelpMsg{})
	}
	return nil
}

func switchTo(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}

// play starts a single question, or the playlist of every question under a
// folder (or the root) in playback order
func (m *BrowserModel) play(node *domain.TreeNode) tea.Cmd {
	if node.Kind == domain.NodeQuestion {
		if node.Question == nil {
			return nil
		}
		return switchTo(SwitchToPlayerMsg{Title: node.Name, Questions: []domain.Question{*node.Question}})
	}

	folderID := ""
	if node.Kind == domain.NodeFolder {
		folderID = node.ID
	}
	result, err := commands.NewBuildPlaylistCommand(m.bank, folderID).Execute(context.Background())
	if err != nil {
		m.SetMessage(err.Error(), true)
		return nil
	}
	if len(result.Questions) == 0 {
		m.SetMessage(fmt.Sprintf("%s has no questions", node.Name), true)
		return nil
	}
	return switchTo(SwitchToPlayerMsg{Title: result.Path, Questions: result.Questions})
}

// enclosingFolder returns the node itself for folders and the containing
// folder for questions; nil means the root level
func enclosingFolder(node *domain.TreeNode) *domain.TreeNode {
	for n := node; n != nil; n = n.Parent {
		if n.Kind == domain.NodeFolder {
			return n
		}
		if n.Kind == domain.NodeRoot {
			return nil
		}
	}
	return nil
}

// SlashPath renders a folder node's path in import form ("A/B/C")
func SlashPath(node *domain.TreeNode) string {
	var names []string
	for n := node; n != nil && n.Kind == domain.NodeFolder; n = n.Parent {
		names = append([]string{n.Name}, names...)
	}
	return domain.JoinPath(names)
}

func (m *BrowserModel) setRoot(root *domain.TreeNode) {
	m.root = root
	var restore func(*domain.TreeNode)
	restore = func(n *domain.TreeNode) {
		if n.Kind == domain.NodeFolder && m.expanded[n.ID] {
			n.Expand()
		}
		for _, c := range n.Children {
			restore(c)
		}
	}
	restore(root)
	m.refreshFlatNodes()

	if m.selectID != "" {
		if n := root.Find(m.selectID); n != nil {
			for p := n.Parent; p != nil && p.Kind == domain.NodeFolder; p = p.Parent {
				m.setExpanded(p, true)
			}
			m.focus(n)
		}
		m.selectID = ""
	}
}

func (m *BrowserModel) setExpanded(node *domain.TreeNode, expanded bool) {
	node.IsExpanded = expanded
	if expanded {
		m.expanded[node.ID] = true
	} else {
		delete(m.expanded, node.ID)
	}
	m.refreshFlatNodes()
}

func (m *BrowserModel) focus(node *domain.TreeNode) {
	for i, n := range m.flatNodes {
		if n == node {
			m.pager.SetCursor(i)
			return
		}
	}
}

// SelectedNode returns the node under the cursor
func (m *BrowserModel) SelectedNode() *domain.TreeNode {
	cursor := m.pager.Cursor()
	if cursor >= 0 && cursor < len(m.flatNodes) {
		return m.flatNodes[cursor]
	}
	return nil
}

func (m *BrowserModel) refreshFlatNodes() {
	if m.root == nil {
		return
	}
	m.flatNodes = m.root.Flatten()
	// Skip root node in display
	if len(m.flatNodes) > 0 {
		m.flatNodes = m.flatNodes[1:]
	}
	m.pager.SetTotal(len(m.flatNodes))
}

// View renders the browser
func (m *BrowserModel) View() string {
	if m.root == nil {
		return "Loading..."
	}

	v := NewViewBuilder().
		Title("Wordplay").
		Subtitle(fmt.Sprintf("%d questions", m.root.Total))

	if len(m.flatNodes) == 0 {
		v.Muted("The bank is empty. Press N to create a folder or import questions with wordplay-cli.")
	}
	start, end := m.pager.VisibleRange()
	for i := start; i < end; i++ {
		v.Node(m.flatNodes[i], i == m.pager.Cursor())
	}
	if m.pager.TotalPages() > 1 {
		v.Muted(fmt.Sprintf("page %d/%d", m.pager.CurrentPage(), m.pager.TotalPages()))
	}

	v.BlankLine().Message(m.Message, m.MessageErr)
	v.Help(BrowserKeys.Play, BrowserKeys.New, BrowserKeys.Rename, BrowserKeys.Move,
		BrowserKeys.Delete, BrowserKeys.CopyPath, BrowserKeys.Search, BrowserKeys.Help, BrowserKeys.Quit)
	return v.String()
}

// SetSize updates the view dimensions and the visible window
func (m *BrowserModel) SetSize(width, height int) {
	m.ViewState.SetSize(width, height)
	m.pager.SetPageSize(height - chrome)
}

// Reload rebuilds the tree from the bank, keeping expansion and selection
func (m *BrowserModel) Reload() tea.Cmd {
	if node := m.SelectedNode(); node != nil && m.selectID == "" {
		m.selectID = node.ID
	}
	return m.loadTree
}

// SelectAfterReload focuses id once the next reload completes
func (m *BrowserModel) SelectAfterReload(id string) {
	m.selectID = id
}
