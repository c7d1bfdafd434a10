package views

import (
	"fmt"
	"hash/fnv"
	"math/rand/v2"
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"wordplay/internal/adapters/tui/styles"
	"wordplay/internal/domain"
)

// ViewBuilder assembles a screen top to bottom
type ViewBuilder struct {
	b strings.Builder
}

// NewViewBuilder creates a new view builder
func NewViewBuilder() *ViewBuilder {
	return &ViewBuilder{}
}

func (v *ViewBuilder) Title(title string) *ViewBuilder {
	return v.section(styles.Title.Render(title))
}

func (v *ViewBuilder) Subtitle(subtitle string) *ViewBuilder {
	return v.section(styles.Subtitle.Render(subtitle))
}

func (v *ViewBuilder) Line(text string) *ViewBuilder {
	v.b.WriteString(text)
	v.b.WriteByte('\n')
	return v
}

func (v *ViewBuilder) BlankLine() *ViewBuilder {
	v.b.WriteByte('\n')
	return v
}

func (v *ViewBuilder) Muted(text string) *ViewBuilder {
	return v.Line(styles.MutedText.Render(text))
}

// Field adds a "label: value" line
func (v *ViewBuilder) Field(label, value string) *ViewBuilder {
	return v.Line(styles.InputLabel.Render(label+":") + " " + value)
}

// Node adds one row of the bank tree
func (v *ViewBuilder) Node(node *domain.TreeNode, selected bool) *ViewBuilder {
	return v.Line(RenderTreeNode(node, selected))
}

// Card adds a framed question card
func (v *ViewBuilder) Card(q domain.Question, revealed bool) *ViewBuilder {
	return v.Line(styles.Card.Render(RenderCard(q, revealed)))
}

// Message adds a status line; errors and successes are styled apart
func (v *ViewBuilder) Message(message string, isError bool) *ViewBuilder {
	if message == "" {
		return v
	}
	style := styles.Success
	if isError {
		style = styles.ErrorMsg
	}
	return v.section(style.Render(message))
}

// Help adds the key help line
func (v *ViewBuilder) Help(bindings ...key.Binding) *ViewBuilder {
	parts := make([]string, len(bindings))
	for i, b := range bindings {
		parts[i] = RenderKeyHelp(b)
	}
	v.b.WriteString(strings.Join(parts, styles.HelpSeparator.String()))
	return v
}

// String returns the screen wrapped in the app style
func (v *ViewBuilder) String() string {
	return styles.App.Render(v.b.String())
}

func (v *ViewBuilder) section(text string) *ViewBuilder {
	v.b.WriteString(text)
	v.b.WriteString("\n\n")
	return v
}

// RenderKeyHelp formats a key binding as "key description"
func RenderKeyHelp(b key.Binding) string {
	help := b.Help()
	return styles.HelpKey.Render(help.Key) + " " + styles.HelpDesc.Render(help.Desc)
}

// FolderSwatch renders a dot in the folder's palette colour
func FolderSwatch(color string) string {
	return styles.TreeBranch.Foreground(styles.FolderColor(color)).Render("●")
}

// RenderTreeNode renders a tree row: folders carry their colour and subtree
// question count, questions their type
func RenderTreeNode(node *domain.TreeNode, selected bool) string {
	indent := strings.Repeat("  ", max(node.Depth()-1, 0))

	text := node.Name
	switch {
	case selected:
		text = styles.NodeSelected.Render(text)
	case node.Kind == domain.NodeFolder:
		text = styles.NodeFolder.Foreground(styles.FolderColor(node.Color)).Render(text)
	default:
		text = styles.NodeQuestion.Render(text)
	}

	if node.Kind != domain.NodeFolder {
		var kind string
		if node.Question != nil {
			kind = styles.NodeType.Render(" [" + node.Question.Type.Label() + "]")
		}
		return indent + styles.TreeBranch.Render(styles.TreeLeaf) + text + kind
	}

	marker := styles.TreeCollapsed
	if node.IsExpanded {
		marker = styles.TreeExpanded
	}
	count := styles.NodeCount.Render(fmt.Sprintf(" (%d)", node.Total))
	return indent + styles.TreeBranch.Render(marker) + FolderSwatch(node.Color) + " " + text + count
}

// RenderCard renders a question as a text card. Answers stay hidden until
// revealed.
func RenderCard(q domain.Question, revealed bool) string {
	var b strings.Builder
	line := func(format string, args ...any) {
		fmt.Fprintf(&b, format, args...)
		b.WriteByte('\n')
	}
	answer := func(s string) string {
		if revealed {
			return styles.Answer.Render(s)
		}
		return styles.MutedText.Render(strings.Repeat("•", min(len([]rune(s)), 12)))
	}

	switch q.Type {
	case domain.TypeSentenceBuilding:
		line("%s", q.Translation)
		line("")
		line("Words: %s", strings.Join(shuffled(q.ID, strings.Fields(q.Sentence)), "  "))
		line("Sentence: %s", answer(q.Sentence))

	case domain.TypeMatching:
		line("%s", q.Translation)
		line("")
		targets := shuffled(q.ID, q.WordTranslations)
		for i, w := range q.Words {
			right := ""
			if i < len(targets) {
				right = targets[i]
			}
			if revealed && i < len(q.WordTranslations) {
				right = styles.Answer.Render(q.WordTranslations[i])
			}
			line("  %-16s %s", w, right)
		}

	case domain.TypeSpelling:
		line("%s  %s", q.Word, q.Phonetic)
		line("")
		for i, option := range shuffled(q.ID, append([]string{q.Meaning}, q.Distractors...)) {
			if revealed && option == q.Meaning {
				option = styles.Answer.Render(option + "  ✓")
			}
			line("  %d. %s", i+1, option)
		}

	case domain.TypeFillInBlank:
		sentence := domain.ReplaceBlanks(q.Sentence, func(i int, marker string) string {
			if revealed && i < len(q.Blanks) {
				return styles.Blank.Render(q.Blanks[i])
			}
			return styles.Blank.Render(marker)
		})
		line("%s", sentence)
		line("")
		line("%s", styles.MutedText.Render(q.Translation))

	case domain.TypeDialogue:
		if q.RevealsQuestion() {
			line("Q: %s", q.Question)
			line("A: %s", answer(q.Answer))
		} else {
			line("Q: %s", answer(q.Question))
			line("A: %s", q.Answer)
		}
		line("")
		line("%s", styles.MutedText.Render(q.Translation))

	default:
		line("%s", q.Sentence)
	}
	return strings.TrimRight(b.String(), "\n")
}

// shuffled returns a copy of items in an order that is stable for seed
func shuffled(seed string, items []string) []string {
	out := append([]string(nil), items...)
	h := fnv.New64a()
	h.Write([]byte(seed))
	r := rand.New(rand.NewPCG(h.Sum64(), 0))
	r.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}
