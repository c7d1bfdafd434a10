// Package tui is the terminal front end: a folder tree browser with
// question counts and a playlist player.
package tui

import (
	"context"
	"fmt"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"wordplay/internal/adapters/editor"
	"wordplay/internal/adapters/tui/views"
	"wordplay/internal/application/commands"
	"wordplay/internal/application/importer"
	"wordplay/internal/ports"
)

// ViewState represents the current view
type ViewState int

const (
	ViewBrowser ViewState = iota
	ViewPlayer
	ViewFolderForm
	ViewMove
	ViewDelete
	ViewSearch
	ViewHelp
)

// App is the main TUI application model
type App struct {
	bank   ports.QuestionBank
	editor *editor.Opener
	logger *slog.Logger

	state      ViewState
	browser    *views.BrowserModel
	player     *views.PlayerModel
	folderForm *views.FolderFormModel
	move       *views.MoveModel
	delete     *views.DeleteModel
	search     *views.SearchModel
	help       *views.HelpModel

	width  int
	height int
}

// NewApp creates a new TUI application. A nil editor disables question editing.
func NewApp(bank ports.QuestionBank, ed *editor.Opener, logger *slog.Logger) *App {
	if logger == nil {
		logger = slog.Default()
	}
	return &App{
		bank:       bank,
		editor:     ed,
		logger:     logger,
		state:      ViewBrowser,
		browser:    views.NewBrowserModel(bank),
		player:     views.NewPlayerModel(),
		folderForm: views.NewFolderFormModel(bank),
		move:       views.NewMoveModel(bank),
		delete:     views.NewDeleteModel(bank),
		search:     views.NewSearchModel(bank),
		help:       views.NewHelpModel(),
	}
}

// Init initializes the application
func (a *App) Init() tea.Cmd {
	return a.browser.Init()
}

// Update handles messages for the application
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.browser.SetSize(msg.Width, msg.Height)
		a.player.SetSize(msg.Width, msg.Height)
		a.folderForm.SetSize(msg.Width, msg.Height)
		a.move.SetSize(msg.Width, msg.Height)
		a.delete.SetSize(msg.Width, msg.Height)
		a.search.SetSize(msg.Width, msg.Height)
		a.help.SetSize(msg.Width, msg.Height)
		return a, nil

	// View switching messages
	case views.SwitchToBrowserMsg:
		a.state = ViewBrowser
		return a, a.browser.Reload()

	case views.SwitchToHelpMsg:
		a.state = ViewHelp
		return a, nil

	case views.SwitchToSearchMsg:
		a.state = ViewSearch
		a.search.Reset()
		return a, a.search.Init()

	case views.SwitchToPlayerMsg:
		if err := a.player.Start(msg); err != nil {
			a.browser.SetMessage(err.Error(), true)
			return a, nil
		}
		a.state = ViewPlayer
		return a, nil

	case views.SwitchToFolderFormMsg:
		a.state = ViewFolderForm
		a.folderForm.Open(msg)
		return a, a.folderForm.Init()

	case views.SwitchToMoveMsg:
		a.state = ViewMove
		a.move.SetSource(msg.Source)
		return a, a.move.Init()

	case views.SwitchToDeleteMsg:
		a.state = ViewDelete
		a.delete.SetTarget(msg.Target)
		return a, nil

	case views.SearchSelectMsg:
		a.state = ViewBrowser
		a.browser.SelectAfterReload(msg.QuestionID)
		return a, a.browser.Reload()

	// Results of mutations
	case views.ActionDoneMsg:
		a.logger.Debug("tui action", "result", msg.Message)
		a.state = ViewBrowser
		a.browser.SetMessage(msg.Message, false)
		return a, a.browser.Reload()

	case views.EditQuestionMsg:
		return a, a.editQuestion(msg.QuestionID)

	case editorFinishedMsg:
		return a, a.applyEdit(msg)
	}

	// Delegate to current view
	var cmd tea.Cmd
	switch a.state {
	case ViewBrowser:
		_, cmd = a.browser.Update(msg)
	case ViewPlayer:
		_, cmd = a.player.Update(msg)
	case ViewFolderForm:
		_, cmd = a.folderForm.Update(msg)
	case ViewMove:
		_, cmd = a.move.Update(msg)
	case ViewDelete:
		_, cmd = a.delete.Update(msg)
	case ViewSearch:
		_, cmd = a.search.Update(msg)
	case ViewHelp:
		_, cmd = a.help.Update(msg)
	}

	return a, cmd
}

type editorFinishedMsg struct {
	file *editor.QuestionFile
	err  error
}

// editQuestion writes the question to a YAML file and suspends the TUI
// while the editor runs
func (a *App) editQuestion(id string) tea.Cmd {
	fail := func(err error) tea.Cmd {
		return func() tea.Msg { return views.ActionErrMsg{Err: err} }
	}
	if a.editor == nil {
		return fail(fmt.Errorf("editing is not available"))
	}

	q, _, err := commands.NewGetQuestionCommand(a.bank, id).Execute(context.Background())
	if err != nil {
		return fail(err)
	}
	file, err := editor.WriteQuestionFile(*q)
	if err != nil {
		return fail(err)
	}
	cmd, err := a.editor.Command(file.Path)
	if err != nil {
		file.Remove()
		return fail(err)
	}

	return tea.ExecProcess(cmd, func(err error) tea.Msg {
		return editorFinishedMsg{file: file, err: err}
	})
}

// applyEdit reads the edited file back and updates the question
func (a *App) applyEdit(msg editorFinishedMsg) tea.Cmd {
	return func() tea.Msg {
		defer msg.file.Remove()
		if msg.err != nil {
			return views.ActionErrMsg{Err: fmt.Errorf("editor failed: %w", msg.err)}
		}

		record, err := msg.file.Read()
		if err != nil {
			return views.ActionErrMsg{Err: err}
		}
		patch, err := importer.PatchFromRecord(record)
		if err != nil {
			return views.ActionErrMsg{Err: err}
		}

		result, err := commands.NewUpdateQuestionCommand(a.bank, msg.file.QuestionID, patch).Execute(context.Background())
		if err != nil {
			return views.ActionErrMsg{Err: err}
		}
		return views.ActionDoneMsg{Message: result.Message}
	}
}

// View renders the current view
func (a *App) View() string {
	switch a.state {
	case ViewPlayer:
		return a.player.View()
	case ViewFolderForm:
		return a.folderForm.View()
	case ViewMove:
		return a.move.View()
	case ViewDelete:
		return a.delete.View()
	case ViewSearch:
		return a.search.View()
	case ViewHelp:
		return a.help.View()
	default:
		return a.browser.View()
	}
}
