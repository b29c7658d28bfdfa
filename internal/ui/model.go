package ui

import (
	"fmt"
	"sync"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"treefs/internal/config"
	"treefs/internal/domain"
	"treefs/internal/state"
	"treefs/internal/tree"
)

type Model struct {
	state    *state.State
	explorer *tree.Explorer
	keys     KeyMap
	notices  *noticeLog

	status       string
	showHelp     bool
	width        int
	height       int
	viewTop      int
	renaming     bool
	renameTarget *domain.Node
	input        textinput.Model
}

type ConfigProvider interface {
	ConfigSnapshot() config.Config
}

// noticeLog collects failure reports from the explorer so the status line
// can surface the most recent one. Each notice is consumed once; stale
// warnings never shadow later statuses.
type noticeLog struct {
	mu      sync.Mutex
	entries []string
	shown   int
}

func (log *noticeLog) Notify(op, path string, err error) {
	log.mu.Lock()
	defer log.mu.Unlock()
	log.entries = append(log.entries, fmt.Sprintf("%s %s: %v", op, path, err))
}

func (log *noticeLog) takeLatest() string {
	log.mu.Lock()
	defer log.mu.Unlock()
	if len(log.entries) == log.shown {
		return ""
	}
	log.shown = len(log.entries)
	return log.entries[len(log.entries)-1]
}

func NewModel(appState *state.State, explorer *tree.Explorer) Model {
	notices := &noticeLog{}
	explorer.SetNotifier(notices)
	// Volume roots are never renamable; everything else may begin an edit.
	explorer.OnEditRequest(func(node *domain.Node) bool {
		return node != nil && !node.ReadOnly
	})

	input := textinput.New()
	input.CharLimit = 255
	input.Width = 40

	return Model{
		state:    appState,
		explorer: explorer,
		keys:     DefaultKeyMap(),
		notices:  notices,
		status:   "Ready - enter expands, r renames, n creates a folder",
		input:    input,
	}
}

func (model Model) Init() tea.Cmd {
	return nil
}

func (model Model) ConfigSnapshot() config.Config {
	return model.state.Config
}

func (model Model) WithStatus(status string) Model {
	model.status = status
	return model
}

func (model Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		model.width = msg.Width
		model.height = msg.Height
		return model, nil
	case tea.KeyMsg:
		if model.renaming {
			return model.updateRenaming(msg)
		}
		return model.updateBrowsing(msg)
	}
	return model, nil
}

// The tree operations are synchronous blocking calls by design, so they
// run inline here on the program loop. Nothing mutates a node from
// another goroutine; View only ever sees settled state.
func (model Model) updateBrowsing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, model.keys.Quit):
		return model, tea.Quit
	case key.Matches(msg, model.keys.Help):
		model.showHelp = !model.showHelp
		return model, nil
	case key.Matches(msg, model.keys.Up):
		model.state.MoveCursor(-1)
		model = model.scrollToCursor()
		return model, nil
	case key.Matches(msg, model.keys.Down):
		model.state.MoveCursor(1)
		model = model.scrollToCursor()
		return model, nil
	case key.Matches(msg, model.keys.Expand):
		node := model.state.CurrentNode()
		if node == nil {
			return model, nil
		}
		count := model.explorer.Expand(node)
		model.status = model.withNotice(fmt.Sprintf("%d folders in %s", count, model.explorer.DisplayLabel(node)))
		return model, nil
	case key.Matches(msg, model.keys.Collapse):
		node := model.state.CurrentNode()
		if node == nil {
			return model, nil
		}
		model.explorer.Collapse(node)
		model.state.ClampCursor()
		return model, nil
	case key.Matches(msg, model.keys.Select):
		node := model.state.CurrentNode()
		if node == nil {
			return model, nil
		}
		if node.Selected {
			model.explorer.Deselect(node)
			return model, nil
		}
		model.explorer.Select(node)
		return model, nil
	case key.Matches(msg, model.keys.Rename):
		node := model.state.CurrentNode()
		if node == nil {
			return model, nil
		}
		if !model.explorer.RequestEdit(node) {
			model.status = "cannot rename " + model.explorer.DisplayLabel(node)
			return model, nil
		}
		model.renaming = true
		model.renameTarget = node
		model.input.SetValue(node.Name)
		model.input.Focus()
		return model, nil
	case key.Matches(msg, model.keys.NewFolder):
		node := model.state.CurrentNode()
		if node == nil {
			return model, nil
		}
		child, err := model.explorer.CreateChild(node)
		if err != nil {
			model.status = model.withNotice(err.Error())
			return model, nil
		}
		model.status = fmt.Sprintf("created %s", child.Name)
		return model, nil
	}
	return model, nil
}

func (model Model) updateRenaming(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, model.keys.Cancel):
		model.renaming = false
		model.renameTarget = nil
		model.input.Blur()
		model.status = "rename cancelled"
		return model, nil
	case key.Matches(msg, model.keys.Confirm):
		target := model.renameTarget
		newName := model.input.Value()
		model.renaming = false
		model.renameTarget = nil
		model.input.Blur()
		if err := model.explorer.Rename(target, newName); err != nil {
			model.status = model.withNotice(err.Error())
			return model, nil
		}
		model.status = fmt.Sprintf("renamed to %s", target.Name)
		return model, nil
	}
	var cmd tea.Cmd
	model.input, cmd = model.input.Update(msg)
	return model, cmd
}

func (model Model) withNotice(status string) string {
	if notice := model.notices.takeLatest(); notice != "" && notice != status {
		return status + "  " + notice
	}
	return status
}

func (model Model) scrollToCursor() Model {
	visibleRows := model.height - 4
	if visibleRows < 1 {
		return model
	}
	if model.state.Cursor < model.viewTop {
		model.viewTop = model.state.Cursor
	}
	if model.state.Cursor >= model.viewTop+visibleRows {
		model.viewTop = model.state.Cursor - visibleRows + 1
	}
	return model
}
