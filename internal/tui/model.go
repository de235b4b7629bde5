// Package tui provides the interactive cargo classification picker.
//
// The picker is a presentation layer only: it forwards category selections
// and mode toggles to a service.Classifier and re-renders from the state the
// classifier returns.
package tui

import (
	"fmt"
	"strings"

	"github.com/Veraticus/freight/internal/model"
	"github.com/Veraticus/freight/internal/service"
	"github.com/Veraticus/freight/internal/tui/themes"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Pane identifies the focused list.
type Pane int

const (
	// PaneCategories focuses the cargo category list.
	PaneCategories Pane = iota
	// PaneModes focuses the transport mode list.
	PaneModes
)

// Config holds what the picker needs to run.
type Config struct {
	Classifier service.Classifier
	// OnChange is called with every accepted state; the returned command
	// should report StateSavedMsg or SaveFailedMsg.
	OnChange   func(model.ClassificationState) tea.Cmd
	KeyMap     *KeyMap
	Theme      themes.Theme
	Title      string
	Categories []model.CargoCategory
	Modes      []model.TransportModeInfo
}

// Model is the bubbletea model for the classification picker.
type Model struct {
	classifier     service.Classifier
	onChange       func(model.ClassificationState) tea.Cmd
	err            error
	title          string
	categories     []model.CargoCategory
	modes          []model.TransportModeInfo
	help           help.Model
	keys           KeyMap
	theme          themes.Theme
	state          model.ClassificationState
	pane           Pane
	categoryCursor int
	modeCursor     int
	width          int
	saving         int
	done           bool
}

// New creates a picker positioned on the classifier's current category.
func New(cfg Config) Model {
	keys := DefaultKeyMap()
	if cfg.KeyMap != nil {
		keys = *cfg.KeyMap
	}
	modes := cfg.Modes
	if len(modes) == 0 {
		modes = model.TransportModes
	}
	title := cfg.Title
	if title == "" {
		title = "Cargo Classification"
	}

	h := help.New()
	h.Styles.ShortKey = cfg.Theme.HelpKey
	h.Styles.ShortDesc = cfg.Theme.HelpDesc
	h.Styles.FullKey = cfg.Theme.HelpKey
	h.Styles.FullDesc = cfg.Theme.HelpDesc

	m := Model{
		classifier: cfg.Classifier,
		onChange:   cfg.OnChange,
		title:      title,
		categories: cfg.Categories,
		modes:      modes,
		help:       h,
		keys:       keys,
		theme:      cfg.Theme,
		state:      cfg.Classifier.State(),
	}
	for i, cat := range m.categories {
		if cat.ID == m.state.SelectedCategory {
			m.categoryCursor = i
			break
		}
	}
	return m
}

// State returns the last state reported by the classifier.
func (m Model) State() model.ClassificationState {
	return m.state
}

// Err returns the last error shown to the user, if any.
func (m Model) Err() error {
	return m.err
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width

	case StateSavedMsg:
		if m.saving > 0 {
			m.saving--
		}

	case SaveFailedMsg:
		if m.saving > 0 {
			m.saving--
		}
		m.err = msg.Err
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.done = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.SwitchPane):
		if m.pane == PaneCategories {
			m.pane = PaneModes
		} else {
			m.pane = PaneCategories
		}

	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-1)

	case key.Matches(msg, m.keys.Down):
		m.moveCursor(1)

	case key.Matches(msg, m.keys.Select):
		return m.activate()
	}

	return m, nil
}

func (m *Model) moveCursor(delta int) {
	if m.pane == PaneCategories {
		if n := len(m.categories); n > 0 {
			m.categoryCursor = (m.categoryCursor + delta + n) % n
		}
		return
	}
	if n := len(m.modes); n > 0 {
		m.modeCursor = (m.modeCursor + delta + n) % n
	}
}

func (m Model) activate() (tea.Model, tea.Cmd) {
	var (
		state model.ClassificationState
		err   error
	)

	switch m.pane {
	case PaneCategories:
		if len(m.categories) == 0 {
			return m, nil
		}
		state, err = m.classifier.SelectCategory(m.categories[m.categoryCursor].ID)
	case PaneModes:
		state, err = m.classifier.ToggleMode(m.modes[m.modeCursor].ID)
	}

	if err != nil {
		m.err = err
		return m, nil
	}

	m.err = nil
	changed := state != m.state
	m.state = state
	if !changed || m.onChange == nil {
		return m, nil
	}

	m.saving++
	return m, m.onChange(state)
}

// View implements tea.Model.
func (m Model) View() string {
	if m.done {
		return ""
	}

	title := m.theme.Title.Render(m.title)

	categories := m.paneStyle(PaneCategories).Render(m.renderCategories())
	modes := m.paneStyle(PaneModes).Render(m.renderModes())
	body := lipgloss.JoinHorizontal(lipgloss.Top, categories, " ", modes)

	sections := []string{title, body, m.renderNotice()}
	if m.err != nil {
		sections = append(sections, m.theme.ErrorText.Render("Error: "+m.err.Error()))
	}
	sections = append(sections, m.help.View(m.keys))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) paneStyle(p Pane) lipgloss.Style {
	if m.pane == p {
		return m.theme.ActivePane
	}
	return m.theme.Pane
}

func (m Model) renderCategories() string {
	lines := make([]string, 0, len(m.categories)+1)
	lines = append(lines, m.theme.Bold.Render("Cargo type"))

	for i, cat := range m.categories {
		marker := "( )"
		if cat.ID == m.state.SelectedCategory {
			marker = "(•)"
		}
		line := fmt.Sprintf("%s %s", marker, cat.Label)
		if m.pane == PaneCategories && i == m.categoryCursor {
			line = m.theme.Selected.Render("> " + line)
		} else {
			line = "  " + line
		}
		lines = append(lines, line)
	}

	return strings.Join(lines, "\n")
}

func (m Model) renderModes() string {
	lines := make([]string, 0, len(m.modes)+1)
	lines = append(lines, m.theme.Bold.Render("Transport modes"))

	for i, mode := range m.modes {
		disabled, err := m.classifier.IsModeDisabled(mode.ID)
		if err != nil {
			disabled = true
		}

		line := fmt.Sprintf("[ ] %s", mode.Label)
		if m.state.IsModeEnabled(mode.ID) {
			line = m.theme.Enabled.Render(fmt.Sprintf("[x] %s", mode.Label))
		}
		if disabled {
			line = m.theme.Disabled.Render(fmt.Sprintf("[-] %s", mode.Label)) +
				m.theme.Subtitle.Render("  not available for this cargo type")
		}

		if m.pane == PaneModes && i == m.modeCursor {
			line = m.theme.Selected.Render("> ") + line
		} else {
			line = "  " + line
		}
		lines = append(lines, line)
	}

	return strings.Join(lines, "\n")
}

func (m Model) renderNotice() string {
	labels, err := m.classifier.DescribeRestrictions(m.state.SelectedCategory)
	if err != nil || len(labels) == 0 {
		return m.theme.Subtitle.Render("No transport restrictions for this cargo type")
	}
	return m.theme.Notice.Render("Restricted: " + strings.Join(labels, ", "))
}
