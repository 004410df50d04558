// Package tui hosts the interactive pattern picker.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ninamew/catto/internal/pattern"
)

// MenuItem represents a selectable pattern in the picker.
type MenuItem struct {
	Name   string
	Family string // shown next to the name: "pattern", "portrait" or "art"
}

var (
	titleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("208")).Bold(true)
	cursorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	familyStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// menuKeyMap defines the key bindings for the picker.
type menuKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Quit   key.Binding
}

// ShortHelp returns the bindings for the help footer.
func (k menuKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Quit}
}

// FullHelp returns the bindings for the expanded help view.
func (k menuKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.Select, k.Quit}}
}

var defaultMenuKeys = menuKeyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("up/k", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("down/j", "down"),
	),
	Select: key.NewBinding(
		key.WithKeys("enter", " "),
		key.WithHelp("enter", "show"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "esc", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// MenuModel is the Bubble Tea model for the pattern picker.
type MenuModel struct {
	items    []MenuItem
	cursor   int
	width    int
	keys     menuKeyMap
	help     help.Model
	quitting bool
	selected *MenuItem
}

// NewMenuModel creates a picker over the random pool, the portraits and
// the heart overlay.
func NewMenuModel(reg *pattern.Registry) MenuModel {
	items := make([]MenuItem, 0, reg.Len()+6)
	for _, e := range reg.Entries() {
		items = append(items, MenuItem{Name: e.Name, Family: "pattern"})
	}
	for _, p := range pattern.Portraits() {
		items = append(items, MenuItem{Name: p.Name, Family: "portrait"})
	}
	items = append(items, MenuItem{Name: pattern.HeartOverlay().Name, Family: "art"})

	return MenuModel{
		items: items,
		keys:  defaultMenuKeys,
		help:  help.New(),
	}
}

// Init initializes the picker model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the picker.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.items)-1 {
				m.cursor++
			}
		case key.Matches(msg, m.keys.Select):
			if len(m.items) > 0 {
				selected := m.items[m.cursor]
				m.selected = &selected
				return m, tea.Quit
			}
		}
	}
	return m, nil
}

// View renders the picker.
func (m MenuModel) View() string {
	if m.quitting || m.selected != nil {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(titleStyle.Render("  pick a catto"))
	b.WriteString("\n\n")

	for i, item := range m.items {
		cursor := "  "
		name := item.Name
		if i == m.cursor {
			cursor = cursorStyle.Render("> ")
			name = cursorStyle.Render(name)
		}
		b.WriteString(fmt.Sprintf("  %s%s %s\n", cursor, name, familyStyle.Render("("+item.Family+")")))
	}

	b.WriteString("\n  ")
	b.WriteString(m.help.View(m.keys))
	b.WriteString("\n")
	return b.String()
}

// Selected returns the chosen item, or nil if the user quit.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// RunMenu shows the picker and returns the chosen pattern name, or ""
// if the user quit without choosing.
func RunMenu(reg *pattern.Registry) (string, error) {
	program := tea.NewProgram(NewMenuModel(reg))
	final, err := program.Run()
	if err != nil {
		return "", fmt.Errorf("menu: %w", err)
	}
	model, ok := final.(MenuModel)
	if !ok {
		return "", fmt.Errorf("menu: unexpected model %T", final)
	}
	if sel := model.Selected(); sel != nil {
		return sel.Name, nil
	}
	return "", nil
}
