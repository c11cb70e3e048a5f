package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	menuTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	menuCountStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	menuCursorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	menuHelpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// MenuOption is one selectable action in the start menu
type MenuOption struct {
	Label string
	Value string
}

// MenuStatus summarizes the state files, shown above the menu so the
// choice between running, retrying and inspecting is an informed one.
type MenuStatus struct {
	Queued   int
	Failures int
}

// MenuModel drives the start menu shown when no subcommand is given
type MenuModel struct {
	status  MenuStatus
	options []MenuOption
	cursor  int
	choice  string
}

// NewMenuModel creates the start menu
func NewMenuModel(status MenuStatus, options []MenuOption) MenuModel {
	return MenuModel{
		status:  status,
		options: options,
	}
}

func (m MenuModel) Init() tea.Cmd {
	return nil
}

func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch s := key.String(); s {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.options)-1 {
			m.cursor++
		}
	case "enter":
		m.choice = m.options[m.cursor].Value
		return m, tea.Quit
	case "esc", "q", "ctrl+c":
		return m, tea.Quit
	default:
		// Digit shortcuts select an option directly
		if len(s) == 1 && s[0] >= '1' && s[0] <= '9' {
			if n := int(s[0] - '1'); n < len(m.options) {
				m.cursor = n
				m.choice = m.options[n].Value
				return m, tea.Quit
			}
		}
	}

	return m, nil
}

func (m MenuModel) View() string {
	var b strings.Builder

	b.WriteString(menuTitleStyle.Render("ytscribe"))
	b.WriteString(menuCountStyle.Render(fmt.Sprintf("  %d queued, %d failed", m.status.Queued, m.status.Failures)))
	b.WriteString("\n\n")

	for i, opt := range m.options {
		line := fmt.Sprintf("%d. %s", i+1, opt.Label)
		if i == m.cursor {
			b.WriteString(menuCursorStyle.Render("> " + line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}

	b.WriteString(menuHelpStyle.Render("\nup/down move, 1-9 or enter select, esc quit"))
	b.WriteString("\n")
	return b.String()
}

// Choice returns the selected value, empty when the menu was dismissed
func (m MenuModel) Choice() string {
	return m.choice
}

// RunMenu displays the start menu and returns the selected value
func RunMenu(status MenuStatus, options []MenuOption) (string, error) {
	p := tea.NewProgram(NewMenuModel(status, options))

	final, err := p.Run()
	if err != nil {
		return "", err
	}

	return final.(MenuModel).Choice(), nil
}
