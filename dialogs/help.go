package dialogs

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Help overlays the key legend on top of the canvas.
type Help struct {
	visible  bool
	bindings []key.Binding
}

// NewHelp builds a visible help dialog for the given bindings.
func NewHelp(bindings []key.Binding) *Help {
	return &Help{visible: true, bindings: bindings}
}

func (d *Help) Init() tea.Cmd { return nil }

func (d *Help) Update(msg tea.Msg) (Dialog, tea.Cmd) {
	if m, ok := msg.(tea.KeyMsg); ok {
		switch m.String() {
		case "enter", "esc", "?", "q":
			d.visible = false
		}
	}
	return d, nil
}

func (d *Help) View() string {
	if !d.visible {
		return ""
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("252")).
		Padding(1, 2).
		Width(52)

	var lines []string
	for _, b := range d.bindings {
		h := b.Help()
		lines = append(lines, fmt.Sprintf("%-12s %s", h.Key, h.Desc))
	}

	hint := lipgloss.NewStyle().Faint(true).Render("enter/esc to return")
	return box.Render(strings.Join(lines, "\n") + "\n\n" + hint)
}

func (d *Help) Focus() tea.Cmd { return nil }
func (d *Help) Blur()          {}

func (d *Help) Show()           { d.visible = true }
func (d *Help) Hide()           { d.visible = false }
func (d *Help) IsVisible() bool { return d.visible }
