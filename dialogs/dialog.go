package dialogs

import tea "github.com/charmbracelet/bubbletea"

// Dialog is the common interface overlay dialogs implement, so the
// model can route messages to whichever one is open without knowing
// its type.
type Dialog interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (Dialog, tea.Cmd)
	View() string

	Focus() tea.Cmd
	Blur()
	IsVisible() bool
	Show()
	Hide()
}
