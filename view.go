package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/njvack/gazehound/logging"
)

func (m *model) headerView() string {
	title := headerTitleStyle.Render(m.session.ActiveStimulus())
	pos := headerDimStyle.Render(fmt.Sprintf("  stimulus %d/%d", m.session.ActiveIndex()+1, m.session.StimulusCount()))
	line := title + pos
	if m.ui.overlay {
		line += "  " + overlayBadge.Render("OVERLAY")
	}
	return headerStyle.Render(line)
}

func (m *model) footerView(width int) string {
	logging.Debugf("footerView overlay=%v playing=%v", m.ui.overlay, m.sched.Playing())
	styles := defaultFooterStyles()

	st := footerState{
		Playing:       m.sched.Playing(),
		Overlay:       m.ui.overlay,
		SampleIndex:   m.sched.CurrentIndex(),
		SessionLength: m.session.Length(),
		Speed:         m.sched.Speed(),
		SchemeName:    m.scheme.Name,
		Legend:        "(? help · space play/pause · r restart · ←/→ stimulus · o overlay)",
	}
	if m.ui.noticeMsg != "" {
		st.StatusMessage = noticeText(m.ui.noticeMsg, m.ui.noticeType)
	}

	if logging.IsDebugMode() {
		cols, rows := m.canvas.Size()
		st.Legend += fmt.Sprintf(" | dbg term=%dx%d canvas=%dx%d gen=%d",
			m.terminalWidth, m.terminalHeight, cols, rows, m.frameGen)
	}

	return renderFooter(width, st, styles)
}

func (m *model) View() string {
	if !m.ready {
		return "loading..."
	}

	if m.activeDialog != nil && m.activeDialog.IsVisible() {
		return lipgloss.Place(
			m.terminalWidth, m.terminalHeight,
			lipgloss.Center, lipgloss.Center,
			m.activeDialog.View(),
			lipgloss.WithWhitespaceChars(" "),
			lipgloss.WithWhitespaceBackground(lipgloss.Color("236")),
		)
	}

	bordered := canvasStyle.Render(m.viewport.View())
	contentW := lipgloss.Width(bordered)

	return appstyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		m.headerView(),
		bordered,
		m.footerView(contentW),
	))
}
