package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type footerState struct {
	Playing bool
	Overlay bool

	SampleIndex   int
	SessionLength int
	Speed         float64
	SchemeName    string

	StatusMessage string
	Legend        string
}

type footerStyles struct {
	BarBG       lipgloss.Color
	StatusBG    lipgloss.Color
	StatePillBG lipgloss.Color
	StatePillFG lipgloss.Color
	PausedBG    lipgloss.Color
	TextFG      lipgloss.Color
	DimFG       lipgloss.Color
	StatusFG    lipgloss.Color
	LegendFG    lipgloss.Color
}

func defaultFooterStyles() footerStyles {
	return footerStyles{
		BarBG:       lipgloss.Color("#2b2b2b"),
		StatusBG:    lipgloss.Color("#000000"),
		StatePillBG: lipgloss.Color("#2a9d3f"),
		StatePillFG: lipgloss.Color("#000000"),
		PausedBG:    lipgloss.Color("#ff9f1c"),
		TextFG:      lipgloss.Color("#cfcfcf"),
		DimFG:       lipgloss.Color("#a0a0a0"),
		StatusFG:    lipgloss.Color("#9a9a9a"),
		LegendFG:    lipgloss.Color("#b0b0b0"),
	}
}

// renderFooter builds the two-line footer: a control bar with the play
// state, speed and scheme, and a status bar with notices and the key
// legend.
func renderFooter(width int, st footerState, styles footerStyles) string {
	if width <= 0 {
		return ""
	}
	line1 := renderControlBar(width, st, styles)
	line2 := renderStatusBar(width, st, styles)
	return line1 + "\n" + line2
}

func renderControlBar(width int, st footerState, styles footerStyles) string {
	rightPlain := fmt.Sprintf(" Sample %d/%d", st.SampleIndex, st.SessionLength)
	rightPlain = truncatePlain(rightPlain, width)
	rightW := runeWidth(rightPlain)

	leftW := width - rightW
	if leftW < 0 {
		leftW = 0
	}

	pill := renderStatePill(st, styles)
	pillW := runeWidth(stateLabel(st)) + 2

	infoPlain := fmt.Sprintf(" %gx · scheme %s", st.Speed, st.SchemeName)
	infoPlain = truncatePlain(infoPlain, max(0, leftW-pillW))

	pad := strings.Repeat(" ", max(0, leftW-pillW-runeWidth(infoPlain)))
	left := pill + applyFG(infoPlain, styles.DimFG, styles.TextFG) + pad

	return applyBar(left+rightPlain, styles.BarBG, styles.TextFG)
}

func renderStatusBar(width int, st footerState, styles footerStyles) string {
	legendPlain := truncatePlain(st.Legend, width)
	legendW := runeWidth(legendPlain)

	leftW := width - legendW
	if leftW < 0 {
		leftW = 0
	}

	msgPlain := truncatePlain(st.StatusMessage, leftW)
	msgPlain = padRightPlain(msgPlain, leftW)

	linePlain := applyFG(msgPlain, styles.StatusFG, styles.StatusFG) + applyFG(legendPlain, styles.LegendFG, styles.StatusFG)
	return applyBar(linePlain, styles.StatusBG, styles.StatusFG)
}

func stateLabel(st footerState) string {
	switch {
	case st.Overlay:
		return "OVERLAY"
	case st.Playing:
		return "PLAYING"
	default:
		return "PAUSED"
	}
}

func renderStatePill(st footerState, styles footerStyles) string {
	bg := styles.StatePillBG
	if !st.Playing && !st.Overlay {
		bg = styles.PausedBG
	}
	pill := ansiBg(bg) + ansiFg(styles.StatePillFG) + " " + stateLabel(st) + " "
	pill += ansiBg(styles.BarBG) + ansiFg(styles.TextFG)
	return pill
}

func applyBar(s string, bg lipgloss.Color, baseFG lipgloss.Color) string {
	return ansiBg(bg) + ansiFg(baseFG) + s + "\x1b[0m"
}

func applyFG(s string, fg lipgloss.Color, resetFG lipgloss.Color) string {
	return ansiFg(fg) + s + ansiFg(resetFG)
}

func ansiFg(c lipgloss.Color) string {
	return ansiColor(false, c)
}

func ansiBg(c lipgloss.Color) string {
	return ansiColor(true, c)
}

func ansiColor(isBg bool, c lipgloss.Color) string {
	s := string(c)
	if s == "" {
		if isBg {
			return "\x1b[49m"
		}
		return "\x1b[39m"
	}
	if strings.HasPrefix(s, "#") && len(s) == 7 {
		r, _ := strconv.ParseInt(s[1:3], 16, 0)
		g, _ := strconv.ParseInt(s[3:5], 16, 0)
		b, _ := strconv.ParseInt(s[5:7], 16, 0)
		code := 38
		if isBg {
			code = 48
		}
		return fmt.Sprintf("\x1b[%d;2;%d;%d;%dm", code, r, g, b)
	}
	return ""
}

func padRightPlain(s string, w int) string {
	if w <= 0 {
		return ""
	}
	cur := runeWidth(s)
	if cur >= w {
		return s
	}
	return s + strings.Repeat(" ", w-cur)
}

func truncatePlain(s string, w int) string {
	if w <= 0 {
		return ""
	}
	r := []rune(s)
	if len(r) <= w {
		return s
	}
	return string(r[:w])
}

func runeWidth(s string) int {
	return len([]rune(s))
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
