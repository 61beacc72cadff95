package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/termenv"

	"github.com/njvack/gazehound/dataset"
)

// Terminal cells are roughly twice as tall as wide; the vertical
// distance is scaled so discs come out round.
const cellAspect = 2.0

const (
	fillRune     = '●'
	strokeRune   = '○'
	backdropRune = '·'
)

type cell struct {
	ch    rune
	color lipgloss.Color
	hits  int
}

// Canvas is the drawing surface: a grid of terminal cells addressed in
// stimulus pixel coordinates. Clear and DrawDisc are the only
// primitives the renderer needs.
//
// Hot, when set, is blended into cells that accumulate multiple hits
// between clears, which is what shades the overlay inspection mode.
// Backdrop, when set, paints empty cells as faint dots so the stimulus
// extent stays visible; the scheme's aoi role feeds it.
type Canvas struct {
	cols, rows   int
	stimW, stimH float64
	cells        []cell

	Hot      lipgloss.Color
	Backdrop lipgloss.Color
}

// NewCanvas sizes a canvas of cols x rows cells mapping the stimulus
// coordinate space stimW x stimH.
func NewCanvas(cols, rows int, stimW, stimH float64) *Canvas {
	c := &Canvas{cols: cols, rows: rows, stimW: stimW, stimH: stimH}
	c.cells = make([]cell, cols*rows)
	c.Clear()
	return c
}

// Resize re-shapes the cell grid, clearing it. Called on terminal
// resize.
func (c *Canvas) Resize(cols, rows int) {
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	c.cols, c.rows = cols, rows
	c.cells = make([]cell, cols*rows)
	c.Clear()
}

// Clear erases every cell.
func (c *Canvas) Clear() {
	for i := range c.cells {
		c.cells[i] = cell{ch: ' '}
	}
}

// DrawDisc draws a filled, stroked disc of the given radius (in cell
// widths) centered at the point's stimulus coordinates. Points outside
// the stimulus space are clipped cell-by-cell.
func (c *Canvas) DrawDisc(p dataset.Point, style GroupStyle, radius int) {
	if c.stimW <= 0 || c.stimH <= 0 {
		return
	}
	cx := int(p.X / c.stimW * float64(c.cols))
	cy := int(p.Y / c.stimH * float64(c.rows))
	if radius < 0 {
		radius = 0
	}
	r2 := float64(radius * radius)
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			d2 := float64(dx*dx) + float64(dy)*cellAspect*float64(dy)*cellAspect
			if d2 > r2 && !(dx == 0 && dy == 0) {
				continue
			}
			onRim := radius > 0 && d2 > float64((radius-1)*(radius-1))
			ch, col := fillRune, style.Fill
			if onRim {
				ch, col = strokeRune, style.Stroke
			}
			c.set(cx+dx, cy+dy, ch, col)
		}
	}
}

func (c *Canvas) set(x, y int, ch rune, col lipgloss.Color) {
	if x < 0 || x >= c.cols || y < 0 || y >= c.rows {
		return
	}
	cl := &c.cells[y*c.cols+x]
	cl.ch = ch
	cl.color = col
	cl.hits++
}

// String assembles the grid into colored terminal rows. Cells hit more
// than once since the last clear shade toward Hot.
func (c *Canvas) String() string {
	var b strings.Builder
	reset := termenv.CSI + "0m"
	for y := 0; y < c.rows; y++ {
		var last lipgloss.Color
		for x := 0; x < c.cols; x++ {
			cl := c.cells[y*c.cols+x]
			ch := cl.ch
			col := cl.color
			if cl.hits > 1 && c.Hot != "" {
				col = heatColor(cl.color, c.Hot, cl.hits)
			}
			if ch == ' ' && c.Backdrop != "" {
				ch = backdropRune
				col = c.Backdrop
			}
			if col != last {
				if col == "" {
					b.WriteString(reset)
				} else {
					b.WriteString(fgSeq(col))
				}
				last = col
			}
			b.WriteRune(ch)
		}
		if last != "" {
			b.WriteString(reset)
		}
		if y < c.rows-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// Size reports the grid dimensions in cells.
func (c *Canvas) Size() (cols, rows int) { return c.cols, c.rows }

// CellAt exposes a cell's rune for tests.
func (c *Canvas) CellAt(x, y int) rune {
	if x < 0 || x >= c.cols || y < 0 || y >= c.rows {
		return 0
	}
	return c.cells[y*c.cols+x].ch
}

// HitsAt exposes a cell's accumulated hit count for tests.
func (c *Canvas) HitsAt(x, y int) int {
	if x < 0 || x >= c.cols || y < 0 || y >= c.rows {
		return 0
	}
	return c.cells[y*c.cols+x].hits
}

// heatColor blends a cell's color toward hot as hits accumulate,
// saturating at 8 hits.
func heatColor(base, hot lipgloss.Color, hits int) lipgloss.Color {
	from, err := colorful.Hex(string(base))
	if err != nil {
		return base
	}
	to, err := colorful.Hex(string(hot))
	if err != nil {
		return base
	}
	t := float64(hits) / 8.0
	if t > 1 {
		t = 1
	}
	return lipgloss.Color(from.BlendLab(to, t).Clamped().Hex())
}

func fgSeq(c lipgloss.Color) string {
	profile := lipgloss.ColorProfile()
	tc := profile.Color(string(c))
	if tc == nil {
		return ""
	}
	return termenv.CSI + tc.Sequence(false) + "m"
}
