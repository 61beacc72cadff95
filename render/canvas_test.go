package render

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/njvack/gazehound/dataset"
)

func testStyle() GroupStyle {
	return GroupStyle{Fill: lipgloss.Color("#f5c542"), Stroke: lipgloss.Color("#807030")}
}

func TestDrawDiscCenterCell(t *testing.T) {
	c := NewCanvas(40, 20, 800, 600)

	// stimulus center maps to grid center
	c.DrawDisc(dataset.Point{X: 400, Y: 300, Valid: true}, testStyle(), 0)
	assert.Equal(t, fillRune, c.CellAt(20, 10))
}

func TestDrawDiscRadiusPaintsNeighbors(t *testing.T) {
	c := NewCanvas(40, 20, 800, 600)

	c.DrawDisc(dataset.Point{X: 400, Y: 300, Valid: true}, testStyle(), 1)
	assert.Equal(t, fillRune, c.CellAt(20, 10))
	// horizontal neighbors are on the rim
	assert.Equal(t, strokeRune, c.CellAt(19, 10))
	assert.Equal(t, strokeRune, c.CellAt(21, 10))
}

func TestDrawDiscClipsOutsideGrid(t *testing.T) {
	c := NewCanvas(10, 5, 800, 600)

	// corner and far outside: must not panic
	c.DrawDisc(dataset.Point{X: 0, Y: 0, Valid: true}, testStyle(), 2)
	c.DrawDisc(dataset.Point{X: 5000, Y: -200, Valid: true}, testStyle(), 2)
	assert.Equal(t, fillRune, c.CellAt(0, 0))
}

func TestClearErasesEverything(t *testing.T) {
	c := NewCanvas(10, 5, 800, 600)
	c.DrawDisc(dataset.Point{X: 400, Y: 300, Valid: true}, testStyle(), 1)

	c.Clear()
	for y := 0; y < 5; y++ {
		for x := 0; x < 10; x++ {
			assert.Equal(t, ' ', c.CellAt(x, y))
			assert.Zero(t, c.HitsAt(x, y))
		}
	}
}

func TestHitsAccumulateBetweenClears(t *testing.T) {
	c := NewCanvas(10, 5, 800, 600)
	p := dataset.Point{X: 400, Y: 300, Valid: true}

	c.DrawDisc(p, testStyle(), 0)
	c.DrawDisc(p, testStyle(), 0)
	c.DrawDisc(p, testStyle(), 0)
	assert.Equal(t, 3, c.HitsAt(5, 2))

	c.Clear()
	assert.Zero(t, c.HitsAt(5, 2))
}

func TestStringShape(t *testing.T) {
	c := NewCanvas(12, 4, 800, 600)
	s := c.String()
	assert.Equal(t, 3, strings.Count(s, "\n"))
}

func TestStringBackdropFillsEmptyCells(t *testing.T) {
	c := NewCanvas(6, 2, 800, 600)
	assert.NotContains(t, c.String(), string(backdropRune))

	c.Backdrop = lipgloss.Color("#3a3a3a")
	s := c.String()
	assert.Equal(t, 12, strings.Count(s, string(backdropRune)))
	// backdrop is paint only; the grid itself stays empty
	assert.Equal(t, ' ', c.CellAt(0, 0))

	c.DrawDisc(dataset.Point{X: 400, Y: 300, Valid: true}, testStyle(), 0)
	assert.Equal(t, 11, strings.Count(c.String(), string(backdropRune)))
}

func TestResize(t *testing.T) {
	c := NewCanvas(10, 5, 800, 600)
	c.DrawDisc(dataset.Point{X: 400, Y: 300, Valid: true}, testStyle(), 0)

	c.Resize(20, 8)
	cols, rows := c.Size()
	require.Equal(t, 20, cols)
	require.Equal(t, 8, rows)
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			assert.Equal(t, ' ', c.CellAt(x, y))
		}
	}
}
