// Package render draws gaze point sets onto a terminal cell canvas and
// maps viewer groups to palette styles.
package render

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// ErrUnknownGroup is returned when a group has no style in the active
// scheme.
var ErrUnknownGroup = errors.New("group not in color scheme")

// GroupStyle is the resolved fill/stroke pair for one viewer group.
type GroupStyle struct {
	Fill   lipgloss.Color
	Stroke lipgloss.Color
}

// ColorScheme is a named palette keyed by semantic roles. GroupRoles
// holds the groupN fills in role order; AOI feeds the canvas backdrop
// and Highlight the overlay heat shading.
type ColorScheme struct {
	Name       string
	GroupRoles []string
	AOI        string
	Highlight  string
}

var schemes = map[string]ColorScheme{
	"classic": {
		Name:       "classic",
		GroupRoles: []string{"#f5c542", "#4aa3f0"},
		AOI:        "#3a3a3a",
		Highlight:  "#ffffff",
	},
	"dusk": {
		Name:       "dusk",
		GroupRoles: []string{"#e07a5f", "#81b29a"},
		AOI:        "#2b2b2b",
		Highlight:  "#f4f1de",
	},
}

// Scheme looks a palette up by name.
func Scheme(name string) (ColorScheme, error) {
	cs, ok := schemes[name]
	if !ok {
		return ColorScheme{}, fmt.Errorf("unknown color scheme %q", name)
	}
	return cs, nil
}

// SchemeNames lists the registered palettes.
func SchemeNames() []string {
	names := make([]string, 0, len(schemes))
	for name := range schemes {
		names = append(names, name)
	}
	return names
}

// StyleMap maps group identifiers to resolved styles.
type StyleMap map[string]GroupStyle

// GroupStyles assigns each group a palette role by its ordinal position
// modulo the number of group roles. This is order-dependent on purpose:
// reordering the dataset's group list changes the colors, and this is
// the one place that policy lives.
func (cs ColorScheme) GroupStyles(groups []string) StyleMap {
	m := make(StyleMap, len(groups))
	if len(cs.GroupRoles) == 0 {
		return m
	}
	for i, g := range groups {
		fill := cs.GroupRoles[i%len(cs.GroupRoles)]
		m[g] = GroupStyle{
			Fill:   lipgloss.Color(fill),
			Stroke: strokeFor(fill),
		}
	}
	return m
}

// Lookup resolves a group's style, failing with ErrUnknownGroup when
// the group is absent from the scheme.
func (m StyleMap) Lookup(group string) (GroupStyle, error) {
	st, ok := m[group]
	if !ok {
		return GroupStyle{}, fmt.Errorf("%w: %q", ErrUnknownGroup, group)
	}
	return st, nil
}

// strokeFor darkens a fill color for the disc outline.
func strokeFor(hex string) lipgloss.Color {
	c, err := colorful.Hex(hex)
	if err != nil {
		return lipgloss.Color(hex)
	}
	dark := c.BlendLab(colorful.Color{}, 0.45).Clamped()
	return lipgloss.Color(dark.Hex())
}
