package dataset

import (
	"errors"
	"fmt"
)

// ErrMalformed is returned when a loaded dataset fails validation.
var ErrMalformed = errors.New("malformed dataset")

// Point is one gaze sample. Valid is false for samples where the tracker
// lost the eye (blinks etc.); invalid points are never drawn.
type Point struct {
	X     float64
	Y     float64
	Valid bool
}

// ScanPath is a viewer's gaze samples for one stimulus, one entry per
// sample index at the dataset's fixed sampling rate.
type ScanPath []Point

// Viewer is one recorded subject. Every viewer belongs to exactly one group.
type Viewer struct {
	Name  string
	Group string
}

// ViewerPoint pairs a viewer with their sample at some index. The render
// path consumes these without needing to know about scan paths.
type ViewerPoint struct {
	Viewer Viewer
	Point  Point
}

// ViewDataset is the immutable recording: stimuli shown, viewers recorded,
// and per (stimulus, viewer) scan paths. Loaded once, never mutated.
type ViewDataset struct {
	Stimuli          []string
	StimulusImages   map[string]string
	Viewers          []Viewer
	ViewerGroups     []string
	ViewData         map[string]map[string]ScanPath
	SamplesPerSecond float64

	directory map[string]int // viewer name -> index into Viewers
}

// ViewerIndex looks a viewer up by name.
func (d *ViewDataset) ViewerIndex(name string) (int, bool) {
	i, ok := d.directory[name]
	return i, ok
}

func (d *ViewDataset) buildDirectory() {
	d.directory = make(map[string]int, len(d.Viewers))
	for i, v := range d.Viewers {
		d.directory[v.Name] = i
	}
}

// Validate checks the structural invariants the rest of the program
// assumes. All failures wrap ErrMalformed.
func (d *ViewDataset) Validate() error {
	if d.SamplesPerSecond <= 0 {
		return fmt.Errorf("%w: samples_per_second must be positive (got %v)", ErrMalformed, d.SamplesPerSecond)
	}
	if len(d.Stimuli) == 0 {
		return fmt.Errorf("%w: no stimuli", ErrMalformed)
	}
	groups := make(map[string]bool, len(d.ViewerGroups))
	for _, g := range d.ViewerGroups {
		groups[g] = true
	}
	for _, v := range d.Viewers {
		if v.Name == "" {
			return fmt.Errorf("%w: viewer with empty name", ErrMalformed)
		}
		if !groups[v.Group] {
			return fmt.Errorf("%w: viewer %q references unknown group %q", ErrMalformed, v.Name, v.Group)
		}
	}
	stims := make(map[string]bool, len(d.Stimuli))
	for _, s := range d.Stimuli {
		stims[s] = true
	}
	if d.directory == nil {
		d.buildDirectory()
	}
	for stim, byViewer := range d.ViewData {
		if !stims[stim] {
			return fmt.Errorf("%w: view data for unlisted stimulus %q", ErrMalformed, stim)
		}
		for name := range byViewer {
			if _, ok := d.directory[name]; !ok {
				return fmt.Errorf("%w: view data for unlisted viewer %q (stimulus %q)", ErrMalformed, name, stim)
			}
		}
	}
	return nil
}
