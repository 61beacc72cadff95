// Package playback holds the stimulus session and the playback
// scheduler: the timing core that turns elapsed wall-clock time into
// sample indices.
package playback

import (
	"errors"
	"fmt"

	"github.com/njvack/gazehound/dataset"
)

// ErrInvalidIndex is returned for a stimulus index outside the dataset.
var ErrInvalidIndex = errors.New("stimulus index out of range")

// Session exposes the active stimulus's point data and its derived
// length. The length is cached on selection so the frame loop never
// pays O(viewers) per frame.
type Session struct {
	ds     *dataset.ViewDataset
	active int
	length int
}

// NewSession starts a session on the dataset's first stimulus.
func NewSession(ds *dataset.ViewDataset) *Session {
	s := &Session{ds: ds}
	s.length = s.computeLength(0)
	return s
}

// SelectStimulus makes the stimulus at index active and recomputes the
// session length. Out-of-range indices fail with ErrInvalidIndex and
// leave the session untouched.
func (s *Session) SelectStimulus(index int) error {
	if index < 0 || index >= len(s.ds.Stimuli) {
		return fmt.Errorf("%w: %d (have %d stimuli)", ErrInvalidIndex, index, len(s.ds.Stimuli))
	}
	s.active = index
	s.length = s.computeLength(index)
	return nil
}

func (s *Session) computeLength(index int) int {
	if index < 0 || index >= len(s.ds.Stimuli) {
		return 0
	}
	max := 0
	for _, path := range s.ds.ViewData[s.ds.Stimuli[index]] {
		if len(path) > max {
			max = len(path)
		}
	}
	return max
}

// PointsAt returns every viewer's present point at the given sample
// index, in dataset viewer order. Out-of-range indices yield an empty
// result, never an error; viewers with shorter or absent paths simply
// contribute nothing.
func (s *Session) PointsAt(sampleIndex int) []dataset.ViewerPoint {
	if sampleIndex < 0 || sampleIndex >= s.length {
		return nil
	}
	byViewer := s.ds.ViewData[s.ds.Stimuli[s.active]]
	var out []dataset.ViewerPoint
	for _, v := range s.ds.Viewers {
		path, ok := byViewer[v.Name]
		if !ok || sampleIndex >= len(path) {
			continue
		}
		p := path[sampleIndex]
		if !p.Valid {
			continue
		}
		out = append(out, dataset.ViewerPoint{Viewer: v, Point: p})
	}
	return out
}

// Length is the cached session length: the longest scan path any viewer
// recorded for the active stimulus, or 0 when nobody has data.
func (s *Session) Length() int { return s.length }

// ActiveIndex is the index of the active stimulus.
func (s *Session) ActiveIndex() int { return s.active }

// ActiveStimulus is the identifier of the active stimulus.
func (s *Session) ActiveStimulus() string {
	if s.active < 0 || s.active >= len(s.ds.Stimuli) {
		return ""
	}
	return s.ds.Stimuli[s.active]
}

// StimulusCount is the number of stimuli in the dataset.
func (s *Session) StimulusCount() int { return len(s.ds.Stimuli) }

// SamplesPerSecond is the dataset's fixed recording rate.
func (s *Session) SamplesPerSecond() float64 { return s.ds.SamplesPerSecond }
