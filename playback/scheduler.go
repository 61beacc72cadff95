package playback

import (
	"errors"
	"fmt"
	"time"

	"github.com/njvack/gazehound/dataset"
	"github.com/njvack/gazehound/logging"
)

// ErrInvalidSpeed is returned for a non-positive speed multiplier.
var ErrInvalidSpeed = errors.New("speed multiplier must be positive")

// FrameDrawer receives the point set for each rendered frame.
type FrameDrawer interface {
	DrawFrame(points []dataset.ViewerPoint)
}

// Scheduler owns all playback state and the frame-loop timing. It is
// the only writer of that state; the UI drives it through Play, Pause,
// SetSpeed and Step and reads position back through the accessors.
//
// The loop is cooperative: Step runs one iteration to completion and
// the caller defers the next one (the Bubble Tea model does this with
// tea.Tick). At most one iteration is ever in flight.
type Scheduler struct {
	session *Session
	frames  FrameDrawer

	now func() time.Time
	fps int

	playing bool
	speed   float64
	current int
	offset  int
	epoch   time.Time
}

// NewScheduler wires a scheduler to a session and a frame drawer.
// targetFps governs redraw granularity only; playback speed comes
// entirely from elapsed time. now defaults to time.Now when nil.
func NewScheduler(session *Session, frames FrameDrawer, targetFps int, now func() time.Time) *Scheduler {
	if now == nil {
		now = time.Now
	}
	return &Scheduler{
		session: session,
		frames:  frames,
		now:     now,
		fps:     targetFps,
		speed:   1.0,
	}
}

// Play starts (or resumes) playback. With fromStart, or with the index
// already at the last sample, playback restarts from 0. The first frame
// is drawn synchronously before Play returns. Playing while already
// playing is a no-op.
func (s *Scheduler) Play(fromStart bool) {
	if s.playing {
		return
	}
	if fromStart || s.current >= s.session.Length()-1 {
		s.current = 0
		s.offset = 0
	}
	s.epoch = s.now()
	s.playing = true
	logging.Debugf("scheduler: play fromStart=%v offset=%d", fromStart, s.offset)
	s.Step()
}

// Pause stops the loop without resetting position; the next Play(false)
// resumes from the last rendered index. Pausing while stopped is a
// no-op.
func (s *Scheduler) Pause() {
	if !s.playing {
		return
	}
	s.playing = false
	s.offset = s.current
	logging.Debugf("scheduler: paused at index %d", s.current)
}

// SetSpeed changes the multiplier for time consumed from now on. While
// playing it rebases the epoch so already-elapsed time is not rescaled.
func (s *Scheduler) SetSpeed(multiplier float64) error {
	if !(multiplier > 0) {
		return fmt.Errorf("%w: %v", ErrInvalidSpeed, multiplier)
	}
	if s.playing {
		s.offset = s.current
		s.epoch = s.now()
	}
	s.speed = multiplier
	return nil
}

// Step runs one frame-loop iteration and reports whether the loop is
// still running (i.e. whether the caller should defer another Step).
//
// The next index is re-derived from absolute elapsed time each
// iteration rather than incremented, so playback speed stays accurate
// no matter how long individual draws take.
func (s *Scheduler) Step() bool {
	if !s.playing {
		return false
	}
	length := s.session.Length()
	if length == 0 {
		s.playing = false
		return false
	}

	elapsedMs := s.now().Sub(s.epoch).Milliseconds()
	next := s.offset + int(float64(elapsedMs)*s.speed*s.session.SamplesPerSecond()/1000.0)
	if next >= length {
		next = length - 1
		s.playing = false
		s.offset = s.current
	}

	// The frame drawn is the one at the index computed last iteration.
	// On the stop iteration that means the clamped final sample is not
	// itself rendered; a known boundary quirk, kept on purpose.
	s.frames.DrawFrame(s.session.PointsAt(s.current))
	s.current = next

	if !s.playing {
		logging.Debugf("scheduler: stopped at end, index %d", s.current)
	}
	return s.playing
}

// SelectStimulus switches the session to the stimulus at index and
// rewinds the playhead to the first sample. On an invalid index neither
// the selection nor the playhead changes.
func (s *Scheduler) SelectStimulus(index int) error {
	if err := s.session.SelectStimulus(index); err != nil {
		return err
	}
	s.playing = false
	s.current = 0
	s.offset = 0
	logging.Debugf("scheduler: selected stimulus %d, rewound", index)
	return nil
}

// Interval is the deferral between loop iterations.
func (s *Scheduler) Interval() time.Duration {
	return time.Second / time.Duration(s.fps)
}

// Playing reports whether the loop is running.
func (s *Scheduler) Playing() bool { return s.playing }

// CurrentIndex is the sample index of the playhead.
func (s *Scheduler) CurrentIndex() int { return s.current }

// Speed is the active speed multiplier.
func (s *Scheduler) Speed() float64 { return s.speed }
