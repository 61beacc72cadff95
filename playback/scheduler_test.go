package playback

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/njvack/gazehound/dataset"
)

// fakeClock advances only when told to, so elapsed time is exact.
type fakeClock struct {
	t time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{t: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) now() time.Time          { return c.t }
func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

// recordingDrawer captures every frame the scheduler renders.
type recordingDrawer struct {
	frames [][]dataset.ViewerPoint
}

func (d *recordingDrawer) DrawFrame(points []dataset.ViewerPoint) {
	d.frames = append(d.frames, points)
}

// schedulerFixture builds a 90-sample, 30 Hz session with two viewers.
func schedulerFixture(t *testing.T) (*Scheduler, *Session, *fakeClock, *recordingDrawer) {
	t.Helper()
	path := make(dataset.ScanPath, 90)
	for i := range path {
		path[i] = dataset.Point{X: float64(i), Y: float64(i), Valid: true}
	}
	ds := &dataset.ViewDataset{
		Stimuli:      []string{"forest", "faces"},
		Viewers:      []dataset.Viewer{{Name: "v1", Group: "a"}, {Name: "v2", Group: "b"}},
		ViewerGroups: []string{"a", "b"},
		ViewData: map[string]map[string]dataset.ScanPath{
			"forest": {"v1": path, "v2": path[:45]},
			"faces":  {"v1": path[:10]},
		},
		SamplesPerSecond: 30,
	}
	require.NoError(t, ds.Validate())

	sess := NewSession(ds)
	clock := newFakeClock()
	drawer := &recordingDrawer{}
	sched := NewScheduler(sess, drawer, 25, clock.now)
	return sched, sess, clock, drawer
}

func TestPlayDrawsFirstFrameSynchronously(t *testing.T) {
	sched, _, _, drawer := schedulerFixture(t)

	sched.Play(true)

	require.Len(t, drawer.frames, 1)
	assert.True(t, sched.Playing())
	assert.Equal(t, 0, sched.CurrentIndex())
	// first drawn frame is the one at the resume offset
	assert.Len(t, drawer.frames[0], 2)
}

func TestIndexFollowsElapsedTime(t *testing.T) {
	sched, _, clock, _ := schedulerFixture(t)

	sched.Play(true)
	clock.advance(1000 * time.Millisecond)
	sched.Step()

	// 1000ms * 1.0 * 30/s = sample 30
	assert.Equal(t, 30, sched.CurrentIndex())
}

func TestIndexScalesWithSpeed(t *testing.T) {
	sched, _, clock, _ := schedulerFixture(t)

	require.NoError(t, sched.SetSpeed(2))
	sched.Play(true)
	clock.advance(1000 * time.Millisecond)
	sched.Step()

	assert.Equal(t, 60, sched.CurrentIndex())
}

func TestIndicesNeverRegress(t *testing.T) {
	sched, _, clock, _ := schedulerFixture(t)

	sched.Play(true)
	last := sched.CurrentIndex()
	// uneven gaps, as if draws took variable time
	for _, gap := range []time.Duration{3, 47, 12, 110, 5, 260, 33} {
		clock.advance(gap * time.Millisecond)
		sched.Step()
		assert.GreaterOrEqual(t, sched.CurrentIndex(), last)
		last = sched.CurrentIndex()
	}
}

func TestPauseResumeKeepsPosition(t *testing.T) {
	sched, _, clock, _ := schedulerFixture(t)

	sched.Play(true)
	clock.advance(500 * time.Millisecond)
	sched.Step()
	require.Equal(t, 15, sched.CurrentIndex())

	sched.Pause()
	assert.False(t, sched.Playing())

	// wall-clock time passing while paused must not advance playback
	clock.advance(time.Hour)
	sched.Play(false)
	assert.Equal(t, 15, sched.CurrentIndex())
}

func TestPlayFromStartAlwaysResets(t *testing.T) {
	sched, _, clock, _ := schedulerFixture(t)

	sched.Play(true)
	clock.advance(time.Second)
	sched.Step()
	sched.Pause()
	require.NotZero(t, sched.CurrentIndex())

	sched.Play(true)
	assert.Equal(t, 0, sched.CurrentIndex())
}

func TestEndOfSessionClampsAndStops(t *testing.T) {
	sched, _, clock, drawer := schedulerFixture(t)

	sched.Play(true)
	clock.advance(time.Second)
	running := sched.Step() // index 30
	require.True(t, running)

	clock.advance(10 * time.Second)
	running = sched.Step()

	assert.False(t, running)
	assert.False(t, sched.Playing())
	assert.Equal(t, 89, sched.CurrentIndex())
	// the stop iteration draws the index computed the iteration before
	lastFrame := drawer.frames[len(drawer.frames)-1]
	require.NotEmpty(t, lastFrame)
	assert.Equal(t, float64(30), lastFrame[0].Point.X)
}

func TestPlayAfterEndRestarts(t *testing.T) {
	sched, _, clock, _ := schedulerFixture(t)

	sched.Play(true)
	clock.advance(10 * time.Second)
	sched.Step()
	require.Equal(t, 89, sched.CurrentIndex())

	sched.Play(false)
	assert.Equal(t, 0, sched.CurrentIndex())
	assert.True(t, sched.Playing())
}

func TestSelectStimulusRewindsPlayback(t *testing.T) {
	sched, sess, clock, _ := schedulerFixture(t)

	sched.Play(true)
	clock.advance(500 * time.Millisecond)
	sched.Step()
	require.Equal(t, 15, sched.CurrentIndex())

	require.NoError(t, sched.SelectStimulus(1))

	assert.Equal(t, 1, sess.ActiveIndex())
	assert.False(t, sched.Playing())
	assert.Equal(t, 0, sched.CurrentIndex())

	// a fresh play of the new stimulus starts at its first sample
	sched.Play(false)
	clock.advance(100 * time.Millisecond)
	sched.Step()
	assert.Equal(t, 3, sched.CurrentIndex())
}

func TestSelectStimulusInvalidLeavesStateAlone(t *testing.T) {
	sched, sess, clock, _ := schedulerFixture(t)

	sched.Play(true)
	clock.advance(500 * time.Millisecond)
	sched.Step()
	require.Equal(t, 15, sched.CurrentIndex())

	err := sched.SelectStimulus(7)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidIndex))
	assert.Equal(t, 0, sess.ActiveIndex())
	assert.True(t, sched.Playing())
	assert.Equal(t, 15, sched.CurrentIndex())
}

func TestSetSpeedRejectsNonPositive(t *testing.T) {
	sched, _, _, _ := schedulerFixture(t)

	for _, bad := range []float64{0, -1} {
		err := sched.SetSpeed(bad)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrInvalidSpeed))
	}
	assert.Equal(t, 1.0, sched.Speed())
}

func TestSetSpeedAppliesOnlyForward(t *testing.T) {
	sched, _, clock, _ := schedulerFixture(t)

	sched.Play(true)
	clock.advance(1000 * time.Millisecond)
	sched.Step()
	require.Equal(t, 30, sched.CurrentIndex())

	// doubling the speed must not rescale the second already consumed
	require.NoError(t, sched.SetSpeed(2))
	clock.advance(500 * time.Millisecond)
	sched.Step()
	assert.Equal(t, 60, sched.CurrentIndex())
}

func TestPlayWhileRunningIsNoop(t *testing.T) {
	sched, _, clock, drawer := schedulerFixture(t)

	sched.Play(true)
	clock.advance(500 * time.Millisecond)
	sched.Step()
	before := sched.CurrentIndex()
	frames := len(drawer.frames)

	sched.Play(true)
	assert.Equal(t, before, sched.CurrentIndex())
	assert.Len(t, drawer.frames, frames)
}

func TestPauseWhileStoppedIsNoop(t *testing.T) {
	sched, _, _, _ := schedulerFixture(t)

	sched.Pause()
	assert.False(t, sched.Playing())
	assert.Equal(t, 0, sched.CurrentIndex())
}

func TestEmptySessionStopsWithoutDrawing(t *testing.T) {
	ds := &dataset.ViewDataset{
		Stimuli:          []string{"blank"},
		Viewers:          []dataset.Viewer{},
		ViewerGroups:     []string{},
		ViewData:         map[string]map[string]dataset.ScanPath{},
		SamplesPerSecond: 30,
	}
	sess := NewSession(ds)
	clock := newFakeClock()
	drawer := &recordingDrawer{}
	sched := NewScheduler(sess, drawer, 25, clock.now)

	sched.Play(true)

	assert.False(t, sched.Playing())
	assert.Empty(t, drawer.frames)
	assert.Equal(t, 0, sched.CurrentIndex())
}

func TestInterval(t *testing.T) {
	sched, _, _, _ := schedulerFixture(t)
	assert.Equal(t, time.Second/25, sched.Interval())
}
