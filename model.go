package main

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/njvack/gazehound/clipboard"
	"github.com/njvack/gazehound/dataset"
	"github.com/njvack/gazehound/dialogs"
	"github.com/njvack/gazehound/logging"
	"github.com/njvack/gazehound/playback"
	"github.com/njvack/gazehound/render"
)

// frameTickMsg drives one scheduler iteration. gen invalidates ticks
// scheduled before the latest pause/replay, so only one loop chain is
// ever live.
type frameTickMsg struct{ gen int }

var speedLadder = []float64{0.25, 0.5, 1.0, 1.5, 2.0, 4.0}

type model struct {
	cfg Config
	ds  *dataset.ViewDataset

	session  *playback.Session
	sched    *playback.Scheduler
	canvas   *render.Canvas
	renderer *render.FrameRenderer
	scheme   render.ColorScheme
	styles   render.StyleMap

	viewport viewport.Model
	ready    bool
	frameGen int

	ui           uiState
	activeDialog dialogs.Dialog

	terminalWidth  int
	terminalHeight int
}

func newModel(cfg Config, ds *dataset.ViewDataset) (*model, error) {
	scheme, err := render.Scheme(cfg.Scheme)
	if err != nil {
		return nil, err
	}
	styles := scheme.GroupStyles(ds.ViewerGroups)
	// Style resolution happens once, here; an unknown group is a
	// startup error, not a per-frame one.
	for _, v := range ds.Viewers {
		if _, err := styles.Lookup(v.Group); err != nil {
			return nil, err
		}
	}

	session := playback.NewSession(ds)
	canvas := render.NewCanvas(80, 24, cfg.StimulusWidth, cfg.StimulusHeight)
	canvas.Hot = lipgloss.Color(scheme.Highlight)
	canvas.Backdrop = lipgloss.Color(scheme.AOI)
	renderer := render.NewFrameRenderer(canvas, styles, cfg.PointRadius)
	sched := playback.NewScheduler(session, renderer, cfg.TargetFPS, nil)
	if err := sched.SetSpeed(cfg.Speed); err != nil {
		return nil, err
	}

	return &model{
		cfg:      cfg,
		ds:       ds,
		session:  session,
		sched:    sched,
		canvas:   canvas,
		renderer: renderer,
		scheme:   scheme,
		styles:   styles,
	}, nil
}

func (m *model) Init() tea.Cmd {
	logging.Infof("gazehound: initialised, %d stimuli", m.session.StimulusCount())
	return nil
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.updateKey(msg)

	case tea.WindowSizeMsg:
		m.terminalWidth, m.terminalHeight = msg.Width, msg.Height
		m.viewport = viewport.New(msg.Width-6, msg.Height-7)
		m.canvas.Resize(m.viewport.Width, m.viewport.Height)
		m.ready = true
		m.redrawStill()
		return m, nil

	case frameTickMsg:
		return m.updateFrameTick(msg)

	case clearNoticeMsg:
		if msg.id == m.ui.noticeSeq {
			m.ui.noticeMsg = ""
			m.ui.noticeType = ""
		}
		return m, nil
	}

	return m, nil
}

func (m *model) updateFrameTick(msg frameTickMsg) (tea.Model, tea.Cmd) {
	if msg.gen != m.frameGen {
		logging.Debugf("frame tick gen %d stale (current %d), dropping", msg.gen, m.frameGen)
		return m, nil
	}
	running := m.sched.Step()
	m.refreshCanvas()
	if running {
		return m, m.frameTick()
	}
	return m, m.startNotice("End of sequence", "info", noticeDuration)
}

func (m *model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.activeDialog != nil && m.activeDialog.IsVisible() {
		d, cmd := m.activeDialog.Update(msg)
		m.activeDialog = d
		return m, cmd
	}

	switch {
	case key.Matches(msg, Keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, Keys.PlayPause):
		if m.sched.Playing() {
			m.sched.Pause()
			m.frameGen++
			return m, m.startNotice("Paused", "info", noticeDuration)
		}
		return m, m.startPlayback(false)

	case key.Matches(msg, Keys.Restart):
		return m, m.startPlayback(true)

	case key.Matches(msg, Keys.NextStim):
		return m, m.selectStimulus(m.session.ActiveIndex() + 1)

	case key.Matches(msg, Keys.PrevStim):
		return m, m.selectStimulus(m.session.ActiveIndex() - 1)

	case key.Matches(msg, Keys.SpeedUp):
		return m, m.changeSpeed(+1)

	case key.Matches(msg, Keys.SpeedDown):
		return m, m.changeSpeed(-1)

	case key.Matches(msg, Keys.Overlay):
		m.ui.overlay = !m.ui.overlay
		if m.ui.overlay {
			m.sched.Pause()
			m.frameGen++
			m.renderer.RenderAllFrames(m.session)
			m.refreshCanvas()
			return m, nil
		}
		m.redrawStill()
		return m, nil

	case key.Matches(msg, Keys.OpenHelp):
		m.activeDialog = dialogs.NewHelp(Keys.Legend())
		return m, nil

	case key.Matches(msg, Keys.CopyStatus):
		if err := clipboard.Copy(m.statusLine()); err != nil {
			return m, m.startNotice("Copy failed: "+err.Error(), "error", noticeDuration)
		}
		return m, m.startNotice("Status copied", "success", noticeDuration)
	}

	return m, nil
}

// startPlayback leaves overlay mode, starts the scheduler (which draws
// its first frame synchronously) and arms the tick chain.
func (m *model) startPlayback(fromStart bool) tea.Cmd {
	m.ui.overlay = false
	m.frameGen++
	m.sched.Play(fromStart)
	m.refreshCanvas()
	if !m.sched.Playing() {
		// empty session: Play stops straight away
		return m.startNotice("No samples for this stimulus", "warn", noticeDuration)
	}
	return m.frameTick()
}

func (m *model) frameTick() tea.Cmd {
	gen := m.frameGen
	return tea.Tick(m.sched.Interval(), func(time.Time) tea.Msg {
		return frameTickMsg{gen: gen}
	})
}

func (m *model) selectStimulus(index int) tea.Cmd {
	if index < 0 || index >= m.session.StimulusCount() {
		return nil // already at the edge of the navigation list
	}
	if err := m.sched.SelectStimulus(index); err != nil {
		return m.startNotice(err.Error(), "error", noticeDuration)
	}
	m.frameGen++
	if m.ui.overlay {
		m.renderer.RenderAllFrames(m.session)
		m.refreshCanvas()
		return nil
	}
	m.redrawStill()
	return nil
}

func (m *model) changeSpeed(dir int) tea.Cmd {
	next := m.sched.Speed()
	if dir > 0 {
		for _, s := range speedLadder {
			if s > m.sched.Speed() {
				next = s
				break
			}
		}
	} else {
		for i := len(speedLadder) - 1; i >= 0; i-- {
			if speedLadder[i] < m.sched.Speed() {
				next = speedLadder[i]
				break
			}
		}
	}
	if err := m.sched.SetSpeed(next); err != nil {
		return m.startNotice(err.Error(), "error", noticeDuration)
	}
	return m.startNotice(fmt.Sprintf("Speed %gx", next), "info", noticeDuration)
}

// redrawStill paints the current playhead frame outside the loop, e.g.
// after a resize or stimulus change.
func (m *model) redrawStill() {
	m.renderer.DrawFrame(m.session.PointsAt(m.sched.CurrentIndex()))
	m.refreshCanvas()
}

func (m *model) refreshCanvas() {
	if m.ready {
		m.viewport.SetContent(m.canvas.String())
	}
}

func (m *model) statusLine() string {
	state := "stopped"
	if m.sched.Playing() {
		state = "playing"
	}
	return fmt.Sprintf("%s sample %d/%d speed %gx %s",
		m.session.ActiveStimulus(),
		m.sched.CurrentIndex(),
		m.session.Length(),
		m.sched.Speed(),
		state,
	)
}
