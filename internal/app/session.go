package app

import (
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"cgol/internal/core"
	"cgol/internal/render"
	"cgol/internal/telemetry"
	"cgol/pkg/sims/life"
)

// Window is the part of the windowing system the session drives.
type Window interface {
	SetSize(w, h int)
}

// Session owns all interactive state: the grid, its geometry, the play flag
// and both timers. It is driven by events and one Advance call per frame.
type Session struct {
	cfg    *Config
	clock  core.Clock
	window Window
	stats  *telemetry.Recorder
	log    *slog.Logger

	life   *life.Life
	geom   core.Geometry
	gate   *core.PeriodGate
	resize *core.Debouncer

	playing    bool
	done       bool
	generation uint64
	seed       int64
}

// NewSession allocates the grid for the configured window size.
func NewSession(cfg *Config, clock core.Clock, window Window, stats *telemetry.Recorder, logger *slog.Logger) (*Session, error) {
	if logger == nil {
		logger = slog.Default()
	}
	geom := core.NewGeometry(cfg.Window.Width, cfg.Window.Height, cfg.Grid.CellSize, cfg.Grid.MaxCols, cfg.Grid.MaxRows)
	l, err := life.New(geom.Cols, geom.Rows)
	if err != nil {
		return nil, fmt.Errorf("creating grid: %w", err)
	}
	now := clock.NowMS()
	return &Session{
		cfg:    cfg,
		clock:  clock,
		window: window,
		stats:  stats,
		log:    logger,
		life:   l,
		geom:   geom,
		gate:   core.NewPeriodGate(cfg.Period(), now),
		resize: core.NewDebouncer(cfg.ResizeDelay()),
		seed:   cfg.Simulation.Seed,
	}, nil
}

// Handle processes one event. Errors are fatal.
func (s *Session) Handle(ev Event) error {
	switch e := ev.(type) {
	case QuitEvent:
		s.done = true
	case MouseDownEvent:
		s.handleMouse(e)
	case ResizeEvent:
		return s.handleResize(e.Width, e.Height)
	case CommandEvent:
		s.handleCommand(e.Command)
	}
	return nil
}

func (s *Session) handleMouse(e MouseDownEvent) {
	switch e.Button {
	case MouseRight:
		s.TogglePlay()
	case MouseLeft:
		cx, cy, ok := s.geom.CellAt(e.X, e.Y)
		if !ok {
			return
		}
		alive := s.life.Toggle(cx, cy)
		s.log.Debug("cell toggled", "x", cx, "y", cy, "alive", alive)
	}
}

func (s *Session) handleCommand(c Command) {
	switch c {
	case CommandTogglePlay:
		s.TogglePlay()
	case CommandStepOnce:
		if !s.playing {
			s.step()
		}
	case CommandClear:
		s.life.Clear()
		s.resetGenerations()
	case CommandRandomize:
		s.life.Randomize(s.seed, s.cfg.Simulation.Density)
		s.log.Info("grid randomized", "seed", s.seed, "density", s.cfg.Simulation.Density)
		s.seed++
		s.resetGenerations()
	case CommandQuit:
		s.done = true
	}
}

func (s *Session) handleResize(realW, realH int) error {
	prev := s.geom.GridSize()
	s.geom.Resize(realW, realH)
	next := s.geom.GridSize()

	if prev != next {
		if err := s.life.Resize(next.W, next.H); err != nil {
			return fmt.Errorf("resizing grid to %dx%d: %w", next.W, next.H, err)
		}
		s.playing = false
		s.resetGenerations()
		s.log.Debug("grid resized", "cols", next.W, "rows", next.H)
	}

	if s.geom.NeedsSnap() {
		s.resize.Trigger(s.clock.NowMS())
	} else {
		s.resize.Cancel()
	}
	return nil
}

// TogglePlay flips between playing and paused and restarts the period.
func (s *Session) TogglePlay() {
	s.playing = !s.playing
	s.gate.Reset(s.clock.NowMS())
}

// Advance runs the per-frame work after events are drained: settle a pending
// resize, then take at most one simulation step.
func (s *Session) Advance() {
	now := s.clock.NowMS()

	if s.resize.Settle(now) {
		if s.geom.NeedsSnap() {
			w, h := s.geom.SnapTarget()
			s.log.Debug("snapping window", "from_w", s.geom.RealWidth, "from_h", s.geom.RealHeight, "to_w", w, "to_h", h)
			s.window.SetSize(w, h)
		}
		s.playing = false
	}

	if s.playing && s.gate.Ready(now) {
		s.step()
	}
}

func (s *Session) step() {
	st := s.life.Step()
	s.generation++
	size := s.life.Size()
	err := s.stats.Record(telemetry.GenerationStats{
		Generation: s.generation,
		ElapsedMS:  s.clock.NowMS(),
		Cols:       size.W,
		Rows:       size.H,
		Population: st.Population,
		Births:     st.Births,
		Deaths:     st.Deaths,
	})
	if err != nil {
		s.log.Warn("stats output disabled", "error", err)
	}
}

func (s *Session) resetGenerations() {
	s.generation = 0
	s.stats.Discard()
}

// Frame returns the drawing state for the current frame.
func (s *Session) Frame() render.Frame {
	return render.Frame{
		Geometry: s.geom,
		Cells:    s.life.Cells(),
		Playing:  s.playing,
		Progress: s.gate.Progress(s.clock.NowMS()),
	}
}

// NeighborCounts fills dst with per-cell neighbor counts, reallocating it if needed.
func (s *Session) NeighborCounts(dst []uint8) []uint8 {
	n := s.life.Size().Cells()
	if cap(dst) < n {
		dst = make([]uint8, n)
	}
	dst = dst[:n]
	s.life.NeighborCounts(dst)
	return dst
}

// Done reports whether the session has been asked to quit.
func (s *Session) Done() bool { return s.done }

// Playing reports whether the simulation is running.
func (s *Session) Playing() bool { return s.playing }

// Generation returns the number of steps since the last clear.
func (s *Session) Generation() uint64 { return s.generation }

// Geometry returns the current layout.
func (s *Session) Geometry() core.Geometry { return s.geom }

// Sim exposes the simulation.
func (s *Session) Sim() *life.Life { return s.life }

// Parameters implements core.ParameterProvider for the HUD.
func (s *Session) Parameters() core.ParameterSnapshot {
	state := "paused"
	if s.playing {
		state = "playing"
	}
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{Name: "Simulation", Params: []core.Parameter{
			{Key: "state", Label: "State", Type: core.ParamTypeText, Value: state},
			{Key: "generation", Label: "Generation", Type: core.ParamTypeInt, Value: strconv.FormatUint(s.generation, 10)},
			{Key: "population", Label: "Population", Type: core.ParamTypeInt, Value: strconv.Itoa(s.life.Population())},
			{Key: "period_ms", Label: "Period ms", Type: core.ParamTypeInt, Value: strconv.FormatInt(s.gate.Period().Milliseconds(), 10)},
		}},
		{Name: "Grid", Params: []core.Parameter{
			{Key: "cols", Label: "Columns", Type: core.ParamTypeInt, Value: strconv.Itoa(s.geom.Cols)},
			{Key: "rows", Label: "Rows", Type: core.ParamTypeInt, Value: strconv.Itoa(s.geom.Rows)},
			{Key: "seed", Label: "Next seed", Type: core.ParamTypeInt, Value: strconv.FormatInt(s.seed, 10)},
		}},
	}}
}

// ParameterControls implements core.ParameterControlsProvider.
func (s *Session) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "period_ms", Label: "Period ms", Step: 25, Min: 25, HasMin: true, Max: 2000, HasMax: true},
	}
}

// SetIntParameter implements core.IntParameterSetter.
func (s *Session) SetIntParameter(key string, value int) bool {
	switch key {
	case "period_ms":
		if value <= 0 {
			return false
		}
		s.gate.SetPeriod(time.Duration(value) * time.Millisecond)
		return true
	}
	return false
}

var (
	_ core.ParameterProvider         = (*Session)(nil)
	_ core.ParameterControlsProvider = (*Session)(nil)
	_ core.IntParameterSetter        = (*Session)(nil)
)
