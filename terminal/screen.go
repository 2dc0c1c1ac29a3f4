package terminal

import (
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"
)

// screen implements Terminal over a tcell.Screen. It tracks a logical
// cursor of its own: tcell has no notion of "the row writes go to",
// and the renderer's clear step needs that row arithmetic to stay
// consistent even when the tracked row runs past the viewport.
type screen struct {
	ts    tcell.Screen
	style tcell.Style

	mu      sync.Mutex
	col     int
	row     int
	visible bool

	initialized bool
	finalized   bool
}

// New creates a Terminal over the process's real terminal. The
// optional style is applied to everything the marquee draws.
func New(style ...tcell.Style) (Terminal, error) {
	ts, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("terminal: %w", err)
	}
	return wrap(ts, style...), nil
}

// NewSim creates a Terminal over a tcell simulation screen, returned
// alongside it so tests can inspect cell contents and inject events.
func NewSim(style ...tcell.Style) (Terminal, tcell.SimulationScreen) {
	sim := tcell.NewSimulationScreen("UTF-8")
	return wrap(sim, style...), sim
}

func wrap(ts tcell.Screen, style ...tcell.Style) *screen {
	s := &screen{ts: ts, style: tcell.StyleDefault}
	if len(style) > 0 {
		s.style = style[0]
	}
	return s
}

func (s *screen) Init() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.initialized {
		return nil
	}
	if err := s.ts.Init(); err != nil {
		return fmt.Errorf("terminal init: %w", err)
	}
	s.ts.SetStyle(s.style)
	s.ts.Clear()
	s.initialized = true
	return nil
}

func (s *screen) Fini() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized || s.finalized {
		return
	}
	s.ts.Fini()
	s.finalized = true
}

func (s *screen) Size() (int, int) {
	return s.ts.Size()
}

func (s *screen) SetSize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	s.ts.SetSize(width, height)
}

func (s *screen) WriteLine(line string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	x := s.col
	for _, r := range line {
		s.ts.SetContent(x, s.row, r, nil, s.style)
		x++
	}
	s.col = 0
	s.row++
	s.syncCursor()
}

func (s *screen) SetCursor(col, row int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if col < 0 {
		col = 0
	}
	if row < 0 {
		row = 0
	}
	s.col = col
	s.row = row
	s.syncCursor()
}

func (s *screen) CursorRow() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.row
}

func (s *screen) SetCursorVisible(visible bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.visible = visible
	s.syncCursor()
}

// syncCursor reflects the tracked cursor into tcell. Callers hold mu.
func (s *screen) syncCursor() {
	if !s.visible {
		s.ts.HideCursor()
		return
	}
	w, h := s.ts.Size()
	col, row := s.col, s.row
	if col >= w {
		col = w - 1
	}
	if row >= h {
		row = h - 1
	}
	s.ts.ShowCursor(col, row)
}

func (s *screen) Show() {
	s.ts.Show()
}

func (s *screen) Sync() {
	s.ts.Sync()
}

func (s *screen) PollEvent() tcell.Event {
	return s.ts.PollEvent()
}
