package terminal

import (
	"errors"
	"io"
	"os"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/term"
)

// ErrNotInteractive is returned when stdout is not attached to a
// terminal. Sizing and cursor control are meaningless on a redirected
// stream, so callers should fail fast instead of rendering garbage.
var ErrNotInteractive = errors.New("terminal: stdout is not a terminal")

// Terminal provides the line-oriented terminal access the scroll
// renderer needs. Rows and columns are 0-indexed.
type Terminal interface {
	// Init takes over the terminal (alternate screen, raw mode).
	Init() error

	// Fini restores terminal state. Safe to call multiple times.
	Fini()

	// Size returns current terminal dimensions.
	Size() (width, height int)

	// SetSize asks the terminal to resize its window. Best effort;
	// Size reflects whatever the terminal actually settled on.
	SetSize(width, height int)

	// WriteLine writes s starting at the current cursor position and
	// advances the cursor to the start of the next row.
	WriteLine(s string)

	// SetCursor positions the cursor (clamped to non-negative).
	SetCursor(col, row int)

	// CursorRow returns the row the next WriteLine will target.
	CursorRow() int

	// SetCursorVisible shows/hides the cursor.
	SetCursorVisible(visible bool)

	// Show flushes pending writes to the terminal.
	Show()

	// Sync forces a full repaint (after a resize).
	Sync()

	// PollEvent blocks until the next terminal event, or returns nil
	// once the terminal is finalized.
	PollEvent() tcell.Event
}

// CheckInteractive reports whether stdout can host the marquee.
func CheckInteractive() error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return ErrNotInteractive
	}
	return nil
}

// Raise asks the emulator to bring its window to the front (XTWINOPS
// raise). The closest POSIX analogue to pinning a console window on
// top; silently does nothing when /dev/tty is unavailable. Call before
// Init so the sequence does not interleave with screen output.
func Raise() {
	tty, err := os.OpenFile("/dev/tty", os.O_WRONLY, 0)
	if err != nil {
		return
	}
	defer tty.Close()
	tty.Write(csiRaise)
}

// Control sequences for the paths tcell does not cover (panic
// recovery runs after the screen may already be dead).
var (
	csiCursorShow   = []byte("\x1b[?25h")
	csiAltScreenOff = []byte("\x1b[?1049l")
	csiSGR0         = []byte("\x1b[0m")
	csiAutoWrapOn   = []byte("\x1b[?7h")
	csiRIS          = []byte("\x1bc") // Reset to Initial State (emergency)
	csiRaise        = []byte("\x1b[5t")
)

// EmergencyReset attempts to restore the terminal to a sane state.
// Call from panic recovery when Fini cannot run normally.
func EmergencyReset(w io.Writer) {
	w.Write(csiCursorShow)
	w.Write(csiAltScreenOff)
	w.Write(csiSGR0)
	w.Write(csiAutoWrapOn)
	w.Write(csiRIS)

	if f, ok := w.(*os.File); ok {
		f.Sync()
	}
}
