package constants

import "time"

// Scroll timing & spacing defaults
const (
	// DefaultGap is the minimum blank gap between repeated copies of the art
	DefaultGap = 10

	// DefaultFrameDelay is the pause between scroll offsets
	DefaultFrameDelay = 100 * time.Millisecond

	// DefaultLoopDelay is the pause between full scroll passes
	DefaultLoopDelay = 2 * time.Second
)

// Viewport margins
const (
	// HeightMargin is added below the art when deriving terminal height
	HeightMargin = 2

	// ClearMargin is the extra rows cleared after each frame, covering
	// residue left when a resize shrinks the visible art height
	ClearMargin = 2
)

// Chime defaults
const (
	// DefaultChimeFreq is the loop-boundary tone frequency in Hz
	DefaultChimeFreq = 880.0

	// ChimeDuration is the length of the loop-boundary tone
	ChimeDuration = 60 * time.Millisecond
)
