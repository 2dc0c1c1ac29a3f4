package splash

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrEmptyImage is returned when an image has no lines.
	ErrEmptyImage = errors.New("splash: empty image")

	// ErrInvalidOption is returned for out-of-range render options.
	ErrInvalidOption = errors.New("splash: invalid option")
)

// Options is the render configuration, fixed for the lifetime of a
// Renderer. Zero Width/Height mean "derive": current terminal width,
// image height plus two rows.
type Options struct {
	// Gap is the minimum number of blank columns between repeated
	// copies of the image. The effective gap grows when the viewport
	// is wider than the image so at most one copy is visible at rest.
	Gap int

	// FrameDelay is the pause between scroll offsets.
	FrameDelay time.Duration

	// LoopDelay is the pause between full scroll passes.
	LoopDelay time.Duration

	// Width and Height resize the terminal before rendering.
	Width  int
	Height int

	// HideCursor keeps the cursor hidden for the whole run and
	// re-asserts it every frame (a resize can reset visibility).
	HideCursor bool

	// Raise asks the terminal to bring its window to the front
	// before rendering. Best effort.
	Raise bool
}

// Validate rejects options the render loop cannot run with.
func (o Options) Validate() error {
	if o.Gap < 0 {
		return fmt.Errorf("%w: gap %d is negative", ErrInvalidOption, o.Gap)
	}
	if o.FrameDelay <= 0 {
		return fmt.Errorf("%w: frame delay %v is not positive", ErrInvalidOption, o.FrameDelay)
	}
	if o.LoopDelay <= 0 {
		return fmt.Errorf("%w: loop delay %v is not positive", ErrInvalidOption, o.LoopDelay)
	}
	if o.Width < 0 {
		return fmt.Errorf("%w: width %d is negative", ErrInvalidOption, o.Width)
	}
	if o.Height < 0 {
		return fmt.Errorf("%w: height %d is negative", ErrInvalidOption, o.Height)
	}
	return nil
}
