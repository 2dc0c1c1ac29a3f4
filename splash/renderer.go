package splash

import (
	"context"
	"time"

	"github.com/lixenwraith/splash/constants"
	"github.com/lixenwraith/splash/terminal"
)

// Renderer scrolls an Image across the terminal until its context is
// cancelled. It owns no viewport state: terminal size is re-read every
// frame so a live resize takes effect on the next frame.
type Renderer struct {
	term terminal.Terminal
	img  *Image
	opts Options

	onLoop func()

	// sleep is swappable so tests can run a bounded number of frames
	// instead of pausing for real.
	sleep func(ctx context.Context, d time.Duration) error
}

// NewRenderer validates the options and binds the renderer to a
// terminal and an image.
func NewRenderer(term terminal.Terminal, img *Image, opts Options) (*Renderer, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return &Renderer{
		term:  term,
		img:   img,
		opts:  opts,
		sleep: sleepCtx,
	}, nil
}

// OnLoop registers a hook fired after every completed scroll pass.
func (r *Renderer) OnLoop(fn func()) {
	r.onLoop = fn
}

// Run resizes the terminal, then loops: scroll pass, loop pause, clear.
// Returns the context error once cancelled; there is no other exit.
func (r *Renderer) Run(ctx context.Context) error {
	width, height := r.term.Size()
	if r.opts.Width > 0 {
		width = r.opts.Width
	}
	if r.opts.Height > 0 {
		height = r.opts.Height
	} else {
		height = r.img.Height() + constants.HeightMargin
	}
	r.term.SetSize(width, height)
	r.term.SetCursorVisible(!r.opts.HideCursor)

	for {
		outHeight, err := r.pass(ctx)
		if err != nil {
			return err
		}
		if r.onLoop != nil {
			r.onLoop()
		}
		if err := r.sleep(ctx, r.opts.LoopDelay); err != nil {
			return err
		}
		viewWidth, _ := r.term.Size()
		r.clear(outHeight, viewWidth)
	}
}

// pass scrolls the image once across the terminal, one offset per
// frame. It returns the last frame's visible height so the caller can
// clear exactly what is still on screen. The pass length tracks the
// live gap: a resize mid-pass lengthens or shortens the remaining
// scroll accordingly.
func (r *Renderer) pass(ctx context.Context) (int, error) {
	imageWidth := r.img.Width()
	outHeight := 0

	viewWidth, _ := r.term.Size()
	gap := effectiveGap(r.opts.Gap, imageWidth, viewWidth)

	for i := 0; i < imageWidth+gap; i++ {
		var viewHeight int
		viewWidth, viewHeight = r.term.Size()
		gap = effectiveGap(r.opts.Gap, imageWidth, viewWidth)

		outHeight = r.img.Height()
		if viewHeight < outHeight {
			outHeight = viewHeight
		}

		start := r.term.CursorRow()
		r.term.SetCursor(0, start)
		for j := 0; j < outHeight; j++ {
			r.term.WriteLine(composeLine(r.img.Line(j), imageWidth, gap, i, viewWidth))
		}
		r.term.Show()

		if err := r.sleep(ctx, r.opts.FrameDelay); err != nil {
			return outHeight, err
		}

		if i < imageWidth+gap-1 {
			r.clear(outHeight, viewWidth)
		}

		// A resize can reset cursor visibility on some terminals.
		if r.opts.HideCursor {
			r.term.SetCursorVisible(false)
		}
	}
	return outHeight, nil
}

// clear blanks the last rendered frame plus ClearMargin rows, working
// back from the current cursor row, then parks the cursor at the
// frame's first row so the next frame paints over the same region.
func (r *Renderer) clear(outHeight, viewWidth int) {
	start := r.term.CursorRow() - outHeight
	if start < 0 {
		start = 0
	}
	blank := spaces(viewWidth)
	r.term.SetCursor(0, start)
	for j := 0; j < outHeight+constants.ClearMargin; j++ {
		r.term.WriteLine(blank)
	}
	r.term.SetCursor(0, start)
	r.term.Show()
}

// sleepCtx pauses for d or until ctx is cancelled.
func sleepCtx(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
