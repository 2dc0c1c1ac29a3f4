package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"runtime/debug"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/splash/asset"
	"github.com/lixenwraith/splash/audio"
	"github.com/lixenwraith/splash/config"
	"github.com/lixenwraith/splash/constants"
	"github.com/lixenwraith/splash/splash"
	"github.com/lixenwraith/splash/terminal"
)

var (
	configPath = flag.String("config", "", "TOML config file")
	artPath    = flag.String("art", "", "text file with the art to scroll (default: built-in banner)")
	gap        = flag.Int("gap", constants.DefaultGap, "minimum blank columns between repeated copies")
	frameDelay = flag.Duration("frame-delay", constants.DefaultFrameDelay, "delay between frames")
	loopDelay  = flag.Duration("loop-delay", constants.DefaultLoopDelay, "delay between scroll passes")
	width      = flag.Int("width", 0, "terminal width to set (0 = current width)")
	height     = flag.Int("height", 0, "terminal height to set (0 = art height + 2)")
	hideCursor = flag.Bool("hide-cursor", false, "hide the cursor while scrolling")
	raise      = flag.Bool("raise", false, "ask the terminal to raise its window first")
	chime      = flag.Bool("chime", false, "play a short tone at each loop boundary")
	chimeFreq  = flag.Float64("chime-freq", constants.DefaultChimeFreq, "chime frequency in Hz")
	colorName  = flag.String("color", "", "foreground color for the art (e.g. green, silver)")
	logPath    = flag.String("log", "", "append debug log to a file")
)

func main() {
	// Panic recovery: restore the terminal to a sane state even if the
	// marquee crashes mid-frame.
	defer func() {
		if r := recover(); r != nil {
			terminal.EmergencyReset(os.Stdout)
			fmt.Fprintf(os.Stderr, "\nsplash crashed: %v\n", r)
			fmt.Fprintf(os.Stderr, "stack trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	flag.Parse()

	if err := setupLogging(*logPath); err != nil {
		fatal(err)
	}

	if err := terminal.CheckInteractive(); err != nil {
		fatal(err)
	}

	opts, img, chimeOn, freq, style, err := resolve()
	if err != nil {
		fatal(err)
	}

	if opts.Raise {
		terminal.Raise()
	}

	term, err := terminal.New(style)
	if err != nil {
		fatal(err)
	}

	renderer, err := splash.NewRenderer(term, img, opts)
	if err != nil {
		fatal(err)
	}

	if err := term.Init(); err != nil {
		fatal(err)
	}
	defer term.Fini()

	if chimeOn {
		c, err := audio.NewChime(freq)
		if err != nil {
			// Non-fatal, the marquee can run without sound.
			log.Printf("chime unavailable: %v (continuing silent)", err)
		} else {
			renderer.OnLoop(c.Play)
			defer c.Close()
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Event drain: the marquee takes no input, but a resize needs a
	// repaint and Ctrl-C needs to reach the render loop for a clean
	// terminal restore.
	go func() {
		for {
			ev := term.PollEvent()
			if ev == nil {
				return
			}
			switch ev := ev.(type) {
			case *tcell.EventResize:
				term.Sync()
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyCtrlC || ev.Key() == tcell.KeyEscape ||
					(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
					cancel()
					return
				}
			}
		}
	}()

	log.Printf("scrolling %dx%d art, gap>=%d, frame %v, loop %v",
		img.Width(), img.Height(), opts.Gap, opts.FrameDelay, opts.LoopDelay)

	if err := renderer.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		term.Fini()
		fatal(err)
	}
}

// resolve merges defaults, the config file, and flags (flags win) into
// render options, the image, and the chime/style settings.
func resolve() (splash.Options, *splash.Image, bool, float64, tcell.Style, error) {
	opts := splash.Options{
		Gap:        *gap,
		FrameDelay: *frameDelay,
		LoopDelay:  *loopDelay,
		Width:      *width,
		Height:     *height,
		HideCursor: *hideCursor,
		Raise:      *raise,
	}
	art := *artPath
	chimeOn := *chime
	freq := *chimeFreq
	color := *colorName

	if *configPath != "" {
		cfg, err := config.Load(*configPath)
		if err != nil {
			return opts, nil, false, 0, tcell.StyleDefault, err
		}

		set := map[string]bool{}
		flag.Visit(func(f *flag.Flag) { set[f.Name] = true })

		if !set["gap"] && cfg.Scroll.Gap != nil {
			opts.Gap = *cfg.Scroll.Gap
		}
		if !set["frame-delay"] && cfg.Scroll.FrameDelayMs != nil {
			opts.FrameDelay = time.Duration(*cfg.Scroll.FrameDelayMs) * time.Millisecond
		}
		if !set["loop-delay"] && cfg.Scroll.LoopDelayMs != nil {
			opts.LoopDelay = time.Duration(*cfg.Scroll.LoopDelayMs) * time.Millisecond
		}
		if !set["width"] && cfg.Window.Width != nil {
			opts.Width = *cfg.Window.Width
		}
		if !set["height"] && cfg.Window.Height != nil {
			opts.Height = *cfg.Window.Height
		}
		if !set["hide-cursor"] && cfg.Window.HideCursor != nil {
			opts.HideCursor = *cfg.Window.HideCursor
		}
		if !set["raise"] && cfg.Window.Raise != nil {
			opts.Raise = *cfg.Window.Raise
		}
		if !set["color"] && cfg.Window.Color != nil {
			color = *cfg.Window.Color
		}
		if !set["art"] && cfg.Art != "" {
			art = cfg.Art
		}
		if !set["chime"] && cfg.Chime.Enabled != nil {
			chimeOn = *cfg.Chime.Enabled
		}
		if !set["chime-freq"] && cfg.Chime.FreqHz != nil {
			freq = *cfg.Chime.FreqHz
		}
	}

	img, err := loadArt(art)
	if err != nil {
		return opts, nil, false, 0, tcell.StyleDefault, err
	}

	style, err := resolveStyle(color)
	if err != nil {
		return opts, nil, false, 0, tcell.StyleDefault, err
	}

	return opts, img, chimeOn, freq, style, nil
}

func loadArt(path string) (*splash.Image, error) {
	if path == "" {
		return splash.New(asset.DefaultArtLines())
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("art: %w", err)
	}
	defer f.Close()
	return splash.Read(f)
}

func resolveStyle(color string) (tcell.Style, error) {
	if color == "" {
		return tcell.StyleDefault, nil
	}
	c, ok := tcell.ColorNames[strings.ToLower(color)]
	if !ok {
		return tcell.StyleDefault, fmt.Errorf("unknown color %q", color)
	}
	return tcell.StyleDefault.Foreground(c), nil
}

func setupLogging(path string) error {
	if path == "" {
		log.SetOutput(io.Discard)
		return nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("log: %w", err)
	}
	log.SetOutput(f)
	return nil
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "splash: %v\n", err)
	os.Exit(1)
}
