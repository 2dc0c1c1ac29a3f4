package audio

import (
	"fmt"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/splash/constants"
)

const sampleRate = beep.SampleRate(44100)

// Chime plays a short sine tone, used to mark scroll-loop boundaries.
// Construction failure means no audio device; the marquee runs silent.
type Chime struct {
	freq  float64
	dur   time.Duration
	ready bool
}

// NewChime initializes the speaker for a tone at freq Hz. A zero or
// negative frequency falls back to the default.
func NewChime(freq float64) (*Chime, error) {
	c := &Chime{
		freq: NormalizeFreq(freq),
		dur:  constants.ChimeDuration,
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return nil, fmt.Errorf("audio: speaker init: %w", err)
	}
	c.ready = true
	return c, nil
}

// NormalizeFreq clamps a configured frequency to something audible,
// substituting the default for unset or nonsense values.
func NormalizeFreq(freq float64) float64 {
	if freq <= 0 {
		return constants.DefaultChimeFreq
	}
	return freq
}

// Play streams one tone. Non-blocking; safe on a silent Chime.
func (c *Chime) Play() {
	if !c.ready {
		return
	}
	tone, err := generators.SineTone(sampleRate, c.freq)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(sampleRate.N(c.dur), tone))
}

// Close shuts the speaker down. Safe to call multiple times.
func (c *Chime) Close() {
	if !c.ready {
		return
	}
	speaker.Close()
	c.ready = false
}
