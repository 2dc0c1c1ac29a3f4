package audio

import (
	"testing"

	"github.com/lixenwraith/splash/constants"
)

func TestNormalizeFreq(t *testing.T) {
	tests := []struct {
		freq float64
		want float64
	}{
		{440, 440},
		{880, 880},
		{0, constants.DefaultChimeFreq},
		{-100, constants.DefaultChimeFreq},
	}
	for _, tt := range tests {
		if got := NormalizeFreq(tt.freq); got != tt.want {
			t.Errorf("NormalizeFreq(%v) = %v, want %v", tt.freq, got, tt.want)
		}
	}
}

func TestChime_SilentSafety(t *testing.T) {
	// A chime that never initialized must be inert: Play and Close on
	// the zero value cannot touch the speaker.
	var c Chime
	c.Play()
	c.Close()
	c.Close()
}
