// Package config loads the optional splash TOML config file. All
// fields are pointers so the caller can tell "unset" from an explicit
// zero when merging with command-line flags.
package config

import (
	"fmt"
	"os"

	"github.com/lixenwraith/splash/toml"
)

// Scroll holds the marquee timing and spacing settings.
type Scroll struct {
	Gap          *int `toml:"gap"`
	FrameDelayMs *int `toml:"frame_delay_ms"`
	LoopDelayMs  *int `toml:"loop_delay_ms"`
}

// Window holds terminal sizing and appearance settings.
type Window struct {
	Width      *int    `toml:"width"`
	Height     *int    `toml:"height"`
	HideCursor *bool   `toml:"hide_cursor"`
	Raise      *bool   `toml:"raise"`
	Color      *string `toml:"color"`
}

// Chime holds the loop-boundary tone settings.
type Chime struct {
	Enabled *bool    `toml:"enabled"`
	FreqHz  *float64 `toml:"freq_hz"`
}

// File is the full config file schema.
type File struct {
	Art    string `toml:"art"`
	Scroll Scroll `toml:"scroll"`
	Window Window `toml:"window"`
	Chime  Chime  `toml:"chime"`
}

// Load reads and decodes a config file.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return Decode(data)
}

// Decode parses config file contents.
func Decode(data []byte) (*File, error) {
	var f File
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &f, nil
}
