// Package config loads the YAML configuration for the water sort host:
// tick rate, tube layout, sound backend and palette overrides.
package config

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/vovakirdan/water-sort/internal/core"
	"github.com/vovakirdan/water-sort/internal/games/watersort"
)

// Config is the top-level configuration file.
type Config struct {
	TickRate int               `yaml:"tick_rate"`
	Sound    SoundConfig       `yaml:"sound"`
	Layout   LayoutConfig      `yaml:"layout"`
	Palette  map[string]string `yaml:"palette,omitempty"` // color name -> ANSI code
}

// SoundConfig selects the audio backend.
type SoundConfig struct {
	Backend string `yaml:"backend"`
}

// LayoutConfig positions the tubes on screen.
type LayoutConfig struct {
	TubesPerRow int `yaml:"tubes_per_row"`
	OriginX     int `yaml:"origin_x"`
	OriginY     int `yaml:"origin_y"`
	SpacingX    int `yaml:"spacing_x"`
	SpacingY    int `yaml:"spacing_y"`
}

// Layout converts the configured values to a board layout.
func (l LayoutConfig) Layout() watersort.Layout {
	return watersort.Layout{
		TubesPerRow: l.TubesPerRow,
		OriginX:     l.OriginX,
		OriginY:     l.OriginY,
		SpacingX:    l.SpacingX,
		SpacingY:    l.SpacingY,
	}
}

// Validate checks the configuration and reports every problem found.
func (c Config) Validate() error {
	var errs []error

	if c.TickRate <= 0 || c.TickRate > 240 {
		errs = append(errs, fmt.Errorf("tick_rate must be in 1..240, got %d", c.TickRate))
	}
	if c.Sound.Backend == "" {
		errs = append(errs, errors.New("sound.backend must not be empty"))
	}
	if err := c.Layout.validate(); err != nil {
		errs = append(errs, err)
	}
	if _, err := c.PaletteOverrides(); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

func (l LayoutConfig) validate() error {
	if l.TubesPerRow < 1 || l.TubesPerRow > watersort.TubeCount {
		return fmt.Errorf("layout.tubes_per_row must be in 1..%d, got %d", watersort.TubeCount, l.TubesPerRow)
	}
	if l.OriginX < 0 || l.OriginY < 1 {
		return fmt.Errorf("layout origin (%d, %d) must leave row 0 for the status line", l.OriginX, l.OriginY)
	}

	// Tube labels sit on the row below each tube, so rows need one extra line.
	layout := l.Layout()
	for i := range watersort.TubeCount {
		a := layout.TubeRect(i)
		a.H++
		for j := i + 1; j < watersort.TubeCount; j++ {
			b := layout.TubeRect(j)
			b.H++
			if a.Intersects(b) {
				return fmt.Errorf("layout: tubes %d and %d overlap", i, j)
			}
		}
	}
	return nil
}

// PaletteOverrides resolves the palette section to screen colors.
func (c Config) PaletteOverrides() (map[core.Color]string, error) {
	out := make(map[core.Color]string, len(c.Palette))
	for name, code := range c.Palette {
		color, ok := watersort.ParseColor(name)
		if !ok {
			return nil, fmt.Errorf("palette: unknown color %q", name)
		}
		n, err := strconv.Atoi(code)
		if err != nil || n < 0 || n > 255 {
			return nil, fmt.Errorf("palette: %s code %q is not an ANSI 256-color index", name, code)
		}
		out[watersort.CellColor(color)] = code
	}
	return out, nil
}
