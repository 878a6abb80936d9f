package config

import (
	_ "embed"

	"github.com/vovakirdan/water-sort/internal/games/watersort"
)

//go:embed defaults/watersort.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	l := watersort.DefaultLayout()
	return Config{
		TickRate: 30,
		Sound: SoundConfig{
			Backend: "bell",
		},
		Layout: LayoutConfig{
			TubesPerRow: l.TubesPerRow,
			OriginX:     l.OriginX,
			OriginY:     l.OriginY,
			SpacingX:    l.SpacingX,
			SpacingY:    l.SpacingY,
		},
	}
}
