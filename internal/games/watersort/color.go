package watersort

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/water-sort/internal/core"
)

// Color identifies the liquid in one portion. Valid colors are
// 1..ColorCount; the zero value is never stored in a tube.
type Color uint8

const (
	ColorRed Color = iota + 1
	ColorGreen
	ColorBlue
	ColorYellow
	ColorCyan
	ColorMagenta
	ColorSilver
	ColorOrange
)

// Valid reports whether c is one of the ColorCount puzzle colors.
func (c Color) Valid() bool {
	return c >= 1 && int(c) <= ColorCount
}

// String returns the color name.
func (c Color) String() string {
	switch c {
	case ColorRed:
		return "red"
	case ColorGreen:
		return "green"
	case ColorBlue:
		return "blue"
	case ColorYellow:
		return "yellow"
	case ColorCyan:
		return "cyan"
	case ColorMagenta:
		return "magenta"
	case ColorSilver:
		return "silver"
	case ColorOrange:
		return "orange"
	default:
		return fmt.Sprintf("color(%d)", uint8(c))
	}
}

// ParseColor converts a color name to a Color.
func ParseColor(s string) (Color, bool) {
	name := strings.ToLower(strings.TrimSpace(s))
	for _, c := range AllColors() {
		if c.String() == name {
			return c, true
		}
	}
	return 0, false
}

// AllColors returns every puzzle color in id order.
func AllColors() []Color {
	colors := make([]Color, ColorCount)
	for i := range colors {
		colors[i] = Color(i + 1)
	}
	return colors
}

// CellColor maps a puzzle color to the screen color used to draw it.
// An invalid color is a programming error and panics.
func CellColor(c Color) core.Color {
	switch c {
	case ColorRed:
		return core.ColorRed
	case ColorGreen:
		return core.ColorGreen
	case ColorBlue:
		return core.ColorBlue
	case ColorYellow:
		return core.ColorYellow
	case ColorCyan:
		return core.ColorCyan
	case ColorMagenta:
		return core.ColorMagenta
	case ColorSilver:
		return core.ColorWhite
	case ColorOrange:
		return core.ColorOrange
	}
	panic(fmt.Sprintf("watersort: no screen color for %v", c))
}
