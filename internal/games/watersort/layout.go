package watersort

import "github.com/vovakirdan/water-sort/internal/core"

// Tube box size in screen cells: a border column on each side around
// MaxPortion-wide portions, one free row above the liquid and a bottom border.
const (
	TubeWidth  = MaxPortion + 2
	TubeHeight = MaxPortion + 2
)

// Layout places the tubes on screen in rows.
type Layout struct {
	TubesPerRow int
	OriginX     int // left of the first tube
	OriginY     int // top of the first row
	SpacingX    int // distance between tube left edges
	SpacingY    int // distance between row tops
}

// DefaultLayout returns two rows of five tubes.
func DefaultLayout() Layout {
	return Layout{
		TubesPerRow: 5,
		OriginX:     2,
		OriginY:     2,
		SpacingX:    8,
		SpacingY:    8,
	}
}

// TubeRect returns the box of tube i.
func (l Layout) TubeRect(i int) core.Rect {
	col := i % l.TubesPerRow
	row := i / l.TubesPerRow
	return core.NewRect(
		l.OriginX+col*l.SpacingX,
		l.OriginY+row*l.SpacingY,
		TubeWidth,
		TubeHeight,
	)
}

// TubeAt returns the tube whose box contains the cell (x, y).
func (l Layout) TubeAt(x, y int) (int, bool) {
	for i := range TubeCount {
		if l.TubeRect(i).Contains(x, y) {
			return i, true
		}
	}
	return 0, false
}

// Bounds returns the size of the area covered by all tubes, measured from
// the screen origin.
func (l Layout) Bounds() (w, h int) {
	for i := range TubeCount {
		r := l.TubeRect(i)
		w = max(w, r.Right())
		h = max(h, r.Bottom())
	}
	return w, h
}
