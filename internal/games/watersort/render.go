package watersort

import (
	"fmt"

	"github.com/vovakirdan/water-sort/internal/core"
)

const (
	portionRune = '█'
	pouringRune = '▒'
	clearText   = "Congratulations!"
)

// bannerColors cycle every three frames once the puzzle is cleared.
var bannerColors = [6]core.Color{
	core.ColorBrightRed,
	core.ColorBrightGreen,
	core.ColorBrightBlue,
	core.ColorBrightYellow,
	core.ColorBrightCyan,
	core.ColorBrightMagenta,
}

// BannerColor returns the color of the cleared banner for frame.
func BannerColor(frame int) core.Color {
	i := (frame / 3) % len(bannerColors)
	if i < 0 {
		i += len(bannerColors)
	}
	return bannerColors[i]
}

// Render draws the board into dst using layout l.
func (e *Engine) Render(dst *core.Screen, l Layout) {
	dst.Clear()

	w, h := l.Bounds()
	if dst.Width() < w || dst.Height() < h+1 {
		renderTooSmall(dst)
		return
	}

	dst.DrawText(l.OriginX, 0, fmt.Sprintf("Water Sort  seed %d  pours %d", e.seed, e.pours), core.ColorDefault)

	pour, pouring := e.Transferring()
	for i, tube := range e.tubes {
		r := l.TubeRect(i)
		border := core.ColorGray
		if i == e.from {
			border = core.ColorBrightYellow
		}
		drawTube(dst, r, border)

		for j, c := range tube {
			drawPortion(dst, r, j, portionRune, CellColor(c))
		}

		if pouring && i == e.from {
			visible := pour.Moved - int(float64(pour.Moved)*pour.Progress())
			for k := range visible {
				drawPortion(dst, r, len(tube)+k, pouringRune, CellColor(pour.Color))
			}
		}

		label := fmt.Sprintf("%d", (i+1)%10)
		dst.DrawText(r.X+r.W/2-1, r.Bottom(), label, core.ColorGray)
	}

	if e.cleared {
		drawBanner(dst, w/2, h/2, BannerColor(e.frame), clearText, "Space: new game")
	}
}

// drawTube draws an open-topped tube outline.
func drawTube(dst *core.Screen, r core.Rect, c core.Color) {
	for y := r.Y; y < r.Bottom()-1; y++ {
		dst.SetCell(r.X, y, '│', c)
		dst.SetCell(r.Right()-1, y, '│', c)
	}
	dst.SetCell(r.X, r.Bottom()-1, '└', c)
	dst.SetCell(r.Right()-1, r.Bottom()-1, '┘', c)
	for x := r.X + 1; x < r.Right()-1; x++ {
		dst.SetCell(x, r.Bottom()-1, '─', c)
	}
}

// drawPortion fills slot j (0 = bottom) of the tube at r.
func drawPortion(dst *core.Screen, r core.Rect, j int, fill rune, c core.Color) {
	if j < 0 || j >= MaxPortion {
		return
	}
	y := r.Y + 1 + (MaxPortion - 1 - j)
	dst.DrawRect(core.NewRect(r.X+1, y, MaxPortion, 1), fill, c)
}

// drawBanner draws a boxed message centered on (cx, cy).
func drawBanner(dst *core.Screen, cx, cy int, c core.Color, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = max(maxLen, len(line))
	}

	boxW := maxLen + 4
	boxH := len(lines) + 2
	box := core.NewRect(cx-boxW/2, cy-boxH/2, boxW, boxH)

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, c)
	for i, line := range lines {
		lc := core.ColorDefault
		if i == 0 {
			lc = c
		}
		dst.DrawText(cx-len(line)/2, box.Y+1+i, line, lc)
	}
}

func renderTooSmall(dst *core.Screen) {
	y := dst.Height() / 2
	dst.DrawTextCentered(y, "Window too small", core.ColorDefault)
	dst.DrawTextCentered(y+1, "Please resize terminal", core.ColorDefault)
}
