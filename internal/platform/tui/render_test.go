package tui

import (
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/vovakirdan/water-sort/internal/core"
)

func TestRenderScreenPlainText(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawText(0, 0, "ab", core.ColorRed)
	s.DrawText(2, 0, "cd", core.ColorDefault)
	s.DrawText(0, 1, "xyz", core.ColorGray)

	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.Ascii)
	got := NewPalette(r, nil).RenderScreen(s)

	expected := "abcd  \nxyz   "
	if got != expected {
		t.Errorf("RenderScreen() = %q, expected %q", got, expected)
	}
}

func TestNewPaletteOverrides(t *testing.T) {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.ANSI256)

	p := NewPalette(r, map[core.Color]string{core.ColorRed: "160"})

	if fg := p[core.ColorRed].GetForeground(); fg != lipgloss.Color("160") {
		t.Errorf("red foreground = %v, expected 160", fg)
	}
	if fg := p[core.ColorBlue].GetForeground(); fg != lipgloss.Color("4") {
		t.Errorf("blue foreground = %v, expected 4", fg)
	}
	if len(p) != len(allColors) {
		t.Errorf("palette has %d styles, expected %d", len(p), len(allColors))
	}
}

func TestRenderScreenColored(t *testing.T) {
	s := core.NewScreen(3, 1)
	s.DrawText(0, 0, "abc", core.ColorGreen)

	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.ANSI256)
	got := NewPalette(r, nil).RenderScreen(s)

	if !strings.Contains(got, "abc") {
		t.Errorf("RenderScreen() = %q, expected the text", got)
	}
	if !strings.Contains(got, "\x1b[") {
		t.Errorf("RenderScreen() = %q, expected ANSI styling", got)
	}
}
