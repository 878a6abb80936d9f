package watersort

import (
	"math/rand"
	"slices"
	"testing"
)

// newTestEngine builds an engine with the given tubes, padding the board
// with empty tubes.
func newTestEngine(tubes ...Tube) *Engine {
	e := NewGame(1)
	e.tubes = make([]Tube, TubeCount)
	for i := range e.tubes {
		if i < len(tubes) {
			e.tubes[i] = tubes[i].clone()
		} else {
			e.tubes[i] = make(Tube, 0, MaxPortion)
		}
	}
	return e
}

// solvedExcept returns a board where tubes 0-6 are sorted, tube 7 holds
// three orange portions and tube 8 holds the fourth.
func solvedExcept() []Tube {
	tubes := make([]Tube, 0, TubeCount)
	for c := ColorRed; c < ColorOrange; c++ {
		tubes = append(tubes, Tube{c, c, c, c})
	}
	tubes = append(tubes, Tube{ColorOrange, ColorOrange, ColorOrange}, Tube{ColorOrange})
	return tubes
}

func colorCounts(tubes []Tube) map[Color]int {
	counts := make(map[Color]int)
	for _, t := range tubes {
		for _, c := range t {
			counts[c]++
		}
	}
	return counts
}

func checkInvariants(t *testing.T, e *Engine) {
	t.Helper()

	tubes := e.Tubes()
	if len(tubes) != TubeCount {
		t.Fatalf("len(Tubes()) = %d, expected %d", len(tubes), TubeCount)
	}
	for i, tube := range tubes {
		if len(tube) > MaxPortion {
			t.Fatalf("tube %d has %d portions, capacity is %d", i, len(tube), MaxPortion)
		}
	}
	counts := colorCounts(tubes)
	if len(counts) != ColorCount {
		t.Fatalf("board has %d colors, expected %d", len(counts), ColorCount)
	}
	for c, n := range counts {
		if !c.Valid() {
			t.Fatalf("invalid color %d on board", c)
		}
		if n != MaxPortion {
			t.Fatalf("color %v appears %d times, expected %d", c, n, MaxPortion)
		}
	}
}

func TestNewGameDeal(t *testing.T) {
	e := NewGame(42)

	checkInvariants(t, e)

	for i, tube := range e.Tubes() {
		if i < ColorCount && !tube.Full() {
			t.Errorf("tube %d has %d portions, expected full", i, len(tube))
		}
		if i >= ColorCount && !tube.Empty() {
			t.Errorf("tube %d has %d portions, expected empty", i, len(tube))
		}
	}

	if e.Seed() != 42 {
		t.Errorf("Seed() = %d, expected 42", e.Seed())
	}
	if e.Frame() != -1 {
		t.Errorf("Frame() = %d, expected -1", e.Frame())
	}
	if _, ok := e.Selected(); ok {
		t.Error("new game should have no selection")
	}
	if _, ok := e.Phase().(Playing); !ok {
		t.Errorf("Phase() = %T, expected Playing", e.Phase())
	}
	if e.Cleared() {
		t.Error("new game should not be cleared")
	}
	if s := e.DrainSounds(); len(s) != 0 {
		t.Errorf("new game sounds = %v, expected none", s)
	}
}

func TestNewGameDeterministic(t *testing.T) {
	a := NewGame(12345).Snapshot()
	b := NewGame(12345).Snapshot()

	for i := range a.Tubes {
		if !slices.Equal(a.Tubes[i], b.Tubes[i]) {
			t.Errorf("tube %d differs for the same seed: %v vs %v", i, a.Tubes[i], b.Tubes[i])
		}
	}

	c := NewGame(54321).Snapshot()
	same := true
	for i := range a.Tubes {
		if !slices.Equal(a.Tubes[i], c.Tubes[i]) {
			same = false
		}
	}
	if same {
		t.Error("different seeds dealt identical boards")
	}
}

func TestFrameCounter(t *testing.T) {
	e := newTestEngine(Tube{ColorRed}, Tube{})

	e.Tick(CommandNone)
	if e.Frame() != 0 {
		t.Errorf("Frame() = %d, expected 0", e.Frame())
	}

	e.Tick(SelectTube(0))
	e.Tick(SelectTube(1)) // pour
	e.Tick(CommandNone)   // animating
	if e.Frame() != 3 {
		t.Errorf("Frame() = %d, expected 3", e.Frame())
	}
}

func TestSelectEmptyTubeRejected(t *testing.T) {
	e := newTestEngine(Tube{ColorRed})

	e.Tick(SelectTube(5))
	if _, ok := e.Selected(); ok {
		t.Error("selecting an empty tube should be rejected")
	}
}

func TestSelectOutOfRangeIgnored(t *testing.T) {
	e := newTestEngine(Tube{ColorRed})

	for _, i := range []int{-1, TubeCount, 99} {
		e.Tick(SelectTube(i))
		if _, ok := e.Selected(); ok {
			t.Errorf("SelectTube(%d) selected a tube", i)
		}
	}

	e.Tick(SelectTube(0))
	e.Tick(SelectTube(TubeCount))
	if from, ok := e.Selected(); !ok || from != 0 {
		t.Errorf("Selected() = %d, %v; expected 0, true", from, ok)
	}
}

func TestSelectToggle(t *testing.T) {
	e := newTestEngine(Tube{ColorRed, ColorBlue})

	e.Tick(SelectTube(0))
	if from, ok := e.Selected(); !ok || from != 0 {
		t.Fatalf("Selected() = %d, %v; expected 0, true", from, ok)
	}

	e.Tick(SelectTube(0))
	if _, ok := e.Selected(); ok {
		t.Error("selecting the same tube twice should deselect it")
	}
	if _, ok := e.Phase().(Playing); !ok {
		t.Errorf("Phase() = %T, expected Playing", e.Phase())
	}
}

func TestPourMovesMaximalRun(t *testing.T) {
	tests := []struct {
		name      string
		src, dst  Tube
		wantSrc   Tube
		wantDst   Tube
		wantMoved int
	}{
		{
			name:      "single portion into empty",
			src:       Tube{ColorRed, ColorBlue},
			dst:       Tube{},
			wantSrc:   Tube{ColorRed},
			wantDst:   Tube{ColorBlue},
			wantMoved: 1,
		},
		{
			name:      "whole run into empty",
			src:       Tube{ColorRed, ColorBlue, ColorBlue, ColorBlue},
			dst:       Tube{},
			wantSrc:   Tube{ColorRed},
			wantDst:   Tube{ColorBlue, ColorBlue, ColorBlue},
			wantMoved: 3,
		},
		{
			name:      "run onto matching top",
			src:       Tube{ColorRed, ColorGreen, ColorGreen},
			dst:       Tube{ColorYellow, ColorGreen},
			wantSrc:   Tube{ColorRed},
			wantDst:   Tube{ColorYellow, ColorGreen, ColorGreen, ColorGreen},
			wantMoved: 2,
		},
		{
			name:      "bounded by destination space",
			src:       Tube{ColorRed, ColorGreen, ColorGreen, ColorGreen},
			dst:       Tube{ColorYellow, ColorYellow, ColorGreen},
			wantSrc:   Tube{ColorRed, ColorGreen, ColorGreen},
			wantDst:   Tube{ColorYellow, ColorYellow, ColorGreen, ColorGreen},
			wantMoved: 1,
		},
		{
			name:      "empties the source",
			src:       Tube{ColorCyan, ColorCyan},
			dst:       Tube{ColorCyan},
			wantSrc:   Tube{},
			wantDst:   Tube{ColorCyan, ColorCyan, ColorCyan},
			wantMoved: 2,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			e := newTestEngine(tc.src, tc.dst)

			e.Tick(SelectTube(0))
			e.Tick(SelectTube(1))

			if got := e.Tube(0); !slices.Equal(got, tc.wantSrc) {
				t.Errorf("source = %v, expected %v", got, tc.wantSrc)
			}
			if got := e.Tube(1); !slices.Equal(got, tc.wantDst) {
				t.Errorf("destination = %v, expected %v", got, tc.wantDst)
			}

			pour, ok := e.Transferring()
			if !ok {
				t.Fatalf("Phase() = %T, expected Transferring", e.Phase())
			}
			if pour.Moved != tc.wantMoved {
				t.Errorf("Moved = %d, expected %d", pour.Moved, tc.wantMoved)
			}
			if pour.Remaining != TransferTicks {
				t.Errorf("Remaining = %d, expected %d", pour.Remaining, TransferTicks)
			}
			if top, _ := tc.src.Top(); pour.Color != top {
				t.Errorf("Color = %v, expected %v", pour.Color, top)
			}
			if from, ok := e.Selected(); !ok || from != 0 {
				t.Errorf("source selection should persist during the pour, got %d, %v", from, ok)
			}
			if s := e.DrainSounds(); !slices.Equal(s, []Sound{SoundPour}) {
				t.Errorf("sounds = %v, expected [pour]", s)
			}
			if e.Pours() != 1 {
				t.Errorf("Pours() = %d, expected 1", e.Pours())
			}
		})
	}
}

func TestPourRejected(t *testing.T) {
	tests := []struct {
		name     string
		src, dst Tube
	}{
		{
			name: "full destination with different top",
			src:  Tube{ColorRed},
			dst:  Tube{ColorBlue, ColorBlue, ColorGreen, ColorGreen},
		},
		{
			name: "full destination with same top",
			src:  Tube{ColorGreen},
			dst:  Tube{ColorBlue, ColorBlue, ColorGreen, ColorGreen},
		},
		{
			name: "partial destination with different top",
			src:  Tube{ColorRed},
			dst:  Tube{ColorBlue},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			e := newTestEngine(tc.src, tc.dst)

			e.Tick(SelectTube(0))
			e.Tick(SelectTube(1))

			if got := e.Tube(0); !slices.Equal(got, tc.src) {
				t.Errorf("source = %v, expected unchanged %v", got, tc.src)
			}
			if got := e.Tube(1); !slices.Equal(got, tc.dst) {
				t.Errorf("destination = %v, expected unchanged %v", got, tc.dst)
			}
			if from, ok := e.Selected(); !ok || from != 0 {
				t.Errorf("Selected() = %d, %v; expected source kept", from, ok)
			}
			if _, ok := e.Phase().(Playing); !ok {
				t.Errorf("Phase() = %T, expected Playing", e.Phase())
			}
			if s := e.DrainSounds(); len(s) != 0 {
				t.Errorf("sounds = %v, expected none", s)
			}
		})
	}
}

func TestTransferAnimationLength(t *testing.T) {
	e := newTestEngine(Tube{ColorRed, ColorBlue}, Tube{}, Tube{ColorGreen})

	e.Tick(SelectTube(0))
	e.Tick(SelectTube(1))
	before := e.Tubes()

	for i := 1; i < TransferTicks; i++ {
		// Commands are dropped while pouring.
		e.Tick(SelectTube(2))

		pour, ok := e.Transferring()
		if !ok {
			t.Fatalf("tick %d: Phase() = %T, expected Transferring", i, e.Phase())
		}
		if pour.Remaining != TransferTicks-i {
			t.Errorf("tick %d: Remaining = %d, expected %d", i, pour.Remaining, TransferTicks-i)
		}
	}

	for i, tube := range e.Tubes() {
		if !slices.Equal(tube, before[i]) {
			t.Errorf("tube %d changed during the animation", i)
		}
	}

	e.Tick(SelectTube(2))
	if _, ok := e.Phase().(Playing); !ok {
		t.Fatalf("Phase() = %T after %d ticks, expected Playing", e.Phase(), TransferTicks)
	}
	// The select on the completing tick is dropped as well.
	if _, ok := e.Selected(); ok {
		t.Error("selection should clear when the animation ends")
	}
}

func TestTransferringProgress(t *testing.T) {
	tests := []struct {
		remaining int
		expected  float64
	}{
		{TransferTicks, 1.0 / TransferTicks},
		{1, 1.0},
		{0, 1.0},
	}

	for _, tc := range tests {
		got := Transferring{Remaining: tc.remaining}.Progress()
		if got != tc.expected {
			t.Errorf("Progress() with Remaining=%d = %v, expected %v", tc.remaining, got, tc.expected)
		}
	}
}

func TestWinDetection(t *testing.T) {
	e := newTestEngine(solvedExcept()...)
	checkInvariants(t, e)

	e.Tick(SelectTube(8))
	e.Tick(SelectTube(7))
	if e.Cleared() {
		t.Fatal("win check must wait for the animation to finish")
	}

	for range TransferTicks {
		e.Tick(CommandNone)
	}

	if !e.Cleared() {
		t.Fatal("Cleared() = false, expected true")
	}
	if s := e.DrainSounds(); !slices.Equal(s, []Sound{SoundPour, SoundBravo}) {
		t.Errorf("sounds = %v, expected [pour bravo]", s)
	}
	if snap := e.Snapshot(); snap.Phase != PhaseCleared {
		t.Errorf("Snapshot Phase = %s, expected cleared", snap.Phase)
	}
	checkInvariants(t, e)
}

func TestFrozenAfterWin(t *testing.T) {
	e := newTestEngine(solvedExcept()...)
	e.Tick(SelectTube(8))
	e.Tick(SelectTube(7))
	for range TransferTicks {
		e.Tick(CommandNone)
	}
	e.DrainSounds()

	before := e.Tubes()
	for _, i := range []int{0, 9, 1, 8, 0, 0} {
		e.Tick(SelectTube(i))
	}

	for i, tube := range e.Tubes() {
		if !slices.Equal(tube, before[i]) {
			t.Errorf("tube %d changed after the win", i)
		}
	}
	if _, ok := e.Selected(); ok {
		t.Error("selection should be ignored after the win")
	}
	if !e.Cleared() {
		t.Error("win flag should stay set")
	}
	if s := e.DrainSounds(); len(s) != 0 {
		t.Errorf("sounds after win = %v, expected none", s)
	}
}

func TestNoWinOnUnsortedBoard(t *testing.T) {
	e := newTestEngine(Tube{ColorRed, ColorBlue}, Tube{}, Tube{ColorRed})

	e.Tick(SelectTube(0))
	e.Tick(SelectTube(1))
	for range TransferTicks {
		e.Tick(CommandNone)
	}

	if e.Cleared() {
		t.Error("Cleared() = true on an unsorted board")
	}
	if s := e.DrainSounds(); !slices.Equal(s, []Sound{SoundPour}) {
		t.Errorf("sounds = %v, expected [pour]", s)
	}
}

func TestIsClear(t *testing.T) {
	full := func(c Color) Tube { return Tube{c, c, c, c} }

	tests := []struct {
		name     string
		tubes    []Tube
		expected bool
	}{
		{"all empty", []Tube{{}, {}}, true},
		{"full monochrome and empty", []Tube{full(ColorRed), {}, full(ColorBlue)}, true},
		{"partial monochrome", []Tube{{ColorRed, ColorRed}, {ColorRed, ColorRed}}, false},
		{"full mixed", []Tube{{ColorRed, ColorRed, ColorRed, ColorBlue}}, false},
		{"one bad tube", []Tube{full(ColorRed), full(ColorGreen), {ColorBlue}}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsClear(tc.tubes); got != tc.expected {
				t.Errorf("IsClear() = %v, expected %v", got, tc.expected)
			}

			reversed := slices.Clone(tc.tubes)
			slices.Reverse(reversed)
			if got := IsClear(reversed); got != tc.expected {
				t.Errorf("IsClear() on reordered tubes = %v, expected %v", got, tc.expected)
			}
		})
	}
}

// TestRandomPlay drives a dealt game with random selections and checks the
// board invariants and pour postconditions after every tick.
func TestRandomPlay(t *testing.T) {
	for _, seed := range []int64{1, 7, 42, 2024} {
		e := NewGame(seed)
		inputs := rand.New(rand.NewSource(seed * 31))

		for tick := 0; tick < 3000; tick++ {
			cmd := CommandNone
			if inputs.Intn(3) > 0 {
				cmd = SelectTube(inputs.Intn(TubeCount))
			}

			prev := e.Snapshot()
			e.Tick(cmd)
			checkInvariants(t, e)

			if e.Pours() == prev.Pours {
				continue
			}

			src, dst := prev.Selected, cmd.Tube
			srcBefore := Tube(prev.Tubes[src])
			dstBefore := Tube(prev.Tubes[dst])
			color, _ := srcBefore.Top()

			dstTop, hasTop := dstBefore.Top()
			if !dstBefore.Empty() && (dstBefore.Full() || !hasTop || dstTop != color) {
				t.Fatalf("seed %d tick %d: pour into non-transferable tube %v", seed, tick, dstBefore)
			}

			srcAfter, dstAfter := e.Tube(src), e.Tube(dst)
			if top, _ := dstAfter.Top(); top != color {
				t.Fatalf("seed %d tick %d: destination top %v, expected %v", seed, tick, top, color)
			}
			if top, ok := srcAfter.Top(); ok && top == color && !dstAfter.Full() {
				t.Fatalf("seed %d tick %d: pour stopped early, source %v destination %v", seed, tick, srcAfter, dstAfter)
			}
		}
	}
}

func TestDrainSoundsEmptiesQueue(t *testing.T) {
	e := newTestEngine(Tube{ColorRed}, Tube{})
	e.Tick(SelectTube(0))
	e.Tick(SelectTube(1))

	if s := e.DrainSounds(); len(s) != 1 {
		t.Fatalf("first drain = %v, expected one sound", s)
	}
	if s := e.DrainSounds(); len(s) != 0 {
		t.Errorf("second drain = %v, expected none", s)
	}
}

func TestTubesReturnsCopy(t *testing.T) {
	e := newTestEngine(Tube{ColorRed})

	tubes := e.Tubes()
	tubes[0][0] = ColorBlue
	tubes[1] = append(tubes[1], ColorGreen)

	if got := e.Tube(0); got[0] != ColorRed {
		t.Error("mutating Tubes() result changed the engine")
	}
	if !e.Tube(1).Empty() {
		t.Error("appending to Tubes() result changed the engine")
	}
}

func TestColors(t *testing.T) {
	if len(AllColors()) != ColorCount {
		t.Errorf("len(AllColors()) = %d, expected %d", len(AllColors()), ColorCount)
	}

	for _, c := range AllColors() {
		if !c.Valid() {
			t.Errorf("%v.Valid() = false", c)
		}
		parsed, ok := ParseColor(c.String())
		if !ok || parsed != c {
			t.Errorf("ParseColor(%q) = %v, %v", c.String(), parsed, ok)
		}
		CellColor(c) // must not panic
	}

	if Color(0).Valid() || Color(ColorCount+1).Valid() {
		t.Error("out-of-range colors should be invalid")
	}
	if _, ok := ParseColor("mauve"); ok {
		t.Error("ParseColor accepted an unknown name")
	}
}

func TestCellColorPanicsOnInvalid(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("CellColor(0) should panic")
		}
	}()
	CellColor(0)
}
