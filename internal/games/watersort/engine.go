// Package watersort implements the water sort puzzle: portions of colored
// liquid are poured between tubes until every tube is empty or holds
// MaxPortion portions of a single color.
package watersort

import (
	"math/rand"
)

// Sound names a sound effect the host should play.
type Sound string

const (
	SoundPour  Sound = "pour"
	SoundBravo Sound = "bravo"
)

// Command is the input for one tick: either nothing or a tube selection.
type Command struct {
	Select bool
	Tube   int
}

// CommandNone is the empty command.
var CommandNone = Command{}

// SelectTube returns a command selecting tube i.
func SelectTube(i int) Command {
	return Command{Select: true, Tube: i}
}

// Engine holds one game: the tubes, the current selection, the pour
// animation state and the queue of requested sounds.
type Engine struct {
	seed  int64
	rng   *rand.Rand
	frame int

	tubes   []Tube
	from    int // selected source tube, -1 when none
	phase   Phase
	cleared bool
	pours   int

	sounds []Sound
}

// NewGame deals a fresh board from seed.
func NewGame(seed int64) *Engine {
	e := &Engine{
		seed:  seed,
		rng:   rand.New(rand.NewSource(seed)),
		frame: -1,
		from:  -1,
		phase: Playing{},
	}

	portions := make([]Color, 0, ColorCount*MaxPortion)
	for _, c := range AllColors() {
		for range MaxPortion {
			portions = append(portions, c)
		}
	}
	e.rng.Shuffle(len(portions), func(i, j int) {
		portions[i], portions[j] = portions[j], portions[i]
	})

	e.tubes = make([]Tube, 0, TubeCount)
	for i := range ColorCount {
		e.tubes = append(e.tubes, Tube(portions[i*MaxPortion:(i+1)*MaxPortion]).clone())
	}
	for range TubeCount - ColorCount {
		e.tubes = append(e.tubes, make(Tube, 0, MaxPortion))
	}

	return e
}

// Tick advances the game by one fixed step.
func (e *Engine) Tick(cmd Command) {
	e.frame++

	if t, ok := e.phase.(Transferring); ok {
		t.Remaining--
		if t.Remaining > 0 {
			e.phase = t
			return
		}
		e.phase = Playing{}
		e.from = -1
		e.checkClear()
		return
	}

	if e.cleared {
		return
	}

	if !cmd.Select {
		return
	}
	e.selectTube(cmd.Tube)
}

func (e *Engine) selectTube(i int) {
	if i < 0 || i >= len(e.tubes) {
		return
	}

	switch {
	case e.from < 0:
		if e.transferableFrom(i) {
			e.from = i
		}
	case e.from == i:
		e.from = -1
	case e.transferableTo(i):
		e.transfer(i)
	}
}

func (e *Engine) transferableFrom(i int) bool {
	return !e.tubes[i].Empty()
}

func (e *Engine) transferableTo(i int) bool {
	dst := e.tubes[i]
	if dst.Empty() {
		return true
	}
	if dst.Full() {
		return false
	}
	dstTop, _ := dst.Top()
	srcTop, ok := e.tubes[e.from].Top()
	return ok && dstTop == srcTop
}

// transfer pours the top run of the selected tube into tube to.
func (e *Engine) transfer(to int) {
	src := e.tubes[e.from]
	dst := e.tubes[to]

	color, _ := src.Top()
	moved := 0
	for len(src) > 0 && src[len(src)-1] == color && len(dst) < MaxPortion {
		dst = append(dst, src[len(src)-1])
		src = src[:len(src)-1]
		moved++
	}
	e.tubes[e.from] = src
	e.tubes[to] = dst

	e.pours++
	e.sounds = append(e.sounds, SoundPour)
	e.phase = Transferring{
		Color:     color,
		Moved:     moved,
		Remaining: TransferTicks,
	}
}

func (e *Engine) checkClear() {
	if IsClear(e.tubes) {
		e.cleared = true
		e.sounds = append(e.sounds, SoundBravo)
	}
}

// IsClear reports whether every tube is empty or full and monochrome.
func IsClear(tubes []Tube) bool {
	for _, t := range tubes {
		if !t.Sorted() {
			return false
		}
	}
	return true
}

// DrainSounds returns the sounds requested since the last call and empties
// the queue.
func (e *Engine) DrainSounds() []Sound {
	out := e.sounds
	e.sounds = nil
	return out
}

// Seed returns the seed the board was dealt from.
func (e *Engine) Seed() int64 {
	return e.seed
}

// Frame returns the tick counter. It starts at -1 and is 0 after the
// first tick.
func (e *Engine) Frame() int {
	return e.frame
}

// Tubes returns a copy of the board.
func (e *Engine) Tubes() []Tube {
	out := make([]Tube, len(e.tubes))
	for i, t := range e.tubes {
		out[i] = t.clone()
	}
	return out
}

// Tube returns a copy of tube i.
func (e *Engine) Tube(i int) Tube {
	return e.tubes[i].clone()
}

// Selected returns the selected source tube, if any.
func (e *Engine) Selected() (int, bool) {
	return e.from, e.from >= 0
}

// Phase returns the current turn state.
func (e *Engine) Phase() Phase {
	return e.phase
}

// Transferring returns the pour animation state while one is running.
func (e *Engine) Transferring() (Transferring, bool) {
	t, ok := e.phase.(Transferring)
	return t, ok
}

// Cleared reports whether the puzzle has been solved.
func (e *Engine) Cleared() bool {
	return e.cleared
}

// Pours returns how many pours have been made in this game.
func (e *Engine) Pours() int {
	return e.pours
}
