package watersort

// Board dimensions.
const (
	TubeCount  = 10
	MaxPortion = 4
	ColorCount = TubeCount - 2
)

// Tube is a stack of portions; the last element is the top.
type Tube []Color

// Empty reports whether the tube holds no portions.
func (t Tube) Empty() bool {
	return len(t) == 0
}

// Full reports whether the tube is at capacity.
func (t Tube) Full() bool {
	return len(t) >= MaxPortion
}

// Top returns the top portion. ok is false for an empty tube.
func (t Tube) Top() (c Color, ok bool) {
	if len(t) == 0 {
		return 0, false
	}
	return t[len(t)-1], true
}

// Sorted reports whether the tube is empty, or full and monochrome.
func (t Tube) Sorted() bool {
	if t.Empty() {
		return true
	}
	if !t.Full() {
		return false
	}
	for _, c := range t[1:] {
		if c != t[0] {
			return false
		}
	}
	return true
}

func (t Tube) clone() Tube {
	out := make(Tube, len(t), MaxPortion)
	copy(out, t)
	return out
}
