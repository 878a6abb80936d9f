package watersort

// PhaseName is the string form of a Phase for snapshots.
type PhaseName string

const (
	PhasePlaying      PhaseName = "playing"
	PhaseTransferring PhaseName = "transferring"
	PhaseCleared      PhaseName = "cleared"
)

// Snapshot captures the complete game state for determinism tests and
// replay checks.
type Snapshot struct {
	Seed     int64
	Frame    int
	Tubes    [][]Color
	Selected int // -1 when nothing is selected
	Phase    PhaseName
	Pouring  Transferring // zero unless Phase is PhaseTransferring
	Pours    int
	Cleared  bool
}

// Snapshot returns a copy of the current game state.
func (e *Engine) Snapshot() Snapshot {
	tubes := make([][]Color, len(e.tubes))
	for i, t := range e.tubes {
		tubes[i] = append([]Color(nil), t...)
	}

	snap := Snapshot{
		Seed:     e.seed,
		Frame:    e.frame,
		Tubes:    tubes,
		Selected: e.from,
		Phase:    PhasePlaying,
		Pours:    e.pours,
		Cleared:  e.cleared,
	}
	if e.cleared {
		snap.Phase = PhaseCleared
	} else if t, ok := e.phase.(Transferring); ok {
		snap.Phase = PhaseTransferring
		snap.Pouring = t
	}
	return snap
}
