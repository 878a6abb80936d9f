package watersort

// TransferTicks is how many ticks a pour animation lasts (0.5s at 30 Hz).
const TransferTicks = 15

// Phase is the engine's turn state: Playing or Transferring.
type Phase interface {
	isPhase()
}

// Playing accepts selection commands.
type Playing struct{}

// Transferring is a pour animation in progress. Commands are dropped
// until Remaining reaches zero.
type Transferring struct {
	Color     Color // color that was poured
	Moved     int   // portions moved by the pour
	Remaining int   // ticks left, TransferTicks down to 1
}

func (Playing) isPhase()      {}
func (Transferring) isPhase() {}

// Progress returns how far the animation has run, in (0, 1].
func (t Transferring) Progress() float64 {
	p := float64(TransferTicks+1-t.Remaining) / float64(TransferTicks)
	return min(p, 1.0)
}
