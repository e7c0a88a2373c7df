// Package state holds the game's mode machines.
//
// Both machines are plain values owned by the game and only change through
// their transition methods.
package state

// GameState gates systems on asset loading.
type GameState uint8

const (
	Loading GameState = iota
	Ready
)

func (s GameState) String() string {
	switch s {
	case Loading:
		return "loading"
	case Ready:
		return "ready"
	default:
		return "unknown"
	}
}

// Game is the Loading -> Ready machine. Ready is terminal.
type Game struct {
	current     GameState
	transitions int
}

// NewGame returns a machine in the Loading state.
func NewGame() *Game {
	return &Game{current: Loading}
}

// Current returns the current state.
func (g *Game) Current() GameState {
	return g.current
}

// InState reports whether the machine is in s.
func (g *Game) InState(s GameState) bool {
	return g.current == s
}

// MarkReady moves Loading to Ready. It returns true only for the call that
// performed the transition.
func (g *Game) MarkReady() bool {
	if g.current == Ready {
		return false
	}
	g.current = Ready
	g.transitions++
	return true
}

// Transitions returns how many transitions have happened (0 or 1).
func (g *Game) Transitions() int {
	return g.transitions
}

// FreeCamState selects between the locked camera and free flight.
type FreeCamState uint8

const (
	Locked FreeCamState = iota
	Free
)

func (s FreeCamState) String() string {
	switch s {
	case Locked:
		return "locked"
	case Free:
		return "free"
	default:
		return "unknown"
	}
}

// FreeCam is the Locked <-> Free machine.
type FreeCam struct {
	current FreeCamState
	toggles int
}

// NewFreeCam returns a machine in the Locked state.
func NewFreeCam() *FreeCam {
	return &FreeCam{current: Locked}
}

// Current returns the current state.
func (f *FreeCam) Current() FreeCamState {
	return f.current
}

// IsFree reports whether free flight is active.
func (f *FreeCam) IsFree() bool {
	return f.current == Free
}

// Toggle flips the state and returns the new value.
func (f *FreeCam) Toggle() FreeCamState {
	if f.current == Free {
		f.current = Locked
	} else {
		f.current = Free
	}
	f.toggles++
	return f.current
}

// Toggles returns the number of toggles performed.
func (f *FreeCam) Toggles() int {
	return f.toggles
}

// Latch is a one-shot gate: Fire returns true the first time its condition
// holds and false forever after.
type Latch struct {
	fired bool
}

// Fire consumes the latch if cond is true.
func (l *Latch) Fire(cond bool) bool {
	if l.fired || !cond {
		return false
	}
	l.fired = true
	return true
}

// Fired reports whether the latch has been consumed.
func (l *Latch) Fired() bool {
	return l.fired
}
