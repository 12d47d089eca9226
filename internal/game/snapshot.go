package samegame

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StateNoMoves     GameStateType = "no_moves"
	StateCleared     GameStateType = "cleared"
	StatePaused      GameStateType = "paused"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick      uint64
	Variant   string // "classic" or "mini"
	Score     int
	CursorX   int
	CursorY   int
	Remaining int
	Board     string // Text save format, identical boards encode identically
	State     GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.cleared:
		state = StateCleared
	case g.finished:
		state = StateNoMoves
	case g.paused:
		state = StatePaused
	}

	return Snapshot{
		Tick:      g.tick,
		Variant:   string(g.variant),
		Score:     g.score,
		CursorX:   g.cursor.X,
		CursorY:   g.cursor.Y,
		Remaining: g.board.Remaining(),
		Board:     g.board.Encode(),
		State:     state,
	}
}
