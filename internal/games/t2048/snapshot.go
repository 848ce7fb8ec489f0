package t2048

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying      GameStateType = "playing"
	StateLevelCleared GameStateType = "level_cleared"
	StateGameOver     GameStateType = "game_over"
	StateWin          GameStateType = "win"
	StatePaused       GameStateType = "paused"
	StatePausedSmall  GameStateType = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick     uint64
	Mode     string // "campaign", "classic" or "endless"
	Level    int    // Current level (1-indexed), 0 outside the campaign
	Target   int    // Max piece in force, 0 when none
	Score    int
	Best     int
	Board    [][]int // Northmost row first, 0 for empty
	MaxTile  int
	Revision int // Change notifications since the last reset
	State    GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.won:
		state = StateWin
	case g.gameOver:
		state = StateGameOver
	case g.levelCleared:
		state = StateLevelCleared
	case g.paused:
		state = StatePaused
	}

	level := 0
	if g.mode == ModeCampaign {
		level = g.levelIndex + 1
	}

	st := g.State()
	return Snapshot{
		Tick:     g.tick,
		Mode:     string(g.mode),
		Level:    level,
		Target:   g.model.MaxPiece(),
		Score:    st.Score,
		Best:     st.BestScore,
		Board:    g.model.Values(),
		MaxTile:  st.MaxTile,
		Revision: g.revision,
		State:    state,
	}
}
