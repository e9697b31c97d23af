package numbertiles

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StateGameOver    GameStateType = "game_over"
	StatePaused      GameStateType = "paused"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing.
type Snapshot struct {
	Tick    uint64
	Mode    string // "classic" or "endless"
	Size    int
	Score   int
	Cursor  Coord
	Tiles   [][]int
	MaxTile int
	State   GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.gameOver:
		state = StateGameOver
	case g.paused:
		state = StatePaused
	}

	return Snapshot{
		Tick:    g.tick,
		Mode:    string(g.mode),
		Size:    g.board.Size(),
		Score:   g.board.Score(),
		Cursor:  g.cursor,
		Tiles:   g.board.Tiles(),
		MaxTile: g.board.MaxTile(),
		State:   state,
	}
}
