package numbertiles

import (
	"math/rand"

	"github.com/vovakirdan/numbertiles/internal/config"
	"github.com/vovakirdan/numbertiles/internal/core"
	"github.com/vovakirdan/numbertiles/internal/registry"
)

// Mode represents the game mode.
type Mode string

const (
	// ModeClassic plays a single board to exhaustion: collapsed cells
	// stay empty and the game ends when no collapsible pair remains.
	ModeClassic Mode = "classic"

	// ModeEndless refills empty cells with fresh random tiles after
	// every collapse.
	ModeEndless Mode = "endless"
)

// Package-level overrides applied before game creation.
var (
	configPath   string
	selectedSize int
)

// SetConfigPath sets a custom config file path for the next game.
func SetConfigPath(path string) {
	configPath = path
}

// SetBoardSize overrides the configured board size (0 = use config).
func SetBoardSize(size int) {
	selectedSize = size
}

// Game adapts the Board engine to the platform's tick loop: it owns the
// cursor, translates input actions into collapse operations, and applies
// the mode's refill policy.
type Game struct {
	mode Mode
	cfg  config.GameConfig
	rng  *rand.Rand
	tick uint64

	board  *Board
	cursor Coord

	// Screen dimensions
	screenW int
	screenH int

	// Game state flags
	gameOver      bool
	paused        bool
	tooSmall      bool
	moveProcessed bool // Prevent multiple collapses per tick
}

// New creates a new classic mode game.
func New() *Game {
	return &Game{mode: ModeClassic}
}

// NewEndless creates a new endless mode game.
func NewEndless() *Game {
	return &Game{mode: ModeEndless}
}

func init() {
	registry.Register("classic", func() registry.Game {
		return New()
	})
	registry.Register("endless", func() registry.Game {
		return NewEndless()
	})
}

// ID returns the mode identifier.
func (g *Game) ID() string {
	return string(g.mode)
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeEndless {
		return "Number Tiles (Endless)"
	}
	return "Number Tiles"
}

// Board exposes the underlying engine, mainly for tests and the renderer.
func (g *Game) Board() *Board {
	return g.board
}

// Cursor returns the current cursor position.
func (g *Game) Cursor() Coord {
	return g.cursor
}

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.gameOver = false
	g.paused = false
	g.moveProcessed = false

	gameCfg, err := config.Load(configPath)
	if err != nil {
		gameCfg = config.DefaultGameConfig()
	}
	if selectedSize >= 2 {
		gameCfg.Board.Size = core.Clamp(selectedSize, 2, 32)
		selectedSize = 0 // Reset after use
	}
	g.cfg = gameCfg

	board, err := RandomBoard(gameCfg.Board.Size, gameCfg.Board.StartBound, g.rng)
	if err != nil {
		// Size is validated by config; keep a playable board regardless.
		board, _ = RandomBoard(config.DefaultGameConfig().Board.Size, DefaultStartBound, g.rng)
	}
	g.board = board
	g.cursor = Coord{Row: board.Size() / 2, Col: board.Size() / 2}

	// A freshly generated board can, rarely, start with no matching
	// neighbors at all.
	g.gameOver = !g.board.IsCollapsible()

	g.checkScreenSize()
}

// checkScreenSize checks if the screen is large enough for the board
// plus HUD.
func (g *Game) checkScreenSize() {
	minW := g.board.Size()*cellWidth + 1
	minH := g.board.Size()*cellHeight + 1 + hudHeight + 1
	g.tooSmall = g.screenW < minW || g.screenH < minH
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++
	g.moveProcessed = false

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}

	if g.paused {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionRestart) && g.gameOver {
		// Will be reset by platform
		return core.StepResult{State: g.State()}
	}

	if g.gameOver {
		return core.StepResult{State: g.State()}
	}

	g.moveCursor(in)

	if in.Has(core.ActionSelect) && !g.moveProcessed {
		g.processCollapse()
		g.moveProcessed = true
	}

	return core.StepResult{State: g.State()}
}

// moveCursor applies cursor movement actions, clamping or wrapping at
// board edges depending on configuration.
func (g *Game) moveCursor(in core.InputFrame) {
	row, col := g.cursor.Row, g.cursor.Col

	switch {
	case in.Has(core.ActionUp):
		row--
	case in.Has(core.ActionDown):
		row++
	case in.Has(core.ActionLeft):
		col--
	case in.Has(core.ActionRight):
		col++
	default:
		return
	}

	n := g.board.Size()
	if g.cfg.Controls.WrapCursor {
		row = (row + n) % n
		col = (col + n) % n
	} else {
		row = core.Clamp(row, 0, n-1)
		col = core.Clamp(col, 0, n-1)
	}
	g.cursor = Coord{Row: row, Col: col}
}

// processCollapse collapses at the cursor and applies the mode's refill
// policy. Selecting an empty cell is a no-op.
func (g *Game) processCollapse() {
	if err := g.board.CollapseAt(g.cursor.Row, g.cursor.Col); err != nil {
		// Empty cell under the cursor in classic mode; nothing to do.
		return
	}

	if g.mode == ModeEndless {
		g.board.Refill(g.rng)
	}

	if !g.board.IsCollapsible() {
		g.gameOver = true
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.board.Score(),
		GameOver: g.gameOver,
		Paused:   g.paused || g.tooSmall,
	}
}
