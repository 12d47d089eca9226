// Package samegame provides the SameGame tile puzzle for the platform.
// A group of two or more same-colored adjacent tiles can be erased; the
// tiles above fall down, emptied columns close up, and the round ends when
// no erasable group remains.
package samegame

import (
	"math/rand"
	"os"
	"strings"

	"github.com/udonpa/samegame/internal/board"
	"github.com/udonpa/samegame/internal/config"
	"github.com/udonpa/samegame/internal/core"
	"github.com/udonpa/samegame/internal/registry"
)

// Variant selects the board preset.
type Variant string

const (
	VariantClassic Variant = "classic"
	VariantMini    Variant = "mini"
)

// Mini board dimensions. The classic dimensions come from config
// (20x10 by default).
const (
	miniWidth  = 12
	miniHeight = 7
)

// Game implements the SameGame puzzle.
type Game struct {
	variant Variant
	rng     *rand.Rand
	tick    uint64
	cfg     config.SameGameConfig

	board  *board.Board
	cursor board.Point
	score  int

	finished  bool // No erasable group remains
	cleared   bool // Finished with zero tiles left
	bonusPaid bool
	paused    bool
	tooSmall  bool

	// Screen dimensions and board layout
	screenW   int
	screenH   int
	cellW     int
	hudHeight int
	boardArea core.Rect // Screen-space rectangle covered by the grid
}

// Package-level variables for config (set by the CLI before creation).
var (
	configPath string
	boardFile  string
)

// SetConfigPath sets the path of a custom game config YAML.
func SetConfigPath(path string) {
	configPath = path
}

// SetBoardFile sets a board save file to load instead of a random board.
// Consumed by the next Reset.
func SetBoardFile(path string) {
	boardFile = path
}

// New creates a new classic SameGame.
func New() *Game {
	return &Game{
		variant:   VariantClassic,
		hudHeight: 2,
	}
}

// NewMini creates a new mini SameGame.
func NewMini() *Game {
	return &Game{
		variant:   VariantMini,
		hudHeight: 2,
	}
}

func init() {
	registry.Register("samegame", func() registry.Game {
		return New()
	})
	registry.Register("samegame_mini", func() registry.Game {
		return NewMini()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.variant == VariantMini {
		return "samegame_mini"
	}
	return "samegame"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.variant == VariantMini {
		return "SameGame (Mini)"
	}
	return "SameGame"
}

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0
	g.score = 0
	g.finished = false
	g.cleared = false
	g.bonusPaid = false
	g.paused = false
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH

	gameCfg, err := config.LoadSameGame(configPath)
	if err != nil {
		gameCfg = config.DefaultSameGameConfig()
	}
	g.cfg = gameCfg
	g.cellW = g.cfg.Render.CellWidth

	w, h := g.cfg.Board.Width, g.cfg.Board.Height
	if g.variant == VariantMini {
		w, h = miniWidth, miniHeight
	}

	g.board = nil
	if boardFile != "" {
		path := boardFile
		boardFile = "" // Consumed once, like a selected start level
		if data, readErr := os.ReadFile(path); readErr == nil {
			if b, parseErr := board.Parse(strings.NewReader(string(data))); parseErr == nil {
				g.board = b
			}
		}
	}
	if g.board == nil {
		g.board = board.RandomFrom(g.rng, w, h)
	}

	g.cursor = board.Point{X: 0, Y: 0}
	g.finished = g.board.IsFinished()
	g.cleared = g.finished && g.board.Remaining() == 0

	g.layout()
}

// layout computes the board's screen rectangle and the too-small flag.
func (g *Game) layout() {
	bw := g.board.Width() * g.cellW
	bh := g.board.Height()

	requiredW := bw + 2
	requiredH := bh + g.hudHeight + 3
	g.tooSmall = g.screenW < requiredW || g.screenH < requiredH
	if g.tooSmall {
		return
	}

	offsetX := (g.screenW - bw) / 2
	offsetY := g.hudHeight + 1
	g.boardArea = core.NewRect(offsetX, offsetY, bw, bh)
}

// cellAt converts a screen coordinate to a grid coordinate.
// Returns false when the point is outside the board.
func (g *Game) cellAt(sx, sy int) (board.Point, bool) {
	if !g.boardArea.Contains(sx, sy) {
		return board.Point{}, false
	}
	cx := (sx - g.boardArea.X) / g.cellW
	row := sy - g.boardArea.Y // Screen rows count down from the top
	return board.Point{X: cx, Y: g.board.Height() - 1 - row}, true
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	// Handle restart: a fresh random board at any time
	if in.Has(core.ActionRestart) {
		g.Reset(core.RuntimeConfig{
			Seed:    g.rng.Int63(),
			ScreenW: g.screenW,
			ScreenH: g.screenH,
		})
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}

	if g.paused || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	// Pointer moves the cursor; clicks outside the board are ignored
	mouseOnBoard := false
	if in.MouseMoved {
		if p, ok := g.cellAt(in.MouseX, in.MouseY); ok {
			g.cursor = p
			mouseOnBoard = true
		}
	}

	g.moveCursor(in)

	if g.finished {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionErase) || (in.MouseClick && mouseOnBoard) {
		g.eraseAtCursor()
	}

	return core.StepResult{State: g.State()}
}

// moveCursor applies keyboard cursor movement. Y grows upward on the
// board, so ActionUp increases Y.
func (g *Game) moveCursor(in core.InputFrame) {
	switch {
	case in.Has(core.ActionUp):
		g.cursor.Y = core.Clamp(g.cursor.Y+1, 0, g.board.Height()-1)
	case in.Has(core.ActionDown):
		g.cursor.Y = core.Clamp(g.cursor.Y-1, 0, g.board.Height()-1)
	case in.Has(core.ActionLeft):
		g.cursor.X = core.Clamp(g.cursor.X-1, 0, g.board.Width()-1)
	case in.Has(core.ActionRight):
		g.cursor.X = core.Clamp(g.cursor.X+1, 0, g.board.Width()-1)
	}
}

// eraseAtCursor erases the group under the cursor and updates score
// and terminal state.
func (g *Game) eraseAtCursor() {
	n := g.board.EraseComponent(g.cursor.X, g.cursor.Y)
	if n == 0 {
		return
	}

	g.score += (n - 1) * (n - 1)

	if g.board.IsFinished() {
		g.finished = true
		g.cleared = g.board.Remaining() == 0
		if g.cleared && !g.bonusPaid {
			g.score += g.cfg.Scoring.ClearBonus
			g.bonusPaid = true
		}
	}
}

// ExportBoard returns the board in its text save format.
func (g *Game) ExportBoard() string {
	return g.board.Encode()
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.finished,
		Paused:   g.paused || g.tooSmall,
	}
}
