package samegame

import (
	"fmt"

	"github.com/udonpa/samegame/internal/board"
	"github.com/udonpa/samegame/internal/core"
)

// tileColors maps a cell value (1..board.Colors) to its display color.
// Index 0 is unused; empty cells are not drawn.
var tileColors = [board.Colors + 1]core.Color{
	core.ColorDefault,
	core.ColorRed,
	core.ColorGreen,
	core.ColorYellow,
	core.ColorBlue,
	core.ColorMagenta,
}

// highlightColors are the bright variants used for the group under the cursor.
var highlightColors = [board.Colors + 1]core.Color{
	core.ColorDefault,
	core.ColorBrightRed,
	core.ColorBrightGreen,
	core.ColorBrightYellow,
	core.ColorBrightBlue,
	core.ColorBrightMagenta,
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	// Draw HUD
	g.renderHUD(dst)

	// Handle special states
	if g.tooSmall {
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	// Draw board frame and tiles
	dst.DrawBox(core.NewRect(g.boardArea.X-1, g.boardArea.Y-1, g.boardArea.W+2, g.boardArea.H+2))
	g.renderBoard(dst)

	// Draw overlays
	switch {
	case g.cleared:
		g.renderOverlay(dst, "Board cleared!", fmt.Sprintf("Final Score: %d", g.score))
	case g.finished:
		g.renderOverlay(dst, "No more moves", "Press R for a new board")
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" %s — Score: %d  Tiles: %d", g.Title(), g.score, g.board.Remaining())
	dst.DrawText(0, 0, hud)

	// Draw separator
	for x := 0; x < dst.Width(); x++ {
		dst.Set(x, 1, '─')
	}
}

// renderBoard draws the tiles, with the group under the cursor highlighted.
func (g *Game) renderBoard(dst *core.Screen) {
	// The group under the cursor, if it is erasable
	var group map[board.Point]bool
	if !g.finished {
		if comp := g.board.CalcComponent(g.cursor.X, g.cursor.Y); comp != nil {
			group = make(map[board.Point]bool, len(comp))
			for _, p := range comp {
				group[p] = true
			}
		}
	}

	w, h := g.board.Width(), g.board.Height()
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			sx := g.boardArea.X + x*g.cellW
			sy := g.boardArea.Y + (h - 1 - y) // Row 0 is the bottom of a column

			p := board.Point{X: x, Y: y}
			v := g.board.At(x, y)

			ch := '█'
			color := core.ColorDefault
			switch {
			case group[p]:
				ch = '▓'
				color = highlightColors[v]
			case v != 0:
				color = tileColors[v]
			case p == g.cursor:
				ch = '·'
				color = core.ColorGray
			default:
				continue
			}

			for i := 0; i < g.cellW; i++ {
				dst.SetCell(sx+i, sy, ch, color)
			}
		}
	}
}

// renderOverlay draws a centered overlay message.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	w := dst.Width()
	h := dst.Height()

	// Calculate box dimensions
	maxLen := len(line1)
	if len(line2) > maxLen {
		maxLen = len(line2)
	}
	boxW := maxLen + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	// Draw box
	for y := boxY; y < boxY+boxH && y < h; y++ {
		for x := boxX; x < boxX+boxW && x < w; x++ {
			if x < 0 || y < 0 {
				continue
			}
			isTopOrBottom := y == boxY || y == boxY+boxH-1
			isLeftOrRight := x == boxX || x == boxX+boxW-1
			switch {
			case isTopOrBottom && isLeftOrRight:
				dst.Set(x, y, '+')
			case isTopOrBottom:
				dst.Set(x, y, '-')
			case isLeftOrRight:
				dst.Set(x, y, '|')
			default:
				dst.Set(x, y, ' ')
			}
		}
	}

	// Draw text
	dst.DrawTextCentered(boxY+1, line1)
	dst.DrawTextCentered(boxY+3, line2)
}
