package numbertiles

import (
	"fmt"
	"strconv"

	"github.com/vovakirdan/numbertiles/internal/core"
)

const (
	cellWidth  = 5 // Width of each cell (including borders)
	cellHeight = 2 // Height of each cell (including borders)
	hudHeight  = 3
)

// tileColors cycles tile values through distinct colors so equal
// neighbors are easy to spot.
var tileColors = []core.Color{
	core.ColorWhite,
	core.ColorCyan,
	core.ColorGreen,
	core.ColorYellow,
	core.ColorMagenta,
	core.ColorBlue,
	core.ColorRed,
	core.ColorBrightCyan,
	core.ColorBrightGreen,
	core.ColorBrightYellow,
	core.ColorBrightMagenta,
	core.ColorBrightBlue,
	core.ColorBrightRed,
}

// tileColor returns the display color for a tile value.
func tileColor(value int) core.Color {
	if value <= 0 {
		return core.ColorGray
	}
	return tileColors[(value-1)%len(tileColors)]
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	n := g.board.Size()
	boardW := n*cellWidth + 1  // +1 for right border
	boardH := n*cellHeight + 1 // +1 for bottom border

	boardX := (g.screenW - boardW) / 2
	boardY := hudHeight + 1

	g.renderHUD(dst, boardX, boardW)
	g.renderBoard(dst, boardX, boardY)
	g.renderOverlays(dst, boardX, boardY, boardW, boardH)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	msg := "Window too small"
	y := g.screenH / 2
	dst.DrawText((g.screenW-len(msg))/2, y, msg)

	hint := "Please resize terminal"
	dst.DrawText((g.screenW-len(hint))/2, y+1, hint)
}

// renderHUD draws the title, score and max-tile info.
func (g *Game) renderHUD(dst *core.Screen, boardX, boardW int) {
	title := "NUMBER TILES"
	dst.DrawText(boardX+(boardW-len(title))/2, 0, title)

	scoreStr := fmt.Sprintf("Score: %d", g.board.Score())
	dst.DrawText(boardX, 1, scoreStr)

	maxStr := fmt.Sprintf("Max: %d", g.board.MaxTile())
	maxX := boardX + boardW - len(maxStr)
	if maxX < boardX+len(scoreStr)+2 {
		maxX = boardX + len(scoreStr) + 2
	}
	dst.DrawText(maxX, 1, maxStr)

	modeStr := "Classic"
	if g.mode == ModeEndless {
		modeStr = "Endless"
	}
	dst.DrawText(boardX+(boardW-len(modeStr))/2, 2, modeStr)
}

// renderBoard draws the grid with tiles and the cursor highlight.
func (g *Game) renderBoard(dst *core.Screen, boardX, boardY int) {
	n := g.board.Size()

	// Grid borders
	for y := 0; y <= n; y++ {
		for x := 0; x <= n; x++ {
			px := boardX + x*cellWidth
			py := boardY + y*cellHeight

			var corner rune
			switch {
			case y == 0 && x == 0:
				corner = '┌'
			case y == 0 && x == n:
				corner = '┐'
			case y == n && x == 0:
				corner = '└'
			case y == n && x == n:
				corner = '┘'
			case y == 0:
				corner = '┬'
			case y == n:
				corner = '┴'
			case x == 0:
				corner = '├'
			case x == n:
				corner = '┤'
			default:
				corner = '┼'
			}
			dst.Set(px, py, corner)

			// Horizontal segment to the right of the intersection
			if x < n {
				for i := 1; i < cellWidth; i++ {
					dst.Set(px+i, py, '─')
				}
			}
			// Vertical segment below the intersection
			if y < n {
				for i := 1; i < cellHeight; i++ {
					dst.Set(px, py+i, '│')
				}
			}
		}
	}

	// Tile values
	tiles := g.board.Tiles()
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			cellX := boardX + j*cellWidth
			cellY := boardY + i*cellHeight + 1

			label := "·"
			color := core.ColorGray
			if tiles[i][j] != Empty {
				label = strconv.Itoa(tiles[i][j])
				color = tileColor(tiles[i][j])
			}

			under := g.cursor.Row == i && g.cursor.Col == j
			if under {
				color = core.ColorBrightWhite
			}

			textX := cellX + 1 + (cellWidth-1-len(label))/2
			for k, r := range label {
				dst.SetCell(textX+k, cellY, r, color)
			}
			if under {
				dst.SetCell(cellX+1, cellY, '[', core.ColorBrightYellow)
				dst.SetCell(cellX+cellWidth-1, cellY, ']', core.ColorBrightYellow)
			}
		}
	}
}

// renderOverlays draws pause and game-over messages over the board.
func (g *Game) renderOverlays(dst *core.Screen, boardX, boardY, boardW, boardH int) {
	centerY := boardY + boardH/2

	switch {
	case g.paused:
		g.renderMessageBox(dst, boardX, centerY, boardW, "PAUSED", "Press P to resume")
	case g.gameOver:
		g.renderMessageBox(dst, boardX, centerY, boardW,
			fmt.Sprintf("GAME OVER - Score: %d", g.board.Score()),
			"R to restart, Q to quit")
	}
}

// renderMessageBox draws a two-line boxed message centered on the board.
func (g *Game) renderMessageBox(dst *core.Screen, boardX, centerY, boardW int, line1, line2 string) {
	width := core.Max(len(line1), len(line2)) + 4
	if width > boardW {
		width = boardW
	}
	x := boardX + (boardW-width)/2
	y := centerY - 2

	dst.DrawBox(x, y, width, 4)
	for i := x + 1; i < x+width-1; i++ {
		dst.Set(i, y+1, ' ')
		dst.Set(i, y+2, ' ')
	}
	dst.DrawTextColored(x+(width-len(line1))/2, y+1, line1, core.ColorBrightYellow)
	dst.DrawText(x+(width-len(line2))/2, y+2, line2)
}
