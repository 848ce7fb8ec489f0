package t2048

import (
	"fmt"
	"math/bits"
	"strconv"

	"github.com/vovakirdan/tui-2048/internal/core"
)

const (
	cellWidth  = 7 // Width of each cell (including the left border)
	cellHeight = 2 // Height of each cell (including the top border)
	hudHeight  = 3
)

// tileColors is indexed by log2 of the tile value; larger tiles reuse the last entry.
var tileColors = []core.Color{
	core.ColorDefault,
	core.ColorWhite,         // 2
	core.ColorBrightWhite,   // 4
	core.ColorYellow,        // 8
	core.ColorBrightYellow,  // 16
	core.ColorOrange,        // 32
	core.ColorRed,           // 64
	core.ColorBrightRed,     // 128
	core.ColorMagenta,       // 256
	core.ColorBrightMagenta, // 512
	core.ColorCyan,          // 1024
	core.ColorBrightCyan,    // 2048
	core.ColorGreen,         // 4096
	core.ColorBrightGreen,   // 8192
	core.ColorBlue,          // 16384+
}

// tileColor picks the color a tile value is drawn in.
func tileColor(value int) core.Color {
	if value <= 0 {
		return core.ColorDefault
	}
	idx := bits.Len(uint(value)) - 1
	if idx >= len(tileColors) {
		idx = len(tileColors) - 1
	}
	return tileColors[idx]
}

// boardExtent returns the drawn width and height of a size x size grid.
func boardExtent(size int) (w, h int) {
	return size*cellWidth + 1, size*cellHeight + 1
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	boardW, boardH := boardExtent(g.model.Size())
	area := core.CenteredRect(g.screenW, boardH, boardW, boardH)
	boardX, boardY := area.X, hudHeight+1

	g.renderHUD(dst, boardX, boardW)
	g.renderBoard(dst, boardX, boardY)
	g.renderOverlays(dst, boardX, boardY, boardW, boardH)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, "Please resize terminal")
}

// renderHUD draws the score and level info.
func (g *Game) renderHUD(dst *core.Screen, boardX, boardW int) {
	title := "2048"
	dst.SetColor(core.ColorBrightYellow)
	dst.DrawText(boardX+(boardW-len(title))/2, 0, title)
	dst.SetColor(core.ColorDefault)

	st := g.State()
	score := fmt.Sprintf("Score: %d", st.Score)
	dst.DrawText(boardX, 1, score)

	var modeStr, info string
	switch g.mode {
	case ModeCampaign:
		modeStr = "Campaign"
		info = fmt.Sprintf("Level %d/%d  Target: %d", g.levelIndex+1, LevelCount(), g.model.MaxPiece())
	case ModeClassic:
		modeStr = "Classic"
		info = fmt.Sprintf("Best: %d  Target: %d", st.BestScore, g.model.MaxPiece())
	default:
		modeStr = "Endless"
		info = fmt.Sprintf("Best: %d  Max: %d", st.BestScore, st.MaxTile)
	}

	// The mode label shares the score row only when both fit above the board.
	dst.SetColor(core.ColorGray)
	if len(score)+1+len(modeStr) <= boardW {
		dst.DrawText(boardX+boardW-len(modeStr), 1, modeStr)
	}
	dst.SetColor(core.ColorDefault)

	dst.DrawText(max(boardX+(boardW-len(info))/2, 0), 2, info)
}

// renderBoard draws the grid with the northmost row at the top.
func (g *Game) renderBoard(dst *core.Screen, boardX, boardY int) {
	size := g.model.Size()

	dst.SetColor(core.ColorGray)
	for y := range size + 1 {
		for x := range size + 1 {
			px := boardX + x*cellWidth
			py := boardY + y*cellHeight

			var corner rune
			switch {
			case y == 0 && x == 0:
				corner = '┌'
			case y == 0 && x == size:
				corner = '┐'
			case y == size && x == 0:
				corner = '└'
			case y == size && x == size:
				corner = '┘'
			case y == 0:
				corner = '┬'
			case y == size:
				corner = '┴'
			case x == 0:
				corner = '├'
			case x == size:
				corner = '┤'
			default:
				corner = '┼'
			}
			dst.Set(px, py, corner)

			if x < size {
				for i := 1; i < cellWidth; i++ {
					dst.Set(px+i, py, '─')
				}
			}
			if y < size {
				for i := 1; i < cellHeight; i++ {
					dst.Set(px, py+i, '│')
				}
			}
		}
	}

	for y, line := range g.model.Values() {
		for x, val := range line {
			if val == 0 {
				continue
			}

			cellX := boardX + x*cellWidth + 1
			cellY := boardY + y*cellHeight + 1

			valStr := strconv.Itoa(val)
			padLeft := max((cellWidth-1-len(valStr))/2, 0)

			dst.SetColor(tileColor(val))
			dst.DrawText(cellX+padLeft, cellY, valStr)
		}
	}
	dst.SetColor(core.ColorDefault)
}

// renderOverlays draws game state overlays.
func (g *Game) renderOverlays(dst *core.Screen, boardX, boardY, boardW, boardH int) {
	centerX := boardX + boardW/2
	centerY := boardY + boardH/2

	if g.paused {
		g.drawOverlay(dst, centerX, centerY, "PAUSED", "Press P to resume")
		return
	}

	if g.levelCleared {
		targetStr := fmt.Sprintf("Target %d reached!", g.model.MaxPiece())
		if g.levelIndex >= LevelCount()-1 {
			g.drawOverlay(dst, centerX, centerY, targetStr, "Final level complete!")
		} else {
			nextStr := fmt.Sprintf("Next: Level %d", g.levelIndex+2)
			g.drawOverlay(dst, centerX, centerY, targetStr, nextStr)
		}
		return
	}

	if g.won {
		if g.mode == ModeCampaign {
			g.drawOverlay(dst, centerX, centerY, "CAMPAIGN COMPLETE!", "You are the champion!", "Press R to restart")
		} else {
			g.drawOverlay(dst, centerX, centerY, "YOU WIN!", fmt.Sprintf("Reached %d", g.model.MaxPiece()), "Press R to restart")
		}
		return
	}

	if g.gameOver {
		maxStr := fmt.Sprintf("Max tile: %d", g.model.MaxTile())
		g.drawOverlay(dst, centerX, centerY, "GAME OVER", maxStr, "Press R to restart")
	}
}

// drawOverlay draws a centered text overlay.
func (g *Game) drawOverlay(dst *core.Screen, centerX, centerY int, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = max(maxLen, len(line))
	}

	box := core.NewRect(centerX-(maxLen+4)/2, centerY-(len(lines)+2)/2, maxLen+4, len(lines)+2)

	dst.SetColor(core.ColorDefault)
	dst.DrawRect(box, ' ')
	dst.SetColor(core.ColorBrightWhite)
	dst.DrawBox(box)
	for i, line := range lines {
		dst.DrawText(centerX-len(line)/2, box.Y+1+i, line)
	}
	dst.SetColor(core.ColorDefault)
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "Arrow keys/WASD/HJKL: Move | P: Pause | R: Restart | Q: Quit"
}
