package snake

import (
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/core"
)

const (
	hudHeight = 2 // status line + separator
	cellWidth = 2 // terminal cells are roughly twice as tall as wide
)

// boardRect returns where the bordered board goes on a w x h screen.
// ok is false when the screen cannot hold it.
func boardRect(rows, cols, w, h int) (core.Rect, bool) {
	boxW := cols*cellWidth + 2
	boxH := rows + 2
	if w < boxW || h < hudHeight+boxH+1 {
		return core.Rect{}, false
	}
	return core.NewRect((w-boxW)/2, hudHeight, boxW, boxH), true
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.engine == nil {
		return
	}
	snap := g.engine.Snapshot()

	g.renderHUD(dst, snap)

	box, ok := boardRect(snap.Rows, snap.Cols, dst.Width(), dst.Height())
	if !ok {
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	dst.DrawBox(box, core.ColorGray)
	renderBoard(dst, box, snap)
	g.renderFooter(dst, box, snap)

	switch {
	case snap.State == StateGameOver:
		g.renderOverlay(dst, fmt.Sprintf("Game Over - Score: %d", snap.Score), "Press R to restart")
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderBoard draws every cell of the grid inside box.
func renderBoard(dst *core.Screen, box core.Rect, snap Snapshot) {
	head := snap.Head()
	for r := 0; r < snap.Rows; r++ {
		for c := 0; c < snap.Cols; c++ {
			x := box.X + 1 + c*cellWidth
			y := box.Y + 1 + r
			switch {
			case snap.Active(r, c):
				color := core.ColorGreen
				if head == (core.Point{Row: r, Col: c}) {
					color = core.ColorBrightGreen
					if snap.State == StateGameOver {
						color = core.ColorRed
					}
				}
				dst.SetColored(x, y, '█', color)
				dst.SetColored(x+1, y, '█', color)
			case snap.HasFood(r, c):
				dst.SetColored(x, y, '●', core.ColorRed)
			}
		}
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen, snap Snapshot) {
	hud := fmt.Sprintf(" %s - Score: %d  Highscore: %d", g.Title(), snap.Score, snap.HighScore)
	dst.DrawText(0, 0, hud, core.ColorBrightWhite)

	for x := range dst.Width() {
		dst.SetColored(x, 1, '─', core.ColorGray)
	}
}

// renderFooter draws a hint line under the board.
func (g *Game) renderFooter(dst *core.Screen, box core.Rect, snap Snapshot) {
	hint := "arrows steer  s/space stop  p pause  q quit"
	if snap.State == StateStopped {
		hint = "Press an arrow key to start"
	}
	dst.DrawTextCentered(box.Bottom(), hint, core.ColorGray)
}

// renderOverlay draws a centered two-line message box.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	width := max(len([]rune(line1)), len([]rune(line2))) + 4
	height := 5
	box := core.NewRect((dst.Width()-width)/2, (dst.Height()-height)/2, width, height)

	dst.DrawRect(core.NewRect(box.X+1, box.Y+1, box.W-2, box.H-2), ' ')
	dst.DrawBox(box, core.ColorYellow)
	dst.DrawTextCentered(box.Y+1, line1, core.ColorBrightWhite)
	dst.DrawTextCentered(box.Y+3, line2, core.ColorYellow)
}
