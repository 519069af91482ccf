package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/games/t2048"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:       lipgloss.NewStyle(),
	core.ColorRed:           lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:         lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:        lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorBlue:          lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	core.ColorMagenta:       lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	core.ColorCyan:          lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorWhite:         lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorBrightRed:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
	core.ColorBrightGreen:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
	core.ColorBrightYellow:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
	core.ColorBrightBlue:    lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true),
	core.ColorBrightMagenta: lipgloss.NewStyle().Foreground(lipgloss.Color("13")).Bold(true),
	core.ColorBrightCyan:    lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true),
	core.ColorBrightWhite:   lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorOrange:        lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorGray:          lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// centerText pads text on the left so it sits in the middle of width columns.
func centerText(text string, width int) string {
	n := lipgloss.Width(text)
	if n >= width {
		return text
	}
	return strings.Repeat(" ", (width-n)/2) + text
}

const hudHeight = 3

// boardLayout is the on-screen geometry of the grid.
type boardLayout struct {
	rect  core.Rect
	cellW int // interior width of one cell
	cellH int // interior height of one cell
}

// layoutBoard sizes cells to the widest value and centers the board in area.
// Tall cells are used when they fit. ok is false when even one-line cells do not fit.
func layoutBoard(area core.Rect, rows, cols, widest int) (boardLayout, bool) {
	cellW := max(widest, 4) + 2
	boardW := cols*(cellW+1) + 1

	for _, cellH := range []int{3, 1} {
		boardH := rows*(cellH+1) + 1
		if boardW <= area.W && boardH <= area.H {
			r := area.Centered(boardW, boardH)
			r.Y = area.Y
			return boardLayout{rect: r, cellW: cellW, cellH: cellH}, true
		}
	}
	return boardLayout{}, false
}

// drawGrid draws the cell borders and tile values.
func drawGrid(dst *core.Screen, l boardLayout, g t2048.Grid) {
	rows, cols := g.Height(), g.Width()
	border := core.ColorGray

	for y := range rows + 1 {
		for x := range cols + 1 {
			px := l.rect.X + x*(l.cellW+1)
			py := l.rect.Y + y*(l.cellH+1)

			var corner rune
			switch {
			case y == 0 && x == 0:
				corner = '┌'
			case y == 0 && x == cols:
				corner = '┐'
			case y == rows && x == 0:
				corner = '└'
			case y == rows && x == cols:
				corner = '┘'
			case y == 0:
				corner = '┬'
			case y == rows:
				corner = '┴'
			case x == 0:
				corner = '├'
			case x == cols:
				corner = '┤'
			default:
				corner = '┼'
			}
			dst.Set(px, py, corner, border)

			if x < cols {
				for i := 1; i <= l.cellW; i++ {
					dst.Set(px+i, py, '─', border)
				}
			}
			if y < rows {
				for i := 1; i <= l.cellH; i++ {
					dst.Set(px, py+i, '│', border)
				}
			}
		}
	}

	for y, row := range g.Cells {
		for x, v := range row {
			cell := core.NewRect(
				l.rect.X+x*(l.cellW+1)+1,
				l.rect.Y+y*(l.cellH+1)+1,
				l.cellW, l.cellH,
			)
			_, cy := cell.Center()
			if v == 0 {
				dst.DrawTextCentered(cell, cy, "·", core.ColorGray)
				continue
			}
			dst.DrawTextCentered(cell, cy, strconv.Itoa(v), core.TileColor(v))
		}
	}
}

// drawOverlay draws a boxed, centered message over the board.
func drawOverlay(dst *core.Screen, area core.Rect, lines ...string) {
	widest := 0
	for _, line := range lines {
		widest = max(widest, len([]rune(line)))
	}

	box := area.Centered(widest+4, len(lines)+2)
	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorBrightYellow)
	for i, line := range lines {
		dst.DrawTextCentered(box, box.Y+1+i, line, core.ColorBrightWhite)
	}
}

// playView is everything drawPlay needs from the model.
type playView struct {
	snap      t2048.Snapshot
	best      int
	status    string
	showGoal  bool
	rank      int
	qualifies bool
}

// drawPlay renders the HUD, board, status line and overlays.
func drawPlay(dst *core.Screen, v playView) {
	dst.Clear()
	full := core.NewRect(0, 0, dst.Width(), dst.Height())
	snap := v.snap

	widest := len(strconv.Itoa(max(snap.Grid.MaxTile(), snap.Goal)))
	boardArea := core.NewRect(0, hudHeight, dst.Width(), dst.Height()-hudHeight-1)
	layout, ok := layoutBoard(boardArea, snap.Grid.Height(), snap.Grid.Width(), widest)
	if !ok {
		_, cy := full.Center()
		dst.DrawTextCentered(full, cy, "Window too small", core.ColorBrightRed)
		dst.DrawTextCentered(full, cy+1, "Please resize terminal", core.ColorDefault)
		return
	}
	hud := core.NewRect(layout.rect.X, 0, layout.rect.W, hudHeight)

	dst.DrawTextCentered(hud, 0, "2 0 4 8", core.ColorBrightYellow)

	score := fmt.Sprintf("Score %d", snap.Score)
	best := fmt.Sprintf("Best %d", max(v.best, snap.Score))
	dst.DrawText(hud.X, 1, score, core.ColorBrightWhite)
	dst.DrawText(hud.Right()-len(best), 1, best, core.ColorWhite)

	lives := strings.Repeat("♥", snap.Lives) + strings.Repeat("♡", max(snap.MaxLives-snap.Lives, 0))
	dst.DrawText(hud.X, 2, lives, core.ColorBrightRed)
	goal := fmt.Sprintf("Goal %d", snap.Goal)
	if snap.GoalReached {
		goal += " ✓"
	}
	dst.DrawTextCentered(hud, 2, goal, core.ColorBrightGreen)
	undos := fmt.Sprintf("Undo %d/%d", snap.Undos, snap.MaxUndos)
	dst.DrawText(hud.Right()-len(undos), 2, undos, core.ColorCyan)

	drawGrid(dst, layout, snap.Grid)

	if v.status != "" {
		dst.DrawTextCentered(full, layout.rect.Bottom(), v.status, core.ColorYellow)
	}

	switch {
	case snap.State == t2048.StateEnded:
		lines := []string{"GAME OVER", fmt.Sprintf("Score %d  Max tile %d", snap.Score, snap.Highest)}
		if v.qualifies {
			lines = append(lines, fmt.Sprintf("New highscore: #%d", v.rank))
		}
		lines = append(lines, "Press R for a new play")
		drawOverlay(dst, layout.rect, lines...)
	case snap.State == t2048.StatePaused:
		drawOverlay(dst, layout.rect, "PAUSED", "Press P to resume")
	case v.showGoal:
		drawOverlay(dst, layout.rect, fmt.Sprintf("%d reached!", snap.Goal), "Keep going")
	}
}
