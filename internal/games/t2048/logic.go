package t2048

import (
	"fmt"
	"strings"
)

// Direction represents a move direction.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// Directions lists all four move directions.
var Directions = [...]Direction{DirUp, DirDown, DirLeft, DirRight}

// String returns the lowercase direction name.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return fmt.Sprintf("direction(%d)", int(d))
	}
}

// Cell addresses a single grid cell.
type Cell struct {
	Row, Col int
}

// Grid is one turn's tile layout and accumulated score.
// Values are treated as immutable: every operation returns a fresh Grid.
type Grid struct {
	Cells [][]int `yaml:"cells" json:"cells"`
	Score int     `yaml:"score" json:"score"`
}

// NewGrid returns an empty grid with the given dimensions.
func NewGrid(height, width int) Grid {
	cells := make([][]int, height)
	for r := range cells {
		cells[r] = make([]int, width)
	}
	return Grid{Cells: cells}
}

// Height returns the number of rows.
func (g Grid) Height() int {
	return len(g.Cells)
}

// Width returns the number of columns.
func (g Grid) Width() int {
	if len(g.Cells) == 0 {
		return 0
	}
	return len(g.Cells[0])
}

// Clone returns a deep copy.
func (g Grid) Clone() Grid {
	cells := make([][]int, len(g.Cells))
	for r, row := range g.Cells {
		cells[r] = append([]int(nil), row...)
	}
	return Grid{Cells: cells, Score: g.Score}
}

// Equal reports whether both grids hold the same tiles. Score is ignored.
func (g Grid) Equal(o Grid) bool {
	if g.Height() != o.Height() || g.Width() != o.Width() {
		return false
	}
	for r := range g.Cells {
		for c := range g.Cells[r] {
			if g.Cells[r][c] != o.Cells[r][c] {
				return false
			}
		}
	}
	return true
}

// EmptyCells returns coordinates of all empty cells in row-major order.
func (g Grid) EmptyCells() []Cell {
	var cells []Cell
	for r, row := range g.Cells {
		for c, v := range row {
			if v == 0 {
				cells = append(cells, Cell{Row: r, Col: c})
			}
		}
	}
	return cells
}

// MaxTile returns the maximum tile value on the grid.
func (g Grid) MaxTile() int {
	maxVal := 0
	for _, row := range g.Cells {
		for _, v := range row {
			if v > maxVal {
				maxVal = v
			}
		}
	}
	return maxVal
}

// With returns a copy of the grid with one cell replaced.
func (g Grid) With(cell Cell, value int) Grid {
	out := g.Clone()
	out.Cells[cell.Row][cell.Col] = value
	return out
}

// String renders the grid as whitespace-aligned rows, mostly for logs and test failures.
func (g Grid) String() string {
	var sb strings.Builder
	for _, row := range g.Cells {
		for c, v := range row {
			if c > 0 {
				sb.WriteByte(' ')
			}
			fmt.Fprintf(&sb, "%5d", v)
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// slideLine compacts a line toward index 0 and merges equal neighbours.
// A tile produced by a merge is consumed and cannot merge again in the same move.
// Returns the new line and the score gained from merges.
func slideLine(line []int) ([]int, int) {
	result := make([]int, len(line))
	score := 0
	writePos := 0
	consumed := false // whether result[writePos-1] came from a merge

	for _, v := range line {
		if v == 0 {
			continue
		}

		if writePos > 0 && !consumed && result[writePos-1] == v {
			result[writePos-1] *= 2
			score += result[writePos-1]
			consumed = true
			continue
		}

		result[writePos] = v
		writePos++
		consumed = false
	}

	return result, score
}

// lineCells returns the cell coordinates of line i for dir, ordered so that
// index 0 is the edge tiles travel toward.
func lineCells(height, width int, dir Direction, i int) []Cell {
	var cells []Cell
	switch dir {
	case DirLeft:
		for c := range width {
			cells = append(cells, Cell{Row: i, Col: c})
		}
	case DirRight:
		for c := width - 1; c >= 0; c-- {
			cells = append(cells, Cell{Row: i, Col: c})
		}
	case DirUp:
		for r := range height {
			cells = append(cells, Cell{Row: r, Col: i})
		}
	case DirDown:
		for r := height - 1; r >= 0; r-- {
			cells = append(cells, Cell{Row: r, Col: i})
		}
	}
	return cells
}

// lineCount returns how many lines run parallel to dir.
func lineCount(height, width int, dir Direction) int {
	if dir == DirLeft || dir == DirRight {
		return height
	}
	return width
}

// Move slides every tile in the given direction and merges equal neighbours.
// Returns the new grid (with its score already increased), whether any cell
// changed, and the score gained. The input grid is never modified.
func Move(grid Grid, dir Direction) (Grid, bool, int) {
	if dir < DirUp || dir > DirRight {
		return grid.Clone(), false, 0
	}

	h, w := grid.Height(), grid.Width()
	out := NewGrid(h, w)
	total := 0
	changed := false

	for i := range lineCount(h, w, dir) {
		cells := lineCells(h, w, dir, i)
		line := make([]int, len(cells))
		for j, cell := range cells {
			line[j] = grid.Cells[cell.Row][cell.Col]
		}

		slid, score := slideLine(line)
		total += score

		for j, cell := range cells {
			out.Cells[cell.Row][cell.Col] = slid[j]
			if slid[j] != line[j] {
				changed = true
			}
		}
	}

	out.Score = grid.Score + total
	return out, changed, total
}

// CanMove returns true if any direction changes the grid.
func CanMove(grid Grid) bool {
	for _, dir := range Directions {
		if _, changed, _ := Move(grid, dir); changed {
			return true
		}
	}
	return false
}
