package t2048

import (
	"slices"
	"testing"
)

func gridOf(score int, rows ...[]int) Grid {
	return Grid{Cells: rows, Score: score}
}

func TestSlideLineMerge(t *testing.T) {
	tests := []struct {
		name     string
		input    []int
		expected []int
		score    int
	}{
		{
			name:     "simple merge",
			input:    []int{2, 2, 0, 0},
			expected: []int{4, 0, 0, 0},
			score:    4,
		},
		{
			name:     "merge with trailing tile",
			input:    []int{2, 2, 2, 0},
			expected: []int{4, 2, 0, 0},
			score:    4,
		},
		{
			name:     "double merge",
			input:    []int{2, 2, 2, 2},
			expected: []int{4, 4, 0, 0},
			score:    8,
		},
		{
			name:     "merged tile is not merged again",
			input:    []int{2, 2, 4, 0},
			expected: []int{4, 4, 0, 0},
			score:    4,
		},
		{
			name:     "only first pair after compaction merges",
			input:    []int{4, 0, 4, 4},
			expected: []int{8, 4, 0, 0},
			score:    8,
		},
		{
			name:     "no merge possible",
			input:    []int{2, 4, 8, 16},
			expected: []int{2, 4, 8, 16},
			score:    0,
		},
		{
			name:     "slide with multiple gaps",
			input:    []int{2, 0, 0, 2},
			expected: []int{4, 0, 0, 0},
			score:    4,
		},
		{
			name:     "empty row",
			input:    []int{0, 0, 0, 0},
			expected: []int{0, 0, 0, 0},
			score:    0,
		},
		{
			name:     "single tile",
			input:    []int{0, 4, 0, 0},
			expected: []int{4, 0, 0, 0},
			score:    0,
		},
		{
			name:     "long line",
			input:    []int{8, 8, 8, 0, 8, 16, 16, 2},
			expected: []int{16, 16, 32, 2, 0, 0, 0, 0},
			score:    64,
		},
		{
			name:     "non power of two spawnables",
			input:    []int{3, 3, 6, 0, 0},
			expected: []int{6, 6, 0, 0, 0},
			score:    6,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, score := slideLine(tt.input)
			if !slices.Equal(result, tt.expected) {
				t.Errorf("slideLine(%v) = %v, want %v", tt.input, result, tt.expected)
			}
			if score != tt.score {
				t.Errorf("slideLine(%v) score = %d, want %d", tt.input, score, tt.score)
			}
		})
	}
}

func TestMoveDirections(t *testing.T) {
	board := gridOf(0,
		[]int{2, 2, 0, 0},
		[]int{4, 0, 4, 0},
		[]int{2, 2, 2, 2},
		[]int{0, 0, 0, 2},
	)

	tests := []struct {
		dir      Direction
		expected Grid
		score    int
	}{
		{
			dir: DirLeft,
			expected: gridOf(0,
				[]int{4, 0, 0, 0},
				[]int{8, 0, 0, 0},
				[]int{4, 4, 0, 0},
				[]int{2, 0, 0, 0},
			),
			score: 20,
		},
		{
			dir: DirRight,
			expected: gridOf(0,
				[]int{0, 0, 0, 4},
				[]int{0, 0, 0, 8},
				[]int{0, 0, 4, 4},
				[]int{0, 0, 0, 2},
			),
			score: 20,
		},
		{
			dir: DirUp,
			expected: gridOf(0,
				[]int{2, 4, 4, 4},
				[]int{4, 0, 2, 0},
				[]int{2, 0, 0, 0},
				[]int{0, 0, 0, 0},
			),
			score: 8,
		},
		{
			dir: DirDown,
			expected: gridOf(0,
				[]int{0, 0, 0, 0},
				[]int{2, 0, 0, 0},
				[]int{4, 0, 4, 0},
				[]int{2, 4, 2, 4},
			),
			score: 8,
		},
	}

	for _, tt := range tests {
		t.Run(tt.dir.String(), func(t *testing.T) {
			result, changed, score := Move(board, tt.dir)
			if !result.Equal(tt.expected) {
				t.Errorf("Move(%s): got\n%vwant\n%v", tt.dir, result, tt.expected)
			}
			if !changed {
				t.Errorf("Move(%s) should indicate the grid changed", tt.dir)
			}
			if score != tt.score {
				t.Errorf("Move(%s) score delta = %d, want %d", tt.dir, score, tt.score)
			}
			if result.Score != board.Score+tt.score {
				t.Errorf("Move(%s) grid score = %d, want %d", tt.dir, result.Score, board.Score+tt.score)
			}
		})
	}
}

func TestMoveDoesNotMutateInput(t *testing.T) {
	board := gridOf(10, []int{2, 2}, []int{0, 4})
	before := board.Clone()

	Move(board, DirLeft)

	if !board.Equal(before) || board.Score != before.Score {
		t.Errorf("Move mutated its input:\n%v", board)
	}
}

func TestMoveRectangularGrid(t *testing.T) {
	board := gridOf(0,
		[]int{2, 0, 2, 4, 4},
		[]int{0, 0, 0, 0, 2},
	)

	up, changed, score := Move(board, DirUp)
	want := gridOf(0,
		[]int{2, 0, 2, 4, 4},
		[]int{0, 0, 0, 0, 2},
	)
	if changed || score != 0 || !up.Equal(want) {
		t.Errorf("Move(up) on top-aligned 2x5 grid changed it: %v", up)
	}

	right, changed, score := Move(board, DirRight)
	want = gridOf(0,
		[]int{0, 0, 0, 4, 8},
		[]int{0, 0, 0, 0, 2},
	)
	if !changed || score != 12 || !right.Equal(want) {
		t.Errorf("Move(right) = %v (changed=%v score=%d), want %v", right, changed, score, want)
	}
}

func TestNoOpMoveIsIdempotent(t *testing.T) {
	grids := []Grid{
		gridOf(0, []int{4, 2, 0, 0}, []int{0, 0, 0, 0}),
		gridOf(8, []int{2, 4}, []int{4, 2}),
		gridOf(0, []int{0, 0, 0}, []int{0, 0, 0}, []int{0, 0, 0}),
	}

	for _, g := range grids {
		for _, dir := range Directions {
			first, changed, delta := Move(g, dir)
			if changed {
				continue
			}
			second, changedAgain, deltaAgain := Move(first, dir)
			if changedAgain || deltaAgain != 0 || delta != 0 || !second.Equal(first) || second.Score != g.Score {
				t.Errorf("no-op %s move on\n%vwas not idempotent", dir, g)
			}
		}
	}
}

func TestScoreDeltaEqualsMergeSum(t *testing.T) {
	board := gridOf(100,
		[]int{2, 2, 8, 8},
		[]int{16, 0, 0, 16},
		[]int{2, 4, 8, 16},
		[]int{0, 0, 0, 0},
	)

	result, _, delta := Move(board, DirLeft)
	if delta != 4+16+32 {
		t.Errorf("score delta = %d, want %d", delta, 4+16+32)
	}
	if result.Score != 100+delta {
		t.Errorf("grid score = %d, want %d", result.Score, 100+delta)
	}
}

func TestMoveUnknownDirection(t *testing.T) {
	board := gridOf(0, []int{2, 2})
	result, changed, score := Move(board, Direction(42))
	if changed || score != 0 || !result.Equal(board) {
		t.Errorf("Move with unknown direction changed the grid: %v", result)
	}
}

func TestCanMove(t *testing.T) {
	stuck := gridOf(0,
		[]int{2, 4, 8, 16},
		[]int{32, 64, 128, 256},
		[]int{512, 1024, 2048, 4096},
		[]int{8192, 16384, 32768, 65536},
	)
	if CanMove(stuck) {
		t.Error("grid with no moves should be stuck")
	}

	withMerge := stuck.With(Cell{Row: 0, Col: 1}, 2)
	if !CanMove(withMerge) {
		t.Error("grid with a possible merge should be movable")
	}

	withEmpty := stuck.With(Cell{Row: 2, Col: 2}, 0)
	if !CanMove(withEmpty) {
		t.Error("grid with an empty cell should be movable")
	}
}

func TestGridHelpers(t *testing.T) {
	g := gridOf(0, []int{0, 2, 0}, []int{64, 0, 8})

	if g.Height() != 2 || g.Width() != 3 {
		t.Errorf("dimensions = %dx%d, want 3x2", g.Width(), g.Height())
	}
	if g.MaxTile() != 64 {
		t.Errorf("MaxTile() = %d, want 64", g.MaxTile())
	}

	empty := g.EmptyCells()
	want := []Cell{{0, 0}, {0, 2}, {1, 1}}
	if !slices.Equal(empty, want) {
		t.Errorf("EmptyCells() = %v, want %v", empty, want)
	}

	clone := g.Clone()
	clone.Cells[0][0] = 4
	if g.Cells[0][0] != 0 {
		t.Error("Clone shares cells with the original")
	}
}
