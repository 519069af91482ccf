// Package highscore keeps a bounded leaderboard of name/score pairs ordered
// by score descending, ties broken by name ascending.
package highscore

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
)

// ErrBoardFull is returned by AddHighscore when the board is at capacity.
var ErrBoardFull = errors.New("highscore: board is full")

// Entry is one leaderboard line.
type Entry struct {
	Name  string `yaml:"name" json:"name"`
	Score int    `yaml:"score" json:"score"`
}

// Board is a bounded, always-sorted leaderboard.
type Board struct {
	max     int
	entries []Entry
}

// New creates an empty board holding at most maxEntries entries.
func New(maxEntries int) (*Board, error) {
	if maxEntries <= 0 {
		return nil, fmt.Errorf("highscore: max entries must be positive, got %d", maxEntries)
	}
	return &Board{max: maxEntries, entries: make([]Entry, 0, maxEntries)}, nil
}

func compareEntries(a, b Entry) int {
	if c := cmp.Compare(b.Score, a.Score); c != 0 {
		return c
	}
	return cmp.Compare(a.Name, b.Name)
}

// AddNewHighscore inserts an entry produced by gameplay. When the board
// overflows the lowest-ranked entry is dropped, which may be the new one.
func (b *Board) AddNewHighscore(name string, score int) {
	b.insert(Entry{Name: name, Score: score})
	if len(b.entries) > b.max {
		b.entries = b.entries[:b.max]
	}
}

// AddHighscore inserts a curated entry, e.g. when seeding the board from
// storage. It refuses rather than evicts when the board is full.
func (b *Board) AddHighscore(name string, score int) error {
	if len(b.entries) >= b.max {
		return fmt.Errorf("%w (%d entries)", ErrBoardFull, b.max)
	}
	b.insert(Entry{Name: name, Score: score})
	return nil
}

func (b *Board) insert(e Entry) {
	i, _ := slices.BinarySearchFunc(b.entries, e, compareEntries)
	b.entries = slices.Insert(b.entries, i, e)
}

// Entries returns a copy of the board in rank order.
func (b *Board) Entries() []Entry {
	return slices.Clone(b.entries)
}

// Len returns the number of entries.
func (b *Board) Len() int { return len(b.entries) }

// Max returns the capacity.
func (b *Board) Max() int { return b.max }

// Qualifies reports whether a gameplay score would stay on the board.
func (b *Board) Qualifies(name string, score int) bool {
	return b.Rank(name, score) <= b.max
}

// Rank returns the 1-based position the entry would take if inserted now.
func (b *Board) Rank(name string, score int) int {
	i, _ := slices.BinarySearchFunc(b.entries, Entry{Name: name, Score: score}, compareEntries)
	return i + 1
}
