package highscore

import (
	"errors"
	"math/rand/v2"
	"slices"
	"testing"
)

func names(entries []Entry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Name
	}
	return out
}

func TestNewRejectsNonPositiveMax(t *testing.T) {
	for _, n := range []int{0, -3} {
		if _, err := New(n); err == nil {
			t.Errorf("New(%d) should fail", n)
		}
	}
}

func TestAddNewHighscoreOrdering(t *testing.T) {
	b, err := New(5)
	if err != nil {
		t.Fatal(err)
	}

	b.AddNewHighscore("carol", 100)
	b.AddNewHighscore("bob", 300)
	b.AddNewHighscore("alice", 100)
	b.AddNewHighscore("dave", 200)

	want := []Entry{{"bob", 300}, {"dave", 200}, {"alice", 100}, {"carol", 100}}
	if got := b.Entries(); !slices.Equal(got, want) {
		t.Errorf("Entries() = %v, want %v", got, want)
	}
}

func TestAddNewHighscoreTruncates(t *testing.T) {
	b, _ := New(3)
	b.AddNewHighscore("a", 10)
	b.AddNewHighscore("b", 20)
	b.AddNewHighscore("c", 30)

	b.AddNewHighscore("d", 5)
	if got := names(b.Entries()); !slices.Equal(got, []string{"c", "b", "a"}) {
		t.Errorf("low score should fall off: %v", got)
	}

	b.AddNewHighscore("e", 25)
	if got := names(b.Entries()); !slices.Equal(got, []string{"c", "e", "b"}) {
		t.Errorf("lowest entry should be evicted: %v", got)
	}

	// tie at the boundary: name order decides
	b.AddNewHighscore("aa", 20)
	if got := names(b.Entries()); !slices.Equal(got, []string{"c", "e", "aa"}) {
		t.Errorf("tie-break eviction: %v", got)
	}
	if b.Len() != 3 || b.Max() != 3 {
		t.Errorf("Len()/Max() = %d/%d", b.Len(), b.Max())
	}
}

func TestAddHighscoreRefusesWhenFull(t *testing.T) {
	b, _ := New(2)
	if err := b.AddHighscore("a", 1); err != nil {
		t.Fatal(err)
	}
	if err := b.AddHighscore("b", 2); err != nil {
		t.Fatal(err)
	}

	err := b.AddHighscore("c", 99)
	if !errors.Is(err, ErrBoardFull) {
		t.Fatalf("AddHighscore() on full board = %v, want ErrBoardFull", err)
	}
	if got := names(b.Entries()); !slices.Equal(got, []string{"b", "a"}) {
		t.Errorf("full board changed: %v", got)
	}
}

func TestRankAndQualifies(t *testing.T) {
	b, _ := New(3)
	b.AddNewHighscore("a", 300)
	b.AddNewHighscore("m", 200)
	b.AddNewHighscore("z", 100)

	tests := []struct {
		name      string
		score     int
		rank      int
		qualifies bool
	}{
		{"x", 400, 1, true},
		{"b", 200, 2, true},
		{"k", 200, 2, true},
		{"y", 100, 3, true},
		{"zz", 100, 4, false},
		{"q", 50, 4, false},
	}

	for _, tt := range tests {
		if got := b.Rank(tt.name, tt.score); got != tt.rank {
			t.Errorf("Rank(%s, %d) = %d, want %d", tt.name, tt.score, got, tt.rank)
		}
		if got := b.Qualifies(tt.name, tt.score); got != tt.qualifies {
			t.Errorf("Qualifies(%s, %d) = %v, want %v", tt.name, tt.score, got, tt.qualifies)
		}
	}
}

func TestEntriesIsACopy(t *testing.T) {
	b, _ := New(2)
	b.AddNewHighscore("a", 1)
	e := b.Entries()
	e[0].Score = 1000
	if b.Entries()[0].Score != 1 {
		t.Error("Entries() aliases the board")
	}
}

func TestBoardStaysBoundedAndSorted(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))
	b, _ := New(8)
	pool := []string{"ann", "bea", "cal", "dan", "eve"}

	for i := 0; i < 500; i++ {
		b.AddNewHighscore(pool[rng.IntN(len(pool))], rng.IntN(50))
		entries := b.Entries()
		if len(entries) > b.Max() {
			t.Fatalf("board grew to %d", len(entries))
		}
		if !slices.IsSortedFunc(entries, compareEntries) {
			t.Fatalf("board out of order: %v", entries)
		}
	}
}
