package savegame

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/tui-2048/internal/games/t2048"
)

// memRW is an in-memory ReadWriter.
type memRW struct {
	data string
}

func (m *memRW) Read() (string, error)   { return m.data, nil }
func (m *memRW) Write(data string) error { m.data = data; return nil }

func sampleState() t2048.SavedState {
	return t2048.SavedState{
		RemainingLives:     2,
		GridWidth:          3,
		GridHeight:         2,
		PlayerName:         "alice",
		Goal:               256,
		AcceptedSpawnables: []int{2, 4},
		UndoChain: []t2048.Grid{
			{Cells: [][]int{{4, 2, 0}, {0, 0, 8}}, Score: 12},
			{Cells: [][]int{{2, 2, 0}, {0, 0, 8}}, Score: 8},
		},
	}
}

func TestEncodeDecode(t *testing.T) {
	data, err := Encode(sampleState())
	if err != nil {
		t.Fatalf("Encode() failed: %v", err)
	}

	got, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode() failed: %v", err)
	}
	want := sampleState()
	if got.PlayerName != want.PlayerName || got.RemainingLives != want.RemainingLives || got.Goal != want.Goal {
		t.Errorf("Decode() = %+v", got)
	}
	if len(got.UndoChain) != 2 || !got.UndoChain[0].Equal(want.UndoChain[0]) || got.UndoChain[1].Score != 8 {
		t.Errorf("undo chain = %+v", got.UndoChain)
	}

	// the decoded record must rebuild a play
	r, err := t2048.Restore(got, t2048.DefaultSettings(), t2048.NewRand(1))
	if err != nil {
		t.Fatalf("Restore(decoded) failed: %v", err)
	}
	if r.Score() != 12 || r.UndoCount() != 1 {
		t.Errorf("restored score/undos = %d/%d", r.Score(), r.UndoCount())
	}
}

func TestDecodeErrors(t *testing.T) {
	if _, err := Decode("  \n"); !errors.Is(err, ErrNoSave) {
		t.Errorf("Decode(blank) = %v, want ErrNoSave", err)
	}
	if _, err := Decode("undo_chain: [[["); err == nil || errors.Is(err, ErrNoSave) {
		t.Errorf("Decode(garbage) = %v, want a decode error", err)
	}
}

func TestFileSaveLoad(t *testing.T) {
	f := File{Path: filepath.Join(t.TempDir(), "nested", "play.yaml")}

	if _, err := Load(f); !errors.Is(err, ErrNoSave) {
		t.Fatalf("Load(missing) = %v, want ErrNoSave", err)
	}
	if err := Save(f, sampleState()); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	got, err := Load(f)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if got.PlayerName != "alice" || len(got.UndoChain) != 2 {
		t.Errorf("Load() = %+v", got)
	}

	if err := Clear(f); err != nil {
		t.Fatalf("Clear() failed: %v", err)
	}
	if _, err := Load(f); !errors.Is(err, ErrNoSave) {
		t.Errorf("Load() after Clear() = %v, want ErrNoSave", err)
	}
}

func TestSaveThroughInterface(t *testing.T) {
	rw := &memRW{}
	if err := Save(rw, sampleState()); err != nil {
		t.Fatal(err)
	}
	if rw.data == "" {
		t.Fatal("nothing written")
	}
	got, err := Load(rw)
	if err != nil || got.Goal != 256 {
		t.Errorf("Load() = %+v, %v", got, err)
	}
}
