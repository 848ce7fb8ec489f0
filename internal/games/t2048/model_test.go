package t2048

import (
	"errors"
	"testing"
)

func TestNewModelFromValuesOrientation(t *testing.T) {
	m := mustModel(t, [][]int{
		{0, 0, 8},
		{0, 0, 0},
		{2, 0, 0},
	}, 0)

	if tile := m.Tile(0, 0); tile == nil || tile.Value() != 2 {
		t.Errorf("Tile(0,0) = %v, want the lower-left 2", tile)
	}
	if tile := m.Tile(2, 2); tile == nil || tile.Value() != 8 {
		t.Errorf("Tile(2,2) = %v, want the upper-right 8", tile)
	}
	if m.Size() != 3 {
		t.Errorf("Size() = %d, want 3", m.Size())
	}
}

func TestNewModelFromValuesRejectsBadInput(t *testing.T) {
	tests := []struct {
		name  string
		raw   [][]int
		score int
	}{
		{"empty", [][]int{}, 0},
		{"not square", [][]int{{2, 0}, {0}}, 0},
		{"not a power of two", [][]int{{3, 0}, {0, 0}}, 0},
		{"negative value", [][]int{{-2, 0}, {0, 0}}, 0},
		{"negative score", [][]int{{2, 0}, {0, 0}}, -1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewModelFromValues(tc.raw, tc.score, 0, false)
			if !errors.Is(err, ErrInvalidConstruction) {
				t.Errorf("err = %v, want ErrInvalidConstruction", err)
			}
		})
	}
}

func TestNewModelFromTilesRejectsDuplicates(t *testing.T) {
	_, err := NewModelFromTiles(4, []Tile{NewTile(2, 1, 1), NewTile(4, 1, 1)}, 0, 0)
	if !errors.Is(err, ErrInvalidConstruction) {
		t.Errorf("err = %v, want ErrInvalidConstruction", err)
	}
	if !errors.Is(err, ErrOccupiedCell) {
		t.Errorf("err = %v, want it to wrap ErrOccupiedCell", err)
	}

	_, err = NewModelFromTiles(2, []Tile{NewTile(2, 5, 0)}, 0, 0)
	if !errors.Is(err, ErrInvalidConstruction) || !errors.Is(err, ErrOutOfRange) {
		t.Errorf("out of range tile: err = %v", err)
	}

	if _, err := NewModelFromTiles(0, nil, 0, 0); !errors.Is(err, ErrInvalidConstruction) {
		t.Errorf("zero size: err = %v", err)
	}
}

func TestGameOverNoMoves(t *testing.T) {
	m, err := NewModelFromValues([][]int{
		{2, 4, 8, 16},
		{32, 64, 128, 256},
		{2, 4, 8, 16},
		{32, 64, 128, 256},
	}, 300, 100, false)
	if err != nil {
		t.Fatal(err)
	}

	if !m.GameOver() {
		t.Fatal("board with no empty cell and no equal neighbours should be over")
	}
	if m.MaxScore() != 300 {
		t.Errorf("MaxScore() = %d, want 300 once the game is over", m.MaxScore())
	}

	for i := 0; i < 3; i++ {
		m.GameOver()
	}
	if m.MaxScore() != 300 {
		t.Errorf("repeated GameOver() moved MaxScore to %d", m.MaxScore())
	}
}

func TestGameOverWithMaxTile(t *testing.T) {
	m, err := NewModelFromValues([][]int{
		{2048, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 2},
	}, 50, 10, false)
	if err != nil {
		t.Fatal(err)
	}

	if !m.GameOver() {
		t.Error("board holding the max piece should be over even with moves left")
	}
	if !m.MaxTileReached() {
		t.Error("MaxTileReached() should be true")
	}
	if m.MaxScore() != 50 {
		t.Errorf("MaxScore() = %d, want 50", m.MaxScore())
	}

	m.SetMaxPiece(0)
	if m.GameOver() {
		t.Error("without a target the same board has moves left")
	}
}

func TestGameNotOverKeepsMaxScore(t *testing.T) {
	tests := []struct {
		name string
		raw  [][]int
	}{
		{"empty cell", [][]int{{2, 4}, {4, 0}}},
		{"horizontal pair", [][]int{{2, 2}, {4, 8}}},
		{"vertical pair", [][]int{{2, 4}, {2, 8}}},
		{"pair on east edge", [][]int{{2, 8}, {4, 8}}},
		{"pair on top edge", [][]int{{4, 4}, {2, 8}}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m, err := NewModelFromValues(tc.raw, 500, 20, false)
			if err != nil {
				t.Fatal(err)
			}
			if m.GameOver() {
				t.Error("GameOver() = true, want false")
			}
			if m.MaxScore() != 20 {
				t.Errorf("MaxScore() = %d, want 20 while the game is running", m.MaxScore())
			}
		})
	}
}

func TestClearResetsScoreKeepsMax(t *testing.T) {
	m, err := NewModelFromValues([][]int{
		{2, 4},
		{4, 2},
	}, 40, 0, true)
	if err != nil {
		t.Fatal(err)
	}
	m.GameOver()

	m.Clear()

	if m.Score() != 0 {
		t.Errorf("Score() = %d after Clear, want 0", m.Score())
	}
	if m.MaxScore() != 40 {
		t.Errorf("MaxScore() = %d after Clear, want 40", m.MaxScore())
	}
	if m.GameOver() {
		t.Error("empty board should not be over")
	}
	if len(m.EmptyCells()) != 4 {
		t.Errorf("EmptyCells() = %d, want 4", len(m.EmptyCells()))
	}
}

func TestAddTile(t *testing.T) {
	m := NewModel(2)

	for _, tile := range []Tile{NewTile(2, 0, 0), NewTile(4, 1, 0), NewTile(8, 0, 1)} {
		if err := m.AddTile(tile); err != nil {
			t.Fatal(err)
		}
	}
	if m.GameOver() {
		t.Fatal("one empty cell left, game should go on")
	}

	if err := m.AddTile(NewTile(2, 0, 0)); !errors.Is(err, ErrOccupiedCell) {
		t.Errorf("AddTile on filled cell: err = %v", err)
	}
	if err := m.AddTile(NewTile(6, 1, 1)); !errors.Is(err, ErrInvalidConstruction) {
		t.Errorf("AddTile with value 6: err = %v", err)
	}

	if err := m.AddTile(NewTile(16, 1, 1)); err != nil {
		t.Fatal(err)
	}
	if !m.GameOver() {
		t.Error("full board without pairs should be over after AddTile")
	}
}

func TestOnChangeFiresOncePerAlteringMutation(t *testing.T) {
	m := NewModel(4)
	calls := 0
	m.OnChange(func() { calls++ })

	if err := m.AddTile(NewTile(2, 0, 0)); err != nil {
		t.Fatal(err)
	}
	if calls != 1 {
		t.Fatalf("AddTile: calls = %d, want 1", calls)
	}

	m.Tilt(South) // already on the south edge
	m.Tilt(West)
	if calls != 1 {
		t.Fatalf("no-op tilts: calls = %d, want 1", calls)
	}

	m.Tilt(North)
	if calls != 2 {
		t.Fatalf("changing tilt: calls = %d, want 2", calls)
	}

	m.Clear()
	if calls != 3 {
		t.Fatalf("Clear: calls = %d, want 3", calls)
	}
	m.Clear()
	if calls != 3 {
		t.Fatalf("Clear on empty board: calls = %d, want 3", calls)
	}

	m.OnChange(nil)
	if err := m.AddTile(NewTile(2, 1, 1)); err != nil {
		t.Fatal(err)
	}
	if calls != 3 {
		t.Errorf("removed callback still ran: calls = %d", calls)
	}
}

func TestModelString(t *testing.T) {
	m, err := NewModelFromValues([][]int{
		{0, 2},
		{16, 0},
	}, 4, 8, false)
	if err != nil {
		t.Fatal(err)
	}

	want := "\n[\n|    |   2|\n|  16|    |\n] 4 (max: 8) (game is not over) \n"
	if got := m.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}

	same, _ := NewModelFromValues([][]int{{0, 2}, {16, 0}}, 4, 8, false)
	if !m.Equal(same) {
		t.Error("identical models should be Equal")
	}
	same.Tilt(West)
	if m.Equal(same) {
		t.Error("models differing after a tilt should not be Equal")
	}
	if m.Equal(nil) {
		t.Error("Equal(nil) should be false")
	}
}
