package t2048

import (
	"fmt"
	"strings"
)

// MaxPiece is the default target tile: reaching it ends the game.
const MaxPiece = 2048

// Model is the state of one game of 2048: the board, the score, the best
// score so far and whether the game is over.
//
// A Model is not safe for concurrent use; a host that shares one between
// goroutines must hold a single lock around every call.
type Model struct {
	board    *Board
	score    int
	maxScore int
	gameOver bool
	maxPiece int

	changed  bool
	onChange func()
}

// NewModel returns an empty size x size game with score 0.
func NewModel(size int) *Model {
	return &Model{
		board:    NewBoard(size),
		maxPiece: MaxPiece,
	}
}

// NewModelFromValues builds a game from explicit tile values. raw lists rows
// from north to south as they are printed; 0 marks an empty cell.
func NewModelFromValues(raw [][]int, score, maxScore int, gameOver bool) (*Model, error) {
	size := len(raw)
	if size == 0 {
		return nil, fmt.Errorf("%w: empty board", ErrInvalidConstruction)
	}

	tiles := make([]Tile, 0, size*size)
	for i, line := range raw {
		if len(line) != size {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrInvalidConstruction, i, len(line), size)
		}
		row := size - 1 - i
		for col, v := range line {
			if v == 0 {
				continue
			}
			tiles = append(tiles, NewTile(v, col, row))
		}
	}

	m, err := NewModelFromTiles(size, tiles, score, maxScore)
	if err != nil {
		return nil, err
	}
	m.gameOver = gameOver
	return m, nil
}

// NewModelFromTiles builds a size x size game holding tiles at their own
// positions. Overlapping tiles are rejected.
func NewModelFromTiles(size int, tiles []Tile, score, maxScore int) (*Model, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: board size %d", ErrInvalidConstruction, size)
	}
	if score < 0 || maxScore < 0 {
		return nil, fmt.Errorf("%w: negative score", ErrInvalidConstruction)
	}

	m := NewModel(size)
	for _, t := range tiles {
		if !isPowerOfTwo(t.value) {
			return nil, fmt.Errorf("%w: tile value %d is not a power of two", ErrInvalidConstruction, t.value)
		}
		if !m.board.inRange(t.col, t.row) {
			return nil, fmt.Errorf("%w: %w: tile %v on %dx%d board", ErrInvalidConstruction, ErrOutOfRange, t, size, size)
		}
		if err := m.board.AddTile(t); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidConstruction, err)
		}
	}
	m.score = score
	m.maxScore = maxScore
	m.gameOver = gameOverOn(m.board, m.maxPiece)
	return m, nil
}

// Tile returns the tile at (col, row), or nil. Coordinates are in the North
// frame; (0, 0) is the lower-left corner.
func (m *Model) Tile(col, row int) *Tile {
	return m.board.Tile(col, row)
}

// Size returns the number of cells along one side of the board.
func (m *Model) Size() int {
	return m.board.Size()
}

// Score returns the current score.
func (m *Model) Score() int {
	return m.score
}

// MaxScore returns the best score so far. It only moves when GameOver
// observes a finished game.
func (m *Model) MaxScore() int {
	return m.maxScore
}

// MaxPiece returns the tile value that ends the game, 0 if none does.
func (m *Model) MaxPiece() int {
	return m.maxPiece
}

// SetMaxPiece changes the target tile. Zero or a negative value removes the
// target so only a stalemate ends the game.
func (m *Model) SetMaxPiece(v int) {
	if v < 0 {
		v = 0
	}
	m.maxPiece = v
	m.checkGameOver()
}

// GameOver reports whether the target tile is on the board or no move is
// left. When it is, the best score is raised to the current score.
func (m *Model) GameOver() bool {
	m.checkGameOver()
	if m.gameOver {
		m.maxScore = max(m.score, m.maxScore)
	}
	return m.gameOver
}

// MaxTileReached reports whether the game ended because the target appeared.
func (m *Model) MaxTileReached() bool {
	return MaxTileExists(m.board, m.maxPiece)
}

// MaxTile returns the largest value on the board.
func (m *Model) MaxTile() int {
	return MaxTile(m.board)
}

// EmptyCells returns every empty position in the North frame.
func (m *Model) EmptyCells() []Position {
	return EmptyCells(m.board)
}

// Values returns the board as printed: northmost row first, 0 for empty.
func (m *Model) Values() [][]int {
	return m.board.Values()
}

// Clear empties the board and resets the score. The best score is kept.
func (m *Model) Clear() {
	if m.score != 0 || m.gameOver || !m.board.Empty() {
		m.setChanged()
	}
	m.score = 0
	m.gameOver = false
	m.board.Clear()
	m.notifyObservers()
}

// AddTile places t on the board. It fails with ErrOccupiedCell if the cell
// already holds a tile and panics with ErrOutOfRange if t is off the board.
func (m *Model) AddTile(t Tile) error {
	if !isPowerOfTwo(t.value) {
		return fmt.Errorf("%w: tile value %d is not a power of two", ErrInvalidConstruction, t.value)
	}
	if err := m.board.AddTile(t); err != nil {
		return err
	}
	m.checkGameOver()
	m.setChanged()
	m.notifyObservers()
	return nil
}

// Tilt slides every tile toward side, merging equal pairs, and adds the value
// of every merged tile to the score. It reports whether the board changed.
func (m *Model) Tilt(side Side) bool {
	changed, gained := tilt(m.board, side)
	m.score += gained

	m.checkGameOver()
	if changed {
		m.setChanged()
	}
	m.notifyObservers()
	return changed
}

// OnChange registers the single callback run after a mutation that altered
// the board or the score. A nil fn removes it.
func (m *Model) OnChange(fn func()) {
	m.onChange = fn
}

func (m *Model) checkGameOver() {
	m.gameOver = gameOverOn(m.board, m.maxPiece)
}

func (m *Model) setChanged() {
	m.changed = true
}

// notifyObservers delivers a pending change once and clears it.
func (m *Model) notifyObservers() {
	if !m.changed {
		return
	}
	m.changed = false
	if m.onChange != nil {
		m.onChange()
	}
}

// String renders the board for debugging, northmost row first, followed by
// the score line. The output is not a stable format.
func (m *Model) String() string {
	var b strings.Builder
	size := m.Size()

	b.WriteString("\n[\n")
	for row := size - 1; row >= 0; row-- {
		for col := 0; col < size; col++ {
			if t := m.board.values[col][row]; t == nil {
				b.WriteString("|    ")
			} else {
				fmt.Fprintf(&b, "|%4d", t.value)
			}
		}
		b.WriteString("|\n")
	}

	over := "not over"
	if gameOverOn(m.board, m.maxPiece) {
		over = "over"
	}
	fmt.Fprintf(&b, "] %d (max: %d) (game is %s) \n", m.score, m.maxScore, over)
	return b.String()
}

// Equal reports whether two models print identically.
func (m *Model) Equal(other *Model) bool {
	if other == nil {
		return false
	}
	return m.String() == other.String()
}
