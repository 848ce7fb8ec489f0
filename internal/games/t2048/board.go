package t2048

import "fmt"

// Board is a square grid of tiles. Cell (0, 0) is the lower-left corner when
// viewed from North. A viewing perspective remaps every coordinate passed to
// Tile and Move without moving stored tiles.
type Board struct {
	size        int
	values      [][]*Tile // indexed [col][row] in the North frame
	perspective Side
}

// NewBoard returns an empty size x size board. It panics if size is not
// positive.
func NewBoard(size int) *Board {
	if size <= 0 {
		panic(fmt.Errorf("%w: board size %d", ErrInvalidConstruction, size))
	}
	values := make([][]*Tile, size)
	for col := range values {
		values[col] = make([]*Tile, size)
	}
	return &Board{size: size, values: values, perspective: North}
}

// Size returns the number of cells along one side.
func (b *Board) Size() int {
	return b.size
}

// Perspective returns the current viewing perspective.
func (b *Board) Perspective() Side {
	return b.perspective
}

// SetViewingPerspective makes subsequent Tile and Move calls treat s as the
// direction of increasing row.
func (b *Board) SetViewingPerspective(s Side) {
	b.perspective = s
}

// Tile returns the tile at (col, row) under the current perspective, or nil
// if the cell is empty.
func (b *Board) Tile(col, row int) *Tile {
	pcol, prow := b.physical(col, row)
	return b.values[pcol][prow]
}

// Move places t at (col, row) under the current perspective and empties the
// cell t came from. If the destination already holds a tile the two merge
// into a tile of their combined value and Move reports true. The caller
// guarantees the destination is empty or holds an equal value.
func (b *Board) Move(col, row int, t *Tile) bool {
	pcol, prow := b.physical(col, row)
	if t.col == pcol && t.row == prow {
		return false
	}

	dest := b.values[pcol][prow]
	b.values[t.col][t.row] = nil
	if dest == nil {
		b.values[pcol][prow] = t.at(pcol, prow)
		return false
	}
	b.values[pcol][prow] = t.mergedWith(dest)
	return true
}

// AddTile places t at its own physical position, ignoring perspective.
// A position off the board panics with ErrOutOfRange.
func (b *Board) AddTile(t Tile) error {
	if !b.inRange(t.col, t.row) {
		panic(fmt.Errorf("%w: tile %v on %dx%d board", ErrOutOfRange, t, b.size, b.size))
	}
	if cur := b.values[t.col][t.row]; cur != nil {
		return fmt.Errorf("%w: (%d,%d) holds %d", ErrOccupiedCell, t.col, t.row, cur.value)
	}
	b.values[t.col][t.row] = t.at(t.col, t.row)
	return nil
}

// Clear empties every cell and resets the perspective to North.
func (b *Board) Clear() {
	for col := range b.values {
		for row := range b.values[col] {
			b.values[col][row] = nil
		}
	}
	b.perspective = North
}

// Empty reports whether the board holds no tiles.
func (b *Board) Empty() bool {
	for col := range b.values {
		for _, t := range b.values[col] {
			if t != nil {
				return false
			}
		}
	}
	return true
}

// Values returns tile values in the North frame as printed: index 0 is the
// northmost row, empty cells are 0.
func (b *Board) Values() [][]int {
	out := make([][]int, b.size)
	for i := range out {
		out[i] = make([]int, b.size)
		row := b.size - 1 - i
		for col := 0; col < b.size; col++ {
			if t := b.values[col][row]; t != nil {
				out[i][col] = t.value
			}
		}
	}
	return out
}

func (b *Board) physical(col, row int) (int, int) {
	if !b.inRange(col, row) {
		panic(fmt.Errorf("%w: (%d,%d) on %dx%d board", ErrOutOfRange, col, row, b.size, b.size))
	}
	return b.perspective.Physical(col, row, b.size)
}

func (b *Board) inRange(col, row int) bool {
	return col >= 0 && col < b.size && row >= 0 && row < b.size
}
