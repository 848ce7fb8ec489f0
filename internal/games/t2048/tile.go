package t2048

import "fmt"

// Tile is a numbered piece on the board together with the physical cell it
// occupies. Tiles are never modified: moving one or merging two produces a
// new Tile.
type Tile struct {
	value int
	col   int
	row   int
}

// NewTile returns a tile of the given value at physical (col, row).
func NewTile(value, col, row int) Tile {
	return Tile{value: value, col: col, row: row}
}

// Value returns the tile's number.
func (t Tile) Value() int {
	return t.value
}

// Col returns the physical column the tile last occupied.
func (t Tile) Col() int {
	return t.col
}

// Row returns the physical row the tile last occupied.
func (t Tile) Row() int {
	return t.row
}

// at returns a copy of t placed at (col, row).
func (t Tile) at(col, row int) *Tile {
	return &Tile{value: t.value, col: col, row: row}
}

// mergedWith returns the tile produced when t slides onto other.
func (t Tile) mergedWith(other *Tile) *Tile {
	return &Tile{value: t.value + other.value, col: other.col, row: other.row}
}

func (t Tile) String() string {
	return fmt.Sprintf("%d@(%d,%d)", t.value, t.col, t.row)
}

// isPowerOfTwo reports whether v is a positive power of two.
func isPowerOfTwo(v int) bool {
	return v > 0 && v&(v-1) == 0
}
