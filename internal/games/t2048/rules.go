package t2048

// Position is a cell coordinate in the North frame.
type Position struct {
	Col int
	Row int
}

// MaxTileExists reports whether a tile of value maxPiece is on the board.
// A maxPiece of 0 or less never matches.
func MaxTileExists(b *Board, maxPiece int) bool {
	if maxPiece <= 0 {
		return false
	}
	found := false
	forEachTile(b, func(t *Tile) {
		if t.value == maxPiece {
			found = true
		}
	})
	return found
}

// EmptySpaceExists reports whether at least one cell is empty.
func EmptySpaceExists(b *Board) bool {
	return len(EmptyCells(b)) > 0
}

// AtLeastOneMoveExists reports whether some tilt would change the board: a
// cell is empty, or two orthogonally adjacent cells hold equal values.
func AtLeastOneMoveExists(b *Board) bool {
	return EmptySpaceExists(b) || adjacentEqualExists(b)
}

// adjacentEqualExists compares every cell with its east and north neighbour.
// Each adjacent pair is visited exactly once, from its west or south member.
func adjacentEqualExists(b *Board) bool {
	size := b.size
	for col := 0; col < size; col++ {
		for row := 0; row < size; row++ {
			t := b.values[col][row]
			if t == nil {
				continue
			}
			if col+1 < size {
				if east := b.values[col+1][row]; east != nil && east.value == t.value {
					return true
				}
			}
			if row+1 < size {
				if north := b.values[col][row+1]; north != nil && north.value == t.value {
					return true
				}
			}
		}
	}
	return false
}

// EmptyCells returns every empty cell, column by column from the south-west.
func EmptyCells(b *Board) []Position {
	var cells []Position
	for col := 0; col < b.size; col++ {
		for row := 0; row < b.size; row++ {
			if b.values[col][row] == nil {
				cells = append(cells, Position{Col: col, Row: row})
			}
		}
	}
	return cells
}

// MaxTile returns the largest tile value on the board, 0 when empty.
func MaxTile(b *Board) int {
	maxVal := 0
	forEachTile(b, func(t *Tile) {
		if t.value > maxVal {
			maxVal = t.value
		}
	})
	return maxVal
}

// gameOverOn is the terminal predicate: the target tile is present, or no
// tilt can change the board.
func gameOverOn(b *Board, maxPiece int) bool {
	return MaxTileExists(b, maxPiece) || !AtLeastOneMoveExists(b)
}

func forEachTile(b *Board, fn func(t *Tile)) {
	for col := range b.values {
		for _, t := range b.values[col] {
			if t != nil {
				fn(t)
			}
		}
	}
}
