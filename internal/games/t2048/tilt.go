package t2048

// mergeMarks records which cells already received a merge during one tilt.
// It is indexed in the tilt's own perspective.
type mergeMarks [][]bool

func newMergeMarks(size int) mergeMarks {
	m := make(mergeMarks, size)
	for col := range m {
		m[col] = make([]bool, size)
	}
	return m
}

// tilt slides every tile on b toward side, merging equal neighbours at most
// once per cell. It returns whether any tile moved and the total value of the
// merged tiles it produced. The board is left in the North perspective.
func tilt(b *Board, side Side) (changed bool, gained int) {
	b.SetViewingPerspective(side)
	defer b.SetViewingPerspective(North)

	size := b.Size()
	merged := newMergeMarks(size)

	for col := 0; col < size; col++ {
		// The leading row cannot move, so start one below it.
		for row := size - 2; row >= 0; row-- {
			t := b.Tile(col, row)
			if t == nil {
				continue
			}

			dest := restingRow(b, merged, col, row, t.Value())
			if dest == row {
				continue
			}

			changed = true
			if b.Move(col, dest, t) {
				gained += b.Tile(col, dest).Value()
				merged[col][dest] = true
			}
		}
	}

	return changed, gained
}

// restingRow returns where a tile of the given value at (col, row) stops:
// past the run of empty cells above it, and onto the first tile beyond that
// run if it is equal and has not merged yet this tilt.
func restingRow(b *Board, merged mergeMarks, col, row, value int) int {
	size := b.Size()
	dest := row
	for dest+1 < size && b.Tile(col, dest+1) == nil {
		dest++
	}

	if dest+1 < size {
		blocker := b.Tile(col, dest+1)
		if blocker.Value() == value && !merged[col][dest+1] {
			dest++
		}
	}
	return dest
}
