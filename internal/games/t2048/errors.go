package t2048

import "errors"

var (
	// ErrOutOfRange reports a coordinate outside [0, size). Board accessors
	// panic with it; every internal caller derives coordinates from loop bounds.
	ErrOutOfRange = errors.New("t2048: coordinate out of range")

	// ErrOccupiedCell is returned when a tile is added on top of another tile.
	ErrOccupiedCell = errors.New("t2048: cell already occupied")

	// ErrInvalidConstruction is returned for malformed explicit board setups.
	ErrInvalidConstruction = errors.New("t2048: invalid construction")
)
