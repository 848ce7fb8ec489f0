package t2048

import (
	"fmt"
	"strings"
)

// Side names a board edge and therefore a tilt direction. North is the
// neutral viewing perspective: row numbers grow toward it.
type Side int

const (
	North Side = iota
	East
	South
	West
)

// Sides lists every side in clockwise order starting from North.
var Sides = [4]Side{North, East, South, West}

// Physical maps (col, row) as seen from s onto the neutral North frame of a
// size x size board. Under every side, increasing row moves toward s.
func (s Side) Physical(col, row, size int) (pcol, prow int) {
	last := size - 1
	switch s {
	case East:
		return row, last - col
	case South:
		return last - col, last - row
	case West:
		return last - row, col
	default:
		return col, row
	}
}

func (s Side) String() string {
	switch s {
	case North:
		return "north"
	case East:
		return "east"
	case South:
		return "south"
	case West:
		return "west"
	default:
		return fmt.Sprintf("Side(%d)", int(s))
	}
}

// ParseSide accepts compass names, screen directions and their initials.
func ParseSide(name string) (Side, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "north", "n", "up", "u":
		return North, nil
	case "east", "e", "right", "r":
		return East, nil
	case "south", "s", "down", "d":
		return South, nil
	case "west", "w", "left", "l":
		return West, nil
	}
	return North, fmt.Errorf("t2048: unknown side %q", name)
}
