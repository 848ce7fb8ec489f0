package core

// Color represents a foreground color for a screen cell.
// Values are mapped to ANSI 256-color codes by the platform layer.
type Color uint8

// Predefined colors. Tile shades are ordered by increasing value.
const (
	ColorDefault Color = iota
	ColorGray
	ColorWhite
	ColorBrightWhite
	ColorYellow
	ColorBrightYellow
	ColorOrange
	ColorRed
	ColorBrightRed
	ColorMagenta
	ColorBrightMagenta
	ColorCyan
	ColorBrightCyan
	ColorGreen
	ColorBrightGreen
	ColorBlue
)

// Cell is a single screen position: the rune drawn there and its color.
type Cell struct {
	Rune  rune
	Color Color
}

// blankCell is what Clear writes.
var blankCell = Cell{Rune: ' ', Color: ColorDefault}
