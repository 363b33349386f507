package maze

import "fmt"

// WallStyle names one of the six glyph palettes a Grid can render with.
type WallStyle int

const (
	StyleSharp WallStyle = iota
	StyleRound
	StyleDoubles
	StyleBold
	StyleContrast
	StyleSpikes
	numWallStyles
)

var wallStyleNames = map[string]WallStyle{
	"sharp":    StyleSharp,
	"round":    StyleRound,
	"doubles":  StyleDoubles,
	"bold":     StyleBold,
	"contrast": StyleContrast,
	"spikes":   StyleSpikes,
}

// ParseWallStyle maps a CLI -d argument to a WallStyle.
func ParseWallStyle(s string) (WallStyle, error) {
	if v, ok := wallStyleNames[s]; ok {
		return v, nil
	}
	return 0, fmt.Errorf("unrecognized wall style %q", s)
}

// wallStyles holds 16 glyphs per palette, indexed by (W<<3)|(S<<2)|(E<<1)|N.
// Index 0 is a floating wall with no neighboring walls.
var wallStyles = [int(numWallStyles)][16]string{
	StyleSharp: {
		"■", "╵", "╶", "└", "╷", "│", "┌", "├",
		"╴", "┘", "─", "┴", "┐", "┤", "┬", "┼",
	},
	StyleRound: {
		"●", "╵", "╶", "╰", "╷", "│", "╭", "├",
		"╴", "╯", "─", "┴", "╮", "┤", "┬", "┼",
	},
	StyleDoubles: {
		"◫", "║", "═", "╚", "║", "║", "╔", "╠",
		"═", "╝", "═", "╩", "╗", "╣", "╦", "╬",
	},
	StyleBold: {
		"■", "╹", "╺", "┗", "╻", "┃", "┏", "┣",
		"╸", "┛", "━", "┻", "┓", "┫", "┳", "╋",
	},
	StyleContrast: {
		"█", "█", "█", "█", "█", "█", "█", "█",
		"█", "█", "█", "█", "█", "█", "█", "█",
	},
	StyleSpikes: {
		"✸", "╀", "┾", "╊", "╁", "╂", "╆", "╊",
		"┽", "╃", "┿", "╇", "╅", "╉", "╈", "╋",
	},
}

const (
	minOddDimension = 7
)

// roundUpOdd rounds n up to the next odd value >= minOddDimension.
func roundUpOdd(n int) int {
	if n < minOddDimension {
		n = minOddDimension
	}
	if n%2 == 0 {
		n++
	}
	return n
}

// Grid owns the flat row-major cell array for one maze.
type Grid struct {
	rows, cols int
	cells      []Cell
	style      WallStyle
}

// NewGrid constructs a rows x cols grid, rounding each dimension up to the
// next odd value >= 7. Every cell starts as a zero word; builders lay down
// walls with FillWithWalls or BuildOutline.
func NewGrid(rows, cols int, style WallStyle) *Grid {
	rows = roundUpOdd(rows)
	cols = roundUpOdd(cols)
	g := &Grid{
		rows:  rows,
		cols:  cols,
		cells: make([]Cell, rows*cols),
		style: style,
	}
	return g
}

// Rows returns the row count (always odd, >= 7).
func (g *Grid) Rows() int { return g.rows }

// Cols returns the column count (always odd, >= 7).
func (g *Grid) Cols() int { return g.cols }

// InBounds reports whether p addresses a cell in the grid.
func (g *Grid) InBounds(p Point) bool {
	return p.Row >= 0 && p.Row < g.rows && p.Col >= 0 && p.Col < g.cols
}

// InInterior reports whether p is strictly inside the outer perimeter.
func (g *Grid) InInterior(p Point) bool {
	return p.Row > 0 && p.Row < g.rows-1 && p.Col > 0 && p.Col < g.cols-1
}

// At returns the cell at p. Callers must keep p in bounds; this is the
// hot path for every builder/solver/painter and does not bounds-check.
func (g *Grid) At(p Point) *Cell {
	return &g.cells[p.Row*g.cols+p.Col]
}

// StylePalette returns the 16-entry wall glyph table for this grid's style.
func (g *Grid) StylePalette() *[16]string {
	return &wallStyles[g.style]
}

// Style returns the grid's configured wall style.
func (g *Grid) Style() WallStyle { return g.style }

// Each calls fn for every (row, col) in the grid, row-major.
func (g *Grid) Each(fn func(p Point)) {
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			fn(Point{Row: r, Col: c})
		}
	}
}

// EachInterior calls fn for every interior (non-perimeter) cell.
func (g *Grid) EachInterior(fn func(p Point)) {
	for r := 1; r < g.rows-1; r++ {
		for c := 1; c < g.cols-1; c++ {
			fn(Point{Row: r, Col: c})
		}
	}
}

// Center returns the nearest odd-coordinate cell to the grid's midpoint,
// the anchor used by the painter's distance-from-center analysis.
func (g *Grid) Center() Point {
	r := g.rows / 2
	c := g.cols / 2
	if r%2 == 0 {
		r--
	}
	if c%2 == 0 {
		c--
	}
	return Point{Row: r, Col: c}
}
