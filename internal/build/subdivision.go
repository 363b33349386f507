package build

import (
	"github.com/dgates-maze/threadmaze/internal/maze"
	"github.com/dgates-maze/threadmaze/internal/render"
)

// chamber is one rectangle of a recursive-subdivision LIFO stack: its
// top-left offset and its height/width in cells.
type chamber struct {
	offset        maze.Point
	height, width int
}

// Fractal (recursive subdivision) starts from an interior that is entirely
// path with only the outer wall outline, then repeatedly bisects each
// chamber with a wall line that leaves exactly one passage, alternating the
// split axis by picking whichever dimension is larger.
func Fractal(g *maze.Grid) {
	BuildOutline(g)
	subdivide(g, nil, 0)
	ClearTransientMarkers(g)
}

// FractalAnimated is Fractal's animated twin.
func FractalAnimated(g *maze.Grid, r *render.Renderer, speed maze.Speed) {
	a := &Animator{R: r, G: g, Micros: maze.BuilderMicros[speed]}
	BuildOutlineAnimated(g, a)
	subdivide(g, a, 0)
	ClearTransientMarkers(g)
}

func subdivide(g *maze.Grid, a *Animator, _ int) {
	stack := []chamber{{
		offset: maze.Point{Row: 1, Col: 1},
		height: g.Rows() - 2,
		width:  g.Cols() - 2,
	}}
	for len(stack) > 0 {
		c := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if c.height >= c.width {
			if c.width <= 3 {
				continue
			}
			divideRow := c.offset.Row + 1 + 2*Rng.Intn((c.height-1)/2)
			passageCol := c.offset.Col + 2*Rng.Intn((c.width+1)/2)
			if divideRow >= c.offset.Row+c.height-1 {
				continue
			}
			carveHorizontalWallLine(g, divideRow, c.offset.Col, c.offset.Col+c.width-1, passageCol, a)
			stack = append(stack,
				chamber{offset: c.offset, height: divideRow - c.offset.Row, width: c.width},
				chamber{offset: maze.Point{Row: divideRow + 1, Col: c.offset.Col}, height: c.offset.Row + c.height - divideRow - 1, width: c.width},
			)
		} else {
			if c.height <= 3 {
				continue
			}
			divideCol := c.offset.Col + 1 + 2*Rng.Intn((c.width-1)/2)
			passageRow := c.offset.Row + 2*Rng.Intn((c.height+1)/2)
			if divideCol >= c.offset.Col+c.width-1 {
				continue
			}
			carveVerticalWallLine(g, divideCol, c.offset.Row, c.offset.Row+c.height-1, passageRow, a)
			stack = append(stack,
				chamber{offset: c.offset, height: c.height, width: divideCol - c.offset.Col},
				chamber{offset: maze.Point{Row: c.offset.Row, Col: divideCol + 1}, height: c.height, width: c.offset.Col + c.width - divideCol - 1},
			)
		}
	}
}

// carveHorizontalWallLine writes a standing wall across row `row` from
// colLo to colHi inclusive, except at passageCol which is left as a path.
func carveHorizontalWallLine(g *maze.Grid, row, colLo, colHi, passageCol int, a *Animator) {
	for col := colLo; col <= colHi; col++ {
		p := maze.Point{Row: row, Col: col}
		if !g.InInterior(p) || col == passageCol {
			continue
		}
		carveWallLine(g, p, a)
	}
}

// carveVerticalWallLine writes a standing wall down column `col` from rowLo
// to rowHi inclusive, except at passageRow which is left as a path.
func carveVerticalWallLine(g *maze.Grid, col, rowLo, rowHi, passageRow int, a *Animator) {
	for row := rowLo; row <= rowHi; row++ {
		p := maze.Point{Row: row, Col: col}
		if !g.InInterior(p) || row == passageRow {
			continue
		}
		carveWallLine(g, p, a)
	}
}
