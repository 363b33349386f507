package build

import (
	"github.com/dgates-maze/threadmaze/internal/maze"
	"github.com/dgates-maze/threadmaze/internal/render"
)

// RecursiveBacktracker carves a perfect maze with an iterative DFS that
// keeps no explicit stack: each freshly carved cell records, in its
// backtrack marker nibble, the direction it was entered from. When no
// unvisited neighbor remains the walk reads that marker to step back one
// cell, clearing the marker as it goes, and terminates when it returns to
// the start with no branches left.
func RecursiveBacktracker(g *maze.Grid) {
	FillWithWalls(g)
	backtrack(g, nil, 0)
	ClearTransientMarkers(g)
}

// RecursiveBacktrackerAnimated is the animated twin. Forward carves flush
// at the builder speed; backtrack steps use an 8x sleep multiplier so the
// unwind reads as visually distinct from forward progress.
func RecursiveBacktrackerAnimated(g *maze.Grid, r *render.Renderer, speed maze.Speed) {
	FillWithWalls(g)
	micros := maze.BuilderMicros[speed]
	a := &Animator{R: r, G: g, Micros: micros}
	backtrack(g, a, micros*8)
	ClearTransientMarkers(g)
}

func backtrack(g *maze.Grid, a *Animator, backtrackMicros int) {
	start := maze.Point{
		Row: 2*Rng.Intn((g.Rows()-1)/2) + 1,
		Col: 2*Rng.Intn((g.Cols()-1)/2) + 1,
	}
	carvePath(g, start, a)
	cur := start
	for {
		next, ok := pickUnvisitedNeighbor(g, cur)
		if ok {
			join(g, cur, next, a)
			markOrigin(g, cur, next, a)
			cur = next
			continue
		}
		if cur == start {
			return
		}
		// Step back one cell using the marker this cell was entered from.
		prev := stepBack(cur, g.At(cur).BacktrackMarker())
		g.At(cur).ClearBacktrackMarker()
		if a != nil {
			backtrackFlush(a, cur, backtrackMicros)
		}
		cur = prev
	}
}

func backtrackFlush(a *Animator, p maze.Point, micros int) {
	saved := a.Micros
	a.Micros = micros
	a.flush(p)
	a.Micros = saved
}

func pickUnvisitedNeighbor(g *maze.Grid, cur maze.Point) (maze.Point, bool) {
	for _, d := range ShuffleDirections() {
		n := maze.Point{Row: cur.Row + 2*d.Row, Col: cur.Col + 2*d.Col}
		if g.InInterior(n) && !g.At(n).IsPath() {
			return n, true
		}
	}
	return maze.Point{}, false
}

// stepBack inverts a backtrack marker to find the cell cur was entered from.
// The marker names the compass direction back to the origin, e.g. MarkerNorth
// means "the cell that carved me lies to my north".
func stepBack(cur maze.Point, marker uint16) maze.Point {
	switch marker {
	case maze.MarkerNorth:
		return maze.Point{Row: cur.Row - 2, Col: cur.Col}
	case maze.MarkerSouth:
		return maze.Point{Row: cur.Row + 2, Col: cur.Col}
	case maze.MarkerEast:
		return maze.Point{Row: cur.Row, Col: cur.Col + 2}
	default: // MarkerWest
		return maze.Point{Row: cur.Row, Col: cur.Col - 2}
	}
}
