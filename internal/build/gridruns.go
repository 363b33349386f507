package build

import (
	"github.com/dgates-maze/threadmaze/internal/maze"
	"github.com/dgates-maze/threadmaze/internal/render"
)

const maxRunLength = 4

// GridRuns is a DFS variant whose step advances up to maxRunLength cells in
// one direction before turning, so corridors read as long rectilinear runs
// instead of the backtracker's tight zig-zags.
func GridRuns(g *maze.Grid) {
	FillWithWalls(g)
	gridRunsBuild(g, nil)
	ClearTransientMarkers(g)
}

// GridRunsAnimated is GridRuns's animated twin.
func GridRunsAnimated(g *maze.Grid, r *render.Renderer, speed maze.Speed) {
	FillWithWalls(g)
	a := &Animator{R: r, G: g, Micros: maze.BuilderMicros[speed]}
	gridRunsBuild(g, a)
	ClearTransientMarkers(g)
}

func gridRunsBuild(g *maze.Grid, a *Animator) {
	start := maze.Point{
		Row: 2*Rng.Intn((g.Rows()-1)/2) + 1,
		Col: 2*Rng.Intn((g.Cols()-1)/2) + 1,
	}
	carvePath(g, start, a)
	var stack []maze.Point
	stack = append(stack, start)
	cur := start

	for len(stack) > 0 {
		d, steps, ok := pickRun(g, cur)
		if !ok {
			cur = stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			continue
		}
		for i := 0; i < steps; i++ {
			next := maze.Point{Row: cur.Row + 2*d.Row, Col: cur.Col + 2*d.Col}
			join(g, cur, next, a)
			cur = next
			stack = append(stack, cur)
		}
	}
}

// pickRun tries each shuffled direction and returns the longest unvisited
// run (capped at maxRunLength) available from cur in that direction.
func pickRun(g *maze.Grid, cur maze.Point) (maze.Point, int, bool) {
	for _, d := range ShuffleDirections() {
		steps := 0
		probe := cur
		for steps < maxRunLength {
			next := maze.Point{Row: probe.Row + 2*d.Row, Col: probe.Col + 2*d.Col}
			if !g.InInterior(next) || g.At(next).IsPath() {
				break
			}
			steps++
			probe = next
		}
		if steps > 0 {
			return d, steps, true
		}
	}
	return maze.Point{}, 0, false
}
