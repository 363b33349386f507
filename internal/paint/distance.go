package paint

import (
	"github.com/dgates-maze/threadmaze/internal/maze"
	"github.com/dgates-maze/threadmaze/internal/render"
	"github.com/dgates-maze/threadmaze/internal/ring"
)

// distanceFromCenter runs a single BFS out from the grid's center, recording
// each reachable interior path cell's hop count and the overall maximum.
func distanceFromCenter(g *maze.Grid) (Analysis, maze.Point) {
	start := center(g)
	a := Analysis{Values: map[maze.Point]int{start: 0}}
	q := ring.New[maze.Point]()
	q.Reserve(1024)
	q.Push(start)
	for !q.Empty() {
		cur := q.Pop()
		dist := a.Values[cur]
		if dist > a.Max {
			a.Max = dist
		}
		for _, d := range maze.CardinalDirections {
			next := cur.Add(d)
			if !g.InBounds(next) || !g.At(next).IsPath() {
				continue
			}
			if _, seen := a.Values[next]; seen {
				continue
			}
			a.Values[next] = dist + 1
			q.Push(next)
		}
	}
	return a, start
}

// DistanceFromCenter paints every reachable cell with a glow that brightens
// toward the grid's center and fades toward the outer edges, using one
// randomly chosen color channel shared by the whole frame.
func DistanceFromCenter(g *maze.Grid, r *render.Renderer) {
	a, _ := distanceFromCenter(g)
	paintInstant(g, r, a, randChannel())
}

// DistanceFromCenterAnimated floods outward from center with four workers,
// all four tinting the one color channel drawn for this run.
func DistanceFromCenterAnimated(g *maze.Grid, r *render.Renderer, speed maze.Speed) {
	a, start := distanceFromCenter(g)
	paintAnimated(g, r, a, start, maze.PainterMicros[speed])
}
