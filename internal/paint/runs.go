package paint

import (
	"github.com/dgates-maze/threadmaze/internal/maze"
	"github.com/dgates-maze/threadmaze/internal/render"
	"github.com/dgates-maze/threadmaze/internal/ring"
)

type runPoint struct {
	prev maze.Point
	cur  maze.Point
	len  int
}

// runLengths BFS-walks from center, tracking for each cell the length of the
// straight corridor run leading into it: a 90-degree turn (the step into cur
// and the step into next form equal absolute row/col offsets) resets the run
// to 1, a straight continuation extends it.
func runLengths(g *maze.Grid) (Analysis, maze.Point) {
	start := center(g)
	a := Analysis{Values: map[maze.Point]int{start: 0}}
	q := ring.New[runPoint]()
	q.Reserve(1024)
	q.Push(runPoint{prev: start, cur: start, len: 0})
	for !q.Empty() {
		rp := q.Pop()
		if rp.len > a.Max {
			a.Max = rp.len
		}
		for _, d := range maze.CardinalDirections {
			next := rp.cur.Add(d)
			if !g.InBounds(next) || !g.At(next).IsPath() {
				continue
			}
			if _, seen := a.Values[next]; seen {
				continue
			}
			length := rp.len + 1
			if abs(next.Row-rp.prev.Row) == abs(next.Col-rp.prev.Col) {
				length = 1
			}
			a.Values[next] = length
			q.Push(runPoint{prev: rp.cur, cur: next, len: length})
		}
	}
	return a, start
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// Runs paints every reachable cell by the length of the straight corridor
// run leading into it, highlighting long hallways over twisty dead ends,
// using one randomly chosen color channel shared by the whole frame.
func Runs(g *maze.Grid, r *render.Renderer) {
	a, _ := runLengths(g)
	paintInstant(g, r, a, randChannel())
}

// RunsAnimated floods outward from center with four workers, all four
// tinting the one color channel drawn for this run, by run length as soon
// as a worker claims a cell.
func RunsAnimated(g *maze.Grid, r *render.Renderer, speed maze.Speed) {
	a, start := runLengths(g)
	paintAnimated(g, r, a, start, maze.PainterMicros[speed])
}
