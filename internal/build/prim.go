package build

import (
	"container/heap"

	"github.com/dgates-maze/threadmaze/internal/maze"
	"github.com/dgates-maze/threadmaze/internal/render"
)

// frontierCell is one entry in Prim's min-priority frontier: a candidate
// odd cell with the random weight it was assigned when first frontiered,
// and the in-maze neighbor that discovered it.
type frontierCell struct {
	p, from maze.Point
	weight  int
}

type frontierHeap []frontierCell

func (h frontierHeap) Len() int            { return len(h) }
func (h frontierHeap) Less(i, j int) bool  { return h[i].weight < h[j].weight }
func (h frontierHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *frontierHeap) Push(x interface{}) { *h = append(*h, x.(frontierCell)) }
func (h *frontierHeap) Pop() interface{} {
	old := *h
	n := len(old)
	v := old[n-1]
	*h = old[:n-1]
	return v
}

// Prim assigns each odd cell a random weight on demand and grows the maze
// from a random root by always connecting the lowest-weight frontier cell
// to the neighbor that first frontiered it.
func Prim(g *maze.Grid) {
	FillWithWalls(g)
	primBuild(g, nil)
	ClearTransientMarkers(g)
}

// PrimAnimated is Prim's animated twin.
func PrimAnimated(g *maze.Grid, r *render.Renderer, speed maze.Speed) {
	FillWithWalls(g)
	a := &Animator{R: r, G: g, Micros: maze.BuilderMicros[speed]}
	primBuild(g, a)
	ClearTransientMarkers(g)
}

func primBuild(g *maze.Grid, a *Animator) {
	cells := oddCells(g)
	root := cells[Rng.Intn(len(cells))]
	carvePath(g, root, a)
	visited := map[maze.Point]bool{root: true}

	frontier := &frontierHeap{}
	heap.Init(frontier)
	pushFrontier(g, frontier, root, visited)

	for frontier.Len() > 0 {
		next := heap.Pop(frontier).(frontierCell)
		if visited[next.p] {
			continue
		}
		visited[next.p] = true
		join(g, next.from, next.p, a)
		pushFrontier(g, frontier, next.p, visited)
	}
}

func pushFrontier(g *maze.Grid, frontier *frontierHeap, from maze.Point, visited map[maze.Point]bool) {
	for _, d := range maze.BuildDirections {
		n := maze.Point{Row: from.Row + d.Row, Col: from.Col + d.Col}
		if !g.InInterior(n) || visited[n] {
			continue
		}
		heap.Push(frontier, frontierCell{p: n, from: from, weight: Rng.Intn(101)})
	}
}
