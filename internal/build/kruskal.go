package build

import (
	"github.com/dgates-maze/threadmaze/internal/maze"
	"github.com/dgates-maze/threadmaze/internal/render"
	"github.com/dgates-maze/threadmaze/internal/unionfind"
)

// wallCandidate is a between-cell wall Kruskal may remove: a and b are the
// two odd cells it would join, across the midpoint wall at mid.
type wallCandidate struct {
	a, b, mid maze.Point
}

// Kruskal enumerates every between-cell wall, shuffles them, and removes a
// wall iff union-find reports its two odd cells were still in distinct
// components; otherwise the wall is left standing.
func Kruskal(g *maze.Grid) {
	FillWithWalls(g)
	kruskalBuild(g, nil)
	ClearTransientMarkers(g)
}

// KruskalAnimated is Kruskal's animated twin.
func KruskalAnimated(g *maze.Grid, r *render.Renderer, speed maze.Speed) {
	FillWithWalls(g)
	a := &Animator{R: r, G: g, Micros: maze.BuilderMicros[speed]}
	kruskalBuild(g, a)
	ClearTransientMarkers(g)
}

func kruskalBuild(g *maze.Grid, a *Animator) {
	cells := oddCells(g)
	id := make(map[maze.Point]int, len(cells))
	for i, p := range cells {
		id[p] = i
	}
	uf := unionfind.New(len(cells))

	var candidates []wallCandidate
	for _, p := range cells {
		for _, d := range maze.BuildDirections[:2] { // north, east: avoids double-enumerating each wall
			n := maze.Point{Row: p.Row + d.Row, Col: p.Col + d.Col}
			if !g.InInterior(n) {
				continue
			}
			mid := maze.Point{Row: p.Row + d.Row/2, Col: p.Col + d.Col/2}
			candidates = append(candidates, wallCandidate{a: p, b: n, mid: mid})
		}
	}
	Rng.Shuffle(len(candidates), func(i, j int) { candidates[i], candidates[j] = candidates[j], candidates[i] })

	for _, p := range cells {
		carvePath(g, p, a)
	}
	for _, wc := range candidates {
		if uf.Union(id[wc.a], id[wc.b]) {
			join(g, wc.a, wc.b, a)
		}
	}
}
