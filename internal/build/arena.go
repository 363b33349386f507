package build

import (
	"github.com/dgates-maze/threadmaze/internal/maze"
	"github.com/dgates-maze/threadmaze/internal/render"
)

// Arena carves every interior cell to a path, leaving only the outer
// outline standing: a wide-open room for solvers to race across.
func Arena(g *maze.Grid) {
	BuildOutline(g)
	ClearTransientMarkers(g)
}

// ArenaAnimated is Arena's animated twin.
func ArenaAnimated(g *maze.Grid, r *render.Renderer, speed maze.Speed) {
	a := &Animator{R: r, G: g, Micros: maze.BuilderMicros[speed]}
	BuildOutlineAnimated(g, a)
	ClearTransientMarkers(g)
}
