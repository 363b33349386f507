package solve

import (
	"sync"
	"sync/atomic"

	"github.com/dgates-maze/threadmaze/internal/build"
	"github.com/dgates-maze/threadmaze/internal/maze"
	"github.com/dgates-maze/threadmaze/internal/render"
)

// monitor is the shared state four solve workers coordinate through: a
// winner slot (atomic, sequentially consistent), the immutable starting
// points, and per-worker path storage. The stdout mutex lives on the
// Renderer; monitor only guards fields workers mutate directly.
type monitor struct {
	mu      sync.Mutex
	winning atomic.Int32
	starts  [NumWorkers]maze.Point
	paths   [NumWorkers][]maze.Point
	claimed atomic.Int32 // not written by any worker; stays zero
}

func newMonitor() *monitor {
	m := &monitor{}
	m.winning.Store(noWinner)
	for i := range m.paths {
		m.paths[i] = make([]maze.Point, 0, 1024)
	}
	return m
}

// isValidStartOrFinish mirrors the original's rejection rule: the
// candidate must be an interior path cell that isn't already a start or a
// finish.
func isValidStartOrFinish(g *maze.Grid, p maze.Point) bool {
	if !g.InInterior(p) {
		return false
	}
	cell := g.At(p)
	return cell.IsPath() && !cell.IsStart() && !cell.IsFinish()
}

// PickRandomPoint rejects a candidate that is a wall, already a start, or
// already a finish; on rejection it fans out through the 8 surrounding
// directions, then falls back to a full interior scan. A maze with no
// legal candidate left is an unreachable invariant violation.
func PickRandomPoint(g *maze.Grid) maze.Point {
	choice := maze.Point{
		Row: 1 + build.Rng.Intn(g.Rows()-2),
		Col: 1 + build.Rng.Intn(g.Cols()-2),
	}
	if isValidStartOrFinish(g, choice) {
		return choice
	}
	for _, d := range maze.AllDirections {
		n := choice.Add(d)
		if isValidStartOrFinish(g, n) {
			return n
		}
	}
	found, ok := fullScanForPoint(g)
	if !ok {
		panic("solve: no candidate start/finish cell available in this maze")
	}
	return found
}

func fullScanForPoint(g *maze.Grid) (maze.Point, bool) {
	var result maze.Point
	ok := false
	g.EachInterior(func(p maze.Point) {
		if ok {
			return
		}
		if isValidStartOrFinish(g, p) {
			result = p
			ok = true
		}
	})
	return result, ok
}

// findNearestPathCell searches square rings of growing radius around choice
// for the nearest walkable interior cell — used by corners to snap a
// geometric corner to the nearest path cell.
func findNearestPathCell(g *maze.Grid, choice maze.Point) maze.Point {
	if g.InInterior(choice) && g.At(choice).IsPath() {
		return choice
	}
	for radius := 1; radius < g.Rows()+g.Cols(); radius++ {
		for dr := -radius; dr <= radius; dr++ {
			for _, dc := range []int{-radius, radius} {
				p := maze.Point{Row: choice.Row + dr, Col: choice.Col + dc}
				if g.InInterior(p) && g.At(p).IsPath() {
					return p
				}
			}
		}
		for dc := -radius + 1; dc <= radius-1; dc++ {
			for _, dr := range []int{-radius, radius} {
				p := maze.Point{Row: choice.Row + dr, Col: choice.Col + dc}
				if g.InInterior(p) && g.At(p).IsPath() {
					return p
				}
			}
		}
	}
	panic("solve: no path cell found near corner")
}

// setCornerStarts returns the four corners (or the nearest path cell to
// each), in a shuffled dispatch order so overlap colors vary per run.
func setCornerStarts(g *maze.Grid) [NumWorkers]maze.Point {
	raw := [NumWorkers]maze.Point{
		findNearestPathCell(g, maze.Point{Row: 1, Col: 1}),
		findNearestPathCell(g, maze.Point{Row: 1, Col: g.Cols() - 2}),
		findNearestPathCell(g, maze.Point{Row: g.Rows() - 2, Col: 1}),
		findNearestPathCell(g, maze.Point{Row: g.Rows() - 2, Col: g.Cols() - 2}),
	}
	build.Rng.Shuffle(NumWorkers, func(i, j int) { raw[i], raw[j] = raw[j], raw[i] })
	return raw
}

// Engine runs one solve over a grid, dispatching NumWorkers goroutines per
// the requested Tag and returning once every worker has joined.
type Engine struct {
	G       *maze.Grid
	R       *render.Renderer
	Speed   maze.Speed
	Animate bool
	Tag     Tag
}

// Run places start/finish cells for the engine's Game, launches the four
// workers per Strategy, joins them, and returns the outcome.
func (e *Engine) Run() Result {
	m := newMonitor()
	switch e.Tag.Game {
	case GameHunt:
		start := PickRandomPoint(e.G)
		for i := range m.starts {
			m.starts[i] = start
		}
		e.G.At(start).SetStart()
		finish := PickRandomPoint(e.G)
		e.G.At(finish).SetFinish()
	case GameGather:
		start := PickRandomPoint(e.G)
		for i := range m.starts {
			m.starts[i] = start
		}
		e.G.At(start).SetStart()
		for i := 0; i < NumWorkers; i++ {
			f := PickRandomPoint(e.G)
			e.G.At(f).SetFinish()
		}
	case GameCorners:
		m.starts = setCornerStarts(e.G)
		for _, s := range m.starts {
			e.G.At(s).SetStart()
		}
		center := e.G.Center()
		e.G.At(center).MarkPath()
		e.G.At(center).SetFinish()
		for _, d := range maze.CardinalDirections {
			n := center.Add(d)
			if e.G.InBounds(n) {
				e.G.At(n).MarkPath()
				e.G.At(n).SetFinish()
			}
		}
	}

	if e.R != nil && e.Animate {
		if e.Tag.Dark {
			e.R.Blank(e.G)
		} else {
			e.R.PrintFrame(e.G)
		}
		e.R.OverlapKey()
	}

	var wg sync.WaitGroup
	wg.Add(NumWorkers)
	for i := 0; i < NumWorkers; i++ {
		i := i
		go func() {
			defer wg.Done()
			e.dispatchWorker(m, i)
		}()
	}
	wg.Wait()

	return e.buildResult(m)
}

func (e *Engine) dispatchWorker(m *monitor, i int) {
	switch e.Tag.Strategy {
	case StrategyBFS:
		runBFSWorker(e, m, i)
	default:
		runDFSWorker(e, m, i)
	}
}

func (e *Engine) buildResult(m *monitor) Result {
	res := Result{WinnerIndex: int(m.winning.Load())}
	for i := range res.Paths {
		res.Paths[i] = m.paths[i]
	}
	switch e.Tag.Game {
	case GameGather:
		res.Message = "all threads found their finish squares"
	default:
		if res.WinnerIndex == noWinner {
			res.Message = "no thread won"
		} else {
			res.Message = render.SoloColor(res.WinnerIndex) + " thread won"
		}
	}
	return res
}
