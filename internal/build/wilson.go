package build

import (
	"github.com/dgates-maze/threadmaze/internal/maze"
	"github.com/dgates-maze/threadmaze/internal/render"
)

// WilsonPathCarver builds a uniform spanning tree over the odd-cell lattice
// with loop-erased random walks: one odd cell starts "in the maze"; every
// other odd cell then random-walks (steering only away from its immediate
// predecessor) until it touches the tree. Whenever the walk crosses itself
// the loop is erased by cutting the recorded steps back to the crossing
// point, and once the tree is reached the surviving walk is carved into the
// grid.
func WilsonPathCarver(g *maze.Grid) {
	FillWithWalls(g)
	wilsonWalk(g, nil)
	ClearTransientMarkers(g)
}

// WilsonPathCarverAnimated is WilsonPathCarver's animated twin.
func WilsonPathCarverAnimated(g *maze.Grid, r *render.Renderer, speed maze.Speed) {
	FillWithWalls(g)
	a := &Animator{R: r, G: g, Micros: maze.BuilderMicros[speed]}
	wilsonWalk(g, a)
	ClearTransientMarkers(g)
}

func oddCells(g *maze.Grid) []maze.Point {
	var pts []maze.Point
	for r := 1; r < g.Rows()-1; r += 2 {
		for c := 1; c < g.Cols()-1; c += 2 {
			pts = append(pts, maze.Point{Row: r, Col: c})
		}
	}
	return pts
}

func wilsonWalk(g *maze.Grid, a *Animator) {
	cells := oddCells(g)
	Rng.Shuffle(len(cells), func(i, j int) { cells[i], cells[j] = cells[j], cells[i] })

	root := cells[0]
	carvePath(g, root, a)
	inMaze := map[maze.Point]bool{root: true}

	for _, start := range cells[1:] {
		if inMaze[start] {
			continue
		}
		walk := map[maze.Point]maze.Point{} // cell -> next step taken from it
		order := []maze.Point{start}
		cur := start
		var prev maze.Point
		havePrev := false
		for !inMaze[cur] {
			next := randomWalkStep(g, cur, prev, havePrev)
			if loopStart, looped := walk[next]; looped {
				// Erase the loop: drop every step recorded after the cell
				// that followed next, then keep walking from next, whose
				// outgoing step the following move overwrites.
				eraseLoop(walk, &order, next, loopStart)
			} else {
				walk[cur] = next
				order = append(order, next)
			}
			prev, havePrev = cur, true
			cur = next
		}
		// Commit the walk: carve every step from start to the tree.
		walkPt := start
		for {
			inMaze[walkPt] = true
			next, ok := walk[walkPt]
			if !ok {
				break
			}
			join(g, walkPt, next, a)
			walkPt = next
		}
	}
}

func eraseLoop(walk map[maze.Point]maze.Point, order *[]maze.Point, next, loopStart maze.Point) {
	idx := -1
	for i, p := range *order {
		if p == loopStart {
			idx = i
			break
		}
	}
	if idx < 0 {
		return
	}
	for _, dead := range (*order)[idx+1:] {
		delete(walk, dead)
	}
	*order = (*order)[:idx+1]
	walk[loopStart] = next
}

// randomWalkStep chooses the next odd cell for a Wilson walk, steering away
// from the cell it just came from when that's possible.
func randomWalkStep(g *maze.Grid, cur, prev maze.Point, havePrev bool) maze.Point {
	dirs := ShuffleDirections()
	for _, d := range dirs {
		n := maze.Point{Row: cur.Row + 2*d.Row, Col: cur.Col + 2*d.Col}
		if !g.InInterior(n) {
			continue
		}
		if havePrev && n == prev {
			continue
		}
		return n
	}
	// Every direction but the one we came from hit the boundary; stepping
	// back is the only legal move.
	return prev
}

// WilsonWallAdder is the dual construction: instead of carving a spanning
// tree of cells, it builds a spanning tree of the walls on the even-cell
// lattice, starting from an all-path interior (BuildOutline) and adding
// standing walls back in wherever Wilson's walk visits.
func WilsonWallAdder(g *maze.Grid) {
	BuildOutline(g)
	wilsonWallWalk(g, nil)
	ClearTransientMarkers(g)
}

// WilsonWallAdderAnimated is WilsonWallAdder's animated twin.
func WilsonWallAdderAnimated(g *maze.Grid, r *render.Renderer, speed maze.Speed) {
	a := &Animator{R: r, G: g, Micros: maze.BuilderMicros[speed]}
	BuildOutlineAnimated(g, a)
	wilsonWallWalk(g, a)
	ClearTransientMarkers(g)
}

// evenCells enumerates the even-indexed interior lattice the wall-adder
// variant treats as "separator" nodes whose spanning tree becomes the
// standing walls of the finished maze.
func evenCells(g *maze.Grid) []maze.Point {
	var pts []maze.Point
	for r := 2; r < g.Rows()-1; r += 2 {
		for c := 2; c < g.Cols()-1; c += 2 {
			pts = append(pts, maze.Point{Row: r, Col: c})
		}
	}
	return pts
}

func wilsonWallWalk(g *maze.Grid, a *Animator) {
	cells := evenCells(g)
	if len(cells) == 0 {
		return
	}
	Rng.Shuffle(len(cells), func(i, j int) { cells[i], cells[j] = cells[j], cells[i] })

	root := cells[0]
	carveWallLine(g, root, a)
	inTree := map[maze.Point]bool{root: true}

	for _, start := range cells[1:] {
		if inTree[start] {
			continue
		}
		walk := map[maze.Point]maze.Point{}
		order := []maze.Point{start}
		cur := start
		var prev maze.Point
		havePrev := false
		for !inTree[cur] {
			next := randomWallStep(g, cur, prev, havePrev)
			if loopStart, looped := walk[next]; looped {
				eraseLoop(walk, &order, next, loopStart)
			} else {
				walk[cur] = next
				order = append(order, next)
			}
			prev, havePrev = cur, true
			cur = next
		}
		walkPt := start
		for {
			inTree[walkPt] = true
			next, ok := walk[walkPt]
			if !ok {
				break
			}
			carveWallLine(g, walkPt, a)
			// The wall segment midway between two tree nodes also becomes
			// standing wall, completing the dual edge.
			mid := maze.Point{Row: (walkPt.Row + next.Row) / 2, Col: (walkPt.Col + next.Col) / 2}
			carveWallLine(g, mid, a)
			walkPt = next
		}
	}
	carveWallLine(g, root, a)
}

func randomWallStep(g *maze.Grid, cur, prev maze.Point, havePrev bool) maze.Point {
	dirs := ShuffleDirections()
	for _, d := range dirs {
		n := maze.Point{Row: cur.Row + 2*d.Row, Col: cur.Col + 2*d.Col}
		if n.Row < 2 || n.Row >= g.Rows()-1 || n.Col < 2 || n.Col >= g.Cols()-1 {
			continue
		}
		if havePrev && n == prev {
			continue
		}
		return n
	}
	return prev
}
