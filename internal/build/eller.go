package build

import (
	"sort"

	"github.com/dgates-maze/threadmaze/internal/maze"
	"github.com/dgates-maze/threadmaze/internal/render"
)

// Eller builds row by row over the odd-cell lattice with a sliding window
// of set ids: each row first merges adjacent cells in different sets with
// probability ~1/3, then every set in the row drops at least one vertical
// passage into the next row (except the last row, which merges every
// remaining distinct set so the maze stays a single component).
func Eller(g *maze.Grid) {
	FillWithWalls(g)
	ellerBuild(g, nil)
	ClearTransientMarkers(g)
}

// EllerAnimated is Eller's animated twin.
func EllerAnimated(g *maze.Grid, r *render.Renderer, speed maze.Speed) {
	FillWithWalls(g)
	a := &Animator{R: r, G: g, Micros: maze.BuilderMicros[speed]}
	ellerBuild(g, a)
	ClearTransientMarkers(g)
}

func ellerBuild(g *maze.Grid, a *Animator) {
	oddRows := (g.Rows() - 1) / 2
	oddCols := (g.Cols() - 1) / 2
	if oddRows == 0 || oddCols == 0 {
		return
	}

	rowOf := func(r int) int { return 1 + 2*r }
	colOf := func(c int) int { return 1 + 2*c }

	nextID := 0
	setID := make([]int, oddCols)
	for c := range setID {
		setID[c] = nextID
		nextID++
		carvePath(g, maze.Point{Row: rowOf(0), Col: colOf(c)}, a)
	}

	for r := 0; r < oddRows; r++ {
		// (i) merge adjacent cells with probability ~1/3.
		for c := 0; c < oddCols-1; c++ {
			if setID[c] == setID[c+1] {
				continue
			}
			if Rng.Intn(3) != 0 {
				continue
			}
			join(g, maze.Point{Row: rowOf(r), Col: colOf(c)}, maze.Point{Row: rowOf(r), Col: colOf(c + 1)}, a)
			merged := setID[c+1]
			for i := range setID {
				if setID[i] == merged {
					setID[i] = setID[c]
				}
			}
		}

		if r == oddRows-1 {
			// Final row: join every still-distinct neighboring pair so the
			// maze ends as one connected component.
			for c := 0; c < oddCols-1; c++ {
				if setID[c] == setID[c+1] {
					continue
				}
				join(g, maze.Point{Row: rowOf(r), Col: colOf(c)}, maze.Point{Row: rowOf(r), Col: colOf(c + 1)}, a)
				merged := setID[c+1]
				for i := range setID {
					if setID[i] == merged {
						setID[i] = setID[c]
					}
				}
			}
			break
		}

		// (ii) for each distinct set in the row, drop a random nonzero
		// subset of vertical passages into the next row. Per the source's
		// observed behavior (Open Question #3), independent random-index
		// picks can target the same member twice; carving is idempotent so
		// a repeat simply joins the same cells again rather than being
		// deduplicated, and the distribution is not idealized.
		members := map[int][]int{}
		for c := 0; c < oddCols; c++ {
			members[setID[c]] = append(members[setID[c]], c)
		}
		ids := make([]int, 0, len(members))
		for id := range members {
			ids = append(ids, id)
		}
		sort.Ints(ids)
		for _, id := range ids {
			cols := members[id]
			dropCount := 1 + Rng.Intn(len(cols))
			for i := 0; i < dropCount; i++ {
				c := cols[Rng.Intn(len(cols))]
				join(g, maze.Point{Row: rowOf(r), Col: colOf(c)}, maze.Point{Row: rowOf(r + 1), Col: colOf(c)}, a)
			}
		}
		for c := 0; c < oddCols; c++ {
			carvePath(g, maze.Point{Row: rowOf(r + 1), Col: colOf(c)}, a)
		}
		nextRowSet := make([]int, oddCols)
		for c := 0; c < oddCols; c++ {
			if wasDropped(g, rowOf(r), rowOf(r+1), colOf(c)) {
				nextRowSet[c] = setID[c]
			} else {
				nextRowSet[c] = nextID
				nextID++
			}
		}
		setID = nextRowSet
	}
}

// wasDropped reports whether a vertical passage connects (rowA,col) to
// (rowB,col): join() carves their midpoint to a path, so a carved midpoint
// means the drop happened. Used after the random-drop pass to decide
// whether a column carries its set id forward or starts a fresh one.
func wasDropped(g *maze.Grid, rowA, rowB, col int) bool {
	mid := maze.Point{Row: (rowA + rowB) / 2, Col: col}
	return g.At(mid).IsPath()
}
