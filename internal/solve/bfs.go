package solve

import (
	"github.com/dgates-maze/threadmaze/internal/maze"
	"github.com/dgates-maze/threadmaze/internal/ring"
)

// sentinel marks a BFS start point's synthetic parent, so path
// reconstruction knows when it has walked back past the root.
var sentinel = maze.Point{Row: -1, Col: -1}

// runBFSWorker drives one worker through a breadth-first search, rebuilding
// its path from a parent map after the frontier search finishes (a queue
// does not retain the path the way a DFS stack does).
func runBFSWorker(e *Engine, m *monitor, worker int) {
	g := e.G
	start := m.starts[worker]
	parents := map[maze.Point]maze.Point{start: sentinel}
	frontier := ring.New[maze.Point]()
	frontier.Reserve(1024)
	frontier.Push(start)

	cur := start
	for !frontier.Empty() {
		if e.Tag.Game != GameGather && m.winning.Load() != noWinner {
			break
		}
		cur = frontier.Pop()
		cell := g.At(cur)

		switch e.Tag.Game {
		case GameGather:
			if cell.IsFinish() && cell.ClaimFinish(worker) {
				goto reconstruct
			}
		default:
			if cell.IsFinish() {
				m.winning.CompareAndSwap(int32(noWinner), int32(worker))
				goto reconstruct
			}
		}
		cell.SetPaint(worker)
		if e.Animate {
			if e.R != nil {
				e.R.PrintCell(g, cur)
			}
			e.sleep()
		}

		for i := 0; i < 4; i++ {
			dirIdx := (worker + i) % 4
			next := cur.Add(maze.CardinalDirections[dirIdx])
			if !g.InBounds(next) {
				continue
			}
			if _, seen := parents[next]; seen {
				continue
			}
			if !g.At(next).IsPath() {
				continue
			}
			parents[next] = cur
			frontier.Push(next)
		}
	}

reconstruct:
	path := reconstructPath(parents, cur)
	m.mu.Lock()
	m.paths[worker] = path
	m.mu.Unlock()
}

// reconstructPath walks the parent map from cur back to the synthetic root,
// returning the path from (just past) the start to cur, closest-to-start first.
func reconstructPath(parents map[maze.Point]maze.Point, cur maze.Point) []maze.Point {
	var path []maze.Point
	for {
		parent, ok := parents[cur]
		if !ok || parent == sentinel {
			break
		}
		path = append(path, cur)
		cur = parent
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
