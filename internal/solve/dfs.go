package solve

import (
	"math/rand"
	"time"

	"github.com/dgates-maze/threadmaze/internal/maze"
)

// dfsKind distinguishes the three DFS-family strategies by how they choose
// the next direction to explore and whether they erase paint on backtrack.
type dfsKind struct {
	erase    bool // plain/randomized DFS un-paint a dead end; flood DFS leaves it lit
	shuffled bool // randomized DFS shuffles direction order every step
}

func kindFor(s Strategy) dfsKind {
	switch s {
	case StrategyRandomizedDFS:
		return dfsKind{erase: true, shuffled: true}
	case StrategyFloodDFS:
		return dfsKind{erase: false, shuffled: false}
	default:
		return dfsKind{erase: true, shuffled: false}
	}
}

// directionOrder returns the order a worker tries the four cardinal
// directions in: fixed and biased toward its own index for plain/flood DFS,
// freshly shuffled every step for randomized DFS.
func directionOrder(k dfsKind, worker int, rng *rand.Rand) [4]int {
	var order [4]int
	for i := range order {
		order[i] = (worker + i) % 4
	}
	if k.shuffled {
		rng.Shuffle(4, func(i, j int) { order[i], order[j] = order[j], order[i] })
	}
	return order
}

// runDFSWorker drives one worker through the DFS-family loop shared by DFS,
// randomized DFS, and flood DFS. Termination and paint semantics branch on
// the engine's Game; direction order and erase-on-backtrack branch on the
// strategy kind.
func runDFSWorker(e *Engine, m *monitor, worker int) {
	k := kindFor(e.Tag.Strategy)
	g := e.G
	rng := rand.New(rand.NewSource(int64(worker) + time.Now().UnixNano()))
	start := m.starts[worker]
	stack := []maze.Point{start}
	// passed holds gather finishes another worker already claimed; this
	// worker walks through them without setting its cache bit there, so the
	// claimant's bit stays the only one on each finish.
	passed := map[maze.Point]bool{}

	for len(stack) > 0 {
		if e.Tag.Game != GameGather && m.winning.Load() != noWinner {
			return
		}
		cur := stack[len(stack)-1]
		cell := g.At(cur)

		switch e.Tag.Game {
		case GameGather:
			if cell.IsFinish() {
				if cell.ClaimFinish(worker) {
					stack = stack[:len(stack)-1]
					e.paintStack(m, worker, stack)
					return
				}
				passed[cur] = true
			}
		default:
			if cell.IsFinish() {
				if m.winning.CompareAndSwap(int32(noWinner), int32(worker)) {
					stack = stack[:len(stack)-1]
					e.paintStack(m, worker, stack)
				}
				return
			}
		}
		if !passed[cur] {
			cell.SetCache(worker)
		}
		// Flood DFS paints every visited cell permanently, instant or
		// animated; plain/randomized DFS only paint while animating, relying
		// on the final paintStack call to light the surviving path.
		if !k.erase {
			cell.SetPaint(worker)
		}
		if e.Animate {
			if k.erase {
				cell.SetPaint(worker)
			}
			if e.R != nil {
				e.R.PrintCell(g, cur)
			}
			e.sleep()
		}

		found := false
		for _, dirIdx := range directionOrder(k, worker, rng) {
			next := cur.Add(maze.CardinalDirections[dirIdx])
			if !g.InBounds(next) {
				continue
			}
			nc := g.At(next)
			if !nc.Cache(worker) && !passed[next] && nc.IsPath() {
				stack = append(stack, next)
				found = true
				break
			}
		}
		if !found {
			if e.Animate && k.erase {
				cell.ClearPaint(worker)
				if e.R != nil {
					e.R.PrintCell(g, cur)
				}
				e.sleep()
			}
			stack = stack[:len(stack)-1]
		}
	}

	if e.Tag.Game != GameGather {
		e.paintStack(m, worker, stack)
	}
}

// paintStack marks paintBit on every cell still on a worker's stack; used
// for the instant-mode epilogue where animated per-step painting never ran.
func (e *Engine) paintStack(m *monitor, worker int, stack []maze.Point) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, p := range stack {
		e.G.At(p).SetPaint(worker)
	}
	m.paths[worker] = append(m.paths[worker][:0], stack...)
}

func (e *Engine) sleep() {
	micros := maze.SolverMicros[e.Speed]
	if micros > 0 {
		time.Sleep(time.Duration(micros) * time.Microsecond)
	}
}
