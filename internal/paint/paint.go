// Package paint holds the two read-only maze analyses that run once a maze
// is built (and optionally already solved): a distance-from-center glow and
// a straight-corridor-run highlight. Both share one shape: a single-threaded
// BFS computes a per-cell metric and its maximum, then either an instant
// whole-frame print or four animated flood-fill workers render it.
package paint

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/dgates-maze/threadmaze/internal/maze"
	"github.com/dgates-maze/threadmaze/internal/render"
	"github.com/dgates-maze/threadmaze/internal/ring"
)

// randChannel draws the single color channel (0=R, 1=G, 2=B) a render call
// brightens, the same way the original's rand_color_choice is drawn once per
// run and shared by every Thread_guide rather than picked per worker.
func randChannel() int {
	return rand.Intn(3)
}

// NumWorkers is the fixed worker count both animated painters dispatch.
const NumWorkers = 4

// Analysis is a per-cell metric (distance from center, or run length) over
// every reachable interior cell, plus its maximum for intensity scaling.
type Analysis struct {
	Values map[maze.Point]int
	Max    int
}

// rgbEscape renders a truecolor block glyph: intensity scales a shared dark
// base across all three channels, then one channel is brightened, so the
// glyph reads as a colored glow rather than flat grayscale.
func rgbEscape(intensity float64, channel int) string {
	if intensity < 0 {
		intensity = 0
	}
	dark := uint8(255.0 * intensity)
	bright := uint8(128) + uint8(127.0*intensity)
	rgb := [3]uint8{dark, dark, dark}
	rgb[channel] = bright
	return fmt.Sprintf("\033[38;2;%d;%d;%dm█\033[0m", rgb[0], rgb[1], rgb[2])
}

func intensity(value, max int) float64 {
	if max == 0 {
		return 1
	}
	return float64(max-value) / float64(max)
}

// center is the BFS anchor every painter measures distance/runs from: the
// same cell the solver's corners game converges on.
func center(g *maze.Grid) maze.Point {
	return g.Center()
}

// paintInstant walks the whole grid row-major, printing an analysis-derived
// glyph for every cell the analysis covers and falling back to the normal
// wall/path glyph everywhere else (start/finish/unreachable/solve paint).
func paintInstant(g *maze.Grid, r *render.Renderer, a Analysis, channel int) {
	for row := 0; row < g.Rows(); row++ {
		for col := 0; col < g.Cols(); col++ {
			p := maze.Point{Row: row, Col: col}
			if v, ok := a.Values[p]; ok {
				r.PrintAt(p, rgbEscape(intensity(v, a.Max), channel))
			} else {
				r.PrintAt(p, render.Glyph(g, p))
			}
		}
	}
}

// paintAnimated dispatches NumWorkers flood-fill goroutines out from the
// analysis's center cell, each biased toward a distinct cardinal direction,
// all four sharing the single color channel drawn once for this render call.
func paintAnimated(g *maze.Grid, r *render.Renderer, a Analysis, start maze.Point, micros int) {
	channel := randChannel()
	var wg sync.WaitGroup
	wg.Add(NumWorkers)
	for worker := 0; worker < NumWorkers; worker++ {
		worker := worker
		go func() {
			defer wg.Done()
			paintWorker(g, r, a, start, worker, channel, micros)
		}()
	}
	wg.Wait()
}

func paintWorker(g *maze.Grid, r *render.Renderer, a Analysis, start maze.Point, worker, channel, micros int) {
	seen := map[maze.Point]bool{start: true}
	frontier := ring.New[maze.Point]()
	frontier.Reserve(1024)
	frontier.Push(start)

	for !frontier.Empty() {
		cur := frontier.Pop()
		if _, ok := a.Values[cur]; ok && g.At(cur).ClaimPaintSlot() {
			r.PrintAt(cur, rgbEscape(intensity(a.Values[cur], a.Max), channel))
			if micros > 0 {
				time.Sleep(time.Duration(micros) * time.Microsecond)
			}
		}
		for i := 0; i < 4; i++ {
			dirIdx := (worker + i) % 4
			next := cur.Add(maze.CardinalDirections[dirIdx])
			if !g.InBounds(next) || seen[next] {
				continue
			}
			if _, ok := a.Values[next]; !ok {
				continue
			}
			seen[next] = true
			frontier.Push(next)
		}
	}
}
