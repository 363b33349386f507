package solve

import (
	"testing"

	"github.com/dgates-maze/threadmaze/internal/build"
	"github.com/dgates-maze/threadmaze/internal/maze"
)

func buildTestMaze(seed int64, rows, cols int) *maze.Grid {
	build.Seed(seed)
	g := maze.NewGrid(rows, cols, maze.StyleSharp)
	build.Build(g, build.AlgoKruskal, build.ModNone)
	return g
}

func TestParseTagRoundTrip(t *testing.T) {
	cases := map[string]Tag{
		"dfs-hunt":            {Strategy: StrategyDFS, Dark: false, Game: GameHunt},
		"rdfs-gather":         {Strategy: StrategyRandomizedDFS, Dark: false, Game: GameGather},
		"floodfs-corners":     {Strategy: StrategyFloodDFS, Dark: false, Game: GameCorners},
		"bfs-hunt":            {Strategy: StrategyBFS, Dark: false, Game: GameHunt},
		"darkdfs-hunt":        {Strategy: StrategyDFS, Dark: true, Game: GameHunt},
		"darkbfs-gather":      {Strategy: StrategyBFS, Dark: true, Game: GameGather},
		"darkfloodfs-corners": {Strategy: StrategyFloodDFS, Dark: true, Game: GameCorners},
		"darkrdfs-hunt":       {Strategy: StrategyRandomizedDFS, Dark: true, Game: GameHunt},
	}
	for s, want := range cases {
		got, err := ParseTag(s)
		if err != nil {
			t.Fatalf("ParseTag(%q): %v", s, err)
		}
		if got != want {
			t.Fatalf("ParseTag(%q) = %+v, want %+v", s, got, want)
		}
	}
}

func TestParseTagRejectsUnknown(t *testing.T) {
	if _, err := ParseTag("nope-hunt"); err == nil {
		t.Fatal("expected error for unknown strategy")
	}
	if _, err := ParseTag("dfs-nowhere"); err == nil {
		t.Fatal("expected error for unknown game")
	}
}

func runEngine(t *testing.T, seed int64, strategy Strategy, game Game) Result {
	t.Helper()
	g := buildTestMaze(seed, 21, 21)
	e := &Engine{G: g, Speed: maze.Instant, Tag: Tag{Strategy: strategy, Game: game}}
	return e.Run()
}

func TestHuntProducesWinnerOrExhaustsAllWorkers(t *testing.T) {
	for _, strategy := range []Strategy{StrategyDFS, StrategyRandomizedDFS, StrategyFloodDFS, StrategyBFS} {
		res := runEngine(t, 10, strategy, GameHunt)
		if res.WinnerIndex < noWinner || res.WinnerIndex >= NumWorkers {
			t.Fatalf("%v: winner index %d out of range", strategy, res.WinnerIndex)
		}
		if res.Message == "" {
			t.Fatalf("%v: expected a non-empty epilogue message", strategy)
		}
	}
}

func TestHuntAlwaysFindsAWinnerOnAPerfectMaze(t *testing.T) {
	// A perfect maze (single spanning tree) guarantees every start can reach
	// every finish, so a winner always exists regardless of strategy.
	for _, strategy := range []Strategy{StrategyDFS, StrategyRandomizedDFS, StrategyFloodDFS, StrategyBFS} {
		res := runEngine(t, 11, strategy, GameHunt)
		if res.WinnerIndex == noWinner {
			t.Fatalf("%v: expected a winner on a perfect maze", strategy)
		}
	}
}

func TestGatherHasNoWinnerAndReportsCompletion(t *testing.T) {
	for _, strategy := range []Strategy{StrategyDFS, StrategyBFS} {
		res := runEngine(t, 12, strategy, GameGather)
		if res.WinnerIndex != noWinner {
			t.Fatalf("%v: gather should never set a winner, got %d", strategy, res.WinnerIndex)
		}
		if res.Message != "all threads found their finish squares" {
			t.Fatalf("%v: unexpected gather message %q", strategy, res.Message)
		}
	}
}

// TestGatherEachFinishClaimedByExactlyOneWorker covers spec Property #9: of
// the four finish squares, each is claimed by exactly one worker's cache
// bit, and every finish is claimed by someone.
func TestGatherEachFinishClaimedByExactlyOneWorker(t *testing.T) {
	for _, strategy := range []Strategy{StrategyDFS, StrategyRandomizedDFS, StrategyFloodDFS, StrategyBFS} {
		g := buildTestMaze(20, 21, 21)
		e := &Engine{G: g, Speed: maze.Instant, Tag: Tag{Strategy: strategy, Game: GameGather}}
		e.Run()

		var finishes []maze.Point
		g.EachInterior(func(p maze.Point) {
			if g.At(p).IsFinish() {
				finishes = append(finishes, p)
			}
		})
		if len(finishes) != NumWorkers {
			t.Fatalf("%v: expected %d finish cells, found %d", strategy, NumWorkers, len(finishes))
		}

		claimants := make(map[int]bool)
		for _, p := range finishes {
			cell := g.At(p)
			owner, count := -1, 0
			for worker := 0; worker < NumWorkers; worker++ {
				if cell.Cache(worker) {
					owner = worker
					count++
				}
			}
			if count != 1 {
				t.Fatalf("%v: finish %v claimed by %d workers, want exactly 1", strategy, p, count)
			}
			if claimants[owner] {
				t.Fatalf("%v: worker %d claimed more than one finish", strategy, owner)
			}
			claimants[owner] = true
		}
		if len(claimants) != NumWorkers {
			t.Fatalf("%v: expected all %d workers to each claim a distinct finish, got %d", strategy, NumWorkers, len(claimants))
		}
	}
}

func TestCornersProducesAWinner(t *testing.T) {
	for _, strategy := range []Strategy{StrategyDFS, StrategyBFS} {
		res := runEngine(t, 13, strategy, GameCorners)
		if res.WinnerIndex == noWinner {
			t.Fatalf("%v: expected a winner converging on the center cluster", strategy)
		}
	}
}

func TestPickRandomPointAlwaysReturnsAnUnclaimedPathCell(t *testing.T) {
	g := buildTestMaze(14, 15, 15)
	for i := 0; i < 50; i++ {
		p := PickRandomPoint(g)
		cell := g.At(p)
		if !cell.IsPath() {
			t.Fatalf("iteration %d: picked non-path cell %v", i, p)
		}
		if cell.IsStart() || cell.IsFinish() {
			t.Fatalf("iteration %d: picked cell %v already a start/finish", i, p)
		}
	}
}
