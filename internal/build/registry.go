package build

import (
	"fmt"

	"github.com/dgates-maze/threadmaze/internal/maze"
	"github.com/dgates-maze/threadmaze/internal/render"
)

// Algorithm names one of the nine builders the CLI's -b flag selects.
type Algorithm string

const (
	AlgoRecursiveBacktracker Algorithm = "rdfs"
	AlgoWilsonCarver         Algorithm = "wilson"
	AlgoWilsonWalls          Algorithm = "wilson-walls"
	AlgoFractal              Algorithm = "fractal"
	AlgoKruskal              Algorithm = "kruskal"
	AlgoEller                Algorithm = "eller"
	AlgoPrim                 Algorithm = "prim"
	AlgoGridRuns             Algorithm = "grid"
	AlgoArena                Algorithm = "arena"
)

// Instant and Animated are the two forms every builder supplies: a
// one-shot mutation and a step-by-step, speed-gated render.
type Instant func(g *maze.Grid)
type Animated func(g *maze.Grid, r *render.Renderer, speed maze.Speed)

type entry struct {
	instant  Instant
	animated Animated
}

var registry = map[Algorithm]entry{
	AlgoRecursiveBacktracker: {RecursiveBacktracker, RecursiveBacktrackerAnimated},
	AlgoWilsonCarver:         {WilsonPathCarver, WilsonPathCarverAnimated},
	AlgoWilsonWalls:          {WilsonWallAdder, WilsonWallAdderAnimated},
	AlgoFractal:              {Fractal, FractalAnimated},
	AlgoKruskal:              {Kruskal, KruskalAnimated},
	AlgoEller:                {Eller, EllerAnimated},
	AlgoPrim:                 {Prim, PrimAnimated},
	AlgoGridRuns:             {GridRuns, GridRunsAnimated},
	AlgoArena:                {Arena, ArenaAnimated},
}

// ParseAlgorithm maps a CLI -b argument to an Algorithm.
func ParseAlgorithm(s string) (Algorithm, error) {
	a := Algorithm(s)
	if _, ok := registry[a]; ok {
		return a, nil
	}
	return "", fmt.Errorf("unrecognized builder %q", s)
}

// Build runs the instant form of algo over g, then applies mod.
func Build(g *maze.Grid, algo Algorithm, mod Modification) {
	registry[algo].instant(g)
	applyMod(g, mod)
}

// BuildAnimated runs the animated form of algo over g at the given speed,
// then applies the post-build modification and, if there was one, prints
// the whole frame again.
func BuildAnimated(g *maze.Grid, r *render.Renderer, algo Algorithm, speed maze.Speed, mod Modification) {
	registry[algo].animated(g, r, speed)
	applyMod(g, mod)
	if mod != ModNone {
		r.PrintFrame(g)
	}
}

func applyMod(g *maze.Grid, mod Modification) {
	switch mod {
	case ModCross:
		AddCross(g)
	case ModX:
		AddX(g)
	}
}
