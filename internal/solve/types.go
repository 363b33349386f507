// Package solve is the concurrent solver engine: four goroutine workers
// that race (hunt), collect distinct goals (gather), or converge from the
// four corners (corners) over a shared Grid, using DFS, randomized DFS,
// flood-fill DFS, or BFS, with an optional "dark" mode that hides the maze
// until worker trails uncover it.
package solve

import (
	"fmt"

	"github.com/dgates-maze/threadmaze/internal/maze"
)

// NumWorkers is the fixed worker count every game dispatches.
const NumWorkers = 4

// Game names one of the three solver games.
type Game int

const (
	GameHunt Game = iota
	GameGather
	GameCorners
)

// Strategy names one of the four search algorithms a worker runs.
type Strategy int

const (
	StrategyDFS Strategy = iota
	StrategyRandomizedDFS
	StrategyFloodDFS
	StrategyBFS
)

// Tag is a parsed `-s` CLI argument of the form "<algo>-<game>".
type Tag struct {
	Strategy Strategy
	Dark     bool
	Game     Game
}

var strategyNames = map[string]struct {
	strategy Strategy
	dark     bool
}{
	"dfs":             {StrategyDFS, false},
	"floodfs":         {StrategyFloodDFS, false},
	"rdfs":            {StrategyRandomizedDFS, false},
	"bfs":             {StrategyBFS, false},
	"darkdfs":         {StrategyDFS, true},
	"darkbfs":         {StrategyBFS, true},
	"darkfloodfs":     {StrategyFloodDFS, true},
	"darkrdfs":        {StrategyRandomizedDFS, true},
}

var gameNames = map[string]Game{
	"hunt":    GameHunt,
	"gather":  GameGather,
	"corners": GameCorners,
}

// ParseTag splits a "<algo>-<game>" solver tag, e.g. "darkbfs-corners".
func ParseTag(s string) (Tag, error) {
	for algoName, algo := range strategyNames {
		suffix := "-"
		if len(s) > len(algoName)+len(suffix) && s[:len(algoName)] == algoName && s[len(algoName)] == '-' {
			gameName := s[len(algoName)+1:]
			if game, ok := gameNames[gameName]; ok {
				return Tag{Strategy: algo.strategy, Dark: algo.dark, Game: game}, nil
			}
		}
	}
	return Tag{}, fmt.Errorf("unrecognized solver tag %q", s)
}

// Result is the outcome of one solve run.
type Result struct {
	// WinnerIndex is the worker index that reached a finish first, or -1
	// if no worker won (hunt/corners only; always -1 for gather).
	WinnerIndex int
	// Paths holds each worker's final recorded path. DFS strategies record
	// the stack from the start up to, not including, the finish the worker
	// won or claimed, and nothing for a worker that did not. BFS records the
	// parent-map walk from the cell after the start up to the last cell the
	// worker popped.
	Paths [NumWorkers][]maze.Point
	// Message is the epilogue line printed below the frame.
	Message string
}

const noWinner = -1
