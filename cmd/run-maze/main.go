// Command run-maze builds a maze with one of the nine builders and then
// races four concurrent workers over it under one of the three solver
// games, optionally animating both passes.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/dgates-maze/threadmaze/internal/build"
	"github.com/dgates-maze/threadmaze/internal/cli"
	"github.com/dgates-maze/threadmaze/internal/maze"
	"github.com/dgates-maze/threadmaze/internal/render"
	"github.com/dgates-maze/threadmaze/internal/solve"
)

func main() {
	cfg, err := cli.ParseRunMaze(os.Args[1:])
	if err != nil {
		if err == flag.ErrHelp {
			os.Exit(0)
		}
		fmt.Fprintln(os.Stderr, "run-maze:", err)
		os.Exit(1)
	}

	tag, err := solve.ParseTag(cfg.SolveTagRaw)
	if err != nil {
		fmt.Fprintln(os.Stderr, "run-maze:", err)
		os.Exit(1)
	}

	g := maze.NewGrid(cfg.Rows, cfg.Cols, cfg.Style)
	r := render.New(os.Stdout)
	r.ClearScreen()

	if cfg.BuildAnimate {
		build.BuildAnimated(g, r, cfg.Algo, cfg.BuildSpeed, cfg.Mod)
	} else {
		build.Build(g, cfg.Algo, cfg.Mod)
		r.PrintFrame(g)
	}

	engine := &solve.Engine{G: g, R: r, Speed: cfg.SolveSpeed, Animate: cfg.SolveAnimate, Tag: tag}
	result := engine.Run()

	r.PrintFrame(g)
	r.Println("%s", result.Message)
}
