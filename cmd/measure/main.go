// Command measure builds a maze and then runs one of the two read-only
// painter analyses over it: distance-from-center or straight-run bias,
// optionally animated as four flood-fill workers.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/dgates-maze/threadmaze/internal/build"
	"github.com/dgates-maze/threadmaze/internal/cli"
	"github.com/dgates-maze/threadmaze/internal/maze"
	"github.com/dgates-maze/threadmaze/internal/paint"
	"github.com/dgates-maze/threadmaze/internal/render"
)

func main() {
	cfg, err := cli.ParseMeasure(os.Args[1:])
	if err != nil {
		if err == flag.ErrHelp {
			os.Exit(0)
		}
		fmt.Fprintln(os.Stderr, "measure:", err)
		os.Exit(1)
	}

	kind, err := paint.ParseKind(cfg.PaintKindRaw)
	if err != nil {
		fmt.Fprintln(os.Stderr, "measure:", err)
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

	if cfg.PaintAnimate {
		paint.PaintAnimated(g, r, kind, cfg.PaintSpeed)
	} else {
		paint.Paint(g, r, kind)
	}
	r.Println("measurement complete")
}
