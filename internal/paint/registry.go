package paint

import (
	"fmt"

	"github.com/dgates-maze/threadmaze/internal/maze"
	"github.com/dgates-maze/threadmaze/internal/render"
)

// Kind names one of the two analyses the CLI's -p flag selects.
type Kind string

const (
	KindDistance Kind = "distance"
	KindRuns     Kind = "runs"
)

type Instant func(g *maze.Grid, r *render.Renderer)
type Animated func(g *maze.Grid, r *render.Renderer, speed maze.Speed)

type entry struct {
	instant  Instant
	animated Animated
}

var registry = map[Kind]entry{
	KindDistance: {DistanceFromCenter, DistanceFromCenterAnimated},
	KindRuns:     {Runs, RunsAnimated},
}

// ParseKind maps a CLI -p argument to a Kind.
func ParseKind(s string) (Kind, error) {
	k := Kind(s)
	if _, ok := registry[k]; ok {
		return k, nil
	}
	return "", fmt.Errorf("unrecognized painter %q", s)
}

// Paint runs the instant form of kind over g.
func Paint(g *maze.Grid, r *render.Renderer, kind Kind) {
	registry[kind].instant(g, r)
}

// PaintAnimated runs the animated form of kind over g at the given speed.
func PaintAnimated(g *maze.Grid, r *render.Renderer, kind Kind, speed maze.Speed) {
	registry[kind].animated(g, r, speed)
}
