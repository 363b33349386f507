// Package cli holds the flag dialect shared by the run-maze and measure
// executables: row/column/builder/style/animation-speed parsing, usage
// dumps, and the terminal size probe the teacher program used to pick
// default dimensions. The core (maze/build/solve/paint/render) consumes
// only the parsed Config and a Renderer; it never imports this package.
package cli

import (
	"flag"
	"fmt"
	"os"

	"golang.org/x/crypto/ssh/terminal"

	"github.com/dgates-maze/threadmaze/internal/build"
	"github.com/dgates-maze/threadmaze/internal/maze"
)

const signOn = "\nthreadmaze maze generation/solving console\n\n"

// Config is every flag both executables understand, after validation.
// SolveTagRaw and PaintKindRaw are passed through unchecked; the executables
// parse them with solve.ParseTag and paint.ParseKind.
type Config struct {
	Rows, Cols   int
	Algo         build.Algorithm
	Mod          build.Modification
	Style        maze.WallStyle
	BuildAnimate bool
	BuildSpeed   maze.Speed
	SolveAnimate bool
	SolveSpeed   maze.Speed
	SolveTagRaw  string
	PaintAnimate bool
	PaintSpeed   maze.Speed
	PaintKindRaw string
}

// consoleSize mirrors the teacher's getConsoleSize: ask the terminal, fall
// back to a conservative 24x80 if stdin isn't a terminal.
func consoleSize() (rows, cols int) {
	cols, rows, err := terminal.GetSize(0)
	if err != nil {
		return 24, 80
	}
	return rows, cols
}

// usageFor builds the flag.Usage func for a given executable name and its
// extra lines (run-maze documents -s, measure documents -p).
func usageFor(prog string, extra string) func() {
	return func() {
		fmt.Fprintf(os.Stderr, "%sUsage: %s [options]\n%s", signOn, prog,
			"Options:\n"+
				"  -r  <rows>     grid rows, rounded up to odd >= 7  (default: sized from screen height)\n"+
				"  -c  <cols>     grid cols, rounded up to odd >= 7  (default: sized from screen width )\n"+
				"  -b  <builder>  rdfs|wilson|wilson-walls|fractal|kruskal|eller|prim|grid|arena\n"+
				"  -m  <mod>      cross|x, post-build modification   (default: none)\n"+
				"  -d  <style>    sharp|round|doubles|bold|contrast|spikes (default: sharp)\n"+
				"  -ba <0..7>     builder animation speed, 0 = instant\n"+
				extra+
				"  -h             usage\n\n")
	}
}

// parsed holds the fields every flag set shares; run-maze and measure each
// add their own -s/-p flag on top before calling flag.Parse.
type parsed struct {
	rows, cols int
	builder    string
	mod        string
	style      string
	buildSpeed int
}

func registerShared(fs *flag.FlagSet, p *parsed, defRows, defCols int) {
	fs.IntVar(&p.rows, "r", defRows, "rows")
	fs.IntVar(&p.cols, "c", defCols, "cols")
	fs.StringVar(&p.builder, "b", string(build.AlgoRecursiveBacktracker), "builder")
	fs.StringVar(&p.mod, "m", "", "modification")
	fs.StringVar(&p.style, "d", "sharp", "wall style")
	fs.IntVar(&p.buildSpeed, "ba", 0, "builder animation speed")
}

func validateSpeed(name string, v int) (maze.Speed, error) {
	if v < 0 || v > 7 {
		return 0, fmt.Errorf("%s must be 0..7, got %d", name, v)
	}
	return maze.Speed(v), nil
}

// ParseRunMaze parses the run-maze executable's flags: the shared dialect
// plus -s (solver tag) and -sa (solver animation speed).
func ParseRunMaze(args []string) (*Config, error) {
	defRows, defCols := consoleSize()
	fs := flag.NewFlagSet("run-maze", flag.ContinueOnError)
	fs.Usage = usageFor("run-maze", "  -s  <tag>      <algo>-<game>, e.g. darkbfs-corners\n  -sa <0..7>     solver animation speed, 0 = instant\n")
	p := &parsed{}
	registerShared(fs, p, (defRows-3)/2, (defCols-1)/4)
	var solveTag string
	var solveSpeed int
	fs.StringVar(&solveTag, "s", "dfs-hunt", "solver tag")
	fs.IntVar(&solveSpeed, "sa", 0, "solver animation speed")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	cfg, err := commonConfig(p)
	if err != nil {
		return nil, err
	}
	ss, err := validateSpeed("-sa", solveSpeed)
	if err != nil {
		return nil, err
	}
	cfg.SolveTagRaw = solveTag
	cfg.SolveSpeed = ss
	cfg.SolveAnimate = solveSpeed > 0
	return cfg, nil
}

// ParseMeasure parses the measure executable's flags: the shared dialect
// plus -p (painter kind) and -pa (painter animation speed).
func ParseMeasure(args []string) (*Config, error) {
	defRows, defCols := consoleSize()
	fs := flag.NewFlagSet("measure", flag.ContinueOnError)
	fs.Usage = usageFor("measure", "  -p  <kind>     distance|runs\n  -pa <0..7>     painter animation speed, 0 = instant\n")
	p := &parsed{}
	registerShared(fs, p, (defRows-3)/2, (defCols-1)/4)
	var paintKind string
	var paintSpeed int
	fs.StringVar(&paintKind, "p", "distance", "painter kind")
	fs.IntVar(&paintSpeed, "pa", 0, "painter animation speed")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	cfg, err := commonConfig(p)
	if err != nil {
		return nil, err
	}
	ps, err := validateSpeed("-pa", paintSpeed)
	if err != nil {
		return nil, err
	}
	cfg.PaintKindRaw = paintKind
	cfg.PaintSpeed = ps
	cfg.PaintAnimate = paintSpeed > 0
	return cfg, nil
}

func commonConfig(p *parsed) (*Config, error) {
	if p.rows < 7 {
		return nil, fmt.Errorf("-r must be >= 7, got %d", p.rows)
	}
	if p.cols < 7 {
		return nil, fmt.Errorf("-c must be >= 7, got %d", p.cols)
	}
	algo, err := build.ParseAlgorithm(p.builder)
	if err != nil {
		return nil, err
	}
	style, err := maze.ParseWallStyle(p.style)
	if err != nil {
		return nil, err
	}
	bs, err := validateSpeed("-ba", p.buildSpeed)
	if err != nil {
		return nil, err
	}
	return &Config{
		Rows:         p.rows,
		Cols:         p.cols,
		Algo:         algo,
		Mod:          build.ParseModification(p.mod),
		Style:        style,
		BuildSpeed:   bs,
		BuildAnimate: p.buildSpeed > 0,
	}, nil
}
