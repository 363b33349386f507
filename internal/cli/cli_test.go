package cli

import (
	"testing"

	"github.com/dgates-maze/threadmaze/internal/paint"
	"github.com/dgates-maze/threadmaze/internal/solve"
)

func TestParseRunMazeRejectsUndersizedDimensions(t *testing.T) {
	if _, err := ParseRunMaze([]string{"-r", "3", "-c", "21"}); err == nil {
		t.Fatal("expected error for rows below 7")
	}
	if _, err := ParseRunMaze([]string{"-r", "21", "-c", "3"}); err == nil {
		t.Fatal("expected error for cols below 7")
	}
}

func TestParseRunMazeRejectsUnknownBuilder(t *testing.T) {
	if _, err := ParseRunMaze([]string{"-r", "21", "-c", "21", "-b", "not-a-builder"}); err == nil {
		t.Fatal("expected error for unrecognized builder")
	}
}

func TestParseRunMazeRejectsUnknownSolverTag(t *testing.T) {
	// ParseRunMaze passes -s through raw; solve.ParseTag rejects it at the
	// call site, as cmd/run-maze does.
	cfg, err := ParseRunMaze([]string{"-r", "21", "-c", "21", "-s", "nope-hunt"})
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	if _, err := solve.ParseTag(cfg.SolveTagRaw); err == nil {
		t.Fatal("expected error for unrecognized solver tag")
	}
}

func TestParseRunMazeRejectsOutOfRangeSpeed(t *testing.T) {
	if _, err := ParseRunMaze([]string{"-r", "21", "-c", "21", "-ba", "8"}); err == nil {
		t.Fatal("expected error for builder speed above 7")
	}
	if _, err := ParseRunMaze([]string{"-r", "21", "-c", "21", "-sa", "-1"}); err == nil {
		t.Fatal("expected error for negative solver speed")
	}
}

func TestParseRunMazeAccepts(t *testing.T) {
	cfg, err := ParseRunMaze([]string{"-r", "21", "-c", "31", "-b", "kruskal", "-s", "darkbfs-corners", "-d", "round"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Rows != 21 || cfg.Cols != 31 {
		t.Fatalf("unexpected dims: %d x %d", cfg.Rows, cfg.Cols)
	}
	if cfg.SolveTagRaw != "darkbfs-corners" {
		t.Fatalf("unexpected solver tag: %s", cfg.SolveTagRaw)
	}
}

func TestParseMeasureRejectsUnknownPainter(t *testing.T) {
	cfg, err := ParseMeasure([]string{"-r", "21", "-c", "21", "-p", "nonsense"})
	if err != nil {
		// ParseMeasure itself doesn't validate -p (paint.ParseKind does, at
		// the call site), so any CLI-layer error here would be a surprise.
		t.Fatalf("unexpected parse error: %v", err)
	}
	if _, err := paint.ParseKind(cfg.PaintKindRaw); err == nil {
		t.Fatal("expected error for unrecognized painter")
	}
}

func TestParseMeasureAccepts(t *testing.T) {
	cfg, err := ParseMeasure([]string{"-r", "21", "-c", "21", "-p", "runs", "-pa", "3"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.PaintKindRaw != "runs" || cfg.PaintSpeed != 3 || !cfg.PaintAnimate {
		t.Fatalf("unexpected config: %+v", cfg)
	}
}
