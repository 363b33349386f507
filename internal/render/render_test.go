package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/dgates-maze/threadmaze/internal/maze"
)

func newPathGrid() *maze.Grid {
	g := maze.NewGrid(9, 9, maze.StyleSharp)
	g.EachInterior(func(p maze.Point) { g.At(p).MarkPath() })
	return g
}

func TestGlyphPrecedenceFinishBeatsPaint(t *testing.T) {
	g := newPathGrid()
	p := maze.Point{Row: 3, Col: 3}
	g.At(p).SetPaint(0)
	g.At(p).SetFinish()
	if got := Glyph(g, p); got != ansiFinish {
		t.Fatalf("finish bit must win render precedence, got %q", got)
	}
}

func TestGlyphPrecedenceStartBeatsPaint(t *testing.T) {
	g := newPathGrid()
	p := maze.Point{Row: 3, Col: 3}
	g.At(p).SetPaint(1)
	g.At(p).SetStart()
	if got := Glyph(g, p); got != ansiStart {
		t.Fatalf("start bit must win over paint, got %q", got)
	}
}

func TestGlyphPaintUsesOverlapPalette(t *testing.T) {
	g := newPathGrid()
	p := maze.Point{Row: 3, Col: 3}
	g.At(p).SetPaint(0)
	g.At(p).SetPaint(1)
	want := overlapPalette[0b0011]
	if got := Glyph(g, p); got != want {
		t.Fatalf("Glyph = %q, want %q for overlap mask 0b0011", got, want)
	}
}

func TestGlyphWallCellUsesWallPalette(t *testing.T) {
	g := maze.NewGrid(9, 9, maze.StyleSharp)
	p := maze.Point{Row: 1, Col: 1}
	g.At(p).SetWall(maze.North)
	want := g.StylePalette()[g.At(p).WallIndex()]
	if got := Glyph(g, p); got != want {
		t.Fatalf("Glyph = %q, want wall glyph %q", got, want)
	}
}

func TestGlyphPlainPathIsSpace(t *testing.T) {
	g := newPathGrid()
	if got := Glyph(g, maze.Point{Row: 3, Col: 3}); got != " " {
		t.Fatalf("Glyph = %q, want a space", got)
	}
}

func TestSoloColorMatchesSingleBitOverlapEntries(t *testing.T) {
	for worker := 0; worker < 4; worker++ {
		want := overlapPalette[1<<uint(worker)]
		if got := SoloColor(worker); got != want {
			t.Fatalf("SoloColor(%d) = %q, want %q", worker, got, want)
		}
	}
}

func TestPrintFrameEmitsOneLinePerRow(t *testing.T) {
	g := newPathGrid()
	var buf bytes.Buffer
	r := New(&buf)
	r.PrintFrame(g)
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != g.Rows() {
		t.Fatalf("PrintFrame emitted %d lines, want %d", len(lines), g.Rows())
	}
}

func TestClearScreenEmitsAnsiSequence(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf)
	r.ClearScreen()
	if !strings.Contains(buf.String(), ansiClearScreen) {
		t.Fatalf("ClearScreen output %q missing clear sequence", buf.String())
	}
}
