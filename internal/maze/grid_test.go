package maze

import "testing"

func TestNewGridRoundsUpToOdd(t *testing.T) {
	cases := []struct{ rows, cols, wantRows, wantCols int }{
		{7, 7, 7, 7},
		{8, 8, 9, 9},
		{1, 1, 7, 7},
		{20, 21, 21, 21},
	}
	for _, tc := range cases {
		g := NewGrid(tc.rows, tc.cols, StyleSharp)
		if g.Rows() != tc.wantRows || g.Cols() != tc.wantCols {
			t.Errorf("NewGrid(%d,%d) = (%d,%d), want (%d,%d)",
				tc.rows, tc.cols, g.Rows(), g.Cols(), tc.wantRows, tc.wantCols)
		}
		if g.Rows()%2 == 0 || g.Cols()%2 == 0 {
			t.Errorf("dimensions must stay odd: %d x %d", g.Rows(), g.Cols())
		}
	}
}

func TestGridAtIndexesRowMajor(t *testing.T) {
	g := NewGrid(9, 11, StyleSharp)
	g.At(Point{Row: 2, Col: 3}).SetWall(North)
	if !g.At(Point{Row: 2, Col: 3}).HasWall(North) {
		t.Fatalf("expected write to be visible at same point")
	}
	if g.At(Point{Row: 2, Col: 4}).HasWall(North) {
		t.Fatalf("write leaked into neighboring cell")
	}
}

func TestCenterIsOddBothCoordinates(t *testing.T) {
	for _, dims := range [][2]int{{9, 9}, {10, 10}, {31, 111}} {
		g := NewGrid(dims[0], dims[1], StyleSharp)
		c := g.Center()
		if c.Row%2 == 0 || c.Col%2 == 0 {
			t.Errorf("center %v not odd/odd for %dx%d grid", c, g.Rows(), g.Cols())
		}
	}
}

func TestStylePaletteHasSixteenGlyphsPerStyle(t *testing.T) {
	for _, s := range []WallStyle{StyleSharp, StyleRound, StyleDoubles, StyleBold, StyleContrast, StyleSpikes} {
		g := NewGrid(7, 7, s)
		p := g.StylePalette()
		for i, glyph := range p {
			if glyph == "" {
				t.Errorf("style %v missing glyph at index %d", s, i)
			}
		}
	}
}
