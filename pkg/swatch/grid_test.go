package swatch

import (
	"strings"
	"testing"

	"charm.land/lipgloss/v2"
)

const (
	testBand Key = 0
	testDot  Key = 1
)

func testStyles() map[Key]lipgloss.Style {
	return map[Key]lipgloss.Style{
		testBand: lipgloss.NewStyle().Background(lipgloss.Color("#C0922A")),
		testDot:  lipgloss.NewStyle().Background(lipgloss.Color("#FFFFFF")),
	}
}

func TestNew(t *testing.T) {
	g := New(10, 5)
	if g.W != 10 || g.H != 5 {
		t.Fatalf("expected 10x5, got %dx%d", g.W, g.H)
	}
	for y := 0; y < 5; y++ {
		for x := 0; x < 10; x++ {
			if g.Cells[y][x] != Blank {
				t.Fatalf("cell (%d,%d) not Blank", x, y)
			}
		}
	}
}

func TestNewNegativeSize(t *testing.T) {
	g := New(-3, -1)
	if g.W != 0 || g.H != 0 {
		t.Fatalf("expected 0x0 for negative sizes, got %dx%d", g.W, g.H)
	}
	if got := g.Render(testStyles()); got != "" {
		t.Fatalf("empty grid should render to empty string, got %q", got)
	}
}

func TestSetOutOfBounds(t *testing.T) {
	g := New(4, 4)
	// None of these should panic or change anything.
	g.Set(-1, 0, testDot)
	g.Set(0, -1, testDot)
	g.Set(4, 0, testDot)
	g.Set(0, 4, testDot)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if g.Cells[y][x] != Blank {
				t.Fatalf("out-of-bounds Set modified cell (%d,%d)", x, y)
			}
		}
	}
}

func TestRenderLineCountAndWidth(t *testing.T) {
	g := New(6, 3)
	out := g.Render(testStyles())
	lines := strings.Split(out, "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	// Blank cells render as plain spaces, two columns per cell.
	if lines[0] != strings.Repeat("  ", 6) {
		t.Fatalf("blank row = %q", lines[0])
	}
}

func TestRenderMergesRuns(t *testing.T) {
	styles := testStyles()

	uniformGrid := New(20, 1)
	uniformGrid.DrawRing(10, 0, 100, 0, testBand) // fill everything
	uniform := uniformGrid.Render(styles)

	alternating := New(20, 1)
	for x := 0; x < 20; x++ {
		if x%2 == 0 {
			alternating.Set(x, 0, testBand)
		} else {
			alternating.Set(x, 0, testDot)
		}
	}
	alt := alternating.Render(styles)

	if len(uniform) >= len(alt) {
		t.Errorf("uniform render (%d bytes) should be shorter than alternating (%d bytes)",
			len(uniform), len(alt))
	}
}

func TestDrawRingAnnulus(t *testing.T) {
	g := New(21, 21)
	g.DrawRing(10, 10, 9, 6, testBand)

	// Center stays clear, ring cells are painted.
	if g.Cells[10][10] != Blank {
		t.Error("annulus painted the center")
	}
	if g.Cells[10][10-8] != testBand { // distance 8, inside [6,9]
		t.Error("cell at distance 8 not painted")
	}
	if g.Cells[10][0] != Blank { // distance 10, outside
		t.Error("cell at distance 10 painted")
	}
}

func TestDrawDotsAnchorsTop(t *testing.T) {
	g := New(21, 21)
	g.DrawDots(10, 10, 8, 4, testDot)

	// Four dots starting at the top, clockwise: top, right, bottom, left.
	want := [][2]int{{10, 2}, {18, 10}, {10, 18}, {2, 10}}
	for _, pt := range want {
		if g.Cells[pt[1]][pt[0]] != testDot {
			t.Errorf("expected dot at (%d,%d)", pt[0], pt[1])
		}
	}
}

func TestDrawDotsZero(t *testing.T) {
	g := New(5, 5)
	g.DrawDots(2, 2, 2, 0, testDot) // must not panic or paint
	for y := range g.Cells {
		for x := range g.Cells[y] {
			if g.Cells[y][x] != Blank {
				t.Fatal("DrawDots(n=0) painted a cell")
			}
		}
	}
}
