package tui

import (
	"math"
	"strings"
	"testing"

	"slimeatlas/internal/atlas"
	"slimeatlas/internal/geom"
)

func newTestSurface(t *testing.T, w, h int) *brailleSurface {
	t.Helper()
	s, err := newBrailleSurface(geom.Size{W: w, H: h})
	if err != nil {
		t.Fatal(err)
	}
	return s.(*brailleSurface)
}

func TestBrailleCells(t *testing.T) {
	tests := []struct {
		w, h   int
		cw, ch int
	}{
		{160, 84, 80, 21},
		{3, 5, 2, 2},
		{1, 1, 1, 1},
		{0, 0, 0, 0},
	}
	for _, tt := range tests {
		b := newTestSurface(t, tt.w, tt.h)
		if b.w != tt.cw || b.h != tt.ch {
			t.Errorf("%dx%d dots: cells = %dx%d, want %dx%d", tt.w, tt.h, b.w, b.h, tt.cw, tt.ch)
		}
	}
}

func TestBrailleSetPixel(t *testing.T) {
	tests := []struct {
		x, y int
		bit  uint8
	}{
		{0, 0, 0x01},
		{0, 1, 0x02},
		{0, 2, 0x04},
		{0, 3, 0x40},
		{1, 0, 0x08},
		{1, 1, 0x10},
		{1, 2, 0x20},
		{1, 3, 0x80},
	}
	for _, tt := range tests {
		b := newTestSurface(t, 2, 4)
		if !b.setPixel(tt.x, tt.y) {
			t.Fatalf("setPixel(%d, %d) reported outside", tt.x, tt.y)
		}
		if b.m[0][0] != tt.bit {
			t.Errorf("setPixel(%d, %d) mask = %#x, want %#x", tt.x, tt.y, b.m[0][0], tt.bit)
		}
	}

	b := newTestSurface(t, 2, 4)
	for _, p := range [][2]int{{-1, 0}, {0, -1}, {2, 0}, {0, 4}} {
		if b.setPixel(p[0], p[1]) {
			t.Errorf("setPixel(%d, %d) accepted a dot off the surface", p[0], p[1])
		}
	}
	if b.m[0][0] != 0 {
		t.Error("out of range dots were drawn")
	}
}

func TestBrailleStrokeRect(t *testing.T) {
	b := newTestSurface(t, 8, 8)
	b.StrokeRect(0, 0, 3, 3, atlas.InkGrid)
	want := map[[2]int]bool{}
	for i := 0; i <= 3; i++ {
		want[[2]int{i, 0}] = true
		want[[2]int{i, 3}] = true
		want[[2]int{0, i}] = true
		want[[2]int{3, i}] = true
	}
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			if got := dotSet(b, x, y); got != want[[2]int{x, y}] {
				t.Errorf("dot (%d, %d) = %v", x, y, got)
			}
		}
	}
}

func TestBrailleStrokeRectClipped(t *testing.T) {
	b := newTestSurface(t, 8, 8)
	b.StrokeRect(-4, -4, 6, 6, atlas.InkGrid)
	if !dotSet(b, 2, 0) || !dotSet(b, 0, 2) || !dotSet(b, 2, 2) {
		t.Error("visible part of a clipped rectangle missing")
	}
	if dotSet(b, 3, 3) {
		t.Error("dot drawn outside the rectangle")
	}
}

func TestBrailleFillAndClear(t *testing.T) {
	b := newTestSurface(t, 8, 8)
	b.FillRect(1, 1, 2, 2, atlas.InkMarked)
	if !b.filled[0][0] || !b.filled[0][1] {
		t.Error("cells touched by the fill are not marked")
	}
	if b.filled[1][0] || b.filled[0][2] {
		t.Error("fill spilled into untouched cells")
	}
	b.FillRect(-100, -100, 1000, 1000, atlas.InkMarked)
	b.setPixel(0, 0)
	b.Clear()
	for y := 0; y < b.h; y++ {
		for x := 0; x < b.w; x++ {
			if b.m[y][x] != 0 || b.filled[y][x] || b.marker[y][x] {
				t.Fatalf("cell (%d, %d) survived Clear", x, y)
			}
		}
	}
}

func TestBrailleArcMarksCells(t *testing.T) {
	b := newTestSurface(t, 20, 20)
	b.StrokeArc(10, 10, 4, 0, 2*math.Pi, atlas.InkMarker)
	for _, p := range [][2]int{{14, 10}, {6, 10}, {10, 14}, {10, 6}} {
		if !dotSet(b, p[0], p[1]) {
			t.Errorf("arc misses (%d, %d)", p[0], p[1])
		}
		if !b.marker[p[1]/dotsPerRow][p[0]/dotsPerCol] {
			t.Errorf("cell of (%d, %d) not marked as marker", p[0], p[1])
		}
	}
	if dotSet(b, 10, 10) {
		t.Error("arc filled its center")
	}
	if b.ink(7, 2) != cellMarker {
		t.Errorf("ink = %v, want marker", b.ink(7, 2))
	}
}

func TestBrailleLines(t *testing.T) {
	b := newTestSurface(t, 6, 4)
	b.setPixel(0, 0)
	b.setPixel(5, 3)
	lines := b.lines()
	if len(lines) != 1 {
		t.Fatalf("lines = %d, want 1", len(lines))
	}
	for _, want := range []string{"⠁", " ", "⢀"} {
		if !strings.Contains(lines[0], want) {
			t.Errorf("line %q missing %q", lines[0], want)
		}
	}
}

// dotSet reports whether dot (x, y) is raised, using the braille bit layout.
func dotSet(b *brailleSurface, x, y int) bool {
	bits := [dotsPerCol][dotsPerRow]uint8{{0x01, 0x02, 0x04, 0x40}, {0x08, 0x10, 0x20, 0x80}}
	return b.m[y/dotsPerRow][x/dotsPerCol]&bits[x%dotsPerCol][y%dotsPerRow] != 0
}
