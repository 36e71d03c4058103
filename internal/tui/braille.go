package tui

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"slimeatlas/internal/atlas"
	"slimeatlas/internal/geom"
)

const (
	dotsPerCol = 2
	dotsPerRow = 4
)

type cellInk uint8

const (
	cellPlain cellInk = iota
	cellGrid
	cellMarked
	cellMarker
)

// brailleSurface is an atlas.Surface whose pixels are braille dots, 2x4 per
// terminal cell. Fills color whole cells instead of setting dots so the grid
// stays readable on marked chunks.
type brailleSurface struct {
	size   geom.Size // in dots
	w, h   int       // in cells
	m      [][]uint8 // per-cell 8-bit dot mask
	filled [][]bool
	marker [][]bool
}

func newBrailleSurface(size geom.Size) (atlas.Surface, error) {
	w := (size.W + dotsPerCol - 1) / dotsPerCol
	h := (size.H + dotsPerRow - 1) / dotsPerRow
	b := &brailleSurface{size: size, w: w, h: h}
	b.m = make([][]uint8, h)
	b.filled = make([][]bool, h)
	b.marker = make([][]bool, h)
	for i := 0; i < h; i++ {
		b.m[i] = make([]uint8, w)
		b.filled[i] = make([]bool, w)
		b.marker[i] = make([]bool, w)
	}
	return b, nil
}

func (b *brailleSurface) Size() geom.Size { return b.size }

func (b *brailleSurface) Clear() {
	for y := 0; y < b.h; y++ {
		for x := 0; x < b.w; x++ {
			b.m[y][x] = 0
			b.filled[y][x] = false
			b.marker[y][x] = false
		}
	}
}

func (b *brailleSurface) StrokeRect(x, y, w, h float64, _ atlas.Ink) {
	x0, y0 := int(math.Floor(x)), int(math.Floor(y))
	x1, y1 := int(math.Floor(x+w)), int(math.Floor(y+h))
	b.drawLineMicro(x0, y0, x1, y0)
	b.drawLineMicro(x1, y0, x1, y1)
	b.drawLineMicro(x1, y1, x0, y1)
	b.drawLineMicro(x0, y1, x0, y0)
}

func (b *brailleSurface) FillRect(x, y, w, h float64, _ atlas.Ink) {
	cx0 := clampInt(int(math.Floor(x/dotsPerCol)), 0, b.w)
	cy0 := clampInt(int(math.Floor(y/dotsPerRow)), 0, b.h)
	cx1 := clampInt(int(math.Ceil((x+w)/dotsPerCol)), 0, b.w)
	cy1 := clampInt(int(math.Ceil((y+h)/dotsPerRow)), 0, b.h)
	for cy := cy0; cy < cy1; cy++ {
		for cx := cx0; cx < cx1; cx++ {
			b.filled[cy][cx] = true
		}
	}
}

func (b *brailleSurface) StrokeArc(x, y, r, a0, a1 float64, _ atlas.Ink) {
	steps := int(math.Ceil((a1-a0)*r)) * 2
	if steps < 8 {
		steps = 8
	}
	for i := 0; i <= steps; i++ {
		a := a0 + (a1-a0)*float64(i)/float64(steps)
		mx := int(math.Round(x + r*math.Cos(a)))
		my := int(math.Round(y + r*math.Sin(a)))
		if b.setPixel(mx, my) {
			b.marker[my/dotsPerRow][mx/dotsPerCol] = true
		}
	}
}

// setPixel sets a dot and reports whether it was inside the surface.
func (b *brailleSurface) setPixel(mx, my int) bool {
	if mx < 0 || my < 0 || mx >= b.size.W || my >= b.size.H {
		return false
	}
	cx, rx := mx/dotsPerCol, mx%dotsPerCol
	cy, ry := my/dotsPerRow, my%dotsPerRow
	var bit uint8
	if rx == 0 {
		switch ry {
		case 0:
			bit = 0x01
		case 1:
			bit = 0x02
		case 2:
			bit = 0x04
		case 3:
			bit = 0x40
		}
	} else {
		switch ry {
		case 0:
			bit = 0x08
		case 1:
			bit = 0x10
		case 2:
			bit = 0x20
		case 3:
			bit = 0x80
		}
	}
	b.m[cy][cx] |= bit
	return true
}

// drawLineMicro draws a line on the dot grid using Bresenham
func (b *brailleSurface) drawLineMicro(x0, y0, x1, y1 int) {
	dx := abs(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -abs(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		b.setPixel(x0, y0)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func (b *brailleSurface) ink(x, y int) cellInk {
	switch {
	case b.marker[y][x]:
		return cellMarker
	case b.filled[y][x]:
		return cellMarked
	case b.m[y][x] != 0:
		return cellGrid
	}
	return cellPlain
}

func (b *brailleSurface) glyph(x, y int) rune {
	if mask := b.m[y][x]; mask != 0 {
		return rune(0x2800 + int(mask))
	}
	return ' '
}

func inkStyle(k cellInk) *lipgloss.Style {
	switch k {
	case cellGrid:
		return &gridStyle
	case cellMarked:
		return &markedStyle
	case cellMarker:
		return &markerStyle
	}
	return nil
}

// lines renders each cell row, styling runs of cells that share an ink.
func (b *brailleSurface) lines() []string {
	out := make([]string, b.h)
	for y := 0; y < b.h; y++ {
		var sb strings.Builder
		run := make([]rune, 0, b.w)
		cur := cellPlain
		flush := func() {
			if len(run) == 0 {
				return
			}
			if st := inkStyle(cur); st != nil {
				sb.WriteString(st.Render(string(run)))
			} else {
				sb.WriteString(string(run))
			}
			run = run[:0]
		}
		for x := 0; x < b.w; x++ {
			k := b.ink(x, y)
			if k != cur {
				flush()
				cur = k
			}
			run = append(run, b.glyph(x, y))
		}
		flush()
		out[y] = sb.String()
	}
	return out
}
