// Package atlas draws the chunk grid around a viewport and turns pointer
// gestures into viewport updates.
package atlas

import (
	"math"

	"slimeatlas/internal/geom"
)

const (
	markerRadius = 4.0
)

// Frame describes what one Render call drew.
type Frame struct {
	Center      geom.Point
	Scale       float64
	Size        geom.Size
	TopLeft     geom.Point
	BottomRight geom.Point
	Visible     []geom.Chunk
	Marked      []geom.Chunk
}

// Bounds returns the world rectangle shown by a surface of the given size.
func Bounds(center geom.Point, scale float64, size geom.Size) (topLeft, bottomRight geom.Point) {
	topLeft = geom.Point{
		X: center.X - (float64(size.W)/2)/scale,
		Z: center.Z - (float64(size.H)/2)/scale,
	}
	bottomRight = geom.Point{
		X: topLeft.X + float64(size.W)/scale,
		Z: topLeft.Z + float64(size.H)/scale,
	}
	return topLeft, bottomRight
}

// PointVisible reports whether p lies in the half-open rectangle [topLeft, bottomRight).
func PointVisible(p, topLeft, bottomRight geom.Point) bool {
	return p.X >= topLeft.X && p.Z >= topLeft.Z &&
		p.X < bottomRight.X && p.Z < bottomRight.Z
}

// ChunkVisible reports whether any corner of c is visible.
func ChunkVisible(c geom.Chunk, topLeft, bottomRight geom.Point) bool {
	for _, p := range c.Corners() {
		if PointVisible(p, topLeft, bottomRight) {
			return true
		}
	}
	return false
}

// VisibleChunks enumerates visible chunks row by row. Each row and column
// scan stops at the first invisible chunk, which only holds for an
// axis-aligned rectangle.
func VisibleChunks(topLeft, bottomRight geom.Point) []geom.Chunk {
	var out []geom.Chunk
	for row := firstChunk(topLeft); ChunkVisible(row, topLeft, bottomRight); row = row.Offset(0, 1) {
		for c := row; ChunkVisible(c, topLeft, bottomRight); c = c.Offset(1, 0) {
			out = append(out, c)
		}
	}
	return out
}

// firstChunk is the chunk containing p, or the one above and to the left when
// p lies on a chunk edge: that chunk's far corner sits on p and is visible.
func firstChunk(p geom.Point) geom.Chunk {
	return geom.Chunk{
		X: int(math.Ceil(p.X/geom.ChunkSize)) - 1,
		Z: int(math.Ceil(p.Z/geom.ChunkSize)) - 1,
	}
}

// WorldToSurface maps a world point to surface pixels.
func WorldToSurface(p, topLeft geom.Point, scale float64) geom.Point {
	return p.Sub(topLeft).Mul(scale)
}

// SurfaceToWorld maps surface pixels back to the world.
func SurfaceToWorld(p, topLeft geom.Point, scale float64) geom.Point {
	return p.Mul(1 / scale).Add(topLeft)
}

// Render clears surface and draws every visible chunk, filling the marked
// ones, then a marker at center. A nil surface draws nothing.
func Render(center geom.Point, scale float64, surface Surface, marked Predicate) Frame {
	if surface == nil || scale <= 0 {
		return Frame{Center: center, Scale: scale}
	}
	size := surface.Size()
	topLeft, bottomRight := Bounds(center, scale, size)
	f := Frame{
		Center:      center,
		Scale:       scale,
		Size:        size,
		TopLeft:     topLeft,
		BottomRight: bottomRight,
	}

	surface.Clear()

	side := geom.ChunkSize * scale
	for _, c := range VisibleChunks(topLeft, bottomRight) {
		o := WorldToSurface(c.Origin(), topLeft, scale)
		x, y := math.Floor(o.X), math.Floor(o.Z)
		surface.StrokeRect(x, y, side, side, InkGrid)
		f.Visible = append(f.Visible, c)
		if marked != nil && marked(c) {
			surface.FillRect(x, y, side, side, InkMarked)
			f.Marked = append(f.Marked, c)
		}
	}

	m := WorldToSurface(center, topLeft, scale)
	surface.StrokeArc(math.Floor(m.X), math.Floor(m.Z), markerRadius, 0, 2*math.Pi, InkMarker)
	return f
}
