package atlas

import "slimeatlas/internal/geom"

// Ink selects how a primitive is painted. Each Surface maps inks to its own
// colors and line widths.
type Ink int

const (
	InkGrid Ink = iota
	InkMarked
	InkMarker
)

func (i Ink) String() string {
	switch i {
	case InkGrid:
		return "grid"
	case InkMarked:
		return "marked"
	case InkMarker:
		return "marker"
	}
	return "unknown"
}

// Surface is a 2D drawing target addressed in pixels with (0,0) at the top left.
type Surface interface {
	Size() geom.Size
	// Clear resets every pixel to transparent.
	Clear()
	StrokeRect(x, y, w, h float64, ink Ink)
	FillRect(x, y, w, h float64, ink Ink)
	// StrokeArc strokes the arc of radius r around (x, y) from angle a0 to a1, in radians.
	StrokeArc(x, y, r, a0, a1 float64, ink Ink)
}

// SurfaceFunc provides a surface of the requested size for one frame.
type SurfaceFunc func(size geom.Size) (Surface, error)

// Predicate reports whether a chunk is marked.
type Predicate func(c geom.Chunk) bool
