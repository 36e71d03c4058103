package geom

import "math"

// ChunkSize is the side length of a chunk in world units.
const ChunkSize = 16

// Point is a position in world coordinates.
type Point struct {
	X float64
	Z float64
}

func (p Point) Offset(dx, dz float64) Point {
	return Point{X: p.X + dx, Z: p.Z + dz}
}

// Round rounds both components to the nearest integer (halves away from zero).
func (p Point) Round() Point {
	return Point{X: math.Round(p.X), Z: math.Round(p.Z)}
}

func (p Point) Add(q Point) Point { return Point{X: p.X + q.X, Z: p.Z + q.Z} }
func (p Point) Sub(q Point) Point { return Point{X: p.X - q.X, Z: p.Z - q.Z} }
func (p Point) Mul(k float64) Point {
	return Point{X: p.X * k, Z: p.Z * k}
}

// Chunk addresses a ChunkSize x ChunkSize square of the world by chunk coordinates.
type Chunk struct {
	X int
	Z int
}

// ChunkAt returns the chunk containing p.
func ChunkAt(p Point) Chunk {
	return Chunk{
		X: int(math.Floor(p.X / ChunkSize)),
		Z: int(math.Floor(p.Z / ChunkSize)),
	}
}

// Origin is the top-left world point of the chunk.
func (c Chunk) Origin() Point {
	return Point{X: float64(c.X * ChunkSize), Z: float64(c.Z * ChunkSize)}
}

// Offset moves by whole chunks.
func (c Chunk) Offset(dcx, dcz int) Chunk {
	return Chunk{X: c.X + dcx, Z: c.Z + dcz}
}

// Corners returns origin, origin+(16,0), origin+(0,16) and origin+(16,16).
func (c Chunk) Corners() [4]Point {
	o := c.Origin()
	return [4]Point{
		o,
		o.Offset(ChunkSize, 0),
		o.Offset(0, ChunkSize),
		o.Offset(ChunkSize, ChunkSize),
	}
}

// Center is the world point in the middle of the chunk.
func (c Chunk) Center() Point {
	return c.Origin().Offset(ChunkSize/2, ChunkSize/2)
}

// Size is an output surface size in pixels.
type Size struct {
	W int
	H int
}

func (s Size) Empty() bool { return s.W <= 0 || s.H <= 0 }
