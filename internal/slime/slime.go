// Package slime decides which chunks of a world spawn slimes.
package slime

import "slimeatlas/internal/geom"

// Finder answers slime-chunk queries for one world seed.
type Finder struct {
	Seed int64
}

func New(seed int64) Finder { return Finder{Seed: seed} }

// IsSlimy reports whether the chunk is a slime chunk. The result depends only
// on the seed and the chunk coordinates.
func (f Finder) IsSlimy(c geom.Chunk) bool {
	x, z := int32(c.X), int32(c.Z)
	s := f.Seed +
		int64(x*x*0x4c1906) +
		int64(x*0x5ac0db) +
		int64(z*z)*0x4307a7 +
		int64(z*0x5f24f)
	r := newRandom(s ^ 0x3ad8025f)
	return r.intn(10) == 0
}
