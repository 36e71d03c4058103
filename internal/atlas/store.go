package atlas

import "slimeatlas/internal/geom"

// Store owns the authoritative center and scale. Updates arrive as proposals
// and are applied one at a time.
type Store struct {
	Center *Signal[geom.Point]
	Scale  *Signal[float64]
	Limits Limits
}

func NewStore(center geom.Point, scale float64, limits Limits) *Store {
	return &Store{
		Center: NewSignal(center),
		Scale:  NewSignal(limits.Normalize(scale)),
		Limits: limits,
	}
}

// ProposeCenter applies fn to the current center.
func (s *Store) ProposeCenter(fn CenterUpdate) {
	if fn == nil {
		return
	}
	s.Center.Set(fn(s.Center.Get()))
}

// ProposeScale applies fn to the current scale and keeps the result on the
// configured steps and range.
func (s *Store) ProposeScale(fn ScaleUpdate) {
	if fn == nil {
		return
	}
	s.Scale.Set(s.Limits.Normalize(fn(s.Scale.Get())))
}
