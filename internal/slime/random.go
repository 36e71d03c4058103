package slime

const (
	lcgMultiplier = 0x5DEECE66D
	lcgAddend     = 0xB
	lcgMask       = (1 << 48) - 1
)

// random is the 48-bit linear congruential generator used by the game.
type random struct {
	seed uint64
}

func newRandom(seed int64) *random {
	return &random{seed: (uint64(seed) ^ lcgMultiplier) & lcgMask}
}

func (r *random) next(bits uint) int32 {
	r.seed = (r.seed*lcgMultiplier + lcgAddend) & lcgMask
	return int32(r.seed >> (48 - bits))
}

// intn returns a value in [0, bound). bound must be positive.
func (r *random) intn(bound int32) int32 {
	if bound&-bound == bound {
		return int32((int64(bound) * int64(r.next(31))) >> 31)
	}
	bits := r.next(31)
	val := bits % bound
	for bits-val+(bound-1) < 0 {
		bits = r.next(31)
		val = bits % bound
	}
	return val
}
