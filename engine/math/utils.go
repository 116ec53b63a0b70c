package math

import "golang.org/x/exp/constraints"

// Clamp returns the value `f` clamped to the range [low, high].
// It works for any numeric type (integers and floats).
func Clamp[T constraints.Ordered](f, low, high T) T {
	if f < low {
		return low
	}
	if f > high {
		return high
	}
	return f
}

// Lerp interpolates linearly from a to b; t is not clamped.
func Lerp[T constraints.Float](a, b, t T) T {
	return a + (b-a)*t
}

// Sign returns -1, 0 or +1 according to the sign of f.
func Sign[T constraints.Signed | constraints.Float](f T) T {
	switch {
	case f > 0:
		return 1
	case f < 0:
		return -1
	default:
		return 0
	}
}

// argMax3 returns the index of the largest of a, b and c. Ties resolve to
// the lowest index.
func argMax3[T constraints.Ordered](a, b, c T) int {
	i, best := 0, a
	if b > best {
		i, best = 1, b
	}
	if c > best {
		i = 2
	}
	return i
}
