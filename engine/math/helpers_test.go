package math

import (
	m "math"
	"testing"

	"golang.org/x/exp/rand"
)

const testTolerance = 1e-9

func newTestRand() *rand.Rand {
	return rand.New(rand.NewSource(20241014))
}

// randomScale returns per-axis magnitudes in [0.25, 4) with the sign of
// axis i negative when bit i of signs is set.
func randomScale(r *rand.Rand, signs int) Vec3 {
	s := Vec3{
		0.25 + r.Float64()*3.75,
		0.25 + r.Float64()*3.75,
		0.25 + r.Float64()*3.75,
	}
	if signs&1 != 0 {
		s.X = -s.X
	}
	if signs&2 != 0 {
		s.Y = -s.Y
	}
	if signs&4 != 0 {
		s.Z = -s.Z
	}
	return s
}

func randomPosition(r *rand.Rand) Vec3 {
	return Vec3{
		(r.Float64() - 0.5) * 200,
		(r.Float64() - 0.5) * 200,
		(r.Float64() - 0.5) * 200,
	}
}

// matricesClose compares with a tolerance relative to the larger magnitude
// of each pair, falling back to absolute for small entries.
func matricesClose(a, b *Mat4, tolerance float64) bool {
	for i := range a.Data {
		diff := m.Abs(a.Data[i] - b.Data[i])
		scale := m.Max(1, m.Max(m.Abs(a.Data[i]), m.Abs(b.Data[i])))
		if diff > tolerance*scale {
			return false
		}
	}
	return true
}

func assertMat4Close(t *testing.T, name string, got, want *Mat4, tolerance float64) {
	t.Helper()
	if !matricesClose(got, want, tolerance) {
		t.Errorf("%s: matrices differ\n got: %v\nwant: %v", name, got.Data, want.Data)
	}
}

func assertFloatClose(t *testing.T, name string, got, want, tolerance float64) {
	t.Helper()
	if m.Abs(got-want) > tolerance {
		t.Errorf("%s: expected %v, got %v", name, want, got)
	}
}
