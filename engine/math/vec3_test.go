package math

import (
	m "math"
	"testing"
)

func TestVec3Operations(t *testing.T) {
	v1 := NewVec3(1, 2, 3)
	v2 := NewVec3(4, 5, 6)

	// Addition
	result := v1
	result.Add(v2)
	expected := NewVec3(5, 7, 9)
	if result != expected {
		t.Errorf("Add: expected %v, got %v", expected, result)
	}

	// Subtraction
	result = v2
	result.Sub(v1)
	expected = NewVec3(3, 3, 3)
	if result != expected {
		t.Errorf("Sub: expected %v, got %v", expected, result)
	}

	// Scalar multiplication
	result = v1
	result.MulScalar(2)
	expected = NewVec3(2, 4, 6)
	if result != expected {
		t.Errorf("MulScalar: expected %v, got %v", expected, result)
	}

	// Dot product
	dot := v1.Dot(v2)
	if dot != 32 {
		t.Errorf("Dot: expected 32, got %v", dot)
	}

	// Right x Up = Back in a right-handed system
	cross := Vec3Cross(NewVec3Right(), NewVec3Up())
	if cross != NewVec3Back() {
		t.Errorf("Cross: expected %v, got %v", NewVec3Back(), cross)
	}
}

func TestVec3Chaining(t *testing.T) {
	v := NewVec3(1, 0, 0)
	got := v.Add(NewVec3(0, 3, 0)).MulScalar(2).Sub(NewVec3(2, 0, 0))
	if got != &v {
		t.Fatal("chained operations must return the receiver")
	}
	if v != NewVec3(0, 6, 0) {
		t.Errorf("chain: expected (0,6,0), got %v", v)
	}

	c := v.Clone()
	c.Negate()
	if v != NewVec3(0, 6, 0) {
		t.Errorf("Clone: mutating the clone changed the original: %v", v)
	}
}

func TestVec3Normalize(t *testing.T) {
	v := NewVec3(3, 0, 4)
	v.Normalize()
	if !v.Equals(NewVec3(0.6, 0, 0.8), testTolerance) {
		t.Errorf("Normalize: expected (0.6,0,0.8), got %v", v)
	}
	assertFloatClose(t, "Normalize length", v.Length(), 1, testTolerance)

	zero := NewVec3Zero()
	zero.Normalize()
	if zero != NewVec3Zero() {
		t.Errorf("Normalize: zero vector must stay zero, got %v", zero)
	}
}

func TestVec3DivScalarByZero(t *testing.T) {
	v := NewVec3(1, -1, 0)
	v.DivScalar(0)
	if !m.IsInf(v.X, 1) || !m.IsInf(v.Y, -1) || !m.IsNaN(v.Z) {
		t.Errorf("DivScalar(0): expected (+Inf,-Inf,NaN), got %v", v)
	}
}

func TestVec3ArrayRoundTrip(t *testing.T) {
	arr := []float64{9, 1, 2, 3}
	v := Vec3{}
	v.FromArray(arr, 1)
	if v != NewVec3(1, 2, 3) {
		t.Errorf("FromArray: expected (1,2,3), got %v", v)
	}

	out := v.ToArray(nil, 2)
	if len(out) != 5 || out[2] != 1 || out[3] != 2 || out[4] != 3 {
		t.Errorf("ToArray: expected [0 0 1 2 3], got %v", out)
	}
}

func TestVec3ApplyQuaternion(t *testing.T) {
	// 90 degree rotation around Y: +X goes to -Z.
	q := NewQuatFromAxisAngle(NewVec3Up(), K_HALF_PI, false)
	v := NewVec3Right()
	v.ApplyQuaternion(q)
	if !v.Equals(NewVec3(0, 0, -1), testTolerance) {
		t.Errorf("ApplyQuaternion: expected (0,0,-1), got %v", v)
	}
}

func TestVec3TransformPoint(t *testing.T) {
	mt := NewMat4Compose(NewVec3(1, 2, 3), NewQuatFromAxisAngle(NewVec3Back(), K_HALF_PI, false), NewVec3(2, 2, 2))
	p := NewVec3(1, 0, 0)
	p.TransformPoint(&mt)
	// scale to (2,0,0), rotate +90° about Z to (0,2,0), translate.
	if !p.Equals(NewVec3(1, 4, 3), testTolerance) {
		t.Errorf("TransformPoint: expected (1,4,3), got %v", p)
	}

	d := NewVec3(1, 0, 0)
	d.TransformDirection(&mt)
	if !d.Equals(NewVec3(0, 1, 0), testTolerance) {
		t.Errorf("TransformDirection: expected (0,1,0), got %v", d)
	}
}

func TestVec4ApplyMat4(t *testing.T) {
	mt := NewMat4Translation(NewVec3(1, 2, 3))

	point := NewVec4(0, 0, 0, 1)
	point.ApplyMat4(&mt)
	if point.ToVec3() != NewVec3(1, 2, 3) {
		t.Errorf("ApplyMat4: expected point (1,2,3), got %v", point)
	}

	dir := NewVec4(0, 0, 1, 0)
	dir.ApplyMat4(&mt)
	if dir != NewVec4(0, 0, 1, 0) {
		t.Errorf("ApplyMat4: directions must ignore translation, got %v", dir)
	}
}

func TestVec4NormalizeZero(t *testing.T) {
	v := NewVec4Zero()
	v.Normalize()
	if v != NewVec4Zero() {
		t.Errorf("Normalize: zero vector must stay zero, got %v", v)
	}
}

func BenchmarkVec3Add(b *testing.B) {
	v1 := NewVec3(1, 2, 3)
	v2 := NewVec3(4, 5, 6)

	for i := 0; i < b.N; i++ {
		v1.Add(v2)
	}
}
