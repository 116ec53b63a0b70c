package math

import (
	m "math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"gonum.org/v1/gonum/num/quat"
)

func toGonum(q Quaternion) quat.Number {
	return quat.Number{Real: q.W, Imag: q.X, Jmag: q.Y, Kmag: q.Z}
}

func toMgl(q Quaternion) mgl64.Quat {
	return mgl64.Quat{W: q.W, V: mgl64.Vec3{q.X, q.Y, q.Z}}
}

func TestQuaternionIdentity(t *testing.T) {
	q := NewQuatIdentity()
	if q.X != 0 || q.Y != 0 || q.Z != 0 || q.W != 1 {
		t.Errorf("NewQuatIdentity: expected (0,0,0,1), got %v", q)
	}
}

func TestQuaternionMultiplyMatchesHamiltonProduct(t *testing.T) {
	r := newTestRand()
	for i := 0; i < 50; i++ {
		a := NewQuatRandom(r)
		b := NewQuatRandom(r)

		got := a
		got.Multiply(b)
		want := quat.Mul(toGonum(a), toGonum(b))

		if !got.Equals(NewQuat(want.Imag, want.Jmag, want.Kmag, want.Real), testTolerance) {
			t.Fatalf("Multiply: expected %v, got %v", want, got)
		}

		pre := a
		pre.Premultiply(b)
		want = quat.Mul(toGonum(b), toGonum(a))
		if !pre.Equals(NewQuat(want.Imag, want.Jmag, want.Kmag, want.Real), testTolerance) {
			t.Fatalf("Premultiply: expected %v, got %v", want, pre)
		}
	}
}

func TestQuaternionToMat4MatchesMathgl(t *testing.T) {
	r := newTestRand()
	for i := 0; i < 50; i++ {
		q := NewQuatRandom(r)
		got := q.ToMat4()
		want := Mat4{Data: toMgl(q).Mat4()}
		assertMat4Close(t, "ToMat4", &got, &want, testTolerance)
	}
}

func TestQuaternionRandomIsUnit(t *testing.T) {
	r := newTestRand()
	for i := 0; i < 100; i++ {
		q := NewQuatRandom(r)
		assertFloatClose(t, "NewQuatRandom length", q.Length(), 1, testTolerance)
	}
}

func TestQuaternionFromRotationMatrixBranches(t *testing.T) {
	// Each case drives a different branch of the extraction: positive
	// trace, then a dominant m11, m22 and m33.
	cases := []struct {
		name string
		q    Quaternion
	}{
		{"trace", NewQuatFromAxisAngle(NewVec3(1, 2, 3).Normalized(), 0.7, false)},
		{"m11", NewQuatFromAxisAngle(NewVec3Right(), K_PI, false)},
		{"m22", NewQuatFromAxisAngle(NewVec3Up(), K_PI, false)},
		{"m33", NewQuatFromAxisAngle(NewVec3Back(), K_PI, false)},
		{"m11 off-axis", NewQuatFromAxisAngle(NewVec3(1, 0.2, 0.1).Normalized(), 3.0, false)},
		{"m22 off-axis", NewQuatFromAxisAngle(NewVec3(0.1, 1, 0.3).Normalized(), 2.9, false)},
		{"m33 off-axis", NewQuatFromAxisAngle(NewVec3(0.2, 0.1, 1).Normalized(), 3.1, false)},
	}

	for _, c := range cases {
		mt := c.q.ToMat4()
		got := NewQuatFromRotationMatrix(&mt)
		assertFloatClose(t, c.name+" length", got.Length(), 1, testTolerance)
		if !got.EqualsRotation(c.q, 1e-12) {
			t.Errorf("%s: expected rotation %v, got %v", c.name, c.q, got)
		}

		m3 := Mat3{}
		m3.SetFromMat4(&mt)
		fromMat3 := Quaternion{}
		fromMat3.SetFromMat3(&m3)
		if !fromMat3.Equals(got, testTolerance) {
			t.Errorf("%s: SetFromMat3 %v differs from SetFromRotationMatrix %v", c.name, fromMat3, got)
		}
	}
}

func TestQuaternionFromNoisyRotationMatrixIsUnit(t *testing.T) {
	q := NewQuatFromAxisAngle(NewVec3(0, 1, 1).Normalized(), 1.2, false)
	mt := q.ToMat4()
	for i := 0; i < 11; i++ {
		if i%4 != 3 {
			mt.Data[i] += 1e-7 * float64(i%3-1)
		}
	}
	got := NewQuatFromRotationMatrix(&mt)
	assertFloatClose(t, "noisy extraction length", got.Length(), 1, testTolerance)
	if got.AngleTo(q) > 1e-5 {
		t.Errorf("noisy extraction: expected close to %v, got %v", q, got)
	}
}

func TestQuaternionDoubleCover(t *testing.T) {
	r := newTestRand()
	v := NewVec3(0.3, -2, 5)
	for i := 0; i < 20; i++ {
		q := NewQuatRandom(r)
		n := q
		n.Negate()

		if !q.RotateVector3(v).Equals(n.RotateVector3(v), testTolerance) {
			t.Fatalf("RotateVector3: q and -q disagree for %v", q)
		}
		mq, mn := q.ToMat4(), n.ToMat4()
		assertMat4Close(t, "ToMat4 double cover", &mq, &mn, testTolerance)
		if !q.EqualsRotation(n, testTolerance) {
			t.Fatalf("EqualsRotation: q and -q must be the same rotation")
		}
	}
}

func TestQuaternionSlerpBoundaries(t *testing.T) {
	a := NewQuatFromAxisAngle(NewVec3Up(), 0.3, false)
	b := NewQuatFromAxisAngle(NewVec3(1, 1, 0).Normalized(), 1.4, false)

	if got := QuatSlerp(a, b, 0); !got.Equals(a, Epsilon) {
		t.Errorf("Slerp(t=0): expected %v, got %v", a, got)
	}
	if got := QuatSlerp(a, b, 1); !got.Equals(b, Epsilon) {
		t.Errorf("Slerp(t=1): expected %v, got %v", b, got)
	}

	// identity -> 180° about Z, halfway is 90° about Z.
	half := QuatSlerp(NewQuatIdentity(), NewQuatFromAxisAngle(NewVec3Back(), K_PI, false), 0.5)
	want := NewQuatFromAxisAngle(NewVec3Back(), K_HALF_PI, false)
	if !half.Equals(want, Epsilon) {
		t.Errorf("Slerp(t=0.5): expected %v, got %v", want, half)
	}
}

func TestQuaternionSlerpMatchesMathgl(t *testing.T) {
	a := NewQuatFromAxisAngle(NewVec3(0, 0.6, 0.8), 0.4, false)
	b := NewQuatFromAxisAngle(NewVec3(0.6, 0.8, 0), 1.9, false)
	for _, f := range []float64{0.1, 0.25, 0.5, 0.8} {
		got := QuatSlerp(a, b, f)
		w := mgl64.QuatSlerp(toMgl(a), toMgl(b), f)
		if !got.Equals(NewQuat(w.V[0], w.V[1], w.V[2], w.W), 1e-9) {
			t.Errorf("Slerp(%v): expected %v, got %v", f, w, got)
		}
		assertFloatClose(t, "Slerp length", got.Length(), 1, testTolerance)
	}
}

func TestQuaternionSlerpShortArc(t *testing.T) {
	a := NewQuatFromAxisAngle(NewVec3Up(), 0.2, false)
	b := NewQuatFromAxisAngle(NewVec3Up(), 0.6, false)
	b.Negate()

	got := QuatSlerp(a, b, 0.5)
	want := NewQuatFromAxisAngle(NewVec3Up(), 0.4, false)
	if !got.EqualsRotation(want, 1e-12) {
		t.Errorf("Slerp: expected the short arc %v, got %v", want, got)
	}
}

func TestQuaternionSlerpNearParallel(t *testing.T) {
	a := NewQuatFromAxisAngle(NewVec3Right(), 0.01, false)
	b := NewQuatFromAxisAngle(NewVec3Right(), 0.02, false)
	got := QuatSlerp(a, b, 0.5)
	assertFloatClose(t, "lerp fallback length", got.Length(), 1, testTolerance)
	_, angle := got.ToAxisAngle()
	assertFloatClose(t, "lerp fallback angle", angle, 0.015, 1e-6)
}

func TestQuaternionAxisAngle(t *testing.T) {
	axis := NewVec3(1, 1, 1).Normalized()
	q := NewQuatFromAxisAngle(axis, K_PI/3, false)
	gotAxis, gotAngle := q.ToAxisAngle()
	if !gotAxis.Equals(axis, testTolerance) {
		t.Errorf("ToAxisAngle: expected axis %v, got %v", axis, gotAxis)
	}
	assertFloatClose(t, "ToAxisAngle angle", gotAngle, K_PI/3, testTolerance)

	for _, id := range []Quaternion{NewQuatIdentity(), NewQuat(0, 0, 0, -1)} {
		gotAxis, gotAngle = id.ToAxisAngle()
		if gotAxis != NewVec3Right() || gotAngle != 0 {
			t.Errorf("ToAxisAngle(%v): expected +X and 0, got %v and %v", id, gotAxis, gotAngle)
		}
	}
}

func TestQuaternionInvert(t *testing.T) {
	q := NewQuatFromAxisAngle(NewVec3(0, 0.6, 0.8), 1.1, false)
	inv := q
	inv.Invert()
	prod := q
	prod.Multiply(inv)
	if !prod.Equals(NewQuatIdentity(), testTolerance) {
		t.Errorf("q·q⁻¹: expected identity, got %v", prod)
	}

	scaled := q
	scaled.MulScalar(3)
	sInv := scaled
	sInv.Invert()
	prod = scaled
	prod.Multiply(sInv)
	if !prod.Equals(NewQuatIdentity(), testTolerance) {
		t.Errorf("non-unit q·q⁻¹: expected identity, got %v", prod)
	}

	zero := Quaternion{}
	zero.Invert()
	if zero != NewQuatIdentity() {
		t.Errorf("Invert(0): expected identity, got %v", zero)
	}
}

func TestQuaternionDivScalarByZero(t *testing.T) {
	q := NewQuatIdentity()
	q.DivScalar(0)
	if !m.IsNaN(q.X) || !m.IsInf(q.W, 1) {
		t.Errorf("DivScalar(0): expected NaN/Inf components, got %v", q)
	}
}

func TestQuaternionSetFromUnitVectors(t *testing.T) {
	pairs := [][2]Vec3{
		{NewVec3Right(), NewVec3Up()},
		{NewVec3(1, 2, 3).Normalized(), NewVec3(-3, 0.5, 1).Normalized()},
		{NewVec3Right(), NewVec3Left()},
		{NewVec3Back(), NewVec3Forward()},
	}
	for _, p := range pairs {
		q := Quaternion{}
		q.SetFromUnitVectors(p[0], p[1])
		if got := q.RotateVector3(p[0]); !got.Equals(p[1], testTolerance) {
			t.Errorf("SetFromUnitVectors(%v, %v): rotated to %v", p[0], p[1], got)
		}
	}
}

func TestQuaternionRotateTowards(t *testing.T) {
	q := NewQuatIdentity()
	target := NewQuatFromAxisAngle(NewVec3Up(), 1.0, false)

	q.RotateTowards(target, 0.25)
	assertFloatClose(t, "RotateTowards step", q.AngleTo(NewQuatIdentity()), 0.25, 1e-9)

	q.RotateTowards(target, 10)
	if !q.EqualsRotation(target, 1e-12) {
		t.Errorf("RotateTowards: expected to reach %v, got %v", target, q)
	}
}

func TestEulerRoundTrip(t *testing.T) {
	orders := []EulerOrder{EulerOrderXYZ, EulerOrderYXZ, EulerOrderZXY, EulerOrderZYX, EulerOrderYZX, EulerOrderXZY}
	for _, order := range orders {
		e := NewEuler(0.3, -0.5, 1.1, order)
		q := NewQuatFromEuler(e)
		assertFloatClose(t, order.String()+" unit", q.Length(), 1, testTolerance)

		got := Euler{Order: order}
		got.SetFromQuaternion(q)
		if !got.Equals(e, 1e-9) {
			t.Errorf("%s: expected %v, got %v", order, e, got)
		}
	}
}

func TestEulerXYZMatchesAxisMatrices(t *testing.T) {
	x, y, z := 0.4, -0.7, 1.3
	rx, ry, rz := NewMat4EulerX(x), NewMat4EulerY(y), NewMat4EulerZ(z)
	want := rx
	want.Multiply(&ry).Multiply(&rz)

	got := NewMat4EulerXYZ(x, y, z)
	assertMat4Close(t, "NewMat4EulerXYZ", &got, &want, testTolerance)
}

func TestEulerGimbalLock(t *testing.T) {
	e := NewEuler(0.3, K_HALF_PI, 0, EulerOrderXYZ)
	q := NewQuatFromEuler(e)
	got := Euler{}
	got.SetFromQuaternion(q)

	back := NewQuatFromEuler(got)
	if !back.EqualsRotation(q, 1e-9) {
		t.Errorf("gimbal lock: %v does not reproduce the rotation of %v", got, e)
	}
	if got.Z != 0 {
		t.Errorf("gimbal lock: expected Z folded to 0, got %v", got.Z)
	}
}

func TestParseEulerOrder(t *testing.T) {
	o, err := ParseEulerOrder("zyx")
	if err != nil || o != EulerOrderZYX {
		t.Errorf("ParseEulerOrder(zyx): expected ZYX, got %v (%v)", o, err)
	}
	if o, err = ParseEulerOrder(""); err != nil || o != EulerOrderXYZ {
		t.Errorf("ParseEulerOrder(\"\"): expected XYZ, got %v (%v)", o, err)
	}
	if _, err = ParseEulerOrder("XXY"); err == nil {
		t.Error("ParseEulerOrder(XXY): expected an error")
	}
}

func BenchmarkQuaternionSlerp(b *testing.B) {
	q0 := NewQuatFromAxisAngle(NewVec3Up(), 0.1, false)
	q1 := NewQuatFromAxisAngle(NewVec3Right(), 2.0, false)
	for i := 0; i < b.N; i++ {
		_ = QuatSlerp(q0, q1, 0.37)
	}
}
