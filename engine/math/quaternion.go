package math

import "golang.org/x/exp/rand"

// ------------------------------------------
// Quaternion
// ------------------------------------------

// NewQuat returns the quaternion (x, y, z, w) as given; it is not normalized.
func NewQuat(x, y, z, w float64) Quaternion {
	return Quaternion{x, y, z, w}
}

/**
 * @brief Creates an identity quaternion.
 *
 * @return An identity quaternion.
 */
func NewQuatIdentity() Quaternion {
	return Quaternion{0, 0, 0, 1.0}
}

/**
 * @brief Creates a quaternion from the given axis and angle.
 *
 * @param axis The axis of rotation.
 * @param angle The angle of rotation in radians.
 * @param normalize Indicates if the quaternion should be normalized.
 * @return A new quaternion.
 */
func NewQuatFromAxisAngle(axis Vec3, angle float64, normalize bool) Quaternion {
	q := Quaternion{}
	q.SetFromAxisAngle(axis, angle)
	if normalize {
		q.Normalize()
	}
	return q
}

// NewQuatFromEuler returns the rotation described by e.
func NewQuatFromEuler(e Euler) Quaternion {
	q := Quaternion{}
	q.SetFromEuler(e)
	return q
}

// NewQuatFromRotationMatrix returns the rotation held in the upper-left 3x3
// block of m, which must be unscaled.
func NewQuatFromRotationMatrix(m *Mat4) Quaternion {
	q := Quaternion{}
	q.SetFromRotationMatrix(m)
	return q
}

/**
 * @brief Creates a random rotation, uniformly distributed over all
 * orientations (Shoemake, "Uniform random rotations", Graphics Gems III).
 *
 * @param r The random source. Use a seeded source for reproducible output.
 * @return A new unit quaternion.
 */
func NewQuatRandom(r *rand.Rand) Quaternion {
	u1 := r.Float64()
	u2 := r.Float64() * K_PI_2
	u3 := r.Float64() * K_PI_2

	s1 := ksqrt(1 - u1)
	s2 := ksqrt(u1)
	return Quaternion{
		s1 * ksin(u2),
		s1 * kcos(u2),
		s2 * ksin(u3),
		s2 * kcos(u3)}
}

// Set assigns all four components.
func (q *Quaternion) Set(x, y, z, w float64) *Quaternion {
	q.X, q.Y, q.Z, q.W = x, y, z, w
	return q
}

// Copy assigns the components of other to q.
func (q *Quaternion) Copy(other Quaternion) *Quaternion {
	*q = other
	return q
}

// Clone returns a new quaternion with the same components.
func (q *Quaternion) Clone() *Quaternion {
	c := *q
	return &c
}

// Identity resets q to the identity rotation.
func (q *Quaternion) Identity() *Quaternion {
	*q = NewQuatIdentity()
	return q
}

// FromArray reads x, y, z, w from arr starting at offset.
func (q *Quaternion) FromArray(arr []float64, offset int) *Quaternion {
	q.X = arr[offset]
	q.Y = arr[offset+1]
	q.Z = arr[offset+2]
	q.W = arr[offset+3]
	return q
}

// ToArray writes x, y, z, w into arr starting at offset, growing arr if needed.
func (q *Quaternion) ToArray(arr []float64, offset int) []float64 {
	arr = ensureLen(arr, offset, 4)
	arr[offset] = q.X
	arr[offset+1] = q.Y
	arr[offset+2] = q.Z
	arr[offset+3] = q.W
	return arr
}

// LengthSquared returns the squared norm of q.
func (q Quaternion) LengthSquared() float64 {
	return q.X*q.X + q.Y*q.Y + q.Z*q.Z + q.W*q.W
}

/**
 * @brief Returns the normal of the provided quaternion.
 *
 * @return The normal of the provided quaternion.
 */
func (q Quaternion) Length() float64 {
	return ksqrt(q.LengthSquared())
}

/**
 * @brief Normalizes the quaternion in place. A zero quaternion becomes the
 * identity, since it represents no rotation at all.
 *
 * @return q, for chaining.
 */
func (q *Quaternion) Normalize() *Quaternion {
	normal := q.Length()
	if normal == 0 {
		return q.Identity()
	}
	return q.MulScalar(1.0 / normal)
}

/**
 * @brief Conjugates the quaternion in place. That is,
 * the x, y and z elements are negated, but the w element is untouched.
 *
 * @return q, for chaining.
 */
func (q *Quaternion) Conjugate() *Quaternion {
	q.X, q.Y, q.Z = -q.X, -q.Y, -q.Z
	return q
}

/**
 * @brief Inverts the quaternion in place: the conjugate divided by the
 * squared norm. For unit quaternions this equals the conjugate.
 *
 * @return q, for chaining.
 */
func (q *Quaternion) Invert() *Quaternion {
	lsq := q.LengthSquared()
	if lsq == 0 {
		return q.Identity()
	}
	return q.Conjugate().MulScalar(1.0 / lsq)
}

// Negate flips the sign of every component. The rotation is unchanged.
func (q *Quaternion) Negate() *Quaternion {
	q.X, q.Y, q.Z, q.W = -q.X, -q.Y, -q.Z, -q.W
	return q
}

// MulScalar multiplies every component by scalar.
func (q *Quaternion) MulScalar(scalar float64) *Quaternion {
	q.X *= scalar
	q.Y *= scalar
	q.Z *= scalar
	q.W *= scalar
	return q
}

// DivScalar divides every component by scalar; zero yields ±Inf or NaN.
func (q *Quaternion) DivScalar(scalar float64) *Quaternion {
	q.X /= scalar
	q.Y /= scalar
	q.Z /= scalar
	q.W /= scalar
	return q
}

// Multiply sets q to q·other (apply other first, then q).
func (q *Quaternion) Multiply(other Quaternion) *Quaternion {
	return q.MultiplyQuaternions(*q, other)
}

// Premultiply sets q to other·q.
func (q *Quaternion) Premultiply(other Quaternion) *Quaternion {
	return q.MultiplyQuaternions(other, *q)
}

/**
 * @brief Sets q to the Hamilton product a·b.
 *
 * @param a The first quaternion.
 * @param b The second quaternion.
 * @return q, for chaining.
 */
func (q *Quaternion) MultiplyQuaternions(a, b Quaternion) *Quaternion {
	x := a.X*b.W +
		a.Y*b.Z -
		a.Z*b.Y +
		a.W*b.X

	y := -a.X*b.Z +
		a.Y*b.W +
		a.Z*b.X +
		a.W*b.Y

	z := a.X*b.Y -
		a.Y*b.X +
		a.Z*b.W +
		a.W*b.Z

	w := -a.X*b.X -
		a.Y*b.Y -
		a.Z*b.Z +
		a.W*b.W

	q.X, q.Y, q.Z, q.W = x, y, z, w
	return q
}

/**
 * @brief Calculates the dot product of the provided quaternions.
 *
 * @param other The second quaternion.
 * @return The dot product of the provided quaternions.
 */
func (q Quaternion) Dot(other Quaternion) float64 {
	return q.X*other.X +
		q.Y*other.Y +
		q.Z*other.Z +
		q.W*other.W
}

// SetFromAxisAngle sets q to a rotation of angle radians about axis. The
// axis is expected to be unit length; q has the axis' length otherwise.
func (q *Quaternion) SetFromAxisAngle(axis Vec3, angle float64) *Quaternion {
	half_angle := 0.5 * angle
	s := ksin(half_angle)
	q.X = s * axis.X
	q.Y = s * axis.Y
	q.Z = s * axis.Z
	q.W = kcos(half_angle)
	return q
}

// ToAxisAngle returns the unit axis and the angle in [0, π] of q. When q is
// within a hair of the identity the axis is undefined; +X and 0 are returned.
func (q Quaternion) ToAxisAngle() (Vec3, float64) {
	if q.W > 1 || q.W < -1 {
		q.Normalize()
	}
	if q.W < 0 {
		// Same rotation, shorter angle.
		q.Negate()
	}
	s := ksqrt(1 - q.W*q.W)
	if s < 1e-6 {
		return NewVec3Right(), 0
	}
	angle := 2 * kacos(q.W)
	return Vec3{q.X / s, q.Y / s, q.Z / s}, angle
}

// SetFromEuler sets q to the rotation described by e, honouring e.Order.
func (q *Quaternion) SetFromEuler(e Euler) *Quaternion {
	c1 := kcos(e.X / 2)
	c2 := kcos(e.Y / 2)
	c3 := kcos(e.Z / 2)
	s1 := ksin(e.X / 2)
	s2 := ksin(e.Y / 2)
	s3 := ksin(e.Z / 2)

	switch e.Order {
	case EulerOrderYXZ:
		q.X = s1*c2*c3 + c1*s2*s3
		q.Y = c1*s2*c3 - s1*c2*s3
		q.Z = c1*c2*s3 - s1*s2*c3
		q.W = c1*c2*c3 + s1*s2*s3
	case EulerOrderZXY:
		q.X = s1*c2*c3 - c1*s2*s3
		q.Y = c1*s2*c3 + s1*c2*s3
		q.Z = c1*c2*s3 + s1*s2*c3
		q.W = c1*c2*c3 - s1*s2*s3
	case EulerOrderZYX:
		q.X = s1*c2*c3 - c1*s2*s3
		q.Y = c1*s2*c3 + s1*c2*s3
		q.Z = c1*c2*s3 - s1*s2*c3
		q.W = c1*c2*c3 + s1*s2*s3
	case EulerOrderYZX:
		q.X = s1*c2*c3 + c1*s2*s3
		q.Y = c1*s2*c3 + s1*c2*s3
		q.Z = c1*c2*s3 - s1*s2*c3
		q.W = c1*c2*c3 - s1*s2*s3
	case EulerOrderXZY:
		q.X = s1*c2*c3 - c1*s2*s3
		q.Y = c1*s2*c3 - s1*c2*s3
		q.Z = c1*c2*s3 + s1*s2*c3
		q.W = c1*c2*c3 + s1*s2*s3
	default:
		q.X = s1*c2*c3 + c1*s2*s3
		q.Y = c1*s2*c3 - s1*c2*s3
		q.Z = c1*c2*s3 + s1*s2*c3
		q.W = c1*c2*c3 - s1*s2*s3
	}
	return q
}

// SetFromRotationMatrix sets q from the upper-left 3x3 block of m.
func (q *Quaternion) SetFromRotationMatrix(m *Mat4) *Quaternion {
	d := &m.Data
	return q.setFromRotation(
		d[0], d[4], d[8],
		d[1], d[5], d[9],
		d[2], d[6], d[10])
}

// SetFromMat3 sets q from the rotation matrix m.
func (q *Quaternion) SetFromMat3(m *Mat3) *Quaternion {
	d := &m.Data
	return q.setFromRotation(
		d[0], d[3], d[6],
		d[1], d[4], d[7],
		d[2], d[5], d[8])
}

// setFromRotation extracts a unit quaternion from a row-major 3x3 rotation
// using Shepperd's method: the branch is chosen by the largest of the trace
// and the three diagonal entries so the square root argument stays well
// away from zero. The input may carry small orthonormality errors.
func (q *Quaternion) setFromRotation(m11, m12, m13, m21, m22, m23, m31, m32, m33 float64) *Quaternion {
	trace := m11 + m22 + m33

	switch {
	case trace > 0:
		s := 0.5 / ksqrt(trace+1.0)
		q.W = 0.25 / s
		q.X = (m32 - m23) * s
		q.Y = (m13 - m31) * s
		q.Z = (m21 - m12) * s
	case m11 > m22 && m11 > m33:
		s := 2.0 * ksqrt(1.0+m11-m22-m33)
		q.W = (m32 - m23) / s
		q.X = 0.25 * s
		q.Y = (m12 + m21) / s
		q.Z = (m13 + m31) / s
	case m22 > m33:
		s := 2.0 * ksqrt(1.0+m22-m11-m33)
		q.W = (m13 - m31) / s
		q.X = (m12 + m21) / s
		q.Y = 0.25 * s
		q.Z = (m23 + m32) / s
	default:
		s := 2.0 * ksqrt(1.0+m33-m11-m22)
		q.W = (m21 - m12) / s
		q.X = (m13 + m31) / s
		q.Y = (m23 + m32) / s
		q.Z = 0.25 * s
	}

	return q.Normalize()
}

// SetFromUnitVectors sets q to the shortest rotation taking the unit
// vector from onto the unit vector to.
func (q *Quaternion) SetFromUnitVectors(from, to Vec3) *Quaternion {
	r := from.Dot(to) + 1

	if r < Epsilon {
		// Opposite vectors: rotate 180° about any axis orthogonal to from.
		r = 0
		if kabs(from.X) > kabs(from.Z) {
			q.Set(-from.Y, from.X, 0, r)
		} else {
			q.Set(0, -from.Z, from.Y, r)
		}
	} else {
		c := Vec3Cross(from, to)
		q.Set(c.X, c.Y, c.Z, r)
	}

	return q.Normalize()
}

// AngleTo returns the angle in radians between the rotations q and other.
func (q Quaternion) AngleTo(other Quaternion) float64 {
	return 2 * kacos(kabs(q.Dot(other)))
}

// RotateTowards moves q towards target by at most step radians.
func (q *Quaternion) RotateTowards(target Quaternion, step float64) *Quaternion {
	angle := q.AngleTo(target)
	if angle == 0 {
		return q
	}
	t := step / angle
	if t > 1 {
		t = 1
	}
	return q.Slerp(target, t)
}

/**
 * @brief Calculates spherical linear interpolation of a given percentage
 * between q and other, storing the result in q. Both are expected to
 * be unit quaternions.
 *
 * @param other The target quaternion.
 * @param percentage The interpolation amount, where 0 yields q and 1 other.
 * @return q, for chaining.
 */
func (q *Quaternion) Slerp(other Quaternion, percentage float64) *Quaternion {
	// Source: https://en.Wikipedia.org/wiki/Slerp
	v0 := *q
	v1 := other

	// Compute the cosine of the angle between the two vectors.
	dot := v0.Dot(v1)

	// If the dot product is negative, slerp won't take
	// the shorter path. Note that v1 and -v1 are equivalent when
	// the negation is applied to all four components. Fix by
	// reversing one quaternion.
	if dot < 0.0 {
		v1.Negate()
		dot = -dot
	}

	if dot > slerpDotThreshold {
		// If the inputs are too close for comfort, linearly interpolate
		// and normalize the result.
		q.X = Lerp(v0.X, v1.X, percentage)
		q.Y = Lerp(v0.Y, v1.Y, percentage)
		q.Z = Lerp(v0.Z, v1.Z, percentage)
		q.W = Lerp(v0.W, v1.W, percentage)
		return q.Normalize()
	}

	// Since dot is in range [0, slerpDotThreshold], acos is safe
	theta_0 := kacos(dot)         // theta_0 = angle between input vectors
	sin_theta_0 := ksin(theta_0)  // compute this value only once
	theta := theta_0 * percentage // theta = angle between v0 and result

	s0 := ksin(theta_0-theta) / sin_theta_0
	s1 := ksin(theta) / sin_theta_0

	q.X = (v0.X * s0) + (v1.X * s1)
	q.Y = (v0.Y * s0) + (v1.Y * s1)
	q.Z = (v0.Z * s0) + (v1.Z * s1)
	q.W = (v0.W * s0) + (v1.W * s1)
	return q
}

// QuatSlerp returns the spherical interpolation between a and b without
// modifying either.
func QuatSlerp(a, b Quaternion, t float64) Quaternion {
	out := a
	out.Slerp(b, t)
	return out
}

// RotateVector3 returns v rotated by q.
func (q Quaternion) RotateVector3(v Vec3) Vec3 {
	v.ApplyQuaternion(q)
	return v
}

/**
 * @brief Creates a rotation matrix from the given quaternion. The
 * quaternion is used as is: a non-unit input yields a scaled block.
 *
 * @return A rotation matrix.
 */
func (q Quaternion) ToMat4() Mat4 {
	out_matrix := NewMat4Identity()
	out_matrix.MakeRotationFromQuaternion(q)
	return out_matrix
}

// Equals compares q and other component by component.
func (q Quaternion) Equals(other Quaternion, tolerance float64) bool {
	return Vec4(q).Equals(Vec4(other), tolerance)
}

// EqualsRotation reports whether q and other describe the same rotation,
// treating q and -q as equal.
func (q Quaternion) EqualsRotation(other Quaternion, tolerance float64) bool {
	return kabs(kabs(q.Dot(other))-1) <= tolerance
}
