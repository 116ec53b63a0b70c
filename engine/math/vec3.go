package math

// ------------------------------------------
// Vector 3
// ------------------------------------------

/**
 * @brief Creates and returns a new 3-element vector using the supplied values.
 *
 * @param x The x value.
 * @param y The y value.
 * @param z The z value.
 * @return A new 3-element vector.
 */
func NewVec3(x, y, z float64) Vec3 {
	return Vec3{x, y, z}
}

/**
 * @brief Returns a new vec3 containing the x, y and z components of the
 * supplied vec4, essentially dropping the w component.
 *
 * @param vector The 4-component vector to extract from.
 * @return A new vec3
 */
func NewVec3FromVec4(vector Vec4) Vec3 {
	return Vec3{vector.X, vector.Y, vector.Z}
}

/**
 * @brief Creates and returns a 3-component vector with all components set to 0.0.
 */
func NewVec3Zero() Vec3 {
	return Vec3{0.0, 0.0, 0.0}
}

/**
 * @brief Creates and returns a 3-component vector with all components set to 1.0.
 */
func NewVec3One() Vec3 {
	return Vec3{1.0, 1.0, 1.0}
}

/**
 * @brief Creates and returns a 3-component vector pointing up (0, 1, 0).
 */
func NewVec3Up() Vec3 {
	return Vec3{0.0, 1.0, 0.0}
}

/**
 * @brief Creates and returns a 3-component vector pointing down (0, -1, 0).
 */
func NewVec3Down() Vec3 {
	return Vec3{0.0, -1.0, 0.0}
}

/**
 * @brief Creates and returns a 3-component vector pointing left (-1, 0, 0).
 */
func NewVec3Left() Vec3 {
	return Vec3{-1.0, 0.0, 0.0}
}

/**
 * @brief Creates and returns a 3-component vector pointing right (1, 0, 0).
 */
func NewVec3Right() Vec3 {
	return Vec3{1.0, 0.0, 0.0}
}

/**
 * @brief Creates and returns a 3-component vector pointing forward (0, 0, -1).
 */
func NewVec3Forward() Vec3 {
	return Vec3{0.0, 0.0, -1.0}
}

/**
 * @brief Creates and returns a 3-component vector pointing backward (0, 0, 1).
 */
func NewVec3Back() Vec3 {
	return Vec3{0.0, 0.0, 1.0}
}

// Set assigns all three components.
func (v *Vec3) Set(x, y, z float64) *Vec3 {
	v.X, v.Y, v.Z = x, y, z
	return v
}

// Copy assigns the components of other to v.
func (v *Vec3) Copy(other Vec3) *Vec3 {
	*v = other
	return v
}

// Clone returns a new vector with the same components.
func (v *Vec3) Clone() *Vec3 {
	c := *v
	return &c
}

// FromArray reads x, y, z from arr starting at offset.
func (v *Vec3) FromArray(arr []float64, offset int) *Vec3 {
	v.X = arr[offset]
	v.Y = arr[offset+1]
	v.Z = arr[offset+2]
	return v
}

// ToArray writes x, y, z into arr starting at offset. arr is grown when it
// is too short, so callers must use the returned slice.
func (v *Vec3) ToArray(arr []float64, offset int) []float64 {
	arr = ensureLen(arr, offset, 3)
	arr[offset] = v.X
	arr[offset+1] = v.Y
	arr[offset+2] = v.Z
	return arr
}

/**
 * @brief Returns a new vec4 using vector as the x, y and z components and w for w.
 *
 * @param w The w component.
 * @return A new vec4
 */
func (v Vec3) ToVec4(w float64) Vec4 {
	return Vec4{v.X, v.Y, v.Z, w}
}

/**
 * @brief Adds other to v.
 *
 * @param other The vector to add.
 * @return v, for chaining.
 */
func (v *Vec3) Add(other Vec3) *Vec3 {
	v.X += other.X
	v.Y += other.Y
	v.Z += other.Z
	return v
}

// AddScalar adds s to every component.
func (v *Vec3) AddScalar(s float64) *Vec3 {
	v.X += s
	v.Y += s
	v.Z += s
	return v
}

/**
 * @brief Subtracts other from v.
 *
 * @param other The vector to subtract.
 * @return v, for chaining.
 */
func (v *Vec3) Sub(other Vec3) *Vec3 {
	v.X -= other.X
	v.Y -= other.Y
	v.Z -= other.Z
	return v
}

/**
 * @brief Multiplies v by other component-wise.
 *
 * @param other The vector to multiply by.
 * @return v, for chaining.
 */
func (v *Vec3) Mul(other Vec3) *Vec3 {
	v.X *= other.X
	v.Y *= other.Y
	v.Z *= other.Z
	return v
}

/**
 * @brief Multiplies all elements of v by scalar.
 *
 * @param scalar The scalar value.
 * @return v, for chaining.
 */
func (v *Vec3) MulScalar(scalar float64) *Vec3 {
	v.X *= scalar
	v.Y *= scalar
	v.Z *= scalar
	return v
}

// Div divides v by other component-wise.
func (v *Vec3) Div(other Vec3) *Vec3 {
	v.X /= other.X
	v.Y /= other.Y
	v.Z /= other.Z
	return v
}

// DivScalar divides every component by scalar. Dividing by zero follows
// IEEE-754: the components become ±Inf or NaN.
func (v *Vec3) DivScalar(scalar float64) *Vec3 {
	v.X /= scalar
	v.Y /= scalar
	v.Z /= scalar
	return v
}

// Negate flips the sign of every component.
func (v *Vec3) Negate() *Vec3 {
	v.X, v.Y, v.Z = -v.X, -v.Y, -v.Z
	return v
}

/**
 * @brief Returns the squared length of the provided vector.
 *
 * @return The squared length.
 */
func (v Vec3) LengthSquared() float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

/**
 * @brief Returns the length of the provided vector.
 *
 * @return The length.
 */
func (v Vec3) Length() float64 {
	return ksqrt(v.LengthSquared())
}

/**
 * @brief Normalizes the provided vector in place to a unit vector.
 * The zero vector is left unchanged.
 */
func (v *Vec3) Normalize() *Vec3 {
	length := v.Length()
	if length == 0 {
		return v
	}
	return v.MulScalar(1.0 / length)
}

/**
 * @brief Returns a normalized copy of the supplied vector.
 *
 * @return A normalized copy of the supplied vector
 */
func (v Vec3) Normalized() Vec3 {
	v.Normalize()
	return v
}

/**
 * @brief Returns the dot product between the provided vectors. Typically used
 * to calculate the difference in direction.
 *
 * @param other The second vector.
 * @return The dot product.
 */
func (v Vec3) Dot(other Vec3) float64 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Cross sets v to v × other.
func (v *Vec3) Cross(other Vec3) *Vec3 {
	*v = Vec3Cross(*v, other)
	return v
}

/**
 * @brief Calculates and returns the cross product of the supplied vectors.
 * The cross product is a new vector which is orthoganal to both provided vectors.
 *
 * @param a The first vector.
 * @param b The second vector.
 * @return The cross product.
 */
func Vec3Cross(a, b Vec3) Vec3 {
	return Vec3{
		a.Y*b.Z - a.Z*b.Y,
		a.Z*b.X - a.X*b.Z,
		a.X*b.Y - a.Y*b.X}
}

// Lerp moves v towards other by the fraction t.
func (v *Vec3) Lerp(other Vec3, t float64) *Vec3 {
	v.X = Lerp(v.X, other.X, t)
	v.Y = Lerp(v.Y, other.Y, t)
	v.Z = Lerp(v.Z, other.Z, t)
	return v
}

/**
 * @brief Compares all elements of v and other and ensures the difference
 * is less than tolerance.
 *
 * @param other The second vector.
 * @param tolerance The difference tolerance. Typically Epsilon or similar.
 * @return True if within tolerance; otherwise false.
 */
func (v Vec3) Equals(other Vec3, tolerance float64) bool {
	if kabs(v.X-other.X) > tolerance {
		return false
	}

	if kabs(v.Y-other.Y) > tolerance {
		return false
	}

	if kabs(v.Z-other.Z) > tolerance {
		return false
	}

	return true
}

/**
 * @brief Returns the distance between v and other.
 *
 * @param other The second vector.
 * @return The distance between v and other.
 */
func (v Vec3) Distance(other Vec3) float64 {
	d := Vec3{
		v.X - other.X,
		v.Y - other.Y,
		v.Z - other.Z}
	return d.Length()
}

// ApplyQuaternion rotates v by the unit quaternion q.
func (v *Vec3) ApplyQuaternion(q Quaternion) *Vec3 {
	// v' = v + w·t + u×t with t = 2·(u×v), u the vector part of q.
	u := Vec3{q.X, q.Y, q.Z}
	t := Vec3Cross(u, *v)
	t.MulScalar(2)
	ut := Vec3Cross(u, t)
	v.X += q.W*t.X + ut.X
	v.Y += q.W*t.Y + ut.Y
	v.Z += q.W*t.Z + ut.Z
	return v
}

// ApplyMat3 sets v to m·v.
func (v *Vec3) ApplyMat3(m *Mat3) *Vec3 {
	d := &m.Data
	x, y, z := v.X, v.Y, v.Z
	v.X = d[0]*x + d[3]*y + d[6]*z
	v.Y = d[1]*x + d[4]*y + d[7]*z
	v.Z = d[2]*x + d[5]*y + d[8]*z
	return v
}

/**
 * @brief Transform v by m. NOTE: It is assumed by this function that the
 * vector v is a point, not a direction, and is calculated as if a w component
 * with a value of 1.0 is there. A projective result is divided through by w.
 *
 * @param m The matrix to transform by.
 * @return v, for chaining.
 */
func (v *Vec3) TransformPoint(m *Mat4) *Vec3 {
	d := &m.Data
	x, y, z := v.X, v.Y, v.Z
	v.X = x*d[0] + y*d[4] + z*d[8] + d[12]
	v.Y = x*d[1] + y*d[5] + z*d[9] + d[13]
	v.Z = x*d[2] + y*d[6] + z*d[10] + d[14]
	w := x*d[3] + y*d[7] + z*d[11] + d[15]
	if w != 0 && w != 1 {
		v.DivScalar(w)
	}
	return v
}

// TransformDirection applies the linear part of m to v (w = 0) and
// normalizes the result.
func (v *Vec3) TransformDirection(m *Mat4) *Vec3 {
	d := &m.Data
	x, y, z := v.X, v.Y, v.Z
	v.X = x*d[0] + y*d[4] + z*d[8]
	v.Y = x*d[1] + y*d[5] + z*d[9]
	v.Z = x*d[2] + y*d[6] + z*d[10]
	return v.Normalize()
}
