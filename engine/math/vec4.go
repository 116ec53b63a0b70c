package math

// ------------------------------------------
// Vector 4
// ------------------------------------------

/**
 * @brief Creates and returns a new 4-element vector using the supplied values.
 *
 * @param x The x value.
 * @param y The y value.
 * @param z The z value.
 * @param w The w value.
 * @return A new 4-element vector.
 */
func NewVec4(x, y, z, w float64) Vec4 {
	return Vec4{x, y, z, w}
}

/**
 * @brief Returns a new vec4 using vector as the x, y and z components and w for w.
 *
 * @param v The 3-component vector.
 * @param w The w component.
 * @return A new vec4
 */
func NewVec4FromVec3(v Vec3, w float64) Vec4 {
	return Vec4{v.X, v.Y, v.Z, w}
}

/**
 * @brief Creates and returns a 4-component vector with all components set to 0.0.
 */
func NewVec4Zero() Vec4 {
	return Vec4{0.0, 0.0, 0.0, 0.0}
}

/**
 * @brief Creates and returns a 4-component vector with all components set to 1.0.
 */
func NewVec4One() Vec4 {
	return Vec4{1.0, 1.0, 1.0, 1.0}
}

// Set assigns all four components.
func (v *Vec4) Set(x, y, z, w float64) *Vec4 {
	v.X, v.Y, v.Z, v.W = x, y, z, w
	return v
}

// Copy assigns the components of other to v.
func (v *Vec4) Copy(other Vec4) *Vec4 {
	*v = other
	return v
}

// Clone returns a new vector with the same components.
func (v *Vec4) Clone() *Vec4 {
	c := *v
	return &c
}

// FromArray reads x, y, z, w from arr starting at offset.
func (v *Vec4) FromArray(arr []float64, offset int) *Vec4 {
	v.X = arr[offset]
	v.Y = arr[offset+1]
	v.Z = arr[offset+2]
	v.W = arr[offset+3]
	return v
}

// ToArray writes x, y, z, w into arr starting at offset, growing arr if needed.
func (v *Vec4) ToArray(arr []float64, offset int) []float64 {
	arr = ensureLen(arr, offset, 4)
	arr[offset] = v.X
	arr[offset+1] = v.Y
	arr[offset+2] = v.Z
	arr[offset+3] = v.W
	return arr
}

/**
 * @brief Returns a new vec3 containing the x, y and z components of the
 * supplied vec4, essentially dropping the w component.
 *
 * @return A new vec3
 */
func (v Vec4) ToVec3() Vec3 {
	return Vec3{v.X, v.Y, v.Z}
}

// Add adds other to v.
func (v *Vec4) Add(other Vec4) *Vec4 {
	v.X += other.X
	v.Y += other.Y
	v.Z += other.Z
	v.W += other.W
	return v
}

// Sub subtracts other from v.
func (v *Vec4) Sub(other Vec4) *Vec4 {
	v.X -= other.X
	v.Y -= other.Y
	v.Z -= other.Z
	v.W -= other.W
	return v
}

// Mul multiplies v by other component-wise.
func (v *Vec4) Mul(other Vec4) *Vec4 {
	v.X *= other.X
	v.Y *= other.Y
	v.Z *= other.Z
	v.W *= other.W
	return v
}

// MulScalar multiplies every component by scalar.
func (v *Vec4) MulScalar(scalar float64) *Vec4 {
	v.X *= scalar
	v.Y *= scalar
	v.Z *= scalar
	v.W *= scalar
	return v
}

// DivScalar divides every component by scalar; zero yields ±Inf or NaN.
func (v *Vec4) DivScalar(scalar float64) *Vec4 {
	v.X /= scalar
	v.Y /= scalar
	v.Z /= scalar
	v.W /= scalar
	return v
}

/**
 * @brief Returns the squared length of the provided vector.
 *
 * @return The squared length.
 */
func (v Vec4) LengthSquared() float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z + v.W*v.W
}

/**
 * @brief Returns the length of the provided vector.
 *
 * @return The length.
 */
func (v Vec4) Length() float64 {
	return ksqrt(v.LengthSquared())
}

/**
 * @brief Normalizes the provided vector in place to a unit vector.
 * The zero vector is left unchanged.
 */
func (v *Vec4) Normalize() *Vec4 {
	length := v.Length()
	if length == 0 {
		return v
	}
	return v.MulScalar(1.0 / length)
}

// Dot returns the four-component dot product.
func (v Vec4) Dot(other Vec4) float64 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z + v.W*other.W
}

// ApplyMat4 sets v to m·v.
func (v *Vec4) ApplyMat4(m *Mat4) *Vec4 {
	d := &m.Data
	x, y, z, w := v.X, v.Y, v.Z, v.W
	v.X = d[0]*x + d[4]*y + d[8]*z + d[12]*w
	v.Y = d[1]*x + d[5]*y + d[9]*z + d[13]*w
	v.Z = d[2]*x + d[6]*y + d[10]*z + d[14]*w
	v.W = d[3]*x + d[7]*y + d[11]*z + d[15]*w
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
func (v Vec4) Equals(other Vec4, tolerance float64) bool {
	if kabs(v.X-other.X) > tolerance {
		return false
	}

	if kabs(v.Y-other.Y) > tolerance {
		return false
	}

	if kabs(v.Z-other.Z) > tolerance {
		return false
	}

	if kabs(v.W-other.W) > tolerance {
		return false
	}

	return true
}
