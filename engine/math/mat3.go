package math

/**
 * @brief Creates and returns a 3x3 identity matrix.
 *
 * @return A new identity matrix
 */
func NewMat3Identity() Mat3 {
	out_matrix := Mat3{}
	out_matrix.Data[0] = 1.0
	out_matrix.Data[4] = 1.0
	out_matrix.Data[8] = 1.0
	return out_matrix
}

// Set assigns the elements, given in row-major reading order.
func (mt *Mat3) Set(n11, n12, n13, n21, n22, n23, n31, n32, n33 float64) *Mat3 {
	d := &mt.Data
	d[0], d[3], d[6] = n11, n12, n13
	d[1], d[4], d[7] = n21, n22, n23
	d[2], d[5], d[8] = n31, n32, n33
	return mt
}

// Identity resets mt to the identity matrix.
func (mt *Mat3) Identity() *Mat3 {
	*mt = NewMat3Identity()
	return mt
}

// Copy assigns the elements of other to mt.
func (mt *Mat3) Copy(other *Mat3) *Mat3 {
	mt.Data = other.Data
	return mt
}

// Clone returns a new matrix with the same elements.
func (mt *Mat3) Clone() *Mat3 {
	c := *mt
	return &c
}

// FromArray reads nine elements in column-major order starting at offset.
func (mt *Mat3) FromArray(arr []float64, offset int) *Mat3 {
	copy(mt.Data[:], arr[offset:offset+9])
	return mt
}

// ToArray writes the nine elements in column-major order starting at
// offset, growing arr if needed.
func (mt *Mat3) ToArray(arr []float64, offset int) []float64 {
	arr = ensureLen(arr, offset, 9)
	copy(arr[offset:], mt.Data[:])
	return arr
}

// SetFromMat4 copies the upper-left 3x3 block of m.
func (mt *Mat3) SetFromMat4(m *Mat4) *Mat3 {
	d := &m.Data
	return mt.Set(
		d[0], d[4], d[8],
		d[1], d[5], d[9],
		d[2], d[6], d[10])
}

// Multiply sets mt to mt·other.
func (mt *Mat3) Multiply(other *Mat3) *Mat3 {
	return mt.MultiplyMatrices(mt, other)
}

// Premultiply sets mt to other·mt.
func (mt *Mat3) Premultiply(other *Mat3) *Mat3 {
	return mt.MultiplyMatrices(other, mt)
}

// MultiplyMatrices sets mt to a·b. mt may alias either operand.
func (mt *Mat3) MultiplyMatrices(a, b *Mat3) *Mat3 {
	var out [9]float64
	for col := 0; col < 3; col++ {
		for row := 0; row < 3; row++ {
			sum := 0.0
			for i := 0; i < 3; i++ {
				sum += a.Data[i*3+row] * b.Data[col*3+i]
			}
			out[col*3+row] = sum
		}
	}
	mt.Data = out
	return mt
}

// MultiplyScalar scales every element by s.
func (mt *Mat3) MultiplyScalar(s float64) *Mat3 {
	for i := range mt.Data {
		mt.Data[i] *= s
	}
	return mt
}

// Determinant returns det(mt).
func (mt *Mat3) Determinant() float64 {
	d := &mt.Data
	a, b, c := d[0], d[3], d[6]
	e, f, g := d[1], d[4], d[7]
	h, i, j := d[2], d[5], d[8]
	return a*(f*j-g*i) - b*(e*j-g*h) + c*(e*i-f*h)
}

/**
 * @brief Inverts the matrix in place by cofactor expansion. A singular
 * matrix is reset to the identity.
 *
 * @return mt, for chaining.
 */
func (mt *Mat3) Invert() *Mat3 {
	d := &mt.Data
	a00, a01, a02 := d[0], d[3], d[6]
	a10, a11, a12 := d[1], d[4], d[7]
	a20, a21, a22 := d[2], d[5], d[8]

	c00 := a11*a22 - a12*a21
	c01 := a12*a20 - a10*a22
	c02 := a10*a21 - a11*a20

	det := a00*c00 + a01*c01 + a02*c02
	if det == 0 {
		return mt.Identity()
	}
	inv := 1.0 / det

	// inverse(r, c) = cofactor(c, r) / det
	return mt.Set(
		c00*inv, (a02*a21-a01*a22)*inv, (a01*a12-a02*a11)*inv,
		c01*inv, (a00*a22-a02*a20)*inv, (a02*a10-a00*a12)*inv,
		c02*inv, (a01*a20-a00*a21)*inv, (a00*a11-a01*a10)*inv)
}

// Transpose swaps rows and columns in place.
func (mt *Mat3) Transpose() *Mat3 {
	d := &mt.Data
	d[1], d[3] = d[3], d[1]
	d[2], d[6] = d[6], d[2]
	d[5], d[7] = d[7], d[5]
	return mt
}

// NormalMatrix sets mt to the inverse transpose of the upper-left block of
// m: the matrix that maps surface normals under m.
func (mt *Mat3) NormalMatrix(m *Mat4) *Mat3 {
	return mt.SetFromMat4(m).Invert().Transpose()
}

// Equals compares element by element.
func (mt *Mat3) Equals(other *Mat3, tolerance float64) bool {
	for i := range mt.Data {
		if kabs(mt.Data[i]-other.Data[i]) > tolerance {
			return false
		}
	}
	return true
}
