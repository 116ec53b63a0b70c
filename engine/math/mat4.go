package math

/**
 * @brief Creates and returns an identity matrix:
 * {
 *   {1, 0, 0, 0},
 *   {0, 1, 0, 0},
 *   {0, 0, 1, 0},
 *   {0, 0, 0, 1}
 * }
 * @return A new identity matrix
 */
func NewMat4Identity() Mat4 {
	out_matrix := Mat4{}
	out_matrix.Data[0] = 1.0
	out_matrix.Data[5] = 1.0
	out_matrix.Data[10] = 1.0
	out_matrix.Data[15] = 1.0
	return out_matrix
}

// NewMat4FromRowMajor builds a matrix from 16 values listed row by row.
func NewMat4FromRowMajor(arr []float64) Mat4 {
	out_matrix := Mat4{}
	out_matrix.FromRowMajorArray(arr, 0)
	return out_matrix
}

/**
 * @brief Creates and returns a translation matrix from the given position.
 *
 * @param position The position to be used to create the matrix.
 * @return A newly created translation matrix.
 */
func NewMat4Translation(position Vec3) Mat4 {
	out_matrix := NewMat4Identity()
	out_matrix.MakeTranslation(position)
	return out_matrix
}

/**
 * @brief Returns a scale matrix using the provided scale.
 *
 * @param scale The 3-component scale.
 * @return A scale matrix.
 */
func NewMat4Scale(scale Vec3) Mat4 {
	out_matrix := NewMat4Identity()
	out_matrix.MakeScale(scale)
	return out_matrix
}

/**
 * @brief Creates a rotation matrix from the provided x angle.
 *
 * @param angle_radians The x angle in radians.
 * @return A rotation matrix.
 */
func NewMat4EulerX(angle_radians float64) Mat4 {
	out_matrix := NewMat4Identity()
	out_matrix.MakeRotationX(angle_radians)
	return out_matrix
}

/**
 * @brief Creates a rotation matrix from the provided y angle.
 *
 * @param angle_radians The y angle in radians.
 * @return A rotation matrix.
 */
func NewMat4EulerY(angle_radians float64) Mat4 {
	out_matrix := NewMat4Identity()
	out_matrix.MakeRotationY(angle_radians)
	return out_matrix
}

/**
 * @brief Creates a rotation matrix from the provided z angle.
 *
 * @param angle_radians The z angle in radians.
 * @return A rotation matrix.
 */
func NewMat4EulerZ(angle_radians float64) Mat4 {
	out_matrix := NewMat4Identity()
	out_matrix.MakeRotationZ(angle_radians)
	return out_matrix
}

/**
 * @brief Creates a rotation matrix Rx·Ry·Rz from the provided x, y and z
 * axis rotations.
 *
 * @param x_radians The x rotation.
 * @param y_radians The y rotation.
 * @param z_radians The z rotation.
 * @return A rotation matrix.
 */
func NewMat4EulerXYZ(x_radians, y_radians, z_radians float64) Mat4 {
	out_matrix := NewMat4Identity()
	out_matrix.MakeRotationFromEuler(NewEuler(x_radians, y_radians, z_radians, EulerOrderXYZ))
	return out_matrix
}

/**
 * @brief Creates and returns an orthographic projection matrix. Typically used to
 * render flat or 2D scenes.
 *
 * @param left The left side of the view frustum.
 * @param right The right side of the view frustum.
 * @param bottom The bottom side of the view frustum.
 * @param top The top side of the view frustum.
 * @param near_clip The near clipping plane distance.
 * @param far_clip The far clipping plane distance.
 * @return A new orthographic projection matrix.
 */
func NewMat4Orthographic(left, right, bottom, top, near_clip, far_clip float64) Mat4 {
	out_matrix := NewMat4Identity()

	lr := 1.0 / (left - right)
	bt := 1.0 / (bottom - top)
	nf := 1.0 / (near_clip - far_clip)

	out_matrix.Data[0] = -2.0 * lr
	out_matrix.Data[5] = -2.0 * bt
	out_matrix.Data[10] = 2.0 * nf

	out_matrix.Data[12] = (left + right) * lr
	out_matrix.Data[13] = (top + bottom) * bt
	out_matrix.Data[14] = (far_clip + near_clip) * nf
	return out_matrix
}

/**
 * @brief Creates and returns a perspective matrix. Typically used to render 3d scenes.
 *
 * @param fov_radians The field of view in radians.
 * @param aspect_ratio The aspect ratio.
 * @param near_clip The near clipping plane distance.
 * @param far_clip The far clipping plane distance.
 * @return A new perspective matrix.
 */
func NewMat4Perspective(fov_radians, aspect_ratio, near_clip, far_clip float64) Mat4 {
	half_tan_fov := ktan(fov_radians * 0.5)
	out_matrix := Mat4{}
	out_matrix.Data[0] = 1.0 / (aspect_ratio * half_tan_fov)
	out_matrix.Data[5] = 1.0 / half_tan_fov
	out_matrix.Data[10] = -((far_clip + near_clip) / (far_clip - near_clip))
	out_matrix.Data[11] = -1.0
	out_matrix.Data[14] = -((2.0 * far_clip * near_clip) / (far_clip - near_clip))
	return out_matrix
}

/**
 * @brief Creates and returns a look-at matrix, or a matrix looking
 * at target from the perspective of position.
 *
 * @param position The position of the matrix.
 * @param target The position to "look at".
 * @param up The up vector.
 * @return A matrix looking at target from the perspective of position.
 */
func NewMat4LookAt(position, target, up Vec3) Mat4 {
	out_matrix := Mat4{}
	z_axis := target
	z_axis.Sub(position).Normalize()
	x_axis := Vec3Cross(z_axis, up)
	x_axis.Normalize()
	y_axis := Vec3Cross(x_axis, z_axis)

	out_matrix.Data[0] = x_axis.X
	out_matrix.Data[1] = y_axis.X
	out_matrix.Data[2] = -z_axis.X
	out_matrix.Data[3] = 0
	out_matrix.Data[4] = x_axis.Y
	out_matrix.Data[5] = y_axis.Y
	out_matrix.Data[6] = -z_axis.Y
	out_matrix.Data[7] = 0
	out_matrix.Data[8] = x_axis.Z
	out_matrix.Data[9] = y_axis.Z
	out_matrix.Data[10] = -z_axis.Z
	out_matrix.Data[11] = 0
	out_matrix.Data[12] = -x_axis.Dot(position)
	out_matrix.Data[13] = -y_axis.Dot(position)
	out_matrix.Data[14] = z_axis.Dot(position)
	out_matrix.Data[15] = 1.0

	return out_matrix
}

// NewMat4Compose returns T·R·S for the given position, rotation and scale.
func NewMat4Compose(position Vec3, rotation Quaternion, scale Vec3) Mat4 {
	out_matrix := Mat4{}
	out_matrix.Compose(position, rotation, scale)
	return out_matrix
}

// Set assigns the elements, given in row-major reading order.
func (mt *Mat4) Set(
	n11, n12, n13, n14,
	n21, n22, n23, n24,
	n31, n32, n33, n34,
	n41, n42, n43, n44 float64,
) *Mat4 {
	d := &mt.Data
	d[0], d[4], d[8], d[12] = n11, n12, n13, n14
	d[1], d[5], d[9], d[13] = n21, n22, n23, n24
	d[2], d[6], d[10], d[14] = n31, n32, n33, n34
	d[3], d[7], d[11], d[15] = n41, n42, n43, n44
	return mt
}

// Identity resets mt to the identity matrix.
func (mt *Mat4) Identity() *Mat4 {
	*mt = NewMat4Identity()
	return mt
}

// Copy assigns the elements of other to mt.
func (mt *Mat4) Copy(other *Mat4) *Mat4 {
	mt.Data = other.Data
	return mt
}

// Clone returns a new matrix with the same elements.
func (mt *Mat4) Clone() *Mat4 {
	c := *mt
	return &c
}

// FromArray reads sixteen elements in column-major (storage) order
// starting at offset.
func (mt *Mat4) FromArray(arr []float64, offset int) *Mat4 {
	copy(mt.Data[:], arr[offset:offset+16])
	return mt
}

// ToArray writes the sixteen elements in column-major order starting at
// offset, growing arr if needed.
func (mt *Mat4) ToArray(arr []float64, offset int) []float64 {
	arr = ensureLen(arr, offset, 16)
	copy(arr[offset:], mt.Data[:])
	return arr
}

// FromRowMajorArray reads sixteen elements listed row by row starting at
// offset and stores them column-major.
func (mt *Mat4) FromRowMajorArray(arr []float64, offset int) *Mat4 {
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			mt.Data[col*4+row] = arr[offset+row*4+col]
		}
	}
	return mt
}

// ToRowMajorArray writes the elements row by row starting at offset,
// growing arr if needed.
func (mt *Mat4) ToRowMajorArray(arr []float64, offset int) []float64 {
	arr = ensureLen(arr, offset, 16)
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			arr[offset+row*4+col] = mt.Data[col*4+row]
		}
	}
	return arr
}

// Multiply sets mt to mt·other.
func (mt *Mat4) Multiply(other *Mat4) *Mat4 {
	return mt.MultiplyMatrices(mt, other)
}

// Premultiply sets mt to other·mt.
func (mt *Mat4) Premultiply(other *Mat4) *Mat4 {
	return mt.MultiplyMatrices(other, mt)
}

/**
 * @brief Sets mt to the product a·b. mt may alias either operand.
 *
 * @param a The first matrix.
 * @param b The second matrix.
 * @return mt, for chaining.
 */
func (mt *Mat4) MultiplyMatrices(a, b *Mat4) *Mat4 {
	var out [16]float64

	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			sum := 0.0
			for i := 0; i < 4; i++ {
				sum += a.Data[i*4+row] * b.Data[col*4+i]
			}
			out[col*4+row] = sum
		}
	}

	mt.Data = out
	return mt
}

// MultiplyScalar scales every element by s.
func (mt *Mat4) MultiplyScalar(s float64) *Mat4 {
	for i := range mt.Data {
		mt.Data[i] *= s
	}
	return mt
}

/**
 * @brief Transposes the matrix in place (rows->colums).
 *
 * @return mt, for chaining.
 */
func (mt *Mat4) Transpose() *Mat4 {
	d := &mt.Data
	d[1], d[4] = d[4], d[1]
	d[2], d[8] = d[8], d[2]
	d[3], d[12] = d[12], d[3]
	d[6], d[9] = d[9], d[6]
	d[7], d[13] = d[13], d[7]
	d[11], d[14] = d[14], d[11]
	return mt
}

// minors2x2 returns the twelve 2x2 determinants from which both the
// determinant and the adjugate of mt are assembled: s from rows 0-1, c
// from rows 2-3.
func (mt *Mat4) minors2x2() (s, c [6]float64) {
	d := &mt.Data
	a00, a01, a02, a03 := d[0], d[4], d[8], d[12]
	a10, a11, a12, a13 := d[1], d[5], d[9], d[13]
	a20, a21, a22, a23 := d[2], d[6], d[10], d[14]
	a30, a31, a32, a33 := d[3], d[7], d[11], d[15]

	s[0] = a00*a11 - a10*a01
	s[1] = a00*a12 - a10*a02
	s[2] = a00*a13 - a10*a03
	s[3] = a01*a12 - a11*a02
	s[4] = a01*a13 - a11*a03
	s[5] = a02*a13 - a12*a03

	c[5] = a22*a33 - a32*a23
	c[4] = a21*a33 - a31*a23
	c[3] = a21*a32 - a31*a22
	c[2] = a20*a33 - a30*a23
	c[1] = a20*a32 - a30*a22
	c[0] = a20*a31 - a30*a21
	return s, c
}

// Determinant returns det(mt) by Laplace expansion over 2x2 minors.
func (mt *Mat4) Determinant() float64 {
	s, c := mt.minors2x2()
	return s[0]*c[5] - s[1]*c[4] + s[2]*c[3] + s[3]*c[2] - s[4]*c[1] + s[5]*c[0]
}

/**
 * @brief Inverts the matrix in place. A singular matrix (zero determinant)
 * is reset to the identity instead of filling with Inf/NaN.
 *
 * @return mt, for chaining.
 */
func (mt *Mat4) Invert() *Mat4 {
	s, c := mt.minors2x2()
	det := s[0]*c[5] - s[1]*c[4] + s[2]*c[3] + s[3]*c[2] - s[4]*c[1] + s[5]*c[0]
	if det == 0 {
		return mt.Identity()
	}
	inv := 1.0 / det

	d := &mt.Data
	a00, a01, a02, a03 := d[0], d[4], d[8], d[12]
	a10, a11, a12, a13 := d[1], d[5], d[9], d[13]
	a20, a21, a22, a23 := d[2], d[6], d[10], d[14]
	a30, a31, a32, a33 := d[3], d[7], d[11], d[15]

	return mt.Set(
		(a11*c[5]-a12*c[4]+a13*c[3])*inv,
		(-a01*c[5]+a02*c[4]-a03*c[3])*inv,
		(a31*s[5]-a32*s[4]+a33*s[3])*inv,
		(-a21*s[5]+a22*s[4]-a23*s[3])*inv,

		(-a10*c[5]+a12*c[2]-a13*c[1])*inv,
		(a00*c[5]-a02*c[2]+a03*c[1])*inv,
		(-a30*s[5]+a32*s[2]-a33*s[1])*inv,
		(a20*s[5]-a22*s[2]+a23*s[1])*inv,

		(a10*c[4]-a11*c[2]+a13*c[0])*inv,
		(-a00*c[4]+a01*c[2]-a03*c[0])*inv,
		(a30*s[4]-a31*s[2]+a33*s[0])*inv,
		(-a20*s[4]+a21*s[2]-a23*s[0])*inv,

		(-a10*c[3]+a11*c[1]-a12*c[0])*inv,
		(a00*c[3]-a01*c[1]+a02*c[0])*inv,
		(-a30*s[3]+a31*s[1]-a32*s[0])*inv,
		(a20*s[3]-a21*s[1]+a22*s[0])*inv)
}

// SetPosition overwrites the translation column.
func (mt *Mat4) SetPosition(position Vec3) *Mat4 {
	mt.Data[12] = position.X
	mt.Data[13] = position.Y
	mt.Data[14] = position.Z
	return mt
}

// Position returns the translation column.
func (mt *Mat4) Position() Vec3 {
	return Vec3{mt.Data[12], mt.Data[13], mt.Data[14]}
}

// Scale post-multiplies mt by diag(v): column i of the linear block is
// multiplied by v[i].
func (mt *Mat4) Scale(v Vec3) *Mat4 {
	d := &mt.Data
	for i := 0; i < 4; i++ {
		d[i] *= v.X
		d[4+i] *= v.Y
		d[8+i] *= v.Z
	}
	return mt
}

// MaxScaleOnAxis returns the largest column length of the linear block.
func (mt *Mat4) MaxScaleOnAxis() float64 {
	sx, sy, sz := mt.columnLengths()
	best := sx
	if sy > best {
		best = sy
	}
	if sz > best {
		best = sz
	}
	return best
}

func (mt *Mat4) columnLengths() (float64, float64, float64) {
	d := &mt.Data
	sx := Vec3{d[0], d[1], d[2]}.Length()
	sy := Vec3{d[4], d[5], d[6]}.Length()
	sz := Vec3{d[8], d[9], d[10]}.Length()
	return sx, sy, sz
}

// MakeTranslation sets mt to a pure translation.
func (mt *Mat4) MakeTranslation(position Vec3) *Mat4 {
	return mt.Identity().SetPosition(position)
}

// MakeScale sets mt to diag(scale, 1).
func (mt *Mat4) MakeScale(scale Vec3) *Mat4 {
	mt.Identity()
	mt.Data[0] = scale.X
	mt.Data[5] = scale.Y
	mt.Data[10] = scale.Z
	return mt
}

// MakeRotationX sets mt to a rotation of angle_radians about +X.
func (mt *Mat4) MakeRotationX(angle_radians float64) *Mat4 {
	c := kcos(angle_radians)
	s := ksin(angle_radians)
	mt.Identity()
	mt.Data[5] = c
	mt.Data[6] = s
	mt.Data[9] = -s
	mt.Data[10] = c
	return mt
}

// MakeRotationY sets mt to a rotation of angle_radians about +Y.
func (mt *Mat4) MakeRotationY(angle_radians float64) *Mat4 {
	c := kcos(angle_radians)
	s := ksin(angle_radians)
	mt.Identity()
	mt.Data[0] = c
	mt.Data[2] = -s
	mt.Data[8] = s
	mt.Data[10] = c
	return mt
}

// MakeRotationZ sets mt to a rotation of angle_radians about +Z.
func (mt *Mat4) MakeRotationZ(angle_radians float64) *Mat4 {
	c := kcos(angle_radians)
	s := ksin(angle_radians)
	mt.Identity()
	mt.Data[0] = c
	mt.Data[1] = s
	mt.Data[4] = -s
	mt.Data[5] = c
	return mt
}

// MakeRotationAxis sets mt to a rotation of angle radians about the unit axis.
func (mt *Mat4) MakeRotationAxis(axis Vec3, angle float64) *Mat4 {
	q := Quaternion{}
	q.SetFromAxisAngle(axis, angle)
	return mt.MakeRotationFromQuaternion(q)
}

// MakeRotationFromEuler sets mt to the rotation described by e.
func (mt *Mat4) MakeRotationFromEuler(e Euler) *Mat4 {
	return mt.MakeRotationFromQuaternion(NewQuatFromEuler(e))
}

// MakeRotationFromQuaternion sets mt to the rotation of q with no
// translation. q is used as is.
func (mt *Mat4) MakeRotationFromQuaternion(q Quaternion) *Mat4 {
	return mt.Compose(NewVec3Zero(), q, NewVec3One())
}

// ExtractRotation copies the linear block of m into mt with each column
// scaled to unit length. Handedness is not corrected.
func (mt *Mat4) ExtractRotation(m *Mat4) *Mat4 {
	sx, sy, sz := m.columnLengths()
	src := m.Data
	mt.Identity()
	for i := 0; i < 3; i++ {
		if sx != 0 {
			mt.Data[i] = src[i] / sx
		}
		if sy != 0 {
			mt.Data[4+i] = src[4+i] / sy
		}
		if sz != 0 {
			mt.Data[8+i] = src[8+i] / sz
		}
	}
	return mt
}

/**
 * @brief Sets mt to T·R·S: the rotation block of the quaternion, with each
 * column i scaled by scale[i], position in the translation column and
 * (0, 0, 0, 1) as the bottom row. Nothing is validated or normalized; a
 * non-unit quaternion produces a non-rigid matrix.
 *
 * @param position The translation.
 * @param rotation The rotation, expected to be unit length.
 * @param scale The per-axis scale; zero and negative values are kept as is.
 * @return mt, for chaining.
 */
func (mt *Mat4) Compose(position Vec3, rotation Quaternion, scale Vec3) *Mat4 {
	d := &mt.Data
	x, y, z, w := rotation.X, rotation.Y, rotation.Z, rotation.W
	x2, y2, z2 := x+x, y+y, z+z
	xx, xy, xz := x*x2, x*y2, x*z2
	yy, yz, zz := y*y2, y*z2, z*z2
	wx, wy, wz := w*x2, w*y2, w*z2

	sx, sy, sz := scale.X, scale.Y, scale.Z

	d[0] = (1 - (yy + zz)) * sx
	d[1] = (xy + wz) * sx
	d[2] = (xz - wy) * sx
	d[3] = 0

	d[4] = (xy - wz) * sy
	d[5] = (1 - (xx + zz)) * sy
	d[6] = (yz + wx) * sy
	d[7] = 0

	d[8] = (xz + wy) * sz
	d[9] = (yz - wx) * sz
	d[10] = (1 - (xx + yy)) * sz
	d[11] = 0

	d[12] = position.X
	d[13] = position.Y
	d[14] = position.Z
	d[15] = 1

	return mt
}

// Decompose splits mt into position, rotation and scale such that
// Compose(Decompose(mt)) reproduces mt. See DecomposeInto.
func (mt *Mat4) Decompose() (Vec3, Quaternion, Vec3) {
	var position, scale Vec3
	var rotation Quaternion
	mt.DecomposeInto(&position, &rotation, &scale)
	return position, rotation, scale
}

/**
 * @brief Recovers the translation, rotation and signed scale of a matrix
 * of the form [R·diag(s) | t; 0 0 0 1].
 *
 * The translation column is copied as is. The column lengths give the scale
 * magnitudes; if any of them is (numerically) zero the rotation cannot be
 * recovered, so the scale is zero and the rotation the identity. Otherwise
 * the columns are normalized and, when their triple product is negative
 * (a mirror), the axis with the largest magnitude absorbs the sign flip
 * (lowest index on ties). The resulting proper rotation is converted to a
 * quaternion with w >= 0.
 *
 * The out parameters may not alias each other; all scratch state lives on
 * the stack, so concurrent calls on distinct matrices are safe.
 *
 * @param position Receives the translation.
 * @param rotation Receives the unit rotation, canonicalized to w >= 0.
 * @param scale Receives the signed per-axis scale.
 */
func (mt *Mat4) DecomposeInto(position *Vec3, rotation *Quaternion, scale *Vec3) {
	d := &mt.Data

	position.Set(d[12], d[13], d[14])

	ax := Vec3{d[0], d[1], d[2]}
	ay := Vec3{d[4], d[5], d[6]}
	az := Vec3{d[8], d[9], d[10]}
	sx, sy, sz := ax.Length(), ay.Length(), az.Length()

	if sx <= DecomposeScaleEpsilon || sy <= DecomposeScaleEpsilon || sz <= DecomposeScaleEpsilon {
		scale.Set(0, 0, 0)
		rotation.Identity()
		return
	}

	ax.DivScalar(sx)
	ay.DivScalar(sy)
	az.DivScalar(sz)

	if Vec3Cross(ax, ay).Dot(az) < -DecomposeHandednessEpsilon {
		switch argMax3(sx, sy, sz) {
		case 0:
			sx = -sx
			ax.Negate()
		case 1:
			sy = -sy
			ay.Negate()
		default:
			sz = -sz
			az.Negate()
		}
	}

	rotation.setFromRotation(
		ax.X, ay.X, az.X,
		ax.Y, ay.Y, az.Y,
		ax.Z, ay.Z, az.Z)
	if rotation.W < 0 {
		rotation.Negate()
	}

	scale.Set(sx, sy, sz)
}

/**
 * @brief Returns a forward vector relative to the provided matrix.
 *
 * @return A 3-component directional vector.
 */
func (mt *Mat4) Forward() Vec3 {
	forward := Vec3{-mt.Data[8], -mt.Data[9], -mt.Data[10]}
	forward.Normalize()
	return forward
}

/**
 * @brief Returns a backward vector relative to the provided matrix.
 *
 * @return A 3-component directional vector.
 */
func (mt *Mat4) Backward() Vec3 {
	backward := Vec3{mt.Data[8], mt.Data[9], mt.Data[10]}
	backward.Normalize()
	return backward
}

/**
 * @brief Returns a upward vector relative to the provided matrix.
 *
 * @return A 3-component directional vector.
 */
func (mt *Mat4) Up() Vec3 {
	up := Vec3{mt.Data[4], mt.Data[5], mt.Data[6]}
	up.Normalize()
	return up
}

/**
 * @brief Returns a downward vector relative to the provided matrix.
 *
 * @return A 3-component directional vector.
 */
func (mt *Mat4) Down() Vec3 {
	down := Vec3{-mt.Data[4], -mt.Data[5], -mt.Data[6]}
	down.Normalize()
	return down
}

/**
 * @brief Returns a left vector relative to the provided matrix.
 *
 * @return A 3-component directional vector.
 */
func (mt *Mat4) Left() Vec3 {
	left := Vec3{-mt.Data[0], -mt.Data[1], -mt.Data[2]}
	left.Normalize()
	return left
}

/**
 * @brief Returns a right vector relative to the provided matrix.
 *
 * @return A 3-component directional vector.
 */
func (mt *Mat4) Right() Vec3 {
	right := Vec3{mt.Data[0], mt.Data[1], mt.Data[2]}
	right.Normalize()
	return right
}

// Equals compares element by element.
func (mt *Mat4) Equals(other *Mat4, tolerance float64) bool {
	for i := range mt.Data {
		if kabs(mt.Data[i]-other.Data[i]) > tolerance {
			return false
		}
	}
	return true
}
