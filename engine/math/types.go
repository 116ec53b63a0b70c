package math

// Vec3 represents a 3D vector
type Vec3 struct {
	X, Y, Z float64
}

// Vec4 represents a 4D vector, typically a homogeneous point.
type Vec4 struct {
	X, Y, Z, W float64
}

/**
 * @brief A quaternion, used to represent rotational orientation.
 * When normalized, (X, Y, Z, W) = (sin(θ/2)·axis, cos(θ/2)).
 * q and -q represent the same rotation.
 */
type Quaternion Vec4

/**
 * @brief A 3x3 matrix, used for linear maps such as the normal matrix.
 * Elements are stored column-major: row r, column c lives at Data[c*3+r].
 */
type Mat3 struct {
	/** @brief The matrix elements */
	Data [9]float64
}

/**
 * @brief a 4x4 matrix, typically used to represent object transformations.
 * Elements are stored column-major: row r, column c lives at Data[c*4+r],
 * so the translation occupies Data[12], Data[13] and Data[14].
 */
type Mat4 struct {
	/** @brief The matrix elements */
	Data [16]float64
}

// EulerOrder is the order in which the three axis rotations of an Euler
// triple are applied. XYZ means the matrix Rx·Ry·Rz.
type EulerOrder uint8

const (
	EulerOrderXYZ EulerOrder = iota
	EulerOrderYXZ
	EulerOrderZXY
	EulerOrderZYX
	EulerOrderYZX
	EulerOrderXZY
)

// Euler holds three intrinsic rotation angles in radians.
type Euler struct {
	X, Y, Z float64
	Order   EulerOrder
}

// ChangeFunc is invoked after a Transform has been mutated.
type ChangeFunc func(t *Transform)

/**
 * @brief Represents the transform of an object in the world.
 * Transforms can have a parent whose own transform is then
 * taken into account. The position, rotation and scale are only
 * reachable through methods so that every mutation marks the
 * local matrix dirty and notifies the subscriber.
 */
type Transform struct {
	/** @brief The position in the world. */
	position Vec3
	/** @brief The rotation in the world. */
	rotation Quaternion
	/** @brief The scale in the world. */
	scale Vec3
	/**
	 * @brief Indicates if the position, rotation or scale have changed,
	 * indicating that the local matrix needs to be recalculated.
	 */
	isDirty bool
	/**
	 * @brief The local transformation matrix, updated whenever
	 * the position, rotation or scale have changed.
	 */
	local Mat4
	/** @brief A pointer to a parent transform if one is assigned. Can also be nil. */
	parent *Transform
	/** @brief Optional subscriber notified after each mutation. */
	onChange ChangeFunc
}
