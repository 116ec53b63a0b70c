package resources

import "github.com/spaghettifunk/affine/engine/math"

/** @brief The number of elements of a matrix entry. */
const MatrixElementCount int = 16

/**
 * @brief A single transform as written in a document. Either matrix is set,
 * or any of the position, rotation and scale fields are. The rotation may be
 * given as a quaternion, as an axis with an angle, or as Euler angles; at
 * most one of the three.
 */
type TransformEntry struct {
	/** @brief The document-unique identifier. Assigned on load when missing. */
	ID string `toml:"id,omitempty"`
	/** @brief The document-unique name, used to refer to the entry as a parent. */
	Name string `toml:"name"`
	/** @brief The translation, x y z. */
	Position []float64 `toml:"position,omitempty"`
	/** @brief The rotation quaternion, x y z w. Normalized on build. */
	Rotation []float64 `toml:"rotation,omitempty"`
	/** @brief The rotation axis, x y z. Normalized on build. */
	Axis []float64 `toml:"axis,omitempty"`
	/** @brief The rotation angle about axis, in degrees. */
	AngleDegrees *float64 `toml:"angle_degrees,omitempty"`
	/** @brief The rotation as Euler angles, in degrees. */
	EulerDegrees []float64 `toml:"euler_degrees,omitempty"`
	/** @brief The order of euler_degrees. Defaults to XYZ. */
	EulerOrder string `toml:"euler_order,omitempty"`
	/** @brief The per-axis scale. Negative values mirror. */
	Scale []float64 `toml:"scale,omitempty"`
	/** @brief A full 4x4 matrix listed row by row. */
	Matrix []float64 `toml:"matrix,omitempty"`
	/** @brief The name of the parent entry, if any. */
	Parent string `toml:"parent,omitempty"`
}

/**
 * @brief A transform document: a flat list of named transforms linked by
 * parent names.
 */
type Document struct {
	/** @brief The file the document was loaded from. Empty when parsed from memory. */
	Path string `toml:"-"`
	/** @brief The entries, in document order. */
	Transforms []TransformEntry `toml:"transform"`
}

/**
 * @brief One line of a document report.
 */
type ReportRow struct {
	ID     string
	Name   string
	Parent string
	/** @brief The local T·R·S matrix. */
	Local math.Mat4
	/** @brief The local matrix premultiplied by every ancestor. */
	World math.Mat4
	/** @brief The decomposition of World. */
	Position math.Vec3
	Rotation math.Quaternion
	Scale    math.Vec3
	/** @brief The determinant of World. */
	Determinant float64
	/** @brief True when World flips handedness. */
	Mirrored bool
}
