package resources

import (
	"github.com/spaghettifunk/affine/engine/math"
)

/**
 * @brief Creates the transform described by the entry, without parent. A
 * matrix entry is decomposed; otherwise missing fields default to the
 * identity, and quaternion and axis inputs are normalized.
 *
 * @return A new transform.
 */
func (e *TransformEntry) Transform() *math.Transform {
	if len(e.Matrix) == MatrixElementCount {
		m := math.NewMat4FromRowMajor(e.Matrix)
		return math.TransformFromMatrix(&m)
	}

	position := math.NewVec3Zero()
	if len(e.Position) == 3 {
		position.FromArray(e.Position, 0)
	}

	rotation := math.NewQuatIdentity()
	switch {
	case len(e.Rotation) == 4:
		rotation.FromArray(e.Rotation, 0)
		rotation.Normalize()
	case len(e.Axis) == 3 && e.AngleDegrees != nil:
		axis := math.Vec3{}
		axis.FromArray(e.Axis, 0)
		if axis.LengthSquared() > 0 {
			rotation = math.NewQuatFromAxisAngle(axis.Normalized(), math.DegToRad(*e.AngleDegrees), true)
		}
	case len(e.EulerDegrees) == 3:
		order, _ := math.ParseEulerOrder(e.EulerOrder)
		rotation = math.NewQuatFromEuler(math.NewEuler(
			math.DegToRad(e.EulerDegrees[0]),
			math.DegToRad(e.EulerDegrees[1]),
			math.DegToRad(e.EulerDegrees[2]),
			order))
	}

	scale := math.NewVec3One()
	if len(e.Scale) == 3 {
		scale.FromArray(e.Scale, 0)
	}

	return math.TransformFromPositionRotationScale(position, rotation, scale)
}

/**
 * @brief Validates the document and creates one transform per entry,
 * linked to their parents.
 *
 * @return The transforms keyed by entry name.
 */
func (d *Document) Build() (map[string]*math.Transform, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}

	transforms := make(map[string]*math.Transform, len(d.Transforms))
	for i := range d.Transforms {
		entry := &d.Transforms[i]
		transforms[entry.Name] = entry.Transform()
	}
	for i := range d.Transforms {
		entry := &d.Transforms[i]
		if entry.Parent != "" {
			transforms[entry.Name].SetParent(transforms[entry.Parent])
		}
	}
	return transforms, nil
}

// Report builds the document and describes every transform in document
// order.
func (d *Document) Report() ([]ReportRow, error) {
	transforms, err := d.Build()
	if err != nil {
		return nil, err
	}

	rows := make([]ReportRow, 0, len(d.Transforms))
	for i := range d.Transforms {
		entry := &d.Transforms[i]
		t := transforms[entry.Name]
		row := ReportRow{
			ID:     entry.ID,
			Name:   entry.Name,
			Parent: entry.Parent,
			Local:  t.Local(),
			World:  t.World(),
		}
		row.World.DecomposeInto(&row.Position, &row.Rotation, &row.Scale)
		row.Determinant = row.World.Determinant()
		row.Mirrored = row.Determinant < 0
		rows = append(rows, row)
	}
	return rows, nil
}
