package math

import (
	"fmt"
	"strings"
)

var eulerOrderNames = [...]string{
	EulerOrderXYZ: "XYZ",
	EulerOrderYXZ: "YXZ",
	EulerOrderZXY: "ZXY",
	EulerOrderZYX: "ZYX",
	EulerOrderYZX: "YZX",
	EulerOrderXZY: "XZY",
}

func (o EulerOrder) String() string {
	if int(o) < len(eulerOrderNames) {
		return eulerOrderNames[o]
	}
	return fmt.Sprintf("EulerOrder(%d)", uint8(o))
}

// ParseEulerOrder accepts the axis sequence names ("XYZ", "zyx", ...). An
// empty string means XYZ.
func ParseEulerOrder(s string) (EulerOrder, error) {
	if s == "" {
		return EulerOrderXYZ, nil
	}
	upper := strings.ToUpper(s)
	for i, name := range eulerOrderNames {
		if name == upper {
			return EulerOrder(i), nil
		}
	}
	return EulerOrderXYZ, fmt.Errorf("unknown euler order %q", s)
}

// NewEuler returns the angles (radians) with the given order.
func NewEuler(x, y, z float64, order EulerOrder) Euler {
	return Euler{X: x, Y: y, Z: z, Order: order}
}

/**
 * @brief Extracts angles from the upper-left 3x3 block of m, which must be
 * a pure (unscaled) rotation, keeping the receiver's order. At gimbal lock
 * the last rotation of the sequence is folded into the first and set to zero.
 *
 * @param m The rotation matrix.
 * @return e, for chaining.
 */
func (e *Euler) SetFromRotationMatrix(m *Mat4) *Euler {
	d := &m.Data
	m11, m12, m13 := d[0], d[4], d[8]
	m21, m22, m23 := d[1], d[5], d[9]
	m31, m32, m33 := d[2], d[6], d[10]

	switch e.Order {
	case EulerOrderYXZ:
		e.X = kasin(-m23)
		if kabs(m23) < gimbalThreshold {
			e.Y = katan2(m13, m33)
			e.Z = katan2(m21, m22)
		} else {
			e.Y = katan2(-m31, m11)
			e.Z = 0
		}
	case EulerOrderZXY:
		e.X = kasin(m32)
		if kabs(m32) < gimbalThreshold {
			e.Y = katan2(-m31, m33)
			e.Z = katan2(-m12, m22)
		} else {
			e.Y = 0
			e.Z = katan2(m21, m11)
		}
	case EulerOrderZYX:
		e.Y = kasin(-m31)
		if kabs(m31) < gimbalThreshold {
			e.X = katan2(m32, m33)
			e.Z = katan2(m21, m11)
		} else {
			e.X = 0
			e.Z = katan2(-m12, m22)
		}
	case EulerOrderYZX:
		e.Z = kasin(m21)
		if kabs(m21) < gimbalThreshold {
			e.X = katan2(-m23, m22)
			e.Y = katan2(-m31, m11)
		} else {
			e.X = 0
			e.Y = katan2(m13, m33)
		}
	case EulerOrderXZY:
		e.Z = kasin(-m12)
		if kabs(m12) < gimbalThreshold {
			e.X = katan2(m32, m22)
			e.Y = katan2(m13, m11)
		} else {
			e.X = katan2(-m23, m33)
			e.Y = 0
		}
	default:
		e.Y = kasin(m13)
		if kabs(m13) < gimbalThreshold {
			e.X = katan2(-m23, m33)
			e.Z = katan2(-m12, m11)
		} else {
			e.X = katan2(m32, m22)
			e.Z = 0
		}
	}
	return e
}

// SetFromQuaternion extracts angles from the unit quaternion q.
func (e *Euler) SetFromQuaternion(q Quaternion) *Euler {
	m := NewMat4Identity()
	m.MakeRotationFromQuaternion(q)
	return e.SetFromRotationMatrix(&m)
}

// Equals compares the three angles; orders must match exactly.
func (e Euler) Equals(other Euler, tolerance float64) bool {
	return e.Order == other.Order &&
		kabs(e.X-other.X) <= tolerance &&
		kabs(e.Y-other.Y) <= tolerance &&
		kabs(e.Z-other.Z) <= tolerance
}
