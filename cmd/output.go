package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spaghettifunk/affine/engine/math"
)

const (
	formatText = "text"
	formatTOML = "toml"
)

// clean maps values within epsilon of zero, including -0, to zero.
func clean(v, epsilon float64) float64 {
	if math.FloatEquals(v, 0, epsilon) {
		return 0
	}
	return v
}

func formatFloats(values []float64, epsilon float64) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = fmt.Sprintf("%.6f", clean(v, epsilon))
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

func printMatrix(w io.Writer, label string, m *math.Mat4, epsilon float64) {
	rows := m.ToRowMajorArray(nil, 0)
	for r := 0; r < 4; r++ {
		if r == 0 {
			fmt.Fprintf(w, "%-10s", label)
		} else {
			fmt.Fprintf(w, "%-10s", "")
		}
		fmt.Fprint(w, "[")
		for c := 0; c < 4; c++ {
			fmt.Fprintf(w, " %12.6f", clean(rows[r*4+c], epsilon))
		}
		fmt.Fprintln(w, " ]")
	}
}

// printTRS writes position, rotation (quaternion and axis-angle) and scale.
func printTRS(w io.Writer, position math.Vec3, rotation math.Quaternion, scale math.Vec3, epsilon float64) {
	axis, angle := rotation.ToAxisAngle()
	fmt.Fprintf(w, "%-10s%s\n", "position", formatFloats(position.ToArray(nil, 0), epsilon))
	fmt.Fprintf(w, "%-10s%s\n", "rotation", formatFloats(rotation.ToArray(nil, 0), epsilon))
	fmt.Fprintf(w, "%-10s%s %.6f°\n", "axis", formatFloats(axis.ToArray(nil, 0), epsilon), clean(math.RadToDeg(angle), epsilon))
	fmt.Fprintf(w, "%-10s%s\n", "scale", formatFloats(scale.ToArray(nil, 0), epsilon))
}

func printDeterminant(w io.Writer, det, epsilon float64) {
	fmt.Fprintf(w, "%-10s%.6f\n", "det", clean(det, epsilon))
	fmt.Fprintf(w, "%-10s%t\n", "mirrored", det < 0)
}
