package cmd

import (
	"fmt"
	"io"

	"github.com/pelletier/go-toml/v2"
	"github.com/spaghettifunk/affine/engine/math"
	"github.com/spaghettifunk/affine/engine/resources"
	"github.com/spf13/cobra"
)

type matrixOutput struct {
	Matrix      []float64 `toml:"matrix"`
	Determinant float64   `toml:"determinant"`
	Mirrored    bool      `toml:"mirrored"`
}

func newComposeCmd(opts *options) *cobra.Command {
	composeCmd := &cobra.Command{
		Use:   "compose",
		Short: "Build a matrix from position, rotation and scale",
		Long: `Composes T·R·S and prints the matrix row by row, with its determinant.
The rotation is a quaternion (--rotation x,y,z,w), an axis and angle
(--axis x,y,z --angle degrees) or Euler angles (--euler x,y,z --order XYZ).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			entry, err := composeEntry(cmd)
			if err != nil {
				return err
			}
			doc := &resources.Document{Transforms: []resources.TransformEntry{entry}}
			if err := doc.Validate(); err != nil {
				return err
			}
			t := doc.Transforms[0].Transform()
			m := t.Local()
			return writeMatrix(cmd.OutOrStdout(), opts, &m)
		},
	}

	composeCmd.Flags().Float64Slice("position", []float64{0, 0, 0}, "translation x,y,z")
	composeCmd.Flags().Float64Slice("rotation", nil, "rotation quaternion x,y,z,w (normalized)")
	composeCmd.Flags().Float64Slice("axis", nil, "rotation axis x,y,z (normalized)")
	composeCmd.Flags().Float64("angle", 0, "rotation angle about --axis, in degrees")
	composeCmd.Flags().Float64Slice("euler", nil, "rotation as Euler angles x,y,z in degrees")
	composeCmd.Flags().String("order", "", "Euler order (XYZ, YXZ, ZXY, ZYX, YZX, XZY)")
	composeCmd.Flags().Float64Slice("scale", []float64{1, 1, 1}, "scale x,y,z; negative values mirror")
	composeCmd.MarkFlagsMutuallyExclusive("rotation", "axis", "euler")

	return composeCmd
}

// composeEntry maps the compose flags onto a document entry so they are
// validated and interpreted exactly like a document.
func composeEntry(cmd *cobra.Command) (resources.TransformEntry, error) {
	flags := cmd.Flags()
	entry := resources.TransformEntry{Name: "compose"}

	var err error
	if entry.Position, err = flags.GetFloat64Slice("position"); err != nil {
		return entry, err
	}
	if entry.Scale, err = flags.GetFloat64Slice("scale"); err != nil {
		return entry, err
	}
	if flags.Changed("rotation") {
		if entry.Rotation, err = flags.GetFloat64Slice("rotation"); err != nil {
			return entry, err
		}
	}
	if flags.Changed("axis") || flags.Changed("angle") {
		if entry.Axis, err = flags.GetFloat64Slice("axis"); err != nil {
			return entry, err
		}
		angle, err := flags.GetFloat64("angle")
		if err != nil {
			return entry, err
		}
		entry.AngleDegrees = &angle
	}
	if flags.Changed("euler") || flags.Changed("order") {
		if entry.EulerDegrees, err = flags.GetFloat64Slice("euler"); err != nil {
			return entry, err
		}
		if entry.EulerOrder, err = flags.GetString("order"); err != nil {
			return entry, err
		}
	}
	return entry, nil
}

func writeMatrix(w io.Writer, opts *options, m *math.Mat4) error {
	det := m.Determinant()
	if opts.format() == formatTOML {
		rows := cleanAll(m.ToRowMajorArray(nil, 0), opts.epsilon())
		data, err := toml.Marshal(matrixOutput{
			Matrix:      rows,
			Determinant: clean(det, opts.epsilon()),
			Mirrored:    det < 0,
		})
		if err != nil {
			return fmt.Errorf("encode matrix: %w", err)
		}
		_, err = w.Write(data)
		return err
	}

	printMatrix(w, "matrix", m, opts.epsilon())
	printDeterminant(w, det, opts.epsilon())
	return nil
}
