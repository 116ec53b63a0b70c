package cmd

import (
	"fmt"

	"github.com/pelletier/go-toml/v2"
	"github.com/spaghettifunk/affine/engine/math"
	"github.com/spaghettifunk/affine/engine/resources"
	"github.com/spf13/cobra"
)

type decomposeOutput struct {
	Position     []float64 `toml:"position"`
	Rotation     []float64 `toml:"rotation"`
	Axis         []float64 `toml:"axis"`
	AngleDegrees float64   `toml:"angle_degrees"`
	Scale        []float64 `toml:"scale"`
	Determinant  float64   `toml:"determinant"`
	Mirrored     bool      `toml:"mirrored"`
}

func newDecomposeCmd(opts *options) *cobra.Command {
	decomposeCmd := &cobra.Command{
		Use:   "decompose",
		Short: "Split a matrix into position, rotation and scale",
		Long: `Decomposes a 4x4 matrix, given row by row with --matrix, into its
translation, unit rotation and signed per-axis scale. A mirroring matrix
(negative determinant) reports exactly one negative scale component.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := cmd.Flags().GetFloat64Slice("matrix")
			if err != nil {
				return err
			}
			if len(values) != resources.MatrixElementCount {
				return fmt.Errorf("--matrix needs %d values, got %d", resources.MatrixElementCount, len(values))
			}

			m := math.NewMat4FromRowMajor(values)
			position, rotation, scale := m.Decompose()
			det := m.Determinant()
			eps := opts.epsilon()

			w := cmd.OutOrStdout()
			if opts.format() == formatTOML {
				axis, angle := rotation.ToAxisAngle()
				data, err := toml.Marshal(decomposeOutput{
					Position:     cleanAll(position.ToArray(nil, 0), eps),
					Rotation:     cleanAll(rotation.ToArray(nil, 0), eps),
					Axis:         cleanAll(axis.ToArray(nil, 0), eps),
					AngleDegrees: clean(math.RadToDeg(angle), eps),
					Scale:        cleanAll(scale.ToArray(nil, 0), eps),
					Determinant:  clean(det, eps),
					Mirrored:     det < 0,
				})
				if err != nil {
					return fmt.Errorf("encode decomposition: %w", err)
				}
				_, err = w.Write(data)
				return err
			}

			printTRS(w, position, rotation, scale, eps)
			printDeterminant(w, det, eps)
			return nil
		},
	}

	decomposeCmd.Flags().Float64Slice("matrix", nil, "16 matrix elements, row by row")
	_ = decomposeCmd.MarkFlagRequired("matrix")

	return decomposeCmd
}

func cleanAll(values []float64, epsilon float64) []float64 {
	for i := range values {
		values[i] = clean(values[i], epsilon)
	}
	return values
}
