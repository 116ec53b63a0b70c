package resources

import (
	"github.com/pelletier/go-toml/v2"
	"github.com/spaghettifunk/affine/engine/math"
)

type reportRecord struct {
	ID          string    `toml:"id"`
	Name        string    `toml:"name"`
	Parent      string    `toml:"parent,omitempty"`
	Local       []float64 `toml:"local"`
	World       []float64 `toml:"world"`
	Position    []float64 `toml:"position"`
	Rotation    []float64 `toml:"rotation"`
	Scale       []float64 `toml:"scale"`
	Determinant float64   `toml:"determinant"`
	Mirrored    bool      `toml:"mirrored"`
}

type reportFile struct {
	Transforms []reportRecord `toml:"transform"`
}

// snap replaces values within epsilon of zero by zero.
func snap(values []float64, epsilon float64) []float64 {
	for i, v := range values {
		if math.FloatEquals(v, 0, epsilon) {
			values[i] = 0
		}
	}
	return values
}

// EncodeReport writes rows as TOML, matrices row-major. Values within
// epsilon of zero are written as zero.
func EncodeReport(rows []ReportRow, epsilon float64) ([]byte, error) {
	file := reportFile{Transforms: make([]reportRecord, 0, len(rows))}
	for i := range rows {
		row := &rows[i]
		file.Transforms = append(file.Transforms, reportRecord{
			ID:          row.ID,
			Name:        row.Name,
			Parent:      row.Parent,
			Local:       snap(row.Local.ToRowMajorArray(nil, 0), epsilon),
			World:       snap(row.World.ToRowMajorArray(nil, 0), epsilon),
			Position:    snap(row.Position.ToArray(nil, 0), epsilon),
			Rotation:    snap(row.Rotation.ToArray(nil, 0), epsilon),
			Scale:       snap(row.Scale.ToArray(nil, 0), epsilon),
			Determinant: snap([]float64{row.Determinant}, epsilon)[0],
			Mirrored:    row.Mirrored,
		})
	}
	return toml.Marshal(file)
}
