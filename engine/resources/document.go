package resources

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
	"github.com/spaghettifunk/affine/engine/core"
	"github.com/spaghettifunk/affine/engine/math"
)

// LoadDocument reads and validates the transform document at path.
func LoadDocument(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	doc, err := ParseDocument(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	doc.Path = path
	return doc, nil
}

// ParseDocument decodes a TOML transform document and validates it. Unknown
// keys are rejected.
func ParseDocument(data []byte) (*Document, error) {
	doc := &Document{}
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(doc); err != nil {
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			row, col := derr.Position()
			return nil, fmt.Errorf("%w: line %d column %d: %s", core.ErrInvalidDocument, row, col, derr.Error())
		}
		var serr *toml.StrictMissingError
		if errors.As(err, &serr) {
			return nil, fmt.Errorf("%w: unknown keys:\n%s", core.ErrInvalidDocument, serr.String())
		}
		return nil, fmt.Errorf("%w: %s", core.ErrInvalidDocument, err.Error())
	}
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	return doc, nil
}

// Encode writes the document back as TOML.
func (d *Document) Encode() ([]byte, error) {
	return toml.Marshal(d)
}

// Entry returns the entry called name.
func (d *Document) Entry(name string) (*TransformEntry, error) {
	for i := range d.Transforms {
		if d.Transforms[i].Name == name {
			return &d.Transforms[i], nil
		}
	}
	return nil, fmt.Errorf("%w: '%s'", core.ErrUnknownTransform, name)
}

// Add appends an entry holding the position, rotation and scale of t.
func (d *Document) Add(name string, t *math.Transform, parent string) *TransformEntry {
	p, r, s := t.Position(), t.Rotation(), t.Scale()
	d.Transforms = append(d.Transforms, TransformEntry{
		ID:       core.IdentifierAquireNewID(),
		Name:     name,
		Position: p.ToArray(nil, 0),
		Rotation: r.ToArray(nil, 0),
		Scale:    s.ToArray(nil, 0),
		Parent:   parent,
	})
	return &d.Transforms[len(d.Transforms)-1]
}

func invalid(entry *TransformEntry, format string, args ...interface{}) error {
	return fmt.Errorf("%w: transform '%s': %s", core.ErrInvalidDocument, entry.Name, fmt.Sprintf(format, args...))
}

/**
 * @brief Checks every entry and the parent links. Missing ids are assigned
 * and present ids rewritten in canonical form.
 *
 * @return An error wrapping core.ErrInvalidDocument on the first problem found.
 */
func (d *Document) Validate() error {
	names := make(map[string]int, len(d.Transforms))
	ids := make(map[string]string, len(d.Transforms))

	for i := range d.Transforms {
		entry := &d.Transforms[i]
		if entry.Name == "" {
			return fmt.Errorf("%w: transform #%d has no name", core.ErrInvalidDocument, i+1)
		}
		if _, exists := names[entry.Name]; exists {
			return invalid(entry, "duplicate name")
		}
		names[entry.Name] = i

		if entry.ID == "" {
			entry.ID = core.IdentifierAquireNewID()
			core.LogDebug("transform '%s' assigned id %s", entry.Name, entry.ID)
		} else {
			id, err := core.IdentifierParse(entry.ID)
			if err != nil {
				return invalid(entry, "%s", err.Error())
			}
			entry.ID = id
		}
		if other, exists := ids[entry.ID]; exists {
			return invalid(entry, "id %s already used by '%s'", entry.ID, other)
		}
		ids[entry.ID] = entry.Name

		if err := entry.validateFields(); err != nil {
			return err
		}
	}

	for i := range d.Transforms {
		entry := &d.Transforms[i]
		if entry.Parent == "" {
			continue
		}
		if _, exists := names[entry.Parent]; !exists {
			return invalid(entry, "unknown parent '%s'", entry.Parent)
		}
		// Walk up at most len(d.Transforms) steps; more means a loop.
		current := entry
		for steps := 0; current.Parent != ""; steps++ {
			if steps == len(d.Transforms) {
				return invalid(entry, "parent cycle")
			}
			current = &d.Transforms[names[current.Parent]]
		}
	}
	return nil
}

func (e *TransformEntry) validateFields() error {
	lengths := []struct {
		field  string
		values []float64
		want   int
	}{
		{"position", e.Position, 3},
		{"rotation", e.Rotation, 4},
		{"axis", e.Axis, 3},
		{"euler_degrees", e.EulerDegrees, 3},
		{"scale", e.Scale, 3},
		{"matrix", e.Matrix, MatrixElementCount},
	}
	for _, l := range lengths {
		if l.values != nil && len(l.values) != l.want {
			return invalid(e, "%s needs %d values, got %d", l.field, l.want, len(l.values))
		}
	}

	if e.Matrix != nil {
		if e.Position != nil || e.hasRotation() || e.Scale != nil {
			return invalid(e, "matrix cannot be combined with position, rotation or scale")
		}
		return nil
	}

	specified := 0
	if e.Rotation != nil {
		specified++
	}
	if e.Axis != nil || e.AngleDegrees != nil {
		if e.Axis == nil || e.AngleDegrees == nil {
			return invalid(e, "axis and angle_degrees go together")
		}
		specified++
	}
	if e.EulerDegrees != nil {
		specified++
	}
	if specified > 1 {
		return invalid(e, "rotation given more than once")
	}
	if e.EulerOrder != "" {
		if e.EulerDegrees == nil {
			return invalid(e, "euler_order without euler_degrees")
		}
		if _, err := math.ParseEulerOrder(e.EulerOrder); err != nil {
			return invalid(e, "%s", err.Error())
		}
	}
	return nil
}

func (e *TransformEntry) hasRotation() bool {
	return e.Rotation != nil || e.Axis != nil || e.AngleDegrees != nil || e.EulerDegrees != nil || e.EulerOrder != ""
}
