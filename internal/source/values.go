package source

import (
	"encoding/json"
	"errors"
	"fmt"

	"scene-converter/internal/common"
)

// Vec3 is a three-component value: a colour, a position, a scale or a
// rotation in degrees.
type Vec3 [3]float64

// Uniform returns a Vec3 with every component set to v.
func Uniform(v float64) Vec3 {
	return Vec3(common.Broadcast3(v))
}

// UnmarshalJSON accepts either a bare number, broadcast to all components,
// or an array of exactly three numbers.
func (v *Vec3) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	switch val := raw.(type) {
	case float64:
		*v = Uniform(val)

		return nil

	case []any:
		if len(val) != 3 {
			return fmt.Errorf("expected 3 components, got %d", len(val))
		}

		var out Vec3

		for i, c := range val {
			f, ok := c.(float64)
			if !ok {
				return fmt.Errorf("component %d: expected a number, got %s", i, kindOf(c))
			}

			out[i] = f
		}

		*v = out

		return nil

	default:
		return fmt.Errorf("expected a number or an array of 3 numbers, got %s", kindOf(raw))
	}
}

// Albedo is either a uniform/per-channel colour or the path of a texture.
type Albedo struct {
	// IsTexture is set when the albedo was given as a string.
	IsTexture bool
	// Texture is the texture path; meaningful only when IsTexture is set.
	Texture string
	// Color is the colour; meaningful only when IsTexture is not set.
	Color Vec3
}

// UnmarshalJSON accepts a string (texture path), a number or a 3-array.
func (a *Albedo) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	if path, ok := raw.(string); ok {
		*a = Albedo{IsTexture: true, Texture: path}
		return nil
	}

	var c Vec3
	if err := c.UnmarshalJSON(data); err != nil {
		return fmt.Errorf("albedo: %w", err)
	}

	*a = Albedo{Color: c}

	return nil
}

// BSDFRef is the material reference of a primitive. Primitives either name
// a BSDF declared in the document or embed one inline; inline materials are
// not carried over, so such primitives have no material.
type BSDFRef struct {
	// Name of the referenced BSDF; empty when IsNone.
	Name string
	// Inline is set when the reference was an embedded object or null.
	Inline bool
}

// IsNone reports whether the primitive carries no named material.
func (r BSDFRef) IsNone() bool {
	return r.Inline
}

// UnmarshalJSON accepts a string name, an object or null.
func (r *BSDFRef) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	switch val := raw.(type) {
	case string:
		*r = BSDFRef{Name: val}
	case map[string]any, nil:
		*r = BSDFRef{Inline: true}
	default:
		return errors.New("bsdf: expected a material name or an inline object, got " + kindOf(raw))
	}

	return nil
}

func kindOf(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case bool:
		return "boolean"
	case float64:
		return "number"
	case string:
		return "string"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	default:
		return common.UnknownStr
	}
}
