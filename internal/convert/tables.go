package convert

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"

	"scene-converter/internal/common"
	"scene-converter/internal/suggest"
)

var (
	// ErrUnknownMaterialType is matched by errors for BSDF types missing from the material table.
	ErrUnknownMaterialType = errors.New("unknown material type")
	// ErrUnknownTonemap is matched by errors for tone-mapping operators missing from the tonemap table.
	ErrUnknownTonemap = errors.New("unknown tonemap")
)

// MaterialType is the engine material model code.
type MaterialType int

const (
	MaterialMatte MaterialType = iota
	MaterialPlastic
	MaterialMetal
	MaterialMirror
	MaterialGlass
	MaterialSubstrate
	MaterialDisney
)

// String returns the engine model name.
func (t MaterialType) String() string {
	switch t {
	case MaterialMatte:
		return "matte"
	case MaterialPlastic:
		return "plastic"
	case MaterialMetal:
		return "metal"
	case MaterialMirror:
		return "mirror"
	case MaterialGlass:
		return "glass"
	case MaterialSubstrate:
		return "substrate"
	case MaterialDisney:
		return "disney"
	default:
		return common.UnknownStr
	}
}

// materialTypes maps source BSDF types to engine models.
var materialTypes = map[string]MaterialType{
	"lambert":          MaterialMatte,
	"oren_nayar":       MaterialMatte,
	"thinsheet":        MaterialMatte,
	"null":             MaterialMatte,
	"rough_conductor":  MaterialMetal,
	"mirror":           MaterialMirror,
	"dielectric":       MaterialGlass,
	"rough_dielectric": MaterialGlass,
	"transparency":     MaterialGlass,
	"plastic":          MaterialSubstrate,
	"rough_plastic":    MaterialSubstrate,
}

// LookupMaterialType resolves a source BSDF type.
func LookupMaterialType(name string) (MaterialType, error) {
	t, ok := materialTypes[name]
	if !ok {
		return 0, unknownName(ErrUnknownMaterialType, name, materialTypes)
	}

	return t, nil
}

// Tonemap is the engine tone-mapping operator code.
type Tonemap int

const (
	TonemapGamma Tonemap = iota
	TonemapFilmic
	TonemapReinhard
	TonemapLinear
)

// String returns the operator name.
func (t Tonemap) String() string {
	switch t {
	case TonemapGamma:
		return "gamma"
	case TonemapFilmic:
		return "filmic"
	case TonemapReinhard:
		return "reinhard"
	case TonemapLinear:
		return "linear"
	default:
		return common.UnknownStr
	}
}

var tonemaps = map[string]Tonemap{
	"gamma":    TonemapGamma,
	"filmic":   TonemapFilmic,
	"reinhard": TonemapReinhard,
	"linear":   TonemapLinear,
}

// LookupTonemap resolves a tone-mapping operator name.
func LookupTonemap(name string) (Tonemap, error) {
	t, ok := tonemaps[name]
	if !ok {
		return 0, unknownName(ErrUnknownTonemap, name, tonemaps)
	}

	return t, nil
}

// unknownName reports a name missing from table, with the closest known
// name when one is similar enough.
func unknownName[V any](sentinel error, name string, table map[string]V) error {
	known := slices.Sorted(maps.Keys(table))

	return fmt.Errorf("%w %q%s (known: %s)", sentinel, name, suggest.Hint(name, known), strings.Join(known, ", "))
}
