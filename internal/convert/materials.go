package convert

import (
	"errors"
	"fmt"
	"log/slog"

	"scene-converter/internal/common"
	"scene-converter/internal/diagnostic"
	"scene-converter/internal/source"
	"scene-converter/internal/target"
)

var (
	// specularColor is the fixed specular base colour of every material.
	specularColor = target.Vec3(0.04, 0.04, 0.04)
	// textureBaseColor is the base colour of materials with a texture albedo.
	textureBaseColor = target.Vec3(1, 1, 1)
)

// MapMaterial converts one BSDF into an engine material.
func (c *Converter) MapMaterial(b source.BSDF) (target.Material, error) {
	typ, err := LookupMaterialType(b.Type)
	if err != nil {
		return target.Material{}, &FieldError{
			Field: "type",
			Code:  diagnostic.CodeUnknownMaterialType,
			Err:   fmt.Errorf("material %q: %w", b.Name, err),
		}
	}

	c.logger.Debug("converting material",
		slog.String("name", b.Name),
		slog.String("type", b.Type),
		slog.Int("code", int(typ)),
		slog.String("model", typ.String()))

	var albedoTexture *string

	base := textureBaseColor

	if b.Albedo.IsTexture {
		albedoTexture = &b.Albedo.Texture
	} else {
		base = target.FromArray(b.Albedo.Color)
	}

	return target.Material{
		Type:          int(typ),
		Name:          b.Name,
		AssetPath:     "",
		ShaderName:    c.opts.ShaderName,
		BaseColor:     base,
		Transmission:  base,
		Specular:      specularColor,
		AlbedoTexture: albedoTexture,
		NormalTexture: nil,
		Fresnel:       0,
		RoughnessU:    b.Roughness,
		RoughnessV:    b.Roughness,
		K:             target.FromArray(b.K),
		Eta:           target.FromArray(b.IOR),
		Emission:      target.Vector3{},
		Metal:         b.Metal,
	}, nil
}

// MapMaterials converts BSDFs in order and stops at the first failure. The
// returned *FieldError is located at the failing BSDF.
func (c *Converter) MapMaterials(bsdfs []source.BSDF) ([]target.Material, error) {
	out := make([]target.Material, 0, len(bsdfs))

	for i, b := range bsdfs {
		m, err := c.MapMaterial(b)
		if err != nil {
			var fe *FieldError
			if errors.As(err, &fe) {
				fe.Item = common.Index("bsdfs", i)
			}

			return nil, err
		}

		out = append(out, m)
	}

	return out, nil
}
