package convert

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strconv"
	"unicode/utf8"

	"scene-converter/internal/common"
	"scene-converter/internal/diagnostic"
	"scene-converter/internal/source"
	"scene-converter/internal/target"
	"scene-converter/internal/xform"
)

// NoMaterial is the name token of entities without a material.
const NoMaterial = "None"

// replacedExtLen is the number of trailing characters swapped for the mesh
// extension.
const replacedExtLen = 4

// EntityName returns the synthesized name of the index-th entity.
func EntityName(index int, ref source.BSDFRef) string {
	mat := NoMaterial
	if !ref.IsNone() {
		mat = ref.Name
	}

	return "entity_" + strconv.Itoa(index) + "_" + mat
}

// MeshPath swaps the last four characters of file, its extension, for ext.
func MeshPath(file, ext string) string {
	r := []rune(file)
	if len(r) < replacedExtLen {
		return ext
	}

	return string(r[:len(r)-replacedExtLen]) + ext
}

// MapEntity converts the index-th primitive into an engine entity. Findings
// that do not stop the conversion are added to diags. A mesh primitive with
// an empty file fails with a *FieldError wrapping ErrEmptyMeshFile.
func (c *Converter) MapEntity(p source.Primitive, index int, diags *diagnostic.Diagnostics) (target.Entity, error) {
	item := common.Index("primitives", index)
	tr := p.Transform

	if c.opts.VerifyTransforms {
		c.verifyTransform(tr, item, diags)
	}

	var material *string
	if !p.BSDF.IsNone() {
		name := p.BSDF.Name
		material = &name
	}

	var mesh *string
	if p.IsMesh() {
		if p.File == "" {
			return target.Entity{}, &FieldError{
				Item:  item,
				Field: "file",
				Code:  diagnostic.CodeEmptyMeshFile,
				Err:   ErrEmptyMeshFile,
			}
		}

		if ext := filepath.Ext(p.File); utf8.RuneCountInString(ext) != replacedExtLen {
			diags.AddWarning(diagnostic.CodeMeshExtension,
				fmt.Sprintf("mesh file %q does not end in a %d character extension; the last %d characters are replaced",
					p.File, replacedExtLen, replacedExtLen),
				item, "file")
		}

		path := MeshPath(p.File, c.opts.MeshExtension)
		mesh = &path
	}

	e := target.Entity{
		Name:     EntityName(index, p.BSDF),
		Position: target.FromArray(xform.ToLeftHanded(tr.Position)),
		Scale:    target.FromArray(tr.Scale),
		Rotation: target.FromArray(xform.ToTargetRotation(tr.Rotation)),
		MeshType: p.Type,
		Mesh:     mesh,
		Material: material,
		Emission: target.FromArray(p.Emission),
		Power:    p.Power,
	}

	c.logger.Debug("converting entity", slog.String("item", item), slog.String("name", e.Name), slog.String("type", p.Type))

	return e, nil
}

// MapEntities converts primitives in order and stops at the first failure.
func (c *Converter) MapEntities(primitives []source.Primitive, diags *diagnostic.Diagnostics) ([]target.Entity, error) {
	out := make([]target.Entity, 0, len(primitives))

	for i, p := range primitives {
		e, err := c.MapEntity(p, i, diags)
		if err != nil {
			return nil, err
		}

		out = append(out, e)
	}

	return out, nil
}

// verifyTransform checks that the placement survives composition,
// decomposition and recomposition.
func (c *Converter) verifyTransform(tr source.Transform, item string, diags *diagnostic.Diagnostics) {
	got, ok := xform.RoundTrip(xform.Vec(tr.Scale), xform.Vec(tr.Rotation), xform.Vec(tr.Position),
		float32(c.opts.VerifyTolerance))
	if ok {
		return
	}

	diags.AddWarning(diagnostic.CodeTransformRoundTrip,
		fmt.Sprintf("transform does not round-trip within %g: decomposed to scale %v rotation %v position %v",
			c.opts.VerifyTolerance, got.Scale, got.Rotation, got.Position),
		item, "transform")
}
