package convert

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scene-converter/internal/config"
	"scene-converter/internal/diagnostic"
	"scene-converter/internal/source"
	"scene-converter/internal/target"
)

func TestMapEntity_Sphere(t *testing.T) {
	c := newConverter(t)
	diags := &diagnostic.Diagnostics{}

	e, err := c.MapEntity(source.Primitive{
		Type: "sphere",
		Transform: source.Transform{
			Position: source.Vec3{1, 2, 3},
			Rotation: source.Vec3{0, 90, 0},
			Scale:    source.Uniform(2),
		},
		BSDF: source.BSDFRef{Name: "wall"},
	}, 0, diags)
	require.NoError(t, err)

	assert.Equal(t, "entity_0_wall", e.Name)
	assert.Equal(t, target.Vec3(1, 2, -3), e.Position)
	assert.Equal(t, target.Vec3(2, 2, 2), e.Scale)
	assert.Equal(t, target.Vec3(0, 270, 0), e.Rotation)
	assert.Equal(t, "sphere", e.MeshType)
	assert.Nil(t, e.Mesh)
	require.NotNil(t, e.Material)
	assert.Equal(t, "wall", *e.Material)
	assert.Equal(t, target.Vector3{}, e.Emission)
	assert.Zero(t, e.Power)
	assert.Empty(t, diags.Warnings)
}

func TestMapEntity_Defaults(t *testing.T) {
	c := newConverter(t)

	e, err := c.MapEntity(source.Primitive{
		Type:      "quad",
		Transform: source.DefaultTransform(),
		BSDF:      source.BSDFRef{Name: "m"},
	}, 3, &diagnostic.Diagnostics{})
	require.NoError(t, err)

	assert.Equal(t, target.Vector3{}, e.Position)
	assert.Equal(t, target.Vec3(1, 1, 1), e.Scale)
	assert.Equal(t, target.Vec3(0, 180, 0), e.Rotation)
	assert.Equal(t, "entity_3_m", e.Name)
}

func TestMapEntity_InlineBSDF(t *testing.T) {
	c := newConverter(t)

	e, err := c.MapEntity(source.Primitive{
		Type:      "sphere",
		Transform: source.DefaultTransform(),
		BSDF:      source.BSDFRef{Inline: true},
		Emission:  source.Uniform(4),
		Power:     10,
	}, 7, &diagnostic.Diagnostics{})
	require.NoError(t, err)

	assert.Nil(t, e.Material)
	assert.Equal(t, "entity_7_None", e.Name)
	assert.Contains(t, e.Name, NoMaterial)
	assert.Equal(t, target.Vec3(4, 4, 4), e.Emission)
	assert.InDelta(t, 10.0, e.Power, 1e-12)
}

func TestMapEntity_Mesh(t *testing.T) {
	tests := []struct {
		name     string
		file     string
		ext      string
		wantMesh string
		wantWarn bool
	}{
		{name: "wo3", file: "models/bunny.wo3", ext: ".obj", wantMesh: "models/bunny.obj"},
		{name: "ply", file: "bunny.ply", ext: ".obj", wantMesh: "bunny.obj"},
		{name: "custom extension", file: "a/b.wo3", ext: ".mesh", wantMesh: "a/b.mesh"},
		{name: "long extension", file: "bunny.json", ext: ".obj", wantMesh: "bunny..obj", wantWarn: true},
		{name: "short extension", file: "bunny.gz", ext: ".obj", wantMesh: "bunn.obj", wantWarn: true},
		{name: "no extension", file: "abc", ext: ".obj", wantMesh: ".obj", wantWarn: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newConverter(t, func(o *config.Options) { o.MeshExtension = tt.ext })
			diags := &diagnostic.Diagnostics{}

			e, err := c.MapEntity(source.Primitive{
				Type:      source.MeshType,
				File:      tt.file,
				Transform: source.DefaultTransform(),
				BSDF:      source.BSDFRef{Inline: true},
			}, 1, diags)
			require.NoError(t, err)

			require.NotNil(t, e.Mesh)
			assert.Equal(t, tt.wantMesh, *e.Mesh)
			assert.Equal(t, "mesh", e.MeshType)

			warns := diags.ByCode(diagnostic.CodeMeshExtension)
			if tt.wantWarn {
				require.Len(t, warns, 1)
				assert.Equal(t, "primitives[1]", warns[0].Item)
				assert.Equal(t, "file", warns[0].Field)
			} else {
				assert.Empty(t, warns)
			}
		})
	}
}

func TestMeshPath_Runes(t *testing.T) {
	assert.Equal(t, "modèle.obj", MeshPath("modèle.wo3", ".obj"))
	assert.Equal(t, ".obj", MeshPath("", ".obj"))
}

func TestMapEntity_EmptyMeshFile(t *testing.T) {
	c := newConverter(t)
	diags := &diagnostic.Diagnostics{}

	_, err := c.MapEntity(source.Primitive{
		Type:      source.MeshType,
		Transform: source.DefaultTransform(),
		BSDF:      source.BSDFRef{Inline: true},
	}, 3, diags)
	require.ErrorIs(t, err, ErrEmptyMeshFile)
	assert.Equal(t, "primitives[3].file: mesh primitive has an empty file", err.Error())

	var fe *FieldError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, "primitives[3]", fe.Item)
	assert.Equal(t, "file", fe.Field)
	assert.Equal(t, diagnostic.CodeEmptyMeshFile, fe.Code)

	// Only meshes need a file.
	_, err = c.MapEntity(source.Primitive{Type: "sphere", Transform: source.DefaultTransform()}, 0, diags)
	require.NoError(t, err)
}

func TestMapEntity_VerifyTransforms(t *testing.T) {
	c := newConverter(t, func(o *config.Options) { o.VerifyTransforms = true })
	diags := &diagnostic.Diagnostics{}

	_, err := c.MapEntity(source.Primitive{
		Type: "cube",
		Transform: source.Transform{
			Position: source.Vec3{1, -2, 3},
			Rotation: source.Vec3{30, 90, 45},
			Scale:    source.Vec3{1, 2, 3},
		},
		BSDF: source.BSDFRef{Name: "m"},
	}, 0, diags)
	require.NoError(t, err)
	assert.Empty(t, diags.ByCode(diagnostic.CodeTransformRoundTrip))
}

func TestMapEntity_VerifyTransformsFlatPrimitive(t *testing.T) {
	c := newConverter(t, func(o *config.Options) { o.VerifyTransforms = true })

	for i, scale := range []source.Vec3{{0, 1, 1}, {2, 0, 3}, {1, 1, 0}, {0, 0, 5}} {
		diags := &diagnostic.Diagnostics{}

		_, err := c.MapEntity(source.Primitive{
			Type: "quad",
			Transform: source.Transform{
				Position: source.Vec3{0, 1.98, 0},
				Rotation: source.Vec3{0, 0, 90},
				Scale:    scale,
			},
			BSDF: source.BSDFRef{Name: "m"},
		}, i, diags)
		require.NoError(t, err)
		assert.Empty(t, diags.ByCode(diagnostic.CodeTransformRoundTrip), "scale %v", scale)
	}
}

func TestMapEntities_IndexedNames(t *testing.T) {
	c := newConverter(t)

	es, err := c.MapEntities([]source.Primitive{
		{Type: "sphere", Transform: source.DefaultTransform(), BSDF: source.BSDFRef{Name: "a"}},
		{Type: "sphere", Transform: source.DefaultTransform(), BSDF: source.BSDFRef{Inline: true}},
		{Type: "sphere", Transform: source.DefaultTransform(), BSDF: source.BSDFRef{Name: "a"}},
	}, &diagnostic.Diagnostics{})
	require.NoError(t, err)
	require.Len(t, es, 3)

	assert.Equal(t, "entity_0_a", es[0].Name)
	assert.Equal(t, "entity_1_None", es[1].Name)
	assert.Equal(t, "entity_2_a", es[2].Name)
}

func TestMapEntities_StopsAtEmptyMeshFile(t *testing.T) {
	c := newConverter(t)

	es, err := c.MapEntities([]source.Primitive{
		{Type: "sphere", Transform: source.DefaultTransform(), BSDF: source.BSDFRef{Name: "a"}},
		{Type: source.MeshType, Transform: source.DefaultTransform(), BSDF: source.BSDFRef{Name: "a"}},
		{Type: source.MeshType, File: "", Transform: source.DefaultTransform(), BSDF: source.BSDFRef{Name: "a"}},
	}, &diagnostic.Diagnostics{})
	require.ErrorIs(t, err, ErrEmptyMeshFile)
	assert.Nil(t, es)
	assert.Contains(t, err.Error(), "primitives[1]")
	assert.NotContains(t, err.Error(), "primitives[2]")
}
