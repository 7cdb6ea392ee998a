package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scene-converter/internal/convert"
)

const scene = `{
  "bsdfs": [{"name": "wall", "type": "lambert", "albedo": [0.5, 0.5, 0.5]}],
  "primitives": [
    {"type": "sphere", "bsdf": "wall",
     "transform": {"position": [1, 2, 3], "scale": 2.0, "rotation": [0, 90, 0]}},
    {"type": "mesh", "file": "bunny.wo3", "bsdf": "ghost", "transform": {}}
  ],
  "camera": {"fov": 45,
    "transform": {"position": [0, 1, 5], "look_at": [0, 0, 0], "up": [0, 1, 0]}},
  "renderer": {"spp": 16},
  "integrator": {"min_bounces": 1, "max_bounces": 4}
}`

func writeScene(t *testing.T, data string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "scene.json")
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	stdout, _, err := executeFull(t, args...)

	return stdout, err
}

func executeFull(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer

	cmd := newRootCmd(&stdout, &stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()

	return stdout.String(), stderr.String(), err
}

func TestRun_WritesOutput(t *testing.T) {
	input := writeScene(t, scene)

	out, err := execute(t, input, "bathroom")
	require.NoError(t, err)

	outPath := filepath.Join(filepath.Dir(input), "bathroom.json")
	assert.Contains(t, out, "converting file: "+input)
	assert.Contains(t, out, "convert finish: "+outPath)
	assert.Contains(t, out, "unknown_material_ref")

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"entity_0_wall"`)
	assert.Contains(t, string(data), `"bunny.obj"`)
	assert.NotContains(t, string(data), `"integrator"`)
}

func TestRun_DefaultOutputName(t *testing.T) {
	input := writeScene(t, scene)

	_, err := execute(t, input, "")
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(filepath.Dir(input), "converted_scene.json"))

	_, err = execute(t, input)
	require.NoError(t, err)
}

func TestRun_MissingInput(t *testing.T) {
	for _, args := range [][]string{{}, {""}, {"", "name"}} {
		out, err := execute(t, args...)
		require.NoError(t, err)
		assert.Contains(t, out, "nothing to convert")
		assert.NotContains(t, out, "converting file")
	}
}

func TestRun_TooManyArgs(t *testing.T) {
	_, err := execute(t, "a", "b", "c")
	require.Error(t, err)
}

func TestRun_FailureLeavesNoOutput(t *testing.T) {
	input := writeScene(t, `{
  "bsdfs": [{"name": "x", "type": "velvet", "albedo": 1}],
  "primitives": [],
  "camera": {"fov": 45, "transform": {"position": 0, "look_at": 0, "up": 0}},
  "renderer": {"spp": 1},
  "integrator": {"max_bounces": 1}
}`)

	_, stderr, err := executeFull(t, input, "out")
	require.ErrorIs(t, err, convert.ErrUnknownMaterialType)
	assert.NoFileExists(t, filepath.Join(filepath.Dir(input), "out.json"))

	assert.Contains(t, stderr, "error:")
	assert.Contains(t, stderr, "[bsdfs[0]] type: [unknown_material_type]")
}

func TestRun_MissingFile(t *testing.T) {
	_, err := execute(t, filepath.Join(t.TempDir(), "nope.json"), "out")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open scene file")
}

func TestRun_Flags(t *testing.T) {
	input := writeScene(t, scene)

	out, err := execute(t, input, "ext", "--extended", "--verify", "--dump")
	require.NoError(t, err)
	assert.Contains(t, out, "target.Document")

	data, err := os.ReadFile(filepath.Join(filepath.Dir(input), "ext.json"))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"integrator"`)
	assert.Contains(t, string(data), `"fn": "scene.png"`)
}

func TestRun_ConfigFile(t *testing.T) {
	input := writeScene(t, scene)
	cfg := filepath.Join(filepath.Dir(input), "opts.toml")
	require.NoError(t, os.WriteFile(cfg, []byte("default_output_name = \"from_config\"\nmesh_extension = \".mesh\"\n"), 0o644))

	_, err := execute(t, "--config", cfg, input)
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(filepath.Dir(input), "from_config.json"))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"bunny.mesh"`)

	_, err = execute(t, "--config", filepath.Join(t.TempDir(), "opts.ini"), input)
	require.Error(t, err)
}

func TestRun_Examples(t *testing.T) {
	tests := []struct {
		dir     string
		options string
		output  string
		want    []string
	}{
		{
			dir:     "cornell-box",
			options: "options.yaml",
			output:  "cornell-box.json",
			want:    []string{`"entity_5_None"`, `"models/bunny.obj"`, `"fn": "cornell-box.png"`, `"tone_map": 1`},
		},
		{
			dir:     "material-test",
			options: "options.toml",
			output:  "material-test.json",
			want:    []string{`"metal": "Au"`, `"albedoTexture": "textures/checker.png"`, `"HDR": 0`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.dir, func(t *testing.T) {
			src := filepath.Join("..", "..", "examples", tt.dir)
			data, err := os.ReadFile(filepath.Join(src, "scene.json"))
			require.NoError(t, err)

			input := writeScene(t, string(data))

			out, err := execute(t, "--config", filepath.Join(src, tt.options), input)
			require.NoError(t, err)
			assert.NotContains(t, out, "warning:")

			got, err := os.ReadFile(filepath.Join(filepath.Dir(input), tt.output))
			require.NoError(t, err)

			for _, w := range tt.want {
				assert.Contains(t, string(got), w)
			}
		})
	}
}
