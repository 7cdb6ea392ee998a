package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jinzhu/copier"
)

// Defaults applied to unset options.
const (
	DefaultOutputName      = "converted_scene"
	DefaultShaderName      = "RayTracing/Uber"
	DefaultMeshExtension   = ".obj"
	DefaultRendererTonemap = "gamma"
	DefaultOutputTonemap   = "filmic"
	DefaultOutputFile      = "scene.png"
	DefaultVerifyTolerance = 1e-4
	EnvMapLight            = "envmap"
)

// Options configures a conversion.
type Options struct {
	// DefaultOutputName names the output document when no name is given.
	DefaultOutputName string `yaml:"default_output_name,omitempty" toml:"default_output_name,omitempty"`

	// ShaderName is written to every material.
	ShaderName string `yaml:"shader_name,omitempty" toml:"shader_name,omitempty"`

	// MeshExtension replaces the extension of mesh file references.
	MeshExtension string `yaml:"mesh_extension,omitempty" toml:"mesh_extension,omitempty"`

	// RendererTonemapDefault is the operator used for the renderer block
	// when the camera names none.
	RendererTonemapDefault string `yaml:"renderer_tonemap_default,omitempty" toml:"renderer_tonemap_default,omitempty"`

	// OutputTonemapDefault is the operator used for the output block when
	// the camera names none.
	OutputTonemapDefault string `yaml:"output_tonemap_default,omitempty" toml:"output_tonemap_default,omitempty"`

	// DefaultOutputFile is the image name used when the renderer names none.
	DefaultOutputFile string `yaml:"default_output_file,omitempty" toml:"default_output_file,omitempty"`

	// EnvLights lists the environment lights of the scene. The environment
	// map is enabled when it contains EnvMapLight.
	EnvLights []string `yaml:"env_lights,omitempty" toml:"env_lights,omitempty"`

	// ExtendedOutput adds the integrator and output blocks to the document.
	ExtendedOutput bool `yaml:"extended_output,omitempty" toml:"extended_output,omitempty"`

	// VerifyTransforms checks that every entity transform survives a
	// compose/decompose round trip.
	VerifyTransforms bool `yaml:"verify_transforms,omitempty" toml:"verify_transforms,omitempty"`

	// VerifyTolerance is the matrix tolerance used by VerifyTransforms.
	VerifyTolerance float64 `yaml:"verify_tolerance,omitempty" toml:"verify_tolerance,omitempty"`
}

// Default returns the options with every default applied.
func Default() Options {
	var o Options
	applyDefaults(&o)

	return o
}

// applyDefaults fills in default values for unset fields.
func applyDefaults(o *Options) {
	if o.DefaultOutputName == "" {
		o.DefaultOutputName = DefaultOutputName
	}

	if o.ShaderName == "" {
		o.ShaderName = DefaultShaderName
	}

	if o.MeshExtension == "" {
		o.MeshExtension = DefaultMeshExtension
	}

	if o.RendererTonemapDefault == "" {
		o.RendererTonemapDefault = DefaultRendererTonemap
	}

	if o.OutputTonemapDefault == "" {
		o.OutputTonemapDefault = DefaultOutputTonemap
	}

	if o.DefaultOutputFile == "" {
		o.DefaultOutputFile = DefaultOutputFile
	}

	if o.VerifyTolerance == 0 {
		o.VerifyTolerance = DefaultVerifyTolerance
	}
}

// Validate reports options that cannot be used for a conversion.
func (o *Options) Validate() error {
	var errs []error

	if strings.ContainsAny(o.DefaultOutputName, `/\`) {
		errs = append(errs, fmt.Errorf("default_output_name %q must not contain a path separator", o.DefaultOutputName))
	}

	if !strings.HasPrefix(o.MeshExtension, ".") {
		errs = append(errs, fmt.Errorf("mesh_extension %q must start with a dot", o.MeshExtension))
	}

	if o.VerifyTolerance < 0 {
		errs = append(errs, fmt.Errorf("verify_tolerance must not be negative, got %g", o.VerifyTolerance))
	}

	return errors.Join(errs...)
}

// EnvMapEnabled reports whether an environment map light is configured.
func (o *Options) EnvMapEnabled() bool {
	for _, l := range o.EnvLights {
		if l == EnvMapLight {
			return true
		}
	}

	return false
}

// Clone returns a deep copy of o.
func (o *Options) Clone() (Options, error) {
	var out Options
	if err := copier.CopyWithOption(&out, o, copier.Option{DeepCopy: true}); err != nil {
		return Options{}, fmt.Errorf("failed to copy options: %w", err)
	}

	return out, nil
}
