// Package config holds the conversion options and loads them from YAML or
// TOML files.
//
// Every field has a default, so an options file only needs the keys it
// changes:
//
//	default_output_name: converted_scene
//	shader_name: RayTracing/Uber
//	mesh_extension: .obj
//	renderer_tonemap_default: gamma   # used for raytracingData.HDR
//	output_tonemap_default: filmic    # used for output.tone_map
//	default_output_file: scene.png
//	env_lights: []
//	extended_output: false
//	verify_transforms: false
//	verify_tolerance: 0.0001
//
// The two tonemap defaults differ on purpose: the engine has always read the
// renderer block with "gamma" and the output block with "filmic" when the
// camera names no operator.
package config
