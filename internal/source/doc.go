// Package source models the path-tracer scene document that the converter
// reads, and decodes it from JSON.
//
// # Document layout
//
//	{
//	  "bsdfs":      [{"name": "wall", "type": "lambert", "albedo": [0.5, 0.5, 0.5]}],
//	  "primitives": [{"type": "sphere", "bsdf": "wall",
//	                  "transform": {"position": [1, 2, 3], "scale": 2, "rotation": [0, 90, 0]}}],
//	  "camera":     {"fov": 45, "transform": {"position": [0, 1, 5], "look_at": [0, 0, 0], "up": [0, 1, 0]}},
//	  "renderer":   {"spp": 64},
//	  "integrator": {"min_bounces": 0, "max_bounces": 8}
//	}
//
// All five top-level keys are required. Vector-valued keys accept either a
// bare number, broadcast to all three components, or an array of exactly
// three numbers.
//
// # Errors
//
// A required key that is absent yields an error matching ErrMissingKey; bad
// JSON syntax or a value of the wrong shape yields an error matching
// ErrMalformed. Both carry the key path, e.g. "primitives[2].transform".
// Whether material names and types are meaningful is left to the converter.
package source
