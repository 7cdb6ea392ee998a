package convert

import (
	"fmt"

	"scene-converter/internal/diagnostic"
	"scene-converter/internal/source"
	"scene-converter/internal/target"
)

const (
	// IntegratorType is the engine integrator emitted for every scene.
	IntegratorType = "PT"
	// RRThreshold is the fixed russian roulette threshold.
	RRThreshold = 1
)

// tonemapName returns the camera tonemap, or def when the camera names none.
func tonemapName(cam source.Camera, def string) string {
	if cam.Tonemap != nil {
		return *cam.Tonemap
	}

	return def
}

// MapRenderer converts the sampling and depth settings.
func (c *Converter) MapRenderer(scene *source.Scene) (target.Renderer, error) {
	hdr, err := LookupTonemap(tonemapName(scene.Camera, c.opts.RendererTonemapDefault))
	if err != nil {
		return target.Renderer{}, &FieldError{
			Item:  "camera",
			Field: "tonemap",
			Code:  diagnostic.CodeUnknownTonemap,
			Err:   fmt.Errorf("renderer: %w", err),
		}
	}

	return target.Renderer{
		RaytracingData: target.RaytracingData{
			SamplesPerPixel:      scene.Renderer.SPP,
			MaxDepth:             scene.Integrator.MaxBounces,
			HDR:                  int(hdr),
			EnvironmentMapEnable: c.opts.EnvMapEnabled(),
		},
	}, nil
}

// MapIntegrator converts the integrator block. Unlike loading, it requires
// min_bounces.
func MapIntegrator(in source.Integrator) (target.Integrator, error) {
	if in.MinBounces == nil {
		return target.Integrator{}, &FieldError{
			Item:  "integrator",
			Field: "min_bounces",
			Code:  diagnostic.CodeMissingKey,
			Err:   &source.KeyError{Path: "integrator", Key: "min_bounces"},
		}
	}

	return target.Integrator{
		Type: IntegratorType,
		Param: target.IntegratorParam{
			MinDepth:    *in.MinBounces,
			MaxDepth:    in.MaxBounces,
			RRThreshold: RRThreshold,
		},
	}, nil
}

// MapOutputConfig converts the image output settings.
func (c *Converter) MapOutputConfig(scene *source.Scene) (target.OutputConfig, error) {
	tm, err := LookupTonemap(tonemapName(scene.Camera, c.opts.OutputTonemapDefault))
	if err != nil {
		return target.OutputConfig{}, &FieldError{
			Item:  "camera",
			Field: "tonemap",
			Code:  diagnostic.CodeUnknownTonemap,
			Err:   fmt.Errorf("output: %w", err),
		}
	}

	fn := c.opts.DefaultOutputFile
	if scene.Renderer.OutputFile != nil {
		fn = *scene.Renderer.OutputFile
	}

	return target.OutputConfig{
		FileName:    fn,
		DispatchNum: scene.Renderer.SPP,
		ToneMap:     int(tm),
	}, nil
}
