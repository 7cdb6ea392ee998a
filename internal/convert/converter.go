package convert

import (
	"fmt"
	"log/slog"
	"maps"
	"slices"

	"scene-converter/internal/common"
	"scene-converter/internal/config"
	"scene-converter/internal/diagnostic"
	"scene-converter/internal/source"
	"scene-converter/internal/suggest"
	"scene-converter/internal/target"
)

// Converter converts source scenes with a fixed set of options.
type Converter struct {
	opts   config.Options
	logger *slog.Logger
}

// New returns a Converter for the given options. A nil logger discards all
// output.
func New(opts config.Options, logger *slog.Logger) (*Converter, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	own, err := opts.Clone()
	if err != nil {
		return nil, err
	}

	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Converter{opts: own, logger: logger}, nil
}

// Options returns the options used by c.
func (c *Converter) Options() config.Options {
	return c.opts
}

// Convert maps scene onto a target document. On error no document is
// returned; the diagnostics gathered so far still are, with the failure
// recorded among their errors.
func (c *Converter) Convert(scene *source.Scene) (*target.Document, *diagnostic.Diagnostics, error) {
	diags := &diagnostic.Diagnostics{}

	materials, err := c.MapMaterials(scene.BSDFs)
	if err != nil {
		return nil, diags, c.fail(diags, "materials", err)
	}

	declared := c.checkMaterialNames(scene.BSDFs, diags)
	c.checkMaterialRefs(scene.Primitives, declared, diags)

	entities, err := c.MapEntities(scene.Primitives, diags)
	if err != nil {
		return nil, diags, c.fail(diags, "entities", err)
	}

	renderer, err := c.MapRenderer(scene)
	if err != nil {
		return nil, diags, c.fail(diags, "renderer", err)
	}

	doc := &target.Document{
		Materials: materials,
		Entities:  entities,
		EnvLight:  common.NonNil(append([]string(nil), c.opts.EnvLights...)),
		Camera:    MapCamera(scene.Camera),
		Renderer:  renderer,
	}

	if c.opts.ExtendedOutput {
		integrator, err := MapIntegrator(scene.Integrator)
		if err != nil {
			return nil, diags, c.fail(diags, "integrator", err)
		}

		output, err := c.MapOutputConfig(scene)
		if err != nil {
			return nil, diags, c.fail(diags, "output config", err)
		}

		doc.Integrator = &integrator
		doc.Output = &output
	}

	if scene.Camera.Tonemap == nil {
		c.noteDefaultTonemaps(diags)
	}

	c.logger.Debug("converted scene",
		slog.Int("materials", len(doc.Materials)),
		slog.Int("entities", len(doc.Entities)),
		slog.Int("warnings", len(diags.Warnings)))

	return doc, diags, nil
}

// fail records err in diags and wraps it with the failing stage.
func (c *Converter) fail(diags *diagnostic.Diagnostics, stage string, err error) error {
	record(diags, err)
	c.logger.Debug("conversion failed", slog.String("stage", stage), slog.Any("error", err))

	return fmt.Errorf("failed to convert %s: %w", stage, err)
}

// checkMaterialNames warns about BSDF names declared more than once and
// returns the set of declared names.
func (c *Converter) checkMaterialNames(bsdfs []source.BSDF, diags *diagnostic.Diagnostics) map[string]struct{} {
	declared := make(map[string]struct{}, len(bsdfs))

	for i, b := range bsdfs {
		if _, dup := declared[b.Name]; dup {
			diags.AddWarning(diagnostic.CodeDuplicateMaterial,
				fmt.Sprintf("material %q is declared more than once", b.Name),
				common.Index("bsdfs", i), "name")

			continue
		}

		declared[b.Name] = struct{}{}
	}

	return declared
}

// checkMaterialRefs warns about primitives naming undeclared BSDFs.
func (c *Converter) checkMaterialRefs(primitives []source.Primitive, declared map[string]struct{}, diags *diagnostic.Diagnostics) {
	names := slices.Sorted(maps.Keys(declared))

	for i, p := range primitives {
		if p.BSDF.IsNone() {
			continue
		}

		if _, ok := declared[p.BSDF.Name]; !ok {
			diags.AddWarning(diagnostic.CodeUnknownMaterialRef,
				fmt.Sprintf("material %q is not declared in bsdfs%s", p.BSDF.Name, suggest.Hint(p.BSDF.Name, names)),
				common.Index("primitives", i), "bsdf")
		}
	}
}

func (c *Converter) noteDefaultTonemaps(diags *diagnostic.Diagnostics) {
	diags.AddInfo(diagnostic.CodeDefaultTonemap,
		fmt.Sprintf("camera names no tonemap; renderer uses %q", c.opts.RendererTonemapDefault),
		"camera", "tonemap")

	if c.opts.ExtendedOutput {
		diags.AddInfo(diagnostic.CodeDefaultTonemap,
			fmt.Sprintf("camera names no tonemap; output uses %q", c.opts.OutputTonemapDefault),
			"camera", "tonemap")
	}
}
