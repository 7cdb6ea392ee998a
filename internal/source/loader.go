package source

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"cogentcore.org/core/base/iox/jsonx"

	"scene-converter/internal/common"
)

// LoadFile loads and decodes a scene document from the given path.
// The file is closed before LoadFile returns.
func LoadFile(path string) (*Scene, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open scene file %s: %w", path, err)
	}
	defer f.Close()

	sc, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("failed to load scene file %s: %w", path, err)
	}

	return sc, nil
}

// Load reads one JSON scene document from r.
func Load(r io.Reader) (*Scene, error) {
	var raw json.RawMessage
	if err := jsonx.Read(&raw, r); err != nil {
		return nil, malformed("", err)
	}

	return decodeScene(raw)
}

// Parse decodes a scene document held in memory.
func Parse(data []byte) (*Scene, error) {
	return decodeScene(data)
}

func decodeScene(raw json.RawMessage) (*Scene, error) {
	root, err := newObject("", raw)
	if err != nil {
		return nil, err
	}

	sc := &Scene{}

	bsdfs, err := root.list("bsdfs")
	if err != nil {
		return nil, err
	}

	sc.BSDFs = make([]BSDF, 0, len(bsdfs))

	for i, item := range bsdfs {
		o, err := newObject(common.Index("bsdfs", i), item)
		if err != nil {
			return nil, err
		}

		b, err := decodeBSDF(o)
		if err != nil {
			return nil, err
		}

		sc.BSDFs = append(sc.BSDFs, b)
	}

	prims, err := root.list("primitives")
	if err != nil {
		return nil, err
	}

	sc.Primitives = make([]Primitive, 0, len(prims))

	for i, item := range prims {
		o, err := newObject(common.Index("primitives", i), item)
		if err != nil {
			return nil, err
		}

		p, err := decodePrimitive(o)
		if err != nil {
			return nil, err
		}

		sc.Primitives = append(sc.Primitives, p)
	}

	if sc.Camera, err = decodeCamera(root); err != nil {
		return nil, err
	}

	if sc.Renderer, err = decodeRenderer(root); err != nil {
		return nil, err
	}

	if sc.Integrator, err = decodeIntegrator(root); err != nil {
		return nil, err
	}

	return sc, nil
}

func decodeBSDF(o object) (BSDF, error) {
	var (
		b     BSDF
		metal string
	)

	f := members{o: o}
	f.require("type", &b.Type)
	f.require("name", &b.Name)
	f.require("albedo", &b.Albedo)
	f.optional("roughness", &b.Roughness)
	f.optional("k", &b.K)
	f.optional("ior", &b.IOR)

	if f.optional("material", &metal) {
		b.Metal = &metal
	}

	return b, f.err
}

func decodePrimitive(o object) (Primitive, error) {
	p := Primitive{Transform: DefaultTransform()}

	f := members{o: o}
	f.require("type", &p.Type)
	f.require("bsdf", &p.BSDF)
	f.optional("emission", &p.Emission)
	f.optional("power", &p.Power)

	if f.err != nil {
		return p, f.err
	}

	if p.IsMesh() {
		f.require("file", &p.File)
	}

	if f.err != nil {
		return p, f.err
	}

	tr, err := o.child("transform")
	if err != nil {
		return p, err
	}

	tf := members{o: tr}
	tf.optional("position", &p.Transform.Position)
	tf.optional("rotation", &p.Transform.Rotation)
	tf.optional("scale", &p.Transform.Scale)

	return p, tf.err
}

func decodeCamera(root object) (Camera, error) {
	var c Camera

	o, err := root.child("camera")
	if err != nil {
		return c, err
	}

	var tonemap string

	f := members{o: o}
	f.require("fov", &c.FOV)

	if f.optional("tonemap", &tonemap) {
		c.Tonemap = &tonemap
	}

	if f.err != nil {
		return c, f.err
	}

	tr, err := o.child("transform")
	if err != nil {
		return c, err
	}

	tf := members{o: tr}
	tf.require("position", &c.Position)
	tf.require("look_at", &c.LookAt)
	tf.require("up", &c.Up)

	return c, tf.err
}

func decodeRenderer(root object) (Renderer, error) {
	var r Renderer

	o, err := root.child("renderer")
	if err != nil {
		return r, err
	}

	var out string

	f := members{o: o}
	f.require("spp", &r.SPP)

	if f.optional("output_file", &out) {
		r.OutputFile = &out
	}

	return r, f.err
}

func decodeIntegrator(root object) (Integrator, error) {
	var in Integrator

	o, err := root.child("integrator")
	if err != nil {
		return in, err
	}

	var minBounces int

	f := members{o: o}
	f.require("max_bounces", &in.MaxBounces)

	if f.optional("min_bounces", &minBounces) {
		in.MinBounces = &minBounces
	}

	return in, f.err
}
