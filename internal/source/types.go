package source

// Scene is the root of a source scene document.
type Scene struct {
	// BSDFs are the material descriptors, in document order.
	BSDFs []BSDF
	// Primitives are the shape descriptors, in document order.
	Primitives []Primitive
	Camera     Camera
	Renderer   Renderer
	Integrator Integrator
}

// BSDF is one material descriptor.
type BSDF struct {
	Name string
	// Type is the BSDF model name, e.g. "lambert" or "rough_conductor".
	Type   string
	Albedo Albedo
	// Roughness is 0 when absent.
	Roughness float64
	// K is the extinction coefficient of conductors; zero when absent.
	K Vec3
	// IOR is the index of refraction; zero when absent.
	IOR Vec3
	// Metal is the optional metal preset name (the "material" key).
	Metal *string
}

// Primitive is one shape descriptor.
type Primitive struct {
	// Type is the shape kind, e.g. "mesh", "sphere" or "quad".
	Type      string
	Transform Transform
	BSDF      BSDFRef
	// File is the mesh file path; set only for meshes.
	File string
	// Emission is zero when absent.
	Emission Vec3
	// Power is 0 when absent.
	Power float64
}

// IsMesh reports whether the primitive references external mesh geometry.
func (p Primitive) IsMesh() bool {
	return p.Type == MeshType
}

// MeshType is the primitive type that references a mesh file.
const MeshType = "mesh"

// Transform places a primitive. Rotation is in degrees.
type Transform struct {
	Position Vec3
	Rotation Vec3
	Scale    Vec3
}

// DefaultTransform is the identity placement applied to absent keys.
func DefaultTransform() Transform {
	return Transform{Scale: Uniform(1)}
}

// Camera is the camera block.
type Camera struct {
	Position Vec3
	LookAt   Vec3
	Up       Vec3
	// FOV is the field of view in degrees.
	FOV float64
	// Tonemap is the tone-mapping operator name, nil when absent.
	Tonemap *string
}

// Renderer holds the sampling settings.
type Renderer struct {
	// SPP is the number of samples per pixel.
	SPP int
	// OutputFile is the image file name, nil when absent.
	OutputFile *string
}

// Integrator holds the path depth settings.
type Integrator struct {
	MaxBounces int
	// MinBounces is nil when absent.
	MinBounces *int
}
