package target

// Vector3 is the engine's three-component vector.
type Vector3 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Vec3 returns a Vector3 from its components.
func Vec3(x, y, z float64) Vector3 {
	return Vector3{X: x, Y: y, Z: z}
}

// FromArray returns a Vector3 from a three-component array.
func FromArray(v [3]float64) Vector3 {
	return Vector3{X: v[0], Y: v[1], Z: v[2]}
}

// Document is the root of a target scene.
type Document struct {
	Materials []Material `json:"materials"`
	Entities  []Entity   `json:"entities"`
	// EnvLight lists environment lights; empty until the engine supports them.
	EnvLight []string `json:"envLight"`
	Camera   Camera   `json:"jsonCamera"`
	Renderer Renderer `json:"renderer"`

	Integrator *Integrator   `json:"integrator,omitempty"`
	Output     *OutputConfig `json:"output,omitempty"`
}

// Material is one engine material.
type Material struct {
	// Type is the engine material model code.
	Type          int     `json:"type"`
	Name          string  `json:"name"`
	AssetPath     string  `json:"assetPath"`
	ShaderName    string  `json:"shaderName"`
	BaseColor     Vector3 `json:"baseColor"`
	Transmission  Vector3 `json:"transmission"`
	Specular      Vector3 `json:"specular"`
	AlbedoTexture *string `json:"albedoTexture"`
	NormalTexture *string `json:"normalTexture"`
	Fresnel       int     `json:"fresnel"`
	RoughnessU    float64 `json:"roughnessU"`
	RoughnessV    float64 `json:"roughnessV"`
	K             Vector3 `json:"K"`
	Eta           Vector3 `json:"eta"`
	Emission      Vector3 `json:"emission"`
	Metal         *string `json:"metal"`
}

// Entity is one placed shape. Rotation is in degrees.
type Entity struct {
	Name     string  `json:"name"`
	Position Vector3 `json:"position"`
	Scale    Vector3 `json:"scale"`
	Rotation Vector3 `json:"rotation"`
	MeshType string  `json:"meshType"`
	// Mesh is the mesh file path for mesh entities, null otherwise.
	Mesh *string `json:"mesh"`
	// Material is the material name, null when the entity has none.
	Material *string `json:"material"`
	Emission Vector3 `json:"emission"`
	Power    float64 `json:"power"`
}

// Camera is the engine camera. With UseLookAt set the orientation comes
// from LookAt and Up, and Rotation is ignored.
type Camera struct {
	Position  Vector3 `json:"position"`
	Rotation  Vector3 `json:"rotation"`
	FOV       float64 `json:"fov"`
	Near      float64 `json:"near"`
	Far       float64 `json:"far"`
	UseLookAt bool    `json:"useLookAt"`
	LookAt    Vector3 `json:"lookAt"`
	Up        Vector3 `json:"up"`
}

// Renderer wraps the ray-tracing settings block.
type Renderer struct {
	RaytracingData RaytracingData `json:"raytracingData"`
}

// RaytracingData holds the sampling, depth and tone-mapping settings.
type RaytracingData struct {
	SamplesPerPixel int `json:"SamplesPerPixel"`
	MaxDepth        int `json:"MaxDepth"`
	// HDR is the tone-mapping operator code.
	HDR                  int  `json:"HDR"`
	EnvironmentMapEnable bool `json:"_EnviromentMapEnable"`
}

// Integrator describes the path tracing integrator.
type Integrator struct {
	Type  string          `json:"type"`
	Param IntegratorParam `json:"param"`
}

// IntegratorParam holds the integrator path depth settings.
type IntegratorParam struct {
	MinDepth    int     `json:"min_depth"`
	MaxDepth    int     `json:"max_depth"`
	RRThreshold float64 `json:"rr_threshold"`
}

// OutputConfig describes the rendered image output.
type OutputConfig struct {
	FileName    string `json:"fn"`
	DispatchNum int    `json:"dispatch_num"`
	ToneMap     int    `json:"tone_map"`
}
