package convert

import (
	"scene-converter/internal/source"
	"scene-converter/internal/target"
	"scene-converter/internal/xform"
)

// Fixed clip planes of the engine camera.
const (
	CameraNear = 0.3
	CameraFar  = 100
)

// MapCamera converts the camera block. The engine orients the camera from
// its look-at target, so rotation is always zero.
func MapCamera(cam source.Camera) target.Camera {
	return target.Camera{
		Position:  target.FromArray(xform.ToLeftHanded(cam.Position)),
		Rotation:  target.Vector3{},
		FOV:       cam.FOV,
		Near:      CameraNear,
		Far:       CameraFar,
		UseLookAt: true,
		LookAt:    target.FromArray(xform.ToLeftHanded(cam.LookAt)),
		Up:        target.FromArray(cam.Up),
	}
}
