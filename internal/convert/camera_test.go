package convert

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"scene-converter/internal/source"
	"scene-converter/internal/target"
)

func TestMapCamera(t *testing.T) {
	cam := MapCamera(source.Camera{
		Position: source.Vec3{0, 1, 5},
		LookAt:   source.Vec3{0.5, 0, -2},
		Up:       source.Vec3{0, 1, 0.25},
		FOV:      45,
		Tonemap:  ptr("filmic"),
	})

	assert.Equal(t, target.Camera{
		Position:  target.Vec3(0, 1, -5),
		Rotation:  target.Vector3{},
		FOV:       45,
		Near:      0.3,
		Far:       100,
		UseLookAt: true,
		LookAt:    target.Vec3(0.5, 0, 2),
		Up:        target.Vec3(0, 1, 0.25),
	}, cam)
}
