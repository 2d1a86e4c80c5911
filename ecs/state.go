package ecs

import (
	"github.com/go-gl/mathgl/mgl32"
)

type Light struct {
	Position mgl32.Vec3
	Color    mgl32.Vec3
}

// Camera pose, angles in radians
type Camera struct {
	Position         mgl32.Vec3
	Pitch, Yaw, Roll float32
}

// WorldState is the per-world data that belongs to no entity
type WorldState struct {
	Light      Light
	Projection mgl32.Mat4
	View       mgl32.Mat4
	Camera     Camera
}

func defaultState() WorldState {
	return WorldState{
		Light: Light{
			Position: mgl32.Vec3{0, 0, 0},
			Color:    mgl32.Vec3{1, 1, 1},
		},
		Projection: mgl32.Ident4(),
		View:       mgl32.Ident4(),
	}
}
