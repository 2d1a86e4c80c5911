package game

import (
	"fmt"

	"github.com/Skyb0rg007/OpenGL-Testing/ecs"
)

// CameraControlSystem moves the camera of the WorldState.
//
//	W/S  y        A/D  x        F/G  z
//	E/Q  roll     Down/Up pitch Right/Left yaw
type CameraControlSystem struct {
	keys Keyboard
}

func NewCameraControlSystem(keys Keyboard) *CameraControlSystem {
	return &CameraControlSystem{keys: keys}
}

func (s *CameraControlSystem) Update(w *ecs.World) error {
	cam := &w.State.Camera

	cam.Position[1] += axis(s.keys, KeyW, KeyS)
	cam.Position[0] += axis(s.keys, KeyD, KeyA)
	cam.Position[2] += axis(s.keys, KeyF, KeyG)

	cam.Roll += axis(s.keys, KeyE, KeyQ)
	cam.Pitch += axis(s.keys, KeyDown, KeyUp)
	cam.Yaw += axis(s.keys, KeyRight, KeyLeft)

	return nil
}

// EntityControlSystem moves and turns a single entity.
//
//	W/S  y        D/A  x        F/G  z
//	Down/Up rot x Right/Left rot y  Comma/Period rot z
//	Equal/Minus scale
type EntityControlSystem struct {
	keys   Keyboard
	entity ecs.Entity
}

func NewEntityControlSystem(keys Keyboard, e ecs.Entity) *EntityControlSystem {
	return &EntityControlSystem{keys: keys, entity: e}
}

func (s *EntityControlSystem) Update(w *ecs.World) error {
	d := w.Displacement(s.entity)
	r := w.Rotation(s.entity)
	if d == nil || r == nil {
		return fmt.Errorf("control entity %d: %w", s.entity, ErrMissingDependencies)
	}

	d.Y += axis(s.keys, KeyW, KeyS)
	d.X += axis(s.keys, KeyD, KeyA)
	d.Z += axis(s.keys, KeyF, KeyG)
	d.Scale += axis(s.keys, KeyEqual, KeyMinus)

	r.X += axis(s.keys, KeyDown, KeyUp)
	r.Y += axis(s.keys, KeyRight, KeyLeft)
	r.Z += axis(s.keys, KeyComma, KeyPeriod)

	return nil
}
