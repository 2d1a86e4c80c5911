package game

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Skyb0rg007/OpenGL-Testing/ecs"
)

// MovementSystem adds the velocity of every moving entity to its
// displacement, once per frame.
type MovementSystem struct{}

func NewMovementSystem() *MovementSystem {
	return &MovementSystem{}
}

func (s *MovementSystem) Update(w *ecs.World) error {
	w.Each(func(e ecs.Entity) {
		if !w.Mask(e).Has(ecs.ComponentDisplacement | ecs.ComponentVelocity) {
			return
		}

		d, v := w.Displacement(e), w.Velocity(e)
		d.X += v.X
		d.Y += v.Y
		d.Z += v.Z
	})
	return nil
}

// LightSystem places the light of the WorldState at the first illuminated
// entity. Its colour is Color scaled by the entity's intensity.
type LightSystem struct {
	Color mgl32.Vec3
}

func NewLightSystem(color mgl32.Vec3) *LightSystem {
	return &LightSystem{Color: color}
}

func (s *LightSystem) Update(w *ecs.World) error {
	found := false
	w.Each(func(e ecs.Entity) {
		if found || !w.Mask(e).Has(ecs.ComponentDisplacement|ecs.ComponentIlluminated) {
			return
		}
		found = true

		d, i := w.Displacement(e), w.Illuminated(e)
		w.State.Light.Position = mgl32.Vec3{d.X, d.Y, d.Z}
		w.State.Light.Color = s.Color.Mul(i.Intensity)
	})
	return nil
}

// CameraSystem derives the view and projection matrices of the WorldState
type CameraSystem struct {
	cfg           Config
	width, height int
}

func NewCameraSystem(cfg Config) *CameraSystem {
	return &CameraSystem{cfg: cfg, width: cfg.Width, height: cfg.Height}
}

// Resize sets the viewport size used for the aspect ratio
func (s *CameraSystem) Resize(width, height int) {
	s.width, s.height = width, height
}

func (s *CameraSystem) Update(w *ecs.World) error {
	w.State.View = ViewMatrix(w.State.Camera)
	w.State.Projection = s.cfg.Projection(s.width, s.height)
	return nil
}

// ViewMatrix rotates by pitch, yaw and roll after moving the camera to the origin
func ViewMatrix(c ecs.Camera) mgl32.Mat4 {
	return mgl32.HomogRotate3DX(c.Pitch).
		Mul4(mgl32.HomogRotate3DY(c.Yaw)).
		Mul4(mgl32.HomogRotate3DZ(c.Roll)).
		Mul4(mgl32.Translate3D(-c.Position[0], -c.Position[1], -c.Position[2]))
}
