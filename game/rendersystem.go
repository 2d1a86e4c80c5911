package game

import (
	"errors"
	"fmt"
	"log"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Skyb0rg007/OpenGL-Testing/ecs"
	"github.com/Skyb0rg007/OpenGL-Testing/engine"
)

var (
	ErrNoSurface          = errors.New("game: renderable has neither texture nor colour")
	ErrColoredUnsupported = errors.New("game: rendering coloured entities is not supported")
	ErrStyleMismatch      = errors.New("game: renderable style does not match its components")
)

const renderMask = ecs.ComponentRenderable | ecs.ComponentDisplacement | ecs.ComponentRotation

/*
	RenderSystem draws every entity with Renderable, Displacement and Rotation.

	Textured entities are drawn with their texture on unit 0. Coloured
	entities are skipped and reported once the other entities are drawn.
	A renderable without texture or colour aborts the pass, as does one
	whose style was resolved for a surface it no longer carries.
*/
type RenderSystem struct {
	backend engine.Backend
}

func NewRenderSystem(b engine.Backend) *RenderSystem {
	return &RenderSystem{backend: b}
}

func (s *RenderSystem) Update(v ecs.View) error {
	state := v.State()

	var (
		skipped []ecs.Entity
		err     error
	)
	v.Each(func(e ecs.Entity) {
		if err != nil || !v.Has(e, renderMask) {
			return
		}

		r, _ := v.Renderable(e)
		d, _ := v.Displacement(e)
		rot, _ := v.Rotation(e)

		mask := v.Mask(e)
		switch {
		case mask&(ecs.ComponentTextured|ecs.ComponentColored) == 0:
			log.Printf("entity %d is renderable, but has no colour or texture", e)
			err = fmt.Errorf("render entity %d: %w", e, ErrNoSurface)
		case r.Style == ecs.StyleTextured && mask.Has(ecs.ComponentTextured):
			t, _ := v.Textured(e)
			s.drawTextured(r, ModelMatrix(d, rot), t, state)
		case r.Style == ecs.StyleColored && mask.Has(ecs.ComponentColored):
			skipped = append(skipped, e)
		default:
			err = fmt.Errorf("render entity %d (%v, style %v): %w", e, mask, r.Style, ErrStyleMismatch)
		}
	})

	if err != nil {
		return err
	}
	if len(skipped) > 0 {
		return fmt.Errorf("render entities %v: %w", skipped, ErrColoredUnsupported)
	}
	return nil
}

func (s *RenderSystem) drawTextured(r ecs.Renderable, model mgl32.Mat4, t ecs.Textured, state ecs.WorldState) {
	b := s.backend

	b.UseProgram(r.Program)
	b.BindVertexArray(r.VertexArray)
	b.BindTexture(0, t.Texture)

	if loc, ok := r.Uniform("model"); ok {
		b.UniformMatrix4(loc, model)
	}
	if loc, ok := r.Uniform("view"); ok {
		b.UniformMatrix4(loc, state.View)
	}
	if loc, ok := r.Uniform("projection"); ok {
		b.UniformMatrix4(loc, state.Projection)
	}
	if loc, ok := r.Uniform("lightPosition"); ok {
		b.Uniform3(loc, state.Light.Position)
	}
	if loc, ok := r.Uniform("lightColor"); ok {
		b.Uniform3(loc, state.Light.Color)
	}

	b.DrawElements(r.IndexCount)

	b.BindTexture(0, engine.Handle{})
	b.UseProgram(engine.Handle{})
	b.BindVertexArray(engine.Handle{})
}

// ModelMatrix is translate * rotate x * rotate y * rotate z * uniform scale
func ModelMatrix(d ecs.Displacement, r ecs.Rotation) mgl32.Mat4 {
	return mgl32.Translate3D(d.X, d.Y, d.Z).
		Mul4(mgl32.HomogRotate3DX(r.X)).
		Mul4(mgl32.HomogRotate3DY(r.Y)).
		Mul4(mgl32.HomogRotate3DZ(r.Z)).
		Mul4(mgl32.Scale3D(d.Scale, d.Scale, d.Scale))
}

// ClearSystem clears colour and depth, it runs before the RenderSystem
type ClearSystem struct {
	backend engine.Backend
	Color   mgl32.Vec4
}

func NewClearSystem(b engine.Backend, color mgl32.Vec4) *ClearSystem {
	return &ClearSystem{backend: b, Color: color}
}

func (s *ClearSystem) Update(ecs.View) error {
	s.backend.Clear(s.Color)
	return nil
}
