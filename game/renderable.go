package game

import (
	"errors"
	"fmt"

	"github.com/Skyb0rg007/OpenGL-Testing/ecs"
	"github.com/Skyb0rg007/OpenGL-Testing/engine"
	"github.com/Skyb0rg007/OpenGL-Testing/model"
)

var (
	ErrMissingDependencies = errors.New("game: entity needs displacement and rotation")
	ErrAlreadyRenderable   = errors.New("game: entity is already renderable")
	ErrNotRenderable       = errors.New("game: entity is not renderable")
)

// Uniforms are resolved once per Renderable; the render system only uploads
// the ones the program actually uses.
var Uniforms = []string{
	"model",
	"view",
	"projection",
	"lightPosition",
	"lightColor",
	"color",
}

func checkRenderable(w *ecs.World, e ecs.Entity) error {
	if !w.Alive(e) {
		return fmt.Errorf("make entity %d renderable: %w", e, ecs.ErrNotAlive)
	}

	mask := w.Mask(e)
	if !mask.Has(ecs.ComponentDisplacement | ecs.ComponentRotation) {
		return fmt.Errorf("make entity %d renderable (%v): %w", e, mask, ErrMissingDependencies)
	}
	if mask&(ecs.ComponentRenderable|ecs.ComponentGC) != 0 {
		return fmt.Errorf("make entity %d renderable: %w", e, ErrAlreadyRenderable)
	}
	return nil
}

// MakeRenderable loads a triangulated obj file and uploads it for e.
// See MakeRenderableFromData.
func MakeRenderable(w *ecs.World, b engine.Backend, e ecs.Entity, objFile, vsFile, fsFile, texFile string) error {
	if err := checkRenderable(w, e); err != nil {
		return err
	}

	data, err := model.LoadOBJ(objFile)
	if err != nil {
		return fmt.Errorf("make entity %d renderable: %w", e, err)
	}

	return MakeRenderableFromData(w, b, e, data, vsFile, fsFile, texFile)
}

// MakeRenderableFromData builds the shader program, uploads the geometry and
// the optional texture and attaches Renderable, GC and Textured to e.
// Entities without a texture file are drawn with their Colored component.
//
// e must carry Displacement and Rotation. On failure nothing stays allocated
// and e is unchanged.
func MakeRenderableFromData(w *ecs.World, b engine.Backend, e ecs.Entity, data *engine.ModelData, vsFile, fsFile, texFile string) (err error) {
	if err := checkRenderable(w, e); err != nil {
		return err
	}

	// decode before anything is allocated
	var img *engine.Image
	if texFile != "" {
		if img, err = engine.LoadImage(texFile); err != nil {
			return fmt.Errorf("make entity %d renderable: %w", e, err)
		}
	}

	var owned, gc engine.Bundle
	defer func() {
		if err != nil {
			owned.Release(b)
			gc.Release(b)
		}
	}()

	prog, err := engine.LoadProgram(b, vsFile, fsFile, Uniforms)
	if err != nil {
		return fmt.Errorf("make entity %d renderable: %w", e, err)
	}
	owned.Add(prog.Handle)

	vao := owned.Add(b.GenVertexArray())
	b.BindVertexArray(vao)

	gc.Add(b.GenFloatBuffer(data.Positions))
	b.VertexAttrib(engine.PositionAttrib, 3)

	if img != nil {
		gc.Add(b.GenFloatBuffer(data.TexCoords))
		b.VertexAttrib(engine.TexCoordAttrib, 2)
	}

	gc.Add(b.GenFloatBuffer(data.Normals))
	b.VertexAttrib(engine.NormalAttrib, 3)

	gc.Add(b.GenIndexBuffer(data.Indices))
	b.BindVertexArray(engine.Handle{})

	r := ecs.Renderable{
		Program:     prog.Handle,
		VertexArray: vao,
		IndexCount:  int32(len(data.Indices)),
		Uniforms:    prog.Uniforms,
	}

	var tex engine.Handle
	switch {
	case img != nil:
		tex = gc.Add(b.GenTexture(img))
		r.Style = ecs.StyleTextured
	case w.Mask(e).Has(ecs.ComponentColored):
		r.Style = ecs.StyleColored
	}

	if err = w.SetRenderable(e, r); err != nil {
		return err
	}
	if err = w.SetGC(e, ecs.GC{Bundle: gc}); err != nil {
		w.Detach(e, ecs.ComponentRenderable)
		return err
	}
	if tex.Valid() {
		if err = w.SetTextured(e, ecs.Textured{Texture: tex}); err != nil {
			w.Detach(e, ecs.ComponentRenderable|ecs.ComponentGC)
			return err
		}
	}

	return nil
}

// CollectGarbage deletes the program, vertex array and every handle of the GC
// list of e and clears its Renderable, GC and Textured components. Either half
// may be missing, e.g. for a Renderable attached by hand.
func CollectGarbage(w *ecs.World, b engine.Backend, e ecs.Entity) error {
	r, gc := w.Renderable(e), w.GC(e)
	if r == nil && gc == nil {
		return fmt.Errorf("collect entity %d: %w", e, ErrNotRenderable)
	}

	if r != nil {
		b.Delete(r.Program)
		b.Delete(r.VertexArray)
	}
	if gc != nil {
		gc.Release(b)
	}

	return w.Detach(e, ecs.ComponentRenderable|ecs.ComponentGC|ecs.ComponentTextured)
}

// DestroyEntity releases the gpu resources of e, if any, and frees its slot.
func DestroyEntity(w *ecs.World, b engine.Backend, e ecs.Entity) error {
	if w.Mask(e)&(ecs.ComponentRenderable|ecs.ComponentGC) != 0 {
		if err := CollectGarbage(w, b, e); err != nil {
			return err
		}
	}
	return w.DestroyEntity(e)
}

// DestroyAll destroys every live entity of w
func DestroyAll(w *ecs.World, b engine.Backend) error {
	var errs []error
	for _, e := range w.Entities() {
		if err := DestroyEntity(w, b, e); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
