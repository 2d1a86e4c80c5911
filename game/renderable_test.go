package game

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Skyb0rg007/OpenGL-Testing/ecs"
	"github.com/Skyb0rg007/OpenGL-Testing/engine"
	"github.com/Skyb0rg007/OpenGL-Testing/engine/enginetest"
	"github.com/Skyb0rg007/OpenGL-Testing/model"
)

func TestMakeRenderableTextured(t *testing.T) {
	cfg := assets(t)
	vs, fs := shaders(cfg)
	b := enginetest.New()
	w := ecs.NewWorld()
	e := placed(t, w)

	err := MakeRenderableFromData(w, b, e, model.Cube(), vs, fs, cfg.Asset("crate.png"))
	require.NoError(t, err)

	assert.True(t, w.Mask(e).Has(ecs.ComponentRenderable|ecs.ComponentGC|ecs.ComponentTextured))

	r := w.Renderable(e)
	assert.Equal(t, ecs.StyleTextured, r.Style)
	assert.Equal(t, int32(36), r.IndexCount)
	assert.True(t, b.IsLive(r.Program))
	assert.True(t, b.IsLive(r.VertexArray))
	for _, u := range Uniforms {
		_, ok := r.Uniform(u)
		assert.True(t, ok, u)
	}

	// positions, texcoords, normals, indices and the texture
	gc := w.GC(e)
	assert.Equal(t, 4, gc.Count(engine.KindBuffer))
	assert.Equal(t, 1, gc.Count(engine.KindTexture))
	assert.Equal(t, w.Textured(e).Texture, gc.Handles()[gc.Len()-1])

	assert.Equal(t, map[uint32]int32{
		engine.PositionAttrib: 3,
		engine.TexCoordAttrib: 2,
		engine.NormalAttrib:   3,
	}, b.Attribs)

	// shaders are only needed for linking
	assert.Equal(t, 2, b.Allocs(engine.KindShader))
	assert.Equal(t, 2, b.Frees(engine.KindShader))

	img := b.Textures[w.Textured(e).Texture]
	require.NotNil(t, img)
	assert.Equal(t, engine.RGBA, img.Format)
}

func TestMakeRenderableColored(t *testing.T) {
	cfg := assets(t)
	vs, fs := shaders(cfg)
	b := enginetest.New()
	w := ecs.NewWorld()
	e := placed(t, w)
	require.NoError(t, w.SetColored(e, ecs.Colored{R: 1}))

	require.NoError(t, MakeRenderableFromData(w, b, e, model.Cube(), vs, fs, ""))

	assert.Equal(t, ecs.StyleColored, w.Renderable(e).Style)
	assert.False(t, w.Mask(e).Has(ecs.ComponentTextured))
	assert.Equal(t, 3, w.GC(e).Count(engine.KindBuffer))
	_, uploaded := b.Attribs[engine.TexCoordAttrib]
	assert.False(t, uploaded)
}

func TestMakeRenderableFromOBJ(t *testing.T) {
	cfg := assets(t)
	vs, fs := shaders(cfg)
	b := enginetest.New()
	w := ecs.NewWorld()
	e := placed(t, w)

	require.NoError(t, MakeRenderable(w, b, e, cfg.Asset("stall.obj"), vs, fs, cfg.Asset("stall.png")))
	assert.Equal(t, int32(3), w.Renderable(e).IndexCount)

	// three vertices with 3, 2, 3 and 1 values per element
	counts := map[int]int{}
	for _, h := range w.GC(e).Handles() {
		if h.Kind == engine.KindBuffer {
			counts[b.Buffers[h]]++
		}
	}
	assert.Equal(t, map[int]int{9: 2, 6: 1, 3: 1}, counts)
}

func TestMakeRenderableDependencies(t *testing.T) {
	cfg := assets(t)
	vs, fs := shaders(cfg)
	b := enginetest.New()
	w := ecs.NewWorld()

	e, _ := w.CreateEntity()
	require.NoError(t, w.SetDisplacement(e, ecs.Displacement{Scale: 1}))

	err := MakeRenderableFromData(w, b, e, model.Cube(), vs, fs, "")
	assert.ErrorIs(t, err, ErrMissingDependencies)

	err = MakeRenderable(w, b, e, cfg.Asset("stall.obj"), vs, fs, "")
	assert.ErrorIs(t, err, ErrMissingDependencies)

	assert.Equal(t, ecs.ComponentDisplacement, w.Mask(e))
	assert.Zero(t, b.Live())

	err = MakeRenderableFromData(w, b, 42, model.Cube(), vs, fs, "")
	assert.ErrorIs(t, err, ecs.ErrNotAlive)
}

func TestMakeRenderableTwice(t *testing.T) {
	cfg := assets(t)
	vs, fs := shaders(cfg)
	b := enginetest.New()
	w := ecs.NewWorld()
	e := placed(t, w)

	require.NoError(t, MakeRenderableFromData(w, b, e, model.Cube(), vs, fs, cfg.Asset("crate.png")))
	live := b.Live()

	err := MakeRenderableFromData(w, b, e, model.Cube(), vs, fs, cfg.Asset("crate.png"))
	assert.ErrorIs(t, err, ErrAlreadyRenderable)
	assert.Equal(t, live, b.Live())
}

func TestMakeRenderableFailureReleases(t *testing.T) {
	cfg := assets(t)
	vs, fs := shaders(cfg)

	tests := []struct {
		name    string
		prepare func(b *enginetest.Backend)
		obj     string
		vs      string
		tex     string
		target  error
	}{
		{
			name:    "fragment compile",
			prepare: func(b *enginetest.Backend) { b.CompileErrors[engine.FragmentStage] = "0:1: syntax error" },
			vs:      vs,
			tex:     cfg.Asset("crate.png"),
			target:  engine.ErrShaderCompile,
		},
		{
			name:    "link",
			prepare: func(b *enginetest.Backend) { b.LinkError = "no main" },
			vs:      vs,
			tex:     cfg.Asset("crate.png"),
			target:  engine.ErrLink,
		},
		{
			name:   "missing shader",
			vs:     cfg.Asset("missing.glsl"),
			tex:    cfg.Asset("crate.png"),
			target: engine.ErrFileUnreadable,
		},
		{
			name:   "missing texture",
			vs:     vs,
			tex:    cfg.Asset("missing.png"),
			target: engine.ErrFileUnreadable,
		},
		{
			name:   "broken texture",
			vs:     vs,
			tex:    cfg.Asset("vertex.glsl"),
			target: engine.ErrImageDecode,
		},
		{
			name:   "missing model",
			obj:    cfg.Asset("missing.obj"),
			vs:     vs,
			target: engine.ErrFileUnreadable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := enginetest.New()
			if tt.prepare != nil {
				tt.prepare(b)
			}
			w := ecs.NewWorld()
			e := placed(t, w)
			before := w.Mask(e)

			var err error
			if tt.obj != "" {
				err = MakeRenderable(w, b, e, tt.obj, tt.vs, fs, tt.tex)
			} else {
				err = MakeRenderableFromData(w, b, e, model.Cube(), tt.vs, fs, tt.tex)
			}

			assert.ErrorIs(t, err, tt.target)
			assert.Equal(t, before, w.Mask(e))
			requireReleased(t, b)
		})
	}
}

func TestMakeRenderableMalformedModel(t *testing.T) {
	cfg := assets(t)
	vs, fs := shaders(cfg)
	path := filepath.Join(cfg.Assets, "quad.obj")
	require.NoError(t, os.WriteFile(path, []byte("v 0 0 0\nvt 0 0\nvn 0 0 1\nf 1/1/1 1/1/1 1/1/1 1/1/1\n"), 0o644))

	b := enginetest.New()
	w := ecs.NewWorld()
	e := placed(t, w)

	err := MakeRenderable(w, b, e, path, vs, fs, "")
	assert.ErrorIs(t, err, model.ErrMalformedToken)
	assert.Zero(t, b.Live())
}

func TestCollectGarbage(t *testing.T) {
	cfg := assets(t)
	vs, fs := shaders(cfg)
	b := enginetest.New()
	w := ecs.NewWorld()
	e := placed(t, w)

	require.NoError(t, MakeRenderableFromData(w, b, e, model.Cube(), vs, fs, cfg.Asset("crate.png")))
	require.NoError(t, CollectGarbage(w, b, e))

	requireReleased(t, b)
	assert.Equal(t, ecs.ComponentDisplacement|ecs.ComponentRotation, w.Mask(e))

	// no double free
	assert.ErrorIs(t, CollectGarbage(w, b, e), ErrNotRenderable)
	assert.Empty(t, b.Invalid)

	// may be made renderable again
	require.NoError(t, MakeRenderableFromData(w, b, e, model.Cube(), vs, fs, ""))
}

func TestDestroyEntityReleases(t *testing.T) {
	cfg := assets(t)
	vs, fs := shaders(cfg)
	b := enginetest.New()
	w := ecs.NewWorld()
	e := placed(t, w)
	require.NoError(t, MakeRenderableFromData(w, b, e, model.Cube(), vs, fs, cfg.Asset("crate.png")))

	// the world alone refuses to forget gpu resources
	assert.ErrorIs(t, w.DestroyEntity(e), ecs.ErrResourcesHeld)
	assert.True(t, w.Alive(e))

	require.NoError(t, DestroyEntity(w, b, e))
	assert.False(t, w.Alive(e))
	requireReleased(t, b)

	// plain entities need no gc step
	f := placed(t, w)
	require.NoError(t, DestroyEntity(w, b, f))
	assert.Zero(t, w.Count())
}

func TestDestroyEntityPartialResources(t *testing.T) {
	cfg := assets(t)
	vs, fs := shaders(cfg)
	b := enginetest.New()
	w := ecs.NewWorld()

	// a renderable attached by hand, without a gc list
	e := placed(t, w)
	prog, err := engine.LoadProgram(b, vs, fs, Uniforms)
	require.NoError(t, err)
	require.NoError(t, w.SetRenderable(e, ecs.Renderable{
		Program:     prog.Handle,
		VertexArray: b.GenVertexArray(),
		Uniforms:    prog.Uniforms,
	}))

	// a gc list without a renderable
	f := placed(t, w)
	var gc engine.Bundle
	gc.Add(b.GenFloatBuffer([]float32{1, 2, 3}))
	require.NoError(t, w.SetGC(f, ecs.GC{Bundle: gc}))

	require.NoError(t, DestroyEntity(w, b, e))
	require.NoError(t, DestroyEntity(w, b, f))
	assert.Zero(t, w.Count())
	requireReleased(t, b)
}

func TestScenesRelease(t *testing.T) {
	cfg := assets(t)

	for _, name := range SceneNames() {
		t.Run(name, func(t *testing.T) {
			b := enginetest.New()
			w := ecs.NewWorld()

			_, err := Scenes[name].Build(w, b, cfg)
			require.NoError(t, err)
			assert.NotZero(t, w.Count())
			assert.NotZero(t, b.Live())

			require.NoError(t, DestroyAll(w, b))
			assert.Zero(t, w.Count())
			requireReleased(t, b)
		})
	}
}
