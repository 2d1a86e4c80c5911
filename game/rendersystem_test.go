package game

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Skyb0rg007/OpenGL-Testing/ecs"
	"github.com/Skyb0rg007/OpenGL-Testing/engine"
	"github.com/Skyb0rg007/OpenGL-Testing/engine/enginetest"
	"github.com/Skyb0rg007/OpenGL-Testing/model"
)

func TestModelMatrix(t *testing.T) {
	d := ecs.Displacement{X: 1, Y: 2, Z: 3, Scale: 2}
	r := ecs.Rotation{X: 0.3, Y: -1.2, Z: 2.5}

	expected := mgl32.Translate3D(1, 2, 3).
		Mul4(mgl32.HomogRotate3DX(0.3)).
		Mul4(mgl32.HomogRotate3DY(-1.2)).
		Mul4(mgl32.HomogRotate3DZ(2.5)).
		Mul4(mgl32.Diag4(mgl32.Vec4{2, 2, 2, 1}))

	if m := ModelMatrix(d, r); !m.ApproxEqualThreshold(expected, 1e-5) {
		t.Errorf("model matrix\n%v\nexpected\n%v", m, expected)
	}
}

func TestModelMatrixTransformsPoint(t *testing.T) {
	// scale, then a quarter turn around y, then translate
	m := ModelMatrix(
		ecs.Displacement{X: 1, Y: 2, Z: 3, Scale: 2},
		ecs.Rotation{Y: math.Pi / 2})

	p := m.Mul4x1(mgl32.Vec4{1, 0, 0, 1})
	assert.InDelta(t, 1, p[0], 1e-5)
	assert.InDelta(t, 2, p[1], 1e-5)
	assert.InDelta(t, 1, p[2], 1e-5)
	assert.InDelta(t, 1, p[3], 1e-5)

	// identity for the neutral pose
	id := ModelMatrix(ecs.Displacement{Scale: 1}, ecs.Rotation{})
	assert.True(t, id.ApproxEqual(mgl32.Ident4()))
}

type renderFixture struct {
	cfg Config
	b   *enginetest.Backend
	w   *ecs.World
}

func newRenderFixture(t *testing.T) *renderFixture {
	return &renderFixture{
		cfg: assets(t),
		b:   enginetest.New(),
		w:   ecs.NewWorld(),
	}
}

func (f *renderFixture) textured(t *testing.T) ecs.Entity {
	vs, fs := shaders(f.cfg)
	e := placed(t, f.w)
	require.NoError(t, MakeRenderableFromData(f.w, f.b, e, model.Cube(), vs, fs, f.cfg.Asset("crate.png")))
	return e
}

func (f *renderFixture) colored(t *testing.T) ecs.Entity {
	vs, fs := shaders(f.cfg)
	e := placed(t, f.w)
	require.NoError(t, f.w.SetColored(e, ecs.Colored{G: 1}))
	require.NoError(t, MakeRenderableFromData(f.w, f.b, e, model.Cube(), vs, fs, ""))
	return e
}

func TestRenderTextured(t *testing.T) {
	f := newRenderFixture(t)
	e := f.textured(t)

	f.w.State.View = mgl32.Translate3D(0, 0, -5)
	f.w.State.Projection = f.cfg.Projection(800, 600)
	f.w.State.Light = ecs.Light{Position: mgl32.Vec3{1, 2, 3}, Color: mgl32.Vec3{0.5, 0.5, 0.5}}

	require.NoError(t, NewRenderSystem(f.b).Update(f.w.View()))
	require.Len(t, f.b.Draws, 1)

	d := f.b.Draws[0]
	r := f.w.Renderable(e)
	assert.Equal(t, r.Program, d.Program)
	assert.Equal(t, r.VertexArray, d.VertexArray)
	assert.Equal(t, f.w.Textured(e).Texture, d.Texture)
	assert.Equal(t, int32(36), d.Count)

	disp, _ := f.w.View().Displacement(e)
	rot, _ := f.w.View().Rotation(e)
	assert.Equal(t, ModelMatrix(disp, rot), d.Matrices[f.b.Location("model")])
	assert.Equal(t, f.w.State.View, d.Matrices[f.b.Location("view")])
	assert.Equal(t, f.w.State.Projection, d.Matrices[f.b.Location("projection")])
	assert.Equal(t, mgl32.Vec3{1, 2, 3}, d.Vectors[f.b.Location("lightPosition")])
	assert.Equal(t, mgl32.Vec3{0.5, 0.5, 0.5}, d.Vectors[f.b.Location("lightColor")])

	// vertex array unbound after drawing
	assert.NotZero(t, f.b.Unbinds)
}

func TestRenderSkipsUnusedUniforms(t *testing.T) {
	f := newRenderFixture(t)
	f.b.Inactive["view"] = true
	f.b.Inactive["lightColor"] = true
	f.textured(t)

	require.NoError(t, NewRenderSystem(f.b).Update(f.w.View()))
	require.Len(t, f.b.Draws, 1)

	d := f.b.Draws[0]
	assert.Len(t, d.Matrices, 2)
	assert.Len(t, d.Vectors, 1)
	_, found := d.Matrices[-1]
	assert.False(t, found)
}

func TestRenderColoredUnsupported(t *testing.T) {
	f := newRenderFixture(t)
	c := f.colored(t)
	f.textured(t)

	err := NewRenderSystem(f.b).Update(f.w.View())
	assert.ErrorIs(t, err, ErrColoredUnsupported)
	assert.Contains(t, err.Error(), "0")

	// the textured entity behind it is still drawn
	require.Len(t, f.b.Draws, 1)
	assert.NotEqual(t, f.w.Renderable(c).Program, f.b.Draws[0].Program)
}

func TestRenderNoSurfaceAborts(t *testing.T) {
	f := newRenderFixture(t)

	e := placed(t, f.w)
	require.NoError(t, f.w.SetRenderable(e, ecs.Renderable{
		Program:     engine.Handle{Kind: engine.KindProgram, ID: 99},
		VertexArray: engine.Handle{Kind: engine.KindVertexArray, ID: 98},
		IndexCount:  3,
	}))
	f.textured(t)

	err := NewRenderSystem(f.b).Update(f.w.View())
	assert.ErrorIs(t, err, ErrNoSurface)
	assert.Empty(t, f.b.Draws)
}

func TestRenderStyleFollowsMask(t *testing.T) {
	tests := []struct {
		name   string
		build  func(t *testing.T, f *renderFixture) ecs.Entity
		target error
	}{
		{
			name: "texture attached after upload",
			build: func(t *testing.T, f *renderFixture) ecs.Entity {
				vs, fs := shaders(f.cfg)
				e := placed(t, f.w)
				require.NoError(t, MakeRenderableFromData(f.w, f.b, e, model.Cube(), vs, fs, ""))
				require.NoError(t, f.w.SetTextured(e, ecs.Textured{Texture: engine.Handle{Kind: engine.KindTexture, ID: 77}}))
				return e
			},
			target: ErrStyleMismatch,
		},
		{
			name: "colour attached after upload",
			build: func(t *testing.T, f *renderFixture) ecs.Entity {
				vs, fs := shaders(f.cfg)
				e := placed(t, f.w)
				require.NoError(t, MakeRenderableFromData(f.w, f.b, e, model.Cube(), vs, fs, ""))
				require.NoError(t, f.w.SetColored(e, ecs.Colored{B: 1}))
				return e
			},
			target: ErrStyleMismatch,
		},
		{
			name: "colour detached",
			build: func(t *testing.T, f *renderFixture) ecs.Entity {
				e := f.colored(t)
				require.NoError(t, f.w.Detach(e, ecs.ComponentColored))
				return e
			},
			target: ErrNoSurface,
		},
		{
			name: "texture swapped for colour",
			build: func(t *testing.T, f *renderFixture) ecs.Entity {
				e := f.textured(t)
				require.NoError(t, f.w.Detach(e, ecs.ComponentTextured))
				require.NoError(t, f.w.SetColored(e, ecs.Colored{R: 1}))
				return e
			},
			target: ErrStyleMismatch,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newRenderFixture(t)
			tt.build(t, f)

			err := NewRenderSystem(f.b).Update(f.w.View())
			assert.ErrorIs(t, err, tt.target)
			assert.NotErrorIs(t, err, ErrColoredUnsupported)
			assert.Empty(t, f.b.Draws)
		})
	}
}

func TestRenderIgnoresIncomplete(t *testing.T) {
	f := newRenderFixture(t)
	e := f.textured(t)
	require.NoError(t, f.w.Detach(e, ecs.ComponentRotation))

	assert.NoError(t, NewRenderSystem(f.b).Update(f.w.View()))
	assert.Empty(t, f.b.Draws)
}

func TestClearSystem(t *testing.T) {
	b := enginetest.New()
	s := NewClearSystem(b, mgl32.Vec4{0, 0, 0, 1})
	require.NoError(t, s.Update(ecs.NewWorld().View()))
	assert.Equal(t, 1, b.Clears)
}
