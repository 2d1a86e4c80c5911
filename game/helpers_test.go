package game

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Skyb0rg007/OpenGL-Testing/ecs"
	"github.com/Skyb0rg007/OpenGL-Testing/engine"
	"github.com/Skyb0rg007/OpenGL-Testing/engine/enginetest"
)

type keys map[Key]bool

func (k keys) Pressed(key Key) bool { return k[key] }

const testOBJ = `v 0 0 0
v 1 0 0
v 0 1 0
vt 0 0
vt 1 0
vt 0 1
vn 0 0 1
f 1/1/1 2/2/1 3/3/1
`

// assets writes shaders, a texture and a model into a temporary asset
// directory and returns a config using it
func assets(t *testing.T) Config {
	t.Helper()
	dir := t.TempDir()

	write := func(name, data string) {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(data), 0o644))
	}
	write("vertex.glsl", "#version 330 core\nvoid main() {}\n")
	write("fragment.glsl", "#version 330 core\nvoid main() {}\n")
	write("stall.obj", testOBJ)
	write("dragon.obj", testOBJ)

	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.NRGBA{255, 0, 0, 255})
	img.Set(1, 1, color.NRGBA{0, 0, 255, 128})
	for _, name := range []string{"crate.png", "grass.png", "stall.png", "dragon.png"} {
		f, err := os.Create(filepath.Join(dir, name))
		require.NoError(t, err)
		require.NoError(t, png.Encode(f, img))
		require.NoError(t, f.Close())
	}

	cfg := DefaultConfig()
	cfg.Assets = dir
	return cfg
}

// placed creates an entity with Displacement and Rotation
func placed(t *testing.T, w *ecs.World) ecs.Entity {
	t.Helper()
	e, err := spawn(w, ecs.Displacement{X: 1, Y: 2, Z: 3, Scale: 1}, ecs.Rotation{Y: 0.5})
	require.NoError(t, err)
	return e
}

var kinds = []engine.Kind{
	engine.KindBuffer,
	engine.KindVertexArray,
	engine.KindShader,
	engine.KindProgram,
	engine.KindTexture,
}

// requireReleased checks that every handle was deleted exactly once
func requireReleased(t *testing.T, b *enginetest.Backend) {
	t.Helper()
	for _, k := range kinds {
		require.Equal(t, b.Allocs(k), b.Frees(k), "%v handles", k)
	}
	require.Zero(t, b.Live())
	require.Empty(t, b.Invalid)
}
