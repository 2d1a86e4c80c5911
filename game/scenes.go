package game

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Skyb0rg007/OpenGL-Testing/ecs"
	"github.com/Skyb0rg007/OpenGL-Testing/engine"
	"github.com/Skyb0rg007/OpenGL-Testing/model"
)

var ErrUnknownScene = errors.New("game: unknown scene")

// Scene populates a World. Build returns the entity driven by the keyboard;
// scenes with CameraControl move the camera instead and the entity is ignored.
type Scene struct {
	Name          string
	Camera        ecs.Camera
	CameraControl bool
	Build         func(w *ecs.World, b engine.Backend, cfg Config) (ecs.Entity, error)
}

var Scenes = map[string]Scene{
	"cubes": {
		Name:  "cubes",
		Build: buildCubes,
	},
	"stall": {
		Name:  "stall",
		Build: buildStall,
	},
	"terrain": {
		Name:          "terrain",
		Camera:        ecs.Camera{Position: mgl32.Vec3{0, 3, 0}},
		CameraControl: true,
		Build:         buildTerrain,
	},
	"dragons": {
		Name:          "dragons",
		Camera:        ecs.Camera{Position: mgl32.Vec3{0, 2, 10}},
		CameraControl: true,
		Build:         buildDragons,
	},
}

// SceneNames returns the registered scene names, sorted
func SceneNames() []string {
	names := make([]string, 0, len(Scenes))
	for n := range Scenes {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

func LookupScene(name string) (Scene, error) {
	s, ok := Scenes[name]
	if !ok {
		return Scene{}, fmt.Errorf("%w %q, known scenes %v", ErrUnknownScene, name, SceneNames())
	}
	return s, nil
}

// spawn creates an entity with a position and an orientation
func spawn(w *ecs.World, d ecs.Displacement, r ecs.Rotation) (ecs.Entity, error) {
	e, err := w.CreateEntity()
	if err != nil {
		return 0, err
	}
	if err := w.SetDisplacement(e, d); err != nil {
		return 0, err
	}
	if err := w.SetRotation(e, r); err != nil {
		return 0, err
	}
	return e, nil
}

// spawnLight creates an invisible light source at p
func spawnLight(w *ecs.World, p mgl32.Vec3, intensity float32) error {
	e, err := spawn(w, ecs.Displacement{X: p[0], Y: p[1], Z: p[2], Scale: 1}, ecs.Rotation{})
	if err != nil {
		return err
	}
	return w.SetIlluminated(e, ecs.Illuminated{Intensity: intensity})
}

func shaders(cfg Config) (string, string) {
	return cfg.Asset("vertex.glsl"), cfg.Asset("fragment.glsl")
}

// 3x3 wall of crates, the center one is controlled
func buildCubes(w *ecs.World, b engine.Backend, cfg Config) (ecs.Entity, error) {
	vs, fs := shaders(cfg)

	var center ecs.Entity
	for i := 0; i < 9; i++ {
		x, y := float32(i%3-1)*1.5, float32(i/3-1)*1.5

		e, err := spawn(w,
			ecs.Displacement{X: x, Y: y, Z: -6, Scale: 1},
			ecs.Rotation{X: x * 0.2, Y: y * 0.2})
		if err != nil {
			return 0, err
		}
		if err := MakeRenderableFromData(w, b, e, model.Cube(), vs, fs, cfg.Asset("crate.png")); err != nil {
			return 0, err
		}

		if i == 4 {
			center = e
		}
	}

	return center, spawnLight(w, mgl32.Vec3{0, 4, 0}, 1)
}

func buildStall(w *ecs.World, b engine.Backend, cfg Config) (ecs.Entity, error) {
	vs, fs := shaders(cfg)

	e, err := spawn(w,
		ecs.Displacement{Y: -2.5, Z: -15, Scale: 1},
		ecs.Rotation{Y: math.Pi})
	if err != nil {
		return 0, err
	}
	if err := MakeRenderable(w, b, e, cfg.Asset("stall.obj"), vs, fs, cfg.Asset("stall.png")); err != nil {
		return 0, err
	}

	return e, spawnLight(w, mgl32.Vec3{0, 10, 0}, 1)
}

func buildTerrain(w *ecs.World, b engine.Backend, cfg Config) (ecs.Entity, error) {
	vs, fs := shaders(cfg)

	half := float32(model.TerrainSize) / 2
	ground, err := spawn(w, ecs.Displacement{X: -half, Z: -half, Scale: 1}, ecs.Rotation{})
	if err != nil {
		return 0, err
	}
	data, err := model.Terrain(model.TerrainVertexCount, model.TerrainSize)
	if err != nil {
		return 0, err
	}
	if err := MakeRenderableFromData(w, b, ground, data, vs, fs, cfg.Asset("grass.png")); err != nil {
		return 0, err
	}

	// a few crates to have something to look at
	for i := 0; i < 5; i++ {
		e, err := spawn(w,
			ecs.Displacement{X: float32(i-2) * 4, Y: 1, Z: -10 - float32(i%2)*5, Scale: 2},
			ecs.Rotation{Y: float32(i) * 0.3})
		if err != nil {
			return 0, err
		}
		if err := MakeRenderableFromData(w, b, e, model.Cube(), vs, fs, cfg.Asset("crate.png")); err != nil {
			return 0, err
		}
	}

	return ground, spawnLight(w, mgl32.Vec3{0, 50, 0}, 1)
}

// dragons drift slowly away from the camera
func buildDragons(w *ecs.World, b engine.Backend, cfg Config) (ecs.Entity, error) {
	vs, fs := shaders(cfg)

	// parse once, upload per entity
	data, err := model.LoadOBJ(cfg.Asset("dragon.obj"))
	if err != nil {
		return 0, err
	}

	var first ecs.Entity
	for i := 0; i < 5; i++ {
		e, err := spawn(w,
			ecs.Displacement{X: float32(i-2) * 6, Z: -10, Scale: 0.5},
			ecs.Rotation{Y: float32(i) * math.Pi / 4})
		if err != nil {
			return 0, err
		}
		if err := w.SetVelocity(e, ecs.Velocity{Z: -0.01 * float32(i+1)}); err != nil {
			return 0, err
		}
		if err := MakeRenderableFromData(w, b, e, data, vs, fs, cfg.Asset("dragon.png")); err != nil {
			return 0, err
		}

		if i == 0 {
			first = e
		}
	}

	return first, spawnLight(w, mgl32.Vec3{0, 20, 10}, 1)
}
