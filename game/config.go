package game

import (
	"path/filepath"

	"github.com/go-gl/mathgl/mgl32"
)

type Config struct {
	Title         string
	Width, Height int
	VSync         bool
	FPS           int

	// directory of shaders, models and textures
	Assets string
	Scene  string

	// perspective, fov in degrees
	FOV       float32
	Near, Far float32

	ClearColor mgl32.Vec4

	// check the gl error state after every frame
	Debug bool
}

func DefaultConfig() Config {
	return Config{
		Title:  "opengl testing",
		Width:  800,
		Height: 600,
		VSync:  true,
		FPS:    60,

		Assets: "res",
		Scene:  "cubes",

		FOV:  70,
		Near: 0.1,
		Far:  1000,

		ClearColor: mgl32.Vec4{0.2, 0.3, 0.3, 1},
	}
}

// Asset returns the path of name inside the asset directory
func (c Config) Asset(name string) string {
	return filepath.Join(c.Assets, name)
}

// Projection returns the perspective matrix for a width x height viewport
func (c Config) Projection(width, height int) mgl32.Mat4 {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	aspect := float32(width) / float32(height)
	return mgl32.Perspective(mgl32.DegToRad(c.FOV), aspect, c.Near, c.Far)
}
