package model

import (
	"errors"
	"fmt"

	"github.com/Skyb0rg007/OpenGL-Testing/engine"
)

const (
	TerrainVertexCount = 128
	TerrainSize        = 800
)

var ErrTerrainSize = errors.New("model: terrain needs at least 2 vertices per side")

// Terrain generates a flat n*n vertex grid spanning size units on x and z,
// starting at the origin. n must be at least 2.
func Terrain(n int, size float32) (*engine.ModelData, error) {
	if n < 2 {
		return nil, fmt.Errorf("terrain with %d vertices per side: %w", n, ErrTerrainSize)
	}
	count := n * n
	cells := n - 1

	m := &engine.ModelData{
		Positions: make([]float32, count*3),
		Normals:   make([]float32, count*3),
		TexCoords: make([]float32, count*2),
		Indices:   make([]uint32, 0, 6*cells*cells),
	}

	v := 0
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			u := float32(j) / float32(cells)
			w := float32(i) / float32(cells)

			m.Positions[v*3] = u * size
			m.Positions[v*3+1] = 0
			m.Positions[v*3+2] = w * size

			m.Normals[v*3] = 0
			m.Normals[v*3+1] = 1
			m.Normals[v*3+2] = 0

			m.TexCoords[v*2] = u
			m.TexCoords[v*2+1] = w
			v++
		}
	}

	for gz := 0; gz < cells; gz++ {
		for gx := 0; gx < cells; gx++ {
			topLeft := uint32(gz*n + gx)
			topRight := topLeft + 1
			bottomLeft := uint32((gz+1)*n + gx)
			bottomRight := bottomLeft + 1

			m.Indices = append(m.Indices,
				topLeft, bottomLeft, topRight,
				topRight, bottomLeft, bottomRight)
		}
	}

	return m, nil
}
