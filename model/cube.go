package model

import (
	"github.com/Skyb0rg007/OpenGL-Testing/engine"
)

// unit cube centered at the origin, four vertices per face
var cubePositions = []float32{
	// back
	-0.5, 0.5, -0.5,
	-0.5, -0.5, -0.5,
	0.5, -0.5, -0.5,
	0.5, 0.5, -0.5,

	// front
	-0.5, 0.5, 0.5,
	-0.5, -0.5, 0.5,
	0.5, -0.5, 0.5,
	0.5, 0.5, 0.5,

	// right
	0.5, 0.5, -0.5,
	0.5, -0.5, -0.5,
	0.5, -0.5, 0.5,
	0.5, 0.5, 0.5,

	// left
	-0.5, 0.5, -0.5,
	-0.5, -0.5, -0.5,
	-0.5, -0.5, 0.5,
	-0.5, 0.5, 0.5,

	// top
	-0.5, 0.5, 0.5,
	-0.5, 0.5, -0.5,
	0.5, 0.5, -0.5,
	0.5, 0.5, 0.5,

	// bottom
	-0.5, -0.5, 0.5,
	-0.5, -0.5, -0.5,
	0.5, -0.5, -0.5,
	0.5, -0.5, 0.5,
}

var cubeFaceNormals = [6][3]float32{
	{0, 0, -1},
	{0, 0, 1},
	{1, 0, 0},
	{-1, 0, 0},
	{0, 1, 0},
	{0, -1, 0},
}

var cubeFaceTexCoords = []float32{
	0, 0,
	0, 1,
	1, 1,
	1, 0,
}

var cubeFaceIndices = []uint32{
	0, 1, 3,
	3, 1, 2,
}

// Cube returns a fresh copy of the unit cube geometry
func Cube() *engine.ModelData {
	m := &engine.ModelData{
		Positions: append([]float32(nil), cubePositions...),
	}

	for f, n := range cubeFaceNormals {
		for v := 0; v < 4; v++ {
			m.Normals = append(m.Normals, n[0], n[1], n[2])
		}
		m.TexCoords = append(m.TexCoords, cubeFaceTexCoords...)

		for _, i := range cubeFaceIndices {
			m.Indices = append(m.Indices, uint32(f*4)+i)
		}
	}

	return m
}
