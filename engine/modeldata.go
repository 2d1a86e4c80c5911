package engine

// ModelData is vertex indexed geometry ready for upload.
// Positions and Normals hold 3 floats per vertex, TexCoords 2, Indices 3 per triangle.
// It is produced by a loader, handed to the buffer upload and then dropped.
type ModelData struct {
	Positions []float32
	TexCoords []float32
	Normals   []float32
	Indices   []uint32
}

// VertexCount returns the number of vertices described by Positions
func (m *ModelData) VertexCount() int {
	return len(m.Positions) / 3
}
