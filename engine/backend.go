package engine

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// Kind identifies the driver object class of a Handle
type Kind int

const (
	KindNone Kind = iota
	KindBuffer
	KindVertexArray
	KindShader
	KindProgram
	KindTexture
)

func (k Kind) String() string {
	switch k {
	case KindBuffer:
		return "buffer"
	case KindVertexArray:
		return "vertex array"
	case KindShader:
		return "shader"
	case KindProgram:
		return "program"
	case KindTexture:
		return "texture"
	}
	return "none"
}

// Handle is a driver object id tagged with its class.
// The zero Handle is the "unbind" value for every class.
type Handle struct {
	Kind Kind
	ID   uint32
}

func (h Handle) Valid() bool {
	return h.Kind != KindNone && h.ID != 0
}

func (h Handle) String() string {
	return fmt.Sprintf("%v(%d)", h.Kind, h.ID)
}

// Stage of a shader
type Stage int

const (
	VertexStage Stage = iota
	FragmentStage
)

func (s Stage) String() string {
	if s == FragmentStage {
		return "fragment"
	}
	return "vertex"
}

// fixed vertex attribute bindings
const (
	PositionAttrib uint32 = 0
	TexCoordAttrib uint32 = 1
	NormalAttrib   uint32 = 2
)

// Backend is the subset of the graphics API used by the world.
// Implementations are bound to the thread owning the context.
type Backend interface {
	// GenVertexArray creates a vertex array object and leaves it bound.
	GenVertexArray() Handle
	BindVertexArray(Handle)

	// GenFloatBuffer uploads vertex data into a new array buffer and leaves it bound.
	GenFloatBuffer(data []float32) Handle
	// GenIndexBuffer uploads triangle indices into a new element array buffer.
	GenIndexBuffer(data []uint32) Handle
	// VertexAttrib points attribute index at the bound array buffer,
	// tightly packed floats of the given size, and enables it.
	VertexAttrib(index uint32, size int32)

	// CompileShader returns a *ShaderError carrying the driver log on failure.
	CompileShader(stage Stage, source string) (Handle, error)
	// LinkProgram returns a *LinkError carrying the driver log on failure.
	// The shaders stay owned by the caller.
	LinkProgram(vertex, fragment Handle) (Handle, error)
	// UniformLocation returns -1 for unknown or inactive uniforms.
	UniformLocation(program Handle, name string) int32
	UseProgram(Handle)

	GenTexture(img *Image) Handle
	BindTexture(unit uint32, texture Handle)

	UniformMatrix4(location int32, m mgl32.Mat4)
	Uniform3(location int32, v mgl32.Vec3)

	// DrawElements draws count indices of the bound element buffer as triangles.
	DrawElements(count int32)

	Viewport(width, height int)
	Clear(color mgl32.Vec4)

	// Delete releases any kind of handle.
	Delete(Handle)
}
