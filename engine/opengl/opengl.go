// Package opengl implements engine.Backend on an OpenGL 3.3 core context.
package opengl

import (
	"fmt"
	"log"
	"strings"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Skyb0rg007/OpenGL-Testing/engine"
)

// Backend must be used from the thread that owns the current context.
type Backend struct{}

// New loads the gl function pointers of the current context and sets up
// depth testing.
func New() (*Backend, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("could not initialize gl: %w", err)
	}
	log.Printf("opengl version %s", gl.GoStr(gl.GetString(gl.VERSION)))

	// depth
	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LEQUAL)
	gl.ClearDepth(1)

	return &Backend{}, nil
}

func (b *Backend) GenVertexArray() engine.Handle {
	var vao uint32
	gl.GenVertexArrays(1, &vao)
	gl.BindVertexArray(vao)
	return engine.Handle{Kind: engine.KindVertexArray, ID: vao}
}

func (b *Backend) BindVertexArray(h engine.Handle) {
	gl.BindVertexArray(h.ID)
}

func (b *Backend) GenFloatBuffer(data []float32) engine.Handle {
	var buffer uint32
	gl.GenBuffers(1, &buffer)
	gl.BindBuffer(gl.ARRAY_BUFFER, buffer)
	if len(data) > 0 {
		gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, gl.Ptr(data), gl.STATIC_DRAW)
	}
	return engine.Handle{Kind: engine.KindBuffer, ID: buffer}
}

func (b *Backend) GenIndexBuffer(data []uint32) engine.Handle {
	var buffer uint32
	gl.GenBuffers(1, &buffer)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, buffer)
	if len(data) > 0 {
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(data)*4, gl.Ptr(data), gl.STATIC_DRAW)
	}
	return engine.Handle{Kind: engine.KindBuffer, ID: buffer}
}

func (b *Backend) VertexAttrib(index uint32, size int32) {
	gl.VertexAttribPointer(index, size, gl.FLOAT, false, size*4, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(index)
}

func (b *Backend) CompileShader(stage engine.Stage, source string) (engine.Handle, error) {
	kind := uint32(gl.VERTEX_SHADER)
	if stage == engine.FragmentStage {
		kind = gl.FRAGMENT_SHADER
	}

	shader := gl.CreateShader(kind)
	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var length int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &length)
		info := strings.Repeat("\x00", int(length+1))
		gl.GetShaderInfoLog(shader, length, nil, gl.Str(info))
		gl.DeleteShader(shader)

		return engine.Handle{}, &engine.ShaderError{Stage: stage, Log: strings.TrimRight(info, "\x00")}
	}

	return engine.Handle{Kind: engine.KindShader, ID: shader}, nil
}

func (b *Backend) LinkProgram(vertex, fragment engine.Handle) (engine.Handle, error) {
	program := gl.CreateProgram()
	gl.AttachShader(program, vertex.ID)
	gl.AttachShader(program, fragment.ID)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var length int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &length)
		info := strings.Repeat("\x00", int(length+1))
		gl.GetProgramInfoLog(program, length, nil, gl.Str(info))
		gl.DeleteProgram(program)

		return engine.Handle{}, &engine.LinkError{Log: strings.TrimRight(info, "\x00")}
	}

	gl.DetachShader(program, vertex.ID)
	gl.DetachShader(program, fragment.ID)

	return engine.Handle{Kind: engine.KindProgram, ID: program}, nil
}

func (b *Backend) UniformLocation(program engine.Handle, name string) int32 {
	return gl.GetUniformLocation(program.ID, gl.Str(name+"\x00"))
}

func (b *Backend) UseProgram(h engine.Handle) {
	gl.UseProgram(h.ID)
}

func (b *Backend) GenTexture(img *engine.Image) engine.Handle {
	var texture uint32
	gl.GenTextures(1, &texture)
	gl.BindTexture(gl.TEXTURE_2D, texture)

	// set texture parameters
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)

	format := uint32(gl.RGB)
	if img.Format == engine.RGBA {
		format = gl.RGBA
	}

	// rgb rows are not 4 byte aligned
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, int32(format),
		int32(img.Width), int32(img.Height),
		0, format, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))

	// generate mipmaps
	gl.GenerateMipmap(gl.TEXTURE_2D)

	gl.BindTexture(gl.TEXTURE_2D, 0)
	return engine.Handle{Kind: engine.KindTexture, ID: texture}
}

func (b *Backend) BindTexture(unit uint32, h engine.Handle) {
	gl.ActiveTexture(gl.TEXTURE0 + unit)
	gl.BindTexture(gl.TEXTURE_2D, h.ID)
}

func (b *Backend) UniformMatrix4(location int32, m mgl32.Mat4) {
	gl.UniformMatrix4fv(location, 1, false, &m[0])
}

func (b *Backend) Uniform3(location int32, v mgl32.Vec3) {
	gl.Uniform3f(location, v[0], v[1], v[2])
}

func (b *Backend) DrawElements(count int32) {
	gl.DrawElements(gl.TRIANGLES, count, gl.UNSIGNED_INT, gl.PtrOffset(0))
}

func (b *Backend) Viewport(width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
}

func (b *Backend) Clear(c mgl32.Vec4) {
	gl.ClearColor(c[0], c[1], c[2], c[3])
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

func (b *Backend) Delete(h engine.Handle) {
	id := h.ID
	switch h.Kind {
	case engine.KindBuffer:
		gl.DeleteBuffers(1, &id)
	case engine.KindVertexArray:
		gl.DeleteVertexArrays(1, &id)
	case engine.KindShader:
		gl.DeleteShader(id)
	case engine.KindProgram:
		gl.DeleteProgram(id)
	case engine.KindTexture:
		gl.DeleteTextures(1, &id)
	}
}
