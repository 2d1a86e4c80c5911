// Package enginetest provides a driver-free engine.Backend that counts
// allocations and releases per handle kind and records draw calls.
package enginetest

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Skyb0rg007/OpenGL-Testing/engine"
)

// Draw is the pipeline state captured at a DrawElements call
type Draw struct {
	Program     engine.Handle
	VertexArray engine.Handle
	Texture     engine.Handle
	Count       int32
	Matrices    map[int32]mgl32.Mat4
	Vectors     map[int32]mgl32.Vec3
}

// Backend is not safe for concurrent use.
type Backend struct {
	next uint32

	live     map[engine.Handle]bool
	allocs   map[engine.Kind]int
	frees    map[engine.Kind]int
	Invalid  []engine.Handle // deletes of handles that were not live
	Attribs  map[uint32]int32
	Buffers  map[engine.Handle]int // element count per buffer
	Textures map[engine.Handle]*engine.Image

	// CompileErrors forces a compile failure with the given log per stage.
	CompileErrors map[engine.Stage]string
	// LinkError forces a link failure with the given log.
	LinkError string
	// Inactive uniforms resolve to -1; every other name gets a location.
	Inactive  map[string]bool
	locations map[string]int32

	program, vao, texture engine.Handle
	matrices              map[int32]mgl32.Mat4
	vectors               map[int32]mgl32.Vec3

	Draws   []Draw
	Clears  int
	Unbinds int
}

func New() *Backend {
	return &Backend{
		live:          map[engine.Handle]bool{},
		allocs:        map[engine.Kind]int{},
		frees:         map[engine.Kind]int{},
		Attribs:       map[uint32]int32{},
		Buffers:       map[engine.Handle]int{},
		Textures:      map[engine.Handle]*engine.Image{},
		CompileErrors: map[engine.Stage]string{},
		Inactive:      map[string]bool{},
		locations:     map[string]int32{},
		matrices:      map[int32]mgl32.Mat4{},
		vectors:       map[int32]mgl32.Vec3{},
	}
}

func (b *Backend) alloc(k engine.Kind) engine.Handle {
	b.next++
	h := engine.Handle{Kind: k, ID: b.next}
	b.live[h] = true
	b.allocs[k]++
	return h
}

// Allocs returns how many handles of kind k were created
func (b *Backend) Allocs(k engine.Kind) int { return b.allocs[k] }

// Frees returns how many live handles of kind k were deleted
func (b *Backend) Frees(k engine.Kind) int { return b.frees[k] }

// Live returns the number of handles not yet deleted
func (b *Backend) Live() int { return len(b.live) }

func (b *Backend) IsLive(h engine.Handle) bool { return b.live[h] }

func (b *Backend) GenVertexArray() engine.Handle {
	h := b.alloc(engine.KindVertexArray)
	b.vao = h
	return h
}

func (b *Backend) BindVertexArray(h engine.Handle) {
	b.vao = h
	if !h.Valid() {
		b.Unbinds++
	}
}

func (b *Backend) GenFloatBuffer(data []float32) engine.Handle {
	h := b.alloc(engine.KindBuffer)
	b.Buffers[h] = len(data)
	return h
}

func (b *Backend) GenIndexBuffer(data []uint32) engine.Handle {
	h := b.alloc(engine.KindBuffer)
	b.Buffers[h] = len(data)
	return h
}

func (b *Backend) VertexAttrib(index uint32, size int32) {
	b.Attribs[index] = size
}

func (b *Backend) CompileShader(stage engine.Stage, source string) (engine.Handle, error) {
	if log, found := b.CompileErrors[stage]; found {
		return engine.Handle{}, &engine.ShaderError{Stage: stage, Log: log}
	}
	return b.alloc(engine.KindShader), nil
}

func (b *Backend) LinkProgram(vertex, fragment engine.Handle) (engine.Handle, error) {
	if !b.live[vertex] || !b.live[fragment] {
		return engine.Handle{}, &engine.LinkError{Log: fmt.Sprintf("dead shader %v %v", vertex, fragment)}
	}
	if b.LinkError != "" {
		return engine.Handle{}, &engine.LinkError{Log: b.LinkError}
	}
	return b.alloc(engine.KindProgram), nil
}

func (b *Backend) UniformLocation(program engine.Handle, name string) int32 {
	if b.Inactive[name] {
		return -1
	}
	if loc, found := b.locations[name]; found {
		return loc
	}
	loc := int32(len(b.locations))
	b.locations[name] = loc
	return loc
}

// Location returns the location handed out for name, -1 if none
func (b *Backend) Location(name string) int32 {
	if loc, found := b.locations[name]; found && !b.Inactive[name] {
		return loc
	}
	return -1
}

func (b *Backend) UseProgram(h engine.Handle) {
	b.program = h
	b.matrices = map[int32]mgl32.Mat4{}
	b.vectors = map[int32]mgl32.Vec3{}
}

func (b *Backend) GenTexture(img *engine.Image) engine.Handle {
	h := b.alloc(engine.KindTexture)
	b.Textures[h] = img
	return h
}

func (b *Backend) BindTexture(unit uint32, h engine.Handle) {
	b.texture = h
}

func (b *Backend) UniformMatrix4(location int32, m mgl32.Mat4) {
	b.matrices[location] = m
}

func (b *Backend) Uniform3(location int32, v mgl32.Vec3) {
	b.vectors[location] = v
}

func (b *Backend) DrawElements(count int32) {
	d := Draw{
		Program:     b.program,
		VertexArray: b.vao,
		Texture:     b.texture,
		Count:       count,
		Matrices:    map[int32]mgl32.Mat4{},
		Vectors:     map[int32]mgl32.Vec3{},
	}
	for l, m := range b.matrices {
		d.Matrices[l] = m
	}
	for l, v := range b.vectors {
		d.Vectors[l] = v
	}
	b.Draws = append(b.Draws, d)
}

func (b *Backend) Viewport(width, height int) {}

func (b *Backend) Clear(color mgl32.Vec4) {
	b.Clears++
}

func (b *Backend) Delete(h engine.Handle) {
	if !b.live[h] {
		b.Invalid = append(b.Invalid, h)
		return
	}
	delete(b.live, h)
	b.frees[h.Kind]++
}
