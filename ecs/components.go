package ecs

import (
	"github.com/Skyb0rg007/OpenGL-Testing/engine"
)

// Component is a bitmask of component kinds
type Component uint32

const ComponentNone Component = 0

const (
	ComponentRenderable Component = 1 << iota
	ComponentGC
	ComponentTextured
	ComponentColored
	ComponentDisplacement
	ComponentRotation
	ComponentVelocity
	ComponentIlluminated
)

// Has reports whether all bits of c are set in m
func (m Component) Has(c Component) bool {
	return m&c == c
}

func (m Component) String() string {
	if m == ComponentNone {
		return "none"
	}

	names := []string{"renderable", "gc", "textured", "colored", "displacement", "rotation", "velocity", "illuminated"}
	var s string
	for i, n := range names {
		if m&(1<<uint(i)) != 0 {
			if s != "" {
				s += "|"
			}
			s += n
		}
	}
	return s
}

// Style selects the shading path of a Renderable. It is fixed when the
// Renderable is built, attaching or detaching a surface later leaves it as is.
type Style int

const (
	StyleUnresolved Style = iota
	StyleTextured
	StyleColored
)

func (s Style) String() string {
	switch s {
	case StyleTextured:
		return "textured"
	case StyleColored:
		return "colored"
	}
	return "unresolved"
}

// Renderable is a linked program and vertex array ready for drawing
type Renderable struct {
	Program     engine.Handle
	VertexArray engine.Handle
	IndexCount  int32
	Uniforms    map[string]int32
	Style       Style
}

// Uniform returns the location of name, false if the program does not use it
func (r Renderable) Uniform(name string) (int32, bool) {
	loc, ok := r.Uniforms[name]
	if !ok || loc < 0 {
		return -1, false
	}
	return loc, true
}

// GC lists the buffers and textures that belong to a Renderable
type GC struct {
	engine.Bundle
}

type Textured struct {
	Texture engine.Handle
}

type Colored struct {
	R, G, B float32
}

type Displacement struct {
	X, Y, Z float32
	Scale   float32
}

// Rotation in radians around each axis
type Rotation struct {
	X, Y, Z float32
}

type Velocity struct {
	X, Y, Z float32
}

type Illuminated struct {
	Intensity float32
}
