// Package glcontext opens a window with an OpenGL 3.3 core context and keeps
// track of the keyboard.
package glcontext

import (
	"fmt"
	"log"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/Skyb0rg007/OpenGL-Testing/game"
)

func init() {
	// glfw event handling must run on the main thread
	runtime.LockOSThread()
}

// Context is a window with a current OpenGL context.
// All methods must be called from the main thread.
type Context struct {
	window     *glfw.Window
	keyPressed map[glfw.Key]bool
}

// Open initializes glfw and creates a width x height window whose context is
// made current.
func Open(title string, width, height int, vsync bool) (*Context, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("could not initialize glfw: %w", err)
	}

	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.StencilBits, 8)
	glfw.WindowHint(glfw.Samples, 4)

	window, err := glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("could not create window: %w", err)
	}
	window.MakeContextCurrent()

	if vsync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	c := &Context{
		window:     window,
		keyPressed: map[glfw.Key]bool{},
	}
	window.SetKeyCallback(c.onKey)

	w, h := window.GetFramebufferSize()
	log.Printf("window %dx%d, framebuffer %dx%d", width, height, w, h)

	return c, nil
}

func (c *Context) onKey(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	switch action {
	case glfw.Press:
		c.keyPressed[key] = true
	case glfw.Release:
		delete(c.keyPressed, key)
	}
}

var keys = map[game.Key]glfw.Key{
	game.KeyEscape: glfw.KeyEscape,
	game.KeyQ:      glfw.KeyQ,
	game.KeyE:      glfw.KeyE,
	game.KeyW:      glfw.KeyW,
	game.KeyS:      glfw.KeyS,
	game.KeyA:      glfw.KeyA,
	game.KeyD:      glfw.KeyD,
	game.KeyF:      glfw.KeyF,
	game.KeyG:      glfw.KeyG,

	game.KeyUp:    glfw.KeyUp,
	game.KeyDown:  glfw.KeyDown,
	game.KeyLeft:  glfw.KeyLeft,
	game.KeyRight: glfw.KeyRight,

	game.KeyComma:  glfw.KeyComma,
	game.KeyPeriod: glfw.KeyPeriod,
	game.KeyEqual:  glfw.KeyEqual,
	game.KeyMinus:  glfw.KeyMinus,
}

// Pressed reports whether key is held down
func (c *Context) Pressed(key game.Key) bool {
	k, ok := keys[key]
	return ok && c.keyPressed[k]
}

func (c *Context) PollEvents() {
	glfw.PollEvents()
}

func (c *Context) SwapBuffers() {
	c.window.SwapBuffers()
}

func (c *Context) ShouldClose() bool {
	return c.window.ShouldClose()
}

func (c *Context) Close() {
	c.window.SetShouldClose(true)
}

func (c *Context) FramebufferSize() (width, height int) {
	return c.window.GetFramebufferSize()
}

// Destroy closes the window and terminates glfw
func (c *Context) Destroy() {
	c.window.Destroy()
	glfw.Terminate()
}
