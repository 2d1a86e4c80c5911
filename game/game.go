package game

import (
	"errors"
	"log"
	"time"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Skyb0rg007/OpenGL-Testing/ecs"
	"github.com/Skyb0rg007/OpenGL-Testing/engine"
)

// Window is the part of the windowing layer the frame loop needs
type Window interface {
	Keyboard
	PollEvents()
	SwapBuffers()
	ShouldClose() bool
	Close()
	FramebufferSize() (width, height int)
}

// errorChecker is implemented by backends that can report driver errors
type errorChecker interface {
	Err() error
}

// Game is a loaded scene with the systems that run it every frame
type Game struct {
	World   *ecs.World
	Backend engine.Backend

	Systems     []ecs.System
	ReadSystems []ecs.ReadSystem

	camera        *CameraSystem
	width, height int
}

// New builds the World for cfg.Scene. Entities created before a failure are
// destroyed again.
func New(cfg Config, keys Keyboard, b engine.Backend) (*Game, error) {
	scene, err := LookupScene(cfg.Scene)
	if err != nil {
		return nil, err
	}

	w := ecs.NewWorld()
	w.State.Camera = scene.Camera

	controlled, err := scene.Build(w, b, cfg)
	if err != nil {
		return nil, errors.Join(err, DestroyAll(w, b))
	}
	log.Printf("scene %s loaded, %d entities", scene.Name, w.Count())

	var control ecs.System
	if scene.CameraControl {
		control = NewCameraControlSystem(keys)
	} else {
		control = NewEntityControlSystem(keys, controlled)
	}

	g := &Game{
		World:   w,
		Backend: b,
		camera:  NewCameraSystem(cfg),
		width:   cfg.Width,
		height:  cfg.Height,
	}
	g.Systems = []ecs.System{
		control,
		NewMovementSystem(),
		NewLightSystem(DefaultLightColor),
		g.camera,
	}
	g.ReadSystems = []ecs.ReadSystem{
		NewClearSystem(b, cfg.ClearColor),
		NewRenderSystem(b),
	}

	return g, nil
}

var DefaultLightColor = mgl32.Vec3{1, 1, 1}

// Resize adapts viewport and projection to a new framebuffer size
func (g *Game) Resize(width, height int) {
	if width == g.width && height == g.height {
		return
	}
	g.width, g.height = width, height
	g.Backend.Viewport(width, height)
	g.camera.Resize(width, height)
}

// Frame runs all systems once
func (g *Game) Frame() error {
	return ecs.UpdateWorld(g.World, g.Systems, g.ReadSystems)
}

// Close releases every entity and its gpu resources
func (g *Game) Close() error {
	return DestroyAll(g.World, g.Backend)
}

// Run loads the configured scene and updates it at cfg.FPS until the window
// is closed or escape is pressed.
func Run(cfg Config, win Window, b engine.Backend) (err error) {
	g, err := New(cfg, win, b)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, g.Close())
	}()

	width, height := win.FramebufferSize()
	g.width, g.height = 0, 0
	g.Resize(width, height)

	checker, _ := b.(errorChecker)
	if !cfg.Debug {
		checker = nil
	}

	fps := cfg.FPS
	if fps < 1 {
		fps = 60
	}

	var (
		lastTime = time.Now()
		now      time.Time
		delta    time.Duration
		ds       float64

		ratio  = 0.01
		curfps = float64(fps)

		update  = time.NewTicker(time.Second / time.Duration(fps))
		console = time.NewTicker(500 * time.Millisecond)

		lastErr string
	)
	defer update.Stop()
	defer console.Stop()

	for {
		select {
		case <-update.C:
			win.PollEvents()
			if win.ShouldClose() || win.Pressed(KeyEscape) {
				win.Close()
				return nil
			}

			// calc delay
			now = time.Now()
			delta = now.Sub(lastTime)
			lastTime = now

			// calc fps
			if ds = delta.Seconds(); ds > 0 {
				curfps = curfps*(1-ratio) + (1.0/ds)*ratio
			}

			g.Resize(win.FramebufferSize())

			// update
			ferr := g.Frame()
			if checker != nil {
				ferr = errors.Join(ferr, checker.Err())
			}

			// only report changes, a broken entity fails every frame
			var msg string
			if ferr != nil {
				msg = ferr.Error()
			}
			if msg != lastErr {
				if msg != "" {
					log.Println("frame:", msg)
				}
				lastErr = msg
			}

			win.SwapBuffers()

		case <-console.C:
			// print fps
			log.Println(curfps)
		}
	}
}
