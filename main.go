package main

import (
	"flag"
	"fmt"
	"log"
	"strings"

	"github.com/pkg/profile"

	"github.com/Skyb0rg007/OpenGL-Testing/engine/opengl"
	"github.com/Skyb0rg007/OpenGL-Testing/game"
	"github.com/Skyb0rg007/OpenGL-Testing/glcontext"
)

func main() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	cfg := game.DefaultConfig()
	flag.StringVar(&cfg.Scene, "scene", cfg.Scene, "scene to load, one of "+strings.Join(game.SceneNames(), ", "))
	flag.StringVar(&cfg.Assets, "assets", cfg.Assets, "directory of shaders, models and textures")
	flag.IntVar(&cfg.Width, "width", cfg.Width, "window width")
	flag.IntVar(&cfg.Height, "height", cfg.Height, "window height")
	flag.IntVar(&cfg.FPS, "fps", cfg.FPS, "frames per second")
	flag.BoolVar(&cfg.VSync, "vsync", cfg.VSync, "wait for vertical sync")
	flag.BoolVar(&cfg.Debug, "debug", cfg.Debug, "check for gl errors after every frame")
	prof := flag.String("profile", "", "write a cpu or mem profile to the working directory")
	flag.Parse()

	if err := run(cfg, *prof); err != nil {
		log.Fatal(err)
	}
}

// run must return rather than exit, the profile is written by a deferred Stop
func run(cfg game.Config, prof string) error {
	switch prof {
	case "":
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	case "mem":
		defer profile.Start(profile.MemProfileAllocs, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	default:
		return fmt.Errorf("unknown profile %q, use cpu or mem", prof)
	}

	if _, err := game.LookupScene(cfg.Scene); err != nil {
		return err
	}

	ctx, err := glcontext.Open(cfg.Title, cfg.Width, cfg.Height, cfg.VSync)
	if err != nil {
		return err
	}
	defer ctx.Destroy()

	backend, err := opengl.New()
	if err != nil {
		return fmt.Errorf("could not set up renderer: %w", err)
	}

	return game.Run(cfg, ctx, backend)
}
