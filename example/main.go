// Example opens a window with the rotating cube viewer. Drag with the left
// mouse button to rotate the cube.
//
// Prerequisites:
//
//	Install devbox: https://www.jetify.com/devbox
//	devbox shell              # enter the dev environment (provides Go + OpenGL/X11 headers)
//	go run ./example/         # run this example
//
// Flags:
//
//	-config path   load settings from a .toml or .yaml file
//	-v             debug logging (also turns on shader program validation)
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/cubeview"
	"github.com/go-theft-auto/cubeview/backend/opengl"
)

const (
	windowWidth  = 800
	windowHeight = 600
	windowTitle  = "cubeview"
)

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	configPath := flag.String("config", "", "settings file (.toml, .yaml)")
	verbose := flag.Bool("v", false, "verbose logging")
	flag.Parse()

	cubeview.SetVerbose(*verbose)

	if err := run(*configPath); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(configPath string) error {
	cfg := cubeview.DefaultConfig()
	if configPath != "" {
		var err error
		if cfg, err = cubeview.LoadConfig(configPath); err != nil {
			return err
		}
	}

	// Initialize GLFW.
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.True)

	window, err := glfw.CreateWindow(windowWidth, windowHeight, windowTitle, nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1) // vsync

	// Initialize OpenGL.
	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	surface := opengl.NewWindow(window)
	defer surface.Close()

	viewer, err := cubeview.New(surface, cubeview.WithConfig(cfg))
	if err != nil {
		return fmt.Errorf("viewer: %w", err)
	}
	defer viewer.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := viewer.Run(ctx, surface); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
