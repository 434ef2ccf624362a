// Command gen renders the cube after a few scripted drag gestures, captures
// framebuffer pixels, and saves JPEG snapshots to doc/imgs/.
//
// Usage:
//
//	devbox shell
//	go run ./doc/gen/
package main

import (
	"fmt"
	"image/jpeg"
	"os"
	"path/filepath"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/cubeview"
	"github.com/go-theft-auto/cubeview/backend/opengl"
)

const (
	shotWidth  = 640
	shotHeight = 480
)

func init() {
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// snapshot defines a single capture: a drag path applied before rendering.
type snapshot struct {
	name string          // filename without extension
	drag []cubeview.Vec2 // pointer path; first point is the press, last the release
}

func run() error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Visible, glfw.False)
	glfw.WindowHint(glfw.Resizable, glfw.False)

	window, err := glfw.CreateWindow(shotWidth, shotHeight, "snapshot-gen", nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	surface := opengl.NewWindow(window)
	defer surface.Close()

	outDir := filepath.Join("doc", "imgs")
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}

	shots := buildSnapshots()
	for _, s := range shots {
		if err := capture(surface, s, outDir); err != nil {
			return fmt.Errorf("capture %s: %w", s.name, err)
		}
		fmt.Printf("  %s.jpg\n", s.name)
	}

	fmt.Printf("\nGenerated %d snapshots in %s/\n", len(shots), outDir)
	return nil
}

func capture(surface *opengl.Window, s snapshot, outDir string) error {
	// Fresh viewer per snapshot so rotations don't accumulate across captures.
	viewer, err := cubeview.New(surface, cubeview.WithValidation(true))
	if err != nil {
		return err
	}
	defer viewer.Close()

	width, height := surface.Size()
	bounds := cubeview.Rect{W: float32(width), H: float32(height)}
	input := viewer.Input()
	for i, p := range s.drag {
		kind := cubeview.PointerMoveEvent
		switch i {
		case 0:
			kind = cubeview.PointerDownEvent
		case len(s.drag) - 1:
			input.HandleEvent(cubeview.PointerEvent{Kind: kind, Pos: p, Bounds: bounds})
			kind = cubeview.PointerUpEvent
		}
		input.HandleEvent(cubeview.PointerEvent{Kind: kind, Pos: p, Bounds: bounds})
	}

	viewer.Frame()
	gl.Finish()

	img := surface.Device().(*opengl.Device).ReadPixels(width, height)

	path := filepath.Join(outDir, s.name+".jpg")
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return jpeg.Encode(f, img, &jpeg.Options{Quality: 90})
}

// buildSnapshots returns the drag gestures to capture, in surface pixels.
func buildSnapshots() []snapshot {
	return []snapshot{
		{name: "front", drag: nil},
		{name: "spin_right", drag: []cubeview.Vec2{{X: 200, Y: 240}, {X: 280, Y: 240}}},
		{name: "tilt_up", drag: []cubeview.Vec2{{X: 320, Y: 300}, {X: 320, Y: 220}}},
		{name: "diagonal", drag: []cubeview.Vec2{{X: 200, Y: 300}, {X: 260, Y: 260}, {X: 320, Y: 200}}},
	}
}
