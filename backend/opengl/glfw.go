package opengl

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/cubeview"
)

var (
	_ cubeview.Surface     = (*Window)(nil)
	_ cubeview.FrameDriver = (*Window)(nil)
)

// Window adapts a GLFW window to cubeview.Surface and cubeview.FrameDriver.
//
// Pointer coordinates are reported in framebuffer pixels so they share units
// with Size on HiDPI displays. Only the left mouse button drives drags.
type Window struct {
	window *glfw.Window
	device *Device

	onPointer func(cubeview.PointerEvent)
	onResize  func(width, height int)

	presented bool
}

// NewWindow wraps window. The window's context must be current and gl.Init
// must already have succeeded.
func NewWindow(window *glfw.Window) *Window {
	w := &Window{
		window: window,
		device: NewDevice(),
	}

	// Setup callbacks
	window.SetMouseButtonCallback(w.mouseButtonCallback)
	window.SetCursorPosCallback(w.cursorPosCallback)
	window.SetFramebufferSizeCallback(w.framebufferSizeCallback)

	return w
}

// Size returns the framebuffer size in pixels.
func (w *Window) Size() (width, height int) {
	return w.window.GetFramebufferSize()
}

// Device returns the OpenGL device bound to the window's context.
func (w *Window) Device() cubeview.Device {
	return w.device
}

// SetPointerHandler registers the pointer event callback.
func (w *Window) SetPointerHandler(fn func(cubeview.PointerEvent)) {
	w.onPointer = fn
}

// SetResizeHandler registers the framebuffer resize callback.
func (w *Window) SetResizeHandler(fn func(width, height int)) {
	w.onResize = fn
}

// NextFrame swaps the previous frame to the screen, polls events and reports
// whether the window is still open. With a swap interval of 1 the swap waits
// for vsync.
func (w *Window) NextFrame() bool {
	if w.presented {
		w.window.SwapBuffers()
	}
	w.presented = true

	glfw.PollEvents()
	return !w.window.ShouldClose()
}

// Close releases the device resources owned by the window adapter.
func (w *Window) Close() {
	w.device.Delete()
}

func (w *Window) mouseButtonCallback(win *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
	if button != glfw.MouseButtonLeft {
		return
	}

	x, y := win.GetCursorPos()
	switch action {
	case glfw.Press:
		w.emit(cubeview.PointerDownEvent, x, y)
	case glfw.Release:
		w.emit(cubeview.PointerUpEvent, x, y)
	}
}

func (w *Window) cursorPosCallback(win *glfw.Window, xpos, ypos float64) {
	w.emit(cubeview.PointerMoveEvent, xpos, ypos)
}

func (w *Window) framebufferSizeCallback(win *glfw.Window, width, height int) {
	if w.onResize != nil {
		w.onResize(width, height)
	}
}

// emit converts window coordinates to framebuffer pixels and forwards the event.
func (w *Window) emit(kind cubeview.PointerEventKind, x, y float64) {
	if w.onPointer == nil {
		return
	}

	fbW, fbH := w.window.GetFramebufferSize()
	winW, winH := w.window.GetSize()
	sx, sy := float32(1), float32(1)
	if winW > 0 && winH > 0 {
		sx = float32(fbW) / float32(winW)
		sy = float32(fbH) / float32(winH)
	}

	w.onPointer(cubeview.PointerEvent{
		Kind:   kind,
		Pos:    cubeview.Vec2{X: float32(x) * sx, Y: float32(y) * sy},
		Bounds: cubeview.Rect{W: float32(fbW), H: float32(fbH)},
	})
}
