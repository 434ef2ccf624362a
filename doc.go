/*
Package cubeview renders a single colored cube into a drawing surface and
rotates it as the user drags the pointer across the surface.

# Overview

The package is backend-neutral. All GPU work goes through the Device
interface, and the host hands over a Surface that reports its size and
forwards pointer and resize events. backend/opengl implements both on
OpenGL 4.1 core and GLFW.

Setup happens once in New: the shader program is compiled and linked, the
cube's vertex and index buffers are uploaded, depth testing and back-face
culling are enabled, and the fixed view and projection matrices are set.
If either shader stage fails to compile, or the program fails to link, New
returns the error before any buffer exists.

# Quick Start

	window.MakeContextCurrent()
	gl.Init()

	surface := opengl.NewWindow(window)
	defer surface.Close()

	viewer, err := cubeview.New(surface)
	if err != nil {
	    return err
	}
	defer viewer.Close()

	return viewer.Run(ctx, surface)

# Frame Loop

Run asks the FrameDriver for each frame slot and calls Frame, which uploads
the world matrix for the current angles, clears the color and depth buffers
and draws the 36 cube indices. A host with its own loop can call Frame
directly:

	for !window.ShouldClose() {
	    glfw.PollEvents()
	    viewer.Frame()
	    window.SwapBuffers()
	}

Everything runs on the thread that owns the GL context. Pointer callbacks fire
between frames, so the angle state needs no locking.

# Drag Rotation

	Pointer down inside the surface   start dragging
	Pointer move while dragging       X += s*dx, Y -= s*dy   (s = Sensitivity / height)
	Pointer up anywhere               stop dragging

Dragging right spins the cube about the vertical axis; dragging up tilts it
about the horizontal axis. The world matrix is XRotation(X) * YRotation(Y).

# Configuration

DefaultConfig holds the tunable constants: drag sensitivity 4, camera 8 units
from the origin with a 45° vertical field of view, near/far planes 0.1 and
1000, and a pale green-grey background. LoadConfig reads overrides from a
TOML or YAML file:

	sensitivity = 2.5

	[camera]
	distance = 12.0

Program validation is a debug aid. It runs when verbose logging is on
(SetVerbose) unless Config.Validate or WithValidation says otherwise, and a
failure is only logged.
*/
package cubeview
