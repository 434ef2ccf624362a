package cubeview

import (
	"context"
	"fmt"
	"log/slog"
	"unsafe"

	"github.com/go-gl/mathgl/mgl32"
)

// Surface is the drawable the host hands to the viewer.
type Surface interface {
	// Size returns the drawable size in pixels.
	Size() (width, height int)
	Device() Device
	SetPointerHandler(func(PointerEvent))
	SetResizeHandler(func(width, height int))
}

// FrameDriver is the host's frame scheduling primitive.
type FrameDriver interface {
	// NextFrame presents the previous frame, delivers pending events and
	// waits for the next frame slot. It returns false once the host closes.
	NextFrame() bool
}

// Viewer owns the GPU resources and the rotation state for one surface.
type Viewer struct {
	dev    Device
	cfg    Config
	logger *slog.Logger

	vertexSource   string
	fragmentSource string
	validate       *bool

	program    *Program
	vbo, ibo   uint32
	indexCount int32

	angles AngleState
	input  *InputController

	width, height int
	running       bool
}

// Option configures a Viewer.
type Option func(*Viewer)

// WithConfig replaces the default configuration.
func WithConfig(cfg Config) Option {
	return func(v *Viewer) { v.cfg = cfg }
}

// WithLogger sets the logger used for setup diagnostics.
// A nil logger keeps the default.
func WithLogger(logger *slog.Logger) Option {
	return func(v *Viewer) {
		if logger != nil {
			v.logger = logger
		}
	}
}

// WithValidation forces program validation on or off, overriding both the
// config and the verbose default.
func WithValidation(enabled bool) Option {
	return func(v *Viewer) { v.validate = &enabled }
}

// WithShaderSources replaces the built-in shader sources.
// The sources must expose the same attribute and uniform names.
func WithShaderSources(vertex, fragment string) Option {
	return func(v *Viewer) {
		v.vertexSource = vertex
		v.fragmentSource = fragment
	}
}

// New sets up the viewer on surface: it builds the shader program, uploads
// the cube, configures the pipeline and registers the pointer and resize
// handlers. Shader errors abort setup before any buffer is created.
func New(surface Surface, opts ...Option) (*Viewer, error) {
	v := &Viewer{
		dev:            surface.Device(),
		cfg:            DefaultConfig(),
		logger:         defaultLogger,
		vertexSource:   VertexShaderSource,
		fragmentSource: FragmentShaderSource,
	}
	for _, opt := range opts {
		opt(v)
	}

	if err := v.cfg.Check(); err != nil {
		return nil, err
	}

	validate := verbose()
	if v.cfg.Validate != nil {
		validate = *v.cfg.Validate
	}
	if v.validate != nil {
		validate = *v.validate
	}

	program, err := BuildProgram(v.dev, v.vertexSource, v.fragmentSource, validate)
	if err != nil {
		return nil, fmt.Errorf("failed to create shader: %w", err)
	}
	v.program = program
	if program.Warning != nil {
		v.logger.Warn("shader program did not validate", "log", program.Warning.Log)
	}

	if err := v.upload(BuildCube()); err != nil {
		program.Delete()
		return nil, err
	}

	v.dev.SetPipelineState(PipelineState{DepthTest: true, CullBack: true, FrontFaceCCW: true})
	c := v.cfg.ClearColor
	v.dev.SetClearColor(c[0], c[1], c[2], c[3])
	v.dev.UseProgram(program.ID)

	v.running = true
	width, height := surface.Size()
	v.input = NewInputController(&v.angles, height, v.cfg.Sensitivity)
	v.Resize(width, height)
	v.setMatrix(UniformWorld, mgl32.Ident4())
	v.setMatrix(UniformView, v.cfg.Camera.View())

	surface.SetPointerHandler(v.input.HandleEvent)
	surface.SetResizeHandler(v.Resize)

	v.logger.Debug("viewer ready", "program", program.ID, "width", width, "height", height)
	return v, nil
}

// upload creates the vertex and index buffers and binds the attributes.
func (v *Viewer) upload(mesh Mesh) error {
	if err := mesh.Validate(); err != nil {
		return err
	}

	v.vbo = v.dev.CreateVertexBuffer(mesh.Floats())
	v.ibo = v.dev.CreateIndexBuffer(mesh.Indices)
	v.indexCount = int32(len(mesh.Indices))

	// Vertex layout: Pos (3 floats) + Color (3 floats)
	stride := int32(unsafe.Sizeof(Vertex{}))
	v.bindAttrib(AttribPosition, stride, unsafe.Offsetof(Vertex{}.Pos))
	v.bindAttrib(AttribColor, stride, unsafe.Offsetof(Vertex{}.Color))

	v.logger.Debug("cube uploaded", "vertices", len(mesh.Vertices), "indices", len(mesh.Indices))
	return nil
}

func (v *Viewer) bindAttrib(name string, stride int32, offset uintptr) {
	loc := v.program.Attrib(name)
	if loc == LocationNone {
		v.logger.Debug("attribute not active, skipping", "name", name)
		return
	}
	v.dev.VertexAttrib(uint32(loc), 3, stride, offset)
}

func (v *Viewer) setMatrix(name string, m mgl32.Mat4) {
	loc := v.program.Uniform(name)
	if loc == LocationNone {
		return
	}
	v.dev.UniformMatrix4(loc, m)
}

// Resize updates the viewport and projection for a new surface size.
// It is a no-op once the viewer is closed.
func (v *Viewer) Resize(width, height int) {
	if !v.running {
		return
	}
	v.width, v.height = width, height
	v.dev.Viewport(width, height)
	v.setMatrix(UniformProj, v.cfg.Camera.Projection(width, height))
	v.input.SetHeight(height)
}

// Frame draws one frame and reports whether the loop should continue.
// It draws nothing once the viewer is closed.
func (v *Viewer) Frame() bool {
	if !v.running {
		return false
	}

	v.setMatrix(UniformWorld, WorldMatrix(v.angles))
	v.dev.Clear()
	v.dev.DrawIndexed(v.indexCount)
	return true
}

// Run drives Frame from driver until the host closes, the viewer is closed,
// or ctx is done.
func (v *Viewer) Run(ctx context.Context, driver FrameDriver) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if !driver.NextFrame() {
			return nil
		}
		if !v.Frame() {
			return nil
		}
	}
}

// Angles returns the current rotation.
func (v *Viewer) Angles() AngleState {
	return v.angles
}

// Size returns the surface size from the last resize.
func (v *Viewer) Size() (width, height int) {
	return v.width, v.height
}

// Input returns the controller fed by the surface's pointer events.
func (v *Viewer) Input() *InputController {
	return v.input
}

// Close stops the frame loop and releases the GPU resources.
func (v *Viewer) Close() {
	v.running = false
	if v.ibo != 0 {
		v.dev.DeleteBuffer(v.ibo)
		v.ibo = 0
	}
	if v.vbo != 0 {
		v.dev.DeleteBuffer(v.vbo)
		v.vbo = 0
	}
	if v.program != nil {
		v.program.Delete()
	}
}
