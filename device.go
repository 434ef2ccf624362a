package cubeview

import "github.com/go-gl/mathgl/mgl32"

// LocationNone is the attribute/uniform location reported for names the
// linked program does not expose (absent or optimized out).
const LocationNone int32 = -1

// ShaderStage identifies a programmable pipeline stage.
type ShaderStage int

const (
	StageVertex ShaderStage = iota
	StageFragment
)

// String returns the lower-case stage name used in error messages.
func (s ShaderStage) String() string {
	switch s {
	case StageVertex:
		return "vertex"
	case StageFragment:
		return "fragment"
	default:
		return "unknown"
	}
}

// PipelineState is the fixed-function state configured once during setup.
type PipelineState struct {
	DepthTest    bool
	CullBack     bool // Cull back faces
	FrontFaceCCW bool // Counter-clockwise winding is front-facing
}

// Device is the graphics context the viewer draws with.
// All methods are called from the thread that owns the context.
type Device interface {
	// CompileShader compiles source for stage. The returned handle is valid
	// even when ok is false so the caller can delete it; infoLog carries the
	// backend diagnostics.
	CompileShader(stage ShaderStage, source string) (shader uint32, infoLog string, ok bool)
	DeleteShader(shader uint32)

	// LinkProgram links the two stages. As with CompileShader the program
	// handle is returned on failure so it can be deleted.
	LinkProgram(vertex, fragment uint32) (program uint32, infoLog string, ok bool)
	ValidateProgram(program uint32) (infoLog string, ok bool)
	DeleteProgram(program uint32)
	UseProgram(program uint32)

	AttribLocation(program uint32, name string) int32
	UniformLocation(program uint32, name string) int32
	UniformMatrix4(location int32, m mgl32.Mat4)

	// CreateVertexBuffer uploads data and leaves the buffer bound for
	// subsequent VertexAttrib calls.
	CreateVertexBuffer(data []float32) uint32
	CreateIndexBuffer(data []uint16) uint32
	DeleteBuffer(buffer uint32)

	// VertexAttrib binds and enables a float attribute of size components
	// read from the bound vertex buffer. stride and offset are in bytes.
	VertexAttrib(location uint32, size, stride int32, offset uintptr)

	SetPipelineState(state PipelineState)
	SetClearColor(r, g, b, a float32)
	Viewport(width, height int)
	Clear()
	DrawIndexed(count int32)
}
