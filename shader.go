package cubeview

import (
	"errors"
	"fmt"
)

// Attribute and uniform names shared by the shader sources and the viewer.
const (
	AttribPosition = "vertPosition"
	AttribColor    = "vertColor"
	UniformWorld   = "mWorld"
	UniformView    = "mView"
	UniformProj    = "mProj"
)

// VertexShaderSource transforms each corner by Proj * View * World and passes
// its color through.
const VertexShaderSource = `
#version 410 core
in vec3 vertPosition;
in vec3 vertColor;

out vec3 fragColor;

uniform mat4 mWorld;
uniform mat4 mView;
uniform mat4 mProj;

void main() {
    fragColor = vertColor;
    gl_Position = mProj * mView * mWorld * vec4(vertPosition, 1.0);
}
`

// FragmentShaderSource outputs the interpolated color at full opacity.
const FragmentShaderSource = `
#version 410 core
in vec3 fragColor;

out vec4 FragColor;

void main() {
    FragColor = vec4(fragColor, 1.0);
}
`

// ErrShader is matched by every compile and link failure.
var ErrShader = errors.New("shader program build failed")

// CompileError reports a stage that failed to compile.
type CompileError struct {
	Stage ShaderStage
	Log   string // Backend info log
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("%s shader compilation failed: %s", e.Stage, e.Log)
}

func (e *CompileError) Unwrap() error { return ErrShader }

// LinkError reports a program that failed to link.
type LinkError struct {
	Log string
}

func (e *LinkError) Error() string {
	return fmt.Sprintf("shader program linking failed: %s", e.Log)
}

func (e *LinkError) Unwrap() error { return ErrShader }

// ValidationWarning reports a program that linked but failed validation.
// It never prevents drawing.
type ValidationWarning struct {
	Log string
}

func (w *ValidationWarning) Error() string {
	return fmt.Sprintf("shader program validation failed: %s", w.Log)
}

// Program is a linked shader program with its input locations resolved.
type Program struct {
	ID uint32

	// Warning is set when validation was requested and failed.
	Warning *ValidationWarning

	attribs  map[string]int32
	uniforms map[string]int32
	dev      Device
}

// Attrib returns the cached location of a vertex attribute, or LocationNone.
func (p *Program) Attrib(name string) int32 {
	if loc, ok := p.attribs[name]; ok {
		return loc
	}
	return LocationNone
}

// Uniform returns the cached location of a uniform, or LocationNone.
func (p *Program) Uniform(name string) int32 {
	if loc, ok := p.uniforms[name]; ok {
		return loc
	}
	return LocationNone
}

// Delete releases the GPU program.
func (p *Program) Delete() {
	if p.ID != 0 {
		p.dev.DeleteProgram(p.ID)
		p.ID = 0
	}
}

// BuildProgram compiles and links a shader program.
// The vertex stage is compiled first; the fragment stage is not attempted if
// it fails. When validate is set the linked program is also validated and any
// failure is recorded on Program.Warning.
func BuildProgram(dev Device, vertexSource, fragmentSource string, validate bool) (*Program, error) {
	vs, err := compileStage(dev, StageVertex, vertexSource)
	if err != nil {
		return nil, err
	}
	defer dev.DeleteShader(vs)

	fs, err := compileStage(dev, StageFragment, fragmentSource)
	if err != nil {
		return nil, err
	}
	defer dev.DeleteShader(fs)

	id, log, ok := dev.LinkProgram(vs, fs)
	if !ok {
		if id != 0 {
			dev.DeleteProgram(id)
		}
		return nil, &LinkError{Log: log}
	}

	p := &Program{
		ID:       id,
		attribs:  make(map[string]int32, 2),
		uniforms: make(map[string]int32, 3),
		dev:      dev,
	}

	if validate {
		if log, ok := dev.ValidateProgram(id); !ok {
			p.Warning = &ValidationWarning{Log: log}
		}
	}

	for _, name := range []string{AttribPosition, AttribColor} {
		p.attribs[name] = dev.AttribLocation(id, name)
	}
	for _, name := range []string{UniformWorld, UniformView, UniformProj} {
		p.uniforms[name] = dev.UniformLocation(id, name)
	}

	return p, nil
}

func compileStage(dev Device, stage ShaderStage, source string) (uint32, error) {
	shader, log, ok := dev.CompileShader(stage, source)
	if !ok {
		if shader != 0 {
			dev.DeleteShader(shader)
		}
		return 0, &CompileError{Stage: stage, Log: log}
	}
	return shader, nil
}
