package cubeview

import (
	"strings"

	"github.com/go-gl/mathgl/mgl32"
)

// fakeDevice is a Device that records calls instead of talking to a GPU.
// A shader "compiles" when its source contains "main(".
type fakeDevice struct {
	nextID uint32

	linkFail     string // non-empty: link fails with this log
	validateFail string // non-empty: validation fails with this log
	missing      map[string]bool

	shaders        map[uint32]ShaderStage
	deletedShaders []uint32
	programs       map[uint32]bool
	usedProgram    uint32

	vertexBuffers [][]float32
	indexBuffers  [][]uint16
	liveBuffers   map[uint32]bool

	attribs    []attribCall
	uniforms   map[int32]mgl32.Mat4
	uploads    map[int32]int
	state      PipelineState
	clearColor [4]float32
	viewports  [][2]int
	clears     int
	draws      []int32
}

type attribCall struct {
	location uint32
	size     int32
	stride   int32
	offset   uintptr
}

var fakeLocations = map[string]int32{
	AttribPosition: 0,
	AttribColor:    1,
	UniformWorld:   10,
	UniformView:    11,
	UniformProj:    12,
}

func newFakeDevice() *fakeDevice {
	return &fakeDevice{
		missing:     make(map[string]bool),
		shaders:     make(map[uint32]ShaderStage),
		programs:    make(map[uint32]bool),
		liveBuffers: make(map[uint32]bool),
		uniforms:    make(map[int32]mgl32.Mat4),
		uploads:     make(map[int32]int),
	}
}

func (d *fakeDevice) id() uint32 {
	d.nextID++
	return d.nextID
}

func (d *fakeDevice) CompileShader(stage ShaderStage, source string) (uint32, string, bool) {
	id := d.id()
	d.shaders[id] = stage
	if !strings.Contains(source, "main(") {
		return id, "ERROR: 0:1: syntax error, unexpected end of file", false
	}
	return id, "", true
}

func (d *fakeDevice) DeleteShader(shader uint32) {
	delete(d.shaders, shader)
	d.deletedShaders = append(d.deletedShaders, shader)
}

func (d *fakeDevice) LinkProgram(vertex, fragment uint32) (uint32, string, bool) {
	id := d.id()
	d.programs[id] = true
	if d.linkFail != "" {
		return id, d.linkFail, false
	}
	return id, "", true
}

func (d *fakeDevice) ValidateProgram(program uint32) (string, bool) {
	if d.validateFail != "" {
		return d.validateFail, false
	}
	return "", true
}

func (d *fakeDevice) DeleteProgram(program uint32) {
	delete(d.programs, program)
}

func (d *fakeDevice) UseProgram(program uint32) {
	d.usedProgram = program
}

func (d *fakeDevice) AttribLocation(program uint32, name string) int32 {
	return d.location(name)
}

func (d *fakeDevice) UniformLocation(program uint32, name string) int32 {
	return d.location(name)
}

func (d *fakeDevice) location(name string) int32 {
	if d.missing[name] {
		return LocationNone
	}
	if loc, ok := fakeLocations[name]; ok {
		return loc
	}
	return LocationNone
}

func (d *fakeDevice) UniformMatrix4(location int32, m mgl32.Mat4) {
	d.uniforms[location] = m
	d.uploads[location]++
}

func (d *fakeDevice) CreateVertexBuffer(data []float32) uint32 {
	d.vertexBuffers = append(d.vertexBuffers, append([]float32(nil), data...))
	id := d.id()
	d.liveBuffers[id] = true
	return id
}

func (d *fakeDevice) CreateIndexBuffer(data []uint16) uint32 {
	d.indexBuffers = append(d.indexBuffers, append([]uint16(nil), data...))
	id := d.id()
	d.liveBuffers[id] = true
	return id
}

func (d *fakeDevice) DeleteBuffer(buffer uint32) { delete(d.liveBuffers, buffer) }

func (d *fakeDevice) VertexAttrib(location uint32, size, stride int32, offset uintptr) {
	d.attribs = append(d.attribs, attribCall{location, size, stride, offset})
}

func (d *fakeDevice) SetPipelineState(state PipelineState) {
	d.state = state
}

func (d *fakeDevice) SetClearColor(r, g, b, a float32) {
	d.clearColor = [4]float32{r, g, b, a}
}

func (d *fakeDevice) Viewport(width, height int) {
	d.viewports = append(d.viewports, [2]int{width, height})
}

func (d *fakeDevice) Clear() {
	d.clears++
}

func (d *fakeDevice) DrawIndexed(count int32) {
	d.draws = append(d.draws, count)
}

func (d *fakeDevice) bufferCount() int {
	return len(d.vertexBuffers) + len(d.indexBuffers)
}

// fakeSurface is a Surface of fixed size that exposes the registered handlers.
type fakeSurface struct {
	width, height int
	dev           *fakeDevice
	onPointer     func(PointerEvent)
	onResize      func(width, height int)
}

func newFakeSurface(width, height int) *fakeSurface {
	return &fakeSurface{width: width, height: height, dev: newFakeDevice()}
}

func (s *fakeSurface) Size() (int, int) {
	return s.width, s.height
}

func (s *fakeSurface) Device() Device {
	return s.dev
}

func (s *fakeSurface) SetPointerHandler(fn func(PointerEvent)) {
	s.onPointer = fn
}

func (s *fakeSurface) SetResizeHandler(fn func(width, height int)) {
	s.onResize = fn
}

func (s *fakeSurface) bounds() Rect {
	return Rect{W: float32(s.width), H: float32(s.height)}
}

func (s *fakeSurface) pointer(kind PointerEventKind, x, y float32) {
	s.onPointer(PointerEvent{Kind: kind, Pos: Vec2{X: x, Y: y}, Bounds: s.bounds()})
}

// fakeDriver allows a fixed number of frames, running hook before each.
type fakeDriver struct {
	frames int
	calls  int
	hook   func(frame int)
}

func (d *fakeDriver) NextFrame() bool {
	if d.calls >= d.frames {
		return false
	}
	if d.hook != nil {
		d.hook(d.calls)
	}
	d.calls++
	return true
}
