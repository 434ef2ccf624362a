package cubeview

// Vec2 represents a 2D point in surface-local pixel coordinates.
type Vec2 struct {
	X, Y float32
}

// Sub returns the difference of two vectors.
func (v Vec2) Sub(other Vec2) Vec2 {
	return Vec2{X: v.X - other.X, Y: v.Y - other.Y}
}

// Mul returns the vector scaled by a scalar.
func (v Vec2) Mul(s float32) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Rect represents a rectangle with position and size.
type Rect struct {
	X, Y float32 // Top-left position
	W, H float32 // Width and height
}

// Contains returns true if the point is inside the rectangle.
// The left and top edges are inside, the right and bottom edges are not.
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

// Vertex is one cube corner as uploaded to the GPU.
// Memory layout matches the vertex attribute bindings: 3 position floats
// followed by 3 color floats, no padding.
type Vertex struct {
	Pos   [3]float32 // Position (x, y, z)
	Color [3]float32 // RGB, each in [0, 1]
}

// AngleState holds the accumulated drag rotation in radians.
// X grows with horizontal drags, Y with vertical drags. Neither wraps.
type AngleState struct {
	X, Y float32
}

// PointerState is the Input Controller's private drag bookkeeping.
type PointerState struct {
	Dragging bool
	Last     Vec2 // Last seen pointer position
}
