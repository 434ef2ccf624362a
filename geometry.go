package cubeview

import "fmt"

// Mesh is an indexed triangle list.
// Indices come in groups of three, each referencing an entry in Vertices.
type Mesh struct {
	Vertices []Vertex
	Indices  []uint16
}

// Validate checks that the indices form whole triangles and stay in range.
func (m Mesh) Validate() error {
	if len(m.Indices)%3 != 0 {
		return fmt.Errorf("mesh: index count %d is not a multiple of 3", len(m.Indices))
	}
	for i, idx := range m.Indices {
		if int(idx) >= len(m.Vertices) {
			return fmt.Errorf("mesh: index %d at position %d out of range (%d vertices)", idx, i, len(m.Vertices))
		}
	}
	return nil
}

// Floats flattens the vertices into the packed 6-float records the GPU reads.
func (m Mesh) Floats() []float32 {
	out := make([]float32, 0, len(m.Vertices)*6)
	for _, v := range m.Vertices {
		out = append(out, v.Pos[0], v.Pos[1], v.Pos[2], v.Color[0], v.Color[1], v.Color[2])
	}
	return out
}

// cubeFace is one quad of the cube: four corners plus a flat color.
type cubeFace struct {
	corners [4][3]float32
	color   [3]float32
	// quad-local indices for the two triangles, counter-clockwise from outside
	tris [6]uint16
}

var cubeFaces = [6]cubeFace{
	{ // top
		corners: [4][3]float32{{-1, 1, -1}, {-1, 1, 1}, {1, 1, 1}, {1, 1, -1}},
		color:   [3]float32{0.5, 0.5, 0.5},
		tris:    [6]uint16{0, 1, 2, 0, 2, 3},
	},
	{ // left
		corners: [4][3]float32{{-1, 1, 1}, {-1, -1, 1}, {-1, -1, -1}, {-1, 1, -1}},
		color:   [3]float32{0.75, 0.25, 0.5},
		tris:    [6]uint16{1, 0, 2, 2, 0, 3},
	},
	{ // right
		corners: [4][3]float32{{1, 1, 1}, {1, -1, 1}, {1, -1, -1}, {1, 1, -1}},
		color:   [3]float32{0.25, 0.25, 0.75},
		tris:    [6]uint16{0, 1, 2, 0, 2, 3},
	},
	{ // front
		corners: [4][3]float32{{1, 1, 1}, {1, -1, 1}, {-1, -1, 1}, {-1, 1, 1}},
		color:   [3]float32{1.0, 0.0, 0.15},
		tris:    [6]uint16{1, 0, 2, 3, 2, 0},
	},
	{ // back
		corners: [4][3]float32{{1, 1, -1}, {1, -1, -1}, {-1, -1, -1}, {-1, 1, -1}},
		color:   [3]float32{0.0, 1.0, 0.15},
		tris:    [6]uint16{0, 1, 2, 0, 2, 3},
	},
	{ // bottom
		corners: [4][3]float32{{-1, -1, -1}, {-1, -1, 1}, {1, -1, 1}, {1, -1, -1}},
		color:   [3]float32{0.5, 0.5, 1.0},
		tris:    [6]uint16{1, 0, 2, 2, 0, 3},
	},
}

// BuildCube returns the unit cube spanning [-1, 1] on every axis:
// 24 vertices (four per face so each face is flat-colored) and 36 indices.
func BuildCube() Mesh {
	m := Mesh{
		Vertices: make([]Vertex, 0, len(cubeFaces)*4),
		Indices:  make([]uint16, 0, len(cubeFaces)*6),
	}
	for _, f := range cubeFaces {
		base := uint16(len(m.Vertices))
		for _, c := range f.corners {
			m.Vertices = append(m.Vertices, Vertex{Pos: c, Color: f.color})
		}
		for _, t := range f.tris {
			m.Indices = append(m.Indices, base+t)
		}
	}
	return m
}
