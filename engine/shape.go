package engine

import (
	"fmt"
	"image/color"
	"math/bits"

	"tessera/math4d"
)

// Frame says which coordinate frame a shape lives in.
type Frame uint8

const (
	// FrameView shapes follow the global transform: they are translated and
	// rotated with the viewer.
	FrameView Frame = iota
	// FrameWorld shapes are fixed reference geometry (grids, ground planes)
	// and skip both the global rotation and translation.
	FrameWorld
)

func (f Frame) String() string {
	switch f {
	case FrameView:
		return "view"
	case FrameWorld:
		return "world"
	default:
		return fmt.Sprintf("frame(%d)", uint8(f))
	}
}

// MarshalJSON encodes the frame by name so shape payloads stay readable.
func (f Frame) MarshalJSON() ([]byte, error) {
	return []byte(`"` + f.String() + `"`), nil
}

func (f *Frame) UnmarshalJSON(data []byte) error {
	switch string(data) {
	case `"view"`, `""`:
		*f = FrameView
	case `"world"`:
		*f = FrameWorld
	default:
		return fmt.Errorf("unknown frame %s", data)
	}
	return nil
}

// Shape4D is a wireframe polytope: vertices in 4-space plus edges as index
// pairs into the vertex list. Shapes are built once and then read-only; only
// the global Transform4D changes during a session.
type Shape4D struct {
	Vertices []math4d.Vec4 `json:"vertices"`
	Edges    [][2]int      `json:"edges"`
	// Position is added to every vertex before any rotation.
	Position math4d.Vec4 `json:"position"`
	Frame    Frame       `json:"frame"`
	Color    color.RGBA  `json:"color"`
}

// NewShape builds a view-frame shape and validates that every edge refers to
// existing vertices.
func NewShape(vertices []math4d.Vec4, edges [][2]int) (*Shape4D, error) {
	s := &Shape4D{Vertices: vertices, Edges: edges}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Validate checks the edge topology against the vertex list.
func (s *Shape4D) Validate() error {
	for i, e := range s.Edges {
		for _, idx := range e {
			if idx < 0 || idx >= len(s.Vertices) {
				return fmt.Errorf("edge %d: vertex index %d out of range [0,%d)", i, idx, len(s.Vertices))
			}
		}
	}
	return nil
}

// NewTesseract builds a 4D hypercube of the given half-extent centered at the
// origin. Vertex i takes each coordinate from one bit of i, so there are 16
// vertices, and two vertices share an edge exactly when their indices differ
// in a single bit, giving 32 edges.
func NewTesseract(size float64) *Shape4D {
	vertices := make([]math4d.Vec4, 0, 16)
	for i := 0; i < 16; i++ {
		v := math4d.Vec4{X: -size, Y: -size, Z: -size, W: -size}
		if i&1 != 0 {
			v.X = size
		}
		if i&2 != 0 {
			v.Y = size
		}
		if i&4 != 0 {
			v.Z = size
		}
		if i&8 != 0 {
			v.W = size
		}
		vertices = append(vertices, v)
	}

	edges := make([][2]int, 0, 32)
	for i := 0; i < 16; i++ {
		for j := i + 1; j < 16; j++ {
			if bits.OnesCount(uint(i^j)) == 1 {
				edges = append(edges, [2]int{i, j})
			}
		}
	}

	return &Shape4D{Vertices: vertices, Edges: edges}
}

// NewPlane builds a world-frame rectangular outline on the XZ plane at y,
// spanning ±extent. Used as a ground-plane marker where a full grid is too
// busy.
func NewPlane(extent, y float64) *Shape4D {
	return &Shape4D{
		Frame: FrameWorld,
		Vertices: []math4d.Vec4{
			{X: -extent, Y: y, Z: -extent},
			{X: extent, Y: y, Z: -extent},
			{X: extent, Y: y, Z: extent},
			{X: -extent, Y: y, Z: extent},
		},
		Edges: [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}},
	}
}

// NewGrid builds a world-frame reference grid on the XZ plane at y, spanning
// ±extent with the given line spacing.
func NewGrid(extent, spacing, y float64) *Shape4D {
	s := &Shape4D{Frame: FrameWorld}
	for d := -extent; d <= extent+spacing/2; d += spacing {
		// Line parallel to Z at x=d, then parallel to X at z=d.
		i := len(s.Vertices)
		s.Vertices = append(s.Vertices,
			math4d.Vec4{X: d, Y: y, Z: -extent},
			math4d.Vec4{X: d, Y: y, Z: extent},
			math4d.Vec4{X: -extent, Y: y, Z: d},
			math4d.Vec4{X: extent, Y: y, Z: d},
		)
		s.Edges = append(s.Edges, [2]int{i, i + 1}, [2]int{i + 2, i + 3})
	}
	return s
}
