package engine

import (
	"image/color"

	"go.uber.org/zap"

	"tessera/math4d"
)

// Projected is what the renderer consumes: projected 3D points in vertex
// order plus the surviving edge topology.
type Projected struct {
	Points []math4d.Vec3
	Edges  [][2]int
	Color  color.RGBA
}

// TransformShape applies a transform to a shape without projecting it: the
// position is folded into every vertex, then view-frame shapes get the
// translation and the composed rotation. The input shape is left untouched.
func TransformShape(s *Shape4D, t Transform4D) *Shape4D {
	rot := t.Matrix()
	out := &Shape4D{
		Vertices: make([]math4d.Vec4, len(s.Vertices)),
		Edges:    append([][2]int(nil), s.Edges...),
		Frame:    s.Frame,
		Color:    s.Color,
	}
	for i, v := range s.Vertices {
		pt := v.Add(s.Position)
		if s.Frame == FrameView {
			pt = rot.MulVec(pt.Add(t.Translation))
		}
		out.Vertices[i] = pt
	}
	return out
}

// Projector maps shapes through the global transform into 3-space.
type Projector struct {
	log      *zap.Logger
	distance float64
}

// NewProjector returns a projector with the viewpoint at the given distance
// along the W axis.
func NewProjector(log *zap.Logger, distance float64) *Projector {
	if log == nil {
		log = zap.NewNop()
	}
	return &Projector{log: log, distance: distance}
}

// ProjectAll projects every shape under one transform snapshot. The rotation
// matrix is composed once and reused across all vertices of all view-frame
// shapes.
func (p *Projector) ProjectAll(shapes []*Shape4D, t Transform4D) []Projected {
	rot := t.Matrix()
	out := make([]Projected, 0, len(shapes))
	for _, s := range shapes {
		out = append(out, p.project(s, t, rot))
	}
	return out
}

// Project projects a single shape under the given transform.
func (p *Projector) Project(s *Shape4D, t Transform4D) Projected {
	return p.project(s, t, t.Matrix())
}

func (p *Projector) project(s *Shape4D, t Transform4D, rot math4d.Mat4) Projected {
	pr := Projected{
		Points: make([]math4d.Vec3, len(s.Vertices)),
		Edges:  make([][2]int, 0, len(s.Edges)),
		Color:  s.Color,
	}

	for i, v := range s.Vertices {
		pt := v.Add(s.Position)
		if s.Frame == FrameView {
			// Translation is added before the rotation is applied.
			pt = rot.MulVec(pt.Add(t.Translation))
		}
		pr.Points[i] = math4d.ProjectTo3D(pt, p.distance)
	}

	for i, e := range s.Edges {
		if e[0] < 0 || e[0] >= len(s.Vertices) || e[1] < 0 || e[1] >= len(s.Vertices) {
			// Bad topology is a data bug, not a reason to drop the frame.
			p.log.Warn("skipping edge with out-of-range vertex index",
				zap.Int("edge", i),
				zap.Int("from", e[0]),
				zap.Int("to", e[1]),
				zap.Int("vertices", len(s.Vertices)))
			continue
		}
		pr.Edges = append(pr.Edges, e)
	}

	return pr
}
