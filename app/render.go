package app

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2/vector"

	"tessera/hal"
	"tessera/math4d"
)

var (
	background = color.RGBA{R: 0x10, G: 0x10, B: 0x18, A: 0xff}
	defaultInk = color.RGBA{R: 0x66, G: 0xcc, B: 0xff, A: 0xff}
)

// Render draws every shape as a wireframe. It consumes only projected 3D
// points plus edge topology; all 4D work happens in the engine.
func (v *Viewer) Render(screen *hal.Screen) {
	screen.Fill(background)

	t := v.store.View()
	for _, pr := range v.proj.ProjectAll(v.shapes, t) {
		ink := pr.Color
		if ink == (color.RGBA{}) {
			ink = defaultInk
		}
		for _, e := range pr.Edges {
			x0, y0 := v.toScreen(pr.Points[e[0]])
			x1, y1 := v.toScreen(pr.Points[e[1]])
			vector.StrokeLine(screen, x0, y0, x1, y1, 1, ink, true)
		}
	}
}

// toScreen maps a projected 3D point onto the window with a fixed camera on
// the Z axis. Points at or behind the camera reuse the far-off-screen policy
// of the 4D projection.
func (v *Viewer) toScreen(p math4d.Vec3) (float32, float32) {
	f := 1000.0
	if d := v.cfg.CameraDistance - p.Z; d > 0.001 {
		f = v.cfg.CameraDistance / d
	}
	x := float64(v.cfg.Width)/2 + p.X*f*v.cfg.Scale
	y := float64(v.cfg.Height)/2 - p.Y*f*v.cfg.Scale
	return float32(x), float32(y)
}
