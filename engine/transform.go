// Package engine holds the 4D viewer state: the global transform and its
// store, the shape model, the input-driven updater and the projection
// pipeline that feeds the renderer.
package engine

import "tessera/math4d"

// Transform4D is the single global viewer transform: one angle per rotation
// plane plus a translation. Angles accumulate without wraparound; the
// trigonometry is periodic so arbitrarily large magnitudes are fine.
type Transform4D struct {
	Rotation    math4d.PlaneAngles `json:"rotation"`
	Translation math4d.Vec4        `json:"translation"`
}

// Matrix returns the composed rotation for the current angles.
func (t Transform4D) Matrix() math4d.Mat4 {
	return math4d.Compose(t.Rotation)
}
