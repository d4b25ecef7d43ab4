package math4d

import "math"

const (
	// projEps bounds how close a point may get to the projection hyperplane
	// before the guard takes over.
	projEps = 0.001
	// projBlowup is the fixed scale applied to points on (or nearly on) the
	// hyperplane, pushing them far off-screen instead of dividing by
	// near-zero.
	projBlowup = 1000.0
)

// ProjectTo3D collapses a 4D point onto a 3D hyperplane by perspective
// projection from a viewpoint at the given distance along the W axis:
//
//	factor = distance / (distance − p.W)
//
// When p.W approaches distance the projection is singular; the result is
// then the point scaled by a large fixed constant. The degeneracy policy is
// deliberate and deterministic: the caller never sees NaN or Inf for finite
// input.
func ProjectTo3D(p Vec4, distance float64) Vec3 {
	factor := projBlowup
	if d := distance - p.W; math.Abs(d) >= projEps {
		factor = distance / d
	}
	return Vec3{p.X * factor, p.Y * factor, p.Z * factor}
}
