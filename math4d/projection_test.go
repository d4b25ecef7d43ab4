package math4d

import (
	"math"
	"testing"
)

func TestProjectTo3D(t *testing.T) {
	cases := []struct {
		name     string
		p        Vec4
		distance float64
		want     Vec3
	}{
		{"w zero is unity factor", Vec4{1.5, -2, 3, 0}, 5, Vec3{1.5, -2, 3}},
		{"behind hyperplane", Vec4{2, 4, 6, -5}, 5, Vec3{1, 2, 3}},
		{"near viewpoint grows", Vec4{1, 1, 1, 4}, 5, Vec3{5, 5, 5}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ProjectTo3D(tc.p, tc.distance)
			if math.Abs(got.X-tc.want.X) > tol || math.Abs(got.Y-tc.want.Y) > tol || math.Abs(got.Z-tc.want.Z) > tol {
				t.Fatalf("ProjectTo3D(%+v, %g) = %+v, want %+v", tc.p, tc.distance, got, tc.want)
			}
		})
	}
}

func TestProjectTo3DSingularity(t *testing.T) {
	// Any point within projEps of the hyperplane projects via the fixed
	// blow-up factor, never to NaN or Inf.
	ws := []float64{5, 5 + 0.0009, 5 - 0.0009, 5 + 0.00099999}
	for _, w := range ws {
		got := ProjectTo3D(Vec4{1, -2, 0.5, w}, 5)
		want := Vec3{1000, -2000, 500}
		if got != want {
			t.Fatalf("w=%v: got %+v, want %+v", w, got, want)
		}
		if math.IsNaN(got.X) || math.IsInf(got.X, 0) {
			t.Fatalf("w=%v: non-finite projection %+v", w, got)
		}
	}

	// Just outside the guard the true formula applies again.
	outside := ProjectTo3D(Vec4{1, 0, 0, 5 - 0.002}, 5)
	if math.Abs(outside.X-5/0.002) > 1e-6 {
		t.Fatalf("outside guard: got %+v", outside)
	}
}
