package math4d

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"
)

const tol = 1e-12

func matsClose(t *testing.T, name string, got, want Mat4, eps float64) {
	t.Helper()
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			if diff := math.Abs(got.M[r][c] - want.M[r][c]); diff > eps {
				t.Fatalf("%s: mismatch at (%d,%d): got %.17g want %.17g", name, r, c, got.M[r][c], want.M[r][c])
			}
		}
	}
}

func TestPlaneRotationsAreOrthogonal(t *testing.T) {
	planes := []struct {
		name string
		rot  func(float64) Mat4
	}{
		{"XY", RotXY},
		{"XZ", RotXZ},
		{"XW", RotXW},
		{"YZ", RotYZ},
		{"YW", RotYW},
		{"ZW", RotZW},
	}
	angles := []float64{0, 0.3, math.Pi / 2, math.Pi, -2.7, 123.456}
	for _, p := range planes {
		for _, a := range angles {
			R := p.rot(a)
			matsClose(t, p.name+" R^T·R", R.Transpose().Mul(R), Identity(), tol)
			matsClose(t, p.name+" R(a)·R(-a)", R.Mul(p.rot(-a)), Identity(), tol)
		}
	}
}

func TestComposeZeroIsIdentity(t *testing.T) {
	R := Compose(PlaneAngles{})
	matsClose(t, "Compose(0)", R, Identity(), 0)

	v := Vec4{0.5, -1.25, 3, -0.125}
	if got := R.MulVec(v); got != v {
		t.Fatalf("identity rotation moved %+v to %+v", v, got)
	}
}

func TestComposeIsOrthonormal(t *testing.T) {
	R := Compose(PlaneAngles{
		XY: math.Pi / 6,
		XZ: math.Pi / 7,
		XW: math.Pi / 5,
		YZ: math.Pi / 8,
		YW: math.Pi / 9,
		ZW: math.Pi / 10,
	})
	matsClose(t, "R^T·R", R.Transpose().Mul(R), Identity(), tol)
}

func TestRotationOrderDoesNotCommute(t *testing.T) {
	v := Vec4{1, 0, 0, 0}
	a := math.Pi / 2

	// XY first, then XW: (1,0,0,0) -> (0,1,0,0) -> unchanged by XW.
	xyThenXW := RotXW(a).Mul(RotXY(a)).MulVec(v)
	// XW first, then XY: (1,0,0,0) -> (0,0,0,1) -> unchanged by XY.
	xwThenXY := RotXY(a).Mul(RotXW(a)).MulVec(v)

	if math.Abs(xyThenXW.Y-1) > tol || math.Abs(xwThenXY.W-1) > tol {
		t.Fatalf("unexpected rotations: xy-then-xw=%+v xw-then-xy=%+v", xyThenXW, xwThenXY)
	}
	if xyThenXW.Sub(xwThenXY).Len() < 1 {
		t.Fatalf("rotation order should matter: xy-then-xw=%+v xw-then-xy=%+v", xyThenXW, xwThenXY)
	}
}

func TestComposeOrderAppliesXYFirst(t *testing.T) {
	// With only XY and XW set, Compose must equal XW·XY (XY acting first).
	r := PlaneAngles{XY: math.Pi / 2, XW: math.Pi / 2}
	matsClose(t, "Compose order", Compose(r), RotXW(r.XW).Mul(RotXY(r.XY)), tol)
}

// Cross-check Mul, Transpose and Compose against gonum's general-purpose
// dense matrices.
func TestComposeMatchesGonum(t *testing.T) {
	angles := PlaneAngles{XY: 0.4, XZ: -1.1, XW: 2.2, YZ: 0.05, YW: -0.6, ZW: 3.9}

	dense := func(A Mat4) *mat.Dense {
		d := mat.NewDense(4, 4, nil)
		for r := 0; r < 4; r++ {
			for c := 0; c < 4; c++ {
				d.Set(r, c, A.M[r][c])
			}
		}
		return d
	}

	var want mat.Dense
	want.Mul(dense(RotXZ(angles.XZ)), dense(RotXY(angles.XY)))
	for _, step := range []Mat4{RotXW(angles.XW), RotYZ(angles.YZ), RotYW(angles.YW), RotZW(angles.ZW)} {
		var next mat.Dense
		next.Mul(dense(step), &want)
		want.CloneFrom(&next)
	}

	got := Compose(angles)
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			if diff := math.Abs(got.M[r][c] - want.At(r, c)); diff > tol {
				t.Fatalf("Compose disagrees with gonum at (%d,%d): %.3g", r, c, diff)
			}
		}
	}
}

func TestSinglePlaneRotationBehavior(t *testing.T) {
	// 90° in XY: (1,0,0,0) -> (0,1,0,0), length preserved.
	o := RotXY(math.Pi / 2).MulVec(Vec4{1, 0, 0, 0})
	if math.Abs(o.X) > tol || math.Abs(o.Y-1) > tol || math.Abs(o.Z) > tol || math.Abs(o.W) > tol {
		t.Fatalf("RotXY failed: %+v", o)
	}
	if math.Abs(o.Len()-1) > tol {
		t.Fatalf("RotXY broke length: %.12g", o.Len())
	}

	// 90° in ZW: (0,0,1,0) -> (0,0,0,1).
	o = RotZW(math.Pi / 2).MulVec(Vec4{0, 0, 1, 0})
	if math.Abs(o.Z) > tol || math.Abs(o.W-1) > tol {
		t.Fatalf("RotZW failed: %+v", o)
	}
}
