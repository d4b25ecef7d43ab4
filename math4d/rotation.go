package math4d

import "math"

// PlaneAngles holds one rotation angle (radians) per coordinate plane of
// 4-space. Unlike 3D's three rotation axes there are six independent planes,
// and rotations in them do not commute.
type PlaneAngles struct {
	XY float64 `json:"xy"`
	XZ float64 `json:"xz"`
	XW float64 `json:"xw"`
	YZ float64 `json:"yz"`
	YW float64 `json:"yw"`
	ZW float64 `json:"zw"`
}

// Each plane rotation is the identity with a 2×2 cosine/sine block written
// into the plane's two rows and columns.

func RotXY(a float64) Mat4 {
	c, s := math.Cos(a), math.Sin(a)
	M := Identity()
	M.M[0][0], M.M[0][1] = c, -s
	M.M[1][0], M.M[1][1] = s, c
	return M
}

func RotXZ(a float64) Mat4 {
	c, s := math.Cos(a), math.Sin(a)
	M := Identity()
	M.M[0][0], M.M[0][2] = c, -s
	M.M[2][0], M.M[2][2] = s, c
	return M
}

func RotXW(a float64) Mat4 {
	c, s := math.Cos(a), math.Sin(a)
	M := Identity()
	M.M[0][0], M.M[0][3] = c, -s
	M.M[3][0], M.M[3][3] = s, c
	return M
}

func RotYZ(a float64) Mat4 {
	c, s := math.Cos(a), math.Sin(a)
	M := Identity()
	M.M[1][1], M.M[1][2] = c, -s
	M.M[2][1], M.M[2][2] = s, c
	return M
}

func RotYW(a float64) Mat4 {
	c, s := math.Cos(a), math.Sin(a)
	M := Identity()
	M.M[1][1], M.M[1][3] = c, -s
	M.M[3][1], M.M[3][3] = s, c
	return M
}

func RotZW(a float64) Mat4 {
	c, s := math.Cos(a), math.Sin(a)
	M := Identity()
	M.M[2][2], M.M[2][3] = c, -s
	M.M[3][2], M.M[3][3] = s, c
	return M
}

// Compose builds the combined rotation ZW·YW·YZ·XW·XZ·XY. The rightmost
// factor acts first, so a vector is rotated through the XY plane, then XZ,
// XW, YZ, YW and finally ZW. This order is a fixed convention: the six plane
// rotations do not commute and reordering them changes the result.
func Compose(r PlaneAngles) Mat4 {
	R := RotXY(r.XY)
	R = RotXZ(r.XZ).Mul(R)
	R = RotXW(r.XW).Mul(R)
	R = RotYZ(r.YZ).Mul(R)
	R = RotYW(r.YW).Mul(R)
	R = RotZW(r.ZW).Mul(R)
	return R
}
