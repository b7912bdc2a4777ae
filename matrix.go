package deskscene

import "github.com/go-gl/mathgl/mgl64"

// Matrix is a 4x4 transform applied to row vectors: p' = p * M. Column j of
// the 3x3 block holds the image of the j-th axis, the fourth row holds the
// translation.
type Matrix [4][4]float64

func IdentMatrix() Matrix {
	var m Matrix
	m[0][0], m[1][1], m[2][2], m[3][3] = 1, 1, 1, 1
	return m
}

// FromMGL converts a column-vector mgl64 matrix into the row-vector
// convention used here, so that p.Transform(FromMGL(M)) == M * p.
func FromMGL(m mgl64.Mat4) Matrix {
	return Matrix{
		{m[0], m[1], m[2], m[3]},
		{m[4], m[5], m[6], m[7]},
		{m[8], m[9], m[10], m[11]},
		{m[12], m[13], m[14], m[15]},
	}
}

// MultiplyBy returns the transform that applies a first, then m.
func (m Matrix) MultiplyBy(a Matrix) Matrix {
	var out Matrix
	for x := 0; x < 4; x++ {
		for y := 0; y < 4; y++ {
			out[x][y] = a[x][0]*m[0][y] + a[x][1]*m[1][y] + a[x][2]*m[2][y] + a[x][3]*m[3][y]
		}
	}
	return out
}

// TransformPoint applies the full transform, including translation.
func (m Matrix) TransformPoint(p Vector3) Vector3 {
	return Vector3{
		X: m[0][0]*p.X + m[1][0]*p.Y + m[2][0]*p.Z + m[3][0],
		Y: m[0][1]*p.X + m[1][1]*p.Y + m[2][1]*p.Z + m[3][1],
		Z: m[0][2]*p.X + m[1][2]*p.Y + m[2][2]*p.Z + m[3][2],
	}
}

// TransformDirection applies only the 3x3 block, for normals and direction
// vectors that must ignore translation.
func (m Matrix) TransformDirection(v Vector3) Vector3 {
	return Vector3{
		X: m[0][0]*v.X + m[1][0]*v.Y + m[2][0]*v.Z,
		Y: m[0][1]*v.X + m[1][1]*v.Y + m[2][1]*v.Z,
		Z: m[0][2]*v.X + m[1][2]*v.Y + m[2][2]*v.Z,
	}
}

// ModelMatrix builds the per-draw model transform from scale, rotation
// angles in degrees and position. Composition order is translation, then
// rotation about X, Y, Z, then scale, matching the transform buffer the
// scene tables were authored for.
func ModelMatrix(scale, rotation, position Vector3) Matrix {
	m := mgl64.Translate3D(position.X, position.Y, position.Z).
		Mul4(mgl64.HomogRotate3DX(radians(rotation.X))).
		Mul4(mgl64.HomogRotate3DY(radians(rotation.Y))).
		Mul4(mgl64.HomogRotate3DZ(radians(rotation.Z))).
		Mul4(mgl64.Scale3D(scale.X, scale.Y, scale.Z))
	return FromMGL(m)
}
