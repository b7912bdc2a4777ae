package deskscene

import "math"

func radians(deg float64) float64 {
	return deg * (math.Pi / 180)
}

// rotatePlane rotates the pair (h, v) by the angle whose cosine and sine are
// given, writing both values back:
//
//	h' = -v*sin + h*cos
//	v' =  h*sin + v*cos
func rotatePlane(cos, sin float64, h, v *float64) {
	nh := -(*v)*sin + (*h)*cos
	nv := (*h)*sin + (*v)*cos
	*h = nh
	*v = nv
}

// RotateOffset rotates an object-local offset into the object's orientation
// frame, mutating it in place. Angles are degrees. The rotation order is
// fixed: the xy plane by z, then the xz plane by -y, then the yz plane by x.
// The order is not commutative and is part of the placement contract; all
// scene tables were authored against it.
func RotateOffset(offset *Vector3, xDeg, yDeg, zDeg float64) {
	z := radians(zDeg)
	rotatePlane(math.Cos(z), math.Sin(z), &offset.X, &offset.Y)

	y := radians(yDeg)
	rotatePlane(math.Cos(-y), math.Sin(-y), &offset.X, &offset.Z)

	x := radians(xDeg)
	rotatePlane(math.Cos(x), math.Sin(x), &offset.Y, &offset.Z)
}

// UnrotateOffset is the exact inverse of RotateOffset: the same plane
// rotations with negated angles, applied in reverse order.
func UnrotateOffset(offset *Vector3, xDeg, yDeg, zDeg float64) {
	x := radians(xDeg)
	rotatePlane(math.Cos(-x), math.Sin(-x), &offset.Y, &offset.Z)

	y := radians(yDeg)
	rotatePlane(math.Cos(y), math.Sin(y), &offset.X, &offset.Z)

	z := radians(zDeg)
	rotatePlane(math.Cos(-z), math.Sin(-z), &offset.X, &offset.Y)
}

// WorldPosition places a part: its local offset is rotated by the object's
// orientation (degrees) and added to the object's origin.
func WorldPosition(origin, orientation, localOffset Vector3) Vector3 {
	off := localOffset
	RotateOffset(&off, orientation.X, orientation.Y, orientation.Z)
	return origin.Add(off)
}
