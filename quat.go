package squish

import "math"

// Quat is a rotation quaternion. Transforms store one per entity; the render
// system only ever extracts the X-axis Euler angle from it.
type Quat struct {
	X, Y, Z, W float64
}

// QuatIdentity returns the identity rotation.
func QuatIdentity() Quat {
	return Quat{0, 0, 0, 1}
}

// QuatFromAxisAngle builds a quaternion rotating angle radians around axis.
// The axis is normalized first; a zero axis yields the identity.
func QuatFromAxisAngle(axis Vec3, angle float64) Quat {
	length := math.Sqrt(axis.X*axis.X + axis.Y*axis.Y + axis.Z*axis.Z)
	if length == 0 {
		return QuatIdentity()
	}
	sin, cos := math.Sincos(angle / 2)
	sin /= length
	return Quat{axis.X * sin, axis.Y * sin, axis.Z * sin, cos}
}

// EulerX returns the rotation angle around the X axis in radians, using the
// standard atan2 extraction for the roll term of a ZYX Euler decomposition.
func (q Quat) EulerX() float64 {
	sinr := 2 * (q.W*q.X + q.Y*q.Z)
	cosr := 1 - 2*(q.X*q.X+q.Y*q.Y)
	return math.Atan2(sinr, cosr)
}
