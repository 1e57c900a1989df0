package cartesian3

import (
	"math"

	"github.com/banshee-data/geom/angle"
	"github.com/banshee-data/geom/numerics"
)

// Quaternion represents a rotation (or rotation plus scale when not
// normalized) about an axis through the origin.
type Quaternion[T numerics.Float] struct {
	X, Y, Z, W T
}

// IdentityQuaternion returns the no-op rotation.
func IdentityQuaternion[T numerics.Float]() Quaternion[T] {
	return Quaternion[T]{W: 1}
}

// FromAxisAngle builds the quaternion rotating by the given angle about
// axis. The axis should be normalized for a pure rotation.
func FromAxisAngle[U angle.Unit, T numerics.Float](axis Vector[T], a angle.Angle[U, T]) Quaternion[T] {
	sin, cos := angle.SinCos(a.DivScalar(2))
	return Quaternion[T]{
		X: axis.X * sin,
		Y: axis.Y * sin,
		Z: axis.Z * sin,
		W: cos,
	}
}

// Mul returns the Hamilton product q·r, the rotation r followed by q.
func (q Quaternion[T]) Mul(r Quaternion[T]) Quaternion[T] {
	return Quaternion[T]{
		X: q.W*r.X + q.X*r.W + q.Y*r.Z - q.Z*r.Y,
		Y: q.W*r.Y - q.X*r.Z + q.Y*r.W + q.Z*r.X,
		Z: q.W*r.Z + q.X*r.Y - q.Y*r.X + q.Z*r.W,
		W: q.W*r.W - q.X*r.X - q.Y*r.Y - q.Z*r.Z,
	}
}

// Conjugate returns the quaternion with negated vector part; for unit
// quaternions this is the inverse rotation.
func (q Quaternion[T]) Conjugate() Quaternion[T] {
	return Quaternion[T]{X: -q.X, Y: -q.Y, Z: -q.Z, W: q.W}
}

// MagnitudeSquared returns the squared norm of the quaternion.
func (q Quaternion[T]) MagnitudeSquared() T {
	return q.X*q.X + q.Y*q.Y + q.Z*q.Z + q.W*q.W
}

// NormalizeQuaternion returns q scaled to unit norm. The zero quaternion
// is returned unchanged.
func NormalizeQuaternion[T numerics.Float](q Quaternion[T]) Quaternion[T] {
	m := T(math.Sqrt(float64(q.MagnitudeSquared())))
	if m == 0 {
		return q
	}
	return Quaternion[T]{X: q.X / m, Y: q.Y / m, Z: q.Z / m, W: q.W / m}
}

// Apply rotates v by q using the expanded rotation-matrix form rather
// than the q·v·q⁻¹ sandwich, saving the two quaternion products. The
// formula assumes a unit quaternion; a non-normalized q scales as well
// as rotates, and callers wanting a pure rotation must normalize first.
func Apply[T numerics.Float](q Quaternion[T], v Vector[T]) Vector[T] {
	x2 := q.X + q.X
	y2 := q.Y + q.Y
	z2 := q.Z + q.Z

	xx2 := q.X * x2
	yy2 := q.Y * y2
	zz2 := q.Z * z2
	xy2 := q.X * y2
	xz2 := q.X * z2
	yz2 := q.Y * z2
	wx2 := q.W * x2
	wy2 := q.W * y2
	wz2 := q.W * z2

	return Vector[T]{
		X: v.X*(1-yy2-zz2) + v.Y*(xy2-wz2) + v.Z*(xz2+wy2),
		Y: v.X*(xy2+wz2) + v.Y*(1-xx2-zz2) + v.Z*(yz2-wx2),
		Z: v.X*(xz2-wy2) + v.Y*(yz2+wx2) + v.Z*(1-xx2-yy2),
	}
}

// ApplyToPoint rotates a point about the origin. See Apply.
func ApplyToPoint[T numerics.Float](q Quaternion[T], p Point[T]) Point[T] {
	v := Apply(q, Vector[T]{X: p.X, Y: p.Y, Z: p.Z})
	return Point[T]{X: v.X, Y: v.Y, Z: v.Z}
}
