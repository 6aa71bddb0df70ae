package math

import (
	"fmt"
	"math"
)

// Rotate rotates point by angle radians about the line through axis1 and axis2.
//
// The point is moved into a frame centered at axis2, rotated with the
// sandwich product r * p * r⁻¹ and moved back. The rotor r is unit norm by
// construction (cos² + sin² = 1), so r⁻¹ equals its conjugate; the full
// inverse is kept anyway.
func Rotate(point, axis1, axis2 Vec3, angle float64) (Vec3, error) {
	dir := axis2.Sub(axis1)

	// Divide by the largest component first so the length cannot overflow.
	m := dir.MaxAbs()
	if m == 0 {
		return Vec3{}, ErrDegenerateAxis
	}
	if math.IsInf(m, 0) || math.IsNaN(m) {
		return Vec3{}, fmt.Errorf("%w: axis direction %v is not finite", ErrDegenerateAxis, dir)
	}
	dir = Vec3{dir.X / m, dir.Y / m, dir.Z / m}.Normalize()

	rel := point.Sub(axis2)
	p := Quat{X: rel.X, Y: rel.Y, Z: rel.Z}

	r := QuatFromAxisAngle(dir, angle)
	rInv, err := r.Inverse()
	if err != nil {
		return Vec3{}, err
	}

	// The scalar part of the product is ~0 and is dropped.
	return r.Mul(p).Mul(rInv).XYZ().Add(axis2), nil
}

// Rotation is the method form of Rotate. The receiver is not used.
func (q Quat) Rotation(point, axis1, axis2 Vec3, angle float64) (Vec3, error) {
	return Rotate(point, axis1, axis2, angle)
}
