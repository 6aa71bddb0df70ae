package math

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrInvalidInput   = errors.New("invalid input: expected [w, x, y, z]")
	ErrDivisionByZero = errors.New("division by zero-norm quaternion")
	ErrDegenerateAxis = errors.New("degenerate rotation axis: axis points coincide")
)

// Quat is the quaternion w + xi + yj + zk.
// W is the scalar part. Unit norm is not required.
type Quat struct {
	W, X, Y, Z float64
}

// QuatIdentity returns the multiplicative identity (1, 0, 0, 0).
func QuatIdentity() Quat {
	return Quat{W: 1}
}

// QuatFromArray builds a quaternion from [w, x, y, z].
func QuatFromArray(v [4]float64) Quat {
	return Quat{W: v[0], X: v[1], Y: v[2], Z: v[3]}
}

// QuatFromSlice builds a quaternion from an ordered sequence [w, x, y, z].
// Any other length yields ErrInvalidInput.
func QuatFromSlice(v []float64) (Quat, error) {
	if len(v) != 4 {
		return Quat{}, fmt.Errorf("%w: got %d components", ErrInvalidInput, len(v))
	}
	return Quat{W: v[0], X: v[1], Y: v[2], Z: v[3]}, nil
}

// QuatFromAxisAngle creates a rotor from axis-angle rotation.
// axis should be normalized, angle is in radians.
func QuatFromAxisAngle(axis Vec3, angle float64) Quat {
	s := math.Sin(angle / 2)
	return Quat{
		W: math.Cos(angle / 2),
		X: s * axis.X,
		Y: s * axis.Y,
		Z: s * axis.Z,
	}
}

// XYZ returns the vector part.
func (q Quat) XYZ() Vec3 {
	return Vec3{q.X, q.Y, q.Z}
}

// Array returns the components as [w, x, y, z].
func (q Quat) Array() [4]float64 {
	return [4]float64{q.W, q.X, q.Y, q.Z}
}

// Mul returns the Hamilton product q * other. It does not commute.
func (q Quat) Mul(other Quat) Quat {
	return Quat{
		W: q.W*other.W - q.X*other.X - q.Y*other.Y - q.Z*other.Z,
		X: q.X*other.W + q.W*other.X - q.Z*other.Y + q.Y*other.Z,
		Y: q.Y*other.W + q.Z*other.X + q.W*other.Y - q.X*other.Z,
		Z: q.Z*other.W - q.Y*other.X + q.X*other.Y + q.W*other.Z,
	}
}

// NormSq returns w² + x² + y² + z².
func (q Quat) NormSq() float64 {
	return q.W*q.W + q.X*q.X + q.Y*q.Y + q.Z*q.Z
}

// Conjugate returns (w, -x, -y, -z). Equal to the inverse for unit quaternions.
func (q Quat) Conjugate() Quat {
	return Quat{W: q.W, X: -q.X, Y: -q.Y, Z: -q.Z}
}

// Inverse returns q⁻¹, or ErrDivisionByZero for the zero quaternion.
func (q Quat) Inverse() (Quat, error) {
	n := q.NormSq()
	if n == 0 {
		return Quat{}, ErrDivisionByZero
	}
	return Quat{
		W: q.W / n,
		X: -q.X / n,
		Y: -q.Y / n,
		Z: -q.Z / n,
	}, nil
}

// Div returns q * other⁻¹.
func (q Quat) Div(other Quat) (Quat, error) {
	inv, err := other.Inverse()
	if err != nil {
		return Quat{}, err
	}
	return q.Mul(inv), nil
}

// ApproxEqual reports whether every component of q is within eps of other.
func (q Quat) ApproxEqual(other Quat, eps float64) bool {
	return math.Abs(q.W-other.W) <= eps &&
		math.Abs(q.X-other.X) <= eps &&
		math.Abs(q.Y-other.Y) <= eps &&
		math.Abs(q.Z-other.Z) <= eps
}

func (q Quat) String() string {
	return fmt.Sprintf("(%g, %g, %g, %g)", q.W, q.X, q.Y, q.Z)
}
