package math

import (
	"errors"
	"math"
	"testing"
)

const eps = 1e-9

func TestQuatIdentity(t *testing.T) {
	q := QuatIdentity()
	if q.W != 1 || q.X != 0 || q.Y != 0 || q.Z != 0 {
		t.Errorf("Identity quaternion should be (1,0,0,0), got %v", q)
	}
}

func TestQuatFromSlice(t *testing.T) {
	tests := []struct {
		name    string
		input   []float64
		want    Quat
		wantErr bool
	}{
		{"four components", []float64{0, 1, 1, 1}, Quat{W: 0, X: 1, Y: 1, Z: 1}, false},
		{"nil", nil, Quat{}, true},
		{"single number", []float64{5}, Quat{}, true},
		{"three components", []float64{1, 2, 3}, Quat{}, true},
		{"five components", []float64{1, 2, 3, 4, 5}, Quat{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := QuatFromSlice(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidInput) {
					t.Fatalf("expected ErrInvalidInput, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("QuatFromSlice(%v) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestQuatFromArray(t *testing.T) {
	q := QuatFromArray([4]float64{1, 2, 3, 4})
	if q != (Quat{W: 1, X: 2, Y: 3, Z: 4}) {
		t.Errorf("QuatFromArray = %v", q)
	}
	if q.Array() != [4]float64{1, 2, 3, 4} {
		t.Errorf("Array() = %v", q.Array())
	}
}

func TestQuatXYZ(t *testing.T) {
	q := Quat{W: 9, X: 1, Y: 2, Z: 3}
	if got := q.XYZ(); got != (Vec3{1, 2, 3}) {
		t.Errorf("XYZ() = %v, want (1, 2, 3)", got)
	}
}

func TestQuatMulBasis(t *testing.T) {
	i := Quat{X: 1}
	j := Quat{Y: 1}
	k := Quat{Z: 1}
	minusOne := Quat{W: -1}

	tests := []struct {
		name string
		a, b Quat
		want Quat
	}{
		{"i*j", i, j, k},
		{"j*k", j, k, i},
		{"k*i", k, i, j},
		{"j*i", j, i, Quat{Z: -1}},
		{"i*i", i, i, minusOne},
		{"j*j", j, j, minusOne},
		{"k*k", k, k, minusOne},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Mul(tt.b); got != tt.want {
				t.Errorf("%s = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}

func TestQuatMulNonCommutative(t *testing.T) {
	a := Quat{W: 1, X: 2, Y: 3, Z: 4}
	b := Quat{W: -0.5, X: 0.25, Y: 7, Z: 1}
	if a.Mul(b).ApproxEqual(b.Mul(a), eps) {
		t.Errorf("expected a*b != b*a, both are %v", a.Mul(b))
	}
}

func TestQuatMulAssociative(t *testing.T) {
	a := Quat{W: 1, X: 2, Y: 3, Z: 4}
	b := Quat{W: -0.5, X: 0.25, Y: 7, Z: 1}
	c := Quat{W: 0.3, X: -1.1, Y: 0, Z: 2.5}

	left := a.Mul(b).Mul(c)
	right := a.Mul(b.Mul(c))
	if !left.ApproxEqual(right, eps) {
		t.Errorf("(a*b)*c = %v, a*(b*c) = %v", left, right)
	}
}

func TestQuatMulIdentity(t *testing.T) {
	q := Quat{W: 0.3, X: -1.1, Y: 0, Z: 2.5}
	if got := q.Mul(QuatIdentity()); got != q {
		t.Errorf("q*1 = %v, want %v", got, q)
	}
	if got := QuatIdentity().Mul(q); got != q {
		t.Errorf("1*q = %v, want %v", got, q)
	}
}

func TestQuatInverse(t *testing.T) {
	q := Quat{W: 1, X: 2, Y: 3, Z: 4}
	inv, err := q.Inverse()
	if err != nil {
		t.Fatalf("Inverse: %v", err)
	}
	want := Quat{W: 1.0 / 30, X: -2.0 / 30, Y: -3.0 / 30, Z: -4.0 / 30}
	if !inv.ApproxEqual(want, eps) {
		t.Errorf("Inverse() = %v, want %v", inv, want)
	}
	if got := q.Mul(inv); !got.ApproxEqual(QuatIdentity(), eps) {
		t.Errorf("q*q⁻¹ = %v, want identity", got)
	}
}

func TestQuatInverseUnit(t *testing.T) {
	axes := []Vec3{{1, 0, 0}, {0, 1, 0}, {1, 1, 1}, {-2, 0.5, 3}}
	for _, axis := range axes {
		for _, angle := range []float64{0, 0.1, math.Pi / 3, math.Pi, 5} {
			q := QuatFromAxisAngle(axis.Normalize(), angle)
			if math.Abs(q.NormSq()-1) > eps {
				t.Fatalf("rotor %v is not unit norm", q)
			}
			inv, err := q.Inverse()
			if err != nil {
				t.Fatalf("Inverse: %v", err)
			}
			if got := q.Mul(inv); !got.ApproxEqual(QuatIdentity(), eps) {
				t.Errorf("axis %v angle %v: q*q⁻¹ = %v", axis, angle, got)
			}
			if !inv.ApproxEqual(q.Conjugate(), eps) {
				t.Errorf("axis %v angle %v: inverse %v != conjugate %v", axis, angle, inv, q.Conjugate())
			}
		}
	}
}

func TestQuatInverseZero(t *testing.T) {
	inv, err := Quat{}.Inverse()
	if !errors.Is(err, ErrDivisionByZero) {
		t.Fatalf("expected ErrDivisionByZero, got %v", err)
	}
	if math.IsNaN(inv.W) || math.IsInf(inv.W, 0) {
		t.Errorf("zero inverse should not carry NaN/Inf, got %v", inv)
	}
}

func TestQuatDiv(t *testing.T) {
	a := Quat{W: 1, X: 2, Y: 3, Z: 4}
	b := Quat{W: -0.5, X: 0.25, Y: 7, Z: 1}

	q, err := a.Div(b)
	if err != nil {
		t.Fatalf("Div: %v", err)
	}
	if got := q.Mul(b); !got.ApproxEqual(a, eps) {
		t.Errorf("(a/b)*b = %v, want %v", got, a)
	}

	self, err := a.Div(a)
	if err != nil {
		t.Fatalf("Div: %v", err)
	}
	if !self.ApproxEqual(QuatIdentity(), eps) {
		t.Errorf("a/a = %v, want identity", self)
	}
}

func TestQuatDivZero(t *testing.T) {
	_, err := Quat{W: 1}.Div(Quat{})
	if !errors.Is(err, ErrDivisionByZero) {
		t.Errorf("expected ErrDivisionByZero, got %v", err)
	}
}

func TestQuatFromAxisAngle(t *testing.T) {
	// 90 degrees around Y axis
	q := QuatFromAxisAngle(Vec3{X: 0, Y: 1, Z: 0}, math.Pi/2)

	expectedW := math.Cos(math.Pi / 4)
	expectedY := math.Sin(math.Pi / 4)

	if math.Abs(q.W-expectedW) > eps {
		t.Errorf("QuatFromAxisAngle W: expected %v, got %v", expectedW, q.W)
	}
	if math.Abs(q.Y-expectedY) > eps {
		t.Errorf("QuatFromAxisAngle Y: expected %v, got %v", expectedY, q.Y)
	}
	if q.X != 0 || q.Z != 0 {
		t.Errorf("QuatFromAxisAngle X/Z should be 0, got %v", q)
	}
}

func TestQuatString(t *testing.T) {
	if got := (Quat{W: 0, X: 1, Y: 1.5, Z: -2}).String(); got != "(0, 1, 1.5, -2)" {
		t.Errorf("String() = %q", got)
	}
}
