package orbitplan

import (
	"math"
	"testing"

	"github.com/gonum/matrix/mat64"
)

func TestR1R2R3(t *testing.T) {
	x := math.Pi / 3.0
	s, c := math.Sincos(x)
	m1, m2, m3 := r1(x), r2(x), r3(x)
	if m1.At(0, 0) != m2.At(1, 1) || m1.At(0, 0) != m3.At(2, 2) || m3.At(2, 2) != 1 {
		t.Fatal("expected r1.At(0, 0) = r2.At(1, 1) = r3.At(2, 2) = 1")
	}
	if m1.At(0, 1) != m1.At(0, 2) || m1.At(1, 0) != m1.At(2, 0) || m1.At(0, 1) != 0 {
		t.Fatal("misplaced zeros in r1")
	}
	if m1.At(1, 1) != m1.At(2, 2) || m1.At(2, 2) != c {
		t.Fatal("expected r1 cosines misplaced")
	}
	if m1.At(2, 1) != -m1.At(1, 2) || m1.At(1, 2) != s {
		t.Fatal("expected r1 sines misplaced")
	}
}

func TestR3R1R3(t *testing.T) {
	var r1r3, r3r1r3m mat64.Dense
	θ1 := math.Pi / 17
	θ2 := math.Pi / 16
	θ3 := math.Pi / 15
	r1r3.Mul(r1(θ2), r3(θ1))
	r3r1r3m.Mul(r3(θ3), &r1r3)
	r3r1r3m.Sub(&r3r1r3m, r3r1r3(θ1, θ2, θ3))
	if !mat64.EqualApprox(&r3r1r3m, mat64.NewDense(3, 3, nil), 1e-12) {
		t.Logf("\n%+v", mat64.Formatted(&r3r1r3m))
		t.Fatal("r3r1r3 does not factor as r3(θ3)*r1(θ2)*r3(θ1)")
	}
}

func TestRot313VecPQW2ECI(t *testing.T) {
	// Vallado 4th ed. example 2-6: p=11067.79km, e=0.83285, i=87.87deg,
	// Ω=227.89deg, ω=53.38deg, ν=92.335deg.
	inc := NewAngleDeg(87.87)
	lan := NewAngleDeg(227.89)
	ape := NewAngleDeg(53.38)

	rPQW := Vec3{-466.7639, 11447.0219, 0}
	rECIWant := Vec3{6525.368103709379, 6861.531814548294, 6449.118636407358}
	rECIGot := rot313Vec(lan, inc, ape, rPQW)
	if !vec3ApproxEqual(rECIWant, rECIGot, 1e-6) {
		t.Fatalf("position rotation failed: got %+v want %+v", rECIGot, rECIWant)
	}

	vPQW := Vec3{-5.996222, 4.753601, 0}
	vECIWant := Vec3{4.902278620687254, 5.533139558121602, -1.9757104281719946}
	vECIGot := rot313Vec(lan, inc, ape, vPQW)
	if !vec3ApproxEqual(vECIWant, vECIGot, 1e-6) {
		t.Fatalf("velocity rotation failed: got %+v want %+v", vECIGot, vECIWant)
	}
}

func vec3ApproxEqual(a, b Vec3, tol float64) bool {
	return math.Abs(a.X-b.X) <= tol && math.Abs(a.Y-b.Y) <= tol && math.Abs(a.Z-b.Z) <= tol
}
