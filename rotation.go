package orbitplan

import (
	"math"

	"github.com/gonum/matrix/mat64"
)

// r1 returns the rotation matrix about the first axis.
func r1(x float64) *mat64.Dense {
	s, c := math.Sincos(x)
	return mat64.NewDense(3, 3, []float64{1, 0, 0, 0, c, s, 0, -s, c})
}

// r2 returns the rotation matrix about the second axis.
func r2(x float64) *mat64.Dense {
	s, c := math.Sincos(x)
	return mat64.NewDense(3, 3, []float64{c, 0, -s, 0, 1, 0, s, 0, c})
}

// r3 returns the rotation matrix about the third axis.
func r3(x float64) *mat64.Dense {
	s, c := math.Sincos(x)
	return mat64.NewDense(3, 3, []float64{c, s, 0, -s, c, 0, 0, 0, 1})
}

// r3r1r3 composes a 3-1-3 Euler rotation. From Schaub and Junkins.
func r3r1r3(θ1, θ2, θ3 float64) *mat64.Dense {
	sθ1, cθ1 := math.Sincos(θ1)
	sθ2, cθ2 := math.Sincos(θ2)
	sθ3, cθ3 := math.Sincos(θ3)
	return mat64.NewDense(3, 3, []float64{
		cθ3*cθ1 - sθ3*cθ2*sθ1, cθ3*sθ1 + sθ3*cθ2*cθ1, sθ3 * sθ2,
		-sθ3*cθ1 - cθ3*cθ2*sθ1, -sθ3*sθ1 + cθ3*cθ2*cθ1, cθ3 * sθ2,
		sθ2 * sθ1, -sθ2 * cθ1, cθ2,
	})
}

// mxv33 multiplies a 3x3 matrix by a 3-vector. No dimension check.
func mxv33(m *mat64.Dense, v []float64) []float64 {
	vVec := mat64.NewVector(len(v), v)
	var rVec mat64.Vector
	rVec.MulVec(m, vVec)
	return []float64{rVec.At(0, 0), rVec.At(1, 0), rVec.At(2, 0)}
}

// rot313Vec carries a PQW-frame vector into the body's inertial frame,
// given the orbit's LAN, INC, and APE — the true anomaly is already
// folded into the PQW-frame vector's own components via sin/cos(ν), so
// it never appears in this rotation itself. r3, r1 and r3r1r3 are frame
// (passive) rotations, so the PQW→inertial transform is
// r3(−LAN)·r1(−INC)·r3(−argLat), i.e. r3r1r3(−argLat, −INC, −LAN); this is
// checked against the Vallado PQW2ECI fixture in rotation_test.go.
func rot313Vec(lan, inc, argLat Angle, v Vec3) Vec3 {
	out := mxv33(r3r1r3(-argLat.Rad(), -inc.Rad(), -lan.Rad()), []float64{v.X, v.Y, v.Z})
	return Vec3{out[0], out[1], out[2]}
}
