package orbitplan

import "math"

// This file holds the three anomaly ladders (true ↔ eccentric/hyperbolic/
// parabolic ↔ mean) used to convert between true anomaly and time. Kepler's
// equation and its hyperbolic and parabolic analogues have no library
// counterpart anywhere in the corpus (the teacher's own SinCosE solves the
// elliptic case inline with plain math); root-finding here is plain math
// for the same reason — there is nothing in the example pack to ground a
// substitute on.

// ellipticNuToE converts true anomaly to eccentric anomaly (0 ≤ ecc < 1).
func ellipticNuToE(nu Angle, ecc float64) float64 {
	halfNu := nu.Rad() / 2
	return 2 * math.Atan2(math.Sqrt(1-ecc)*math.Sin(halfNu), math.Sqrt(1+ecc)*math.Cos(halfNu))
}

// ellipticEToNu is the inverse of ellipticNuToE.
func ellipticEToNu(E, ecc float64) float64 {
	halfE := E / 2
	return 2 * math.Atan2(math.Sqrt(1+ecc)*math.Sin(halfE), math.Sqrt(1-ecc)*math.Cos(halfE))
}

// solveKeplerElliptic solves M = E − e·sin(E) for E, given M (any real) and
// 0 ≤ ecc < 1. M is reduced modulo 2π before iterating; the Prussing-Conway
// closed-form seed is refined by Newton's method up to keplerMaxIter times,
// stopping early once the residual is within keplerTol. An iteration cap
// that is reached without convergence returns the best current iterate
// rather than an error.
func solveKeplerElliptic(M, ecc float64) float64 {
	Mr := floorMod2Pi(M)
	u := Mr + ecc
	sinMr := math.Sin(Mr)
	sinU := math.Sin(u)
	E := Mr
	denom := 1 + sinMr - sinU
	if denom != 0 {
		E = (Mr*(1-sinU) + u*sinMr) / denom
	}
	for i := 0; i < keplerMaxIter; i++ {
		f := E - ecc*math.Sin(E) - Mr
		if math.Abs(f) <= keplerTol {
			break
		}
		fPrime := 1 - ecc*math.Cos(E)
		E -= f / fPrime
	}
	return E
}

// hyperbolicNuToH converts true anomaly to hyperbolic anomaly (ecc > 1).
// True anomaly outside (−thetaMax, thetaMax) is first expelled to the
// nearest legal boundary; at an exact boundary H is ±∞, matching the
// asymptotic approach to the hyperbola's straight-line legs.
func hyperbolicNuToH(nu, thetaMax Angle, ecc float64) float64 {
	hi := thetaMax.Negate()
	if nu.ApproxEqual(thetaMax) {
		return math.Inf(1)
	}
	if nu.ApproxEqual(hi) {
		return math.Inf(-1)
	}
	expelled := Expel(nu, thetaMax, hi)
	k := math.Sqrt((ecc - 1) / (ecc + 1))
	return 2 * math.Atanh(k*math.Tan(expelled.Rad()/2))
}

// hyperbolicHToNu is the inverse of hyperbolicNuToH. H = ±∞ maps to the
// corresponding asymptote directly, since sinh/cosh of an infinite H would
// otherwise combine to an indeterminate atan2(∞, ∞).
func hyperbolicHToNu(H float64, ecc float64, thetaMax Angle) Angle {
	if math.IsInf(H, 1) {
		return thetaMax
	}
	if math.IsInf(H, -1) {
		return thetaMax.Negate()
	}
	halfH := H / 2
	nu := 2 * math.Atan2(math.Sqrt(ecc+1)*math.Sinh(halfH), math.Sqrt(ecc-1)*math.Cosh(halfH))
	return NewAngle(nu)
}

// hToM converts hyperbolic anomaly to mean anomaly: M = e·sinh(H) − H. An
// infinite H propagates directly rather than computing ∞ − ∞.
func hToM(H, ecc float64) float64 {
	if math.IsInf(H, 0) {
		return H
	}
	return ecc*math.Sinh(H) - H
}

// solveKeplerHyperbolic solves M = e·sinh(H) − H for H, given M (any real,
// including ±∞) and ecc > 1. An infinite M returns an infinite H of the
// same sign immediately. Newton's method is seeded at H=M and capped at
// keplerMaxIter iterations; if an iterate ever becomes non-finite, the
// result is ±∞ with the sign of M.
func solveKeplerHyperbolic(M, ecc float64) float64 {
	if math.IsInf(M, 0) {
		return M
	}
	H := M
	for i := 0; i < keplerMaxIter; i++ {
		f := ecc*math.Sinh(H) - H - M
		if math.Abs(f) <= keplerTol {
			break
		}
		fPrime := ecc*math.Cosh(H) - 1
		next := H - f/fPrime
		if math.IsNaN(next) || math.IsInf(next, 0) {
			return math.Copysign(math.Inf(1), M)
		}
		H = next
	}
	return H
}

// parabolicNuToD converts true anomaly to the parabolic anomaly D (ecc =
// 1). ν = π is the orbit's single asymptotic direction and maps to +∞.
func parabolicNuToD(nu Angle, rpe float64) float64 {
	if nu.ApproxEqual(AngleHalfTurn) {
		return math.Inf(1)
	}
	return math.Sqrt(2*rpe) * math.Tan(nu.Rad()/2)
}

// parabolicDToNu is the inverse of parabolicNuToD. atan2 naturally sends
// D = ±∞ to ν = π (both signs represent the same asymptotic direction).
func parabolicDToNu(D, rpe float64) Angle {
	return NewAngle(2 * math.Atan2(D, math.Sqrt(2*rpe)))
}

// parabolicDToM is Barker's equation: M = RPE·D + D³/6.
func parabolicDToM(D, rpe float64) float64 {
	return rpe*D + D*D*D/6
}

// solveBarkerCubic inverts Barker's equation via Cardano's formula for the
// depressed cubic D³ + 6·RPE·D − 6M = 0. An infinite M returns an infinite
// D of the same sign directly, since the Cardano terms would otherwise
// combine ∞ − ∞ into NaN.
func solveBarkerCubic(M, rpe float64) float64 {
	if math.IsInf(M, 0) {
		return M
	}
	A := math.Sqrt(9*M*M + 8*rpe*rpe*rpe)
	return math.Cbrt(3*M+A) + math.Cbrt(3*M-A)
}
