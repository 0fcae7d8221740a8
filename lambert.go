package orbitplan

import (
	"fmt"
	"math"
)

// LambertErrorReason enumerates why FindTransfer could not solve a
// transfer. Grounded in the teacher's tools/lambert.go, which returns a
// bare error on degenerate input; this spec wants the caller to be able
// to branch on the reason, hence a typed reason rather than string
// matching.
type LambertErrorReason int

const (
	// ErrCollinear: r1 and r2 are parallel or antiparallel, so no orbital
	// plane is defined.
	ErrCollinear LambertErrorReason = iota
	// ErrNonPositiveTimeOfFlight: t2 is not strictly after t1.
	ErrNonPositiveTimeOfFlight
	// ErrNonPositiveParam: the body's μ, or one of the position vectors'
	// norms, is not strictly positive.
	ErrNonPositiveParam
)

func (r LambertErrorReason) String() string {
	switch r {
	case ErrCollinear:
		return "collinear position vectors"
	case ErrNonPositiveTimeOfFlight:
		return "non-positive time of flight"
	case ErrNonPositiveParam:
		return "non-positive parameter"
	default:
		return "unknown lambert error"
	}
}

// LambertError reports why FindTransfer failed.
type LambertError struct {
	Reason LambertErrorReason
}

func (e *LambertError) Error() string {
	return fmt.Sprintf("lambert: %s", e.Reason)
}

// FindTransfer solves Lambert's problem for the zero-revolution transfer
// from r1 at t1 to r2 at t2 around body, using Izzo's 2014 formulation,
// and returns the transfer orbit built from the state (r1, v1) at t1.
//
// Grounded in the teacher's tools/lambert.go for overall Go shape (a
// stateless function taking r1, r2, tof, μ and returning velocities), but
// the numerical method itself — the λ/x/y non-dimensionalization and
// fixed five-iteration third-order Householder root solve — has no counterpart anywhere
// in the example pack; the teacher's own Lambert solver is a universal-
// variable/Stumpff-function method, a different algorithm entirely. There
// is nothing in the corpus to ground the Izzo math itself on beyond the
// teacher's general "Lambert solver is a free function over vectors and a
// μ" shape, so the root-finding and reconstruction formulas follow Izzo's
// published derivation directly.
func FindTransfer(body Body, r1 Vec3, t1 float64, r2 Vec3, t2 float64) (Orbit, error) {
	if body.Mu <= 0 {
		return Orbit{}, &LambertError{Reason: ErrNonPositiveParam}
	}
	tof := t2 - t1
	if tof <= 0 {
		return Orbit{}, &LambertError{Reason: ErrNonPositiveTimeOfFlight}
	}
	r1n := r1.Norm()
	r2n := r2.Norm()
	if r1n <= 0 || r2n <= 0 {
		return Orbit{}, &LambertError{Reason: ErrNonPositiveParam}
	}

	crossR1R2 := r1.Cross(r2)
	normalNorm := crossR1R2.Norm()
	if normalNorm <= 0 {
		return Orbit{}, &LambertError{Reason: ErrCollinear}
	}

	ihatR1 := r1.Scale(1 / r1n)
	ihatH := crossR1R2.Scale(1 / normalNorm)

	c := r2.Sub(r1).Norm()
	s := (r1n + r2n + c) / 2

	lam := math.Sqrt(1 - c/s)
	if crossR1R2.Z < 0 {
		lam = -lam
	}

	tStar := math.Sqrt(2*body.Mu/(s*s*s)) * tof

	x := lambertInitialGuess(tStar, lam)
	for i := 0; i < lambertHouseholderIter; i++ {
		x = lambertHouseholderStep(x, tStar, lam)
	}
	y := math.Sqrt(1 - lam*lam*(1-x*x))

	gamma := math.Sqrt(body.Mu * s / 2)
	rho := (r1n - r2n) / c
	sigma := math.Sqrt(1 - rho*rho)

	vr1 := gamma * ((lam*y - x) - rho*(lam*y+x)) / r1n
	vt1 := gamma * sigma * (y + lam*x) / r1n

	ihatT1 := ihatH.Cross(ihatR1)
	if lam < 0 {
		ihatT1 = ihatT1.Scale(-1)
	}
	v1 := ihatR1.Scale(vr1).Add(ihatT1.Scale(vt1))

	return FromState(body, r1, v1, t1), nil
}

// lambertInitialGuess is Izzo's zero-revolution seed for x, piecewise on
// where T* falls relative to T0 (the minimum-energy time, at x=0) and T1
// (the parabolic time, at x=1).
func lambertInitialGuess(tStar, lam float64) float64 {
	t0 := math.Acos(lam) + lam*math.Sqrt(1-lam*lam)
	t1 := 2.0 / 3.0 * (1 - lam*lam*lam)
	switch {
	case tStar >= t0:
		return math.Pow(t0/tStar, 2.0/3.0) - 1
	case tStar < t1:
		return 2.5*t1/tStar*(t1-tStar)/(1-math.Pow(lam, 5)) + 1
	default:
		return math.Pow(t0/tStar, math.Log2(t1/t0)) - 1
	}
}

// lambertTimeOfFlight evaluates Izzo's non-dimensional time-of-flight
// function T(x) for the zero-revolution branch, via the ψ formulation
// (elliptic/hyperbolic split on x), together with its first three
// derivatives, needed for the Householder step.
func lambertTimeOfFlight(x, lam float64) (T, dT, d2T, d3T float64) {
	y := math.Sqrt(1 - lam*lam*(1-x*x))
	if x == 1 {
		T = 2.0 / 3.0 * (1 - lam*lam*lam)
	} else {
		var psi float64
		if x > 1 {
			psi = math.Asinh((y - x*lam) * math.Sqrt(x*x-1))
		} else {
			psi = math.Acos(x*y + lam*(1-x*x))
		}
		denom := 1 - x*x
		T = (psi/math.Sqrt(math.Abs(denom)) - x + lam*y) / denom
	}

	oneMinusX2 := 1 - x*x
	dT = (3*T*x - 2 + 2*lam*lam*lam*x/y) / oneMinusX2
	d2T = (3*T + 5*x*dT + 2*(1-lam*lam)*lam*lam*lam/(y*y*y)) / oneMinusX2
	d3T = (7*x*d2T + 8*dT - 6*(1-lam*lam)*math.Pow(lam, 5)*x/math.Pow(y, 5)) / oneMinusX2
	return
}

// lambertHouseholderStep applies one iteration of third-order Householder
// root-finding to f(x) = T(x) − T* = 0.
func lambertHouseholderStep(x, tStar, lam float64) float64 {
	T, dT, d2T, d3T := lambertTimeOfFlight(x, lam)
	f := T - tStar
	fp := dT
	fpp := d2T
	fppp := d3T
	num := f * (fp*fp - f*fpp/2)
	den := fp*(fp*fp-f*fpp) + f*f*fppp/6
	if den == 0 {
		return x
	}
	return x - num/den
}
