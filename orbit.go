package orbitplan

import (
	"fmt"
	"math"
)

// Conic identifies which of the three conic sections an Orbit's
// eccentricity puts it on.
type Conic int

const (
	ConicElliptic Conic = iota
	ConicParabolic
	ConicHyperbolic
)

func (c Conic) String() string {
	switch c {
	case ConicElliptic:
		return "elliptic"
	case ConicParabolic:
		return "parabolic"
	case ConicHyperbolic:
		return "hyperbolic"
	default:
		return "unknown"
	}
}

// Orbit is a Keplerian orbit around a Body, stored as the six classical
// elements. Every element is clamped or angle-reduced on construction and
// on every mutation, so a *Orbit is never observed in an invalid state:
// RPE, ECC ≥ 0; INC reduced modulo π; APE, LAN reduced modulo 2π; TPP free.
//
// Grounded in the teacher's orbit.go Orbit, replacing its rVec/vVec/cache
// representation (state vectors with a dirty-hash element cache) with a
// direct elements representation, since this spec's Orbit is elements-
// first and state vectors are a derived, on-demand view.
type Orbit struct {
	body Body
	rpe  float64
	ecc  float64
	inc  Angle
	ape  Angle
	lan  Angle
	tpp  float64
}

// NewOrbitFromElements builds an Orbit from its six classical elements.
// RPE and ECC are clamped to be non-negative; INC is reduced modulo π;
// APE and LAN are reduced modulo 2π.
func NewOrbitFromElements(body Body, rpe, ecc float64, inc, ape, lan Angle, tpp float64) Orbit {
	return Orbit{
		body: body,
		rpe:  clampNonNegative(rpe),
		ecc:  clampNonNegative(ecc),
		inc:  reduceModPi(inc),
		ape:  NewAngle(ape.Rad()),
		lan:  NewAngle(lan.Rad()),
		tpp:  tpp,
	}
}

func clampNonNegative(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}

// reduceModPi reduces an inclination to [0, π), its physically legal
// range, distinct from Angle's own [0, 2π) invariant.
func reduceModPi(a Angle) Angle {
	v := math.Mod(a.Rad(), math.Pi)
	if v < 0 {
		v += math.Pi
	}
	return Angle(v)
}

// Body returns the central body this orbit is bound to.
func (o Orbit) Body() Body { return o.body }

// RPE returns the periapsis radius, m.
func (o Orbit) RPE() float64 { return o.rpe }

// ECC returns the eccentricity.
func (o Orbit) ECC() float64 { return o.ecc }

// INC returns the inclination, reduced modulo π.
func (o Orbit) INC() Angle { return o.inc }

// APE returns the argument of periapsis.
func (o Orbit) APE() Angle { return o.ape }

// LAN returns the longitude of the ascending node.
func (o Orbit) LAN() Angle { return o.lan }

// TPP returns the epoch of periapsis passage, s.
func (o Orbit) TPP() float64 { return o.tpp }

// SetRPE mutates the periapsis radius, clamping to non-negative.
func (o *Orbit) SetRPE(v float64) { o.rpe = clampNonNegative(v) }

// SetECC mutates the eccentricity, clamping to non-negative.
func (o *Orbit) SetECC(v float64) { o.ecc = clampNonNegative(v) }

// SetINC mutates the inclination, reducing modulo π.
func (o *Orbit) SetINC(a Angle) { o.inc = reduceModPi(a) }

// SetAPE mutates the argument of periapsis, reducing modulo 2π.
func (o *Orbit) SetAPE(a Angle) { o.ape = NewAngle(a.Rad()) }

// SetLAN mutates the longitude of the ascending node, reducing modulo 2π.
func (o *Orbit) SetLAN(a Angle) { o.lan = NewAngle(a.Rad()) }

// SetTPP mutates the epoch of periapsis passage.
func (o *Orbit) SetTPP(v float64) { o.tpp = v }

// ConicSection classifies this orbit by eccentricity.
func (o Orbit) ConicSection() Conic {
	switch {
	case o.ecc < 1:
		return ConicElliptic
	case o.ecc == 1:
		return ConicParabolic
	default:
		return ConicHyperbolic
	}
}

// SemiMajorAxis returns a = RPE/(1−ECC). This is negative for hyperbolic
// orbits (the standard convention) and +∞ for parabolic ones, both falling
// out of the division without any special-casing.
func (o Orbit) SemiMajorAxis() float64 {
	return o.rpe / (1 - o.ecc)
}

// SemiLatusRectum returns p = RPE·(1+ECC).
func (o Orbit) SemiLatusRectum() float64 {
	return o.rpe * (1 + o.ecc)
}

// SpecificEnergy returns the vis-viva specific orbital energy ξ = −μ/(2a).
// This is exactly zero for a parabolic orbit, since a is +∞.
func (o Orbit) SpecificEnergy() float64 {
	return -o.body.Mu / (2 * o.SemiMajorAxis())
}

// MeanMotion returns n = √(μ/|a|³) for elliptic and hyperbolic orbits, and
// n = √μ for parabolic ones.
func (o Orbit) MeanMotion() float64 {
	if o.ConicSection() == ConicParabolic {
		return math.Sqrt(o.body.Mu)
	}
	a := o.SemiMajorAxis()
	return math.Sqrt(o.body.Mu / math.Abs(a*a*a))
}

// Period returns the orbital period, s, or +∞ for non-elliptic orbits.
func (o Orbit) Period() float64 {
	if o.ConicSection() != ConicElliptic {
		return math.Inf(1)
	}
	a := o.SemiMajorAxis()
	return 2 * math.Pi * math.Sqrt(a*a*a/o.body.Mu)
}

// ApoapsisRadius returns the apoapsis radius, m, or +∞ for non-elliptic
// orbits.
func (o Orbit) ApoapsisRadius() float64 {
	if o.ConicSection() != ConicElliptic {
		return math.Inf(1)
	}
	return o.SemiMajorAxis() * (1 + o.ecc)
}

// PeriapsisRadius returns the periapsis radius, m. Equivalent to RPE.
func (o Orbit) PeriapsisRadius() float64 { return o.rpe }

// HyperbolicExcessVelocity returns v_∞ = √(μ/|a|) for hyperbolic orbits,
// and 0 for elliptic/parabolic orbits, which never escape.
func (o Orbit) HyperbolicExcessVelocity() float64 {
	if o.ConicSection() != ConicHyperbolic {
		return 0
	}
	return math.Sqrt(o.body.Mu / math.Abs(o.SemiMajorAxis()))
}

// MaxTrueAnomaly returns θ_max = acos(−1/ECC), the true anomaly of the
// hyperbola's asymptote, for hyperbolic orbits. It returns nil for
// elliptic and parabolic orbits, where no such bound exists.
func (o Orbit) MaxTrueAnomaly() *Angle {
	if o.ConicSection() != ConicHyperbolic {
		return nil
	}
	a := NewAngle(math.Acos(-1 / o.ecc))
	return &a
}

// isForbidden reports whether ν lies in the hyperbolic forbidden arc
// (θ_max, 2π−θ_max), the unreachable region behind the hyperbola's
// vertex. Always false for elliptic and parabolic orbits.
func (o Orbit) isForbidden(nu Angle) bool {
	thetaMax := o.MaxTrueAnomaly()
	if thetaMax == nil {
		return false
	}
	hi := thetaMax.Negate()
	return nu.IsBetween(thetaMax, &hi)
}

// radiusAtTrueAnomaly returns the orbital radius at true anomaly ν, or
// +∞ if ν falls in the hyperbolic forbidden arc.
func (o Orbit) radiusAtTrueAnomaly(nu Angle) float64 {
	if o.isForbidden(nu) {
		return math.Inf(1)
	}
	p := o.SemiLatusRectum()
	return p / (1 + o.ecc*math.Cos(nu.Rad()))
}

// scaleToInfinity scales a finite direction vector to a "point at
// infinity": each nonzero component becomes a signed infinity, and each
// exactly-zero component stays zero. A plain Scale(math.Inf(1)) would turn
// an exactly-zero component into NaN (0×∞), which is not what a point at
// infinity along an axis means here.
func scaleToInfinity(v Vec3) Vec3 {
	inf := func(c float64) float64 {
		if c == 0 {
			return 0
		}
		return math.Inf(int(sign(c)))
	}
	return Vec3{inf(v.X), inf(v.Y), inf(v.Z)}
}

// PositionAtTrueAnomaly returns the inertial position at true anomaly ν.
// If the radius at ν is infinite (ν in the hyperbolic forbidden arc, or
// ν=π on a parabola), the result is a "point at infinity" along ν's own
// direction in the orbital plane: callers must check with
// math.IsInf on a component before treating it as a finite position.
func (o Orbit) PositionAtTrueAnomaly(nu Angle) Vec3 {
	r := o.radiusAtTrueAnomaly(nu)
	sinNu, cosNu := math.Sincos(nu.Rad())
	if math.IsInf(r, 1) {
		dir := rot313Vec(o.lan, o.inc, o.ape, Vec3{cosNu, sinNu, 0})
		return scaleToInfinity(dir)
	}
	posPQW := Vec3{r * cosNu, r * sinNu, 0}
	return rot313Vec(o.lan, o.inc, o.ape, posPQW)
}

// VelocityAtTrueAnomaly returns the inertial velocity at true anomaly ν,
// via the Vallado perifocal form √(μ/p)·(−sinν, e+cosν, 0).
func (o Orbit) VelocityAtTrueAnomaly(nu Angle) Vec3 {
	muOverP := math.Sqrt(o.body.Mu / o.SemiLatusRectum())
	sinNu, cosNu := math.Sincos(nu.Rad())
	velPQW := Vec3{
		muOverP * -sinNu,
		muOverP * (o.ecc + cosNu),
		0,
	}
	return rot313Vec(o.lan, o.inc, o.ape, velPQW)
}

// PeriapsisPoint returns the inertial position of periapsis (ν=0).
func (o Orbit) PeriapsisPoint() Vec3 { return o.PositionAtTrueAnomaly(AngleZero) }

// ApoapsisPoint returns the inertial position of apoapsis (ν=π). For
// hyperbolic orbits this is always a point at infinity, since π always
// falls in the forbidden arc.
func (o Orbit) ApoapsisPoint() Vec3 { return o.PositionAtTrueAnomaly(AngleHalfTurn) }

// AngularMomentumVector returns h, the specific angular momentum vector.
// Its direction is the orbit normal; its magnitude is √(μp). The third
// 3-1-3 rotation angle (the argument of latitude) is irrelevant to h's
// direction, since that rotation is about the orbit normal itself — it is
// passed as APE here only because rot313Vec requires an argument.
func (o Orbit) AngularMomentumVector() Vec3 {
	hMag := math.Sqrt(o.body.Mu * o.SemiLatusRectum())
	hHat := rot313Vec(o.lan, o.inc, o.ape, Vec3{0, 0, 1})
	return hHat.Scale(hMag)
}

// EccentricityVector returns e, pointing from the focus toward periapsis
// with magnitude ECC.
func (o Orbit) EccentricityVector() Vec3 {
	peri := o.PeriapsisPoint()
	return peri.Unit().Scale(o.ecc)
}

// NodalVector returns n = ẑ×h, pointing toward the ascending node, with
// magnitude |h|·sin(INC).
func (o Orbit) NodalVector() Vec3 {
	return Vec3{0, 0, 1}.Cross(o.AngularMomentumVector())
}

// AscendingNodeDirection returns the unit vector toward the ascending
// node, or the zero vector for an equatorial orbit (INC=0), where no node
// is defined.
func (o Orbit) AscendingNodeDirection() Vec3 {
	return o.NodalVector().Unit()
}

// DescendingNodeDirection returns the unit vector toward the descending
// node.
func (o Orbit) DescendingNodeDirection() Vec3 {
	return o.AscendingNodeDirection().Scale(-1)
}

// TimeToTrueAnomaly converts an absolute time t (the same time scale as
// TPP) to the true anomaly at t. For hyperbolic orbits, t=±∞ maps
// directly to the corresponding asymptote without going through the
// Kepler solve.
func (o Orbit) TimeToTrueAnomaly(t float64) Angle {
	switch o.ConicSection() {
	case ConicElliptic:
		M := o.MeanMotion() * (t - o.tpp)
		E := solveKeplerElliptic(M, o.ecc)
		return NewAngle(ellipticEToNu(E, o.ecc))
	case ConicHyperbolic:
		thetaMax := o.MaxTrueAnomaly()
		if math.IsInf(t, 1) {
			return *thetaMax
		}
		if math.IsInf(t, -1) {
			return thetaMax.Negate()
		}
		M := o.MeanMotion() * (t - o.tpp)
		H := solveKeplerHyperbolic(M, o.ecc)
		return hyperbolicHToNu(H, o.ecc, *thetaMax)
	default: // parabolic
		if math.IsInf(t, 0) {
			return AngleHalfTurn
		}
		M := o.MeanMotion() * (t - o.tpp)
		D := solveBarkerCubic(M, o.rpe)
		return parabolicDToNu(D, o.rpe)
	}
}

// TrueAnomalyToTime converts true anomaly to time since epoch. For
// hyperbolic orbits, a true anomaly at or beyond θ_max returns ±∞.
func (o Orbit) TrueAnomalyToTime(nu Angle) float64 {
	switch o.ConicSection() {
	case ConicElliptic:
		E := ellipticNuToE(nu, o.ecc)
		M := E - o.ecc*math.Sin(E)
		return o.tpp + M/o.MeanMotion()
	case ConicHyperbolic:
		thetaMax := *o.MaxTrueAnomaly()
		H := hyperbolicNuToH(nu, thetaMax, o.ecc)
		M := hToM(H, o.ecc)
		if math.IsInf(M, 0) {
			return M
		}
		return o.tpp + M/o.MeanMotion()
	default: // parabolic
		D := parabolicNuToD(nu, o.rpe)
		M := parabolicDToM(D, o.rpe)
		if math.IsInf(M, 0) {
			return M
		}
		return o.tpp + M/o.MeanMotion()
	}
}

// FromState builds an Orbit from an inertial state vector at time t. This
// is RV2COE (Vallado, 4th ed., p.113), generalized from the teacher's
// Elements() to all three conics, folding the degenerate equatorial case
// (where the line of nodes is undefined) into LAN per the signed angle
// from x̂ to the eccentricity vector about ẑ, as this spec's convention.
func FromState(body Body, r, v Vec3, t float64) Orbit {
	h := r.Cross(v)
	nVec := Vec3{0, 0, 1}.Cross(h)
	rNorm := r.Norm()
	vNorm := v.Norm()
	rDotV := r.Dot(v)

	eVec := r.Scale(vNorm*vNorm - body.Mu/rNorm).Sub(v.Scale(rDotV)).Scale(1 / body.Mu)
	ecc := eVec.Norm()

	p := h.Dot(h) / body.Mu
	var rpe float64
	if ecc == 1 {
		rpe = p / 2
	} else {
		a := p / (1 - ecc*ecc)
		rpe = a * (1 - ecc)
	}

	inc := NewAngle(math.Acos(clampUnit(h.Z / h.Norm())))

	var ape, lan Angle
	if nVec.IsZero() {
		// Equatorial: the line of nodes is undefined. Fold its role into
		// LAN directly, measuring the signed angle from x̂ to e about ẑ,
		// and leave APE at zero.
		ape = AngleZero
		lan = NewAngle(math.Atan2(eVec.Y, eVec.X))
	} else {
		apeCos := clampUnit(nVec.Dot(eVec) / (nVec.Norm() * ecc))
		apeVal := math.Acos(apeCos)
		if eVec.Z < 0 {
			apeVal = twoPi - apeVal
		}
		ape = NewAngle(apeVal)

		lanCos := clampUnit(nVec.X / nVec.Norm())
		lanVal := math.Acos(lanCos)
		if nVec.Y < 0 {
			lanVal = twoPi - lanVal
		}
		lan = NewAngle(lanVal)
	}

	o := NewOrbitFromElements(body, rpe, ecc, inc, ape, lan, 0)

	cosNu := clampUnit(eVec.Dot(r) / (ecc * rNorm))
	nuVal := math.Acos(cosNu)
	if rDotV < 0 {
		nuVal = twoPi - nuVal
	}
	nu := NewAngle(nuVal)
	o.tpp = t - o.TrueAnomalyToTime(nu)
	return o
}

// clampUnit clamps x to [−1, 1], guarding acos against floating-point
// overshoot on inputs that are mathematically exactly ±1.
func clampUnit(x float64) float64 {
	if x > 1 {
		return 1
	}
	if x < -1 {
		return -1
	}
	return x
}

// Sample walks the orbit from nu1 to nu2 in steps no larger than step,
// returning the inertial position and true anomaly at each sample. Either
// bound may be absent: both absent samples the whole orbit (0 to 2π);
// one absent samples a full turn starting or ending at the given bound.
// Samples that fall in a hyperbolic forbidden arc are skipped outright,
// leaving a gap in the returned points a caller can detect from the jump
// in true anomaly between consecutive entries.
func (o Orbit) Sample(nu1, nu2 *Angle, step float64) ([]Vec3, []Angle) {
	if step <= 0 {
		return nil, nil
	}
	var start, end float64
	switch {
	case nu1 == nil && nu2 == nil:
		start, end = 0, twoPi
	case nu1 != nil && nu2 != nil:
		start, end = nu1.Rad(), nu2.Rad()
		if end <= start {
			end += twoPi
		}
	case nu1 != nil:
		start, end = nu1.Rad(), nu1.Rad()+twoPi
	default:
		start, end = nu2.Rad()-twoPi, nu2.Rad()
	}

	span := end - start
	n := int(math.Ceil(span / step))
	if n < 1 {
		n = 1
	}
	actualStep := span / float64(n)

	points := make([]Vec3, 0, n+1)
	nus := make([]Angle, 0, n+1)
	for i := 0; i <= n; i++ {
		nu := NewAngle(start + float64(i)*actualStep)
		if o.isForbidden(nu) {
			continue
		}
		points = append(points, o.PositionAtTrueAnomaly(nu))
		nus = append(nus, nu)
	}
	return points, nus
}

// String implements fmt.Stringer.
func (o Orbit) String() string {
	return fmt.Sprintf("%s orbit: rpe=%.1f ecc=%.4f inc=%.3f ape=%.3f lan=%.3f tpp=%.1f",
		o.body, o.rpe, o.ecc, o.inc.Deg(), o.ape.Deg(), o.lan.Deg(), o.tpp)
}
