package orbitplan

import "math"

// Angle is a scalar angle normalized to the half-open interval [0, 2π).
// It is the numerical-kernel precision variant; Angle32 is its lossy
// float32 counterpart for UI-facing code. Conversion between the two is
// always explicit (ToAngle32/ToAngle), never an implicit cast, per the
// teacher's float/double split elsewhere in the codebase.
//
// Angle deliberately does not overload Go's native == for wrap-aware
// comparison: use ApproxEqual for the wrap-tolerant rule and CompareTo/
// Less/Greater for the raw stored-value ordering. Conflating the two, as
// the source this was distilled from does, is the sharp edge this type
// exists to avoid.
type Angle float64

// Angle32 is the float32 counterpart of Angle, used at UI boundaries.
type Angle32 float32

const (
	// AngleZero is the angle at 0 radians.
	AngleZero Angle = 0
	// AngleQuarterTurn is π/2.
	AngleQuarterTurn Angle = math.Pi / 2
	// AngleHalfTurn is π.
	AngleHalfTurn Angle = math.Pi
	// AngleThreeQuartersTurn is 3π/2.
	AngleThreeQuartersTurn Angle = 3 * math.Pi / 2
	// AngleEpsilon is the default tolerance for wrap-aware comparisons.
	AngleEpsilon Angle = angleEpsilon
)

// AngleMax is the largest Angle strictly less than 2π representable in
// float64.
var AngleMax = Angle(math.Nextafter(twoPi, 0))

// floorMod2Pi reduces v to [0, 2π) by floored modulo; NaN propagates.
func floorMod2Pi(v float64) float64 {
	if math.IsNaN(v) {
		return v
	}
	m := math.Mod(v, twoPi)
	if m < 0 {
		m += twoPi
	}
	return m
}

// NewAngle constructs an Angle from a radian value, reduced to [0, 2π).
func NewAngle(v float64) Angle {
	return Angle(floorMod2Pi(v))
}

// NewAngleDeg constructs an Angle from a degree value: the value is first
// reduced modulo 360, then converted to radians.
func NewAngleDeg(deg float64) Angle {
	if math.IsNaN(deg) {
		return Angle(deg)
	}
	m := math.Mod(deg, 360)
	if m < 0 {
		m += 360
	}
	return Angle(m * math.Pi / 180)
}

// Rad returns the stored value, in [0, 2π).
func (a Angle) Rad() float64 { return float64(a) }

// Deg returns the degree view, in [0, 360).
func (a Angle) Deg() float64 { return float64(a) * 180 / math.Pi }

// SignedRad returns the radian view in [−π, π).
func (a Angle) SignedRad() float64 {
	v := float64(a)
	if v >= math.Pi {
		v -= twoPi
	}
	return v
}

// SignedDeg returns the degree view in [−180, 180).
func (a Angle) SignedDeg() float64 {
	v := a.Deg()
	if v >= 180 {
		v -= 360
	}
	return v
}

// Less reports whether a's stored value is strictly less than b's. This
// is raw ordering on [0, 2π), not wrap-aware.
func (a Angle) Less(b Angle) bool { return float64(a) < float64(b) }

// Greater reports whether a's stored value is strictly greater than b's.
func (a Angle) Greater(b Angle) bool { return float64(a) > float64(b) }

// CompareTo returns −1, 0, or 1 comparing the stored values. NaN sorts
// lowest: it compares less than any finite angle, and equal to itself
// (and to any other NaN angle).
func (a Angle) CompareTo(b Angle) int {
	aNaN, bNaN := math.IsNaN(float64(a)), math.IsNaN(float64(b))
	switch {
	case aNaN && bNaN:
		return 0
	case aNaN:
		return -1
	case bNaN:
		return 1
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// Negate returns 2π − v, itself in [0, 2π).
func (a Angle) Negate() Angle {
	v := float64(a)
	if v == 0 || math.IsNaN(v) {
		return a
	}
	return Angle(twoPi - v)
}

// circularDelta returns the unsigned circular distance between two raw
// radian values, in [0, π].
func circularDelta(a, b float64) float64 {
	d := math.Abs(a - b)
	if d > math.Pi {
		d = twoPi - d
	}
	return d
}

// ApproxEqual reports whether a and b are equal within AngleEpsilon under
// the wrap-aware rule: |Δ| ≤ ε or |Δ − 2π| ≤ ε.
func (a Angle) ApproxEqual(b Angle) bool {
	delta := float64(a) - float64(b)
	eps := float64(AngleEpsilon)
	return math.Abs(delta) <= eps || math.Abs(math.Abs(delta)-twoPi) <= eps
}

// Approximately is the optional-aware form of ApproxEqual: both-absent or
// exactly-one-absent returns false.
func Approximately(a, b *Angle) bool {
	if a == nil || b == nil {
		return false
	}
	return a.ApproxEqual(*b)
}

// IsBetween reports whether a lies on the counter-clockwise arc from lo to
// hi, excluding both endpoints. If lo == hi the arc is empty and this
// returns false unless a equals lo. If either bound is absent, returns
// false.
func (a Angle) IsBetween(lo, hi *Angle) bool {
	if lo == nil || hi == nil {
		return false
	}
	if *lo == *hi {
		return a == *lo
	}
	if *lo < *hi {
		return a > *lo && a < *hi
	}
	// Wrap case: (lo, 2π) ∪ [0, hi).
	return a > *lo || a < *hi
}

// Closer returns whichever of x, y is nearer to a under the unsigned
// circular metric min(|Δ|, 2π−|Δ|). If one argument is absent, the other
// is returned; if both are absent, a itself is returned.
func (a Angle) Closer(x, y *Angle) Angle {
	switch {
	case x == nil && y == nil:
		return a
	case x == nil:
		return *y
	case y == nil:
		return *x
	}
	dx := circularDelta(float64(a), float64(*x))
	dy := circularDelta(float64(a), float64(*y))
	if dx <= dy {
		return *x
	}
	return *y
}

// Expel returns θ unless θ lies inside the open arc (lo, hi), in which
// case it returns whichever of lo, hi is closer to θ. If lo == hi, θ is
// returned unchanged. Used to keep hyperbolic true anomalies within their
// physically legal range.
func Expel(theta, lo, hi Angle) Angle {
	if lo == hi {
		return theta
	}
	if !theta.IsBetween(&lo, &hi) {
		return theta
	}
	return theta.Closer(&lo, &hi)
}

// ToAngle32 converts to the float32 UI-boundary variant. Lossy.
func (a Angle) ToAngle32() Angle32 { return Angle32(float32(a)) }

// ToAngle converts the float32 UI-boundary variant back to the double
// precision kernel type. Lossy, and re-normalizes in case the round trip
// pushed the value to exactly 2π.
func (a Angle32) ToAngle() Angle { return NewAngle(float64(a)) }

// Rad returns the stored value, in [0, 2π).
func (a Angle32) Rad() float32 { return float32(a) }

// Deg returns the degree view, in [0, 360).
func (a Angle32) Deg() float32 { return float32(a) * 180 / math.Pi }
