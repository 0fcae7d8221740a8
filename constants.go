package orbitplan

import "math"

// Tolerances and iteration caps used by the anomaly and Lambert solvers.
// These are design defaults: the core never exposes a way to tune them,
// the way the teacher pins its own epsilon tiers at file scope.
const (
	// keplerTol is the Kepler-equation residual tolerance (τ in spec).
	keplerTol = 1e-15
	// keplerMaxIter caps the elliptic/hyperbolic Kepler Newton iteration.
	keplerMaxIter = 100
	// lambertHouseholderIter is the fixed Householder iteration count for
	// the Izzo x-root solve; spec.md names this a fixed cap, not adaptive.
	lambertHouseholderIter = 5

	twoPi = 2 * math.Pi
)

// angleEpsilon is the default tolerance for Angle.ApproxEqual and
// Approximately. Expel and IsBetween compare exactly, without it.
const angleEpsilon = 1e-9
