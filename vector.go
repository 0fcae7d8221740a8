package orbitplan

import (
	"math"

	"github.com/gonum/floats"
)

// Vec3 is a right-handed 3-vector, used throughout for position,
// velocity, and the derived angular-momentum/eccentricity/nodal vectors.
// Grounded in the teacher's math.go free functions (Norm, Unit, Cross,
// Dot, Sign) over []float64, turned into methods on a fixed-size type for
// dimension safety.
type Vec3 struct {
	X, Y, Z float64
}

// NewVec3 builds a Vec3 from three components.
func NewVec3(x, y, z float64) Vec3 { return Vec3{x, y, z} }

// Add returns a+b.
func (a Vec3) Add(b Vec3) Vec3 { return Vec3{a.X + b.X, a.Y + b.Y, a.Z + b.Z} }

// Sub returns a-b.
func (a Vec3) Sub(b Vec3) Vec3 { return Vec3{a.X - b.X, a.Y - b.Y, a.Z - b.Z} }

// Scale returns a scaled by s.
func (a Vec3) Scale(s float64) Vec3 { return Vec3{a.X * s, a.Y * s, a.Z * s} }

// Dot returns the inner product of a and b.
func (a Vec3) Dot(b Vec3) float64 { return a.X*b.X + a.Y*b.Y + a.Z*b.Z }

// Cross returns a×b.
func (a Vec3) Cross(b Vec3) Vec3 {
	return Vec3{
		a.Y*b.Z - a.Z*b.Y,
		a.Z*b.X - a.X*b.Z,
		a.X*b.Y - a.Y*b.X,
	}
}

// Norm returns the Euclidean norm of a.
func (a Vec3) Norm() float64 {
	return math.Sqrt(a.X*a.X + a.Y*a.Y + a.Z*a.Z)
}

// Unit returns the unit vector of a, or the zero vector if a is (nearly)
// zero.
func (a Vec3) Unit() Vec3 {
	n := a.Norm()
	if floats.EqualWithinAbs(n, 0, 1e-12) {
		return Vec3{}
	}
	return a.Scale(1 / n)
}

// IsZero reports whether a is the zero vector within a small tolerance.
func (a Vec3) IsZero() bool {
	return floats.EqualWithinAbs(a.Norm(), 0, 1e-12)
}

// sign returns the sign of v, treating values within 1e-12 of zero as
// positive. Grounded in the teacher's math.go Sign.
func sign(v float64) float64 {
	if floats.EqualWithinAbs(v, 0, 1e-12) {
		return 1
	}
	return v / math.Abs(v)
}
