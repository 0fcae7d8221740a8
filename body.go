package orbitplan

import (
	"math"
	"strings"
)

// Body is an immutable descriptor of a central body: its gravitational
// parameter, equatorial radius, and optional atmosphere height. Grounded
// in the teacher's celestial.go CelestialObject, stripped of the
// ephemeris/perturbation fields (PP, tilt, incl, SOI, J2/J3/J4) that have
// no home in this spec's non-goals (no n-body, no J2/J3 modeling, no
// heliocentric ephemeris — KSP's bodies are fictional).
type Body struct {
	ID               int
	Name             string
	Mu               float64 // gravitational parameter μ, m³/s²
	Radius           float64 // equatorial radius, m
	HasAtmosphere    bool
	AtmosphereHeight float64 // m, meaningful only if HasAtmosphere
}

// String implements fmt.Stringer.
func (b Body) String() string { return b.Name }

// atmosphereTop returns the altitude above which there is no atmosphere.
func (b Body) atmosphereTop() float64 {
	if !b.HasAtmosphere {
		return 0
	}
	return b.AtmosphereHeight
}

// DefaultOrbit returns a circular-ish parking orbit 5% above the
// atmosphere (or the surface, for airless bodies), rounded up to the next
// 25 km multiple, with eccentricity 0.2 and all angles/epoch zero.
func (b Body) DefaultOrbit() Orbit {
	const step = 25000.0
	rpe := math.Ceil((b.Radius+b.atmosphereTop())*1.05/step) * step
	return Orbit{
		body: b,
		rpe:  rpe,
		ecc:  0.2,
	}
}

// ZeroOrbit returns an Orbit bound to b with every element zero.
func (b Body) ZeroOrbit() Orbit {
	return Orbit{body: b}
}

// Stock KSP-style body registry. Kerbin's parameters are as specified;
// the others are added so a mission-planning tool has more than one body
// to plan a transfer between (spec.md: "a small static registry keeps
// well-known bodies").
var (
	Kerbol = Body{ID: 0, Name: "Kerbol", Mu: 1.1723328e18, Radius: 2.616e8}
	Kerbin = Body{ID: 1, Name: "Kerbin", Mu: 3.5316000e12, Radius: 6.0e5, HasAtmosphere: true, AtmosphereHeight: 7.0e4}
	Mun    = Body{ID: 2, Name: "Mun", Mu: 6.5138398e10, Radius: 2.0e5}
	Minmus = Body{ID: 3, Name: "Minmus", Mu: 1.7658000e9, Radius: 6.0e4}
	Duna   = Body{ID: 4, Name: "Duna", Mu: 3.0136321e11, Radius: 3.2e5, HasAtmosphere: true, AtmosphereHeight: 5.0e4}
)

// bodyRegistry backs BodyFromName.
var bodyRegistry = map[string]Body{
	"kerbol": Kerbol,
	"kerbin": Kerbin,
	"mun":    Mun,
	"minmus": Minmus,
	"duna":   Duna,
}

// BodyFromName returns the registered body with the given (case
// insensitive) name. Grounded in celestial.go's CelestialObjectFromString.
func BodyFromName(name string) (Body, bool) {
	b, ok := bodyRegistry[strings.ToLower(name)]
	return b, ok
}
