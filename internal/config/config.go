// Package config loads a mission-planning scenario from a TOML file: the
// central body and either a Lambert transfer request (two position vectors
// with a departure and arrival epoch) or a set of orbital elements to
// report on directly.
//
// Grounded in the teacher's config.go (a viper-backed _smdconfig loaded
// once and cached) and cmd/mission/main.go (per-field viper.Get* reads
// into a scenario struct), stripped of the SPICE/Horizons ephemeris
// plumbing that has no home in this spec — bodies here are the fixed KSP
// registry, not fetched ephemerides.
package config

import (
	"fmt"
	"time"

	"github.com/soniakeys/meeus/julian"
	"github.com/spf13/viper"

	"github.com/kspcompanion/orbitplan"
)

// Scenario is a fully parsed mission-planning request.
type Scenario struct {
	Body orbitplan.Body

	// Elements mode: set all six directly and report derived quantities.
	HasElements bool
	RPE, ECC    float64
	INC, APE    orbitplan.Angle
	LAN         orbitplan.Angle
	TPP         float64

	// Transfer mode: solve Lambert's problem between two position vectors.
	HasTransfer          bool
	R1, R2               orbitplan.Vec3
	DepartureEpochSeconds float64
	ArrivalEpochSeconds   float64
}

// Load reads a scenario TOML file at path. Epochs are given in the
// scenario file as calendar date-times and converted to seconds past the
// J2000 epoch via Julian date, the same reference point the teacher's
// Meeus-backed HelioState uses.
func Load(path string) (Scenario, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return Scenario{}, fmt.Errorf("config: reading %s: %w", path, err)
	}

	bodyName := v.GetString("orbit.body")
	body, ok := orbitplan.BodyFromName(bodyName)
	if !ok {
		return Scenario{}, fmt.Errorf("config: unknown body %q", bodyName)
	}
	s := Scenario{Body: body}

	switch mode := v.GetString("mode"); mode {
	case "elements":
		s.HasElements = true
		s.RPE = v.GetFloat64("elements.rpe")
		s.ECC = v.GetFloat64("elements.ecc")
		s.INC = orbitplan.NewAngleDeg(v.GetFloat64("elements.inc_deg"))
		s.APE = orbitplan.NewAngleDeg(v.GetFloat64("elements.ape_deg"))
		s.LAN = orbitplan.NewAngleDeg(v.GetFloat64("elements.lan_deg"))
		s.TPP = v.GetFloat64("elements.tpp_seconds")
	case "transfer":
		s.HasTransfer = true
		s.R1 = vecFromConfig(v, "transfer.r1")
		s.R2 = vecFromConfig(v, "transfer.r2")
		dep, err := epochSeconds(v, "transfer.departure")
		if err != nil {
			return Scenario{}, err
		}
		arr, err := epochSeconds(v, "transfer.arrival")
		if err != nil {
			return Scenario{}, err
		}
		s.DepartureEpochSeconds = dep
		s.ArrivalEpochSeconds = arr
	default:
		return Scenario{}, fmt.Errorf("config: unknown mode %q (want \"elements\" or \"transfer\")", mode)
	}
	return s, nil
}

func vecFromConfig(v *viper.Viper, key string) orbitplan.Vec3 {
	xs := v.GetFloat64Slice(key)
	if len(xs) != 3 {
		return orbitplan.Vec3{}
	}
	return orbitplan.Vec3{X: xs[0], Y: xs[1], Z: xs[2]}
}

// epochSeconds parses a "2006-01-02 15:04:05" scenario timestamp and
// returns seconds past the J2000 epoch.
func epochSeconds(v *viper.Viper, key string) (float64, error) {
	raw := v.GetString(key)
	t, err := time.Parse("2006-01-02 15:04:05", raw)
	if err != nil {
		return 0, fmt.Errorf("config: parsing %s %q: %w", key, raw, err)
	}
	const secondsPerDay = 86400
	jd := julian.TimeToJD(t.UTC())
	return (jd - 2451545.0) * secondsPerDay, nil
}
