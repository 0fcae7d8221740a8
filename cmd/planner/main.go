// Command planner reads a mission scenario TOML file and either reports
// an orbit's derived quantities or solves a Lambert transfer between two
// position vectors, printing the result with structured logging.
//
// Grounded in the teacher's cmd/mission/main.go (flag + viper scenario
// loading) and spacecraft.go's SCLogInit (a go-kit logfmt logger bound to
// a name via kitlog.With), scoped down to this tool's single scenario
// file instead of a full mission timeline.
package main

import (
	"flag"
	"os"

	kitlog "github.com/go-kit/kit/log"

	"github.com/kspcompanion/orbitplan"
	"github.com/kspcompanion/orbitplan/internal/config"
)

const defaultScenario = "~~unset~~"

var scenario string

func init() {
	flag.StringVar(&scenario, "scenario", defaultScenario, "mission scenario TOML file")
}

func main() {
	flag.Parse()
	logger := kitlog.NewLogfmtLogger(kitlog.NewSyncWriter(os.Stdout))
	logger = kitlog.With(logger, "cmd", "planner")

	if scenario == defaultScenario {
		logger.Log("level", "error", "msg", "no -scenario provided")
		os.Exit(1)
	}

	s, err := config.Load(scenario)
	if err != nil {
		logger.Log("level", "error", "msg", "loading scenario", "err", err)
		os.Exit(1)
	}

	switch {
	case s.HasElements:
		reportElements(logger, s)
	case s.HasTransfer:
		reportTransfer(logger, s)
	default:
		logger.Log("level", "error", "msg", "scenario specifies neither elements nor transfer mode")
		os.Exit(1)
	}
}

func reportElements(logger kitlog.Logger, s config.Scenario) {
	o := orbitplan.NewOrbitFromElements(s.Body, s.RPE, s.ECC, s.INC, s.APE, s.LAN, s.TPP)
	logger.Log(
		"level", "info", "msg", "orbit",
		"body", o.Body().Name,
		"conic", o.ConicSection(),
		"sma", o.SemiMajorAxis(),
		"period_s", o.Period(),
		"apoapsis", o.ApoapsisRadius(),
		"periapsis", o.PeriapsisRadius(),
	)
}

func reportTransfer(logger kitlog.Logger, s config.Scenario) {
	o, err := orbitplan.FindTransfer(s.Body, s.R1, s.DepartureEpochSeconds, s.R2, s.ArrivalEpochSeconds)
	if err != nil {
		logger.Log("level", "error", "msg", "lambert solve failed", "err", err)
		os.Exit(1)
	}
	nu1 := o.TimeToTrueAnomaly(s.DepartureEpochSeconds)
	v1 := o.VelocityAtTrueAnomaly(nu1)
	logger.Log(
		"level", "info", "msg", "transfer orbit",
		"body", o.Body().Name,
		"conic", o.ConicSection(),
		"sma", o.SemiMajorAxis(),
		"ecc", o.ECC(),
		"v1x", v1.X, "v1y", v1.Y, "v1z", v1.Z,
	)
}
