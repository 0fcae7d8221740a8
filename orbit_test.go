package orbitplan

import (
	"math"
	"testing"
)

func TestOrbitCircularPeriod(t *testing.T) {
	// S1: circular LEO period.
	body := Body{Name: "test-earth", Mu: 3.986e14}
	o := NewOrbitFromElements(body, 7.0e6, 0, AngleZero, AngleZero, AngleZero, 0)
	got := o.Period()
	want := 5828.5
	if math.Abs(got-want) > 0.1 {
		t.Fatalf("Period() = %f, want %f +/- 0.1", got, want)
	}
}

func TestOrbitHyperbolicMaxTrueAnomaly(t *testing.T) {
	// S2: hyperbolic theta_max.
	body := Body{Name: "test-sun", Mu: 1.0}
	o := NewOrbitFromElements(body, 1.0, 2.0, AngleZero, AngleZero, AngleZero, 0)
	thetaMax := o.MaxTrueAnomaly()
	if thetaMax == nil {
		t.Fatal("expected a max true anomaly for hyperbolic orbit")
	}
	want := NewAngle(2 * math.Pi / 3)
	if !thetaMax.ApproxEqual(want) {
		t.Fatalf("MaxTrueAnomaly() = %f deg, want %f deg", thetaMax.Deg(), want.Deg())
	}

	nuAtPosInf := o.TimeToTrueAnomaly(math.Inf(1))
	if !nuAtPosInf.ApproxEqual(want) {
		t.Fatalf("TimeToTrueAnomaly(+Inf) = %f deg, want %f deg", nuAtPosInf.Deg(), want.Deg())
	}
	nuAtNegInf := o.TimeToTrueAnomaly(math.Inf(-1))
	wantNeg := NewAngle(4 * math.Pi / 3)
	if !nuAtNegInf.ApproxEqual(wantNeg) {
		t.Fatalf("TimeToTrueAnomaly(-Inf) = %f deg, want %f deg", nuAtNegInf.Deg(), wantNeg.Deg())
	}
}

func TestOrbitEllipticTimeAnomalyRoundTrip(t *testing.T) {
	body := Body{Name: "test-earth", Mu: 3.986e14}
	o := NewOrbitFromElements(body, 7.0e6, 0.3, NewAngleDeg(20), NewAngleDeg(30), NewAngleDeg(40), 0)
	for nuDeg := 0.0; nuDeg < 360; nuDeg += 23 {
		nu := NewAngleDeg(nuDeg)
		tt := o.TrueAnomalyToTime(nu)
		back := o.TimeToTrueAnomaly(tt)
		if !nu.ApproxEqual(back) {
			t.Errorf("nu=%fdeg time round trip diverged: got %f deg", nuDeg, back.Deg())
		}
	}
}

func TestOrbitStateVectorRoundTrip(t *testing.T) {
	// S6.
	body := Body{Name: "test-earth", Mu: 3.986e14}
	o := NewOrbitFromElements(body, 7.0e6, 0.3, Angle(0.5), Angle(1.0), Angle(2.0), 0)
	tAt := 500.0
	nu := o.TimeToTrueAnomaly(tAt)
	r := o.PositionAtTrueAnomaly(nu)
	v := o.VelocityAtTrueAnomaly(nu)

	back := FromState(body, r, v, tAt)

	relErr := func(got, want float64) float64 {
		if want == 0 {
			return math.Abs(got)
		}
		return math.Abs((got-want)/want)
	}
	if relErr(back.RPE(), o.RPE()) > 1e-6 {
		t.Errorf("RPE mismatch: got %f want %f", back.RPE(), o.RPE())
	}
	if relErr(back.ECC(), o.ECC()) > 1e-6 {
		t.Errorf("ECC mismatch: got %f want %f", back.ECC(), o.ECC())
	}
	if !back.INC().ApproxEqual(o.INC()) {
		t.Errorf("INC mismatch: got %f deg want %f deg", back.INC().Deg(), o.INC().Deg())
	}
	if !back.APE().ApproxEqual(o.APE()) {
		t.Errorf("APE mismatch: got %f deg want %f deg", back.APE().Deg(), o.APE().Deg())
	}
	if !back.LAN().ApproxEqual(o.LAN()) {
		t.Errorf("LAN mismatch: got %f deg want %f deg", back.LAN().Deg(), o.LAN().Deg())
	}
	if relErr(back.TPP(), o.TPP()) > 1e-6 && math.Abs(back.TPP()-o.TPP()) > 1e-3 {
		t.Errorf("TPP mismatch: got %f want %f", back.TPP(), o.TPP())
	}
}

func TestOrbitExpelNeverInsideForbiddenArc(t *testing.T) {
	body := Body{Name: "test-sun", Mu: 1.0}
	o := NewOrbitFromElements(body, 1.0, 2.0, AngleZero, AngleZero, AngleZero, 0)
	thetaMax := *o.MaxTrueAnomaly()
	hi := thetaMax.Negate()
	for nuDeg := 0.0; nuDeg < 360; nuDeg += 7 {
		nu := NewAngleDeg(nuDeg)
		got := Expel(nu, thetaMax, hi)
		if got.IsBetween(&thetaMax, &hi) {
			t.Fatalf("Expel(%f deg) = %f deg still inside forbidden arc", nuDeg, got.Deg())
		}
	}
}

func TestOrbitApoapsisBeyondPeriapsis(t *testing.T) {
	body := Body{Name: "test-earth", Mu: 3.986e14}
	o := NewOrbitFromElements(body, 7.0e6, 0.1, AngleZero, AngleZero, AngleZero, 0)
	if o.ApoapsisRadius() <= o.PeriapsisRadius() {
		t.Fatalf("apoapsis %f should exceed periapsis %f", o.ApoapsisRadius(), o.PeriapsisRadius())
	}
}

func TestOrbitParabolicInfinitePeriod(t *testing.T) {
	body := Body{Name: "test-sun", Mu: 1.0}
	o := NewOrbitFromElements(body, 1.0, 1.0, AngleZero, AngleZero, AngleZero, 0)
	if !math.IsInf(o.Period(), 1) {
		t.Fatalf("expected infinite period for parabolic orbit, got %f", o.Period())
	}
	if !math.IsInf(o.ApoapsisRadius(), 1) {
		t.Fatalf("expected infinite apoapsis for parabolic orbit, got %f", o.ApoapsisRadius())
	}
}
