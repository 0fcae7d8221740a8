package orbitplan

import (
	"math"
	"testing"
)

func TestNewAngleWraps(t *testing.T) {
	cases := []struct {
		in, want float64
	}{
		{0, 0},
		{math.Pi, math.Pi},
		{twoPi, 0},
		{-math.Pi / 2, 3 * math.Pi / 2},
		{5 * math.Pi, math.Pi},
	}
	for _, c := range cases {
		got := NewAngle(c.in).Rad()
		if math.Abs(got-c.want) > 1e-9 {
			t.Errorf("NewAngle(%f) = %f, want %f", c.in, got, c.want)
		}
	}
}

func TestAngleDegRoundTrip(t *testing.T) {
	for deg := 0.0; deg < 360; deg += 15 {
		a := NewAngleDeg(deg)
		if math.Abs(a.Deg()-deg) > 1e-9 {
			t.Errorf("NewAngleDeg(%f).Deg() = %f", deg, a.Deg())
		}
	}
}

func TestAngleRawOrderingVsWrapEquality(t *testing.T) {
	// AngleMax is just under 2π, AngleZero is 0: wrap-adjacent but raw-far-apart.
	a := AngleMax
	b := AngleZero
	if !a.ApproxEqual(b) {
		t.Fatal("expected AngleMax and AngleZero to be wrap-approximately equal")
	}
	if !a.Greater(b) {
		t.Fatal("expected AngleMax to be raw-greater than AngleZero (no wraparound in Greater)")
	}
}

func TestAngleCompareToNaN(t *testing.T) {
	nan := Angle(math.NaN())
	zero := AngleZero
	if nan.CompareTo(zero) != -1 {
		t.Fatal("expected NaN to sort lowest")
	}
	if zero.CompareTo(nan) != 1 {
		t.Fatal("expected NaN to sort lowest (reverse comparison)")
	}
	if nan.CompareTo(Angle(math.NaN())) != 0 {
		t.Fatal("expected NaN to compare equal to NaN")
	}
}

func TestAngleNegate(t *testing.T) {
	a := NewAngleDeg(90)
	want := NewAngleDeg(270)
	if !a.Negate().ApproxEqual(want) {
		t.Fatalf("Negate(90deg) = %f deg, want 270", a.Negate().Deg())
	}
	if AngleZero.Negate() != AngleZero {
		t.Fatal("Negate(0) should be 0, not 2π")
	}
}

func TestAngleIsBetween(t *testing.T) {
	lo := NewAngleDeg(10)
	hi := NewAngleDeg(20)
	inside := NewAngleDeg(15)
	if !inside.IsBetween(&lo, &hi) {
		t.Fatal("expected 15deg to be between 10deg and 20deg")
	}
	if lo.IsBetween(&lo, &hi) || hi.IsBetween(&lo, &hi) {
		t.Fatal("IsBetween should exclude both endpoints")
	}

	// Wrap case: arc crosses 0.
	wlo := NewAngleDeg(350)
	whi := NewAngleDeg(10)
	if !NewAngleDeg(355).IsBetween(&wlo, &whi) {
		t.Fatal("expected 355deg to be in the wrapped arc (350,10)")
	}
	if !NewAngleDeg(5).IsBetween(&wlo, &whi) {
		t.Fatal("expected 5deg to be in the wrapped arc (350,10)")
	}
	if NewAngleDeg(180).IsBetween(&wlo, &whi) {
		t.Fatal("expected 180deg to be outside the wrapped arc (350,10)")
	}
}

func TestAngleCloser(t *testing.T) {
	a := NewAngleDeg(0)
	x := NewAngleDeg(10)
	y := NewAngleDeg(355)
	got := a.Closer(&x, &y)
	if got != y {
		t.Fatalf("expected 355deg to be closer to 0deg than 10deg, got %f deg", got.Deg())
	}
}

func TestExpel(t *testing.T) {
	lo := NewAngleDeg(120)
	hi := NewAngleDeg(240)
	inside := NewAngleDeg(180)
	got := Expel(inside, lo, hi)
	if got != lo && got != hi {
		t.Fatalf("expected Expel to snap to a boundary, got %f deg", got.Deg())
	}
	outside := NewAngleDeg(10)
	if Expel(outside, lo, hi) != outside {
		t.Fatal("expected Expel to leave an already-legal angle unchanged")
	}
}

func TestAngle32RoundTrip(t *testing.T) {
	a := NewAngleDeg(123.5)
	a32 := a.ToAngle32()
	back := a32.ToAngle()
	// The float32 leg is lossy: allow float32 precision, not AngleEpsilon.
	if math.Abs(a.Rad()-back.Rad()) > 1e-6 {
		t.Fatalf("float32 round trip diverged: %f vs %f", a.Deg(), back.Deg())
	}
}
