package orbitplan

import (
	"math"
	"testing"
)

func TestBodyFromName(t *testing.T) {
	b, ok := BodyFromName("Kerbin")
	if !ok {
		t.Fatal("expected to find Kerbin")
	}
	if b.Mu != Kerbin.Mu {
		t.Fatalf("expected Kerbin mu %f, got %f", Kerbin.Mu, b.Mu)
	}
	if _, ok := BodyFromName("kerbin"); !ok {
		t.Fatal("expected case-insensitive lookup to find kerbin")
	}
	if _, ok := BodyFromName("Eve"); ok {
		t.Fatal("did not expect to find an unregistered body")
	}
}

func TestBodyDefaultOrbit(t *testing.T) {
	o := Kerbin.DefaultOrbit()
	if o.ECC() != 0.2 {
		t.Fatalf("expected default eccentricity 0.2, got %f", o.ECC())
	}
	want := math.Ceil((Kerbin.Radius+Kerbin.AtmosphereHeight)*1.05/25000) * 25000
	if o.RPE() != want {
		t.Fatalf("expected rpe %f, got %f", want, o.RPE())
	}
	if o.INC() != AngleZero || o.APE() != AngleZero || o.LAN() != AngleZero || o.TPP() != 0 {
		t.Fatal("expected default orbit to have all angles and epoch at zero")
	}
}

func TestBodyZeroOrbit(t *testing.T) {
	o := Mun.ZeroOrbit()
	if o.RPE() != 0 || o.ECC() != 0 {
		t.Fatal("expected zero orbit to have RPE=ECC=0")
	}
	if o.Body().Name != "Mun" {
		t.Fatalf("expected zero orbit bound to Mun, got %s", o.Body().Name)
	}
}
