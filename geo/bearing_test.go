package geo

import (
	"math"
	"testing"
)

func TestNormalizeBearing(t *testing.T) {
	type NormTest struct {
		In, Expected float64
	}
	tests := []NormTest{
		{0, 0}, {360, 0}, {720, 0}, {-360, 0},
		{361, 1}, {-1, 359}, {-721, 359},
		{359.5, 359.5}, {180, 180}, {-180, 180},
	}
	for _, test := range tests {
		if got := NormalizeBearing(test.In); math.Abs(got-test.Expected) > 1e-9 {
			t.Errorf("NormalizeBearing(%f) = %f, wanted %f", test.In, got, test.Expected)
		}
	}

	// Idempotent over a spread of junk values
	for x := -1000.0; x < 1000.0; x += 7.3 {
		once := NormalizeBearing(x)
		if twice := NormalizeBearing(once); twice != once {
			t.Errorf("not idempotent at %f: %f vs %f", x, once, twice)
		}
		if once < 0 || once >= 360 {
			t.Errorf("NormalizeBearing(%f) = %f out of range", x, once)
		}
	}
}

func TestBearingDelta(t *testing.T) {
	type DeltaTest struct {
		From, To, Expected float64
	}
	tests := []DeltaTest{
		{0, 10, 10},
		{10, 0, -10},
		{350, 10, 20},  // across north
		{10, 350, -20},
		{0, 180, 180},  // the boundary case lands on +180
		{90, 270, 180},
		{45, 45, 0},
	}
	for _, test := range tests {
		if got := BearingDelta(test.From, test.To); math.Abs(got-test.Expected) > 1e-9 {
			t.Errorf("BearingDelta(%f,%f) = %f, wanted %f", test.From, test.To, got, test.Expected)
		}
	}

	// Antisymmetric and in (-180,180], away from the 180 boundary
	for a := 0.0; a < 360.0; a += 11.7 {
		for b := 0.0; b < 360.0; b += 13.3 {
			d1, d2 := BearingDelta(a, b), BearingDelta(b, a)
			if d1 <= -180 || d1 > 180 {
				t.Errorf("BearingDelta(%f,%f) = %f out of range", a, b, d1)
			}
			if math.Abs(d1) != 180 && math.Abs(d1+d2) > 1e-9 {
				t.Errorf("not antisymmetric: (%f,%f) -> %f, %f", a, b, d1, d2)
			}
		}
	}
}

func TestWindRelativeAngle(t *testing.T) {
	wa := WindRelativeAngle(15, 0)
	if math.Abs(wa.Signed-15) > 1e-9 || math.Abs(wa.Absolute-15) > 1e-9 {
		t.Errorf("leg 15/wind 0: got %+v", wa)
	}

	wa = WindRelativeAngle(350, 10)
	if math.Abs(wa.Signed - -20) > 1e-9 {
		t.Errorf("leg 350/wind 10: got signed %f, wanted -20", wa.Signed)
	}
	if math.Abs(wa.Absolute-20) > 1e-9 {
		t.Errorf("leg 350/wind 10: got absolute %f, wanted 20", wa.Absolute)
	}
}

func TestStartLineWindAngle(t *testing.T) {
	type LineTest struct {
		Line, Wind, Expected float64
	}
	tests := []LineTest{
		{90, 0, 0},    // square line
		{270, 0, 0},   // same line, other end first
		{100, 0, 10},  // port end 10 degrees downwind
		{80, 0, -10},
		{10, 0, -80},
		{190, 0, -80}, // a 190 line is a 10 line
	}
	for _, test := range tests {
		got := StartLineWindAngle(test.Line, test.Wind)
		if math.Abs(got.Signed-test.Expected) > 1e-9 {
			t.Errorf("StartLineWindAngle(%f,%f) = %f, wanted %f",
				test.Line, test.Wind, got.Signed, test.Expected)
		}
		if got.Signed <= -90 || got.Signed > 90 {
			t.Errorf("StartLineWindAngle(%f,%f) = %f out of (-90,90]",
				test.Line, test.Wind, got.Signed)
		}
	}
}
