package shape

import (
	"math"
	"testing"

	"github.com/windshift/coursegeo/geo"
)

func TestInteriorAngle(t *testing.T) {
	prev := geo.Latlong{Lat: 43.50, Lng: 16.44}
	mark := prev.Forward(0, 500)   // due north of prev
	next := mark.Forward(90, 500)  // due east of mark

	// At mark: back bearing 180, forward bearing 90 -> interior angle 90
	if a := InteriorAngle(prev, mark, next); math.Abs(a-90) > 0.1 {
		t.Errorf("interior angle = %f, wanted 90", a)
	}
}

func TestFitAlreadyOnTarget(t *testing.T) {
	prev := geo.Latlong{Lat: 43.50, Lng: 16.44}
	mark := prev.Forward(30, 400)
	next := mark.Forward(140, 350)

	current := InteriorAngle(prev, mark, next)
	res := FitInteriorAngle(prev, mark, next, current)

	// Already at the target: minimal-disturbance policy keeps the mark put.
	if math.Abs(res.RotationDeg) > refineStepDeg {
		t.Errorf("rotation = %f, wanted ~0", res.RotationDeg)
	}
	if off := mark.DistMeters(res.Position); off > 2.0 {
		t.Errorf("mark moved %fm for a no-op fit", off)
	}
	if res.ResidualDeg > 0.5 {
		t.Errorf("residual = %f for a target we already meet", res.ResidualDeg)
	}
}

func TestFitReachesTarget(t *testing.T) {
	prev := geo.Latlong{Lat: 43.50, Lng: 16.44}
	mark := prev.Forward(20, 500)
	next := prev.Forward(80, 700)

	for _, target := range []float64{60, 90, 120} {
		res := FitInteriorAngle(prev, mark, next, target)

		if res.ResidualDeg > 0.5 {
			t.Errorf("target %f: residual %f too large", target, res.ResidualDeg)
		}

		got := InteriorAngle(prev, res.Position, next)
		if math.Abs(got-target) > 0.5 {
			t.Errorf("target %f: refit angle is %f", target, got)
		}

		// Leg length from prev is preserved
		want := prev.DistMeters(mark)
		if d := prev.DistMeters(res.Position); math.Abs(d-want) > 0.01 {
			t.Errorf("target %f: leg length %f, wanted %f", target, d, want)
		}
	}
}

func TestFitUnreachableTargetIsBestEffort(t *testing.T) {
	prev := geo.Latlong{Lat: 43.50, Lng: 16.44}
	mark := prev.Forward(0, 500)
	next := prev // degenerate: the interior angle is 0 wherever the mark goes

	res := FitInteriorAngle(prev, mark, next, 90)

	if math.IsNaN(res.ResidualDeg) {
		t.Fatal("residual is NaN")
	}
	if math.Abs(res.ResidualDeg-90) > 1.0 {
		t.Errorf("residual = %f, wanted ~90 for an unreachable target", res.ResidualDeg)
	}

	// Still best-effort: leg length intact, answer usable
	if d := prev.DistMeters(res.Position); math.Abs(d-500) > 0.01 {
		t.Errorf("leg length %f, wanted 500", d)
	}
}
