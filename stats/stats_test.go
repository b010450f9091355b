package stats

import (
	"math"
	"testing"

	"github.com/windshift/coursegeo"
	"github.com/windshift/coursegeo/geo"
)

func fixtureCourse() []coursegeo.Mark {
	center := geo.Latlong{Lat: 43.5081, Lng: 16.4402}

	pin := coursegeo.Mark{ID: "pin", Role: coursegeo.RolePin, Order: -1}
	pin.Latlong = center.Forward(270, 60)
	boat := coursegeo.Mark{ID: "rc", Role: coursegeo.RoleStartBoat, Order: -1}
	boat.Latlong = center.Forward(90, 60)

	w := coursegeo.Mark{ID: "w", Role: coursegeo.RoleWindward, Order: 1}
	w.Latlong = center.Forward(0, 926) // 0.5NM beat
	l := coursegeo.Mark{ID: "l", Role: coursegeo.RoleLeeward, Order: 2}
	l.Latlong = w.Forward(180, 926)

	return []coursegeo.Mark{pin, boat, w, l}
}

func TestForCourse(t *testing.T) {
	cs, ok := ForCourse(fixtureCourse(), 0)
	if !ok {
		t.Fatal("no stats for a course with a start line")
	}
	if len(cs.Legs) != 2 {
		t.Fatalf("wanted 2 legs, got %d (start marks must not make legs)", len(cs.Legs))
	}

	beat := cs.Legs[0]
	if beat.FromID != "start" || beat.ToID != "w" {
		t.Errorf("first leg is %s->%s", beat.FromID, beat.ToID)
	}
	if math.Abs(beat.DistNM-0.5) > 0.005 {
		t.Errorf("beat = %fNM, wanted ~0.5", beat.DistNM)
	}
	if beat.PointOfSail != "beat" {
		t.Errorf("upwind leg called a %q", beat.PointOfSail)
	}

	run := cs.Legs[1]
	if math.Abs(run.WindAngle.Absolute-180) > 0.1 {
		t.Errorf("run wind angle = %f", run.WindAngle.Absolute)
	}
	if run.PointOfSail != "run" {
		t.Errorf("downwind leg called a %q", run.PointOfSail)
	}

	if math.Abs(cs.TotalNM-(cs.Legs[0].DistNM+cs.Legs[1].DistNM)) > 1e-9 {
		t.Errorf("total %f does not add up", cs.TotalNM)
	}
}

func TestForCourseNoStartLine(t *testing.T) {
	marks := fixtureCourse()[2:] // drop pin and boat
	if _, ok := ForCourse(marks, 0); ok {
		t.Error("stats produced without a start line")
	}
}

func TestPointOfSail(t *testing.T) {
	type PosTest struct {
		Angle    float64
		Expected string
	}
	tests := []PosTest{
		{0, "beat"}, {45, "beat"}, {70, "close reach"},
		{90, "beam reach"}, {130, "broad reach"}, {175, "run"},
	}
	for _, test := range tests {
		if got := PointOfSail(test.Angle); got != test.Expected {
			t.Errorf("PointOfSail(%f) = %q, wanted %q", test.Angle, got, test.Expected)
		}
	}
}
