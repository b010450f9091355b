// Package shape builds canonical course shapes (triangle, trapezoid) around
// a start line, and refits single marks to target interior angles.
package shape

import (
	"fmt"
	"math"

	"github.com/windshift/coursegeo"
	"github.com/windshift/coursegeo/geo"
)

// MetersPerDegreeLat converts the local meter frame to degrees. Longitude is
// scaled by cos(lat). Flat-earth on purpose: at race-course scale (hundreds
// of meters) the error is negligible, and the original layouts were built
// this way. Don't "fix" this to the spherical formulae.
const MetersPerDegreeLat = 111320.0

// Template is a freshly generated set of course marks, in rounding order,
// not yet assigned to physical buoys.
type Template struct {
	Marks    []coursegeo.Mark
	Warnings []string
}

// localMark is a vertex in the wind-aligned local frame: x meters to the
// right of the wind axis, y meters upwind.
type localMark struct {
	x, y     float64
	id       string
	isGate   bool
	gateSide coursegeo.GateSide
}

// Triangle lays out a three-mark course from its interior angles via the law
// of sines. The beat (leeward-to-windward side) is fixed at courseLengthM,
// the first mark sits dead upwind of the start, and each following vertex is
// reached by turning left through the exterior angle, so marks round to port.
//
// Angles that don't sum to ~180 get a warning but are used as given.
func Triangle(start geo.Latlong, windDir float64, angles [3]float64, courseLengthM float64) Template {
	t := Template{}

	sum := angles[0] + angles[1] + angles[2]
	if math.Abs(sum-180.0) > 0.5 {
		t.Warnings = append(t.Warnings,
			fmt.Sprintf("interior angles sum to %.1f, not 180; proceeding anyway", sum))
	}

	// Vertices M1 (windward), M2 (wing), M3 (leeward); interior angles
	// A,B,C in that order. Law of sines: each side is k*sin(opposite angle),
	// and the side M3->M1 (opposite B) is the beat.
	sinA := math.Sin(rad(angles[0]))
	sinB := math.Sin(rad(angles[1]))
	sinC := math.Sin(rad(angles[2]))
	if sinB == 0 {
		sinB = 1e-9 // degenerate input; keep the construction total
	}
	k := courseLengthM / sinB

	locals := make([]localMark, 0, 3)

	// Walk from M1: arrived heading upwind (0 in the local frame), turn left
	// through each exterior angle.
	x, y := 0.0, courseLengthM
	heading := 0.0
	locals = append(locals, localMark{x: x, y: y, id: "M1"})

	sides := []float64{k * sinC, k * sinA} // M1->M2, M2->M3
	for i, side := range sides {
		heading -= 180.0 - angles[i]
		x += side * math.Sin(rad(heading))
		y += side * math.Cos(rad(heading))
		locals = append(locals, localMark{x: x, y: y, id: fmt.Sprintf("M%d", i+2)})
	}

	t.Marks = realize(locals, start, windDir)
	return t
}

// Trapezoid lays out the fixed four-mark topology: windward mark dead
// upwind, a spreader partway back down on a reach, and a leeward gate
// straddling the wind axis just downwind of the start.
func Trapezoid(start geo.Latlong, windDir float64, courseLengthM float64) Template {
	L := courseLengthM
	halfGate := coursegeo.GateWidthMeters / 2.0

	// The spreader hangs off the windward mark on a beam-ish reach.
	spreadX := 0.3 * L * math.Sin(rad(250.0))
	spreadY := 0.3 * L * math.Cos(rad(250.0))

	locals := []localMark{
		{x: 0, y: L, id: "M1"},
		{x: spreadX, y: L + spreadY, id: "M2"},
		{x: -halfGate, y: -0.15 * L, id: "M3", isGate: true, gateSide: coursegeo.GatePort},
		{x: halfGate, y: -0.15 * L, id: "M4", isGate: true, gateSide: coursegeo.GateStarboard},
	}

	return Template{Marks: realize(locals, start, windDir)}
}

// realize rotates the local frame onto the true wind bearing and converts
// meter offsets from the start into lat/lng.
func realize(locals []localMark, start geo.Latlong, windDir float64) []coursegeo.Mark {
	marks := make([]coursegeo.Mark, 0, len(locals))

	for i, lm := range locals {
		d := math.Hypot(lm.x, lm.y)
		b := deg(math.Atan2(lm.x, lm.y)) + windDir

		east := d * math.Sin(rad(b))
		north := d * math.Cos(rad(b))

		m := coursegeo.Mark{
			ID:           lm.id,
			Role:         coursegeo.RoleTurningMark,
			Order:        i + 1,
			IsGate:       lm.isGate,
			GateSide:     lm.gateSide,
			IsCourseMark: true,
		}
		m.Lat = start.Lat + north/MetersPerDegreeLat
		m.Lng = start.Lng + east/(MetersPerDegreeLat*math.Cos(rad(start.Lat)))

		marks = append(marks, m)
	}

	return marks
}

func rad(d float64) float64 { return d * math.Pi / 180.0 }
func deg(r float64) float64 { return r * 180.0 / math.Pi }
