// Package stats derives per-leg and whole-course statistics from a mark
// list and a wind reading. Everything here works in nautical miles and
// degrees, since that's what race officers read.
package stats

import (
	"fmt"
	"sort"

	"github.com/windshift/coursegeo"
	"github.com/windshift/coursegeo/geo"
)

// LegStat describes one leg of the rounding sequence.
type LegStat struct {
	FromID string
	ToID   string

	DistMeters float64
	DistNM     float64
	BearingDeg float64

	WindAngle   geo.WindAngle
	PointOfSail string
}

func (l LegStat)String() string {
	return fmt.Sprintf("%s->%s %.2fNM @%03.0f (%+.0f to wind, %s)",
		l.FromID, l.ToID, l.DistNM, l.BearingDeg, l.WindAngle.Signed, l.PointOfSail)
}

// CourseStats is the rollup for a whole course.
type CourseStats struct {
	Legs        []LegStat
	TotalMeters float64
	TotalNM     float64
}

// ForCourse walks the rounding sequence from the start-line center and
// measures every leg. Marks without an order (pin, boat, custom) don't make
// legs. Returns ok==false when there's no start line to anchor the walk.
func ForCourse(marks []coursegeo.Mark, windDir float64) (CourseStats, bool) {
	cs := CourseStats{}

	prev, ok := coursegeo.StartLineCenter(marks)
	if !ok {
		return cs, false
	}
	prevID := "start"

	ordered := []coursegeo.Mark{}
	for _, m := range marks {
		if m.HasOrder() { ordered = append(ordered, m) }
	}
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].Order < ordered[j].Order })

	for _, m := range ordered {
		wa := geo.WindRelativeAngle(prev.BearingTowards(m.Latlong), windDir)

		leg := LegStat{
			FromID:      prevID,
			ToID:        m.ID,
			DistMeters:  prev.DistMeters(m.Latlong),
			DistNM:      prev.DistNM(m.Latlong),
			BearingDeg:  prev.BearingTowards(m.Latlong),
			WindAngle:   wa,
			PointOfSail: PointOfSail(wa.Absolute),
		}
		cs.Legs = append(cs.Legs, leg)
		cs.TotalMeters += leg.DistMeters
		cs.TotalNM += leg.DistNM

		prev = m.Latlong
		prevID = m.ID
	}

	return cs, true
}

// PointOfSail names the sailing angle for an absolute wind angle in [0,180].
func PointOfSail(absWindAngle float64) string {
	switch {
	case absWindAngle <= 50:
		return "beat"
	case absWindAngle <= 80:
		return "close reach"
	case absWindAngle <= 100:
		return "beam reach"
	case absWindAngle <= 150:
		return "broad reach"
	}
	return "run"
}
