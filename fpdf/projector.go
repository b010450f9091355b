package fpdf

import (
	"math"

	pgeo "github.com/paulmach/go.geo"

	"github.com/windshift/coursegeo"
	"github.com/windshift/coursegeo/geo"
)

// A CourseProjector flattens mark positions into meters east/north of the
// course's bounding-box center. Flat-earth is fine at course scale; the
// scale factors match the ones the shape generator uses.
type CourseProjector struct {
	CenterLat, CenterLng float64
}

const metersPerDegreeLat = 111320.0

// NewCourseProjector centers the projection on the marks' bounding box.
func NewCourseProjector(marks []coursegeo.Mark) CourseProjector {
	if len(marks) == 0 {
		return CourseProjector{}
	}

	// go.geo points are (lng,lat)
	bound := pgeo.NewBoundFromPoints(
		pgeo.NewPoint(marks[0].Lng, marks[0].Lat),
		pgeo.NewPoint(marks[0].Lng, marks[0].Lat))
	for _, m := range marks[1:] {
		bound.Extend(pgeo.NewPoint(m.Lng, m.Lat))
	}

	c := bound.Center()
	return CourseProjector{CenterLat: c.Lat(), CenterLng: c.Lng()}
}

// Project returns meters east and north of the course center.
func (cp CourseProjector)Project(ll geo.Latlong) (x, y float64) {
	y = (ll.Lat - cp.CenterLat) * metersPerDegreeLat
	x = (ll.Lng - cp.CenterLng) * metersPerDegreeLat * math.Cos(cp.CenterLat*math.Pi/180.0)
	return
}
