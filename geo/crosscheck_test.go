package geo

// Cross-checks our spherical routines against paulmach/go.geo, which uses
// the WGS84 semi-major radius (6378137m) rather than the mean radius, so
// tolerances here are percentage-level, not float-epsilon.

import (
	"math"
	"testing"

	pgeo "github.com/paulmach/go.geo"
)

func TestDistanceAgainstGoGeo(t *testing.T) {
	a := Latlong{Lat: 43.5081, Lng: 16.4402}
	b := Latlong{Lat: 43.5230, Lng: 16.4610}

	ours := a.DistMeters(b)
	theirs := pgeo.NewPoint(a.Lng, a.Lat).GeoDistanceFrom(pgeo.NewPoint(b.Lng, b.Lat), true)

	if math.Abs(ours-theirs)/theirs > 0.005 {
		t.Errorf("distance disagrees: ours %f, go.geo %f", ours, theirs)
	}
}

func TestBearingAgainstGoGeo(t *testing.T) {
	a := Latlong{Lat: 43.5081, Lng: 16.4402}
	b := Latlong{Lat: 43.5230, Lng: 16.4610}

	ours := a.BearingTowards(b)
	theirs := NormalizeBearing(pgeo.NewPoint(a.Lng, a.Lat).BearingTo(pgeo.NewPoint(b.Lng, b.Lat)))

	if math.Abs(BearingDelta(ours, theirs)) > 0.5 {
		t.Errorf("bearing disagrees: ours %f, go.geo %f", ours, theirs)
	}
}

func TestForwardAgainstGoGeo(t *testing.T) {
	a := Latlong{Lat: 43.5081, Lng: 16.4402}

	for _, brg := range []float64{0, 45, 133, 270} {
		ours := a.Forward(brg, 2000.0)
		p := pgeo.NewPoint(a.Lng, a.Lat).PointAtDistanceAndBearing(2.0, brg) // km

		off := ours.DistMeters(Latlong{Lat: p.Lat(), Lng: p.Lng()})
		if off > 10.0 { // different earth radius; ~0.1% of 2km is fine
			t.Errorf("Forward(%f) lands %fm away from go.geo's answer", brg, off)
		}
	}
}
