package geo

// Great-circle routines, after the standard spherical formulae
// (www.movable-type.co.uk/scripts/latlong.html). These are total over finite
// inputs; there is no error path.

import "math"

// BearingTowards returns the initial great-circle bearing from ll to the
// other point, in [0,360).
func (ll Latlong)BearingTowards(to Latlong) float64 {
	φ1, φ2 := rad(ll.Lat), rad(to.Lat)
	Δλ := rad(to.Lng - ll.Lng)

	y := math.Sin(Δλ) * math.Cos(φ2)
	x := math.Cos(φ1)*math.Sin(φ2) - math.Sin(φ1)*math.Cos(φ2)*math.Cos(Δλ)

	return NormalizeBearing(deg(math.Atan2(y, x)))
}

// DistMeters is the haversine great-circle distance.
func (ll Latlong)DistMeters(to Latlong) float64 {
	return ll.angularDist(to) * EarthRadiusMeters
}

func (ll Latlong)DistKM(to Latlong) float64 { return ll.DistMeters(to) / 1000.0 }

// DistNM runs the same haversine over the nautical-mile radius; the course
// statistics layer works in NM throughout.
func (ll Latlong)DistNM(to Latlong) float64 {
	return ll.angularDist(to) * EarthRadiusNM
}

func (ll Latlong)angularDist(to Latlong) float64 {
	φ1, φ2 := rad(ll.Lat), rad(to.Lat)
	Δφ := φ2 - φ1
	Δλ := rad(to.Lng - ll.Lng)

	a := math.Sin(Δφ/2)*math.Sin(Δφ/2) +
		math.Cos(φ1)*math.Cos(φ2)*math.Sin(Δλ/2)*math.Sin(Δλ/2)

	return 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}

// Forward is the direct geodesic: the point reached by travelling `meters`
// along `bearing` from ll. Longitude is renormalized, so bearings across
// 0/360 and the antimeridian behave.
func (ll Latlong)Forward(bearing, meters float64) Latlong {
	δ := meters / EarthRadiusMeters
	θ := rad(bearing)
	φ1, λ1 := rad(ll.Lat), rad(ll.Lng)

	φ2 := math.Asin(math.Sin(φ1)*math.Cos(δ) + math.Cos(φ1)*math.Sin(δ)*math.Cos(θ))
	λ2 := λ1 + math.Atan2(math.Sin(θ)*math.Sin(δ)*math.Cos(φ1),
		math.Cos(δ)-math.Sin(φ1)*math.Sin(φ2))
	λ2 = math.Mod(λ2+3*math.Pi, 2*math.Pi) - math.Pi

	return Latlong{Lat: deg(φ2), Lng: deg(λ2)}
}
