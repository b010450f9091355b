// Package geo holds the spherical-earth primitives the course engine is
// built on. Positions are decimal degrees on a sphere; bearings are degrees
// clockwise from true north, stored in [0,360).
package geo

import (
	"fmt"
	"math"
)

const (
	EarthRadiusMeters = 6371000.0 // mean radius, spherical model
	EarthRadiusNM     = 3440.065  // the same sphere, in nautical miles
	MetersPerNM       = 1852.0
)

// Latlong is a position in decimal degrees. It is a value type; nothing in
// this package ever mutates one.
type Latlong struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

func (ll Latlong)String() string {
	return fmt.Sprintf("(%.6f,%.6f)", ll.Lat, ll.Lng)
}

func (ll Latlong)Equal(other Latlong) bool {
	return ll.Lat == other.Lat && ll.Lng == other.Lng
}

func rad(deg float64) float64 { return deg * math.Pi / 180.0 }
func deg(rad float64) float64 { return rad * 180.0 / math.Pi }
