package geo

import "math"

// NormalizeBearing maps any finite bearing into [0,360).
func NormalizeBearing(b float64) float64 {
	b = math.Mod(b, 360.0)
	if b < 0 {
		b += 360.0
	}
	if b == 360.0 { // Mod can hand back -0.0
		b = 0.0
	}
	return b
}

// BearingDelta is the shortest signed rotation taking `from` onto `to`,
// always in (-180,180]. Positive means clockwise.
func BearingDelta(from, to float64) float64 {
	d := math.Mod(to-from, 360.0)
	if d <= -180.0 {
		d += 360.0
	} else if d > 180.0 {
		d -= 360.0
	}
	return d
}

// WindAngle is an angle relative to the wind: Signed for display ("+15° to
// wind"), Absolute its magnitude in [0,180].
type WindAngle struct {
	Signed   float64
	Absolute float64
}

// WindRelativeAngle expresses a leg bearing relative to the wind direction.
func WindRelativeAngle(legBearing, windDirection float64) WindAngle {
	s := BearingDelta(windDirection, legBearing)
	return WindAngle{Signed: s, Absolute: math.Abs(s)}
}

// StartLineWindAngle is how far a start/finish line deviates from square to
// the wind. A line has no direction of its own (a 190° line is a 10° line),
// so the result is folded into (-90,90].
func StartLineWindAngle(lineBearing, windDirection float64) WindAngle {
	perp := NormalizeBearing(windDirection + 90.0)
	d := BearingDelta(perp, lineBearing)
	if d > 90.0 {
		d -= 180.0
	} else if d <= -90.0 {
		d += 180.0
	}
	return WindAngle{Signed: d, Absolute: math.Abs(d)}
}
