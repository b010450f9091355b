package coursegeo

import "github.com/windshift/coursegeo/geo"

// RoleBearing is the wind-relative target for one occurrence of a role on a
// course: the bearing the leg into that mark should have (relative to the
// wind direction) and the leg's share of the nominal course length. Static
// configuration; never mutated.
type RoleBearing struct {
	Role          MarkRole
	Index         int     // occurrence: 0 = first mark with this role in the sequence
	BearingDeg    float64 // relative to wind; 0 = dead upwind
	DistanceRatio float64
}

type bearingKey struct {
	ct   CourseType
	bc   BoatClass
	role MarkRole
	idx  int
}

// There is exactly one table. The sequential adjuster and the shape
// generator both resolve through it, so the two can't drift apart.
var roleBearings = map[bearingKey]RoleBearing{}

// Reach angle per class: the wind-relative bearing of a leg to a wing mark.
var reachByClass = map[BoatClass]float64{
	ClassSkiff:    100.0,
	ClassDinghy:   110.0,
	ClassKeelboat: 120.0,
}

func addBearing(ct CourseType, bc BoatClass, role MarkRole, idx int, brg, ratio float64) {
	roleBearings[bearingKey{ct, bc, role, idx}] = RoleBearing{
		Role:          role,
		Index:         idx,
		BearingDeg:    brg,
		DistanceRatio: ratio,
	}
}

func init() {
	for bc, reach := range reachByClass {
		// Windward-leeward: a beat up, a run back. The leeward mark is
		// usually a gate; the per-side spread is applied at resolve time.
		addBearing(WindwardLeeward, bc, RoleWindward, 0, 0.0, 1.0)
		addBearing(WindwardLeeward, bc, RoleLeeward, 0, 180.0, 1.0)
		addBearing(WindwardLeeward, bc, RoleOffset, 0, 270.0, 0.08)

		// Triangle: beat, two reaches.
		addBearing(Triangle, bc, RoleWindward, 0, 0.0, 1.0)
		addBearing(Triangle, bc, RoleWing, 0, reach, 0.7)
		addBearing(Triangle, bc, RoleLeeward, 0, 180.0, 1.0)

		// Trapezoid: beat, reach out, run down, with mirrored second wing.
		addBearing(Trapezoid, bc, RoleWindward, 0, 0.0, 1.0)
		addBearing(Trapezoid, bc, RoleWing, 0, reach, 0.35)
		addBearing(Trapezoid, bc, RoleWing, 1, geo.NormalizeBearing(360.0-reach), 0.35)
		addBearing(Trapezoid, bc, RoleLeeward, 0, 180.0, 0.85)
		addBearing(Trapezoid, bc, RoleOffset, 0, 270.0, 0.08)
	}
}

// ResolveBearing looks up the wind-relative target for the idx'th occurrence
// of a role. If there is no entry for that exact occurrence it falls back to
// occurrence zero. ok==false means the role has no wind-relative target at
// all (pin, start boat, custom marks); such marks are never auto-adjusted
// and need user-entered degrees.
func ResolveBearing(role MarkRole, idx int, ct CourseType, bc BoatClass) (RoleBearing, bool) {
	if rb, ok := roleBearings[bearingKey{ct, bc, role, idx}]; ok {
		return rb, true
	}
	if rb, ok := roleBearings[bearingKey{ct, bc, role, 0}]; ok {
		return rb, true
	}
	return RoleBearing{}, false
}

// TargetLegBearing is the absolute bearing the leg into this mark should
// have under the given wind. Gate members get GateSpreadDeg either side of
// the role's base bearing.
func TargetLegBearing(m Mark, idx int, ct CourseType, bc BoatClass, windDir float64) (float64, bool) {
	rb, ok := ResolveBearing(m.Role, idx, ct, bc)
	if !ok {
		return 0, false
	}

	rel := rb.BearingDeg
	if m.IsGate {
		switch m.GateSide {
		case GatePort:
			rel -= GateSpreadDeg
		case GateStarboard:
			rel += GateSpreadDeg
		}
	}

	return geo.NormalizeBearing(windDir + rel), true
}
