// Package coursegeo positions racing marks on the water relative to a
// measured wind direction and a desired course shape. It is pure geometry:
// callers hand in marks and a wind reading, and get new coordinates back to
// persist (or throw away) themselves. No I/O, no state between calls.
package coursegeo

const (
	// Legs already within MicroThresholdDeg of their target only move by
	// MicroFactor of the raw delta. Marks that are nearly right get nudged,
	// not snapped, so a small windshift doesn't make the course jitter.
	MicroThresholdDeg = 7.0
	MicroFactor       = 0.3

	// GateSpreadDeg is the half-angle a gate member sits off its role's
	// single-mark bearing: port member minus, starboard member plus.
	GateSpreadDeg = 5.0

	// GateWidthMeters is the gap between the two members of a generated
	// leeward gate.
	GateWidthMeters = 50.0
)
