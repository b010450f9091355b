package coursegeo

import (
	"fmt"
	"math"
	"sort"

	"github.com/windshift/coursegeo/geo"
)

// AdjustmentResult is the audit record for one mark: where it was, where it
// should go, and the bearing arithmetic that got it there. Callers keep the
// original coords around for undo.
type AdjustmentResult struct {
	MarkID string

	Original geo.Latlong
	New      geo.Latlong

	CurrentBearing float64 // leg bearing before adjustment
	TargetBearing  float64
	Delta          float64 // raw shortest rotation to target
	AppliedDelta   float64 // after damping
}

// SequentialAdjustmentResult is what AdjustMarksToWind hands back. When
// CanApply is false the preconditions failed and Results is empty; the
// warnings say why, and nothing should be persisted.
type SequentialAdjustmentResult struct {
	Results  []AdjustmentResult
	Warnings []string
	CanApply bool
}

// AdjustMarksToWind walks the rounding sequence leg by leg and rotates each
// mark about the previous position until the leg points at its role's
// wind-relative target. Leg lengths are never changed.
//
// marks is the adjustable set (start-line marks stay where the race officer
// anchored them); startCenter is where the sequence hangs off, normally from
// StartLineCenter on the full list, and hasStartLine is false when that
// failed.
//
// Each leg chains off the *adjusted* previous mark, not the original one.
// That trades a little drift accumulation for a course that stays a
// connected, non-self-intersecting path when several legs rotate at once.
func AdjustMarksToWind(marks []Mark, startCenter geo.Latlong, windDir float64, ct CourseType, bc BoatClass, hasStartLine bool) SequentialAdjustmentResult {
	v := ValidateMarksForAdjustment(marks, hasStartLine)
	out := SequentialAdjustmentResult{Warnings: v.Warnings, CanApply: v.Valid}
	if !v.Valid {
		return out
	}

	prev := startCenter

	ordered := make([]Mark, len(marks))
	copy(ordered, marks)
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].Order < ordered[j].Order })

	occurrences := map[MarkRole]int{}

	for _, m := range ordered {
		idx := occurrences[m.Role]
		occurrences[m.Role]++

		target, ok := TargetLegBearing(m, idx, ct, bc, windDir)
		if !ok {
			// No wind-relative target (custom/other roles); leave the mark
			// alone but keep chaining through its real position.
			out.Warnings = append(out.Warnings,
				fmt.Sprintf("mark %s (%s) has no wind target; skipped", m.ID, m.Role))
			prev = m.Latlong
			continue
		}

		current := prev.BearingTowards(m.Latlong)
		dist := prev.DistMeters(m.Latlong)

		delta := geo.BearingDelta(current, target)
		applied := delta
		if math.Abs(delta) <= MicroThresholdDeg {
			applied = delta * MicroFactor
		}

		newPos := prev.Forward(geo.NormalizeBearing(current+applied), dist)

		out.Results = append(out.Results, AdjustmentResult{
			MarkID:         m.ID,
			Original:       m.Latlong,
			New:            newPos,
			CurrentBearing: current,
			TargetBearing:  target,
			Delta:          delta,
			AppliedDelta:   applied,
		})

		prev = newPos
	}

	return out
}

// AdjustMarkToWind repositions a single mark to sit at windDir+degreesToWind
// off the reference point, keeping its distance from the reference. This is
// the per-leg primitive the sequential adjuster is built from, exposed for
// the one-mark-at-a-time setup flows.
func AdjustMarkToWind(m Mark, ref geo.Latlong, windDir, degreesToWind float64) geo.Latlong {
	dist := ref.DistMeters(m.Latlong)
	return ref.Forward(geo.NormalizeBearing(windDir+degreesToWind), dist)
}
