package shape

import (
	"math"

	"github.com/windshift/coursegeo/geo"
)

const (
	coarseStepDeg = 2.0
	refineSpanDeg = 3.0
	refineStepDeg = 0.2

	// Two candidate minima whose errors are this close are "equally good";
	// we then take the one that moves the mark least.
	errorTieDeg = 2.0
)

// FitResult is a best-effort answer: the optimizer never fails outright, so
// callers should look at ResidualDeg before trusting Position when the
// target might be geometrically unreachable.
type FitResult struct {
	Position      geo.Latlong
	OriginalAngle float64
	TargetAngle   float64
	ResidualDeg   float64
	RotationDeg   float64 // signed rotation about prev, from the original position
}

// InteriorAngle is the angle at `mark` between the bearing back to prev and
// the bearing on to next, folded into [0,180].
func InteriorAngle(prev, mark, next geo.Latlong) float64 {
	back := mark.BearingTowards(prev)
	fwd := mark.BearingTowards(next)
	return math.Abs(geo.BearingDelta(back, fwd))
}

// FitInteriorAngle swings `mark` around prev (leg length fixed) until the
// interior angle at it matches targetDeg. The error curve has two minima in
// general (the mark can sit either side of the leg), so a coarse sweep
// finds them all, the least-disturbance policy picks one, and a fine sweep
// polishes it.
func FitInteriorAngle(prev, mark, next geo.Latlong, targetDeg float64) FitResult {
	dist := prev.DistMeters(mark)
	baseBearing := prev.BearingTowards(mark)

	angleAt := func(rot float64) float64 {
		cand := prev.Forward(geo.NormalizeBearing(baseBearing+rot), dist)
		return InteriorAngle(prev, cand, next)
	}

	n := int(360.0 / coarseStepDeg)
	errs := make([]float64, n)
	bestI := 0
	for i := 0; i < n; i++ {
		rot := float64(i) * coarseStepDeg
		errs[i] = math.Abs(angleAt(rot) - targetDeg)
		if errs[i] < errs[bestI] {
			bestI = i
		}
	}

	// Local minima of the (circular) error curve, plus the global best.
	candidates := []int{}
	for i := 0; i < n; i++ {
		lo, hi := (i+n-1)%n, (i+1)%n
		if errs[i] < errs[lo] && errs[i] < errs[hi] {
			candidates = append(candidates, i)
		}
	}
	found := false
	for _, c := range candidates {
		if c == bestI { found = true }
	}
	if !found {
		candidates = append(candidates, bestI)
	}

	// Smallest error wins; near-ties go to the smallest rotation away from
	// where the mark already is.
	chosen := candidates[0]
	for _, c := range candidates[1:] {
		switch {
		case errs[c] < errs[chosen]-errorTieDeg:
			chosen = c
		case errs[c] <= errs[chosen]+errorTieDeg:
			if foldRot(float64(c)*coarseStepDeg) < foldRot(float64(chosen)*coarseStepDeg) {
				chosen = c
			}
		}
	}

	bestRot := float64(chosen) * coarseStepDeg
	bestErr := errs[chosen]
	for rot := bestRot - refineSpanDeg; rot <= bestRot+refineSpanDeg+1e-9; rot += refineStepDeg {
		if e := math.Abs(angleAt(rot) - targetDeg); e < bestErr {
			bestErr, bestRot = e, rot
		}
	}

	return FitResult{
		Position:      prev.Forward(geo.NormalizeBearing(baseBearing+bestRot), dist),
		OriginalAngle: InteriorAngle(prev, mark, next),
		TargetAngle:   targetDeg,
		ResidualDeg:   bestErr,
		RotationDeg:   geo.BearingDelta(0, bestRot),
	}
}

// foldRot is the magnitude of a rotation once wrapped to (-180,180].
func foldRot(rot float64) float64 {
	return math.Abs(geo.BearingDelta(0, rot))
}
