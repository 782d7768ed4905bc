// Package solver implements the greedy weighted set-cover selection
// loop: at each iteration pick the candidate minimizing price ÷
// residual measure, commit it, and update every remaining candidate's
// residual.
package solver

import (
	"fmt"

	"github.com/aoicover/selector/internal/coverage"
)

// Result is the outcome of one Select call.
type Result struct {
	AOI        *coverage.AOI
	Possible   []*coverage.Scene
	Chosen     []*coverage.Scene
	TotalPrice float64
	// Covered is the measure of AOI coverage achieved by Chosen, in
	// the same units as the query's Mode (cell count or area).
	Covered float64
}

// CoverageRatio returns Covered as a fraction of the AOI's total
// measure under mode, or 0 for a degenerate (zero-measure) AOI.
func (r Result) CoverageRatio(mode coverage.Mode) float64 {
	total := aoiMeasure(mode, r.AOI)
	if total <= 0 {
		return 0
	}
	ratio := r.Covered / total
	if ratio > 1 {
		ratio = 1
	}
	return ratio
}

func aoiMeasure(mode coverage.Mode, aoi *coverage.AOI) float64 {
	if mode == coverage.Discrete {
		return float64(len(aoi.Cells()))
	}
	return aoi.Area()
}

// Select runs the greedy weighted set-cover loop over scenes against
// aoi under mode.
//
// scenes is never mutated: candidate residuals are built fresh from
// aoi and each Scene, so concurrent calls to Select sharing the same
// *Scene values never alias mutable state.
func Select(mode coverage.Mode, aoi *coverage.AOI, scenes []*coverage.Scene) (Result, error) {
	candidates, err := coverage.BuildCandidates(mode, aoi, scenes)
	if err != nil {
		return Result{}, err
	}
	possible := make([]*coverage.Scene, len(candidates))
	for i, c := range candidates {
		possible[i] = c.Scene
	}

	remaining := dropEmpty(candidates)

	result := Result{AOI: aoi, Possible: possible}
	aoiTotal := aoiMeasure(mode, aoi)

	for len(remaining) > 0 && result.Covered < aoiTotal {
		bestIdx, err := pickBest(remaining)
		if err != nil {
			return Result{}, err
		}
		best := remaining[bestIdx]

		result.Chosen = append(result.Chosen, best.Scene)
		result.TotalPrice += best.Scene.Price
		result.Covered += best.Residual.Measure()

		remaining = append(remaining[:bestIdx], remaining[bestIdx+1:]...)

		for _, other := range remaining {
			updated, err := other.Residual.Subtract(best.Residual)
			if err != nil {
				return Result{}, fmt.Errorf("solver: subtracting scene %q from %q: %w", best.Scene.ID, other.Scene.ID, err)
			}
			other.Residual = updated
		}
		remaining = dropEmpty(remaining)
	}

	return result, nil
}

// pickBest returns the index of the candidate minimizing
// price/residual measure, breaking ties by first-seen (stable) order.
func pickBest(candidates []*coverage.Candidate) (int, error) {
	if len(candidates) == 0 {
		return 0, fmt.Errorf("solver: pickBest called with no candidates")
	}
	bestIdx := 0
	bestRatio := candidates[0].Scene.Price / candidates[0].Residual.Measure()
	for i := 1; i < len(candidates); i++ {
		ratio := candidates[i].Scene.Price / candidates[i].Residual.Measure()
		if ratio < bestRatio {
			bestRatio = ratio
			bestIdx = i
		}
	}
	return bestIdx, nil
}

// dropEmpty removes candidates whose residual is exhausted.
func dropEmpty(candidates []*coverage.Candidate) []*coverage.Candidate {
	out := candidates[:0]
	for _, c := range candidates {
		if !c.Residual.Empty() {
			out = append(out, c)
		}
	}
	return out
}
