package coverage

import "fmt"

// NewResidual builds the initial residual for scene under mode.
func NewResidual(mode Mode, aoi *AOI, scene *Scene) (Residual, error) {
	switch mode {
	case Discrete:
		return NewDiscreteResidual(aoi, scene)
	case Continuous:
		return NewContinuousResidual(aoi, scene)
	default:
		return nil, fmt.Errorf("coverage: unknown mode %v", mode)
	}
}

// BuildCandidates narrows scenes to the possible set and initializes
// each one's residual coverage against aoi under mode.
func BuildCandidates(mode Mode, aoi *AOI, scenes []*Scene) ([]*Candidate, error) {
	possible := PossibleScenes(aoi, scenes)
	candidates := make([]*Candidate, 0, len(possible))
	for _, s := range possible {
		residual, err := NewResidual(mode, aoi, s)
		if err != nil {
			return nil, fmt.Errorf("coverage: scene %q: %w", s.ID, err)
		}
		candidates = append(candidates, &Candidate{Scene: s, Residual: residual})
	}
	return candidates, nil
}
