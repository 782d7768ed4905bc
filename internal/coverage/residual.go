package coverage

import (
	"github.com/aoicover/selector/internal/geom"
	"github.com/aoicover/selector/internal/grid"
)

// continuousEmptyAreaThreshold is the pruning threshold below which a
// continuous-mode residual's total area is treated as numerically
// exhausted rather than kept as a degenerate candidate.
const continuousEmptyAreaThreshold = 1e-3

// fragmentAreaThreshold discards difference fragments this small
// rather than keeping them as new residual sub-polygons.
const fragmentAreaThreshold = 1e-4

// Residual is the portion of a Scene that still contributes new
// coverage at a point in the greedy selection loop. discreteResidual
// and continuousResidual are its two concrete instantiations; the
// selector in internal/solver is written once against this interface.
type Residual interface {
	// Measure returns the residual's size: cell count (discrete) or
	// area (continuous).
	Measure() float64
	// Empty reports whether the residual has been exhausted and should
	// be dropped from further consideration.
	Empty() bool
	// Subtract returns a new Residual with committed's coverage removed.
	Subtract(committed Residual) (Residual, error)
	// Clone returns an independent deep copy, so residual state is
	// never aliased across Scenes or queries.
	Clone() Residual
}

// discreteResidual is a set of grid-cell identifiers.
type discreteResidual struct {
	cells grid.CellSet
}

// NewDiscreteResidual initializes a scene's discrete-mode residual to
// discretize(scene) ∩ discretize(AOI), scoped to the AOI's bounding
// box.
func NewDiscreteResidual(aoi *AOI, scene *Scene) (Residual, error) {
	bbox := aoi.BoundingBoxPolygon()
	clipped, err := geom.Intersection(scene.Poly, bbox)
	if err != nil {
		return nil, err
	}
	var sceneCells grid.CellSet
	if len(clipped) == 0 {
		sceneCells = grid.CellSet{}
	} else {
		sceneCells = aoi.Discretizer().Discretize(clipped, false)
	}
	return &discreteResidual{cells: sceneCells.Intersect(aoi.Cells())}, nil
}

func (r *discreteResidual) Measure() float64 { return float64(len(r.cells)) }
func (r *discreteResidual) Empty() bool      { return len(r.cells) == 0 }

func (r *discreteResidual) Clone() Residual {
	return &discreteResidual{cells: r.cells.Clone()}
}

func (r *discreteResidual) Subtract(committed Residual) (Residual, error) {
	other, ok := committed.(*discreteResidual)
	if !ok {
		return nil, errResidualModeMismatch
	}
	next := r.cells.Clone()
	next.Subtract(other.cells)
	return &discreteResidual{cells: next}, nil
}

// continuousResidual is a list of residual sub-polygons clipped to the
// AOI.
type continuousResidual struct {
	polys []geom.Polygon
}

// NewContinuousResidual initializes a scene's continuous-mode residual
// to intersection(scene, AOI). The AOI acts as the Sutherland-Hodgman
// clipper and so must be convex for this to succeed; Subtract carries
// the analogous limitation against a committed residual's polygons.
func NewContinuousResidual(aoi *AOI, scene *Scene) (Residual, error) {
	clipped, err := geom.Intersection(scene.Poly, aoi.Poly)
	if err != nil {
		return nil, err
	}
	if len(clipped) == 0 {
		return &continuousResidual{}, nil
	}
	area := geom.SignedArea(clipped)
	if area <= fragmentAreaThreshold {
		return &continuousResidual{}, nil
	}
	return &continuousResidual{polys: []geom.Polygon{clipped}}, nil
}

func (r *continuousResidual) Measure() float64 {
	total := 0.0
	for _, p := range r.polys {
		total += geom.SignedArea(p)
	}
	return total
}

func (r *continuousResidual) Empty() bool {
	return r.Measure() < continuousEmptyAreaThreshold
}

func (r *continuousResidual) Clone() Residual {
	polys := make([]geom.Polygon, len(r.polys))
	for i, p := range r.polys {
		cp := make(geom.Polygon, len(p))
		copy(cp, p)
		polys[i] = cp
	}
	return &continuousResidual{polys: polys}
}

// Subtract clips each of r's residual sub-polygons against each of
// committed's sub-polygons in turn, folding the result forward
// (committed's sub-polygons are subtracted sequentially, not
// independently), discarding fragments below fragmentAreaThreshold.
func (r *continuousResidual) Subtract(committed Residual) (Residual, error) {
	other, ok := committed.(*continuousResidual)
	if !ok {
		return nil, errResidualModeMismatch
	}
	current := r.polys
	for _, clip := range other.polys {
		var next []geom.Polygon
		for _, p := range current {
			offcuts, err := geom.Difference(p, clip)
			if err != nil {
				return nil, err
			}
			for _, off := range offcuts {
				if geom.SignedArea(off) > fragmentAreaThreshold {
					next = append(next, off)
				}
			}
		}
		current = next
	}
	return &continuousResidual{polys: current}, nil
}
