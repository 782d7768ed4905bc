// Package coverage models Area-of-Interest and Scene coverage state:
// the AOI's target coverage, each candidate Scene's residual
// contribution, and the two residual regimes (discrete cell-sets,
// continuous sub-polygons) behind one Residual interface.
package coverage

import (
	"fmt"

	"github.com/aoicover/selector/internal/geom"
	"github.com/aoicover/selector/internal/grid"
)

// Mode selects which residual regime a query runs in.
type Mode uint8

const (
	// Discrete decomposes the AOI and every candidate into a grid of
	// cells and reduces coverage to set cover over cell identifiers.
	Discrete Mode = iota
	// Continuous tracks coverage as residual polygonal regions
	// subtracted from candidate footprints as selections are committed.
	Continuous
)

func (m Mode) String() string {
	switch m {
	case Discrete:
		return "discrete"
	case Continuous:
		return "continuous"
	default:
		return fmt.Sprintf("Mode(%d)", m)
	}
}

// AOI is the target polygon a selection must cover. Its derived
// discretization (discrete mode) or area (continuous mode) is owned
// exclusively by the AOI and recomputed whenever it is constructed.
type AOI struct {
	Poly  geom.Polygon
	Delta float64

	discretizer grid.Discretizer
	cells       grid.CellSet // discrete mode
	area        float64
}

// NewAOI constructs an AOI and eagerly computes its inclusive-mode
// discretization: an AOI counts a boundary-straddling cell as part of
// its own target coverage even though scenes must fully contain a
// cell to claim it.
func NewAOI(poly geom.Polygon, delta float64) (*AOI, error) {
	if len(poly) < 3 {
		return nil, fmt.Errorf("%w: AOI polygon", geom.ErrDegeneratePolygon)
	}
	if delta <= 0 {
		return nil, fmt.Errorf("coverage: delta must be > 0, got %v", delta)
	}
	d := grid.Discretizer{Delta: delta}
	return &AOI{
		Poly:        poly,
		Delta:       delta,
		discretizer: d,
		cells:       d.Discretize(poly, true),
		area:        geom.SignedArea(poly),
	}, nil
}

// Cells returns the AOI's discrete-mode cell set. Callers must not
// mutate the returned set; it is owned by the AOI.
func (a *AOI) Cells() grid.CellSet {
	return a.cells
}

// Area returns the AOI's geometric area.
func (a *AOI) Area() float64 {
	return a.area
}

// Discretizer returns the AOI's bound Discretizer, reused for scene
// discretization so every candidate shares the same grid.
func (a *AOI) Discretizer() grid.Discretizer {
	return a.discretizer
}

// BoundingBoxPolygon returns the AOI's bbox rectangle, used as the
// convex clipper when decomposing scenes in discrete mode.
func (a *AOI) BoundingBoxPolygon() geom.Polygon {
	return a.discretizer.BoundingBoxPolygon(a.Poly)
}
