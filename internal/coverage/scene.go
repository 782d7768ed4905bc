package coverage

import (
	"fmt"

	"github.com/aoicover/selector/internal/geom"
)

// Scene is a priced polygonal coverage candidate. Price is assumed
// positive; Poly is assumed simple.
type Scene struct {
	ID    string
	Poly  geom.Polygon
	Price float64
}

// NewScene validates and constructs a Scene.
func NewScene(id string, poly geom.Polygon, price float64) (*Scene, error) {
	if len(poly) < 3 {
		return nil, fmt.Errorf("%w: scene %q", geom.ErrDegeneratePolygon, id)
	}
	if price <= 0 {
		return nil, fmt.Errorf("coverage: scene %q price must be > 0, got %v", id, price)
	}
	return &Scene{ID: id, Poly: poly, Price: price}, nil
}

// Candidate is a Scene paired with the per-query Residual it still
// contributes. Candidates are owned exclusively by one query; the
// Scene itself is read-only shared state and never mutated.
type Candidate struct {
	Scene    *Scene
	Residual Residual
}

// PossibleScenes filters scenes down to those whose footprint
// geometrically intersects the AOI. Scenes failing this prefilter
// never enter selection.
//
// Kept as its own named, independently testable operation rather than
// inlined into scene discretization. The intersection test clips the
// scene against the AOI and, if that finds no overlap, the AOI against
// the scene, so only one of the two needs to be convex; a scene that is
// non-convex against a non-convex AOI is treated as non-intersecting.
func PossibleScenes(aoi *AOI, scenes []*Scene) []*Scene {
	var out []*Scene
	for _, s := range scenes {
		if geom.Intersects(s.Poly, aoi.Poly) || geom.Intersects(aoi.Poly, s.Poly) {
			out = append(out, s)
		}
	}
	return out
}
