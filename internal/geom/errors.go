package geom

import "errors"

var (
	// ErrMalformedPolygon indicates a polygon literal did not match the
	// bracketed-list grammar.
	ErrMalformedPolygon = errors.New("geom: malformed polygon literal")

	// ErrNonConvexClipper indicates Intersection or Difference was
	// called with a clipper that fails the Convex test.
	ErrNonConvexClipper = errors.New("geom: clipper polygon is non-convex")

	// ErrParallelLines indicates LineIntersection was asked to
	// intersect two parallel (or collinear) infinite lines.
	ErrParallelLines = errors.New("geom: lines are parallel")

	// ErrTriangulationStuck indicates Triangulate could not find an
	// ear tip, which implies the input polygon is not simple.
	ErrTriangulationStuck = errors.New("geom: triangulation stuck, no ear tip found")

	// ErrDegeneratePolygon indicates a polygon has fewer than three
	// vertices.
	ErrDegeneratePolygon = errors.New("geom: polygon has fewer than 3 vertices")
)
