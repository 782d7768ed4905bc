package geom

import "math"

// cross returns the 2D cross product (z-component) of vectors u and v.
func cross(u, v Point) float64 {
	return u.X*v.Y - u.Y*v.X
}

// almostEqual reports whether a and b differ by no more than ulps
// units in the last place of their larger magnitude.
func almostEqual(a, b float64, ulps int) bool {
	if a == b {
		return true
	}
	scale := math.Max(math.Abs(a), math.Abs(b))
	epsilon := math.Nextafter(scale, math.Inf(1)) - scale
	return math.Abs(a-b) <= epsilon*float64(ulps)
}

// OnSide reports whether p lies on the infinite line through a and b.
func OnSide(p, a, b Point) bool {
	u := b.Sub(a)
	v := p.Sub(a)
	return almostEqual(u.X*v.Y, u.Y*v.X, 1)
}

// Inside reports whether p is strictly left of the directed edge a->b.
func Inside(p, a, b Point) bool {
	return cross(b.Sub(a), p.Sub(a)) > 0 && !OnSide(p, a, b)
}

// Outside reports whether p is strictly right of the directed edge a->b.
func Outside(p, a, b Point) bool {
	return cross(b.Sub(a), p.Sub(a)) < 0 && !OnSide(p, a, b)
}

// InsidePolygon reports whether p is strictly inside poly under CCW
// winding: p must be strictly inside every directed edge.
func InsidePolygon(p Point, poly Polygon) bool {
	s := poly[len(poly)-1]
	for _, e := range poly {
		if !Inside(p, s, e) {
			return false
		}
		s = e
	}
	return true
}

// OutsidePolygon reports whether p lies strictly outside poly, i.e. it
// is strictly outside at least one edge.
func OutsidePolygon(p Point, poly Polygon) bool {
	s := poly[len(poly)-1]
	for _, e := range poly {
		if Outside(p, s, e) {
			return true
		}
		s = e
	}
	return false
}

// SegmentsIntersect reports whether segment ab straddles segment cd and
// vice versa.
func SegmentsIntersect(a, b, c, d Point) bool {
	return Inside(a, c, d) == Outside(b, c, d) && Inside(c, a, b) == Outside(d, a, b)
}

// Simple reports whether poly has no two non-adjacent edges that
// intersect. Checked pairwise in O(n^2).
func Simple(poly Polygon) bool {
	n := len(poly)
	for i := 0; i < n; i++ {
		ip := (i + 1) % n
		for j := i + 2; j < n; j++ {
			jp := (j + 1) % n
			if jp == i {
				continue
			}
			if SegmentsIntersect(poly[i], poly[ip], poly[j], poly[jp]) {
				return false
			}
		}
	}
	return true
}

// Convex reports whether every triple of consecutive vertices
// (cyclically, including the wrap-around triples) makes a left turn.
func Convex(poly Polygon) bool {
	n := len(poly)
	if n < 3 {
		return false
	}
	for i := 0; i < n; i++ {
		prev := poly[(i-1+n)%n]
		cur := poly[i]
		post := poly[(i+1)%n]
		if !Inside(post, prev, cur) {
			return false
		}
	}
	return true
}

// SignedArea computes the shoelace signed area of poly. A CCW simple
// polygon has positive area.
func SignedArea(poly Polygon) float64 {
	if len(poly) < 3 {
		return 0
	}
	ret := 0.0
	s := poly[len(poly)-1]
	for _, e := range poly {
		ret += cross(s, e)
		s = e
	}
	return 0.5 * ret
}

// Intersects reports whether polygons a and b overlap, i.e. their
// Sutherland-Hodgman intersection (with b as clipper) is non-empty.
// b must be convex for this to be meaningful as a generic overlap
// test against an arbitrary clipper; callers that only need a coarse
// prefilter can pass any simple polygon as a since it is the clippee.
func Intersects(a, b Polygon) bool {
	out, err := Intersection(a, b)
	if err != nil {
		return false
	}
	return len(out) > 0
}
