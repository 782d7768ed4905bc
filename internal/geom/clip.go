package geom

import "fmt"

// LineIntersection solves for the intersection of the infinite lines
// through a-b and c-d using the cross-product form. It errors on
// parallel (including collinear) lines.
func LineIntersection(a, b, c, d Point) (Point, error) {
	denominator := cross(a, c) + cross(b, d) + cross(c, b) + cross(d, a)
	if denominator == 0 {
		return Point{}, fmt.Errorf("%w: segments %v-%v and %v-%v", ErrParallelLines, a, b, c, d)
	}
	numerator1 := cross(a, b)
	numerator2 := cross(c, d)
	return Point{
		X: (numerator1*(c.X-d.X) - numerator2*(a.X-b.X)) / denominator,
		Y: (numerator1*(c.Y-d.Y) - numerator2*(a.Y-b.Y)) / denominator,
	}, nil
}

// Intersection clips clippee against the convex clipper using
// Sutherland-Hodgman, iterating the clipper edge by edge. A clippee
// vertex lying on a clipper edge counts as inside that edge. It errors
// if clipper fails the Convex test.
func Intersection(clippee, clipper Polygon) (Polygon, error) {
	if !Convex(clipper) {
		return nil, fmt.Errorf("%w: %v", ErrNonConvexClipper, clipper)
	}
	if len(clippee) == 0 {
		return nil, nil
	}

	output := clippee
	s2 := clipper[len(clipper)-1]
	for _, e2 := range clipper {
		input := output
		output = nil
		if len(input) == 0 {
			s2 = e2
			continue
		}
		s1 := input[len(input)-1]
		for _, e1 := range input {
			switch {
			case !Outside(e1, s2, e2):
				if Outside(s1, s2, e2) && Inside(e1, s2, e2) {
					p, err := LineIntersection(s1, e1, s2, e2)
					if err != nil {
						return nil, err
					}
					output = append(output, p)
				}
				output = append(output, e1)
			case Outside(e1, s2, e2) && Inside(s1, s2, e2):
				p, err := LineIntersection(s1, e1, s2, e2)
				if err != nil {
					return nil, err
				}
				output = append(output, p)
			}
			s1 = e1
		}
		s2 = e2
	}
	return output, nil
}

// Difference computes clippee minus clipper and returns the remaining
// offcuts. It errors if clipper fails the Convex test.
//
// Each offcut is collected per clipper edge from the points where
// clippee crosses outward plus the vertices already outside that
// edge. An offcut that is not itself convex is silently dropped: a
// convex clipper can still produce a non-convex offcut when it cuts
// across a concavity of the clippee, and this under-approximates by
// discarding those rather than splitting them further. If clippee
// never intersects clipper at all, the difference is clippee itself.
func Difference(clippee, clipper Polygon) ([]Polygon, error) {
	if !Convex(clipper) {
		return nil, fmt.Errorf("%w: %v", ErrNonConvexClipper, clipper)
	}
	if len(clippee) == 0 {
		return nil, nil
	}

	var ret []Polygon
	output := clippee
	s2 := clipper[len(clipper)-1]
	for _, e2 := range clipper {
		var offcut Polygon
		input := output
		output = nil
		if len(input) == 0 {
			s2 = e2
			continue
		}
		s1 := input[len(input)-1]
		for _, e1 := range input {
			if Inside(e1, s2, e2) {
				if !Inside(s1, s2, e2) {
					p, err := LineIntersection(s1, e1, s2, e2)
					if err != nil {
						return nil, err
					}
					output = append(output, p)
					offcut = append(offcut, p)
				}
				output = append(output, e1)
			} else {
				if Inside(s1, s2, e2) {
					p, err := LineIntersection(s1, e1, s2, e2)
					if err != nil {
						return nil, err
					}
					output = append(output, p)
					offcut = append(offcut, p)
				}
				offcut = append(offcut, e1)
			}
			s1 = e1
		}
		s2 = e2
		if len(offcut) > 0 && Convex(offcut) {
			ret = append(ret, offcut)
		}
	}
	if len(output) == 0 {
		// clippee never crossed clipper's boundary: no intersection,
		// so the difference is clippee in its entirety.
		return []Polygon{clippee}, nil
	}
	return ret, nil
}
