// Package geom is a self-contained 2D computational-geometry kernel.
//
// It operates on plain double-precision Cartesian coordinates with no
// geodesic correction (see the module's Non-goals). Polygons are
// assumed simple, counter-clockwise, and with at least three vertices;
// callers that need to check those assumptions should use Simple and
// Convex before relying on them.
package geom

import (
	"fmt"
	"strconv"
	"strings"
)

// Point is an immutable 2D point.
type Point struct {
	X, Y float64
}

// Sub returns p - q.
func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

// Add returns p + q.
func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

func (p Point) String() string {
	return fmt.Sprintf("[%v, %v]", p.X, p.Y)
}

// Polygon is an ordered, counter-clockwise sequence of vertices with no
// repeated closing vertex. The edge from the last vertex back to the
// first is implicit.
type Polygon []Point

// Triangle is a Polygon with exactly three vertices, CCW.
type Triangle [3]Point

// ToPolygon returns t as a 3-vertex Polygon.
func (t Triangle) ToPolygon() Polygon {
	return Polygon{t[0], t[1], t[2]}
}

func (poly Polygon) String() string {
	if len(poly) == 0 {
		return "[]"
	}
	var sb strings.Builder
	sb.WriteByte('[')
	for i, p := range poly {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(p.String())
	}
	sb.WriteByte(']')
	return sb.String()
}

// ParsePolygon parses the bracketed-list polygon grammar:
//
//	polygon := '[' point (',' point)* ']'
//	point   := '[' number ',' number ']'
//
// Whitespace is ignored; the parser is strict about brackets.
func ParsePolygon(s string) (Polygon, error) {
	i := 0
	skipSpace := func() {
		for i < len(s) && (s[i] == ' ' || s[i] == '\t' || s[i] == '\n' || s[i] == '\r') {
			i++
		}
	}
	expect := func(c byte) error {
		skipSpace()
		if i >= len(s) || s[i] != c {
			return fmt.Errorf("%w: expected %q at offset %d in %q", ErrMalformedPolygon, c, i, s)
		}
		i++
		return nil
	}
	readNumber := func() (float64, error) {
		skipSpace()
		start := i
		if i < len(s) && s[i] == '-' {
			i++
		}
		for i < len(s) && (s[i] >= '0' && s[i] <= '9' || s[i] == '.') {
			i++
		}
		if start == i {
			return 0, fmt.Errorf("%w: expected number at offset %d in %q", ErrMalformedPolygon, start, s)
		}
		v, err := strconv.ParseFloat(s[start:i], 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %v", ErrMalformedPolygon, err)
		}
		return v, nil
	}

	if err := expect('['); err != nil {
		return nil, err
	}
	var poly Polygon
	skipSpace()
	if i < len(s) && s[i] == ']' {
		i++
		return poly, nil
	}
	for {
		if err := expect('['); err != nil {
			return nil, err
		}
		x, err := readNumber()
		if err != nil {
			return nil, err
		}
		if err := expect(','); err != nil {
			return nil, err
		}
		y, err := readNumber()
		if err != nil {
			return nil, err
		}
		if err := expect(']'); err != nil {
			return nil, err
		}
		poly = append(poly, Point{x, y})

		skipSpace()
		if i < len(s) && s[i] == ',' {
			i++
			continue
		}
		break
	}
	if err := expect(']'); err != nil {
		return nil, err
	}
	return poly, nil
}
