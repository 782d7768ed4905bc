// Package grid discretizes polygons into axis-aligned grid cells.
//
// A Discretizer is stateless once its cell edge length Delta is bound,
// so a single value is safely shared across AOIs and scenes within one
// query. Cell identity is the (I, J) pair alone — Delta is not part of
// Cell so that two cells produced by discretizations at the same Delta
// compare equal regardless of which polygon produced them.
package grid

import (
	"fmt"
	"math"

	"github.com/aoicover/selector/internal/geom"
)

// Cell is an integer grid-cell identifier. Its geometric footprint at
// edge length delta is the axis-aligned square
// [I*delta, (I+1)*delta] x [J*delta, (J+1)*delta].
type Cell struct {
	I, J int
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d, %d)", c.I, c.J)
}

// CellSet is a set of grid cells.
type CellSet map[Cell]struct{}

// NewCellSet builds a CellSet from the given cells.
func NewCellSet(cells ...Cell) CellSet {
	s := make(CellSet, len(cells))
	for _, c := range cells {
		s[c] = struct{}{}
	}
	return s
}

// Clone returns an independent copy of s.
func (s CellSet) Clone() CellSet {
	out := make(CellSet, len(s))
	for c := range s {
		out[c] = struct{}{}
	}
	return out
}

// Subtract removes every cell in other from s in place.
func (s CellSet) Subtract(other CellSet) {
	for c := range other {
		delete(s, c)
	}
}

// Intersect returns the set intersection of s and other.
func (s CellSet) Intersect(other CellSet) CellSet {
	small, big := s, other
	if len(big) < len(small) {
		small, big = big, small
	}
	out := make(CellSet, len(small))
	for c := range small {
		if _, ok := big[c]; ok {
			out[c] = struct{}{}
		}
	}
	return out
}

// Slice returns the cells of s as a slice, in unspecified order.
func (s CellSet) Slice() []Cell {
	out := make([]Cell, 0, len(s))
	for c := range s {
		out = append(out, c)
	}
	return out
}

// Discretizer maps polygons to grid-cell identifiers at a fixed cell
// edge length.
type Discretizer struct {
	Delta float64
}

// cellAt returns the (i, j) cell containing point p.
func (d Discretizer) cellAt(p geom.Point) Cell {
	return Cell{
		I: int(math.Floor(p.X / d.Delta)),
		J: int(math.Floor(p.Y / d.Delta)),
	}
}

// cellPolygon returns the square footprint of cell c as a CCW Polygon.
func (d Discretizer) cellPolygon(c Cell) geom.Polygon {
	x0, y0 := float64(c.I)*d.Delta, float64(c.J)*d.Delta
	x1, y1 := x0+d.Delta, y0+d.Delta
	return geom.Polygon{{X: x0, Y: y0}, {X: x1, Y: y0}, {X: x1, Y: y1}, {X: x0, Y: y1}}
}

// BoundingBox returns the axis-aligned integer-lattice-aligned
// bounding box of poly at this Discretizer's granularity: the minimal
// and maximal cell indices, with min inclusive and max exclusive of
// the cell range that covers poly's extent.
//
// The bbox min/max are explicitly seeded from poly's first vertex
// before the scan, so a polygon entirely in the negative quadrant
// still produces a correct bounding box.
func (d Discretizer) BoundingBox(poly geom.Polygon) (minCell, maxCell Cell) {
	if len(poly) == 0 {
		return Cell{}, Cell{}
	}
	minX, minY := poly[0].X, poly[0].Y
	maxX, maxY := poly[0].X, poly[0].Y
	for _, v := range poly[1:] {
		minX = math.Min(minX, v.X)
		minY = math.Min(minY, v.Y)
		maxX = math.Max(maxX, v.X)
		maxY = math.Max(maxY, v.Y)
	}
	minCell = Cell{I: int(math.Floor(minX / d.Delta)), J: int(math.Floor(minY / d.Delta))}
	maxCell = Cell{I: int(math.Ceil(maxX / d.Delta)), J: int(math.Ceil(maxY / d.Delta))}
	return minCell, maxCell
}

// BoundingBoxPolygon returns the bounding box of poly as a CCW
// rectangle polygon, suitable for use as a Sutherland-Hodgman clipper.
func (d Discretizer) BoundingBoxPolygon(poly geom.Polygon) geom.Polygon {
	minCell, maxCell := d.BoundingBox(poly)
	x0, y0 := float64(minCell.I)*d.Delta, float64(minCell.J)*d.Delta
	x1, y1 := float64(maxCell.I)*d.Delta, float64(maxCell.J)*d.Delta
	return geom.Polygon{{X: x0, Y: y0}, {X: x1, Y: y0}, {X: x1, Y: y1}, {X: x0, Y: y1}}
}

// Discretize decomposes poly into a CellSet at this Discretizer's
// Delta.
//
// In inclusive mode (used for the AOI) any cell whose square
// intersects poly's interior is included. In exclusive mode (used to
// decompose scenes against the AOI's bbox) only cells fully contained
// in poly are retained.
func (d Discretizer) Discretize(poly geom.Polygon, inclusive bool) CellSet {
	if len(poly) == 0 {
		return CellSet{}
	}
	minCell, maxCell := d.BoundingBox(poly)
	out := CellSet{}
	for i := minCell.I; i < maxCell.I; i++ {
		for j := minCell.J; j < maxCell.J; j++ {
			c := Cell{I: i, J: j}
			if d.cellQualifies(c, poly, inclusive) {
				out[c] = struct{}{}
			}
		}
	}
	return out
}

// cellContainmentTolerance bounds the floating-point slack allowed
// when comparing a cell's area against its intersection with poly to
// decide full containment in exclusive mode, and the area an inclusive
// overlap must exceed to count as touching poly's interior.
const cellContainmentTolerance = 1e-9

func (d Discretizer) cellQualifies(c Cell, poly geom.Polygon, inclusive bool) bool {
	square := d.cellPolygon(c)
	inter, err := geom.Intersection(poly, square)
	if err != nil {
		return false
	}
	if inclusive {
		return geom.SignedArea(inter) > cellContainmentTolerance
	}
	// Exclusive mode needs exact containment, not a corner sample: a
	// cell a scene exactly tiles has all four corners sitting on the
	// scene's boundary, which a strict point-in-polygon test on the
	// corners alone would reject, and a concave poly can enclose every
	// corner of a cell while still not covering its interior. Comparing
	// areas of the cell-poly intersection against the cell itself
	// handles both: it's exact regardless of where poly's edges fall
	// relative to the cell's corners, and poly need not be convex since
	// only square (the Sutherland-Hodgman clipper here) must be.
	return len(inter) > 0 && math.Abs(geom.SignedArea(inter)-d.Delta*d.Delta) <= cellContainmentTolerance
}
