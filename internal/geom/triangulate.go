package geom

import "fmt"

type vertexTag uint8

const (
	tagConvex vertexTag = iota
	tagReflex
	tagEarTip
)

// ringVertex is a node of the index-based mutable ring used during
// ear-clipping. Unlike a pointer-linked vertex list, neighbors are
// found by walking live (not-yet-removed) slots of a fixed-size slice,
// which keeps triangulation allocation-free beyond the initial ring.
type ringVertex struct {
	p     Point
	tag   vertexTag
	alive bool
}

// ring is the mutable ear-clipping working set: a slice of vertices
// plus next/prev lookups that skip removed slots.
type ring struct {
	vs []ringVertex
}

func (r *ring) next(i int) int {
	n := len(r.vs)
	for j := 1; j <= n; j++ {
		k := (i + j) % n
		if r.vs[k].alive {
			return k
		}
	}
	return i
}

func (r *ring) prev(i int) int {
	n := len(r.vs)
	for j := 1; j <= n; j++ {
		k := (i - j + n*2) % n
		if r.vs[k].alive {
			return k
		}
	}
	return i
}

func (r *ring) aliveCount() int {
	c := 0
	for _, v := range r.vs {
		if v.alive {
			c++
		}
	}
	return c
}

func isReflex(cur, pre, post Point) bool {
	return cross(cur.Sub(pre), post.Sub(pre)) < 0
}

// noReflexInside reports whether no REFLEX vertex of the ring, other
// than the triangle's own corners, lies inside or on the boundary of
// the candidate ear triangle (pre, cur, post).
func (r *ring) noReflexInside(pre, cur, post Point) bool {
	tri := Polygon{pre, cur, post}
	for _, v := range r.vs {
		if !v.alive || v.tag != tagReflex || v.p == pre || v.p == cur || v.p == post {
			continue
		}
		if !OutsidePolygon(v.p, tri) {
			return false
		}
	}
	return true
}

func (r *ring) updateReflex(i int) {
	pre := r.vs[r.prev(i)].p
	post := r.vs[r.next(i)].p
	cur := r.vs[i].p
	if isReflex(cur, pre, post) {
		r.vs[i].tag = tagReflex
	} else if r.vs[i].tag == tagReflex {
		r.vs[i].tag = tagConvex
	}
}

func (r *ring) updateEarTip(i int) {
	if r.vs[i].tag == tagReflex {
		return
	}
	pre := r.vs[r.prev(i)].p
	post := r.vs[r.next(i)].p
	cur := r.vs[i].p
	if r.noReflexInside(pre, cur, post) {
		r.vs[i].tag = tagEarTip
	} else {
		r.vs[i].tag = tagConvex
	}
}

func (r *ring) findEarTip() int {
	for i, v := range r.vs {
		if v.alive && v.tag == tagEarTip {
			return i
		}
	}
	return -1
}

// Triangulate decomposes a simple polygon into triangles by repeatedly
// removing an ear tip: a convex vertex whose triangle (prev, cur, next)
// contains no reflex vertex of the polygon. It errors if no ear tip can
// be found, which implies the input is not simple.
func Triangulate(poly Polygon) ([]Triangle, error) {
	if len(poly) < 3 {
		return nil, fmt.Errorf("%w: %v", ErrDegeneratePolygon, poly)
	}
	r := &ring{vs: make([]ringVertex, len(poly))}
	for i, p := range poly {
		r.vs[i] = ringVertex{p: p, alive: true}
	}
	for i := range r.vs {
		r.updateReflex(i)
	}
	for i := range r.vs {
		r.updateEarTip(i)
	}

	var triangles []Triangle
	for r.aliveCount() > 2 {
		tip := r.findEarTip()
		if tip < 0 {
			return triangles, fmt.Errorf("%w: %v", ErrTriangulationStuck, poly)
		}
		pre := r.prev(tip)
		post := r.next(tip)
		triangles = append(triangles, Triangle{r.vs[pre].p, r.vs[tip].p, r.vs[post].p})
		r.vs[tip].alive = false
		r.updateReflex(pre)
		r.updateReflex(post)
		r.updateEarTip(pre)
		r.updateEarTip(post)
	}
	return triangles, nil
}
