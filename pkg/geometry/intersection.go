package geometry

import "sort"

// Intersection records where along a ray an object was struck. Object
// is the sphere that produced the intersection; pointer identity is
// the object identity, and the pointer keeps the sphere alive for as
// long as the intersection list does.
type Intersection struct {
	T      float64
	Object *Sphere
}

// NewIntersection creates a new intersection
func NewIntersection(t float64, object *Sphere) Intersection {
	return Intersection{T: t, Object: object}
}

// Intersections is a collection of intersections kept sorted ascending
// by t at all times. The constructor re-sorts on every rebuild; lists
// are tiny (a handful of entries per ray), so sorting eagerly is
// cheaper than bookkeeping. Revisit if a multi-object scene ever makes
// these lists large or frequently modified.
type Intersections []Intersection

// NewIntersections creates a sorted collection from the given
// intersections
func NewIntersections(intersections ...Intersection) Intersections {
	xs := Intersections(intersections)
	sort.Slice(xs, func(i, j int) bool { return xs[i].T < xs[j].T })
	return xs
}

// Hit returns the intersection a viewer actually sees: the first one
// with t >= 0 in sorted order. The second return is false when every
// intersection is behind the ray origin or the collection is empty.
func (xs Intersections) Hit() (Intersection, bool) {
	for _, x := range xs {
		if x.T >= 0 {
			return x, true
		}
	}
	return Intersection{}, false
}
