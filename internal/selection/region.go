// Package selection implements rubber-band (marquee) selection
// geometry. It only computes which item boxes a drag rectangle
// covers; ownership of the selection set stays with the caller.
package selection

// Point is a position in container-local coordinates.
type Point struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle with (X, Y) at the top-left.
type Rect struct {
	X, Y, W, H float64
}

// Intersects reports whether two rectangles overlap, counting
// touching edges as overlap (closed-interval semantics).
func (r Rect) Intersects(o Rect) bool {
	return r.X <= o.X+o.W && o.X <= r.X+r.W &&
		r.Y <= o.Y+o.H && o.Y <= r.Y+r.H
}

// Region tracks one drag gesture from press to release.
type Region struct {
	origin   Point
	current  Point
	active   bool
	additive bool
}

// Begin starts a drag at p. The additive flag is captured here, once
// per gesture, and not re-evaluated on later moves.
func (r *Region) Begin(p Point, additive bool) {
	r.origin = p
	r.current = p
	r.active = true
	r.additive = additive
}

// Update moves the drag to p and returns the current rectangle.
func (r *Region) Update(p Point) Rect {
	r.current = p
	return r.Rect()
}

// End finishes the gesture and returns the final rectangle.
func (r *Region) End() Rect {
	rect := r.Rect()
	r.active = false
	return rect
}

// Active reports whether a drag is in progress.
func (r *Region) Active() bool {
	return r.active
}

// Additive reports the modifier captured at Begin.
func (r *Region) Additive() bool {
	return r.additive
}

// Rect returns the drag rectangle normalized so that (X, Y) is the
// top-left corner regardless of drag direction.
func (r *Region) Rect() Rect {
	x0, x1 := r.origin.X, r.current.X
	if x1 < x0 {
		x0, x1 = x1, x0
	}
	y0, y1 := r.origin.Y, r.current.Y
	if y1 < y0 {
		y0, y1 = y1, y0
	}
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// Covered returns the keys of all item boxes intersecting rect.
func Covered(rect Rect, boxes map[string]Rect) []string {
	var keys []string
	for key, box := range boxes {
		if rect.Intersects(box) {
			keys = append(keys, key)
		}
	}
	return keys
}

// Resolve combines a prior selection with the covered keys: a union
// when the gesture is additive, a replacement otherwise.
func Resolve(prior map[string]struct{}, covered []string, additive bool) map[string]struct{} {
	next := make(map[string]struct{}, len(covered))
	if additive {
		for key := range prior {
			next[key] = struct{}{}
		}
	}
	for _, key := range covered {
		next[key] = struct{}{}
	}
	return next
}
