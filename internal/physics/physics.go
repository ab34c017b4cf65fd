// Package physics provides axis-aligned collision detection.
package physics

import "github.com/go-gl/mathgl/mgl64"

// Rect is an axis-aligned rectangle. X, Y is the top-left corner.
type Rect struct {
	X, Y float64
	W, H float64
}

// RectAround returns the rectangle of the given size centered on pos.
func RectAround(pos mgl64.Vec2, w, h float64) Rect {
	return Rect{X: pos.X() - w/2, Y: pos.Y() - h/2, W: w, H: h}
}

// Intersects reports whether r and o overlap with positive area.
// Rectangles that only share an edge do not intersect.
func (r Rect) Intersects(o Rect) bool {
	return r.X < o.X+o.W && o.X < r.X+r.W &&
		r.Y < o.Y+o.H && o.Y < r.Y+r.H
}

// Contains reports whether the point lies inside r (edges inclusive).
func (r Rect) Contains(p mgl64.Vec2) bool {
	return p.X() >= r.X && p.X() <= r.X+r.W &&
		p.Y() >= r.Y && p.Y() <= r.Y+r.H
}

// Grow returns r expanded by margin on every side.
func (r Rect) Grow(margin float64) Rect {
	return Rect{X: r.X - margin, Y: r.Y - margin, W: r.W + 2*margin, H: r.H + 2*margin}
}

// MoveToward returns the point reached by moving from toward target by at most step.
// It never overshoots the target.
func MoveToward(from, target mgl64.Vec2, step float64) mgl64.Vec2 {
	dir := target.Sub(from)
	dist := dir.Len()
	if dist == 0 || step <= 0 {
		return from
	}
	if step >= dist {
		return target
	}
	return from.Add(dir.Mul(step / dist))
}
