package game

import "math"

// geomEpsilon is the tolerance used for axis-alignment and on-line checks.
const geomEpsilon = 1e-5

// Wall is an immutable line segment bounding the playfield.
// The slope/intercept form of the infinite line through the segment is
// precomputed; axis-aligned walls are flagged so the slope is never used.
type Wall struct {
	P1 Vec2 `json:"p1"`
	P2 Vec2 `json:"p2"`

	a, b       float64
	vertical   bool
	horizontal bool
}

// NewWall builds a wall from its two endpoints.
func NewWall(p1, p2 Vec2) Wall {
	w := Wall{
		P1:         p1,
		P2:         p2,
		vertical:   math.Abs(p1.X-p2.X) < geomEpsilon,
		horizontal: math.Abs(p1.Y-p2.Y) < geomEpsilon,
	}
	if !w.vertical {
		w.a = (p1.Y - p2.Y) / (p1.X - p2.X)
		w.b = p1.Y - w.a*p1.X
	}
	return w
}

func (w Wall) IsVertical() bool   { return w.vertical }
func (w Wall) IsHorizontal() bool { return w.horizontal }

// Contains reports whether p lies on the segment.
func (w Wall) Contains(p Vec2) bool {
	if !inRange(p.X, w.P1.X, w.P2.X) || !inRange(p.Y, w.P1.Y, w.P2.Y) {
		return false
	}
	if w.vertical || w.horizontal {
		return true
	}
	return math.Abs(w.a*p.X+w.b-p.Y) < geomEpsilon
}

// NormalTo returns the non-unit vector from the foot of the perpendicular
// dropped from p0 onto the infinite line through the wall, to p0 itself.
func (w Wall) NormalTo(p0 Vec2) Vec2 {
	if w.vertical {
		return Vec2{X: p0.X - w.P1.X}
	}
	if w.horizontal {
		return Vec2{Y: p0.Y - w.P1.Y}
	}

	// perpendicular through p0: y = a0*x + b0
	a0 := -1 / w.a
	b0 := p0.Y + p0.X/w.a

	x := (b0 - w.b) / (w.a - a0)
	y := a0*x + b0
	return p0.Minus(Vec2{X: x, Y: y})
}

// FootOf returns the point on the infinite line closest to p0.
func (w Wall) FootOf(p0 Vec2) Vec2 {
	return p0.Minus(w.NormalTo(p0))
}

// Direction is the unit vector from P1 to P2.
func (w Wall) Direction() Vec2 {
	return w.P2.Minus(w.P1).Normalize()
}

// ResolveAgainst pushes b out of the wall. It reports whether a correction
// was made.
func (w Wall) ResolveAgainst(b *Ball) bool {
	return b.ResolveWallCollision(w)
}

// ImpactFrom bounces b off the wall.
func (w Wall) ImpactFrom(b *Ball) {
	b.ImpactWall(w)
}

func inRange(x, n1, n2 float64) bool {
	if n1 < n2 {
		return n1 <= x && x <= n2
	}
	return n2 <= x && x <= n1
}
