package game

import (
	"fmt"
	"math"
)

// Vec2 is an immutable 2D vector. All methods return new values.
type Vec2 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Direction constants in screen space (y grows downwards).
var (
	Zero  = Vec2{}
	Up    = Vec2{X: 0, Y: -1}
	Down  = Vec2{X: 0, Y: 1}
	Left  = Vec2{X: -1, Y: 0}
	Right = Vec2{X: 1, Y: 0}
)

func NewVec2(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

func (v Vec2) Plus(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

func (v Vec2) Minus(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

func (v Vec2) Times(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

func (v Vec2) Dot(o Vec2) float64 {
	return v.X*o.X + v.Y*o.Y
}

func (v Vec2) Magnitude() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// Normalize returns the unit vector in the direction of v, or the zero vector
// when v has no length (or the division would yield NaN).
func (v Vec2) Normalize() Vec2 {
	m := v.Magnitude()
	if m == 0 {
		return Vec2{}
	}
	n := Vec2{X: v.X / m, Y: v.Y / m}
	if math.IsNaN(n.X) || math.IsNaN(n.Y) {
		return Vec2{}
	}
	return n
}

func (v Vec2) Invert() Vec2 {
	return Vec2{X: -v.X, Y: -v.Y}
}

// Reflect mirrors v about the surface whose normal is passed in.
// The normal does not need to be a unit vector.
func (v Vec2) Reflect(normal Vec2) Vec2 {
	n := normal.Normalize()
	return v.Minus(n.Times(2 * n.Dot(v)))
}

// LeftNormal returns v rotated by 90 degrees counter-clockwise.
func (v Vec2) LeftNormal() Vec2 {
	return Vec2{X: -v.Y, Y: v.X}
}

func (v Vec2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// DistanceTo returns the euclidean distance between v and o.
func (v Vec2) DistanceTo(o Vec2) float64 {
	return v.Minus(o).Magnitude()
}

func (v Vec2) String() string {
	return fmt.Sprintf("[%.4f, %.4f]", v.X, v.Y)
}
