package game

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrInvalidRadius = errors.New("radius must be positive")
	ErrInvalidMass   = errors.New("mass must be positive")
)

// BallVariant is a ball's number: 0 is the white ball, 8 is the black ball,
// 1-7 are solids and 9-15 are stripes.
type BallVariant int

const (
	VariantWhite BallVariant = 0
	VariantBlack BallVariant = 8
)

// IsSolid reports whether the variant is in 1..8. The black ball counts as
// solid here; callers that need to exclude it check IsBlack as well.
func (v BallVariant) IsSolid() bool   { return v >= 1 && v <= 8 }
func (v BallVariant) IsStriped() bool { return v >= 9 && v <= 15 }
func (v BallVariant) IsBlack() bool   { return v == VariantBlack }
func (v BallVariant) IsWhite() bool   { return !v.IsSolid() && !v.IsStriped() }

// BallGroup is the category of object balls a player is shooting at.
type BallGroup string

const (
	GroupSolids  BallGroup = "SOLIDS"
	GroupStripes BallGroup = "STRIPES"
)

// GroupOf returns the group the given player scores into.
// Player 1 collects solids, player 2 collects stripes.
func GroupOf(player int) BallGroup {
	if player == Player2 {
		return GroupStripes
	}
	return GroupSolids
}

// Ball is a single ball's physics state.
type Ball struct {
	ID           int         `json:"id"`
	Variant      BallVariant `json:"variant"`
	Position     Vec2        `json:"position"`
	Radius       float64     `json:"radius"`
	Mass         float64     `json:"mass"`
	Elasticity   float64     `json:"elasticity"` // 1 = perfectly elastic ball-ball impacts
	Resistance   float64     `json:"-"`
	Velocity     Vec2        `json:"velocity"`
	Acceleration Vec2        `json:"-"`
	PushForce    Vec2        `json:"-"`
}

// NewBall creates a ball with unit mass and full elasticity.
func NewBall(id int, variant BallVariant, position Vec2, radius float64) (*Ball, error) {
	return NewBallWithMass(id, variant, position, radius, 1)
}

// NewBallWithMass creates a ball with an explicit mass.
func NewBallWithMass(id int, variant BallVariant, position Vec2, radius, mass float64) (*Ball, error) {
	if !(radius > 0) {
		return nil, fmt.Errorf("ball %d: %w", id, ErrInvalidRadius)
	}
	if !(mass > 0) {
		return nil, fmt.Errorf("ball %d: %w", id, ErrInvalidMass)
	}
	return &Ball{
		ID:         id,
		Variant:    variant,
		Position:   position,
		Radius:     radius,
		Mass:       mass,
		Elasticity: 1,
		Resistance: ResistanceMagnitude,
	}, nil
}

// mustBall is for fixed table data only.
func mustBall(id int, variant BallVariant, position Vec2, radius float64) *Ball {
	b, err := NewBall(id, variant, position, radius)
	if err != nil {
		panic(err)
	}
	return b
}

// SetElasticity clamps e into [0, 1].
func (b *Ball) SetElasticity(e float64) {
	b.Elasticity = math.Min(math.Max(e, 0), 1)
}

func (b *Ball) ApplyPushForce(f Vec2) { b.PushForce = f }
func (b *Ball) ResetPushForce()       { b.PushForce = Vec2{} }

func (b *Ball) Momentum() Vec2 {
	return b.Velocity.Times(b.Mass)
}

func (b *Ball) KineticEnergy() float64 {
	s := b.Velocity.Magnitude()
	return b.Mass * s * s / 2
}

func (b *Ball) Speed() float64 {
	return b.Velocity.Magnitude()
}

// IsMoving reports whether the ball is faster than RestSpeed.
func (b *Ball) IsMoving() bool {
	return b.Speed() > RestSpeed
}

// ResistanceForce opposes the velocity. Below HaltSpeed its magnitude fades
// linearly to zero so the brake never flips the ball's direction within a step.
func (b *Ball) ResistanceForce() Vec2 {
	speed := b.Speed()
	magn := b.Resistance
	if speed < HaltSpeed {
		magn *= speed / HaltSpeed
	}
	return b.Velocity.Normalize().Times(-magn)
}

// Update integrates one step of dt seconds with semi-implicit Euler.
func (b *Ball) Update(dt float64) {
	res := b.ResistanceForce()

	var force Vec2
	switch {
	case b.PushForce.Magnitude() >= res.Magnitude():
		force = b.PushForce.Minus(res)
	case b.Speed() > MovingEpsilon:
		force = res
	}

	b.Acceleration = force.Times(1 / b.Mass)
	b.Velocity = b.Velocity.Plus(b.Acceleration.Times(dt))
	b.Position = b.Position.Plus(b.Velocity.Times(dt))
}

// ResolveCollision separates b and other when they overlap, moving each by
// half the penetration depth along the line between their centres. Velocities
// are untouched; call Impact afterwards.
func (b *Ball) ResolveCollision(other *Ball) bool {
	posDiff := other.Position.Minus(b.Position)
	overlap := b.Radius + other.Radius - posDiff.Magnitude()
	if overlap <= 0 {
		return false
	}

	axis := posDiff.Normalize()
	if axis.IsZero() {
		axis = Right
	}
	displacement := axis.Times(overlap / 2)
	b.Position = b.Position.Minus(displacement)
	other.Position = other.Position.Plus(displacement)
	return true
}

// ResolveWallCollision snaps b out of the wall so it rests exactly one radius
// away from the wall's line. Returns whether a correction was applied.
func (b *Ball) ResolveWallCollision(w Wall) bool {
	normal := w.NormalTo(b.Position)
	if normal.Magnitude() >= b.Radius {
		return false
	}

	foot := b.Position.Minus(normal)
	if !w.Contains(foot) &&
		b.Position.DistanceTo(w.P1) >= b.Radius &&
		b.Position.DistanceTo(w.P2) >= b.Radius {
		return false
	}

	dir := normal.Normalize()
	if dir.IsZero() {
		// centre exactly on the line: push back against the motion
		dir = w.Direction().LeftNormal()
		if dir.Dot(b.Velocity) > 0 {
			dir = dir.Invert()
		}
	}
	b.Position = foot.Plus(dir.Times(b.Radius))
	return true
}

// Impact exchanges momentum along the line joining the centres using the
// one-dimensional collision formula. Only the closing component of each
// ball's velocity takes part; the perpendicular parts are kept as they are.
func (b *Ball) Impact(other *Ball) {
	dir := other.Position.Minus(b.Position).Normalize()
	if dir.IsZero() {
		return
	}

	v1 := closingVelocity(b.Velocity, dir)
	v2 := closingVelocity(other.Velocity, dir.Invert())
	if v1.IsZero() && v2.IsZero() {
		return
	}

	m1, m2 := b.Mass, other.Mass
	total := m1 + m2
	e := b.Elasticity * other.Elasticity
	p := v1.Times(m1).Plus(v2.Times(m2))

	b1 := p.Plus(v2.Minus(v1).Times(m2 * e)).Times(1 / total)
	b2 := p.Plus(v1.Minus(v2).Times(m1 * e)).Times(1 / total)

	b.Velocity = b.Velocity.Minus(v1).Plus(b1)
	other.Velocity = other.Velocity.Minus(v2).Plus(b2)
}

// closingVelocity is the part of v heading along dir, or zero when v points away.
func closingVelocity(v, dir Vec2) Vec2 {
	d := v.Dot(dir)
	if d <= 0 {
		return Vec2{}
	}
	return dir.Times(d)
}

// ImpactWall mirrors the velocity about the wall normal and dissipates
// WallAbsorption of it. A ball already moving away from the wall is left
// alone on purpose: reflecting it would turn it back into the cushion it
// was just pushed out of. Approaching balls always get the full reflection.
func (b *Ball) ImpactWall(w Wall) {
	normal := w.NormalTo(b.Position)
	if normal.IsZero() || b.Velocity.Dot(normal) >= 0 {
		return
	}
	b.Velocity = b.Velocity.Reflect(normal).Times(1 - WallAbsorption)
}

// ResolveAgainst lets a Ball act as a Collider for another ball.
func (b *Ball) ResolveAgainst(other *Ball) bool {
	return other.ResolveCollision(b)
}

// ImpactFrom lets a Ball act as a Collider for another ball.
func (b *Ball) ImpactFrom(other *Ball) {
	other.Impact(b)
}

// Collider is anything a ball can bump into: another Ball or a Wall.
type Collider interface {
	ResolveAgainst(b *Ball) bool
	ImpactFrom(b *Ball)
}

// Collide resolves overlap with c and, if there was any, applies the impact.
func (b *Ball) Collide(c Collider) bool {
	if !c.ResolveAgainst(b) {
		return false
	}
	c.ImpactFrom(b)
	return true
}
