package game

import "math"

// NoTarget marks a cue without an assigned ball.
const NoTarget = -1

// Cue is the stick used to strike the white ball. It refers to its target by
// ball ID only; the owner looks the ball up when it needs a position.
type Cue struct {
	TargetID int     `json:"target_id"`
	Enabled  bool    `json:"enabled"`
	AimPoint Vec2    `json:"aim_point"`
	Strength float64 `json:"strength"` // in [0, 1]
}

func NewCue(targetID int) *Cue {
	return &Cue{TargetID: targetID, Strength: CueDefaultStrength}
}

// AdjustStrength applies a scroll delta. Scrolling down (positive delta)
// weakens the shot.
func (c *Cue) AdjustStrength(delta float64) {
	c.Strength = clamp(c.Strength-delta/CueScrollScale, 0, 1)
}

// HitStrength is the speed the target will receive.
func (c *Cue) HitStrength() float64 {
	return c.Strength * CueStrengthMultiplier
}

func (c *Cue) active(target *Ball) bool {
	return c.Enabled && target != nil && target.ID == c.TargetID
}

// DirectionFromTarget is the unit vector pointing from the target towards the
// aim point. It is zero while the cue is inert.
func (c *Cue) DirectionFromTarget(target *Ball) Vec2 {
	if !c.active(target) {
		return Vec2{}
	}
	return c.AimPoint.Minus(target.Position).Normalize()
}

// StickOffset is how far from the target's centre the tip of the stick sits.
func (c *Cue) StickOffset(target *Ball) float64 {
	if !c.active(target) {
		return 0
	}
	return target.Radius + c.Strength*CueMaxOffset
}

// Strike sends the target away from the aim point. It reports whether a
// strike happened, which the round machine consumes as a cue-struck event.
func (c *Cue) Strike(target *Ball) bool {
	if !c.active(target) {
		return false
	}
	target.Velocity = c.DirectionFromTarget(target).Invert().Times(c.HitStrength())
	return true
}

func clamp(x, lo, hi float64) float64 {
	return math.Min(math.Max(x, lo), hi)
}
