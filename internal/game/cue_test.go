package game

import "testing"

func newAimingCue() (*Cue, *Ball) {
	white := mustBall(0, VariantWhite, NewVec2(100, 100), BallRadius)
	c := NewCue(white.ID)
	c.Enabled = true
	c.AimPoint = NewVec2(200, 100)
	return c, white
}

func TestCueStrikeSendsBallAwayFromPointer(t *testing.T) {
	c, white := newAimingCue()

	if !c.Strike(white) {
		t.Fatalf("enabled cue did not strike")
	}
	want := Vec2{-CueDefaultStrength * CueStrengthMultiplier, 0}
	if !approxVec(white.Velocity, want, 1e-9) {
		t.Errorf("velocity = %v, want %v", white.Velocity, want)
	}
}

func TestCueIsInertWhenDisabledOrUntargeted(t *testing.T) {
	c, white := newAimingCue()
	c.Enabled = false
	if c.Strike(white) || !white.Velocity.IsZero() {
		t.Errorf("disabled cue struck the ball")
	}
	if d := c.DirectionFromTarget(white); !d.IsZero() {
		t.Errorf("disabled cue has direction %v", d)
	}

	c.Enabled = true
	c.TargetID = NoTarget
	if c.Strike(white) {
		t.Errorf("untargeted cue struck the ball")
	}
	if c.Strike(nil) {
		t.Errorf("cue struck a nil ball")
	}
}

func TestCueStrengthClamped(t *testing.T) {
	c := NewCue(0)
	c.AdjustStrength(25)
	if !approx(c.Strength, 0.25, 1e-12) {
		t.Errorf("strength = %f, want 0.25", c.Strength)
	}
	c.AdjustStrength(-1000)
	if c.Strength != 1 {
		t.Errorf("strength = %f, want 1", c.Strength)
	}
	c.AdjustStrength(1000)
	if c.Strength != 0 {
		t.Errorf("strength = %f, want 0", c.Strength)
	}
}

func TestCueStickOffset(t *testing.T) {
	c, white := newAimingCue()
	want := BallRadius + CueDefaultStrength*CueMaxOffset
	if got := c.StickOffset(white); got != want {
		t.Errorf("StickOffset = %f, want %f", got, want)
	}
}
