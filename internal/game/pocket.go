package game

import "fmt"

// Pocket is one of the six holes balls drop into.
type Pocket struct {
	ID       int     `json:"id"`
	Position Vec2    `json:"position"`
	Radius   float64 `json:"radius"`
}

func NewPocket(id int, position Vec2, radius float64) (Pocket, error) {
	if !(radius > 0) {
		return Pocket{}, fmt.Errorf("pocket %d: %w", id, ErrInvalidRadius)
	}
	return Pocket{ID: id, Position: position, Radius: radius}, nil
}

// IsBallCaptured reports whether the ball has dropped into the pocket: its
// centre is inside the opening and R + r - d < 2R*CaptureThreshold, so a
// ball that only grazes the rim stays on the table. That inequality fails
// near the centre, where the ball sits wholly over the opening, so the centre
// region (the ball fully inside, or its centre on the pocket centre) counts
// as captured too.
func (p Pocket) IsBallCaptured(b *Ball) bool {
	d := b.Position.DistanceTo(p.Position)
	if d >= p.Radius {
		return false
	}
	if d < geomEpsilon || d+b.Radius <= p.Radius {
		return true
	}
	return p.Radius+b.Radius-d < 2*p.Radius*CaptureThreshold
}
