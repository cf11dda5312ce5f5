package game

// BallView is the drawable part of a ball.
type BallView struct {
	ID       int         `json:"id"`
	Variant  BallVariant `json:"variant"`
	Position Vec2        `json:"position"`
	Radius   float64     `json:"radius"`
}

// CueView is what the renderer needs to draw the stick.
type CueView struct {
	Enabled   bool    `json:"enabled"`
	Target    Vec2    `json:"target"`
	Direction Vec2    `json:"direction"`
	Strength  float64 `json:"strength"`
	Offset    float64 `json:"offset"`
}

// Snapshot is a copy of everything a renderer reads. It shares no memory
// with the engine.
type Snapshot struct {
	Mode          string     `json:"mode"`
	Round         string     `json:"round"`
	Balls         []BallView `json:"balls"`
	Walls         []Wall     `json:"walls"`
	Pockets       []Pocket   `json:"pockets"`
	ScoredP1      []BallView `json:"scored_p1"`
	ScoredP2      []BallView `json:"scored_p2"`
	CurrentPlayer int        `json:"current_player"`
	Player1Group  BallGroup  `json:"player1_group,omitempty"`
	Player2Group  BallGroup  `json:"player2_group,omitempty"`
	Announcement  string     `json:"announcement"`
	Cue           CueView    `json:"cue"`
	Winner        int        `json:"winner,omitempty"`
	Clock         float64    `json:"clock"`
}

const (
	ModeEightBall = "eightball"
	ModeSandbox   = "sandbox"
)

func viewBalls(balls []*Ball) []BallView {
	views := make([]BallView, len(balls))
	for i, b := range balls {
		views[i] = BallView{ID: b.ID, Variant: b.Variant, Position: b.Position, Radius: b.Radius}
	}
	return views
}

func copyWalls(walls []Wall) []Wall {
	out := make([]Wall, len(walls))
	copy(out, walls)
	return out
}

func copyPockets(pockets []Pocket) []Pocket {
	out := make([]Pocket, len(pockets))
	copy(out, pockets)
	return out
}
