package game

import "time"

// Physics and table constants for the 8-ball table.
// Coordinates are canvas units; the renderer draws from the same values.

const (
	BallRadius = 20.0

	ResistanceMagnitude = 50.0 // friction-like braking force
	HaltSpeed           = 10.0 // below this the brake fades linearly to zero
	MovingEpsilon       = 1e-4 // velocity below this is not braked at all
	RestSpeed           = 0.01 // a ball at or below this speed counts as stopped

	WallAbsorption   = 0.1 // share of velocity lost on a cushion strike
	CaptureThreshold = 0.7 // share of the ball diameter that must be over the pocket

	CueStrengthMultiplier = 1000.0
	CueMaxOffset          = 200.0 // how far the stick is drawn back at full strength
	CueDefaultStrength    = 0.5
	CueScrollScale        = 100.0

	CornerPocketRadius = 40.0
	SidePocketRadius   = 35.0

	Player1 = 1
	Player2 = 2
)

// Announcement lifetimes.
const (
	ShortAnnouncement = 2 * time.Second
	LongAnnouncement  = 4 * time.Second
)

// PlayableArea is the cloth rectangle balls may be placed on: x, y, width, height.
var PlayableArea = [4]float64{180, 200, 1440, 640}

// WhiteStart is where the white ball is set before the first placement.
var WhiteStart = Vec2{X: 525, Y: 520}

// WallVertices are the six cushion polylines. Each consecutive vertex pair
// becomes one Wall collider, and the renderer fills the same polygons.
var WallVertices = [][]Vec2{
	// upper cushions
	{{190, 170}, {220, 200}, {850, 200}, {865, 170}},
	{{935, 170}, {950, 200}, {1580, 200}, {1610, 170}},

	// side cushions
	{{150, 210}, {180, 240}, {180, 800}, {150, 830}},
	{{1650, 210}, {1620, 240}, {1620, 800}, {1650, 830}},

	// lower cushions
	{{190, 870}, {220, 840}, {850, 840}, {865, 870}},
	{{935, 870}, {950, 840}, {1580, 840}, {1610, 870}},
}

// PocketLayout lists the six pockets as position + radius.
var PocketLayout = []struct {
	Position Vec2
	Radius   float64
}{
	{Vec2{150, 170}, CornerPocketRadius},
	{Vec2{900, 160}, SidePocketRadius},
	{Vec2{1650, 170}, CornerPocketRadius},
	{Vec2{150, 870}, CornerPocketRadius},
	{Vec2{900, 880}, SidePocketRadius},
	{Vec2{1650, 870}, CornerPocketRadius},
}

// RackLayout maps ball variants 1..15 to their starting triangle positions.
var RackLayout = map[BallVariant]Vec2{
	1: {1275, 520},

	2: {1310, 500},
	3: {1310, 540},

	4: {1345, 480},
	5: {1345, 520},
	6: {1345, 560},

	7:  {1380, 460},
	8:  {1380, 500},
	9:  {1380, 540},
	10: {1380, 580},

	11: {1415, 440},
	12: {1415, 480},
	13: {1415, 520},
	14: {1415, 560},
	15: {1415, 600},
}
