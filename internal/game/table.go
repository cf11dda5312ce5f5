package game

// Table holds the fixed collision geometry. It is built once and never mutated.
type Table struct {
	Walls   []Wall
	Pockets []Pocket
}

// NewStandardTable builds the walls from WallVertices and the six pockets.
func NewStandardTable() *Table {
	return &Table{
		Walls:   wallsFromPolylines(WallVertices),
		Pockets: standardPockets(),
	}
}

func wallsFromPolylines(polylines [][]Vec2) []Wall {
	walls := make([]Wall, 0, 3*len(polylines))
	for _, line := range polylines {
		for i := 0; i < len(line)-1; i++ {
			walls = append(walls, NewWall(line[i], line[i+1]))
		}
	}
	return walls
}

func standardPockets() []Pocket {
	pockets := make([]Pocket, len(PocketLayout))
	for i, p := range PocketLayout {
		pocket, err := NewPocket(i, p.Position, p.Radius)
		if err != nil {
			panic(err)
		}
		pockets[i] = pocket
	}
	return pockets
}

// StandardRack returns the white ball followed by balls 1..15 in their
// triangle. Ball IDs equal their variant numbers.
func StandardRack() []*Ball {
	balls := make([]*Ball, 0, 16)
	balls = append(balls, mustBall(0, VariantWhite, WhiteStart, BallRadius))
	for v := BallVariant(1); v <= 15; v++ {
		balls = append(balls, mustBall(int(v), v, RackLayout[v], BallRadius))
	}
	return balls
}

// placementBounds returns the rectangle the white ball's centre may occupy.
// A constrained placement is limited to the kitchen, the left quarter of the
// cloth.
func placementBounds(constrained bool) (minX, minY, maxX, maxY float64) {
	x, y, w, h := PlayableArea[0], PlayableArea[1], PlayableArea[2], PlayableArea[3]
	minX = x + BallRadius
	minY = y + BallRadius
	maxY = y + h - BallRadius
	if constrained {
		maxX = x + w/4 - BallRadius
	} else {
		maxX = x + w - BallRadius
	}
	return minX, minY, maxX, maxY
}

// ClampPlacement clamps p into the placement rectangle.
func ClampPlacement(p Vec2, constrained bool) Vec2 {
	minX, minY, maxX, maxY := placementBounds(constrained)
	return Vec2{X: clamp(p.X, minX, maxX), Y: clamp(p.Y, minY, maxY)}
}
