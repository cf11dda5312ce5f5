package game

import "testing"

func TestWallAxisFlags(t *testing.T) {
	v := NewWall(NewVec2(10, 0), NewVec2(10, 100))
	h := NewWall(NewVec2(0, 5), NewVec2(100, 5))
	d := NewWall(NewVec2(0, 0), NewVec2(100, 100))

	if !v.IsVertical() || v.IsHorizontal() {
		t.Errorf("vertical wall flags wrong")
	}
	if h.IsVertical() || !h.IsHorizontal() {
		t.Errorf("horizontal wall flags wrong")
	}
	if d.IsVertical() || d.IsHorizontal() {
		t.Errorf("diagonal wall flags wrong")
	}
}

func TestWallContains(t *testing.T) {
	d := NewWall(NewVec2(0, 0), NewVec2(100, 100))
	v := NewWall(NewVec2(10, 100), NewVec2(10, 0))

	cases := []struct {
		name string
		w    Wall
		p    Vec2
		want bool
	}{
		{"diagonal midpoint", d, Vec2{50, 50}, true},
		{"diagonal endpoint", d, Vec2{100, 100}, true},
		{"diagonal off line", d, Vec2{50, 50.1}, false},
		{"diagonal beyond end", d, Vec2{150, 150}, false},
		{"vertical inside", v, Vec2{10, 42}, true},
		{"vertical outside", v, Vec2{10, 101}, false},
		{"vertical beside", v, Vec2{11, 50}, false},
	}
	for _, tc := range cases {
		if got := tc.w.Contains(tc.p); got != tc.want {
			t.Errorf("%s: Contains(%v) = %v, want %v", tc.name, tc.p, got, tc.want)
		}
	}
}

func TestWallNormalTo(t *testing.T) {
	v := NewWall(NewVec2(10, 0), NewVec2(10, 100))
	if got := v.NormalTo(NewVec2(30, 5)); got != (Vec2{20, 0}) {
		t.Errorf("vertical NormalTo = %v", got)
	}

	h := NewWall(NewVec2(0, 100), NewVec2(200, 100))
	if got := h.NormalTo(NewVec2(50, 70)); got != (Vec2{0, -30}) {
		t.Errorf("horizontal NormalTo = %v", got)
	}

	d := NewWall(NewVec2(0, 0), NewVec2(100, 100))
	got := d.NormalTo(NewVec2(0, 100))
	if !approxVec(got, Vec2{-50, 50}, 1e-9) {
		t.Errorf("diagonal NormalTo = %v, want [-50, 50]", got)
	}
	if foot := d.FootOf(NewVec2(0, 100)); !d.Contains(foot) {
		t.Errorf("foot %v should lie on the wall", foot)
	}
}

func TestStandardTableWalls(t *testing.T) {
	table := NewStandardTable()
	if len(table.Walls) != 18 {
		t.Fatalf("expected 18 wall segments, got %d", len(table.Walls))
	}
	if len(table.Pockets) != 6 {
		t.Fatalf("expected 6 pockets, got %d", len(table.Pockets))
	}

	// colliders are built from the same vertices the renderer draws
	i := 0
	for _, line := range WallVertices {
		for j := 0; j < len(line)-1; j++ {
			w := table.Walls[i]
			if w.P1 != line[j] || w.P2 != line[j+1] {
				t.Errorf("wall %d = %v-%v, want %v-%v", i, w.P1, w.P2, line[j], line[j+1])
			}
			i++
		}
	}
}
