package tile

import "testing"

func TestTilesOnLineHorizontal(t *testing.T) {
	m := testMap()
	points := m.TilesOnLine(0, 3, 4, 3)
	if len(points) != 5 {
		t.Fatalf("expected 5 points, got %d: %v", len(points), points)
	}
	for i, p := range points {
		if p[0] != i || p[1] != 3 {
			t.Errorf("point %d = %v, expected [%d 3]", i, p, i)
		}
	}
}

func TestTilesOnLineSteep(t *testing.T) {
	m := testMap()
	points := m.TilesOnLine(2, 0, 3, 8)
	if points[0] != [2]int{2, 0} {
		t.Errorf("line must start at its origin, got %v", points[0])
	}
	if points[len(points)-1] != [2]int{3, 8} {
		t.Errorf("line must end at its target, got %v", points[len(points)-1])
	}
	// One point per y step plus the origin.
	if len(points) != 9 {
		t.Errorf("expected 9 points, got %d", len(points))
	}
}

func TestTilesOnLineNegativeDirection(t *testing.T) {
	m := testMap()
	points := m.TilesOnLine(5, 5, 1, 5)
	if points[len(points)-1] != [2]int{1, 5} {
		t.Errorf("leftward line must end at target, got %v", points[len(points)-1])
	}
}

func TestTilesOnRadiusBounds(t *testing.T) {
	m := testMap()

	// Circle centred at the corner: most of it falls off-map.
	points := m.TilesOnRadius(0, 0, 4)
	for _, p := range points {
		if p[0] < 0 || p[1] < 0 || p[0] >= m.Width() || p[1] >= m.Height() {
			t.Errorf("out-of-bounds point %v", p)
		}
	}
	if len(points) == 0 {
		t.Error("expected some in-bounds ring points")
	}
}

func TestTilesOnRadiusRing(t *testing.T) {
	m := testMap()
	points := m.TilesOnRadius(8, 8, 3)
	for _, p := range points {
		dx := p[0] - 8
		dy := p[1] - 8
		d2 := dx*dx + dy*dy
		// Midpoint circle stays within one unit of the ideal radius.
		if d2 < 2*2 || d2 > 4*4 {
			t.Errorf("ring point %v at squared distance %d", p, d2)
		}
	}
}

func TestTilesInRadius(t *testing.T) {
	m := testMap()
	points := m.TilesInRadius(8, 8, 2)

	seen := make(map[[2]int]bool, len(points))
	for _, p := range points {
		seen[p] = true
		dx := p[0] - 8
		dy := p[1] - 8
		if dx*dx+dy*dy > 4 {
			t.Errorf("disc point %v outside radius", p)
		}
	}
	if !seen[[2]int{8, 8}] {
		t.Error("disc must contain its centre")
	}
	if !seen[[2]int{8, 6}] || !seen[[2]int{10, 8}] {
		t.Error("disc missing cardinal extremes")
	}
	if seen[[2]int{10, 10}] {
		t.Error("disc contains corner outside radius")
	}
}

func TestTilesInRadiusClipped(t *testing.T) {
	m := testMap()
	points := m.TilesInRadius(0, 0, 3)
	for _, p := range points {
		if p[0] < 0 || p[1] < 0 {
			t.Errorf("out-of-bounds point %v", p)
		}
	}
}
