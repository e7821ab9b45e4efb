package tile

// TilesOnLine returns the grid tiles under the line from (x1, y1) to
// (x2, y2), via Bresenham's algorithm.
func (m *Map) TilesOnLine(x1, y1, x2, y2 float64) [][2]int {
	ax, ay := int(x1), int(y1)
	bx, by := int(x2), int(y2)

	dx := bx - ax
	dy := by - ay
	absDx := abs(dx)
	absDy := abs(dy)

	x, y := ax, ay
	points := [][2]int{{x, y}}

	incX := func(x int) int {
		if dx < 0 {
			return x - 1
		}
		return x + 1
	}
	incY := func(y int) int {
		if dy < 0 {
			return y - 1
		}
		return y + 1
	}

	if absDx > absDy {
		// Small slope.
		d := 2*absDy - absDx
		for i := 0; i < absDx; i++ {
			x = incX(x)
			if d < 0 {
				d += 2 * absDy
			} else {
				y = incY(y)
				d += 2*absDy - 2*absDx
			}
			points = append(points, [2]int{x, y})
		}
	} else {
		// Large slope.
		d := 2*absDx - absDy
		for i := 0; i < absDy; i++ {
			y = incY(y)
			if d < 0 {
				d += 2 * absDx
			} else {
				x = incX(x)
				d += 2*absDx - 2*absDy
			}
			points = append(points, [2]int{x, y})
		}
	}

	return points
}

// TilesOnRadius returns the in-bounds tiles on the circle of the given
// radius around (cx, cy), via the midpoint circle algorithm.
func (m *Map) TilesOnRadius(cx, cy, radius int) [][2]int {
	d := (5 - radius*4) / 4
	x, y := 0, radius

	var points [][2]int
	push := func(px, py int) {
		if px >= 0 && py >= 0 && px < m.width && py < m.height {
			points = append(points, [2]int{px, py})
		}
	}

	for x <= y {
		push(cx+x, cy+y)
		push(cx+x, cy-y)
		push(cx-x, cy+y)
		push(cx-x, cy-y)
		push(cx+y, cy+x)
		push(cx+y, cy-x)
		push(cx-y, cy+x)
		push(cx-y, cy-x)

		if d < 0 {
			d += 2*x + 1
		} else {
			d += 2*(x-y) + 1
			y--
		}
		x++
	}

	return points
}

// TilesInRadius returns the in-bounds tiles inside the disc of the given
// radius around (cx, cy).
func (m *Map) TilesInRadius(cx, cy, radius int) [][2]int {
	var points [][2]int
	for x := cx - radius; x <= cx+radius; x++ {
		for y := cy - radius; y <= cy+radius; y++ {
			if x < 0 || y < 0 || x >= m.width || y >= m.height {
				continue
			}
			dx := x - cx
			dy := y - cy
			if dx*dx+dy*dy <= radius*radius {
				points = append(points, [2]int{x, y})
			}
		}
	}
	return points
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
