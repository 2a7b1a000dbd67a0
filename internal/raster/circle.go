package raster

// Circle rasterizes the outline of a circle with the midpoint algorithm.
//
// One octant is walked from (0, r) while dx <= dy and every position is
// mirrored into the other seven, so the plotted set is symmetric under
// swapping axes and flipping signs around the center. Positions left of or
// above the origin are passed to the plotter as negative coordinates.
// A radius of zero or less plots nothing.
func Circle(cx, cy, r int, p Plotter) {
	if r <= 0 {
		return
	}

	dx, dy := 0, r
	balance := -r
	for dx <= dy {
		p.Plot(cx-dx, cy+dy)
		p.Plot(cx+dx, cy+dy)
		p.Plot(cx-dx, cy-dy)
		p.Plot(cx+dx, cy-dy)

		p.Plot(cx-dy, cy+dx)
		p.Plot(cx+dy, cy+dx)
		p.Plot(cx-dy, cy-dx)
		p.Plot(cx+dy, cy-dx)

		// The balance uses dx before the increment and dy after the
		// decrement; changing the order shifts the outline by a pixel.
		balance += 2*dx + 1
		dx++
		if balance >= 0 {
			dy--
			balance -= 2 * dy
		}
	}
}
