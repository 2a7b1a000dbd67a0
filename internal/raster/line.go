package raster

import "math/bits"

// DefaultStipple is the alternating on/off pattern used for dotted lines.
const DefaultStipple uint32 = 0xAAAAAAAA

// Line rasterizes the segment from (x0, y0) to (x1, y1) with Bresenham's
// algorithm. Both endpoints are plotted and exactly max(|dx|, |dy|)+1
// positions are visited, monotonic along the driving axis.
func Line(x0, y0, x1, y1 int, p Plotter) {
	walk(x0, y0, x1, y1, p.Plot)
}

// LineStipple visits the same positions as Line but only plots those for
// which bit 0 of pattern is set. The pattern is rotated left by one bit
// after every position, plotted or not, so the dash period comes from the
// pattern rather than from arc length.
func LineStipple(x0, y0, x1, y1 int, pattern uint32, p Plotter) {
	walk(x0, y0, x1, y1, func(x, y int) {
		if pattern&1 != 0 {
			p.Plot(x, y)
		}
		pattern = bits.RotateLeft32(pattern, 1)
	})
}

// steps returns the number of positions Line visits between two points.
func steps(x0, y0, x1, y1 int) int {
	return max(abs(x1-x0), abs(y1-y0)) + 1
}

// walk steps one pixel along the driving axis per iteration and accumulates
// the minor axis delta in err, advancing the minor axis whenever err reaches
// the driving delta.
func walk(x0, y0, x1, y1 int, visit func(x, y int)) {
	dx, dy := x1-x0, y1-y0
	adx, ady := abs(dx), abs(dy)
	sx, sy := sign(dx), sign(dy)

	x, y := x0, y0
	visit(x, y)

	if adx >= ady {
		// Horizontal
		err := ady / 2
		for i := 0; i < adx; i++ {
			err += ady
			if err >= adx {
				err -= adx
				y += sy
			}
			x += sx
			visit(x, y)
		}
		return
	}

	// Vertical
	err := adx / 2
	for i := 0; i < ady; i++ {
		err += adx
		if err >= ady {
			err -= ady
			x += sx
		}
		y += sy
		visit(x, y)
	}
}
