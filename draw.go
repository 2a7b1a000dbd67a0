package blit

import "github.com/gogpu/blit/internal/raster"

// DefaultStipple is the alternating pattern LineStipple callers usually want:
// every other position along the line is drawn.
const DefaultStipple = raster.DefaultStipple

// plotter writes a fixed pixel value through SetPixel, inheriting its
// silent clipping.
type plotter[F Format[P], P Packed] struct {
	s  *Surface[F, P]
	px Pixel[F, P]
}

func (p plotter[F, P]) Plot(x, y int) {
	p.s.SetPixel(x, y, p.px)
}

// Line draws a solid line from one point to another, both inclusive, with
// Bresenham's algorithm. Exactly max(|dx|, |dy|)+1 positions are drawn;
// those outside the surface are dropped. Equal endpoints draw one pixel.
//
// Coordinates are converted to int before rasterizing, so values above
// math.MaxInt wrap to negative positions and the line is drawn toward
// them instead of clipping across the surface. The same applies to
// LineStipple and Circle.
func (s *Surface[F, P]) Line(from, to PointSize, px Pixel[F, P]) {
	raster.Line(int(from.X), int(from.Y), int(to.X), int(to.Y), plotter[F, P]{s, px})
}

// LineStipple draws the positions of Line(from, to) whose pattern bit is
// set. Bit 0 of pattern decides the first position and the pattern is
// rotated left by one bit per position, so a 32-position period repeats.
// Use DefaultStipple for a dotted line.
func (s *Surface[F, P]) LineStipple(from, to PointSize, px Pixel[F, P], pattern uint32) {
	raster.LineStipple(int(from.X), int(from.Y), int(to.X), int(to.Y), pattern, plotter[F, P]{s, px})
}

// Circle draws the outline of a circle with the midpoint algorithm. Parts
// of the outline outside the surface are dropped. A zero radius draws
// nothing.
func (s *Surface[F, P]) Circle(center PointSize, radius uint, px Pixel[F, P]) {
	if radius == 0 {
		return
	}
	raster.Circle(int(center.X), int(center.Y), int(radius), plotter[F, P]{s, px})
}
