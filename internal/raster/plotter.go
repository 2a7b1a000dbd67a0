// Package raster provides integer rasterization of lines and circle outlines.
//
// The algorithms here only compute pixel positions; writing them is left to
// a Plotter, which owns bounds checking. Positions may fall outside any
// target (including negative coordinates) and plotters are expected to drop
// them silently.
package raster

// Plotter receives the pixel positions produced by the rasterizers.
type Plotter interface {
	// Plot writes a single pixel at (x, y). Out of range positions must
	// be ignored.
	Plot(x, y int)
}

// PlotFunc adapts an ordinary function to the Plotter interface.
type PlotFunc func(x, y int)

// Plot calls f(x, y).
func (f PlotFunc) Plot(x, y int) {
	f(x, y)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
