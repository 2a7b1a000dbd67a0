package raster

import (
	"math"
	"testing"
)

type point struct{ x, y int }

// recorder collects plotted positions in order.
type recorder struct {
	points []point
}

func (r *recorder) Plot(x, y int) {
	r.points = append(r.points, point{x, y})
}

func (r *recorder) set() map[point]int {
	m := make(map[point]int, len(r.points))
	for _, p := range r.points {
		m[p]++
	}
	return m
}

var lineCases = []struct {
	name           string
	x0, y0, x1, y1 int
}{
	{"single point", 5, 5, 5, 5},
	{"horizontal right", 0, 0, 9, 0},
	{"horizontal left", 9, 3, 0, 3},
	{"vertical down", 2, 0, 2, 7},
	{"vertical up", 2, 7, 2, 0},
	{"diagonal", 0, 0, 3, 3},
	{"anti diagonal", 3, 0, 0, 3},
	{"shallow", 0, 0, 10, 1},
	{"shallow negative", 10, 4, 0, 0},
	{"steep", 0, 0, 2, 11},
	{"steep negative", 5, 11, 0, 0},
	{"octant 7", 0, 20, 13, 3},
	{"crossing origin", -4, -6, 7, 5},
}

func TestLinePointCount(t *testing.T) {
	for _, tc := range lineCases {
		t.Run(tc.name, func(t *testing.T) {
			var r recorder
			Line(tc.x0, tc.y0, tc.x1, tc.y1, &r)

			want := steps(tc.x0, tc.y0, tc.x1, tc.y1)
			if len(r.points) != want {
				t.Fatalf("Line plotted %d points, want %d", len(r.points), want)
			}
			for p, n := range r.set() {
				if n != 1 {
					t.Errorf("point %v plotted %d times, want 1", p, n)
				}
			}
		})
	}
}

func TestLineEndpoints(t *testing.T) {
	for _, tc := range lineCases {
		t.Run(tc.name, func(t *testing.T) {
			var r recorder
			Line(tc.x0, tc.y0, tc.x1, tc.y1, &r)

			first, last := r.points[0], r.points[len(r.points)-1]
			if first != (point{tc.x0, tc.y0}) {
				t.Errorf("first point = %v, want (%d, %d)", first, tc.x0, tc.y0)
			}
			if last != (point{tc.x1, tc.y1}) {
				t.Errorf("last point = %v, want (%d, %d)", last, tc.x1, tc.y1)
			}
		})
	}
}

func TestLineMonotonicAndClose(t *testing.T) {
	for _, tc := range lineCases {
		t.Run(tc.name, func(t *testing.T) {
			var r recorder
			Line(tc.x0, tc.y0, tc.x1, tc.y1, &r)

			dx, dy := tc.x1-tc.x0, tc.y1-tc.y0
			horizontal := abs(dx) >= abs(dy)
			for i, p := range r.points {
				if i > 0 {
					prev := r.points[i-1]
					if abs(p.x-prev.x) > 1 || abs(p.y-prev.y) > 1 {
						t.Fatalf("gap between %v and %v", prev, p)
					}
					if horizontal && p.x-prev.x != sign(dx) {
						t.Fatalf("x not stepping by %d: %v -> %v", sign(dx), prev, p)
					}
					if !horizontal && p.y-prev.y != sign(dy) {
						t.Fatalf("y not stepping by %d: %v -> %v", sign(dy), prev, p)
					}
				}

				// Distance from the ideal line along the minor axis.
				var dev float64
				if horizontal {
					if dx == 0 {
						continue
					}
					ideal := float64(tc.y0) + float64(dy)*float64(p.x-tc.x0)/float64(dx)
					dev = math.Abs(float64(p.y) - ideal)
				} else {
					ideal := float64(tc.x0) + float64(dx)*float64(p.y-tc.y0)/float64(dy)
					dev = math.Abs(float64(p.x) - ideal)
				}
				if dev >= 1 {
					t.Errorf("point %v is %.3f pixels from the ideal line", p, dev)
				}
			}
		})
	}
}

func TestLineDiagonalScenario(t *testing.T) {
	var r recorder
	Line(0, 0, 3, 3, &r)

	want := []point{{0, 0}, {1, 1}, {2, 2}, {3, 3}}
	if len(r.points) != len(want) {
		t.Fatalf("got %v, want %v", r.points, want)
	}
	for i := range want {
		if r.points[i] != want[i] {
			t.Errorf("point %d = %v, want %v", i, r.points[i], want[i])
		}
	}
}

func TestLineStippleSubsetOfLine(t *testing.T) {
	for _, tc := range lineCases {
		t.Run(tc.name, func(t *testing.T) {
			var solid, dotted recorder
			Line(tc.x0, tc.y0, tc.x1, tc.y1, &solid)
			LineStipple(tc.x0, tc.y0, tc.x1, tc.y1, 0xDEADBEEF, &dotted)

			pattern := uint32(0xDEADBEEF)
			var want []point
			for _, p := range solid.points {
				if pattern&1 != 0 {
					want = append(want, p)
				}
				pattern = pattern<<1 | pattern>>31
			}

			if len(dotted.points) != len(want) {
				t.Fatalf("stipple plotted %d points, want %d", len(dotted.points), len(want))
			}
			for i := range want {
				if dotted.points[i] != want[i] {
					t.Errorf("stipple point %d = %v, want %v", i, dotted.points[i], want[i])
				}
			}
		})
	}
}

func TestLineStippleDefaultAlternates(t *testing.T) {
	var r recorder
	LineStipple(0, 0, 99, 0, DefaultStipple, &r)

	if len(r.points) != 50 {
		t.Fatalf("default stipple plotted %d of 100 points, want 50", len(r.points))
	}
	for i, p := range r.points {
		// Bit 0 of 0xAAAAAAAA is clear, so odd steps are drawn.
		if p.x != 2*i+1 {
			t.Errorf("point %d at x=%d, want x=%d", i, p.x, 2*i+1)
		}
	}
}

func TestLineStipplePatterns(t *testing.T) {
	tests := []struct {
		name    string
		pattern uint32
		want    int
	}{
		{"all on", 0xFFFFFFFF, 64},
		{"all off", 0, 0},
		{"single bit", 1, 2},
		{"pairs", 0xCCCCCCCC, 32},
		{"nibbles", 0xF0F0F0F0, 32},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var r recorder
			LineStipple(0, 0, 63, 0, tt.pattern, &r)
			if len(r.points) != tt.want {
				t.Errorf("plotted %d points, want %d", len(r.points), tt.want)
			}
		})
	}
}

func TestPlotFunc(t *testing.T) {
	n := 0
	Line(0, 0, 4, 2, PlotFunc(func(x, y int) { n++ }))
	if n != 5 {
		t.Errorf("PlotFunc called %d times, want 5", n)
	}
}
