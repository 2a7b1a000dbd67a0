package blit

import (
	"fmt"
	"image"
)

// Surface is an owned, row-major buffer of packed pixels of format F.
//
// Pixel (x, y) lives at index x + y*Width with the origin at the top left.
// Dimensions are fixed for the life of a surface. Copies made with Clone or
// CopyFrom duplicate the buffer; two surfaces never share pixels.
//
// Surfaces are NOT safe for concurrent use. Confine a surface to one
// goroutine or guard every read and write with external locking.
//
// Example:
//
//	s := blit.NewSurface[blit.RGBA8888, uint32](320, 180)
//	s.Fill(blit.NewPixel[blit.RGBA8888, uint32](0x10, 0x10, 0x10, 0xFF))
//	white := blit.NewPixel[blit.RGBA8888, uint32](0xFF, 0xFF, 0xFF, 0xFF)
//	s.Circle(blit.Pt[uint](160, 90), 30, white)
//	buf := s.Pixels()
type Surface[F Format[P], P Packed] struct {
	width  int
	height int
	pix    []P
}

// NewSurface creates a surface of the given size with every pixel zero.
// If either dimension is zero or negative the surface is empty: both
// dimensions are zero and no buffer is allocated.
func NewSurface[F Format[P], P Packed](width, height int) *Surface[F, P] {
	if width <= 0 || height <= 0 {
		Logger().Debug("blit: empty surface", "width", width, "height", height)
		return &Surface[F, P]{}
	}

	Logger().Debug("blit: surface allocated", "width", width, "height", height)
	return &Surface[F, P]{
		width:  width,
		height: height,
		pix:    make([]P, width*height),
	}
}

// Width returns the surface width in pixels.
func (s *Surface[F, P]) Width() int {
	return s.width
}

// Height returns the surface height in pixels.
func (s *Surface[F, P]) Height() int {
	return s.height
}

// Empty reports whether the surface has no pixels.
func (s *Surface[F, P]) Empty() bool {
	return len(s.pix) == 0
}

// Layout returns the channel layout of the surface's format.
func (s *Surface[F, P]) Layout() *Layout[P] {
	var f F
	return f.Layout()
}

// Pixels returns the packed pixel buffer, Width*Height values in row-major
// order. The slice aliases the surface and is meant for handing the
// contents to a presenter or encoder; it must not be read while the
// surface is being drawn to. Nil for an empty surface.
func (s *Surface[F, P]) Pixels() []P {
	return s.pix
}

// In reports whether (x, y) addresses a pixel of the surface.
func (s *Surface[F, P]) In(x, y int) bool {
	return x >= 0 && y >= 0 && x < s.width && y < s.height
}

// Pixel returns the pixel at (x, y). It returns ErrOutOfBounds when the
// position is outside the surface.
func (s *Surface[F, P]) Pixel(x, y int) (Pixel[F, P], error) {
	if !s.In(x, y) {
		return Pixel[F, P]{}, fmt.Errorf("%w: (%d, %d) outside %dx%d",
			ErrOutOfBounds, x, y, s.width, s.height)
	}
	return Pixel[F, P]{v: s.pix[x+y*s.width]}, nil
}

// SetPixel writes px at (x, y). Writes outside the surface, negative
// coordinates included, are silently dropped: rasterizers routinely step
// past the edges.
func (s *Surface[F, P]) SetPixel(x, y int, px Pixel[F, P]) {
	if !s.In(x, y) {
		return
	}
	s.pix[x+y*s.width] = px.v
}

// SetPixelAt writes px at p. Positions outside the surface are dropped.
func (s *Surface[F, P]) SetPixelAt(p PointSize, px Pixel[F, P]) {
	if p.X >= uint(s.width) || p.Y >= uint(s.height) {
		return
	}
	s.pix[int(p.X)+int(p.Y)*s.width] = px.v
}

// Fill overwrites every pixel with px.
func (s *Surface[F, P]) Fill(px Pixel[F, P]) {
	for i := range s.pix {
		s.pix[i] = px.v
	}
}

// Clone returns an independent copy of the surface.
func (s *Surface[F, P]) Clone() *Surface[F, P] {
	c := &Surface[F, P]{}
	c.CopyFrom(s)
	return c
}

// CopyFrom replaces the dimensions and contents of s with a copy of src.
// The previous buffer of s is released.
func (s *Surface[F, P]) CopyFrom(src *Surface[F, P]) {
	if s == src {
		return
	}
	s.width, s.height = src.width, src.height
	if src.Empty() {
		s.pix = nil
		return
	}
	s.pix = make([]P, len(src.pix))
	copy(s.pix, src.pix)

	Logger().Debug("blit: surface copied", "width", s.width, "height", s.height)
}

// Bytes returns the pixels as little-endian bytes, BytesPerPixel bytes per
// pixel with no row padding. For RGBA8888 this is R, G, B, A order and for
// RGB888 it is tightly packed R, G, B.
func (s *Surface[F, P]) Bytes() []byte {
	n := int(s.Layout().BytesPerPixel())
	buf := make([]byte, 0, len(s.pix)*n)
	for _, v := range s.pix {
		for i := 0; i < n; i++ {
			buf = append(buf, byte(v>>(8*i)))
		}
	}
	return buf
}

// Bounds returns the rectangle covered by the surface, anchored at (0, 0).
func (s *Surface[F, P]) Bounds() image.Rectangle {
	return image.Rect(0, 0, s.width, s.height)
}
