// Package blit provides a minimal 2D raster surface engine for Go.
//
// # Overview
//
// blit is an in-memory pixel buffer with compile-time pixel formats and a
// handful of integer rasterizers: single pixels, solid lines, stippled
// lines, circle outlines, fills and surface-to-surface copies. There is no
// anti-aliasing, blending or path filling; every operation writes packed
// pixel values directly.
//
// # Quick Start
//
//	import "github.com/gogpu/blit"
//
//	s := blit.NewSurface[blit.RGBA8888, uint32](512, 512)
//	s.Fill(blit.PixelOf[blit.RGBA8888](uint32(0xFF303030)))
//
//	red := blit.NewPixel[blit.RGBA8888, uint32](0xFF, 0, 0, 0xFF)
//	s.Line(blit.Pt[uint](0, 0), blit.Pt[uint](511, 255), red)
//	s.LineStipple(blit.Pt[uint](0, 511), blit.Pt[uint](511, 511), red, blit.DefaultStipple)
//	s.Circle(blit.Pt[uint](256, 256), 64, red)
//
//	raw := s.Pixels() // hand off to a window or encoder
//
// # Pixel Formats
//
// A format is a zero-size type whose Layout method describes the bit depth
// and offset of the red, green, blue and alpha channels inside an unsigned
// integer. Pixel and Surface are parameterized by the format and its
// storage type, so channel access compiles to a mask and a shift:
//
//	type ARGB8888 struct{}
//
//	var argb8888 = blit.MustLayout[uint32](8, blit.Depths{8, 8, 8, 8},
//	    blit.WithOffsets(16, 8, 0, 24))
//
//	func (ARGB8888) Layout() *blit.Layout[uint32] { return &argb8888 }
//
// Built-in formats are RGBA8888, RGBA4444, RGBA5551, RGB888, RGB565 and
// BGRA8888. Channel values wider than the channel are truncated, never
// rejected.
//
// # Bounds
//
// Writes outside a surface are dropped silently so rasterizers can step
// past the edges. Reads through Surface.Pixel are checked and return
// ErrOutOfBounds.
//
// # Coordinate System
//
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - Pixel (x, y) is stored at index x + y*Width
package blit

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
