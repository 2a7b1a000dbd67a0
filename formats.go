package blit

// Built-in formats. Each is a zero-size type usable as the F parameter of
// Pixel and Surface.
type (
	// RGBA8888 is 32-bit RGBA, 8 bits per channel, red in the low byte.
	RGBA8888 struct{}

	// RGBA4444 is 16-bit RGBA, 4 bits per channel.
	RGBA4444 struct{}

	// RGBA5551 is 16-bit RGBA with 5-bit color and a 1-bit alpha.
	RGBA5551 struct{}

	// RGB888 is 24-bit RGB stored in a uint32; the top byte is unused.
	RGB888 struct{}

	// RGB565 is 16-bit RGB with 6 bits of green.
	RGB565 struct{}

	// BGRA8888 is 32-bit with blue in the low byte (0xAARRGGBB), the
	// layout most window framebuffers expect.
	BGRA8888 struct{}
)

var (
	rgba8888 = MustLayout[uint32](8, Depths{8, 8, 8, 8})
	rgba4444 = MustLayout[uint16](8, Depths{4, 4, 4, 4})
	rgba5551 = MustLayout[uint16](8, Depths{5, 5, 5, 1})
	rgb888   = MustLayout[uint32](8, Depths{8, 8, 8, 0})
	rgb565   = MustLayout[uint16](8, Depths{5, 6, 5, 0})
	bgra8888 = MustLayout[uint32](8, Depths{8, 8, 8, 8}, WithOffsets(16, 8, 0, 24))
)

func (RGBA8888) Layout() *Layout[uint32] { return &rgba8888 }
func (RGBA4444) Layout() *Layout[uint16] { return &rgba4444 }
func (RGBA5551) Layout() *Layout[uint16] { return &rgba5551 }
func (RGB888) Layout() *Layout[uint32]   { return &rgb888 }
func (RGB565) Layout() *Layout[uint16]   { return &rgb565 }
func (BGRA8888) Layout() *Layout[uint32] { return &bgra8888 }

// Pixel and surface types of the built-in formats.
type (
	PixelRGBA8888 = Pixel[RGBA8888, uint32]
	PixelRGBA4444 = Pixel[RGBA4444, uint16]
	PixelRGBA5551 = Pixel[RGBA5551, uint16]
	PixelRGB888   = Pixel[RGB888, uint32]
	PixelRGB565   = Pixel[RGB565, uint16]
	PixelBGRA8888 = Pixel[BGRA8888, uint32]

	SurfaceRGBA8888 = Surface[RGBA8888, uint32]
	SurfaceRGBA4444 = Surface[RGBA4444, uint16]
	SurfaceRGBA5551 = Surface[RGBA5551, uint16]
	SurfaceRGB888   = Surface[RGB888, uint32]
	SurfaceRGB565   = Surface[RGB565, uint16]
	SurfaceBGRA8888 = Surface[BGRA8888, uint32]
)
