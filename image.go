package blit

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// ColorModel implements the image.Image interface.
func (s *Surface[F, P]) ColorModel() color.Model {
	return PixelModel[F, P]()
}

// At implements the image.Image interface. Positions outside the surface
// return color.Transparent.
func (s *Surface[F, P]) At(x, y int) color.Color {
	px, err := s.Pixel(x, y)
	if err != nil {
		return color.Transparent
	}
	return px
}

// Set implements the draw.Image interface, so a surface can be the
// destination of golang.org/x/image/draw operations. The color is
// converted to format F; positions outside the surface are dropped.
func (s *Surface[F, P]) Set(x, y int, c color.Color) {
	s.SetPixel(x, y, PixelFromColor[F, P](c))
}

// ToNRGBA converts the surface to a non-premultiplied 8-bit image for
// encoders. Channels narrower than 8 bits are scaled up.
func (s *Surface[F, P]) ToNRGBA() *image.NRGBA {
	img := image.NewNRGBA(s.Bounds())
	draw.Draw(img, img.Bounds(), s, image.Point{}, draw.Src)
	return img
}

var _ draw.Image = (*SurfaceRGBA8888)(nil)
