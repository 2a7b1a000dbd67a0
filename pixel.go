package blit

import "image/color"

// Pixel is a single packed pixel value of format F stored in a P.
//
// Channel values are masked on the way in: a value wider than the channel
// depth keeps only its low bits, so packing an 8-bit value into a 4-bit
// channel wraps instead of failing. Reads always return a value in
// [0, 2^depth-1]. The zero Pixel has every channel set to zero.
type Pixel[F Format[P], P Packed] struct {
	v P
}

// NewPixel packs four channel values into a pixel. Values for channels the
// format does not have are ignored.
func NewPixel[F Format[P], P Packed](r, g, b, a uint32) Pixel[F, P] {
	var p Pixel[F, P]
	p.Set(r, g, b, a)
	return p
}

// PixelOf wraps an already packed value. The value is stored verbatim.
func PixelOf[F Format[P], P Packed](raw P) Pixel[F, P] {
	return Pixel[F, P]{v: raw}
}

// Layout returns the channel layout of the pixel's format.
func (Pixel[F, P]) Layout() *Layout[P] {
	var f F
	return f.Layout()
}

// Raw returns the packed representation.
func (p Pixel[F, P]) Raw() P {
	return p.v
}

// SetRaw replaces the packed representation.
func (p *Pixel[F, P]) SetRaw(raw P) {
	p.v = raw
}

// Channel returns the value of channel c.
func (p Pixel[F, P]) Channel(c Channel) uint32 {
	ch := &p.Layout().channels[c]
	return uint32((p.v & ch.mask) >> ch.shift)
}

// SetChannel clears channel c and stores the low Depth(c) bits of v in it.
func (p *Pixel[F, P]) SetChannel(c Channel, v uint32) {
	ch := &p.Layout().channels[c]
	p.v = (p.v &^ ch.mask) | ((P(v) << ch.shift) & ch.mask)
}

// Red returns the red channel.
func (p Pixel[F, P]) Red() uint32 { return p.Channel(Red) }

// Green returns the green channel.
func (p Pixel[F, P]) Green() uint32 { return p.Channel(Green) }

// Blue returns the blue channel.
func (p Pixel[F, P]) Blue() uint32 { return p.Channel(Blue) }

// Alpha returns the alpha channel.
func (p Pixel[F, P]) Alpha() uint32 { return p.Channel(Alpha) }

// SetRed sets the red channel.
func (p *Pixel[F, P]) SetRed(v uint32) { p.SetChannel(Red, v) }

// SetGreen sets the green channel.
func (p *Pixel[F, P]) SetGreen(v uint32) { p.SetChannel(Green, v) }

// SetBlue sets the blue channel.
func (p *Pixel[F, P]) SetBlue(v uint32) { p.SetChannel(Blue, v) }

// SetAlpha sets the alpha channel.
func (p *Pixel[F, P]) SetAlpha(v uint32) { p.SetChannel(Alpha, v) }

// Set stores all four channels at once.
func (p *Pixel[F, P]) Set(r, g, b, a uint32) {
	p.SetChannel(Red, r)
	p.SetChannel(Green, g)
	p.SetChannel(Blue, b)
	p.SetChannel(Alpha, a)
}

// RGBA implements the color.Color interface. Channels are scaled to 16 bits
// and premultiplied by alpha. A format without alpha reads as opaque.
func (p Pixel[F, P]) RGBA() (r, g, b, a uint32) {
	l := p.Layout()
	a = 0xFFFF
	if l.Has(Alpha) {
		a = widen(p.Channel(Alpha), l.Max(Alpha))
	}
	r = widen(p.Channel(Red), l.Max(Red)) * a / 0xFFFF
	g = widen(p.Channel(Green), l.Max(Green)) * a / 0xFFFF
	b = widen(p.Channel(Blue), l.Max(Blue)) * a / 0xFFFF
	return r, g, b, a
}

// widen scales v in [0, maxv] to [0, 0xFFFF].
func widen(v, maxv uint32) uint32 {
	if maxv == 0 {
		return 0
	}
	return uint32(uint64(v) * 0xFFFF / uint64(maxv))
}

// narrow scales v in [0, 0xFFFF] to [0, maxv], rounding to nearest.
func narrow(v, maxv uint32) uint32 {
	return uint32((uint64(v)*uint64(maxv) + 0x7FFF) / 0xFFFF)
}

// PixelModel returns a color.Model converting any color to format F.
// Conversion scales non-premultiplied 16-bit channels to each channel
// depth; it is the only place a pixel value is derived from a color.
func PixelModel[F Format[P], P Packed]() color.Model {
	return color.ModelFunc(func(c color.Color) color.Color {
		if px, ok := c.(Pixel[F, P]); ok {
			return px
		}
		return PixelFromColor[F, P](c)
	})
}

// PixelFromColor converts c to a pixel of format F.
func PixelFromColor[F Format[P], P Packed](c color.Color) Pixel[F, P] {
	n := color.NRGBA64Model.Convert(c).(color.NRGBA64)

	var px Pixel[F, P]
	l := px.Layout()
	px.Set(
		narrow(uint32(n.R), l.Max(Red)),
		narrow(uint32(n.G), l.Max(Green)),
		narrow(uint32(n.B), l.Max(Blue)),
		narrow(uint32(n.A), l.Max(Alpha)),
	)
	return px
}
