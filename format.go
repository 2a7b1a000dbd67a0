package blit

import (
	"fmt"
	"math/bits"
)

// Packed is the set of unsigned integer types a pixel can be packed into.
type Packed interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Channel identifies one color channel of a pixel.
type Channel uint8

const (
	// Red is the red color channel.
	Red Channel = iota

	// Green is the green color channel.
	Green

	// Blue is the blue color channel.
	Blue

	// Alpha is the alpha (coverage) channel.
	Alpha

	// channelCount is the number of channels (for internal use).
	channelCount
)

// Channels lists every channel in packing order.
var Channels = [channelCount]Channel{Red, Green, Blue, Alpha}

// String returns the channel name.
func (c Channel) String() string {
	switch c {
	case Red:
		return "Red"
	case Green:
		return "Green"
	case Blue:
		return "Blue"
	case Alpha:
		return "Alpha"
	default:
		return fmt.Sprintf("Channel(%d)", uint8(c))
	}
}

// Depths holds the bit depth of each channel, indexed by Channel.
// A depth of zero marks the channel as absent.
type Depths [channelCount]uint

// channelLayout is the derived bit field of one channel.
type channelLayout[P Packed] struct {
	depth uint
	shift uint
	mask  P
}

// Layout describes how the channels of a pixel are packed into a P.
// A Layout is immutable once built; formats build theirs at package
// initialization and hand out a shared pointer.
type Layout[P Packed] struct {
	channelBits   uint
	bitsPerPixel  uint
	bytesPerPixel uint
	channels      [channelCount]channelLayout[P]
}

// LayoutOption configures a Layout during creation.
type LayoutOption func(*layoutOptions)

// layoutOptions holds optional configuration for NewLayout.
type layoutOptions struct {
	offsets    [channelCount]uint
	hasOffsets bool
}

// WithOffsets places each channel at an explicit bit offset instead of the
// default packing, where Red sits at bit 0 and every following channel
// starts right above the previous one.
//
// Example:
//
//	// 0xAARRGGBB in a uint32
//	l, err := blit.NewLayout[uint32](8, blit.Depths{8, 8, 8, 8},
//	    blit.WithOffsets(16, 8, 0, 24))
func WithOffsets(red, green, blue, alpha uint) LayoutOption {
	return func(o *layoutOptions) {
		o.offsets = [channelCount]uint{red, green, blue, alpha}
		o.hasOffsets = true
	}
}

// NewLayout derives a Layout for storage type P whose channels are at most
// channelBits wide. It returns ErrInvalidLayout if a channel is wider than
// channelBits, does not fit in P, or overlaps another channel. Channel
// widths are limited to 32 bits, the width of a channel value.
func NewLayout[P Packed](channelBits uint, depths Depths, opts ...LayoutOption) (Layout[P], error) {
	var o layoutOptions
	for _, opt := range opts {
		opt(&o)
	}
	if !o.hasOffsets {
		var off uint
		for c, d := range depths {
			o.offsets[c] = off
			off += d
		}
	}

	storage := storageBits[P]()
	if channelBits == 0 || channelBits > 32 {
		return Layout[P]{}, fmt.Errorf("%w: channel width %d outside [1, 32]",
			ErrInvalidLayout, channelBits)
	}
	l := Layout[P]{channelBits: channelBits}

	var used P
	for c, d := range depths {
		ch := Channel(c)
		shift := o.offsets[c]
		if d > channelBits {
			return Layout[P]{}, fmt.Errorf("%w: %v depth %d exceeds channel width %d",
				ErrInvalidLayout, ch, d, channelBits)
		}
		if d > 0 && shift+d > storage {
			return Layout[P]{}, fmt.Errorf("%w: %v bits [%d, %d) exceed %d-bit storage",
				ErrInvalidLayout, ch, shift, shift+d, storage)
		}
		mask := fieldMask[P](d, shift)
		if used&mask != 0 {
			return Layout[P]{}, fmt.Errorf("%w: %v overlaps another channel",
				ErrInvalidLayout, ch)
		}
		used |= mask

		l.channels[c] = channelLayout[P]{depth: d, shift: shift, mask: mask}
		l.bitsPerPixel += d
	}
	l.bytesPerPixel = (l.bitsPerPixel + 7) / 8

	return l, nil
}

// MustLayout is like NewLayout but panics on an invalid description.
// It is intended for package level format definitions.
func MustLayout[P Packed](channelBits uint, depths Depths, opts ...LayoutOption) Layout[P] {
	l, err := NewLayout[P](channelBits, depths, opts...)
	if err != nil {
		panic(err)
	}
	return l
}

// fieldMask returns ((1 << depth) - 1) << shift. A zero depth yields an
// empty mask and a full-width depth does not overflow.
func fieldMask[P Packed](depth, shift uint) P {
	if depth == 0 {
		return 0
	}
	return (^P(0) >> (storageBits[P]() - depth)) << shift
}

// storageBits returns the width of P in bits.
func storageBits[P Packed]() uint {
	return uint(bits.Len64(uint64(^P(0))))
}

// Depth returns the bit depth of channel c; zero when the channel is absent.
func (l *Layout[P]) Depth(c Channel) uint {
	return l.channels[c].depth
}

// Shift returns the bit offset of channel c.
func (l *Layout[P]) Shift(c Channel) uint {
	return l.channels[c].shift
}

// Mask returns the bits occupied by channel c.
func (l *Layout[P]) Mask(c Channel) P {
	return l.channels[c].mask
}

// Max returns the largest value channel c can hold.
func (l *Layout[P]) Max(c Channel) uint32 {
	return uint32(l.channels[c].mask >> l.channels[c].shift)
}

// Has reports whether channel c is present.
func (l *Layout[P]) Has(c Channel) bool {
	return l.channels[c].depth > 0
}

// ChannelBits returns the width of the channel element type.
func (l *Layout[P]) ChannelBits() uint {
	return l.channelBits
}

// StorageBits returns the width of the packed storage in bits.
func (l *Layout[P]) StorageBits() uint {
	return storageBits[P]()
}

// BitsPerPixel returns the sum of all channel depths.
func (l *Layout[P]) BitsPerPixel() uint {
	return l.bitsPerPixel
}

// BytesPerPixel returns BitsPerPixel rounded up to whole bytes.
func (l *Layout[P]) BytesPerPixel() uint {
	return l.bytesPerPixel
}

// Format is implemented by the zero-size types that name a pixel format.
// The format is resolved at compile time through type parameters, so
// channel access costs a mask and a shift.
type Format[P Packed] interface {
	// Layout returns the shared, immutable channel layout of the format.
	Layout() *Layout[P]
}
