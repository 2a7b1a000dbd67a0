// Command blitdemo renders the blit test scenes to an image file.
package main

import (
	"flag"
	"hash/fnv"
	"image"
	"image/color"
	"image/png"
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gogpu/blit"
)

// config holds the scene parameters shared by every pixel format.
type config struct {
	scene  string
	width  int
	height int
	phase  float64
}

// stats summarizes what a scene drew.
type stats struct {
	primitives int
	pixels     int
}

// stipplePatterns are the dash patterns of the lines scene, from dotted to
// long dashes.
var stipplePatterns = []uint32{
	0x55555555,
	0xCCCCCCCC,
	0x38E38E38,
	0xF0F0F0F0,
	0xFF00FF00,
}

func main() {
	var (
		width   = flag.Int("width", 512, "surface width")
		height  = flag.Int("height", 512, "surface height")
		format  = flag.String("format", "rgba8888", "pixel format: rgba8888, rgba4444, rgba5551, rgb888, rgb565, bgra8888")
		scene   = flag.String("scene", "lines", "scene to draw: lines or frame")
		phase   = flag.Float64("phase", 0.5, "animation phase in [0, 1] for the frame scene")
		scale   = flag.Int("scale", 1, "nearest neighbour upscale factor")
		output  = flag.String("output", "lines.png", "output file (.png or .bmp)")
		verbose = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	if *verbose {
		blit.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	cfg := config{scene: *scene, width: *width, height: *height, phase: blit.Clamp(*phase, 0, 1)}

	var (
		img image.Image
		st  stats
	)
	switch strings.ToLower(*format) {
	case "rgba8888":
		img, st = render[blit.RGBA8888, uint32](cfg)
	case "rgba4444":
		img, st = render[blit.RGBA4444, uint16](cfg)
	case "rgba5551":
		img, st = render[blit.RGBA5551, uint16](cfg)
	case "rgb888":
		img, st = render[blit.RGB888, uint32](cfg)
	case "rgb565":
		img, st = render[blit.RGB565, uint16](cfg)
	case "bgra8888":
		img, st = render[blit.BGRA8888, uint32](cfg)
	default:
		log.Fatalf("Unknown format %q", *format)
	}

	if *scale > 1 {
		img = upscale(img, *scale)
	}

	if err := save(*output, img); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}

	p := message.NewPrinter(language.English)
	log.Print(p.Sprintf("Saved %s (%dx%d, %s): %d primitives, %d pixels set",
		*output, img.Bounds().Dx(), img.Bounds().Dy(), *format, st.primitives, st.pixels))
}

// render draws cfg.scene on a fresh surface of format F.
func render[F blit.Format[P], P blit.Packed](cfg config) (image.Image, stats) {
	s := blit.NewSurface[F, P](cfg.width, cfg.height)
	if s.Empty() {
		log.Fatalf("Surface %dx%d has no pixels", cfg.width, cfg.height)
	}

	bg := blit.PixelFromColor[F, P](color.NRGBA{R: 0x30, G: 0x30, B: 0x30, A: 0xFF})
	s.Fill(bg)

	var st stats
	switch cfg.scene {
	case "lines":
		st = drawLines(s)
	case "frame":
		st = drawFrame(s, cfg.phase)
	default:
		log.Fatalf("Unknown scene %q", cfg.scene)
	}

	for _, v := range s.Pixels() {
		if v != bg.Raw() {
			st.pixels++
		}
	}
	return s.ToNRGBA(), st
}

// drawLines draws a fan of lines from the left edge to the top edge and a
// ladder of stippled lines in the lower right quadrant.
func drawLines[F blit.Format[P], P blit.Packed](s *blit.Surface[F, P]) stats {
	const spacing = 64
	var st stats

	w, h := uint(s.Width()), uint(s.Height())
	for y := uint(0); y < h/spacing; y++ {
		for x := uint(0); x < w/spacing; x++ {
			s.Line(blit.Pt(0, y*spacing), blit.Pt(x*spacing, 0), hashColor[F, P](uint64(x+y)))
			st.primitives++
		}
	}

	for i, pattern := range stipplePatterns {
		y := h/2 + uint(i)*spacing
		s.LineStipple(blit.Pt(w/2, y), blit.Pt(w, y), hashColor[F, P](uint64(pattern)), pattern)
		st.primitives++
	}
	return st
}

// drawFrame draws one frame of the moving circle animation at phase t.
func drawFrame[F blit.Format[P], P blit.Packed](s *blit.Surface[F, P], t float64) stats {
	w, h := s.Width(), s.Height()
	x := uint(float64(w) * t)

	white := blit.PixelFromColor[F, P](color.White)
	yellow := blit.PixelFromColor[F, P](color.NRGBA{R: 0xFF, G: 0xFF, A: 0xFF})

	s.Circle(blit.Pt(x, uint(h/2)), 30, white)
	s.LineStipple(blit.Pt[uint](0, 0), blit.Pt(x, uint(h/2)), yellow, blit.DefaultStipple)
	return stats{primitives: 2}
}

// hashColor derives a stable opaque color from v.
func hashColor[F blit.Format[P], P blit.Packed](v uint64) blit.Pixel[F, P] {
	f := fnv.New64a()
	var b [8]byte
	for i := range b {
		b[i] = byte(v >> (8 * i))
	}
	_, _ = f.Write(b[:])
	sum := f.Sum64()
	return blit.PixelFromColor[F, P](color.NRGBA{
		R: uint8(sum),
		G: uint8(sum >> 8),
		B: uint8(sum >> 16),
		A: 0xFF,
	})
}

// upscale enlarges img by an integer factor without smoothing.
func upscale(img image.Image, factor int) image.Image {
	b := img.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx()*factor, b.Dy()*factor))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}

// save encodes img as BMP or PNG depending on the file extension.
func save(path string, img image.Image) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()
	return encode(f, filepath.Ext(path), img)
}

func encode(w io.Writer, ext string, img image.Image) error {
	if strings.EqualFold(ext, ".bmp") {
		return bmp.Encode(w, img)
	}
	return png.Encode(w, img)
}
