package blit

import "image"

// Blit copies src onto s with the top left corner of src at (x, y).
// The copy is clipped to s; pixels falling outside are dropped.
// src may be s itself; the copy then reads from a snapshot, so rows are
// never read after they have been overwritten.
func (s *Surface[F, P]) Blit(src *Surface[F, P], x, y int) {
	if src == s {
		src = src.Clone()
	}
	dst, sp, ok := s.clip(src, x, y)
	if !ok {
		return
	}
	w := dst.Dx()
	for row := 0; row < dst.Dy(); row++ {
		di := dst.Min.X + (dst.Min.Y+row)*s.width
		si := sp.X + (sp.Y+row)*src.width
		copy(s.pix[di:di+w], src.pix[si:si+w])
	}
}

// BlitKeyed is like Blit but leaves destination pixels untouched where the
// source pixel equals key, treating key as a transparent color.
func (s *Surface[F, P]) BlitKeyed(src *Surface[F, P], x, y int, key Pixel[F, P]) {
	if src == s {
		src = src.Clone()
	}
	dst, sp, ok := s.clip(src, x, y)
	if !ok {
		return
	}
	w := dst.Dx()
	for row := 0; row < dst.Dy(); row++ {
		di := dst.Min.X + (dst.Min.Y+row)*s.width
		si := sp.X + (sp.Y+row)*src.width
		for i, v := range src.pix[si : si+w] {
			if v != key.v {
				s.pix[di+i] = v
			}
		}
	}
}

// clip intersects the placement of src at (x, y) with s. It returns the
// destination rectangle and the matching top left point in src.
func (s *Surface[F, P]) clip(src *Surface[F, P], x, y int) (image.Rectangle, image.Point, bool) {
	at := image.Pt(x, y)
	placed := src.Bounds().Add(at)
	dst := placed.Intersect(s.Bounds())
	if dst.Empty() {
		return image.Rectangle{}, image.Point{}, false
	}
	if dst != placed {
		Logger().Debug("blit: source clipped",
			"placed", placed.String(), "visible", dst.String())
	}
	return dst, dst.Min.Sub(at), true
}
