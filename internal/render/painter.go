//go:build ebiten

package render

import (
	"satellites/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
)

// FramePainter uploads a pixel buffer into a single RGBA image.
type FramePainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewFramePainter allocates a painter for a w*h screen.
func NewFramePainter(w, h int) *FramePainter {
	fp := &FramePainter{w: w, h: h, buf: make([]byte, 4*w*h)}
	fp.img = ebiten.NewImage(w, h)
	return fp
}

// Blit uploads src into the painter image and draws it onto dst.
func (fp *FramePainter) Blit(dst *ebiten.Image, src *core.PixelBuffer) {
	if src == nil || src.W != fp.w || src.H != fp.h {
		return
	}
	fillRGBA(fp.buf, src)
	fp.img.WritePixels(fp.buf)
	dst.DrawImage(fp.img, nil)
}

// Size returns the dimensions of the underlying image.
func (fp *FramePainter) Size() (int, int) { return fp.w, fp.h }
