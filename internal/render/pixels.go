package render

import "satellites/internal/core"

// fillRGBA converts a BGRX pixel buffer into opaque RGBA pixels in buf.
func fillRGBA(buf []byte, src *core.PixelBuffer) {
	in := src.Bytes()
	for base := 0; base+3 < len(in) && base+3 < len(buf); base += core.BytesPerPixel {
		buf[base+0] = in[base+2]
		buf[base+1] = in[base+1]
		buf[base+2] = in[base+0]
		buf[base+3] = 0xff
	}
}

// fillBGRX converts RGBA pixels read back from an image into dst. The
// reserved byte of dst is left untouched.
func fillBGRX(dst *core.PixelBuffer, rgba []byte) {
	out := dst.Bytes()
	for base := 0; base+3 < len(out) && base+3 < len(rgba); base += core.BytesPerPixel {
		out[base+0] = rgba[base+2]
		out[base+1] = rgba[base+1]
		out[base+2] = rgba[base+0]
	}
}
