package core

// BytesPerPixel is the cell stride of a PixelBuffer: blue, green, red, reserved.
const BytesPerPixel = 4

// PixelBuffer stores a screen of BGRX cells in row-major order.
type PixelBuffer struct {
	W, H int
	data []uint8
}

// NewPixelBuffer allocates a buffer with the given dimensions.
func NewPixelBuffer(w, h int) *PixelBuffer {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &PixelBuffer{W: w, H: h, data: make([]uint8, BytesPerPixel*w*h)}
}

// Bytes exposes the backing slice so callers can read/write cells directly.
func (p *PixelBuffer) Bytes() []uint8 { return p.data }

// Size returns the buffer dimensions.
func (p *PixelBuffer) Size() Size { return Size{W: p.W, H: p.H} }

// Len returns the number of cells.
func (p *PixelBuffer) Len() int { return p.W * p.H }

// Index returns the cell index for coordinates (x, y).
func (p *PixelBuffer) Index(x, y int) int { return y*p.W + x }

// Set writes the color channels of cell i. The reserved byte is left alone.
func (p *PixelBuffer) Set(i int, r, g, b uint8) {
	base := i * BytesPerPixel
	p.data[base+0] = b
	p.data[base+1] = g
	p.data[base+2] = r
}

// At returns the red, green and blue channels of cell i.
func (p *PixelBuffer) At(i int) (r, g, b uint8) {
	base := i * BytesPerPixel
	return p.data[base+2], p.data[base+1], p.data[base+0]
}

// SameShape reports whether o has the same dimensions as p.
func (p *PixelBuffer) SameShape(o *PixelBuffer) bool {
	return o != nil && p.W == o.W && p.H == o.H
}
