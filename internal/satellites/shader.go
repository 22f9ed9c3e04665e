package satellites

import (
	"fmt"
	"math"

	"satellites/internal/core"
)

// RowShader is the CPU Field Shader. Rows are grouped into bands of RowBand
// rows and the bands are split statically across Workers goroutines; each
// pixel reads the bodies and writes only its own cell.
type RowShader struct {
	size    core.Size
	workers int
	band    int
	satR2   float32
	holeR2  float32
}

// NewRowShader builds the CPU backend.
func NewRowShader(cfg core.ShaderConfig) (*RowShader, error) {
	if cfg.Size.W <= 0 || cfg.Size.H <= 0 {
		return nil, fmt.Errorf("invalid screen size %dx%d", cfg.Size.W, cfg.Size.H)
	}
	band := cfg.RowBand
	if band < 1 {
		band = 1
	}
	return &RowShader{
		size:    cfg.Size,
		workers: cfg.Workers,
		band:    band,
		satR2:   cfg.SatelliteRadius * cfg.SatelliteRadius,
		holeR2:  cfg.BlackHoleRadius * cfg.BlackHoleRadius,
	}, nil
}

// Name returns the backend identifier.
func (s *RowShader) Name() string { return "cpu" }

// Close is a no-op for the CPU backend.
func (s *RowShader) Close() error { return nil }

// Shade fills dst for the given body positions and attractor.
func (s *RowShader) Shade(bodies []core.Body, attractor core.Vec2, dst *core.PixelBuffer) error {
	if dst == nil || dst.W != s.size.W || dst.H != s.size.H {
		return fmt.Errorf("cpu shader: destination does not match %dx%d screen", s.size.W, s.size.H)
	}
	bands := (s.size.H + s.band - 1) / s.band
	return core.Partition(bands, s.workers, func(lo, hi int) error {
		yEnd := hi * s.band
		if yEnd > s.size.H {
			yEnd = s.size.H
		}
		for y := lo * s.band; y < yEnd; y++ {
			s.shadeRow(bodies, attractor, dst, y)
		}
		return nil
	})
}

func (s *RowShader) shadeRow(bodies []core.Body, attractor core.Vec2, dst *core.PixelBuffer, y int) {
	idx := dst.Index(0, y)
	py := float32(y)
	for x := 0; x < s.size.W; x, idx = x+1, idx+1 {
		px := float32(x)

		hx := px - attractor.X
		hy := py - attractor.Y
		if float32(hx*hx)+float32(hy*hy) < s.holeR2 {
			dst.Set(idx, 0, 0, 0)
			continue
		}

		var sumR, sumG, sumB, weights float32
		shortest := float32(math.Inf(1))
		var nearest core.Color
		hit := false
		for j := range bodies {
			b := &bodies[j]
			dx := px - b.Position.X
			dy := py - b.Position.Y
			d2 := float32(dx*dx) + float32(dy*dy)
			if d2 < s.satR2 {
				hit = true
				break
			}

			w := 1 / float32(d2*d2)
			weights += w
			sumR += float32(b.Identifier.R * w)
			sumG += float32(b.Identifier.G * w)
			sumB += float32(b.Identifier.B * w)

			if d2 < shortest {
				shortest = d2
				nearest = b.Identifier
			}
		}
		if hit {
			dst.Set(idx, 255, 255, 255)
			continue
		}

		inv := 1 / weights
		dst.Set(idx,
			channel(nearest.R+3*float32(sumR*inv)),
			channel(nearest.G+3*float32(sumG*inv)),
			channel(nearest.B+3*float32(sumB*inv)),
		)
	}
}

// channel scales v to 8 bits by truncation. Values past 255 wrap instead of
// saturating; both shading paths share this conversion.
func channel(v float32) uint8 {
	return uint8(int32(v * 255))
}

func init() {
	core.RegisterShader("cpu", func(cfg core.ShaderConfig) (core.FieldShader, error) {
		return NewRowShader(cfg)
	})
}
