package render

import (
	"fmt"

	"satellites/internal/core"
)

// fieldKernel is the Field Shader as a Kage fragment program. Kage loops need
// constant bounds, so the body count is baked into the source. dstPos is a
// position on the texture atlas, so the image origin is subtracted first.
// The result is truncated to 8 bits like the CPU path; the GPU clamps instead
// of wrapping.
const fieldKernel = `//kage:unit pixels

package main

var Positions [%[1]d]vec2
var Colors [%[1]d]vec3
var Attractor vec2
var BlackHoleR2 float
var SatelliteR2 float

func Fragment(dstPos vec4, srcPos vec2, color vec4) vec4 {
	p := floor(dstPos.xy - imageDstOrigin())
	h := p - Attractor
	if dot(h, h) < BlackHoleR2 {
		return vec4(0, 0, 0, 1)
	}

	sum := vec3(0)
	weights := 0.0
	shortest := 1e30
	nearest := vec3(0)
	for i := 0; i < %[1]d; i++ {
		d := p - Positions[i]
		d2 := dot(d, d)
		if d2 < SatelliteR2 {
			return vec4(1)
		}
		w := 1.0 / (d2 * d2)
		weights += w
		sum += Colors[i] * w
		if d2 < shortest {
			shortest = d2
			nearest = Colors[i]
		}
	}
	c := nearest + 3.0*(sum/weights)
	return vec4(floor(c*255.0)/255.0, 1)
}
`

// FieldKernelSource returns the Kage source for n bodies.
func FieldKernelSource(n int) ([]byte, error) {
	if n <= 0 {
		return nil, fmt.Errorf("field kernel: body count must be positive, got %d", n)
	}
	return []byte(fmt.Sprintf(fieldKernel, n)), nil
}

// kernelArgs packs bodies into the uniform layout of fieldKernel. Identifier
// colors never change for a Body Store, so they are packed again only when
// they differ from the cached copy (after a reset).
type kernelArgs struct {
	positions []float32
	colors    []float32
	cached    []core.Color
	satR2     float32
	holeR2    float32
	packed    bool
}

func newKernelArgs(n int, satR, holeR float32) *kernelArgs {
	return &kernelArgs{
		positions: make([]float32, 2*n),
		colors:    make([]float32, 3*n),
		cached:    make([]core.Color, n),
		satR2:     satR * satR,
		holeR2:    holeR * holeR,
	}
}

func (k *kernelArgs) uniforms(bodies []core.Body, attractor core.Vec2) (map[string]any, error) {
	if len(bodies) != len(k.cached) {
		return nil, fmt.Errorf("field kernel compiled for %d bodies, got %d", len(k.cached), len(bodies))
	}
	for i, b := range bodies {
		k.positions[2*i+0] = b.Position.X
		k.positions[2*i+1] = b.Position.Y
		if !k.packed || k.cached[i] != b.Identifier {
			k.cached[i] = b.Identifier
			k.colors[3*i+0] = b.Identifier.R
			k.colors[3*i+1] = b.Identifier.G
			k.colors[3*i+2] = b.Identifier.B
		}
	}
	k.packed = true
	return map[string]any{
		"Positions":   k.positions,
		"Colors":      k.colors,
		"Attractor":   []float32{attractor.X, attractor.Y},
		"BlackHoleR2": k.holeR2,
		"SatelliteR2": k.satR2,
	}, nil
}
