//go:build ebiten

package render

import (
	"fmt"

	"satellites/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
)

// KageShader runs the Field Shader on the GPU. Shade draws the kernel over an
// offscreen image covering the whole screen and reads the result back, which
// blocks until the GPU has finished the frame.
type KageShader struct {
	size     core.Size
	shader   *ebiten.Shader
	target   *ebiten.Image
	readback []byte
	args     *kernelArgs
}

// NewKageShader compiles the kernel for cfg.Bodies bodies.
func NewKageShader(cfg core.ShaderConfig) (*KageShader, error) {
	if cfg.Size.W <= 0 || cfg.Size.H <= 0 {
		return nil, fmt.Errorf("invalid screen size %dx%d", cfg.Size.W, cfg.Size.H)
	}
	src, err := FieldKernelSource(cfg.Bodies)
	if err != nil {
		return nil, err
	}
	shader, err := ebiten.NewShader(src)
	if err != nil {
		return nil, fmt.Errorf("compiling field kernel: %w", err)
	}
	return &KageShader{
		size:     cfg.Size,
		shader:   shader,
		target:   ebiten.NewImage(cfg.Size.W, cfg.Size.H),
		readback: make([]byte, 4*cfg.Size.W*cfg.Size.H),
		args:     newKernelArgs(cfg.Bodies, cfg.SatelliteRadius, cfg.BlackHoleRadius),
	}, nil
}

// Name returns the backend identifier.
func (k *KageShader) Name() string { return "kage" }

// Shade fills dst for the given body positions and attractor.
func (k *KageShader) Shade(bodies []core.Body, attractor core.Vec2, dst *core.PixelBuffer) error {
	if dst == nil || dst.W != k.size.W || dst.H != k.size.H {
		return fmt.Errorf("kage shader: destination does not match %dx%d screen", k.size.W, k.size.H)
	}
	uniforms, err := k.args.uniforms(bodies, attractor)
	if err != nil {
		return err
	}
	op := &ebiten.DrawRectShaderOptions{Uniforms: uniforms, Blend: ebiten.BlendCopy}
	k.target.DrawRectShader(k.size.W, k.size.H, k.shader, op)
	k.target.ReadPixels(k.readback)
	fillBGRX(dst, k.readback)
	return nil
}

// Close releases the GPU resources.
func (k *KageShader) Close() error {
	k.shader.Dispose()
	k.target.Dispose()
	return nil
}

func init() {
	core.RegisterShader("kage", func(cfg core.ShaderConfig) (core.FieldShader, error) {
		return NewKageShader(cfg)
	})
}
