package core

import (
	"fmt"
	"sort"
)

// Size describes the dimensions of the screen in pixels.
type Size struct {
	W int
	H int
}

// Center returns the integer screen center, the default attractor location.
func (s Size) Center() Vec2 {
	return Vec2{X: float32(s.W / 2), Y: float32(s.H / 2)}
}

// Vec2 is a single precision 2D coordinate or vector in screen space.
type Vec2 struct {
	X float32
	Y float32
}

// Color holds three channels that are conceptually in [0, 1].
type Color struct {
	R float32
	G float32
	B float32
}

// Body is one satellite. Identifier never changes after initialization.
type Body struct {
	Identifier Color
	Position   Vec2
	Velocity   Vec2
}

// FieldShader fills a pixel buffer from the body positions and the attractor.
// Implementations must not retain bodies between calls and must write every
// cell of dst.
type FieldShader interface {
	Name() string
	Shade(bodies []Body, attractor Vec2, dst *PixelBuffer) error
	Close() error
}

// ShaderConfig carries the parameters every Field Shader backend needs.
type ShaderConfig struct {
	Size            Size
	Bodies          int
	Workers         int
	RowBand         int
	SatelliteRadius float32
	BlackHoleRadius float32
}

// ShaderFactory constructs a FieldShader backend.
type ShaderFactory func(cfg ShaderConfig) (FieldShader, error)

var shaders = map[string]ShaderFactory{}

// RegisterShader adds a Field Shader backend under the provided name.
func RegisterShader(name string, f ShaderFactory) {
	if name == "" || f == nil {
		return
	}
	shaders[name] = f
}

// ShaderNames lists the registered backends in sorted order.
func ShaderNames() []string {
	names := make([]string, 0, len(shaders))
	for name := range shaders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// NewShader builds the named backend.
func NewShader(name string, cfg ShaderConfig) (FieldShader, error) {
	factory, ok := shaders[name]
	if !ok {
		return nil, fmt.Errorf("unknown field shader backend %q (available: %v)", name, ShaderNames())
	}
	s, err := factory(cfg)
	if err != nil {
		return nil, fmt.Errorf("field shader backend %q: %w", name, err)
	}
	return s, nil
}
