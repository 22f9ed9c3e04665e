package satellites

import (
	"fmt"
	"math"
	"testing"

	"satellites/internal/core"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParallelIntegrationMatchesOracleExactly(t *testing.T) {
	cfg := testConfig()
	initial := Generate(core.NewRNG(cfg.Seed), cfg.Bodies, cfg.Width, cfg.Height)

	attractors := []core.Vec2{cfg.Size().Center(), {X: 300, Y: 410}}
	for _, workers := range []int{1, 3, 7, 16, 64} {
		for _, attractor := range attractors {
			t.Run(fmt.Sprintf("workers=%d/attractor=%v", workers, attractor), func(t *testing.T) {
				cfg := cfg
				cfg.Workers = workers

				parallel := cloneBodies(initial)
				reference := cloneBodies(initial)
				require.NoError(t, NewIntegrator(cfg).Advance(parallel, attractor))
				NewOracle(cfg).Integrate(reference, attractor)

				assert.Empty(t, CompareBodies(0, parallel, reference))
				assert.NotEqual(t, initial, parallel, "bodies should have moved")
			})
		}
	}
}

func TestIntegrationDeterministicAcrossFrames(t *testing.T) {
	cfg := testConfig()
	run := func() []core.Body {
		bodies := Generate(core.NewRNG(cfg.Seed), cfg.Bodies, cfg.Width, cfg.Height)
		in := NewIntegrator(cfg)
		for frame := 0; frame < 2; frame++ {
			require.NoError(t, in.Advance(bodies, cfg.Size().Center()))
		}
		return bodies
	}
	first := run()
	second := run()
	assert.Empty(t, CompareBodies(1, first, second))
}

func TestIntegrationSymmetricPair(t *testing.T) {
	cfg := testConfig()
	center := cfg.Size().Center()
	bodies := []core.Body{
		{Position: core.Vec2{X: center.X, Y: center.Y - 100}},
		{Position: core.Vec2{X: center.X, Y: center.Y + 100}},
	}
	before := cloneBodies(bodies)

	require.NoError(t, NewIntegrator(cfg).Advance(bodies, center))

	north := bodies[0].Position.Y - before[0].Position.Y
	south := bodies[1].Position.Y - before[1].Position.Y
	assert.Greater(t, north, float32(0), "north body falls toward the attractor")
	assert.Less(t, south, float32(0), "south body falls toward the attractor")
	assert.InDelta(t, float64(north), float64(-south), 1e-3)

	assert.Equal(t, center.X, bodies[0].Position.X, "no sideways motion")
	assert.Equal(t, center.X, bodies[1].Position.X, "no sideways motion")
	assert.InDelta(t, float64(bodies[0].Velocity.Y), float64(-bodies[1].Velocity.Y), 1e-6)

	// Constant pull of G/r^2 over one frame of 32 time units.
	assert.InDelta(t, 0.5*1e-4*32*32, float64(north), 1e-3)
}

func TestIntegrationCircularOrbitStaysBounded(t *testing.T) {
	cfg := testConfig()
	cfg.Params.FrameInterval = 320
	cfg.Params.SubSteps = 1000
	center := cfg.Size().Center()

	const r0 = 100.0
	speed := float32(math.Sqrt(cfg.Params.Gravity / r0))
	bodies := []core.Body{
		{Position: core.Vec2{X: center.X + r0, Y: center.Y}, Velocity: core.Vec2{Y: speed}},
		{Position: core.Vec2{X: center.X, Y: center.Y - r0}, Velocity: core.Vec2{X: speed}},
	}

	in := NewIntegrator(cfg)
	for frame := 0; frame < 200; frame++ {
		require.NoError(t, in.Advance(bodies, center))
		for i, b := range bodies {
			r := math.Hypot(float64(b.Position.X-center.X), float64(b.Position.Y-center.Y))
			if r < 0.9*r0 || r > 1.1*r0 {
				t.Fatalf("frame %d: body %d drifted to radius %.2f", frame, i, r)
			}
		}
	}
}

func TestIntegrationReferenceBodiesStayOnScreenScale(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Bodies = 16
	bodies := Generate(core.NewRNG(1), cfg.Bodies, cfg.Width, cfg.Height)
	center := cfg.Size().Center()

	in := NewIntegrator(cfg)
	for frame := 0; frame < 5; frame++ {
		require.NoError(t, in.Advance(bodies, center))
	}
	for i, b := range bodies {
		r := math.Hypot(float64(b.Position.X-center.X), float64(b.Position.Y-center.Y))
		assert.Greater(t, r, 1.0, "body %d collapsed", i)
		assert.Less(t, r, 1000.0, "body %d escaped", i)
		assert.False(t, math.IsNaN(r), "body %d is NaN", i)
	}
}
