package satellites

import (
	"math"
	"testing"

	"satellites/internal/core"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateDeterministic(t *testing.T) {
	a := Generate(core.NewRNG(42), 64, 1920, 1024)
	b := Generate(core.NewRNG(42), 64, 1920, 1024)
	require.Equal(t, a, b, "same seed must produce the same bodies")

	c := Generate(core.NewRNG(43), 64, 1920, 1024)
	assert.NotEqual(t, a, c, "different seeds should produce different bodies")

	zero := Generate(core.NewRNG(0), 8, 1920, 1024)
	def := Generate(core.NewRNG(core.DefaultSeed), 8, 1920, 1024)
	assert.Equal(t, def, zero, "seed 0 selects the default seed")
}

func TestGenerateQuadrantsAndColors(t *testing.T) {
	const n, w, h = 64, 1920, 1024
	cx, cy := float32(w/2), float32(h/2)
	bodies := Generate(core.NewRNG(3), n, w, h)

	for i, b := range bodies {
		assert.GreaterOrEqual(t, b.Identifier.R, float32(0.1), "body %d red", i)
		assert.Less(t, b.Identifier.R, float32(0.25), "body %d red", i)
		assert.Less(t, b.Identifier.G, float32(0.14), "body %d green", i)
		assert.Less(t, b.Identifier.B, float32(0.16), "body %d blue", i)

		dx := b.Position.X - cx
		dy := b.Position.Y - cy
		if (i/2)%2 == 0 {
			assert.Less(t, dx, float32(0), "body %d should be left of center", i)
		} else {
			assert.Greater(t, dx, float32(0), "body %d should be right of center", i)
		}
		if i < n/2 {
			assert.Less(t, dy, float32(0), "body %d should be above center", i)
		} else {
			assert.Greater(t, dy, float32(0), "body %d should be below center", i)
		}
		for _, off := range []float32{dx, dy} {
			abs := float32(math.Abs(float64(off)))
			assert.GreaterOrEqual(t, abs, float32(49.99), "body %d offset", i)
			assert.LessOrEqual(t, abs, float32(320.01), "body %d offset", i)
		}
	}
}

func TestGenerateTangentialAlternatingOrbits(t *testing.T) {
	const w, h = 1920, 1024
	cx, cy := float64(w/2), float64(h/2)
	bodies := Generate(core.NewRNG(11), 32, w, h)

	for i, b := range bodies {
		rx := float64(b.Position.X) - cx
		ry := float64(b.Position.Y) - cy
		vx := float64(b.Velocity.X)
		vy := float64(b.Velocity.Y)
		r := math.Hypot(rx, ry)
		speed := math.Hypot(vx, vy)

		assert.InDelta(t, 0, (rx*vx+ry*vy)/(r*speed), 1e-4, "body %d velocity must be tangential", i)
		assert.InDelta(t, 0.06, speed, 0.0101, "body %d speed", i)

		cross := rx*vy - ry*vx
		if i%2 == 0 {
			assert.Less(t, cross, 0.0, "even body %d orbits clockwise on screen", i)
		} else {
			assert.Greater(t, cross, 0.0, "odd body %d orbits counterclockwise on screen", i)
		}
	}
}

func TestStoreSnapshot(t *testing.T) {
	bodies := Generate(core.NewRNG(5), 4, 720, 720)
	store := NewStore(bodies)
	store.Snapshot()
	require.Equal(t, store.Bodies(), store.Backup())

	store.Bodies()[0].Position.X += 1
	assert.NotEqual(t, store.Bodies()[0], store.Backup()[0], "backup must be a copy")
}
