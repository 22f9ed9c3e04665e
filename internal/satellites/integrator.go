package satellites

import (
	"math"

	"satellites/internal/core"
)

// Integrator advances bodies by one frame of semi-implicit Euler sub-steps
// under an inverse-square pull toward the attractor. Bodies are independent,
// so each worker owns a contiguous range of bodies and runs every sub-step of
// those bodies without synchronizing.
type Integrator struct {
	Gravity  float64
	Dt       float64
	SubSteps int
	Workers  int
}

// NewIntegrator builds the parallel integrator described by cfg.
func NewIntegrator(cfg Config) *Integrator {
	return &Integrator{
		Gravity:  cfg.Params.Gravity,
		Dt:       cfg.Dt(),
		SubSteps: cfg.Params.SubSteps,
		Workers:  cfg.Workers,
	}
}

// Advance moves every body forward one frame. The attractor is sampled once
// by the caller and stays fixed for all sub-steps.
func (in *Integrator) Advance(bodies []core.Body, attractor core.Vec2) error {
	ax := float64(attractor.X)
	ay := float64(attractor.Y)
	return core.Partition(len(bodies), in.Workers, func(lo, hi int) error {
		for i := lo; i < hi; i++ {
			in.advanceBody(&bodies[i], ax, ay)
		}
		return nil
	})
}

// advanceBody keeps the whole sub-step chain in float64 locals; only the
// load and the final store touch float32 storage. Products are converted
// explicitly so they are rounded before the addition and never fused.
func (in *Integrator) advanceBody(b *core.Body, ax, ay float64) {
	x := float64(b.Position.X)
	y := float64(b.Position.Y)
	vx := float64(b.Velocity.X)
	vy := float64(b.Velocity.Y)
	g := in.Gravity
	dt := in.Dt

	for step := 0; step < in.SubSteps; step++ {
		dx := x - ax
		dy := y - ay
		r2 := float64(dx*dx) + float64(dy*dy)
		invr := 1 / math.Sqrt(r2)
		invr3 := float64(invr*invr) * invr

		accX := float64(g*dx) * invr3
		accY := float64(g*dy) * invr3

		vx -= float64(accX * dt)
		vy -= float64(accY * dt)
		x += float64(vx * dt)
		y += float64(vy * dt)
	}

	b.Position = core.Vec2{X: float32(x), Y: float32(y)}
	b.Velocity = core.Vec2{X: float32(vx), Y: float32(vy)}
}
