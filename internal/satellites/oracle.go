package satellites

import (
	"fmt"
	"math"

	"satellites/internal/core"
)

// Oracle is the sequential reference for both parallel phases. It only runs
// during the first validated frames, so it favours plain loops over speed.
type Oracle struct {
	gravity  float64
	dt       float64
	subSteps int

	size  core.Size
	satR  float32
	holeR float32
	posX  []float64
	posY  []float64
	velX  []float64
	velY  []float64
}

// NewOracle builds the reference for cfg.
func NewOracle(cfg Config) *Oracle {
	return &Oracle{
		gravity:  cfg.Params.Gravity,
		dt:       cfg.Dt(),
		subSteps: cfg.Params.SubSteps,
		size:     cfg.Size(),
		satR:     cfg.Params.SatelliteRadius,
		holeR:    cfg.Params.BlackHoleRadius,
	}
}

// Integrate advances bodies one frame on a single goroutine. The sub-step
// loop is outermost and every body takes one step per iteration; per body the
// arithmetic is the same sequence the parallel integrator performs.
func (o *Oracle) Integrate(bodies []core.Body, attractor core.Vec2) {
	n := len(bodies)
	if cap(o.posX) < n {
		o.posX = make([]float64, n)
		o.posY = make([]float64, n)
		o.velX = make([]float64, n)
		o.velY = make([]float64, n)
	}
	posX, posY := o.posX[:n], o.posY[:n]
	velX, velY := o.velX[:n], o.velY[:n]
	for i := range bodies {
		posX[i] = float64(bodies[i].Position.X)
		posY[i] = float64(bodies[i].Position.Y)
		velX[i] = float64(bodies[i].Velocity.X)
		velY[i] = float64(bodies[i].Velocity.Y)
	}

	ax := float64(attractor.X)
	ay := float64(attractor.Y)
	for step := 0; step < o.subSteps; step++ {
		for i := 0; i < n; i++ {
			toHoleX := posX[i] - ax
			toHoleY := posY[i] - ay
			distSquared := float64(toHoleX*toHoleX) + float64(toHoleY*toHoleY)
			invDist := 1 / math.Sqrt(distSquared)
			invDist3 := float64(invDist*invDist) * invDist

			forceX := float64(o.gravity*toHoleX) * invDist3
			forceY := float64(o.gravity*toHoleY) * invDist3
			velX[i] -= float64(forceX * o.dt)
			velY[i] -= float64(forceY * o.dt)

			posX[i] += float64(velX[i] * o.dt)
			posY[i] += float64(velY[i] * o.dt)
		}
	}

	for i := range bodies {
		bodies[i].Position.X = float32(posX[i])
		bodies[i].Position.Y = float32(posY[i])
		bodies[i].Velocity.X = float32(velX[i])
		bodies[i].Velocity.Y = float32(velY[i])
	}
}

// Shade fills dst with the two-pass formulation: the first pass finds the
// nearest body and the weight total from explicit distances, the second adds
// every body's weighted color.
func (o *Oracle) Shade(bodies []core.Body, attractor core.Vec2, dst *core.PixelBuffer) error {
	if dst == nil || dst.W != o.size.W || dst.H != o.size.H {
		return fmt.Errorf("oracle: destination does not match %dx%d screen", o.size.W, o.size.H)
	}
	total := dst.Len()
	for i := 0; i < total; i++ {
		px := float32(i % o.size.W)
		py := float32(i / o.size.W)

		hx := px - attractor.X
		hy := py - attractor.Y
		if float32(math.Sqrt(float64(hx*hx+hy*hy))) < o.holeR {
			dst.Set(i, 0, 0, 0)
			continue
		}

		var render core.Color
		shortest := float32(math.Inf(1))
		var weights float32
		hit := false
		for j := range bodies {
			dx := px - bodies[j].Position.X
			dy := py - bodies[j].Position.Y
			dist := float32(math.Sqrt(float64(dx*dx + dy*dy)))
			if dist < o.satR {
				render = core.Color{R: 1, G: 1, B: 1}
				hit = true
				break
			}
			weights += 1 / (dist * dist * dist * dist)
			if dist < shortest {
				shortest = dist
				render = bodies[j].Identifier
			}
		}

		if !hit {
			for j := range bodies {
				dx := px - bodies[j].Position.X
				dy := py - bodies[j].Position.Y
				dist2 := dx*dx + dy*dy
				weight := 1 / (dist2 * dist2)
				render.R += (bodies[j].Identifier.R * weight / weights) * 3
				render.G += (bodies[j].Identifier.G * weight / weights) * 3
				render.B += (bodies[j].Identifier.B * weight / weights) * 3
			}
		}
		dst.Set(i, channel(render.R), channel(render.G), channel(render.B))
	}
	return nil
}

// CompareBodies returns one IntegrationDivergence per body whose position or
// velocity bits differ between got and want.
func CompareBodies(frame uint64, got, want []core.Body) []error {
	var errs []error
	for i := range got {
		if i >= len(want) || !sameBits(got[i], want[i]) {
			d := &IntegrationDivergence{Frame: frame, Body: i, Got: got[i]}
			if i < len(want) {
				d.Want = want[i]
			}
			errs = append(errs, d)
		}
	}
	return errs
}

func sameBits(a, b core.Body) bool {
	fields := [...][2]float32{
		{a.Identifier.R, b.Identifier.R},
		{a.Identifier.G, b.Identifier.G},
		{a.Identifier.B, b.Identifier.B},
		{a.Position.X, b.Position.X},
		{a.Position.Y, b.Position.Y},
		{a.Velocity.X, b.Velocity.X},
		{a.Velocity.Y, b.Velocity.Y},
	}
	for _, f := range fields {
		if math.Float32bits(f[0]) != math.Float32bits(f[1]) {
			return false
		}
	}
	return true
}

// ShadingCheck summarizes one comparison of a pixel buffer against the
// reference.
type ShadingCheck struct {
	Mismatches int
	First      *PixelMismatch
}

// ComparePixels counts pixels of got that differ from want by more than
// allowedError in any channel.
func ComparePixels(got, want *core.PixelBuffer, allowedError int) (ShadingCheck, error) {
	if !got.SameShape(want) {
		return ShadingCheck{}, fmt.Errorf("compare: %dx%d buffer against %dx%d reference", got.W, got.H, want.W, want.H)
	}
	var check ShadingCheck
	total := got.Len()
	for i := 0; i < total; i++ {
		gr, gg, gb := got.At(i)
		wr, wg, wb := want.At(i)
		if absDiff(gr, wr) > allowedError || absDiff(gg, wg) > allowedError || absDiff(gb, wb) > allowedError {
			check.Mismatches++
			if check.First == nil {
				check.First = &PixelMismatch{
					X:    i % got.W,
					Y:    i / got.W,
					Got:  [3]uint8{gr, gg, gb},
					Want: [3]uint8{wr, wg, wb},
				}
			}
		}
	}
	return check, nil
}

func absDiff(a, b uint8) int {
	d := int(a) - int(b)
	if d < 0 {
		return -d
	}
	return d
}
