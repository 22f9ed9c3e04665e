package satellites

import (
	"errors"
	"fmt"
	"log"
	"time"

	"satellites/internal/core"
)

// FrameReport describes what happened during one Driver.Step.
type FrameReport struct {
	Frame     uint64
	Attractor core.Vec2

	// Validated is set for frames checked by the Reference Oracle.
	Validated   bool
	Shading     ShadingCheck
	Divergences []error

	// Legend is set on the frame that starts latency accounting.
	Legend    bool
	HasTiming bool
	Timing    core.FrameTiming
	Average   core.FrameTiming
}

// OK reports whether the frame produced no divergence.
func (r FrameReport) OK() bool { return len(r.Divergences) == 0 }

// Log writes the frame diagnostics to l.
func (r FrameReport) Log(l *log.Logger) {
	for _, err := range r.Divergences {
		var integration *IntegrationDivergence
		var shading *ShadingDivergence
		switch {
		case errors.As(err, &integration):
			l.Print(integration.Error())
		case errors.As(err, &shading):
			l.Print(shading.First.String())
			l.Printf("Too many errors (%d) in frame %d", shading.Mismatches, shading.Frame)
		default:
			l.Print(err)
		}
	}
	if r.Validated && !r.hasShadingDivergence() {
		l.Printf("Error check passed with acceptable number of wrong pixels: %d", r.Shading.Mismatches)
	}
	if r.Legend {
		l.Print("Time spent on moving satellites + Time spent on space coloring : Total time in milliseconds between frames (might not equal the sum of the left-hand expression)")
	}
	if r.HasTiming {
		l.Printf("Latency of this frame %s", r.Timing)
		l.Printf("Averaged over all frames: %s.", r.Average)
	}
}

func (r FrameReport) hasShadingDivergence() bool {
	for _, err := range r.Divergences {
		var shading *ShadingDivergence
		if errors.As(err, &shading) {
			return true
		}
	}
	return false
}

// Driver owns the simulation context and runs one frame per Step: sample the
// attractor, integrate, shade and, during the first frames, check both
// phases against the Reference Oracle.
type Driver struct {
	cfg Config

	store      *Store
	integrator *Integrator
	shader     core.FieldShader
	oracle     *Oracle

	pixels    *core.PixelBuffer
	reference *core.PixelBuffer

	stats *core.FrameStats
	frame uint64
	seed  int64
}

// NewDriver generates the bodies for cfg.Seed and wires shader as the
// Field Shader. The driver closes the shader on Close.
func NewDriver(cfg Config, shader core.FieldShader) (*Driver, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	bodies := Generate(core.NewRNG(cfg.Seed), cfg.Bodies, cfg.Width, cfg.Height)
	d, err := NewDriverWithBodies(cfg, shader, bodies)
	if err != nil {
		return nil, err
	}
	d.seed = cfg.Seed
	return d, nil
}

// NewDriverWithBodies is NewDriver with a caller-provided initial Body Store.
func NewDriverWithBodies(cfg Config, shader core.FieldShader, bodies []core.Body) (*Driver, error) {
	if shader == nil {
		return nil, fmt.Errorf("driver: nil field shader")
	}
	if len(bodies) == 0 {
		return nil, fmt.Errorf("driver: no bodies")
	}
	cfg.Bodies = len(bodies)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Driver{
		cfg:        cfg,
		store:      NewStore(bodies),
		integrator: NewIntegrator(cfg),
		shader:     shader,
		oracle:     NewOracle(cfg),
		pixels:     core.NewPixelBuffer(cfg.Width, cfg.Height),
		reference:  core.NewPixelBuffer(cfg.Width, cfg.Height),
		stats:      core.NewFrameStats(),
		seed:       cfg.Seed,
	}, nil
}

// Config returns the configuration the driver runs with.
func (d *Driver) Config() Config { return d.cfg }

// Bodies exposes the live Body Store.
func (d *Driver) Bodies() []core.Body { return d.store.Bodies() }

// Pixels exposes the frame's pixel buffer.
func (d *Driver) Pixels() *core.PixelBuffer { return d.pixels }

// Shader returns the active Field Shader backend.
func (d *Driver) Shader() core.FieldShader { return d.shader }

// Frame returns the index of the next frame.
func (d *Driver) Frame() uint64 { return d.frame }

// Seed returns the seed of the current Body Store.
func (d *Driver) Seed() int64 { return d.seed }

// Stats exposes the latency accumulator.
func (d *Driver) Stats() *core.FrameStats { return d.stats }

// Reset regenerates the bodies for seed and restarts frame counting, so the
// next frames are validated again.
func (d *Driver) Reset(seed int64) {
	bodies := Generate(core.NewRNG(seed), d.cfg.Bodies, d.cfg.Width, d.cfg.Height)
	copy(d.store.Bodies(), bodies)
	d.seed = seed
	d.frame = 0
	d.stats.Reset()
}

// Close releases the Field Shader backend.
func (d *Driver) Close() error {
	return d.shader.Close()
}

// validating reports whether the current frame is checked by the oracle.
func (d *Driver) validating() bool {
	return d.frame < uint64(d.cfg.Check.ValidationFrames)
}

// Attractor resolves the pointer position for the current frame. Validated
// frames and a pointer at (0, 0) use the screen center.
func (d *Driver) Attractor(pointerX, pointerY int) core.Vec2 {
	if d.validating() || (pointerX == 0 && pointerY == 0) {
		return d.cfg.Size().Center()
	}
	return core.Vec2{X: float32(pointerX), Y: float32(pointerY)}
}

// Step runs one frame. Divergences are reported in the FrameReport; an error
// is returned only when the Field Shader backend fails.
func (d *Driver) Step(pointerX, pointerY int) (FrameReport, error) {
	start := time.Now()
	validating := d.validating()
	report := FrameReport{
		Frame:     d.frame,
		Attractor: d.Attractor(pointerX, pointerY),
		Validated: validating,
	}

	if validating {
		d.store.Snapshot()
	}
	if err := d.integrator.Advance(d.store.Bodies(), report.Attractor); err != nil {
		return report, fmt.Errorf("frame %d: integrate: %w", d.frame, err)
	}
	if validating {
		d.oracle.Integrate(d.store.Backup(), report.Attractor)
		report.Divergences = append(report.Divergences, CompareBodies(d.frame, d.store.Bodies(), d.store.Backup())...)
	}
	moved := time.Now()

	if err := d.shader.Shade(d.store.Bodies(), report.Attractor, d.pixels); err != nil {
		return report, fmt.Errorf("frame %d: shade with %s: %w", d.frame, d.shader.Name(), err)
	}
	colored := time.Now()

	if validating {
		if err := d.oracle.Shade(d.store.Bodies(), report.Attractor, d.reference); err != nil {
			return report, fmt.Errorf("frame %d: reference shade: %w", d.frame, err)
		}
		check, err := ComparePixels(d.pixels, d.reference, d.cfg.Check.AllowedError)
		if err != nil {
			return report, fmt.Errorf("frame %d: %w", d.frame, err)
		}
		report.Shading = check
		if check.Mismatches > d.cfg.Check.AllowedMismatches {
			report.Divergences = append(report.Divergences, &ShadingDivergence{
				Frame:      d.frame,
				Mismatches: check.Mismatches,
				Allowed:    d.cfg.Check.AllowedMismatches,
				First:      *check.First,
			})
		}
	} else if d.frame == uint64(d.cfg.Check.ValidationFrames) {
		d.stats.Start(colored)
		report.Legend = true
	} else {
		report.Timing = d.stats.Record(moved.Sub(start), colored.Sub(moved), colored)
		report.Average = d.stats.Average()
		report.HasTiming = true
	}

	d.frame++
	return report, nil
}
