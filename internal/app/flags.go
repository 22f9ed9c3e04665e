package app

import (
	"flag"
	"fmt"
	"strconv"

	"satellites/internal/satellites"
)

// Config represents the command-line parameters for the application.
type Config struct {
	ConfigFile string
	Frames     int
	Sim        satellites.Config
}

// NewConfig returns a Config populated with the reference defaults.
func NewConfig() *Config {
	return &Config{Frames: 10, Sim: satellites.DefaultConfig()}
}

// Bind attaches the configuration to the provided FlagSet. Flag names match
// the keys understood by satellites.FromMap.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.ConfigFile, "config", c.ConfigFile, "gcfg file with [screen], [physics], [render] and [check] sections")
	fs.IntVar(&c.Frames, "frames", c.Frames, "frames to simulate when running headless")

	fs.IntVar(&c.Sim.Width, "w", c.Sim.Width, "screen width in pixels")
	fs.IntVar(&c.Sim.Height, "h", c.Sim.Height, "screen height in pixels")
	fs.IntVar(&c.Sim.Bodies, "bodies", c.Sim.Bodies, "number of satellites")
	fs.Int64Var(&c.Sim.Seed, "seed", c.Sim.Seed, "seed for body initialization (0 = default seed)")
	fs.IntVar(&c.Sim.Params.SubSteps, "substeps", c.Sim.Params.SubSteps, "physics sub-steps per frame")
	fs.Float64Var(&c.Sim.Params.FrameInterval, "frame_interval", c.Sim.Params.FrameInterval, "simulated milliseconds per frame")
	fs.Float64Var(&c.Sim.Params.Gravity, "gravity", c.Sim.Params.Gravity, "gravity coefficient")
	fs.IntVar(&c.Sim.Workers, "workers", c.Sim.Workers, "goroutines for the parallel phases")
	fs.IntVar(&c.Sim.RowBand, "row_band", c.Sim.RowBand, "rows per field shader work unit")
	fs.StringVar(&c.Sim.Backend, "backend", c.Sim.Backend, "field shader backend (cpu, or kage in GUI builds)")
	fs.IntVar(&c.Sim.Check.ValidationFrames, "validation_frames", c.Sim.Check.ValidationFrames, "frames checked against the sequential reference")
	fs.IntVar(&c.Sim.Check.AllowedError, "allowed_error", c.Sim.Check.AllowedError, "per-channel tolerance of the shading check")
	fs.IntVar(&c.Sim.Check.AllowedMismatches, "allowed_mismatches", c.Sim.Check.AllowedMismatches, "pixels allowed outside the tolerance")
}

// Resolve produces the simulation config after fs has been parsed. Values
// from the config file override the defaults and explicitly set flags
// override the file. A positional argument is taken as the seed.
func (c *Config) Resolve(fs *flag.FlagSet) (satellites.Config, error) {
	cfg := c.Sim
	if c.ConfigFile != "" {
		loaded, err := satellites.LoadFile(c.ConfigFile, satellites.DefaultConfig())
		if err != nil {
			return cfg, err
		}
		set := map[string]string{}
		fs.Visit(func(f *flag.Flag) { set[f.Name] = f.Value.String() })
		loaded.ApplyMap(set)
		cfg = loaded
	}
	if fs.NArg() > 0 {
		seed, err := strconv.ParseInt(fs.Arg(0), 10, 64)
		if err != nil {
			return cfg, fmt.Errorf("seed argument %q: %w", fs.Arg(0), err)
		}
		cfg.Seed = seed
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}
