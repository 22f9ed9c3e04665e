package satellites

import (
	"fmt"
	"runtime"
	"strconv"

	"satellites/internal/core"

	"gopkg.in/gcfg.v1"
)

// Params holds the physical and visual constants of the simulation.
type Params struct {
	SatelliteRadius float32
	BlackHoleRadius float32
	Gravity         float64
	// FrameInterval is the simulated time of one frame in milliseconds, the
	// unit velocities are expressed in.
	FrameInterval float64
	SubSteps      int
}

// CheckParams controls the Reference Oracle.
type CheckParams struct {
	ValidationFrames  int
	AllowedError      int
	AllowedMismatches int
}

// Config controls the satellite simulation.
type Config struct {
	Width  int
	Height int
	Bodies int

	Seed int64

	Workers int
	RowBand int
	Backend string

	Params Params
	Check  CheckParams
}

// DefaultConfig returns the reference configuration.
func DefaultConfig() Config {
	return Config{
		Width:   1920,
		Height:  1024,
		Bodies:  64,
		Workers: runtime.NumCPU(),
		RowBand: 1,
		Backend: "cpu",
		Params: Params{
			SatelliteRadius: 3.16,
			BlackHoleRadius: 4.5,
			Gravity:         1.0,
			FrameInterval:   32,
			SubSteps:        100000,
		},
		Check: CheckParams{
			ValidationFrames:  2,
			AllowedError:      10,
			AllowedMismatches: 10,
		},
	}
}

// Size returns the screen dimensions.
func (c Config) Size() core.Size { return core.Size{W: c.Width, H: c.Height} }

// Dt returns the length of one sub-step.
func (c Config) Dt() float64 {
	return c.Params.FrameInterval / float64(c.Params.SubSteps)
}

// ShaderConfig derives the parameters handed to Field Shader backends.
func (c Config) ShaderConfig() core.ShaderConfig {
	return core.ShaderConfig{
		Size:            c.Size(),
		Bodies:          c.Bodies,
		Workers:         c.Workers,
		RowBand:         c.RowBand,
		SatelliteRadius: c.Params.SatelliteRadius,
		BlackHoleRadius: c.Params.BlackHoleRadius,
	}
}

// Validate reports the first field that cannot drive a simulation.
func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("screen size must be positive, got %dx%d", c.Width, c.Height)
	case c.Bodies <= 0:
		return fmt.Errorf("bodies must be positive, got %d", c.Bodies)
	case c.Workers <= 0:
		return fmt.Errorf("workers must be positive, got %d", c.Workers)
	case c.RowBand < 1:
		return fmt.Errorf("row band must be at least 1, got %d", c.RowBand)
	case c.Backend == "":
		return fmt.Errorf("backend must be named")
	case c.Params.SatelliteRadius <= 0:
		return fmt.Errorf("satellite radius must be positive, got %g", c.Params.SatelliteRadius)
	case c.Params.BlackHoleRadius <= 0:
		return fmt.Errorf("black hole radius must be positive, got %g", c.Params.BlackHoleRadius)
	case c.Params.FrameInterval <= 0:
		return fmt.Errorf("frame interval must be positive, got %g", c.Params.FrameInterval)
	case c.Params.SubSteps <= 0:
		return fmt.Errorf("sub-steps must be positive, got %d", c.Params.SubSteps)
	case c.Check.ValidationFrames < 0:
		return fmt.Errorf("validation frames must not be negative, got %d", c.Check.ValidationFrames)
	case c.Check.AllowedError < 0:
		return fmt.Errorf("allowed error must not be negative, got %d", c.Check.AllowedError)
	case c.Check.AllowedMismatches < 0:
		return fmt.Errorf("allowed mismatches must not be negative, got %d", c.Check.AllowedMismatches)
	}
	return nil
}

// FromMap populates the config from a string map (flag-style key/value pairs).
// Unparseable values keep the default; range checks are left to Validate.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	c.ApplyMap(cfg)
	return c
}

// ApplyMap overrides fields of c with the values present in cfg. Values are
// taken as given, so out-of-range ones surface through Validate.
func (c *Config) ApplyMap(cfg map[string]string) {
	intValue := func(key string, dst *int) {
		if v, ok := cfg[key]; ok {
			if parsed, err := strconv.Atoi(v); err == nil {
				*dst = parsed
			}
		}
	}
	float32Value := func(key string, dst *float32) {
		if v, ok := cfg[key]; ok {
			if parsed, err := strconv.ParseFloat(v, 32); err == nil {
				*dst = float32(parsed)
			}
		}
	}
	float64Value := func(key string, dst *float64) {
		if v, ok := cfg[key]; ok {
			if parsed, err := strconv.ParseFloat(v, 64); err == nil {
				*dst = parsed
			}
		}
	}

	intValue("w", &c.Width)
	intValue("h", &c.Height)
	intValue("bodies", &c.Bodies)
	intValue("workers", &c.Workers)
	intValue("row_band", &c.RowBand)
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["backend"]; ok && v != "" {
		c.Backend = v
	}
	float32Value("satellite_radius", &c.Params.SatelliteRadius)
	float32Value("black_hole_radius", &c.Params.BlackHoleRadius)
	float64Value("gravity", &c.Params.Gravity)
	float64Value("frame_interval", &c.Params.FrameInterval)
	intValue("substeps", &c.Params.SubSteps)
	intValue("validation_frames", &c.Check.ValidationFrames)
	intValue("allowed_error", &c.Check.AllowedError)
	intValue("allowed_mismatches", &c.Check.AllowedMismatches)
}

// fileConfig mirrors Config in the gcfg INI layout:
//
//	[screen]
//	width = 1920
//	height = 1024
//
//	[physics]
//	bodies = 64
//	substeps = 100000
//
//	[render]
//	backend = cpu
//
//	[check]
//	allowederror = 10
type fileConfig struct {
	Screen struct {
		Width  int
		Height int
	}
	Physics struct {
		Bodies        int
		Seed          int64
		Gravity       float64
		FrameInterval float64
		SubSteps      int
	}
	Render struct {
		Backend         string
		Workers         int
		RowBand         int
		SatelliteRadius float64
		BlackHoleRadius float64
	}
	Check struct {
		ValidationFrames  int
		AllowedError      int
		AllowedMismatches int
	}
}

func (c Config) toFile() *fileConfig {
	f := &fileConfig{}
	f.Screen.Width = c.Width
	f.Screen.Height = c.Height
	f.Physics.Bodies = c.Bodies
	f.Physics.Seed = c.Seed
	f.Physics.Gravity = c.Params.Gravity
	f.Physics.FrameInterval = c.Params.FrameInterval
	f.Physics.SubSteps = c.Params.SubSteps
	f.Render.Backend = c.Backend
	f.Render.Workers = c.Workers
	f.Render.RowBand = c.RowBand
	f.Render.SatelliteRadius = float64(c.Params.SatelliteRadius)
	f.Render.BlackHoleRadius = float64(c.Params.BlackHoleRadius)
	f.Check.ValidationFrames = c.Check.ValidationFrames
	f.Check.AllowedError = c.Check.AllowedError
	f.Check.AllowedMismatches = c.Check.AllowedMismatches
	return f
}

func (f *fileConfig) apply(c *Config) {
	c.Width = f.Screen.Width
	c.Height = f.Screen.Height
	c.Bodies = f.Physics.Bodies
	c.Seed = f.Physics.Seed
	c.Params.Gravity = f.Physics.Gravity
	c.Params.FrameInterval = f.Physics.FrameInterval
	c.Params.SubSteps = f.Physics.SubSteps
	c.Backend = f.Render.Backend
	c.Workers = f.Render.Workers
	c.RowBand = f.Render.RowBand
	c.Params.SatelliteRadius = float32(f.Render.SatelliteRadius)
	c.Params.BlackHoleRadius = float32(f.Render.BlackHoleRadius)
	c.Check.ValidationFrames = f.Check.ValidationFrames
	c.Check.AllowedError = f.Check.AllowedError
	c.Check.AllowedMismatches = f.Check.AllowedMismatches
}

// LoadFile overlays the gcfg file at path onto base. Variables missing from
// the file keep their value from base.
func LoadFile(path string, base Config) (Config, error) {
	f := base.toFile()
	if err := gcfg.ReadFileInto(f, path); err != nil {
		return base, fmt.Errorf("reading config %s: %w", path, err)
	}
	f.apply(&base)
	if err := base.Validate(); err != nil {
		return base, fmt.Errorf("config %s: %w", path, err)
	}
	return base, nil
}

// LoadString is LoadFile for in-memory config text.
func LoadString(text string, base Config) (Config, error) {
	f := base.toFile()
	if err := gcfg.ReadStringInto(f, text); err != nil {
		return base, fmt.Errorf("parsing config: %w", err)
	}
	f.apply(&base)
	if err := base.Validate(); err != nil {
		return base, err
	}
	return base, nil
}
