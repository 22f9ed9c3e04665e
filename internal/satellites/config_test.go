package satellites

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigIsReference(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 1920, cfg.Width)
	assert.Equal(t, 1024, cfg.Height)
	assert.Equal(t, 64, cfg.Bodies)
	assert.Equal(t, 100000, cfg.Params.SubSteps)
	assert.Equal(t, float32(3.16), cfg.Params.SatelliteRadius)
	assert.Equal(t, float32(4.5), cfg.Params.BlackHoleRadius)
	assert.InDelta(t, 32.0/100000.0, cfg.Dt(), 1e-15)
	assert.Equal(t, 10, cfg.Check.AllowedError)
	assert.Equal(t, 10, cfg.Check.AllowedMismatches)
	assert.Equal(t, 2, cfg.Check.ValidationFrames)
}

func TestFromMap(t *testing.T) {
	cfg := FromMap(map[string]string{
		"w":                 "640",
		"h":                 "480",
		"bodies":            "8",
		"seed":              "-3",
		"substeps":          "500",
		"satellite_radius":  "2.5",
		"allowed_error":     "0",
		"backend":           "kage",
		"workers":           "not-a-number",
		"black_hole_radius": "-1",
	})
	assert.Equal(t, 640, cfg.Width)
	assert.Equal(t, 480, cfg.Height)
	assert.Equal(t, 8, cfg.Bodies)
	assert.Equal(t, int64(-3), cfg.Seed)
	assert.Equal(t, 500, cfg.Params.SubSteps)
	assert.Equal(t, float32(2.5), cfg.Params.SatelliteRadius)
	assert.Equal(t, 0, cfg.Check.AllowedError)
	assert.Equal(t, "kage", cfg.Backend)
	assert.Equal(t, DefaultConfig().Workers, cfg.Workers, "unparseable values keep the default")
	assert.Equal(t, float32(-1), cfg.Params.BlackHoleRadius, "range checks belong to Validate")
	assert.Error(t, cfg.Validate())

	assert.Equal(t, DefaultConfig(), FromMap(nil))
}

func TestApplyMapKeepsNonPositiveValuesForValidate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ApplyMap(map[string]string{"workers": "0", "substeps": "-5"})
	assert.Equal(t, 0, cfg.Workers)
	assert.Equal(t, -5, cfg.Params.SubSteps)
	assert.Error(t, cfg.Validate())
}

func TestValidate(t *testing.T) {
	cases := map[string]func(*Config){
		"width":      func(c *Config) { c.Width = 0 },
		"bodies":     func(c *Config) { c.Bodies = -1 },
		"workers":    func(c *Config) { c.Workers = 0 },
		"row band":   func(c *Config) { c.RowBand = 0 },
		"backend":    func(c *Config) { c.Backend = "" },
		"radius":     func(c *Config) { c.Params.SatelliteRadius = 0 },
		"hole":       func(c *Config) { c.Params.BlackHoleRadius = -2 },
		"interval":   func(c *Config) { c.Params.FrameInterval = 0 },
		"substeps":   func(c *Config) { c.Params.SubSteps = 0 },
		"frames":     func(c *Config) { c.Check.ValidationFrames = -1 },
		"error":      func(c *Config) { c.Check.AllowedError = -1 },
		"mismatches": func(c *Config) { c.Check.AllowedMismatches = -1 },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := DefaultConfig()
			mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

const sampleConfig = `
[screen]
width = 800
height = 600

[physics]
bodies = 12
substeps = 5000
frameinterval = 16

[render]
backend = cpu
rowband = 4
satelliteradius = 2

[check]
allowedmismatches = 25
`

func TestLoadString(t *testing.T) {
	base := DefaultConfig()
	base.Seed = 99
	cfg, err := LoadString(sampleConfig, base)
	require.NoError(t, err)

	assert.Equal(t, 800, cfg.Width)
	assert.Equal(t, 600, cfg.Height)
	assert.Equal(t, 12, cfg.Bodies)
	assert.Equal(t, 5000, cfg.Params.SubSteps)
	assert.Equal(t, 16.0, cfg.Params.FrameInterval)
	assert.Equal(t, 4, cfg.RowBand)
	assert.Equal(t, float32(2), cfg.Params.SatelliteRadius)
	assert.Equal(t, 25, cfg.Check.AllowedMismatches)

	assert.Equal(t, int64(99), cfg.Seed, "missing variables keep the base value")
	assert.Equal(t, base.Params.BlackHoleRadius, cfg.Params.BlackHoleRadius)
	assert.Equal(t, base.Check.AllowedError, cfg.Check.AllowedError)
}

func TestLoadStringRejectsInvalid(t *testing.T) {
	_, err := LoadString("[physics]\nsubsteps = 0\n", DefaultConfig())
	assert.Error(t, err)

	_, err = LoadString("[nosuchsection]\nx = 1\n", DefaultConfig())
	assert.Error(t, err)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "satellites.gcfg")
	require.NoError(t, os.WriteFile(path, []byte(sampleConfig), 0o644))

	cfg, err := LoadFile(path, DefaultConfig())
	require.NoError(t, err)
	assert.Equal(t, 800, cfg.Width)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.gcfg"), DefaultConfig())
	assert.Error(t, err)
}
