package satellites

import (
	"testing"

	"satellites/internal/core"

	"github.com/stretchr/testify/require"
)

// testConfig keeps the reference constants but shrinks the screen, the body
// count and the sub-step count so a frame takes milliseconds.
func testConfig() Config {
	cfg := DefaultConfig()
	cfg.Width = 720
	cfg.Height = 720
	cfg.Bodies = 16
	cfg.Workers = 4
	cfg.Seed = 7
	cfg.Params.SubSteps = 2000
	return cfg
}

func newRowShader(t *testing.T, cfg Config) *RowShader {
	t.Helper()
	s, err := NewRowShader(cfg.ShaderConfig())
	require.NoError(t, err)
	return s
}

func cloneBodies(bodies []core.Body) []core.Body {
	return append([]core.Body(nil), bodies...)
}

func pixelAt(buf *core.PixelBuffer, x, y int) [3]uint8 {
	r, g, b := buf.At(buf.Index(x, y))
	return [3]uint8{r, g, b}
}
