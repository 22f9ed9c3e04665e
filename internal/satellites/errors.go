package satellites

import (
	"fmt"

	"satellites/internal/core"
)

// IntegrationDivergence reports a body whose parallel integration result is
// not bit-identical to the sequential one.
type IntegrationDivergence struct {
	Frame uint64
	Body  int
	Got   core.Body
	Want  core.Body
}

func (e *IntegrationDivergence) Error() string {
	return fmt.Sprintf("Incorrect satellite data of satellite: %d (frame %d)", e.Body, e.Frame)
}

// PixelMismatch is one pixel outside the shading tolerance.
type PixelMismatch struct {
	X, Y int
	Got  [3]uint8
	Want [3]uint8
}

func (m PixelMismatch) String() string {
	return fmt.Sprintf("Pixel x=%d y=%d value: %d, %d, %d. Should have been: %d, %d, %d",
		m.X, m.Y, m.Got[0], m.Got[1], m.Got[2], m.Want[0], m.Want[1], m.Want[2])
}

// ShadingDivergence reports a frame with more mismatching pixels than allowed.
type ShadingDivergence struct {
	Frame      uint64
	Mismatches int
	Allowed    int
	First      PixelMismatch
}

func (e *ShadingDivergence) Error() string {
	return fmt.Sprintf("%s; too many errors (%d > %d) in frame %d", e.First, e.Mismatches, e.Allowed, e.Frame)
}
