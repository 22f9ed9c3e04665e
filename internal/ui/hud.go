//go:build ebiten

package ui

import (
	"fmt"
	"image/color"
	"strings"

	"satellites/internal/core"
	"satellites/internal/satellites"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

const (
	hudLineHeight = 14
	hudPadding    = 6
)

type parameterProvider interface {
	Parameters() core.ParameterSnapshot
}

// HUD renders frame latency, the oracle verdict and the running
// configuration in the top-left corner.
type HUD struct {
	visible bool
	params  []string
	status  []string
	timing  string
	average string
	frame   uint64
}

// NewHUD constructs a HUD showing the parameters of provider.
func NewHUD(provider parameterProvider) *HUD {
	h := &HUD{visible: true}
	h.Refresh(provider)
	return h
}

// Refresh rebuilds the parameter lines, e.g. after a reset changed the seed.
func (h *HUD) Refresh(provider parameterProvider) {
	h.params = h.params[:0]
	for _, g := range provider.Parameters().Groups {
		parts := make([]string, 0, len(g.Params))
		for _, p := range g.Params {
			parts = append(parts, p.Label+"="+p.Value)
		}
		h.params = append(h.params, g.Name+": "+strings.Join(parts, " "))
	}
	h.status = nil
}

// Toggle shows or hides the HUD.
func (h *HUD) Toggle() { h.visible = !h.visible }

// Observe records the outcome of one frame.
func (h *HUD) Observe(r satellites.FrameReport) {
	h.frame = r.Frame
	if r.Validated {
		if r.OK() {
			h.status = append(h.status, fmt.Sprintf("frame %d: check passed (%d wrong pixels)", r.Frame, r.Shading.Mismatches))
		}
		for _, err := range r.Divergences {
			h.status = append(h.status, fmt.Sprintf("frame %d: %v", r.Frame, err))
		}
	}
	if r.HasTiming {
		h.timing = "latency " + r.Timing.String()
		h.average = "average " + r.Average.String()
	}
}

func (h *HUD) lines() []string {
	out := []string{fmt.Sprintf("frame %d", h.frame)}
	if h.timing != "" {
		out = append(out, h.timing, h.average)
	}
	out = append(out, h.status...)
	return append(out, h.params...)
}

// Draw renders the HUD onto screen.
func (h *HUD) Draw(screen *ebiten.Image) {
	if !h.visible {
		return
	}
	lines := h.lines()
	width := 0
	for _, l := range lines {
		if w := len(l) * 7; w > width {
			width = w
		}
	}
	height := len(lines)*hudLineHeight + 2*hudPadding
	vector.DrawFilledRect(screen, 0, 0, float32(width+2*hudPadding), float32(height), color.RGBA{A: 160}, false)

	face := basicfont.Face7x13
	for i, l := range lines {
		text.Draw(screen, l, face, hudPadding, hudPadding+(i+1)*hudLineHeight-3, color.White)
	}
}
