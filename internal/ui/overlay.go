//go:build ebiten

package ui

import (
	"image/color"

	"satellites/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

type bodyProvider interface {
	Bodies() []core.Body
}

// velocityScale stretches velocities (pixels per millisecond) into visible
// arrows.
const velocityScale = 400

// Overlay draws optional debugging visuals on top of the field.
type Overlay struct {
	bodies       bodyProvider
	showVelocity bool
	showPointer  bool
	attractor    core.Vec2
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(bodies bodyProvider) *Overlay {
	return &Overlay{bodies: bodies}
}

// Update toggles the layers: V for velocity vectors, A for the attractor marker.
func (o *Overlay) Update(attractor core.Vec2) {
	o.attractor = attractor
	if inpututil.IsKeyJustPressed(ebiten.KeyV) {
		o.showVelocity = !o.showVelocity
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyA) {
		o.showPointer = !o.showPointer
	}
}

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if o.showVelocity {
		arrow := color.RGBA{R: 64, G: 200, B: 255, A: 255}
		for _, b := range o.bodies.Bodies() {
			x0, y0 := b.Position.X, b.Position.Y
			x1 := x0 + b.Velocity.X*velocityScale
			y1 := y0 + b.Velocity.Y*velocityScale
			vector.StrokeLine(screen, x0, y0, x1, y1, 1, arrow, true)
		}
	}
	if o.showPointer {
		vector.StrokeCircle(screen, o.attractor.X, o.attractor.Y, 12, 1, color.RGBA{R: 255, G: 120, B: 40, A: 255}, true)
	}
}
