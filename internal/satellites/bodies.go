package satellites

import (
	"math"

	"satellites/internal/core"
)

// Store is the authoritative Body Store plus the backup snapshot the
// Reference Oracle integrates from.
type Store struct {
	bodies []core.Body
	backup []core.Body
}

// NewStore wraps bodies. The store takes ownership of the slice.
func NewStore(bodies []core.Body) *Store {
	return &Store{bodies: bodies, backup: make([]core.Body, len(bodies))}
}

// Bodies exposes the live bodies.
func (s *Store) Bodies() []core.Body { return s.bodies }

// Backup exposes the snapshot taken by the last Snapshot call.
func (s *Store) Backup() []core.Body { return s.backup }

// Len returns the body count.
func (s *Store) Len() int { return len(s.bodies) }

// Snapshot copies the live bodies into the backup.
func (s *Store) Snapshot() {
	copy(s.backup, s.bodies)
}

// Generate places n bodies around the center of a w*h screen. Each body gets
// a reddish identifier, a position 50 to 320 pixels from the center along
// each axis mirrored into a quadrant chosen by its index, and a velocity
// tangential to the center with a speed of about 0.06. Even indices orbit in
// the opposite direction to odd ones.
func Generate(rng *core.RNG, n, w, h int) []core.Body {
	cx := float32(w / 2)
	cy := float32(h / 2)
	bodies := make([]core.Body, n)
	for i := range bodies {
		id := core.Color{
			R: rng.Range(0, 0.15) + 0.1,
			G: rng.Range(0, 0.14),
			B: rng.Range(0, 0.16),
		}

		pos := core.Vec2{
			X: cx - rng.Range(50, 320),
			Y: cy - rng.Range(50, 320),
		}
		if (i/2)%2 != 0 {
			pos.X = float32(w) - pos.X
		}
		if i >= n/2 {
			pos.Y = float32(h) - pos.Y
		}

		toCenter := core.Vec2{X: pos.X - cx, Y: pos.Y - cy}
		dist := math.Sqrt(float64(toCenter.X)*float64(toCenter.X) + float64(toCenter.Y)*float64(toCenter.Y))
		scale := float32((0.06 + float64(rng.Range(-0.01, 0.01))) / dist)
		vel := core.Vec2{X: scale * -toCenter.Y, Y: scale * toCenter.X}
		if i%2 == 0 {
			vel.X = -vel.X
			vel.Y = -vel.Y
		}

		bodies[i] = core.Body{Identifier: id, Position: pos, Velocity: vel}
	}
	return bodies
}
