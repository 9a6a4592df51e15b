package flappy

import (
	"github.com/vovakirdan/flappy-tui/internal/config"
	"github.com/vovakirdan/flappy-tui/internal/core"
)

// Bird is the player. Its position is the center of the sprite; only the
// vertical axis moves.
type Bird struct {
	Pos      core.Vec2
	Velocity float64 // Vertical velocity per tick, negative is up

	cfg  config.BirdConfig
	phys config.PhysicsConfig
}

// NewBird creates a bird resting at its spawn point.
func NewBird(cfg config.BirdConfig, phys config.PhysicsConfig) Bird {
	b := Bird{cfg: cfg, phys: phys}
	b.Reset()
	return b
}

// Reset puts the bird back on its spawn point with no velocity.
func (b *Bird) Reset() {
	b.Pos = core.V(b.cfg.SpawnX, b.cfg.SpawnY)
	b.Velocity = 0
}

// Flap sets the velocity to the jump impulse. Flaps replace the current
// velocity instead of adding to it, so repeated flaps never stack.
func (b *Bird) Flap() {
	b.Velocity = b.phys.JumpImpulse
}

// Integrate applies one tick of gravity and moves the bird.
func (b *Bird) Integrate() {
	b.Velocity += b.phys.Gravity
	b.Pos.Y += b.Velocity
}

// Rotation is the sprite tilt in degrees, derived from velocity.
func (b Bird) Rotation() float64 {
	return b.Velocity * b.phys.RotationFactor
}

// Radius is the collision radius, a fraction of half the sprite width.
func (b Bird) Radius() float64 {
	return b.cfg.Width / 2 * b.cfg.HitboxFactor
}

// OutOfBounds reports whether the bird has left [0, height] vertically.
func (b Bird) OutOfBounds(height float64) bool {
	return b.Pos.Y < 0 || b.Pos.Y > height
}
