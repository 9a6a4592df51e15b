// Package config provides YAML-based game configuration loading for the
// Flappy Bird simulation.
package config

import (
	"errors"
	"fmt"
	"time"
)

// FlappyConfig contains all configuration for the Flappy Bird game.
type FlappyConfig struct {
	World   WorldConfig   `yaml:"world"`
	Bird    BirdConfig    `yaml:"bird"`
	Physics PhysicsConfig `yaml:"physics"`
	Pipes   PipesConfig   `yaml:"pipes"`
}

// WorldConfig defines the play area.
type WorldConfig struct {
	Width    float64 `yaml:"width"`
	Height   float64 `yaml:"height"`
	TickRate int     `yaml:"tick_rate"`
}

// BirdConfig defines the bird's spawn point and size.
type BirdConfig struct {
	SpawnX       float64 `yaml:"spawn_x"`
	SpawnY       float64 `yaml:"spawn_y"`
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	HitboxFactor float64 `yaml:"hitbox_factor"`
}

// PhysicsConfig defines per-tick bird physics.
type PhysicsConfig struct {
	Gravity        float64 `yaml:"gravity"`
	JumpImpulse    float64 `yaml:"jump_impulse"`
	RotationFactor float64 `yaml:"rotation_factor"`
}

// PipesConfig defines pipe geometry, spawning and hitbox trimming.
//
// SideTrim and GapTrim are measured against the raw sprite at the default
// Width and Height. They do not scale on their own: changing the sprite size
// requires changing the trims by hand.
type PipesConfig struct {
	SpawnX        float64       `yaml:"spawn_x"`
	Width         float64       `yaml:"width"`
	Height        float64       `yaml:"height"`
	GapHeight     float64       `yaml:"gap_height"`
	GapMinY       float64       `yaml:"gap_min_y"`
	GapRange      int           `yaml:"gap_range"`
	Speed         float64       `yaml:"speed"`
	SpawnInterval time.Duration `yaml:"spawn_interval"`
	SideTrim      float64       `yaml:"side_trim"`
	GapTrim       float64       `yaml:"gap_trim"`
}

// TickDuration returns the simulated time covered by one tick.
func (c FlappyConfig) TickDuration() time.Duration {
	if c.World.TickRate <= 0 {
		return time.Second / 60
	}
	return time.Second / time.Duration(c.World.TickRate)
}

// Validate reports every setting that would make the simulation meaningless.
func (c FlappyConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.World.Width > 0 && c.World.Height > 0,
		"world size must be positive, got %gx%g", c.World.Width, c.World.Height)
	check(c.World.TickRate > 0, "world.tick_rate must be positive, got %d", c.World.TickRate)
	check(c.Bird.Width > 0, "bird.width must be positive, got %g", c.Bird.Width)
	check(c.Bird.HitboxFactor > 0 && c.Bird.HitboxFactor <= 1,
		"bird.hitbox_factor must be in (0, 1], got %g", c.Bird.HitboxFactor)
	check(c.Bird.SpawnY >= 0 && c.Bird.SpawnY <= c.World.Height,
		"bird.spawn_y %g is outside the world", c.Bird.SpawnY)
	check(c.Physics.Gravity > 0, "physics.gravity must be positive, got %g", c.Physics.Gravity)
	check(c.Physics.JumpImpulse < 0, "physics.jump_impulse must be negative, got %g", c.Physics.JumpImpulse)
	check(c.Pipes.Width > 2*c.Pipes.SideTrim,
		"pipes.side_trim %g consumes the whole pipe width %g", c.Pipes.SideTrim, c.Pipes.Width)
	check(c.Pipes.Height > c.Pipes.GapTrim,
		"pipes.gap_trim %g consumes the whole pipe height %g", c.Pipes.GapTrim, c.Pipes.Height)
	check(c.Pipes.SideTrim >= 0 && c.Pipes.GapTrim >= 0, "pipe trims must not be negative")
	check(c.Pipes.GapHeight > 0, "pipes.gap_height must be positive, got %g", c.Pipes.GapHeight)
	check(c.Pipes.GapRange > 0, "pipes.gap_range must be positive, got %d", c.Pipes.GapRange)
	check(c.Pipes.GapMinY >= 0 && c.Pipes.GapMinY+float64(c.Pipes.GapRange) <= c.World.Height,
		"gap band [%g, %g) leaves the world", c.Pipes.GapMinY, c.Pipes.GapMinY+float64(c.Pipes.GapRange))
	check(c.Pipes.Speed > 0, "pipes.speed must be positive, got %g", c.Pipes.Speed)
	check(c.Pipes.SpawnInterval > 0, "pipes.spawn_interval must be positive, got %s", c.Pipes.SpawnInterval)

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid flappy config: %w", errors.Join(errs...))
	}
	return nil
}
