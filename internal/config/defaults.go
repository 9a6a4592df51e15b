package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/flappy.yaml
var defaultFlappyYAML []byte

// DefaultFlappyConfig returns the default Flappy Bird configuration.
// It matches defaults/flappy.yaml.
func DefaultFlappyConfig() FlappyConfig {
	return FlappyConfig{
		World: WorldConfig{
			Width:    400,
			Height:   600,
			TickRate: 60,
		},
		Bird: BirdConfig{
			SpawnX:       70,
			SpawnY:       300,
			Width:        48,
			Height:       34,
			HitboxFactor: 0.7,
		},
		Physics: PhysicsConfig{
			Gravity:        0.6,
			JumpImpulse:    -8.5,
			RotationFactor: 3.0,
		},
		Pipes: PipesConfig{
			SpawnX:        450,
			Width:         360,
			Height:        576,
			GapHeight:     160,
			GapMinY:       150,
			GapRange:      250,
			Speed:         3.5,
			SpawnInterval: 1600 * time.Millisecond,
			SideTrim:      140,
			GapTrim:       50,
		},
	}
}

// DefaultFlappyYAML returns the embedded default YAML.
func DefaultFlappyYAML() []byte {
	return defaultFlappyYAML
}
