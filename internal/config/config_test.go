package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := parseFlappy(defaultFlappyYAML)
	if err != nil {
		t.Fatalf("embedded YAML does not parse: %v", err)
	}
	if cfg != DefaultFlappyConfig() {
		t.Errorf("embedded YAML and DefaultFlappyConfig differ:\n yaml: %+v\n go:   %+v", cfg, DefaultFlappyConfig())
	}
}

func TestDefaultsAreValid(t *testing.T) {
	if err := DefaultFlappyConfig().Validate(); err != nil {
		t.Fatalf("defaults should validate: %v", err)
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*FlappyConfig)
		want   string
	}{
		{"zero world", func(c *FlappyConfig) { c.World.Width = 0 }, "world size"},
		{"positive jump", func(c *FlappyConfig) { c.Physics.JumpImpulse = 2 }, "jump_impulse"},
		{"side trim too wide", func(c *FlappyConfig) { c.Pipes.SideTrim = 180 }, "side_trim"},
		{"gap band outside world", func(c *FlappyConfig) { c.Pipes.GapMinY = 500 }, "gap band"},
		{"zero interval", func(c *FlappyConfig) { c.Pipes.SpawnInterval = 0 }, "spawn_interval"},
		{"hitbox factor above one", func(c *FlappyConfig) { c.Bird.HitboxFactor = 1.5 }, "hitbox_factor"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultFlappyConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("error %q should mention %q", err, tc.want)
			}
		})
	}
}

func TestTickDuration(t *testing.T) {
	cfg := DefaultFlappyConfig()
	if got := cfg.TickDuration(); got != time.Second/60 {
		t.Errorf("TickDuration() = %s, expected %s", got, time.Second/60)
	}
}

func TestLoadFlappyCustomPathOverridesOnlyGivenKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flappy.yaml")
	content := "physics:\n  gravity: 0.9\npipes:\n  spawn_interval: 2s\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, source, err := LoadFlappy(path)
	if err != nil {
		t.Fatalf("LoadFlappy() failed: %v", err)
	}
	if source != path {
		t.Errorf("source = %q, expected %q", source, path)
	}
	if cfg.Physics.Gravity != 0.9 {
		t.Errorf("gravity = %g, expected 0.9", cfg.Physics.Gravity)
	}
	if cfg.Pipes.SpawnInterval != 2*time.Second {
		t.Errorf("spawn interval = %s, expected 2s", cfg.Pipes.SpawnInterval)
	}
	if cfg.Physics.JumpImpulse != -8.5 {
		t.Errorf("unset keys should keep defaults, jump impulse = %g", cfg.Physics.JumpImpulse)
	}
}

func TestLoadFlappyCustomPathErrors(t *testing.T) {
	if _, _, err := LoadFlappy(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing custom config should be an error")
	}

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(bad, []byte("world: [not, a, map"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, _, err := LoadFlappy(bad); err == nil {
		t.Error("malformed custom config should be an error")
	}
}

func TestLoadFlappyFallsBackToEmbedded(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	chdir(t, t.TempDir())

	cfg, source, err := LoadFlappy("")
	if err != nil {
		t.Fatalf("LoadFlappy() failed: %v", err)
	}
	if source != SourceEmbedded {
		t.Errorf("source = %q, expected %q", source, SourceEmbedded)
	}
	if cfg != DefaultFlappyConfig() {
		t.Error("embedded fallback should equal defaults")
	}
}

func TestLoadFlappyLocalConfigsDir(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()
	chdir(t, dir)

	if err := os.MkdirAll("configs", 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join("configs", "flappy.yaml"), []byte("pipes:\n  speed: 5\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, source, err := LoadFlappy("")
	if err != nil {
		t.Fatalf("LoadFlappy() failed: %v", err)
	}
	if source != filepath.Join("configs", "flappy.yaml") {
		t.Errorf("source = %q", source)
	}
	if cfg.Pipes.Speed != 5 {
		t.Errorf("speed = %g, expected 5", cfg.Pipes.Speed)
	}
}

func TestMarshalParsesBack(t *testing.T) {
	data, err := Marshal(DefaultFlappyConfig())
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	if !strings.Contains(string(data), "spawn_interval: 1.6s") {
		t.Errorf("durations should be written as strings:\n%s", data)
	}
	cfg, err := parseFlappy(data)
	if err != nil {
		t.Fatalf("marshalled config does not parse: %v", err)
	}
	if cfg != DefaultFlappyConfig() {
		t.Error("marshalled config should decode to the same values")
	}
}

// chdir changes the working directory for the duration of the test,
// mirroring testing.T.Chdir (Go 1.24+) for older toolchains.
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatal(err)
		}
	})
}
