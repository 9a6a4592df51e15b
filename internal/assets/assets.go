// Package assets loads the visual resources the game needs before the first
// tick: the bird sprite, the pipe sprite and the banner font used for the
// score. Every resource is a small YAML file; the defaults are embedded and a
// directory may replace them.
package assets

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/flappy-tui/internal/core"
)

//go:embed defaults/*.yaml
var embedded embed.FS

// Resource file names inside an asset directory.
const (
	BirdFile = "bird.yaml"
	PipeFile = "pipe.yaml"
	FontFile = "font.yaml"
)

// ErrMissing is matched by errors.Is for any resource that could not be found.
var ErrMissing = errors.New("missing resource")

// MissingError names the resource that could not be loaded.
type MissingError struct {
	Resource string // "bird sprite", "pipe sprite" or "font"
	Path     string
	Err      error
}

func (e *MissingError) Error() string {
	return fmt.Sprintf("assets: could not load %s (%s): %v", e.Resource, e.Path, e.Err)
}

// Unwrap exposes both ErrMissing and the underlying fs error.
func (e *MissingError) Unwrap() []error {
	return []error{ErrMissing, e.Err}
}

// Pack holds every loaded resource.
type Pack struct {
	Bird   BirdSprite
	Pipe   PipeSprite
	Font   Font
	Source string // "embedded" or the directory the pack was read from
}

// Load reads all resources from dir. An empty dir loads the embedded defaults.
func Load(dir string) (*Pack, error) {
	if dir == "" {
		sub, err := fs.Sub(embedded, "defaults")
		if err != nil {
			return nil, fmt.Errorf("assets: embedded defaults: %w", err)
		}
		return LoadFS(sub, "embedded")
	}

	info, err := os.Stat(dir)
	if err != nil {
		return nil, &MissingError{Resource: "asset directory", Path: dir, Err: err}
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("assets: %s is not a directory", dir)
	}
	return LoadFS(os.DirFS(dir), dir)
}

// LoadFS reads all resources from fsys. source is recorded in the pack and
// used in error messages.
func LoadFS(fsys fs.FS, source string) (*Pack, error) {
	p := &Pack{Source: source}

	if err := decode(fsys, source, BirdFile, "bird sprite", &p.Bird); err != nil {
		return nil, err
	}
	if err := p.Bird.validate(); err != nil {
		return nil, fmt.Errorf("assets: bird sprite: %w", err)
	}

	if err := decode(fsys, source, PipeFile, "pipe sprite", &p.Pipe); err != nil {
		return nil, err
	}
	if err := p.Pipe.validate(); err != nil {
		return nil, fmt.Errorf("assets: pipe sprite: %w", err)
	}

	if err := decode(fsys, source, FontFile, "font", &p.Font); err != nil {
		return nil, err
	}
	if err := p.Font.validate(); err != nil {
		return nil, fmt.Errorf("assets: font: %w", err)
	}

	return p, nil
}

func decode(fsys fs.FS, source, name, resource string, out any) error {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return &MissingError{Resource: resource, Path: source + "/" + name, Err: err}
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("assets: failed to parse %s %s/%s: %w", resource, source, name, err)
	}
	return nil
}

// BirdSprite has one frame per tilt direction.
type BirdSprite struct {
	ColorName string          `yaml:"color"`
	Frames    BirdSpriteFrame `yaml:"frames"`
	Color     core.Color      `yaml:"-"`
}

// BirdSpriteFrame lists the rows of each tilt frame.
type BirdSpriteFrame struct {
	Up    []string `yaml:"up"`
	Level []string `yaml:"level"`
	Down  []string `yaml:"down"`
}

// Tilt thresholds in degrees for picking a bird frame.
const (
	tiltUp   = -15.0
	tiltDown = 15.0
)

// Frame returns the rows to draw for the given rotation in degrees.
func (b BirdSprite) Frame(rotation float64) []string {
	switch {
	case rotation < tiltUp:
		return b.Frames.Up
	case rotation > tiltDown:
		return b.Frames.Down
	default:
		return b.Frames.Level
	}
}

func (b *BirdSprite) validate() error {
	for name, rows := range map[string][]string{
		"up": b.Frames.Up, "level": b.Frames.Level, "down": b.Frames.Down,
	} {
		if len(rows) == 0 {
			return fmt.Errorf("frame %q is empty", name)
		}
	}
	c, ok := core.ParseColor(b.ColorName)
	if !ok {
		return fmt.Errorf("unknown color %q", b.ColorName)
	}
	b.Color = c
	return nil
}

// PipeSprite holds the runes used to fill a pipe.
type PipeSprite struct {
	ColorName    string     `yaml:"color"`
	CapColorName string     `yaml:"cap_color"`
	BodyText     string     `yaml:"body"`
	EdgeText     string     `yaml:"edge"`
	CapTopText   string     `yaml:"cap_top"`
	CapBotText   string     `yaml:"cap_bottom"`
	Color        core.Color `yaml:"-"`
	CapColor     core.Color `yaml:"-"`
	Body         rune       `yaml:"-"`
	Edge         rune       `yaml:"-"`
	CapTop       rune       `yaml:"-"` // Drawn on the gap end of a top pipe
	CapBottom    rune       `yaml:"-"` // Drawn on the gap end of a bottom pipe
}

func (p *PipeSprite) validate() error {
	var err error
	if p.Body, err = singleRune("body", p.BodyText); err != nil {
		return err
	}
	if p.Edge, err = singleRune("edge", p.EdgeText); err != nil {
		return err
	}
	if p.CapTop, err = singleRune("cap_top", p.CapTopText); err != nil {
		return err
	}
	if p.CapBottom, err = singleRune("cap_bottom", p.CapBotText); err != nil {
		return err
	}

	var ok bool
	if p.Color, ok = core.ParseColor(p.ColorName); !ok {
		return fmt.Errorf("unknown color %q", p.ColorName)
	}
	if p.CapColor, ok = core.ParseColor(p.CapColorName); !ok {
		return fmt.Errorf("unknown cap color %q", p.CapColorName)
	}
	return nil
}

func singleRune(field, s string) (rune, error) {
	if utf8.RuneCountInString(s) != 1 {
		return 0, fmt.Errorf("%s must be exactly one character, got %q", field, s)
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r, nil
}
