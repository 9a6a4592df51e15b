package assets

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/vovakirdan/flappy-tui/internal/core"
)

// Font is a fixed-height banner font. Only the glyphs it defines can be
// rendered; other runes become blank columns.
type Font struct {
	Height    int                 `yaml:"height"`
	ColorName string              `yaml:"color"`
	Glyphs    map[string][]string `yaml:"glyphs"`
	Color     core.Color          `yaml:"-"`
}

func (f *Font) validate() error {
	if f.Height <= 0 {
		return fmt.Errorf("height must be positive, got %d", f.Height)
	}
	for d := '0'; d <= '9'; d++ {
		rows, ok := f.Glyphs[string(d)]
		if !ok {
			return fmt.Errorf("glyph %q is missing", d)
		}
		if len(rows) != f.Height {
			return fmt.Errorf("glyph %q has %d rows, expected %d", d, len(rows), f.Height)
		}
	}
	c, ok := core.ParseColor(f.ColorName)
	if !ok {
		return fmt.Errorf("unknown color %q", f.ColorName)
	}
	f.Color = c
	return nil
}

// Render lays out text as Height rows, one column of space between glyphs.
// All rows have the same rune width.
func (f Font) Render(text string) []string {
	rows := make([]strings.Builder, f.Height)
	first := true
	for _, r := range text {
		glyph := f.Glyphs[string(r)]
		w := glyphWidth(glyph)
		if glyph == nil {
			w = 1
		}
		for i := range rows {
			if !first {
				rows[i].WriteRune(' ')
			}
			line := ""
			if i < len(glyph) {
				line = glyph[i]
			}
			rows[i].WriteString(line)
			rows[i].WriteString(strings.Repeat(" ", w-utf8.RuneCountInString(line)))
		}
		first = false
	}

	out := make([]string, f.Height)
	for i := range rows {
		out[i] = rows[i].String()
	}
	return out
}

func glyphWidth(rows []string) int {
	w := 0
	for _, r := range rows {
		if n := utf8.RuneCountInString(r); n > w {
			w = n
		}
	}
	return w
}
