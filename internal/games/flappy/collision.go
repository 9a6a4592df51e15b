package flappy

import "github.com/vovakirdan/flappy-tui/internal/core"

// Trim is the transparent padding of the pipe sprite, in world units.
// The values are fixed pixel margins of the default sprite at its default
// size; they do not follow a resized sprite.
type Trim struct {
	Side float64 // Removed from both the left and the right
	Gap  float64 // Removed from the gap-facing end only
}

// PipeHitbox shrinks a raw pipe rectangle to its visible part. A top pipe
// loses height at its bottom; a bottom pipe loses height at its top.
func PipeHitbox(raw core.RectF, o Orientation, t Trim) core.RectF {
	hb := raw
	hb.X += t.Side
	hb.W -= 2 * t.Side
	hb.H -= t.Gap
	if o == Bottom {
		hb.Y += t.Gap
	}
	return hb
}

// Collides tests the bird's circle against a pipe's trimmed rectangle.
func Collides(b Bird, p Pipe, t Trim) bool {
	return core.CircleIntersectsRect(b.Pos, b.Radius(), PipeHitbox(p.Bounds(), p.Orientation, t))
}
