package flappy

import (
	"fmt"
	"math"
	"strconv"
	"unicode/utf8"

	"github.com/vovakirdan/flappy-tui/internal/assets"
	"github.com/vovakirdan/flappy-tui/internal/core"
)

// Overlay and HUD text.
const (
	textGameOver  = "GAME OVER"
	textNewRecord = "!NEW RECORD!"
	textRestart   = "Press SPACE to Restart"
	textStart     = "Press SPACE to flap"
)

// viewport maps world units onto screen cells. The world is stretched to
// fill the screen on both axes.
type viewport struct {
	sx, sy float64
}

func newViewport(dst *core.Screen, f Frame) viewport {
	return viewport{
		sx: float64(dst.Width()) / f.WorldW,
		sy: float64(dst.Height()) / f.WorldH,
	}
}

func (v viewport) cell(p core.Vec2) (int, int) {
	return int(math.Floor(p.X * v.sx)), int(math.Floor(p.Y * v.sy))
}

// rect converts a world rectangle to cells; anything with positive size
// covers at least one cell.
func (v viewport) rect(r core.RectF) core.Rect {
	x0 := int(math.Round(r.X * v.sx))
	y0 := int(math.Round(r.Y * v.sy))
	x1 := int(math.Round(r.Right() * v.sx))
	y1 := int(math.Round(r.Bottom() * v.sy))
	if r.W > 0 && x1 <= x0 {
		x1 = x0 + 1
	}
	if r.H > 0 && y1 <= y0 {
		y1 = y0 + 1
	}
	return core.NewRect(x0, y0, x1-x0, y1-y0)
}

// RenderFrame draws a frame into dst. It reads only the frame and the art.
func RenderFrame(dst *core.Screen, f Frame, art *assets.Pack) {
	dst.Clear()
	if f.WorldW <= 0 || f.WorldH <= 0 || dst.Width() == 0 || dst.Height() == 0 {
		return
	}
	vp := newViewport(dst, f)

	for _, p := range f.Pipes {
		drawPipe(dst, vp, p, art.Pipe)
	}
	drawBird(dst, vp, f.Bird, art.Bird)

	switch f.Phase {
	case PhaseGameOver:
		if f.Overlay != nil {
			drawOverlay(dst, *f.Overlay)
		}
	case PhaseNotStarted:
		drawScore(dst, f.Score, art.Font)
		dst.DrawTextCentered(dst.Height()*3/4, textStart, core.ColorBrightYellow)
	default:
		drawScore(dst, f.Score, art.Font)
	}
}

// drawPipe fills the visible part of a pipe and caps its gap end.
func drawPipe(dst *core.Screen, vp viewport, p PipeView, sprite assets.PipeSprite) {
	r := vp.rect(p.Hitbox)
	if r.W <= 0 || r.H <= 0 {
		return
	}
	dst.DrawRect(r, sprite.Body, sprite.Color)
	for y := r.Y; y < r.Bottom(); y++ {
		dst.SetColored(r.Right()-1, y, sprite.Edge, sprite.Color)
	}

	capY, capRune := r.Y, sprite.CapBottom
	if p.Orientation == Top {
		capY, capRune = r.Bottom()-1, sprite.CapTop
	}
	for x := r.X; x < r.Right(); x++ {
		dst.SetColored(x, capY, capRune, sprite.CapColor)
	}
}

// drawBird centers the frame matching the bird's tilt on its position.
func drawBird(dst *core.Screen, vp viewport, b BirdView, sprite assets.BirdSprite) {
	rows := sprite.Frame(b.Rotation)
	cx, cy := vp.cell(core.V(b.X, b.Y))

	width := 0
	for _, row := range rows {
		width = max(width, utf8.RuneCountInString(row))
	}
	x := cx - width/2
	y := cy - len(rows)/2
	for i, row := range rows {
		dst.DrawSprite(x, y+i, row, sprite.Color)
	}
}

// drawScore renders the live score in the banner font near the top.
func drawScore(dst *core.Screen, score int, font assets.Font) {
	rows := font.Render(strconv.Itoa(score))
	top := 1
	if dst.Height() < len(rows)+4 {
		top = 0
	}
	for i, row := range rows {
		dst.DrawTextCentered(top+i, row, font.Color)
	}
}

// overlayLine is one centered line of the game-over box.
type overlayLine struct {
	text  string
	color core.Color
}

// drawOverlay draws the game-over box in the center of the screen.
func drawOverlay(dst *core.Screen, o Overlay) {
	lines := []overlayLine{
		{textGameOver, core.ColorBrightRed},
		{},
		{fmt.Sprintf("Score: %d", o.Score), core.ColorBrightWhite},
		{fmt.Sprintf("Best: %d", o.Best), core.ColorBrightWhite},
	}
	if o.NewRecord {
		lines = append(lines, overlayLine{textNewRecord, core.ColorBrightYellow})
	}
	lines = append(lines, overlayLine{}, overlayLine{textRestart, core.ColorYellow})

	boxW := 0
	for _, l := range lines {
		boxW = max(boxW, utf8.RuneCountInString(l.text))
	}
	boxW += 4
	boxH := len(lines) + 2
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorGray)
	for i, l := range lines {
		if l.text == "" {
			continue
		}
		x := box.X + (boxW-utf8.RuneCountInString(l.text))/2
		dst.DrawTextColored(x, box.Y+1+i, l.text, l.color)
	}
}
