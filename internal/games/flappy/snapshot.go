package flappy

import "github.com/vovakirdan/flappy-tui/internal/core"

// BirdView is what the renderer needs to draw the bird.
type BirdView struct {
	X, Y     float64
	Rotation float64 // Degrees, positive tilts the beak down
	Radius   float64
}

// PipeView is one pipe plus its trimmed hitbox, which is also its visible
// extent.
type PipeView struct {
	Pipe
	Hitbox core.RectF
}

// Overlay is the game-over summary.
type Overlay struct {
	Score     int
	Best      int
	NewRecord bool
}

// Frame captures everything the renderer may look at for one tick. It is a
// copy; changing it does not affect the game.
type Frame struct {
	Tick    uint64
	Phase   Phase
	WorldW  float64
	WorldH  float64
	Bird    BirdView
	Pipes   []PipeView // Spawn order, top before bottom within a pair
	Score   int
	Overlay *Overlay // Set only in PhaseGameOver
}

// Frame returns a snapshot of the current state for presentation.
func (g *Game) Frame() Frame {
	trim := g.pipes.Trim()
	pairs := g.pipes.Pairs()
	views := make([]PipeView, 0, len(pairs)*2)
	for _, pp := range pairs {
		for _, p := range pp.Halves() {
			views = append(views, PipeView{Pipe: p, Hitbox: PipeHitbox(p.Bounds(), p.Orientation, trim)})
		}
	}

	f := Frame{
		Tick:   g.tick,
		Phase:  g.round.Phase,
		WorldW: g.cfg.World.Width,
		WorldH: g.cfg.World.Height,
		Bird: BirdView{
			X:        g.bird.Pos.X,
			Y:        g.bird.Pos.Y,
			Rotation: g.bird.Rotation(),
			Radius:   g.bird.Radius(),
		},
		Pipes: views,
		Score: g.round.Score,
	}
	if g.round.Phase == PhaseGameOver {
		f.Overlay = &Overlay{
			Score:     g.round.Score,
			Best:      g.round.HighScore,
			NewRecord: g.round.NewRecord,
		}
	}
	return f
}
