package flappy

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/flappy-tui/internal/config"
	"github.com/vovakirdan/flappy-tui/internal/core"
)

// Orientation tells which half of a pair a pipe is. It decides which end of
// the sprite faces the gap.
type Orientation int

const (
	Top    Orientation = iota // Hangs from above, gap end at the bottom
	Bottom                    // Stands on the floor, gap end at the top
)

// String returns a human-readable name for the orientation.
func (o Orientation) String() string {
	switch o {
	case Top:
		return "top"
	case Bottom:
		return "bottom"
	default:
		return "unknown"
	}
}

// Pipe is one half of a pipe pair, as a plain value.
type Pipe struct {
	X           float64 // Left edge of the raw sprite
	EdgeY       float64 // Y of the gap-facing end
	Orientation Orientation
	Width       float64
	Height      float64
}

// Bounds returns the raw, untrimmed sprite rectangle.
func (p Pipe) Bounds() core.RectF {
	if p.Orientation == Top {
		return core.NewRectF(p.X, p.EdgeY-p.Height, p.Width, p.Height)
	}
	return core.NewRectF(p.X, p.EdgeY, p.Width, p.Height)
}

// CenterX returns the horizontal center of the sprite.
func (p Pipe) CenterX() float64 {
	return p.X + p.Width/2
}

// PipePair is a top and a bottom pipe spawned together. Both halves are
// derived from the same X and GapY, so they can never drift apart.
type PipePair struct {
	ID        uint64
	X         float64 // Shared left edge, decreases every tick
	GapY      float64 // Top of the gap, fixed for the pair's lifetime
	GapHeight float64
	width     float64
	height    float64
}

// Top returns the upper pipe; its gap end is at GapY.
func (pp PipePair) Top() Pipe {
	return Pipe{X: pp.X, EdgeY: pp.GapY, Orientation: Top, Width: pp.width, Height: pp.height}
}

// Bottom returns the lower pipe; its gap end is at GapY + GapHeight.
func (pp PipePair) Bottom() Pipe {
	return Pipe{X: pp.X, EdgeY: pp.GapY + pp.GapHeight, Orientation: Bottom, Width: pp.width, Height: pp.height}
}

// Halves returns both pipes, top first.
func (pp PipePair) Halves() [2]Pipe {
	return [2]Pipe{pp.Top(), pp.Bottom()}
}

// PipeManager handles spawning, movement, scoring and removal of pipe pairs.
// Pairs are kept in spawn order, which is also left-to-right order because
// they all spawn at the same X and move at the same speed.
type PipeManager struct {
	pairs   []PipePair
	rng     *rand.Rand
	cfg     config.PipesConfig
	elapsed time.Duration // Simulated time since the last spawn
	nextID  uint64
	spawned int
}

// NewPipeManager creates a new pipe manager with the given RNG seed.
func NewPipeManager(seed int64, cfg config.PipesConfig) *PipeManager {
	pm := &PipeManager{
		pairs: make([]PipePair, 0, 8),
		cfg:   cfg,
	}
	pm.Reset(seed)
	return pm
}

// Reset clears all pipes, zeroes the spawn timer and reseeds the RNG.
func (pm *PipeManager) Reset(seed int64) {
	pm.rng = rand.New(rand.NewSource(seed))
	pm.Clear()
	pm.elapsed = 0
	pm.spawned = 0
	pm.nextID = 0
}

// Clear removes every pipe. The spawn timer and the RNG stream both
// continue, so a round started after a long idle spawns right away.
func (pm *PipeManager) Clear() {
	pm.pairs = pm.pairs[:0]
}

// Trim returns the hitbox trims for this manager's sprites.
func (pm *PipeManager) Trim() Trim {
	return Trim{Side: pm.cfg.SideTrim, Gap: pm.cfg.GapTrim}
}

// Elapse advances the spawn timer. It runs on every tick in every phase;
// only a spawn resets it.
func (pm *PipeManager) Elapse(dt time.Duration) {
	pm.elapsed += dt
}

// MaybeSpawn spawns a pair once the timer has exceeded the interval and
// restarts the timer from zero.
func (pm *PipeManager) MaybeSpawn() bool {
	if pm.elapsed <= pm.cfg.SpawnInterval {
		return false
	}
	pm.Spawn()
	pm.elapsed = 0
	return true
}

// Spawn creates a pair with a gap drawn uniformly from the configured band.
func (pm *PipeManager) Spawn() PipePair {
	gapY := pm.cfg.GapMinY + float64(pm.rng.Intn(pm.cfg.GapRange))
	return pm.SpawnAt(gapY)
}

// SpawnAt creates a pair at the right edge with the gap starting at gapY.
func (pm *PipeManager) SpawnAt(gapY float64) PipePair {
	pm.nextID++
	pp := PipePair{
		ID:        pm.nextID,
		X:         pm.cfg.SpawnX,
		GapY:      gapY,
		GapHeight: pm.cfg.GapHeight,
		width:     pm.cfg.Width,
		height:    pm.cfg.Height,
	}
	pm.pairs = append(pm.pairs, pp)
	pm.spawned++
	return pp
}

// Advance moves every pair left by one tick's worth of speed.
// Speed is per tick, so motion is tied to the tick rate.
func (pm *PipeManager) Advance() {
	for i := range pm.pairs {
		pm.pairs[i].X -= pm.cfg.Speed
	}
}

// Collides reports whether the bird touches any active pipe.
func (pm *PipeManager) Collides(b Bird) bool {
	trim := pm.Trim()
	for _, pp := range pm.pairs {
		for _, p := range pp.Halves() {
			if Collides(b, p, trim) {
				return true
			}
		}
	}
	return false
}

// ScoreCrossings counts pairs whose bottom pipe center crossed birdX during
// the last Advance, i.e. lies in (birdX - speed, birdX]. The window is
// exactly one step wide, so each pair is counted on exactly one tick.
func (pm *PipeManager) ScoreCrossings(birdX float64) int {
	crossed := 0
	for _, pp := range pm.pairs {
		cx := pp.Bottom().CenterX()
		if cx > birdX-pm.cfg.Speed && cx <= birdX {
			crossed++
		}
	}
	return crossed
}

// Reap removes pairs that are fully past the left edge and returns how
// many were removed. Remaining pairs keep their order.
func (pm *PipeManager) Reap() int {
	kept := pm.pairs[:0]
	for _, pp := range pm.pairs {
		if pp.X+pp.width >= 0 {
			kept = append(kept, pp)
		}
	}
	removed := len(pm.pairs) - len(kept)
	pm.pairs = kept
	return removed
}

// Pairs returns the active pairs in spawn order.
func (pm *PipeManager) Pairs() []PipePair {
	return pm.pairs
}

// Spawned returns how many pairs were spawned since the last Reset.
func (pm *PipeManager) Spawned() int {
	return pm.spawned
}
