// Package flappy implements the Flappy Bird simulation: a bird falls under
// gravity, the player flaps to climb, and pipe pairs scroll in from the
// right. The package is pure logic; the platform feeds it one InputFrame per
// tick and draws the Frame it returns.
package flappy

import (
	"github.com/vovakirdan/flappy-tui/internal/config"
	"github.com/vovakirdan/flappy-tui/internal/core"
)

// Phase is the round state.
type Phase int

const (
	PhaseNotStarted Phase = iota // Bird waits at spawn, no gravity
	PhaseFlying                  // Physics, pipes and scoring run
	PhaseGameOver                // Everything frozen until restart
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseNotStarted:
		return "not_started"
	case PhaseFlying:
		return "flying"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Cause explains why a round ended.
type Cause int

const (
	CauseNone Cause = iota
	CauseOutOfBounds
	CauseCollision
)

// String returns a human-readable name for the cause.
func (c Cause) String() string {
	switch c {
	case CauseOutOfBounds:
		return "out_of_bounds"
	case CauseCollision:
		return "collision"
	default:
		return "none"
	}
}

// Round is the scoring state owned by the game.
type Round struct {
	Phase     Phase
	Score     int  // Pairs passed this round
	HighScore int  // Best score since the game was created; survives restarts
	NewRecord bool // This round beat the previous HighScore
	Ticks     int  // Ticks spent flying this round
}

// StepResult reports what happened during one tick.
type StepResult struct {
	Round           Round
	Started         bool // NotStarted -> Flying
	Flapped         bool
	Scored          int
	GameOverEntered bool // Flying -> GameOver, set on exactly one tick per round
	Cause           Cause
	Restarted       bool // GameOver -> NotStarted
}

// Game implements the Flappy Bird round controller.
type Game struct {
	cfg   config.FlappyConfig
	bird  Bird
	pipes *PipeManager
	round Round
	tick  uint64 // Steps since Reset, in any phase
}

// New creates a game with the given configuration, ready to Step with
// seed 0. Reset picks another seed.
func New(cfg config.FlappyConfig) *Game {
	return &Game{
		cfg:   cfg,
		bird:  NewBird(cfg.Bird, cfg.Physics),
		pipes: NewPipeManager(0, cfg.Pipes),
		round: Round{Phase: PhaseNotStarted},
	}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "flappy"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Flappy Bird"
}

// Reset starts a fresh session: new RNG stream, no pipes, high score zero.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.pipes.Reset(rc.Seed)
	g.bird.Reset()
	g.round = Round{Phase: PhaseNotStarted}
	g.tick = 0
}

// Step advances the game by one tick. The order matters:
// spawn timer, input, bird physics, bounds check, spawn, then pipes
// (move, collide, score, reap), and finally the high score on the tick
// the round ends.
func (g *Game) Step(in core.InputFrame) StepResult {
	var res StepResult
	g.tick++
	g.pipes.Elapse(g.cfg.TickDuration())

	if in.Has(core.ActionFlap) {
		switch g.round.Phase {
		case PhaseGameOver:
			g.restart()
			res.Restarted = true
		case PhaseNotStarted:
			g.round.Phase = PhaseFlying
			res.Started = true
			g.bird.Flap()
			res.Flapped = true
		case PhaseFlying:
			g.bird.Flap()
			res.Flapped = true
		}
	}

	if g.round.Phase != PhaseFlying {
		res.Round = g.round
		return res
	}
	g.round.Ticks++

	g.bird.Integrate()

	if g.bird.OutOfBounds(g.cfg.World.Height) {
		g.endRound(&res, CauseOutOfBounds)
		res.Round = g.round
		return res
	}

	g.pipes.MaybeSpawn()

	g.pipes.Advance()
	crashed := g.pipes.Collides(g.bird)
	res.Scored = g.pipes.ScoreCrossings(g.bird.Pos.X)
	g.round.Score += res.Scored
	g.pipes.Reap()

	if crashed {
		g.endRound(&res, CauseCollision)
	}

	res.Round = g.round
	return res
}

// endRound enters GameOver and settles the high score. It runs once per
// round because Step only calls it while Flying.
func (g *Game) endRound(res *StepResult, cause Cause) {
	g.round.Phase = PhaseGameOver
	if g.round.Score > g.round.HighScore {
		g.round.HighScore = g.round.Score
		g.round.NewRecord = true
	}
	res.GameOverEntered = true
	res.Cause = cause
}

// restart returns to NotStarted, keeping only the high score.
func (g *Game) restart() {
	g.bird.Reset()
	g.pipes.Clear()
	g.round = Round{Phase: PhaseNotStarted, HighScore: g.round.HighScore}
}

// Round returns the current round state.
func (g *Game) Round() Round {
	return g.round
}

// Bird returns a copy of the bird.
func (g *Game) Bird() Bird {
	return g.bird
}

// PipesSpawned returns the number of pairs spawned this session.
func (g *Game) PipesSpawned() int {
	return g.pipes.Spawned()
}
