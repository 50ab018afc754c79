package cube

import (
	"context"
	"fmt"
	"time"

	"github.com/SeamusWaldron/cubealg"
)

// Frame is the cube state after a number of moves of the loaded algorithm.
// Frame 0 is the setup state and has an empty Move.
type Frame struct {
	Index int
	Move  cubealg.Token
	Cube  *Cube
	Stage Stage
}

// Player steps a cube through an algorithm, one frame per move.
type Player struct {
	cfg *config

	setup cubealg.Algorithm
	alg   cubealg.Algorithm
	mask  Mask

	frames  []Frame
	highest Stage
}

// NewPlayer creates a player with nothing loaded.
func NewPlayer(opts ...Option) *Player {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return &Player{cfg: cfg}
}

// Load computes every frame of alg played from the setup state. The
// setup state is a solved cube turned to the player's orientation with
// setup applied. On error the previously loaded frames are kept.
func (p *Player) Load(setup, alg string, mask Mask) error {
	start := New()
	if err := start.ApplyNotation(p.cfg.orientation); err != nil {
		return fmt.Errorf("orientation: %w", err)
	}
	setupAlg := cubealg.Parse(setup)
	if err := start.Apply(setupAlg); err != nil {
		return fmt.Errorf("setup: %w", err)
	}

	moves := cubealg.Parse(alg)
	frames := make([]Frame, 0, len(moves)+1)
	frames = append(frames, Frame{Cube: start, Stage: start.Stage()})

	cur := start
	for i, t := range moves {
		next := cur.Clone()
		if err := next.ApplyMove(t); err != nil {
			return fmt.Errorf("move %d: %w", i, err)
		}
		frames = append(frames, Frame{Index: i + 1, Move: t, Cube: next, Stage: next.Stage()})
		cur = next
	}

	p.setup = setupAlg
	p.alg = moves
	p.mask = mask
	p.frames = frames
	p.highest = frames[0].Stage
	return nil
}

// Setup returns the loaded setup moves.
func (p *Player) Setup() cubealg.Algorithm { return p.setup }

// Algorithm returns the loaded moves.
func (p *Player) Algorithm() cubealg.Algorithm { return p.alg }

// Mask returns the loaded stickering mask.
func (p *Player) Mask() Mask { return p.mask }

// Interval returns the playback interval.
func (p *Player) Interval() time.Duration { return p.cfg.interval }

// Len returns the number of frames, including the setup frame.
func (p *Player) Len() int { return len(p.frames) }

// Frames returns all frames.
func (p *Player) Frames() []Frame { return p.frames }

// Frame returns frame i.
func (p *Player) Frame(i int) (Frame, error) {
	if i < 0 || i >= len(p.frames) {
		return Frame{}, fmt.Errorf("%w: %d of %d", ErrNoFrame, i, len(p.frames))
	}
	p.observe(p.frames[i])
	return p.frames[i], nil
}

// Final returns the last frame, or false if nothing is loaded.
func (p *Player) Final() (Frame, bool) {
	if len(p.frames) == 0 {
		return Frame{}, false
	}
	return p.frames[len(p.frames)-1], true
}

// HighestStage returns the highest stage seen so far. It never goes
// backwards until the next Load.
func (p *Player) HighestStage() Stage { return p.highest }

// observe fires the stage callback when f reaches a new high.
func (p *Player) observe(f Frame) {
	if f.Stage > p.highest {
		p.highest = f.Stage
		if p.cfg.stageCallback != nil {
			p.cfg.stageCallback(f.Stage, f.Index)
		}
	}
}

// Play calls fn for every frame, starting with the setup frame, waiting
// one interval between frames. It stops early when ctx is done or fn
// returns an error.
func (p *Player) Play(ctx context.Context, fn func(Frame) error) error {
	if len(p.frames) == 0 {
		return nil
	}

	ticker := time.NewTicker(p.cfg.interval)
	defer ticker.Stop()

	for i, f := range p.frames {
		if i > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-ticker.C:
			}
		}
		p.observe(f)
		if err := fn(f); err != nil {
			return err
		}
	}
	return nil
}
