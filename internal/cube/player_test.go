package cube

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SeamusWaldron/cubealg"
)

func TestPlayerLoad(t *testing.T) {
	p := NewPlayer(WithOrientation(""))
	alg := "R U R' U'"
	require.NoError(t, p.Load(cubealg.Invert(alg), alg, Mask{}))

	require.Equal(t, 5, p.Len())
	first, err := p.Frame(0)
	require.NoError(t, err)
	assert.Equal(t, 0, first.Index)
	assert.Empty(t, first.Move)
	assert.False(t, first.Cube.IsSolved())

	last, ok := p.Final()
	require.True(t, ok)
	assert.Equal(t, 4, last.Index)
	assert.Equal(t, cubealg.Token("U'"), last.Move)
	assert.True(t, last.Cube.IsSolved())
	assert.Equal(t, StageSolved, last.Stage)

	assert.Equal(t, "R U R' U'", p.Algorithm().String())
	assert.Equal(t, "U R U' R'", p.Setup().String())
}

func TestPlayerDefaultOrientation(t *testing.T) {
	p := NewPlayer()
	require.NoError(t, p.Load("", "", Mask{}))

	f, err := p.Frame(0)
	require.NoError(t, err)
	assert.Equal(t, Yellow, f.Cube.Color(U, 4))
	assert.Equal(t, White, f.Cube.Color(D, 4))
	assert.Equal(t, DefaultInterval, p.Interval())
}

func TestPlayerFrameOutOfRange(t *testing.T) {
	p := NewPlayer()
	require.NoError(t, p.Load("", "R", Mask{}))

	_, err := p.Frame(2)
	assert.ErrorIs(t, err, ErrNoFrame)
	_, err = p.Frame(-1)
	assert.ErrorIs(t, err, ErrNoFrame)
}

func TestPlayerLoadErrorKeepsFrames(t *testing.T) {
	p := NewPlayer()
	require.NoError(t, p.Load("", "R U", Mask{}))

	err := p.Load("", "R Q", Mask{})
	assert.ErrorIs(t, err, ErrUnsupportedMove)
	assert.Equal(t, 3, p.Len())

	err = p.Load("Rw", "R", Mask{})
	assert.ErrorIs(t, err, ErrUnsupportedMove)
	assert.Contains(t, err.Error(), "setup")
}

func TestPlayerFramesDoNotShareState(t *testing.T) {
	p := NewPlayer(WithOrientation(""))
	require.NoError(t, p.Load("", "R R", Mask{}))

	frames := p.Frames()
	assert.True(t, frames[0].Cube.IsSolved())
	assert.False(t, frames[1].Cube.Equal(frames[2].Cube))
}

func TestPlayerPlay(t *testing.T) {
	type hit struct {
		stage Stage
		frame int
	}
	var hits []hit

	p := NewPlayer(
		WithInterval(time.Millisecond),
		WithStageCallback(func(s Stage, frame int) {
			hits = append(hits, hit{s, frame})
		}),
	)
	alg := "R U R' U R U2 R'"
	require.NoError(t, p.Load(cubealg.Invert(alg), alg, Mask{}))

	var seen []int
	err := p.Play(context.Background(), func(f Frame) error {
		seen = append(seen, f.Index)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7}, seen)

	require.NotEmpty(t, hits)
	assert.Equal(t, hit{StageSolved, 7}, hits[len(hits)-1])
	for i := 1; i < len(hits); i++ {
		assert.Greater(t, hits[i].stage, hits[i-1].stage)
	}
	assert.Equal(t, StageSolved, p.HighestStage())
}

func TestPlayerPlayCancelled(t *testing.T) {
	p := NewPlayer(WithInterval(time.Hour))
	require.NoError(t, p.Load("", "R U", Mask{}))

	ctx, cancel := context.WithCancel(context.Background())
	var seen int
	err := p.Play(ctx, func(f Frame) error {
		seen++
		cancel()
		return nil
	})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, seen)
}

func TestPlayerPlayStopsOnCallbackError(t *testing.T) {
	p := NewPlayer(WithInterval(time.Millisecond))
	require.NoError(t, p.Load("", "R U F", Mask{}))

	stop := errors.New("stop")
	err := p.Play(context.Background(), func(f Frame) error {
		if f.Index == 1 {
			return stop
		}
		return nil
	})
	assert.ErrorIs(t, err, stop)
}
