package cube

import "time"

// Option configures a Player.
type Option func(*config)

type config struct {
	orientation   string
	interval      time.Duration
	stageCallback func(stage Stage, frame int)
}

// DefaultOrientation holds the cube with white on the bottom, the way
// the tutorials film it.
const DefaultOrientation = "x2"

// DefaultInterval is the time between frames during playback.
const DefaultInterval = 500 * time.Millisecond

func defaultConfig() *config {
	return &config{
		orientation: DefaultOrientation,
		interval:    DefaultInterval,
	}
}

// WithOrientation sets the moves applied before the setup to hold the
// cube. Pass "" to keep white on top.
func WithOrientation(alg string) Option {
	return func(c *config) {
		c.orientation = alg
	}
}

// WithInterval sets the delay between frames in Play.
// Non-positive values keep the default.
func WithInterval(d time.Duration) Option {
	return func(c *config) {
		if d > 0 {
			c.interval = d
		}
	}
}

// WithStageCallback sets a callback that fires the first time a frame
// reaches a stage higher than any earlier frame.
func WithStageCallback(cb func(stage Stage, frame int)) Option {
	return func(c *config) {
		c.stageCallback = cb
	}
}
