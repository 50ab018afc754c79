package cube

import (
	"fmt"

	"github.com/SeamusWaldron/cubealg"
)

// quarters returns how many clockwise quarter turns a modifier means.
func quarters(mod cubealg.Modifier) int {
	switch mod {
	case cubealg.ModPrime:
		return 3
	case cubealg.ModDouble:
		return 2
	default:
		return 1
	}
}

// permFor resolves a token to its layer permutation and turn count.
func permFor(t cubealg.Token) (permutation, int, error) {
	face, mod, ok := t.Split()
	if !ok {
		return permutation{}, 0, fmt.Errorf("%w: %q", ErrUnsupportedMove, string(t))
	}
	p, ok := quarterTurns[face]
	if !ok {
		return permutation{}, 0, fmt.Errorf("%w: %q", ErrUnsupportedMove, string(t))
	}
	return p, quarters(mod), nil
}

func (c *Cube) permute(p permutation) {
	var next [54]uint8
	for s, to := range p {
		next[to] = c.origin[s]
	}
	c.origin = next
}

// ApplyMove applies a single move token to the cube.
func (c *Cube) ApplyMove(t cubealg.Token) error {
	p, n, err := permFor(t)
	if err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		c.permute(p)
	}
	return nil
}

// Apply applies a sequence of moves. Every token is checked first, so on
// error the cube is left unchanged.
func (c *Cube) Apply(alg cubealg.Algorithm) error {
	for i, t := range alg {
		if _, _, err := permFor(t); err != nil {
			return fmt.Errorf("move %d: %w", i, err)
		}
	}
	for _, t := range alg {
		_ = c.ApplyMove(t)
	}
	return nil
}

// ApplyNotation parses s and applies it.
func (c *Cube) ApplyNotation(s string) error {
	return c.Apply(cubealg.Parse(s))
}
