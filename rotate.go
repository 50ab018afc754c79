package cubealg

import (
	"fmt"
	"strings"
)

// Rotation is a whole-cube reorientation about the vertical axis.
type Rotation string

const (
	Identity Rotation = ""
	Y        Rotation = "y"
	YPrime   Rotation = "y'"
	Y2       Rotation = "y2"
)

// Face letters under each y rotation. U, D, M, E, S, x, y, z, u and d are
// fixed points and do not appear here.
var yRemap = map[Rotation]map[byte]byte{
	Y:      {'R': 'B', 'L': 'F', 'F': 'R', 'B': 'L'},
	YPrime: {'R': 'F', 'L': 'B', 'F': 'L', 'B': 'R'},
	Y2:     {'R': 'L', 'L': 'R', 'F': 'B', 'B': 'F'},
}

// ParseRotation validates a rotation name. The empty string is the
// identity and y2' is accepted as y2.
func ParseRotation(s string) (Rotation, error) {
	switch strings.TrimSpace(s) {
	case "":
		return Identity, nil
	case "y":
		return Y, nil
	case "y'":
		return YPrime, nil
	case "y2", "y2'":
		return Y2, nil
	}
	return Identity, fmt.Errorf("%w: %q", ErrUnknownRotation, s)
}

// Quarters returns the number of clockwise quarter turns, 0 to 3.
func (r Rotation) Quarters() int {
	switch r {
	case Y:
		return 1
	case Y2:
		return 2
	case YPrime:
		return 3
	}
	return 0
}

// Then returns the rotation equivalent to r followed by next.
func (r Rotation) Then(next Rotation) Rotation {
	return rotationFromQuarters(r.Quarters() + next.Quarters())
}

// Inverse returns the rotation that undoes r.
func (r Rotation) Inverse() Rotation {
	return rotationFromQuarters(4 - r.Quarters())
}

func rotationFromQuarters(q int) Rotation {
	switch q % 4 {
	case 1:
		return Y
	case 2:
		return Y2
	case 3:
		return YPrime
	}
	return Identity
}

// TransformByY rewrites a single token as it reads after the cube has
// been turned by r. Only one-letter tokens with an optional ' or 2 are
// remapped; everything else is returned unchanged.
func (t Token) TransformByY(r Rotation) Token {
	table, ok := yRemap[r]
	if !ok {
		return t
	}
	face, mod, ok := t.Split()
	if !ok {
		return t
	}
	lower := face >= 'a' && face <= 'z'
	if lower {
		face -= 'a' - 'A'
	}
	mapped, ok := table[face]
	if !ok {
		return t
	}
	if lower {
		mapped += 'a' - 'A'
	}
	return Token(string(mapped) + string(mod))
}

// TransformByY remaps every move of a for rotation r, keeping the order.
func (a Algorithm) TransformByY(r Rotation) Algorithm {
	out := make(Algorithm, len(a))
	for i, t := range a {
		out[i] = t.TransformByY(r)
	}
	return out
}

// TransformByY rewrites a space separated algorithm for another slot,
// e.g. a front-right case shown in the back-right slot:
//
//	TransformByY("R U' R'", Y) // "B U' B'"
//
// Tokens are split on whitespace and rejoined with single spaces; no
// other normalization is applied.
func TransformByY(alg string, r Rotation) string {
	fields := strings.Fields(alg)
	for i, f := range fields {
		fields[i] = string(Token(f).TransformByY(r))
	}
	return strings.Join(fields, " ")
}

// TransformTokensByY is TransformByY over a list of tokens. The result has
// the same length and order as tokens.
func TransformTokensByY(tokens []string, r Rotation) []string {
	out := make([]string, len(tokens))
	for i, t := range tokens {
		out[i] = string(Token(t).TransformByY(r))
	}
	return out
}
