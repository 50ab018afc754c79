package cubealg

import "strings"

// Kind classifies a move token by the kind of layer it turns.
type Kind int

const (
	KindUnknown  Kind = iota
	KindFace          // Outer layer: R L U D F B
	KindWide          // Outer layer plus middle: r l u d f b
	KindSlice         // Middle layer only: M E S
	KindRotation      // Whole cube: x y z
)

func (k Kind) String() string {
	switch k {
	case KindFace:
		return "face"
	case KindWide:
		return "wide"
	case KindSlice:
		return "slice"
	case KindRotation:
		return "rotation"
	default:
		return "unknown"
	}
}

// Modifier is the suffix of a move token.
type Modifier string

const (
	ModNone   Modifier = ""  // Clockwise quarter turn
	ModPrime  Modifier = "'" // Counter-clockwise quarter turn
	ModDouble Modifier = "2" // Half turn
)

// Token is a single move in cube notation, e.g. R, U', f2, M, y'.
// Tokens are opaque strings: Parse never rejects malformed notation,
// so a Token may not match the move grammar. Use Valid to check.
type Token string

func (t Token) String() string {
	return string(t)
}

// Split decomposes the token into a single face letter and its modifier.
// ok is false for anything that is not exactly one letter followed by
// an optional ' or 2.
func (t Token) Split() (face byte, mod Modifier, ok bool) {
	s := string(t)
	if len(s) == 0 || len(s) > 2 || !isLetter(s[0]) {
		return 0, ModNone, false
	}
	if len(s) == 1 {
		return s[0], ModNone, true
	}
	switch s[1] {
	case '\'':
		return s[0], ModPrime, true
	case '2':
		return s[0], ModDouble, true
	}
	return 0, ModNone, false
}

// Base returns the token with its modifier removed.
// Malformed tokens are returned unchanged.
func (t Token) Base() Token {
	face, _, ok := t.Split()
	if !ok {
		return t
	}
	return Token(face)
}

// Modifier returns the token's suffix, or ModNone for malformed tokens.
func (t Token) Modifier() Modifier {
	_, mod, _ := t.Split()
	return mod
}

// Kind reports what the token turns. Malformed tokens are KindUnknown.
func (t Token) Kind() Kind {
	face, _, ok := t.Split()
	if !ok {
		return KindUnknown
	}
	return kindOf(face)
}

// Valid reports whether the token matches the move grammar.
func (t Token) Valid() bool {
	return t.Kind() != KindUnknown
}

// Inverse returns the move that undoes this one.
// R becomes R', R' becomes R, R2 stays R2. Tokens that are not letters
// followed by an optional ' or 2 are returned unchanged.
func (t Token) Inverse() Token {
	s := string(t)
	if !invertible.MatchString(s) {
		return t
	}
	switch {
	case strings.HasSuffix(s, "2"):
		return t
	case strings.HasSuffix(s, "'"):
		return Token(strings.TrimSuffix(s, "'"))
	default:
		return Token(s + "'")
	}
}

func kindOf(face byte) Kind {
	switch face {
	case 'R', 'L', 'U', 'D', 'F', 'B':
		return KindFace
	case 'r', 'l', 'u', 'd', 'f', 'b':
		return KindWide
	case 'M', 'E', 'S':
		return KindSlice
	case 'x', 'y', 'z':
		return KindRotation
	default:
		return KindUnknown
	}
}

func isLetter(c byte) bool {
	return (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')
}
