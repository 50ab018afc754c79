package cubealg

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	// parens are grouping hints for display only.
	parens = strings.NewReplacer("(", "", ")", "")

	// A half turn has no direction, so R2' is the same move as R2.
	primedHalfTurn = regexp.MustCompile(`([RUFLDBrufldbMESxyz]2)'`)

	invertible = regexp.MustCompile(`^[A-Za-z]+['2]?$`)
)

// Algorithm is an ordered sequence of move tokens.
type Algorithm []Token

// Parse converts notation text into its move tokens.
//
// Parentheses are discarded, primed half turns (U2') are rewritten to
// their plain form (U2), and the remainder is split on whitespace.
// Parse never fails: empty input yields an empty Algorithm and tokens
// that do not match the move grammar are kept as they are.
func Parse(input string) Algorithm {
	if input == "" {
		return Algorithm{}
	}
	fields := strings.Fields(normalizeHalfTurns(parens.Replace(input)))
	alg := make(Algorithm, len(fields))
	for i, f := range fields {
		alg[i] = Token(f)
	}
	return alg
}

// ParseStrict is Parse plus validation. It returns an error wrapping
// ErrInvalidNotation for the first token outside the move grammar.
func ParseStrict(input string) (Algorithm, error) {
	alg := Parse(input)
	for i, t := range alg {
		if !t.Valid() {
			return nil, fmt.Errorf("%w: %q at position %d", ErrInvalidNotation, string(t), i)
		}
	}
	return alg, nil
}

// Normalize returns the canonical notation for input: triggers removed,
// half turns unprimed and tokens separated by single spaces.
func Normalize(input string) string {
	return Parse(input).String()
}

// normalizeHalfTurns strips primes from half turns until none are left,
// so U2'' reads as U2 just like U2'.
func normalizeHalfTurns(s string) string {
	for {
		next := primedHalfTurn.ReplaceAllString(s, "${1}")
		if next == s {
			return s
		}
		s = next
	}
}

// String formats the algorithm as space separated notation.
func (a Algorithm) String() string {
	if len(a) == 0 {
		return ""
	}
	return strings.Join(a.Strings(), " ")
}

// Strings returns the tokens as plain strings.
func (a Algorithm) Strings() []string {
	out := make([]string, len(a))
	for i, t := range a {
		out[i] = string(t)
	}
	return out
}

// Len returns the number of moves.
func (a Algorithm) Len() int {
	return len(a)
}

// Equal reports whether both algorithms have the same tokens in the same order.
func (a Algorithm) Equal(other Algorithm) bool {
	if len(a) != len(other) {
		return false
	}
	for i := range a {
		if a[i] != other[i] {
			return false
		}
	}
	return true
}

// Concat returns a new algorithm with b appended to a.
func (a Algorithm) Concat(b Algorithm) Algorithm {
	out := make(Algorithm, 0, len(a)+len(b))
	out = append(out, a...)
	return append(out, b...)
}
