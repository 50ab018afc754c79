package cubealg

import (
	"sort"
	"strings"
	"unicode"
)

// Span is a half-open range [Start, End) of move indexes.
type Span struct {
	Start int
	End   int
}

// Len returns the number of moves covered by the span.
func (s Span) Len() int {
	return s.End - s.Start
}

// Contains reports whether move index i is inside the span.
func (s Span) Contains(i int) bool {
	return i >= s.Start && i < s.End
}

// Grouped is an algorithm together with its trigger groups. Triggers are
// display hints only; Moves is always identical to Parse of the same input.
type Grouped struct {
	Moves    Algorithm
	Triggers []Span
}

// ParseGrouped parses input like Parse and additionally records every
// parenthesized trigger as a span over the resulting moves.
//
// A ')' without a matching '(' is ignored and an unclosed '(' runs to the
// last move. Empty groups are dropped.
func ParseGrouped(input string) Grouped {
	// Strip parens but remember where they were in the cleaned text.
	var b strings.Builder
	type mark struct {
		offset int
		open   bool
	}
	var marks []mark
	for _, r := range input {
		switch r {
		case '(':
			marks = append(marks, mark{offset: b.Len(), open: true})
		case ')':
			marks = append(marks, mark{offset: b.Len()})
		default:
			b.WriteRune(r)
		}
	}
	cleaned := b.String()

	type field struct{ start, end int }
	var fields []field
	start := -1
	for i, r := range cleaned {
		if unicode.IsSpace(r) {
			if start >= 0 {
				fields = append(fields, field{start, i})
				start = -1
			}
			continue
		}
		if start < 0 {
			start = i
		}
	}
	if start >= 0 {
		fields = append(fields, field{start, len(cleaned)})
	}

	g := Grouped{Moves: make(Algorithm, len(fields))}
	for i, f := range fields {
		g.Moves[i] = Token(normalizeHalfTurns(cleaned[f.start:f.end]))
	}

	// An open mark belongs to the first move that has not ended before it,
	// a close mark to the last move that started before it.
	var stack []int
	for _, m := range marks {
		if m.open {
			idx := sort.Search(len(fields), func(i int) bool { return fields[i].end > m.offset })
			stack = append(stack, idx)
			continue
		}
		if len(stack) == 0 {
			continue
		}
		open := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		end := sort.Search(len(fields), func(i int) bool { return fields[i].start >= m.offset })
		g.addTrigger(open, end)
	}
	for i := len(stack) - 1; i >= 0; i-- {
		g.addTrigger(stack[i], len(fields))
	}

	sort.SliceStable(g.Triggers, func(i, j int) bool {
		if g.Triggers[i].Start != g.Triggers[j].Start {
			return g.Triggers[i].Start < g.Triggers[j].Start
		}
		return g.Triggers[i].End > g.Triggers[j].End
	})
	return g
}

func (g *Grouped) addTrigger(start, end int) {
	if end > start {
		g.Triggers = append(g.Triggers, Span{Start: start, End: end})
	}
}

// TriggerAt returns the innermost trigger containing move index i.
func (g Grouped) TriggerAt(i int) (Span, bool) {
	var found Span
	ok := false
	for _, s := range g.Triggers {
		if s.Contains(i) && (!ok || s.Len() < found.Len()) {
			found, ok = s, true
		}
	}
	return found, ok
}

// String renders the moves with their triggers in parentheses,
// e.g. "(R U R' U') (R' F R F')".
func (g Grouped) String() string {
	opens := make([]int, len(g.Moves))
	closes := make([]int, len(g.Moves))
	for _, s := range g.Triggers {
		if s.Start < 0 || s.End > len(g.Moves) || s.Len() <= 0 {
			continue
		}
		opens[s.Start]++
		closes[s.End-1]++
	}

	parts := make([]string, len(g.Moves))
	for i, t := range g.Moves {
		parts[i] = strings.Repeat("(", opens[i]) + string(t) + strings.Repeat(")", closes[i])
	}
	return strings.Join(parts, " ")
}
