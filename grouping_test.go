package cubealg

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseGrouped(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		triggers []Span
		display  string
	}{
		{
			name:     "two triggers",
			input:    "(R U R' U') (R' F R F')",
			triggers: []Span{{0, 4}, {4, 8}},
			display:  "(R U R' U') (R' F R F')",
		},
		{
			name:     "trigger in the middle",
			input:    "F (R U R' U') F'",
			triggers: []Span{{1, 5}},
			display:  "F (R U R' U') F'",
		},
		{
			name:     "no triggers",
			input:    "R U R'",
			triggers: nil,
			display:  "R U R'",
		},
		{
			name:     "nested",
			input:    "((R U) R')",
			triggers: []Span{{0, 3}, {0, 2}},
			display:  "((R U) R')",
		},
		{
			name:     "unclosed runs to end",
			input:    "R (U R'",
			triggers: []Span{{1, 3}},
			display:  "R (U R')",
		},
		{
			name:     "stray close ignored",
			input:    "R) U",
			triggers: nil,
			display:  "R U",
		},
		{
			name:     "empty group dropped",
			input:    "R () U",
			triggers: nil,
			display:  "R U",
		},
		{
			name:     "primed half turn inside trigger",
			input:    "(R U2') R'",
			triggers: []Span{{0, 2}},
			display:  "(R U2) R'",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := ParseGrouped(tt.input)
			assert.Equal(t, Parse(tt.input), g.Moves)
			assert.Equal(t, tt.triggers, g.Triggers)
			assert.Equal(t, tt.display, g.String())
		})
	}
}

func TestParseGroupedMatchesParse(t *testing.T) {
	inputs := []string{
		"",
		"(r U R' U') M (U R U' R')",
		"R(U R')U'",
		"y (R' F R U) (R U' R2' F') R2 U' R' (U R U R')",
		"  ( R  U2' )  ",
		"(R U2''') R'",
	}
	for _, in := range inputs {
		assert.Equal(t, Parse(in), ParseGrouped(in).Moves, "input %q", in)
	}
}

func TestGroupedTriggerAt(t *testing.T) {
	g := ParseGrouped("((R U) R') U'")

	s, ok := g.TriggerAt(1)
	assert.True(t, ok)
	assert.Equal(t, Span{0, 2}, s)

	s, ok = g.TriggerAt(2)
	assert.True(t, ok)
	assert.Equal(t, Span{0, 3}, s)

	_, ok = g.TriggerAt(3)
	assert.False(t, ok)
}
