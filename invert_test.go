package cubealg

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInvert(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"", ""},
		{"R", "R'"},
		{"R'", "R"},
		{"R2", "R2"},
		{"R U R'", "R U' R'"},
		{"R U2 R'", "R U2 R'"},
		{"R U2' R'", "R U2 R'"},
		{"F R U R' U' F'", "F U R U' R' F'"},
		{"F (R U R' U') F'", "F U R U' R' F'"},
		{"y x' M2 r", "r' M2 x y'"},
		{"Rw U", "U' Rw'"},
		{"R3 U", "U' R3"},
		{"U'' R", "R' U''"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, Invert(tt.input))
		})
	}
}

func TestInvertInvolution(t *testing.T) {
	inputs := []string{
		"R U R' U'",
		"(R U2') (R2' F R F') (R U2' R')",
		"(r U R' U') M (U R U' R')",
		"y' F U (R U2 R' U') (R U2 R' U') F'",
		"M' (R' U' R U' R' U2 R) U' M",
		"Q3 R",
		"U2''",
		"R U2''' R'",
	}
	for _, in := range inputs {
		assert.Equal(t, Normalize(in), Invert(Invert(in)), "input %q", in)
		assert.Equal(t, Parse(in), Parse(in).Inverse().Inverse(), "input %q", in)
	}
}

func TestTokenInverse(t *testing.T) {
	assert.Equal(t, Token("U'"), Token("U").Inverse())
	assert.Equal(t, Token("U"), Token("U'").Inverse())
	assert.Equal(t, Token("U2"), Token("U2").Inverse())
	assert.Equal(t, Token("x'"), Token("x").Inverse())
	assert.Equal(t, Token("2"), Token("2").Inverse())
	assert.Equal(t, Token(""), Token("").Inverse())
}
