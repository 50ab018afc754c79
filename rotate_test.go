package cubealg

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransformByY(t *testing.T) {
	tests := []struct {
		alg  string
		rot  Rotation
		want string
	}{
		{"R U' R'", Y, "B U' B'"},
		{"R U' R'", Y2, "L U' L'"},
		{"R U' R'", YPrime, "F U' F'"},
		{"R L F B", Y, "B F R L"},
		{"R L F B", YPrime, "F B L R"},
		{"R L F B", Y2, "L R B F"},
		{"r l f b", Y, "b f r l"},
		{"r2 f'", Y2, "l2 b'"},
		{"U D M E S x y z u d", Y, "U D M E S x y z u d"},
		{"R U R'", Identity, "R U R'"},
		{"R U R'", Rotation("q"), "R U R'"},
		{"Rw R2' Q", Y, "Rw R2' Q"},
		{"", Y, ""},
	}

	for _, tt := range tests {
		t.Run(string(tt.rot)+" "+tt.alg, func(t *testing.T) {
			assert.Equal(t, tt.want, TransformByY(tt.alg, tt.rot))
		})
	}
}

func TestTransformTokensByY(t *testing.T) {
	got := TransformTokensByY([]string{"R", "U'", "R'", "Rw", "R U"}, Y)
	assert.Equal(t, []string{"B", "U'", "B'", "Rw", "R U"}, got)
	assert.Empty(t, TransformTokensByY(nil, Y))

	// The list form agrees with the string form token for token.
	alg := "F R U R' U' F' f2 l'"
	assert.Equal(t, Parse(TransformByY(alg, YPrime)).Strings(),
		TransformTokensByY(Parse(alg).Strings(), YPrime))
}

func TestTransformByYClosure(t *testing.T) {
	algs := []string{
		"R U' R'",
		"(R U R' U') (R' F R F')",
		"U' f' L f' U L U' L'",
		"r U R' U' r' F R F' M2 E S x y z",
	}
	for _, a := range algs {
		alg := Normalize(a)
		twice := TransformByY(TransformByY(alg, Y), Y)
		thrice := TransformByY(twice, Y)

		assert.Equal(t, TransformByY(alg, Y2), twice, "y y on %q", a)
		assert.Equal(t, TransformByY(alg, YPrime), thrice, "y y y on %q", a)
		assert.Equal(t, alg, TransformByY(TransformByY(alg, Y2), Y2), "y2 y2 on %q", a)
		assert.Equal(t, alg, TransformByY(TransformByY(alg, Y), YPrime), "y y' on %q", a)
	}
}

func TestTransformByYFixedLetters(t *testing.T) {
	for _, face := range []string{"U", "D", "M", "E", "S", "x", "y", "z"} {
		for _, mod := range []string{"", "'", "2"} {
			tok := face + mod
			for _, r := range []Rotation{Y, YPrime, Y2} {
				assert.Equal(t, tok, TransformByY(tok, r), "%s under %s", tok, r)
			}
		}
	}
}

func TestParseRotation(t *testing.T) {
	tests := map[string]Rotation{
		"":    Identity,
		"y":   Y,
		"y'":  YPrime,
		"y2":  Y2,
		"y2'": Y2,
		" y ": Y,
	}
	for in, want := range tests {
		got, err := ParseRotation(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseRotation("x")
	assert.True(t, errors.Is(err, ErrUnknownRotation))
}

func TestRotationThen(t *testing.T) {
	assert.Equal(t, Y2, Y.Then(Y))
	assert.Equal(t, YPrime, Y.Then(Y).Then(Y))
	assert.Equal(t, Identity, Y2.Then(Y2))
	assert.Equal(t, Identity, Y.Then(YPrime))
	assert.Equal(t, YPrime, Y.Inverse())
	assert.Equal(t, Y2, Y2.Inverse())
	assert.Equal(t, Identity, Identity.Inverse())

	// Composition agrees with applying the tables one after another.
	alg := "R U' R' F L B"
	for _, a := range []Rotation{Identity, Y, Y2, YPrime} {
		for _, b := range []Rotation{Identity, Y, Y2, YPrime} {
			assert.Equal(t, TransformByY(alg, a.Then(b)), TransformByY(TransformByY(alg, a), b))
		}
	}
}
