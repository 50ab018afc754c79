package cube

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SeamusWaldron/cubealg"
)

var allLetters = []string{
	"R", "L", "U", "D", "F", "B",
	"r", "l", "u", "d", "f", "b",
	"M", "E", "S",
	"x", "y", "z",
}

func apply(t *testing.T, alg string) *Cube {
	t.Helper()
	c := New()
	require.NoError(t, c.ApplyNotation(alg))
	return c
}

func TestNewCubeIsSolved(t *testing.T) {
	c := New()
	assert.True(t, c.IsSolved())
	assert.Equal(t, StageSolved, c.Stage())
}

func TestSingleMoveBreaksSolved(t *testing.T) {
	for _, m := range []string{"R", "L", "U", "D", "F", "B", "r", "l", "u", "d", "f", "b", "M", "E", "S"} {
		assert.False(t, apply(t, m).IsSolved(), m)
	}
}

func TestRotationsKeepSolved(t *testing.T) {
	for _, m := range []string{"x", "y", "z", "x'", "y2", "z2", "x y z"} {
		c := apply(t, m)
		assert.True(t, c.IsSolved(), m)
		assert.Equal(t, StageSolved, c.Stage(), m)
	}
}

func TestFourQuarterTurnsReturnToSolved(t *testing.T) {
	for _, m := range allLetters {
		c := apply(t, m+" "+m+" "+m+" "+m)
		assert.True(t, c.Equal(New()), "%s x 4", m)
	}
}

func TestDoubleTurnTwiceReturnsToSolved(t *testing.T) {
	for _, m := range allLetters {
		c := apply(t, m+"2 "+m+"2")
		assert.True(t, c.Equal(New()), "%s2 x 2", m)
	}
}

func TestPrimeUndoesTurn(t *testing.T) {
	for _, m := range allLetters {
		c := apply(t, m+" "+m+"'")
		assert.True(t, c.Equal(New()), "%s %s'", m, m)
	}
}

func TestPrimedDoubleIsDouble(t *testing.T) {
	for _, m := range allLetters {
		assert.True(t, apply(t, m+"2'").Equal(apply(t, m+"2")), m)
	}
}

func TestSexyMoveSixTimes(t *testing.T) {
	c := New()
	for i := 0; i < 6; i++ {
		require.NoError(t, c.ApplyNotation("R U R' U'"))
	}
	assert.True(t, c.IsSolved())
}

func TestCompositeMoves(t *testing.T) {
	tests := []struct {
		move, equivalent string
	}{
		{"x", "R M' L'"},
		{"y", "U E' D'"},
		{"z", "F S B'"},
		{"r", "R M'"},
		{"l", "L M"},
		{"u", "U E'"},
		{"d", "D E"},
		{"f", "F S"},
		{"b", "B S'"},
	}
	for _, tt := range tests {
		t.Run(tt.move, func(t *testing.T) {
			assert.True(t, apply(t, tt.move).Equal(apply(t, tt.equivalent)))
		})
	}
}

func TestYConjugationMatchesTransform(t *testing.T) {
	// M, S, x and z are left alone by the y remap, so they are not
	// compared here.
	moves := []string{"R", "L", "F", "B", "U", "D", "r", "l", "f", "b", "u", "d", "E", "y", "R'", "F2", "b'"}
	rotations := []cubealg.Rotation{cubealg.Y, cubealg.YPrime, cubealg.Y2}

	for _, r := range rotations {
		for _, m := range moves {
			conj := string(r) + " " + m + " " + string(r.Inverse())
			remapped := cubealg.TransformByY(m, r)
			assert.True(t, apply(t, conj).Equal(apply(t, remapped)), "%s under %s", m, r)
		}
	}
}

func TestAlgorithmThenInverseIsSolved(t *testing.T) {
	algs := []string{
		"R U R' U'",
		"F R U R' U' F'",
		"r U R' U' r' F R F'",
		"M' U2 M U2",
		"x R2 F R F' R U2 r' U r U2 x'",
		"R U R' U R U2 R' y' R' U' R",
	}
	for _, alg := range algs {
		c := apply(t, alg)
		require.NoError(t, c.ApplyNotation(cubealg.Invert(alg)))
		assert.True(t, c.Equal(New()), alg)
	}
}

func TestApplyRejectsUnknownMoves(t *testing.T) {
	c := apply(t, "R")
	before := c.Clone()

	err := c.Apply(cubealg.Parse("U Q2 R"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnsupportedMove)
	assert.Contains(t, err.Error(), "move 1")
	assert.True(t, c.Equal(before), "cube must be unchanged")

	for _, bad := range []string{"Rw", "R3", "", "RU"} {
		assert.ErrorIs(t, c.ApplyMove(cubealg.Token(bad)), ErrUnsupportedMove, bad)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	c := New()
	clone := c.Clone()
	require.NoError(t, clone.ApplyNotation("R"))
	assert.True(t, c.IsSolved())
	assert.False(t, clone.IsSolved())
}

func TestFaceletsAfterR(t *testing.T) {
	f := apply(t, "R").Facelets()

	// Right column of U comes from F.
	assert.Equal(t, Green, f[U][2])
	assert.Equal(t, Green, f[U][5])
	assert.Equal(t, Green, f[U][8])
	assert.Equal(t, White, f[U][0])

	// Right column of F comes from D.
	assert.Equal(t, Yellow, f[F][2])
	assert.Equal(t, Yellow, f[F][8])

	// R face itself stays red.
	for i := 0; i < 9; i++ {
		assert.Equal(t, Red, f[R][i])
	}
}

func TestString(t *testing.T) {
	s := New().String()
	assert.Contains(t, s, "      W W W \n")
	assert.Contains(t, s, "O O O G G G R R R B B B \n")
	assert.Contains(t, s, "      Y Y Y \n")
}

func TestStageDetection(t *testing.T) {
	tests := []struct {
		name string
		alg  string
		want Stage
	}{
		{"solved", "", StageSolved},
		{"rotated", "x2 y", StageSolved},
		{"broken cross", "R", StageNone},
		{"last layer turned", "D", StageOLL},
		{"white bottom cross only", "x2 R U R'", StageCross},
		{"white bottom last layer", "x2 R U2 R' U' R U' R'", StageF2L},
		{"white bottom turned", "x2 U", StageOLL},
		{"white bottom cross broken", "x2 D", StageNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, apply(t, tt.alg).Stage())
		})
	}
}

func TestStageOrdering(t *testing.T) {
	s := apply(t, "x2 R U R'").Stage()
	assert.GreaterOrEqual(t, s, StageCross)
	assert.Less(t, s, StageF2L)
}

func TestParseStage(t *testing.T) {
	for s := StageNone; s <= StageSolved; s++ {
		got, ok := ParseStage(s.String())
		require.True(t, ok)
		assert.Equal(t, s, got)
	}
	_, ok := ParseStage("pll")
	assert.False(t, ok)
	assert.Equal(t, "First Two Layers", StageF2L.DisplayName())
}
