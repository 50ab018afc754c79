package cube

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStickeringNames(t *testing.T) {
	for _, name := range []string{"", "full", "FULL", "Cross", "cross", "F2L", "f2l", "OLL", "oll"} {
		_, ok := Stickering(name)
		assert.True(t, ok, name)
	}
	_, ok := Stickering("PLL")
	assert.False(t, ok)

	full, _ := Stickering("full")
	assert.True(t, full.IsZero())
}

func TestParseMaskOrbits(t *testing.T) {
	m, err := ParseMask("CORNERS:DDDDDDDD,EDGES:----DDDDDDDD,CENTERS:-XIDDD")
	require.NoError(t, err)

	assert.Equal(t, Dim, m.Corners[0])
	assert.Equal(t, Regular, m.Edges[3])
	assert.Equal(t, Dim, m.Edges[4])
	assert.Equal(t, Invisible, m.Centers[1])
	assert.Equal(t, Ignored, m.Centers[2])
	assert.Equal(t, "CORNERS:DDDDDDDD,EDGES:----DDDDDDDD,CENTERS:-XIDDD", m.String())
}

func TestParseMaskPartial(t *testing.T) {
	m, err := ParseMask("EDGES:XXXXXXXXXXXX")
	require.NoError(t, err)
	assert.Equal(t, Regular, m.Corners[0])
	assert.Equal(t, Invisible, m.Edges[11])
}

func TestParseMaskNamed(t *testing.T) {
	m, err := ParseMask(" cross ")
	require.NoError(t, err)
	cross, _ := Stickering(StickeringCross)
	assert.Equal(t, cross, m)
}

func TestParseMaskErrors(t *testing.T) {
	bad := []string{
		"nonsense",
		"CORNERS:DDD",
		"EDGES:----DDDDDDDZ",
		"FACES:------",
		"CENTERS:------,CENTERS:------",
	}
	for _, s := range bad {
		_, err := ParseMask(s)
		assert.ErrorIs(t, err, ErrInvalidMask, s)
	}
}

func TestMaskVisibility(t *testing.T) {
	cross, _ := Stickering(StickeringCross)
	c := New()

	assert.Equal(t, Regular, cross.Visibility(c, U, 1), "UB edge")
	assert.Equal(t, Dim, cross.Visibility(c, U, 0), "UBL corner")
	assert.Equal(t, Regular, cross.Visibility(c, U, 4), "U center")
	assert.Equal(t, Dim, cross.Visibility(c, F, 7), "DF edge")
	assert.Equal(t, Regular, cross.Visibility(c, F, 1), "UF edge")
}

func TestMaskFollowsPieces(t *testing.T) {
	cross, _ := Stickering(StickeringCross)
	c := apply(t, "F2")

	// The UF edge now sits at DF.
	assert.Equal(t, Regular, cross.Visibility(c, F, 7))
	assert.Equal(t, Dim, cross.Visibility(c, F, 1))
}
