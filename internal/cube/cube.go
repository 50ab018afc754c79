// Package cube provides a 3x3 Rubik's cube model that can execute every
// move in cube notation, including wide turns, slices and rotations.
package cube

import "strings"

// Color represents a face color.
type Color byte

const (
	White  Color = 0 // Up face when solved
	Yellow Color = 1 // Down face when solved
	Green  Color = 2 // Front face when solved
	Blue   Color = 3 // Back face when solved
	Red    Color = 4 // Right face when solved
	Orange Color = 5 // Left face when solved
)

func (c Color) String() string {
	switch c {
	case White:
		return "W"
	case Yellow:
		return "Y"
	case Green:
		return "G"
	case Blue:
		return "B"
	case Red:
		return "R"
	case Orange:
		return "O"
	default:
		return "?"
	}
}

// Face represents a cube face.
type Face int

const (
	U Face = 0 // Up (White)
	D Face = 1 // Down (Yellow)
	F Face = 2 // Front (Green)
	B Face = 3 // Back (Blue)
	R Face = 4 // Right (Red)
	L Face = 5 // Left (Orange)
)

func (f Face) String() string {
	switch f {
	case U:
		return "U"
	case D:
		return "D"
	case F:
		return "F"
	case B:
		return "B"
	case R:
		return "R"
	case L:
		return "L"
	default:
		return "?"
	}
}

// Faces lists all faces in index order.
var Faces = []Face{U, D, F, B, R, L}

// Cube represents a 3x3 Rubik's cube.
// Each face has 9 facelets indexed as seen in an unfolded net:
//
//	0 1 2
//	3 4 5
//	6 7 8
//
// The cube tracks which home facelet currently occupies every slot, so
// colors and piece identities both follow the stickers through moves.
type Cube struct {
	// origin[slot] = home slot of the sticker now at slot
	origin [54]uint8
}

// New creates a solved cube with standard orientation:
// White on top, Green in front.
func New() *Cube {
	c := &Cube{}
	for i := range c.origin {
		c.origin[i] = uint8(i)
	}
	return c
}

// Clone creates a deep copy of the cube.
func (c *Cube) Clone() *Cube {
	clone := *c
	return &clone
}

// Color returns the color of the facelet at (face, index).
func (c *Cube) Color(face Face, index int) Color {
	return solvedColor(Face(c.origin[slotIndex(face, index)] / 9))
}

// Facelets returns the colors of every face in net layout.
func (c *Cube) Facelets() [6][9]Color {
	var out [6][9]Color
	for _, f := range Faces {
		for i := 0; i < 9; i++ {
			out[f][i] = c.Color(f, i)
		}
	}
	return out
}

// Equal reports whether both cubes show the same colors everywhere.
func (c *Cube) Equal(other *Cube) bool {
	return c.Facelets() == other.Facelets()
}

// IsSolved returns true if every face is a single color. Whole cube
// rotations do not affect this.
func (c *Cube) IsSolved() bool {
	for _, f := range Faces {
		center := c.Color(f, 4)
		for i := 0; i < 9; i++ {
			if c.Color(f, i) != center {
				return false
			}
		}
	}
	return true
}

// solvedColor returns the color of a face when solved.
func solvedColor(f Face) Color {
	switch f {
	case U:
		return White
	case D:
		return Yellow
	case F:
		return Green
	case B:
		return Blue
	case R:
		return Red
	case L:
		return Orange
	default:
		return White
	}
}

func slotIndex(face Face, index int) int {
	return int(face)*9 + index
}

// String returns a text representation of the cube as an unfolded net.
func (c *Cube) String() string {
	var b strings.Builder
	row := func(face Face, r int) {
		for col := 0; col < 3; col++ {
			b.WriteString(c.Color(face, r*3+col).String())
			b.WriteByte(' ')
		}
	}

	// U face (indented)
	for r := 0; r < 3; r++ {
		b.WriteString("      ")
		row(U, r)
		b.WriteByte('\n')
	}

	// L, F, R, B faces (side by side)
	for r := 0; r < 3; r++ {
		for _, face := range []Face{L, F, R, B} {
			row(face, r)
		}
		b.WriteByte('\n')
	}

	// D face (indented)
	for r := 0; r < 3; r++ {
		b.WriteString("      ")
		row(D, r)
		b.WriteByte('\n')
	}

	return b.String()
}
