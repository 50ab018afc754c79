package cube

import (
	"fmt"
	"strings"
)

// Visibility controls how a piece's stickers are drawn.
type Visibility int

const (
	Regular   Visibility = iota // Full color
	Dim                         // Greyed out
	Ignored                     // Drawn as an unknown sticker
	Invisible                   // Not drawn
)

func (v Visibility) char() byte {
	switch v {
	case Dim:
		return 'D'
	case Ignored:
		return 'I'
	case Invisible:
		return 'X'
	default:
		return '-'
	}
}

func visibilityFromChar(c byte) (Visibility, bool) {
	switch c {
	case '-':
		return Regular, true
	case 'D':
		return Dim, true
	case 'I':
		return Ignored, true
	case 'X':
		return Invisible, true
	}
	return Regular, false
}

// Piece orbits in the order used by orbit mask strings.
var (
	cornerOrbit = []string{"UFR", "URB", "UBL", "ULF", "DRF", "DFL", "DLB", "DBR"}
	edgeOrbit   = []string{"UF", "UR", "UB", "UL", "DF", "DR", "DB", "DL", "FR", "FL", "BR", "BL"}
	centerOrbit = []string{"U", "L", "F", "R", "B", "D"}
)

// Mask assigns a visibility to every piece. Pieces are identified by
// their solved position, so a mask follows its pieces through moves.
// The zero Mask shows everything.
type Mask struct {
	Corners [8]Visibility
	Edges   [12]Visibility
	Centers [6]Visibility
}

type orbitRef struct {
	orbit int // 0 corners, 1 edges, 2 centers
	index int
}

var pieceOrbits = buildPieceOrbits()

func buildPieceOrbits() map[vec]orbitRef {
	letter := map[byte]vec{
		'U': axisY, 'D': axisY.scale(-1),
		'F': axisZ, 'B': axisZ.scale(-1),
		'R': axisX, 'L': axisX.scale(-1),
	}
	position := func(name string) vec {
		var v vec
		for i := 0; i < len(name); i++ {
			v = v.add(letter[name[i]])
		}
		return v
	}

	out := make(map[vec]orbitRef)
	for orbit, names := range [][]string{cornerOrbit, edgeOrbit, centerOrbit} {
		for i, name := range names {
			out[position(name)] = orbitRef{orbit: orbit, index: i}
		}
	}
	return out
}

// visibilityOf returns the visibility of the piece whose solved position is home.
func (m Mask) visibilityOf(home vec) Visibility {
	ref, ok := pieceOrbits[home]
	if !ok {
		return Regular
	}
	switch ref.orbit {
	case 0:
		return m.Corners[ref.index]
	case 1:
		return m.Edges[ref.index]
	default:
		return m.Centers[ref.index]
	}
}

// Visibility returns how the facelet at (face, index) of c should be drawn.
func (m Mask) Visibility(c *Cube, face Face, index int) Visibility {
	home := int(c.origin[slotIndex(face, index)])
	return m.visibilityOf(slotPosition(home))
}

// IsZero reports whether the mask shows every piece.
func (m Mask) IsZero() bool {
	return m == Mask{}
}

// String formats the mask as an orbit mask string.
func (m Mask) String() string {
	orbit := func(vs []Visibility) string {
		b := make([]byte, len(vs))
		for i, v := range vs {
			b[i] = v.char()
		}
		return string(b)
	}
	return "CORNERS:" + orbit(m.Corners[:]) +
		",EDGES:" + orbit(m.Edges[:]) +
		",CENTERS:" + orbit(m.Centers[:])
}

// Named stickerings for the tutorial sections.
const (
	StickeringFull  = "full"
	StickeringCross = "Cross"
	StickeringF2L   = "F2L"
	StickeringOLL   = "OLL"
)

// Stickerings lists the named stickerings.
var Stickerings = []string{StickeringFull, StickeringCross, StickeringF2L, StickeringOLL}

// Stickering returns the mask for a named stickering. Names are
// case-insensitive; the empty name is the same as "full".
func Stickering(name string) (Mask, bool) {
	var m Mask
	switch {
	case name == "" || strings.EqualFold(name, StickeringFull):
		return m, true

	case strings.EqualFold(name, StickeringCross):
		// White edges and centers only.
		m.Corners = [8]Visibility{Dim, Dim, Dim, Dim, Dim, Dim, Dim, Dim}
		m.Edges = [12]Visibility{Regular, Regular, Regular, Regular, Dim, Dim, Dim, Dim, Dim, Dim, Dim, Dim}
		return m, true

	case strings.EqualFold(name, StickeringF2L):
		// White layer and middle layer; last layer dimmed.
		m.Corners = [8]Visibility{Regular, Regular, Regular, Regular, Dim, Dim, Dim, Dim}
		m.Edges = [12]Visibility{Regular, Regular, Regular, Regular, Dim, Dim, Dim, Dim, Regular, Regular, Regular, Regular}
		return m, true

	case strings.EqualFold(name, StickeringOLL):
		// Last layer only.
		m.Corners = [8]Visibility{Dim, Dim, Dim, Dim, Regular, Regular, Regular, Regular}
		m.Edges = [12]Visibility{Dim, Dim, Dim, Dim, Regular, Regular, Regular, Regular, Dim, Dim, Dim, Dim}
		return m, true
	}
	return m, false
}

// ParseMask accepts either a named stickering or an orbit mask string
// such as "CORNERS:DDDDDDDD,EDGES:----DDDDDDDD,CENTERS:-DDDDD". Orbits
// left out of the string are shown in full.
func ParseMask(s string) (Mask, error) {
	s = strings.TrimSpace(s)
	if m, ok := Stickering(s); ok {
		return m, nil
	}

	var m Mask
	seen := make(map[string]bool)
	for _, part := range strings.Split(s, ",") {
		name, chars, ok := strings.Cut(strings.TrimSpace(part), ":")
		if !ok {
			return Mask{}, fmt.Errorf("%w: %q is not NAME:pattern", ErrInvalidMask, part)
		}
		if seen[name] {
			return Mask{}, fmt.Errorf("%w: orbit %s given twice", ErrInvalidMask, name)
		}
		seen[name] = true

		var dst []Visibility
		switch name {
		case "CORNERS":
			dst = m.Corners[:]
		case "EDGES":
			dst = m.Edges[:]
		case "CENTERS":
			dst = m.Centers[:]
		default:
			return Mask{}, fmt.Errorf("%w: unknown orbit %q", ErrInvalidMask, name)
		}
		if len(chars) != len(dst) {
			return Mask{}, fmt.Errorf("%w: %s needs %d entries, got %d", ErrInvalidMask, name, len(dst), len(chars))
		}
		for i := 0; i < len(chars); i++ {
			v, ok := visibilityFromChar(chars[i])
			if !ok {
				return Mask{}, fmt.Errorf("%w: bad entry %q in %s", ErrInvalidMask, chars[i], name)
			}
			dst[i] = v
		}
	}
	return m, nil
}
