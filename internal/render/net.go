package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/SeamusWaldron/cubealg/internal/cube"
)

var stickerColors = map[cube.Color]lipgloss.Color{
	cube.White:  lipgloss.Color("#FFFFFF"),
	cube.Yellow: lipgloss.Color("#FFD500"),
	cube.Green:  lipgloss.Color("#009B48"),
	cube.Blue:   lipgloss.Color("#0046AD"),
	cube.Red:    lipgloss.Color("#B71234"),
	cube.Orange: lipgloss.Color("#FF5800"),
}

var (
	dimSticker     = lipgloss.NewStyle().Background(lipgloss.Color("240"))
	ignoredSticker = lipgloss.NewStyle().Background(lipgloss.Color("236")).Foreground(lipgloss.Color("245"))
)

// Net renders c as an unfolded net with U on top, L F R B across the middle
// and D at the bottom. mask decides how each piece is drawn.
//
// Plain output uses color letters. Dimmed stickers are lower case, ignored
// stickers are "?" and invisible stickers are ".".
func (r *Renderer) Net(c *cube.Cube, mask cube.Mask) string {
	var b strings.Builder
	row := func(face cube.Face, line int) {
		for col := 0; col < 3; col++ {
			b.WriteString(r.sticker(c, mask, face, line*3+col))
		}
	}
	pad := strings.Repeat(" ", 6)

	for line := 0; line < 3; line++ {
		b.WriteString(pad)
		row(cube.U, line)
		b.WriteByte('\n')
	}
	for line := 0; line < 3; line++ {
		for _, face := range []cube.Face{cube.L, cube.F, cube.R, cube.B} {
			row(face, line)
		}
		b.WriteByte('\n')
	}
	for line := 0; line < 3; line++ {
		b.WriteString(pad)
		row(cube.D, line)
		b.WriteByte('\n')
	}
	return b.String()
}

func (r *Renderer) sticker(c *cube.Cube, mask cube.Mask, face cube.Face, idx int) string {
	color := c.Color(face, idx)
	vis := mask.Visibility(c, face, idx)

	if r.plain {
		switch vis {
		case cube.Dim:
			return strings.ToLower(color.String()) + " "
		case cube.Ignored:
			return "? "
		case cube.Invisible:
			return ". "
		default:
			return color.String() + " "
		}
	}

	switch vis {
	case cube.Dim:
		return dimSticker.Render("  ")
	case cube.Ignored:
		return ignoredSticker.Render("? ")
	case cube.Invisible:
		return "  "
	default:
		return lipgloss.NewStyle().Background(stickerColors[color]).Render("  ")
	}
}
