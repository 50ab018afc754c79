// Package render draws cubes, algorithms and move definitions for the
// terminal. A plain renderer emits letters only, for pipes and tests.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"github.com/SeamusWaldron/cubealg"
	"github.com/SeamusWaldron/cubealg/internal/catalog"
	"github.com/SeamusWaldron/cubealg/internal/cube"
)

// Color modes accepted by New.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Renderer formats output either with lipgloss styles or as plain text.
type Renderer struct {
	plain bool
	width int
}

// New returns a renderer for out. In auto mode styling is used only when
// out is a terminal.
func New(out io.Writer, mode string) *Renderer {
	switch mode {
	case ColorAlways:
		return &Renderer{width: 80}
	case ColorNever:
		return Plain()
	}
	if !isTerminal(out) {
		return Plain()
	}
	return &Renderer{width: 80}
}

// Plain returns a renderer that never emits escape codes.
func Plain() *Renderer {
	return &Renderer{plain: true, width: 80}
}

// IsPlain reports whether styling is off.
func (r *Renderer) IsPlain() bool { return r.plain }

// SetWidth sets the wrap width for markdown and cards.
func (r *Renderer) SetWidth(w int) {
	if w > 20 {
		r.width = w
	}
}

func isTerminal(out io.Writer) bool {
	f, ok := out.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	stageStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Padding(0, 1)

	currentMoveStyle = lipgloss.NewStyle().
				Bold(true).
				Reverse(true)

	bracketStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	kindStyles = map[cubealg.Kind]lipgloss.Style{
		cubealg.KindFace:     lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
		cubealg.KindWide:     lipgloss.NewStyle().Foreground(lipgloss.Color("82")),
		cubealg.KindSlice:    lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		cubealg.KindRotation: lipgloss.NewStyle().Foreground(lipgloss.Color("205")),
		cubealg.KindUnknown:  lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
	}
)

// Title renders a heading.
func (r *Renderer) Title(s string) string {
	if r.plain {
		return s
	}
	return titleStyle.Render(s)
}

// Status renders secondary text.
func (r *Renderer) Status(s string) string {
	if r.plain {
		return s
	}
	return statusStyle.Render(s)
}

// Progress renders the frame counter and stage, e.g. "Move 3/7  Stage: Cross".
func (r *Renderer) Progress(index, total int, stage cube.Stage) string {
	name := stage.DisplayName()
	if !r.plain {
		name = stageStyle.Render(name)
	}
	return fmt.Sprintf("Move %d/%d  Stage: %s", index, total, name)
}

// Algorithm renders the moves as buttons with their trigger brackets. The
// move at index current is highlighted; pass -1 for none.
func (r *Renderer) Algorithm(g cubealg.Grouped, current int) string {
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
		before := strings.Repeat("(", opens[i])
		after := strings.Repeat(")", closes[i])
		if !r.plain {
			before, after = bracketStyle.Render(before), bracketStyle.Render(after)
		}
		parts[i] = before + r.move(t, i == current) + after
	}
	return strings.Join(parts, " ")
}

func (r *Renderer) move(t cubealg.Token, current bool) string {
	if r.plain {
		if current {
			return "[" + string(t) + "]"
		}
		return string(t)
	}
	style := kindStyles[t.Kind()]
	if current {
		style = style.Inherit(currentMoveStyle)
	}
	return style.Render(string(t))
}

// Variants renders the variant tabs of a move with selected marked.
func (r *Renderer) Variants(t cubealg.Token, selected int) string {
	vs := cubealg.Variants(t)
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = r.move(v, i == selected)
	}
	return strings.Join(parts, " | ")
}

// Definition renders a move definition card.
func (r *Renderer) Definition(d cubealg.Definition) string {
	var b strings.Builder
	b.WriteString(r.Title(string(d.Token) + " - " + d.Title))
	b.WriteString("\n")
	b.WriteString(d.Description)
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "Direction: %s\n", d.Direction)
	fmt.Fprintf(&b, "Layer:     %s\n", d.Layer)
	fmt.Fprintf(&b, "Angle:     %s", d.Angle)

	if r.plain {
		return b.String()
	}
	return cardStyle.Width(r.width / 2).Render(b.String())
}

// CaseHeader renders the title line of a case with its probability and
// section.
func (r *Renderer) CaseHeader(c *catalog.Case) string {
	title := c.Title
	if title == "" {
		title = c.ID
	}
	line := r.Title(title)
	if c.Probability != "" {
		line += "  " + r.Status("Probability "+c.Probability)
	}
	return line + "\n" + r.Status(fmt.Sprintf("%s / %s", c.Section, c.ID))
}

// SectionNotes renders the description, intro and tips of a section.
func (r *Renderer) SectionNotes(s *catalog.Section) string {
	var parts []string
	if s.Description != "" {
		parts = append(parts, s.Description)
	}
	if s.Intro != "" {
		parts = append(parts, s.Intro)
	}
	if len(s.Tips) > 0 {
		var b strings.Builder
		b.WriteString("**Tips**\n")
		for _, tip := range s.Tips {
			b.WriteString("\n- ")
			b.WriteString(tip)
		}
		parts = append(parts, b.String())
	}
	return r.Markdown(strings.Join(parts, "\n\n"))
}

// Markdown renders prose such as section intros and tips. Plain renderers
// return the text unchanged.
func (r *Renderer) Markdown(text string) string {
	if r.plain || strings.TrimSpace(text) == "" {
		return text
	}
	tr, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(r.width),
	)
	if err != nil {
		return text
	}
	out, err := tr.Render(text)
	if err != nil {
		return text
	}
	return strings.TrimRight(out, "\n")
}
