// Package tui holds the interactive bubbletea programs: the case browser
// and the drill timer.
package tui

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/SeamusWaldron/cubealg"
	"github.com/SeamusWaldron/cubealg/internal/catalog"
	"github.com/SeamusWaldron/cubealg/internal/cube"
	"github.com/SeamusWaldron/cubealg/internal/render"
)

// slotOrder is the order the y key cycles through.
var slotOrder = []cubealg.Rotation{cubealg.Identity, cubealg.Y, cubealg.Y2, cubealg.YPrime}

type frameTickMsg struct{ gen int }

// Browser steps through the catalog one case at a time.
type Browser struct {
	cat  *catalog.Catalog
	r    *render.Renderer
	keys browserKeys
	help help.Model

	section int
	index   int
	slot    int
	inverse bool

	player  *cube.Player
	grouped cubealg.Grouped
	frame   int
	playing bool
	gen     int

	showDef bool
	variant int

	showNotes bool
	notes     map[int]string // rendered section notes by section index

	err      error
	quitting bool
}

// NewBrowser creates a browser positioned on the first case.
func NewBrowser(cat *catalog.Catalog, r *render.Renderer) *Browser {
	b := &Browser{
		cat:   cat,
		r:     r,
		keys:  newBrowserKeys(),
		help:  help.New(),
		notes: make(map[int]string),
	}
	b.load()
	return b
}

func (b *Browser) Init() tea.Cmd {
	return nil
}

// Case returns the case on screen, remapped for the current slot.
func (b *Browser) Case() *catalog.Case {
	s := b.currentSection()
	if s == nil || len(s.Cases) == 0 {
		return nil
	}
	return s.Cases[b.index].Rotated(b.Rotation())
}

// Rotation returns the current slot rotation.
func (b *Browser) Rotation() cubealg.Rotation {
	return slotOrder[b.slot]
}

// FrameIndex returns the frame on screen.
func (b *Browser) FrameIndex() int { return b.frame }

// Playing reports whether auto-play is on.
func (b *Browser) Playing() bool { return b.playing }

func (b *Browser) currentSection() *catalog.Section {
	if len(b.cat.Sections) == 0 {
		return nil
	}
	return b.cat.Sections[b.section]
}

// load rebuilds the player for the current case, slot and direction.
func (b *Browser) load() {
	b.frame = 0
	b.playing = false
	b.gen++
	b.showDef = false
	b.err = nil

	c := b.Case()
	if c == nil {
		b.player = nil
		return
	}

	setup, alg := c.Setup, c.Alg
	b.grouped = c.Grouped()
	if b.inverse {
		setup = strings.TrimSpace(cubealg.Normalize(c.Setup) + " " + cubealg.Normalize(c.Alg))
		alg = cubealg.Invert(c.Alg)
		b.grouped = cubealg.ParseGrouped(alg)
	}

	p := cube.NewPlayer(cube.WithOrientation(c.Orientation), cube.WithInterval(c.Interval))
	if err := p.Load(setup, alg, c.Mask()); err != nil {
		slog.Debug("load case", "case", c.ID, "error", err)
		b.err = err
		b.player = nil
		return
	}
	b.player = p
}

func (b *Browser) lastFrame() int {
	if b.player == nil {
		return 0
	}
	return b.player.Len() - 1
}

func (b *Browser) tick() tea.Cmd {
	gen := b.gen
	interval := b.player.Interval()
	return tea.Tick(interval, func(time.Time) tea.Msg {
		return frameTickMsg{gen: gen}
	})
}

// currentMove is the move the definition modal describes: the last move
// played, or the first move before anything has been played.
func (b *Browser) currentMove() (cubealg.Token, bool) {
	if len(b.grouped.Moves) == 0 {
		return "", false
	}
	i := b.frame - 1
	if i < 0 {
		i = 0
	}
	return b.grouped.Moves[i], true
}

func (b *Browser) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		b.help.Width = msg.Width
		b.r.SetWidth(msg.Width)

	case frameTickMsg:
		if msg.gen != b.gen || !b.playing {
			return b, nil
		}
		if b.frame < b.lastFrame() {
			b.frame++
		}
		if b.frame >= b.lastFrame() {
			b.playing = false
			return b, nil
		}
		return b, b.tick()

	case tea.KeyMsg:
		if key.Matches(msg, b.keys.Quit) {
			b.quitting = true
			return b, tea.Quit
		}
		if b.showDef {
			return b, b.updateDefinition(msg)
		}
		return b, b.updateKeys(msg)
	}
	return b, nil
}

func (b *Browser) updateDefinition(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, b.keys.Close):
		b.showDef = false
	case key.Matches(msg, b.keys.StepForward):
		b.variant = (b.variant + 1) % 3
	case key.Matches(msg, b.keys.StepBack):
		b.variant = (b.variant + 2) % 3
	}
	return nil
}

func (b *Browser) updateKeys(msg tea.KeyMsg) tea.Cmd {
	s := b.currentSection()
	switch {
	case key.Matches(msg, b.keys.NextCase):
		if s != nil && b.index < len(s.Cases)-1 {
			b.index++
			b.load()
		}

	case key.Matches(msg, b.keys.PrevCase):
		if b.index > 0 {
			b.index--
			b.load()
		}

	case key.Matches(msg, b.keys.NextSection):
		if s != nil {
			b.section = (b.section + 1) % len(b.cat.Sections)
			b.index = 0
			b.load()
		}

	case key.Matches(msg, b.keys.PrevSection):
		if s != nil {
			b.section = (b.section + len(b.cat.Sections) - 1) % len(b.cat.Sections)
			b.index = 0
			b.load()
		}

	case key.Matches(msg, b.keys.Notes):
		b.showNotes = !b.showNotes

	case key.Matches(msg, b.keys.StepForward):
		b.playing = false
		if b.frame < b.lastFrame() {
			b.frame++
		}

	case key.Matches(msg, b.keys.StepBack):
		b.playing = false
		if b.frame > 0 {
			b.frame--
		}

	case key.Matches(msg, b.keys.Play):
		if b.player == nil {
			return nil
		}
		b.gen++
		b.playing = !b.playing
		if !b.playing {
			return nil
		}
		if b.frame >= b.lastFrame() {
			b.frame = 0
		}
		return b.tick()

	case key.Matches(msg, b.keys.Reset):
		b.playing = false
		b.gen++
		b.frame = 0

	case key.Matches(msg, b.keys.Rotate):
		b.slot = (b.slot + 1) % len(slotOrder)
		b.load()

	case key.Matches(msg, b.keys.Inverse):
		b.inverse = !b.inverse
		b.load()

	case key.Matches(msg, b.keys.Define):
		if t, ok := b.currentMove(); ok {
			b.showDef = true
			b.playing = false
			b.variant = variantIndex(t)
		}

	case key.Matches(msg, b.keys.Help):
		b.help.ShowAll = !b.help.ShowAll
	}
	return nil
}

// sectionNotes renders the notes of the current section once and reuses
// them on later frames.
func (b *Browser) sectionNotes(s *catalog.Section) string {
	if notes, ok := b.notes[b.section]; ok {
		return notes
	}
	notes := b.r.SectionNotes(s)
	b.notes[b.section] = notes
	return notes
}

// variantIndex is the tab of t among its variants.
func variantIndex(t cubealg.Token) int {
	switch t.Modifier() {
	case cubealg.ModPrime:
		return 1
	case cubealg.ModDouble:
		return 2
	}
	return 0
}

func (b *Browser) View() string {
	if b.quitting {
		return ""
	}

	var sb strings.Builder
	s := b.currentSection()
	if s == nil {
		return "Catalog is empty.\n"
	}

	sb.WriteString(b.r.Title(s.Title))
	sb.WriteString("  ")
	sb.WriteString(b.r.Status(fmt.Sprintf("section %d/%d", b.section+1, len(b.cat.Sections))))
	sb.WriteString("\n\n")
	if b.showNotes {
		if notes := b.sectionNotes(s); notes != "" {
			sb.WriteString(notes)
			sb.WriteString("\n\n")
		}
	}

	c := b.Case()
	if c == nil {
		sb.WriteString("No cases in this section.\n")
		sb.WriteString(b.help.View(b.keys))
		return sb.String()
	}

	sb.WriteString(b.r.CaseHeader(c))
	sb.WriteString("\n\n")

	if b.err != nil {
		sb.WriteString(fmt.Sprintf("Cannot play case: %v\n", b.err))
	} else if f, err := b.player.Frame(b.frame); err == nil {
		sb.WriteString(b.r.Net(f.Cube, b.player.Mask()))
		sb.WriteString("\n")
		sb.WriteString(b.r.Algorithm(b.grouped, b.frame-1))
		sb.WriteString("\n")
		sb.WriteString(b.r.Progress(b.frame, b.lastFrame(), f.Stage))
		sb.WriteString("\n")
	}

	var flags []string
	if r := b.Rotation(); r != cubealg.Identity {
		flags = append(flags, "slot "+string(r))
	}
	if b.inverse {
		flags = append(flags, "inverse")
	}
	if b.playing {
		flags = append(flags, "playing")
	}
	if len(flags) > 0 {
		sb.WriteString(b.r.Status("[" + strings.Join(flags, ", ") + "]"))
		sb.WriteString("\n")
	}

	if b.showDef {
		if t, ok := b.currentMove(); ok {
			v := cubealg.Variants(t)[b.variant]
			sb.WriteString("\n")
			sb.WriteString(b.r.Variants(t, b.variant))
			sb.WriteString("\n")
			sb.WriteString(b.r.Definition(cubealg.Define(v)))
			sb.WriteString("\n")
		}
	}

	sb.WriteString("\n")
	sb.WriteString(b.help.View(b.keys))
	sb.WriteString("\n")
	return sb.String()
}
