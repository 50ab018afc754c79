package tui

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SeamusWaldron/cubealg"
	"github.com/SeamusWaldron/cubealg/internal/catalog"
	"github.com/SeamusWaldron/cubealg/internal/render"
)

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var (
	spaceKey = tea.KeyMsg{Type: tea.KeySpace}
	rightKey = tea.KeyMsg{Type: tea.KeyRight}
	leftKey  = tea.KeyMsg{Type: tea.KeyLeft}
	downKey  = tea.KeyMsg{Type: tea.KeyDown}
	tabKey   = tea.KeyMsg{Type: tea.KeyTab}
	escKey   = tea.KeyMsg{Type: tea.KeyEsc}
)

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	cat, err := catalog.Default()
	require.NoError(t, err)
	return cat
}

func send(t *testing.T, m tea.Model, msgs ...tea.Msg) tea.Cmd {
	t.Helper()
	var cmd tea.Cmd
	for _, msg := range msgs {
		_, cmd = m.Update(msg)
	}
	return cmd
}

func TestBrowserStartsOnFirstCase(t *testing.T) {
	b := NewBrowser(testCatalog(t), render.Plain())
	assert.Equal(t, "basic-cross-right", b.Case().ID)
	assert.Equal(t, 0, b.FrameIndex())

	view := b.View()
	assert.Contains(t, view, "Good Edges")
	assert.Contains(t, view, "One Move Insert: R")
	assert.Contains(t, view, "Move 0/1")
}

func TestBrowserStepping(t *testing.T) {
	b := NewBrowser(testCatalog(t), render.Plain())

	send(t, b, rightKey)
	assert.Equal(t, 1, b.FrameIndex())
	assert.Contains(t, b.View(), "[R]")

	send(t, b, rightKey)
	assert.Equal(t, 1, b.FrameIndex(), "stops at the last frame")

	send(t, b, leftKey, leftKey)
	assert.Equal(t, 0, b.FrameIndex())
}

func TestBrowserNavigation(t *testing.T) {
	b := NewBrowser(testCatalog(t), render.Plain())

	send(t, b, downKey)
	assert.Equal(t, "basic-cross-back", b.Case().ID)

	send(t, b, runeKey("k"))
	assert.Equal(t, "basic-cross-right", b.Case().ID)

	send(t, b, tabKey)
	assert.Equal(t, "bad-edge-f-insert", b.Case().ID)

	send(t, b, tea.KeyMsg{Type: tea.KeyShiftTab}, tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, "oll-ocll6", b.Case().ID, "wraps to the last section")
}

func TestBrowserAutoPlay(t *testing.T) {
	b := NewBrowser(testCatalog(t), render.Plain())
	send(t, b, downKey, downKey, downKey, downKey, downKey, downKey) // top-edge-front: 2 moves

	require.Equal(t, "top-edge-front", b.Case().ID)
	cmd := send(t, b, spaceKey)
	require.NotNil(t, cmd)
	assert.True(t, b.Playing())

	gen := b.gen
	send(t, b, frameTickMsg{gen: gen})
	assert.Equal(t, 1, b.FrameIndex())
	assert.True(t, b.Playing())

	send(t, b, frameTickMsg{gen: gen})
	assert.Equal(t, 2, b.FrameIndex())
	assert.False(t, b.Playing(), "stops at the end")

	// Ticks from an older generation are ignored.
	send(t, b, runeKey("r"))
	send(t, b, frameTickMsg{gen: gen})
	assert.Equal(t, 0, b.FrameIndex())
}

func TestBrowserPauseIgnoresPendingTick(t *testing.T) {
	b := NewBrowser(testCatalog(t), render.Plain())
	send(t, b, spaceKey)
	gen := b.gen
	send(t, b, spaceKey)
	assert.False(t, b.Playing())

	send(t, b, frameTickMsg{gen: gen})
	assert.Equal(t, 0, b.FrameIndex())
}

func TestBrowserRotateAndInverse(t *testing.T) {
	b := NewBrowser(testCatalog(t), render.Plain())
	send(t, b, tabKey, tabKey, tabKey, tabKey)
	require.Equal(t, "f2l-case1", b.Case().ID)

	send(t, b, runeKey("y"))
	assert.Equal(t, cubealg.Y, b.Rotation())
	assert.Equal(t, "B U' B'", b.Case().Alg)
	assert.Contains(t, b.View(), "slot y")

	send(t, b, runeKey("y"), runeKey("y"), runeKey("y"))
	assert.Equal(t, cubealg.Identity, b.Rotation())

	send(t, b, runeKey("i"))
	assert.Equal(t, "R U R'", b.grouped.Moves.String())
	assert.Contains(t, b.View(), "inverse")

	// The inverse starts where the case ends, so it finishes at the case's setup state.
	f, _ := b.player.Final()
	setup, err := b.player.Frame(0)
	require.NoError(t, err)
	assert.True(t, setup.Cube.IsSolved())
	assert.False(t, f.Cube.IsSolved())
}

func TestBrowserDefinitionModal(t *testing.T) {
	b := NewBrowser(testCatalog(t), render.Plain())
	send(t, b, downKey) // basic-cross-back: R'

	send(t, b, runeKey("d"))
	require.True(t, b.showDef)
	assert.Equal(t, 1, b.variant)
	view := b.View()
	assert.Contains(t, view, "R | [R'] | R2")
	assert.Contains(t, view, "Right Face Turn (Prime)")

	send(t, b, rightKey)
	assert.Equal(t, 2, b.variant)
	assert.Contains(t, b.View(), "Right Face Turn (Double)")
	assert.Equal(t, 0, b.FrameIndex(), "arrows change tabs while the modal is open")

	send(t, b, escKey)
	assert.False(t, b.showDef)
}

func TestBrowserQuit(t *testing.T) {
	b := NewBrowser(testCatalog(t), render.Plain())
	cmd := send(t, b, runeKey("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

type fakeRecorder struct {
	calls []Result
	err   error
}

func (f *fakeRecorder) RecordAttempt(caseID, rotation string, d time.Duration, failed bool) error {
	f.calls = append(f.calls, Result{CaseID: caseID, Rotation: cubealg.Rotation(rotation), Duration: d, Failed: failed})
	return f.err
}

func drillCases(t *testing.T, ids ...string) []DrillCase {
	t.Helper()
	cat := testCatalog(t)
	var out []DrillCase
	for _, id := range ids {
		c, err := cat.Case(id)
		require.NoError(t, err)
		out = append(out, DrillCase{Case: c})
	}
	return out
}

func fakeClock(times ...time.Time) func() time.Time {
	i := 0
	return func() time.Time {
		t := times[i]
		if i < len(times)-1 {
			i++
		}
		return t
	}
}

func TestDrillRecordsAttempts(t *testing.T) {
	rec := &fakeRecorder{}
	cases := drillCases(t, "oll-t1", "oll-t2")
	cases[1].Rotation = cubealg.Y2
	d := NewDrill(cases, rec, render.Plain())

	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	d.now = fakeClock(base, base.Add(3*time.Second), base.Add(10*time.Second), base.Add(15*time.Second))

	assert.Contains(t, d.View(), "Case 1/2")
	send(t, d, spaceKey)
	assert.Equal(t, drillTiming, d.state)
	send(t, d, spaceKey)

	assert.Contains(t, d.View(), "Case 2/2")
	assert.Contains(t, d.View(), "slot y2")
	send(t, d, spaceKey, runeKey("f"))

	assert.Equal(t, drillDone, d.state)
	require.Len(t, rec.calls, 2)
	assert.Equal(t, Result{CaseID: "oll-t1", Duration: 3 * time.Second}, rec.calls[0])
	assert.Equal(t, Result{CaseID: "oll-t2", Rotation: cubealg.Y2, Duration: 5 * time.Second, Failed: true}, rec.calls[1])
	assert.Equal(t, rec.calls, d.Results())

	view := d.View()
	assert.Contains(t, view, "Drill complete")
	assert.Contains(t, view, "Mean of 1: 3.00s")
}

func TestDrillSkipAndRecorderError(t *testing.T) {
	rec := &fakeRecorder{err: errors.New("disk full")}
	d := NewDrill(drillCases(t, "f2l-case1", "f2l-case2"), rec, render.Plain())

	send(t, d, runeKey("n"))
	assert.Contains(t, d.View(), "Case 2/2")

	send(t, d, spaceKey, spaceKey)
	assert.Equal(t, drillDone, d.state)
	assert.EqualError(t, d.Err(), "disk full")
	assert.Contains(t, d.View(), "Not saved: disk full")
}

func TestDrillWithoutCases(t *testing.T) {
	d := NewDrill(nil, nil, render.Plain())
	assert.Contains(t, d.View(), "No attempts.")
}

func TestSummary(t *testing.T) {
	out := Summary([]Result{
		{CaseID: "a", Duration: 2 * time.Second},
		{CaseID: "b", Rotation: cubealg.Y, Duration: 4 * time.Second},
		{CaseID: "c", Duration: time.Second, Failed: true},
	})
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4)
	assert.Contains(t, lines[1], "b y")
	assert.Contains(t, lines[2], "(failed)")
	assert.Equal(t, "Mean of 2: 3.00s", lines[3])
}

func TestBrowserSectionNotes(t *testing.T) {
	b := NewBrowser(testCatalog(t), render.Plain())
	assert.NotContains(t, b.View(), "Good edges are the foundation")

	send(t, b, runeKey("t"))
	view := b.View()
	assert.Contains(t, view, "Good edges are the foundation of efficient cross solving.")
	assert.Contains(t, view, "- Good Edges are edges that can be inserted without rotating the cube.")

	send(t, b, tabKey)
	assert.Contains(t, b.View(), "Bad edges require cube rotations to insert efficiently.")

	send(t, b, runeKey("t"))
	assert.NotContains(t, b.View(), "Bad edges require cube rotations to insert efficiently.")
}

func TestBrowserEmptyCatalog(t *testing.T) {
	b := NewBrowser(&catalog.Catalog{}, render.Plain())
	assert.Nil(t, b.Case())

	assert.NotPanics(t, func() {
		send(t, b, tabKey, tea.KeyMsg{Type: tea.KeyShiftTab}, downKey, rightKey, spaceKey, runeKey("y"), runeKey("i"), runeKey("d"), runeKey("t"))
	})
	assert.Equal(t, "Catalog is empty.\n", b.View())
}

func TestDrillBuildsStartOncePerCase(t *testing.T) {
	cases := drillCases(t, "oll-t1", "oll-t2")
	cases[1].Rotation = cubealg.Y
	d := NewDrill(cases, nil, render.Plain())

	require.NotNil(t, d.start)
	assert.False(t, d.start.IsSolved())
	assert.Equal(t, "oll-t1", d.shown.ID)

	first := d.start
	_ = d.View()
	send(t, d, spaceKey)
	_ = d.View()
	assert.Same(t, first, d.start, "timing reuses the prepared state")

	send(t, d, spaceKey)
	assert.Equal(t, "oll-t2", d.shown.ID)
	assert.NotSame(t, first, d.start)
	assert.Equal(t, cases[1].Case.Rotated(cubealg.Y).Alg, d.shown.Alg)
}
