package tui

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/stopwatch"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/SeamusWaldron/cubealg"
	"github.com/SeamusWaldron/cubealg/internal/catalog"
	"github.com/SeamusWaldron/cubealg/internal/cube"
	"github.com/SeamusWaldron/cubealg/internal/render"
)

// Recorder stores drill attempts.
type Recorder interface {
	RecordAttempt(caseID, rotation string, d time.Duration, failed bool) error
}

// DrillCase is a case to drill in a given slot.
type DrillCase struct {
	Case     *catalog.Case
	Rotation cubealg.Rotation
}

// Result is one finished attempt.
type Result struct {
	CaseID   string
	Rotation cubealg.Rotation
	Duration time.Duration
	Failed   bool
}

type drillState int

const (
	drillReady drillState = iota
	drillTiming
	drillDone
)

// Drill shows each case's starting state and times the solve.
type Drill struct {
	cases []DrillCase
	rec   Recorder
	r     *render.Renderer
	keys  drillKeys
	help  help.Model
	watch stopwatch.Model

	index   int
	state   drillState

	// The current case as shown and its starting state, built once per case.
	shown *catalog.Case
	start *cube.Cube
	mask  cube.Mask

	started time.Time
	results []Result
	err     error

	now func() time.Time
}

// NewDrill creates a drill over cases. rec may be nil.
func NewDrill(cases []DrillCase, rec Recorder, r *render.Renderer) *Drill {
	d := &Drill{
		cases: cases,
		rec:   rec,
		r:     r,
		keys:  newDrillKeys(),
		help:  help.New(),
		watch: stopwatch.NewWithInterval(100 * time.Millisecond),
		now:   time.Now,
	}
	if len(cases) == 0 {
		d.state = drillDone
	} else {
		d.prepare()
	}
	return d
}

// Results returns the attempts made so far.
func (d *Drill) Results() []Result { return d.results }

// Err returns the last recording error.
func (d *Drill) Err() error { return d.err }

func (d *Drill) Init() tea.Cmd {
	return nil
}

func (d *Drill) current() DrillCase {
	return d.cases[d.index]
}

func (d *Drill) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		d.help.Width = msg.Width

	case tea.KeyMsg:
		if key.Matches(msg, d.keys.Quit) {
			return d, tea.Quit
		}
		if d.state == drillDone {
			return d, nil
		}

		switch {
		case key.Matches(msg, d.keys.Toggle):
			if d.state == drillReady {
				d.state = drillTiming
				d.started = d.now()
				return d, tea.Batch(d.watch.Reset(), d.watch.Start())
			}
			return d, d.finish(false)

		case key.Matches(msg, d.keys.Fail):
			if d.state == drillTiming {
				return d, d.finish(true)
			}

		case key.Matches(msg, d.keys.Skip):
			if d.state == drillReady {
				d.advance()
			}
		}
	}

	var cmd tea.Cmd
	d.watch, cmd = d.watch.Update(msg)
	return d, cmd
}

// finish records the running attempt and moves on.
func (d *Drill) finish(failed bool) tea.Cmd {
	c := d.current()
	res := Result{
		CaseID:   c.Case.ID,
		Rotation: c.Rotation,
		Duration: d.now().Sub(d.started),
		Failed:   failed,
	}
	d.results = append(d.results, res)

	if d.rec != nil {
		if err := d.rec.RecordAttempt(res.CaseID, string(res.Rotation), res.Duration, res.Failed); err != nil {
			d.err = err
		}
	}

	d.advance()
	return d.watch.Stop()
}

func (d *Drill) advance() {
	d.index++
	d.state = drillReady
	if d.index >= len(d.cases) {
		d.index = len(d.cases) - 1
		d.state = drillDone
		return
	}
	d.prepare()
}

// prepare plays the setup of the current case.
func (d *Drill) prepare() {
	c := d.current()
	d.shown = c.Case.Rotated(c.Rotation)
	d.start = nil

	p, err := d.shown.NewPlayer()
	if err != nil {
		slog.Debug("drill setup", "case", d.shown.ID, "error", err)
		return
	}
	if f, err := p.Frame(0); err == nil {
		d.start = f.Cube
		d.mask = p.Mask()
	}
}

func (d *Drill) View() string {
	var sb strings.Builder

	if d.state == drillDone {
		sb.WriteString(d.r.Title("Drill complete"))
		sb.WriteString("\n\n")
		sb.WriteString(Summary(d.results))
		if d.err != nil {
			sb.WriteString(fmt.Sprintf("\nNot saved: %v\n", d.err))
		}
		sb.WriteString("\n")
		sb.WriteString(d.r.Status("q to quit"))
		sb.WriteString("\n")
		return sb.String()
	}

	c := d.current()
	sb.WriteString(d.r.Status(fmt.Sprintf("Case %d/%d", d.index+1, len(d.cases))))
	if c.Rotation != cubealg.Identity {
		sb.WriteString(d.r.Status("  slot " + string(c.Rotation)))
	}
	sb.WriteString("\n")

	sb.WriteString(d.r.CaseHeader(d.shown))
	sb.WriteString("\n\n")

	if d.start != nil {
		sb.WriteString(d.r.Net(d.start, d.mask))
	}
	sb.WriteString("\n")

	switch d.state {
	case drillReady:
		sb.WriteString("Press space to start the timer.\n")
	case drillTiming:
		sb.WriteString(d.r.Title(d.watch.View()))
		sb.WriteString("\n")
	}

	if d.err != nil {
		sb.WriteString(d.r.Status(fmt.Sprintf("Not saved: %v", d.err)))
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	sb.WriteString(d.help.View(d.keys))
	sb.WriteString("\n")
	return sb.String()
}

// Summary formats drill results, one line per attempt plus the mean of
// the successful ones.
func Summary(results []Result) string {
	if len(results) == 0 {
		return "No attempts.\n"
	}

	var sb strings.Builder
	var total time.Duration
	ok := 0
	for _, r := range results {
		mark := ""
		if r.Failed {
			mark = "  (failed)"
		} else {
			total += r.Duration
			ok++
		}
		id := r.CaseID
		if r.Rotation != cubealg.Identity {
			id += " " + string(r.Rotation)
		}
		fmt.Fprintf(&sb, "%-32s %6.2fs%s\n", id, r.Duration.Seconds(), mark)
	}
	if ok > 0 {
		fmt.Fprintf(&sb, "Mean of %d: %.2fs\n", ok, (total / time.Duration(ok)).Seconds())
	}
	return sb.String()
}
