package tui

import "github.com/charmbracelet/bubbles/key"

type browserKeys struct {
	NextCase    key.Binding
	PrevCase    key.Binding
	NextSection key.Binding
	PrevSection key.Binding
	StepForward key.Binding
	StepBack    key.Binding
	Play        key.Binding
	Reset       key.Binding
	Rotate      key.Binding
	Inverse     key.Binding
	Define      key.Binding
	Notes       key.Binding
	Close       key.Binding
	Help        key.Binding
	Quit        key.Binding
}

func newBrowserKeys() browserKeys {
	return browserKeys{
		NextCase:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "next case")),
		PrevCase:    key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "prev case")),
		NextSection: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next section")),
		PrevSection: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev section")),
		StepForward: key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "step")),
		StepBack:    key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "back")),
		Play:        key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "play/pause")),
		Reset:       key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset")),
		Rotate:      key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "other slot")),
		Inverse:     key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "inverse")),
		Define:      key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "define move")),
		Notes:       key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "section tips")),
		Close:       key.NewBinding(key.WithKeys("esc", "d"), key.WithHelp("esc", "close")),
		Help:        key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more keys")),
		Quit:        key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k browserKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Play, k.StepForward, k.StepBack, k.NextCase, k.Define, k.Help, k.Quit}
}

func (k browserKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextCase, k.PrevCase, k.NextSection, k.PrevSection},
		{k.Play, k.StepForward, k.StepBack, k.Reset},
		{k.Rotate, k.Inverse, k.Define, k.Notes, k.Quit},
	}
}

type drillKeys struct {
	Toggle key.Binding
	Fail   key.Binding
	Skip   key.Binding
	Quit   key.Binding
}

func newDrillKeys() drillKeys {
	return drillKeys{
		Toggle: key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "start/stop")),
		Fail:   key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "mark failed")),
		Skip:   key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "skip")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c", "esc"), key.WithHelp("q", "quit")),
	}
}

func (k drillKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Fail, k.Skip, k.Quit}
}

func (k drillKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
