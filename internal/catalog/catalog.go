// Package catalog holds the tutorial cases: cross, F2L and OLL
// algorithms with the setup that produces each case.
package catalog

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"

	"github.com/SeamusWaldron/cubealg"
	"github.com/SeamusWaldron/cubealg/internal/cube"
)

//go:embed cases.yaml
var defaultCases []byte

// DefaultInterval is used for cases and sections that set none.
const DefaultInterval = 2 * time.Second

// Catalog is an ordered list of sections.
type Catalog struct {
	Sections []*Section `yaml:"sections"`

	cases map[string]*Case
}

// Section groups related cases.
type Section struct {
	ID          string        `yaml:"id"`
	Title       string        `yaml:"title"`
	Description string        `yaml:"description"`
	Intro       string        `yaml:"intro"`
	Stickering  string        `yaml:"stickering"`
	Orientation string        `yaml:"orientation"`
	Interval    time.Duration `yaml:"interval"`
	Tips        []string      `yaml:"tips"`
	Groups      []Group       `yaml:"groups"`
	Cases       []*Case       `yaml:"cases"`
}

// Group is a named pattern family within a section, like the OLL shapes.
type Group struct {
	ID    string `yaml:"id"`
	Title string `yaml:"title"`
	Tip   string `yaml:"tip"`
}

// Case is one algorithm demo.
type Case struct {
	ID          string        `yaml:"id"`
	Title       string        `yaml:"title"`
	Probability string        `yaml:"probability"`
	Group       string        `yaml:"group"`
	Alg         string        `yaml:"alg"`
	Setup       string        `yaml:"setup"`
	AutoSetup   bool          `yaml:"auto_setup"`
	Stickering  string        `yaml:"stickering"`
	Orientation string        `yaml:"orientation"`
	Interval    time.Duration `yaml:"interval"`
	Goal        string        `yaml:"goal"`

	// Section is the id of the section holding the case.
	Section string `yaml:"-"`

	mask cube.Mask
	goal cube.Stage
}

var probabilitySuffix = regexp.MustCompile(`\s*-\s*Probability\s*=\s*(.+)$`)

// SplitProbability separates a "Name - Probability = 1/54" title into its
// name and probability. Titles without the suffix come back unchanged with
// an empty probability.
func SplitProbability(title string) (name, probability string) {
	m := probabilitySuffix.FindStringSubmatchIndex(title)
	if m == nil {
		return title, ""
	}
	return strings.TrimSpace(title[:m[0]]), title[m[2]:m[3]]
}

// Default returns the built-in catalog.
func Default() (*Catalog, error) {
	return Load(bytes.NewReader(defaultCases))
}

// Load decodes a catalog from YAML.
func Load(r io.Reader) (*Catalog, error) {
	cat := &Catalog{}
	if err := cat.merge(r); err != nil {
		return nil, err
	}
	return cat, nil
}

// LoadFiles returns the built-in catalog extended with every file matching
// the patterns. Patterns support ** globs. Sections with an existing id get
// the new cases appended; other sections are added at the end.
func LoadFiles(patterns ...string) (*Catalog, error) {
	cat, err := Default()
	if err != nil {
		return nil, fmt.Errorf("load default catalog: %w", err)
	}

	for _, pattern := range patterns {
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, fmt.Errorf("glob %q: %w", pattern, err)
		}
		sort.Strings(matches)

		for _, path := range matches {
			if err := cat.mergeFile(path); err != nil {
				return nil, err
			}
		}
	}
	return cat, nil
}

func (cat *Catalog) mergeFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()

	if err := cat.merge(f); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

func (cat *Catalog) merge(r io.Reader) error {
	var doc Catalog
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && err != io.EOF {
		return fmt.Errorf("decode catalog: %w", err)
	}

	if cat.cases == nil {
		cat.cases = make(map[string]*Case)
	}

	for _, s := range doc.Sections {
		if s.ID == "" {
			return fmt.Errorf("%w: section without id", ErrInvalidCase)
		}

		// Cases added to an existing section take that section's defaults.
		target, err := cat.Section(s.ID)
		if err != nil {
			target = s
			s = &Section{ID: s.ID, Cases: s.Cases, Tips: s.Tips, Groups: s.Groups}
			target.Cases, target.Tips, target.Groups = nil, nil, nil
			cat.Sections = append(cat.Sections, target)
		}
		target.Tips = append(target.Tips, s.Tips...)
		target.Groups = append(target.Groups, s.Groups...)

		for _, c := range s.Cases {
			if err := target.prepare(c); err != nil {
				return err
			}
			if _, ok := cat.cases[c.ID]; ok {
				return fmt.Errorf("%w: %s", ErrDuplicateCase, c.ID)
			}
			cat.cases[c.ID] = c
			target.Cases = append(target.Cases, c)
		}
	}
	return nil
}

// prepare fills in section defaults and checks the case.
func (s *Section) prepare(c *Case) error {
	if c.ID == "" {
		return fmt.Errorf("%w: case without id in section %s", ErrInvalidCase, s.ID)
	}
	c.Section = s.ID

	if c.Probability == "" {
		c.Title, c.Probability = SplitProbability(c.Title)
	}
	if c.AutoSetup {
		c.Setup = cubealg.Invert(c.Alg)
	}
	if c.Stickering == "" {
		c.Stickering = s.Stickering
	}
	if c.Orientation == "" {
		c.Orientation = s.Orientation
	}
	if c.Interval <= 0 {
		c.Interval = s.Interval
	}
	if c.Interval <= 0 {
		c.Interval = DefaultInterval
	}

	mask, err := cube.ParseMask(c.Stickering)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrInvalidCase, c.ID, err)
	}
	c.mask = mask

	if c.Goal != "" {
		goal, ok := cube.ParseStage(c.Goal)
		if !ok {
			return fmt.Errorf("%w: %s: unknown goal %q", ErrInvalidCase, c.ID, c.Goal)
		}
		c.goal = goal
	}

	if _, err := cubealg.ParseStrict(c.Alg); err != nil {
		return fmt.Errorf("%w: %s: alg: %w", ErrInvalidCase, c.ID, err)
	}
	if _, err := cubealg.ParseStrict(c.Setup); err != nil {
		return fmt.Errorf("%w: %s: setup: %w", ErrInvalidCase, c.ID, err)
	}
	if c.Group != "" && s.group(c.Group) == nil {
		return fmt.Errorf("%w: %s: unknown group %q", ErrInvalidCase, c.ID, c.Group)
	}
	return nil
}

func (s *Section) group(id string) *Group {
	for i := range s.Groups {
		if s.Groups[i].ID == id {
			return &s.Groups[i]
		}
	}
	return nil
}

// GroupOf returns the group a case belongs to, if any.
func (s *Section) GroupOf(c *Case) (Group, bool) {
	g := s.group(c.Group)
	if g == nil {
		return Group{}, false
	}
	return *g, true
}

// Section returns the section with the given id.
func (cat *Catalog) Section(id string) (*Section, error) {
	for _, s := range cat.Sections {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrSectionNotFound, id)
}

// Case returns the case with the given id.
func (cat *Catalog) Case(id string) (*Case, error) {
	c, ok := cat.cases[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrCaseNotFound, id)
	}
	return c, nil
}

// Cases returns every case in section order.
func (cat *Catalog) Cases() []*Case {
	var out []*Case
	for _, s := range cat.Sections {
		out = append(out, s.Cases...)
	}
	return out
}

// Moves returns the parsed algorithm.
func (c *Case) Moves() cubealg.Algorithm {
	return cubealg.Parse(c.Alg)
}

// Grouped returns the algorithm with its trigger groups.
func (c *Case) Grouped() cubealg.Grouped {
	return cubealg.ParseGrouped(c.Alg)
}

// Mask returns the stickering mask for the case.
func (c *Case) Mask() cube.Mask {
	return c.mask
}

// GoalStage returns the stage the case should reach, or false if it has
// no goal.
func (c *Case) GoalStage() (cube.Stage, bool) {
	return c.goal, c.Goal != ""
}

// Rotated returns a copy of the case remapped for the slot reached by
// rotating the cube by r. Trigger groups are kept.
func (c *Case) Rotated(r cubealg.Rotation) *Case {
	out := *c
	if r == cubealg.Identity {
		return &out
	}
	g := cubealg.ParseGrouped(c.Alg)
	g.Moves = g.Moves.TransformByY(r)
	out.Alg = g.String()
	out.Setup = cubealg.Parse(c.Setup).TransformByY(r).String()
	return &out
}

// NewPlayer returns a player holding the case's orientation and interval,
// with the case loaded. Extra options are applied last.
func (c *Case) NewPlayer(opts ...cube.Option) (*cube.Player, error) {
	base := []cube.Option{
		cube.WithOrientation(c.Orientation),
		cube.WithInterval(c.Interval),
	}
	p := cube.NewPlayer(append(base, opts...)...)
	if err := p.Load(c.Setup, c.Alg, c.mask); err != nil {
		return nil, fmt.Errorf("case %s: %w", c.ID, err)
	}
	return p, nil
}
