package catalog

import (
	"fmt"
	"strings"

	"github.com/SeamusWaldron/cubealg/internal/cube"
)

// Finding is a case that did not play out as its goal says.
type Finding struct {
	CaseID string
	Want   cube.Stage
	Got    cube.Stage
	Err    error
}

func (f Finding) String() string {
	if f.Err != nil {
		return fmt.Sprintf("%s: %v", f.CaseID, f.Err)
	}
	return fmt.Sprintf("%s: reached %s, want %s", f.CaseID, f.Got, f.Want)
}

// Verify plays every case and reports the ones that cannot be executed or
// whose final frame falls short of the goal stage. orientation is applied
// before each case's own orientation.
func Verify(cat *Catalog, orientation string) []Finding {
	var findings []Finding
	for _, c := range cat.Cases() {
		hold := strings.TrimSpace(orientation + " " + c.Orientation)
		p, err := c.NewPlayer(cube.WithOrientation(hold))
		if err != nil {
			findings = append(findings, Finding{CaseID: c.ID, Err: err})
			continue
		}

		want, ok := c.GoalStage()
		if !ok {
			continue
		}
		final, _ := p.Final()
		if final.Stage < want {
			findings = append(findings, Finding{CaseID: c.ID, Want: want, Got: final.Stage})
		}
	}
	return findings
}
