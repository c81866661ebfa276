package scenes

import (
	"fmt"

	cfg "github.com/automoto/tilestep/config"
	"github.com/automoto/tilestep/systems"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// AboutScene lists the controls of every scheme.
type AboutScene struct {
	*pageScene
}

func NewAboutScene(hub *systems.Hub, nav systems.Navigator) (*AboutScene, error) {
	lines := aboutLines()
	ps, err := newPageScene(hub, nav, cfg.C.Title, lines, cfg.Grey)
	if err != nil {
		return nil, err
	}
	return &AboutScene{ps}, nil
}

func aboutLines() []string {
	upper := cases.Upper(language.Und)
	lines := []string{
		"Walk the grid one tile per press. Holding does not repeat.",
		"",
	}
	for s := cfg.ControlSchemeID(0); s < cfg.SchemeCount; s++ {
		lines = append(lines, fmt.Sprintf("[%s]", upper.String(s.String())))
		lines = append(lines, systems.DescribeBindings(s)...)
	}
	return lines
}
