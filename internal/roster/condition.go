package roster

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/starshatterwars/missiongen/pkg/core"
)

// GroupEnv is the view of the player group available to template conditions.
type GroupEnv struct {
	ID     int
	Name   string
	Type   string
	IFF    int
	Zone   string
	Region string
	Units  int
}

// TemplateEnv is the expression environment for template conditions, e.g.
//
//	Group.Type == "DESTROYER_SQUADRON" && Group.Units >= 2
type TemplateEnv struct {
	Mission string
	Group   GroupEnv
}

func compileCondition(src string) (*vm.Program, error) {
	prog, err := expr.Compile(src, expr.Env(TemplateEnv{}), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("compile condition: %w", err)
	}
	return prog, nil
}

func matchCondition(prog *vm.Program, t core.MissionType, g *core.CombatGroup) bool {
	env := TemplateEnv{Mission: t.String()}
	if g != nil {
		zone := g.AssignedZone
		if zone == "" {
			zone = g.CurrentZone
		}
		env.Group = GroupEnv{
			ID:     g.ID,
			Name:   g.Name,
			Type:   g.Type.String(),
			IFF:    g.IFF,
			Zone:   zone,
			Region: g.Region,
			Units:  g.CountUnits(),
		}
	}
	out, err := expr.Run(prog, env)
	if err != nil {
		return false
	}
	ok, _ := out.(bool)
	return ok
}
