// Package objective writes the human-readable text of instructions and
// mission objectives.
package objective

import (
	"fmt"
	"strings"

	"github.com/starshatterwars/missiongen/internal/mission"
	"github.com/starshatterwars/missiongen/pkg/core"
)

var actionNames = map[core.Action]string{
	core.ActionVector:    "Vector",
	core.ActionLaunch:    "Launch",
	core.ActionDock:      "Dock",
	core.ActionRTB:       "RTB",
	core.ActionDefend:    "Defend",
	core.ActionEscort:    "Escort",
	core.ActionPatrol:    "Patrol",
	core.ActionSweep:     "Sweep",
	core.ActionIntercept: "Intercept",
	core.ActionStrike:    "Strike",
	core.ActionAssault:   "Assault",
	core.ActionRecon:     "Recon",
	core.ActionRecall:    "Recall",
	core.ActionDeploy:    "Deploy",
}

// ActionName returns the display name of an action.
func ActionName(a core.Action) string {
	if n, ok := actionNames[a]; ok {
		return n
	}
	return "None"
}

// Describe returns the text of one instruction. region is used when the
// instruction names none.
func Describe(ins *mission.Instruction, region string) string {
	if ins == nil {
		return ""
	}
	tgt := ins.Description
	if tgt == "" {
		tgt = ins.Target
	}
	if ins.Region != "" {
		region = ins.Region
	}
	primary := ins.Priority <= mission.Primary

	switch ins.Action {
	case core.ActionVector:
		return fmt.Sprintf("Go to the %s sector", region)
	case core.ActionLaunch:
		return fmt.Sprintf("Launch from the %s", tgt)
	case core.ActionDock:
		return fmt.Sprintf("Dock with the %s", tgt)
	case core.ActionRTB:
		return "Return safely to base"
	case core.ActionDefend:
		if primary {
			return fmt.Sprintf("Defend the %s", tgt)
		}
		return fmt.Sprintf("Protect %s in the area", tgt)
	case core.ActionEscort:
		if primary {
			return fmt.Sprintf("Escort the %s", tgt)
		}
		return fmt.Sprintf("Protect %s in the area", tgt)
	case core.ActionPatrol, core.ActionSweep:
		return fmt.Sprintf("Disable or destroy %s in the %s sector", tgt, region)
	case core.ActionIntercept:
		return fmt.Sprintf("Intercept and destroy %s", tgt)
	case core.ActionStrike, core.ActionAssault:
		return fmt.Sprintf("Engage and destroy %s", tgt)
	case core.ActionRecon:
		return fmt.Sprintf("Recon scan %s", tgt)
	}
	return ActionName(ins.Action)
}

// Compose returns the objective list of the player element, one "* ...\n"
// line per objective. A player without objectives gets the standard fleet
// operations line for the mission region.
func Compose(m *mission.Mission) string {
	var b strings.Builder
	player := m.Player()
	var objs []*mission.Instruction
	if player != nil {
		objs = m.Objectives(player)
	}
	if len(objs) == 0 {
		fmt.Fprintf(&b, "* Perform standard fleet operations in the %s sector.\n", m.Region)
		return b.String()
	}
	for _, obj := range objs {
		b.WriteString("* ")
		b.WriteString(Describe(obj, m.Region))
		b.WriteString(".\n")
	}
	return b.String()
}
