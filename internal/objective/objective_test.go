package objective

import (
	"testing"

	"github.com/starshatterwars/missiongen/internal/mission"
	"github.com/starshatterwars/missiongen/pkg/core"
	"github.com/stretchr/testify/assert"
)

func TestDescribe(t *testing.T) {
	tests := []struct {
		name string
		ins  mission.Instruction
		want string
	}{
		{"vector", mission.Instruction{Action: core.ActionVector}, "Go to the Borova sector"},
		{"vector own region", mission.Instruction{Action: core.ActionVector, Region: "Ostara"}, "Go to the Ostara sector"},
		{"launch", mission.Instruction{Action: core.ActionLaunch, Target: "Archon"}, "Launch from the Archon"},
		{"dock", mission.Instruction{Action: core.ActionDock, Target: "Archon"}, "Dock with the Archon"},
		{"rtb", mission.Instruction{Action: core.ActionRTB}, "Return safely to base"},
		{"defend", mission.Instruction{Action: core.ActionDefend, Target: "Relay"}, "Defend the Relay"},
		{"defend secondary", mission.Instruction{Action: core.ActionDefend, Target: "Relay", Priority: mission.Secondary}, "Protect Relay in the area"},
		{"escort", mission.Instruction{Action: core.ActionEscort, Target: "Ceres", Description: "star freighter Ceres"}, "Escort the star freighter Ceres"},
		{"escort bonus", mission.Instruction{Action: core.ActionEscort, Target: "Ceres", Priority: mission.Bonus}, "Protect Ceres in the area"},
		{"patrol", mission.Instruction{Action: core.ActionPatrol, Description: "inbound enemy units"}, "Disable or destroy inbound enemy units in the Borova sector"},
		{"sweep", mission.Instruction{Action: core.ActionSweep, Target: "Jackal", Region: "Ostara"}, "Disable or destroy Jackal in the Ostara sector"},
		{"intercept", mission.Instruction{Action: core.ActionIntercept, Target: "Jackal"}, "Intercept and destroy Jackal"},
		{"strike", mission.Instruction{Action: core.ActionStrike, Target: "Deep Base"}, "Engage and destroy Deep Base"},
		{"assault", mission.Instruction{Action: core.ActionAssault, Description: "preplanned target 'Razor'"}, "Engage and destroy preplanned target 'Razor'"},
		{"recon", mission.Instruction{Action: core.ActionRecon, Target: "Razor"}, "Recon scan Razor"},
		{"recall", mission.Instruction{Action: core.ActionRecall}, "Recall"},
		{"none", mission.Instruction{}, "None"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Describe(&tt.ins, "Borova"))
		})
	}
	assert.Empty(t, Describe(nil, "Borova"))
}

func TestCompose(t *testing.T) {
	m := mission.New(1, core.Patrol)
	m.Region = "Borova"
	player := &mission.Element{ID: 1000, Name: "Courageous", Player: true}
	m.AddElement(player)

	assert.Equal(t, "* Perform standard fleet operations in the Borova sector.\n", Compose(m))

	m.AddObjective(player, &mission.Instruction{Action: core.ActionEscort, Target: "Ceres", Description: "star freighter Ceres"})
	m.AddObjective(player, &mission.Instruction{Action: core.ActionPatrol, Description: "enemy patrols"})

	assert.Equal(t,
		"* Escort the star freighter Ceres.\n* Disable or destroy enemy patrols in the Borova sector.\n",
		Compose(m))
}

func TestCompose_NoPlayer(t *testing.T) {
	m := mission.New(1, core.Patrol)
	m.Region = "Ostara"

	assert.Equal(t, "* Perform standard fleet operations in the Ostara sector.\n", Compose(m))
}
