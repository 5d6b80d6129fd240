package describe

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/starshatterwars/missiongen/internal/mission"
	"github.com/starshatterwars/missiongen/pkg/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type groups map[int]*core.CombatGroup

func (g groups) Group(id int) *core.CombatGroup { return g[id] }

var blue = &core.CombatGroup{ID: 12, Type: core.DestroyerSquadron, IFF: 1, Name: "Blue"}

func newMission(t core.MissionType) (*mission.Mission, *mission.Element) {
	m := mission.New(7, t)
	m.System = "Ostara"
	m.Region = "Borova"
	m.Start = 30*time.Hour + 15*time.Minute
	m.Objective = "* Patrol.\n"
	p := &mission.Element{ID: 1000, Name: "Courageous", GroupID: 12, Region: "Borova"}
	m.AddElement(p)
	m.SetPlayer(p)
	return m, p
}

func TestName(t *testing.T) {
	t.Run("template", func(t *testing.T) {
		m, _ := newMission(core.Blockade)
		assert.Equal(t, "MSN-007 Blockade Run", Name(m, &core.TemplateRecord{Name: "Blockade Run"}))
	})

	t.Run("ward", func(t *testing.T) {
		m, _ := newMission(core.EscortFreight)
		ward := &mission.Element{ID: 1001, Name: "Ceres"}
		m.AddElement(ward)
		m.WardID = ward.ID
		target := &mission.Element{ID: 1002, Name: "Razor", Class: core.Destroyer}
		m.AddElement(target)
		m.TargetID = target.ID
		assert.Equal(t, "MSN-007 Freight Escort Ceres", Name(m, nil))
	})

	t.Run("target", func(t *testing.T) {
		m, _ := newMission(core.Assault)
		target := &mission.Element{ID: 1002, Name: "Razor", Class: core.Destroyer}
		m.AddElement(target)
		m.TargetID = target.ID
		assert.Equal(t, "MSN-007 Assault Destroyer Razor", Name(m, nil))
	})

	t.Run("type only", func(t *testing.T) {
		m, _ := newMission(core.FlightOps)
		assert.Equal(t, "MSN-007 Flight Ops", Name(m, &core.TemplateRecord{}))
	})
}

func TestDescribe(t *testing.T) {
	m, _ := newMission(core.Patrol)

	info := Describe(m, nil, groups{12: blue})
	require.NotNil(t, info)

	assert.Equal(t, 7, info.ID)
	assert.NotEqual(t, uuid.Nil, info.Key)
	assert.Equal(t, "MSN-007 Patrol", info.Name)
	assert.Equal(t, info.Name, m.Name)
	assert.Equal(t, core.Patrol, info.Type)
	assert.Equal(t, `12th Destroyer Squadron "Blue"`, info.PlayerInfo)
	assert.Equal(t, "* Patrol.\n", info.Description)
	assert.Equal(t, "Ostara", info.System)
	assert.Equal(t, "Borova", info.Region)
	assert.Empty(t, info.Template)
	assert.Same(t, m, info.Mission)
}

func TestDescribe_UnknownPlayerGroup(t *testing.T) {
	m, _ := newMission(core.Patrol)

	info := Describe(m, &core.TemplateRecord{Name: "Picket"}, groups{})
	require.NotNil(t, info)
	assert.Equal(t, UnknownPlayer, info.PlayerInfo)
	assert.Equal(t, "Picket", info.Template)

	assert.Equal(t, UnknownPlayer, Describe(m, nil, nil).PlayerInfo)
}

func TestDescribe_NoPlayer(t *testing.T) {
	assert.Nil(t, Describe(nil, nil, nil))

	m := mission.New(3, core.Patrol)
	m.AddElement(&mission.Element{ID: 1, Name: "Drifter"})
	assert.Nil(t, Describe(m, nil, nil))
	assert.Empty(t, m.Name)
}

func TestBriefing(t *testing.T) {
	m, p := newMission(core.Patrol)
	m.AddNavPoint(p, &mission.Instruction{Action: core.ActionPatrol, Location: core.Vec3{X: 100e3}})
	m.AddNavPoint(p, &mission.Instruction{Action: core.ActionPatrol, Location: core.Vec3{X: 100e3, Y: 50e3}})

	text := Briefing(Describe(m, nil, groups{12: blue}))

	assert.Equal(t, "MSN-007 Patrol\n"+
		"Type: Patrol\n"+
		"Unit: 12th Destroyer Squadron \"Blue\"\n"+
		"Sector: Borova, Ostara system\n"+
		"Start: Day 2 06:15:00\n"+
		"\nObjectives:\n* Patrol.\n"+
		"\nFlight plan: 2 nav points, 150 km\n", text)
}

func TestBriefing_NoRoute(t *testing.T) {
	m, _ := newMission(core.FlightOps)
	m.Region = ""

	text := Briefing(Describe(m, nil, nil))
	assert.Contains(t, text, "Sector: Ostara system\n")
	assert.NotContains(t, text, "Flight plan")
}

func TestDayTime(t *testing.T) {
	assert.Equal(t, "Day 1 00:00:00", DayTime(0))
	assert.Equal(t, "Day 1 00:00:00", DayTime(-time.Hour))
	assert.Equal(t, "Day 3 23:59:59", DayTime(72*time.Hour-time.Second))
}
