package generator

import (
	"log/slog"

	"github.com/starshatterwars/missiongen/internal/element"
	"github.com/starshatterwars/missiongen/internal/mission"
	"github.com/starshatterwars/missiongen/internal/roster"
	"github.com/starshatterwars/missiongen/internal/scatter"
	"github.com/starshatterwars/missiongen/internal/targets"
	"github.com/starshatterwars/missiongen/pkg/core"
)

// Build is the state of one generation run. Role strategies read it and
// add to the mission through it.
type Build struct {
	Request  *core.MissionRequest
	Campaign roster.Campaign
	Roster   *roster.Roster
	Scatter  *scatter.Scatter
	Log      *slog.Logger

	Type        core.MissionType
	PlayerGroup *core.CombatGroup
	PlayerUnit  *core.CombatUnit
	Ownside     int
	Enemy       int

	Mission  *mission.Mission
	System   *core.StarSystem
	Elements *element.Builder

	// Player is the player-controlled element. Flight holds every element
	// of the player group in mission order, the flight lead first.
	Player *mission.Element
	Flight []*mission.Element
	Ward   *mission.Element
	Target *mission.Element

	maxTries     int
	placed       int
	nextID       func() int
	warnedRegion bool
}

// reset points the build at a fresh mission, dropping everything placed
// into the previous one.
func (b *Build) reset(m *mission.Mission) {
	b.Mission = m
	b.System = nil
	b.Elements = nil
	b.Player = nil
	b.Flight = nil
	b.Ward = nil
	b.Target = nil
	b.placed = 0
}

// ObjectiveGroup is the campaign group named by the request's objective.
func (b *Build) ObjectiveGroup() *core.CombatGroup {
	if b.Request.ObjectiveGroup == 0 {
		return nil
	}
	return b.Campaign.Group(b.Request.ObjectiveGroup)
}

// HomeRegion is the region the player group operates from.
func (b *Build) HomeRegion() string {
	if r := b.Roster.HomeRegion(b.PlayerGroup); r != "" {
		return r
	}
	return b.Mission.Region
}

// TargetBase is the point targets are laid out from: the request's fixed
// location when set, otherwise def.
func (b *Build) TargetBase(def core.Vec3) core.Vec3 {
	if b.Request.Location != nil {
		return *b.Request.Location
	}
	return def
}

// Wing returns the flight members other than the player.
func (b *Build) Wing() []*mission.Element {
	var out []*mission.Element
	for _, e := range b.Flight {
		if e != b.Player {
			out = append(out, e)
		}
	}
	return out
}

// FillTargets places opposing target groups around two locations.
func (b *Build) FillTargets(region string, near, far core.Vec3) int {
	p := targets.NewPicker(b.Elements, b.Roster, b.Scatter, b.PlayerGroup, b.Enemy, b.Log)
	n := p.Fill(region, near, far, b.maxTries)
	b.placed += n
	return n
}

// ResolvePlayer collects the player group's elements and marks one as the
// player: the element of the designated unit, else the first. Groups with
// no standing elements are placed first. Fleet-role members take the
// mission type as their role.
func (b *Build) ResolvePlayer() *mission.Element {
	pick := func() *mission.Element {
		b.Flight = b.Mission.ElementsForGroup(b.PlayerGroup.ID)
		var lead *mission.Element
		for _, e := range b.Flight {
			if b.PlayerUnit != nil {
				if e.UnitID == b.PlayerUnit.ID {
					lead = e
				}
			} else if lead == nil {
				lead = e
			}
		}
		return lead
	}

	lead := pick()
	if len(b.Flight) == 0 && b.Elements != nil {
		b.Elements.Group(b.PlayerGroup)
		lead = pick()
	}
	if lead == nil {
		b.Log.Warn("Could not find player element", "group", b.PlayerGroup.Name, "groupId", b.PlayerGroup.ID)
		return nil
	}

	for _, e := range b.Flight {
		if e.Role == core.Fleet {
			e.Role = b.Type
		}
	}
	b.Mission.SetPlayer(lead)
	b.Player = lead
	return lead
}
