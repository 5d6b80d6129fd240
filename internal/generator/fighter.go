package generator

import (
	"github.com/starshatterwars/missiongen/internal/mission"
	"github.com/starshatterwars/missiongen/pkg/core"
)

const (
	fighterFlight       = 4
	strikeEscortLoadout = "Ship Strike"
)

// Fighter generates missions for a fighter, attack or intercept squadron.
// The player flies a package drawn from the squadron.
type Fighter struct{}

func (Fighter) Name() string { return "fighter" }

// SelectType keeps the requested type when a squadron can fly it and
// patrols otherwise.
func (Fighter) SelectType(b *Build) core.MissionType {
	switch t := b.Request.Type; t {
	case core.Patrol, core.Sweep, core.Intercept,
		core.EscortFreight, core.EscortShuttle, core.EscortStrike,
		core.Strike, core.Assault:
		return t
	}
	return core.Patrol
}

// CreatePlayer launches a flight from the player squadron. Groups that do
// not fly as squadrons are resolved like starships.
//
// The flight names its squadron by group only, so a designated player unit
// is not carried: the player element has UnitID 0 and b.PlayerUnit is
// ignored for squadrons.
func (Fighter) CreatePlayer(b *Build) *mission.Element {
	if !b.PlayerGroup.Type.IsSquadron() {
		return b.ResolvePlayer()
	}
	e := b.Elements.FighterPackage(b.PlayerGroup, fighterFlight, b.Type)
	if e == nil {
		b.Log.Warn("Could not find player element", "group", b.PlayerGroup.Name, "groupId", b.PlayerGroup.ID)
		return nil
	}
	e.Intel = core.IntelKnown
	if r := b.HomeRegion(); b.Elements.Navigable(r) {
		e.Region = r
	}
	b.Mission.AddElement(e)
	b.Mission.SetPlayer(e)
	b.Flight = []*mission.Element{e}
	b.Player = e
	return e
}

func (Fighter) CreateWards(b *Build) {
	switch b.Type {
	case core.EscortFreight:
		b.FreightWard()
	case core.EscortShuttle:
		b.FlightWard(core.LCASquadron, core.Cargo, "")
	case core.EscortStrike:
		b.FlightWard(core.AttackSquadron, core.Strike, strikeEscortLoadout)
	}
}

func (Fighter) CreateTargets(b *Build) {
	switch b.Type {
	case core.Sweep:
		b.PatrolTargets(fighterSweep)
	case core.Intercept:
		b.PatrolTargets(fighterCAP)
	case core.EscortFreight, core.EscortShuttle, core.EscortStrike:
		b.WardAttack(standardPatrol)
	case core.Strike, core.Assault:
		b.AssaultTargets()
	default:
		b.PatrolTargets(standardPatrol)
	}
}
