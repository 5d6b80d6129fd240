package generator

import (
	"fmt"
	"math"

	"github.com/starshatterwars/missiongen/internal/mission"
	"github.com/starshatterwars/missiongen/internal/waypoint"
	"github.com/starshatterwars/missiongen/pkg/core"
)

const (
	freightDepart     = 200e3
	freightSpeed      = 500
	freightCruise     = 750
	wardEscortSpread  = 2.0
	wardAttackSpread  = 5.0
	attackEscortRange = 0.25
	patrolWingMin     = 20e3
	patrolWingMax     = 40e3

	assaultApproach    = 0.35
	assaultVectorDist  = 50e3
	assaultVectorVar   = 5e3
	assaultVectorSpeed = 750
	assaultDistVar     = 15e3
	assaultSpeed       = 500
)

var (
	assaultAzimuth    = 90 * math.Pi / 180
	assaultAzimuthVar = 45 * math.Pi / 180
)

// patrolPlan lays out two legs flown outward from the player, and the
// objective given for the area they cover.
type patrolPlan struct {
	action    core.Action
	out       [2]float64
	on        [2]float64
	objective string
}

var (
	standardPatrol = patrolPlan{core.ActionPatrol, [2]float64{170e3, 250e3}, [2]float64{150e3, 200e3}, "inbound enemy units"}
	fighterSweep   = patrolPlan{core.ActionSweep, [2]float64{100e3, 150e3}, [2]float64{100e3, 150e3}, "enemy fighters"}
	fighterCAP     = patrolPlan{core.ActionIntercept, [2]float64{50e3, 100e3}, [2]float64{30e3, 60e3}, "inbound enemy units"}
)

// carrierRange places a carrier group's targets closer in than a patrol.
var carrierRange = [2]float64{75e3, 150e3}
var carrierRange2 = [2]float64{50e3, 100e3}

func (b *Build) outward(from core.Vec3, r [2]float64) core.Vec3 {
	return from.Add(b.Scatter.Direction().Scale(b.Scatter.Range(r[0], r[1])))
}

// FreightWard places the freighter the player escorts: the request's
// objective group, else a friendly freight group near the player. The
// freighter heads out from the system primary and then to another zone.
func (b *Build) FreightWard() *mission.Element {
	if b.System == nil {
		return nil
	}
	freight := b.ObjectiveGroup()
	if freight == nil {
		freight = b.Campaign.FindGroup(b.Ownside, core.Freight, b.PlayerGroup)
	}
	if freight == nil || freight.CountUnits() < 1 {
		return nil
	}
	e := b.Elements.FromUnit(freight, b.Roster.NextUnit(freight))
	if e == nil {
		return nil
	}
	e.Role = core.Cargo
	e.Intel = core.IntelKnown
	if r := b.HomeRegion(); b.Elements.Navigable(r) {
		e.Region = r
	}
	b.Mission.AddElement(e)
	b.Ward = e

	var delta core.Vec3
	if rgn, star := b.System.FindRegion(e.Region), b.System.Primary(); rgn != nil && star != nil {
		delta = rgn.Location.Sub(star.Location).Normalize().Scale(freightDepart)
	}
	b.Mission.AddNavPoint(e, &mission.Instruction{
		Action:   core.ActionVector,
		Region:   e.Region,
		Location: e.Location.Add(delta),
		Speed:    freightSpeed,
	})

	b.Mission.AddNavPoint(e, &mission.Instruction{
		Action: core.ActionVector,
		Region: b.exitRegion(e.Region),
		Speed:  freightCruise,
	})
	return e
}

// exitRegion is the first region of the last zone, or of the first zone
// when the freighter already sails in the last one.
func (b *Build) exitRegion(from string) string {
	zones := b.Campaign.Zones()
	if len(zones) == 0 {
		return from
	}
	z := zones[len(zones)-1]
	if z.HasRegion(from) {
		z = zones[0]
	}
	if len(z.Regions) == 0 {
		return from
	}
	return z.Regions[0]
}

// FlightWard places a friendly package of squadron type t beside the player
// and sends it outward. Shuttle and strike escorts are built this way.
func (b *Build) FlightWard(t core.GroupType, role core.MissionType, loadout string) *mission.Element {
	if b.Player == nil {
		return nil
	}
	s := b.Roster.FindSquadron(b.PlayerGroup, b.Ownside, t)
	if s == nil {
		return nil
	}
	e := b.Elements.FighterPackage(s, 2, role)
	if e == nil {
		return nil
	}
	e.Intel = core.IntelKnown
	if b.Elements.Navigable(b.Player.Region) {
		e.Region = b.Player.Region
	}
	e.Location = b.Player.Location.Add(b.Scatter.Point().Scale(wardEscortSpread))
	if loadout != "" {
		e.Loadout = loadout
	}
	b.Mission.AddElement(e)
	b.Ward = e

	b.Mission.AddNavPoint(e, &mission.Instruction{
		Action:   core.ActionVector,
		Region:   e.Region,
		Location: b.outward(e.Location, [2]float64{100e3, 150e3}),
		Speed:    freightCruise,
	})
	return e
}

// WardObjective orders the player to escort the ward.
func (b *Build) WardObjective() {
	if b.Ward == nil || b.Player == nil {
		return
	}
	w := b.Ward
	var desc string
	switch b.Type {
	case core.EscortFreight:
		desc = "star freighter " + w.Name
	case core.EscortShuttle:
		desc = "shuttle " + w.Name
	case core.EscortStrike:
		desc = w.Name + " strike package"
	default:
		desc = w.Name
		if g := b.Campaign.Group(w.GroupID); g != nil {
			desc = g.Description()
		}
	}
	b.Mission.AddObjective(b.Player, &mission.Instruction{
		Action:      core.ActionEscort,
		Target:      w.Name,
		Description: desc,
	})
}

// patrolLeg sends the player to loc and each wing member to a point near
// it. It returns the last instruction laid.
func (b *Build) patrolLeg(action core.Action, region string, loc core.Vec3) *mission.Instruction {
	id := b.Mission.AddNavPoint(b.Player, &mission.Instruction{Action: action, Region: region, Location: loc})
	for _, e := range b.Wing() {
		id = b.Mission.AddNavPoint(e, &mission.Instruction{
			Action:   action,
			Region:   region,
			Location: b.outward(loc, [2]float64{patrolWingMin, patrolWingMax}),
		})
	}
	return b.Mission.Instruction(id)
}

// PatrolTargets flies the flight through two patrol legs and places
// targets along them. The player is ordered to clear the area.
func (b *Build) PatrolTargets(plan patrolPlan) {
	if b.Player == nil {
		return
	}
	region := b.HomeRegion()
	patrol := b.outward(b.TargetBase(b.Player.Location), plan.out)
	b.patrolLeg(plan.action, region, patrol)
	loc2 := b.outward(patrol, plan.on)
	last := b.patrolLeg(plan.action, region, loc2)

	b.FillTargets(region, patrol, loc2)

	obj := *last
	obj.Priority = 0
	obj.Description = plan.objective
	b.Mission.AddObjective(b.Player, &obj)
}

// CarrierTargets places targets within strike range of a carrier group.
func (b *Build) CarrierTargets() {
	if b.Player == nil {
		return
	}
	patrol := b.outward(b.TargetBase(b.Player.Location), carrierRange)
	loc2 := b.outward(patrol, carrierRange2)
	b.FillTargets(b.HomeRegion(), patrol, loc2)
}

// WardAttack sends an enemy attack package with fighter cover against the
// ward. Without a ward the flight patrols instead.
func (b *Build) WardAttack(fallback patrolPlan) {
	if b.Ward == nil {
		b.PatrolTargets(fallback)
		return
	}
	if b.Player == nil {
		return
	}

	s := b.Roster.FindSquadron(b.PlayerGroup, b.Enemy, core.AttackSquadron)
	s2 := b.Roster.FindSquadron(b.PlayerGroup, b.Enemy, core.FighterSquadron)
	if s != nil && s2 != nil {
		if pkg := b.Elements.FighterPackage(s, 2, core.Assault); pkg != nil {
			pkg.Intel = core.IntelKnown
			pkg.Region = b.Ward.Region
			pkg.Location = b.Ward.Location.Add(b.Scatter.Point().Scale(wardAttackSpread))
			b.Mission.AddElement(pkg)
			b.Mission.AddObjective(pkg, &mission.Instruction{Action: core.ActionAssault, Target: b.Ward.Name})
			b.placed++

			if esc := b.Elements.FighterPackage(s2, 2, core.Escort); esc != nil {
				esc.Intel = core.IntelKnown
				esc.Region = pkg.Region
				esc.Location = pkg.Location.Add(b.Scatter.Point().Scale(attackEscortRange))
				b.Mission.AddElement(esc)
				b.Mission.AddObjective(esc, &mission.Instruction{Action: core.ActionEscort, Target: pkg.Name})
			}
		}
	}

	b.Mission.AddObjective(b.Player, &mission.Instruction{
		Action:      core.ActionPatrol,
		Region:      b.Mission.Region,
		Description: "enemy patrols",
	})
}

// AssaultTargets places the request's objective group and flies the
// flight at its first element: a vector leg part way in, then an assault
// leg held at a stand-off distance set by the target's class.
func (b *Build) AssaultTargets() {
	if b.Player == nil || len(b.Flight) == 0 {
		return
	}
	assigned := b.ObjectiveGroup()
	if assigned == nil {
		return
	}
	b.Elements.Group(assigned)
	group := b.Mission.ElementsForGroup(assigned.ID)
	if len(group) == 0 {
		return
	}
	if b.Target == nil {
		b.Target = group[0]
		b.placed++
	}
	prime := b.Target
	lead, wing := b.Flight[0], b.Flight[1:]

	b.Mission.AddObjective(lead, &mission.Instruction{
		Action:      core.ActionAssault,
		Target:      prime.Name,
		Description: fmt.Sprintf("preplanned target '%s'", prime.Name),
	})

	mid := lead.Location.Add(prime.Location.Sub(lead.Location).Scale(assaultApproach))
	waypoint.Lay(b.Mission, lead, wing, waypoint.Leg{
		Action:   core.ActionVector,
		Region:   prime.Region,
		Speed:    assaultVectorSpeed,
		Base:     mid,
		Distance: assaultVectorDist,
		DistVar:  assaultVectorVar,
		Azimuth:  assaultAzimuth,
		AzVar:    assaultAzimuthVar,
	})
	waypoint.Lay(b.Mission, lead, wing, waypoint.Leg{
		Action:   core.ActionAssault,
		Region:   prime.Region,
		Speed:    assaultSpeed,
		Target:   prime.Name,
		Base:     prime.Location,
		Distance: waypoint.AssaultDistance + waypoint.StandOff(prime),
		DistVar:  assaultDistVar,
		Azimuth:  assaultAzimuth,
		AzVar:    assaultAzimuthVar,
	})
}
