package generator

import (
	"github.com/starshatterwars/missiongen/internal/mission"
	"github.com/starshatterwars/missiongen/pkg/core"
)

// Starship generates missions for a capital ship group: destroyer
// squadrons, battle groups and carrier groups.
type Starship struct{}

func (Starship) Name() string { return "starship" }

// SelectType takes the requested type. A player commanding a carrier flies
// flight operations.
func (Starship) SelectType(b *Build) core.MissionType {
	if b.PlayerUnit != nil && b.PlayerUnit.Class() == core.Carrier {
		return core.FlightOps
	}
	return b.Request.Type
}

func (Starship) CreatePlayer(b *Build) *mission.Element {
	return b.ResolvePlayer()
}

func (Starship) CreateWards(b *Build) {
	if b.Type == core.EscortFreight {
		b.FreightWard()
	}
}

func (Starship) CreateTargets(b *Build) {
	if b.PlayerGroup.Type == core.CarrierGroup {
		b.CarrierTargets()
		return
	}
	switch b.Type {
	case core.Assault, core.Strike:
		b.AssaultTargets()
	case core.EscortFreight:
		b.WardAttack(standardPatrol)
	default:
		b.PatrolTargets(standardPatrol)
	}
}
