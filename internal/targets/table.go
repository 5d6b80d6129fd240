// Package targets picks opposing encounters for a mission from weighted
// archetype tables.
package targets

import (
	"github.com/starshatterwars/missiongen/internal/scatter"
	"github.com/starshatterwars/missiongen/pkg/core"
)

// Archetype is one kind of opposing encounter.
type Archetype int

const (
	HeavyPair Archetype = iota
	CargoEscort
	InterceptPatrol
	LightStrike
	HeavyStrike
	FreightEscort
)

var archetypeNames = []string{
	"HEAVY_PAIR", "CARGO_ESCORT", "INTERCEPT_PATROL", "LIGHT_STRIKE", "HEAVY_STRIKE", "FREIGHT_ESCORT",
}

func (a Archetype) String() string {
	if a < 0 || int(a) >= len(archetypeNames) {
		return "UNKNOWN"
	}
	return archetypeNames[a]
}

// Table maps every draw in [0, scatter.IndexRange) to an archetype.
type Table [scatter.IndexRange]Archetype

// carrierTable favours fighter traffic around a carrier group.
var carrierTable = Table{
	HeavyPair, HeavyPair, HeavyPair, HeavyPair,
	CargoEscort, CargoEscort,
	InterceptPatrol, InterceptPatrol,
	LightStrike, LightStrike,
	HeavyStrike, HeavyStrike,
	FreightEscort, FreightEscort, FreightEscort, FreightEscort,
}

var fleetTable = Table{
	HeavyPair, HeavyPair, HeavyPair, HeavyPair, HeavyPair, HeavyPair,
	CargoEscort, CargoEscort, CargoEscort,
	HeavyStrike, HeavyStrike,
	FreightEscort, FreightEscort, FreightEscort, FreightEscort, FreightEscort,
}

// TableFor returns the partition table used for a player group.
func TableFor(player *core.CombatGroup) *Table {
	if player != nil && player.Type == core.CarrierGroup {
		return &carrierTable
	}
	return &fleetTable
}

// Pick maps a draw onto the table. Out-of-range draws wrap.
func (t *Table) Pick(draw int) Archetype {
	n := len(t)
	return t[((draw%n)+n)%n]
}
