package waypoint

import (
	"github.com/starshatterwars/missiongen/internal/mission"
	"github.com/starshatterwars/missiongen/pkg/core"
)

const (
	// AssaultDistance is the base stand-off from an assault target.
	AssaultDistance = 100e3

	noDesignStandOff = 10e3
	defaultStandOff  = 20e3
)

var standOff = map[core.Class]float64{
	core.Frigate:     25e3,
	core.Destroyer:   30e3,
	core.Cruiser:     50e3,
	core.Battleship:  70e3,
	core.Dreadnaught: 80e3,
	core.Swacs:       30e3,
	core.Carrier:     90e3,
}

// StandOff returns the extra assault distance kept from a target of the
// element's class. Heavier classes are engaged from farther out.
func StandOff(target *mission.Element) float64 {
	if target == nil || target.Design == "" {
		return noDesignStandOff
	}
	if d, ok := standOff[target.Class]; ok {
		return d
	}
	return defaultStandOff
}
