// Package waypoint builds and resolves reference-relative navigation points.
package waypoint

import (
	"math"

	"github.com/starshatterwars/missiongen/internal/mission"
	"github.com/starshatterwars/missiongen/internal/scatter"
	"github.com/starshatterwars/missiongen/pkg/core"
)

// Wing members keep station on the lead's locator.
const (
	WingDistance    = 50e3
	WingDistanceVar = 5e3
	wingAzimuthVar  = math.Pi
	wingElevVar     = 0.1
)

// Leg describes one flight-plan step for a flight lead. Each wing member
// gets a matching step referenced to the lead's.
type Leg struct {
	Action   core.Action
	Region   string
	Speed    int
	Target   string
	Base     core.Vec3
	Distance float64
	DistVar  float64
	Azimuth  float64
	AzVar    float64
}

// Lay appends leg to the lead's flight plan and a chained step to every
// wing member. It returns the lead's instruction id.
func Lay(m *mission.Mission, lead *mission.Element, wing []*mission.Element, leg Leg) mission.InstructionID {
	ref := m.AddNavPoint(lead, &mission.Instruction{
		Action: leg.Action,
		Region: leg.Region,
		Speed:  leg.Speed,
		Target: leg.Target,
		RLoc: &mission.RLoc{
			Base:     leg.Base,
			Ref:      mission.NoInstruction,
			Distance: leg.Distance,
			DistVar:  leg.DistVar,
			Azimuth:  leg.Azimuth,
			AzVar:    leg.AzVar,
		},
	})
	for _, e := range wing {
		Follow(m, e, ref, leg, WingDistance, WingDistanceVar)
	}
	return ref
}

// Follow appends to e a step referenced to the instruction ref.
func Follow(m *mission.Mission, e *mission.Element, ref mission.InstructionID, leg Leg, distance, distVar float64) mission.InstructionID {
	return m.AddNavPoint(e, &mission.Instruction{
		Action: leg.Action,
		Region: leg.Region,
		Speed:  leg.Speed,
		Target: leg.Target,
		RLoc: &mission.RLoc{
			Ref:      ref,
			Distance: distance,
			DistVar:  distVar,
			AzVar:    wingAzimuthVar,
			ElVar:    wingElevVar,
		},
	})
}

// Offset returns a displacement whose length is distance perturbed by up
// to distVar, along a bearing perturbed by the azimuth and elevation
// variances.
func Offset(s *scatter.Scatter, rl *mission.RLoc) core.Vec3 {
	d := rl.Distance + s.Range(-rl.DistVar, rl.DistVar)
	az := rl.Azimuth + s.Range(-rl.AzVar, rl.AzVar)
	el := rl.Elevation + s.Range(-rl.ElVar, rl.ElVar)
	return core.Vec3{
		X: d * math.Cos(el) * math.Sin(az),
		Y: d * math.Cos(el) * math.Cos(az),
		Z: d * math.Sin(el),
	}
}

// Resolve evaluates the location of instruction id, resolving its
// reference chain first. Results are memoized on the instruction.
func Resolve(m *mission.Mission, id mission.InstructionID, s *scatter.Scatter) core.Vec3 {
	return resolve(m, id, s, map[mission.InstructionID]bool{})
}

func resolve(m *mission.Mission, id mission.InstructionID, s *scatter.Scatter, visiting map[mission.InstructionID]bool) core.Vec3 {
	ins := m.Instruction(id)
	if ins == nil {
		return core.Vec3{}
	}
	if ins.RLoc == nil || ins.Resolved {
		return ins.Location
	}
	if visiting[id] {
		// a cycle has no meaningful origin; anchor it at the base point
		return ins.RLoc.Base
	}
	visiting[id] = true

	base := ins.RLoc.Base
	if ins.RLoc.Ref != mission.NoInstruction {
		base = resolve(m, ins.RLoc.Ref, s, visiting)
	}
	ins.Location = base.Add(Offset(s, ins.RLoc))
	ins.Resolved = true
	return ins.Location
}

// ResolveAll evaluates every relative instruction in arena order.
func ResolveAll(m *mission.Mission, s *scatter.Scatter) {
	for _, ins := range m.Instructions {
		if ins.RLoc != nil && !ins.Resolved {
			Resolve(m, ins.ID, s)
		}
	}
}
