// Package element converts campaign groups and units into mission elements.
package element

import (
	"log/slog"
	"math"
	"strings"

	"github.com/starshatterwars/missiongen/internal/mission"
	"github.com/starshatterwars/missiongen/internal/roster"
	"github.com/starshatterwars/missiongen/internal/scatter"
	"github.com/starshatterwars/missiongen/pkg/core"
)

const (
	// DefaultLoadout is carried by every fighter package.
	DefaultLoadout = "ACM Medium Range"

	mobileSpread     = 10e3
	mobileSpreadStep = 9e3
	staticSpread     = 2e3
	staticSpreadStep = 2e3

	maintThreshold = 4
	carrierSpread  = 0.3
)

// Builder places elements into one mission.
type Builder struct {
	mission   *mission.Mission
	system    *core.StarSystem
	roster    *roster.Roster
	scatter   *scatter.Scatter
	nextID    func() int
	callsigns *Callsigns
	log       *slog.Logger
}

// NewBuilder creates a builder for m, whose elements are placed in system.
// nextID supplies element ids.
func NewBuilder(m *mission.Mission, system *core.StarSystem, r *roster.Roster, s *scatter.Scatter, nextID func() int, log *slog.Logger) *Builder {
	if log == nil {
		log = slog.Default()
	}
	return &Builder{
		mission:   m,
		system:    system,
		roster:    r,
		scatter:   s,
		nextID:    nextID,
		callsigns: NewCallsigns(),
		log:       log,
	}
}

// Mission returns the mission being built.
func (b *Builder) Mission() *mission.Mission {
	return b.mission
}

func unitRegion(g *core.CombatGroup, u *core.CombatUnit) string {
	if u.Region != "" {
		return u.Region
	}
	return g.Region
}

// Navigable reports whether region exists in the mission's system and is
// not terrain.
func (b *Builder) Navigable(region string) bool {
	if b.system == nil || region == "" {
		return false
	}
	rgn := b.system.FindRegion(region)
	return rgn != nil && rgn.Navigable()
}

// craftRegion is the region of a flight drawn from squadron: its own, else
// the region its carrier was placed in, else the mission region. The first
// navigable one wins; "" means none is.
func (b *Builder) craftRegion(squadron *core.CombatGroup, fighter, carrier *core.CombatUnit) string {
	candidates := []string{unitRegion(squadron, fighter)}
	if carrier != nil {
		if ce := b.mission.ElementForUnit(carrier.ID); ce != nil {
			candidates = append(candidates, ce.Region)
		}
	}
	candidates = append(candidates, b.mission.Region)
	for _, r := range candidates {
		if b.Navigable(r) {
			return r
		}
	}
	return ""
}

// FromUnit builds the element for one unit of g, or returns nil when the
// unit cannot be placed: reserve group, no live craft, no star system,
// a missing or terrain region, or a unit that is already an element.
// The element is not added to the mission.
func (b *Builder) FromUnit(g *core.CombatGroup, u *core.CombatUnit) *mission.Element {
	if g == nil || g.Reserve || u == nil || u.LiveCount() < 1 || b.system == nil {
		return nil
	}
	region := unitRegion(g, u)
	rgn := b.system.FindRegion(region)
	if rgn == nil || !rgn.Navigable() {
		return nil
	}
	if b.mission.ElementForUnit(u.ID) != nil {
		return nil
	}

	e := &mission.Element{
		ID:      b.nextID(),
		Name:    u.Name,
		Design:  u.DesignName(),
		Class:   u.Class(),
		Count:   u.LiveCount(),
		IFF:     g.IFF,
		Intel:   g.Intel,
		Region:  region,
		Heading: u.Heading,
		Role:    core.Other,
		GroupID: g.ID,
		UnitID:  u.ID,
	}
	if e.Name == "" {
		e.Name = e.Design
	}

	e.Location = b.placement(g, u)
	b.assignRole(g, u, e)
	return e
}

func (b *Builder) placement(g *core.CombatGroup, u *core.CombatUnit) core.Vec3 {
	index := -1
	for i, gu := range g.Units {
		if gu == u {
			index = i
			break
		}
	}

	base := u.Location
	exact := u.IsStatic()
	if base.Length() < 1 {
		base = g.Location
		exact = false
	}

	if index == 0 || (index > 0 && exact) {
		return base
	}

	idx := float64(max(index, 0))
	dir := b.scatter.Direction()
	if u.IsStatic() {
		return base.Add(dir.Scale(staticSpread + staticSpreadStep*idx))
	}
	// mobile units fan out to either side of the group's line
	for math.Abs(dir.Y) > math.Abs(dir.X) {
		dir = b.scatter.Direction()
	}
	return base.Add(dir.Scale(mobileSpread + mobileSpreadStep*idx))
}

func (b *Builder) assignRole(g *core.CombatGroup, u *core.CombatUnit, e *mission.Element) {
	class := u.Class()
	switch {
	case g.Type == core.CarrierGroup:
		if class == core.Carrier {
			e.Role = core.FlightOps
		} else {
			e.Role = core.Escort
		}
	case class == core.StationShip || class == core.Farcaster:
		e.Role = core.Other
		if class == core.Farcaster {
			if dash := strings.LastIndex(u.Name, "-"); dash >= 0 {
				src, dst := u.Name[:dash], u.Name[dash+1:]
				b.mission.AddObjective(e, &mission.Instruction{
					Action: core.ActionVector,
					Target: dst + "-" + src,
				})
			}
		}
	case class&core.Starships != 0:
		e.Role = core.Fleet
	}
}

// Group builds and adds an element for every placeable unit of g. The first
// placed unit commands the rest; carrier escorts are ordered to escort it.
func (b *Builder) Group(g *core.CombatGroup) []*mission.Element {
	if g == nil {
		return nil
	}
	var (
		out  []*mission.Element
		cmdr *core.CombatUnit
	)
	for _, u := range g.Units {
		e := b.FromUnit(g, u)
		if e == nil {
			continue
		}
		if cmdr == nil {
			cmdr = u
		} else {
			e.Commander = cmdr.Name
			if g.Type == core.CarrierGroup && e.Role == core.Escort {
				b.mission.AddObjective(e, &mission.Instruction{
					Action:      core.ActionEscort,
					Target:      cmdr.Name,
					Description: g.Description(),
				})
			}
		}
		b.mission.AddElement(e)
		out = append(out, e)
	}
	return out
}

// Carrier returns the carrier unit g flies from, provided the carrier is
// already an element of the mission.
func (b *Builder) Carrier(g *core.CombatGroup) *core.CombatUnit {
	cg := b.roster.FindCarrier(g)
	if cg == nil || len(cg.Units) == 0 {
		return nil
	}
	carrier := cg.Units[0]
	if b.mission.ElementForUnit(carrier.ID) == nil {
		return nil
	}
	return carrier
}

// Squadron builds and adds the single element representing a whole
// squadron parked on its carrier. Squadrons without a placed carrier are
// skipped.
func (b *Builder) Squadron(g *core.CombatGroup) *mission.Element {
	if g == nil || g.Reserve || len(g.Units) == 0 {
		return nil
	}
	fighter := g.Units[0]
	carrier := b.Carrier(g)
	if carrier == nil {
		return nil
	}

	region := b.craftRegion(g, fighter, carrier)
	if region == "" {
		b.log.Warn("No navigable region for squadron", "squadron", g.Name, "region", unitRegion(g, fighter))
		return nil
	}

	live := fighter.LiveCount()
	maint := 0
	if live > maintThreshold {
		maint = live / 2
	}

	e := &mission.Element{
		ID:         b.nextID(),
		Name:       g.Name,
		Design:     fighter.DesignName(),
		Class:      fighter.Class(),
		Count:      fighter.Count,
		DeadCount:  fighter.DeadCount,
		MaintCount: maint,
		IFF:        g.IFF,
		Intel:      g.Intel,
		Region:     region,
		Role:       core.Other,
		Carrier:    carrier.Name,
		Commander:  carrier.Name,
		Location:   carrier.Location.Add(b.scatter.Point()),
		GroupID:    g.ID,
		UnitID:     fighter.ID,
	}
	if e.Name == "" {
		e.Name = fighter.Name
	}
	b.mission.AddElement(e)
	return e
}

// FighterPackage builds a flight of up to count craft drawn from squadron.
// Packages refer to their squadron by group only, so the squadron element
// keeps sole claim to the unit. The element is not added to the mission.
func (b *Builder) FighterPackage(squadron *core.CombatGroup, count int, role core.MissionType) *mission.Element {
	if squadron == nil || squadron.Reserve || len(squadron.Units) == 0 {
		return nil
	}
	fighter := squadron.Units[0]
	carrier := b.Carrier(squadron)

	avail := fighter.LiveCount()
	if avail < 1 {
		b.log.Warn("Insufficient fighters in squadron",
			"squadron", squadron.Name, "required", count, "available", avail)
		return nil
	}
	region := b.craftRegion(squadron, fighter, carrier)
	if region == "" {
		b.log.Warn("No navigable region for squadron", "squadron", squadron.Name, "region", unitRegion(squadron, fighter))
		return nil
	}

	e := &mission.Element{
		ID:       b.nextID(),
		Name:     b.callsigns.Next(squadron.IFF),
		Design:   fighter.DesignName(),
		Class:    fighter.Class(),
		Count:    min(count, avail),
		IFF:      squadron.IFF,
		Intel:    squadron.Intel,
		Region:   region,
		Heading:  fighter.Heading,
		Squadron: fighter.Name,
		Role:     role,
		Loadout:  DefaultLoadout,
		GroupID:  squadron.ID,
	}
	if carrier != nil {
		e.Commander = carrier.Name
		e.Heading = carrier.Heading
		e.Location = carrier.Location.Add(b.scatter.Point().Scale(carrierSpread))
	} else {
		e.Location = fighter.Location.Add(b.scatter.Point())
	}
	return e
}
