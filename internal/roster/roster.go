package roster

import (
	"log/slog"

	"github.com/starshatterwars/missiongen/internal/scatter"
	"github.com/starshatterwars/missiongen/pkg/core"
)

// randomUnitTries bounds the draws RandomUnit makes before falling back to
// component groups.
const randomUnitTries = 5

// Roster runs queries against a Campaign for one generation run. It keeps
// the per-group unit cursors that NextUnit consumes.
type Roster struct {
	campaign Campaign
	scatter  *scatter.Scatter
	log      *slog.Logger

	cursor     map[int]int
	warnedZone map[int]bool
}

// New creates a Roster over c.
func New(c Campaign, s *scatter.Scatter, log *slog.Logger) *Roster {
	if log == nil {
		log = slog.Default()
	}
	return &Roster{
		campaign:   c,
		scatter:    s,
		log:        log,
		cursor:     make(map[int]int),
		warnedZone: make(map[int]bool),
	}
}

// Campaign returns the underlying campaign.
func (r *Roster) Campaign() Campaign {
	return r.campaign
}

// Zone looks up a zone by name.
func (r *Roster) Zone(name string) *core.CombatZone {
	if name == "" {
		return nil
	}
	for _, z := range r.campaign.Zones() {
		if z.Name == name {
			return z
		}
	}
	return nil
}

// ZoneFor returns the group's assigned zone, falling back to its current
// zone. Squadrons without either operate in their carrier's zone.
func (r *Roster) ZoneFor(g *core.CombatGroup) *core.CombatZone {
	if g == nil {
		return nil
	}
	if z := r.Zone(g.AssignedZone); z != nil {
		return z
	}
	if z := r.Zone(g.CurrentZone); z != nil {
		return z
	}
	if c := r.FindCarrier(g); c != nil {
		if z := r.Zone(c.AssignedZone); z != nil {
			return z
		}
		return r.Zone(c.CurrentZone)
	}
	return nil
}

// HomeRegion is the group's region, or its carrier's when it has none.
func (r *Roster) HomeRegion(g *core.CombatGroup) string {
	if g == nil {
		return ""
	}
	if g.Region != "" {
		return g.Region
	}
	if c := r.FindCarrier(g); c != nil {
		return c.Region
	}
	return ""
}

// Enemy returns the first combatant allegiance that is neither neutral nor
// ownside, or 0 when there is none.
func (r *Roster) Enemy(ownside int) int {
	for _, c := range r.campaign.Combatants() {
		if c.IFF > 0 && c.IFF != ownside {
			return c.IFF
		}
	}
	return 0
}

// FindSquadron picks, at random, one group of the wanted allegiance and type
// with live units from the zone the player group operates in.
func (r *Roster) FindSquadron(player *core.CombatGroup, iff int, t core.GroupType) *core.CombatGroup {
	if player == nil {
		return nil
	}
	zone := r.ZoneFor(player)
	if zone == nil {
		if !r.warnedZone[player.ID] {
			r.warnedZone[player.ID] = true
			r.log.Warn("No zone for group", "group", player.Name, "groupId", player.ID)
		}
		return nil
	}

	force := zone.Force(iff)
	if force == nil {
		return nil
	}

	var candidates []*core.CombatGroup
	for _, id := range force.Groups {
		g := r.campaign.Group(id)
		if g != nil && g.Type == t && g.CountUnits() > 0 {
			candidates = append(candidates, g)
		}
	}
	switch len(candidates) {
	case 0:
		return nil
	case 1:
		return candidates[0]
	}
	return candidates[r.scatter.Intn(len(candidates))]
}

// FindCarrier walks up the group tree to the carrier group, station or
// starbase the group flies from. Only parents with units qualify.
func (r *Roster) FindCarrier(g *core.CombatGroup) *core.CombatGroup {
	if g == nil {
		return nil
	}
	seen := map[int]bool{g.ID: true}
	p := r.campaign.Group(g.ParentID)
	for p != nil && !seen[p.ID] {
		switch p.Type {
		case core.CarrierGroup, core.Station, core.Starbase:
			if len(p.Units) > 0 {
				return p
			}
			return nil
		}
		seen[p.ID] = true
		p = r.campaign.Group(p.ParentID)
	}
	return nil
}

// Components returns the direct child groups of g in campaign order.
func (r *Roster) Components(g *core.CombatGroup) []*core.CombatGroup {
	var out []*core.CombatGroup
	for _, c := range r.campaign.Groups() {
		if c.ParentID == g.ID && c.ID != g.ID {
			out = append(out, c)
		}
	}
	return out
}

// FirstUnit returns the first live unit of g without moving its cursor.
func (r *Roster) FirstUnit(g *core.CombatGroup) *core.CombatUnit {
	if g == nil {
		return nil
	}
	if live := g.LiveUnits(); len(live) > 0 {
		return live[0]
	}
	return nil
}

// NextUnit consumes the next live unit of g, cycling through the group's
// units and then through its components.
func (r *Roster) NextUnit(g *core.CombatGroup) *core.CombatUnit {
	if g == nil {
		return nil
	}
	if live := g.LiveUnits(); len(live) > 0 {
		i := r.cursor[g.ID]
		r.cursor[g.ID] = i + 1
		return live[i%len(live)]
	}
	if comps := r.Components(g); len(comps) > 0 {
		return r.NextUnit(comps[r.cursor[g.ID]%len(comps)])
	}
	return nil
}

// RandomUnit draws a live unit of g, avoiding capital ships from cruiser
// up through farcaster. Components are searched when no unit qualifies.
func (r *Roster) RandomUnit(g *core.CombatGroup) *core.CombatUnit {
	if g == nil {
		return nil
	}
	if live := g.LiveUnits(); len(live) > 0 {
		for i := 0; i < randomUnitTries; i++ {
			u := live[r.scatter.Intn(len(live))]
			if c := u.Class(); c < core.Cruiser || c > core.Farcaster {
				return u
			}
		}
	}
	for _, comp := range r.Components(g) {
		if u := r.RandomUnit(comp); u != nil {
			return u
		}
	}
	return nil
}
