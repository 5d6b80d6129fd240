// pkg/core/campaign.go
package core

import "fmt"

// Combatant is one side of the campaign.
type Combatant struct {
	Name string `json:"name" yaml:"name"`
	IFF  int    `json:"iff" yaml:"iff"`
}

// Design is the ship design a unit is built from.
type Design struct {
	Name  string `json:"name" yaml:"name"`
	Abrv  string `json:"abrv,omitempty" yaml:"abrv,omitempty"`
	Class Class  `json:"class" yaml:"class"`
}

// CombatUnit is one deployable unit within a group.
type CombatUnit struct {
	ID        int     `json:"id" yaml:"id"`
	Name      string  `json:"name" yaml:"name"`
	Design    *Design `json:"design,omitempty" yaml:"design,omitempty"`
	Count     int     `json:"count" yaml:"count"`
	DeadCount int     `json:"deadCount,omitempty" yaml:"deadCount,omitempty"`
	Region    string  `json:"region,omitempty" yaml:"region,omitempty"`
	Location  Vec3    `json:"location" yaml:"location"`
	Heading   float64 `json:"heading,omitempty" yaml:"heading,omitempty"`
}

// LiveCount is the number of craft still available.
func (u *CombatUnit) LiveCount() int {
	if n := u.Count - u.DeadCount; n > 0 {
		return n
	}
	return 0
}

// Class returns the design class, or 0 when the design is unknown.
func (u *CombatUnit) Class() Class {
	if u.Design == nil {
		return 0
	}
	return u.Design.Class
}

// IsStatic reports whether the unit is an installation rather than a ship.
func (u *CombatUnit) IsStatic() bool {
	return u.Design != nil && u.Design.Class >= StationShip
}

// DesignName returns the design name or an empty string.
func (u *CombatUnit) DesignName() string {
	if u.Design == nil {
		return ""
	}
	return u.Design.Name
}

// CombatGroup is a typed collection of units belonging to one side.
// Groups form a tree through ParentID.
type CombatGroup struct {
	ID           int           `json:"id" yaml:"id"`
	ParentID     int           `json:"parent,omitempty" yaml:"parent,omitempty"`
	Type         GroupType     `json:"type" yaml:"type"`
	IFF          int           `json:"iff" yaml:"iff"`
	Name         string        `json:"name,omitempty" yaml:"name,omitempty"`
	Reserve      bool          `json:"reserve,omitempty" yaml:"reserve,omitempty"`
	Intel        Intel         `json:"intel" yaml:"intel"`
	Region       string        `json:"region,omitempty" yaml:"region,omitempty"`
	Location     Vec3          `json:"location" yaml:"location"`
	AssignedZone string        `json:"assignedZone,omitempty" yaml:"assignedZone,omitempty"`
	CurrentZone  string        `json:"currentZone,omitempty" yaml:"currentZone,omitempty"`
	Units        []*CombatUnit `json:"units,omitempty" yaml:"units,omitempty"`
}

// LiveUnits returns the units with at least one live craft.
func (g *CombatGroup) LiveUnits() []*CombatUnit {
	var live []*CombatUnit
	for _, u := range g.Units {
		if u.LiveCount() > 0 {
			live = append(live, u)
		}
	}
	return live
}

// CountUnits sums the live counts of all units.
func (g *CombatGroup) CountUnits() int {
	n := 0
	for _, u := range g.Units {
		n += u.LiveCount()
	}
	return n
}

// Description is the ordinal and type of the group, e.g. `3rd Fleet "Gold"`.
func (g *CombatGroup) Description() string {
	nameDesc := ""
	if g.Name != "" {
		nameDesc = fmt.Sprintf(" %q", g.Name)
	}
	switch g.Type {
	case Force:
		return g.Name
	case Station:
		return fmt.Sprintf("%s %s", g.Type.DisplayName(), g.Name)
	case Starbase:
		return fmt.Sprintf("%s %d%s", g.Type.DisplayName(), g.ID, nameDesc)
	}
	return fmt.Sprintf("%s %s%s", ordinal(g.ID), g.Type.DisplayName(), nameDesc)
}

func ordinal(id int) string {
	if (id/10)%10 == 1 {
		return fmt.Sprintf("%dth", id)
	}
	switch id % 10 {
	case 1:
		return fmt.Sprintf("%dst", id)
	case 2:
		return fmt.Sprintf("%dnd", id)
	case 3:
		return fmt.Sprintf("%drd", id)
	}
	return fmt.Sprintf("%dth", id)
}

// ZoneForce is the roster of one side within a zone, by group id.
type ZoneForce struct {
	IFF    int   `json:"iff" yaml:"iff"`
	Groups []int `json:"groups" yaml:"groups"`
}

// CombatZone is a campaign-level partition of space.
type CombatZone struct {
	Name    string       `json:"name" yaml:"name"`
	System  string       `json:"system" yaml:"system"`
	Regions []string     `json:"regions" yaml:"regions"`
	Forces  []*ZoneForce `json:"forces,omitempty" yaml:"forces,omitempty"`
}

// HasRegion reports whether the named region belongs to the zone.
func (z *CombatZone) HasRegion(name string) bool {
	if name == "" {
		return false
	}
	for _, r := range z.Regions {
		if r == name {
			return true
		}
	}
	return false
}

// Force returns the force for an allegiance, if the zone has one.
func (z *CombatZone) Force(iff int) *ZoneForce {
	for _, f := range z.Forces {
		if f.IFF == iff {
			return f
		}
	}
	return nil
}

// OrbitalRegion is a named region of a star system.
type OrbitalRegion struct {
	Name     string     `json:"name" yaml:"name"`
	Type     RegionType `json:"type" yaml:"type"`
	Location Vec3       `json:"location" yaml:"location"`
}

// Navigable reports whether ships can be placed in the region.
func (r *OrbitalRegion) Navigable() bool {
	return r.Type != RegionTerrain
}

// StarSystem is a named system and its regions.
type StarSystem struct {
	Name    string           `json:"name" yaml:"name"`
	Regions []*OrbitalRegion `json:"regions" yaml:"regions"`
}

// FindRegion looks up a region by name.
func (s *StarSystem) FindRegion(name string) *OrbitalRegion {
	for _, r := range s.Regions {
		if r.Name == name {
			return r
		}
	}
	return nil
}

// Primary returns the system's star region, or its first region.
func (s *StarSystem) Primary() *OrbitalRegion {
	for _, r := range s.Regions {
		if r.Type == RegionStar {
			return r
		}
	}
	if len(s.Regions) > 0 {
		return s.Regions[0]
	}
	return nil
}
