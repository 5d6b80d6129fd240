// Package roster answers the read-only questions the generator asks about
// campaign forces.
package roster

import "github.com/starshatterwars/missiongen/pkg/core"

// Campaign is the campaign state consumed by the generator. Implementations
// must not change while a mission is being generated.
type Campaign interface {
	Combatants() []core.Combatant
	Zones() []*core.CombatZone
	Groups() []*core.CombatGroup
	Group(id int) *core.CombatGroup
	FindGroup(iff int, t core.GroupType, near *core.CombatGroup) *core.CombatGroup
	FindMissionTemplate(t core.MissionType, player *core.CombatGroup) *core.TemplateRecord
	Script(name string) *core.MissionScript
	Systems() []*core.StarSystem
	System(name string) *core.StarSystem
	PlayerGroup() *core.CombatGroup
	PlayerUnit() *core.CombatUnit
}
