package targets

import (
	"log/slog"

	"github.com/starshatterwars/missiongen/internal/element"
	"github.com/starshatterwars/missiongen/internal/mission"
	"github.com/starshatterwars/missiongen/internal/roster"
	"github.com/starshatterwars/missiongen/internal/scatter"
	"github.com/starshatterwars/missiongen/pkg/core"
)

const (
	// DefaultTries bounds the attempts made by Fill.
	DefaultTries = 8
	baseQuota    = 2

	shipStrikeLoadout    = "Ship Strike"
	hvyShipStrikeLoadout = "Hvy Ship Strike"
)

// Picker adds opposing encounters to the mission held by a builder.
type Picker struct {
	builder *element.Builder
	roster  *roster.Roster
	scatter *scatter.Scatter
	player  *core.CombatGroup
	enemy   int
	table   *Table
	log     *slog.Logger
}

// NewPicker creates a picker drawing enemy squadrons from the zone of the
// player group.
func NewPicker(b *element.Builder, r *roster.Roster, s *scatter.Scatter, player *core.CombatGroup, enemy int, log *slog.Logger) *Picker {
	if log == nil {
		log = slog.Default()
	}
	return &Picker{
		builder: b,
		roster:  r,
		scatter: s,
		player:  player,
		enemy:   enemy,
		table:   TableFor(player),
		log:     log,
	}
}

// Fill adds target groups around two candidate locations until a quota of
// two (or three, at even odds) groups is met or tries attempts have been
// made. Every attempt consumes a try. It returns the number of groups added.
func (p *Picker) Fill(region string, near, far core.Vec3, tries int) int {
	if tries <= 0 {
		tries = DefaultTries
	}
	quota := baseQuota
	if p.scatter.Chance() {
		quota++
	}

	groups := 0
	for quota > 0 && tries > 0 {
		loc := far
		if p.scatter.Chance() {
			loc = near
		}
		tries--
		if p.PickRandomTarget(region, loc) > 0 {
			quota--
			groups++
		}
	}
	p.log.Debug("Targets placed", "region", region, "groups", groups, "triesLeft", tries)
	return groups
}

// PickRandomTarget draws one archetype and adds its elements near base. It
// returns the number of elements added: 0, 1 or 2.
func (p *Picker) PickRandomTarget(region string, base core.Vec3) int {
	if p.enemy == 0 {
		return 0
	}
	switch p.table.Pick(p.scatter.Index()) {
	case HeavyPair:
		return p.heavyPair(region, base)
	case CargoEscort:
		return p.escorted(region, base, p.cargoPackage, core.FighterSquadron)
	case InterceptPatrol:
		return p.interceptPatrol(region, base)
	case LightStrike:
		return p.strike(region, base, core.FighterSquadron, 3, shipStrikeLoadout, 1)
	case HeavyStrike:
		return p.strike(region, base, core.AttackSquadron, 2, hvyShipStrikeLoadout, 1.3)
	default:
		return p.escorted(region, base, p.freighter, core.InterceptSquadron)
	}
}

func (p *Picker) squadron(t core.GroupType) *core.CombatGroup {
	return p.roster.FindSquadron(p.player, p.enemy, t)
}

func (p *Picker) place(e *mission.Element, region string, loc core.Vec3) {
	e.Intel = core.IntelKnown
	if p.builder.Navigable(region) {
		e.Region = region
	}
	e.Location = loc
}

func (p *Picker) heavyPair(region string, base core.Vec3) int {
	s := p.squadron(core.DestroyerSquadron)
	if s == nil {
		return 0
	}
	m := p.builder.Mission()
	added := 0
	for i := 0; i < 2; i++ {
		e := p.builder.FromUnit(s, p.roster.RandomUnit(s))
		if e == nil {
			continue
		}
		p.place(e, region, base.Add(p.scatter.Point().Scale(1.5)))
		e.Role = core.Fleet
		m.AddElement(e)
		added++
	}
	return added
}

func (p *Picker) cargoPackage(region string, base core.Vec3) *mission.Element {
	s := p.squadron(core.LCASquadron)
	if s == nil {
		return nil
	}
	e := p.builder.FighterPackage(s, 2, core.Cargo)
	if e == nil {
		return nil
	}
	p.place(e, region, base.Add(p.scatter.Point().Scale(2)))
	return e
}

func (p *Picker) freighter(region string, base core.Vec3) *mission.Element {
	s := p.squadron(core.Freight)
	if s == nil {
		return nil
	}
	e := p.builder.FromUnit(s, p.roster.RandomUnit(s))
	if e == nil {
		return nil
	}
	p.place(e, region, base.Add(p.scatter.Point().Scale(2)))
	e.Role = core.Cargo
	return e
}

// escorted adds a protected element and a two-ship escort. Nothing is added
// unless both come together.
func (p *Picker) escorted(region string, base core.Vec3, ward func(string, core.Vec3) *mission.Element, escortType core.GroupType) int {
	es := p.squadron(escortType)
	if es == nil {
		return 0
	}
	w := ward(region, base)
	if w == nil {
		return 0
	}
	escort := p.builder.FighterPackage(es, 2, core.Escort)
	if escort == nil {
		return 0
	}
	p.place(escort, region, w.Location.Add(p.scatter.Point().Scale(0.5)))

	m := p.builder.Mission()
	m.AddElement(w)
	m.AddElement(escort)
	m.AddObjective(escort, &mission.Instruction{Action: core.ActionEscort, Target: w.Name})
	return 2
}

func (p *Picker) interceptPatrol(region string, base core.Vec3) int {
	s := p.squadron(core.InterceptSquadron)
	if s == nil {
		return 0
	}
	e := p.builder.FighterPackage(s, 4, core.Patrol)
	if e == nil {
		return 0
	}
	p.place(e, region, base)
	e.Intel = core.IntelSecret
	p.builder.Mission().AddElement(e)
	return 1
}

// strike adds an attack package with a nav point on the player's element.
func (p *Picker) strike(region string, base core.Vec3, t core.GroupType, count int, loadout string, spread float64) int {
	s := p.squadron(t)
	if s == nil {
		return 0
	}
	e := p.builder.FighterPackage(s, count, core.Assault)
	if e == nil {
		return 0
	}
	p.place(e, region, base.Add(p.scatter.Point().Scale(spread)))
	e.Loadout = loadout

	m := p.builder.Mission()
	m.AddElement(e)
	if player := m.Player(); player != nil {
		m.AddNavPoint(e, &mission.Instruction{
			Action:   core.ActionAssault,
			Region:   player.Region,
			Location: player.Location.Add(p.scatter.Point()),
			Target:   player.Name,
		})
	}
	return 1
}
