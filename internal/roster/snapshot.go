package roster

import (
	"fmt"
	"os"

	"github.com/expr-lang/expr/vm"
	"github.com/starshatterwars/missiongen/pkg/core"
	"gopkg.in/yaml.v3"
)

// PlayerAssignment designates the player's group and, optionally, unit.
type PlayerAssignment struct {
	Group int `yaml:"group"`
	Unit  int `yaml:"unit,omitempty"`
}

// Snapshot is an in-memory Campaign, usually read from a YAML file.
type Snapshot struct {
	Name          string                 `yaml:"name"`
	CombatantList []core.Combatant       `yaml:"combatants"`
	ZoneList      []*core.CombatZone     `yaml:"zones"`
	GroupList     []*core.CombatGroup    `yaml:"groups"`
	SystemList    []*core.StarSystem     `yaml:"systems"`
	Templates     []*core.TemplateRecord `yaml:"templates,omitempty"`
	Scripts       []*core.MissionScript  `yaml:"scripts,omitempty"`
	Player        PlayerAssignment       `yaml:"player"`

	groups     map[int]*core.CombatGroup
	units      map[int]*core.CombatUnit
	conditions map[*core.TemplateRecord]*vm.Program
}

var _ Campaign = (*Snapshot)(nil)

// LoadSnapshot reads and indexes a YAML campaign snapshot.
func LoadSnapshot(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read snapshot: %w", err)
	}
	return ParseSnapshot(data)
}

// ParseSnapshot decodes and indexes a YAML campaign snapshot.
func ParseSnapshot(data []byte) (*Snapshot, error) {
	s := &Snapshot{}
	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	if err := s.Index(); err != nil {
		return nil, err
	}
	return s, nil
}

// Index builds the lookup tables and compiles template conditions. It must
// be called after the lists are modified.
func (s *Snapshot) Index() error {
	s.groups = make(map[int]*core.CombatGroup, len(s.GroupList))
	s.units = make(map[int]*core.CombatUnit)
	for _, g := range s.GroupList {
		if _, dup := s.groups[g.ID]; dup {
			return fmt.Errorf("duplicate group id %d", g.ID)
		}
		s.groups[g.ID] = g
		for _, u := range g.Units {
			if _, dup := s.units[u.ID]; dup {
				return fmt.Errorf("duplicate unit id %d", u.ID)
			}
			s.units[u.ID] = u
		}
	}

	s.conditions = make(map[*core.TemplateRecord]*vm.Program)
	for _, t := range s.Templates {
		if t.Condition == "" {
			continue
		}
		prog, err := compileCondition(t.Condition)
		if err != nil {
			return fmt.Errorf("template %q: %w", t.Name, err)
		}
		s.conditions[t] = prog
	}
	return nil
}

func (s *Snapshot) Combatants() []core.Combatant { return s.CombatantList }

func (s *Snapshot) Zones() []*core.CombatZone { return s.ZoneList }

func (s *Snapshot) Groups() []*core.CombatGroup { return s.GroupList }

func (s *Snapshot) Systems() []*core.StarSystem { return s.SystemList }

func (s *Snapshot) Group(id int) *core.CombatGroup {
	if id == 0 {
		return nil
	}
	return s.groups[id]
}

func (s *Snapshot) System(name string) *core.StarSystem {
	for _, sys := range s.SystemList {
		if sys.Name == name {
			return sys
		}
	}
	return nil
}

func (s *Snapshot) PlayerGroup() *core.CombatGroup { return s.Group(s.Player.Group) }

func (s *Snapshot) PlayerUnit() *core.CombatUnit {
	if s.Player.Unit == 0 {
		return nil
	}
	return s.units[s.Player.Unit]
}

// FindGroup returns a group of the given allegiance and type with live
// units, preferring one that shares a zone with near.
func (s *Snapshot) FindGroup(iff int, t core.GroupType, near *core.CombatGroup) *core.CombatGroup {
	var first *core.CombatGroup
	for _, g := range s.GroupList {
		if g.IFF != iff || g.Type != t || g.CountUnits() < 1 {
			continue
		}
		if near == nil || sharesZone(g, near) {
			return g
		}
		if first == nil {
			first = g
		}
	}
	return first
}

func sharesZone(a, b *core.CombatGroup) bool {
	za := []string{a.AssignedZone, a.CurrentZone}
	for _, z := range []string{b.AssignedZone, b.CurrentZone} {
		if z != "" && (z == za[0] || z == za[1]) {
			return true
		}
	}
	return false
}

// FindMissionTemplate returns the first template for t whose condition
// holds for the player group.
func (s *Snapshot) FindMissionTemplate(t core.MissionType, player *core.CombatGroup) *core.TemplateRecord {
	for _, rec := range s.Templates {
		if rec.Type != t {
			continue
		}
		prog, ok := s.conditions[rec]
		if !ok {
			return rec
		}
		if matchCondition(prog, t, player) {
			return rec
		}
	}
	return nil
}

// Script returns the authored script with the given name.
func (s *Snapshot) Script(name string) *core.MissionScript {
	for _, sc := range s.Scripts {
		if sc.Name == name {
			return sc
		}
	}
	return nil
}
