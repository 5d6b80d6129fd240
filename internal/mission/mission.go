package mission

import (
	"time"

	"github.com/starshatterwars/missiongen/pkg/core"
)

// NoInstruction marks an RLoc with no reference locator.
const NoInstruction InstructionID = -1

// InstructionID indexes Mission.Instructions.
type InstructionID int

// RLoc is a reference-relative locator. The resolved location is the
// reference location (Base, or the resolved location of Ref) offset by
// Distance along the bearing given by Azimuth and Elevation, each drawn
// within its variance.
type RLoc struct {
	Base      core.Vec3     `json:"base"`
	Ref       InstructionID `json:"ref"`
	Distance  float64       `json:"distance"`
	DistVar   float64       `json:"distVar"`
	Azimuth   float64       `json:"azimuth"`
	AzVar     float64       `json:"azVar"`
	Elevation float64       `json:"elevation"`
	ElVar     float64       `json:"elVar"`
}

// Priority orders objectives in the briefing.
type Priority int

const (
	Primary Priority = iota + 1
	Secondary
	Bonus
)

// Instruction is a navigation point or an objective.
type Instruction struct {
	ID       InstructionID `json:"id"`
	Action   core.Action   `json:"action"`
	Region   string        `json:"region,omitempty"`
	Location core.Vec3     `json:"location"`
	RLoc     *RLoc         `json:"rloc,omitempty"`
	// Resolved is set once Location holds the evaluated RLoc.
	Resolved    bool     `json:"resolved,omitempty"`
	Speed       int      `json:"speed,omitempty"`
	Target      string   `json:"target,omitempty"`
	Priority    Priority `json:"priority,omitempty"`
	Description string   `json:"description,omitempty"`
}

// Element is one placeable group of units in a mission.
type Element struct {
	ID         int              `json:"id"`
	Name       string           `json:"name"`
	Design     string           `json:"design,omitempty"`
	Class      core.Class       `json:"class,omitempty"`
	Count      int              `json:"count"`
	DeadCount  int              `json:"deadCount,omitempty"`
	MaintCount int              `json:"maintCount,omitempty"`
	IFF        int              `json:"iff"`
	Intel      core.Intel       `json:"intel"`
	Region     string           `json:"region"`
	Location   core.Vec3        `json:"location"`
	Heading    float64          `json:"heading,omitempty"`
	Role       core.MissionType `json:"role"`
	Loadout    string           `json:"loadout,omitempty"`
	Squadron   string           `json:"squadron,omitempty"`
	Carrier    string           `json:"carrier,omitempty"`
	Commander  string           `json:"commander,omitempty"`
	Player     bool             `json:"player,omitempty"`
	// GroupID and UnitID refer back into the campaign; zero means none.
	GroupID    int             `json:"groupId,omitempty"`
	UnitID     int             `json:"unitId,omitempty"`
	NavPoints  []InstructionID `json:"navPoints,omitempty"`
	Objectives []InstructionID `json:"objectives,omitempty"`
}

// IsStarship reports whether the element is a capital ship.
func (e *Element) IsStarship() bool {
	return e.Class&core.Starships != 0
}

// IsStatic reports whether the element is an installation.
func (e *Element) IsStatic() bool {
	return e.Class >= core.StationShip
}

// Mission is the generated artifact. Elements and instructions live in
// the mission's own arenas and refer to each other by id.
type Mission struct {
	ID           int              `json:"id"`
	Name         string           `json:"name"`
	Description  string           `json:"description,omitempty"`
	Type         core.MissionType `json:"type"`
	Team         int              `json:"team"`
	Start        time.Duration    `json:"start"`
	System       string           `json:"system,omitempty"`
	Region       string           `json:"region,omitempty"`
	Templated    bool             `json:"templated,omitempty"`
	Script       string           `json:"script,omitempty"`
	Objective    string           `json:"objective,omitempty"`
	OK           bool             `json:"ok"`
	TargetID     int              `json:"target,omitempty"`
	WardID       int              `json:"ward,omitempty"`
	Elements     []*Element       `json:"elements"`
	Instructions []*Instruction   `json:"instructions,omitempty"`
}

// New creates an empty mission.
func New(id int, t core.MissionType) *Mission {
	return &Mission{ID: id, Type: t}
}

// AddElement appends an element to the mission.
func (m *Mission) AddElement(e *Element) {
	m.Elements = append(m.Elements, e)
}

// Element returns the element with the given id.
func (m *Mission) Element(id int) *Element {
	if id == 0 {
		return nil
	}
	for _, e := range m.Elements {
		if e.ID == id {
			return e
		}
	}
	return nil
}

// FindElement returns the first element with the given name.
func (m *Mission) FindElement(name string) *Element {
	for _, e := range m.Elements {
		if e.Name == name {
			return e
		}
	}
	return nil
}

// ElementForUnit returns the element built from a campaign unit.
func (m *Mission) ElementForUnit(unitID int) *Element {
	if unitID == 0 {
		return nil
	}
	for _, e := range m.Elements {
		if e.UnitID == unitID {
			return e
		}
	}
	return nil
}

// ElementsForGroup returns the elements built from a campaign group, in order.
func (m *Mission) ElementsForGroup(groupID int) []*Element {
	var out []*Element
	for _, e := range m.Elements {
		if groupID != 0 && e.GroupID == groupID {
			out = append(out, e)
		}
	}
	return out
}

// Player returns the player-controlled element.
func (m *Mission) Player() *Element {
	for _, e := range m.Elements {
		if e.Player {
			return e
		}
	}
	return nil
}

// SetPlayer makes e the only player-controlled element.
func (m *Mission) SetPlayer(e *Element) {
	for _, o := range m.Elements {
		o.Player = o == e
	}
}

func (m *Mission) Target() *Element { return m.Element(m.TargetID) }

func (m *Mission) Ward() *Element { return m.Element(m.WardID) }

// AddInstruction stores ins in the arena and returns its id.
func (m *Mission) AddInstruction(ins *Instruction) InstructionID {
	ins.ID = InstructionID(len(m.Instructions))
	m.Instructions = append(m.Instructions, ins)
	return ins.ID
}

// Instruction returns an instruction by id.
func (m *Mission) Instruction(id InstructionID) *Instruction {
	if id < 0 || int(id) >= len(m.Instructions) {
		return nil
	}
	return m.Instructions[id]
}

// AddNavPoint appends a navigation point to e's flight plan.
func (m *Mission) AddNavPoint(e *Element, ins *Instruction) InstructionID {
	id := m.AddInstruction(ins)
	e.NavPoints = append(e.NavPoints, id)
	return id
}

// AddObjective attaches an objective to e.
func (m *Mission) AddObjective(e *Element, ins *Instruction) InstructionID {
	if ins.Priority == 0 {
		ins.Priority = Primary
	}
	id := m.AddInstruction(ins)
	e.Objectives = append(e.Objectives, id)
	return id
}

// NavPoints returns e's flight plan.
func (m *Mission) NavPoints(e *Element) []*Instruction {
	return m.lookup(e.NavPoints)
}

// Objectives returns e's objectives.
func (m *Mission) Objectives(e *Element) []*Instruction {
	return m.lookup(e.Objectives)
}

func (m *Mission) lookup(ids []InstructionID) []*Instruction {
	out := make([]*Instruction, 0, len(ids))
	for _, id := range ids {
		if ins := m.Instruction(id); ins != nil {
			out = append(out, ins)
		}
	}
	return out
}
