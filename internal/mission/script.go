package mission

import (
	"github.com/starshatterwars/missiongen/pkg/core"
)

// Load appends the authored elements of s to the mission and validates
// the result. Elements flagged PlayerSquadron are bound to playerGroup.
// nextID supplies element ids.
func (m *Mission) Load(s *core.MissionScript, playerGroup int, nextID func() int) error {
	m.Script = s.Name
	if s.Description != "" {
		m.Description = s.Description
	}
	if s.System != "" {
		m.System = s.System
	}
	if s.Region != "" {
		m.Region = s.Region
	}
	if s.Objective != "" {
		m.Objective = s.Objective
	}

	for i := range s.Elements {
		se := &s.Elements[i]
		e := &Element{
			ID:       nextID(),
			Name:     se.Name,
			Design:   se.Design,
			Class:    se.Class,
			Count:    max(se.Count, 1),
			IFF:      se.IFF,
			Intel:    se.Intel,
			Region:   se.Region,
			Location: se.Location,
			Heading:  se.Heading,
			Role:     se.Role,
			Loadout:  se.Loadout,
			Player:   se.Player,
		}
		if e.Region == "" {
			e.Region = m.Region
		}
		if se.PlayerSquadron {
			e.GroupID = playerGroup
		}
		m.AddElement(e)

		for _, si := range se.NavPoints {
			m.AddNavPoint(e, scriptInstruction(si, e.Region))
		}
		for _, si := range se.Objectives {
			m.AddObjective(e, scriptInstruction(si, e.Region))
		}
	}

	if t := m.FindElement(s.Target); s.Target != "" && t != nil {
		m.TargetID = t.ID
	}
	if w := m.FindElement(s.Ward); s.Ward != "" && w != nil {
		m.WardID = w.ID
	}

	return m.Validate()
}

func scriptInstruction(si core.ScriptInstruction, region string) *Instruction {
	ins := &Instruction{
		Action:   si.Action,
		Region:   si.Region,
		Location: si.Location,
		Target:   si.Target,
		Speed:    si.Speed,
	}
	if ins.Region == "" {
		ins.Region = region
	}
	return ins
}
