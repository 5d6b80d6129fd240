// Package describe derives the catalog record and briefing of a generated
// mission.
package describe

import (
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/starshatterwars/missiongen/internal/geo"
	"github.com/starshatterwars/missiongen/internal/mission"
	"github.com/starshatterwars/missiongen/pkg/core"
)

// UnknownPlayer is the player summary when the player element has no
// campaign group.
const UnknownPlayer = "(unknown)"

// GroupLookup resolves campaign groups by id.
type GroupLookup interface {
	Group(id int) *core.CombatGroup
}

// Info is the catalog record of a generated mission.
type Info struct {
	ID          int              `json:"id"`
	Key         uuid.UUID        `json:"key"`
	Name        string           `json:"name"`
	Type        core.MissionType `json:"type"`
	PlayerInfo  string           `json:"playerInfo"`
	Description string           `json:"description"`
	Start       time.Duration    `json:"start"`
	System      string           `json:"system,omitempty"`
	Region      string           `json:"region,omitempty"`
	Template    string           `json:"template,omitempty"`
	CreatedAt   time.Time        `json:"createdAt"`

	Mission *mission.Mission `json:"mission,omitempty"`
}

// Describe names m and returns its catalog record. Missions without a
// player element are not catalogued and give nil.
func Describe(m *mission.Mission, tmpl *core.TemplateRecord, groups GroupLookup) *Info {
	if m == nil {
		return nil
	}
	player := m.Player()
	if player == nil {
		return nil
	}

	info := &Info{
		ID:          m.ID,
		Key:         uuid.New(),
		Name:        Name(m, tmpl),
		Type:        m.Type,
		PlayerInfo:  UnknownPlayer,
		Description: m.Objective,
		Start:       m.Start,
		System:      m.System,
		Region:      m.Region,
		CreatedAt:   time.Now().UTC(),
		Mission:     m,
	}
	if tmpl != nil {
		info.Template = tmpl.Name
	}
	if groups != nil {
		if g := groups.Group(player.GroupID); g != nil {
			info.PlayerInfo = g.Description()
		}
	}

	m.Name = info.Name
	return info
}

// Name is the catalog title of m: the template name, else the type and
// ward, else the type and prime target, else the type alone.
func Name(m *mission.Mission, tmpl *core.TemplateRecord) string {
	prefix := fmt.Sprintf("MSN-%03d", m.ID)
	kind := m.Type.DisplayName()

	if tmpl != nil && tmpl.Name != "" {
		return prefix + " " + tmpl.Name
	}
	if w := m.Ward(); w != nil {
		return fmt.Sprintf("%s %s %s", prefix, kind, w.Name)
	}
	if t := m.Target(); t != nil {
		if t.Class != 0 {
			return fmt.Sprintf("%s %s %s %s", prefix, kind, t.Class, t.Name)
		}
		return fmt.Sprintf("%s %s %s", prefix, kind, t.Name)
	}
	return prefix + " " + kind
}

// Briefing renders the text shown to the player before launch.
func Briefing(info *Info) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s\n", info.Name)
	fmt.Fprintf(&sb, "Type: %s\n", info.Type.DisplayName())
	fmt.Fprintf(&sb, "Unit: %s\n", info.PlayerInfo)

	switch {
	case info.Region != "" && info.System != "":
		fmt.Fprintf(&sb, "Sector: %s, %s system\n", info.Region, info.System)
	case info.System != "":
		fmt.Fprintf(&sb, "Sector: %s system\n", info.System)
	}
	fmt.Fprintf(&sb, "Start: %s\n", DayTime(info.Start))

	if info.Description != "" {
		sb.WriteString("\nObjectives:\n")
		sb.WriteString(info.Description)
	}

	if m := info.Mission; m != nil {
		if p := m.Player(); p != nil {
			if route, ok := geo.ElementRoute(m, p); ok {
				fmt.Fprintf(&sb, "\nFlight plan: %d nav points, %s\n",
					len(m.NavPoints(p)), humanize.SIWithDigits(geo.Length3D(route), 0, "m"))
			}
		}
	}
	return sb.String()
}

// DayTime formats a campaign clock offset as "Day N hh:mm:ss".
func DayTime(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	day := d / (24 * time.Hour)
	d -= day * 24 * time.Hour
	h := d / time.Hour
	d -= h * time.Hour
	m := d / time.Minute
	d -= m * time.Minute
	s := d / time.Second
	return fmt.Sprintf("Day %d %02d:%02d:%02d", day+1, h, m, s)
}
