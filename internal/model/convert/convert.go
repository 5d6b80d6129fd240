// Package convert maps catalog entries to GORM records and back.
package convert

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/starshatterwars/missiongen/internal/describe"
	"github.com/starshatterwars/missiongen/internal/geo"
	"github.com/starshatterwars/missiongen/internal/mission"
	"github.com/starshatterwars/missiongen/internal/model"
	"gorm.io/datatypes"
)

// objectiveJSON is the stored form of one element objective.
type objectiveJSON struct {
	Action      string `json:"action"`
	Target      string `json:"target,omitempty"`
	Description string `json:"description,omitempty"`
}

// InfoToRecord converts a catalog entry to a GORM MissionRecord with its
// element and nav point rows.
func InfoToRecord(info *describe.Info) (model.MissionRecord, error) {
	payload, err := json.Marshal(info)
	if err != nil {
		return model.MissionRecord{}, fmt.Errorf("marshal mission %d: %w", info.ID, err)
	}

	rec := model.MissionRecord{
		MissionID:   info.ID,
		Key:         info.Key,
		Name:        info.Name,
		Type:        info.Type.String(),
		PlayerInfo:  info.PlayerInfo,
		Description: info.Description,
		StartSecs:   int64(info.Start / time.Second),
		System:      info.System,
		Region:      info.Region,
		Template:    info.Template,
		GeneratedAt: info.CreatedAt,
		Payload:     datatypes.JSON(payload),
	}

	if m := info.Mission; m != nil {
		rec.OK = m.OK
		rec.Elements = make([]model.ElementRecord, 0, len(m.Elements))
		for _, e := range m.Elements {
			rec.Elements = append(rec.Elements, ElementToRecord(m, e))
		}
	}
	return rec, nil
}

// ElementToRecord converts one mission element. The flight plan is stored
// both as ordered nav point rows and as a WKT route.
func ElementToRecord(m *mission.Mission, e *mission.Element) model.ElementRecord {
	rec := model.ElementRecord{
		ElementID:  e.ID,
		Name:       e.Name,
		Design:     e.Design,
		Class:      e.Class.String(),
		Count:      e.Count,
		IFF:        e.IFF,
		Role:       e.Role.String(),
		Region:     e.Region,
		Player:     e.Player,
		GroupID:    e.GroupID,
		UnitID:     e.UnitID,
		Objectives: objectivesToJSON(m.Objectives(e)),
	}

	for i, nav := range m.NavPoints(e) {
		rec.NavPoints = append(rec.NavPoints, model.NavPointRecord{
			Seq:    i,
			Action: nav.Action.String(),
			Region: nav.Region,
			X:      nav.Location.X,
			Y:      nav.Location.Y,
			Z:      nav.Location.Z,
			Speed:  nav.Speed,
			Target: nav.Target,
		})
	}
	if route, ok := geo.ElementRoute(m, e); ok {
		rec.Route = route.AsText()
	}
	return rec
}

// objectivesToJSON converts objectives to datatypes.JSON for DB storage.
func objectivesToJSON(objs []*mission.Instruction) datatypes.JSON {
	if len(objs) == 0 {
		return datatypes.JSON("[]")
	}
	out := make([]objectiveJSON, len(objs))
	for i, o := range objs {
		out[i] = objectiveJSON{
			Action:      o.Action.String(),
			Target:      o.Target,
			Description: o.Description,
		}
	}
	data, _ := json.Marshal(out)
	return datatypes.JSON(data)
}

// RecordToInfo restores the catalog entry stored in rec's payload.
func RecordToInfo(rec model.MissionRecord) (*describe.Info, error) {
	if len(rec.Payload) == 0 {
		return nil, fmt.Errorf("mission record %d has no payload", rec.MissionID)
	}
	var info describe.Info
	if err := json.Unmarshal(rec.Payload, &info); err != nil {
		return nil, fmt.Errorf("unmarshal mission record %d: %w", rec.MissionID, err)
	}
	return &info, nil
}
