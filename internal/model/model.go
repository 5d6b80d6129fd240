package model

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ErrMissionNotFound is returned by catalog lookups for an unknown mission id.
var ErrMissionNotFound = errors.New("mission not found")

////////////////////////
// DATABASE STRUCTURES //
////////////////////////

// DatabaseModels is a list of all the structs exported here which represent tables in the database schema
var DatabaseModels = []interface{}{
	&MissionRecord{},
	&ElementRecord{},
	&NavPointRecord{},
}

////////////////////////
// CATALOG MODELS
////////////////////////

// MissionRecord is one catalogued mission. Payload holds the full catalog
// entry as JSON so a record round-trips without the child tables.
type MissionRecord struct {
	gorm.Model
	MissionID   int            `json:"missionId" gorm:"index:idx_mission_id"`
	Key         uuid.UUID      `json:"key" gorm:"type:uuid;uniqueIndex"`
	Name        string         `json:"name" gorm:"size:127"`
	Type        string         `json:"type" gorm:"size:32;index:idx_mission_type"`
	PlayerInfo  string         `json:"playerInfo" gorm:"size:255"`
	Description string         `json:"description"`
	StartSecs   int64          `json:"startSecs"`
	System      string         `json:"system" gorm:"size:64"`
	Region      string         `json:"region" gorm:"size:64"`
	Template    string         `json:"template" gorm:"size:127"`
	OK          bool           `json:"ok"`
	GeneratedAt time.Time      `json:"generatedAt" gorm:"index:idx_generated_at"`
	Payload     datatypes.JSON `json:"payload"`

	Elements []ElementRecord `json:"elements" gorm:"foreignKey:MissionRecordID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}

func (*MissionRecord) TableName() string {
	return "missions"
}

// ElementRecord is one element of a catalogued mission.
type ElementRecord struct {
	ID              uint   `json:"id" gorm:"primarykey"`
	MissionRecordID uint   `json:"missionRecordId" gorm:"index:idx_element_mission"`
	ElementID       int    `json:"elementId"`
	Name            string `json:"name" gorm:"size:64"`
	Design          string `json:"design" gorm:"size:64"`
	Class           string `json:"class" gorm:"size:32"`
	Count           int    `json:"count"`
	IFF             int    `json:"iff"`
	Role            string `json:"role" gorm:"size:32"`
	Region          string `json:"region" gorm:"size:64"`
	Player          bool   `json:"player"`
	GroupID         int    `json:"groupId"`
	UnitID          int    `json:"unitId"`
	// Route is the flight plan as WKT; empty without nav points.
	Route      string         `json:"route"`
	Objectives datatypes.JSON `json:"objectives"`

	NavPoints []NavPointRecord `json:"navPoints" gorm:"foreignKey:ElementRecordID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}

func (*ElementRecord) TableName() string {
	return "mission_elements"
}

// NavPointRecord is one nav point of an element, in flight order.
type NavPointRecord struct {
	ID              uint    `json:"id" gorm:"primarykey"`
	ElementRecordID uint    `json:"elementRecordId" gorm:"index:idx_navpoint_element"`
	Seq             int     `json:"seq"`
	Action          string  `json:"action" gorm:"size:16"`
	Region          string  `json:"region" gorm:"size:64"`
	X               float64 `json:"x"`
	Y               float64 `json:"y"`
	Z               float64 `json:"z"`
	Speed           int     `json:"speed"`
	Target          string  `json:"target" gorm:"size:64"`
}

func (*NavPointRecord) TableName() string {
	return "mission_nav_points"
}
