// pkg/core/script.go
package core

// TemplateRecord points at an authored mission script that the campaign
// offers for a mission type.
type TemplateRecord struct {
	Name   string      `json:"name" yaml:"name"`
	Script string      `json:"script" yaml:"script"`
	Type   MissionType `json:"type" yaml:"type"`
	// Condition is an optional boolean expression over the request and
	// player group. An empty condition always matches.
	Condition string `json:"condition,omitempty" yaml:"condition,omitempty"`
}

// MissionScript is a pre-parsed authored mission.
type MissionScript struct {
	Name        string          `json:"name" yaml:"name"`
	Description string          `json:"description,omitempty" yaml:"description,omitempty"`
	Type        MissionType     `json:"type" yaml:"type"`
	System      string          `json:"system,omitempty" yaml:"system,omitempty"`
	Region      string          `json:"region,omitempty" yaml:"region,omitempty"`
	Objective   string          `json:"objective,omitempty" yaml:"objective,omitempty"`
	Target      string          `json:"target,omitempty" yaml:"target,omitempty"`
	Ward        string          `json:"ward,omitempty" yaml:"ward,omitempty"`
	Elements    []ScriptElement `json:"elements" yaml:"elements"`
}

// ScriptElement is one authored element.
type ScriptElement struct {
	Name     string      `json:"name" yaml:"name"`
	Design   string      `json:"design,omitempty" yaml:"design,omitempty"`
	Class    Class       `json:"class,omitempty" yaml:"class,omitempty"`
	Count    int         `json:"count" yaml:"count"`
	IFF      int         `json:"iff" yaml:"iff"`
	Intel    Intel       `json:"intel,omitempty" yaml:"intel,omitempty"`
	Region   string      `json:"region,omitempty" yaml:"region,omitempty"`
	Location Vec3        `json:"location" yaml:"location"`
	Heading  float64     `json:"heading,omitempty" yaml:"heading,omitempty"`
	Role     MissionType `json:"role" yaml:"role"`
	Loadout  string      `json:"loadout,omitempty" yaml:"loadout,omitempty"`
	Player   bool        `json:"player,omitempty" yaml:"player,omitempty"`
	// PlayerSquadron binds the element to the requesting player group.
	PlayerSquadron bool                `json:"playerSquadron,omitempty" yaml:"playerSquadron,omitempty"`
	NavPoints      []ScriptInstruction `json:"navPoints,omitempty" yaml:"navPoints,omitempty"`
	Objectives     []ScriptInstruction `json:"objectives,omitempty" yaml:"objectives,omitempty"`
}

// ScriptInstruction is an authored nav point or objective.
type ScriptInstruction struct {
	Action   Action `json:"action" yaml:"action"`
	Region   string `json:"region,omitempty" yaml:"region,omitempty"`
	Location Vec3   `json:"location" yaml:"location"`
	Target   string `json:"target,omitempty" yaml:"target,omitempty"`
	Speed    int    `json:"speed,omitempty" yaml:"speed,omitempty"`
}
