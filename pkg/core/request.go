// pkg/core/request.go
package core

import "time"

// MissionRequest carries the campaign layer's intent for one mission.
// Group references are campaign group ids; zero means not set.
type MissionRequest struct {
	Type           MissionType   `json:"type" yaml:"type"`
	Start          time.Duration `json:"start" yaml:"start"`
	PrimaryGroup   int           `json:"primaryGroup" yaml:"primaryGroup"`
	SecondaryGroup int           `json:"secondaryGroup,omitempty" yaml:"secondaryGroup,omitempty"`
	ObjectiveGroup int           `json:"objectiveGroup,omitempty" yaml:"objectiveGroup,omitempty"`
	Region         string        `json:"region,omitempty" yaml:"region,omitempty"`
	Location       *Vec3         `json:"location,omitempty" yaml:"location,omitempty"`
	Script         string        `json:"script,omitempty" yaml:"script,omitempty"`
}
