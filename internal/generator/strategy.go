package generator

import (
	"fmt"
	"strings"

	"github.com/starshatterwars/missiongen/internal/mission"
	"github.com/starshatterwars/missiongen/pkg/core"
)

// RoleStrategy specializes the generation pipeline for one kind of player
// group.
type RoleStrategy interface {
	// Name identifies the role in configuration, logs and metrics.
	Name() string
	SelectType(b *Build) core.MissionType
	// CreatePlayer marks the player element and returns it, or nil when
	// the player group cannot be placed.
	CreatePlayer(b *Build) *mission.Element
	CreateWards(b *Build)
	CreateTargets(b *Build)
}

var (
	_ RoleStrategy = Starship{}
	_ RoleStrategy = Fighter{}
)

// StrategyFor returns the strategy registered under name.
func StrategyFor(name string) (RoleStrategy, error) {
	switch strings.ToLower(name) {
	case "", "starship":
		return Starship{}, nil
	case "fighter":
		return Fighter{}, nil
	}
	return nil, fmt.Errorf("unknown generator role: %q", name)
}

func title(s RoleStrategy) string {
	n := s.Name()
	if n == "" {
		return "Generated"
	}
	return strings.ToUpper(n[:1]) + n[1:]
}
