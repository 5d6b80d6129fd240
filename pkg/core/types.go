// pkg/core/types.go
package core

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownName is returned when parsing an enum name that is not defined.
var ErrUnknownName = errors.New("unknown name")

func parseName(kind, s string, names []string) (int, error) {
	for i, n := range names {
		if n != "" && strings.EqualFold(n, s) {
			return i, nil
		}
	}
	return 0, fmt.Errorf("%w: %s %q", ErrUnknownName, kind, s)
}

func nameOf(i int, names []string) string {
	if i < 0 || i >= len(names) || names[i] == "" {
		return fmt.Sprintf("(%d)", i)
	}
	return names[i]
}

// MissionType is the role of a generated mission.
type MissionType int

const (
	Patrol MissionType = iota
	Sweep
	Intercept
	AirPatrol
	AirSweep
	AirIntercept
	Strike
	Assault
	Defend
	Escort
	EscortFreight
	EscortShuttle
	EscortStrike
	IntelOp
	Scout
	Recon
	Blockade
	Fleet
	Bombardment
	FlightOps
	Transport
	Cargo
	Training
	Other
)

var missionTypeNames = []string{
	"PATROL", "SWEEP", "INTERCEPT", "AIR_PATROL", "AIR_SWEEP", "AIR_INTERCEPT",
	"STRIKE", "ASSAULT", "DEFEND", "ESCORT", "ESCORT_FREIGHT", "ESCORT_SHUTTLE",
	"ESCORT_STRIKE", "INTEL", "SCOUT", "RECON", "BLOCKADE", "FLEET",
	"BOMBARDMENT", "FLIGHT_OPS", "TRANSPORT", "CARGO", "TRAINING", "OTHER",
}

var missionTypeDisplay = []string{
	"Patrol", "Sweep", "Intercept", "Airborne Patrol", "Airborne Sweep", "Airborne Intercept",
	"Strike", "Assault", "Defend", "Escort", "Freight Escort", "Shuttle Escort",
	"Strike Escort", "Intel", "Scout", "Recon", "Blockade", "Fleet",
	"Attack", "Flight Ops", "Transport", "Cargo", "Training", "Misc",
}

func (t MissionType) String() string { return nameOf(int(t), missionTypeNames) }

// DisplayName is the name used in mission titles and briefings.
func (t MissionType) DisplayName() string {
	if t < 0 || int(t) >= len(missionTypeDisplay) {
		return "Misc"
	}
	return missionTypeDisplay[t]
}

func (t MissionType) MarshalText() ([]byte, error) { return []byte(t.String()), nil }

func (t *MissionType) UnmarshalText(b []byte) error {
	i, err := parseName("mission type", string(b), missionTypeNames)
	if err != nil {
		return err
	}
	*t = MissionType(i)
	return nil
}

// GroupType classifies a combat group.
type GroupType int

const (
	GroupNone GroupType = iota
	Force
	Wing
	InterceptSquadron
	FighterSquadron
	AttackSquadron
	LCASquadron
	FleetGroup
	DestroyerSquadron
	BattleGroup
	CarrierGroup
	Battalion
	Minefield
	Battery
	Missile
	Station
	Starbase
	C3I
	CommRelay
	EarlyWarning
	FwdControlCtr
	ECM
	Support
	Courier
	Medical
	Supply
	Repair
	Civilian
	WarProduction
	Factory
	Refinery
	Resource
	Infrastructure
	TransportGroup
	Network
	Habitat
	Storage
	NonCom
	Freight
	Passenger
	Private
	GroupUnknown
)

var groupTypeNames = []string{
	"NONE", "FORCE", "WING", "INTERCEPT_SQUADRON", "FIGHTER_SQUADRON", "ATTACK_SQUADRON",
	"LCA_SQUADRON", "FLEET", "DESTROYER_SQUADRON", "BATTLE_GROUP", "CARRIER_GROUP",
	"BATTALION", "MINEFIELD", "BATTERY", "MISSILE", "STATION", "STARBASE", "C3I",
	"COMM_RELAY", "EARLY_WARNING", "FWD_CONTROL_CTR", "ECM", "SUPPORT", "COURIER",
	"MEDICAL", "SUPPLY", "REPAIR", "CIVILIAN", "WAR_PRODUCTION", "FACTORY", "REFINERY",
	"RESOURCE", "INFRASTRUCTURE", "TRANSPORT", "NETWORK", "HABITAT", "STORAGE",
	"NON_COM", "FREIGHT", "PASSENGER", "PRIVATE", "UNKNOWN",
}

var groupTypeDisplay = map[GroupType]string{
	Force:             "Force",
	Wing:              "Wing",
	InterceptSquadron: "Intercept Squadron",
	FighterSquadron:   "Fighter Squadron",
	AttackSquadron:    "Attack Squadron",
	LCASquadron:       "LCA Squadron",
	FleetGroup:        "Fleet",
	DestroyerSquadron: "Destroyer Squadron",
	BattleGroup:       "Battle Group",
	CarrierGroup:      "Carrier Group",
	Battalion:         "Battalion",
	Minefield:         "Minefield",
	Battery:           "Battery",
	Station:           "Station",
	Starbase:          "Starbase",
	Freight:           "Freight",
	Passenger:         "Passenger",
}

func (g GroupType) String() string { return nameOf(int(g), groupTypeNames) }

// DisplayName is the type name used in group descriptions.
func (g GroupType) DisplayName() string {
	if n, ok := groupTypeDisplay[g]; ok {
		return n
	}
	words := strings.Split(strings.ToLower(g.String()), "_")
	for i, w := range words {
		if w != "" {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}

// IsSquadron reports whether the group flies as one squadron element off a carrier.
func (g GroupType) IsSquadron() bool {
	switch g {
	case InterceptSquadron, FighterSquadron, AttackSquadron, LCASquadron:
		return true
	}
	return false
}

func (g GroupType) MarshalText() ([]byte, error) { return []byte(g.String()), nil }

func (g *GroupType) UnmarshalText(b []byte) error {
	i, err := parseName("group type", string(b), groupTypeNames)
	if err != nil {
		return err
	}
	*g = GroupType(i)
	return nil
}

// Class is a ship design classification bit.
type Class uint32

const (
	Drone       Class = 0x0001
	Fighter     Class = 0x0002
	Attack      Class = 0x0004
	LCA         Class = 0x0008
	CourierShip Class = 0x0010
	CargoShip   Class = 0x0020
	Corvette    Class = 0x0040
	Freighter   Class = 0x0080
	Frigate     Class = 0x0100
	Destroyer   Class = 0x0200
	Cruiser     Class = 0x0400
	Battleship  Class = 0x0800
	Carrier     Class = 0x1000
	Dreadnaught Class = 0x2000
	StationShip Class = 0x4000
	Farcaster   Class = 0x8000
	Mine        Class = 0x10000
	Comsat      Class = 0x20000
	Defsat      Class = 0x40000
	Swacs       Class = 0x80000
	Building    Class = 0x100000
	Starbase1   Class = 0x200000
	Starbase2   Class = 0x400000
	Starbase3   Class = 0x800000
	Starbase4   Class = 0x1000000
	StarbaseMax Class = 0x2000000

	Dropships Class = 0x000f
	Starships Class = 0xfff0
)

var classNames = map[Class]string{
	Drone: "Drone", Fighter: "Fighter", Attack: "Attack", LCA: "LCA",
	CourierShip: "Courier", CargoShip: "Cargo", Corvette: "Corvette",
	Freighter: "Freighter", Frigate: "Frigate", Destroyer: "Destroyer",
	Cruiser: "Cruiser", Battleship: "Battleship", Carrier: "Carrier",
	Dreadnaught: "Dreadnaught", StationShip: "Station", Farcaster: "Farcaster",
	Mine: "Mine", Comsat: "Comsat", Defsat: "Defsat", Swacs: "SWACS",
	Building: "Building", Starbase1: "Starbase", Starbase2: "Starbase",
	Starbase3: "Starbase", Starbase4: "Starbase", StarbaseMax: "Starbase",
}

func (c Class) String() string {
	if n, ok := classNames[c]; ok {
		return n
	}
	return fmt.Sprintf("Class(%#x)", uint32(c))
}

func (c Class) MarshalText() ([]byte, error) { return []byte(c.String()), nil }

func (c *Class) UnmarshalText(b []byte) error {
	s := string(b)
	for k, n := range classNames {
		if strings.EqualFold(n, s) && (n != "Starbase" || k == Starbase1) {
			*c = k
			return nil
		}
	}
	return fmt.Errorf("%w: class %q", ErrUnknownName, s)
}

// Intel is how much the player side knows about an element.
type Intel int

const (
	IntelUnknown Intel = iota
	IntelReserve
	IntelSecret
	IntelKnown
	IntelLocated
	IntelTracked
	IntelActive
)

var intelNames = []string{"UNKNOWN", "RESERVE", "SECRET", "KNOWN", "LOCATED", "TRACKED", "ACTIVE"}

func (i Intel) String() string { return nameOf(int(i), intelNames) }

func (i Intel) MarshalText() ([]byte, error) { return []byte(i.String()), nil }

func (i *Intel) UnmarshalText(b []byte) error {
	n, err := parseName("intel", string(b), intelNames)
	if err != nil {
		return err
	}
	*i = Intel(n)
	return nil
}

// Action is the verb of a navigation point or objective.
type Action int

const (
	ActionNone Action = iota
	ActionVector
	ActionLaunch
	ActionDock
	ActionRTB
	ActionDefend
	ActionEscort
	ActionPatrol
	ActionSweep
	ActionIntercept
	ActionStrike
	ActionAssault
	ActionRecon
	ActionRecall
	ActionDeploy
)

var actionNames = []string{
	"NONE", "VECTOR", "LAUNCH", "DOCK", "RTB", "DEFEND", "ESCORT", "PATROL",
	"SWEEP", "INTERCEPT", "STRIKE", "ASSAULT", "RECON", "RECALL", "DEPLOY",
}

func (a Action) String() string { return nameOf(int(a), actionNames) }

func (a Action) MarshalText() ([]byte, error) { return []byte(a.String()), nil }

func (a *Action) UnmarshalText(b []byte) error {
	n, err := parseName("action", string(b), actionNames)
	if err != nil {
		return err
	}
	*a = Action(n)
	return nil
}

// RegionType classifies an orbital region.
type RegionType int

const (
	RegionSpace RegionType = iota
	RegionStar
	RegionPlanet
	RegionMoon
	RegionTerrain
)

var regionTypeNames = []string{"REGION", "STAR", "PLANET", "MOON", "TERRAIN"}

func (r RegionType) String() string { return nameOf(int(r), regionTypeNames) }

func (r RegionType) MarshalText() ([]byte, error) { return []byte(r.String()), nil }

func (r *RegionType) UnmarshalText(b []byte) error {
	n, err := parseName("region type", string(b), regionTypeNames)
	if err != nil {
		return err
	}
	*r = RegionType(n)
	return nil
}
