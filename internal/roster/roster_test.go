package roster_test

import (
	"bytes"
	"log/slog"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/starshatterwars/missiongen/internal/roster"
	"github.com/starshatterwars/missiongen/internal/roster/rostertest"
	"github.com/starshatterwars/missiongen/internal/scatter"
	"github.com/starshatterwars/missiongen/pkg/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRoster(t *testing.T, log *slog.Logger) (*roster.Roster, *roster.Snapshot) {
	t.Helper()
	c := rostertest.Campaign(t)
	return roster.New(c, scatter.New(rand.New(rand.NewSource(1))), log), c
}

func TestZoneFor(t *testing.T) {
	r, c := newRoster(t, nil)

	assert.Equal(t, "Borova", r.ZoneFor(c.Group(12)).Name)
	assert.Equal(t, "Outer Ostara", r.ZoneFor(c.Group(30)).Name)
	assert.Equal(t, "Borova", r.ZoneFor(c.Group(11)).Name, "squadrons use their carrier's zone")
	assert.Nil(t, r.ZoneFor(c.Group(16)))
	assert.Nil(t, r.ZoneFor(nil))
}

func TestHomeRegion(t *testing.T) {
	r, c := newRoster(t, nil)

	assert.Equal(t, "Borova", r.HomeRegion(c.Group(12)))
	assert.Equal(t, "Borova", r.HomeRegion(c.Group(11)))
	assert.Equal(t, "Ostara Prime", r.HomeRegion(c.Group(21)))
	assert.Empty(t, r.HomeRegion(nil))
}

func TestEnemy(t *testing.T) {
	r, _ := newRoster(t, nil)

	assert.Equal(t, 2, r.Enemy(1))
	assert.Equal(t, 1, r.Enemy(2))
}

func TestFindSquadron(t *testing.T) {
	r, c := newRoster(t, nil)
	player := c.Group(12)

	assert.Equal(t, 21, r.FindSquadron(player, 2, core.FighterSquadron).ID)
	assert.Equal(t, 23, r.FindSquadron(player, 2, core.InterceptSquadron).ID)
	assert.Nil(t, r.FindSquadron(player, 2, core.Freight), "freight is not part of a zone force")
	assert.Nil(t, r.FindSquadron(player, 3, core.FighterSquadron))
	assert.Nil(t, r.FindSquadron(nil, 2, core.FighterSquadron))
}

func TestFindSquadron_NoZoneWarnsOnce(t *testing.T) {
	var buf bytes.Buffer
	r, c := newRoster(t, slog.New(slog.NewTextHandler(&buf, nil)))
	drifters := c.Group(16)

	assert.Nil(t, r.FindSquadron(drifters, 2, core.FighterSquadron))
	assert.Nil(t, r.FindSquadron(drifters, 2, core.AttackSquadron))

	assert.Equal(t, 1, strings.Count(buf.String(), "No zone for group"))
}

func TestFindSquadron_RandomAmongCandidates(t *testing.T) {
	c := rostertest.Campaign(t)
	c.GroupList = append(c.GroupList, &core.CombatGroup{
		ID: 29, ParentID: 26, Type: core.FighterSquadron, IFF: 2, Name: "Claws",
		Units: []*core.CombatUnit{{ID: 290, Name: "Claws", Count: 4}},
	})
	c.ZoneList[0].Forces[1].Groups = append(c.ZoneList[0].Forces[1].Groups, 29)
	require.NoError(t, c.Index())

	seen := map[int]bool{}
	r := roster.New(c, scatter.New(rand.New(rand.NewSource(3))), nil)
	for i := 0; i < 50; i++ {
		seen[r.FindSquadron(c.Group(12), 2, core.FighterSquadron).ID] = true
	}
	assert.True(t, seen[21])
	assert.True(t, seen[29])
}

func TestFindCarrier(t *testing.T) {
	r, c := newRoster(t, nil)

	assert.Equal(t, 10, r.FindCarrier(c.Group(11)).ID)
	assert.Equal(t, 26, r.FindCarrier(c.Group(23)).ID)
	assert.Nil(t, r.FindCarrier(c.Group(12)), "destroyers have no carrier")
	assert.Nil(t, r.FindCarrier(nil))
}

func TestNextUnit_Cycles(t *testing.T) {
	r, c := newRoster(t, nil)
	convoy := c.Group(13)

	assert.Equal(t, "Ceres", r.NextUnit(convoy).Name)
	assert.Equal(t, "Vesta", r.NextUnit(convoy).Name)
	assert.Equal(t, "Ceres", r.NextUnit(convoy).Name)
	assert.Equal(t, "Ceres", r.FirstUnit(convoy).Name)
}

func TestNextUnit_Components(t *testing.T) {
	r, c := newRoster(t, nil)

	u := r.NextUnit(c.Group(2))
	require.NotNil(t, u)
	assert.Equal(t, "Dominion", u.Name)
	assert.Nil(t, r.NextUnit(nil))
}

func TestRandomUnit_SkipsCapitalShips(t *testing.T) {
	r, c := newRoster(t, nil)

	assert.Nil(t, r.RandomUnit(c.Group(28)), "cruisers are never drawn")
	u := r.RandomUnit(c.Group(25))
	require.NotNil(t, u)
	assert.Contains(t, []string{"Ulm", "Kess"}, u.Name)
}

func TestSnapshot_FindGroup(t *testing.T) {
	c := rostertest.Campaign(t)

	assert.Equal(t, 13, c.FindGroup(1, core.Freight, c.Group(12)).ID)
	assert.Equal(t, 25, c.FindGroup(2, core.Freight, nil).ID)
	assert.Nil(t, c.FindGroup(1, core.Starbase, nil))
}

func TestSnapshot_FindMissionTemplate(t *testing.T) {
	c := rostertest.Campaign(t)
	blue := c.Group(12)

	rec := c.FindMissionTemplate(core.Blockade, blue)
	require.NotNil(t, rec)
	assert.Equal(t, "Blockade Run", rec.Script)

	assert.Nil(t, c.FindMissionTemplate(core.Assault, blue), "condition does not hold")
	assert.Nil(t, c.FindMissionTemplate(core.Blockade, c.Group(11)), "wrong group type")
	assert.Nil(t, c.FindMissionTemplate(core.Patrol, blue))
	assert.NotNil(t, c.FindMissionTemplate(core.Defend, blue), "no condition always matches")
	assert.NotNil(t, c.Script("Relay Defense"))
}

func TestSnapshot_BadCondition(t *testing.T) {
	src := strings.Replace(string(rostertest.YAML()), `condition: "Group.Units >= 99"`, `condition: "Group.Units +"`, 1)

	_, err := roster.ParseSnapshot([]byte(src))
	assert.ErrorContains(t, err, "Deep Strike")
}

func TestSnapshot_DuplicateGroup(t *testing.T) {
	c := rostertest.Campaign(t)
	c.GroupList = append(c.GroupList, &core.CombatGroup{ID: 12})

	assert.ErrorContains(t, c.Index(), "duplicate group id 12")
}

func TestLoadSnapshot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "campaign.yaml")
	require.NoError(t, os.WriteFile(path, rostertest.YAML(), 0644))

	c, err := roster.LoadSnapshot(path)
	require.NoError(t, err)
	assert.Equal(t, "Operation Highland", c.Name)
	assert.Equal(t, 12, c.PlayerGroup().ID)
	assert.Nil(t, c.PlayerUnit())
	assert.NotNil(t, c.System("Ostara"))
	assert.Len(t, c.Systems(), 2)

	_, err = roster.LoadSnapshot(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
