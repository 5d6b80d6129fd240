// Package rostertest provides the campaign fixture shared by the generator tests.
package rostertest

import (
	_ "embed"
	"testing"

	"github.com/starshatterwars/missiongen/internal/roster"
	"github.com/stretchr/testify/require"
)

//go:embed campaign.yaml
var campaignYAML []byte

// Campaign returns a fresh copy of the fixture campaign.
//
// Zone Borova holds the Alliance carrier group Archon (10) with its
// squadrons, destroyer squadron Blue (12, the player group) and the Hegemony
// carrier Dominion (26) with fighter, attack, intercept and LCA squadrons.
// Freight groups 13 and 25 are not part of any zone force.
func Campaign(t testing.TB) *roster.Snapshot {
	t.Helper()
	s, err := roster.ParseSnapshot(campaignYAML)
	require.NoError(t, err)
	return s
}

// YAML returns the raw fixture.
func YAML() []byte {
	out := make([]byte, len(campaignYAML))
	copy(out, campaignYAML)
	return out
}
