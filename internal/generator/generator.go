// Package generator builds campaign missions: it picks the mission type,
// region and standing forces, then places the player, wards and targets
// for the player's role and writes the objectives.
package generator

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/starshatterwars/missiongen/internal/describe"
	"github.com/starshatterwars/missiongen/internal/element"
	"github.com/starshatterwars/missiongen/internal/mission"
	"github.com/starshatterwars/missiongen/internal/objective"
	"github.com/starshatterwars/missiongen/internal/roster"
	"github.com/starshatterwars/missiongen/internal/waypoint"
	"github.com/starshatterwars/missiongen/pkg/core"
)

// Result is a generated mission with the campaign records it was built
// from.
type Result struct {
	Mission *mission.Mission
	// Template is set only for missions built from a campaign template.
	Template    *core.TemplateRecord
	PlayerGroup *core.CombatGroup
	// Info is the catalog record; nil when the mission has no player.
	Info *describe.Info
}

// Option configures a Generator.
type Option func(*Generator)

// WithLogger sets the logger for degraded-generation diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(g *Generator) {
		g.log = l
	}
}

// WithStrategy sets the player role. The default is Starship.
func WithStrategy(s RoleStrategy) Option {
	return func(g *Generator) {
		g.strategy = s
	}
}

// WithMaxTargetTries bounds the attempts made to reach a target quota.
func WithMaxTargetTries(n int) Option {
	return func(g *Generator) {
		g.maxTries = n
	}
}

// Generator creates missions for one campaign.
type Generator struct {
	campaign roster.Campaign
	gen      *mission.GenerationContext
	strategy RoleStrategy
	log      *slog.Logger
	maxTries int
	metrics  *metrics
}

// New creates a generator over campaign. Ids and randomness come from gen.
// Uses the global OTel meter for metrics (no-op if not configured).
func New(campaign roster.Campaign, gen *mission.GenerationContext, opts ...Option) (*Generator, error) {
	g := &Generator{
		campaign: campaign,
		gen:      gen,
		strategy: Starship{},
		log:      slog.Default(),
	}
	for _, opt := range opts {
		opt(g)
	}

	m, err := newMetrics()
	if err != nil {
		return nil, err
	}
	g.metrics = m
	return g, nil
}

// Strategy returns the role the generator builds missions for.
func (g *Generator) Strategy() RoleStrategy {
	return g.strategy
}

// Generate builds one mission for req under the next mission id. Runs are
// serialized on the generation context and no state of a run survives it
// apart from the id counters and the random source.
func (g *Generator) Generate(ctx context.Context, req *core.MissionRequest) (*Result, error) {
	return g.GenerateWithID(ctx, req, 0)
}

// GenerateWithID is Generate with a caller-chosen mission id, used to
// rebuild a catalogued mission. An id of zero or less takes the next id
// from the generation context; a known id leaves the counter alone.
func (g *Generator) GenerateWithID(ctx context.Context, req *core.MissionRequest, id int) (*Result, error) {
	if req == nil {
		g.metrics.recordFailed(g.strategy.Name(), ErrNilRequest)
		return nil, ErrNilRequest
	}

	var res *Result
	err := g.gen.Do(func() error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if id <= 0 {
			id = g.gen.NextMissionID()
		}
		var err error
		if res, err = g.generate(req, id); err != nil {
			return err
		}
		res.Info = describe.Describe(res.Mission, res.Template, g.campaign)
		return nil
	})
	if err != nil {
		g.metrics.recordFailed(g.strategy.Name(), err)
		return nil, err
	}

	m := res.Mission
	g.log.Info("Mission created", "id", m.ID, "name", m.Name, "type", m.Type.String(), "ok", m.OK)
	g.metrics.recordGenerated(g.strategy.Name(), m.Type.String(), m.Templated)
	return res, nil
}

func (g *Generator) newBuild(req *core.MissionRequest) (*Build, error) {
	pg, pu := g.campaign.PlayerGroup(), g.campaign.PlayerUnit()
	if req.PrimaryGroup != 0 {
		primary := g.campaign.Group(req.PrimaryGroup)
		if primary == nil {
			return nil, fmt.Errorf("%w: group %d not in campaign", ErrNoPlayerGroup, req.PrimaryGroup)
		}
		if pg == nil || primary.ID != pg.ID {
			pg, pu = primary, nil
		}
	}
	if pg == nil {
		return nil, fmt.Errorf("%w: none designated", ErrNoPlayerGroup)
	}

	s := g.gen.Scatter()
	r := roster.New(g.campaign, s, g.log)
	return &Build{
		Request:     req,
		Campaign:    g.campaign,
		Roster:      r,
		Scatter:     s,
		Log:         g.log,
		PlayerGroup: pg,
		PlayerUnit:  pu,
		Ownside:     pg.IFF,
		Enemy:       r.Enemy(pg.IFF),
		maxTries:    g.maxTries,
		nextID:      g.gen.NextElementID,
	}, nil
}

func (g *Generator) generate(req *core.MissionRequest, id int) (*Result, error) {
	b, err := g.newBuild(req)
	if err != nil {
		return nil, err
	}
	b.Type = g.strategy.SelectType(b)
	defer g.gen.SetCurrent(nil)

	g.log.Info("Mission requested",
		"role", g.strategy.Name(), "type", b.Type.String(), "group", b.PlayerGroup.Name, "script", req.Script)

	if req.Script != "" {
		return g.scripted(b, id)
	}
	if res, err := g.templated(b, id); res != nil || err != nil {
		return res, err
	}
	return g.fresh(b, id)
}

func (g *Generator) skeleton(b *Build, id int) *mission.Mission {
	m := mission.New(id, b.Type)
	m.Name = fmt.Sprintf("%s Mission %d", title(g.strategy), id)
	m.Team = b.PlayerGroup.IFF
	m.Start = b.Request.Start
	b.reset(m)
	g.gen.SetCurrent(m)
	return m
}

// scripted loads the named script as authored. Standing forces and role
// elements are not generated.
func (g *Generator) scripted(b *Build, id int) (*Result, error) {
	script := g.campaign.Script(b.Request.Script)
	if script == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownScript, b.Request.Script)
	}

	m := g.skeleton(b, id)
	if err := g.selectRegion(b); err != nil && script.System == "" {
		return nil, err
	}
	if err := m.Load(script, b.PlayerGroup.ID, b.nextID); err != nil {
		g.log.Warn("Scripted mission failed validation", "script", script.Name, "error", err)
	}
	if b.System = g.campaign.System(m.System); b.System == nil {
		return nil, fmt.Errorf("%w: system %q", ErrNoNavigableRegion, m.System)
	}

	b.Player, b.Target, b.Ward = m.Player(), m.Target(), m.Ward()
	g.finish(b)
	return &Result{Mission: m, PlayerGroup: b.PlayerGroup}, nil
}

// templated builds from a campaign template matching the mission type. It
// returns nil without error when no template applies or the templated
// mission fails validation.
func (g *Generator) templated(b *Build, id int) (*Result, error) {
	tmpl := g.campaign.FindMissionTemplate(b.Type, b.PlayerGroup)
	if tmpl == nil {
		return nil, nil
	}
	script := g.campaign.Script(tmpl.Script)
	if script == nil {
		g.log.Warn("Template script not found", "template", tmpl.Name, "script", tmpl.Script)
		return nil, nil
	}

	m := g.skeleton(b, id)
	m.Templated = true
	if err := g.selectRegion(b); err != nil {
		return nil, err
	}
	g.standardElements(b)
	g.strategy.CreatePlayer(b)

	if err := m.Load(script, b.PlayerGroup.ID, b.nextID); err != nil {
		g.log.Warn("Template failed validation, rebuilding mission",
			"template", tmpl.Name, "mission", id, "error", err)
		g.metrics.recordFallback(g.strategy.Name())
		return nil, nil
	}

	b.Player, b.Target, b.Ward = m.Player(), m.Target(), m.Ward()
	g.finish(b)
	return &Result{Mission: m, Template: tmpl, PlayerGroup: b.PlayerGroup}, nil
}

// fresh synthesizes the whole mission.
func (g *Generator) fresh(b *Build, id int) (*Result, error) {
	m := g.skeleton(b, id)
	if err := g.selectRegion(b); err != nil {
		return nil, err
	}
	g.standardElements(b)

	if g.strategy.CreatePlayer(b) == nil {
		g.log.Warn("No player element, mission is ill-formed",
			"mission", id, "group", b.PlayerGroup.Name, "groupId", b.PlayerGroup.ID)
	}
	g.strategy.CreateWards(b)
	g.strategy.CreateTargets(b)
	b.WardObjective()

	if err := m.Validate(); err != nil {
		g.log.Warn("Mission failed validation", "mission", id, "error", err)
	}
	g.finish(b)
	g.metrics.recordTargets(g.strategy.Name(), b.placed)
	return &Result{Mission: m, PlayerGroup: b.PlayerGroup}, nil
}

// selectRegion puts the mission in the player group's zone: its assigned
// zone, else its current one, else the first region of the first system.
// A region fixed by the request wins when it is navigable.
func (g *Generator) selectRegion(b *Build) error {
	m := b.Mission
	var sys *core.StarSystem

	if zone := b.Roster.ZoneFor(b.PlayerGroup); zone != nil {
		sys = g.campaign.System(zone.System)
		if sys != nil {
			home := b.Roster.HomeRegion(b.PlayerGroup)
			candidates := zone.Regions
			if zone.HasRegion(home) {
				candidates = append([]string{home}, zone.Regions...)
			}
			m.Region = firstNavigable(sys, candidates)
		}
	} else {
		if !b.warnedRegion {
			b.warnedRegion = true
			g.log.Warn("No zone for player group, using first system",
				"group", b.PlayerGroup.Name, "groupId", b.PlayerGroup.ID)
		}
		if systems := g.campaign.Systems(); len(systems) > 0 {
			sys = systems[0]
			names := make([]string, len(sys.Regions))
			for i, r := range sys.Regions {
				names[i] = r.Name
			}
			m.Region = firstNavigable(sys, names)
		}
	}
	if sys == nil {
		return fmt.Errorf("%w: no star system for group %q", ErrNoNavigableRegion, b.PlayerGroup.Name)
	}

	if r := b.Request.Region; r != "" {
		if rgn := sys.FindRegion(r); rgn != nil && rgn.Navigable() {
			m.Region = r
		}
	}
	m.System = sys.Name
	b.System = sys
	b.Elements = element.NewBuilder(m, sys, b.Roster, b.Scatter, b.nextID, b.Log)
	return nil
}

// firstNavigable returns the first of names that is a navigable region
// of sys, or "" when none is.
func firstNavigable(sys *core.StarSystem, names []string) string {
	for _, n := range names {
		if rgn := sys.FindRegion(n); rgn != nil && rgn.Navigable() {
			return n
		}
	}
	return ""
}

// standardElements places every zone force: squadrons as one element on
// their carrier, ships and installations unit by unit.
func (g *Generator) standardElements(b *Build) {
	for _, z := range g.campaign.Zones() {
		for _, f := range z.Forces {
			for _, id := range f.Groups {
				grp := g.campaign.Group(id)
				switch {
				case grp == nil:
				case grp.Type.IsSquadron():
					b.Elements.Squadron(grp)
				case placedUnitByUnit(grp.Type):
					b.Elements.Group(grp)
				}
			}
		}
	}
}

func placedUnitByUnit(t core.GroupType) bool {
	switch t {
	case core.DestroyerSquadron, core.BattleGroup, core.CarrierGroup,
		core.Minefield, core.Battery, core.Missile, core.Station, core.Starbase,
		core.Support, core.Courier, core.Medical, core.Supply, core.Repair,
		core.Civilian, core.WarProduction, core.Factory, core.Refinery, core.Resource,
		core.Infrastructure, core.TransportGroup, core.Network, core.Habitat,
		core.Storage, core.NonCom:
		return true
	}
	return false
}

// finish resolves relative nav points and writes the objectives.
func (g *Generator) finish(b *Build) {
	m := b.Mission
	waypoint.ResolveAll(m, b.Scatter)
	if b.Target != nil {
		m.TargetID = b.Target.ID
	}
	if b.Ward != nil {
		m.WardID = b.Ward.ID
	}
	if m.Objective == "" {
		m.Objective = objective.Compose(m)
	}
}
