package worker

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/starshatterwars/missiongen/internal/describe"
	"github.com/starshatterwars/missiongen/internal/dispatcher"
	"github.com/starshatterwars/missiongen/internal/parser"
	"github.com/starshatterwars/missiongen/pkg/core"
)

// Campaign commands.
const (
	CmdGenerate     = ":GENERATE:"
	CmdGenerateSync = ":GENERATE:SYNC:"
	CmdDescribe     = ":DESCRIBE:"
	CmdList         = ":LIST:"
)

// RegisterHandlers registers all command handlers with the dispatcher.
func (m *Manager) RegisterHandlers(d *dispatcher.Dispatcher) {
	// Generation requests queue behind one worker and never drop
	d.Register(CmdGenerate, m.handleGenerate, dispatcher.Buffered(m.deps.QueueSize), dispatcher.Blocking(), dispatcher.Logged())
	// Sync variant returns the catalog entry to the caller
	d.Register(CmdGenerateSync, m.handleGenerate, dispatcher.Logged())

	// Catalog queries - sync
	d.Register(CmdDescribe, m.handleDescribe, dispatcher.Logged())
	d.Register(CmdList, m.handleList, dispatcher.Logged())
}

// request takes a decoded request from the payload, else parses the args.
func request(e dispatcher.Event) (*core.MissionRequest, error) {
	if req, ok := e.Payload.(*core.MissionRequest); ok && req != nil {
		return req, nil
	}
	req, err := parser.ParseRequest(e.Args)
	if err != nil {
		return nil, fmt.Errorf("failed to parse mission request: %w", err)
	}
	return req, nil
}

func (m *Manager) handleGenerate(e dispatcher.Event) (any, error) {
	start := time.Now()
	info, err := m.generate(e)
	m.record(time.Since(start), err)
	if err != nil {
		return nil, err
	}
	return info, nil
}

func (m *Manager) generate(e dispatcher.Event) (*describe.Info, error) {
	req, err := request(e)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	res, err := m.deps.Generator.Generate(context.Background(), req)
	if err != nil {
		return nil, fmt.Errorf("failed to generate mission: %w", err)
	}
	elapsed := time.Since(start)

	if res.Info == nil {
		m.log.Warn("Mission not catalogued", "id", res.Mission.ID, "type", res.Mission.Type.String())
		return nil, fmt.Errorf("%w: mission %d", ErrNotCatalogued, res.Mission.ID)
	}

	if err := m.deps.Backend.SaveMission(res.Info); err != nil {
		return nil, fmt.Errorf("failed to save mission %d: %w", res.Info.ID, err)
	}

	if m.deps.Stats != nil {
		if err := m.deps.Stats.WriteMission(res.Info, elapsed); err != nil {
			m.log.Error("Failed to write mission stats", "id", res.Info.ID, "error", err)
		}
	}
	return res.Info, nil
}

func (m *Manager) handleDescribe(e dispatcher.Event) (any, error) {
	if len(e.Args) == 0 {
		return nil, fmt.Errorf("describe: missing mission id")
	}
	id, err := strconv.Atoi(e.Args[0])
	if err != nil {
		return nil, fmt.Errorf("describe: invalid mission id %q: %w", e.Args[0], err)
	}

	info, err := m.deps.Backend.GetMission(id)
	if err != nil {
		return nil, err
	}
	return describe.Briefing(info), nil
}

func (m *Manager) handleList(e dispatcher.Event) (any, error) {
	return m.deps.Backend.ListMissions()
}
