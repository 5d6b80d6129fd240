// internal/storage/memory/memory.go
package memory

import (
	"fmt"
	"sort"
	"sync"

	"github.com/starshatterwars/missiongen/internal/config"
	"github.com/starshatterwars/missiongen/internal/describe"
	"github.com/starshatterwars/missiongen/internal/model"
)

// Backend keeps the mission catalog in memory. When an output directory is
// configured every saved mission is also dumped there as JSON.
type Backend struct {
	cfg      config.MemoryConfig
	missions map[int]*describe.Info

	lastExportPath string
	mu             sync.RWMutex
}

// New creates a new memory backend
func New(cfg config.MemoryConfig) *Backend {
	return &Backend{
		cfg:      cfg,
		missions: make(map[int]*describe.Info),
	}
}

// Init initializes the backend
func (b *Backend) Init() error {
	return nil
}

// Close cleans up resources
func (b *Backend) Close() error {
	return nil
}

// SaveMission stores info, replacing any entry with the same mission id.
func (b *Backend) SaveMission(info *describe.Info) error {
	if info == nil {
		return fmt.Errorf("nil mission info")
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	b.missions[info.ID] = info
	if b.cfg.OutputDir == "" {
		return nil
	}
	return b.exportJSON(info)
}

// GetMission returns the catalog entry for a mission id.
func (b *Backend) GetMission(id int) (*describe.Info, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	info, ok := b.missions[id]
	if !ok {
		return nil, fmt.Errorf("%w: %d", model.ErrMissionNotFound, id)
	}
	return info, nil
}

// ListMissions returns every entry ordered by mission id.
func (b *Backend) ListMissions() ([]*describe.Info, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	out := make([]*describe.Info, 0, len(b.missions))
	for _, info := range b.missions {
		out = append(out, info)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// LastExportPath is the file written by the most recent save.
func (b *Backend) LastExportPath() string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.lastExportPath
}
