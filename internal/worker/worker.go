package worker

import (
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/starshatterwars/missiongen/internal/describe"
	"github.com/starshatterwars/missiongen/internal/generator"
	"github.com/starshatterwars/missiongen/internal/storage"
)

// ErrNotCatalogued is returned for generated missions without a player
// element; they have no catalog entry.
var ErrNotCatalogued = errors.New("mission has no player element")

// Stats records per-mission generation statistics.
type Stats interface {
	WriteMission(info *describe.Info, elapsed time.Duration) error
}

// Dependencies holds all dependencies for the worker manager
type Dependencies struct {
	Generator *generator.Generator
	Backend   storage.Backend
	// Stats is optional.
	Stats  Stats
	Logger *slog.Logger
	// QueueSize bounds the buffered generate command; 0 uses DefaultQueueSize.
	QueueSize int
}

// DefaultQueueSize is the generate buffer used when none is configured.
const DefaultQueueSize = 64

// Manager runs campaign commands against the generator and the catalog.
type Manager struct {
	deps Dependencies
	log  *slog.Logger

	mu             sync.Mutex
	generated      int
	failed         int
	lastGenerateMs float32
}

// Counts is a snapshot of the generate handler counters.
type Counts struct {
	Generated      int
	Failed         int
	LastGenerateMs float32
}

// NewManager creates a new worker manager
func NewManager(deps Dependencies) *Manager {
	if deps.QueueSize <= 0 {
		deps.QueueSize = DefaultQueueSize
	}
	log := deps.Logger
	if log == nil {
		log = slog.Default()
	}
	return &Manager{
		deps: deps,
		log:  log,
	}
}

// Counts returns the generate counters since the manager was created.
func (m *Manager) Counts() Counts {
	m.mu.Lock()
	defer m.mu.Unlock()
	return Counts{Generated: m.generated, Failed: m.failed, LastGenerateMs: m.lastGenerateMs}
}

func (m *Manager) record(elapsed time.Duration, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err != nil {
		m.failed++
		return
	}
	m.generated++
	m.lastGenerateMs = float32(elapsed.Microseconds()) / 1000
}
