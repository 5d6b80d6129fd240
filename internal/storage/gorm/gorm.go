// Package gormstorage implements the mission catalog on a GORM database,
// SQLite or Postgres. Saves are queued and written in batches; reads flush
// the queue first so they always see every saved mission.
package gormstorage

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/starshatterwars/missiongen/internal/describe"
	"github.com/starshatterwars/missiongen/internal/model"
	"github.com/starshatterwars/missiongen/internal/model/convert"
	"github.com/starshatterwars/missiongen/internal/queue"
	"gorm.io/gorm"
)

// DefaultBatchSize is used when a non-positive batch size is configured.
const DefaultBatchSize = 100

// Dependencies holds everything the GORM backend needs.
type Dependencies struct {
	DB        *gorm.DB
	BatchSize int
	Logger    *slog.Logger
	// Migrate runs AutoMigrate on Init. Leave false when the database
	// manager already set the schema up.
	Migrate bool
	// CloseDB closes the connection pool on Close.
	CloseDB bool
}

// Backend stores catalog entries through GORM.
type Backend struct {
	deps    Dependencies
	log     *slog.Logger
	pending *queue.Queue[model.MissionRecord]

	// flushMu serializes writers so batches land in save order.
	flushMu sync.Mutex
}

// New creates a GORM backend.
func New(deps Dependencies) *Backend {
	if deps.BatchSize <= 0 {
		deps.BatchSize = DefaultBatchSize
	}
	log := deps.Logger
	if log == nil {
		log = slog.Default()
	}
	return &Backend{
		deps:    deps,
		log:     log,
		pending: queue.New[model.MissionRecord](),
	}
}

// Init migrates the schema when requested.
func (b *Backend) Init() error {
	if b.deps.DB == nil {
		return fmt.Errorf("gorm backend: no database")
	}
	if !b.deps.Migrate {
		return nil
	}
	if err := b.deps.DB.AutoMigrate(model.DatabaseModels...); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}

// Close writes anything still queued.
func (b *Backend) Close() error {
	err := b.Flush()
	if b.deps.CloseDB && b.deps.DB != nil {
		if sqlDB, dbErr := b.deps.DB.DB(); dbErr == nil {
			err = errors.Join(err, sqlDB.Close())
		}
	}
	return err
}

// SaveMission queues info and writes a batch once the queue is full.
func (b *Backend) SaveMission(info *describe.Info) error {
	if info == nil {
		return fmt.Errorf("nil mission info")
	}
	rec, err := convert.InfoToRecord(info)
	if err != nil {
		return err
	}
	if b.pending.Push(rec) < b.deps.BatchSize {
		return nil
	}
	return b.Flush()
}

// Pending returns the number of queued records.
func (b *Backend) Pending() int {
	return b.pending.Len()
}

// Flush writes every queued record.
func (b *Backend) Flush() error {
	b.flushMu.Lock()
	defer b.flushMu.Unlock()

	for !b.pending.Empty() {
		batch := b.pending.PopBatch(b.deps.BatchSize)
		if err := b.deps.DB.Create(&batch).Error; err != nil {
			b.pending.Requeue(batch...)
			return fmt.Errorf("failed to write %d missions: %w", len(batch), err)
		}
		b.log.Debug("Wrote mission batch", "count", len(batch))
	}
	return nil
}

// GetMission returns the most recently saved entry for a mission id.
func (b *Backend) GetMission(id int) (*describe.Info, error) {
	if err := b.Flush(); err != nil {
		return nil, err
	}

	var rec model.MissionRecord
	err := b.deps.DB.Where("mission_id = ?", id).Order("id desc").First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: %d", model.ErrMissionNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load mission %d: %w", id, err)
	}
	return convert.RecordToInfo(rec)
}

// ListMissions returns every stored entry ordered by mission id.
func (b *Backend) ListMissions() ([]*describe.Info, error) {
	if err := b.Flush(); err != nil {
		return nil, err
	}

	var recs []model.MissionRecord
	if err := b.deps.DB.Order("mission_id, id").Find(&recs).Error; err != nil {
		return nil, fmt.Errorf("failed to list missions: %w", err)
	}
	out := make([]*describe.Info, 0, len(recs))
	for _, rec := range recs {
		info, err := convert.RecordToInfo(rec)
		if err != nil {
			return nil, err
		}
		out = append(out, info)
	}
	return out, nil
}

// Elements returns the stored element rows of a mission with their nav
// points in flight order.
func (b *Backend) Elements(id int) ([]model.ElementRecord, error) {
	if err := b.Flush(); err != nil {
		return nil, err
	}

	var rec model.MissionRecord
	err := b.deps.DB.
		Preload("Elements", func(db *gorm.DB) *gorm.DB { return db.Order("element_id") }).
		Preload("Elements.NavPoints", func(db *gorm.DB) *gorm.DB { return db.Order("seq") }).
		Where("mission_id = ?", id).Order("id desc").First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: %d", model.ErrMissionNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load elements of mission %d: %w", id, err)
	}
	return rec.Elements, nil
}
