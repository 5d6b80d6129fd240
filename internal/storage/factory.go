// internal/storage/factory.go
package storage

import (
	"fmt"
	"log/slog"

	"github.com/rs/zerolog"
	"github.com/starshatterwars/missiongen/internal/config"
	"github.com/starshatterwars/missiongen/internal/database"
	gormstorage "github.com/starshatterwars/missiongen/internal/storage/gorm"
	"github.com/starshatterwars/missiongen/internal/storage/memory"
)

var (
	_ Backend    = (*memory.Backend)(nil)
	_ Exportable = (*memory.Backend)(nil)
	_ Backend    = (*gormstorage.Backend)(nil)
)

// NewBackend creates a storage backend based on configuration. SQL backends
// are connected and migrated before they are returned; the caller still
// calls Init.
func NewBackend(cfg config.StorageConfig, log *slog.Logger, dbLog zerolog.Logger) (Backend, error) {
	switch cfg.Type {
	case "postgres":
		m := database.NewManager(cfg.DB, cfg.SQLite.DBPath, dbLog)
		if err := m.Connect(); err != nil {
			return nil, err
		}
		if err := m.Setup(); err != nil {
			return nil, err
		}
		return gormstorage.New(gormstorage.Dependencies{DB: m.DB, BatchSize: cfg.SQLite.BatchSize, Logger: log, CloseDB: true}), nil
	case "sqlite":
		m := database.NewManager(cfg.DB, cfg.SQLite.DBPath, dbLog)
		if err := m.ConnectSQLite(); err != nil {
			return nil, err
		}
		if err := m.Setup(); err != nil {
			return nil, err
		}
		return gormstorage.New(gormstorage.Dependencies{DB: m.DB, BatchSize: cfg.SQLite.BatchSize, Logger: log, CloseDB: true}), nil
	case "memory", "":
		return memory.New(cfg.Memory), nil
	default:
		return nil, fmt.Errorf("unknown storage type: %s", cfg.Type)
	}
}
