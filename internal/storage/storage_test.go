// internal/storage/storage_test.go
package storage_test

import (
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/starshatterwars/missiongen/internal/config"
	"github.com/starshatterwars/missiongen/internal/describe"
	"github.com/starshatterwars/missiongen/internal/mission"
	"github.com/starshatterwars/missiongen/internal/storage"
	gormstorage "github.com/starshatterwars/missiongen/internal/storage/gorm"
	"github.com/starshatterwars/missiongen/internal/storage/memory"
	"github.com/starshatterwars/missiongen/pkg/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBackend_Memory(t *testing.T) {
	b, err := storage.NewBackend(config.StorageConfig{Type: "memory"}, nil, zerolog.Nop())
	require.NoError(t, err)
	assert.IsType(t, &memory.Backend{}, b)
}

func TestNewBackend_Unknown(t *testing.T) {
	_, err := storage.NewBackend(config.StorageConfig{Type: "redis"}, nil, zerolog.Nop())
	assert.EqualError(t, err, "unknown storage type: redis")
}

func TestNewBackend_SQLiteRoundTrip(t *testing.T) {
	cfg := config.StorageConfig{
		Type:   "sqlite",
		SQLite: config.SQLiteConfig{DBPath: filepath.Join(t.TempDir(), "catalog.db"), BatchSize: 5},
	}
	b, err := storage.NewBackend(cfg, nil, zerolog.Nop())
	require.NoError(t, err)
	require.IsType(t, &gormstorage.Backend{}, b)
	require.NoError(t, b.Init())

	m := mission.New(1, core.Sweep)
	p := &mission.Element{ID: 1000, Name: "Viper 1", Count: 2}
	m.AddElement(p)
	m.SetPlayer(p)
	require.NoError(t, b.SaveMission(&describe.Info{ID: 1, Key: uuid.New(), Name: "MSN-001 Sweep", Type: core.Sweep, Mission: m}))

	got, err := b.GetMission(1)
	require.NoError(t, err)
	assert.Equal(t, "MSN-001 Sweep", got.Name)

	_, err = b.GetMission(2)
	assert.ErrorIs(t, err, storage.ErrNotFound)
	assert.NoError(t, b.Close())
}
