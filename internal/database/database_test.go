package database

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/starshatterwars/missiongen/internal/config"
	"github.com/starshatterwars/missiongen/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostgresDSN(t *testing.T) {
	dsn := PostgresDSN(config.DBConfig{
		Host: "db.local", Port: "5432", Username: "sw", Password: "secret", Database: "missiongen",
	})
	assert.Equal(t, "host=db.local port=5432 user=sw password=secret dbname=missiongen sslmode=disable", dsn)
}

func TestConnectSQLite_Setup(t *testing.T) {
	var buf bytes.Buffer
	path := filepath.Join(t.TempDir(), "catalog.db")
	m := NewManager(config.DBConfig{}, path, zerolog.New(&buf))

	require.NoError(t, m.ConnectSQLite())
	t.Cleanup(func() { _ = m.Close() })
	assert.True(t, m.IsValid)
	assert.Contains(t, buf.String(), "Using local SQLite DB")

	require.NoError(t, m.Setup())
	for _, tbl := range model.DatabaseModels {
		assert.True(t, m.DB.Migrator().HasTable(tbl))
	}
}

func TestConnect_FallsBackToSQLite(t *testing.T) {
	var buf bytes.Buffer
	path := filepath.Join(t.TempDir(), "fallback.db")
	cfg := config.DBConfig{Host: "127.0.0.1", Port: "1", Username: "x", Password: "x", Database: "x"}
	m := NewManager(cfg, path, zerolog.New(&buf))

	require.NoError(t, m.Connect())
	t.Cleanup(func() { _ = m.Close() })
	assert.True(t, m.ShouldSaveLocal)
	assert.True(t, m.IsValid)
	assert.Equal(t, "sqlite", m.DB.Dialector.Name())
	assert.Contains(t, buf.String(), "trying SQLite")
}

func TestSetup_NotConnected(t *testing.T) {
	m := NewManager(config.DBConfig{}, "", zerolog.Nop())
	assert.Error(t, m.Setup())
	assert.NoError(t, m.Close())
}
