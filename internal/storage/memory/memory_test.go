package memory

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/starshatterwars/missiongen/internal/config"
	"github.com/starshatterwars/missiongen/internal/describe"
	"github.com/starshatterwars/missiongen/internal/mission"
	"github.com/starshatterwars/missiongen/internal/model"
	"github.com/starshatterwars/missiongen/pkg/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newInfo(id int) *describe.Info {
	m := mission.New(id, core.Patrol)
	p := &mission.Element{ID: 1000, Name: "Courageous", GroupID: 12, Region: "Borova"}
	m.AddElement(p)
	m.SetPlayer(p)
	m.AddNavPoint(p, &mission.Instruction{Action: core.ActionPatrol, Region: "Borova", Location: core.Vec3{X: 1000}})
	return &describe.Info{ID: id, Key: uuid.New(), Name: describe.Name(m, nil), Type: core.Patrol, Mission: m}
}

func TestBackend_SaveGetList(t *testing.T) {
	b := New(config.MemoryConfig{})
	require.NoError(t, b.Init())

	require.NoError(t, b.SaveMission(newInfo(3)))
	require.NoError(t, b.SaveMission(newInfo(1)))
	require.NoError(t, b.SaveMission(newInfo(2)))

	got, err := b.GetMission(1)
	require.NoError(t, err)
	assert.Equal(t, "MSN-001 Patrol", got.Name)

	list, err := b.ListMissions()
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, []int{1, 2, 3}, []int{list[0].ID, list[1].ID, list[2].ID})

	assert.Empty(t, b.LastExportPath(), "no dump without an output directory")
	assert.NoError(t, b.Close())
}

func TestBackend_ReplaceSameID(t *testing.T) {
	b := New(config.MemoryConfig{})
	first, second := newInfo(5), newInfo(5)
	require.NoError(t, b.SaveMission(first))
	require.NoError(t, b.SaveMission(second))

	got, err := b.GetMission(5)
	require.NoError(t, err)
	assert.Equal(t, second.Key, got.Key)
}

func TestBackend_GetMissing(t *testing.T) {
	b := New(config.MemoryConfig{})
	_, err := b.GetMission(42)
	assert.ErrorIs(t, err, model.ErrMissionNotFound)
}

func TestBackend_SaveNil(t *testing.T) {
	assert.Error(t, New(config.MemoryConfig{}).SaveMission(nil))
}

func TestExportFileName(t *testing.T) {
	assert.Equal(t, "msn007.json", ExportFileName(7, false))
	assert.Equal(t, "msn123.json.gz", ExportFileName(123, true))
}

func TestBackend_Export(t *testing.T) {
	for _, compress := range []bool{false, true} {
		name := "plain"
		if compress {
			name = "gzip"
		}
		t.Run(name, func(t *testing.T) {
			dir := filepath.Join(t.TempDir(), "missions")
			b := New(config.MemoryConfig{OutputDir: dir, CompressOutput: compress})

			info := newInfo(4)
			require.NoError(t, b.SaveMission(info))

			path := b.LastExportPath()
			assert.Equal(t, filepath.Join(dir, ExportFileName(4, compress)), path)
			_, err := os.Stat(path)
			require.NoError(t, err)

			got, err := ReadExport(path)
			require.NoError(t, err)
			assert.Equal(t, info.Key, got.Key)
			assert.Equal(t, "MSN-004 Patrol", got.Name)
			require.NotNil(t, got.Mission)
			assert.Equal(t, "Courageous", got.Mission.Player().Name)
		})
	}
}

func TestReadExport_Errors(t *testing.T) {
	_, err := ReadExport(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	bad := filepath.Join(t.TempDir(), "bad.json.gz")
	require.NoError(t, os.WriteFile(bad, []byte("not gzip"), 0o644))
	_, err = ReadExport(bad)
	assert.ErrorContains(t, err, "gzip")
}
