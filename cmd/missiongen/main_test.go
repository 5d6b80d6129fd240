package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"
	"github.com/starshatterwars/missiongen/internal/config"
	"github.com/starshatterwars/missiongen/internal/monitor"
	"github.com/starshatterwars/missiongen/internal/roster/rostertest"
	"github.com/starshatterwars/missiongen/internal/storage/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitArgs(t *testing.T) {
	tests := []struct {
		line string
		want []string
	}{
		{"type=PATROL group=12", []string{"type=PATROL", "group=12"}},
		{"  type=PATROL\t group=12  ", []string{"type=PATROL", "group=12"}},
		{`type=PATROL region="Ostara Prime" start=6h`, []string{"type=PATROL", `region="Ostara Prime"`, "start=6h"}},
		{`{"type":"PATROL","primaryGroup":12}`, []string{`{"type":"PATROL","primaryGroup":12}`}},
	}
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			got, err := splitArgs(tt.line)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := splitArgs(`region="Ostara`)
	assert.ErrorContains(t, err, "unterminated quote")
}

// workspace writes a config file and the fixture campaign into a temp dir
// and returns the base flags for run.
func workspace(t *testing.T) (dir string, flags []string) {
	t.Helper()
	t.Cleanup(viper.Reset)

	dir = t.TempDir()
	campaign := filepath.Join(dir, "campaign.yaml")
	require.NoError(t, os.WriteFile(campaign, rostertest.YAML(), 0o644))

	cfg, err := json.Marshal(map[string]any{
		"storage": map[string]any{
			"memory": map[string]any{"outputDir": filepath.Join(dir, "missions"), "compressOutput": false},
		},
	})
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, config.FileName), cfg, 0o644))

	return dir, []string{
		"--config-dir", dir,
		"--campaign", campaign,
		"--logs-dir", filepath.Join(dir, "logs"),
		"--seed", "7",
	}
}

func TestRun_Version(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run(context.Background(), []string{"--version"}, nil, &out))
	assert.True(t, strings.HasPrefix(out.String(), "missiongen "+CurrentVersion))
}

func TestRun_Generate(t *testing.T) {
	dir, flags := workspace(t)

	var out bytes.Buffer
	args := append(flags, "generate", "type=PATROL", "group=12")
	require.NoError(t, run(context.Background(), args, nil, &out))

	assert.True(t, strings.HasPrefix(out.String(), "MSN-001 Patrol\n"), out.String())
	assert.Contains(t, out.String(), "Sector: Borova, Ostara system")

	dumped, err := memory.ReadExport(filepath.Join(dir, "missions", memory.ExportFileName(1, false)))
	require.NoError(t, err)
	assert.Equal(t, "MSN-001 Patrol", dumped.Name)

	logs, err := filepath.Glob(filepath.Join(dir, "logs", "missiongen.*.log"))
	require.NoError(t, err)
	require.Len(t, logs, 1)
	data, err := os.ReadFile(logs[0])
	require.NoError(t, err)
	assert.Contains(t, string(data), "Mission created")
	assert.Contains(t, string(data), `name="MSN-001 Patrol"`)
}

func TestRun_Batch(t *testing.T) {
	dir, flags := workspace(t)

	stdin := strings.NewReader("# two patrols\ntype=PATROL group=12\n\n{\"type\":\"PATROL\",\"primaryGroup\":12}\ngroup=999\n")
	var out bytes.Buffer
	require.NoError(t, run(context.Background(), flags, stdin, &out))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 2, out.String())
	assert.True(t, strings.HasPrefix(lines[0], "MSN-001 Patrol"))
	assert.True(t, strings.HasPrefix(lines[1], "MSN-002 Patrol"))
	assert.Contains(t, lines[0], "PATROL")

	status, err := os.ReadFile(filepath.Join(dir, "logs", monitor.StatusFileName))
	require.NoError(t, err)
	assert.Contains(t, string(status), `"catalogued": 2`)
	assert.Contains(t, string(status), `"failed": 1`)
}

func TestRun_Errors(t *testing.T) {
	t.Run("unknown command", func(t *testing.T) {
		_, flags := workspace(t)
		err := run(context.Background(), append(flags, "launch"), nil, &bytes.Buffer{})
		assert.EqualError(t, err, `unknown command "launch"`)
	})

	t.Run("missing campaign", func(t *testing.T) {
		dir, flags := workspace(t)
		flags[3] = filepath.Join(dir, "nowhere.yaml")
		err := run(context.Background(), append(flags, "list"), nil, &bytes.Buffer{})
		assert.ErrorContains(t, err, "failed to load campaign")
	})

	t.Run("unknown role", func(t *testing.T) {
		_, flags := workspace(t)
		err := run(context.Background(), append(flags, "--role", "marine", "list"), nil, &bytes.Buffer{})
		assert.ErrorContains(t, err, "unknown generator role")
	})

	t.Run("describe missing", func(t *testing.T) {
		_, flags := workspace(t)
		err := run(context.Background(), append(flags, "describe", "4"), nil, &bytes.Buffer{})
		assert.ErrorContains(t, err, "mission not found")
	})
}
