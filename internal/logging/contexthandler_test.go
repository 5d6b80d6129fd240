package logging

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/starshatterwars/missiongen/pkg/core"
	"github.com/stretchr/testify/assert"
)

type fakeSource struct {
	id int
	t  core.MissionType
	ok bool
}

func (f *fakeSource) Current() (int, core.MissionType, bool) { return f.id, f.t, f.ok }

func TestMissionContext(t *testing.T) {
	var buf bytes.Buffer
	src := &fakeSource{}
	logger := slog.New(NewContextHandler(slog.NewTextHandler(&buf, nil), MissionContext(src)))

	logger.Info("idle")
	assert.NotContains(t, buf.String(), "mission_id")

	buf.Reset()
	*src = fakeSource{id: 7, t: core.EscortFreight, ok: true}
	logger.Warn("No zone for group", "group", "Drifters")

	out := buf.String()
	assert.Contains(t, out, "mission_id=7")
	assert.Contains(t, out, "mission_type=ESCORT_FREIGHT")
	assert.Contains(t, out, "group=Drifters")
}

func TestContextHandler_WithAttrsAndGroup(t *testing.T) {
	var buf bytes.Buffer
	src := &fakeSource{id: 3, t: core.Patrol, ok: true}
	h := NewContextHandler(slog.NewTextHandler(&buf, nil), MissionContext(src))

	slog.New(h.WithAttrs([]slog.Attr{slog.String("role", "starship")})).Info("placed")
	assert.Contains(t, buf.String(), "role=starship")
	assert.Contains(t, buf.String(), "mission_id=3")

	assert.Same(t, h, h.WithGroup(""))

	buf.Reset()
	slog.New(h.WithGroup("gen")).Info("placed", "n", 2)
	assert.Contains(t, buf.String(), "gen.n=2")
}

func TestContextHandler_NilProvider(t *testing.T) {
	var buf bytes.Buffer
	slog.New(NewContextHandler(slog.NewTextHandler(&buf, nil), nil)).Info("plain")
	assert.Contains(t, buf.String(), "plain")
}
