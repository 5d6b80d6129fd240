package generator

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const instrumentationName = "github.com/starshatterwars/missiongen/internal/generator"

func meter() metric.Meter {
	return otel.Meter(instrumentationName)
}

type metrics struct {
	generated metric.Int64Counter
	failed    metric.Int64Counter
	fallbacks metric.Int64Counter
	targets   metric.Int64Counter
}

func newMetrics() (*metrics, error) {
	m := meter()
	var (
		out metrics
		err error
	)

	out.generated, err = m.Int64Counter(
		"missiongen.missions.generated",
		metric.WithDescription("Missions generated"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating generated counter: %w", err)
	}

	out.failed, err = m.Int64Counter(
		"missiongen.missions.failed",
		metric.WithDescription("Mission requests that failed"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating failed counter: %w", err)
	}

	out.fallbacks, err = m.Int64Counter(
		"missiongen.templates.fallback",
		metric.WithDescription("Templated missions rebuilt after failing validation"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating fallback counter: %w", err)
	}

	out.targets, err = m.Int64Counter(
		"missiongen.targets.placed",
		metric.WithDescription("Opposing target groups placed"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating targets counter: %w", err)
	}

	return &out, nil
}

func (m *metrics) recordGenerated(role, missionType string, templated bool) {
	m.generated.Add(context.Background(), 1, metric.WithAttributes(
		attribute.String("role", role),
		attribute.String("type", missionType),
		attribute.Bool("templated", templated),
	))
}

func (m *metrics) recordFailed(role string, err error) {
	m.failed.Add(context.Background(), 1, metric.WithAttributes(
		attribute.String("role", role),
		attribute.String("reason", reason(err)),
	))
}

func (m *metrics) recordFallback(role string) {
	m.fallbacks.Add(context.Background(), 1, metric.WithAttributes(attribute.String("role", role)))
}

func (m *metrics) recordTargets(role string, n int) {
	if n > 0 {
		m.targets.Add(context.Background(), int64(n), metric.WithAttributes(attribute.String("role", role)))
	}
}
