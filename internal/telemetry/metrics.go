// internal/telemetry/metrics.go
package telemetry

import (
	"context"
	"fmt"

	"space-war/internal/event"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const instrumentationName = "space-war/internal/telemetry"

// Metrics считает события раунда. Без настроенного провайдера OTel
// глобальный meter ничего не делает.
type Metrics struct {
	resolved  metric.Int64Counter
	ended     metric.Int64Counter
	destroyed metric.Int64Counter
	fired     metric.Int64Counter
}

// New creates the counters on m, or on the global meter when m is nil.
func New(m metric.Meter) (*Metrics, error) {
	if m == nil {
		m = otel.Meter(instrumentationName)
	}

	var (
		mt  Metrics
		err error
	)
	mt.resolved, err = m.Int64Counter("spacewar.rounds.resolved",
		metric.WithDescription("Rounds that reached an outcome"))
	if err != nil {
		return nil, fmt.Errorf("creating resolved counter: %w", err)
	}
	mt.ended, err = m.Int64Counter("spacewar.rounds.ended",
		metric.WithDescription("Rounds whose countdown expired"))
	if err != nil {
		return nil, fmt.Errorf("creating ended counter: %w", err)
	}
	mt.destroyed, err = m.Int64Counter("spacewar.craft.destroyed",
		metric.WithDescription("Crafts destroyed"))
	if err != nil {
		return nil, fmt.Errorf("creating destroyed counter: %w", err)
	}
	mt.fired, err = m.Int64Counter("spacewar.projectiles.fired",
		metric.WithDescription("Projectiles fired"))
	if err != nil {
		return nil, fmt.Errorf("creating fired counter: %w", err)
	}
	return &mt, nil
}

// Subscribe registers the metrics for every round event.
func (mt *Metrics) Subscribe(d *event.Dispatcher) {
	d.SubscribeAll(mt, event.ProjectileFired, event.CraftDestroyed, event.RoundResolved, event.RoundEnded)
}

func (mt *Metrics) OnEvent(e event.Event) {
	ctx := context.Background()
	switch data := e.Data.(type) {
	case event.ProjectileFiredData:
		mt.fired.Add(ctx, 1, metric.WithAttributes(attribute.String("side", data.Side.String())))
	case event.CraftDestroyedData:
		mt.destroyed.Add(ctx, 1, metric.WithAttributes(attribute.String("side", data.Side.String())))
	case event.RoundResolvedData:
		mt.resolved.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", data.Outcome.String())))
	case event.RoundEndedData:
		mt.ended.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", data.Outcome.String())))
	}
}
