package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/hanbit-labs/korea-sensor-etl/internal/domain"
	"github.com/hanbit-labs/korea-sensor-etl/internal/observability"
)

// ReadingTransformer implements Transformer using the domain normalization
// functions with optional region enrichment.
type ReadingTransformer struct {
	resolver domain.RegionResolver
	logger   *slog.Logger
	metrics  *observability.Metrics
}

// NewTransformer creates a ReadingTransformer. Pass a nil resolver to
// disable region enrichment.
func NewTransformer(resolver domain.RegionResolver, logger *slog.Logger, metrics *observability.Metrics) *ReadingTransformer {
	return &ReadingTransformer{
		resolver: resolver,
		logger:   logger,
		metrics:  metrics,
	}
}

func (t *ReadingTransformer) Transform(ctx context.Context, raw domain.RawReading) (domain.OutputEvent, error) {
	reading, err := domain.ParseRawReading(raw)
	if err != nil {
		return domain.OutputEvent{}, err
	}

	reading = domain.NormalizeReading(reading)
	reading = domain.EnrichWithRegion(ctx, reading, t.resolver, t.logger)

	t.observe(reading)

	return serializeReading(reading)
}

func (t *ReadingTransformer) observe(reading domain.SensorReading) {
	t.metrics.ReadingsBySource.WithLabelValues(reading.Source).Inc()
	t.metrics.FieldsExtracted.WithLabelValues(reading.Source).Add(float64(len(reading.Fields)))

	if spec, ok := domain.SpecFor(reading.Source); ok && spec.Coords != nil {
		outcome := "converted"
		if reading.Geo == nil {
			outcome = "dropped"
		}
		t.metrics.CoordConversions.WithLabelValues(outcome).Inc()
	}
	if reading.RegionSrc != "" {
		t.metrics.RegionRequests.WithLabelValues(reading.RegionSrc).Inc()
	}
}

// serializeReading marshals a SensorReading into an output event keyed by
// its deterministic ID.
func serializeReading(reading domain.SensorReading) (domain.OutputEvent, error) {
	data, err := json.Marshal(reading)
	if err != nil {
		return domain.OutputEvent{}, fmt.Errorf("serialize reading: %w", err)
	}
	return domain.OutputEvent{
		Key:   []byte(reading.ID),
		Value: data,
		Headers: map[string]string{
			"source":       reading.Source,
			"processed_at": reading.ProcessedAt.Format(time.RFC3339),
		},
	}, nil
}
