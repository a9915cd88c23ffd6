package domain

import (
	"context"
	"encoding/json"
	"time"

	"github.com/hanbit-labs/korea-sensor-etl/internal/geo"
)

// RawReading represents an unprocessed message from the source topic.
type RawReading struct {
	Key       []byte
	Value     []byte
	Headers   map[string]string
	Topic     string
	Partition int
	Offset    int64
	Timestamp time.Time
	Commit    func(ctx context.Context) error
}

// Envelope is the flat JSON structure produced by the collector around each
// vendor payload.
type Envelope struct {
	Source      string          `json:"source"`
	DeviceID    string          `json:"device_id"`
	CollectedAt string          `json:"collected_at"`
	Payload     json.RawMessage `json:"payload"`
}

// FieldKind tags the type a field was extracted as.
type FieldKind string

const (
	KindString FieldKind = "string"
	KindNumber FieldKind = "number"
	KindDate   FieldKind = "date"
)

// FieldValue is one extracted field. Exactly one of Text, Number, or Date
// is meaningful, selected by Kind.
type FieldValue struct {
	Kind   FieldKind `json:"kind"`
	Text   string    `json:"text,omitempty"`
	Number float64   `json:"number,omitempty"`
	Date   time.Time `json:"date,omitzero"`
}

// RegionInfo is Korean administrative region detail attached by enrichment.
type RegionInfo struct {
	Code    string `json:"code,omitempty"`
	Name    string `json:"name,omitempty"`
	Sido    string `json:"sido,omitempty"`    // province level
	Sigungu string `json:"sigungu,omitempty"` // city/district level
}

// SensorReading is the normalized representation written to the sink.
type SensorReading struct {
	ID          string                `json:"id"`
	Source      string                `json:"source"`
	DeviceID    string                `json:"device_id"`
	CollectedAt time.Time             `json:"collected_at"`
	Fields      map[string]FieldValue `json:"fields"`
	Geo         *geo.Geodetic         `json:"geo,omitempty"` // WGS84
	Region      *RegionInfo           `json:"region,omitempty"`
	RegionSrc   string                `json:"region_source,omitempty"` // "resolved", "failed", ""

	RawPayload  []byte    `json:"-"`
	ProcessedAt time.Time `json:"processed_at"`
}

// OutputEvent is the serialized form destined for a sink.
type OutputEvent struct {
	Key     []byte
	Value   []byte
	Headers map[string]string
}
