package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/hanbit-labs/korea-sensor-etl/internal/dateparse"
	"github.com/hanbit-labs/korea-sensor-etl/internal/geo"
	"github.com/hanbit-labs/korea-sensor-etl/internal/jsonpath"
)

// ParseRawReading deserializes a RawReading's value into a SensorReading
// skeleton. The vendor payload is kept raw; extraction happens in
// NormalizeReading. A missing or unregistered source is an error because it
// indicates a misconfigured collector, not bad vendor data.
func ParseRawReading(raw RawReading) (SensorReading, error) {
	var env Envelope
	if err := json.Unmarshal(raw.Value, &env); err != nil {
		return SensorReading{}, fmt.Errorf("parse raw reading: %w", err)
	}
	if _, ok := SpecFor(env.Source); !ok {
		return SensorReading{}, fmt.Errorf("parse raw reading: unknown source %q", env.Source)
	}

	collectedAt := raw.Timestamp
	if t, ok := dateparse.Parse(env.CollectedAt); ok {
		collectedAt = t
	} else if t, err := time.Parse(time.RFC3339, env.CollectedAt); err == nil {
		collectedAt = t
	}

	return SensorReading{
		ID:          generateID(env.Source, env.DeviceID, collectedAt),
		Source:      env.Source,
		DeviceID:    env.DeviceID,
		CollectedAt: collectedAt,
		RawPayload:  env.Payload,
	}, nil
}

// NormalizeReading extracts the source's configured fields from the raw
// vendor payload, parses date fields into Seoul time, and attaches a WGS84
// position when the source carries coordinates. Fields that cannot be
// resolved or parsed are absent from the result; a reading with no
// resolvable fields is still a valid (empty) reading.
func NormalizeReading(reading SensorReading) SensorReading {
	reading.Fields = map[string]FieldValue{}
	reading.ProcessedAt = clock.Now()

	spec, ok := SpecFor(reading.Source)
	if !ok {
		return reading
	}

	var payload map[string]any
	if err := json.Unmarshal(reading.RawPayload, &payload); err != nil {
		return reading
	}

	for _, f := range spec.Fields {
		if v, ok := extractField(payload, f); ok {
			reading.Fields[f.Name] = v
		}
	}

	if spec.Coords != nil {
		reading.Geo = extractGeo(payload, spec.Coords)
	}

	return reading
}

// extractField resolves one field path and coerces the value to the
// configured kind. Absent or unparseable values report ok=false.
func extractField(payload map[string]any, f FieldSpec) (FieldValue, bool) {
	raw := jsonpath.Resolve(payload, f.Path)
	if raw == nil {
		return FieldValue{}, false
	}

	switch f.Kind {
	case KindString:
		s, ok := asString(raw)
		if !ok || s == "" {
			return FieldValue{}, false
		}
		return FieldValue{Kind: KindString, Text: s}, true

	case KindNumber:
		n, ok := asNumber(raw)
		if !ok {
			return FieldValue{}, false
		}
		return FieldValue{Kind: KindNumber, Number: n}, true

	case KindDate:
		s, ok := asString(raw)
		if !ok {
			return FieldValue{}, false
		}
		t, ok := dateparse.Parse(s)
		if !ok {
			return FieldValue{}, false
		}
		return FieldValue{Kind: KindDate, Date: t}, true

	default:
		return FieldValue{}, false
	}
}

// extractGeo reads a coordinate pair, validates it against the Korea
// bounds for its system, and converts to WGS84. Anything out of range or
// unresolvable yields nil.
func extractGeo(payload map[string]any, cs *CoordSpec) *geo.Geodetic {
	x, okX := asNumber(jsonpath.Resolve(payload, cs.XPath))
	y, okY := asNumber(jsonpath.Resolve(payload, cs.YPath))
	if !okX || !okY {
		return nil
	}

	var c geo.Coordinate
	switch cs.System {
	case geo.SystemWCONGNAMUL:
		c = geo.FromPlanar(x, y)
	case geo.SystemWGS84:
		c = geo.FromGeodetic(x, y)
	default:
		return nil
	}

	if !geo.Valid(c) {
		return nil
	}

	out, err := geo.Convert(c, geo.SystemWGS84)
	if err != nil {
		return nil
	}
	return &out.Geo
}

// asString accepts strings and stringifies JSON numbers; vendors are not
// consistent about quoting.
func asString(v any) (string, bool) {
	switch s := v.(type) {
	case string:
		return strings.TrimSpace(s), true
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64), true
	default:
		return "", false
	}
}

// asNumber accepts JSON numbers and numeric strings, tolerating thousands
// separators ("1,234") and surrounding whitespace.
func asNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case string:
		cleaned := strings.ReplaceAll(strings.TrimSpace(n), ",", "")
		if cleaned == "" {
			return 0, false
		}
		f, err := strconv.ParseFloat(cleaned, 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

// generateID produces a deterministic ID from the reading's key fields.
// Reprocessing the same raw message yields the same ID, which keeps
// downstream upserts idempotent.
func generateID(source, deviceID string, collectedAt time.Time) string {
	input := fmt.Sprintf("%s|%s|%d", source, deviceID, collectedAt.Unix())
	hash := sha256.Sum256([]byte(input))
	short := hex.EncodeToString(hash[:8])
	if source == "" {
		return short
	}
	return source + "-" + short
}
