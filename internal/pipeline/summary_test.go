package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hanbit-labs/korea-sensor-etl/internal/domain"
)

func TestBatchSummary_CountsBySource(t *testing.T) {
	sum := newBatchSummary()
	sum.recordLoaded([]domain.OutputEvent{
		{Headers: map[string]string{"source": "kepco"}},
		{Headers: map[string]string{"source": "kepco"}},
		{Headers: map[string]string{"source": "safetyalert"}},
	})
	sum.recordSkipped(domain.RawReading{Headers: map[string]string{"source": "kepco"}})
	sum.recordSkipped(domain.RawReading{})

	assert.Equal(t, 3, sum.totalLoaded())
	assert.Equal(t, 2, sum.totalSkipped())
	assert.Equal(t, map[string]int{"kepco": 2, "safetyalert": 1}, sum.loaded)
	assert.Equal(t, map[string]int{"kepco": 1, "unknown": 1}, sum.skipped)
}

func TestSourceOf(t *testing.T) {
	assert.Equal(t, "kepco", sourceOf(map[string]string{"source": "kepco"}))
	assert.Equal(t, "unknown", sourceOf(map[string]string{"source": ""}))
	assert.Equal(t, "unknown", sourceOf(nil))
}
