package jsonpath

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// decode builds the same shapes the adapters hand to Resolve.
func decode(t *testing.T, raw string) map[string]any {
	t.Helper()
	var data map[string]any
	require.NoError(t, json.Unmarshal([]byte(raw), &data))
	return data
}

func TestResolve(t *testing.T) {
	data := decode(t, `{
		"items": ["a", "b", "c"],
		"data": {
			"history": [{"value": 10}, {"value": 20}],
			"meta": {"unit": "kWh"}
		},
		"count": 3
	}`)

	tests := []struct {
		name string
		path string
		want any
	}{
		{"top-level key", "count", 3.0},
		{"nested key", "data.meta.unit", "kWh"},
		{"bracket index", "items[0]", "a"},
		{"bracket negative index", "items[-1]", "c"},
		{"bare integer index", "items.1", "b"},
		{"bare negative index", "items.-1", "c"},
		{"index then key", "data.history[-1].value", 20.0},
		{"second to last", "data.history[-2].value", 10.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Resolve(data, tt.path))
		})
	}
}

func TestResolve_Absent(t *testing.T) {
	data := decode(t, `{
		"items": ["a"],
		"k": "v",
		"data": {"history": [{"value": 10}]}
	}`)

	tests := []struct {
		name string
		path string
	}{
		{"missing key", "missing.path"},
		{"index out of range", "items[5]"},
		{"negative index out of range", "items[-2]"},
		{"index into scalar", "k[0]"},
		{"bare index into map", "data.0"},
		{"key into scalar", "k.sub"},
		{"key into array", "items.sub"},
		{"malformed bracket index", "items[x]"},
		{"empty bracket", "items[]"},
		{"path past scalar", "data.history[0].value.deeper"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Nil(t, Resolve(data, tt.path))
		})
	}
}

func TestResolve_NilData(t *testing.T) {
	assert.Nil(t, Resolve(nil, "anything"))
}
