// Package jsonpath resolves dotted path expressions against decoded JSON.
//
// It exists for reading untrusted, shape-varying upstream payloads: a
// missing key, a wrong type, or an out-of-range index is an expected
// outcome and yields nil, never an error or a panic.
package jsonpath

import (
	"strconv"
	"strings"
)

// Resolve walks data along a dot-separated path and returns the value at
// the end, or nil if any segment cannot be resolved.
//
// Segments address maps by key, and arrays either by a bracketed index on a
// key ("history[0]", "history[-1]") or by a bare integer segment
// ("items.0", "items.-1"). Negative indices count from the end.
func Resolve(data any, path string) any {
	value := data

	for _, key := range strings.Split(path, ".") {
		if value == nil {
			return nil
		}

		switch {
		case strings.Contains(key, "[") && strings.HasSuffix(key, "]"):
			mapKey, idxStr, _ := strings.Cut(key, "[")
			idx, err := strconv.Atoi(strings.TrimSuffix(idxStr, "]"))
			if err != nil {
				return nil
			}
			value = index(lookup(value, mapKey), idx)

		case isInteger(key):
			idx, _ := strconv.Atoi(key)
			value = index(value, idx)

		default:
			value = lookup(value, key)
		}
	}

	return value
}

// lookup reads a map key; nil for non-maps and missing keys.
func lookup(value any, key string) any {
	m, ok := value.(map[string]any)
	if !ok {
		return nil
	}
	return m[key]
}

// index reads a sequence element, counting from the end for negative
// indices; nil for non-sequences and out-of-range indices.
func index(value any, idx int) any {
	seq, ok := value.([]any)
	if !ok {
		return nil
	}
	if idx < 0 {
		idx += len(seq)
	}
	if idx < 0 || idx >= len(seq) {
		return nil
	}
	return seq[idx]
}

func isInteger(s string) bool {
	trimmed := strings.TrimPrefix(s, "-")
	if trimmed == "" {
		return false
	}
	for _, r := range trimmed {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
