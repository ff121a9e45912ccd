package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
)

// Decode failure taxonomy. Every decoder wraps one of these sentinels so
// callers can classify failures with errors.Is.
var (
	ErrDecode       = errors.New("malformed payload")
	ErrMissingField = errors.New("missing required field")
	ErrUnknownField = errors.New("unknown field")
	ErrWrongType    = errors.New("wrong field type")
	ErrInvalidEnum  = errors.New("invalid enum value")
)

// Mapper is implemented by every wire model.
type Mapper interface {
	ToMap() map[string]any
}

type fieldKind int

const (
	kindString fieldKind = iota
	kindInt
	kindBool
	kindList
	kindObject
	kindAny
)

// fieldSpec is one entry in a per-type field schema table. The tables
// drive key-set validation; value extraction stays explicit per type.
type fieldSpec struct {
	name     string
	required bool
	kind     fieldKind
}

// checkKeys validates a decoded mapping against a schema table: every
// required field must be present, and no key may fall outside the table.
func checkKeys(record string, m map[string]any, schema []fieldSpec) error {
	for _, f := range schema {
		if !f.required {
			continue
		}
		if _, ok := m[f.name]; !ok {
			return fmt.Errorf("%s: %w: %s", record, ErrMissingField, f.name)
		}
	}
	for k := range m {
		known := false
		for _, f := range schema {
			if f.name == k {
				known = true
				break
			}
		}
		if !known {
			return fmt.Errorf("%s: %w: %s", record, ErrUnknownField, k)
		}
	}
	return nil
}

func stringField(record string, m map[string]any, name string) (string, error) {
	v, ok := m[name].(string)
	if !ok {
		return "", fmt.Errorf("%s.%s: %w: expected string, got %T", record, name, ErrWrongType, m[name])
	}
	return v, nil
}

func optStringField(record string, m map[string]any, name string) (*string, error) {
	raw, ok := m[name]
	if !ok || raw == nil {
		return nil, nil
	}
	v, ok := raw.(string)
	if !ok {
		return nil, fmt.Errorf("%s.%s: %w: expected string, got %T", record, name, ErrWrongType, raw)
	}
	return &v, nil
}

func intField(record string, m map[string]any, name string) (int, error) {
	v, ok := intFromAny(m[name])
	if !ok {
		return 0, fmt.Errorf("%s.%s: %w: expected integer, got %T", record, name, ErrWrongType, m[name])
	}
	return v, nil
}

func optIntField(record string, m map[string]any, name string) (*int, error) {
	raw, ok := m[name]
	if !ok || raw == nil {
		return nil, nil
	}
	v, ok := intFromAny(raw)
	if !ok {
		return nil, fmt.Errorf("%s.%s: %w: expected integer, got %T", record, name, ErrWrongType, raw)
	}
	return &v, nil
}

// boolField returns def when the key is absent or null.
func boolField(record string, m map[string]any, name string, def bool) (bool, error) {
	raw, ok := m[name]
	if !ok || raw == nil {
		return def, nil
	}
	v, ok := raw.(bool)
	if !ok {
		return false, fmt.Errorf("%s.%s: %w: expected bool, got %T", record, name, ErrWrongType, raw)
	}
	return v, nil
}

// listField returns a non-nil slice; an absent or null key decodes as an
// empty list.
func listField(record string, m map[string]any, name string) ([]any, error) {
	raw, ok := m[name]
	if !ok || raw == nil {
		return []any{}, nil
	}
	v, ok := raw.([]any)
	if !ok {
		return nil, fmt.Errorf("%s.%s: %w: expected list, got %T", record, name, ErrWrongType, raw)
	}
	return v, nil
}

func objectField(record string, m map[string]any, name string) (map[string]any, error) {
	v, ok := m[name].(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%s.%s: %w: expected object, got %T", record, name, ErrWrongType, m[name])
	}
	return v, nil
}

// intFromAny accepts the numeric representations a decoded JSON or
// programmatic mapping may carry. Non-integral floats are rejected.
func intFromAny(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		if n != math.Trunc(n) {
			return 0, false
		}
		return int(n), true
	case json.Number:
		i, err := n.Int64()
		if err != nil {
			return 0, false
		}
		return int(i), true
	default:
		return 0, false
	}
}

// encodeList converts a mixed list for the wire: record elements are
// expanded through ToMap, everything else passes through unchanged. The
// result is always non-nil.
func encodeList(list []any) []any {
	out := make([]any, len(list))
	for i, item := range list {
		if m, ok := item.(Mapper); ok {
			out[i] = m.ToMap()
		} else {
			out[i] = item
		}
	}
	return out
}

// decodeObject parses JSON text that must be a single object.
func decodeObject(data []byte) (map[string]any, error) {
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	if m == nil {
		return nil, fmt.Errorf("%w: expected a JSON object", ErrDecode)
	}
	return m, nil
}
