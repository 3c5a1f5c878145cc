package utils

import (
	"fmt"
	"strconv"
)

// Helpers for flattening the backend's inconsistent response shapes. The
// upstream API has no fixed contract: lists arrive as bare arrays or nested
// under "items", "data", or a resource-specific key, and the same concept is
// spelled differently across endpoints ("name" vs "fullName" vs "userName").
// Everything funnels through here once, at the client boundary, so the rest of
// the service works with typed DTOs.

// UnwrapData peels the optional {"data": ...} envelope off a parsed payload.
func UnwrapData(payload interface{}) interface{} {
	m, ok := payload.(map[string]interface{})
	if !ok {
		return payload
	}
	if data, ok := m["data"]; ok && data != nil {
		return data
	}
	return payload
}

// NormalizeList coerces a payload into a flat slice of objects, trying the
// bare-array shape first, then the common envelope keys, then any extra
// resource-specific keys the caller knows about.
func NormalizeList(payload interface{}, extraKeys ...string) []map[string]interface{} {
	switch v := payload.(type) {
	case nil:
		return nil
	case []interface{}:
		return toObjectSlice(v)
	case map[string]interface{}:
		for _, key := range append([]string{"items", "data"}, extraKeys...) {
			if list, ok := v[key].([]interface{}); ok {
				return toObjectSlice(list)
			}
		}
	}
	return nil
}

func toObjectSlice(list []interface{}) []map[string]interface{} {
	out := make([]map[string]interface{}, 0, len(list))
	for _, item := range list {
		if m, ok := item.(map[string]interface{}); ok {
			out = append(out, m)
		}
	}
	return out
}

// PickString returns the first present, non-empty candidate field as a string.
// Numeric values are stringified: some endpoints return counters as numbers
// where others return them as strings.
func PickString(source map[string]interface{}, keys ...string) string {
	for _, key := range keys {
		value, ok := source[key]
		if !ok || value == nil {
			continue
		}
		switch v := value.(type) {
		case string:
			if v != "" {
				return v
			}
		case float64:
			return strconv.FormatFloat(v, 'f', -1, 64)
		case bool:
			return strconv.FormatBool(v)
		}
	}
	return ""
}

func PickFloat(source map[string]interface{}, keys ...string) float64 {
	for _, key := range keys {
		value, ok := source[key]
		if !ok || value == nil {
			continue
		}
		switch v := value.(type) {
		case float64:
			return v
		case string:
			if parsed, err := strconv.ParseFloat(v, 64); err == nil {
				return parsed
			}
		}
	}
	return 0
}

func PickInt(source map[string]interface{}, keys ...string) int {
	return int(PickFloat(source, keys...))
}

func PickBool(source map[string]interface{}, keys ...string) bool {
	for _, key := range keys {
		if v, ok := source[key].(bool); ok {
			return v
		}
	}
	return false
}

func PickMap(source map[string]interface{}, keys ...string) map[string]interface{} {
	for _, key := range keys {
		if v, ok := source[key].(map[string]interface{}); ok {
			return v
		}
	}
	return nil
}

func PickStringSlice(source map[string]interface{}, keys ...string) []string {
	for _, key := range keys {
		list, ok := source[key].([]interface{})
		if !ok {
			continue
		}
		out := make([]string, 0, len(list))
		for _, item := range list {
			out = append(out, fmt.Sprintf("%v", item))
		}
		return out
	}
	return nil
}
