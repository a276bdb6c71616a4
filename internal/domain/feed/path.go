package feed

import (
	"strconv"
	"strings"
)

// Lookup walks nested objects by key.
func Lookup(rec Record, path ...string) (any, bool) {
	var cur any = rec
	for _, key := range path {
		obj, ok := cur.(map[string]any)
		if !ok {
			return nil, false
		}
		cur, ok = obj[key]
		if !ok {
			return nil, false
		}
	}
	return cur, true
}

// String returns the value at path rendered as text. Numbers are formatted
// without a trailing ".0". Missing, null and empty values yield "".
func String(rec Record, path ...string) string {
	v, ok := Lookup(rec, path...)
	if !ok || v == nil {
		return ""
	}
	switch val := v.(type) {
	case string:
		return strings.TrimSpace(val)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case bool:
		return strconv.FormatBool(val)
	default:
		return ""
	}
}

// Int returns the numeric value at path. Numeric strings are accepted.
func Int(rec Record, path ...string) (int, bool) {
	v, ok := Lookup(rec, path...)
	if !ok || v == nil {
		return 0, false
	}
	switch val := v.(type) {
	case float64:
		return int(val), true
	case int:
		return val, true
	case int64:
		return int(val), true
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(val))
		return n, err == nil
	default:
		return 0, false
	}
}

// Has reports whether every key is present on rec with a non-null value.
func Has(rec Record, keys ...string) bool {
	for _, key := range keys {
		if v, ok := rec[key]; !ok || v == nil {
			return false
		}
	}
	return true
}

func Object(rec Record, path ...string) Record {
	v, _ := Lookup(rec, path...)
	obj, _ := v.(map[string]any)
	return obj
}
