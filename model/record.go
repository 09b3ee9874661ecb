package model

import (
	"fmt"
	"strconv"
	"time"
)

// Record is one equipment record: an opaque mapping from field key to value.
// The engine never assumes a fixed shape beyond the keys named in the field
// schema. Values arrive from JSON, so numbers are float64 and dates are
// ISO-formatted strings.
type Record map[string]any

// String returns the record's value for key rendered as a string. ok is
// false when the key is absent, nil, or renders to the empty string.
func (r Record) String(key string) (string, bool) {
	v, exists := r[key]
	if !exists || v == nil {
		return "", false
	}
	s, isStr := v.(string)
	if !isStr {
		s = fmt.Sprint(v)
	}
	if s == "" {
		return "", false
	}
	return s, true
}

// Number returns the record's value for key coerced to a float64. Strings
// are parsed; ok is false when the value is absent or not numeric.
func (r Record) Number(key string) (float64, bool) {
	v, exists := r[key]
	if !exists || v == nil {
		return 0, false
	}
	if n, ok := rawNumber(v); ok {
		return n, true
	}
	if s, ok := v.(string); ok {
		n, err := strconv.ParseFloat(s, 64)
		if err == nil {
			return n, true
		}
	}
	return 0, false
}

// RawNumber returns the record's value for key as a float64 without string
// coercion: only values stored as numbers qualify.
func (r Record) RawNumber(key string) (float64, bool) {
	v, exists := r[key]
	if !exists || v == nil {
		return 0, false
	}
	return rawNumber(v)
}

func rawNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}

// dateLayouts are the accepted ISO timestamp forms, most specific first.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// Date returns the record's value for key as a time. ok is false when the
// value is absent or not an ISO-parseable timestamp; an absent date is never
// considered a match by date filters or a calendar bucket.
func (r Record) Date(key string) (time.Time, bool) {
	v, exists := r[key]
	if !exists || v == nil {
		return time.Time{}, false
	}
	if t, ok := v.(time.Time); ok {
		return t, true
	}
	s, ok := v.(string)
	if !ok || s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
