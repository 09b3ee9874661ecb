package model

import (
	"encoding/json"
	"fmt"
	"time"
)

// FilterValue is the closed set of typed filter values. A value only takes
// effect when its variant matches the field's declared type; the engine
// skips mismatched variants rather than rejecting records.
type FilterValue interface {
	// Empty reports whether the value constrains nothing. Setting an empty
	// value on a field is observably equivalent to removing the filter.
	Empty() bool

	filterValue()
}

// EnumFilter matches records whose field value is a member of Values.
type EnumFilter struct {
	Values []string
}

func (f EnumFilter) filterValue() {}

// Empty reports whether the allowed-value set is empty.
func (f EnumFilter) Empty() bool { return len(f.Values) == 0 }

// Contains reports membership of v in the allowed-value set.
func (f EnumFilter) Contains(v string) bool {
	for _, allowed := range f.Values {
		if allowed == v {
			return true
		}
	}
	return false
}

// TextFilter matches records whose field value contains any of Queries as a
// case-insensitive substring.
type TextFilter struct {
	Queries []string
}

func (f TextFilter) filterValue() {}

// Empty reports whether no non-blank query is present.
func (f TextFilter) Empty() bool {
	for _, q := range f.Queries {
		if q != "" {
			return false
		}
	}
	return true
}

// NumberFilter matches either an exact stored number or an inclusive
// [Min, Max] range. Exact and the range bounds are mutually exclusive in
// practice; when both are present the range wins.
type NumberFilter struct {
	Exact *float64
	Min   *float64
	Max   *float64
}

func (f NumberFilter) filterValue() {}

// Empty reports whether neither an exact value nor a range bound is set.
func (f NumberFilter) Empty() bool { return f.Exact == nil && f.Min == nil && f.Max == nil }

// IsRange reports whether both range bounds are present.
func (f NumberFilter) IsRange() bool { return f.Min != nil && f.Max != nil }

// DateFilter matches records whose date falls within [Start, End] inclusive.
// The filter only takes effect when both bounds are present.
type DateFilter struct {
	Start *time.Time
	End   *time.Time
}

func (f DateFilter) filterValue() {}

// Empty reports whether both bounds are absent.
func (f DateFilter) Empty() bool { return f.Start == nil && f.End == nil }

// Bounded reports whether both bounds are present.
func (f DateFilter) Bounded() bool { return f.Start != nil && f.End != nil }

// FilterState maps field key to its active filter value. Absent keys mean
// the field is unfiltered. Active entries combine by logical AND.
type FilterState map[string]FilterValue

// Clone returns a deep copy of the state.
func (s FilterState) Clone() FilterState {
	if s == nil {
		return nil
	}
	out := make(FilterState, len(s))
	for k, v := range s {
		out[k] = cloneFilterValue(v)
	}
	return out
}

func cloneFilterValue(v FilterValue) FilterValue {
	switch f := v.(type) {
	case EnumFilter:
		return EnumFilter{Values: append([]string(nil), f.Values...)}
	case TextFilter:
		return TextFilter{Queries: append([]string(nil), f.Queries...)}
	case NumberFilter:
		return NumberFilter{Exact: clonePtr(f.Exact), Min: clonePtr(f.Min), Max: clonePtr(f.Max)}
	case DateFilter:
		return DateFilter{Start: clonePtr(f.Start), End: clonePtr(f.End)}
	}
	return v
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

// filterEnvelope is the persisted wire form of a FilterValue. The type tag
// selects the variant; fields irrelevant to the variant are omitted.
type filterEnvelope struct {
	Type    FieldType  `json:"type"`
	Values  []string   `json:"values,omitempty"`
	Queries []string   `json:"queries,omitempty"`
	Exact   *float64   `json:"exact,omitempty"`
	Min     *float64   `json:"min,omitempty"`
	Max     *float64   `json:"max,omitempty"`
	Start   *time.Time `json:"start,omitempty"`
	End     *time.Time `json:"end,omitempty"`
}

// MarshalJSON encodes the state as a field-key → envelope mapping.
func (s FilterState) MarshalJSON() ([]byte, error) {
	out := make(map[string]filterEnvelope, len(s))
	for key, v := range s {
		env, ok := envelopeFor(v)
		if !ok {
			continue
		}
		out[key] = env
	}
	return json.Marshal(out)
}

func envelopeFor(v FilterValue) (filterEnvelope, bool) {
	switch f := v.(type) {
	case EnumFilter:
		return filterEnvelope{Type: FieldEnum, Values: f.Values}, true
	case TextFilter:
		return filterEnvelope{Type: FieldString, Queries: f.Queries}, true
	case NumberFilter:
		return filterEnvelope{Type: FieldNumber, Exact: f.Exact, Min: f.Min, Max: f.Max}, true
	case DateFilter:
		return filterEnvelope{Type: FieldDate, Start: f.Start, End: f.End}, true
	}
	return filterEnvelope{}, false
}

// UnmarshalJSON decodes a field-key → envelope mapping. Entries with an
// unrecognized type tag are dropped; a malformed document is an error the
// caller handles by keeping its defaults.
func (s *FilterState) UnmarshalJSON(data []byte) error {
	var raw map[string]filterEnvelope
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("filter state: %w", err)
	}
	out := make(FilterState, len(raw))
	for key, env := range raw {
		v, ok := env.value()
		if !ok {
			continue
		}
		out[key] = v
	}
	*s = out
	return nil
}

func (e filterEnvelope) value() (FilterValue, bool) {
	switch e.Type {
	case FieldEnum:
		return EnumFilter{Values: e.Values}, true
	case FieldString:
		return TextFilter{Queries: e.Queries}, true
	case FieldNumber:
		return NumberFilter{Exact: e.Exact, Min: e.Min, Max: e.Max}, true
	case FieldDate:
		return DateFilter{Start: e.Start, End: e.End}, true
	}
	return nil, false
}

// UnmarshalFilterValue decodes a single filter value envelope, as received
// from the HTTP API. Returns false for an unrecognized type tag.
func UnmarshalFilterValue(data []byte) (FilterValue, bool, error) {
	var env filterEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, false, fmt.Errorf("filter value: %w", err)
	}
	v, ok := env.value()
	return v, ok, nil
}
