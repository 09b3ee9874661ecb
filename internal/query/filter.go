package query

import (
	"metreg/model"
)

// MatchesFilters reports whether the record satisfies every active filter
// entry (logical AND). Entries that cannot take effect never reject a
// record: unknown field keys, empty values, and variants whose shape does
// not match the field's declared type are all skipped.
func (m *Matcher) MatchesFilters(rec model.Record, filters model.FilterState) bool {
	if len(filters) == 0 {
		return true
	}
	for key, value := range filters {
		if value == nil || value.Empty() {
			continue
		}
		def, ok := m.schema.Field(key)
		if !ok {
			continue
		}
		if !m.matchField(rec, def, value) {
			return false
		}
	}
	return true
}

// matchField evaluates one filter entry against its field. Returns true when
// the entry is a no-op for the field (variant/type mismatch).
func (m *Matcher) matchField(rec model.Record, def model.FieldDefinition, value model.FilterValue) bool {
	switch def.Type {
	case model.FieldEnum:
		if f, ok := value.(model.EnumFilter); ok {
			return matchEnum(rec, def.Key, f)
		}
	case model.FieldString:
		if f, ok := value.(model.TextFilter); ok {
			return matchText(rec, def.Key, f)
		}
	case model.FieldNumber:
		if f, ok := value.(model.NumberFilter); ok {
			return matchNumber(rec, def.Key, f)
		}
	case model.FieldDate:
		if f, ok := value.(model.DateFilter); ok {
			return matchDate(rec, def.Key, f)
		}
	}
	return true
}

// matchEnum passes records whose stored value is a member of the allowed
// set. An absent value is not a member of anything.
func matchEnum(rec model.Record, key string, f model.EnumFilter) bool {
	v, ok := rec.String(key)
	if !ok {
		return false
	}
	return f.Contains(v)
}

// matchText passes records whose stored value contains ANY query as a
// case-insensitive substring.
func matchText(rec model.Record, key string, f model.TextFilter) bool {
	v, ok := rec.String(key)
	if !ok {
		return false
	}
	for _, q := range f.Queries {
		if q != "" && containsFold(v, q) {
			return true
		}
	}
	return false
}

// matchNumber evaluates an inclusive range when both bounds are present,
// coercing the stored value to a number; a coercion failure yields false
// for the predicate. Without a range the match is exact against the raw
// stored number, with no string coercion.
func matchNumber(rec model.Record, key string, f model.NumberFilter) bool {
	if f.IsRange() {
		n, ok := rec.Number(key)
		if !ok {
			return false
		}
		return n >= *f.Min && n <= *f.Max
	}
	if f.Exact == nil {
		return true
	}
	n, ok := rec.RawNumber(key)
	if !ok {
		return false
	}
	return n == *f.Exact
}

// matchDate evaluates a chronological [start, end] inclusive comparison.
// The entry is a no-op unless both bounds are present; an absent or
// unparseable record date never matches.
func matchDate(rec model.Record, key string, f model.DateFilter) bool {
	if !f.Bounded() {
		return true
	}
	t, ok := rec.Date(key)
	if !ok {
		return false
	}
	return !t.Before(*f.Start) && !t.After(*f.End)
}
