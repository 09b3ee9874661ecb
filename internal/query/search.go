// Package query evaluates search and filter predicates against equipment
// records, dispatching on the field schema's declared types.
package query

import (
	"strings"

	"metreg/internal/schema"
	"metreg/model"
)

// Matcher evaluates predicates using the field schema for type dispatch.
type Matcher struct {
	schema *schema.Registry
}

// NewMatcher creates a Matcher over the given schema.
func NewMatcher(s *schema.Registry) *Matcher {
	return &Matcher{schema: s}
}

// MatchesSearch reports whether any searchable field of the record contains
// the query as a case-insensitive substring. An empty query matches every
// record. One field hit is enough: the scan is a logical OR across fields.
func (m *Matcher) MatchesSearch(rec model.Record, query string) bool {
	if query == "" {
		return true
	}
	for _, def := range m.schema.Searchable() {
		v, ok := rec.String(def.Key)
		if ok && containsFold(v, query) {
			return true
		}
	}
	return false
}

// containsFold reports whether value contains query, case-insensitively.
// Simple Unicode lower-casing; diacritics are not normalized.
func containsFold(value, query string) bool {
	return strings.Contains(strings.ToLower(value), strings.ToLower(query))
}
