package query

import (
	"testing"

	"metreg/internal/schema"
	"metreg/model"
)

func newMatcher() *Matcher {
	return NewMatcher(schema.NewRegistry())
}

func TestMatchesSearch_emptyQueryMatchesEverything(t *testing.T) {
	m := newMatcher()

	if !m.MatchesSearch(model.Record{}, "") {
		t.Error("empty query rejected an empty record")
	}
	if !m.MatchesSearch(model.Record{"equipment_name": "Термометр"}, "") {
		t.Error("empty query rejected a populated record")
	}
}

func TestMatchesSearch_caseInsensitiveCyrillic(t *testing.T) {
	m := newMatcher()
	rec := model.Record{"equipment_model": "ТЛ-4М"}

	if !m.MatchesSearch(rec, "тл-4") {
		t.Error("lowercase query did not match uppercase value")
	}
	if !m.MatchesSearch(rec, "ТЛ-4") {
		t.Error("uppercase query did not match")
	}
	if m.MatchesSearch(rec, "мп-100") {
		t.Error("unrelated query matched")
	}
}

func TestMatchesSearch_scansOnlySearchableFields(t *testing.T) {
	m := newMatcher()

	// verification_date is not searchable; its content must be invisible
	// to the free-text scan.
	rec := model.Record{"verification_date": "2026-03-15"}
	if m.MatchesSearch(rec, "2026-03") {
		t.Error("non-searchable field content matched")
	}

	// equipment_year is a searchable number and is rendered for the scan.
	rec = model.Record{"equipment_year": float64(2019)}
	if !m.MatchesSearch(rec, "2019") {
		t.Error("numeric searchable field did not match its rendering")
	}
}

func TestMatchesSearch_anyFieldHitSuffices(t *testing.T) {
	m := newMatcher()
	rec := model.Record{
		"equipment_name": "Весы лабораторные",
		"factory_number": "ZAV-7731",
	}

	if !m.MatchesSearch(rec, "7731") {
		t.Error("hit on a later field did not match")
	}
	if !m.MatchesSearch(rec, "весы") {
		t.Error("hit on the first field did not match")
	}
}
