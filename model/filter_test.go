package model

import (
	"encoding/json"
	"testing"
	"time"
)

func f64(v float64) *float64 { return &v }

func ts(s string) *time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return &t
}

func TestFilterValue_Empty(t *testing.T) {
	tests := []struct {
		name  string
		value FilterValue
		want  bool
	}{
		{"enum no values", EnumFilter{}, true},
		{"enum with values", EnumFilter{Values: []string{"status_fit"}}, false},
		{"text no queries", TextFilter{}, true},
		{"text blank queries", TextFilter{Queries: []string{"", ""}}, true},
		{"text with query", TextFilter{Queries: []string{"мп"}}, false},
		{"number unset", NumberFilter{}, true},
		{"number exact", NumberFilter{Exact: f64(5)}, false},
		{"number min only", NumberFilter{Min: f64(1)}, false},
		{"date unset", DateFilter{}, true},
		{"date start only", DateFilter{Start: ts("2026-01-01")}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.value.Empty(); got != tt.want {
				t.Errorf("Empty() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFilterState_Clone_isDeep(t *testing.T) {
	orig := FilterState{
		"status": EnumFilter{Values: []string{"status_fit"}},
		"cost":   NumberFilter{Min: f64(100), Max: f64(200)},
	}
	clone := orig.Clone()

	clone["status"] = EnumFilter{Values: []string{"status_expired"}}
	cloneCost := clone["cost"].(NumberFilter)
	*cloneCost.Min = 999

	if got := orig["status"].(EnumFilter).Values[0]; got != "status_fit" {
		t.Errorf("original enum mutated: %q", got)
	}
	if got := *orig["cost"].(NumberFilter).Min; got != 100 {
		t.Errorf("original number bound mutated: %v", got)
	}
}

func TestFilterState_JSONRoundtrip(t *testing.T) {
	orig := FilterState{
		"status":       EnumFilter{Values: []string{"status_fit", "status_expiring"}},
		"department":   TextFilter{Queries: []string{"гтл"}},
		"cost_rate":    NumberFilter{Min: f64(100), Max: f64(500)},
		"payment_date": DateFilter{Start: ts("2026-01-01"), End: ts("2026-06-30")},
	}

	data, err := json.Marshal(orig)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	var restored FilterState
	if err := json.Unmarshal(data, &restored); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if len(restored) != len(orig) {
		t.Fatalf("restored %d entries, want %d", len(restored), len(orig))
	}

	enum, ok := restored["status"].(EnumFilter)
	if !ok || len(enum.Values) != 2 || enum.Values[0] != "status_fit" {
		t.Errorf("status restored as %#v", restored["status"])
	}
	text, ok := restored["department"].(TextFilter)
	if !ok || len(text.Queries) != 1 || text.Queries[0] != "гтл" {
		t.Errorf("department restored as %#v", restored["department"])
	}
	num, ok := restored["cost_rate"].(NumberFilter)
	if !ok || num.Min == nil || *num.Min != 100 || num.Max == nil || *num.Max != 500 {
		t.Errorf("cost_rate restored as %#v", restored["cost_rate"])
	}
	date, ok := restored["payment_date"].(DateFilter)
	if !ok || !date.Bounded() || !date.Start.Equal(*ts("2026-01-01")) {
		t.Errorf("payment_date restored as %#v", restored["payment_date"])
	}
}

func TestFilterState_Unmarshal_dropsUnknownType(t *testing.T) {
	raw := `{"status":{"type":"enum","values":["status_fit"]},"weird":{"type":"geo","values":["x"]}}`

	var state FilterState
	if err := json.Unmarshal([]byte(raw), &state); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if len(state) != 1 {
		t.Fatalf("restored %d entries, want 1", len(state))
	}
	if _, ok := state["weird"]; ok {
		t.Error("unknown type tag was not dropped")
	}
}

func TestFilterState_Unmarshal_malformed(t *testing.T) {
	var state FilterState
	if err := json.Unmarshal([]byte(`["not","a","map"]`), &state); err == nil {
		t.Error("Unmarshal accepted a malformed document")
	}
}

func TestUnmarshalFilterValue(t *testing.T) {
	v, ok, err := UnmarshalFilterValue([]byte(`{"type":"number","min":1,"max":10}`))
	if err != nil || !ok {
		t.Fatalf("UnmarshalFilterValue: ok=%v err=%v", ok, err)
	}
	num, isNum := v.(NumberFilter)
	if !isNum || !num.IsRange() {
		t.Errorf("decoded %#v, want bounded NumberFilter", v)
	}

	if _, ok, err := UnmarshalFilterValue([]byte(`{"type":"geo"}`)); err != nil || ok {
		t.Errorf("unrecognized type: ok=%v err=%v, want ok=false err=nil", ok, err)
	}
	if _, _, err := UnmarshalFilterValue([]byte(`{`)); err == nil {
		t.Error("malformed body accepted")
	}
}
