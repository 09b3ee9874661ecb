package view

import (
	"reflect"
	"testing"

	"metreg/internal/schema"
	"metreg/model"
)

func newProjector() *Projector {
	return NewProjector(schema.NewRegistry())
}

func sampleRecords() []model.Record {
	return []model.Record{
		{"equipment_name": "Манометр МП-100", "status": model.StatusFit, "verification_state": model.StateWork},
		{"equipment_name": "Термометр ТЛ-4М", "status": model.StatusExpired, "verification_state": model.StateWork},
		{"equipment_name": "Весы ВЛ-220", "status": model.StatusExpiring, "verification_state": model.StateVerification},
		{"equipment_name": "Штангенциркуль ШЦ-1", "status": model.StatusStorage, "verification_state": model.StateStorage},
	}
}

func TestNewProjector_defaults(t *testing.T) {
	p := newProjector()

	state := p.State()
	if state.SearchQuery != "" {
		t.Errorf("SearchQuery = %q, want empty", state.SearchQuery)
	}
	if !reflect.DeepEqual(state.VisibleColumns, model.DefaultColumns()) {
		t.Errorf("VisibleColumns = %v, want defaults", state.VisibleColumns)
	}
	if len(state.Filters) != 0 {
		t.Errorf("Filters = %v, want empty", state.Filters)
	}

	stats := p.Stats()
	if stats.Total != 0 || stats.Filtered != 0 || stats.IsFiltered {
		t.Errorf("Stats() = %+v, want zero unfiltered", stats)
	}
}

func TestProjector_SetSource(t *testing.T) {
	p := newProjector()
	p.SetSource(sampleRecords())

	if got := len(p.Filtered()); got != 4 {
		t.Errorf("Filtered() length = %d, want 4", got)
	}
	stats := p.Stats()
	if stats.Total != 4 || stats.Filtered != 4 || stats.IsFiltered {
		t.Errorf("Stats() = %+v, want {4 4 false}", stats)
	}
}

func TestProjector_SetSearch(t *testing.T) {
	p := newProjector()
	p.SetSource(sampleRecords())

	p.SetSearch("тл-4")
	if got := len(p.Filtered()); got != 1 {
		t.Errorf("Filtered() length = %d, want 1", got)
	}
	if !p.Stats().IsFiltered {
		t.Error("IsFiltered = false with active search")
	}

	p.SetSearch("")
	if got := len(p.Filtered()); got != 4 {
		t.Errorf("after clearing search, length = %d, want 4", got)
	}
}

func TestProjector_SetFilter_emptyValueEqualsRemoval(t *testing.T) {
	p := newProjector()
	p.SetSource(sampleRecords())

	p.SetFilter("status", model.EnumFilter{Values: []string{model.StatusFit}})
	if got := len(p.Filtered()); got != 1 {
		t.Fatalf("filtered length = %d, want 1", got)
	}

	// Setting an empty value must be observably identical to removal.
	p.SetFilter("status", model.EnumFilter{})
	if got := len(p.Filtered()); got != 4 {
		t.Errorf("after empty value, length = %d, want 4", got)
	}
	if _, exists := p.State().Filters["status"]; exists {
		t.Error("empty value left a filter entry behind")
	}

	p.SetFilter("status", model.EnumFilter{Values: []string{model.StatusFit}})
	p.SetFilter("status", nil)
	if _, exists := p.State().Filters["status"]; exists {
		t.Error("nil value left a filter entry behind")
	}
}

func TestProjector_ToggleColumn(t *testing.T) {
	p := newProjector()

	p.ToggleColumn("department", true)
	cols := p.State().VisibleColumns
	if cols[len(cols)-1] != "department" {
		t.Errorf("new column not appended at the end: %v", cols)
	}

	// Re-adding must not duplicate.
	p.ToggleColumn("department", true)
	count := 0
	for _, c := range p.State().VisibleColumns {
		if c == "department" {
			count++
		}
	}
	if count != 1 {
		t.Errorf("column appears %d times, want 1", count)
	}

	// Removal preserves the order of the remaining columns.
	p.ToggleColumn("factory_number", false)
	cols = p.State().VisibleColumns
	want := []string{
		"equipment_name", "equipment_model", "inventory_number",
		"verification_type", "verification_interval", "verification_due",
		"verification_plan", "status", "department",
	}
	if !reflect.DeepEqual(cols, want) {
		t.Errorf("columns after removal = %v, want %v", cols, want)
	}

	// Unknown keys are ignored.
	p.ToggleColumn("no_such_field", true)
	if !reflect.DeepEqual(p.State().VisibleColumns, want) {
		t.Error("unknown column key changed the column list")
	}
}

func TestProjector_ApplyQuickFilter(t *testing.T) {
	tests := []struct {
		name      model.QuickFilter
		wantField string
		wantValue string
	}{
		{model.QuickExpired, model.KeyStatus, model.StatusExpired},
		{model.QuickExpiring, model.KeyStatus, model.StatusExpiring},
		{model.QuickFit, model.KeyStatus, model.StatusFit},
		{model.QuickOnVerification, model.KeyVerificationState, model.StateVerification},
		{model.QuickInStorage, model.KeyVerificationState, model.StateStorage},
		{model.QuickInRepair, model.KeyVerificationState, model.StateRepair},
	}
	for _, tt := range tests {
		t.Run(string(tt.name), func(t *testing.T) {
			p := newProjector()
			p.SetSearch("leftover")
			p.SetFilter("department", model.TextFilter{Queries: []string{"гтл"}})

			p.ApplyQuickFilter(tt.name)

			state := p.State()
			if state.SearchQuery != "" {
				t.Error("quick filter did not clear the search query")
			}
			if len(state.Filters) != 1 {
				t.Fatalf("filters = %v, want single preset entry", state.Filters)
			}
			enum, ok := state.Filters[tt.wantField].(model.EnumFilter)
			if !ok || len(enum.Values) != 1 || enum.Values[0] != tt.wantValue {
				t.Errorf("preset filter = %#v, want %s=%s", state.Filters, tt.wantField, tt.wantValue)
			}
		})
	}
}

func TestProjector_ApplyQuickFilter_unknownNameResetsOnly(t *testing.T) {
	p := newProjector()
	p.SetFilter("department", model.TextFilter{Queries: []string{"гтл"}})

	p.ApplyQuickFilter("bogus")

	state := p.State()
	if len(state.Filters) != 0 {
		t.Errorf("filters = %v, want empty after unknown preset", state.Filters)
	}
	if !reflect.DeepEqual(state.VisibleColumns, model.DefaultColumns()) {
		t.Error("columns not reset to defaults")
	}
}

func TestProjector_ResetFilters(t *testing.T) {
	p := newProjector()
	p.SetSource(sampleRecords())
	p.SetSearch("манометр")
	p.SetFilter("status", model.EnumFilter{Values: []string{model.StatusFit}})
	p.ToggleColumn("department", true)

	p.ResetFilters()

	state := p.State()
	if state.SearchQuery != "" || len(state.Filters) != 0 {
		t.Errorf("state after reset = %+v, want cleared", state)
	}
	if !reflect.DeepEqual(state.VisibleColumns, model.DefaultColumns()) {
		t.Errorf("columns after reset = %v, want defaults", state.VisibleColumns)
	}
	if got := len(p.Filtered()); got != 4 {
		t.Errorf("filtered length after reset = %d, want 4", got)
	}
}

func TestProjector_Restore(t *testing.T) {
	p := newProjector()
	p.SetSource(sampleRecords())

	p.Restore(
		[]string{"equipment_name", "dropped_column", "status"},
		model.FilterState{
			"status":        model.EnumFilter{Values: []string{model.StatusExpired}},
			"retired_field": model.EnumFilter{Values: []string{"x"}},
		},
	)

	state := p.State()
	if !reflect.DeepEqual(state.VisibleColumns, []string{"equipment_name", "status"}) {
		t.Errorf("restored columns = %v, unknown key not dropped", state.VisibleColumns)
	}
	// Unknown filter keys survive restore but never take effect.
	if _, ok := state.Filters["retired_field"]; !ok {
		t.Error("unknown filter key dropped on restore")
	}
	if got := len(p.Filtered()); got != 1 {
		t.Errorf("filtered length = %d, want 1", got)
	}
}

func TestProjector_Subscribe(t *testing.T) {
	p := newProjector()
	calls := 0
	p.Subscribe(func() { calls++ })

	p.SetSource(sampleRecords())
	p.SetSearch("весы")
	p.SetFilter("status", model.EnumFilter{Values: []string{model.StatusExpiring}})

	if calls != 3 {
		t.Errorf("subscriber called %d times, want 3", calls)
	}
}

func TestProjector_OnStateChange(t *testing.T) {
	p := newProjector()
	var persisted []model.ViewState
	p.OnStateChange(func(s model.ViewState) { persisted = append(persisted, s) })

	// Search is session-local and never persisted.
	p.SetSearch("манометр")
	if len(persisted) != 0 {
		t.Fatalf("search change persisted %d states, want 0", len(persisted))
	}

	p.SetFilter("status", model.EnumFilter{Values: []string{model.StatusFit}})
	if len(persisted) != 1 {
		t.Fatalf("filter change persisted %d states, want 1", len(persisted))
	}

	p.ToggleColumn("department", true)
	if len(persisted) != 2 {
		t.Fatalf("column change persisted %d states, want 2", len(persisted))
	}

	// Toggling to the current visibility is a no-op and must not persist.
	p.ToggleColumn("department", true)
	if len(persisted) != 2 {
		t.Errorf("no-op toggle persisted a state")
	}
}
