package model

// QuickFilter names a canonical preset filter. Applying one resets the view
// state before installing a single-field enum filter.
type QuickFilter string

// The closed set of quick filters.
const (
	QuickExpired        QuickFilter = "expired"
	QuickExpiring       QuickFilter = "expiring"
	QuickFit            QuickFilter = "fit"
	QuickOnVerification QuickFilter = "on_verification"
	QuickInStorage      QuickFilter = "in_storage"
	QuickInRepair       QuickFilter = "in_repair"
)

// defaultColumns is the canonical visible column order restored by a reset.
var defaultColumns = []string{
	"equipment_name",
	"equipment_model",
	"factory_number",
	"inventory_number",
	"verification_type",
	"verification_interval",
	"verification_due",
	"verification_plan",
	"status",
}

// DefaultColumns returns a fresh copy of the canonical column sequence.
func DefaultColumns() []string {
	return append([]string(nil), defaultColumns...)
}

// ViewState is the unit of state owned by the view projector and persisted
// to the preference store (search excepted: it is session-local).
type ViewState struct {
	SearchQuery    string      `json:"search_query"`
	VisibleColumns []string    `json:"visible_columns"`
	Filters        FilterState `json:"filters"`
}

// Clone returns a deep copy of the view state.
func (v ViewState) Clone() ViewState {
	return ViewState{
		SearchQuery:    v.SearchQuery,
		VisibleColumns: append([]string(nil), v.VisibleColumns...),
		Filters:        v.Filters.Clone(),
	}
}

// FilterStats is a derived snapshot of the projector's output size.
type FilterStats struct {
	Total      int  `json:"total"`
	Filtered   int  `json:"filtered"`
	IsFiltered bool `json:"is_filtered"`
}
