// Package view maintains the filtered, reactive projection over the source
// equipment collection. The projector owns the view state (search query,
// visible columns, filters) and recomputes its derived output eagerly inside
// every mutating call.
package view

import (
	"sync"

	"metreg/internal/query"
	"metreg/internal/schema"
	"metreg/model"
)

// quickFilters maps each preset name to the single-field enum filter it
// installs after a reset.
var quickFilters = map[model.QuickFilter]struct {
	field string
	value string
}{
	model.QuickExpired:        {model.KeyStatus, model.StatusExpired},
	model.QuickExpiring:       {model.KeyStatus, model.StatusExpiring},
	model.QuickFit:            {model.KeyStatus, model.StatusFit},
	model.QuickOnVerification: {model.KeyVerificationState, model.StateVerification},
	model.QuickInStorage:      {model.KeyVerificationState, model.StateStorage},
	model.QuickInRepair:       {model.KeyVerificationState, model.StateRepair},
}

// Projector combines the search predicate and the filter engine into one
// live-filtered view over the source collection.
type Projector struct {
	mu       sync.RWMutex
	schema   *schema.Registry
	matcher  *query.Matcher
	source   []model.Record
	filtered []model.Record
	state    model.ViewState

	subscribers []func()
	// persist receives the view state after every column or filter
	// mutation. Writes are fire-and-forget: the caller must not block.
	persist func(model.ViewState)
}

// NewProjector creates a Projector with default view state.
func NewProjector(s *schema.Registry) *Projector {
	p := &Projector{
		schema:  s,
		matcher: query.NewMatcher(s),
		state: model.ViewState{
			VisibleColumns: model.DefaultColumns(),
			Filters:        model.FilterState{},
		},
	}
	p.recompute()
	return p
}

// Subscribe registers a callback invoked after every recomputation.
func (p *Projector) Subscribe(fn func()) {
	p.mu.Lock()
	p.subscribers = append(p.subscribers, fn)
	p.mu.Unlock()
}

// OnStateChange registers the persistence hook called with a copy of the
// view state after every column or filter mutation.
func (p *Projector) OnStateChange(fn func(model.ViewState)) {
	p.mu.Lock()
	p.persist = fn
	p.mu.Unlock()
}

// SetSource replaces the source collection reference and recomputes.
func (p *Projector) SetSource(records []model.Record) {
	p.mu.Lock()
	p.source = records
	p.recompute()
	p.mu.Unlock()
	p.notify()
}

// SetSearch replaces the free-text search query and recomputes. The search
// query is session-local and not persisted.
func (p *Projector) SetSearch(q string) {
	p.mu.Lock()
	p.state.SearchQuery = q
	p.recompute()
	p.mu.Unlock()
	p.notify()
}

// SetFilter installs or replaces the filter for a field. An empty value
// removes the key entirely, restoring no-op semantics exactly.
func (p *Projector) SetFilter(field string, value model.FilterValue) {
	p.mu.Lock()
	if value == nil || value.Empty() {
		delete(p.state.Filters, field)
	} else {
		p.state.Filters[field] = value
	}
	p.recompute()
	state := p.state.Clone()
	persist := p.persist
	p.mu.Unlock()

	p.notify()
	if persist != nil {
		persist(state)
	}
}

// ToggleColumn adds or removes a field from the visible column list. Adding
// appends at the end; removal preserves the order of the remaining columns.
// Unknown field keys are ignored.
func (p *Projector) ToggleColumn(field string, visible bool) {
	p.mu.Lock()
	if !p.schema.Has(field) {
		p.mu.Unlock()
		return
	}
	changed := false
	if visible {
		if !containsString(p.state.VisibleColumns, field) {
			p.state.VisibleColumns = append(p.state.VisibleColumns, field)
			changed = true
		}
	} else {
		kept := p.state.VisibleColumns[:0]
		for _, c := range p.state.VisibleColumns {
			if c != field {
				kept = append(kept, c)
			}
		}
		changed = len(kept) != len(p.state.VisibleColumns)
		p.state.VisibleColumns = kept
	}
	state := p.state.Clone()
	persist := p.persist
	p.mu.Unlock()

	if changed && persist != nil {
		persist(state)
	}
}

// ApplyQuickFilter resets all view state to defaults, then applies the named
// preset. An unknown name leaves the reset state with no filter applied.
func (p *Projector) ApplyQuickFilter(name model.QuickFilter) {
	p.mu.Lock()
	p.resetLocked()
	if preset, ok := quickFilters[name]; ok {
		p.state.Filters[preset.field] = model.EnumFilter{Values: []string{preset.value}}
	}
	p.recompute()
	state := p.state.Clone()
	persist := p.persist
	p.mu.Unlock()

	p.notify()
	if persist != nil {
		persist(state)
	}
}

// ResetFilters clears the search query and all filters and restores the
// canonical default column sequence.
func (p *Projector) ResetFilters() {
	p.mu.Lock()
	p.resetLocked()
	p.recompute()
	state := p.state.Clone()
	persist := p.persist
	p.mu.Unlock()

	p.notify()
	if persist != nil {
		persist(state)
	}
}

// Restore installs previously persisted view state. Column keys that no
// longer exist in the schema are dropped silently; filters with unknown
// keys are kept but never take effect.
func (p *Projector) Restore(columns []string, filters model.FilterState) {
	p.mu.Lock()
	if columns != nil {
		kept := make([]string, 0, len(columns))
		for _, c := range columns {
			if p.schema.Has(c) {
				kept = append(kept, c)
			}
		}
		p.state.VisibleColumns = kept
	}
	if filters != nil {
		p.state.Filters = filters.Clone()
	}
	p.recompute()
	p.mu.Unlock()
	p.notify()
}

// Filtered returns the current filtered collection.
func (p *Projector) Filtered() []model.Record {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return append([]model.Record(nil), p.filtered...)
}

// State returns a deep copy of the current view state.
func (p *Projector) State() model.ViewState {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.state.Clone()
}

// Stats returns the derived filter statistics snapshot.
func (p *Projector) Stats() model.FilterStats {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return model.FilterStats{
		Total:      len(p.source),
		Filtered:   len(p.filtered),
		IsFiltered: p.state.SearchQuery != "" || len(p.state.Filters) > 0,
	}
}

func (p *Projector) resetLocked() {
	p.state.SearchQuery = ""
	p.state.Filters = model.FilterState{}
	p.state.VisibleColumns = model.DefaultColumns()
}

// recompute rebuilds the filtered collection. Callers hold the write lock.
func (p *Projector) recompute() {
	filtered := make([]model.Record, 0, len(p.source))
	for _, rec := range p.source {
		if !p.matcher.MatchesSearch(rec, p.state.SearchQuery) {
			continue
		}
		if !p.matcher.MatchesFilters(rec, p.state.Filters) {
			continue
		}
		filtered = append(filtered, rec)
	}
	p.filtered = filtered
}

func (p *Projector) notify() {
	p.mu.RLock()
	subs := append([]func(){}, p.subscribers...)
	p.mu.RUnlock()
	for _, fn := range subs {
		fn()
	}
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
