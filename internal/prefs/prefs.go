package prefs

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"metreg/internal/schema"
	"metreg/model"
)

// Persisted storage keys.
const (
	KeyVisibleColumns = "equipment_visible_columns"
	KeyActiveFilters  = "equipment_active_filters"
)

// deprecatedColumns are column names removed from the default set; they are
// filtered out of restored column lists.
var deprecatedColumns = map[string]bool{
	"verification_date": true,
}

// Manager serializes view state to the store and restores it tolerantly:
// malformed stored data is logged and the in-memory defaults retained.
type Manager struct {
	store  Store
	schema *schema.Registry
	logger *zap.Logger
}

// NewManager creates a Manager over the given store.
func NewManager(store Store, s *schema.Registry, logger *zap.Logger) *Manager {
	return &Manager{store: store, schema: s, logger: logger}
}

// Save writes the visible columns and active filters under their fixed
// keys. The search query is session-local and not persisted.
func (m *Manager) Save(ctx context.Context, state model.ViewState) error {
	cols, err := json.Marshal(state.VisibleColumns)
	if err != nil {
		return fmt.Errorf("prefs: marshal columns: %w", err)
	}
	if err := m.store.Set(ctx, KeyVisibleColumns, cols); err != nil {
		return fmt.Errorf("prefs: %w", err)
	}

	filters, err := json.Marshal(state.Filters)
	if err != nil {
		return fmt.Errorf("prefs: marshal filters: %w", err)
	}
	if err := m.store.Set(ctx, KeyActiveFilters, filters); err != nil {
		return fmt.Errorf("prefs: %w", err)
	}
	return nil
}

// Load restores the persisted column list and filter state. Either result
// is nil when nothing usable is stored: unknown field keys and deprecated
// column names are dropped from the column list, and malformed values are
// logged and discarded.
func (m *Manager) Load(ctx context.Context) (columns []string, filters model.FilterState) {
	if raw, found, err := m.store.Get(ctx, KeyVisibleColumns); err != nil {
		m.logger.Warn("loading saved columns failed", zap.Error(err))
	} else if found {
		var stored []string
		if err := json.Unmarshal(raw, &stored); err != nil {
			m.logger.Warn("saved columns malformed, keeping defaults", zap.Error(err))
		} else {
			columns = make([]string, 0, len(stored))
			for _, c := range stored {
				if deprecatedColumns[c] || !m.schema.Has(c) {
					continue
				}
				columns = append(columns, c)
			}
		}
	}

	if raw, found, err := m.store.Get(ctx, KeyActiveFilters); err != nil {
		m.logger.Warn("loading saved filters failed", zap.Error(err))
	} else if found {
		var stored model.FilterState
		if err := json.Unmarshal(raw, &stored); err != nil {
			m.logger.Warn("saved filters malformed, keeping defaults", zap.Error(err))
		} else {
			filters = stored
		}
	}

	return columns, filters
}
