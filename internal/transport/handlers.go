package transport

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"metreg/internal/calendar"
	"metreg/internal/metrics"
	"metreg/internal/schema"
	"metreg/internal/view"
	"metreg/model"
)

// handlers serves the read surface and the view-state mutations.
type handlers struct {
	schema    *schema.Registry
	projector *view.Projector
	metrics   *metrics.Aggregator
	calendar  *calendar.Aggregator
}

// handleSchema returns the field catalog and group definitions.
func (h *handlers) handleSchema(w http.ResponseWriter, _ *http.Request) {
	WriteJSON(w, http.StatusOK, map[string]any{
		"fields": h.schema.Fields(),
		"groups": h.schema.Groups(),
	})
}

// handleEquipment returns the filtered collection and its statistics.
func (h *handlers) handleEquipment(w http.ResponseWriter, _ *http.Request) {
	WriteJSON(w, http.StatusOK, map[string]any{
		"items": h.projector.Filtered(),
		"stats": h.projector.Stats(),
	})
}

// handleMetrics returns the dashboard aggregate metrics scoped to the
// requesting user.
func (h *handlers) handleMetrics(w http.ResponseWriter, r *http.Request) {
	user := model.UserFrom(r.Context())
	WriteJSON(w, http.StatusOK, h.metrics.Snapshot(user))
}

// handleCalendar returns the verification-planning calendar for the current
// year.
func (h *handlers) handleCalendar(w http.ResponseWriter, _ *http.Request) {
	rows, totals, summary := h.calendar.Snapshot()
	WriteJSON(w, http.StatusOK, map[string]any{
		"year":           h.calendar.Year(),
		"months":         calendar.MonthNames,
		"rows":           rows,
		"monthly_totals": totals,
		"summary":        summary,
	})
}

// handleCalendarExport streams the calendar as an xlsx workbook.
func (h *handlers) handleCalendarExport(w http.ResponseWriter, _ *http.Request) {
	rows, totals, _ := h.calendar.Snapshot()
	year := h.calendar.Year()

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="verification-plan-%d.xlsx"`, year))
	if err := calendar.WriteXLSX(w, rows, totals, year); err != nil {
		// Headers are already out; nothing to do but drop the connection.
		return
	}
}

// handleViewState returns the current view state.
func (h *handlers) handleViewState(w http.ResponseWriter, _ *http.Request) {
	WriteJSON(w, http.StatusOK, h.projector.State())
}

// handleSearch replaces the free-text search query.
func (h *handlers) handleSearch(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Query string `json:"query"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		WriteError(w, model.NewBadRequestError("malformed search body"))
		return
	}
	h.projector.SetSearch(body.Query)
	WriteJSON(w, http.StatusOK, h.projector.Stats())
}

// handleSetFilter installs or replaces the filter for one field. The body
// is a typed filter value envelope; an unrecognized type tag is rejected.
func (h *handlers) handleSetFilter(w http.ResponseWriter, r *http.Request) {
	field := chi.URLParam(r, "field")

	raw, err := io.ReadAll(http.MaxBytesReader(w, r.Body, 1<<16))
	if err != nil {
		WriteError(w, model.NewBadRequestError("unreadable filter body"))
		return
	}
	value, ok, err := model.UnmarshalFilterValue(raw)
	if err != nil {
		WriteError(w, model.NewBadRequestError("malformed filter value"))
		return
	}
	if !ok {
		WriteError(w, model.NewBadRequestError("unrecognized filter type"))
		return
	}

	h.projector.SetFilter(field, value)
	WriteJSON(w, http.StatusOK, h.projector.Stats())
}

// handleDeleteFilter removes the filter for one field.
func (h *handlers) handleDeleteFilter(w http.ResponseWriter, r *http.Request) {
	field := chi.URLParam(r, "field")
	h.projector.SetFilter(field, nil)
	WriteJSON(w, http.StatusOK, h.projector.Stats())
}

// handleToggleColumn sets the visibility of one column.
func (h *handlers) handleToggleColumn(w http.ResponseWriter, r *http.Request) {
	field := chi.URLParam(r, "field")
	var body struct {
		Visible bool `json:"visible"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		WriteError(w, model.NewBadRequestError("malformed column body"))
		return
	}
	h.projector.ToggleColumn(field, body.Visible)
	WriteJSON(w, http.StatusOK, h.projector.State())
}

// handleQuickFilter resets the view and applies one canonical preset.
func (h *handlers) handleQuickFilter(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		WriteError(w, model.NewBadRequestError("malformed quick filter body"))
		return
	}
	h.projector.ApplyQuickFilter(model.QuickFilter(body.Name))
	WriteJSON(w, http.StatusOK, h.projector.Stats())
}

// handleReset clears search and filters and restores default columns.
func (h *handlers) handleReset(w http.ResponseWriter, _ *http.Request) {
	h.projector.ResetFilters()
	WriteJSON(w, http.StatusOK, h.projector.State())
}
