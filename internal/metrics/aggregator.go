// Package metrics derives the dashboard aggregate counts from the filtered
// view, plus the role-scoped failure count over the archive collection.
package metrics

import (
	"math"
	"sync"

	"metreg/internal/view"
	"metreg/model"
)

// Aggregator produces AggregateMetrics snapshots. Status counts follow the
// active search/filter state through the projector; the archive-based
// failed count is deliberately insensitive to it.
type Aggregator struct {
	mu        sync.RWMutex
	projector *view.Projector
	archive   []model.Record
}

// NewAggregator creates an Aggregator over the projector's output.
func NewAggregator(p *view.Projector) *Aggregator {
	return &Aggregator{projector: p}
}

// SetArchive replaces the archive collection reference.
func (a *Aggregator) SetArchive(records []model.Record) {
	a.mu.Lock()
	a.archive = records
	a.mu.Unlock()
}

// Snapshot computes the aggregate metrics for the given user. A nil user or
// one with no department counts all archive records.
func (a *Aggregator) Snapshot(user *model.User) model.AggregateMetrics {
	filtered := a.projector.Filtered()
	a.mu.RLock()
	archive := a.archive
	a.mu.RUnlock()
	return Compute(filtered, archive, user)
}

// Compute derives the aggregate metrics from the filtered collection, the
// archive collection, and the current user.
func Compute(filtered, archive []model.Record, user *model.User) model.AggregateMetrics {
	m := model.AggregateMetrics{Total: len(filtered)}

	for _, rec := range filtered {
		status, _ := rec.String(model.KeyStatus)
		switch status {
		case model.StatusFit:
			m.Fit++
		case model.StatusExpired:
			m.Expired++
		case model.StatusExpiring:
			m.Expiring++
		case model.StatusVerification:
			m.OnVerification++
		case model.StatusStorage:
			m.InStorage++
		case model.StatusRepair:
			m.InRepair++
		}
	}

	m.Failed = failedCount(archive, user)
	m.FitPercentage = percentage(m.Fit, m.Total)
	m.ExpiredPercentage = percentage(m.Expired, m.Total)
	return m
}

// failedCount counts archive records scoped to the user's department. A
// user with no department (global/administrative role) sees all archive
// records. The removal reason is intentionally not consulted.
func failedCount(archive []model.Record, user *model.User) int {
	department := ""
	if user != nil {
		department = user.Department
	}
	if department == "" {
		return len(archive)
	}
	count := 0
	for _, rec := range archive {
		if d, _ := rec.String(model.KeyDepartment); d == department {
			count++
		}
	}
	return count
}

// percentage returns round(100 * count / total), with total = 0 defined
// as 0.
func percentage(count, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(count) / float64(total) * 100))
}
