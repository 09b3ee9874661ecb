// Package calendar builds the organization-wide verification-planning view:
// per-department monthly counts of planned verifications for a given year.
// It always operates on the full unfiltered source collection.
package calendar

import (
	"sync"
	"time"

	"metreg/model"
)

// Department is one organizational unit participating in the calendar.
type Department struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

// departments is the fixed, ordered calendar catalog. Two department codes
// used elsewhere in the system (gruppa_sm, ogmk) are excluded from the
// planning view.
var departments = []Department{
	{Key: "gtl", Label: "ГТЛ"},
	{Key: "lbr", Label: "ЛБР"},
	{Key: "ltr", Label: "ЛТР"},
	{Key: "lhaiei", Label: "ЛХАиЭИ"},
	{Key: "oii", Label: "ОИИ"},
	{Key: "ooops", Label: "ОООПС"},
	{Key: "smtsik", Label: "СМТСиК"},
	{Key: "soii", Label: "СОИИ"},
	{Key: "to", Label: "ТО"},
	{Key: "ts", Label: "ТС"},
	{Key: "es", Label: "ЭС"},
}

// MonthNames are the display names of the twelve calendar columns.
var MonthNames = [12]string{
	"Январь", "Февраль", "Март", "Апрель", "Май", "Июнь",
	"Июль", "Август", "Сентябрь", "Октябрь", "Ноябрь", "Декабрь",
}

// Departments returns the calendar's department catalog.
func Departments() []Department {
	return append([]Department(nil), departments...)
}

// Build buckets each department's records by the month of their planned
// verification date within the given year. Records lacking a plan date or
// dated in a different year contribute to no bucket. The totals row is the
// elementwise sum across departments.
func Build(records []model.Record, year int) ([]model.CalendarRow, [12]int) {
	rows := make([]model.CalendarRow, 0, len(departments))
	var totals [12]int

	byDepartment := make(map[string][]model.Record)
	for _, rec := range records {
		d, ok := rec.String(model.KeyDepartment)
		if !ok {
			continue
		}
		byDepartment[d] = append(byDepartment[d], rec)
	}

	for _, dept := range departments {
		row := model.CalendarRow{
			DepartmentKey:   dept.Key,
			DepartmentLabel: dept.Label,
		}
		for _, rec := range byDepartment[dept.Key] {
			plan, ok := rec.Date(model.KeyVerificationPlan)
			if !ok || plan.Year() != year {
				continue
			}
			row.MonthCounts[int(plan.Month())-1]++
		}
		for i, n := range row.MonthCounts {
			totals[i] += n
		}
		rows = append(rows, row)
	}

	return rows, totals
}

// Summary counts verification events performed in the given year, split by
// event type over verification_date × verification_type.
func Summary(records []model.Record, year int) model.WorkSummary {
	var s model.WorkSummary
	for _, rec := range records {
		done, ok := rec.Date(model.KeyVerificationDate)
		if !ok || done.Year() != year {
			continue
		}
		kind, _ := rec.String(model.KeyVerificationType)
		switch kind {
		case model.WorkVerification:
			s.Verifications++
		case model.WorkCalibration:
			s.Calibrations++
		case model.WorkCertification:
			s.Certifications++
		}
	}
	s.Total = s.Verifications + s.Calibrations + s.Certifications
	return s
}

// Aggregator holds the unfiltered source reference and serves calendar
// snapshots for the current system year.
type Aggregator struct {
	mu     sync.RWMutex
	source []model.Record
	now    func() time.Time
}

// NewAggregator creates a calendar Aggregator.
func NewAggregator() *Aggregator {
	return &Aggregator{now: time.Now}
}

// SetSource replaces the source collection reference.
func (a *Aggregator) SetSource(records []model.Record) {
	a.mu.Lock()
	a.source = records
	a.mu.Unlock()
}

// Year returns the calendar's reference year.
func (a *Aggregator) Year() int {
	return a.now().Year()
}

// Snapshot builds the calendar rows, monthly totals, and work summary for
// the current year.
func (a *Aggregator) Snapshot() ([]model.CalendarRow, [12]int, model.WorkSummary) {
	a.mu.RLock()
	source := a.source
	a.mu.RUnlock()
	year := a.now().Year()
	rows, totals := Build(source, year)
	return rows, totals, Summary(source, year)
}
