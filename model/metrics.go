package model

// AggregateMetrics is a read-only snapshot of dashboard counts over the
// filtered collection, plus the role-scoped archive count. Percentages are
// round(100 * count / total) with total = 0 defined as 0.
type AggregateMetrics struct {
	Total             int `json:"total"`
	Fit               int `json:"fit"`
	Expired           int `json:"expired"`
	Expiring          int `json:"expiring"`
	OnVerification    int `json:"on_verification"`
	InStorage         int `json:"in_storage"`
	InRepair          int `json:"in_repair"`
	Failed            int `json:"failed"`
	FitPercentage     int `json:"fit_percentage"`
	ExpiredPercentage int `json:"expired_percentage"`
}

// CalendarRow is one department's planned-verification counts for the
// current year, bucketed by month (index 0 = January).
type CalendarRow struct {
	DepartmentKey   string  `json:"department_key"`
	DepartmentLabel string  `json:"department"`
	MonthCounts     [12]int `json:"month_counts"`
}

// WorkSummary counts verification events performed in the current year,
// split by event type.
type WorkSummary struct {
	Verifications  int `json:"verifications"`
	Calibrations   int `json:"calibrations"`
	Certifications int `json:"certifications"`
	Total          int `json:"total"`
}
