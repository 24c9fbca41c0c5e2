package models

import "time"

// CategoryCount is one row of the per-category report breakdown.
type CategoryCount struct {
	Category OfficeType `json:"category"`
	Count    int64      `json:"count"`
}

// StateCount is one row of the per-state report breakdown.
type StateCount struct {
	State ReportState `json:"state"`
	Count int64       `json:"count"`
}

// TrendPoint is one time bucket of the report-submission trend.
type TrendPoint struct {
	Bucket time.Time `json:"bucket"`
	Count  int64     `json:"count"`
}
