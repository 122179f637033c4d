package domain

import "time"

// Report is a display-ready rendering of a breakdown
type Report struct {
	Title       string
	Period      TimePeriod
	Sections    []ReportSection
	TotalAmount float64
	Currency    string
}

// TimePeriod spans the showdates of the offer
type TimePeriod struct {
	Start    time.Time
	End      time.Time
	Duration int // in showdates
}

// ReportSection represents a logical section in the report
type ReportSection struct {
	Title    string
	Summary  map[string]interface{}
	Details  []ReportDetail
	Metadata map[string]interface{}
}

// ReportDetail represents detailed information within a section
type ReportDetail struct {
	Name        string
	Value       interface{}
	Unit        string
	Description string
}
