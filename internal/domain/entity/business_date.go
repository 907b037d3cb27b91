package entity

import (
	"time"
)

// BusinessDateType distinguishes the business dates a tenant keeps
type BusinessDateType string

// Business date types
const (
	BusinessDate BusinessDateType = "BUSINESS_DATE"
	COBDate      BusinessDateType = "COB_DATE"
)

// BusinessDateLayout is the wire format of business dates
const BusinessDateLayout = "2006-01-02"

// BusinessDay truncates t to its calendar date at midnight UTC.
// The calendar date is taken in t's own location.
func BusinessDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseBusinessDate parses a YYYY-MM-DD business date
func ParseBusinessDate(s string) (time.Time, error) {
	return time.Parse(BusinessDateLayout, s)
}

// FormatBusinessDate renders a business date as YYYY-MM-DD
func FormatBusinessDate(t time.Time) string {
	return BusinessDay(t).Format(BusinessDateLayout)
}
