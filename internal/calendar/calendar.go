// Package calendar evaluates business calendars: ordered holiday rules,
// observed-holiday substitution and business-hours predicates.
//
// Everything in this package is immutable once built. An *Engine returned by
// Builder.Build or NewEngine is safe for concurrent use without locking.
package calendar

import (
	"time"

	"github.com/username/bizcal/pkg/dateutil"
)

const observedSuffix = " (observed)"

// Label identifies a holiday. Observed is set when the holiday is a
// substitute for one that fell on a weekend. Weekend marks the closure
// labels produced by the Weekends rule.
type Label struct {
	Name     string
	Observed bool
	Weekend  bool
}

// Observe returns the observed variant of the label
func (l Label) Observe() Label {
	l.Observed = true
	return l
}

func (l Label) String() string {
	if l.Observed {
		return l.Name + observedSuffix
	}
	return l.Name
}

// Rule maps a date to an optional holiday label. Implementations must be
// pure and total: no side effects, no failure for any valid date.
type Rule interface {
	Evaluate(d dateutil.Date) (Label, bool)
}

// RuleFunc adapts a plain function to Rule. It is the extension point for
// custom holiday logic.
type RuleFunc func(d dateutil.Date) (Label, bool)

// Evaluate calls f(d)
func (f RuleFunc) Evaluate(d dateutil.Date) (Label, bool) {
	return f(d)
}

// DayType represents the type of day
type DayType int

const (
	DayTypeWorkday DayType = iota + 1
	DayTypeWeekend
	DayTypeHoliday
	DayTypeClosed
)

func (t DayType) String() string {
	switch t {
	case DayTypeWorkday:
		return "workday"
	case DayTypeWeekend:
		return "weekend"
	case DayTypeHoliday:
		return "holiday"
	case DayTypeClosed:
		return "closed"
	default:
		return "unknown"
	}
}

// DayInfo represents information about a specific day
type DayInfo struct {
	Date           dateutil.Date
	Type           DayType
	WorkingMinutes int
	IsWorkday      bool
	Holiday        Label
	Hours          Hours
	Note           string
}

// MonthInfo represents calendar information for a month
type MonthInfo struct {
	Year           int
	Month          time.Month
	WorkingMinutes int // Total business minutes in the month
	WorkDays       int
	Weekends       int
	Holidays       int
	ClosedDays     int
	Days           []DayInfo
}

// Holiday is a dated label returned by range queries
type Holiday struct {
	Date  dateutil.Date
	Label Label
}

// Calendar is the read-only query surface of a business calendar
type Calendar interface {
	// HolidayOn returns the holiday label for the date, if any
	HolidayOn(d dateutil.Date) (Label, bool)

	// IsBusinessDay checks if the given date is a business day
	IsBusinessDay(d dateutil.Date) bool

	// IsBusinessHour checks if the time of day on the date is within business hours
	IsBusinessHour(d dateutil.Date, t TimeOfDay) bool

	// DayInfo returns detailed info for a specific day
	DayInfo(d dateutil.Date) DayInfo

	// MonthInfo returns calendar info for the entire month
	MonthInfo(year int, month time.Month) MonthInfo
}
