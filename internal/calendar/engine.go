package calendar

import (
	"fmt"
	"sort"
	"time"

	"github.com/username/bizcal/pkg/dateutil"
	"go.uber.org/multierr"
)

var _ Calendar = (*Engine)(nil)

// searchWindow bounds NextBusinessDay and PreviousBusinessDay
const searchWindow = 366

// Engine answers business-day and business-hour queries by combining a
// holiday catalog with hours predicates.
//
// Days without a matching hours predicate are business days (unless they are
// holidays) but have no business hours: IsBusinessHour is false for them.
type Engine struct {
	catalog    *Catalog
	predicates []Predicate // highest priority first
	location   *time.Location
}

type rankedPredicate struct {
	Predicate
	index int
}

// NewEngine validates predicates and returns an engine. Predicates with an
// explicit priority rank above all others, highest first. The rest are
// ranked by their position in the slice, later entries overriding earlier
// ones. A nil catalog means no holiday rules.
func NewEngine(catalog *Catalog, predicates []Predicate, location *time.Location) (*Engine, error) {
	if catalog == nil {
		catalog = &Catalog{name: "empty"}
	}
	if location == nil {
		location = time.Local
	}

	var errs error
	ranked := make([]rankedPredicate, len(predicates))
	for i, p := range predicates {
		if err := p.validate(); err != nil {
			errs = multierr.Append(errs, fmt.Errorf("predicate %d: %w", i, err))
			continue
		}
		ranked[i] = rankedPredicate{Predicate: p, index: i}
	}
	if errs != nil {
		return nil, errs
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]
		if a.hasPriority != b.hasPriority {
			return a.hasPriority
		}
		if a.hasPriority && a.priority != b.priority {
			return a.priority > b.priority
		}
		return a.index > b.index
	})

	ordered := make([]Predicate, len(ranked))
	for i, r := range ranked {
		ordered[i] = r.Predicate
	}

	return &Engine{
		catalog:    catalog,
		predicates: ordered,
		location:   location,
	}, nil
}

// Catalog returns the holiday catalog
func (e *Engine) Catalog() *Catalog {
	return e.catalog
}

// Location returns the timezone used to convert instants to dates
func (e *Engine) Location() *time.Location {
	return e.location
}

// Predicates returns a copy of the predicates, highest priority first
func (e *Engine) Predicates() []Predicate {
	return append([]Predicate(nil), e.predicates...)
}

// HolidayOn returns the holiday label for d. The holiday of the deciding
// predicate takes precedence over the catalog.
func (e *Engine) HolidayOn(d dateutil.Date) (Label, bool) {
	if p, ok := e.decide(d); ok && p.hasHoliday {
		return p.holiday, true
	}
	return e.catalog.Evaluate(d)
}

// HoursOn returns the business hours of the deciding predicate for d.
// ok is false when no predicate matches or the deciding one sets no hours.
func (e *Engine) HoursOn(d dateutil.Date) (Hours, bool) {
	if p, ok := e.decide(d); ok && p.hasHours {
		return p.hours, true
	}
	return Hours{}, false
}

// decide returns the highest-ranked predicate matching d. It alone decides
// the date: an hours-only match clears any holiday set by lower-ranked
// predicates and leaves the catalog in charge, a holiday-only match leaves
// the date without hours.
func (e *Engine) decide(d dateutil.Date) (Predicate, bool) {
	for _, p := range e.predicates {
		if p.Matches(d) {
			return p, true
		}
	}
	return Predicate{}, false
}

// IsBusinessDay reports whether d is neither a holiday nor explicitly closed
func (e *Engine) IsBusinessDay(d dateutil.Date) bool {
	if _, ok := e.HolidayOn(d); ok {
		return false
	}
	if h, ok := e.HoursOn(d); ok && h.IsClosed() {
		return false
	}
	return true
}

// IsBusinessHour reports whether t on d falls inside business hours.
// A date without configured hours has no business hours.
func (e *Engine) IsBusinessHour(d dateutil.Date, t TimeOfDay) bool {
	if _, ok := e.HolidayOn(d); ok {
		return false
	}
	h, ok := e.HoursOn(d)
	if !ok {
		return false
	}
	return h.Contains(t)
}

// IsBusinessTime is IsBusinessHour for an instant, evaluated in the engine location
func (e *Engine) IsBusinessTime(t time.Time) bool {
	local := t.In(e.location)
	return e.IsBusinessHour(dateutil.FromTime(local), TimeOfDayOf(local))
}

// Holidays lists every holiday in [from, to]
func (e *Engine) Holidays(from, to dateutil.Date) []Holiday {
	var holidays []Holiday
	for d := from; !d.After(to); d = d.AddDays(1) {
		if label, ok := e.HolidayOn(d); ok {
			holidays = append(holidays, Holiday{Date: d, Label: label})
		}
	}
	return holidays
}

// DayInfo returns detailed info for a specific day
func (e *Engine) DayInfo(d dateutil.Date) DayInfo {
	info := DayInfo{Date: d}

	if label, ok := e.HolidayOn(d); ok {
		info.Holiday = label
		info.Note = label.String()
		info.Type = DayTypeHoliday
		if label.Weekend && !label.Observed {
			info.Type = DayTypeWeekend
		}
		return info
	}

	h, ok := e.HoursOn(d)
	if ok && h.IsClosed() {
		info.Type = DayTypeClosed
		return info
	}

	info.Type = DayTypeWorkday
	info.IsWorkday = true
	info.Hours = h
	info.WorkingMinutes = int(h.Total() / time.Minute)
	return info
}

// MonthInfo returns calendar info for the entire month
func (e *Engine) MonthInfo(year int, month time.Month) MonthInfo {
	days := dateutil.DaysIn(year, month)
	info := MonthInfo{
		Year:  year,
		Month: month,
		Days:  make([]DayInfo, 0, days),
	}

	for day := 1; day <= days; day++ {
		dayInfo := e.DayInfo(dateutil.Date{Year: year, Month: month, Day: day})
		info.Days = append(info.Days, dayInfo)

		switch dayInfo.Type {
		case DayTypeWorkday:
			info.WorkDays++
			info.WorkingMinutes += dayInfo.WorkingMinutes
		case DayTypeWeekend:
			info.Weekends++
		case DayTypeHoliday:
			info.Holidays++
		case DayTypeClosed:
			info.ClosedDays++
		}
	}

	return info
}

// NextBusinessDay returns the first business day strictly after d.
// ok is false if none exists within a year.
func (e *Engine) NextBusinessDay(d dateutil.Date) (dateutil.Date, bool) {
	return e.seekBusinessDay(d, 1)
}

// PreviousBusinessDay returns the last business day strictly before d.
// ok is false if none exists within a year.
func (e *Engine) PreviousBusinessDay(d dateutil.Date) (dateutil.Date, bool) {
	return e.seekBusinessDay(d, -1)
}

func (e *Engine) seekBusinessDay(d dateutil.Date, step int) (dateutil.Date, bool) {
	for i := 0; i < searchWindow; i++ {
		d = d.AddDays(step)
		if e.IsBusinessDay(d) {
			return d, true
		}
	}
	return dateutil.Date{}, false
}
