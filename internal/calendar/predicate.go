package calendar

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/username/bizcal/pkg/dateutil"
)

// ErrInvalidPredicate is returned for predicates that can never apply or carry nothing
var ErrInvalidPredicate = errors.New("invalid hours predicate")

type matchKind int

const (
	matchWeekdays matchKind = iota + 1
	matchMonthDay
	matchDate
)

// Predicate binds a match condition to business hours and/or a holiday
// override. Predicates are values; the With* methods return modified copies.
//
// When several predicates match a date the highest-ranked one decides it
// alone: its holiday (if any) overrides the catalog and its hours (if any)
// are the hours of the day. Predicates with an explicit priority outrank
// all others; the rest rank by registration, so the most recently
// registered predicate overrides earlier ones.
type Predicate struct {
	kind     matchKind
	date     dateutil.Date
	month    time.Month
	day      int
	weekdays [7]bool

	// set when OnWeekdays received a value outside Sunday..Saturday
	badWeekday bool

	hours      Hours
	hasHours   bool
	holiday    Label
	hasHoliday bool

	priority    int
	hasPriority bool
}

// OnDate matches exactly one calendar date
func OnDate(d dateutil.Date) Predicate {
	return Predicate{kind: matchDate, date: d}
}

// OnMonthDay matches the same month and day every year
func OnMonthDay(month time.Month, day int) Predicate {
	return Predicate{kind: matchMonthDay, month: month, day: day}
}

// OnWeekdays matches any date falling on one of the weekdays
func OnWeekdays(weekdays ...time.Weekday) Predicate {
	p := Predicate{kind: matchWeekdays}
	for _, wd := range weekdays {
		if wd >= time.Sunday && wd <= time.Saturday {
			p.weekdays[wd] = true
		} else {
			p.badWeekday = true
		}
	}
	return p
}

// EveryDay matches all dates
func EveryDay() Predicate {
	return OnWeekdays(time.Sunday, time.Monday, time.Tuesday, time.Wednesday,
		time.Thursday, time.Friday, time.Saturday)
}

// WithHours returns a copy of p carrying hours
func (p Predicate) WithHours(h Hours) Predicate {
	p.hours = h
	p.hasHours = true
	return p
}

// WithHoliday returns a copy of p marking matched dates as the named holiday
func (p Predicate) WithHoliday(name string) Predicate {
	p.holiday = Label{Name: name}
	p.hasHoliday = true
	return p
}

// WithPriority returns a copy of p with an explicit priority. Any explicit
// priority outranks every predicate without one, regardless of registration
// order; among explicit priorities the higher value wins and ties go to the
// later registration.
func (p Predicate) WithPriority(priority int) Predicate {
	p.priority = priority
	p.hasPriority = true
	return p
}

// Matches reports whether the predicate applies to d
func (p Predicate) Matches(d dateutil.Date) bool {
	switch p.kind {
	case matchDate:
		return d == p.date
	case matchMonthDay:
		return d.Month == p.month && d.Day == p.day
	case matchWeekdays:
		return p.weekdays[d.Weekday()]
	default:
		return false
	}
}

// Hours returns the business hours carried by the predicate
func (p Predicate) Hours() (Hours, bool) {
	return p.hours, p.hasHours
}

// Holiday returns the holiday override carried by the predicate
func (p Predicate) Holiday() (Label, bool) {
	return p.holiday, p.hasHoliday
}

// Priority returns the explicit priority, if one was set
func (p Predicate) Priority() (int, bool) {
	return p.priority, p.hasPriority
}

// Specificity ranks match conditions: exact dates are more specific than
// annual month-days, which are more specific than weekday sets.
func (p Predicate) Specificity() int {
	return int(p.kind)
}

func (p Predicate) String() string {
	var cond string
	switch p.kind {
	case matchDate:
		cond = p.date.String()
	case matchMonthDay:
		cond = fmt.Sprintf("--%02d-%02d", int(p.month), p.day)
	case matchWeekdays:
		var names []string
		for wd, on := range p.weekdays {
			if on {
				names = append(names, time.Weekday(wd).String()[:3])
			}
		}
		cond = strings.Join(names, ",")
	default:
		cond = "?"
	}
	var parts []string
	if p.hasHours {
		parts = append(parts, "hours="+p.hours.String())
	}
	if p.hasHoliday {
		parts = append(parts, "holiday="+p.holiday.Name)
	}
	return cond + " " + strings.Join(parts, " ")
}

func (p Predicate) validate() error {
	if !p.hasHours && !p.hasHoliday {
		return fmt.Errorf("predicate %s sets neither hours nor holiday: %w", p, ErrInvalidPredicate)
	}
	if p.hasHoliday && p.holiday.Name == "" {
		return fmt.Errorf("predicate %s has an empty holiday name: %w", p, ErrInvalidPredicate)
	}

	switch p.kind {
	case matchDate:
		if !p.date.IsValid() {
			return fmt.Errorf("predicate date %s does not exist: %w", p.date, ErrInvalidPredicate)
		}
	case matchMonthDay:
		if !(dateutil.Date{Year: 2000, Month: p.month, Day: p.day}).IsValid() {
			return fmt.Errorf("predicate month-day %02d-%02d does not exist: %w", int(p.month), p.day, ErrInvalidPredicate)
		}
	case matchWeekdays:
		if p.badWeekday {
			return fmt.Errorf("predicate has a weekday out of range: %w", ErrInvalidPredicate)
		}
		empty := true
		for _, on := range p.weekdays {
			empty = empty && !on
		}
		if empty {
			return fmt.Errorf("predicate has an empty weekday set: %w", ErrInvalidPredicate)
		}
	default:
		return fmt.Errorf("predicate has no match condition: %w", ErrInvalidPredicate)
	}
	return nil
}
