package calendar

import (
	"errors"
	"fmt"
	"time"

	"github.com/username/bizcal/pkg/dateutil"
)

// ErrInvalidRule is returned when a rule cannot ever be evaluated meaningfully
var ErrInvalidRule = errors.New("invalid holiday rule")

// Weekend closure labels
const (
	SaturdayName = "Saturday"
	SundayName   = "Sunday"
)

// validator is implemented by rules whose parameters can be checked at build time
type validator interface {
	validate() error
}

type fixedDate struct {
	month time.Month
	day   int
	label Label
}

// FixedDate matches the same month and day every year
func FixedDate(month time.Month, day int, name string) Rule {
	return fixedDate{month: month, day: day, label: Label{Name: name}}
}

func (r fixedDate) Evaluate(d dateutil.Date) (Label, bool) {
	if d.Month == r.month && d.Day == r.day {
		return r.label, true
	}
	return Label{}, false
}

func (r fixedDate) validate() error {
	if r.label.Name == "" {
		return fmt.Errorf("fixed date %02d-%02d has no name: %w", int(r.month), r.day, ErrInvalidRule)
	}
	// leap year so that Feb 29 holidays are accepted
	if !(dateutil.Date{Year: 2000, Month: r.month, Day: r.day}).IsValid() {
		return fmt.Errorf("fixed date %02d-%02d does not exist: %w", int(r.month), r.day, ErrInvalidRule)
	}
	return nil
}

type nthWeekday struct {
	month   time.Month
	weekday time.Weekday
	n       int
	label   Label
}

// NthWeekday matches the n-th weekday of the month, e.g. the 3rd Monday of January
func NthWeekday(month time.Month, weekday time.Weekday, n int, name string) Rule {
	return nthWeekday{month: month, weekday: weekday, n: n, label: Label{Name: name}}
}

func (r nthWeekday) Evaluate(d dateutil.Date) (Label, bool) {
	if d.Month != r.month || d.Weekday() != r.weekday {
		return Label{}, false
	}
	target, ok := dateutil.NthWeekday(d.Year, r.month, r.weekday, r.n)
	if ok && target.Day == d.Day {
		return r.label, true
	}
	return Label{}, false
}

func (r nthWeekday) validate() error {
	switch {
	case r.label.Name == "":
		return fmt.Errorf("weekday ordinal rule has no name: %w", ErrInvalidRule)
	case r.month < time.January || r.month > time.December:
		return fmt.Errorf("%s: month %d out of range: %w", r.label.Name, r.month, ErrInvalidRule)
	case r.weekday < time.Sunday || r.weekday > time.Saturday:
		return fmt.Errorf("%s: weekday %d out of range: %w", r.label.Name, r.weekday, ErrInvalidRule)
	case r.n < 1 || r.n > 5:
		return fmt.Errorf("%s: ordinal %d must be between 1 and 5: %w", r.label.Name, r.n, ErrInvalidRule)
	}
	return nil
}

type lastWeekday struct {
	month   time.Month
	weekday time.Weekday
	label   Label
}

// LastWeekday matches the last weekday of the month, e.g. the last Monday of May
func LastWeekday(month time.Month, weekday time.Weekday, name string) Rule {
	return lastWeekday{month: month, weekday: weekday, label: Label{Name: name}}
}

func (r lastWeekday) Evaluate(d dateutil.Date) (Label, bool) {
	if d.Month != r.month || d.Weekday() != r.weekday {
		return Label{}, false
	}
	// only the final week of the month can hold the last occurrence
	if d.Day+7 <= dateutil.DaysIn(d.Year, d.Month) {
		return Label{}, false
	}
	return r.label, true
}

func (r lastWeekday) validate() error {
	switch {
	case r.label.Name == "":
		return fmt.Errorf("last weekday rule has no name: %w", ErrInvalidRule)
	case r.month < time.January || r.month > time.December:
		return fmt.Errorf("%s: month %d out of range: %w", r.label.Name, r.month, ErrInvalidRule)
	case r.weekday < time.Sunday || r.weekday > time.Saturday:
		return fmt.Errorf("%s: weekday %d out of range: %w", r.label.Name, r.weekday, ErrInvalidRule)
	}
	return nil
}

// Weekends closes Saturdays and Sundays, labelling them by weekday name
var Weekends Rule = RuleFunc(func(d dateutil.Date) (Label, bool) {
	switch d.Weekday() {
	case time.Saturday:
		return Label{Name: SaturdayName, Weekend: true}, true
	case time.Sunday:
		return Label{Name: SundayName, Weekend: true}, true
	default:
		return Label{}, false
	}
})

type since struct {
	year int
	rule Rule
}

// Since restricts rule to dates in year or later
func Since(year int, rule Rule) Rule {
	return since{year: year, rule: rule}
}

func (r since) Evaluate(d dateutil.Date) (Label, bool) {
	if d.Year < r.year {
		return Label{}, false
	}
	return r.rule.Evaluate(d)
}

func (r since) validate() error {
	return validateRule(r.rule)
}

type named struct {
	label Label
	match func(d dateutil.Date) bool
}

// Named wraps a date predicate into a rule producing a fixed label
func Named(name string, match func(d dateutil.Date) bool) Rule {
	return named{label: Label{Name: name}, match: match}
}

func (r named) Evaluate(d dateutil.Date) (Label, bool) {
	if r.match(d) {
		return r.label, true
	}
	return Label{}, false
}

func (r named) validate() error {
	if r.match == nil {
		return fmt.Errorf("%s: nil match function: %w", r.label.Name, ErrInvalidRule)
	}
	if r.label.Name == "" {
		return fmt.Errorf("named rule has no name: %w", ErrInvalidRule)
	}
	return nil
}

func validateRule(r Rule) error {
	if r == nil {
		return fmt.Errorf("nil rule: %w", ErrInvalidRule)
	}
	if f, ok := r.(RuleFunc); ok && f == nil {
		return fmt.Errorf("nil rule function: %w", ErrInvalidRule)
	}
	if v, ok := r.(validator); ok {
		return v.validate()
	}
	return nil
}
