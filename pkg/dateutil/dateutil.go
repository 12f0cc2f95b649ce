package dateutil

import (
	"fmt"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// Date is a calendar date without a time of day or a timezone.
// The zero value is not a valid date; use New or one of the parse helpers.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// New returns the date for year, month and day, normalizing overflow
// the same way time.Date does (e.g. January 32 becomes February 1).
func New(year int, month time.Month, day int) Date {
	return FromTime(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// FromTime returns the calendar date of t in t's location
func FromTime(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// Today returns today's date in the local timezone
func Today() Date {
	return FromTime(time.Now())
}

// Time returns midnight of the date in loc
func (d Date) Time(loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, loc)
}

// IsValid reports whether the date names a real day of the Gregorian calendar
func (d Date) IsValid() bool {
	if d.Month < time.January || d.Month > time.December {
		return false
	}
	return d.Day >= 1 && d.Day <= DaysIn(d.Year, d.Month)
}

// Weekday returns the day of the week of the date
func (d Date) Weekday() time.Weekday {
	return d.Time(time.UTC).Weekday()
}

// AddDays returns the date n days after d (n may be negative)
func (d Date) AddDays(n int) Date {
	return New(d.Year, d.Month, d.Day+n)
}

// Before reports whether d is strictly earlier than other
func (d Date) Before(other Date) bool {
	if d.Year != other.Year {
		return d.Year < other.Year
	}
	if d.Month != other.Month {
		return d.Month < other.Month
	}
	return d.Day < other.Day
}

// After reports whether d is strictly later than other
func (d Date) After(other Date) bool {
	return other.Before(d)
}

// Equal reports whether both dates name the same day
func (d Date) Equal(other Date) bool {
	return d == other
}

// String formats the date as YYYY-MM-DD
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// MarshalText implements encoding.TextMarshaler
func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (d *Date) UnmarshalText(text []byte) error {
	parsed, err := ParseDate(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// DaysIn returns the number of days in the given month
func DaysIn(year int, month time.Month) int {
	// day 0 of the next month is the last day of this one
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// NthWeekday returns the n-th (1-based) occurrence of weekday in the month.
// ok is false when the month has fewer than n such weekdays.
func NthWeekday(year int, month time.Month, weekday time.Weekday, n int) (date Date, ok bool) {
	if n < 1 {
		return Date{}, false
	}
	first := Date{Year: year, Month: month, Day: 1}
	offset := (int(weekday) - int(first.Weekday()) + 7) % 7
	day := 1 + offset + (n-1)*7
	if day > DaysIn(year, month) {
		return Date{}, false
	}
	return Date{Year: year, Month: month, Day: day}, true
}

// LastWeekday returns the last occurrence of weekday in the month
func LastWeekday(year int, month time.Month, weekday time.Weekday) Date {
	lastDay := DaysIn(year, month)
	last := Date{Year: year, Month: month, Day: lastDay}
	offset := (int(last.Weekday()) - int(weekday) + 7) % 7
	return Date{Year: year, Month: month, Day: lastDay - offset}
}

// StartOfWeek returns the Monday of the week for the given date
func StartOfWeek(date Date) Date {
	weekday := int(date.Weekday())
	if weekday == 0 {
		weekday = 7 // Sunday = 7
	}
	return date.AddDays(-(weekday - 1))
}

// IsWeekday returns true if the date is Monday-Friday
func IsWeekday(date Date) bool {
	weekday := date.Weekday()
	return weekday >= time.Monday && weekday <= time.Friday
}

// IsWeekend returns true if the date is Saturday or Sunday
func IsWeekend(date Date) bool {
	weekday := date.Weekday()
	return weekday == time.Saturday || weekday == time.Sunday
}

// ParseDate parses date string in various formats
func ParseDate(dateStr string) (Date, error) {
	formats := []string{
		dateLayout,
		"02.01.2006",
		"2006/01/02",
		"20060102",
	}

	dateStr = strings.TrimSpace(dateStr)
	for _, format := range formats {
		if t, err := time.Parse(format, dateStr); err == nil {
			return FromTime(t), nil
		}
	}

	return Date{}, fmt.Errorf("unrecognized date %q", dateStr)
}

// ParseMonthDay parses an annual date in MM-DD form.
// February 29 is accepted.
func ParseMonthDay(s string) (time.Month, int, error) {
	var m, d int
	if _, err := fmt.Sscanf(strings.TrimSpace(s), "%d-%d", &m, &d); err != nil {
		return 0, 0, fmt.Errorf("unrecognized month-day %q: %w", s, err)
	}
	month := time.Month(m)
	// 2000 is a leap year, so Feb 29 validates
	if !(Date{Year: 2000, Month: month, Day: d}).IsValid() {
		return 0, 0, fmt.Errorf("month-day %q out of range", s)
	}
	return month, d, nil
}

// ParseWeekday parses an English weekday name or its three-letter abbreviation
func ParseWeekday(s string) (time.Weekday, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		full := strings.ToLower(wd.String())
		if name == full || name == full[:3] {
			return wd, nil
		}
	}
	return 0, fmt.Errorf("unknown weekday %q", s)
}
