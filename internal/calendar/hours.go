package calendar

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidHours is returned for malformed or inconsistent hours specifications
var ErrInvalidHours = errors.New("invalid business hours")

// closedSentinels mark a day with no business hours at all
var closedSentinels = []string{"closed", "休業"}

const endOfDay TimeOfDay = 24 * 60 * 60

// TimeOfDay is a wall-clock time as seconds since midnight, 0 to 24:00
type TimeOfDay int

// Clock returns the time of day for hour and minute
func Clock(hour, minute int) TimeOfDay {
	return TimeOfDay(hour*3600 + minute*60)
}

// TimeOfDayOf returns the wall-clock time of t in t's location
func TimeOfDayOf(t time.Time) TimeOfDay {
	return TimeOfDay(t.Hour()*3600 + t.Minute()*60 + t.Second())
}

// ParseTimeOfDay parses "9", "09:00" or "9:30". "24:00" is accepted as end of day.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	s = strings.TrimSpace(s)
	hourStr, minuteStr, hasMinutes := strings.Cut(s, ":")

	hour, err := strconv.Atoi(hourStr)
	if err != nil {
		return 0, fmt.Errorf("bad hour in %q: %w", s, ErrInvalidHours)
	}
	minute := 0
	if hasMinutes {
		if len(minuteStr) != 2 {
			return 0, fmt.Errorf("bad minute in %q: %w", s, ErrInvalidHours)
		}
		minute, err = strconv.Atoi(minuteStr)
		if err != nil {
			return 0, fmt.Errorf("bad minute in %q: %w", s, ErrInvalidHours)
		}
	}

	if hour < 0 || minute < 0 || minute > 59 || hour > 24 || (hour == 24 && minute != 0) {
		return 0, fmt.Errorf("time %q out of range: %w", s, ErrInvalidHours)
	}
	return Clock(hour, minute), nil
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", int(t)/3600, int(t)%3600/60)
}

// Interval is a half-open time range [Start, End)
type Interval struct {
	Start TimeOfDay
	End   TimeOfDay
}

// Contains reports whether t is in [Start, End)
func (i Interval) Contains(t TimeOfDay) bool {
	return t >= i.Start && t < i.End
}

// Duration returns the length of the interval
func (i Interval) Duration() time.Duration {
	return time.Duration(i.End-i.Start) * time.Second
}

func (i Interval) String() string {
	return i.Start.String() + "-" + i.End.String()
}

// Hours is an ordered set of non-overlapping intervals within one day.
// The zero value means closed all day.
type Hours struct {
	intervals []Interval
}

// Closed is the hours value for a day without business hours
var Closed = Hours{}

// NewHours sorts and validates intervals
func NewHours(intervals ...Interval) (Hours, error) {
	sorted := append([]Interval(nil), intervals...)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Start < sorted[j].Start
	})

	for i, iv := range sorted {
		if iv.Start < 0 || iv.End > endOfDay {
			return Hours{}, fmt.Errorf("interval %s outside the day: %w", iv, ErrInvalidHours)
		}
		if iv.Start >= iv.End {
			return Hours{}, fmt.Errorf("interval %s is empty or reversed: %w", iv, ErrInvalidHours)
		}
		if i > 0 && iv.Start < sorted[i-1].End {
			return Hours{}, fmt.Errorf("interval %s overlaps %s: %w", iv, sorted[i-1], ErrInvalidHours)
		}
	}

	return Hours{intervals: sorted}, nil
}

// MustHours is like ParseHours but panics on error.
// Intended for package-level literals and tests.
func MustHours(spec string) Hours {
	h, err := ParseHours(spec)
	if err != nil {
		panic(err)
	}
	return h
}

// ParseHours parses a compact hours specification:
//
//	"09:00-17:00"
//	"9-12,13-17:30"
//	"closed"
func ParseHours(spec string) (Hours, error) {
	trimmed := strings.TrimSpace(spec)
	if trimmed == "" {
		return Hours{}, fmt.Errorf("empty hours specification: %w", ErrInvalidHours)
	}
	for _, sentinel := range closedSentinels {
		if strings.EqualFold(trimmed, sentinel) {
			return Closed, nil
		}
	}

	var intervals []Interval
	for _, part := range strings.Split(trimmed, ",") {
		startStr, endStr, ok := strings.Cut(part, "-")
		if !ok {
			return Hours{}, fmt.Errorf("range %q has no '-': %w", strings.TrimSpace(part), ErrInvalidHours)
		}
		start, err := ParseTimeOfDay(startStr)
		if err != nil {
			return Hours{}, fmt.Errorf("hours %q: %w", spec, err)
		}
		end, err := ParseTimeOfDay(endStr)
		if err != nil {
			return Hours{}, fmt.Errorf("hours %q: %w", spec, err)
		}
		intervals = append(intervals, Interval{Start: start, End: end})
	}

	h, err := NewHours(intervals...)
	if err != nil {
		return Hours{}, fmt.Errorf("hours %q: %w", spec, err)
	}
	return h, nil
}

// IsClosed reports whether there are no business hours
func (h Hours) IsClosed() bool {
	return len(h.intervals) == 0
}

// Contains reports whether t falls in one of the intervals
func (h Hours) Contains(t TimeOfDay) bool {
	for _, iv := range h.intervals {
		if iv.Contains(t) {
			return true
		}
	}
	return false
}

// Intervals returns a copy of the intervals in ascending order
func (h Hours) Intervals() []Interval {
	return append([]Interval(nil), h.intervals...)
}

// Total returns the summed length of all intervals
func (h Hours) Total() time.Duration {
	var total time.Duration
	for _, iv := range h.intervals {
		total += iv.Duration()
	}
	return total
}

func (h Hours) String() string {
	if h.IsClosed() {
		return closedSentinels[0]
	}
	parts := make([]string, len(h.intervals))
	for i, iv := range h.intervals {
		parts[i] = iv.String()
	}
	return strings.Join(parts, ",")
}
