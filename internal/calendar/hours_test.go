package calendar

import (
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestParseHours(t *testing.T) {
	tests := []struct {
		name    string
		spec    string
		want    []Interval
		wantErr bool
	}{
		{"single range", "09:00-17:00", []Interval{{Clock(9, 0), Clock(17, 0)}}, false},
		{"bare hours", "9-17", []Interval{{Clock(9, 0), Clock(17, 0)}}, false},
		{"lunch break", "9-12,13:00-17:30", []Interval{{Clock(9, 0), Clock(12, 0)}, {Clock(13, 0), Clock(17, 30)}}, false},
		{"unordered ranges are sorted", "13-17, 9-12", []Interval{{Clock(9, 0), Clock(12, 0)}, {Clock(13, 0), Clock(17, 0)}}, false},
		{"until midnight", "18:00-24:00", []Interval{{Clock(18, 0), Clock(24, 0)}}, false},
		{"adjacent ranges", "9-12,12-15", []Interval{{Clock(9, 0), Clock(12, 0)}, {Clock(12, 0), Clock(15, 0)}}, false},
		{"closed sentinel", "closed", nil, false},
		{"closed sentinel any case", " Closed ", nil, false},
		{"japanese closed sentinel", "休業", nil, false},
		{"empty", "", nil, true},
		{"missing dash", "09:00", nil, true},
		{"reversed", "17-9", nil, true},
		{"empty range", "9-9", nil, true},
		{"overlap", "9-13,12-17", nil, true},
		{"past midnight", "22-25", nil, true},
		{"bad minutes", "9:7-17", nil, true},
		{"minutes out of range", "9:60-17", nil, true},
		{"24 with minutes", "9-24:30", nil, true},
		{"garbage", "nine-five", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseHours(tt.spec)

			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseHours(%q) error = %v, wantErr %v", tt.spec, err, tt.wantErr)
			}
			if err != nil {
				if !errors.Is(err, ErrInvalidHours) {
					t.Errorf("ParseHours(%q) error = %v, want ErrInvalidHours", tt.spec, err)
				}
				return
			}
			if diff := cmp.Diff(tt.want, got.Intervals()); diff != "" {
				t.Errorf("ParseHours(%q) intervals mismatch (-want +got):\n%s", tt.spec, diff)
			}
		})
	}
}

func TestHoursContains(t *testing.T) {
	h := MustHours("09:00-12:00,13:00-17:00")

	tests := []struct {
		at   TimeOfDay
		want bool
	}{
		{Clock(8, 59), false},
		{Clock(9, 0), true},
		{Clock(11, 59), true},
		{Clock(12, 0), false},
		{Clock(12, 30), false},
		{Clock(13, 0), true},
		{Clock(16, 59) + 59, true},
		{Clock(17, 0), false},
	}

	for _, tt := range tests {
		t.Run(tt.at.String(), func(t *testing.T) {
			if got := h.Contains(tt.at); got != tt.want {
				t.Errorf("Contains(%v) = %v, want %v", tt.at, got, tt.want)
			}
		})
	}
}

func TestHoursTotalAndString(t *testing.T) {
	h := MustHours("9-12,13:00-17:30")

	if got := h.Total(); got != 7*time.Hour+30*time.Minute {
		t.Errorf("Total() = %v", got)
	}
	if got := h.String(); got != "09:00-12:00,13:00-17:30" {
		t.Errorf("String() = %q", got)
	}
	if !Closed.IsClosed() || Closed.String() != "closed" || Closed.Total() != 0 {
		t.Errorf("Closed = %q, total %v", Closed.String(), Closed.Total())
	}
}

func TestHoursIntervalsIsACopy(t *testing.T) {
	h := MustHours("9-17")
	ivs := h.Intervals()
	ivs[0].End = Clock(23, 0)

	if h.Contains(Clock(20, 0)) {
		t.Error("mutating Intervals() changed the hours")
	}
}

func TestTimeOfDayOf(t *testing.T) {
	at := time.Date(2024, 3, 4, 16, 59, 30, 0, time.UTC)

	if got := TimeOfDayOf(at); got != Clock(16, 59)+30 {
		t.Errorf("TimeOfDayOf() = %d", got)
	}
}

func TestMustHoursPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustHours did not panic on a bad spec")
		}
	}()
	MustHours("17-9")
}
