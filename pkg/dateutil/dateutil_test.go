package dateutil

import (
	"testing"
	"time"
)

func TestNew_Normalizes(t *testing.T) {
	got := New(2024, time.January, 32)
	want := Date{Year: 2024, Month: time.February, Day: 1}

	if got != want {
		t.Errorf("New(2024, January, 32) = %v, want %v", got, want)
	}
}

func TestAddDays(t *testing.T) {
	tests := []struct {
		name  string
		input Date
		days  int
		want  Date
	}{
		{"forward within month", Date{2025, time.January, 15}, 3, Date{2025, time.January, 18}},
		{"backward across year", Date{2023, time.January, 1}, -1, Date{2022, time.December, 31}},
		{"forward across leap day", Date{2024, time.February, 28}, 1, Date{2024, time.February, 29}},
		{"forward across non-leap february", Date{2023, time.February, 28}, 1, Date{2023, time.March, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.input.AddDays(tt.days)

			if got != tt.want {
				t.Errorf("%v.AddDays(%d) = %v, want %v", tt.input, tt.days, got, tt.want)
			}
		})
	}
}

func TestWeekday(t *testing.T) {
	tests := []struct {
		input Date
		want  time.Weekday
	}{
		{Date{2023, time.January, 1}, time.Sunday},
		{Date{2023, time.January, 2}, time.Monday},
		{Date{2021, time.July, 4}, time.Sunday},
		{Date{2023, time.November, 11}, time.Saturday},
		{Date{2000, time.February, 29}, time.Tuesday},
	}

	for _, tt := range tests {
		t.Run(tt.input.String(), func(t *testing.T) {
			if got := tt.input.Weekday(); got != tt.want {
				t.Errorf("%v.Weekday() = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestNthWeekday(t *testing.T) {
	tests := []struct {
		name    string
		year    int
		month   time.Month
		weekday time.Weekday
		n       int
		want    Date
		wantOK  bool
	}{
		{"3rd Monday of January 2023", 2023, time.January, time.Monday, 3, Date{2023, time.January, 16}, true},
		{"1st Monday of September 2023", 2023, time.September, time.Monday, 1, Date{2023, time.September, 4}, true},
		{"4th Thursday of November 2023", 2023, time.November, time.Thursday, 4, Date{2023, time.November, 23}, true},
		{"1st weekday equals first of month", 2024, time.January, time.Monday, 1, Date{2024, time.January, 1}, true},
		{"5th Monday of January 2024", 2024, time.January, time.Monday, 5, Date{2024, time.January, 29}, true},
		{"5th Monday of February 2023 does not exist", 2023, time.February, time.Monday, 5, Date{}, false},
		{"zero ordinal", 2023, time.January, time.Monday, 0, Date{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := NthWeekday(tt.year, tt.month, tt.weekday, tt.n)

			if ok != tt.wantOK || got != tt.want {
				t.Errorf("NthWeekday() = (%v, %v), want (%v, %v)", got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestNthWeekday_ThirdIsFirstPlusTwoWeeks(t *testing.T) {
	for year := 1990; year <= 2060; year++ {
		first, _ := NthWeekday(year, time.January, time.Monday, 1)
		third, _ := NthWeekday(year, time.January, time.Monday, 3)

		if third != first.AddDays(14) {
			t.Errorf("%d: third Monday %v, want %v", year, third, first.AddDays(14))
		}
	}
}

func TestLastWeekday(t *testing.T) {
	for year := 1990; year <= 2060; year++ {
		got := LastWeekday(year, time.May, time.Monday)

		if got.Weekday() != time.Monday {
			t.Errorf("%d: LastWeekday = %v is a %v", year, got, got.Weekday())
		}
		if got.Month != time.May || got.Day < 25 || got.Day > 31 {
			t.Errorf("%d: LastWeekday = %v, want a day in May 25-31", year, got)
		}
	}
}

func TestDaysIn(t *testing.T) {
	tests := []struct {
		year  int
		month time.Month
		want  int
	}{
		{2023, time.February, 28},
		{2024, time.February, 29},
		{1900, time.February, 28},
		{2000, time.February, 29},
		{2023, time.April, 30},
		{2023, time.December, 31},
	}

	for _, tt := range tests {
		if got := DaysIn(tt.year, tt.month); got != tt.want {
			t.Errorf("DaysIn(%d, %v) = %d, want %d", tt.year, tt.month, got, tt.want)
		}
	}
}

func TestStartOfWeek(t *testing.T) {
	tests := []struct {
		name     string
		input    Date
		expected Date
	}{
		{"Wednesday returns Monday", Date{2025, time.January, 15}, Date{2025, time.January, 13}},
		{"Monday returns same Monday", Date{2025, time.January, 13}, Date{2025, time.January, 13}},
		{"Sunday returns previous Monday", Date{2025, time.January, 19}, Date{2025, time.January, 13}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StartOfWeek(tt.input); got != tt.expected {
				t.Errorf("StartOfWeek(%v) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestIsWeekday(t *testing.T) {
	tests := []struct {
		name  string
		input Date
		want  bool
	}{
		{"Monday is weekday", Date{2025, time.January, 13}, true},
		{"Friday is weekday", Date{2025, time.January, 17}, true},
		{"Saturday is not weekday", Date{2025, time.January, 18}, false},
		{"Sunday is not weekday", Date{2025, time.January, 19}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsWeekday(tt.input); got != tt.want {
				t.Errorf("IsWeekday(%v) = %v, want %v", tt.input, got, tt.want)
			}
			if got := IsWeekend(tt.input); got == tt.want {
				t.Errorf("IsWeekend(%v) = %v, want %v", tt.input, got, !tt.want)
			}
		})
	}
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		input   string
		want    Date
		wantErr bool
	}{
		{"2023-01-02", Date{2023, time.January, 2}, false},
		{"02.01.2023", Date{2023, time.January, 2}, false},
		{"2023/01/02", Date{2023, time.January, 2}, false},
		{"20230102", Date{2023, time.January, 2}, false},
		{" 2023-01-02 ", Date{2023, time.January, 2}, false},
		{"2023-02-30", Date{}, true},
		{"yesterday", Date{}, true},
		{"", Date{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseDate(tt.input)

			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseDate(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseDate(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseMonthDay(t *testing.T) {
	month, day, err := ParseMonthDay("02-29")
	if err != nil || month != time.February || day != 29 {
		t.Errorf("ParseMonthDay(02-29) = (%v, %d, %v)", month, day, err)
	}

	for _, bad := range []string{"13-01", "04-31", "xx", "00-10"} {
		if _, _, err := ParseMonthDay(bad); err == nil {
			t.Errorf("ParseMonthDay(%q) expected error", bad)
		}
	}
}

func TestParseWeekday(t *testing.T) {
	tests := []struct {
		input   string
		want    time.Weekday
		wantErr bool
	}{
		{"Monday", time.Monday, false},
		{"sat", time.Saturday, false},
		{" SUNDAY ", time.Sunday, false},
		{"mo", 0, true},
	}

	for _, tt := range tests {
		got, err := ParseWeekday(tt.input)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("ParseWeekday(%q) = (%v, %v), want (%v, wantErr %v)", tt.input, got, err, tt.want, tt.wantErr)
		}
	}
}

func TestDateTextRoundTrip(t *testing.T) {
	var d Date
	if err := d.UnmarshalText([]byte("2024-02-29")); err != nil {
		t.Fatalf("UnmarshalText() error = %v", err)
	}
	text, _ := d.MarshalText()
	if string(text) != "2024-02-29" {
		t.Errorf("MarshalText() = %s", text)
	}
}
