package calendar

import (
	"fmt"
	"sort"
	"time"

	"github.com/rickar/cal/v2"
	"github.com/rickar/cal/v2/us"
	"github.com/username/bizcal/pkg/dateutil"
)

// calHolidays are the cal/v2 United States definitions selectable by name
var calHolidays = map[string]*cal.Holiday{
	"NewYear":                 us.NewYear,
	"MlkDay":                  us.MlkDay,
	"PresidentsDay":           us.PresidentsDay,
	"MemorialDay":             us.MemorialDay,
	"Juneteenth":              us.Juneteenth,
	"IndependenceDay":         us.IndependenceDay,
	"LaborDay":                us.LaborDay,
	"ColumbusDay":             us.ColumbusDay,
	"VeteransDay":             us.VeteransDay,
	"ThanksgivingDay":         us.ThanksgivingDay,
	"DayAfterThanksgivingDay": us.DayAfterThanksgivingDay,
	"ChristmasDay":            us.ChristmasDay,
}

// HolidayRule adapts a cal/v2 holiday definition to a Rule. The actual
// date yields the holiday name; the observed date, when it differs,
// yields the observed label.
func HolidayRule(h *cal.Holiday) Rule {
	if h == nil {
		return nil
	}
	bc := cal.NewBusinessCalendar()
	bc.AddHoliday(h)

	return RuleFunc(func(d dateutil.Date) (Label, bool) {
		actual, observed, hol := bc.IsHoliday(d.Time(time.UTC))
		switch {
		case actual:
			return Label{Name: hol.Name}, true
		case observed:
			return Label{Name: hol.Name, Observed: true}, true
		default:
			return Label{}, false
		}
	})
}

// USHolidayRule looks up a cal/v2 United States holiday by its exported name
// (e.g. "DayAfterThanksgivingDay") and adapts it with HolidayRule
func USHolidayRule(name string) (Rule, error) {
	h, ok := calHolidays[name]
	if !ok {
		return nil, fmt.Errorf("unknown US holiday %q (known: %v): %w", name, USHolidayNames(), ErrInvalidRule)
	}
	return HolidayRule(h), nil
}

// USHolidayNames lists the names accepted by USHolidayRule
func USHolidayNames() []string {
	names := make([]string, 0, len(calHolidays))
	for name := range calHolidays {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
