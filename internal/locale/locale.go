// Package locale renders holiday labels and weekday names for display.
// Rendering never affects calendar evaluation.
package locale

import (
	"fmt"
	"time"

	"golang.org/x/text/language"

	"github.com/username/bizcal/internal/calendar"
)

var (
	supported = []language.Tag{language.English, language.Japanese}
	matcher   = language.NewMatcher(supported)
)

type catalog struct {
	holidays map[string]string
	weekdays [7]string
	observed string
}

var catalogs = map[language.Tag]catalog{
	language.English: {
		holidays: map[string]string{
			calendar.NewYearsDay:           "New Year's Day",
			calendar.MartinLutherKingJrDay: "Martin Luther King Jr. Day",
			calendar.PresidentsDay:         "Presidents' Day",
			calendar.MemorialDay:           "Memorial Day",
			calendar.JuneteenthDay:         "Juneteenth",
			calendar.IndependenceDay:       "Independence Day",
			calendar.LaborDay:              "Labor Day",
			calendar.ColumbusDay:           "Columbus Day",
			calendar.VeteransDay:           "Veterans Day",
			calendar.ThanksgivingDay:       "Thanksgiving Day",
			calendar.ChristmasDay:          "Christmas Day",
			calendar.SaturdayName:          "Saturday",
			calendar.SundayName:            "Sunday",
		},
		weekdays: [7]string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"},
		observed: "observed",
	},
	language.Japanese: {
		holidays: map[string]string{
			calendar.NewYearsDay:           "元日",
			calendar.MartinLutherKingJrDay: "キング牧師記念日",
			calendar.PresidentsDay:         "大統領の日",
			calendar.MemorialDay:           "戦没将兵追悼記念日",
			calendar.JuneteenthDay:         "ジューンティーンス",
			calendar.IndependenceDay:       "独立記念日",
			calendar.LaborDay:              "労働者の日",
			calendar.ColumbusDay:           "コロンブス・デー",
			calendar.VeteransDay:           "退役軍人の日",
			calendar.ThanksgivingDay:       "感謝祭",
			calendar.ChristmasDay:          "クリスマス",
			calendar.SaturdayName:          "土曜日",
			calendar.SundayName:            "日曜日",
		},
		weekdays: [7]string{"日曜日", "月曜日", "火曜日", "水曜日", "木曜日", "金曜日", "土曜日"},
		observed: "振替休日",
	},
}

// Renderer renders calendar labels in one language
type Renderer struct {
	tag     language.Tag
	catalog catalog
}

// New returns a renderer for the closest supported match of locale.
// An empty locale selects English.
func New(locale string) (*Renderer, error) {
	if locale == "" {
		return &Renderer{tag: language.English, catalog: catalogs[language.English]}, nil
	}

	requested, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("failed to parse locale %q: %w", locale, err)
	}

	_, index, _ := matcher.Match(requested)
	tag := supported[index]
	return &Renderer{tag: tag, catalog: catalogs[tag]}, nil
}

// Tag returns the language actually used for rendering
func (r *Renderer) Tag() language.Tag {
	return r.tag
}

// Label renders a holiday label. Names without a translation are returned
// unchanged.
func (r *Renderer) Label(l calendar.Label) string {
	name, ok := r.catalog.holidays[l.Name]
	if !ok {
		name = l.Name
	}
	if l.Observed {
		return fmt.Sprintf("%s (%s)", name, r.catalog.observed)
	}
	return name
}

// Weekday renders a weekday name
func (r *Renderer) Weekday(wd time.Weekday) string {
	if wd < time.Sunday || wd > time.Saturday {
		return wd.String()
	}
	return r.catalog.weekdays[wd]
}
