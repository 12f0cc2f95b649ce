package calendar

import "time"

// United States federal holiday names
const (
	NewYearsDay           = "NewYearsDay"
	MartinLutherKingJrDay = "MartinLutherKingJrDay"
	PresidentsDay         = "PresidentsDay"
	MemorialDay           = "MemorialDay"
	JuneteenthDay         = "Juneteenth"
	IndependenceDay       = "IndependenceDay"
	LaborDay              = "LaborDay"
	ColumbusDay           = "ColumbusDay"
	VeteransDay           = "VeteransDay"
	ThanksgivingDay       = "ThanksgivingDay"
	ChristmasDay          = "ChristmasDay"
)

// United States federal holiday rules. Fixed-date holidays are observed on
// the adjacent weekday when they fall on a weekend.
var (
	USNewYearsDay           = Observed(FixedDate(time.January, 1, NewYearsDay))
	USMartinLutherKingJrDay = NthWeekday(time.January, time.Monday, 3, MartinLutherKingJrDay)
	USPresidentsDay         = NthWeekday(time.February, time.Monday, 3, PresidentsDay)
	USMemorialDay           = LastWeekday(time.May, time.Monday, MemorialDay)
	USJuneteenth            = Observed(Since(2021, FixedDate(time.June, 19, JuneteenthDay)))
	USIndependenceDay       = Observed(FixedDate(time.July, 4, IndependenceDay))
	USLaborDay              = NthWeekday(time.September, time.Monday, 1, LaborDay)
	USColumbusDay           = NthWeekday(time.October, time.Monday, 2, ColumbusDay)
	USVeteransDay           = Observed(FixedDate(time.November, 11, VeteransDay))
	USThanksgivingDay       = NthWeekday(time.November, time.Thursday, 4, ThanksgivingDay)
	USChristmasDay          = Observed(FixedDate(time.December, 25, ChristmasDay))
)

// UnitedStates returns a fresh catalog of the United States federal holidays.
// Weekend closure is not included; add Weekends separately.
func UnitedStates() *Catalog {
	return &Catalog{
		name: "us",
		rules: []Rule{
			USNewYearsDay,
			USMartinLutherKingJrDay,
			USPresidentsDay,
			USMemorialDay,
			USJuneteenth,
			USIndependenceDay,
			USLaborDay,
			USColumbusDay,
			USVeteransDay,
			USThanksgivingDay,
			USChristmasDay,
		},
	}
}
