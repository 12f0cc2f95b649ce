package calendar

import (
	"errors"
	"testing"
	"time"

	"github.com/rickar/cal/v2"
	"github.com/rickar/cal/v2/us"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHolidayRule_ObservedFromCal(t *testing.T) {
	rule := HolidayRule(us.IndependenceDay)

	label, ok := rule.Evaluate(date(2021, time.July, 4))
	require.True(t, ok)
	assert.False(t, label.Observed)

	label, ok = rule.Evaluate(date(2021, time.July, 5))
	require.True(t, ok)
	assert.True(t, label.Observed)
	assert.Equal(t, us.IndependenceDay.Name, label.Name)

	_, ok = rule.Evaluate(date(2021, time.July, 6))
	assert.False(t, ok)
}

// The ordinal rules must agree with the independent cal/v2 definitions
func TestUnitedStates_AgreesWithCal(t *testing.T) {
	pairs := []struct {
		ours   Rule
		theirs *cal.Holiday
	}{
		{USMartinLutherKingJrDay, us.MlkDay},
		{USPresidentsDay, us.PresidentsDay},
		{USMemorialDay, us.MemorialDay},
		{USLaborDay, us.LaborDay},
		{USColumbusDay, us.ColumbusDay},
		{USThanksgivingDay, us.ThanksgivingDay},
	}

	for _, p := range pairs {
		t.Run(p.theirs.Name, func(t *testing.T) {
			theirs := HolidayRule(p.theirs)
			for d := date(2000, time.January, 1); d.Year <= 2040; d = d.AddDays(1) {
				_, ourOK := p.ours.Evaluate(d)
				_, theirOK := theirs.Evaluate(d)
				if ourOK != theirOK {
					t.Errorf("%v: ours=%v cal=%v", d, ourOK, theirOK)
				}
			}
		})
	}
}

func TestUSHolidayRule(t *testing.T) {
	rule, err := USHolidayRule("DayAfterThanksgivingDay")
	require.NoError(t, err)

	_, ok := rule.Evaluate(date(2023, time.November, 24))
	assert.True(t, ok)

	_, err = USHolidayRule("Festivus")
	assert.True(t, errors.Is(err, ErrInvalidRule))

	assert.Contains(t, USHolidayNames(), "ChristmasDay")
	assert.Nil(t, HolidayRule(nil))
}
