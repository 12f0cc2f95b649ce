package calendar

import (
	"time"

	"github.com/username/bizcal/pkg/dateutil"
)

type observed struct {
	rule Rule
}

// Observed wraps rule with weekend substitution: a holiday on Sunday is
// observed the following Monday and a holiday on Saturday is observed the
// preceding Friday. A direct hit is always returned unchanged.
//
// Only Monday looks back and only Friday looks ahead, so a Saturday holiday
// is never carried forward to Monday and a Sunday holiday is never carried
// back to Friday.
func Observed(rule Rule) Rule {
	return observed{rule: rule}
}

func (r observed) Evaluate(d dateutil.Date) (Label, bool) {
	if label, ok := r.rule.Evaluate(d); ok {
		return label, true
	}

	var movedFrom dateutil.Date
	switch d.Weekday() {
	case time.Monday:
		movedFrom = d.AddDays(-1)
	case time.Friday:
		movedFrom = d.AddDays(1)
	default:
		return Label{}, false
	}

	if label, ok := r.rule.Evaluate(movedFrom); ok {
		return label.Observe(), true
	}
	return Label{}, false
}

func (r observed) validate() error {
	return validateRule(r.rule)
}
