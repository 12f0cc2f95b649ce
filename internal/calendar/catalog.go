package calendar

import (
	"fmt"

	"github.com/username/bizcal/pkg/dateutil"
	"go.uber.org/multierr"
)

// Catalog is an ordered, immutable set of holiday rules.
// Evaluation stops at the first rule that matches, so registration order
// decides the winner when two rules cover the same date.
type Catalog struct {
	name  string
	rules []Rule
}

// NewCatalog validates rules and returns a catalog evaluating them in order.
// Every invalid rule is reported.
func NewCatalog(name string, rules ...Rule) (*Catalog, error) {
	var errs error
	for i, r := range rules {
		if err := validateRule(r); err != nil {
			errs = multierr.Append(errs, fmt.Errorf("catalog %s: rule %d: %w", name, i, err))
		}
	}
	if errs != nil {
		return nil, errs
	}
	return &Catalog{
		name:  name,
		rules: append([]Rule(nil), rules...),
	}, nil
}

// Name returns the catalog name
func (c *Catalog) Name() string {
	return c.name
}

// Len returns the number of rules
func (c *Catalog) Len() int {
	return len(c.rules)
}

// Rules returns a copy of the rules in evaluation order
func (c *Catalog) Rules() []Rule {
	return append([]Rule(nil), c.rules...)
}

// With returns a new catalog evaluating c's rules followed by rules.
// c itself is left untouched.
func (c *Catalog) With(rules ...Rule) (*Catalog, error) {
	combined := make([]Rule, 0, len(c.rules)+len(rules))
	combined = append(combined, c.rules...)
	combined = append(combined, rules...)
	return NewCatalog(c.name, combined...)
}

// Evaluate returns the label of the first matching rule
func (c *Catalog) Evaluate(d dateutil.Date) (Label, bool) {
	for _, r := range c.rules {
		if label, ok := r.Evaluate(d); ok {
			return label, true
		}
	}
	return Label{}, false
}
