package calendar

import (
	"fmt"
	"time"

	"github.com/username/bizcal/pkg/dateutil"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// Builder assembles an Engine. Configuration mistakes are collected and
// reported together by Build; nothing invalid reaches the engine.
// A Builder is not safe for concurrent use.
type Builder struct {
	name       string
	rules      []Rule
	predicates []Predicate
	location   *time.Location
	logger     *zap.Logger
	err        error
}

// PredicateBuilder completes a predicate started with On, OnDate or OnMonthDay
type PredicateBuilder struct {
	builder   *Builder
	predicate Predicate
}

// NewBuilder creates a new Builder
func NewBuilder(logger *zap.Logger) *Builder {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Builder{
		name:     "custom",
		location: time.Local,
		logger:   logger,
	}
}

// Name sets the catalog name reported by the engine
func (b *Builder) Name(name string) *Builder {
	b.name = name
	return b
}

// Location sets the timezone used by IsBusinessTime
func (b *Builder) Location(loc *time.Location) *Builder {
	if loc == nil {
		b.err = multierr.Append(b.err, fmt.Errorf("nil location"))
		return b
	}
	b.location = loc
	return b
}

// Catalog appends all rules of c
func (b *Builder) Catalog(c *Catalog) *Builder {
	if c == nil {
		b.err = multierr.Append(b.err, fmt.Errorf("nil catalog: %w", ErrInvalidRule))
		return b
	}
	b.rules = append(b.rules, c.rules...)
	return b
}

// Holiday appends holiday rules, evaluated after those already added
func (b *Builder) Holiday(rules ...Rule) *Builder {
	b.rules = append(b.rules, rules...)
	return b
}

// Hours sets default business hours for every day of the week.
// Later predicates override it.
func (b *Builder) Hours(spec string) *Builder {
	return b.On(time.Sunday, time.Monday, time.Tuesday, time.Wednesday,
		time.Thursday, time.Friday, time.Saturday).Hours(spec)
}

// Add registers a ready-made predicate
func (b *Builder) Add(p Predicate) *Builder {
	b.predicates = append(b.predicates, p)
	return b
}

// On starts a predicate matching the weekdays
func (b *Builder) On(weekdays ...time.Weekday) *PredicateBuilder {
	return &PredicateBuilder{builder: b, predicate: OnWeekdays(weekdays...)}
}

// OnDate starts a predicate matching a single date
func (b *Builder) OnDate(d dateutil.Date) *PredicateBuilder {
	return &PredicateBuilder{builder: b, predicate: OnDate(d)}
}

// OnMonthDay starts a predicate matching a month and day every year
func (b *Builder) OnMonthDay(month time.Month, day int) *PredicateBuilder {
	return &PredicateBuilder{builder: b, predicate: OnMonthDay(month, day)}
}

// Hours parses spec and registers the predicate with those hours
func (pb *PredicateBuilder) Hours(spec string) *Builder {
	h, err := ParseHours(spec)
	if err != nil {
		pb.builder.err = multierr.Append(pb.builder.err, fmt.Errorf("%s: %w", pb.predicate, err))
		return pb.builder
	}
	return pb.builder.Add(pb.predicate.WithHours(h))
}

// Holiday registers the predicate as a named holiday
func (pb *PredicateBuilder) Holiday(name string) *Builder {
	return pb.builder.Add(pb.predicate.WithHoliday(name))
}

// Build validates everything collected so far and returns the engine
func (b *Builder) Build() (*Engine, error) {
	err := b.err

	catalog, catErr := NewCatalog(b.name, b.rules...)
	err = multierr.Append(err, catErr)

	// predicates are checked even when rules failed; a nil catalog is empty
	engine, engErr := NewEngine(catalog, b.predicates, b.location)
	err = multierr.Append(err, engErr)

	if err != nil {
		b.logger.Error("Calendar configuration rejected",
			zap.String("calendar", b.name),
			zap.Error(err))
		return nil, fmt.Errorf("failed to build calendar %s: %w", b.name, err)
	}

	b.logger.Debug("Calendar built",
		zap.String("calendar", b.name),
		zap.Int("rules", catalog.Len()),
		zap.Int("predicates", len(b.predicates)),
		zap.String("location", b.location.String()))

	return engine, nil
}
