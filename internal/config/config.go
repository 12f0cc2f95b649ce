package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/username/bizcal/internal/calendar"
	"github.com/username/bizcal/pkg/dateutil"
)

// Config represents application configuration
type Config struct {
	Calendar CalendarConfig `mapstructure:"calendar"`
	Log      LogConfig      `mapstructure:"log"`
}

// CalendarConfig represents business calendar configuration
type CalendarConfig struct {
	Name             string   `mapstructure:"name"`
	Region           string   `mapstructure:"region"` // "us" or "none"
	Locale           string   `mapstructure:"locale"`
	Timezone         string   `mapstructure:"timezone"`
	ClosedOnWeekends bool     `mapstructure:"closed_on_weekends"`
	Hours            string   `mapstructure:"hours"`          // Default hours for every day, e.g. "09:00-17:00"
	ExtraHolidays    []string `mapstructure:"extra_holidays"` // cal/v2 US holiday names
	OverridesFile    string   `mapstructure:"overrides_file"`

	Weekdays []WeekdayRule `mapstructure:"weekdays"`
	Dates    []DateRule    `mapstructure:"dates"`
}

// WeekdayRule sets hours or a closure for a set of weekdays
type WeekdayRule struct {
	Days    []string `mapstructure:"days"`
	Hours   string   `mapstructure:"hours"`
	Holiday string   `mapstructure:"holiday"`
}

// DateRule sets hours or a holiday for a date ("2024-12-24") or an
// annual month-day ("12-24")
type DateRule struct {
	Date    string `mapstructure:"date"`
	Hours   string `mapstructure:"hours"`
	Holiday string `mapstructure:"holiday"`
}

// LogConfig represents logging configuration
type LogConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// Load loads configuration from file. An empty path searches the default
// locations and falls back to defaults when no file is found.
func Load(configPath string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	// Set config file
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.bizcal")
		v.AddConfigPath("/etc/bizcal")
	}

	// Read environment variables, e.g. BIZCAL_CALENDAR_TIMEZONE
	v.SetEnvPrefix("bizcal")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configPath != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	config.ExpandEnvVars()

	// Validate config
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("calendar.name", "us")
	v.SetDefault("calendar.region", "us")
	v.SetDefault("calendar.locale", "en")
	v.SetDefault("calendar.timezone", "Local")
	v.SetDefault("calendar.closed_on_weekends", true)
	v.SetDefault("calendar.hours", "09:00-17:00")
	v.SetDefault("log.level", "info")
}

// Validate validates the configuration
func (c *Config) Validate() error {
	cal := c.Calendar

	switch cal.Region {
	case "", "us", "none":
	default:
		return fmt.Errorf("calendar.region must be 'us' or 'none', got '%s'", cal.Region)
	}

	if _, err := time.LoadLocation(cal.Timezone); err != nil {
		return fmt.Errorf("calendar.timezone: %w", err)
	}

	if cal.Hours != "" {
		if _, err := calendar.ParseHours(cal.Hours); err != nil {
			return fmt.Errorf("calendar.hours: %w", err)
		}
	}

	for _, name := range cal.ExtraHolidays {
		if _, err := calendar.USHolidayRule(name); err != nil {
			return fmt.Errorf("calendar.extra_holidays: %w", err)
		}
	}

	for i, rule := range cal.Weekdays {
		if len(rule.Days) == 0 {
			return fmt.Errorf("calendar.weekdays[%d].days is required", i)
		}
		if _, err := rule.Predicate(); err != nil {
			return fmt.Errorf("calendar.weekdays[%d]: %w", i, err)
		}
	}

	for i, rule := range cal.Dates {
		if _, err := rule.Predicate(); err != nil {
			return fmt.Errorf("calendar.dates[%d]: %w", i, err)
		}
	}

	return nil
}

// GetLocation returns the configured time zone. Default: time.Local
func (c *CalendarConfig) GetLocation() *time.Location {
	if c.Timezone == "" {
		return time.Local
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.Local
	}
	return loc
}

// GetWeekdays parses the configured day names
func (r *WeekdayRule) GetWeekdays() ([]time.Weekday, error) {
	days := make([]time.Weekday, 0, len(r.Days))
	for _, s := range r.Days {
		wd, err := dateutil.ParseWeekday(s)
		if err != nil {
			return nil, err
		}
		days = append(days, wd)
	}
	return days, nil
}

// Predicate converts the rule to a calendar predicate
func (r *WeekdayRule) Predicate() (calendar.Predicate, error) {
	days, err := r.GetWeekdays()
	if err != nil {
		return calendar.Predicate{}, err
	}
	return withEffect(calendar.OnWeekdays(days...), strings.Join(r.Days, ","), r.Hours, r.Holiday)
}

// Predicate converts the rule to a calendar predicate
func (r *DateRule) Predicate() (calendar.Predicate, error) {
	var p calendar.Predicate
	switch strings.Count(r.Date, "-") {
	case 1:
		month, day, err := dateutil.ParseMonthDay(r.Date)
		if err != nil {
			return p, err
		}
		p = calendar.OnMonthDay(month, day)
	default:
		d, err := dateutil.ParseDate(r.Date)
		if err != nil {
			return p, err
		}
		p = calendar.OnDate(d)
	}

	return withEffect(p, r.Date, r.Hours, r.Holiday)
}

// withEffect attaches hours and/or a holiday to p. One predicate carries
// both so that they decide the matched dates together.
func withEffect(p calendar.Predicate, what, hours, holiday string) (calendar.Predicate, error) {
	if hours == "" && holiday == "" {
		return p, fmt.Errorf("%s must set hours or holiday", what)
	}
	if hours != "" {
		h, err := calendar.ParseHours(hours)
		if err != nil {
			return p, err
		}
		p = p.WithHours(h)
	}
	if holiday != "" {
		p = p.WithHoliday(holiday)
	}
	return p, nil
}

// ExpandEnvVars expands environment variables in path settings
func (c *Config) ExpandEnvVars() {
	c.Calendar.OverridesFile = os.ExpandEnv(c.Calendar.OverridesFile)
	c.Log.File = os.ExpandEnv(c.Log.File)
}
