package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/username/bizcal/internal/calendar"
	"github.com/username/bizcal/internal/config"
	"github.com/username/bizcal/internal/locale"
)

var (
	configPath string
	appConfig  *config.Config
	logger     = zap.NewNop()
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "bizcal",
		Short: "Business calendar",
		Long:  "Answer business day, holiday and business hour questions from a configurable rule catalog",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			appConfig = cfg

			if cfg.Log.File != "" {
				logger, err = initFileLogger(cfg.Log.File, cfg.Log.Level)
				if err != nil {
					initLogger(cfg.Log.Level) // Fallback to console
				}
			} else {
				initLogger(cfg.Log.Level) // Default console logger
			}
			return nil
		},
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file path (default: search ., $HOME/.bizcal, /etc/bizcal)")

	root.AddCommand(checkCmd())
	root.AddCommand(holidaysCmd())
	root.AddCommand(monthCmd())

	return root
}

// setup builds everything a command needs from the loaded configuration
func setup() (*calendar.Engine, *locale.Renderer, error) {
	cfg := appConfig
	if cfg == nil {
		return nil, nil, fmt.Errorf("configuration not loaded")
	}

	engine, err := buildEngine(cfg)
	if err != nil {
		return nil, nil, err
	}

	renderer, err := locale.New(cfg.Calendar.Locale)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize locale: %w", err)
	}

	return engine, renderer, nil
}

func buildEngine(cfg *config.Config) (*calendar.Engine, error) {
	calCfg := cfg.Calendar
	name := calCfg.Name
	if name == "" {
		name = calCfg.Region
	}

	b := calendar.NewBuilder(logger).
		Name(name).
		Location(calCfg.GetLocation())

	// Initialize holiday catalog based on region
	switch calCfg.Region {
	case "", "us":
		logger.Debug("Using United States federal holidays")
		b.Catalog(calendar.UnitedStates())
	case "none":
		logger.Debug("No regional holidays")
	default:
		return nil, fmt.Errorf("unknown region: %s", calCfg.Region)
	}

	for _, holiday := range calCfg.ExtraHolidays {
		rule, err := calendar.USHolidayRule(holiday)
		if err != nil {
			return nil, err
		}
		b.Holiday(rule)
	}

	if calCfg.ClosedOnWeekends {
		b.Holiday(calendar.Weekends)
	}

	// Predicates registered later win
	if calCfg.Hours != "" {
		b.Hours(calCfg.Hours)
	}

	for i := range calCfg.Weekdays {
		p, err := calCfg.Weekdays[i].Predicate()
		if err != nil {
			return nil, fmt.Errorf("weekdays[%d]: %w", i, err)
		}
		b.Add(p)
	}

	for i := range calCfg.Dates {
		p, err := calCfg.Dates[i].Predicate()
		if err != nil {
			return nil, fmt.Errorf("dates[%d]: %w", i, err)
		}
		b.Add(p)
	}

	if calCfg.OverridesFile != "" {
		overrides, err := calendar.LoadOverrides(calCfg.OverridesFile, logger)
		if err != nil {
			return nil, err
		}
		for _, p := range overrides {
			b.Add(p)
		}
	}

	return b.Build()
}

func initLogger(level string) {
	config := zap.NewProductionConfig()
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	var zapLevel zapcore.Level
	if err := zapLevel.UnmarshalText([]byte(level)); err == nil {
		config.Level = zap.NewAtomicLevelAt(zapLevel)
	}

	var err error
	logger, err = config.Build()
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
}

func initFileLogger(logFile string, level string) (*zap.Logger, error) {
	// Setup lumberjack for log rotation
	logWriter := &lumberjack.Logger{
		Filename:   logFile,
		MaxSize:    100,  // MB
		MaxBackups: 3,    // Keep max 3 old log files
		MaxAge:     28,   // days
		Compress:   true, // Compress old logs with gzip
	}

	// Setup encoder
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "timestamp"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	// Parse log level
	var zapLevel zapcore.Level
	if err := zapLevel.UnmarshalText([]byte(level)); err != nil {
		zapLevel = zapcore.InfoLevel
	}

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderConfig),
		zapcore.AddSync(logWriter),
		zapLevel,
	)

	return zap.New(core), nil
}
