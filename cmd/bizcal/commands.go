package main

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/username/bizcal/internal/calendar"
	"github.com/username/bizcal/internal/locale"
	"github.com/username/bizcal/pkg/dateutil"
)

func checkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check DATE [HH:MM]",
		Short: "Check whether a date (and optionally a time) is business time",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := dateutil.ParseDate(args[0])
			if err != nil {
				return err
			}

			var at *calendar.TimeOfDay
			if len(args) == 2 {
				t, err := calendar.ParseTimeOfDay(args[1])
				if err != nil {
					return err
				}
				at = &t
			}

			engine, renderer, err := setup()
			if err != nil {
				return err
			}

			logger.Debug("Checking date", zap.Stringer("date", d))
			return printCheck(cmd.OutOrStdout(), engine, renderer, d, at)
		},
	}
}

func printCheck(w io.Writer, engine *calendar.Engine, renderer *locale.Renderer, d dateutil.Date, at *calendar.TimeOfDay) error {
	fmt.Fprintf(w, "Date:          %s (%s)\n", d, renderer.Weekday(d.Weekday()))
	fmt.Fprintf(w, "Business day:  %s\n", yesNo(engine.IsBusinessDay(d)))

	if label, ok := engine.HolidayOn(d); ok {
		fmt.Fprintf(w, "Holiday:       %s\n", renderer.Label(label))
	}
	if hours, ok := engine.HoursOn(d); ok {
		fmt.Fprintf(w, "Hours:         %s\n", hours)
	} else {
		fmt.Fprintln(w, "Hours:         not configured")
	}
	if at != nil {
		fmt.Fprintf(w, "Business hour: %s (%s)\n", yesNo(engine.IsBusinessHour(d, *at)), *at)
	}
	if next, ok := engine.NextBusinessDay(d); ok {
		fmt.Fprintf(w, "Next business: %s (%s)\n", next, renderer.Weekday(next.Weekday()))
	}
	return nil
}

type holidayEntry struct {
	Date     string `yaml:"date"`
	Weekday  string `yaml:"weekday"`
	Name     string `yaml:"name"`
	Observed bool   `yaml:"observed,omitempty"`
}

func holidaysCmd() *cobra.Command {
	var fromStr, toStr, format string

	cmd := &cobra.Command{
		Use:   "holidays",
		Short: "List holidays in a date range",
		RunE: func(cmd *cobra.Command, args []string) error {
			today := dateutil.Today()
			from := dateutil.Date{Year: today.Year, Month: time.January, Day: 1}
			to := dateutil.Date{Year: today.Year, Month: time.December, Day: 31}

			var err error
			if fromStr != "" {
				if from, err = dateutil.ParseDate(fromStr); err != nil {
					return fmt.Errorf("invalid --from: %w", err)
				}
			}
			if toStr != "" {
				if to, err = dateutil.ParseDate(toStr); err != nil {
					return fmt.Errorf("invalid --to: %w", err)
				}
			}
			if to.Before(from) {
				return fmt.Errorf("--to %s is before --from %s", to, from)
			}

			engine, renderer, err := setup()
			if err != nil {
				return err
			}

			return printHolidays(cmd.OutOrStdout(), engine.Holidays(from, to), renderer, format)
		},
	}

	cmd.Flags().StringVar(&fromStr, "from", "", "First date (default: January 1 of this year)")
	cmd.Flags().StringVar(&toStr, "to", "", "Last date (default: December 31 of this year)")
	cmd.Flags().StringVarP(&format, "format", "f", "table", "Output format: table or yaml")

	return cmd
}

func printHolidays(w io.Writer, holidays []calendar.Holiday, renderer *locale.Renderer, format string) error {
	entries := make([]holidayEntry, 0, len(holidays))
	for _, h := range holidays {
		entries = append(entries, holidayEntry{
			Date:     h.Date.String(),
			Weekday:  renderer.Weekday(h.Date.Weekday()),
			Name:     renderer.Label(h.Label),
			Observed: h.Label.Observed,
		})
	}

	switch strings.ToLower(format) {
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(entries); err != nil {
			return fmt.Errorf("failed to encode holidays: %w", err)
		}
		return enc.Close()
	case "table":
		tw := tablewriter.NewWriter(w)
		tw.SetHeader([]string{"Date", "Weekday", "Holiday"})
		tw.SetFooter([]string{"", "", fmt.Sprintf("Total: %d", len(entries))})
		for _, e := range entries {
			tw.Append([]string{e.Date, e.Weekday, e.Name})
		}
		tw.Render()
		return nil
	default:
		return fmt.Errorf("unknown format %q (want table or yaml)", format)
	}
}

func monthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "month YYYY-MM",
		Short: "Show the business calendar of a month",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := time.Parse("2006-01", args[0])
			if err != nil {
				return fmt.Errorf("invalid month %q: %w", args[0], err)
			}

			engine, renderer, err := setup()
			if err != nil {
				return err
			}

			printMonth(cmd.OutOrStdout(), engine.MonthInfo(t.Year(), t.Month()), renderer)
			return nil
		},
	}
}

func printMonth(w io.Writer, info calendar.MonthInfo, renderer *locale.Renderer) {
	tw := tablewriter.NewWriter(w)
	tw.SetHeader([]string{"Date", "Weekday", "Type", "Hours", "Note"})
	for _, day := range info.Days {
		hours := ""
		if day.IsWorkday {
			hours = day.Hours.String()
		}
		note := ""
		if day.Type == calendar.DayTypeHoliday {
			note = renderer.Label(day.Holiday)
		}
		tw.Append([]string{
			day.Date.String(),
			renderer.Weekday(day.Date.Weekday()),
			day.Type.String(),
			hours,
			note,
		})
	}
	tw.Render()

	fmt.Fprintf(w, "\n📊 %d-%02d\n", info.Year, info.Month)
	fmt.Fprintf(w, "  Working days:   %d\n", info.WorkDays)
	fmt.Fprintf(w, "  Working hours:  %.1fh (%d minutes)\n", float64(info.WorkingMinutes)/60, info.WorkingMinutes)
	fmt.Fprintf(w, "  Weekends:       %d\n", info.Weekends)
	fmt.Fprintf(w, "  Holidays:       %d\n", info.Holidays)
	fmt.Fprintf(w, "  Closed days:    %d\n", info.ClosedDays)
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
