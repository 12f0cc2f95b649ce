package calendar

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/username/bizcal/pkg/dateutil"
	"go.uber.org/zap"
)

// LoadOverrides reads per-date predicates from a text file. See ParseOverrides.
func LoadOverrides(filePath string, logger *zap.Logger) ([]Predicate, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open overrides file: %w", err)
	}
	defer file.Close()

	predicates, err := ParseOverrides(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filePath, err)
	}

	logger.Debug("Overrides file loaded",
		zap.String("file", filePath),
		zap.Int("predicates", len(predicates)))

	return predicates, nil
}

// ParseOverrides parses one predicate per line:
//
//	# date       kind     value
//	2024-12-24   hours    09:00-13:00
//	2024-12-26   holiday  Boxing Day
//	12-31        closed
//
// The date is either YYYY-MM-DD (that day only) or MM-DD (every year).
// Blank lines and lines starting with '#' are ignored. Any malformed line
// fails the whole file.
func ParseOverrides(r io.Reader) ([]Predicate, error) {
	scanner := bufio.NewScanner(r)
	var predicates []Predicate
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		p, err := parseOverrideLine(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		predicates = append(predicates, p)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading overrides: %w", err)
	}

	return predicates, nil
}

func parseOverrideLine(line string) (Predicate, error) {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return Predicate{}, fmt.Errorf("expected '<date> <kind> [value]', got %q: %w", line, ErrInvalidPredicate)
	}

	p, err := parseOverrideDate(fields[0])
	if err != nil {
		return Predicate{}, err
	}

	value := strings.Join(fields[2:], " ")
	switch strings.ToLower(fields[1]) {
	case "hours":
		h, err := ParseHours(value)
		if err != nil {
			return Predicate{}, err
		}
		p = p.WithHours(h)
	case "closed":
		p = p.WithHours(Closed)
	case "holiday":
		if value == "" {
			return Predicate{}, fmt.Errorf("holiday on %s has no name: %w", fields[0], ErrInvalidPredicate)
		}
		p = p.WithHoliday(value)
	default:
		return Predicate{}, fmt.Errorf("unknown kind %q: %w", fields[1], ErrInvalidPredicate)
	}

	if err := p.validate(); err != nil {
		return Predicate{}, err
	}
	return p, nil
}

func parseOverrideDate(s string) (Predicate, error) {
	// MM-DD has exactly one dash
	if strings.Count(s, "-") == 1 {
		month, day, err := dateutil.ParseMonthDay(s)
		if err != nil {
			return Predicate{}, fmt.Errorf("%v: %w", err, ErrInvalidPredicate)
		}
		return OnMonthDay(month, day), nil
	}

	d, err := dateutil.ParseDate(s)
	if err != nil {
		return Predicate{}, fmt.Errorf("%v: %w", err, ErrInvalidPredicate)
	}
	return OnDate(d), nil
}
