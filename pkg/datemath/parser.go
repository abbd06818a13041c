package datemath

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// DateLayout is the accepted absolute date format: four-digit year,
// two-digit month, two-digit day.
const DateLayout = "2006-01-02"

var (
	// ErrEmptyInput is returned for blank date strings.
	ErrEmptyInput = errors.New("date is empty")
	// ErrUnrecognized is returned when a string is neither an absolute nor a known relative date.
	ErrUnrecognized = errors.New("unrecognized date")

	durationPattern = regexp.MustCompile(`^in (\d+) (day|days|week|weeks|month|months)$`)
)

var weekdays = map[string]time.Weekday{
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
	"sunday":    time.Sunday,
}

// Parser converts absolute and relative date strings to time.Time values
// at midnight in its location.
type Parser struct {
	location *time.Location
}

// NewParser creates a new date parser for the given IANA timezone string.
// e.g. "Asia/Ho_Chi_Minh"
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

// Location returns the parser's timezone.
func (p *Parser) Location() *time.Location {
	return p.location
}

// ParseDate parses a YYYY-MM-DD string. Out of range components
// (month 13, February 30) are rejected.
func (p *Parser) ParseDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, ErrEmptyInput
	}
	t, err := time.ParseInLocation(DateLayout, value, p.location)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrUnrecognized, value)
	}
	return t, nil
}

// Parse converts a relative date string to an absolute time.Time.
// The baseTime is used as the reference point (usually time.Now()).
func (p *Parser) Parse(relative string, baseTime time.Time) (time.Time, error) {
	relative = strings.ToLower(strings.TrimSpace(relative))
	if relative == "" {
		return time.Time{}, ErrEmptyInput
	}
	baseTime = baseTime.In(p.location)

	switch relative {
	case "today":
		return p.startOfDay(baseTime), nil
	case "tomorrow":
		return p.startOfDay(baseTime.AddDate(0, 0, 1)), nil
	case "yesterday":
		return p.startOfDay(baseTime.AddDate(0, 0, -1)), nil
	}

	if strings.HasPrefix(relative, "in ") {
		return p.parseInDuration(relative, baseTime)
	}

	if strings.HasPrefix(relative, "next ") {
		return p.parseNextWeekday(relative, baseTime)
	}

	return time.Time{}, fmt.Errorf("%w: %q", ErrUnrecognized, relative)
}

// ParseAny tries the absolute layout first and falls back to relative forms.
func (p *Parser) ParseAny(value string, baseTime time.Time) (time.Time, error) {
	t, err := p.ParseDate(value)
	if err == nil || errors.Is(err, ErrEmptyInput) {
		return t, err
	}
	return p.Parse(value, baseTime)
}

// parseInDuration handles patterns like "in 3 days", "in 2 weeks", "in 1 month".
// baseTime must already be in the parser's timezone.
func (p *Parser) parseInDuration(relative string, baseTime time.Time) (time.Time, error) {
	matches := durationPattern.FindStringSubmatch(relative)
	if len(matches) != 3 {
		return time.Time{}, fmt.Errorf("%w: invalid duration format %q", ErrUnrecognized, relative)
	}

	amount, err := strconv.Atoi(matches[1])
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrUnrecognized, relative)
	}
	unit := matches[2]

	switch {
	case strings.HasPrefix(unit, "day"):
		return p.startOfDay(baseTime.AddDate(0, 0, amount)), nil
	case strings.HasPrefix(unit, "week"):
		return p.startOfDay(baseTime.AddDate(0, 0, amount*7)), nil
	default:
		return p.startOfDay(baseTime.AddDate(0, amount, 0)), nil
	}
}

// parseNextWeekday handles patterns like "next monday", "next friday".
// baseTime must already be in the parser's timezone.
func (p *Parser) parseNextWeekday(relative string, baseTime time.Time) (time.Time, error) {
	dayName := strings.TrimPrefix(relative, "next ")
	targetWeekday, ok := weekdays[dayName]
	if !ok {
		return time.Time{}, fmt.Errorf("%w: unknown weekday %q", ErrUnrecognized, dayName)
	}

	daysUntil := int(targetWeekday - baseTime.Weekday())
	if daysUntil <= 0 {
		daysUntil += 7
	}

	return p.startOfDay(baseTime.AddDate(0, 0, daysUntil)), nil
}

// startOfDay returns midnight at the start of the given day in the parser's timezone.
func (p *Parser) startOfDay(t time.Time) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.location)
}
