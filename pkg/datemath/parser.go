package datemath

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

var (
	inDurationPattern = regexp.MustCompile(`^in (\d+) (day|days|week|weeks|month|months)$`)
	clock24Pattern    = regexp.MustCompile(`^(\d{1,2}):(\d{2})$`)
	clock12Pattern    = regexp.MustCompile(`^(\d{1,2})(?::(\d{2}))?\s*(am|pm)$`)

	weekdays = map[string]time.Weekday{
		"monday":    time.Monday,
		"tuesday":   time.Tuesday,
		"wednesday": time.Wednesday,
		"thursday":  time.Thursday,
		"friday":    time.Friday,
		"saturday":  time.Saturday,
		"sunday":    time.Sunday,
	}
)

// Parser converts absolute and relative date strings to days in one timezone.
type Parser struct {
	location *time.Location
}

// NewParser creates a new date parser for the given IANA timezone string.
// e.g. "Europe/Lisbon"
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

// NewParserIn creates a parser for an already loaded location.
func NewParserIn(loc *time.Location) *Parser {
	if loc == nil {
		loc = time.UTC
	}
	return &Parser{location: loc}
}

// Parse returns midnight of the day described by s, relative to baseTime.
// Accepted: YYYY-MM-DD, today, tomorrow, yesterday, "in N days|weeks|months",
// "next <weekday>" and a bare weekday (its next occurrence after today).
func (p *Parser) Parse(s string, baseTime time.Time) (time.Time, error) {
	relative := strings.ToLower(strings.TrimSpace(s))

	if t, err := time.ParseInLocation(dateLayout, relative, p.location); err == nil {
		return t, nil
	}

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
	if day, ok := weekdays[strings.TrimPrefix(relative, "next ")]; ok {
		return p.nextWeekday(day, baseTime), nil
	}

	return time.Time{}, fmt.Errorf("%w: %q", ErrUnrecognizedDate, s)
}

// parseInDuration handles patterns like "in 3 days", "in 2 weeks", "in 1 month".
func (p *Parser) parseInDuration(relative string, baseTime time.Time) (time.Time, error) {
	matches := inDurationPattern.FindStringSubmatch(relative)
	if len(matches) != 3 {
		return time.Time{}, fmt.Errorf("%w: %q", ErrUnrecognizedDate, relative)
	}

	amount, _ := strconv.Atoi(matches[1])
	switch unit := matches[2]; {
	case strings.HasPrefix(unit, "day"):
		return p.startOfDay(baseTime.AddDate(0, 0, amount)), nil
	case strings.HasPrefix(unit, "week"):
		return p.startOfDay(baseTime.AddDate(0, 0, amount*7)), nil
	default:
		return p.startOfDay(baseTime.AddDate(0, amount, 0)), nil
	}
}

// nextWeekday is always strictly after baseTime's day.
func (p *Parser) nextWeekday(target time.Weekday, baseTime time.Time) time.Time {
	base := baseTime.In(p.location)
	daysUntil := int(target - base.Weekday())
	if daysUntil <= 0 {
		daysUntil += 7
	}
	return p.startOfDay(base.AddDate(0, 0, daysUntil))
}

// startOfDay returns midnight at the start of the given day in the parser's timezone.
func (p *Parser) startOfDay(t time.Time) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.location)
}

// At places a clock time on day, which must come from Parse.
func (p *Parser) At(day time.Time, hour, minute int) time.Time {
	day = day.In(p.location)
	return time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, p.location)
}

// ParseClock reads a time of day: "14:00", "9:30", "2pm", "2:30 pm", "noon".
func ParseClock(s string) (hour, minute int, err error) {
	v := strings.ToLower(strings.TrimSpace(s))
	if v == "noon" {
		return 12, 0, nil
	}

	if m := clock24Pattern.FindStringSubmatch(v); m != nil {
		hour, _ = strconv.Atoi(m[1])
		minute, _ = strconv.Atoi(m[2])
		if hour > 23 || minute > 59 {
			return 0, 0, fmt.Errorf("%w: %q", ErrUnrecognizedClock, s)
		}
		return hour, minute, nil
	}

	if m := clock12Pattern.FindStringSubmatch(v); m != nil {
		hour, _ = strconv.Atoi(m[1])
		if m[2] != "" {
			minute, _ = strconv.Atoi(m[2])
		}
		if hour < 1 || hour > 12 || minute > 59 {
			return 0, 0, fmt.Errorf("%w: %q", ErrUnrecognizedClock, s)
		}
		hour %= 12
		if m[3] == "pm" {
			hour += 12
		}
		return hour, minute, nil
	}

	return 0, 0, fmt.Errorf("%w: %q", ErrUnrecognizedClock, s)
}
