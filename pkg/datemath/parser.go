package datemath

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Parser does calendar arithmetic in a fixed timezone. Weeks run Sunday to Saturday.
type Parser struct {
	location *time.Location
}

// NewParser creates a parser for the given IANA timezone, e.g. "Asia/Jerusalem".
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

// NewParserIn creates a parser for an already loaded location. A nil location means UTC.
func NewParserIn(loc *time.Location) *Parser {
	if loc == nil {
		loc = time.UTC
	}
	return &Parser{location: loc}
}

// Location returns the parser's timezone.
func (p *Parser) Location() *time.Location {
	return p.location
}

var inDurationRe = regexp.MustCompile(`^in (\d+) (day|days|week|weeks|month|months)$`)

// Parse converts a relative English date phrase ("tomorrow", "in 3 weeks",
// "next friday") to the start of the resolved day. Unknown phrases resolve to today.
func (p *Parser) Parse(relative string, baseTime time.Time) (time.Time, error) {
	relative = strings.ToLower(strings.TrimSpace(relative))

	switch relative {
	case "today":
		return p.StartOfDay(baseTime), nil
	case "tomorrow":
		return p.StartOfDay(baseTime.AddDate(0, 0, 1)), nil
	case "day after tomorrow":
		return p.StartOfDay(baseTime.AddDate(0, 0, 2)), nil
	case "yesterday":
		return p.StartOfDay(baseTime.AddDate(0, 0, -1)), nil
	}

	if strings.HasPrefix(relative, "in ") {
		return p.parseInDuration(relative, baseTime)
	}

	if strings.HasPrefix(relative, "next ") {
		return p.parseNextWeekday(relative, baseTime)
	}

	return p.StartOfDay(baseTime), nil
}

func (p *Parser) parseInDuration(relative string, baseTime time.Time) (time.Time, error) {
	matches := inDurationRe.FindStringSubmatch(relative)
	if len(matches) != 3 {
		return baseTime, fmt.Errorf("invalid duration format: %q", relative)
	}

	amount, _ := strconv.Atoi(matches[1])
	switch unit := matches[2]; {
	case strings.HasPrefix(unit, "day"):
		return p.StartOfDay(baseTime.AddDate(0, 0, amount)), nil
	case strings.HasPrefix(unit, "week"):
		return p.StartOfDay(baseTime.AddDate(0, 0, amount*7)), nil
	default:
		return p.StartOfDay(baseTime.AddDate(0, amount, 0)), nil
	}
}

var weekdayNames = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

func (p *Parser) parseNextWeekday(relative string, baseTime time.Time) (time.Time, error) {
	dayName := strings.TrimPrefix(relative, "next ")
	target, ok := weekdayNames[dayName]
	if !ok {
		return baseTime, fmt.Errorf("unknown weekday: %q", dayName)
	}
	return p.Upcoming(target, baseTime, false), nil
}

// Upcoming returns the next day falling on target. When includeToday is set and
// baseTime is already on target, baseTime's day is returned.
func (p *Parser) Upcoming(target time.Weekday, baseTime time.Time, includeToday bool) time.Time {
	base := p.StartOfDay(baseTime)
	daysUntil := int(target - base.Weekday())
	if daysUntil < 0 || (daysUntil == 0 && !includeToday) {
		daysUntil += 7
	}
	return base.AddDate(0, 0, daysUntil)
}

// StartOfDay returns midnight at the start of t's day in the parser's timezone.
func (p *Parser) StartOfDay(t time.Time) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.location)
}

// Week returns the Sunday-to-Saturday week containing t.
func (p *Parser) Week(t time.Time) Range {
	day := p.StartOfDay(t)
	from := day.AddDate(0, 0, -int(day.Weekday()))
	return Range{From: from, To: from.AddDate(0, 0, 6)}
}

// NextWeek returns the Sunday-to-Saturday week after the one containing t.
func (p *Parser) NextWeek(t time.Time) Range {
	w := p.Week(t)
	return Range{From: w.From.AddDate(0, 0, 7), To: w.To.AddDate(0, 0, 7)}
}

// SameDay reports whether a and b fall on the same calendar day in the parser's timezone.
func (p *Parser) SameDay(a, b time.Time) bool {
	return p.StartOfDay(a).Equal(p.StartOfDay(b))
}
