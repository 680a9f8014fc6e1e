package timeexpr

import (
	"strconv"
	"strings"
	"time"
)

// Strategy names the input format that produced a Result.
type Strategy string

const (
	// StrategyTwentyFourHour matches "14:30" and "09:05:10".
	StrategyTwentyFourHour Strategy = "twenty-four-hour"
	// StrategyTwelveHour matches "2:30 pm".
	StrategyTwelveHour Strategy = "twelve-hour"
	// StrategyCompact matches "1h30m" and "45s".
	StrategyCompact Strategy = "compact"
	// StrategyNatural matches phrases like "in 5 minutes" or "meia hora".
	StrategyNatural Strategy = "natural"
)

// Result is a successfully parsed time expression.
type Result struct {
	// DueAt is the absolute instant the expression refers to.
	DueAt time.Time
	// Language is the language detected in the input.
	Language Language
	// Strategy is the format that matched.
	Strategy Strategy
}

// Parser turns free-form time expressions into absolute future instants.
// A Parser is stateless and safe for concurrent use.
type Parser struct {
	// now returns the reference instant.
	now func() time.Time
	// location is the zone wall-clock inputs are interpreted in.
	location *time.Location
}

// Option configures a Parser.
type Option func(*Parser)

// WithClock overrides the reference clock.
func WithClock(now func() time.Time) Option {
	return func(p *Parser) {
		if now != nil {
			p.now = now
		}
	}
}

// WithLocation sets the zone for wall-clock inputs. Defaults to time.Local.
func WithLocation(location *time.Location) Option {
	return func(p *Parser) {
		if location != nil {
			p.location = location
		}
	}
}

// NewParser creates a Parser bound to the host clock and local zone.
func NewParser(opts ...Option) *Parser {
	p := &Parser{
		now:      time.Now,
		location: time.Local,
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Parse resolves text against the parser clock.
//
// Formats are tried in a fixed order: 24-hour clock, 12-hour clock,
// compact duration, then natural phrases of the detected language.
// The first match wins.
func (p *Parser) Parse(text string) (Result, error) {
	var (
		trimmed  = strings.TrimSpace(text)
		language = DetectLanguage(trimmed)
		now      = p.now().In(p.location)
	)

	result := Result{Language: language}

	if dueAt, ok := p.parseTwentyFourHour(trimmed, now); ok {
		result.DueAt, result.Strategy = dueAt, StrategyTwentyFourHour

		return result, nil
	}

	if dueAt, ok := p.parseTwelveHour(trimmed, now); ok {
		result.DueAt, result.Strategy = dueAt, StrategyTwelveHour

		return result, nil
	}

	if offset, ok := parseCompact(trimmed); ok {
		result.DueAt, result.Strategy = now.Add(offset), StrategyCompact

		return result, nil
	}

	if offset, ok := parseNatural(trimmed, language); ok {
		result.DueAt, result.Strategy = now.Add(offset), StrategyNatural

		return result, nil
	}

	return Result{}, &InvalidFormatError{
		Input:    trimmed,
		Language: language,
	}
}

func (p *Parser) parseTwentyFourHour(text string, now time.Time) (time.Time, bool) {
	match := twentyFourHourPattern.FindStringSubmatch(text)
	if match == nil {
		return time.Time{}, false
	}

	hour, minute, second := atoi(match[1]), atoi(match[2]), atoi(match[3])

	return nextOccurrence(now, hour, minute, second), true
}

func (p *Parser) parseTwelveHour(text string, now time.Time) (time.Time, bool) {
	match := twelveHourPattern.FindStringSubmatch(text)
	if match == nil {
		return time.Time{}, false
	}

	hour, minute, second := atoi(match[1]), atoi(match[2]), atoi(match[3])

	switch strings.ToLower(match[4]) {
	case "pm":
		if hour != 12 {
			hour += 12
		}
	case "am":
		if hour == 12 {
			hour = 0
		}
	}

	return nextOccurrence(now, hour, minute, second), true
}

// parseCompact sums the h, m and s components; at least one must be present.
func parseCompact(text string) (time.Duration, bool) {
	match := compactPattern.FindStringSubmatch(text)
	if match == nil || (match[1] == "" && match[2] == "" && match[3] == "") {
		return 0, false
	}

	var (
		total time.Duration
		units = []time.Duration{time.Hour, time.Minute, time.Second}
	)

	for i, unit := range units {
		part, ok := multiply(match[i+1], unit)
		if !ok || total > maxDuration-part {
			return 0, false
		}

		total += part
	}

	return total, true
}

func parseNatural(text string, language Language) (time.Duration, bool) {
	for _, rule := range naturalRules[language] {
		match := rule.pattern.FindStringSubmatch(text)
		if match == nil {
			continue
		}

		return rule.offset(match)
	}

	return 0, false
}

// nextOccurrence returns today's instant at the given wall-clock time,
// moved forward one calendar day unless it is strictly after now.
func nextOccurrence(now time.Time, hour, minute, second int) time.Time {
	year, month, day := now.Date()

	target := time.Date(year, month, day, hour, minute, second, 0, now.Location())
	if !target.After(now) {
		target = target.AddDate(0, 0, 1)
	}

	return target
}

// atoi converts a regexp capture known to hold at most two digits.
// Empty captures are zero.
func atoi(s string) int {
	n, _ := strconv.Atoi(s)

	return n
}
