package timeexpr

import (
	"math"
	"regexp"
	"strconv"
	"time"
)

// Clock patterns are shared by all languages.
//
//nolint:gochecknoglobals // Compiled once.
var (
	twentyFourHourPattern = regexp.MustCompile(`^([01]?[0-9]|2[0-3]):([0-5][0-9])(?::([0-5][0-9]))?$`)
	twelveHourPattern     = regexp.MustCompile(`^(1[0-2]|0?[1-9]):([0-5][0-9])(?::([0-5][0-9]))?\s*(am|pm|AM|PM)$`)
	compactPattern        = regexp.MustCompile(`(?i)^(?:(\d+)h)?(?:(\d+)m)?(?:(\d+)s)?$`)
)

// maxDuration is the largest offset a relative expression may produce.
const maxDuration = time.Duration(math.MaxInt64)

// naturalRule maps a phrase pattern to an offset from now.
type naturalRule struct {
	pattern *regexp.Regexp
	offset  func(match []string) (time.Duration, bool)
}

// naturalRules holds the per-language phrase rules in evaluation order:
// seconds, minutes, fractional hours, one and a half hours, one hour,
// half an hour, quarter hour.
//
//nolint:gochecknoglobals // Compiled once.
var naturalRules = map[Language][]naturalRule{
	LanguageEnglish: {
		{regexp.MustCompile(`(?i)^(?:in\s*)?(\d+)\s*sec(?:ond)?s?$`), countOf(time.Second)},
		{regexp.MustCompile(`(?i)^(?:in\s*)?(\d+)\s*min(?:ute)?s?$`), countOf(time.Minute)},
		{regexp.MustCompile(`(?i)^(?:in\s*)?(\d+(?:\.\d+)?)\s*h(?:ou)?rs?$`), fractionOf(time.Hour)},
		{regexp.MustCompile(`(?i)^(?:in\s*)?(one|1)\s*and\s*(?:a\s*)?half\s*h(?:ou)?rs?$`), fixed(time.Hour + 30*time.Minute)},
		{regexp.MustCompile(`(?i)^(?:in\s*)?(?:one|1)\s*h(?:ou)?r$`), fixed(time.Hour)},
		{regexp.MustCompile(`(?i)^(?:in\s*)?half\s*(?:an\s*)?h(?:ou)?r$`), fixed(30 * time.Minute)},
		{regexp.MustCompile(`(?i)^(?:in\s*)?(?:a\s*)?quarter\s*(?:of\s*an\s*)?h(?:ou)?r$`), fixed(15 * time.Minute)},
	},
	LanguagePortuguese: {
		{regexp.MustCompile(`(?i)^(?:em|daqui a)?\s*(\d+)\s*seg(?:undo)?s?$`), countOf(time.Second)},
		{regexp.MustCompile(`(?i)^(?:em|daqui a)?\s*(\d+)\s*min(?:uto)?s?$`), countOf(time.Minute)},
		{regexp.MustCompile(`(?i)^(?:em|daqui a)?\s*(\d+(?:\.\d+)?)\s*h(?:ora)?s?$`), fractionOf(time.Hour)},
		{regexp.MustCompile(`(?i)^(?:em|daqui a)?\s*(?:uma|1)\s*(?:hora\s*)?e\s*meia$`), fixed(time.Hour + 30*time.Minute)},
		{regexp.MustCompile(`(?i)^(?:em|daqui a)?\s*(?:uma|1)\s*hora$`), fixed(time.Hour)},
		{regexp.MustCompile(`(?i)^(?:em|daqui a)?\s*meia\s*hora$`), fixed(30 * time.Minute)},
		{regexp.MustCompile(`(?i)^(?:em|daqui a)?\s*(?:um\s*)?quarto\s*de\s*hora$`), fixed(15 * time.Minute)},
	},
}

// countOf converts the first capture group, a whole number, into a multiple of unit.
func countOf(unit time.Duration) func([]string) (time.Duration, bool) {
	return func(match []string) (time.Duration, bool) {
		return multiply(match[1], unit)
	}
}

// fractionOf converts the first capture group, a decimal number, into a multiple of unit.
func fractionOf(unit time.Duration) func([]string) (time.Duration, bool) {
	return func(match []string) (time.Duration, bool) {
		value, err := strconv.ParseFloat(match[1], 64)
		if err != nil {
			return 0, false
		}

		scaled := value * float64(unit)
		if scaled >= float64(maxDuration) {
			return 0, false
		}

		return time.Duration(math.Round(scaled)), true
	}
}

// fixed returns a constant offset.
func fixed(offset time.Duration) func([]string) (time.Duration, bool) {
	return func([]string) (time.Duration, bool) {
		return offset, true
	}
}

// multiply parses a whole number and scales it by unit, rejecting overflow.
// An empty string counts as zero.
func multiply(number string, unit time.Duration) (time.Duration, bool) {
	if number == "" {
		return 0, true
	}

	n, err := strconv.ParseInt(number, 10, 64)
	if err != nil || n > int64(maxDuration/unit) {
		return 0, false
	}

	return time.Duration(n) * unit, true
}
