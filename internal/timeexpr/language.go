package timeexpr

import "strings"

// Language is the detected language of a time expression.
type Language string

const (
	// LanguageEnglish is English.
	LanguageEnglish Language = "en"
	// LanguagePortuguese is Portuguese.
	LanguagePortuguese Language = "pt"

	// DefaultLanguage applies when no indicator word matches.
	DefaultLanguage = LanguageEnglish
)

// indicatorSet lists substrings that mark text as written in a language.
type indicatorSet struct {
	language Language
	words    []string
}

// indicators are scanned in order; the first language with a hit wins.
//
//nolint:gochecknoglobals // Read-only lookup table.
var indicators = []indicatorSet{
	{
		language: LanguagePortuguese,
		words:    []string{"daqui", "hora", "horas", "minuto", "minutos", "meia", "quarto", "em", "segundo", "segundos"},
	},
	{
		language: LanguageEnglish,
		words:    []string{"hour", "hours", "minute", "minutes", "quarter", "half", "in", "second", "seconds"},
	},
}

// DetectLanguage returns the first language whose indicator words occur in text.
func DetectLanguage(text string) Language {
	text = strings.ToLower(text)

	for _, set := range indicators {
		for _, word := range set.words {
			if strings.Contains(text, word) {
				return set.language
			}
		}
	}

	return DefaultLanguage
}
