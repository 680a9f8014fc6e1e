package scheduler

import "github.com/oshokin/alarm-bot/internal/timeexpr"

// confirmationPrefixes precede the remaining duration, per language.
//
//nolint:gochecknoglobals // Read-only lookup table.
var confirmationPrefixes = map[timeexpr.Language]string{
	timeexpr.LanguageEnglish:    "✅ Alarm set! I'll notify you in ",
	timeexpr.LanguagePortuguese: "✅ Alarme definido! Vou te avisar em ",
}

// confirmationText renders the confirmation for language. The remaining
// duration is always in English.
func confirmationText(language timeexpr.Language, remaining string) string {
	prefix, ok := confirmationPrefixes[language]
	if !ok {
		prefix = confirmationPrefixes[timeexpr.DefaultLanguage]
	}

	return prefix + remaining
}
