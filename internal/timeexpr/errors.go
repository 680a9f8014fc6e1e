package timeexpr

import "errors"

// ErrInvalidFormat matches every *InvalidFormatError via errors.Is.
var ErrInvalidFormat = errors.New("invalid time format")

// invalidFormatMessages are the user-facing messages per language.
//
//nolint:gochecknoglobals // Read-only lookup table.
var invalidFormatMessages = map[Language]string{
	LanguageEnglish:    "Invalid time format",
	LanguagePortuguese: "Formato de tempo inválido",
}

// InvalidFormatError is returned when no strategy recognizes the input.
// Its message is localized to the language detected in the input.
type InvalidFormatError struct {
	// Input is the trimmed text that failed to parse.
	Input string
	// Language is the detected (or default) language.
	Language Language
}

// Error returns the localized message.
func (e *InvalidFormatError) Error() string {
	if message, ok := invalidFormatMessages[e.Language]; ok {
		return message
	}

	return invalidFormatMessages[DefaultLanguage]
}

// Is makes errors.Is(err, ErrInvalidFormat) succeed.
func (e *InvalidFormatError) Is(target error) bool {
	return target == ErrInvalidFormat
}
