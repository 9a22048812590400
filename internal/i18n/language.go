package i18n

import (
	"time"

	"golang.org/x/text/language"
)

// Language selects one of the two supported display languages.
type Language string

const (
	German  Language = "de"
	English Language = "en"
)

// DefaultLanguage is used when a request does not specify a language.
const DefaultLanguage = English

// ParseLanguage converts a raw string into a Language.
// Anything other than "de" resolves to English, matching the platform default.
func ParseLanguage(raw string) Language {
	if raw == string(German) {
		return German
	}
	return English
}

// Tag returns the BCP 47 tag used for locale-aware number and date rendering.
func (l Language) Tag() language.Tag {
	if l == German {
		return language.MustParse("de-DE")
	}
	return language.MustParse("en-US")
}

// LocalizedString holds the German and English values of one logical field.
// Both members are always populated; there are no partial translations.
type LocalizedString struct {
	De string `json:"de"`
	En string `json:"en"`
}

// Resolve returns the member matching the given language.
// Every dual field on the same entity must be resolved with the same language
// within a single rendering pass.
func (s LocalizedString) Resolve(lang Language) string {
	if lang == German {
		return s.De
	}
	return s.En
}

// Date layouts mirror the browser's toLocaleDateString output for de-DE and
// en-US: "2.1.2006" vs "1/2/2006", no leading zeros.
const (
	dateLayoutGerman  = "2.1.2006"
	dateLayoutEnglish = "1/2/2006"
)

// FormatDate renders an ISO-8601 date string in the locale convention of the
// given language. Unparseable input is returned verbatim rather than erroring;
// catalog dates are trusted static data.
func FormatDate(isoDate string, lang Language) string {
	t, err := time.Parse("2006-01-02", isoDate)
	if err != nil {
		return isoDate
	}
	if lang == German {
		return t.Format(dateLayoutGerman)
	}
	return t.Format(dateLayoutEnglish)
}
