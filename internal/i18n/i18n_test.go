package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolve(t *testing.T) {
	pair := LocalizedString{De: "Tourismusabgabe", En: "Tourism Levy"}

	assert.Equal(t, "Tourismusabgabe", pair.Resolve(German))
	assert.Equal(t, "Tourism Levy", pair.Resolve(English))
}

func TestResolve_NoCrossLanguageLeakage(t *testing.T) {
	// The resolved value must come from exactly the member designated for the
	// language, for every pair.
	pairs := []LocalizedString{
		{De: "Kategorie", En: "Category"},
		{De: "Rechtsgebiet", En: "Jurisdiction"},
		{De: "Gemeinde", En: "Municipality"},
	}

	for _, pair := range pairs {
		de := pair.Resolve(German)
		en := pair.Resolve(English)

		assert.NotEmpty(t, de)
		assert.NotEmpty(t, en)
		assert.Equal(t, pair.De, de)
		assert.Equal(t, pair.En, en)
		assert.NotEqual(t, de, en)
	}
}

func TestParseLanguage(t *testing.T) {
	tests := []struct {
		input    string
		expected Language
	}{
		{"de", German},
		{"en", English},
		{"", English},
		{"fr", English},
		{"DE", English}, // case-sensitive, matching the upstream toggle values
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseLanguage(tt.input))
		})
	}
}

func TestLookup(t *testing.T) {
	t.Run("returns german string for de", func(t *testing.T) {
		assert.Equal(t, "Rechner", Lookup("calculator", German))
	})

	t.Run("returns english string for en", func(t *testing.T) {
		assert.Equal(t, "Calculator", Lookup("calculator", English))
	})

	t.Run("returns key verbatim when missing", func(t *testing.T) {
		assert.Equal(t, "noSuchKey", Lookup("noSuchKey", German))
		assert.Equal(t, "noSuchKey", Lookup("noSuchKey", English))
	})

	t.Run("never returns empty for defined keys", func(t *testing.T) {
		for key := range translations[English] {
			assert.NotEmpty(t, Lookup(key, English), "key %s", key)
			assert.NotEmpty(t, Lookup(key, German), "key %s", key)
		}
	})
}

func TestCheckParity(t *testing.T) {
	// Every key present in the English table must have a German counterpart
	// and vice versa.
	assert.NoError(t, CheckParity())

	for key := range translations[English] {
		_, ok := translations[German][key]
		assert.True(t, ok, "key %s missing from de table", key)
	}
	for key := range translations[German] {
		_, ok := translations[English][key]
		assert.True(t, ok, "key %s missing from en table", key)
	}
}

func TestFormatDate(t *testing.T) {
	tests := []struct {
		name     string
		iso      string
		lang     Language
		expected string
	}{
		{
			name:     "german locale",
			iso:      "2024-09-15",
			lang:     German,
			expected: "15.9.2024",
		},
		{
			name:     "english locale",
			iso:      "2024-09-15",
			lang:     English,
			expected: "9/15/2024",
		},
		{
			name:     "no leading zeros",
			iso:      "2024-01-02",
			lang:     German,
			expected: "2.1.2024",
		},
		{
			name:     "unparseable input returned verbatim",
			iso:      "not-a-date",
			lang:     English,
			expected: "not-a-date",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatDate(tt.iso, tt.lang))
		})
	}
}
