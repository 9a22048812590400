package levy

import (
	"testing"

	"github.com/dtal-platform/api/internal/i18n"
	"github.com/stretchr/testify/assert"
)

func TestFormatGrouped(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		lang     i18n.Language
		expected string
	}{
		{"english thousands", 250000, i18n.English, "250,000"},
		{"german thousands", 250000, i18n.German, "250.000"},
		{"english fraction", 1234.5, i18n.English, "1,234.5"},
		{"german fraction", 1234.5, i18n.German, "1.234,5"},
		{"small value", 999, i18n.English, "999"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, formatGrouped(tt.value, tt.lang))
		})
	}
}

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		currency string
		lang     i18n.Language
		expected string
	}{
		{"euro english", 120.5, "EUR", i18n.English, "€120.50"},
		{"euro german", 120.5, "EUR", i18n.German, "€120,50"},
		{"grouped english", 1250.0, "EUR", i18n.English, "€1,250.00"},
		{"dollar", 99.9, "USD", i18n.English, "$99.90"},
		{"franc keeps space", 50.0, "CHF", i18n.English, "CHF 50.00"},
		{"unknown code", 10.0, "SEK", i18n.English, "SEK 10.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatAmount(tt.value, tt.currency, tt.lang))
		})
	}
}

func TestFormatRatePercent(t *testing.T) {
	assert.Equal(t, "0.3%", formatRatePercent(0.003))
	assert.Equal(t, "0.4%", formatRatePercent(0.004))
	assert.Equal(t, "1.0%", formatRatePercent(0.01))
	assert.Equal(t, "0.0%", formatRatePercent(0))
}

func TestFormatMultiplierPercent(t *testing.T) {
	assert.Equal(t, "20%", formatMultiplierPercent(1.2))
	assert.Equal(t, "50%", formatMultiplierPercent(1.5))
	assert.Equal(t, "0%", formatMultiplierPercent(1.0))
	assert.Equal(t, "-10%", formatMultiplierPercent(0.9))
}

func TestFormatPlain(t *testing.T) {
	assert.Equal(t, "50", formatPlain(50))
	assert.Equal(t, "50.5", formatPlain(50.5))
}

func TestCurrencySymbol(t *testing.T) {
	assert.Equal(t, "€", currencySymbol("EUR"))
	assert.Equal(t, "$", currencySymbol("USD"))
	assert.Equal(t, "£", currencySymbol("GBP"))
	assert.Equal(t, "CHF ", currencySymbol("CHF"))
	assert.Equal(t, "SEK ", currencySymbol("SEK"))
}
