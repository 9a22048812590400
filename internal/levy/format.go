package levy

import (
	"github.com/dtal-platform/api/internal/i18n"
	"github.com/shopspring/decimal"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Display formatting for calculation results. Percentage conversions go
// through shopspring/decimal so that float artifacts (0.3000000000000000444%)
// never reach rendered values; grouped currency amounts use x/text so the
// thousands separator follows the request locale (250.000 vs 250,000).

// formatGrouped renders an amount with locale-correct thousands separators
// and at most two fraction digits.
func formatGrouped(v float64, lang i18n.Language) string {
	p := message.NewPrinter(lang.Tag())
	return p.Sprint(number.Decimal(v, number.MaxFractionDigits(2)))
}

// FormatAmount renders a final levy amount with locale grouping and exactly
// two fraction digits, prefixed with the currency symbol.
func FormatAmount(v float64, currency string, lang i18n.Language) string {
	p := message.NewPrinter(lang.Tag())
	return currencySymbol(currency) + p.Sprint(number.Decimal(v,
		number.MinFractionDigits(2),
		number.MaxFractionDigits(2)))
}

// formatRatePercent renders a base rate as rate*100 fixed to one decimal.
func formatRatePercent(rate float64) string {
	return decimal.NewFromFloat(rate).Mul(decimal.NewFromInt(100)).StringFixed(1) + "%"
}

// formatMultiplierPercent renders a multiplier as (multiplier-1)*100 fixed to
// zero decimals, the surcharge/factor convention of the breakdown.
func formatMultiplierPercent(multiplier float64) string {
	return decimal.NewFromFloat(multiplier).
		Sub(decimal.NewFromInt(1)).
		Mul(decimal.NewFromInt(100)).
		StringFixed(0) + "%"
}

// formatPlain renders a raw numeric value without grouping or padding, used
// for the minimum-amount row which is displayed unconverted.
func formatPlain(v float64) string {
	return decimal.NewFromFloat(v).String()
}

// currencySymbol maps an ISO currency code to its display symbol. Unknown
// codes fall back to the code itself followed by a space.
func currencySymbol(code string) string {
	switch code {
	case "EUR":
		return "€"
	case "USD":
		return "$"
	case "GBP":
		return "£"
	case "CHF":
		return "CHF "
	default:
		return code + " "
	}
}
