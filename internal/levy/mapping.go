package levy

import (
	"strings"

	"github.com/dtal-platform/api/internal/i18n"
	"github.com/dtal-platform/api/internal/models"
)

// Remote deployments disagree on field names and nesting, so every derived
// value is resolved through an explicit fallback chain: an ordered list of
// candidate paths tried until one yields a present value, else a hard-coded
// default. A JSON null counts as absent.

// Defaults used when no candidate path yields a value. These mirror the
// remote formula only as illustration; the platform never recomputes a levy.
const (
	defaultBaseRate               = 0.003
	defaultMunicipalityMultiplier = 1.0
	defaultActivityMultiplier     = 1.0
	defaultMinimumLevy            = 50.0
	defaultFinalAmount            = 0.0
	defaultCurrency               = "EUR"
)

var defaultLawReferences = []string{
	"§ 3 Oö. Tourismusabgabegesetz - Bemessungsgrundlage",
	"§ 4 Oö. Tourismusabgabegesetz - Abgabensatz",
	"§ 5 Oö. Tourismusabgabegesetz - Mindestabgabe",
}

var defaultNotes = i18n.LocalizedString{
	De: "Die Berechnung erfolgt auf Basis des Jahresumsatzes von vor zwei Jahren. Der Mindestbetrag von €50 gilt für alle Betriebe. Gemeindezuschläge können variieren.",
	En: "The calculation is based on the annual revenue from two years ago. The minimum amount of €50 applies to all businesses. Municipal surcharges may vary.",
}

// Candidate path lists, evaluated independently per derived value.
var (
	baseRatePaths               = []string{"base_rate", "calculation_details.base_rate"}
	municipalityMultiplierPaths = []string{"municipality_multiplier", "calculation_details.municipal_multiplier"}
	activityMultiplierPaths     = []string{"activity_multiplier", "calculation_details.activity_multiplier"}
	minimumLevyPaths            = []string{"minimum_levy", "calculation_details.minimum_levy"}
	finalAmountPaths            = []string{"final_levy", "levy_amount"}
	currencyPaths               = []string{"currency"}
	lawReferencePaths           = []string{"law_references"}
	notesPaths                  = []string{"notes"}
	notesEnPaths                = []string{"notesEn"}
)

// AssembleResult maps a raw remote response into a normalized CalculationResult.
// Breakdown rows are generated in fixed order: revenue, base rate, municipal
// surcharge, activity factor, minimum amount. Currency amounts are formatted
// in the locale of the requesting language; percentage values always use a
// decimal point, matching the upstream display convention.
func AssembleResult(revenue float64, raw map[string]interface{}, lang i18n.Language) *models.CalculationResult {
	baseRate := numberAt(raw, baseRatePaths, defaultBaseRate)
	municipalityMultiplier := numberAt(raw, municipalityMultiplierPaths, defaultMunicipalityMultiplier)
	activityMultiplier := numberAt(raw, activityMultiplierPaths, defaultActivityMultiplier)
	minimum := numberAt(raw, minimumLevyPaths, defaultMinimumLevy)
	amount := numberAt(raw, finalAmountPaths, defaultFinalAmount)
	currency := stringAt(raw, currencyPaths, defaultCurrency)

	symbol := currencySymbol(currency)

	return &models.CalculationResult{
		Amount:   amount,
		Currency: currency,
		Breakdown: []models.BreakdownRow{
			{
				Label: i18n.LocalizedString{De: "Jahresumsatz", En: "Annual Revenue"},
				Value: symbol + formatGrouped(revenue, lang),
			},
			{
				Label: i18n.LocalizedString{De: "Grundsatz", En: "Base Rate"},
				Value: formatRatePercent(baseRate),
			},
			{
				Label: i18n.LocalizedString{De: "Gemeindezuschlag", En: "Municipal Surcharge"},
				Value: formatMultiplierPercent(municipalityMultiplier),
			},
			{
				Label: i18n.LocalizedString{De: "Betriebsart-Faktor", En: "Business Activity Factor"},
				Value: formatMultiplierPercent(activityMultiplier),
			},
			{
				Label: i18n.LocalizedString{De: "Mindestbetrag", En: "Minimum Amount"},
				Value: symbol + formatPlain(minimum),
			},
		},
		LawReferences: stringListAt(raw, lawReferencePaths, defaultLawReferences),
		Notes: i18n.LocalizedString{
			De: stringAt(raw, notesPaths, defaultNotes.De),
			En: stringAt(raw, notesEnPaths, defaultNotes.En),
		},
	}
}

// valueAt descends the mapping along a dot-separated path. Returns false when
// any segment is missing, not a mapping, or explicitly null.
func valueAt(raw map[string]interface{}, path string) (interface{}, bool) {
	segments := strings.Split(path, ".")
	current := raw
	for i, segment := range segments {
		value, ok := current[segment]
		if !ok || value == nil {
			return nil, false
		}
		if i == len(segments)-1 {
			return value, true
		}
		nested, ok := value.(map[string]interface{})
		if !ok {
			return nil, false
		}
		current = nested
	}
	return nil, false
}

// numberAt resolves the first numeric value along the candidate paths.
func numberAt(raw map[string]interface{}, paths []string, fallback float64) float64 {
	for _, path := range paths {
		if v, ok := valueAt(raw, path); ok {
			if n, ok := asFloat(v); ok {
				return n
			}
		}
	}
	return fallback
}

// stringAt resolves the first string value along the candidate paths.
func stringAt(raw map[string]interface{}, paths []string, fallback string) string {
	for _, path := range paths {
		if v, ok := valueAt(raw, path); ok {
			if s, ok := v.(string); ok {
				return s
			}
		}
	}
	return fallback
}

// stringListAt resolves the first string-array value along the candidate paths.
// Non-string elements are skipped; an array with no usable elements falls back.
func stringListAt(raw map[string]interface{}, paths []string, fallback []string) []string {
	for _, path := range paths {
		v, ok := valueAt(raw, path)
		if !ok {
			continue
		}
		items, ok := v.([]interface{})
		if !ok {
			continue
		}
		out := make([]string, 0, len(items))
		for _, item := range items {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		if len(out) > 0 {
			return out
		}
	}
	return fallback
}

func asFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int64:
		return float64(n), true
	case int:
		return float64(n), true
	}
	return 0, false
}
