package i18n

import "fmt"

// translations is the static UI string table. Loaded once at process start,
// immutable afterwards. The de and en key sets must stay identical; CheckParity
// enforces that at startup and in tests.
var translations = map[Language]map[string]string{
	German: {
		"title":                  "DTAL Plattform",
		"subtitle":               "Digital Twins of Administrative Law",
		"description":            "Plattform für digitale Gesetzeszwillinge - Rechtliche Berechnungen automatisiert und transparent",
		"searchPlaceholder":      "Suche nach digitalen Gesetzeszwillingen...",
		"category":               "Kategorie",
		"jurisdiction":           "Rechtsgebiet",
		"lastUpdated":            "Zuletzt aktualisiert",
		"version":                "Version",
		"calculator":             "Rechner",
		"mcpIntegration":         "MCP Integration",
		"sourceCode":             "Quellcode",
		"calculate":              "Berechnen",
		"result":                 "Ergebnis",
		"lawReferences":          "Gesetzesgrundlagen",
		"notes":                  "Hinweise",
		"mcpTitle":               "MCP Protokoll Integration",
		"mcpDescription":         "Anleitung zur Integration des DTAL in AI-Agenten über das Model Context Protocol",
		"sourceTitle":            "Open Source Dateien",
		"sourceDescription":      "Quellcode und Dokumentation für diesen digitalen Gesetzeszwilling",
		"backToOverview":         "Zurück zur Übersicht",
		"amount":                 "Betrag",
		"breakdown":              "Aufschlüsselung",
		"parameters":             "Parameter",
		"required":               "Pflichtfeld",
		"optional":               "Optional",
		"municipality":           "Gemeinde",
		"businessActivity":       "Betriebsart",
		"annualRevenue":          "Jahresumsatz",
		"selectMunicipality":     "Gemeinde auswählen...",
		"selectBusinessActivity": "Betriebsart auswählen...",
		"enterAmount":            "Betrag eingeben...",
		"validationRequired":     "Dieses Feld ist erforderlich",
		"validationMinAmount":    "Der Betrag muss größer als 0 sein",
		"calculationFailed":      "Berechnung fehlgeschlagen",
		"calculatorComingSoon":   "Rechner für diesen DTAL wird bald verfügbar sein.",
		"noResults":              "Keine digitalen Gesetzeszwillinge gefunden. Versuchen Sie es mit anderen Suchbegriffen.",
	},
	English: {
		"title":                  "DTAL Platform",
		"subtitle":               "Digital Twins of Administrative Law",
		"description":            "Platform for digital law twins - Legal calculations automated and transparent",
		"searchPlaceholder":      "Search for digital law twins...",
		"category":               "Category",
		"jurisdiction":           "Jurisdiction",
		"lastUpdated":            "Last updated",
		"version":                "Version",
		"calculator":             "Calculator",
		"mcpIntegration":         "MCP Integration",
		"sourceCode":             "Source Code",
		"calculate":              "Calculate",
		"result":                 "Result",
		"lawReferences":          "Legal References",
		"notes":                  "Notes",
		"mcpTitle":               "MCP Protocol Integration",
		"mcpDescription":         "Guide for integrating this DTAL into AI agents via Model Context Protocol",
		"sourceTitle":            "Open Source Files",
		"sourceDescription":      "Source code and documentation for this digital law twin",
		"backToOverview":         "Back to Overview",
		"amount":                 "Amount",
		"breakdown":              "Breakdown",
		"parameters":             "Parameters",
		"required":               "Required",
		"optional":               "Optional",
		"municipality":           "Municipality",
		"businessActivity":       "Business Activity",
		"annualRevenue":          "Annual Revenue",
		"selectMunicipality":     "Select municipality...",
		"selectBusinessActivity": "Select business activity...",
		"enterAmount":            "Enter amount...",
		"validationRequired":     "This field is required",
		"validationMinAmount":    "Amount must be greater than 0",
		"calculationFailed":      "Calculation failed",
		"calculatorComingSoon":   "Calculator for this DTAL will be available soon.",
		"noResults":              "No digital law twins found. Try different search terms.",
	},
}

// Lookup returns the UI string for the given key in the given language.
// A key missing from the active language's table is returned verbatim; Lookup
// never fails and never returns an empty string for a defined key.
func Lookup(key string, lang Language) string {
	table, ok := translations[lang]
	if !ok {
		table = translations[DefaultLanguage]
	}
	if s, ok := table[key]; ok {
		return s
	}
	return key
}

// CheckParity verifies that the German and English tables define exactly the
// same key set. Called once at startup; a mismatch is a programming error in
// the static table, not a runtime condition.
func CheckParity() error {
	de := translations[German]
	en := translations[English]

	for key := range en {
		if _, ok := de[key]; !ok {
			return fmt.Errorf("translation key %q defined for en but not de", key)
		}
	}
	for key := range de {
		if _, ok := en[key]; !ok {
			return fmt.Errorf("translation key %q defined for de but not en", key)
		}
	}
	return nil
}
