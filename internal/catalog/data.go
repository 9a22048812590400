package catalog

import (
	"github.com/dtal-platform/api/internal/i18n"
	"github.com/dtal-platform/api/internal/models"
)

// TourismLevyID is the one catalog entry with a live remote calculator.
const TourismLevyID = "ooe-tourism-levy"

// Municipalities available in the tourism levy calculator form.
var Municipalities = []string{
	"Linz",
	"Wels",
	"Steyr",
	"Gmunden",
	"Bad Ischl",
	"Hallstatt",
	"Schärding",
	"Braunau am Inn",
	"Vöcklabruck",
	"St. Wolfgang im Salzkammergut",
}

// BusinessActivities available in the tourism levy calculator form.
// Values are sent verbatim as business_activity to the remote endpoint.
var BusinessActivities = []string{
	"Hotel",
	"Restaurant",
	"Café",
	"Retail",
	"Campingplatz",
	"Reisebüro",
	"Freizeitbetrieb",
}

// defaultLawReferences cite the Upper Austrian tourism levy act. The remote
// service usually returns its own citations; these are the fallback set.
var defaultLawReferences = []string{
	"§ 3 Oö. Tourismusabgabegesetz - Bemessungsgrundlage",
	"§ 4 Oö. Tourismusabgabegesetz - Abgabensatz",
	"§ 5 Oö. Tourismusabgabegesetz - Mindestabgabe",
}

// entries is the static DTAL catalog, trusted and immutable after load.
var entries = []models.DTAL{
	{
		ID: TourismLevyID,
		Name: i18n.LocalizedString{
			De: "Oö. Tourismusabgabe",
			En: "Upper Austrian Tourism Levy",
		},
		Description: i18n.LocalizedString{
			De: "Berechnung der Tourismusabgabe für Betriebe in Oberösterreich auf Basis des Jahresumsatzes von vor zwei Jahren.",
			En: "Calculation of the tourism levy for businesses in Upper Austria based on the annual revenue from two years ago.",
		},
		Category: i18n.LocalizedString{
			De: "Tourismus & Freizeit",
			En: "Tourism & Leisure",
		},
		Jurisdiction: i18n.LocalizedString{
			De: "Oberösterreich, Österreich",
			En: "Upper Austria, Austria",
		},
		MCPURL:      "https://dtal-tourism-dvhvcqgye0fmeddr.germanywestcentral-01.azurewebsites.net/dtal/calculate_ooetourism_levy",
		Version:     "1.0.0",
		LastUpdated: "2024-09-15",
		Parameters: []models.DTALParameter{
			{
				Name:     i18n.LocalizedString{De: "Gemeinde", En: "Municipality"},
				Key:      "municipality_name",
				Type:     models.ParameterTypeSelect,
				Required: true,
				Description: i18n.LocalizedString{
					De: "Gemeinde, in der der Betrieb tätig ist",
					En: "Municipality where the business operates",
				},
				Options: Municipalities,
			},
			{
				Name:     i18n.LocalizedString{De: "Betriebsart", En: "Business Activity"},
				Key:      "business_activity",
				Type:     models.ParameterTypeSelect,
				Required: true,
				Description: i18n.LocalizedString{
					De: "Art der betrieblichen Tätigkeit",
					En: "Description of the business activity",
				},
				Options: BusinessActivities,
			},
			{
				Name:     i18n.LocalizedString{De: "Jahresumsatz", En: "Annual Revenue"},
				Key:      "revenue_two_years_ago",
				Type:     models.ParameterTypeNumber,
				Required: true,
				Description: i18n.LocalizedString{
					De: "Jahresumsatz von vor zwei Jahren in EUR",
					En: "Annual revenue from two years ago in EUR",
				},
				Unit: "EUR",
			},
		},
		LawReferences: defaultLawReferences,
	},
	{
		ID: "wien-dienstgeberabgabe",
		Name: i18n.LocalizedString{
			De: "Wiener Dienstgeberabgabe",
			En: "Vienna Employer Levy",
		},
		Description: i18n.LocalizedString{
			De: "Berechnung der Dienstgeberabgabe für Arbeitgeber in Wien pro Dienstverhältnis und Woche.",
			En: "Calculation of the employer levy for employers in Vienna per employment relationship and week.",
		},
		Category: i18n.LocalizedString{
			De: "Steuer & Abgaben",
			En: "Tax & Levies",
		},
		Jurisdiction: i18n.LocalizedString{
			De: "Wien, Österreich",
			En: "Vienna, Austria",
		},
		MCPURL:      "https://dtal-vienna-employer-levy.azurewebsites.net/dtal/calculate_employer_levy",
		Version:     "0.2.0",
		LastUpdated: "2024-06-03",
		Parameters:  nil,
		LawReferences: []string{
			"§ 5 Wiener Dienstgeberabgabegesetz - Höhe der Abgabe",
		},
	},
	{
		ID: "sv-beitragsgrundlage",
		Name: i18n.LocalizedString{
			De: "SV-Beitragsgrundlage Selbständige",
			En: "Social Security Contribution Base for Self-Employed",
		},
		Description: i18n.LocalizedString{
			De: "Ermittlung der Beitragsgrundlage zur gewerblichen Sozialversicherung nach GSVG.",
			En: "Determination of the contribution base for commercial social security under GSVG.",
		},
		Category: i18n.LocalizedString{
			De: "Sozialversicherung",
			En: "Social Security",
		},
		Jurisdiction: i18n.LocalizedString{
			De: "Österreich",
			En: "Austria",
		},
		MCPURL:      "https://dtal-sv-beitrag.azurewebsites.net/dtal/calculate_contribution_base",
		Version:     "0.1.0",
		LastUpdated: "2024-03-21",
		Parameters:  nil,
		LawReferences: []string{
			"§ 25 GSVG - Beitragsgrundlage",
		},
	},
	{
		ID: "ooe-bauabgabe",
		Name: i18n.LocalizedString{
			De: "Oö. Verwaltungsabgabe Baubewilligung",
			En: "Upper Austrian Building Permit Fee",
		},
		Description: i18n.LocalizedString{
			De: "Berechnung der Verwaltungsabgabe für Baubewilligungsverfahren in Oberösterreich.",
			En: "Calculation of the administrative fee for building permit procedures in Upper Austria.",
		},
		Category: i18n.LocalizedString{
			De: "Baurecht",
			En: "Building Law",
		},
		Jurisdiction: i18n.LocalizedString{
			De: "Oberösterreich, Österreich",
			En: "Upper Austria, Austria",
		},
		MCPURL:      "https://dtal-building-fee.azurewebsites.net/dtal/calculate_permit_fee",
		Version:     "0.1.0",
		LastUpdated: "2024-01-30",
		Parameters:  nil,
		LawReferences: []string{
			"Oö. Landes-Verwaltungsabgabenverordnung, Tarifpost 36",
		},
	},
}

// calculators lists the catalog entries whose remote calculator is live.
// Entries not present here render a "coming soon" placeholder instead of a form.
var calculators = map[string]bool{
	TourismLevyID: true,
}
