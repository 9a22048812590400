package catalog

import (
	"strings"

	"github.com/dtal-platform/api/internal/i18n"
	"github.com/dtal-platform/api/internal/models"
)

// FilterResult holds the visible subset of a catalog and the distinct
// localized category values across all entries.
type FilterResult struct {
	Visible    []models.DTAL
	Categories []string
}

// Filter computes the visible subset of entries for a free-text query and an
// optional category, resolved in the given language.
//
// An entry is visible iff the query is empty or the localized name or
// description contains it as a case-insensitive substring, and the category is
// unset or equals the localized category exactly. Visible entries keep the
// original catalog order, so filtering is idempotent. Categories are collected
// over all entries in first-seen order, not sorted.
func Filter(catalog []models.DTAL, query, category string, lang i18n.Language) FilterResult {
	result := FilterResult{
		Visible:    make([]models.DTAL, 0, len(catalog)),
		Categories: make([]string, 0),
	}

	seen := make(map[string]bool)
	needle := strings.ToLower(query)

	for _, entry := range catalog {
		localizedCategory := entry.Category.Resolve(lang)
		if !seen[localizedCategory] {
			seen[localizedCategory] = true
			result.Categories = append(result.Categories, localizedCategory)
		}

		if !matchesQuery(entry, needle, lang) {
			continue
		}
		if category != "" && localizedCategory != category {
			continue
		}
		result.Visible = append(result.Visible, entry)
	}

	return result
}

// matchesQuery checks the localized name and description for a case-insensitive
// substring match. The needle is already lowercased by Filter.
func matchesQuery(entry models.DTAL, needle string, lang i18n.Language) bool {
	if needle == "" {
		return true
	}
	name := strings.ToLower(entry.Name.Resolve(lang))
	description := strings.ToLower(entry.Description.Resolve(lang))
	return strings.Contains(name, needle) || strings.Contains(description, needle)
}
