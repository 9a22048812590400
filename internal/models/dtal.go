package models

import (
	"github.com/dtal-platform/api/internal/i18n"
)

// Parameter type tags for DTAL calculator inputs.
const (
	ParameterTypeString  = "string"
	ParameterTypeNumber  = "number"
	ParameterTypeSelect  = "select"
	ParameterTypeBoolean = "boolean"
)

// DTAL is one catalog record: a Digital Twin of Administrative Law.
// Entities are created from static configuration at process start and are
// immutable afterwards; there is no deletion flow. Every human-readable
// attribute is a language pair with both members always present.
type DTAL struct {
	ID            string               `json:"id"`
	Name          i18n.LocalizedString `json:"name"`
	Description   i18n.LocalizedString `json:"description"`
	Category      i18n.LocalizedString `json:"category"`
	Jurisdiction  i18n.LocalizedString `json:"jurisdiction"`
	MCPURL        string               `json:"mcpUrl"`
	Version       string               `json:"version"`
	LastUpdated   string               `json:"lastUpdated"`
	Parameters    []DTALParameter      `json:"parameters"`
	LawReferences []string             `json:"lawReferences"`
}

// DTALParameter describes one input field a calculator requires.
// Parameters belong to exactly one DTAL.
type DTALParameter struct {
	Name        i18n.LocalizedString `json:"name"`
	Key         string               `json:"key"`
	Type        string               `json:"type"`
	Required    bool                 `json:"required"`
	Description i18n.LocalizedString `json:"description"`
	Options     []string             `json:"options,omitempty"`
	Unit        string               `json:"unit,omitempty"`
}
