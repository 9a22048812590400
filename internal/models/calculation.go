package models

import (
	"github.com/dtal-platform/api/internal/i18n"
)

// BreakdownRow is one line item of a calculation result: a language-paired
// label and a pre-formatted display value.
type BreakdownRow struct {
	Label i18n.LocalizedString `json:"label"`
	Value string               `json:"value"`
}

// CalculationResult is the local, normalized representation of one remote
// levy computation. It is created fresh per successful calculation and owned
// by the request that triggered it; nothing retains it across calls.
type CalculationResult struct {
	Amount        float64              `json:"amount"`
	Currency      string               `json:"currency"`
	Breakdown     []BreakdownRow       `json:"breakdown"`
	LawReferences []string             `json:"lawReferences"`
	Notes         i18n.LocalizedString `json:"notes"`
}
