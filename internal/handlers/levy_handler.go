package handlers

import (
	"errors"
	"net/http"

	apierrors "github.com/dtal-platform/api/internal/errors"
	"github.com/dtal-platform/api/internal/i18n"
	"github.com/dtal-platform/api/internal/levy"
	"github.com/dtal-platform/api/internal/middleware"
	"github.com/dtal-platform/api/internal/models"
	"github.com/dtal-platform/api/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// LevyHandler handles levy calculation HTTP requests.
type LevyHandler struct {
	service services.LevyService
}

// NewLevyHandler creates a new LevyHandler instance.
func NewLevyHandler(service services.LevyService) *LevyHandler {
	return &LevyHandler{
		service: service,
	}
}

// CalculationResponse is the localized rendering of a CalculationResult.
// The amount is returned both raw and pre-formatted so clients need no
// locale-aware formatting of their own.
type CalculationResponse struct {
	Amount          float64       `json:"amount"`
	AmountFormatted string        `json:"amount_formatted"`
	Currency        string        `json:"currency"`
	Breakdown       []ResponseRow `json:"breakdown"`
	LawReferences   []string      `json:"law_references"`
	Notes           string        `json:"notes"`
}

// ResponseRow is one localized breakdown line.
type ResponseRow struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Calculate handles POST /api/v1/dtals/:id/calculate.
// It validates the request locally, delegates to the levy service, and maps
// service errors onto the API error taxonomy. A failed calculation produces
// no partial result.
func (h *LevyHandler) Calculate(c *gin.Context) {
	lang := middleware.GetLanguage(c)
	id := c.Param("id")

	var req levy.CalculationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		if validationErrors, ok := err.(validator.ValidationErrors); ok {
			apierrors.ValidationError(c, validationErrors, lang)
			return
		}
		apierrors.BadRequest(c, "Invalid request body", nil)
		return
	}

	result, err := h.service.Calculate(c.Request.Context(), id, req, lang)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrDTALNotFound):
			apierrors.NotFound(c, "No catalog entry with this id")
		case errors.Is(err, services.ErrCalculatorUnavailable):
			apierrors.NotImplemented(c, lang)
		case errors.Is(err, services.ErrInvalidInput):
			apierrors.BadRequest(c, err.Error(), nil)
		case errors.Is(err, levy.ErrRemote):
			apierrors.CalculationFailed(c, lang, err)
		default:
			apierrors.InternalServerError(c, "Failed to run calculation", err)
		}
		return
	}

	c.JSON(http.StatusOK, mapResultToResponse(result, lang))
}

// mapResultToResponse resolves every dual field of the result with the same
// language and attaches the formatted final amount.
func mapResultToResponse(result *models.CalculationResult, lang i18n.Language) CalculationResponse {
	rows := make([]ResponseRow, 0, len(result.Breakdown))
	for _, row := range result.Breakdown {
		rows = append(rows, ResponseRow{
			Label: row.Label.Resolve(lang),
			Value: row.Value,
		})
	}

	return CalculationResponse{
		Amount:          result.Amount,
		AmountFormatted: levy.FormatAmount(result.Amount, result.Currency, lang),
		Currency:        result.Currency,
		Breakdown:       rows,
		LawReferences:   result.LawReferences,
		Notes:           result.Notes.Resolve(lang),
	}
}
