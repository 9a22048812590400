package services

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/dtal-platform/api/internal/catalog"
	"github.com/dtal-platform/api/internal/i18n"
	"github.com/dtal-platform/api/internal/levy"
	"github.com/dtal-platform/api/internal/logger"
	"github.com/dtal-platform/api/internal/models"
)

// Service-level errors
var (
	ErrInvalidInput          = errors.New("invalid calculation input")
	ErrCalculatorUnavailable = errors.New("calculator not available for this entry")
)

// Calculator posts a calculation request to a remote levy endpoint and
// returns the raw response mapping.
type Calculator interface {
	Calculate(ctx context.Context, endpoint string, req levy.CalculationRequest) (map[string]interface{}, error)
}

// LevyService defines the interface for levy calculation business logic.
type LevyService interface {
	// Calculate validates the request, posts it to the entry's remote
	// endpoint, and maps the response into a normalized CalculationResult.
	// Returns ErrDTALNotFound for an unknown entry, ErrCalculatorUnavailable
	// when the entry has no live calculator, ErrInvalidInput before any
	// network call when a field is invalid, and levy.ErrRemote for transport
	// or remote failures. On error no result is ever returned, so a caller's
	// previous result stays untouched.
	Calculate(ctx context.Context, id string, req levy.CalculationRequest, lang i18n.Language) (*models.CalculationResult, error)
}

// levyService is the concrete implementation of LevyService.
type levyService struct {
	store      *catalog.Store
	calculator Calculator
	log        *logger.Logger
}

// NewLevyService creates a new instance of LevyService.
func NewLevyService(store *catalog.Store, calculator Calculator, log *logger.Logger) LevyService {
	return &levyService{
		store:      store,
		calculator: calculator,
		log:        log,
	}
}

// Calculate runs one levy calculation end to end.
func (s *levyService) Calculate(ctx context.Context, id string, req levy.CalculationRequest, lang i18n.Language) (*models.CalculationResult, error) {
	entry := s.store.GetByID(id)
	if entry == nil {
		return nil, ErrDTALNotFound
	}

	if !s.store.HasCalculator(id) {
		s.log.Debug("Calculation requested for entry without calculator", map[string]interface{}{
			"id": id,
		})
		return nil, ErrCalculatorUnavailable
	}

	if err := validateRequest(req); err != nil {
		s.log.Warn("Calculation input rejected", map[string]interface{}{
			"id":    id,
			"error": err.Error(),
		})
		return nil, err
	}

	// The declared parameter schema drives a second validation pass so that
	// future calculators get the same checks without new code.
	inputs := map[string]interface{}{
		"municipality_name":     req.MunicipalityName,
		"business_activity":     req.BusinessActivity,
		"revenue_two_years_ago": req.RevenueTwoYearsAgo,
	}
	if schemaErrs := catalog.ValidateInputs(entry.Parameters, inputs); len(schemaErrs) > 0 {
		s.log.Warn("Calculation input rejected by parameter schema", map[string]interface{}{
			"id":     id,
			"fields": schemaErrs,
		})
		return nil, fmt.Errorf("%w: %s", ErrInvalidInput, schemaErrs[0].Error())
	}

	s.log.Info("Running levy calculation", map[string]interface{}{
		"id":           id,
		"municipality": req.MunicipalityName,
		"activity":     req.BusinessActivity,
	})

	raw, err := s.calculator.Calculate(ctx, entry.MCPURL, req)
	if err != nil {
		return nil, err
	}

	result := levy.AssembleResult(req.RevenueTwoYearsAgo, raw, lang)

	s.log.Info("Levy calculation completed", map[string]interface{}{
		"id":       id,
		"amount":   result.Amount,
		"currency": result.Currency,
	})

	return result, nil
}

// validateRequest enforces the local contract before any network call:
// non-empty municipality and business activity, revenue finite and > 0.
func validateRequest(req levy.CalculationRequest) error {
	if req.MunicipalityName == "" {
		return fmt.Errorf("%w: municipality_name must not be empty", ErrInvalidInput)
	}
	if req.BusinessActivity == "" {
		return fmt.Errorf("%w: business_activity must not be empty", ErrInvalidInput)
	}
	if math.IsNaN(req.RevenueTwoYearsAgo) || math.IsInf(req.RevenueTwoYearsAgo, 0) {
		return fmt.Errorf("%w: revenue_two_years_ago must be a finite number", ErrInvalidInput)
	}
	if req.RevenueTwoYearsAgo <= 0 {
		return fmt.Errorf("%w: revenue_two_years_ago must be greater than 0", ErrInvalidInput)
	}
	return nil
}
