package services

import (
	"context"
	"errors"

	"github.com/dtal-platform/api/internal/catalog"
	"github.com/dtal-platform/api/internal/i18n"
	"github.com/dtal-platform/api/internal/logger"
	"github.com/dtal-platform/api/internal/models"
)

// Service-level errors
var (
	ErrDTALNotFound = errors.New("dtal not found")
)

// CatalogService defines the interface for catalog business logic operations.
type CatalogService interface {
	// ListDTALs returns the visible subset of the catalog for a free-text
	// query and optional category, plus the distinct localized category set.
	// An empty result is not an error.
	ListDTALs(ctx context.Context, query, category string, lang i18n.Language) (catalog.FilterResult, error)

	// GetDTAL retrieves a single catalog entry by id.
	// Returns ErrDTALNotFound if no entry exists with that id.
	GetDTAL(ctx context.Context, id string) (*models.DTAL, error)

	// HasCalculator reports whether the entry has a live remote calculator.
	HasCalculator(id string) bool
}

// catalogService is the concrete implementation of CatalogService.
type catalogService struct {
	store *catalog.Store
	log   *logger.Logger
}

// NewCatalogService creates a new instance of CatalogService.
func NewCatalogService(store *catalog.Store, log *logger.Logger) CatalogService {
	return &catalogService{
		store: store,
		log:   log,
	}
}

// ListDTALs filters the catalog for display. Filtering is pure over the
// catalog, the query, and the language; re-running with the same arguments
// yields the same visible set in the same order.
func (s *catalogService) ListDTALs(ctx context.Context, query, category string, lang i18n.Language) (catalog.FilterResult, error) {
	result := catalog.Filter(s.store.All(), query, category, lang)

	s.log.Debug("Catalog filtered", map[string]interface{}{
		"query":    query,
		"category": category,
		"lang":     string(lang),
		"visible":  len(result.Visible),
		"total":    s.store.Len(),
	})

	return result, nil
}

// GetDTAL retrieves a single entry, transforming a miss into ErrDTALNotFound.
func (s *catalogService) GetDTAL(ctx context.Context, id string) (*models.DTAL, error) {
	entry := s.store.GetByID(id)
	if entry == nil {
		s.log.Debug("DTAL not found", map[string]interface{}{
			"id": id,
		})
		return nil, ErrDTALNotFound
	}

	return entry, nil
}

// HasCalculator reports calculator availability for the entry.
func (s *catalogService) HasCalculator(id string) bool {
	return s.store.HasCalculator(id)
}
