package catalog

import (
	"github.com/dtal-platform/api/internal/models"
)

// Store provides read access to the preloaded DTAL catalog. The backing data
// is immutable after construction, so a Store is safe for concurrent use
// without locking.
type Store struct {
	entries     []models.DTAL
	byID        map[string]*models.DTAL
	calculators map[string]bool
}

// NewStore builds a Store over the static catalog data.
func NewStore() *Store {
	return newStore(entries, calculators)
}

// newStore is separated from NewStore so tests can build stores over fixture
// catalogs.
func newStore(data []models.DTAL, calcs map[string]bool) *Store {
	byID := make(map[string]*models.DTAL, len(data))
	for i := range data {
		byID[data[i].ID] = &data[i]
	}
	return &Store{
		entries:     data,
		byID:        byID,
		calculators: calcs,
	}
}

// All returns every catalog entry in original catalog order.
func (s *Store) All() []models.DTAL {
	return s.entries
}

// GetByID returns the entry with the given id, or nil if none exists.
func (s *Store) GetByID(id string) *models.DTAL {
	return s.byID[id]
}

// HasCalculator reports whether the entry has a live remote calculator.
func (s *Store) HasCalculator(id string) bool {
	return s.calculators[id]
}

// Len returns the number of catalog entries.
func (s *Store) Len() int {
	return len(s.entries)
}
