package services

import (
	"context"
	"testing"

	"github.com/dtal-platform/api/internal/catalog"
	"github.com/dtal-platform/api/internal/i18n"
	"github.com/dtal-platform/api/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCatalogService() CatalogService {
	return NewCatalogService(catalog.NewStore(), logger.New("development"))
}

func TestCatalogService_ListDTALs_NoFilter(t *testing.T) {
	service := newTestCatalogService()

	result, err := service.ListDTALs(context.Background(), "", "", i18n.English)

	require.NoError(t, err)
	assert.Len(t, result.Visible, 4)
	assert.NotEmpty(t, result.Categories)
}

func TestCatalogService_ListDTALs_Query(t *testing.T) {
	service := newTestCatalogService()

	result, err := service.ListDTALs(context.Background(), "tourism", "", i18n.English)

	require.NoError(t, err)
	require.Len(t, result.Visible, 1)
	assert.Equal(t, catalog.TourismLevyID, result.Visible[0].ID)

	// Categories still reflect the whole catalog
	assert.Len(t, result.Categories, 4)
}

func TestCatalogService_ListDTALs_EmptyResultIsNotAnError(t *testing.T) {
	service := newTestCatalogService()

	result, err := service.ListDTALs(context.Background(), "zzz-no-match", "", i18n.English)

	require.NoError(t, err)
	assert.Empty(t, result.Visible)
}

func TestCatalogService_ListDTALs_Deterministic(t *testing.T) {
	service := newTestCatalogService()

	first, err := service.ListDTALs(context.Background(), "abgabe", "", i18n.German)
	require.NoError(t, err)
	second, err := service.ListDTALs(context.Background(), "abgabe", "", i18n.German)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestCatalogService_GetDTAL(t *testing.T) {
	service := newTestCatalogService()

	entry, err := service.GetDTAL(context.Background(), catalog.TourismLevyID)

	require.NoError(t, err)
	require.NotNil(t, entry)
	assert.Equal(t, "Upper Austrian Tourism Levy", entry.Name.En)
}

func TestCatalogService_GetDTAL_NotFound(t *testing.T) {
	service := newTestCatalogService()

	entry, err := service.GetDTAL(context.Background(), "no-such-entry")

	assert.Nil(t, entry)
	assert.ErrorIs(t, err, ErrDTALNotFound)
}

func TestCatalogService_HasCalculator(t *testing.T) {
	service := newTestCatalogService()

	assert.True(t, service.HasCalculator(catalog.TourismLevyID))
	assert.False(t, service.HasCalculator("wien-dienstgeberabgabe"))
	assert.False(t, service.HasCalculator("no-such-entry"))
}
