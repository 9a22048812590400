package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dtal-platform/api/internal/i18n"
	"github.com/dtal-platform/api/internal/levy"
	"github.com/dtal-platform/api/internal/logger"
	"github.com/dtal-platform/api/internal/middleware"
	"github.com/dtal-platform/api/internal/models"
	"github.com/dtal-platform/api/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockLevyService is a mock implementation of the LevyService interface.
type MockLevyService struct {
	mock.Mock
}

func (m *MockLevyService) Calculate(ctx context.Context, id string, req levy.CalculationRequest, lang i18n.Language) (*models.CalculationResult, error) {
	args := m.Called(ctx, id, req, lang)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CalculationResult), args.Error(1)
}

// setupLevyTestRouter creates a test router with middleware and the calculate route.
func setupLevyTestRouter(handler *LevyHandler, log *logger.Logger) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(log))
	router.Use(middleware.Language(i18n.English))

	v1 := router.Group("/api/v1")
	{
		dtals := v1.Group("/dtals")
		{
			dtals.POST("/:id/calculate", handler.Calculate)
		}
	}

	return router
}

func calculateBody(t *testing.T) *bytes.Reader {
	t.Helper()
	body, err := json.Marshal(map[string]interface{}{
		"municipality_name":     "Hallstatt",
		"business_activity":     "Hotel",
		"revenue_two_years_ago": 250000,
	})
	require.NoError(t, err)
	return bytes.NewReader(body)
}

func sampleResult() *models.CalculationResult {
	return &models.CalculationResult{
		Amount:   120.5,
		Currency: "EUR",
		Breakdown: []models.BreakdownRow{
			{Label: i18n.LocalizedString{De: "Jahresumsatz", En: "Annual Revenue"}, Value: "€250,000"},
			{Label: i18n.LocalizedString{De: "Grundsatz", En: "Base Rate"}, Value: "0.3%"},
		},
		LawReferences: []string{"§ 3 Oö. Tourismusabgabegesetz - Bemessungsgrundlage"},
		Notes: i18n.LocalizedString{
			De: "Der Mindestbetrag von €50 gilt für alle Betriebe.",
			En: "The minimum amount of €50 applies to all businesses.",
		},
	}
}

func TestLevyHandler_Calculate_Success(t *testing.T) {
	mockService := new(MockLevyService)
	handler := NewLevyHandler(mockService)
	log := logger.New("development")
	router := setupLevyTestRouter(handler, log)

	mockService.On("Calculate", mock.Anything, "ooe-tourism-levy", mock.AnythingOfType("levy.CalculationRequest"), i18n.English).
		Return(sampleResult(), nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequestWithContext(context.Background(), http.MethodPost, "/api/v1/dtals/ooe-tourism-levy/calculate", calculateBody(t))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp CalculationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.Equal(t, 120.5, resp.Amount)
	assert.Equal(t, "€120.50", resp.AmountFormatted)
	assert.Equal(t, "EUR", resp.Currency)
	require.Len(t, resp.Breakdown, 2)
	assert.Equal(t, "Annual Revenue", resp.Breakdown[0].Label)
	assert.Equal(t, "€250,000", resp.Breakdown[0].Value)
	assert.Equal(t, "The minimum amount of €50 applies to all businesses.", resp.Notes)
	mockService.AssertExpectations(t)
}

func TestLevyHandler_Calculate_GermanLocalization(t *testing.T) {
	mockService := new(MockLevyService)
	handler := NewLevyHandler(mockService)
	log := logger.New("development")
	router := setupLevyTestRouter(handler, log)

	mockService.On("Calculate", mock.Anything, "ooe-tourism-levy", mock.AnythingOfType("levy.CalculationRequest"), i18n.German).
		Return(sampleResult(), nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequestWithContext(context.Background(), http.MethodPost, "/api/v1/dtals/ooe-tourism-levy/calculate?lang=de", calculateBody(t))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp CalculationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.Equal(t, "€120,50", resp.AmountFormatted)
	assert.Equal(t, "Jahresumsatz", resp.Breakdown[0].Label)
	assert.Equal(t, "Der Mindestbetrag von €50 gilt für alle Betriebe.", resp.Notes)
}

func TestLevyHandler_Calculate_MissingFields(t *testing.T) {
	mockService := new(MockLevyService)
	handler := NewLevyHandler(mockService)
	log := logger.New("development")
	router := setupLevyTestRouter(handler, log)

	body := bytes.NewReader([]byte(`{"municipality_name": "Hallstatt"}`))

	w := httptest.NewRecorder()
	req, _ := http.NewRequestWithContext(context.Background(), http.MethodPost, "/api/v1/dtals/ooe-tourism-levy/calculate", body)
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	errObj, ok := resp["error"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "VALIDATION_ERROR", errObj["code"])

	details, ok := errObj["details"].(map[string]interface{})
	require.True(t, ok)
	assert.Contains(t, details, "BusinessActivity")
	assert.Contains(t, details, "RevenueTwoYearsAgo")
	mockService.AssertNotCalled(t, "Calculate")
}

func TestLevyHandler_Calculate_MalformedBody(t *testing.T) {
	mockService := new(MockLevyService)
	handler := NewLevyHandler(mockService)
	log := logger.New("development")
	router := setupLevyTestRouter(handler, log)

	body := bytes.NewReader([]byte(`this is not json`))

	w := httptest.NewRecorder()
	req, _ := http.NewRequestWithContext(context.Background(), http.MethodPost, "/api/v1/dtals/ooe-tourism-levy/calculate", body)
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockService.AssertNotCalled(t, "Calculate")
}

func TestLevyHandler_Calculate_ServiceErrors(t *testing.T) {
	tests := []struct {
		name           string
		serviceErr     error
		expectedStatus int
		expectedCode   string
	}{
		{
			name:           "unknown entry",
			serviceErr:     services.ErrDTALNotFound,
			expectedStatus: http.StatusNotFound,
			expectedCode:   "NOT_FOUND",
		},
		{
			name:           "calculator not live",
			serviceErr:     services.ErrCalculatorUnavailable,
			expectedStatus: http.StatusNotImplemented,
			expectedCode:   "NOT_IMPLEMENTED",
		},
		{
			name:           "invalid input",
			serviceErr:     fmt.Errorf("%w: revenue_two_years_ago must be greater than 0", services.ErrInvalidInput),
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "BAD_REQUEST",
		},
		{
			name:           "remote failure",
			serviceErr:     fmt.Errorf("%w: unexpected status 502", levy.ErrRemote),
			expectedStatus: http.StatusBadGateway,
			expectedCode:   "CALCULATION_FAILED",
		},
		{
			name:           "unexpected error",
			serviceErr:     fmt.Errorf("something else entirely"),
			expectedStatus: http.StatusInternalServerError,
			expectedCode:   "INTERNAL_SERVER_ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockLevyService)
			handler := NewLevyHandler(mockService)
			log := logger.New("development")
			router := setupLevyTestRouter(handler, log)

			mockService.On("Calculate", mock.Anything, mock.AnythingOfType("string"), mock.AnythingOfType("levy.CalculationRequest"), i18n.English).
				Return(nil, tt.serviceErr)

			w := httptest.NewRecorder()
			req, _ := http.NewRequestWithContext(context.Background(), http.MethodPost, "/api/v1/dtals/ooe-tourism-levy/calculate", calculateBody(t))
			req.Header.Set("Content-Type", "application/json")
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			var resp map[string]interface{}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

			errObj, ok := resp["error"].(map[string]interface{})
			require.True(t, ok)
			assert.Equal(t, tt.expectedCode, errObj["code"])
		})
	}
}

func TestLevyHandler_Calculate_LocalizedComingSoonMessage(t *testing.T) {
	mockService := new(MockLevyService)
	handler := NewLevyHandler(mockService)
	log := logger.New("development")
	router := setupLevyTestRouter(handler, log)

	mockService.On("Calculate", mock.Anything, mock.AnythingOfType("string"), mock.AnythingOfType("levy.CalculationRequest"), i18n.German).
		Return(nil, services.ErrCalculatorUnavailable)

	w := httptest.NewRecorder()
	req, _ := http.NewRequestWithContext(context.Background(), http.MethodPost, "/api/v1/dtals/wien-dienstgeberabgabe/calculate?lang=de", calculateBody(t))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotImplemented, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	errObj, ok := resp["error"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "Rechner für diesen DTAL wird bald verfügbar sein.", errObj["message"])
}
