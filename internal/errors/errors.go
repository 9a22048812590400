package errors

import (
	"net/http"

	"github.com/dtal-platform/api/internal/i18n"
	"github.com/dtal-platform/api/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	localede "github.com/go-playground/locales/de"
	localeen "github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	transde "github.com/go-playground/validator/v10/translations/de"
	transen "github.com/go-playground/validator/v10/translations/en"
)

// Error code constants for standardized error responses
const (
	ErrNotFound          = "NOT_FOUND"
	ErrBadRequest        = "BAD_REQUEST"
	ErrInternalServer    = "INTERNAL_SERVER_ERROR"
	ErrValidation        = "VALIDATION_ERROR"
	ErrNotImplemented    = "NOT_IMPLEMENTED"
	ErrCalculationFailed = "CALCULATION_FAILED"
)

// uni translates validator messages into the two supported display languages.
var uni = ut.New(localeen.New(), localeen.New(), localede.New())

// RegisterValidationTranslations installs the de and en validator message
// catalogs on Gin's binding validator. Called once at startup; safe to skip in
// tests, where formatValidationError serves as the fallback.
func RegisterValidationTranslations() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}

	enTrans, _ := uni.GetTranslator("en")
	if err := transen.RegisterDefaultTranslations(v, enTrans); err != nil {
		return err
	}

	deTrans, _ := uni.GetTranslator("de")
	return transde.RegisterDefaultTranslations(v, deTrans)
}

// ErrorResponse is the top-level error response structure.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains the error information.
type ErrorDetail struct {
	Code      string                 `json:"code"`
	Message   string                 `json:"message"`
	Details   map[string]interface{} `json:"details,omitempty"`
	RequestID string                 `json:"request_id,omitempty"`
}

// NotFound returns a 404 Not Found error response.
// It logs a warning and sends a JSON response with the error details.
func NotFound(c *gin.Context, message string) {
	log := middleware.GetLogger(c)
	requestID := middleware.GetRequestID(c)

	if log != nil {
		log.Warn("Resource not found", map[string]interface{}{
			"message":    message,
			"request_id": requestID,
			"path":       c.Request.URL.Path,
		})
	}

	c.JSON(http.StatusNotFound, ErrorResponse{
		Error: ErrorDetail{
			Code:      ErrNotFound,
			Message:   message,
			RequestID: requestID,
		},
	})
}

// BadRequest returns a 400 Bad Request error response with optional details.
// It logs a warning and sends a JSON response with the error details.
func BadRequest(c *gin.Context, message string, details map[string]interface{}) {
	log := middleware.GetLogger(c)
	requestID := middleware.GetRequestID(c)

	logFields := map[string]interface{}{
		"message":    message,
		"request_id": requestID,
		"path":       c.Request.URL.Path,
	}
	if details != nil {
		logFields["details"] = details
	}

	if log != nil {
		log.Warn("Bad request", logFields)
	}

	c.JSON(http.StatusBadRequest, ErrorResponse{
		Error: ErrorDetail{
			Code:      ErrBadRequest,
			Message:   message,
			Details:   details,
			RequestID: requestID,
		},
	})
}

// NotImplemented returns a 501 response for catalog entries whose calculator
// is not yet live. The message is the localized "coming soon" text.
func NotImplemented(c *gin.Context, lang i18n.Language) {
	requestID := middleware.GetRequestID(c)

	c.JSON(http.StatusNotImplemented, ErrorResponse{
		Error: ErrorDetail{
			Code:      ErrNotImplemented,
			Message:   i18n.Lookup("calculatorComingSoon", lang),
			RequestID: requestID,
		},
	})
}

// CalculationFailed returns a 502 response for transport or remote failures
// during a levy calculation. The remote cause is logged but never exposed;
// the client sees only the generic localized failure notice.
func CalculationFailed(c *gin.Context, lang i18n.Language, err error) {
	log := middleware.GetLogger(c)
	requestID := middleware.GetRequestID(c)

	if log != nil {
		log.Error("Levy calculation failed", err, map[string]interface{}{
			"request_id": requestID,
			"path":       c.Request.URL.Path,
		})
	}

	c.JSON(http.StatusBadGateway, ErrorResponse{
		Error: ErrorDetail{
			Code:      ErrCalculationFailed,
			Message:   i18n.Lookup("calculationFailed", lang),
			RequestID: requestID,
		},
	})
}

// InternalServerError returns a 500 Internal Server Error response.
// It logs the error with full context and sends a generic error message to the client.
// The actual error details are not exposed to the client for security reasons.
func InternalServerError(c *gin.Context, message string, err error) {
	log := middleware.GetLogger(c)
	requestID := middleware.GetRequestID(c)

	logFields := map[string]interface{}{
		"message":    message,
		"request_id": requestID,
		"path":       c.Request.URL.Path,
		"method":     c.Request.Method,
	}

	if log != nil {
		log.Error("Internal server error", err, logFields)
	}

	c.JSON(http.StatusInternalServerError, ErrorResponse{
		Error: ErrorDetail{
			Code:      ErrInternalServer,
			Message:   message,
			RequestID: requestID,
		},
	})
}

// ValidationError returns a 400 Bad Request error response with field-specific
// validation errors, translated into the requested display language.
func ValidationError(c *gin.Context, validationErrors validator.ValidationErrors, lang i18n.Language) {
	log := middleware.GetLogger(c)
	requestID := middleware.GetRequestID(c)

	trans, found := uni.GetTranslator(string(lang))

	// Convert validation errors to a map of field -> error message
	details := make(map[string]interface{})
	for _, err := range validationErrors {
		field := err.Field()
		if found {
			if msg := err.Translate(trans); msg != "" {
				details[field] = msg
				continue
			}
		}
		details[field] = formatValidationError(err, lang)
	}

	if log != nil {
		log.Warn("Validation error", map[string]interface{}{
			"request_id": requestID,
			"path":       c.Request.URL.Path,
			"lang":       string(lang),
			"fields":     details,
		})
	}

	c.JSON(http.StatusBadRequest, ErrorResponse{
		Error: ErrorDetail{
			Code:      ErrValidation,
			Message:   "Validation failed for one or more fields",
			Details:   details,
			RequestID: requestID,
		},
	})
}

// formatValidationError converts a validator.FieldError to a human-readable
// message. Fallback for when the translator catalogs are not registered;
// covers the tags this API binds with.
func formatValidationError(err validator.FieldError, lang i18n.Language) string {
	switch err.Tag() {
	case "required":
		return i18n.Lookup("validationRequired", lang)
	case "gt":
		if err.Param() == "0" {
			return i18n.Lookup("validationMinAmount", lang)
		}
		return "Must be greater than " + err.Param()
	case "gte":
		return "Must be greater than or equal to " + err.Param()
	case "min":
		return "Value is too short or small (minimum: " + err.Param() + ")"
	case "max":
		return "Value is too long or large (maximum: " + err.Param() + ")"
	case "oneof":
		return "Must be one of: " + err.Param()
	case "url":
		return "Must be a valid URL"
	default:
		return "Validation failed for tag: " + err.Tag()
	}
}
