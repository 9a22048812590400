package middleware

import (
	"github.com/dtal-platform/api/internal/i18n"
	"github.com/gin-gonic/gin"
)

const (
	// LanguageKey is the context key for the resolved display language
	LanguageKey = "language"
	// LanguageQueryParam selects the display language per request
	LanguageQueryParam = "lang"
)

// Language resolves the display language for each request from the lang query
// parameter, falling back to the configured default. The resolved language is
// the single language used for every localized field in the response; handlers
// must not mix languages within one render.
func Language(defaultLang i18n.Language) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.Query(LanguageQueryParam)

		lang := defaultLang
		if raw != "" {
			lang = i18n.ParseLanguage(raw)
		}

		c.Set(LanguageKey, lang)
		c.Next()
	}
}

// GetLanguage retrieves the resolved language from the Gin context.
// Returns the platform default if the middleware did not run.
func GetLanguage(c *gin.Context) i18n.Language {
	if v, exists := c.Get(LanguageKey); exists {
		if lang, ok := v.(i18n.Language); ok {
			return lang
		}
	}
	return i18n.DefaultLanguage
}
