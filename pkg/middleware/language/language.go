package language

import (
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/text/language"
)

const contextKey = "language"

// Resolver reports which language codes are supported and which one is the default.
type Resolver interface {
	Supported(lang string) bool
	Default() string
}

// Middleware resolves the display language from the lang query, the preference
// cookie, then Accept-Language, and stores it on the context.
func Middleware(resolver Resolver, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(contextKey, Resolve(c, resolver, cookieName))
		c.Next()
	}
}

// Resolve picks the request language without touching the context.
func Resolve(c *gin.Context, resolver Resolver, cookieName string) string {
	if lang := strings.ToLower(strings.TrimSpace(c.Query("lang"))); resolver.Supported(lang) {
		return lang
	}
	if cookieName != "" {
		if raw, err := c.Cookie(cookieName); err == nil && resolver.Supported(raw) {
			return strings.ToLower(raw)
		}
	}
	for _, lang := range parseAcceptLanguage(c.GetHeader("Accept-Language")) {
		if resolver.Supported(lang) {
			return lang
		}
	}
	return resolver.Default()
}

// Value returns the language stored on the context, or an empty string.
func Value(c *gin.Context) string {
	if v, exists := c.Get(contextKey); exists {
		if lang, ok := v.(string); ok {
			return lang
		}
	}
	return ""
}

// parseAcceptLanguage returns base language codes ordered by q-value. Wildcards,
// q=0 entries and malformed headers are dropped.
func parseAcceptLanguage(header string) []string {
	if strings.TrimSpace(header) == "" {
		return nil
	}
	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil {
		return nil
	}
	var out []string
	for _, tag := range tags {
		base, conf := tag.Base()
		if conf == language.No {
			continue
		}
		code := base.String()
		if code == "und" || code == "mul" {
			continue
		}
		out = append(out, code)
	}
	return out
}
