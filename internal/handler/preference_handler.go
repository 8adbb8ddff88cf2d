package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/teacher-eval-api/internal/dto"
	appErrors "github.com/noah-isme/teacher-eval-api/pkg/errors"
	"github.com/noah-isme/teacher-eval-api/pkg/response"
)

type languageCatalog interface {
	Supported(lang string) bool
	Default() string
	Languages() []string
	Messages(lang string) map[string]string
}

// PreferenceHandler reads and stores the display language cookie.
type PreferenceHandler struct {
	catalog    languageCatalog
	cookieName string
	maxAge     time.Duration
	secure     bool
}

// NewPreferenceHandler constructs the handler. The cookie is marked Secure when secure is set.
func NewPreferenceHandler(catalog languageCatalog, cookieName string, maxAge time.Duration, secure bool) *PreferenceHandler {
	return &PreferenceHandler{catalog: catalog, cookieName: cookieName, maxAge: maxAge, secure: secure}
}

// Language godoc
// @Summary Current display language
// @Tags Preferences
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /preferences/language [get]
func (h *PreferenceHandler) Language(c *gin.Context) {
	lang := requestLanguage(c)
	if lang == "" {
		lang = h.catalog.Default()
	}
	response.JSON(c, http.StatusOK, dto.LanguagePreference{Language: lang, Available: h.catalog.Languages()})
}

// SetLanguage godoc
// @Summary Change display language
// @Tags Preferences
// @Accept json
// @Produce json
// @Param payload body dto.LanguagePreference true "Language"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /preferences/language [put]
func (h *PreferenceHandler) SetLanguage(c *gin.Context) {
	var req dto.LanguagePreference
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid language payload"))
		return
	}
	lang := strings.ToLower(strings.TrimSpace(req.Language))
	if !h.catalog.Supported(lang) {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "unsupported language "+req.Language))
		return
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cookieName, lang, int(h.maxAge.Seconds()), "/", "", h.secure, false)
	response.JSON(c, http.StatusOK, dto.LanguagePreference{Language: lang, Available: h.catalog.Languages()})
}

// Catalog godoc
// @Summary Message catalog for a language
// @Description Keys missing from the language fall back to the default language.
// @Tags Preferences
// @Produce json
// @Param lang path string true "Language code"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /i18n/{lang} [get]
func (h *PreferenceHandler) Catalog(c *gin.Context) {
	lang := strings.ToLower(strings.TrimSpace(c.Param("lang")))
	if !h.catalog.Supported(lang) {
		response.Error(c, appErrors.Clone(appErrors.ErrNotFound, "language not supported"))
		return
	}
	response.JSON(c, http.StatusOK, h.catalog.Messages(lang), map[string]interface{}{"language": lang})
}
