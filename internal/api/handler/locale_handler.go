package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/jaaago/civic-portal/internal/core/ports"
)

// LocaleHandler serves UI translations.
type LocaleHandler struct {
	locale ports.LocaleService
}

func NewLocaleHandler(locale ports.LocaleService) *LocaleHandler {
	return &LocaleHandler{locale: locale}
}

type localeResponse struct {
	Language     string            `json:"language"`
	Toggle       string            `json:"toggle"`
	Translations map[string]string `json:"translations"`
}

// Get handles GET /locale. The language comes from ?lang= or Accept-Language.
//
// @Summary      UI translations
// @Tags         context
// @Produce      json
// @Param        lang  query     string  false  "en or hi"
// @Success      200   {object}  localeResponse
// @Router       /locale [get]
func (h *LocaleHandler) Get(c echo.Context) error {
	lang := h.locale.Negotiate(c.QueryParam("lang"), c.Request().Header.Get("Accept-Language"))
	c.Response().Header().Set(echo.HeaderVary, "Accept-Language")
	return c.JSON(http.StatusOK, localeResponse{
		Language:     lang,
		Toggle:       h.locale.Toggle(lang),
		Translations: h.locale.Translations(lang),
	})
}
