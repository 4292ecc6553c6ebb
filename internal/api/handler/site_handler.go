package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/jaaago/civic-portal/internal/core/domain"
	"github.com/jaaago/civic-portal/internal/core/ports"
)

// SiteHandler serves the public shell: session context and footer forms.
type SiteHandler struct {
	dashboards ports.DashboardService
}

func NewSiteHandler(dashboards ports.DashboardService) *SiteHandler {
	return &SiteHandler{dashboards: dashboards}
}

type sessionResponse struct {
	Session domain.Session       `json:"session"`
	Landing string               `json:"landing"`
	Sidebar []domain.SidebarItem `json:"sidebar"`
}

// Session returns the resolved session, where it lands, and its navigation.
//
// @Summary      Current session
// @Tags         site
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  sessionResponse
// @Router       /session [get]
func (h *SiteHandler) Session(c echo.Context) error {
	s := ctxSession(c)

	resp := sessionResponse{Session: s, Landing: "/", Sidebar: []domain.SidebarItem{}}
	if s.IsAuthenticated() {
		resp.Landing = s.Role.DashboardPath()
		if items := h.dashboards.Sidebar(s.Role); items != nil {
			resp.Sidebar = items
		}
	}
	return c.JSON(http.StatusOK, resp)
}

// Newsletter handles POST /newsletter.
//
// @Summary      Subscribe to the newsletter
// @Tags         site
// @Accept       json
// @Produce      json
// @Param        body  body      newsletterRequest  true  "Subscriber email"
// @Success      200   {object}  domain.Ack
// @Failure      400   {object}  map[string]string
// @Router       /newsletter [post]
func (h *SiteHandler) Newsletter(c echo.Context) error {
	var req newsletterRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, h.dashboards.Subscribe(c.Request().Context(), req.Email))
}
