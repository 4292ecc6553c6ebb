package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/jaaago/civic-portal/internal/core/domain"
	"github.com/jaaago/civic-portal/internal/core/ports"
)

// PartnerHandler serves the partner dashboard.
type PartnerHandler struct {
	dashboards ports.DashboardService
	tasks      ports.TaskService
}

func NewPartnerHandler(dashboards ports.DashboardService, tasks ports.TaskService) *PartnerHandler {
	return &PartnerHandler{dashboards: dashboards, tasks: tasks}
}

// Home handles GET /partner-dashboard.
//
// @Summary      Partner dashboard home
// @Tags         partner
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  homeResponse
// @Failure      303  "Redirect to /partner-auth"
// @Router       /partner-dashboard [get]
func (h *PartnerHandler) Home(c echo.Context) error {
	return home(c, h.dashboards, domain.RolePartner)
}

// Tasks handles GET /partner-dashboard/tasks.
//
// @Summary      Assigned tasks
// @Tags         partner
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.Task
// @Router       /partner-dashboard/tasks [get]
func (h *PartnerHandler) Tasks(c echo.Context) error {
	return c.JSON(http.StatusOK, h.tasks.List())
}

// Task handles GET /partner-dashboard/tasks/:id.
//
// @Summary      Task detail
// @Tags         partner
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Task id"
// @Success      200  {object}  domain.Task
// @Failure      404  {object}  map[string]string
// @Router       /partner-dashboard/tasks/{id} [get]
func (h *PartnerHandler) Task(c echo.Context) error {
	task, err := h.tasks.Get(c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, task)
}

// Act handles POST /partner-dashboard/tasks/:id/:action where action is
// accept, decline or complete.
//
// @Summary      Act on a task
// @Tags         partner
// @Produce      json
// @Security     BearerAuth
// @Param        id      path      string  true  "Task id"
// @Param        action  path      string  true  "accept | decline | complete"
// @Success      200     {object}  domain.Ack
// @Failure      400     {object}  map[string]string
// @Failure      404     {object}  map[string]string
// @Failure      409     {object}  map[string]string
// @Router       /partner-dashboard/tasks/{id}/{action} [post]
func (h *PartnerHandler) Act(c echo.Context) error {
	action, err := domain.ParseTaskAction(c.Param("action"))
	if err != nil {
		return err
	}
	ack, err := h.tasks.Act(c.Request().Context(), c.Param("id"), action)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, ack)
}

// UploadProof handles POST /partner-dashboard/tasks/:id/proof.
//
// @Summary      Upload proof of work
// @Tags         partner
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        id     path      string  true  "Task id"
// @Param        proof  formData  file    true  "Proof photo"
// @Success      200    {object}  domain.Ack
// @Failure      400    {object}  map[string]string
// @Failure      404    {object}  map[string]string
// @Router       /partner-dashboard/tasks/{id}/proof [post]
func (h *PartnerHandler) UploadProof(c echo.Context) error {
	name, err := uploadedName(c, "proof")
	if err != nil {
		return err
	}
	ack, err := h.tasks.AttachProof(c.Param("id"), name)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, ack)
}

// Performance handles GET /partner-dashboard/performance.
//
// @Summary      Performance
// @Tags         partner
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.Metric
// @Router       /partner-dashboard/performance [get]
func (h *PartnerHandler) Performance(c echo.Context) error {
	return c.JSON(http.StatusOK, h.dashboards.Performance())
}

// Messages handles GET /partner-dashboard/communication.
//
// @Summary      Communication thread
// @Tags         partner
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.PartnerMessage
// @Router       /partner-dashboard/communication [get]
func (h *PartnerHandler) Messages(c echo.Context) error {
	return c.JSON(http.StatusOK, h.tasks.Messages())
}

// SendMessage handles POST /partner-dashboard/communication.
//
// @Summary      Message the authority
// @Tags         partner
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      partnerMessageRequest  true  "Message"
// @Success      200   {object}  domain.Ack
// @Failure      400   {object}  map[string]string
// @Router       /partner-dashboard/communication [post]
func (h *PartnerHandler) SendMessage(c echo.Context) error {
	var req partnerMessageRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	ack, err := h.tasks.SendMessage(c.Request().Context(), req.Message)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, ack)
}

// Settings handles GET /partner-dashboard/settings.
//
// @Summary      Partner settings
// @Tags         partner
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  settingsResponse
// @Router       /partner-dashboard/settings [get]
func (h *PartnerHandler) Settings(c echo.Context) error {
	return settings(c)
}
