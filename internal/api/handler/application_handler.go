package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/harmonyhousing/accommodation-portal/internal/core/domain"
	"github.com/harmonyhousing/accommodation-portal/internal/core/ports"
)

// ApplicationHandler handles HTTP requests for the application lifecycle.
type ApplicationHandler struct {
	service ports.ApplicationService
	users   ports.UserRepository
}

func NewApplicationHandler(service ports.ApplicationService, users ports.UserRepository) *ApplicationHandler {
	return &ApplicationHandler{service: service, users: users}
}

// Submit handles POST /v1/applications. Applicant name/email default from the
// caller's account; admins are redirected to the dashboard instead of applying.
//
// @Summary      Submit a tenancy application
// @Tags         applications
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      submitApplicationRequest  true  "Application details"
// @Success      201   {object}  applicationResponse
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/applications [post]
func (h *ApplicationHandler) Submit(c echo.Context) error {
	userID, _, role, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	if role == domain.RoleAdmin {
		return echo.NewHTTPError(http.StatusForbidden, "administrators cannot apply for accommodations")
	}

	var req submitApplicationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	user, err := h.users.FindByID(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	phone := req.UserPhone
	if phone == "" {
		phone = user.Phone
	}

	app, err := h.service.Submit(c.Request().Context(), ports.SubmitApplicationInput{
		AccommodationID: req.AccommodationID,
		UserID:          user.ID,
		UserName:        user.Name,
		UserEmail:       user.Email,
		UserPhone:       phone,
		Message:         req.Message,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toApplicationResponse(app))
}

// List handles GET /v1/applications (admin only).
//
// @Summary      List all applications
// @Tags         applications
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  listApplicationsResponse
// @Failure      403  {object}  errorResponse
// @Router       /v1/applications [get]
func (h *ApplicationHandler) List(c echo.Context) error {
	items, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toListApplicationsResponse(items))
}

// ListMine handles GET /v1/applications/mine — the caller's own applications
// with per-status counts.
//
// @Summary      List the caller's applications
// @Tags         applications
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  myApplicationsResponse
// @Failure      401  {object}  errorResponse
// @Router       /v1/applications/mine [get]
func (h *ApplicationHandler) ListMine(c echo.Context) error {
	userID, _, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	result, err := h.service.ListMine(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toMyApplicationsResponse(result))
}

// Get handles GET /v1/applications/:id (admin only).
//
// @Summary      Get an application by id
// @Tags         applications
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Application id"
// @Success      200  {object}  applicationResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/applications/{id} [get]
func (h *ApplicationHandler) Get(c echo.Context) error {
	app, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toApplicationResponse(app))
}

// UpdateStatus handles PATCH /v1/applications/:id/status (admin only).
// Approved and Rejected are terminal: re-deciding fails with 422.
//
// @Summary      Apply a review decision to an application
// @Tags         applications
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                          true  "Application id"
// @Param        body  body      updateApplicationStatusRequest  true  "New status"
// @Success      200   {object}  applicationResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/applications/{id}/status [patch]
func (h *ApplicationHandler) UpdateStatus(c echo.Context) error {
	var req updateApplicationStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	app, err := h.service.UpdateStatus(c.Request().Context(), c.Param("id"), domain.ApplicationStatus(req.Status))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toApplicationResponse(app))
}

// --- Domain → HTTP response ---

func toApplicationResponse(a *domain.Application) applicationResponse {
	return applicationResponse{
		ID:              a.ID,
		AccommodationID: a.AccommodationID,
		UserID:          a.UserID,
		UserName:        a.UserName,
		UserEmail:       a.UserEmail,
		UserPhone:       a.UserPhone,
		Message:         a.Message,
		Status:          string(a.Status),
		CreatedAt:       a.CreatedAt.UTC(),
	}
}

func toListApplicationsResponse(items []*domain.Application) listApplicationsResponse {
	data := make([]applicationResponse, len(items))
	for i, a := range items {
		data[i] = toApplicationResponse(a)
	}
	return listApplicationsResponse{Data: data, Total: len(data)}
}

func toMyApplicationsResponse(r *ports.MyApplicationsResult) myApplicationsResponse {
	data := make([]applicationResponse, len(r.Items))
	for i, a := range r.Items {
		data[i] = toApplicationResponse(a)
	}
	return myApplicationsResponse{
		Data: data,
		Counts: applicationCountsResponse{
			Total:    r.Counts.Total,
			Pending:  r.Counts.Pending,
			Approved: r.Counts.Approved,
			Rejected: r.Counts.Rejected,
		},
	}
}
