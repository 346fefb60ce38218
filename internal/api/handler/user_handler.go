package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/harmonyhousing/accommodation-portal/internal/core/ports"
)

// UserHandler handles the admin-only account management routes.
type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// Dashboard handles GET /v1/admin/dashboard.
//
// @Summary      Admin dashboard counters
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dashboardResponse
// @Failure      403  {object}  errorResponse
// @Router       /v1/admin/dashboard [get]
func (h *UserHandler) Dashboard(c echo.Context) error {
	stats, err := h.service.Dashboard(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dashboardResponse{
		Accommodations:      stats.Accommodations,
		Applications:        stats.Applications,
		PendingApplications: stats.PendingApplications,
		Users:               stats.Users,
	})
}

// List handles GET /v1/admin/users.
//
// @Summary      List all accounts
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  listUsersResponse
// @Failure      403  {object}  errorResponse
// @Router       /v1/admin/users [get]
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}

	data := make([]userResponse, len(users))
	for i, u := range users {
		data[i] = toUserResponse(u)
	}
	return c.JSON(http.StatusOK, listUsersResponse{Data: data, Total: len(data)})
}

// Get handles GET /v1/admin/users/:id — account details plus the user's
// submitted applications.
//
// @Summary      Get an account with its applications
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "User id"
// @Success      200  {object}  userDetailResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/admin/users/{id} [get]
func (h *UserHandler) Get(c echo.Context) error {
	detail, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	apps := make([]applicationResponse, len(detail.Applications))
	for i, a := range detail.Applications {
		apps[i] = toApplicationResponse(a)
	}
	return c.JSON(http.StatusOK, userDetailResponse{
		User:         toUserResponse(detail.User),
		Applications: apps,
	})
}

// Create handles POST /v1/admin/users.
//
// @Summary      Create an account
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createUserRequest  true  "Account details"
// @Success      201   {object}  userResponse
// @Failure      400   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/admin/users [post]
func (h *UserHandler) Create(c echo.Context) error {
	var req createUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	user, err := h.service.Create(c.Request().Context(), ports.CreateUserInput{
		Email:               req.Email,
		Password:            req.Password,
		Name:                req.Name,
		Phone:               req.Phone,
		Role:                req.Role,
		ReligiousPreference: req.ReligiousPreference,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toUserResponse(user))
}

// Update handles PUT /v1/admin/users/:id — partial update.
//
// @Summary      Update an account
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "User id"
// @Param        body  body      updateUserRequest  true  "Fields to change"
// @Success      200   {object}  userResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/admin/users/{id} [put]
func (h *UserHandler) Update(c echo.Context) error {
	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	user, err := h.service.Update(c.Request().Context(), c.Param("id"), ports.UserUpdate{
		Email:               req.Email,
		Name:                req.Name,
		Phone:               req.Phone,
		Role:                req.Role,
		ReligiousPreference: req.ReligiousPreference,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toUserResponse(user))
}

// Delete handles DELETE /v1/admin/users/:id. Self-deletion is rejected.
//
// @Summary      Delete an account
// @Tags         admin
// @Security     BearerAuth
// @Param        id  path  string  true  "User id"
// @Success      204
// @Failure      403  {object}  errorResponse
// @Router       /v1/admin/users/{id} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	actorID, _, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), c.Param("id"), actorID); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
