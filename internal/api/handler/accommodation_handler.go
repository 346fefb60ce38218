package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/harmonyhousing/accommodation-portal/internal/core/ports"
)

// AccommodationHandler handles HTTP requests for listing operations.
type AccommodationHandler struct {
	service ports.AccommodationService
}

func NewAccommodationHandler(service ports.AccommodationService) *AccommodationHandler {
	return &AccommodationHandler{service: service}
}

// List handles GET /v1/accommodations.
//
// @Summary      List accommodations with optional filters
// @Tags         accommodations
// @Produce      json
// @Security     BearerAuth
// @Param        religious_preference  query     string  false  "Religious preference filter; 'Any' disables the filter"
// @Param        type                  query     string  false  "Accommodation type (exact match)"
// @Param        location              query     string  false  "Case-insensitive substring match on location"
// @Success      200                   {object}  listAccommodationsResponse
// @Failure      401                   {object}  errorResponse
// @Router       /v1/accommodations [get]
func (h *AccommodationHandler) List(c echo.Context) error {
	items, err := h.service.List(c.Request().Context(), ports.ListAccommodationsInput{
		ReligiousPreference: c.QueryParam("religious_preference"),
		Type:                c.QueryParam("type"),
		Location:            c.QueryParam("location"),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toListAccommodationsResponse(items))
}

// Get handles GET /v1/accommodations/:id.
//
// @Summary      Get an accommodation by id
// @Tags         accommodations
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Accommodation id"
// @Success      200  {object}  accommodationResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/accommodations/{id} [get]
func (h *AccommodationHandler) Get(c echo.Context) error {
	acc, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toAccommodationResponse(acc))
}

// Create handles POST /v1/accommodations (admin only).
//
// @Summary      Create a new accommodation listing
// @Tags         accommodations
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createAccommodationRequest  true  "Listing details"
// @Success      201   {object}  accommodationResponse
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/accommodations [post]
func (h *AccommodationHandler) Create(c echo.Context) error {
	var req createAccommodationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	acc, err := h.service.Create(c.Request().Context(), toCreateAccommodationInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toAccommodationResponse(acc))
}

// Update handles PUT /v1/accommodations/:id (admin only). Only provided
// fields are merged over the stored record.
//
// @Summary      Partially update an accommodation listing
// @Tags         accommodations
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                      true  "Accommodation id"
// @Param        body  body      updateAccommodationRequest  true  "Fields to change"
// @Success      200   {object}  accommodationResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/accommodations/{id} [put]
func (h *AccommodationHandler) Update(c echo.Context) error {
	var req updateAccommodationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	acc, err := h.service.Update(c.Request().Context(), c.Param("id"), toAccommodationUpdate(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toAccommodationResponse(acc))
}

// Delete handles DELETE /v1/accommodations/:id (admin only). Deleting an
// absent id still returns 204: the operation is idempotent.
//
// @Summary      Delete an accommodation listing
// @Tags         accommodations
// @Security     BearerAuth
// @Param        id  path  string  true  "Accommodation id"
// @Success      204
// @Failure      403  {object}  errorResponse
// @Router       /v1/accommodations/{id} [delete]
func (h *AccommodationHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
