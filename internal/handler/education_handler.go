package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"portfolio/internal/service"
)

// EducationHandler handles education endpoints.
type EducationHandler struct {
	educationService service.EducationService
}

// NewEducationHandler creates a new education handler.
func NewEducationHandler(educationService service.EducationService) *EducationHandler {
	return &EducationHandler{educationService: educationService}
}

// Create godoc
// @Summary Create an education entry
// @Tags educations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body service.EducationInput true "Education data"
// @Success 201 {object} Response
// @Failure 400 {object} errors.ErrorResponse
// @Router /educations [post]
func (h *EducationHandler) Create(c echo.Context) error {
	var req service.EducationInput
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	education, err := h.educationService.Create(c.Request().Context(), req)
	if err != nil {
		return err
	}

	return respond(c, http.StatusCreated, "Education created successfully", education)
}

// List godoc
// @Summary List education entries
// @Tags educations
// @Produce json
// @Success 200 {object} Response
// @Router /educations [get]
func (h *EducationHandler) List(c echo.Context) error {
	educations, err := h.educationService.List(c.Request().Context())
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "Educations fetched successfully", educations)
}

// GetByID godoc
// @Summary Fetch an education entry
// @Tags educations
// @Produce json
// @Param id path int true "Education ID"
// @Success 200 {object} Response
// @Failure 404 {object} errors.ErrorResponse
// @Router /educations/{id} [get]
func (h *EducationHandler) GetByID(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	education, err := h.educationService.GetByID(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "Education fetched successfully", education)
}

// Update godoc
// @Summary Update an education entry
// @Tags educations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Education ID"
// @Param request body service.EducationUpdate true "Fields to update"
// @Success 200 {object} Response
// @Failure 404 {object} errors.ErrorResponse
// @Router /educations/{id} [patch]
func (h *EducationHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req service.EducationUpdate
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	education, err := h.educationService.Update(c.Request().Context(), id, req)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "Education updated successfully", education)
}

// Delete godoc
// @Summary Delete an education entry
// @Tags educations
// @Produce json
// @Security BearerAuth
// @Param id path int true "Education ID"
// @Success 200 {object} Response
// @Failure 404 {object} errors.ErrorResponse
// @Router /educations/{id} [delete]
func (h *EducationHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.educationService.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return respond(c, http.StatusOK, "Education deleted successfully", nil)
}
