package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"portfolio/internal/service"
)

// ExperienceHandler handles experience endpoints.
type ExperienceHandler struct {
	experienceService service.ExperienceService
}

// NewExperienceHandler creates a new experience handler.
func NewExperienceHandler(experienceService service.ExperienceService) *ExperienceHandler {
	return &ExperienceHandler{experienceService: experienceService}
}

// Create godoc
// @Summary Create an experience entry
// @Tags experiences
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body service.ExperienceInput true "Experience data"
// @Success 201 {object} Response
// @Failure 400 {object} errors.ErrorResponse
// @Router /experiences [post]
func (h *ExperienceHandler) Create(c echo.Context) error {
	var req service.ExperienceInput
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	experience, err := h.experienceService.Create(c.Request().Context(), req)
	if err != nil {
		return err
	}

	return respond(c, http.StatusCreated, "Experience created successfully", experience)
}

// List godoc
// @Summary List experience entries
// @Tags experiences
// @Produce json
// @Success 200 {object} Response
// @Router /experiences [get]
func (h *ExperienceHandler) List(c echo.Context) error {
	experiences, err := h.experienceService.List(c.Request().Context())
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "Experiences fetched successfully", experiences)
}

// GetByID godoc
// @Summary Fetch an experience entry
// @Tags experiences
// @Produce json
// @Param id path int true "Experience ID"
// @Success 200 {object} Response
// @Failure 404 {object} errors.ErrorResponse
// @Router /experiences/{id} [get]
func (h *ExperienceHandler) GetByID(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	experience, err := h.experienceService.GetByID(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "Experience fetched successfully", experience)
}

// Update godoc
// @Summary Update an experience entry
// @Tags experiences
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Experience ID"
// @Param request body service.ExperienceUpdate true "Fields to update"
// @Success 200 {object} Response
// @Failure 404 {object} errors.ErrorResponse
// @Router /experiences/{id} [patch]
func (h *ExperienceHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req service.ExperienceUpdate
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	experience, err := h.experienceService.Update(c.Request().Context(), id, req)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "Experience updated successfully", experience)
}

// Delete godoc
// @Summary Delete an experience entry
// @Tags experiences
// @Produce json
// @Security BearerAuth
// @Param id path int true "Experience ID"
// @Success 200 {object} Response
// @Failure 404 {object} errors.ErrorResponse
// @Router /experiences/{id} [delete]
func (h *ExperienceHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.experienceService.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return respond(c, http.StatusOK, "Experience deleted successfully", nil)
}
