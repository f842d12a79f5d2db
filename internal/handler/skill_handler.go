package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"portfolio/internal/model"
	"portfolio/internal/service"
)

// SkillHandler handles skill endpoints.
type SkillHandler struct {
	skillService service.SkillService
}

// NewSkillHandler creates a new skill handler.
func NewSkillHandler(skillService service.SkillService) *SkillHandler {
	return &SkillHandler{skillService: skillService}
}

// Create godoc
// @Summary Create a skill
// @Tags skills
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body service.SkillInput true "Skill data"
// @Success 201 {object} Response
// @Failure 400 {object} errors.ErrorResponse
// @Router /skills [post]
func (h *SkillHandler) Create(c echo.Context) error {
	var req service.SkillInput
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	skill, err := h.skillService.Create(c.Request().Context(), req)
	if err != nil {
		return err
	}

	return respond(c, http.StatusCreated, "Skill created successfully", skill)
}

// List godoc
// @Summary List skills
// @Tags skills
// @Produce json
// @Param category query string false "Category filter"
// @Success 200 {object} Response
// @Router /skills [get]
func (h *SkillHandler) List(c echo.Context) error {
	category := model.SkillCategory(c.QueryParam("category"))
	skills, err := h.skillService.List(c.Request().Context(), category)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "Skills fetched successfully", skills)
}

// ByCategory godoc
// @Summary List skills grouped by category
// @Tags skills
// @Produce json
// @Success 200 {object} Response
// @Router /skills/by-category [get]
func (h *SkillHandler) ByCategory(c echo.Context) error {
	grouped, err := h.skillService.ByCategory(c.Request().Context())
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "Skills by category fetched successfully", grouped)
}

// Update godoc
// @Summary Update a skill
// @Tags skills
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Skill ID"
// @Param request body service.SkillUpdate true "Fields to update"
// @Success 200 {object} Response
// @Failure 404 {object} errors.ErrorResponse
// @Router /skills/{id} [patch]
func (h *SkillHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req service.SkillUpdate
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	skill, err := h.skillService.Update(c.Request().Context(), id, req)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "Skill updated successfully", skill)
}

// Delete godoc
// @Summary Delete a skill
// @Tags skills
// @Produce json
// @Security BearerAuth
// @Param id path int true "Skill ID"
// @Success 200 {object} Response
// @Failure 404 {object} errors.ErrorResponse
// @Router /skills/{id} [delete]
func (h *SkillHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.skillService.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return respond(c, http.StatusOK, "Skill deleted successfully", nil)
}
