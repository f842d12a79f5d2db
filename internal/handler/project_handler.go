package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"portfolio/internal/model"
	"portfolio/internal/repository"
	"portfolio/internal/service"
)

// ProjectHandler handles project endpoints.
type ProjectHandler struct {
	projectService service.ProjectService
}

// NewProjectHandler creates a new project handler.
func NewProjectHandler(projectService service.ProjectService) *ProjectHandler {
	return &ProjectHandler{projectService: projectService}
}

func projectFilterFrom(c echo.Context) repository.ProjectFilter {
	filter := repository.ProjectFilter{
		Page:       queryInt(c, "page", 1),
		Limit:      queryInt(c, "limit", 10),
		Search:     c.QueryParam("search"),
		Category:   c.QueryParam("category"),
		Status:     model.ProjectStatus(c.QueryParam("status")),
		IsFeatured: queryBool(c, "isFeatured"),
		SortBy:     c.QueryParam("sortBy"),
		SortOrder:  c.QueryParam("sortOrder"),
	}
	if technologies := c.QueryParam("technologies"); technologies != "" {
		filter.Technologies = strings.Split(technologies, ",")
	}
	return filter
}

// Create godoc
// @Summary Create a project
// @Tags projects
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body service.ProjectInput true "Project data"
// @Success 201 {object} Response
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /projects [post]
func (h *ProjectHandler) Create(c echo.Context) error {
	var req service.ProjectInput
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	project, err := h.projectService.Create(c.Request().Context(), req)
	if err != nil {
		return err
	}

	return respond(c, http.StatusCreated, "Project created successfully", project)
}

// List godoc
// @Summary List projects
// @Tags projects
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Param search query string false "Search in title and description"
// @Param category query string false "Category filter"
// @Param technologies query string false "Comma separated technologies"
// @Param status query string false "COMPLETED, IN_PROGRESS or PLANNED"
// @Param isFeatured query bool false "Featured filter"
// @Param sortBy query string false "createdAt, order or title"
// @Param sortOrder query string false "asc or desc"
// @Success 200 {object} Response
// @Router /projects [get]
func (h *ProjectHandler) List(c echo.Context) error {
	result, err := h.projectService.List(c.Request().Context(), projectFilterFrom(c))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "Projects fetched successfully", result)
}

// GetBySlug godoc
// @Summary Fetch a project by slug
// @Tags projects
// @Produce json
// @Param slug path string true "Project slug"
// @Success 200 {object} Response
// @Failure 404 {object} errors.ErrorResponse
// @Router /projects/slug/{slug} [get]
func (h *ProjectHandler) GetBySlug(c echo.Context) error {
	project, err := h.projectService.GetBySlug(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "Project fetched successfully", project)
}

// GetByID godoc
// @Summary Fetch a project by id
// @Tags projects
// @Produce json
// @Security BearerAuth
// @Param id path int true "Project ID"
// @Success 200 {object} Response
// @Failure 404 {object} errors.ErrorResponse
// @Router /projects/{id} [get]
func (h *ProjectHandler) GetByID(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	project, err := h.projectService.GetByID(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "Project fetched successfully", project)
}

// Update godoc
// @Summary Update a project
// @Tags projects
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Project ID"
// @Param request body service.ProjectUpdate true "Fields to update"
// @Success 200 {object} Response
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /projects/{id} [patch]
func (h *ProjectHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req service.ProjectUpdate
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	project, err := h.projectService.Update(c.Request().Context(), id, req)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "Project updated successfully", project)
}

// Delete godoc
// @Summary Delete a project
// @Tags projects
// @Produce json
// @Security BearerAuth
// @Param id path int true "Project ID"
// @Success 200 {object} Response
// @Failure 404 {object} errors.ErrorResponse
// @Router /projects/{id} [delete]
func (h *ProjectHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.projectService.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return respond(c, http.StatusOK, "Project deleted successfully", nil)
}

// Featured godoc
// @Summary List featured projects
// @Tags projects
// @Produce json
// @Param limit query int false "Maximum projects to return"
// @Success 200 {object} Response
// @Router /projects/featured [get]
func (h *ProjectHandler) Featured(c echo.Context) error {
	projects, err := h.projectService.Featured(c.Request().Context(), queryInt(c, "limit", 6))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "Featured projects fetched successfully", projects)
}

// Categories godoc
// @Summary List project categories with counts
// @Tags projects
// @Produce json
// @Success 200 {object} Response
// @Router /projects/categories [get]
func (h *ProjectHandler) Categories(c echo.Context) error {
	categories, err := h.projectService.Categories(c.Request().Context())
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "Categories fetched successfully", categories)
}

// Technologies godoc
// @Summary List project technologies with counts
// @Tags projects
// @Produce json
// @Success 200 {object} Response
// @Router /projects/technologies [get]
func (h *ProjectHandler) Technologies(c echo.Context) error {
	technologies, err := h.projectService.Technologies(c.Request().Context())
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "Technologies fetched successfully", technologies)
}

// Stats godoc
// @Summary Fetch project statistics
// @Tags projects
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response
// @Router /projects/stats [get]
func (h *ProjectHandler) Stats(c echo.Context) error {
	stats, err := h.projectService.Stats(c.Request().Context())
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "Project stats fetched successfully", stats)
}
