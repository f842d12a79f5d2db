package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"portfolio/internal/auth"
	"portfolio/internal/repository"
	"portfolio/internal/service"
)

// BlogHandler handles blog endpoints.
type BlogHandler struct {
	blogService service.BlogService
}

// NewBlogHandler creates a new blog handler.
func NewBlogHandler(blogService service.BlogService) *BlogHandler {
	return &BlogHandler{blogService: blogService}
}

func blogFilterFrom(c echo.Context) repository.BlogFilter {
	filter := repository.BlogFilter{
		Page:        queryInt(c, "page", 1),
		Limit:       queryInt(c, "limit", 10),
		Search:      c.QueryParam("search"),
		Category:    c.QueryParam("category"),
		IsPublished: queryBool(c, "isPublished"),
		IsFeatured:  queryBool(c, "isFeatured"),
		SortBy:      c.QueryParam("sortBy"),
		SortOrder:   c.QueryParam("sortOrder"),
	}
	if tags := c.QueryParam("tags"); tags != "" {
		filter.Tags = strings.Split(tags, ",")
	}
	return filter
}

// Create godoc
// @Summary Create a blog post
// @Tags blogs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body service.BlogInput true "Blog data"
// @Success 201 {object} Response
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /blogs [post]
func (h *BlogHandler) Create(c echo.Context) error {
	var req service.BlogInput
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	identity := auth.IdentityFrom(c)
	if identity == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	blog, err := h.blogService.Create(c.Request().Context(), identity.ID, req)
	if err != nil {
		return err
	}

	return respond(c, http.StatusCreated, "Blog created successfully", blog)
}

// List godoc
// @Summary List blog posts
// @Tags blogs
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Param search query string false "Search in title, excerpt and content"
// @Param category query string false "Category filter"
// @Param tags query string false "Comma separated tags"
// @Param isPublished query bool false "Published filter"
// @Param isFeatured query bool false "Featured filter"
// @Param sortBy query string false "createdAt, views or title"
// @Param sortOrder query string false "asc or desc"
// @Success 200 {object} Response
// @Router /blogs [get]
func (h *BlogHandler) List(c echo.Context) error {
	result, err := h.blogService.List(c.Request().Context(), blogFilterFrom(c))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "Blogs fetched successfully", result)
}

// GetBySlug godoc
// @Summary Fetch a blog post by slug
// @Tags blogs
// @Produce json
// @Param slug path string true "Blog slug"
// @Success 200 {object} Response
// @Failure 404 {object} errors.ErrorResponse
// @Router /blogs/slug/{slug} [get]
func (h *BlogHandler) GetBySlug(c echo.Context) error {
	blog, err := h.blogService.GetBySlug(c.Request().Context(), c.Param("slug"), true)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "Blog fetched successfully", blog)
}

// GetByID godoc
// @Summary Fetch a blog post by id
// @Tags blogs
// @Produce json
// @Security BearerAuth
// @Param id path int true "Blog ID"
// @Success 200 {object} Response
// @Failure 404 {object} errors.ErrorResponse
// @Router /blogs/{id} [get]
func (h *BlogHandler) GetByID(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	blog, err := h.blogService.GetByID(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "Blog fetched successfully", blog)
}

// Update godoc
// @Summary Update a blog post
// @Tags blogs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Blog ID"
// @Param request body service.BlogUpdate true "Fields to update"
// @Success 200 {object} Response
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /blogs/{id} [patch]
func (h *BlogHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req service.BlogUpdate
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	blog, err := h.blogService.Update(c.Request().Context(), id, req)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "Blog updated successfully", blog)
}

// Delete godoc
// @Summary Delete a blog post
// @Tags blogs
// @Produce json
// @Security BearerAuth
// @Param id path int true "Blog ID"
// @Success 200 {object} Response
// @Failure 404 {object} errors.ErrorResponse
// @Router /blogs/{id} [delete]
func (h *BlogHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.blogService.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return respond(c, http.StatusOK, "Blog deleted successfully", nil)
}

// Featured godoc
// @Summary List featured published blog posts
// @Tags blogs
// @Produce json
// @Param limit query int false "Maximum posts to return"
// @Success 200 {object} Response
// @Router /blogs/featured [get]
func (h *BlogHandler) Featured(c echo.Context) error {
	blogs, err := h.blogService.Featured(c.Request().Context(), queryInt(c, "limit", 5))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "Featured blogs fetched successfully", blogs)
}

// Categories godoc
// @Summary List published blog categories with counts
// @Tags blogs
// @Produce json
// @Success 200 {object} Response
// @Router /blogs/categories [get]
func (h *BlogHandler) Categories(c echo.Context) error {
	categories, err := h.blogService.Categories(c.Request().Context())
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "Categories fetched successfully", categories)
}

// Tags godoc
// @Summary List published blog tags with counts
// @Tags blogs
// @Produce json
// @Success 200 {object} Response
// @Router /blogs/tags [get]
func (h *BlogHandler) Tags(c echo.Context) error {
	tags, err := h.blogService.Tags(c.Request().Context())
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "Tags fetched successfully", tags)
}

// Stats godoc
// @Summary Fetch blog statistics
// @Tags blogs
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response
// @Router /blogs/stats [get]
func (h *BlogHandler) Stats(c echo.Context) error {
	stats, err := h.blogService.Stats(c.Request().Context())
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "Blog stats fetched successfully", stats)
}
