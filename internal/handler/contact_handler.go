package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"portfolio/internal/repository"
	"portfolio/internal/service"
)

// ContactHandler handles contact form and inbox endpoints.
type ContactHandler struct {
	contactService service.ContactService
}

// NewContactHandler creates a new contact handler.
func NewContactHandler(contactService service.ContactService) *ContactHandler {
	return &ContactHandler{contactService: contactService}
}

// Create godoc
// @Summary Submit a contact message
// @Tags contact
// @Accept json
// @Produce json
// @Param request body service.ContactInput true "Message data"
// @Success 201 {object} Response
// @Failure 400 {object} errors.ErrorResponse
// @Router /contact [post]
func (h *ContactHandler) Create(c echo.Context) error {
	var req service.ContactInput
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	message, err := h.contactService.Create(c.Request().Context(), req)
	if err != nil {
		return err
	}

	return respond(c, http.StatusCreated, "Message sent successfully", message)
}

// List godoc
// @Summary List contact messages
// @Tags contact
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Param isRead query bool false "Read state filter"
// @Success 200 {object} Response
// @Router /contact [get]
func (h *ContactHandler) List(c echo.Context) error {
	filter := repository.ContactFilter{
		Page:   queryInt(c, "page", 1),
		Limit:  queryInt(c, "limit", 10),
		IsRead: queryBool(c, "isRead"),
	}
	result, err := h.contactService.List(c.Request().Context(), filter)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "Messages fetched successfully", result)
}

// GetByID godoc
// @Summary Fetch a contact message
// @Tags contact
// @Produce json
// @Security BearerAuth
// @Param id path int true "Message ID"
// @Success 200 {object} Response
// @Failure 404 {object} errors.ErrorResponse
// @Router /contact/{id} [get]
func (h *ContactHandler) GetByID(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	message, err := h.contactService.GetByID(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "Message fetched successfully", message)
}

// MarkAsRead godoc
// @Summary Mark a contact message as read
// @Tags contact
// @Produce json
// @Security BearerAuth
// @Param id path int true "Message ID"
// @Success 200 {object} Response
// @Failure 404 {object} errors.ErrorResponse
// @Router /contact/{id}/read [patch]
func (h *ContactHandler) MarkAsRead(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	message, err := h.contactService.MarkAsRead(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "Message marked as read", message)
}

// Delete godoc
// @Summary Delete a contact message
// @Tags contact
// @Produce json
// @Security BearerAuth
// @Param id path int true "Message ID"
// @Success 200 {object} Response
// @Failure 404 {object} errors.ErrorResponse
// @Router /contact/{id} [delete]
func (h *ContactHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.contactService.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return respond(c, http.StatusOK, "Message deleted successfully", nil)
}

// Stats godoc
// @Summary Fetch contact inbox statistics
// @Tags contact
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response
// @Router /contact/stats [get]
func (h *ContactHandler) Stats(c echo.Context) error {
	stats, err := h.contactService.Stats(c.Request().Context())
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "Message stats fetched successfully", stats)
}
