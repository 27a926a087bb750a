package contact

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	apperrors "github.com/verandalabs/veranda-stays/backend/internal/errors"
	httpHandler "github.com/verandalabs/veranda-stays/backend/internal/http"
)

// Handler defines the HTTP handler for contact operations
type Handler struct {
	service  Service
	response httpHandler.ResponseHandler
}

// NewHandler creates a new contact handler
func NewHandler(service Service, response httpHandler.ResponseHandler) *Handler {
	return &Handler{
		service:  service,
		response: response,
	}
}

// RegisterRoutes registers the contact API routes
func (h *Handler) RegisterRoutes(router *gin.Engine) {
	router.POST("/contact", h.SubmitMessage)

	messages := router.Group("/contact/messages")
	{
		messages.GET("", h.ListMessages)
		messages.GET("/:id", h.GetMessage)
		messages.PUT("/:id/status", h.MarkMessageStatus)
		messages.DELETE("/:id", h.DeleteMessage)
	}
}

// respondError maps service errors to envelope responses
func (h *Handler) respondError(c *gin.Context, err error, fallback string) {
	var validationErr *apperrors.ValidationError
	switch {
	case errors.Is(err, ErrMessageNotFound):
		h.response.NotFoundResponse(c, "Contact message not found")
	case errors.Is(err, ErrInvalidStatus):
		h.response.ValidationErrorResponse(c, "status", "Status must be one of NEW, READ, REPLIED")
	case errors.As(err, &validationErr):
		h.response.ValidationErrorResponse(c, validationErr.Field, validationErr.Message)
	default:
		h.response.InternalErrorResponse(c, fallback, err)
	}
}

// @Summary Submit a contact message
// @Description Records an enquiry sent through the public contact form
// @Tags contact
// @Accept json
// @Produce json
// @Param request body SubmitMessageRequest true "Message details"
// @Success 200 {object} http.Response{data=ContactMessage} "Message submitted successfully"
// @Failure 400 {object} http.Response{error=http.Error} "Invalid message details"
// @Router /contact [post]
func (h *Handler) SubmitMessage(c *gin.Context) {
	var req SubmitMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.response.ValidationErrorResponse(c, "request", "Invalid request payload")
		return
	}

	message, err := h.service.SubmitMessage(c.Request.Context(), req)
	if err != nil {
		h.respondError(c, err, "Failed to submit message")
		return
	}

	h.response.SuccessResponse(c, message, "Message submitted successfully")
}

// @Summary List contact messages
// @Description Retrieves a paginated list of contact messages with optional status filter
// @Tags contact
// @Produce json
// @Param status query string false "Filter by status (NEW, READ, REPLIED)"
// @Param page query int false "Page number (default: 1)"
// @Param limit query int false "Messages per page (default: 20, max: 100)"
// @Success 200 {object} http.Response{data=PaginatedMessages} "Messages retrieved successfully"
// @Router /contact/messages [get]
func (h *Handler) ListMessages(c *gin.Context) {
	var opts FilterOptions
	if err := c.ShouldBindQuery(&opts); err != nil {
		h.response.ValidationErrorResponse(c, "query", "Invalid query parameters")
		return
	}

	result, err := h.service.ListMessages(c.Request.Context(), opts)
	if err != nil {
		h.response.InternalErrorResponse(c, "Failed to list messages", err)
		return
	}

	h.response.SuccessResponse(c, result, "Messages retrieved successfully")
}

// @Summary Get a contact message
// @Description Retrieves a contact message by its ID
// @Tags contact
// @Produce json
// @Param id path string true "Message ID (UUID)"
// @Success 200 {object} http.Response{data=ContactMessage} "Message retrieved successfully"
// @Failure 404 {object} http.Response{error=http.Error} "Message not found"
// @Router /contact/messages/{id} [get]
func (h *Handler) GetMessage(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.response.ErrorResponse(c, http.StatusBadRequest, "invalid_message_id", "Invalid message ID format", err)
		return
	}

	message, err := h.service.GetMessage(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err, "Failed to retrieve message")
		return
	}

	h.response.SuccessResponse(c, message, "Message retrieved successfully")
}

// @Summary Mark a contact message
// @Description Updates the handling status of a contact message
// @Tags contact
// @Accept json
// @Produce json
// @Param id path string true "Message ID (UUID)"
// @Param request body StatusRequest true "New status"
// @Success 200 {object} http.Response "Message marked successfully"
// @Failure 400 {object} http.Response{error=http.Error} "Unknown status"
// @Failure 404 {object} http.Response{error=http.Error} "Message not found"
// @Router /contact/messages/{id}/status [put]
func (h *Handler) MarkMessageStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.response.ErrorResponse(c, http.StatusBadRequest, "invalid_message_id", "Invalid message ID format", err)
		return
	}

	var req StatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.response.ValidationErrorResponse(c, "request", "Invalid request payload")
		return
	}

	if err := h.service.MarkMessageStatus(c.Request.Context(), id, req.Status); err != nil {
		h.respondError(c, err, "Failed to mark message")
		return
	}

	h.response.SuccessResponse(c, nil, "Message marked successfully")
}

// @Summary Delete a contact message
// @Description Permanently removes a contact message
// @Tags contact
// @Produce json
// @Param id path string true "Message ID (UUID)"
// @Success 200 {object} http.Response "Message deleted successfully"
// @Failure 404 {object} http.Response{error=http.Error} "Message not found"
// @Router /contact/messages/{id} [delete]
func (h *Handler) DeleteMessage(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.response.ErrorResponse(c, http.StatusBadRequest, "invalid_message_id", "Invalid message ID format", err)
		return
	}

	if err := h.service.DeleteMessage(c.Request.Context(), id); err != nil {
		h.respondError(c, err, "Failed to delete message")
		return
	}

	h.response.SuccessResponse(c, nil, "Message deleted successfully")
}
