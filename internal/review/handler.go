package review

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	apperrors "github.com/verandalabs/veranda-stays/backend/internal/errors"
	httpHandler "github.com/verandalabs/veranda-stays/backend/internal/http"
)

// Handler defines the HTTP handler for review operations
type Handler struct {
	service  Service
	response httpHandler.ResponseHandler
}

// NewHandler creates a new review handler
func NewHandler(service Service, response httpHandler.ResponseHandler) *Handler {
	return &Handler{
		service:  service,
		response: response,
	}
}

// RegisterRoutes registers the review API routes
func (h *Handler) RegisterRoutes(router *gin.Engine) {
	router.POST("/properties/:id/reviews", h.CreateReview)
	router.GET("/properties/:id/reviews", h.ListPropertyReviews)
	router.GET("/properties/:id/rating", h.GetPropertyRating)

	reviews := router.Group("/reviews")
	{
		reviews.PUT("/:id/hide", h.HideReview)
		reviews.DELETE("/:id", h.DeleteReview)
	}
}

// respondError maps service errors to envelope responses
func (h *Handler) respondError(c *gin.Context, err error, fallback string) {
	var validationErr *apperrors.ValidationError
	var conflictErr *apperrors.ConflictError
	switch {
	case errors.Is(err, ErrReviewNotFound):
		h.response.NotFoundResponse(c, "Review not found")
	case errors.As(err, &validationErr):
		h.response.ValidationErrorResponse(c, validationErr.Field, validationErr.Message)
	case errors.As(err, &conflictErr):
		h.response.ConflictResponse(c, conflictErr.Message)
	default:
		h.response.InternalErrorResponse(c, fallback, err)
	}
}

// @Summary Publish a review
// @Description Creates a review for a listing the guest has completed a stay at
// @Tags review
// @Accept json
// @Produce json
// @Param id path string true "Property ID (UUID)"
// @Param request body CreateReviewRequest true "Review details"
// @Success 200 {object} http.Response{data=Review} "Review published successfully"
// @Failure 400 {object} http.Response{error=http.Error} "Invalid review details"
// @Failure 409 {object} http.Response{error=http.Error} "No completed stay at the listing"
// @Router /properties/{id}/reviews [post]
func (h *Handler) CreateReview(c *gin.Context) {
	propertyID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.response.ErrorResponse(c, http.StatusBadRequest, "invalid_property_id", "Invalid property ID format", err)
		return
	}

	var req CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.response.ValidationErrorResponse(c, "request", "Invalid request payload")
		return
	}

	review, err := h.service.CreateReview(c.Request.Context(), propertyID, req)
	if err != nil {
		h.respondError(c, err, "Failed to publish review")
		return
	}

	h.response.SuccessResponse(c, review, "Review published successfully")
}

// @Summary List a listing's reviews
// @Description Retrieves a paginated list of a listing's published reviews
// @Tags review
// @Produce json
// @Param id path string true "Property ID (UUID)"
// @Param page query int false "Page number (default: 1)"
// @Param limit query int false "Reviews per page (default: 20, max: 100)"
// @Success 200 {object} http.Response{data=PaginatedReviews} "Reviews retrieved successfully"
// @Router /properties/{id}/reviews [get]
func (h *Handler) ListPropertyReviews(c *gin.Context) {
	propertyID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.response.ErrorResponse(c, http.StatusBadRequest, "invalid_property_id", "Invalid property ID format", err)
		return
	}

	var opts FilterOptions
	if err := c.ShouldBindQuery(&opts); err != nil {
		h.response.ValidationErrorResponse(c, "query", "Invalid query parameters")
		return
	}

	result, err := h.service.ListPropertyReviews(c.Request.Context(), propertyID, opts)
	if err != nil {
		h.response.InternalErrorResponse(c, "Failed to list reviews", err)
		return
	}

	h.response.SuccessResponse(c, result, "Reviews retrieved successfully")
}

// @Summary Listing rating
// @Description Retrieves the average rating and review count of a listing
// @Tags review
// @Produce json
// @Param id path string true "Property ID (UUID)"
// @Success 200 {object} http.Response{data=PropertyRating} "Rating retrieved successfully"
// @Router /properties/{id}/rating [get]
func (h *Handler) GetPropertyRating(c *gin.Context) {
	propertyID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.response.ErrorResponse(c, http.StatusBadRequest, "invalid_property_id", "Invalid property ID format", err)
		return
	}

	rating, err := h.service.GetPropertyRating(c.Request.Context(), propertyID)
	if err != nil {
		h.response.InternalErrorResponse(c, "Failed to retrieve rating", err)
		return
	}

	h.response.SuccessResponse(c, rating, "Rating retrieved successfully")
}

// @Summary Hide a review
// @Description Withdraws a review from the listing's public page
// @Tags review
// @Produce json
// @Param id path string true "Review ID (UUID)"
// @Success 200 {object} http.Response "Review hidden successfully"
// @Failure 404 {object} http.Response{error=http.Error} "Review not found"
// @Router /reviews/{id}/hide [put]
func (h *Handler) HideReview(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.response.ErrorResponse(c, http.StatusBadRequest, "invalid_review_id", "Invalid review ID format", err)
		return
	}

	if err := h.service.HideReview(c.Request.Context(), id); err != nil {
		h.respondError(c, err, "Failed to hide review")
		return
	}

	h.response.SuccessResponse(c, nil, "Review hidden successfully")
}

// @Summary Delete a review
// @Description Permanently removes a review
// @Tags review
// @Produce json
// @Param id path string true "Review ID (UUID)"
// @Success 200 {object} http.Response "Review deleted successfully"
// @Failure 404 {object} http.Response{error=http.Error} "Review not found"
// @Router /reviews/{id} [delete]
func (h *Handler) DeleteReview(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.response.ErrorResponse(c, http.StatusBadRequest, "invalid_review_id", "Invalid review ID format", err)
		return
	}

	if err := h.service.DeleteReview(c.Request.Context(), id); err != nil {
		h.respondError(c, err, "Failed to delete review")
		return
	}

	h.response.SuccessResponse(c, nil, "Review deleted successfully")
}
