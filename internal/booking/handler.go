package booking

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	apperrors "github.com/verandalabs/veranda-stays/backend/internal/errors"
	httpHandler "github.com/verandalabs/veranda-stays/backend/internal/http"
	"github.com/verandalabs/veranda-stays/backend/internal/property"
)

// Handler defines the HTTP handler for booking operations
type Handler struct {
	service  Service
	response httpHandler.ResponseHandler
}

// NewHandler creates a new booking handler
func NewHandler(service Service, response httpHandler.ResponseHandler) *Handler {
	return &Handler{
		service:  service,
		response: response,
	}
}

// RegisterRoutes registers the booking API routes
func (h *Handler) RegisterRoutes(router *gin.Engine) {
	bookings := router.Group("/bookings")
	{
		bookings.POST("", h.RequestBooking)
		bookings.GET("", h.ListBookings)
		bookings.GET("/stats", h.GetStats)
		bookings.GET("/:id", h.GetBooking)
		bookings.POST("/:id/confirm", h.ConfirmBooking)
		bookings.POST("/:id/cancel", h.CancelBooking)
		bookings.POST("/:id/complete", h.CompleteBooking)
	}

	router.GET("/guests/:id/bookings", h.ListGuestBookings)
	router.GET("/properties/:id/availability", h.PropertyAvailability)
}

// respondError maps service errors to envelope responses
func (h *Handler) respondError(c *gin.Context, err error, fallback string) {
	var validationErr *apperrors.ValidationError
	var conflictErr *apperrors.ConflictError
	switch {
	case errors.Is(err, ErrBookingNotFound):
		h.response.NotFoundResponse(c, "Booking not found")
	case errors.Is(err, property.ErrPropertyNotFound):
		h.response.NotFoundResponse(c, "Property not found")
	case errors.As(err, &validationErr):
		h.response.ValidationErrorResponse(c, validationErr.Field, validationErr.Message)
	case errors.As(err, &conflictErr):
		h.response.ConflictResponse(c, conflictErr.Message)
	default:
		h.response.InternalErrorResponse(c, fallback, err)
	}
}

// @Summary Request a stay
// @Description Creates a pending booking after validating dates, capacity and calendar overlap
// @Tags booking
// @Accept json
// @Produce json
// @Param request body CreateBookingRequest true "Booking details"
// @Success 200 {object} http.Response{data=Booking} "Booking requested successfully"
// @Failure 400 {object} http.Response{error=http.Error} "Invalid booking details"
// @Failure 409 {object} http.Response{error=http.Error} "Dates already booked"
// @Router /bookings [post]
func (h *Handler) RequestBooking(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.response.ValidationErrorResponse(c, "request", "Invalid request payload")
		return
	}

	booking, err := h.service.RequestBooking(c.Request.Context(), &req)
	if err != nil {
		h.respondError(c, err, "Failed to request booking")
		return
	}

	h.response.SuccessResponse(c, booking, "Booking requested successfully")
}

// @Summary Get a booking
// @Description Retrieves a booking by its ID
// @Tags booking
// @Produce json
// @Param id path string true "Booking ID (UUID)"
// @Success 200 {object} http.Response{data=Booking} "Booking retrieved successfully"
// @Failure 404 {object} http.Response{error=http.Error} "Booking not found"
// @Router /bookings/{id} [get]
func (h *Handler) GetBooking(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.response.ErrorResponse(c, http.StatusBadRequest, "invalid_booking_id", "Invalid booking ID format", err)
		return
	}

	booking, err := h.service.GetBooking(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err, "Failed to retrieve booking")
		return
	}

	h.response.SuccessResponse(c, booking, "Booking retrieved successfully")
}

// @Summary Confirm a booking
// @Description Moves a pending booking to confirmed
// @Tags booking
// @Produce json
// @Param id path string true "Booking ID (UUID)"
// @Success 200 {object} http.Response "Booking confirmed successfully"
// @Failure 409 {object} http.Response{error=http.Error} "Transition not allowed"
// @Router /bookings/{id}/confirm [post]
func (h *Handler) ConfirmBooking(c *gin.Context) {
	h.applyTransition(c, h.service.ConfirmBooking, "Booking confirmed successfully", "Failed to confirm booking")
}

// @Summary Cancel a booking
// @Description Cancels a pending or confirmed booking
// @Tags booking
// @Produce json
// @Param id path string true "Booking ID (UUID)"
// @Success 200 {object} http.Response "Booking cancelled successfully"
// @Failure 409 {object} http.Response{error=http.Error} "Transition not allowed"
// @Router /bookings/{id}/cancel [post]
func (h *Handler) CancelBooking(c *gin.Context) {
	h.applyTransition(c, h.service.CancelBooking, "Booking cancelled successfully", "Failed to cancel booking")
}

// @Summary Complete a booking
// @Description Marks a confirmed booking as completed
// @Tags booking
// @Produce json
// @Param id path string true "Booking ID (UUID)"
// @Success 200 {object} http.Response "Booking completed successfully"
// @Failure 409 {object} http.Response{error=http.Error} "Transition not allowed"
// @Router /bookings/{id}/complete [post]
func (h *Handler) CompleteBooking(c *gin.Context) {
	h.applyTransition(c, h.service.CompleteBooking, "Booking completed successfully", "Failed to complete booking")
}

func (h *Handler) applyTransition(c *gin.Context, transition func(ctx context.Context, id uuid.UUID) error, success, fallback string) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.response.ErrorResponse(c, http.StatusBadRequest, "invalid_booking_id", "Invalid booking ID format", err)
		return
	}

	if err := transition(c.Request.Context(), id); err != nil {
		h.respondError(c, err, fallback)
		return
	}

	h.response.SuccessResponse(c, nil, success)
}

// @Summary List bookings
// @Description Retrieves a paginated list of bookings with optional filters
// @Tags booking
// @Produce json
// @Param status query string false "Filter by status (PENDING, CONFIRMED, COMPLETED, CANCELLED)"
// @Param propertyId query string false "Filter by property ID"
// @Param guestId query string false "Filter by guest ID"
// @Param page query int false "Page number (default: 1)"
// @Param limit query int false "Bookings per page (default: 20, max: 100)"
// @Success 200 {object} http.Response{data=PaginatedBookings} "Bookings retrieved successfully"
// @Router /bookings [get]
func (h *Handler) ListBookings(c *gin.Context) {
	var opts FilterOptions
	if err := c.ShouldBindQuery(&opts); err != nil {
		h.response.ValidationErrorResponse(c, "query", "Invalid query parameters")
		return
	}

	result, err := h.service.ListBookings(c.Request.Context(), opts)
	if err != nil {
		h.response.InternalErrorResponse(c, "Failed to list bookings", err)
		return
	}

	h.response.SuccessResponse(c, result, "Bookings retrieved successfully")
}

// @Summary List a guest's bookings
// @Description Retrieves a paginated list of one guest's bookings
// @Tags booking
// @Produce json
// @Param id path string true "Guest ID (UUID)"
// @Param status query string false "Filter by status"
// @Param page query int false "Page number (default: 1)"
// @Param limit query int false "Bookings per page (default: 20, max: 100)"
// @Success 200 {object} http.Response{data=PaginatedBookings} "Bookings retrieved successfully"
// @Router /guests/{id}/bookings [get]
func (h *Handler) ListGuestBookings(c *gin.Context) {
	guestID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.response.ErrorResponse(c, http.StatusBadRequest, "invalid_guest_id", "Invalid guest ID format", err)
		return
	}

	var opts FilterOptions
	if err := c.ShouldBindQuery(&opts); err != nil {
		h.response.ValidationErrorResponse(c, "query", "Invalid query parameters")
		return
	}

	result, err := h.service.ListGuestBookings(c.Request.Context(), guestID, opts)
	if err != nil {
		h.response.InternalErrorResponse(c, "Failed to list guest bookings", err)
		return
	}

	h.response.SuccessResponse(c, result, "Bookings retrieved successfully")
}

// @Summary Listing availability
// @Description Retrieves the occupied date spans of a listing inside a window
// @Tags booking
// @Produce json
// @Param id path string true "Property ID (UUID)"
// @Param from query string false "Window start (YYYY-MM-DD, default: today)"
// @Param to query string false "Window end (YYYY-MM-DD, default: three months after start)"
// @Success 200 {object} http.Response{data=Availability} "Availability retrieved successfully"
// @Failure 404 {object} http.Response{error=http.Error} "Property not found"
// @Router /properties/{id}/availability [get]
func (h *Handler) PropertyAvailability(c *gin.Context) {
	propertyID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.response.ErrorResponse(c, http.StatusBadRequest, "invalid_property_id", "Invalid property ID format", err)
		return
	}

	from := time.Now().UTC()
	if raw := c.Query("from"); raw != "" {
		from, err = time.Parse(dateLayout, raw)
		if err != nil {
			h.response.ValidationErrorResponse(c, "from", "Window start must use the YYYY-MM-DD format")
			return
		}
	}

	to := from.AddDate(0, 3, 0)
	if raw := c.Query("to"); raw != "" {
		to, err = time.Parse(dateLayout, raw)
		if err != nil {
			h.response.ValidationErrorResponse(c, "to", "Window end must use the YYYY-MM-DD format")
			return
		}
	}

	availability, err := h.service.PropertyAvailability(c.Request.Context(), propertyID, from, to)
	if err != nil {
		h.respondError(c, err, "Failed to retrieve availability")
		return
	}

	h.response.SuccessResponse(c, availability, "Availability retrieved successfully")
}

// @Summary Platform booking statistics
// @Description Retrieves booking counts per status and confirmed revenue
// @Tags booking
// @Produce json
// @Success 200 {object} http.Response{data=BookingStats} "Statistics retrieved successfully"
// @Router /bookings/stats [get]
func (h *Handler) GetStats(c *gin.Context) {
	stats, err := h.service.GetStats(c.Request.Context())
	if err != nil {
		h.response.InternalErrorResponse(c, "Failed to retrieve booking statistics", err)
		return
	}

	h.response.SuccessResponse(c, stats, "Statistics retrieved successfully")
}
