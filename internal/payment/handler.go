package payment

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/verandalabs/veranda-stays/backend/internal/booking"
	apperrors "github.com/verandalabs/veranda-stays/backend/internal/errors"
	httpHandler "github.com/verandalabs/veranda-stays/backend/internal/http"
)

// Handler defines the HTTP handler for payment operations
type Handler struct {
	service  Service
	response httpHandler.ResponseHandler
}

// NewHandler creates a new payment handler
func NewHandler(service Service, response httpHandler.ResponseHandler) *Handler {
	return &Handler{
		service:  service,
		response: response,
	}
}

// RegisterRoutes registers the payment API routes
func (h *Handler) RegisterRoutes(router *gin.Engine) {
	methods := router.Group("/payment-methods")
	{
		methods.GET("", h.ListActiveMethods)
		methods.GET("/all", h.ListMethods)
		methods.POST("", h.CreateMethod)
		methods.PUT("/:id", h.UpdateMethod)
		methods.PUT("/:id/active", h.SetMethodActive)
	}

	payments := router.Group("/payments")
	{
		payments.POST("", h.SubmitPayment)
		payments.GET("", h.ListPayments)
		payments.GET("/:id", h.GetPayment)
		payments.POST("/:id/confirm", h.ConfirmPayment)
		payments.POST("/:id/reject", h.RejectPayment)
	}
}

// respondError maps service errors to envelope responses
func (h *Handler) respondError(c *gin.Context, err error, fallback string) {
	var validationErr *apperrors.ValidationError
	var conflictErr *apperrors.ConflictError
	switch {
	case errors.Is(err, ErrPaymentNotFound):
		h.response.NotFoundResponse(c, "Payment not found")
	case errors.Is(err, ErrMethodNotFound):
		h.response.NotFoundResponse(c, "Payment method not found")
	case errors.Is(err, booking.ErrBookingNotFound):
		h.response.NotFoundResponse(c, "Booking not found")
	case errors.As(err, &validationErr):
		h.response.ValidationErrorResponse(c, validationErr.Field, validationErr.Message)
	case errors.As(err, &conflictErr):
		h.response.ConflictResponse(c, conflictErr.Message)
	default:
		h.response.InternalErrorResponse(c, fallback, err)
	}
}

// @Summary List accepted payment methods
// @Description Retrieves the active payment methods guests can pay with
// @Tags payment
// @Produce json
// @Success 200 {object} http.Response{data=[]PaymentMethod} "Payment methods retrieved successfully"
// @Router /payment-methods [get]
func (h *Handler) ListActiveMethods(c *gin.Context) {
	methods, err := h.service.ListActiveMethods(c.Request.Context())
	if err != nil {
		h.response.InternalErrorResponse(c, "Failed to list payment methods", err)
		return
	}

	h.response.SuccessResponse(c, methods, "Payment methods retrieved successfully")
}

// @Summary List all payment methods
// @Description Retrieves every configured payment method, active or not
// @Tags payment
// @Produce json
// @Success 200 {object} http.Response{data=[]PaymentMethod} "Payment methods retrieved successfully"
// @Router /payment-methods/all [get]
func (h *Handler) ListMethods(c *gin.Context) {
	methods, err := h.service.ListMethods(c.Request.Context())
	if err != nil {
		h.response.InternalErrorResponse(c, "Failed to list payment methods", err)
		return
	}

	h.response.SuccessResponse(c, methods, "Payment methods retrieved successfully")
}

// @Summary Register a payment method
// @Description Creates a payment method guests can pay with
// @Tags payment
// @Accept json
// @Produce json
// @Param request body CreateMethodRequest true "Payment method details"
// @Success 200 {object} http.Response{data=PaymentMethod} "Payment method created successfully"
// @Failure 400 {object} http.Response{error=http.Error} "Invalid payment method details"
// @Router /payment-methods [post]
func (h *Handler) CreateMethod(c *gin.Context) {
	var req CreateMethodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.response.ValidationErrorResponse(c, "request", "Invalid request payload")
		return
	}

	method, err := h.service.CreateMethod(c.Request.Context(), req)
	if err != nil {
		h.respondError(c, err, "Failed to create payment method")
		return
	}

	h.response.SuccessResponse(c, method, "Payment method created successfully")
}

// @Summary Update a payment method
// @Description Updates the details of a payment method
// @Tags payment
// @Accept json
// @Produce json
// @Param id path string true "Payment method ID (UUID)"
// @Param request body UpdateMethodRequest true "Fields to update"
// @Success 200 {object} http.Response{data=PaymentMethod} "Payment method updated successfully"
// @Failure 404 {object} http.Response{error=http.Error} "Payment method not found"
// @Router /payment-methods/{id} [put]
func (h *Handler) UpdateMethod(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.response.ErrorResponse(c, http.StatusBadRequest, "invalid_method_id", "Invalid payment method ID format", err)
		return
	}

	var req UpdateMethodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.response.ValidationErrorResponse(c, "request", "Invalid request payload")
		return
	}

	method, err := h.service.UpdateMethod(c.Request.Context(), id, req)
	if err != nil {
		h.respondError(c, err, "Failed to update payment method")
		return
	}

	h.response.SuccessResponse(c, method, "Payment method updated successfully")
}

// @Summary Toggle a payment method
// @Description Activates or deactivates a payment method
// @Tags payment
// @Accept json
// @Produce json
// @Param id path string true "Payment method ID (UUID)"
// @Param request body ActiveRequest true "Desired active state"
// @Success 200 {object} http.Response "Payment method updated successfully"
// @Failure 404 {object} http.Response{error=http.Error} "Payment method not found"
// @Router /payment-methods/{id}/active [put]
func (h *Handler) SetMethodActive(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.response.ErrorResponse(c, http.StatusBadRequest, "invalid_method_id", "Invalid payment method ID format", err)
		return
	}

	var req ActiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.response.ValidationErrorResponse(c, "request", "Invalid request payload")
		return
	}

	if err := h.service.SetMethodActive(c.Request.Context(), id, req.Active); err != nil {
		h.respondError(c, err, "Failed to update payment method")
		return
	}

	h.response.SuccessResponse(c, nil, "Payment method updated successfully")
}

// @Summary Submit a payment
// @Description Records a guest's payment for a pending booking
// @Tags payment
// @Accept json
// @Produce json
// @Param request body SubmitPaymentRequest true "Payment details"
// @Success 200 {object} http.Response{data=Payment} "Payment submitted successfully"
// @Failure 400 {object} http.Response{error=http.Error} "Invalid payment details"
// @Failure 409 {object} http.Response{error=http.Error} "Booking is not awaiting payment"
// @Router /payments [post]
func (h *Handler) SubmitPayment(c *gin.Context) {
	var req SubmitPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.response.ValidationErrorResponse(c, "request", "Invalid request payload")
		return
	}

	payment, err := h.service.SubmitPayment(c.Request.Context(), req)
	if err != nil {
		h.respondError(c, err, "Failed to submit payment")
		return
	}

	h.response.SuccessResponse(c, payment, "Payment submitted successfully")
}

// @Summary Get a payment
// @Description Retrieves a payment by its ID
// @Tags payment
// @Produce json
// @Param id path string true "Payment ID (UUID)"
// @Success 200 {object} http.Response{data=Payment} "Payment retrieved successfully"
// @Failure 404 {object} http.Response{error=http.Error} "Payment not found"
// @Router /payments/{id} [get]
func (h *Handler) GetPayment(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.response.ErrorResponse(c, http.StatusBadRequest, "invalid_payment_id", "Invalid payment ID format", err)
		return
	}

	payment, err := h.service.GetPayment(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err, "Failed to retrieve payment")
		return
	}

	h.response.SuccessResponse(c, payment, "Payment retrieved successfully")
}

// @Summary List payments
// @Description Retrieves a paginated list of payments with optional status filter
// @Tags payment
// @Produce json
// @Param status query string false "Filter by status (PENDING, CONFIRMED, REJECTED)"
// @Param page query int false "Page number (default: 1)"
// @Param limit query int false "Payments per page (default: 20, max: 100)"
// @Success 200 {object} http.Response{data=PaginatedPayments} "Payments retrieved successfully"
// @Router /payments [get]
func (h *Handler) ListPayments(c *gin.Context) {
	var opts FilterOptions
	if err := c.ShouldBindQuery(&opts); err != nil {
		h.response.ValidationErrorResponse(c, "query", "Invalid query parameters")
		return
	}

	result, err := h.service.ListPayments(c.Request.Context(), opts)
	if err != nil {
		h.response.InternalErrorResponse(c, "Failed to list payments", err)
		return
	}

	h.response.SuccessResponse(c, result, "Payments retrieved successfully")
}

// @Summary Confirm a payment
// @Description Marks a payment as verified and confirms its booking
// @Tags payment
// @Produce json
// @Param id path string true "Payment ID (UUID)"
// @Success 200 {object} http.Response "Payment confirmed successfully"
// @Failure 409 {object} http.Response{error=http.Error} "Payment already decided"
// @Router /payments/{id}/confirm [post]
func (h *Handler) ConfirmPayment(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.response.ErrorResponse(c, http.StatusBadRequest, "invalid_payment_id", "Invalid payment ID format", err)
		return
	}

	if err := h.service.ConfirmPayment(c.Request.Context(), id); err != nil {
		h.respondError(c, err, "Failed to confirm payment")
		return
	}

	h.response.SuccessResponse(c, nil, "Payment confirmed successfully")
}

// @Summary Reject a payment
// @Description Marks a payment as rejected; the booking stays pending
// @Tags payment
// @Produce json
// @Param id path string true "Payment ID (UUID)"
// @Success 200 {object} http.Response "Payment rejected successfully"
// @Failure 409 {object} http.Response{error=http.Error} "Payment already decided"
// @Router /payments/{id}/reject [post]
func (h *Handler) RejectPayment(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.response.ErrorResponse(c, http.StatusBadRequest, "invalid_payment_id", "Invalid payment ID format", err)
		return
	}

	if err := h.service.RejectPayment(c.Request.Context(), id); err != nil {
		h.respondError(c, err, "Failed to reject payment")
		return
	}

	h.response.SuccessResponse(c, nil, "Payment rejected successfully")
}
