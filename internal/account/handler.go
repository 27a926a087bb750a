package account

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	httpHandler "github.com/verandalabs/veranda-stays/backend/internal/http"
)

// Handler defines the HTTP handler for account operations
type Handler struct {
	service  Service
	response httpHandler.ResponseHandler
}

// NewHandler creates a new account handler
func NewHandler(service Service, response httpHandler.ResponseHandler) *Handler {
	return &Handler{
		service:  service,
		response: response,
	}
}

// RegisterRoutes registers the account API routes
func (h *Handler) RegisterRoutes(router *gin.Engine) {
	guests := router.Group("/guests")
	{
		guests.POST("", h.CreateGuest)
		guests.GET("", h.ListGuests)
		guests.GET("/:id", h.GetGuest)
		guests.PUT("/:id", h.UpdateGuest)
		guests.PUT("/:id/status", h.SetGuestStatus)
	}

	hosts := router.Group("/hosts")
	{
		hosts.POST("", h.CreateHost)
		hosts.GET("", h.ListHosts)
		hosts.GET("/:id", h.GetHost)
		hosts.PUT("/:id", h.UpdateHost)
		hosts.POST("/:id/verify", h.VerifyHost)
		hosts.PUT("/:id/status", h.SetHostStatus)
	}

	router.GET("/accounts/stats", h.GetStats)
}

// @Summary Create a guest account
// @Description Registers a new guest account with a unique email
// @Tags account
// @Accept json
// @Produce json
// @Param request body CreateGuestRequest true "Guest details"
// @Success 200 {object} http.Response{data=Guest} "Guest created successfully"
// @Failure 400 {object} http.Response{error=http.Error} "Invalid request payload"
// @Failure 409 {object} http.Response{error=http.Error} "Email already registered"
// @Router /guests [post]
func (h *Handler) CreateGuest(c *gin.Context) {
	var req CreateGuestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.response.ValidationErrorResponse(c, "request", "Invalid request payload")
		return
	}

	guest, err := h.service.CreateGuest(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, ErrEmailTaken) {
			h.response.ConflictResponse(c, "Email already registered")
			return
		}
		h.response.InternalErrorResponse(c, "Failed to create guest", err)
		return
	}

	h.response.SuccessResponse(c, guest, "Guest created successfully")
}

// @Summary Get a guest account
// @Description Retrieves a guest account by its ID
// @Tags account
// @Produce json
// @Param id path string true "Guest ID (UUID)"
// @Success 200 {object} http.Response{data=Guest} "Guest retrieved successfully"
// @Failure 400 {object} http.Response{error=http.Error} "Invalid guest ID format"
// @Failure 404 {object} http.Response{error=http.Error} "Guest not found"
// @Router /guests/{id} [get]
func (h *Handler) GetGuest(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.response.ErrorResponse(c, http.StatusBadRequest, "invalid_guest_id", "Invalid guest ID format", err)
		return
	}

	guest, err := h.service.GetGuest(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrGuestNotFound) {
			h.response.NotFoundResponse(c, "Guest not found")
			return
		}
		h.response.InternalErrorResponse(c, "Failed to retrieve guest", err)
		return
	}

	h.response.SuccessResponse(c, guest, "Guest retrieved successfully")
}

// @Summary Update a guest account
// @Description Updates the mutable fields of a guest account
// @Tags account
// @Accept json
// @Produce json
// @Param id path string true "Guest ID (UUID)"
// @Param request body UpdateGuestRequest true "Fields to update"
// @Success 200 {object} http.Response{data=Guest} "Guest updated successfully"
// @Failure 404 {object} http.Response{error=http.Error} "Guest not found"
// @Router /guests/{id} [put]
func (h *Handler) UpdateGuest(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.response.ErrorResponse(c, http.StatusBadRequest, "invalid_guest_id", "Invalid guest ID format", err)
		return
	}

	var req UpdateGuestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.response.ValidationErrorResponse(c, "request", "Invalid request payload")
		return
	}

	guest, err := h.service.UpdateGuest(c.Request.Context(), id, &req)
	if err != nil {
		if errors.Is(err, ErrGuestNotFound) {
			h.response.NotFoundResponse(c, "Guest not found")
			return
		}
		h.response.InternalErrorResponse(c, "Failed to update guest", err)
		return
	}

	h.response.SuccessResponse(c, guest, "Guest updated successfully")
}

// @Summary List guest accounts
// @Description Retrieves a paginated list of guest accounts
// @Tags account
// @Produce json
// @Param status query string false "Filter by status (ACTIVE, SUSPENDED)"
// @Param page query int false "Page number (default: 1)"
// @Param limit query int false "Accounts per page (default: 20, max: 100)"
// @Success 200 {object} http.Response{data=PaginatedGuests} "Guests retrieved successfully"
// @Router /guests [get]
func (h *Handler) ListGuests(c *gin.Context) {
	var opts FilterOptions
	if err := c.ShouldBindQuery(&opts); err != nil {
		h.response.ValidationErrorResponse(c, "query", "Invalid query parameters")
		return
	}

	result, err := h.service.ListGuests(c.Request.Context(), opts)
	if err != nil {
		h.response.InternalErrorResponse(c, "Failed to list guests", err)
		return
	}

	h.response.SuccessResponse(c, result, "Guests retrieved successfully")
}

// @Summary Change guest status
// @Description Activates or suspends a guest account
// @Tags account
// @Accept json
// @Produce json
// @Param id path string true "Guest ID (UUID)"
// @Param request body StatusRequest true "New status"
// @Success 200 {object} http.Response "Status updated successfully"
// @Failure 404 {object} http.Response{error=http.Error} "Guest not found"
// @Router /guests/{id}/status [put]
func (h *Handler) SetGuestStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.response.ErrorResponse(c, http.StatusBadRequest, "invalid_guest_id", "Invalid guest ID format", err)
		return
	}

	var req StatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.response.ValidationErrorResponse(c, "status", "Status is required")
		return
	}

	if err := h.service.SetGuestStatus(c.Request.Context(), id, req.Status); err != nil {
		switch {
		case errors.Is(err, ErrGuestNotFound):
			h.response.NotFoundResponse(c, "Guest not found")
		case errors.Is(err, ErrInvalidStatus):
			h.response.ValidationErrorResponse(c, "status", "Invalid account status")
		default:
			h.response.InternalErrorResponse(c, "Failed to update guest status", err)
		}
		return
	}

	h.response.SuccessResponse(c, nil, "Status updated successfully")
}

// @Summary Create a host account
// @Description Registers a new host account with a unique email
// @Tags account
// @Accept json
// @Produce json
// @Param request body CreateHostRequest true "Host details"
// @Success 200 {object} http.Response{data=Host} "Host created successfully"
// @Failure 409 {object} http.Response{error=http.Error} "Email already registered"
// @Router /hosts [post]
func (h *Handler) CreateHost(c *gin.Context) {
	var req CreateHostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.response.ValidationErrorResponse(c, "request", "Invalid request payload")
		return
	}

	host, err := h.service.CreateHost(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, ErrEmailTaken) {
			h.response.ConflictResponse(c, "Email already registered")
			return
		}
		h.response.InternalErrorResponse(c, "Failed to create host", err)
		return
	}

	h.response.SuccessResponse(c, host, "Host created successfully")
}

// @Summary Get a host account
// @Description Retrieves a host account by its ID
// @Tags account
// @Produce json
// @Param id path string true "Host ID (UUID)"
// @Success 200 {object} http.Response{data=Host} "Host retrieved successfully"
// @Failure 404 {object} http.Response{error=http.Error} "Host not found"
// @Router /hosts/{id} [get]
func (h *Handler) GetHost(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.response.ErrorResponse(c, http.StatusBadRequest, "invalid_host_id", "Invalid host ID format", err)
		return
	}

	host, err := h.service.GetHost(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrHostNotFound) {
			h.response.NotFoundResponse(c, "Host not found")
			return
		}
		h.response.InternalErrorResponse(c, "Failed to retrieve host", err)
		return
	}

	h.response.SuccessResponse(c, host, "Host retrieved successfully")
}

// @Summary Update a host account
// @Description Updates the mutable fields of a host account
// @Tags account
// @Accept json
// @Produce json
// @Param id path string true "Host ID (UUID)"
// @Param request body UpdateHostRequest true "Fields to update"
// @Success 200 {object} http.Response{data=Host} "Host updated successfully"
// @Failure 404 {object} http.Response{error=http.Error} "Host not found"
// @Router /hosts/{id} [put]
func (h *Handler) UpdateHost(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.response.ErrorResponse(c, http.StatusBadRequest, "invalid_host_id", "Invalid host ID format", err)
		return
	}

	var req UpdateHostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.response.ValidationErrorResponse(c, "request", "Invalid request payload")
		return
	}

	host, err := h.service.UpdateHost(c.Request.Context(), id, &req)
	if err != nil {
		if errors.Is(err, ErrHostNotFound) {
			h.response.NotFoundResponse(c, "Host not found")
			return
		}
		h.response.InternalErrorResponse(c, "Failed to update host", err)
		return
	}

	h.response.SuccessResponse(c, host, "Host updated successfully")
}

// @Summary List host accounts
// @Description Retrieves a paginated list of host accounts
// @Tags account
// @Produce json
// @Param status query string false "Filter by status (ACTIVE, SUSPENDED)"
// @Param page query int false "Page number (default: 1)"
// @Param limit query int false "Accounts per page (default: 20, max: 100)"
// @Success 200 {object} http.Response{data=PaginatedHosts} "Hosts retrieved successfully"
// @Router /hosts [get]
func (h *Handler) ListHosts(c *gin.Context) {
	var opts FilterOptions
	if err := c.ShouldBindQuery(&opts); err != nil {
		h.response.ValidationErrorResponse(c, "query", "Invalid query parameters")
		return
	}

	result, err := h.service.ListHosts(c.Request.Context(), opts)
	if err != nil {
		h.response.InternalErrorResponse(c, "Failed to list hosts", err)
		return
	}

	h.response.SuccessResponse(c, result, "Hosts retrieved successfully")
}

// @Summary Verify a host
// @Description Marks a host account as identity-verified
// @Tags account
// @Produce json
// @Param id path string true "Host ID (UUID)"
// @Success 200 {object} http.Response "Host verified successfully"
// @Failure 404 {object} http.Response{error=http.Error} "Host not found"
// @Router /hosts/{id}/verify [post]
func (h *Handler) VerifyHost(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.response.ErrorResponse(c, http.StatusBadRequest, "invalid_host_id", "Invalid host ID format", err)
		return
	}

	if err := h.service.VerifyHost(c.Request.Context(), id); err != nil {
		if errors.Is(err, ErrHostNotFound) {
			h.response.NotFoundResponse(c, "Host not found")
			return
		}
		h.response.InternalErrorResponse(c, "Failed to verify host", err)
		return
	}

	h.response.SuccessResponse(c, nil, "Host verified successfully")
}

// @Summary Change host status
// @Description Activates or suspends a host account
// @Tags account
// @Accept json
// @Produce json
// @Param id path string true "Host ID (UUID)"
// @Param request body StatusRequest true "New status"
// @Success 200 {object} http.Response "Status updated successfully"
// @Failure 404 {object} http.Response{error=http.Error} "Host not found"
// @Router /hosts/{id}/status [put]
func (h *Handler) SetHostStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.response.ErrorResponse(c, http.StatusBadRequest, "invalid_host_id", "Invalid host ID format", err)
		return
	}

	var req StatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.response.ValidationErrorResponse(c, "status", "Status is required")
		return
	}

	if err := h.service.SetHostStatus(c.Request.Context(), id, req.Status); err != nil {
		switch {
		case errors.Is(err, ErrHostNotFound):
			h.response.NotFoundResponse(c, "Host not found")
		case errors.Is(err, ErrInvalidStatus):
			h.response.ValidationErrorResponse(c, "status", "Invalid account status")
		default:
			h.response.InternalErrorResponse(c, "Failed to update host status", err)
		}
		return
	}

	h.response.SuccessResponse(c, nil, "Status updated successfully")
}

// @Summary Platform account statistics
// @Description Retrieves aggregate counts of guest and host accounts
// @Tags account
// @Produce json
// @Success 200 {object} http.Response{data=Stats} "Statistics retrieved successfully"
// @Router /accounts/stats [get]
func (h *Handler) GetStats(c *gin.Context) {
	stats, err := h.service.GetStats(c.Request.Context())
	if err != nil {
		h.response.InternalErrorResponse(c, "Failed to retrieve account statistics", err)
		return
	}

	h.response.SuccessResponse(c, stats, "Statistics retrieved successfully")
}
