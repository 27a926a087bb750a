package property

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	apperrors "github.com/verandalabs/veranda-stays/backend/internal/errors"
	httpHandler "github.com/verandalabs/veranda-stays/backend/internal/http"
)

// Handler defines the HTTP handler for listing operations
type Handler struct {
	service  Service
	response httpHandler.ResponseHandler
}

// NewHandler creates a new listing handler
func NewHandler(service Service, response httpHandler.ResponseHandler) *Handler {
	return &Handler{
		service:  service,
		response: response,
	}
}

// RegisterRoutes registers the listing API routes
func (h *Handler) RegisterRoutes(router *gin.Engine) {
	properties := router.Group("/properties")
	{
		properties.POST("", h.CreateProperty)
		properties.GET("", h.ListProperties)
		properties.GET("/featured", h.FeaturedProperties)
		properties.GET("/stats", h.GetStats)
		properties.GET("/:id", h.GetProperty)
		properties.GET("/:id/details", h.GetPropertyWithImages)
		properties.PUT("/:id", h.UpdateProperty)
		properties.PUT("/:id/status", h.SetStatus)
		properties.PUT("/:id/featured", h.SetFeatured)
		properties.DELETE("/:id", h.DeleteProperty)
		properties.POST("/:id/images", h.AddImage)
		properties.DELETE("/:id/images/:imageId", h.RemoveImage)
	}

	router.GET("/hosts/:id/properties", h.ListByHost)
}

// respondError maps service errors to envelope responses
func (h *Handler) respondError(c *gin.Context, err error, fallback string) {
	var validationErr *apperrors.ValidationError
	var conflictErr *apperrors.ConflictError
	switch {
	case errors.Is(err, ErrPropertyNotFound):
		h.response.NotFoundResponse(c, "Property not found")
	case errors.Is(err, ErrImageNotFound):
		h.response.NotFoundResponse(c, apperrors.ErrMsgImageNotFound)
	case errors.Is(err, ErrInvalidStatus):
		h.response.ValidationErrorResponse(c, "status", "Invalid listing status")
	case errors.As(err, &validationErr):
		h.response.ValidationErrorResponse(c, validationErr.Field, validationErr.Message)
	case errors.As(err, &conflictErr):
		h.response.ConflictResponse(c, conflictErr.Message)
	default:
		h.response.InternalErrorResponse(c, fallback, err)
	}
}

// @Summary Create a listing
// @Description Creates a new rental listing owned by a host, in draft status
// @Tags property
// @Accept json
// @Produce json
// @Param request body CreatePropertyRequest true "Listing details"
// @Success 200 {object} http.Response{data=Property} "Listing created successfully"
// @Failure 400 {object} http.Response{error=http.Error} "Invalid request payload"
// @Router /properties [post]
func (h *Handler) CreateProperty(c *gin.Context) {
	var req CreatePropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.response.ValidationErrorResponse(c, "request", "Invalid request payload")
		return
	}

	property, err := h.service.CreateProperty(c.Request.Context(), &req)
	if err != nil {
		h.respondError(c, err, "Failed to create listing")
		return
	}

	h.response.SuccessResponse(c, property, "Listing created successfully")
}

// @Summary Get a listing
// @Description Retrieves a single listing by its ID
// @Tags property
// @Produce json
// @Param id path string true "Property ID (UUID)"
// @Success 200 {object} http.Response{data=Property} "Listing retrieved successfully"
// @Failure 404 {object} http.Response{error=http.Error} "Listing not found"
// @Router /properties/{id} [get]
func (h *Handler) GetProperty(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.response.ErrorResponse(c, http.StatusBadRequest, "invalid_property_id", "Invalid property ID format", err)
		return
	}

	property, err := h.service.GetProperty(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err, "Failed to retrieve listing")
		return
	}

	h.response.SuccessResponse(c, property, "Listing retrieved successfully")
}

// @Summary Get a listing with its photo gallery
// @Description Retrieves a listing together with its ordered images
// @Tags property
// @Produce json
// @Param id path string true "Property ID (UUID)"
// @Success 200 {object} http.Response{data=PropertyWithImages} "Listing retrieved successfully"
// @Failure 404 {object} http.Response{error=http.Error} "Listing not found"
// @Router /properties/{id}/details [get]
func (h *Handler) GetPropertyWithImages(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.response.ErrorResponse(c, http.StatusBadRequest, "invalid_property_id", "Invalid property ID format", err)
		return
	}

	details, err := h.service.GetPropertyWithImages(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err, "Failed to retrieve listing")
		return
	}

	h.response.SuccessResponse(c, details, "Listing retrieved successfully")
}

// @Summary Update a listing
// @Description Updates the mutable fields of a listing
// @Tags property
// @Accept json
// @Produce json
// @Param id path string true "Property ID (UUID)"
// @Param request body UpdatePropertyRequest true "Fields to update"
// @Success 200 {object} http.Response{data=Property} "Listing updated successfully"
// @Failure 404 {object} http.Response{error=http.Error} "Listing not found"
// @Router /properties/{id} [put]
func (h *Handler) UpdateProperty(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.response.ErrorResponse(c, http.StatusBadRequest, "invalid_property_id", "Invalid property ID format", err)
		return
	}

	var req UpdatePropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.response.ValidationErrorResponse(c, "request", "Invalid request payload")
		return
	}

	property, err := h.service.UpdateProperty(c.Request.Context(), id, &req)
	if err != nil {
		h.respondError(c, err, "Failed to update listing")
		return
	}

	h.response.SuccessResponse(c, property, "Listing updated successfully")
}

// @Summary Search listings
// @Description Retrieves a paginated list of listings matching the filters
// @Tags property
// @Produce json
// @Param city query string false "Filter by city"
// @Param minPrice query string false "Minimum nightly price"
// @Param maxPrice query string false "Maximum nightly price"
// @Param guests query int false "Minimum guest capacity"
// @Param status query string false "Filter by status (DRAFT, ACTIVE, SUSPENDED)"
// @Param sortBy query string false "Sort order (price_asc, price_desc)"
// @Param page query int false "Page number (default: 1)"
// @Param limit query int false "Listings per page (default: 20, max: 100)"
// @Success 200 {object} http.Response{data=PaginatedProperties} "Listings retrieved successfully"
// @Router /properties [get]
func (h *Handler) ListProperties(c *gin.Context) {
	var opts FilterOptions
	if err := c.ShouldBindQuery(&opts); err != nil {
		h.response.ValidationErrorResponse(c, "query", "Invalid query parameters")
		return
	}

	result, err := h.service.ListProperties(c.Request.Context(), opts)
	if err != nil {
		h.response.InternalErrorResponse(c, "Failed to search listings", err)
		return
	}

	h.response.SuccessResponse(c, result, "Listings retrieved successfully")
}

// @Summary List a host's listings
// @Description Retrieves a paginated list of listings owned by a host
// @Tags property
// @Produce json
// @Param id path string true "Host ID (UUID)"
// @Param page query int false "Page number (default: 1)"
// @Param limit query int false "Listings per page (default: 20, max: 100)"
// @Success 200 {object} http.Response{data=PaginatedProperties} "Listings retrieved successfully"
// @Router /hosts/{id}/properties [get]
func (h *Handler) ListByHost(c *gin.Context) {
	hostID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.response.ErrorResponse(c, http.StatusBadRequest, "invalid_host_id", "Invalid host ID format", err)
		return
	}

	var opts FilterOptions
	if err := c.ShouldBindQuery(&opts); err != nil {
		h.response.ValidationErrorResponse(c, "query", "Invalid query parameters")
		return
	}

	result, err := h.service.ListByHost(c.Request.Context(), hostID, opts)
	if err != nil {
		h.response.InternalErrorResponse(c, "Failed to list host listings", err)
		return
	}

	h.response.SuccessResponse(c, result, "Listings retrieved successfully")
}

// @Summary Featured listings
// @Description Retrieves the curated set of featured active listings
// @Tags property
// @Produce json
// @Success 200 {object} http.Response{data=[]Property} "Listings retrieved successfully"
// @Router /properties/featured [get]
func (h *Handler) FeaturedProperties(c *gin.Context) {
	properties, err := h.service.FeaturedProperties(c.Request.Context())
	if err != nil {
		h.response.InternalErrorResponse(c, "Failed to retrieve featured listings", err)
		return
	}

	h.response.SuccessResponse(c, properties, "Listings retrieved successfully")
}

// @Summary Change listing status
// @Description Moves a listing between draft, active and suspended
// @Tags property
// @Accept json
// @Produce json
// @Param id path string true "Property ID (UUID)"
// @Param request body StatusRequest true "New status"
// @Success 200 {object} http.Response "Status updated successfully"
// @Failure 404 {object} http.Response{error=http.Error} "Listing not found"
// @Router /properties/{id}/status [put]
func (h *Handler) SetStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.response.ErrorResponse(c, http.StatusBadRequest, "invalid_property_id", "Invalid property ID format", err)
		return
	}

	var req StatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.response.ValidationErrorResponse(c, "status", "Status is required")
		return
	}

	if err := h.service.SetStatus(c.Request.Context(), id, req.Status); err != nil {
		h.respondError(c, err, "Failed to update listing status")
		return
	}

	h.response.SuccessResponse(c, nil, "Status updated successfully")
}

// @Summary Toggle the featured flag
// @Description Adds or removes a listing from the featured set
// @Tags property
// @Accept json
// @Produce json
// @Param id path string true "Property ID (UUID)"
// @Param request body FeaturedRequest true "Featured flag"
// @Success 200 {object} http.Response "Listing updated successfully"
// @Failure 404 {object} http.Response{error=http.Error} "Listing not found"
// @Router /properties/{id}/featured [put]
func (h *Handler) SetFeatured(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.response.ErrorResponse(c, http.StatusBadRequest, "invalid_property_id", "Invalid property ID format", err)
		return
	}

	var req FeaturedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.response.ValidationErrorResponse(c, "featured", "Featured flag is required")
		return
	}

	if err := h.service.SetFeatured(c.Request.Context(), id, req.Featured); err != nil {
		h.respondError(c, err, "Failed to update listing")
		return
	}

	h.response.SuccessResponse(c, nil, "Listing updated successfully")
}

// @Summary Delete a listing
// @Description Removes a listing, its images and their stored objects
// @Tags property
// @Produce json
// @Param id path string true "Property ID (UUID)"
// @Success 200 {object} http.Response "Listing deleted successfully"
// @Failure 404 {object} http.Response{error=http.Error} "Listing not found"
// @Failure 409 {object} http.Response{error=http.Error} "Listing has bookings in flight"
// @Router /properties/{id} [delete]
func (h *Handler) DeleteProperty(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.response.ErrorResponse(c, http.StatusBadRequest, "invalid_property_id", "Invalid property ID format", err)
		return
	}

	if err := h.service.DeleteProperty(c.Request.Context(), id); err != nil {
		h.respondError(c, err, "Failed to delete listing")
		return
	}

	h.response.SuccessResponse(c, nil, "Listing deleted successfully")
}

// @Summary Upload a listing image
// @Description Uploads a photo for a listing to object storage
// @Tags property
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Property ID (UUID)"
// @Param image formData file true "Image file"
// @Success 200 {object} http.Response{data=PropertyImage} "Image uploaded successfully"
// @Failure 400 {object} http.Response{error=http.Error} "Invalid image"
// @Failure 404 {object} http.Response{error=http.Error} "Listing not found"
// @Router /properties/{id}/images [post]
func (h *Handler) AddImage(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.response.ErrorResponse(c, http.StatusBadRequest, "invalid_property_id", "Invalid property ID format", err)
		return
	}

	file, header, err := c.Request.FormFile("image")
	if err != nil {
		h.response.ValidationErrorResponse(c, "image", "Image file is required")
		return
	}
	defer file.Close()

	image, err := h.service.AddImage(c.Request.Context(), id, file, header)
	if err != nil {
		h.respondError(c, err, "Failed to upload image")
		return
	}

	h.response.SuccessResponse(c, image, "Image uploaded successfully")
}

// @Summary Remove a listing image
// @Description Deletes a photo from a listing and from object storage
// @Tags property
// @Produce json
// @Param id path string true "Property ID (UUID)"
// @Param imageId path string true "Image ID (UUID)"
// @Success 200 {object} http.Response "Image removed successfully"
// @Failure 404 {object} http.Response{error=http.Error} "Image not found"
// @Router /properties/{id}/images/{imageId} [delete]
func (h *Handler) RemoveImage(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.response.ErrorResponse(c, http.StatusBadRequest, "invalid_property_id", "Invalid property ID format", err)
		return
	}

	imageID, err := uuid.Parse(c.Param("imageId"))
	if err != nil {
		h.response.ErrorResponse(c, http.StatusBadRequest, "invalid_image_id", "Invalid image ID format", err)
		return
	}

	if err := h.service.RemoveImage(c.Request.Context(), id, imageID); err != nil {
		h.respondError(c, err, "Failed to remove image")
		return
	}

	h.response.SuccessResponse(c, nil, "Image removed successfully")
}

// @Summary Platform listing statistics
// @Description Retrieves aggregate listing counts and the average nightly price
// @Tags property
// @Produce json
// @Success 200 {object} http.Response{data=PropertyStats} "Statistics retrieved successfully"
// @Router /properties/stats [get]
func (h *Handler) GetStats(c *gin.Context) {
	stats, err := h.service.GetStats(c.Request.Context())
	if err != nil {
		h.response.InternalErrorResponse(c, "Failed to retrieve listing statistics", err)
		return
	}

	h.response.SuccessResponse(c, stats, "Statistics retrieved successfully")
}
