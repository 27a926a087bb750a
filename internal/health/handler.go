package health

import (
	"time"

	"github.com/gin-gonic/gin"

	httpHandler "github.com/verandalabs/veranda-stays/backend/internal/http"
)

// Handler handles health check related endpoints
type Handler struct {
	response  httpHandler.ResponseHandler
	version   string
	startedAt time.Time
}

// NewHandler creates a new health check handler
func NewHandler(response httpHandler.ResponseHandler, version string) *Handler {
	return &Handler{
		response:  response,
		version:   version,
		startedAt: time.Now(),
	}
}

// Status represents the payload of a health check
type Status struct {
	Status  string `json:"status"`
	Version string `json:"version"`
	Uptime  string `json:"uptime"`
}

// RegisterRoutes registers the health check route
func (h *Handler) RegisterRoutes(router *gin.Engine) {
	router.GET("/health", h.HandleHealthCheck)
}

// @Summary Health check endpoint
// @Description Checks if the API server is running properly
// @Tags health
// @Produce json
// @Success 200 {object} http.Response{data=Status} "Health check successful"
// @Router /health [get]
func (h *Handler) HandleHealthCheck(c *gin.Context) {
	status := Status{
		Status:  "ok",
		Version: h.version,
		Uptime:  time.Since(h.startedAt).Round(time.Second).String(),
	}
	h.response.SuccessResponse(c, status, "Health check successful")
}
