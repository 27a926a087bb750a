package main

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/verandalabs/veranda-stays/backend/internal/account"
	"github.com/verandalabs/veranda-stays/backend/internal/booking"
	"github.com/verandalabs/veranda-stays/backend/internal/contact"
	"github.com/verandalabs/veranda-stays/backend/internal/health"
	httpHandler "github.com/verandalabs/veranda-stays/backend/internal/http"
	"github.com/verandalabs/veranda-stays/backend/internal/http/middleware"
	"github.com/verandalabs/veranda-stays/backend/internal/payment"
	"github.com/verandalabs/veranda-stays/backend/internal/property"
	"github.com/verandalabs/veranda-stays/backend/internal/review"
)

// setupRouter configures the middleware chain and all the routes
func (a *App) setupRouter() *gin.Engine {
	router := gin.New()

	// Request logging runs outermost so recovered panics still get a
	// request log line with their 500 status
	router.Use(
		middleware.RequestLoggerMiddleware(a.logger),
		httpHandler.RecoveryMiddleware(a.responses, a.logger),
		httpHandler.CORSMiddleware(),
	)

	account.NewHandler(a.accounts, a.responses).RegisterRoutes(router)
	property.NewHandler(a.properties, a.responses).RegisterRoutes(router)
	booking.NewHandler(a.bookings, a.responses).RegisterRoutes(router)
	payment.NewHandler(a.payments, a.responses).RegisterRoutes(router)
	review.NewHandler(a.reviews, a.responses).RegisterRoutes(router)
	contact.NewHandler(a.contacts, a.responses).RegisterRoutes(router)

	health.NewHandler(a.responses, version).RegisterRoutes(router)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return router
}
