// Package api exposes the engine over HTTP: JSON endpoints for queries,
// orders, and mail, plus SSE streams for live progress.
package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/lumenlabs/lumen/pkg/database"
	"github.com/lumenlabs/lumen/pkg/events"
	"github.com/lumenlabs/lumen/pkg/queue"
	"github.com/lumenlabs/lumen/pkg/services"
)

// Server wires the HTTP surface to the service layer.
type Server struct {
	router  *gin.Engine
	db      *database.Client
	queries *services.QueryService
	orders  *services.OrderService
	events  *services.EventService
	mail    *services.MailService
	broker  *events.Broker
	worker  *queue.Worker
}

// NewServer creates the API server and registers all routes.
func NewServer(
	db *database.Client,
	queries *services.QueryService,
	orders *services.OrderService,
	eventSvc *services.EventService,
	mail *services.MailService,
	broker *events.Broker,
	worker *queue.Worker,
) *Server {
	s := &Server{
		db:      db,
		queries: queries,
		orders:  orders,
		events:  eventSvc,
		mail:    mail,
		broker:  broker,
		worker:  worker,
	}

	router := gin.New()
	router.Use(gin.Recovery(), requestLogger(), securityHeaders())

	api := router.Group("/api")
	{
		api.POST("/query", s.handleSubmitQuery)

		api.GET("/orders/availability", s.handleOrderAvailability)
		api.POST("/orders", s.handleCreateOrder)
		api.GET("/orders", s.handleListOrders)
		api.GET("/orders/:id", s.handleGetOrder)
		api.GET("/orders/:id/logs", s.handleOrderLogs)
		api.GET("/orders/:id/stream", s.handleOrderStream)
		api.POST("/orders/:id/cancel", s.handleCancelOrder)

		api.POST("/mail/thread", s.handleCreateThread)
		api.GET("/mail/thread/:uid", s.handleGetThread)
		api.POST("/mail/thread/:uid/reply", s.handleAppendReply)
		api.GET("/mail/thread/:uid/stream", s.handleMailStream)
	}

	router.GET("/healthz", s.handleHealth)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	s.router = router
	return s
}

// Handler returns the http.Handler for the server.
func (s *Server) Handler() http.Handler {
	return s.router
}
