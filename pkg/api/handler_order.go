package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/lumenlabs/lumen/ent/generationorder"
	"github.com/lumenlabs/lumen/pkg/models"
	"github.com/lumenlabs/lumen/pkg/services"
)

// handleOrderAvailability answers GET /api/orders/availability.
func (s *Server) handleOrderAvailability(c *gin.Context) {
	kind := generationorder.Kind(c.Query("kind"))
	queryID, err := strconv.Atoi(c.Query("queryId"))
	if err != nil || queryID <= 0 {
		respondBadRequest(c, "queryId must be a positive integer")
		return
	}
	var intentID *int
	if raw := c.Query("intentId"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil || id <= 0 {
			respondBadRequest(c, "intentId must be a positive integer")
			return
		}
		intentID = &id
	}

	availability, err := s.orders.Availability(c.Request.Context(), kind, queryID, intentID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, availability)
}

// handleCreateOrder answers POST /api/orders.
func (s *Server) handleCreateOrder(c *gin.Context) {
	var req models.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	order, err := s.orders.CreateOrder(c.Request.Context(), services.CreateOrderRequest{
		Kind:      generationorder.Kind(req.Kind),
		QueryID:   req.QueryID,
		IntentID:  req.IntentID,
		ArticleID: req.ArticleID,
		Payload:   req.Payload,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, models.OrderCreatedResponse{
		OrderID: order.ID,
		QueryID: req.QueryID,
		Kind:    string(order.Kind),
		Status:  string(order.Status),
	})
}

// handleListOrders answers GET /api/orders.
func (s *Server) handleListOrders(c *gin.Context) {
	params := services.ListOrdersParams{Status: c.Query("status")}
	if raw := c.Query("queryId"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			respondBadRequest(c, "queryId must be an integer")
			return
		}
		params.QueryID = id
	}
	if raw := c.Query("limit"); raw != "" {
		params.Limit, _ = strconv.Atoi(raw)
	}
	if raw := c.Query("offset"); raw != "" {
		params.Offset, _ = strconv.Atoi(raw)
	}

	rows, err := s.orders.List(c.Request.Context(), params)
	if err != nil {
		respondError(c, err)
		return
	}
	out := make([]models.OrderResponse, 0, len(rows))
	for _, row := range rows {
		out = append(out, models.NewOrderResponse(row))
	}
	c.JSON(http.StatusOK, gin.H{"orders": out})
}

// handleGetOrder answers GET /api/orders/:id.
func (s *Server) handleGetOrder(c *gin.Context) {
	id, ok := orderIDParam(c)
	if !ok {
		return
	}
	order, err := s.orders.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"order": models.NewOrderResponse(order)})
}

// handleOrderLogs answers GET /api/orders/:id/logs.
func (s *Server) handleOrderLogs(c *gin.Context) {
	id, ok := orderIDParam(c)
	if !ok {
		return
	}
	rows, err := s.orders.Logs(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	out := make([]models.OrderLogResponse, 0, len(rows))
	for _, row := range rows {
		out = append(out, models.NewOrderLogResponse(row))
	}
	c.JSON(http.StatusOK, gin.H{"logs": out})
}

// handleCancelOrder answers POST /api/orders/:id/cancel. Only queued
// orders can be cancelled.
func (s *Server) handleCancelOrder(c *gin.Context) {
	id, ok := orderIDParam(c)
	if !ok {
		return
	}
	order, err := s.orders.Cancel(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"order": models.NewOrderResponse(order)})
}

func orderIDParam(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		respondBadRequest(c, "order id must be a positive integer")
		return 0, false
	}
	return id, true
}
