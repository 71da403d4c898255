// Package models contains the request and response shapes of the HTTP API.
package models

import (
	"time"

	"github.com/lumenlabs/lumen/ent"
)

// CreateOrderRequest is the body of POST /api/orders.
type CreateOrderRequest struct {
	Kind      string         `json:"kind" binding:"required"`
	QueryID   int            `json:"queryId" binding:"required"`
	IntentID  *int           `json:"intentId,omitempty"`
	ArticleID *int           `json:"articleId,omitempty"`
	Payload   map[string]any `json:"payload,omitempty"`
}

// OrderCreatedResponse is the acceptance acknowledgement.
type OrderCreatedResponse struct {
	OrderID int    `json:"orderId"`
	QueryID int    `json:"queryId"`
	Kind    string `json:"kind"`
	Status  string `json:"status"`
}

// OrderResponse is the full order projection.
type OrderResponse struct {
	ID            int            `json:"id"`
	QueryID       *int           `json:"queryId,omitempty"`
	Kind          string         `json:"kind"`
	IntentID      *int           `json:"intentId,omitempty"`
	ArticleID     *int           `json:"articleId,omitempty"`
	Status        string         `json:"status"`
	RequestedBy   string         `json:"requestedBy"`
	Payload       map[string]any `json:"payload,omitempty"`
	ResultSummary string         `json:"resultSummary,omitempty"`
	ErrorMessage  string         `json:"errorMessage,omitempty"`
	CreatedAt     time.Time      `json:"createdAt"`
	StartedAt     *time.Time     `json:"startedAt,omitempty"`
	FinishedAt    *time.Time     `json:"finishedAt,omitempty"`
	UpdatedAt     time.Time      `json:"updatedAt"`
}

// NewOrderResponse projects an order row.
func NewOrderResponse(o *ent.GenerationOrder) OrderResponse {
	return OrderResponse{
		ID:            o.ID,
		QueryID:       o.QueryID,
		Kind:          string(o.Kind),
		IntentID:      o.IntentID,
		ArticleID:     o.ArticleID,
		Status:        string(o.Status),
		RequestedBy:   string(o.RequestedBy),
		Payload:       o.RequestPayload,
		ResultSummary: o.ResultSummary,
		ErrorMessage:  o.ErrorMessage,
		CreatedAt:     o.CreatedAt,
		StartedAt:     o.StartedAt,
		FinishedAt:    o.FinishedAt,
		UpdatedAt:     o.UpdatedAt,
	}
}

// OrderLogResponse is one operator breadcrumb.
type OrderLogResponse struct {
	ID        int            `json:"id"`
	Stage     string         `json:"stage"`
	Level     string         `json:"level"`
	Message   string         `json:"message"`
	Meta      map[string]any `json:"meta,omitempty"`
	CreatedAt time.Time      `json:"createdAt"`
}

// NewOrderLogResponse projects a log row.
func NewOrderLogResponse(l *ent.OrderLog) OrderLogResponse {
	return OrderLogResponse{
		ID:        l.ID,
		Stage:     string(l.Stage),
		Level:     string(l.Level),
		Message:   l.Message,
		Meta:      l.Meta,
		CreatedAt: l.CreatedAt,
	}
}
