package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/lumenlabs/lumen/ent"
	"github.com/lumenlabs/lumen/ent/generationorder"
	"github.com/lumenlabs/lumen/ent/intent"
	"github.com/lumenlabs/lumen/ent/orderlog"
	"github.com/lumenlabs/lumen/ent/predicate"
	"github.com/lumenlabs/lumen/ent/searchquery"
)

// Scope names reported by availability and lock errors.
const (
	ScopeQuery  = "query"
	ScopeIntent = "intent"
)

// Availability reports whether a new order can be accepted for a scope.
type Availability struct {
	Available           bool   `json:"available"`
	Reason              string `json:"reason,omitempty"`
	ActiveOrderID       *int   `json:"activeOrderId,omitempty"`
	Scope               string `json:"scope,omitempty"`
	EstimatedDurationMs int64  `json:"estimatedDurationMs,omitempty"`
}

// CreateOrderRequest describes a new generation order.
type CreateOrderRequest struct {
	Kind        generationorder.Kind
	QueryID     int
	IntentID    *int
	ArticleID   *int
	RequestedBy generationorder.RequestedBy
	Payload     map[string]any
}

// ListOrdersParams filters List.
type ListOrdersParams struct {
	Status  string
	QueryID int
	Limit   int
	Offset  int
}

// OrderService accepts, inspects, and cancels generation orders. Execution
// state transitions (claim, complete, fail) belong to the worker.
type OrderService struct {
	db       *ent.Client
	articles *ArticleService
}

// NewOrderService creates an OrderService.
func NewOrderService(db *ent.Client, articles *ArticleService) *OrderService {
	return &OrderService{db: db, articles: articles}
}

var activeStatuses = []generationorder.Status{
	generationorder.StatusQueued,
	generationorder.StatusRunning,
}

// Availability checks the acceptance rules without creating anything.
func (s *OrderService) Availability(ctx context.Context, kind generationorder.Kind, queryID int, intentID *int) (*Availability, error) {
	if err := s.validateScope(ctx, kind, queryID, intentID); err != nil {
		return nil, err
	}

	conflict, err := s.findConflict(ctx, kind, queryID, intentID)
	if err != nil {
		return nil, err
	}

	out := &Availability{Available: conflict == nil}
	if conflict != nil {
		out.Reason = "resource locked"
		out.ActiveOrderID = &conflict.ActiveOrderID
		out.Scope = conflict.Scope
	}
	if estimate, err := s.articles.EstimateLatency(ctx); err == nil && estimate > 0 {
		out.EstimatedDurationMs = estimate.Milliseconds()
	}
	return out, nil
}

// CreateOrder validates the request against the acceptance rules and
// enqueues the order. A held scope yields a *LockError.
func (s *OrderService) CreateOrder(ctx context.Context, req CreateOrderRequest) (*ent.GenerationOrder, error) {
	if err := s.validateScope(ctx, req.Kind, req.QueryID, req.IntentID); err != nil {
		return nil, err
	}

	conflict, err := s.findConflict(ctx, req.Kind, req.QueryID, req.IntentID)
	if err != nil {
		return nil, err
	}
	if conflict != nil {
		return nil, conflict
	}

	requestedBy := req.RequestedBy
	if requestedBy == "" {
		requestedBy = generationorder.RequestedByUser
	}

	builder := s.db.GenerationOrder.Create().
		SetQueryID(req.QueryID).
		SetKind(req.Kind).
		SetStatus(generationorder.StatusQueued).
		SetRequestedBy(requestedBy)
	if req.IntentID != nil {
		builder.SetIntentID(*req.IntentID)
	}
	if req.ArticleID != nil {
		builder.SetArticleID(*req.ArticleID)
	}
	if req.Payload != nil {
		builder.SetRequestPayload(req.Payload)
	}

	order, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	s.AppendLog(ctx, order.ID, orderlog.StageOrder, orderlog.LevelInfo,
		fmt.Sprintf("order accepted (kind=%s)", req.Kind), nil)
	return order, nil
}

// EnqueueMailOrder enqueues a mail_reply order. Mail orders carry no query
// scope; their context lives in the request payload.
func (s *OrderService) EnqueueMailOrder(ctx context.Context, payload map[string]any) (*ent.GenerationOrder, error) {
	order, err := s.db.GenerationOrder.Create().
		SetKind(generationorder.KindMailReply).
		SetStatus(generationorder.StatusQueued).
		SetRequestedBy(generationorder.RequestedByUser).
		SetRequestPayload(payload).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to enqueue mail order: %w", err)
	}
	return order, nil
}

// validateScope checks kind/id shape and referenced row existence.
func (s *OrderService) validateScope(ctx context.Context, kind generationorder.Kind, queryID int, intentID *int) error {
	switch kind {
	case generationorder.KindQueryFull:
	case generationorder.KindIntentRegen, generationorder.KindArticleRegenKeepTitle:
		if intentID == nil {
			return NewValidationError("intentId", "required for per-intent orders")
		}
	default:
		return NewValidationError("kind", fmt.Sprintf("unsupported kind %q", kind))
	}
	if queryID <= 0 {
		return NewValidationError("queryId", "required")
	}

	exists, err := s.db.SearchQuery.Query().Where(searchquery.ID(queryID)).Exist(ctx)
	if err != nil {
		return fmt.Errorf("failed to check query %d: %w", queryID, err)
	}
	if !exists {
		return fmt.Errorf("query %d: %w", queryID, ErrNotFound)
	}

	if intentID != nil {
		linked, err := s.db.Intent.Query().
			Where(intent.ID(*intentID), intent.HasQueriesWith(searchquery.ID(queryID))).
			Exist(ctx)
		if err != nil {
			return fmt.Errorf("failed to check intent %d: %w", *intentID, err)
		}
		if !linked {
			return fmt.Errorf("intent %d for query %d: %w", *intentID, queryID, ErrNotFound)
		}
	}
	return nil
}

// findConflict applies the acceptance rules:
//   - an active query_full order for Q blocks everything on Q
//   - a per-intent order blocks the same (Q, intent)
//   - a new query_full is also blocked by any active per-intent order on Q
func (s *OrderService) findConflict(ctx context.Context, kind generationorder.Kind, queryID int, intentID *int) (*LockError, error) {
	if kind == generationorder.KindQueryFull {
		active, err := s.firstActive(ctx,
			generationorder.QueryID(queryID),
			generationorder.StatusIn(activeStatuses...))
		if err != nil || active == nil {
			return nil, err
		}
		scope := ScopeIntent
		if active.Kind == generationorder.KindQueryFull {
			scope = ScopeQuery
		}
		return &LockError{ActiveOrderID: active.ID, Scope: scope}, nil
	}

	// query_full precedence over per-intent requests
	active, err := s.firstActive(ctx,
		generationorder.QueryID(queryID),
		generationorder.KindEQ(generationorder.KindQueryFull),
		generationorder.StatusIn(activeStatuses...))
	if err != nil {
		return nil, err
	}
	if active != nil {
		return &LockError{ActiveOrderID: active.ID, Scope: ScopeQuery}, nil
	}

	active, err = s.firstActive(ctx,
		generationorder.QueryID(queryID),
		generationorder.IntentID(*intentID),
		generationorder.StatusIn(activeStatuses...))
	if err != nil {
		return nil, err
	}
	if active != nil {
		return &LockError{ActiveOrderID: active.ID, Scope: ScopeIntent}, nil
	}
	return nil, nil
}

func (s *OrderService) firstActive(ctx context.Context, preds ...predicate.GenerationOrder) (*ent.GenerationOrder, error) {
	row, err := s.db.GenerationOrder.Query().
		Where(preds...).
		Order(ent.Asc(generationorder.FieldCreatedAt)).
		First(ctx)
	if ent.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to check active orders: %w", err)
	}
	return row, nil
}

// Get returns one order by id.
func (s *OrderService) Get(ctx context.Context, id int) (*ent.GenerationOrder, error) {
	row, err := s.db.GenerationOrder.Get(ctx, id)
	if ent.IsNotFound(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load order %d: %w", id, err)
	}
	return row, nil
}

// List returns orders newest first.
func (s *OrderService) List(ctx context.Context, params ListOrdersParams) ([]*ent.GenerationOrder, error) {
	q := s.db.GenerationOrder.Query()
	if params.Status != "" {
		status := generationorder.Status(params.Status)
		if err := generationorder.StatusValidator(status); err != nil {
			return nil, NewValidationError("status", "unknown status")
		}
		q = q.Where(generationorder.StatusEQ(status))
	}
	if params.QueryID > 0 {
		q = q.Where(generationorder.QueryID(params.QueryID))
	}
	limit := params.Limit
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	rows, err := q.Order(ent.Desc(generationorder.FieldCreatedAt)).
		Limit(limit).
		Offset(params.Offset).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return rows, nil
}

// Logs returns the breadcrumbs for an order, oldest first.
func (s *OrderService) Logs(ctx context.Context, orderID int) ([]*ent.OrderLog, error) {
	if _, err := s.Get(ctx, orderID); err != nil {
		return nil, err
	}
	rows, err := s.db.OrderLog.Query().
		Where(orderlog.OrderID(orderID)).
		Order(ent.Asc(orderlog.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load logs for order %d: %w", orderID, err)
	}
	return rows, nil
}

// Cancel flips queued → cancelled. Any other current status is an error;
// running orders cannot be interrupted.
func (s *OrderService) Cancel(ctx context.Context, id int) (*ent.GenerationOrder, error) {
	n, err := s.db.GenerationOrder.Update().
		Where(generationorder.ID(id), generationorder.StatusEQ(generationorder.StatusQueued)).
		SetStatus(generationorder.StatusCancelled).
		SetFinishedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to cancel order %d: %w", id, err)
	}
	if n == 0 {
		current, err := s.Get(ctx, id)
		if err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("%w: order %d is %s, only queued orders can be cancelled",
			ErrInvalidInput, id, current.Status)
	}

	s.AppendLog(ctx, id, orderlog.StageOrder, orderlog.LevelInfo, "order cancelled", nil)
	return s.Get(ctx, id)
}

// AppendLog writes one breadcrumb. Best effort: pipelines never fail on a
// lost log row.
func (s *OrderService) AppendLog(ctx context.Context, orderID int, stage orderlog.Stage, level orderlog.Level, message string, meta map[string]any) {
	builder := s.db.OrderLog.Create().
		SetOrderID(orderID).
		SetStage(stage).
		SetLevel(level).
		SetMessage(message)
	if meta != nil {
		builder.SetMeta(meta)
	}
	if err := builder.Exec(ctx); err != nil {
		slog.Warn("Failed to append order log", "order_id", orderID, "error", err)
	}
}
