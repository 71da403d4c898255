package queue

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/lumenlabs/lumen/ent"
	"github.com/lumenlabs/lumen/ent/generationorder"
	"github.com/lumenlabs/lumen/ent/generationrun"
	"github.com/lumenlabs/lumen/ent/lease"
	"github.com/lumenlabs/lumen/ent/orderlog"
	"github.com/lumenlabs/lumen/pkg/events"
	"github.com/lumenlabs/lumen/pkg/leases"
	"github.com/lumenlabs/lumen/pkg/llm"
	"github.com/lumenlabs/lumen/pkg/services"
)

// SearchExecutor runs query_full, intent_regen, and
// article_regen_keep_title orders.
type SearchExecutor struct {
	provider  llm.Provider
	executor  *llm.Executor
	settings  *services.SettingsService
	queries   *services.QueryService
	articles  *services.ArticleService
	orders    *services.OrderService
	publisher *events.Publisher
	leases    *leases.Manager
}

// NewSearchExecutor wires the search generation pipeline.
func NewSearchExecutor(
	provider llm.Provider,
	executor *llm.Executor,
	settings *services.SettingsService,
	queries *services.QueryService,
	articles *services.ArticleService,
	orders *services.OrderService,
	publisher *events.Publisher,
	leaseMgr *leases.Manager,
) *SearchExecutor {
	return &SearchExecutor{
		provider:  provider,
		executor:  executor,
		settings:  settings,
		queries:   queries,
		articles:  articles,
		orders:    orders,
		publisher: publisher,
		leases:    leaseMgr,
	}
}

// Execute runs the search generation pipeline for one order.
func (e *SearchExecutor) Execute(ctx context.Context, order *ent.GenerationOrder) *ExecutionResult {
	if order.QueryID == nil {
		return &ExecutionResult{Err: fmt.Errorf("order %d has no query", order.ID)}
	}

	q, err := e.queries.GetQuery(ctx, *order.QueryID)
	if err != nil {
		return &ExecutionResult{Err: fmt.Errorf("load query %d: %w", *order.QueryID, err)}
	}
	channel := events.OrderChannel(order.ID)

	// The stored value is already operator-free, but rows written by older
	// paths may still carry filetype tokens.
	clean, filetype := services.ParseFiletype(q.Value)
	if filetype == "md" && q.Filetype != "" {
		filetype = q.Filetype
	}

	if order.Kind == generationorder.KindQueryFull {
		res, err := e.leases.TryAcquire(ctx, lease.ScopeTypeQuery, leases.QueryScopeKey(q.ID), order.ID)
		if err != nil {
			return e.fail(ctx, order, q.ID, channel, err)
		}
		if !res.OK {
			return e.fail(ctx, order, q.ID, channel, fmt.Errorf("Resource locked by order %d", res.OwnerOrderID))
		}
	}

	e.emit(ctx, channel, order.ID, events.OrderStartedPayload{
		OrderID:  order.ID,
		QueryID:  q.ID,
		Kind:     string(order.Kind),
		IntentID: order.IntentID,
	})
	e.orders.AppendLog(ctx, order.ID, orderlog.StageOrder, orderlog.LevelInfo,
		fmt.Sprintf("pipeline started for query %d", q.ID), nil)

	cfg := e.settings.Snapshot(ctx)

	intents, err := e.intentPhase(ctx, order, q, clean, filetype, channel, cfg)
	if err != nil {
		return e.fail(ctx, order, q.ID, channel, err)
	}

	start := time.Now()
	for _, in := range intents {
		if err := e.articlePhase(ctx, order, q, in, clean, filetype, channel, cfg); err != nil {
			return e.fail(ctx, order, q.ID, channel, err)
		}
	}

	summary := fmt.Sprintf("%d article(s) generated in %s",
		len(intents), time.Since(start).Round(time.Millisecond))
	e.emit(ctx, channel, order.ID, events.OrderCompletedPayload{
		OrderID:       order.ID,
		QueryID:       q.ID,
		Status:        string(generationorder.StatusCompleted),
		ResultSummary: summary,
	})
	e.orders.AppendLog(ctx, order.ID, orderlog.StageOrder, orderlog.LevelInfo, summary, nil)
	return &ExecutionResult{Summary: summary}
}

// intentPhase resolves the intent set for the order. query_full rebuilds
// the query's links from the provider; per-intent kinds reuse the intent
// named on the order.
func (e *SearchExecutor) intentPhase(ctx context.Context, order *ent.GenerationOrder, q *ent.SearchQuery, clean, filetype, channel string, cfg services.Settings) ([]*ent.Intent, error) {
	if order.Kind != generationorder.KindQueryFull {
		if order.IntentID == nil {
			return nil, fmt.Errorf("order %d has no intent", order.ID)
		}
		in, err := e.queries.GetIntent(ctx, *order.IntentID)
		if err != nil {
			return nil, fmt.Errorf("load intent %d: %w", *order.IntentID, err)
		}
		return []*ent.Intent{in}, nil
	}

	if err := e.queries.ClearIntentLinks(ctx, q.ID); err != nil {
		return nil, err
	}
	e.emit(ctx, channel, order.ID, events.OrderProgressPayload{
		OrderID: order.ID, QueryID: q.ID,
		Stage: events.StageIntent, Message: "resolving intents",
	})
	e.orders.AppendLog(ctx, order.ID, orderlog.StageIntent, orderlog.LevelInfo, "resolving intents", nil)

	items, _, err := llm.Do(ctx, e.executor, llm.CallSpec{
		Provider:    e.provider.Name(),
		Component:   "search_pipeline",
		Trigger:     "resolve_intents",
		MaxAttempts: cfg.RetryMaxAttempts,
		Timeout:     cfg.RetryTimeout,
		Snapshot:    func() string { return clean },
	}, func(ctx context.Context) ([]llm.IntentItem, error) {
		return e.provider.ResolveIntents(ctx, llm.IntentInput{
			Query: clean, Language: q.Language, Filetype: filetype,
		})
	})
	if err != nil {
		return nil, err
	}
	// Semantic validation, outside the retry loop.
	if len(items) == 0 {
		return nil, fmt.Errorf("provider returned no intents for %q", clean)
	}

	intents := make([]*ent.Intent, 0, len(items))
	for _, item := range items {
		row, err := e.queries.UpsertIntent(ctx, q.ID, item, filetype)
		if err != nil {
			return nil, err
		}
		intents = append(intents, row)
		e.emit(ctx, channel, order.ID, events.IntentUpsertedPayload{
			OrderID: order.ID,
			QueryID: q.ID,
			Intent:  events.IntentRef{ID: row.ID, Value: row.IntentText},
		})
	}
	sort.Slice(intents, func(i, j int) bool { return intents[i].ID < intents[j].ID })
	return intents, nil
}

// articlePhase generates and upserts one article under its intent lease.
func (e *SearchExecutor) articlePhase(ctx context.Context, order *ent.GenerationOrder, q *ent.SearchQuery, in *ent.Intent, clean, filetype, channel string, cfg services.Settings) error {
	res, err := e.leases.TryAcquire(ctx, lease.ScopeTypeIntent, leases.IntentScopeKey(q.ID, in.ID), order.ID)
	if err != nil {
		return err
	}
	if !res.OK {
		return fmt.Errorf("Resource locked by order %d", res.OwnerOrderID)
	}

	e.emit(ctx, channel, order.ID, events.OrderProgressPayload{
		OrderID: order.ID, QueryID: q.ID,
		Stage:   events.StageArticle,
		Message: fmt.Sprintf("generating article for intent %d", in.ID),
	})
	e.orders.AppendLog(ctx, order.ID, orderlog.StageArticle, orderlog.LevelInfo,
		fmt.Sprintf("generating article for intent %d", in.ID), nil)

	run, err := e.articles.BeginRun(ctx, order.ID, generationrun.KindContent)
	if err != nil {
		return err
	}
	phaseStart := time.Now()

	out, meta, err := llm.Do(ctx, e.executor, llm.CallSpec{
		Provider:    e.provider.Name(),
		Component:   "search_pipeline",
		Trigger:     "create_article",
		MaxAttempts: cfg.RetryMaxAttempts,
		Timeout:     cfg.RetryTimeout,
		Snapshot:    func() string { return in.IntentText },
	}, func(ctx context.Context) (*llm.ArticleOutput, error) {
		return e.provider.CreateArticle(ctx, llm.ArticleInput{
			Query: clean, Intent: in.IntentText, Language: q.Language, Filetype: filetype,
		})
	})
	if err != nil {
		_ = e.articles.FailRun(ctx, run.ID, cfg.RetryMaxAttempts, time.Since(phaseStart), err.Error())
		return err
	}
	if semErr := validateArticle(out); semErr != nil {
		// Never retried: the provider answered, the answer is unusable.
		_ = e.articles.FailRun(ctx, run.ID, meta.Attempts, time.Since(phaseStart), semErr.Error())
		return semErr
	}

	keepTitle := order.Kind == generationorder.KindArticleRegenKeepTitle
	if v, ok := order.RequestPayload["keepTitle"].(bool); ok && v {
		keepTitle = true
	}

	art, err := e.articles.UpsertArticle(ctx, services.UpsertArticleInput{
		IntentID:        in.ID,
		Title:           out.Title,
		Slug:            out.Slug,
		Summary:         in.Summary,
		Content:         out.Content,
		Filetype:        filetype,
		GeneratedBy:     out.GeneratedBy,
		KeepTitle:       keepTitle,
		ReplaceExisting: order.Kind != generationorder.KindQueryFull,
	})
	if err != nil {
		_ = e.articles.FailRun(ctx, run.ID, meta.Attempts, time.Since(phaseStart), err.Error())
		return err
	}

	if err := e.articles.CompleteRun(ctx, run.ID, art.ID, meta.Attempts, time.Since(phaseStart), meta.Duration); err != nil {
		return err
	}

	e.emit(ctx, channel, order.ID, events.ArticleUpsertedPayload{
		OrderID:  order.ID,
		QueryID:  q.ID,
		IntentID: in.ID,
		Article: events.ArticleRef{
			ID:      art.ID,
			Title:   art.Title,
			Slug:    art.Slug,
			Summary: art.Summary,
		},
	})
	return nil
}

// validateArticle checks the provider output contract.
func validateArticle(out *llm.ArticleOutput) error {
	switch {
	case out == nil:
		return fmt.Errorf("provider returned no article")
	case out.Content == "":
		return fmt.Errorf("provider returned an empty article body")
	case out.Slug == "":
		return fmt.Errorf("provider returned an article without a slug")
	case len(out.Recommendations) == 0:
		return fmt.Errorf("provider returned an article without recommendations")
	}
	return nil
}

// fail emits the order.failed event before the worker flips the status row.
func (e *SearchExecutor) fail(ctx context.Context, order *ent.GenerationOrder, queryID int, channel string, cause error) *ExecutionResult {
	e.emit(ctx, channel, order.ID, events.OrderFailedPayload{
		OrderID: order.ID,
		QueryID: queryID,
		Message: cause.Error(),
	})
	return &ExecutionResult{Err: cause}
}

// emit publishes one event; a failed publish is logged inside the
// publisher path and must not break the pipeline.
func (e *SearchExecutor) emit(ctx context.Context, channel string, orderID int, payload events.Payload) {
	if _, err := e.publisher.Emit(ctx, channel, orderID, payload); err != nil {
		e.orders.AppendLog(ctx, orderID, orderlog.StageOrder, orderlog.LevelWarn,
			fmt.Sprintf("event %s not delivered: %v", payload.EventType(), err), nil)
	}
}
