package services

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/lumenlabs/lumen/ent"
	"github.com/lumenlabs/lumen/ent/article"
	"github.com/lumenlabs/lumen/ent/generationrun"
)

// latencySampleSize bounds how many recent runs feed the estimate.
const latencySampleSize = 20

// UpsertArticleInput describes one article write from the search pipeline.
type UpsertArticleInput struct {
	IntentID    int
	Title       string
	Slug        string
	Summary     string
	Content     string
	Filetype    string
	GeneratedBy string

	// KeepTitle preserves the existing article's title on replacement.
	KeepTitle bool

	// ReplaceExisting updates the intent's current article instead of
	// creating a sibling. True for every kind except query_full.
	ReplaceExisting bool
}

// ArticleService persists generated articles and their run statistics.
type ArticleService struct {
	db *ent.Client
}

// NewArticleService creates an ArticleService.
func NewArticleService(db *ent.Client) *ArticleService {
	return &ArticleService{db: db}
}

// UpsertArticle writes an article for an intent. New rows get a unique slug
// (collision appends -2, -3, ... before the extension); replacements keep
// their slug and, when requested, their title.
func (s *ArticleService) UpsertArticle(ctx context.Context, in UpsertArticleInput) (*ent.Article, error) {
	if in.ReplaceExisting {
		existing, err := s.db.Article.Query().
			Where(article.IntentID(in.IntentID)).
			Order(ent.Asc(article.FieldID)).
			First(ctx)
		if err != nil && !ent.IsNotFound(err) {
			return nil, fmt.Errorf("failed to load existing article: %w", err)
		}
		if existing != nil {
			title := in.Title
			if in.KeepTitle {
				title = existing.Title
			}
			return s.db.Article.UpdateOne(existing).
				SetTitle(title).
				SetSummary(in.Summary).
				SetContent(in.Content).
				SetGeneratedBy(in.GeneratedBy).
				SetStatus(article.StatusContentReady).
				SetUpdatedAt(time.Now()).
				Save(ctx)
		}
	}

	return s.createWithUniqueSlug(ctx, in)
}

func (s *ArticleService) createWithUniqueSlug(ctx context.Context, in UpsertArticleInput) (*ent.Article, error) {
	base, ext := splitSlug(in.Slug)
	slug := in.Slug
	for attempt := 2; ; attempt++ {
		created, err := s.db.Article.Create().
			SetIntentID(in.IntentID).
			SetTitle(in.Title).
			SetSlug(slug).
			SetSummary(in.Summary).
			SetContent(in.Content).
			SetFiletype(in.Filetype).
			SetGeneratedBy(in.GeneratedBy).
			SetStatus(article.StatusContentReady).
			Save(ctx)
		if err == nil {
			return created, nil
		}
		if !ent.IsConstraintError(err) {
			return nil, fmt.Errorf("failed to create article: %w", err)
		}
		if attempt > 100 {
			return nil, fmt.Errorf("could not find free slug for %q", in.Slug)
		}
		slug = base + "-" + strconv.Itoa(attempt) + ext
	}
}

// splitSlug separates the filetype extension so collision suffixes land
// before it: "sqlite-fts5.md" → ("sqlite-fts5", ".md").
func splitSlug(slug string) (base, ext string) {
	if i := strings.LastIndexByte(slug, '.'); i > 0 {
		return slug[:i], slug[i:]
	}
	return slug, ""
}

// Get returns one article by id.
func (s *ArticleService) Get(ctx context.Context, id int) (*ent.Article, error) {
	row, err := s.db.Article.Get(ctx, id)
	if ent.IsNotFound(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load article %d: %w", id, err)
	}
	return row, nil
}

// ForIntent returns the current article for an intent, or nil.
func (s *ArticleService) ForIntent(ctx context.Context, intentID int) (*ent.Article, error) {
	row, err := s.db.Article.Query().
		Where(article.IntentID(intentID)).
		Order(ent.Asc(article.FieldID)).
		First(ctx)
	if ent.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load article for intent %d: %w", intentID, err)
	}
	return row, nil
}

// BeginRun opens a GenerationRun row around a provider article call.
func (s *ArticleService) BeginRun(ctx context.Context, orderID int, kind generationrun.Kind) (*ent.GenerationRun, error) {
	run, err := s.db.GenerationRun.Create().
		SetOrderID(orderID).
		SetKind(kind).
		SetStatus(generationrun.StatusRunning).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin generation run: %w", err)
	}
	return run, nil
}

// CompleteRun closes a run as completed with its timings.
func (s *ArticleService) CompleteRun(ctx context.Context, runID, articleID, attempts int, total, llmTime time.Duration) error {
	_, err := s.db.GenerationRun.UpdateOneID(runID).
		SetArticleID(articleID).
		SetStatus(generationrun.StatusCompleted).
		SetAttempts(attempts).
		SetDurationMs(total.Milliseconds()).
		SetLlmDurationMs(llmTime.Milliseconds()).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to complete generation run %d: %w", runID, err)
	}
	return nil
}

// FailRun closes a run as failed.
func (s *ArticleService) FailRun(ctx context.Context, runID int, attempts int, total time.Duration, msg string) error {
	_, err := s.db.GenerationRun.UpdateOneID(runID).
		SetStatus(generationrun.StatusFailed).
		SetAttempts(attempts).
		SetDurationMs(total.Milliseconds()).
		SetErrorMessage(msg).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to mark generation run %d failed: %w", runID, err)
	}
	return nil
}

// EstimateLatency averages the duration of recent completed runs. Zero
// means no history yet.
func (s *ArticleService) EstimateLatency(ctx context.Context) (time.Duration, error) {
	rows, err := s.db.GenerationRun.Query().
		Where(generationrun.StatusEQ(generationrun.StatusCompleted)).
		Order(ent.Desc(generationrun.FieldCreatedAt)).
		Limit(latencySampleSize).
		All(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to load run stats: %w", err)
	}
	if len(rows) == 0 {
		return 0, nil
	}
	var total int64
	for _, r := range rows {
		total += r.DurationMs
	}
	return time.Duration(total/int64(len(rows))) * time.Millisecond, nil
}
