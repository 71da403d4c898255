package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/lumenlabs/lumen/ent"
	"github.com/lumenlabs/lumen/ent/intent"
	"github.com/lumenlabs/lumen/ent/searchquery"
	"github.com/lumenlabs/lumen/ent/spellentry"
	"github.com/lumenlabs/lumen/pkg/llm"
)

// Spell correction modes accepted by SubmitQuery.
const (
	SpellModeOn  = "on"
	SpellModeOff = "off"
)

const defaultFiletype = "md"

var (
	languageRe = regexp.MustCompile(`^[a-z]{2}(-[A-Za-z]{2})?$`)
	filetypeRe = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]{0,15}$`)
)

// SubmitQueryResult reports what SubmitQuery did with the input.
type SubmitQueryResult struct {
	QueryID             int    `json:"queryId"`
	Query               string `json:"query"`
	OriginalQuery       string `json:"originalQuery"`
	CorrectionApplied   bool   `json:"correctionApplied"`
	CorrectedQuery      string `json:"correctedQuery,omitempty"`
	Language            string `json:"language"`
	Filetype            string `json:"filetype"`
	SpellCorrectionMode string `json:"spellCorrectionMode"`
}

// QueryService accepts raw query text, normalizes it, and upserts Query rows.
type QueryService struct {
	db       *ent.Client
	provider llm.Provider
	executor *llm.Executor
	settings *SettingsService
}

// NewQueryService creates a QueryService.
func NewQueryService(db *ent.Client, provider llm.Provider, executor *llm.Executor, settings *SettingsService) *QueryService {
	return &QueryService{db: db, provider: provider, executor: executor, settings: settings}
}

// ParseFiletype extracts `filetype:xxx` operators from raw query text.
// The last valid operator wins; invalid ones stay in the text as ordinary
// tokens. Returns the remaining query text and the chosen filetype
// (default "md").
func ParseFiletype(raw string) (clean, filetype string) {
	filetype = defaultFiletype
	var kept []string
	for _, tok := range strings.Fields(raw) {
		if rest, ok := strings.CutPrefix(tok, "filetype:"); ok && filetypeRe.MatchString(rest) {
			filetype = rest
			continue
		}
		kept = append(kept, tok)
	}
	return strings.Join(kept, " "), filetype
}

// SubmitQuery validates and normalizes raw input, runs spell correction
// unless mode is "off", and upserts the Query row keyed on
// (corrected value, language).
func (s *QueryService) SubmitQuery(ctx context.Context, raw, language, mode string) (*SubmitQueryResult, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, NewValidationError("query", "required")
	}
	if language == "" {
		language = "en"
	}
	if !languageRe.MatchString(language) {
		return nil, NewValidationError("language", "invalid language code")
	}
	switch mode {
	case "":
		mode = SpellModeOn
	case SpellModeOn, SpellModeOff:
	default:
		return nil, NewValidationError("spellCorrectionMode", "must be on or off")
	}

	clean, filetype := ParseFiletype(raw)
	if clean == "" {
		return nil, NewValidationError("query", "empty after removing operators")
	}

	corrected := clean
	if mode == SpellModeOn {
		c, err := s.correctSpelling(ctx, clean, language)
		if err != nil {
			return nil, fmt.Errorf("spell correction failed: %w", err)
		}
		corrected = c
	}

	q, err := s.upsertQuery(ctx, corrected, raw, language, filetype)
	if err != nil {
		return nil, err
	}

	result := &SubmitQueryResult{
		QueryID:             q.ID,
		Query:               q.Value,
		OriginalQuery:       raw,
		CorrectionApplied:   corrected != clean,
		Language:            language,
		Filetype:            filetype,
		SpellCorrectionMode: mode,
	}
	if result.CorrectionApplied {
		result.CorrectedQuery = corrected
	}
	return result, nil
}

// correctSpelling consults the spell cache before calling the provider.
// Cache rows are keyed by the hashed lowercase input per language.
func (s *QueryService) correctSpelling(ctx context.Context, text, language string) (string, error) {
	hash := spellHash(text)

	cached, err := s.db.SpellEntry.Query().
		Where(spellentry.TextHash(hash), spellentry.Language(language)).
		Only(ctx)
	if err == nil {
		return cached.Corrected, nil
	}
	if !ent.IsNotFound(err) {
		return "", fmt.Errorf("spell cache lookup failed: %w", err)
	}

	cfg := s.settings.Snapshot(ctx)
	corrected, _, err := llm.Do(ctx, s.executor, llm.CallSpec{
		Provider:    s.provider.Name(),
		Component:   "query",
		Trigger:     "correct_spelling",
		MaxAttempts: cfg.RetryMaxAttempts,
		Timeout:     cfg.RetryTimeout,
		Snapshot:    func() string { return text },
	}, func(ctx context.Context) (string, error) {
		return s.provider.CorrectSpelling(ctx, llm.SpellingInput{Text: text, Language: language})
	})
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(corrected) == "" {
		corrected = text
	}

	// A concurrent submit may have cached the same input already.
	err = s.db.SpellEntry.Create().
		SetTextHash(hash).
		SetLanguage(language).
		SetCorrected(corrected).
		Exec(ctx)
	if err != nil && !ent.IsConstraintError(err) {
		return "", fmt.Errorf("spell cache write failed: %w", err)
	}
	return corrected, nil
}

func (s *QueryService) upsertQuery(ctx context.Context, value, original, language, filetype string) (*ent.SearchQuery, error) {
	existing, err := s.db.SearchQuery.Query().
		Where(searchquery.Value(value), searchquery.Language(language)).
		Only(ctx)
	if err == nil {
		// Keep the first original_value; refresh the filetype choice.
		return s.db.SearchQuery.UpdateOne(existing).
			SetFiletype(filetype).
			SetUpdatedAt(time.Now()).
			Save(ctx)
	}
	if !ent.IsNotFound(err) {
		return nil, fmt.Errorf("query lookup failed: %w", err)
	}

	created, err := s.db.SearchQuery.Create().
		SetValue(value).
		SetOriginalValue(original).
		SetLanguage(language).
		SetFiletype(filetype).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return s.db.SearchQuery.Query().
				Where(searchquery.Value(value), searchquery.Language(language)).
				Only(ctx)
		}
		return nil, fmt.Errorf("query create failed: %w", err)
	}
	return created, nil
}

// GetQuery returns one query by id.
func (s *QueryService) GetQuery(ctx context.Context, id int) (*ent.SearchQuery, error) {
	row, err := s.db.SearchQuery.Get(ctx, id)
	if ent.IsNotFound(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load query %d: %w", id, err)
	}
	return row, nil
}

// ClearIntentLinks detaches all intents from a query. Intent rows survive;
// they are shared across queries.
func (s *QueryService) ClearIntentLinks(ctx context.Context, queryID int) error {
	if err := s.db.SearchQuery.UpdateOneID(queryID).ClearIntents().Exec(ctx); err != nil {
		return fmt.Errorf("failed to clear intent links for query %d: %w", queryID, err)
	}
	return nil
}

// UpsertIntent creates or reuses the (intent_text, filetype) row and links
// it to the query.
func (s *QueryService) UpsertIntent(ctx context.Context, queryID int, item llm.IntentItem, filetype string) (*ent.Intent, error) {
	row, err := s.db.Intent.Query().
		Where(intent.IntentText(item.Intent), intent.Filetype(filetype)).
		Only(ctx)
	if ent.IsNotFound(err) {
		row, err = s.db.Intent.Create().
			SetIntentText(item.Intent).
			SetTitle(item.Title).
			SetSummary(item.Summary).
			SetFiletype(filetype).
			Save(ctx)
		if ent.IsConstraintError(err) {
			row, err = s.db.Intent.Query().
				Where(intent.IntentText(item.Intent), intent.Filetype(filetype)).
				Only(ctx)
		}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to upsert intent: %w", err)
	}

	if err := s.db.SearchQuery.UpdateOneID(queryID).AddIntents(row).Exec(ctx); err != nil {
		// The link may already exist from an earlier order.
		if !ent.IsConstraintError(err) {
			return nil, fmt.Errorf("failed to link intent %d to query %d: %w", row.ID, queryID, err)
		}
	}
	return row, nil
}

// IntentsForQuery returns the query's linked intents ascending by id.
func (s *QueryService) IntentsForQuery(ctx context.Context, queryID int) ([]*ent.Intent, error) {
	rows, err := s.db.SearchQuery.Query().
		Where(searchquery.ID(queryID)).
		QueryIntents().
		Order(ent.Asc(intent.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load intents for query %d: %w", queryID, err)
	}
	return rows, nil
}

// GetIntent returns one intent by id.
func (s *QueryService) GetIntent(ctx context.Context, id int) (*ent.Intent, error) {
	row, err := s.db.Intent.Get(ctx, id)
	if ent.IsNotFound(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load intent %d: %w", id, err)
	}
	return row, nil
}

func spellHash(text string) string {
	sum := sha256.Sum256([]byte(strings.ToLower(text)))
	return hex.EncodeToString(sum[:])
}
