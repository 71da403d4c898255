package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumenlabs/lumen/ent/spellentry"
	"github.com/lumenlabs/lumen/pkg/database"
	"github.com/lumenlabs/lumen/pkg/llm"
	testdb "github.com/lumenlabs/lumen/test/database"
)

func TestParseFiletype(t *testing.T) {
	tests := []struct {
		name         string
		raw          string
		wantClean    string
		wantFiletype string
	}{
		{"no operator", "sqlite fts5 ranking", "sqlite fts5 ranking", "md"},
		{"single operator", "sqlite fts5 filetype:go", "sqlite fts5", "go"},
		{"operator in the middle", "sqlite filetype:rs fts5", "sqlite fts5", "rs"},
		{"last valid operator wins", "filetype:go sqlite filetype:py", "sqlite", "py"},
		{"invalid operator stays in text", "sqlite filetype:G!o", "sqlite filetype:G!o", "md"},
		{"uppercase is invalid", "sqlite filetype:GO", "sqlite filetype:GO", "md"},
		{"empty value is invalid", "sqlite filetype:", "sqlite filetype:", "md"},
		{"whitespace collapses", "  sqlite   fts5  ", "sqlite fts5", "md"},
		{"operator only", "filetype:md", "", "md"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clean, filetype := ParseFiletype(tt.raw)
			assert.Equal(t, tt.wantClean, clean)
			assert.Equal(t, tt.wantFiletype, filetype)
		})
	}
}

func setupTestQueryService(t *testing.T, client *database.Client) *QueryService {
	t.Helper()
	provider := llm.NewStubProvider("test-model")
	executor := llm.NewExecutor(client.Client)
	settings := NewSettingsService(client.Client)
	return NewQueryService(client.Client, provider, executor, settings)
}

func TestQueryService_SubmitQuery(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := setupTestQueryService(t, client)
	ctx := context.Background()

	t.Run("accepts and upserts", func(t *testing.T) {
		result, err := svc.SubmitQuery(ctx, "sqlite fts5 filetype:go", "en", "")
		require.NoError(t, err)
		assert.NotZero(t, result.QueryID)
		assert.Equal(t, "sqlite fts5", result.Query)
		assert.Equal(t, "sqlite fts5 filetype:go", result.OriginalQuery)
		assert.Equal(t, "go", result.Filetype)
		assert.Equal(t, "en", result.Language)
		assert.Equal(t, SpellModeOn, result.SpellCorrectionMode)
	})

	t.Run("resubmitting hits the same row", func(t *testing.T) {
		first, err := svc.SubmitQuery(ctx, "postgres indexing", "en", "")
		require.NoError(t, err)
		second, err := svc.SubmitQuery(ctx, "postgres indexing filetype:sql", "en", "")
		require.NoError(t, err)
		assert.Equal(t, first.QueryID, second.QueryID)
		assert.Equal(t, "sql", second.Filetype, "filetype refreshed on resubmit")
	})

	t.Run("spell correction result is cached", func(t *testing.T) {
		_, err := svc.SubmitQuery(ctx, "go generics", "en", "")
		require.NoError(t, err)
		_, err = svc.SubmitQuery(ctx, "go generics", "en", "")
		require.NoError(t, err)

		n, err := client.SpellEntry.Query().
			Where(spellentry.Language("en")).
			Count(ctx)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, n, 1)
	})

	t.Run("mode off skips correction", func(t *testing.T) {
		before, err := client.SpellEntry.Query().Count(ctx)
		require.NoError(t, err)

		result, err := svc.SubmitQuery(ctx, "raw uncorected text", "en", SpellModeOff)
		require.NoError(t, err)
		assert.False(t, result.CorrectionApplied)
		assert.Equal(t, SpellModeOff, result.SpellCorrectionMode)

		after, err := client.SpellEntry.Query().Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, before, after, "no provider call, no cache write")
	})

	t.Run("language defaults to en", func(t *testing.T) {
		result, err := svc.SubmitQuery(ctx, "default language", "", "")
		require.NoError(t, err)
		assert.Equal(t, "en", result.Language)
	})

	t.Run("validation failures", func(t *testing.T) {
		_, err := svc.SubmitQuery(ctx, "   ", "en", "")
		assert.True(t, IsValidationError(err), "blank query")

		_, err = svc.SubmitQuery(ctx, "ok", "english", "")
		assert.True(t, IsValidationError(err), "bad language code")

		_, err = svc.SubmitQuery(ctx, "ok", "en", "sometimes")
		assert.True(t, IsValidationError(err), "bad spell mode")

		_, err = svc.SubmitQuery(ctx, "filetype:md", "en", "")
		assert.True(t, IsValidationError(err), "nothing left after operators")
	})
}

func TestQueryService_Intents(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := setupTestQueryService(t, client)
	ctx := context.Background()

	submitted, err := svc.SubmitQuery(ctx, "sqlite fts5", "en", SpellModeOff)
	require.NoError(t, err)

	t.Run("upsert links intent to query", func(t *testing.T) {
		row, err := svc.UpsertIntent(ctx, submitted.QueryID, llm.IntentItem{
			Intent:  "sqlite fts5 overview",
			Title:   "Overview",
			Summary: "Intro.",
		}, "md")
		require.NoError(t, err)

		linked, err := svc.IntentsForQuery(ctx, submitted.QueryID)
		require.NoError(t, err)
		require.Len(t, linked, 1)
		assert.Equal(t, row.ID, linked[0].ID)
	})

	t.Run("same intent text reuses the row", func(t *testing.T) {
		first, err := svc.UpsertIntent(ctx, submitted.QueryID, llm.IntentItem{Intent: "shared intent"}, "md")
		require.NoError(t, err)
		second, err := svc.UpsertIntent(ctx, submitted.QueryID, llm.IntentItem{Intent: "shared intent"}, "md")
		require.NoError(t, err)
		assert.Equal(t, first.ID, second.ID)
	})

	t.Run("clear detaches links but keeps intents", func(t *testing.T) {
		row, err := svc.UpsertIntent(ctx, submitted.QueryID, llm.IntentItem{Intent: "kept after unlink"}, "md")
		require.NoError(t, err)

		require.NoError(t, svc.ClearIntentLinks(ctx, submitted.QueryID))

		linked, err := svc.IntentsForQuery(ctx, submitted.QueryID)
		require.NoError(t, err)
		assert.Empty(t, linked)

		still, err := svc.GetIntent(ctx, row.ID)
		require.NoError(t, err)
		assert.Equal(t, "kept after unlink", still.IntentText)
	})

	t.Run("get intent not found", func(t *testing.T) {
		_, err := svc.GetIntent(ctx, 999999)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}
