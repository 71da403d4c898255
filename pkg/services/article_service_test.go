package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumenlabs/lumen/ent"
	"github.com/lumenlabs/lumen/ent/article"
	"github.com/lumenlabs/lumen/ent/generationorder"
	"github.com/lumenlabs/lumen/ent/generationrun"
	"github.com/lumenlabs/lumen/pkg/database"
	testdb "github.com/lumenlabs/lumen/test/database"
)

func TestSplitSlug(t *testing.T) {
	tests := []struct {
		slug     string
		wantBase string
		wantExt  string
	}{
		{"sqlite-fts5.md", "sqlite-fts5", ".md"},
		{"no-extension", "no-extension", ""},
		{"two.dots.go", "two.dots", ".go"},
		{".hidden", ".hidden", ""},
	}
	for _, tt := range tests {
		base, ext := splitSlug(tt.slug)
		assert.Equal(t, tt.wantBase, base, tt.slug)
		assert.Equal(t, tt.wantExt, ext, tt.slug)
	}
}

func createTestIntent(t *testing.T, client *database.Client, text string) *ent.Intent {
	t.Helper()
	row, err := client.Intent.Create().
		SetIntentText(text).
		SetTitle("Title: " + text).
		SetSummary("Summary.").
		SetFiletype("md").
		Save(context.Background())
	require.NoError(t, err)
	return row
}

func TestArticleService_UpsertArticle(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewArticleService(client.Client)
	ctx := context.Background()

	t.Run("creates new article", func(t *testing.T) {
		in := createTestIntent(t, client, "sqlite fts5 overview")
		art, err := svc.UpsertArticle(ctx, UpsertArticleInput{
			IntentID:    in.ID,
			Title:       "SQLite FTS5",
			Slug:        "sqlite-fts5.md",
			Summary:     "Intro.",
			Content:     "# SQLite FTS5\n\nBody.",
			Filetype:    "md",
			GeneratedBy: "test-model",
		})
		require.NoError(t, err)
		assert.Equal(t, "sqlite-fts5.md", art.Slug)
		assert.Equal(t, article.StatusContentReady, art.Status)
	})

	t.Run("slug collision appends a counter before the extension", func(t *testing.T) {
		other := createTestIntent(t, client, "sqlite fts5 usage")
		art, err := svc.UpsertArticle(ctx, UpsertArticleInput{
			IntentID:    other.ID,
			Title:       "SQLite FTS5 again",
			Slug:        "sqlite-fts5.md",
			Content:     "body",
			Filetype:    "md",
			GeneratedBy: "test-model",
		})
		require.NoError(t, err)
		assert.Equal(t, "sqlite-fts5-2.md", art.Slug)
	})

	t.Run("replace updates in place", func(t *testing.T) {
		in := createTestIntent(t, client, "replace target")
		first, err := svc.UpsertArticle(ctx, UpsertArticleInput{
			IntentID: in.ID, Title: "Old title", Slug: "replace-target.md",
			Content: "old", Filetype: "md", GeneratedBy: "m1",
		})
		require.NoError(t, err)

		second, err := svc.UpsertArticle(ctx, UpsertArticleInput{
			IntentID: in.ID, Title: "New title", Slug: "ignored.md",
			Content: "new", Filetype: "md", GeneratedBy: "m2",
			ReplaceExisting: true,
		})
		require.NoError(t, err)
		assert.Equal(t, first.ID, second.ID)
		assert.Equal(t, "New title", second.Title)
		assert.Equal(t, "replace-target.md", second.Slug, "slug survives replacement")
		assert.Equal(t, "new", second.Content)
	})

	t.Run("keep title preserves the existing title", func(t *testing.T) {
		in := createTestIntent(t, client, "keep title target")
		first, err := svc.UpsertArticle(ctx, UpsertArticleInput{
			IntentID: in.ID, Title: "Pinned title", Slug: "keep-title.md",
			Content: "old", Filetype: "md", GeneratedBy: "m1",
		})
		require.NoError(t, err)

		second, err := svc.UpsertArticle(ctx, UpsertArticleInput{
			IntentID: in.ID, Title: "Provider title", Slug: "keep-title.md",
			Content: "regenerated", Filetype: "md", GeneratedBy: "m2",
			KeepTitle: true, ReplaceExisting: true,
		})
		require.NoError(t, err)
		assert.Equal(t, first.ID, second.ID)
		assert.Equal(t, "Pinned title", second.Title)
		assert.Equal(t, "regenerated", second.Content)
	})

	t.Run("replace without existing article creates one", func(t *testing.T) {
		in := createTestIntent(t, client, "fresh regen")
		art, err := svc.UpsertArticle(ctx, UpsertArticleInput{
			IntentID: in.ID, Title: "Fresh", Slug: "fresh-regen.md",
			Content: "body", Filetype: "md", GeneratedBy: "m1",
			ReplaceExisting: true,
		})
		require.NoError(t, err)
		assert.NotZero(t, art.ID)
	})
}

func TestArticleService_Runs(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewArticleService(client.Client)
	ctx := context.Background()

	in := createTestIntent(t, client, "run stats")
	order, err := client.GenerationOrder.Create().
		SetKind(generationorder.KindQueryFull).
		SetStatus(generationorder.StatusRunning).
		SetRequestedBy(generationorder.RequestedByUser).
		Save(ctx)
	require.NoError(t, err)

	t.Run("complete run records timings", func(t *testing.T) {
		run, err := svc.BeginRun(ctx, order.ID, generationrun.KindContent)
		require.NoError(t, err)

		art, err := svc.UpsertArticle(ctx, UpsertArticleInput{
			IntentID: in.ID, Title: "T", Slug: "run-stats.md",
			Content: "body", Filetype: "md", GeneratedBy: "m",
		})
		require.NoError(t, err)

		require.NoError(t, svc.CompleteRun(ctx, run.ID, art.ID, 1, 250*time.Millisecond, 200*time.Millisecond))

		got, err := client.GenerationRun.Get(ctx, run.ID)
		require.NoError(t, err)
		assert.Equal(t, generationrun.StatusCompleted, got.Status)
		assert.Equal(t, int64(250), got.DurationMs)
	})

	t.Run("estimate averages completed runs", func(t *testing.T) {
		estimate, err := svc.EstimateLatency(ctx)
		require.NoError(t, err)
		assert.Equal(t, 250*time.Millisecond, estimate)
	})

	t.Run("failed run keeps the message", func(t *testing.T) {
		run, err := svc.BeginRun(ctx, order.ID, generationrun.KindContent)
		require.NoError(t, err)
		require.NoError(t, svc.FailRun(ctx, run.ID, 2, 100*time.Millisecond, "provider exploded"))

		got, err := client.GenerationRun.Get(ctx, run.ID)
		require.NoError(t, err)
		assert.Equal(t, generationrun.StatusFailed, got.Status)
		assert.Equal(t, "provider exploded", got.ErrorMessage)
	})
}
