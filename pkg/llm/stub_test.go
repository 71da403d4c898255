package llm

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStubProvider_CorrectSpelling(t *testing.T) {
	p := NewStubProvider("test-model")

	out, err := p.CorrectSpelling(context.Background(), SpellingInput{Text: "  sqlite   fts5\tranking ", Language: "en"})
	require.NoError(t, err)
	assert.Equal(t, "sqlite fts5 ranking", out)
}

func TestStubProvider_ResolveIntents(t *testing.T) {
	p := NewStubProvider("test-model")

	t.Run("returns deduplicated intents", func(t *testing.T) {
		items, err := p.ResolveIntents(context.Background(), IntentInput{Query: "go generics", Language: "en"})
		require.NoError(t, err)
		require.NotEmpty(t, items)
		assert.LessOrEqual(t, len(items), 5)

		seen := map[string]bool{}
		for _, it := range items {
			key := strings.ToLower(it.Intent)
			assert.False(t, seen[key], "duplicate intent %q", it.Intent)
			seen[key] = true
			assert.NotEmpty(t, it.Title)
			assert.NotEmpty(t, it.Summary)
		}
	})

	t.Run("deterministic across calls", func(t *testing.T) {
		a, err := p.ResolveIntents(context.Background(), IntentInput{Query: "go generics"})
		require.NoError(t, err)
		b, err := p.ResolveIntents(context.Background(), IntentInput{Query: "go generics"})
		require.NoError(t, err)
		assert.Equal(t, a, b)
	})

	t.Run("rejects empty query", func(t *testing.T) {
		_, err := p.ResolveIntents(context.Background(), IntentInput{Query: "   "})
		assert.Error(t, err)
	})
}

func TestStubProvider_CreateArticle(t *testing.T) {
	p := NewStubProvider("test-model")

	out, err := p.CreateArticle(context.Background(), ArticleInput{
		Query:    "sqlite fts5",
		Intent:   "sqlite fts5 overview",
		Language: "en",
		Filetype: "md",
	})
	require.NoError(t, err)
	assert.Equal(t, "sqlite-fts5-overview.md", out.Slug)
	assert.NotEmpty(t, out.Title)
	assert.NotEmpty(t, out.Content)
	assert.Equal(t, "test-model", out.GeneratedBy)
	assert.NotEmpty(t, out.Recommendations)
}

func TestStubProvider_CreateImage(t *testing.T) {
	p := NewStubProvider("")

	a, err := p.CreateImage(context.Background(), ImageInput{Description: "a red square", Quality: QualityNormal})
	require.NoError(t, err)
	assert.Equal(t, "image/png", a.MimeType)
	assert.NotEmpty(t, a.Data)

	b, err := p.CreateImage(context.Background(), ImageInput{Description: "a red square"})
	require.NoError(t, err)
	assert.Equal(t, a.Data, b.Data, "same description yields same bytes")

	c, err := p.CreateImage(context.Background(), ImageInput{Description: "a blue circle"})
	require.NoError(t, err)
	assert.NotEqual(t, a.Data, c.Data, "distinct descriptions yield distinct bytes")
}

func TestStubProvider_GenerateReply(t *testing.T) {
	p := NewStubProvider("")

	t.Run("plain reply", func(t *testing.T) {
		out, err := p.GenerateReply(context.Background(), ReplyInput{UserInput: "how do leases work?"})
		require.NoError(t, err)
		assert.Contains(t, out.Content, "how do leases work?")
		assert.Empty(t, out.Attachments)
	})

	t.Run("attachment path honors policy", func(t *testing.T) {
		out, err := p.GenerateReply(context.Background(), ReplyInput{
			UserInput: "send me an attachment with notes",
			Policy:    AttachmentPolicy{MaxCount: 1, MaxTextChars: 10},
		})
		require.NoError(t, err)
		require.Len(t, out.Attachments, 1)
		att := out.Attachments[0]
		assert.Equal(t, AttachmentText, att.Kind)
		assert.LessOrEqual(t, len(att.Text), 10)
	})

	t.Run("no attachments when policy forbids them", func(t *testing.T) {
		out, err := p.GenerateReply(context.Background(), ReplyInput{
			UserInput: "send me an attachment",
			Policy:    AttachmentPolicy{MaxCount: 0},
		})
		require.NoError(t, err)
		assert.Empty(t, out.Attachments)
	})
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"sqlite fts5 overview", "sqlite-fts5-overview"},
		{"Go 1.22 rand/v2!", "go-1-22-rand-v2"},
		{"  spaced   out  ", "spaced-out"},
		{"---", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, slugify(tt.input), "input %q", tt.input)
	}
}
